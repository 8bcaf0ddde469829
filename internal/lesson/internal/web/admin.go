// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package web

import (
	"errors"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/studyhub/internal/lesson/internal/domain"
	"github.com/ecodeclub/studyhub/internal/lesson/internal/service"
	"github.com/gin-gonic/gin"
)

// AdminHandler 创作端的写路径，版本推进的唯一入口
type AdminHandler struct {
	svc service.LessonService
}

func NewAdminHandler(svc service.LessonService) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/lesson")
	g.POST("/save", ginx.B[SaveReq](h.Save))
	g.POST("/content/update", ginx.B[UpdateContentReq](h.UpdateContent))
}

func (h *AdminHandler) PublicRoutes(server *gin.Engine) {
}

func (h *AdminHandler) Save(ctx *ginx.Context, req SaveReq) (ginx.Result, error) {
	id, err := h.svc.Save(ctx, domain.Lesson{
		CourseId: req.CourseId,
		Title:    req.Title,
		Content:  req.Content,
	})
	if errors.Is(err, service.ErrInvalidContent) {
		return invalidContentResult, nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: id}, nil
}

func (h *AdminHandler) UpdateContent(ctx *ginx.Context, req UpdateContentReq) (ginx.Result, error) {
	err := h.svc.UpdateContent(ctx, req.Id, req.Content)
	switch {
	case errors.Is(err, service.ErrInvalidContent):
		return invalidContentResult, nil
	case errors.Is(err, service.ErrLessonNotFound):
		return lessonNotFoundResult, nil
	case err != nil:
		return systemErrorResult, err
	default:
		return ginx.Result{Msg: "OK"}, nil
	}
}
