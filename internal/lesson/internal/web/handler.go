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
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/ecodeclub/studyhub/internal/lesson/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

// Handler 对外读接口。响应体是 {success, data, cached} 结构，
// 调用方只凭响应体就能区分命中与否
type Handler struct {
	svc    service.LessonService
	logger *elog.Component
}

func NewHandler(svc service.LessonService) *Handler {
	return &Handler{
		svc:    svc,
		logger: elog.DefaultLogger,
	}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	server.GET("/content/:id", h.Content)
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
}

func (h *Handler) Content(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ContentResp{
			Success: false,
			Error:   "invalid lesson id",
			Code:    http.StatusBadRequest,
		})
		return
	}
	view, cached, err := h.svc.Content(ctx.Request.Context(), id)
	switch {
	case errors.Is(err, service.ErrLessonNotFound):
		ctx.JSON(http.StatusNotFound, ContentResp{
			Success: false,
			Error:   "lesson not found",
			Code:    http.StatusNotFound,
		})
	case err != nil:
		h.logger.Error("读取课程内容失败",
			elog.Int64("lid", id),
			elog.FieldErr(err))
		ctx.JSON(http.StatusInternalServerError, ContentResp{
			Success: false,
			Error:   "system error",
			Code:    http.StatusInternalServerError,
		})
	default:
		payload := view.Payload
		if payload == "" {
			payload = "null"
		}
		ctx.JSON(http.StatusOK, ContentResp{
			Success: true,
			Cached:  cached,
			Data: &ContentData{
				Payload:       json.RawMessage(payload),
				SchemaVersion: view.SchemaVersion,
			},
		})
	}
}
