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
	"net/http"

	"github.com/ecodeclub/studyhub/internal/progress/internal/domain"
	"github.com/ecodeclub/studyhub/internal/progress/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

type Handler struct {
	svc service.ProgressService
	// limit 提交路由的限流中间件，挂在路由注册处
	limit  gin.HandlerFunc
	logger *elog.Component
}

func NewHandler(svc service.ProgressService, limit gin.HandlerFunc) *Handler {
	return &Handler{
		svc:    svc,
		limit:  limit,
		logger: elog.DefaultLogger,
	}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	server.POST("/progress", h.limit, h.Submit)
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
}

func (h *Handler) Submit(ctx *gin.Context) {
	var req SubmitReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, SubmitResp{
			Success: false,
			Error:   "JSON payload required",
			Code:    http.StatusBadRequest,
		})
		return
	}
	if req.SubmitterId == 0 || req.TargetId == 0 {
		ctx.JSON(http.StatusBadRequest, SubmitResp{
			Success: false,
			Error:   "submitterId and targetId required",
			Code:    http.StatusBadRequest,
		})
		return
	}
	id, err := h.svc.Submit(ctx.Request.Context(), domain.Submission{
		Uid:       req.SubmitterId,
		LessonId:  req.TargetId,
		AttemptId: req.AttemptId,
		Score:     req.Score,
		TimeSpent: req.TimeSpent,
		Answers:   string(req.Answers),
	})
	switch {
	case errors.Is(err, service.ErrDuplicatedSubmission):
		ctx.JSON(http.StatusConflict, SubmitResp{
			Success: false,
			Error:   "duplicate submission",
			Code:    http.StatusConflict,
		})
	case errors.Is(err, service.ErrSubmitterNotFound),
		errors.Is(err, service.ErrTargetNotFound):
		ctx.JSON(http.StatusBadRequest, SubmitResp{
			Success: false,
			Error:   "submitter or target not found",
			Code:    http.StatusBadRequest,
		})
	case err != nil:
		h.logger.Error("写入提交记录失败",
			elog.Int64("uid", req.SubmitterId),
			elog.Int64("lid", req.TargetId),
			elog.FieldErr(err))
		ctx.JSON(http.StatusInternalServerError, SubmitResp{
			Success: false,
			Error:   "system error",
			Code:    http.StatusInternalServerError,
		})
	default:
		ctx.JSON(http.StatusOK, SubmitResp{
			Success: true,
			Id:      id,
		})
	}
}
