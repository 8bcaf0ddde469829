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
	"io"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/studyhub/internal/asset/internal/domain"
	"github.com/ecodeclub/studyhub/internal/asset/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

// allowedExts 允许上传的扩展名，按扩展名而不是客户端声明的类型判断
var allowedExts = map[string]struct{}{
	".png": {}, ".jpg": {}, ".jpeg": {}, ".gif": {},
	".webp": {}, ".mp4": {}, ".pdf": {},
}

type Handler struct {
	svc service.AssetService
	// maxBytes 单个文件的上限，超出直接 413
	maxBytes int64
	// debug 打开后暴露最近资产的排查接口
	debug  bool
	limit  gin.HandlerFunc
	logger *elog.Component
}

func NewHandler(svc service.AssetService, maxBytes int64,
	debug bool, limit gin.HandlerFunc) *Handler {
	return &Handler{
		svc:      svc,
		maxBytes: maxBytes,
		debug:    debug,
		limit:    limit,
		logger:   elog.DefaultLogger,
	}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	server.POST("/uploads", h.limit, h.Upload)
	server.POST("/uploads/presign", h.Presign)
	if h.debug {
		server.GET("/uploads/recent", h.Recent)
	}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
}

func (h *Handler) Upload(ctx *gin.Context) {
	if h.maxBytes > 0 && ctx.Request.ContentLength > h.maxBytes {
		ctx.JSON(http.StatusRequestEntityTooLarge, UploadResp{
			Success: false,
			Error:   "request too large",
			Code:    http.StatusRequestEntityTooLarge,
		})
		return
	}
	file, header, err := ctx.Request.FormFile("file")
	if err != nil || header.Filename == "" {
		ctx.JSON(http.StatusBadRequest, UploadResp{
			Success: false,
			Error:   "no file part",
			Code:    http.StatusBadRequest,
		})
		return
	}
	defer func() { _ = file.Close() }()
	ext := strings.ToLower(filepath.Ext(header.Filename))
	if _, ok := allowedExts[ext]; !ok {
		ctx.JSON(http.StatusBadRequest, UploadResp{
			Success: false,
			Error:   "file type not allowed",
			Code:    http.StatusBadRequest,
		})
		return
	}
	data, err := io.ReadAll(file)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, UploadResp{
			Success: false,
			Error:   "read file failed",
			Code:    http.StatusBadRequest,
		})
		return
	}
	if h.maxBytes > 0 && int64(len(data)) > h.maxBytes {
		ctx.JSON(http.StatusRequestEntityTooLarge, UploadResp{
			Success: false,
			Error:   "file too large",
			Code:    http.StatusRequestEntityTooLarge,
		})
		return
	}
	res, err := h.svc.Upload(ctx.Request.Context(),
		header.Filename, data, h.uploaderId(ctx))
	if err != nil {
		h.logger.Error("文件写入存储失败",
			elog.String("filename", header.Filename),
			elog.FieldErr(err))
		ctx.JSON(http.StatusInternalServerError, UploadResp{
			Success: false,
			Error:   "upload failed",
			Code:    http.StatusInternalServerError,
		})
		return
	}
	resp := UploadResp{
		Success:  true,
		Url:      res.Asset.Url,
		Size:     res.Asset.Size,
		MimeType: res.Asset.MimeType,
		Recorded: res.Recorded,
	}
	// 错误细节只在排查开关打开时回给调用方
	if res.RecordErr != nil && h.debug {
		resp.RecordError = res.RecordErr.Error()
	}
	ctx.JSON(http.StatusOK, resp)
}

func (h *Handler) Presign(ctx *gin.Context) {
	var req PresignReq
	if err := ctx.ShouldBindJSON(&req); err != nil || req.Filename == "" {
		ctx.JSON(http.StatusBadRequest, PresignResp{
			Success: false,
			Error:   "filename required",
			Code:    http.StatusBadRequest,
		})
		return
	}
	if req.ContentType == "" {
		req.ContentType = "application/octet-stream"
	}
	url, err := h.svc.PresignPut(ctx.Request.Context(), req.Filename, req.ContentType)
	switch {
	case errors.Is(err, service.ErrPresignUnsupported):
		ctx.JSON(http.StatusBadRequest, PresignResp{
			Success: false,
			Error:   "S3 not configured",
			Code:    http.StatusBadRequest,
		})
	case err != nil:
		h.logger.Error("生成预签名 URL 失败", elog.FieldErr(err))
		ctx.JSON(http.StatusInternalServerError, PresignResp{
			Success: false,
			Error:   "presign failed",
			Code:    http.StatusInternalServerError,
		})
	default:
		ctx.JSON(http.StatusOK, PresignResp{Success: true, Url: url})
	}
}

func (h *Handler) Recent(ctx *gin.Context) {
	limit, err := strconv.Atoi(ctx.DefaultQuery("limit", "10"))
	if err != nil || limit <= 0 {
		limit = 10
	}
	assets, err := h.svc.Recent(ctx.Request.Context(), limit)
	if err != nil {
		h.logger.Error("查询最近资产失败", elog.FieldErr(err))
		ctx.JSON(http.StatusInternalServerError, RecentResp{
			Success: false,
			Error:   "system error",
			Code:    http.StatusInternalServerError,
		})
		return
	}
	ctx.JSON(http.StatusOK, RecentResp{
		Success: true,
		Data: slice.Map(assets, func(idx int, src domain.Asset) AssetVO {
			return AssetVO{
				Id:         src.Id,
				Url:        src.Url,
				UploaderId: src.UploaderId,
				Size:       src.Size,
				MimeType:   src.MimeType,
				Ctime:      src.Ctime,
			}
		}),
	})
}

// uploaderId 尽力从会话里取身份，匿名上传返回 0
func (h *Handler) uploaderId(ctx *gin.Context) int64 {
	gtx := &ginx.Context{Context: ctx}
	sess, err := session.Get(gtx)
	if err != nil {
		return 0
	}
	return sess.Claims().Uid
}
