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

package service

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ecodeclub/studyhub/internal/asset/internal/domain"
	"github.com/ecodeclub/studyhub/internal/asset/internal/repository"
	"github.com/ecodeclub/studyhub/internal/asset/internal/storage"
	"github.com/gotomicro/ego/core/elog"
	"github.com/lithammer/shortuuid/v4"
	"github.com/wailsapp/mimetype"
)

var ErrPresignUnsupported = errors.New("当前存储不支持预签名直传")

//go:generate mockgen -source=./asset.go -destination=../../mocks/asset.mock.go -package=assetmocks -typed=true AssetService
type AssetService interface {
	// Upload 先落文件再落目录行。文件落稳之后元数据写失败
	// 不算上传失败，结果里的 Recorded 标记留给调用方判断
	Upload(ctx context.Context, filename string, data []byte, uploaderId int64) (domain.UploadResult, error)
	Recent(ctx context.Context, limit int) ([]domain.Asset, error)
	PresignPut(ctx context.Context, filename string, mimeType string) (string, error)
}

type assetService struct {
	repo     repository.AssetRepository
	uploader storage.Uploader
	logger   *elog.Component
}

func NewAssetService(repo repository.AssetRepository, up storage.Uploader) AssetService {
	return &assetService{
		repo:     repo,
		uploader: up,
		logger:   elog.DefaultLogger,
	}
}

func (svc *assetService) Upload(ctx context.Context,
	filename string, data []byte, uploaderId int64) (domain.UploadResult, error) {
	mime := mimetype.Detect(data).String()
	key := objectKey(filename)
	url, err := svc.uploader.Upload(ctx, key, mime, data)
	if err != nil {
		// 文件本身没落稳，对外就是整体失败
		return domain.UploadResult{}, err
	}
	asset := domain.Asset{
		Url:        url,
		Size:       int64(len(data)),
		MimeType:   mime,
		UploaderId: uploaderId,
	}
	id, err := svc.repo.Create(ctx, asset)
	if err == nil {
		asset.Id = id
		return domain.UploadResult{Asset: asset, Recorded: true}, nil
	}
	svc.logger.Error("上传元数据主路径写入失败，尝试兜底",
		elog.String("url", url),
		elog.FieldErr(err))
	ferr := svc.repo.CreateDirect(ctx, asset)
	if ferr == nil {
		return domain.UploadResult{Asset: asset, Recorded: true}, nil
	}
	svc.logger.Error("兜底写入同样失败，目录行待补录",
		elog.String("url", url),
		elog.FieldErr(ferr))
	return domain.UploadResult{
		Asset:     asset,
		Recorded:  false,
		RecordErr: fmt.Errorf("primary: %s | fallback: %s", err, ferr),
	}, nil
}

func (svc *assetService) Recent(ctx context.Context, limit int) ([]domain.Asset, error) {
	return svc.repo.Recent(ctx, limit)
}

func (svc *assetService) PresignPut(ctx context.Context,
	filename string, mimeType string) (string, error) {
	p, ok := svc.uploader.(storage.Presigner)
	if !ok {
		return "", ErrPresignUnsupported
	}
	return p.PresignPut(ctx, objectKey(filename), mimeType)
}

// objectKey 清洗文件名并缀上随机后缀，保证同名文件互不覆盖
func objectKey(filename string) string {
	base := filepath.Base(filename)
	ext := filepath.Ext(base)
	name := strings.TrimSuffix(base, ext)
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return b.String() + "-" + shortuuid.New() + ext
}
