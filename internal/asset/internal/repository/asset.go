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

package repository

import (
	"context"
	"database/sql"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/studyhub/internal/asset/internal/domain"
	"github.com/ecodeclub/studyhub/internal/asset/internal/repository/dao"
)

type AssetRepository interface {
	Create(ctx context.Context, a domain.Asset) (int64, error)
	// CreateDirect 主路径写入失败后的兜底落库。
	// 不带 uploader_id，行内时间戳由数据库生成
	CreateDirect(ctx context.Context, a domain.Asset) error
	Recent(ctx context.Context, limit int) ([]domain.Asset, error)
}

type assetRepository struct {
	dao dao.AssetDAO
}

func NewAssetRepository(d dao.AssetDAO) AssetRepository {
	return &assetRepository{dao: d}
}

func (repo *assetRepository) Create(ctx context.Context, a domain.Asset) (int64, error) {
	return repo.dao.Insert(ctx, repo.toEntity(a))
}

func (repo *assetRepository) CreateDirect(ctx context.Context, a domain.Asset) error {
	return repo.dao.InsertDirect(ctx, repo.toEntity(a))
}

func (repo *assetRepository) Recent(ctx context.Context, limit int) ([]domain.Asset, error) {
	assets, err := repo.dao.Recent(ctx, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(assets, func(idx int, src dao.Asset) domain.Asset {
		return repo.toDomain(src)
	}), nil
}

func (repo *assetRepository) toEntity(a domain.Asset) dao.Asset {
	return dao.Asset{
		Id:       a.Id,
		Url:      a.Url,
		Size:     a.Size,
		MimeType: a.MimeType,
		// 匿名上传落库为 NULL
		UploaderId: sql.NullInt64{
			Int64: a.UploaderId,
			Valid: a.UploaderId != 0,
		},
		Ctime: a.Ctime,
	}
}

func (repo *assetRepository) toDomain(a dao.Asset) domain.Asset {
	return domain.Asset{
		Id:         a.Id,
		Url:        a.Url,
		Size:       a.Size,
		MimeType:   a.MimeType,
		UploaderId: a.UploaderId.Int64,
		Ctime:      a.Ctime,
	}
}
