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

package dao

import (
	"context"
	"database/sql"
	"time"

	"github.com/ego-component/egorm"
)

type AssetDAO interface {
	Insert(ctx context.Context, a Asset) (int64, error)
	// InsertDirect 绕过 ORM 的兜底写入，直接走底层连接，
	// 时间戳由数据库生成
	InsertDirect(ctx context.Context, a Asset) error
	Recent(ctx context.Context, limit int) ([]Asset, error)
}

type GORMAssetDAO struct {
	db *egorm.Component
	// raw 与 db 指向同一个连接池
	raw *sql.DB
}

func NewGORMAssetDAO(db *egorm.Component, raw *sql.DB) AssetDAO {
	return &GORMAssetDAO{db: db, raw: raw}
}

func (dao *GORMAssetDAO) Insert(ctx context.Context, a Asset) (int64, error) {
	a.Ctime = time.Now().UnixMilli()
	err := dao.db.WithContext(ctx).Create(&a).Error
	if err != nil {
		return 0, err
	}
	return a.Id, nil
}

func (dao *GORMAssetDAO) InsertDirect(ctx context.Context, a Asset) error {
	_, err := dao.raw.ExecContext(ctx,
		"INSERT INTO `assets` (`url`, `size`, `mime_type`, `ctime`) "+
			"VALUES (?, ?, ?, CAST(UNIX_TIMESTAMP(NOW(3)) * 1000 AS SIGNED))",
		a.Url, a.Size, a.MimeType)
	return err
}

func (dao *GORMAssetDAO) Recent(ctx context.Context, limit int) ([]Asset, error) {
	var res []Asset
	err := dao.db.WithContext(ctx).
		Order("ctime DESC").
		Limit(limit).
		Find(&res).Error
	return res, err
}

type Asset struct {
	Id       int64  `gorm:"primaryKey,autoIncrement"`
	Url      string `gorm:"type:varchar(512)"`
	Size     int64
	MimeType string `gorm:"type:varchar(128)"`
	// UploaderId 匿名上传时为 NULL
	UploaderId sql.NullInt64
	Ctime      int64
}
