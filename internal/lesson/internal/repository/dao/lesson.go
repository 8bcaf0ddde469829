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
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

var ErrRecordNotFound = gorm.ErrRecordNotFound

type LessonDAO interface {
	Create(ctx context.Context, l Lesson) (int64, error)
	FindById(ctx context.Context, id int64) (Lesson, error)
	// Version 只查版本号，读路径据此计算缓存 key
	Version(ctx context.Context, id int64) (int64, error)
	// UpdateContent 更新内容并把版本号原子 +1。
	// 并发更新同一行靠这条 UPDATE 的行锁串行化
	UpdateContent(ctx context.Context, id int64, content string) error
}

type GORMLessonDAO struct {
	db *egorm.Component
}

func NewGORMLessonDAO(db *egorm.Component) LessonDAO {
	return &GORMLessonDAO{db: db}
}

func (dao *GORMLessonDAO) Create(ctx context.Context, l Lesson) (int64, error) {
	now := time.Now().UnixMilli()
	l.Version = 1
	l.Ctime = now
	l.Utime = now
	err := dao.db.WithContext(ctx).Create(&l).Error
	if err != nil {
		return 0, err
	}
	return l.Id, nil
}

func (dao *GORMLessonDAO) FindById(ctx context.Context, id int64) (Lesson, error) {
	var l Lesson
	err := dao.db.WithContext(ctx).Where("id = ?", id).First(&l).Error
	return l, err
}

func (dao *GORMLessonDAO) Version(ctx context.Context, id int64) (int64, error) {
	var l Lesson
	err := dao.db.WithContext(ctx).
		Select("id", "version").
		Where("id = ?", id).
		First(&l).Error
	return l.Version, err
}

func (dao *GORMLessonDAO) UpdateContent(ctx context.Context, id int64, content string) error {
	res := dao.db.WithContext(ctx).
		Model(&Lesson{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"content": content,
			"version": gorm.Expr("`version` + 1"),
			"utime":   time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

type Lesson struct {
	Id       int64  `gorm:"primaryKey,autoIncrement"`
	CourseId int64  `gorm:"index"`
	Title    string `gorm:"type:varchar(255)"`
	Content  string `gorm:"type:json"`
	// Version 内容版本号，创建即为 1
	Version int64 `gorm:"not null;default:1"`
	Ctime   int64
	Utime   int64
}
