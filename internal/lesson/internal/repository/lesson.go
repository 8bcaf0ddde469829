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
	"encoding/json"
	"errors"

	"github.com/ecodeclub/studyhub/internal/lesson/internal/domain"
	"github.com/ecodeclub/studyhub/internal/lesson/internal/repository/cache"
	"github.com/ecodeclub/studyhub/internal/lesson/internal/repository/dao"
	"github.com/gotomicro/ego/core/elog"
)

var ErrLessonNotFound = dao.ErrRecordNotFound

type LessonRepository interface {
	Create(ctx context.Context, l domain.Lesson) (int64, error)
	FindById(ctx context.Context, id int64) (domain.Lesson, error)
	UpdateContent(ctx context.Context, id int64, content string) error
	// Content 返回读投影和是否命中缓存
	Content(ctx context.Context, id int64) (domain.ContentView, bool, error)
}

type CachedLessonRepository struct {
	dao    dao.LessonDAO
	cache  cache.ContentCache
	logger *elog.Component
}

func NewCachedLessonRepository(d dao.LessonDAO, c cache.ContentCache) LessonRepository {
	return &CachedLessonRepository{
		dao:    d,
		cache:  c,
		logger: elog.DefaultLogger,
	}
}

func (repo *CachedLessonRepository) Create(ctx context.Context, l domain.Lesson) (int64, error) {
	return repo.dao.Create(ctx, dao.Lesson{
		CourseId: l.CourseId,
		Title:    l.Title,
		Content:  l.Content,
	})
}

func (repo *CachedLessonRepository) FindById(ctx context.Context, id int64) (domain.Lesson, error) {
	l, err := repo.dao.FindById(ctx, id)
	if err != nil {
		return domain.Lesson{}, err
	}
	return repo.toDomain(l), nil
}

func (repo *CachedLessonRepository) UpdateContent(ctx context.Context, id int64, content string) error {
	// 版本号在 UPDATE 里原子 +1，这里不碰缓存：
	// 新版本用的是新 key，旧 key 等 TTL 淘汰
	return repo.dao.UpdateContent(ctx, id, content)
}

func (repo *CachedLessonRepository) Content(ctx context.Context, id int64) (domain.ContentView, bool, error) {
	version, err := repo.dao.Version(ctx, id)
	if err != nil {
		return domain.ContentView{}, false, err
	}
	view, err := repo.cache.GetContent(ctx, id, version)
	if err == nil {
		return view, true, nil
	}
	if !errors.Is(err, cache.ErrContentNotCached) {
		// 缓存故障只记日志，读路径直接回源
		repo.logger.Error("查询内容缓存失败",
			elog.Int64("lid", id),
			elog.FieldErr(err))
	}
	l, err := repo.dao.FindById(ctx, id)
	if err != nil {
		return domain.ContentView{}, false, err
	}
	// 投影从同一行数据推导，版本取行里的值。
	// 就算 Version 查完之后版本推进了，这里也只会写到新版本的 key 下
	view = repo.toView(l)
	if err := repo.cache.SetContent(ctx, view); err != nil {
		repo.logger.Error("回填内容缓存失败",
			elog.Int64("lid", id),
			elog.FieldErr(err))
	}
	return view, false, nil
}

func (repo *CachedLessonRepository) toView(l dao.Lesson) domain.ContentView {
	var tag struct {
		SchemaVersion int64 `json:"schema_version"`
	}
	// schema_version 缺失时保持零值
	_ = json.Unmarshal([]byte(l.Content), &tag)
	return domain.ContentView{
		LessonId:      l.Id,
		Version:       l.Version,
		Payload:       l.Content,
		SchemaVersion: tag.SchemaVersion,
	}
}

func (repo *CachedLessonRepository) toDomain(l dao.Lesson) domain.Lesson {
	return domain.Lesson{
		Id:       l.Id,
		CourseId: l.CourseId,
		Title:    l.Title,
		Content:  l.Content,
		Version:  l.Version,
	}
}
