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
	"encoding/json"
	"errors"

	"github.com/ecodeclub/studyhub/internal/lesson/internal/domain"
	"github.com/ecodeclub/studyhub/internal/lesson/internal/repository"
)

var (
	ErrLessonNotFound = repository.ErrLessonNotFound
	ErrInvalidContent = errors.New("内容不是合法的 JSON 文档")
)

//go:generate mockgen -source=./lesson.go -destination=../../mocks/lesson.mock.go -package=lessonmocks -typed=true LessonService
type LessonService interface {
	// Content 读内容投影，第二个返回值表示是否命中缓存
	Content(ctx context.Context, id int64) (domain.ContentView, bool, error)
	Save(ctx context.Context, l domain.Lesson) (int64, error)
	UpdateContent(ctx context.Context, id int64, content string) error
	Detail(ctx context.Context, id int64) (domain.Lesson, error)
}

type lessonService struct {
	repo repository.LessonRepository
}

func NewLessonService(repo repository.LessonRepository) LessonService {
	return &lessonService{repo: repo}
}

func (svc *lessonService) Content(ctx context.Context, id int64) (domain.ContentView, bool, error) {
	return svc.repo.Content(ctx, id)
}

func (svc *lessonService) Save(ctx context.Context, l domain.Lesson) (int64, error) {
	if l.Content != "" && !json.Valid([]byte(l.Content)) {
		return 0, ErrInvalidContent
	}
	return svc.repo.Create(ctx, l)
}

func (svc *lessonService) UpdateContent(ctx context.Context, id int64, content string) error {
	if !json.Valid([]byte(content)) {
		return ErrInvalidContent
	}
	return svc.repo.UpdateContent(ctx, id, content)
}

func (svc *lessonService) Detail(ctx context.Context, id int64) (domain.Lesson, error) {
	return svc.repo.FindById(ctx, id)
}
