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

	"github.com/ecodeclub/studyhub/internal/lesson"
	"github.com/ecodeclub/studyhub/internal/progress/internal/domain"
	"github.com/ecodeclub/studyhub/internal/progress/internal/repository"
	"github.com/ecodeclub/studyhub/internal/user"
)

var (
	ErrDuplicatedSubmission = repository.ErrDuplicatedSubmission
	ErrSubmitterNotFound    = errors.New("提交人不存在")
	ErrTargetNotFound       = errors.New("课程不存在")
)

//go:generate mockgen -source=./progress.go -destination=../../mocks/progress.mock.go -package=progressmocks -typed=true ProgressService
type ProgressService interface {
	// Submit 幂等提交。同一个 (uid, lessonId, attemptId) 并发提交 N 次，
	// 恰好一次成功，其余返回 ErrDuplicatedSubmission
	Submit(ctx context.Context, sub domain.Submission) (int64, error)
}

type progressService struct {
	repo      repository.SubmissionRepository
	userSvc   user.Service
	lessonSvc lesson.Service
}

func NewProgressService(repo repository.SubmissionRepository,
	userSvc user.Service,
	lessonSvc lesson.Service) ProgressService {
	return &progressService{
		repo:      repo,
		userSvc:   userSvc,
		lessonSvc: lessonSvc,
	}
}

func (svc *progressService) Submit(ctx context.Context, sub domain.Submission) (int64, error) {
	_, err := svc.userSvc.Profile(ctx, sub.Uid)
	if errors.Is(err, user.ErrUserNotFound) {
		return 0, ErrSubmitterNotFound
	}
	if err != nil {
		return 0, err
	}
	_, err = svc.lessonSvc.Detail(ctx, sub.LessonId)
	if errors.Is(err, lesson.ErrLessonNotFound) {
		return 0, ErrTargetNotFound
	}
	if err != nil {
		return 0, err
	}
	if sub.AttemptId != "" {
		// 快路径：查到同样的幂等标识就直接拒绝，不发起写。
		// 查不到也不代表能写成功，唯一索引才是正确性保证
		_, err := svc.repo.FindByAttempt(ctx, sub.AttemptId, sub.Uid, sub.LessonId)
		switch {
		case err == nil:
			return 0, ErrDuplicatedSubmission
		case errors.Is(err, repository.ErrRecordNotFound):
		default:
			return 0, err
		}
	}
	return svc.repo.Create(ctx, sub)
}
