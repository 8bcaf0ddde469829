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

	"github.com/ecodeclub/studyhub/internal/progress/internal/domain"
	"github.com/ecodeclub/studyhub/internal/progress/internal/repository/dao"
)

var (
	ErrDuplicatedSubmission = dao.ErrDuplicatedSubmission
	ErrRecordNotFound       = dao.ErrRecordNotFound
)

type SubmissionRepository interface {
	Create(ctx context.Context, sub domain.Submission) (int64, error)
	FindByAttempt(ctx context.Context, attemptId string, uid, lessonId int64) (domain.Submission, error)
}

type submissionRepository struct {
	dao dao.SubmissionDAO
}

func NewSubmissionRepository(d dao.SubmissionDAO) SubmissionRepository {
	return &submissionRepository{dao: d}
}

func (repo *submissionRepository) Create(ctx context.Context, sub domain.Submission) (int64, error) {
	return repo.dao.Insert(ctx, repo.toEntity(sub))
}

func (repo *submissionRepository) FindByAttempt(ctx context.Context, attemptId string, uid, lessonId int64) (domain.Submission, error) {
	sub, err := repo.dao.FindByAttempt(ctx, attemptId, uid, lessonId)
	if err != nil {
		return domain.Submission{}, err
	}
	return repo.toDomain(sub), nil
}

func (repo *submissionRepository) toEntity(sub domain.Submission) dao.Submission {
	return dao.Submission{
		Id:       sub.Id,
		Uid:      sub.Uid,
		LessonId: sub.LessonId,
		// 空字符串落库为 NULL，避开唯一约束
		AttemptId: sql.NullString{
			String: sub.AttemptId,
			Valid:  sub.AttemptId != "",
		},
		Score:     sub.Score,
		TimeSpent: sub.TimeSpent,
		Answers:   sub.Answers,
	}
}

func (repo *submissionRepository) toDomain(sub dao.Submission) domain.Submission {
	return domain.Submission{
		Id:        sub.Id,
		Uid:       sub.Uid,
		LessonId:  sub.LessonId,
		AttemptId: sub.AttemptId.String,
		Score:     sub.Score,
		TimeSpent: sub.TimeSpent,
		Answers:   sub.Answers,
	}
}
