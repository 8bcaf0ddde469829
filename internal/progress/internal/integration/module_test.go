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

//go:build e2e

package integration

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/ecodeclub/studyhub/internal/lesson"
	"github.com/ecodeclub/studyhub/internal/progress"
	"github.com/ecodeclub/studyhub/internal/progress/internal/integration/startup"
	testioc "github.com/ecodeclub/studyhub/internal/test/ioc"
	"github.com/ecodeclub/studyhub/internal/user"
	"github.com/ego-component/egorm"
	"github.com/lithammer/shortuuid/v4"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"golang.org/x/sync/errgroup"
)

func TestProgressModule(t *testing.T) {
	suite.Run(t, new(ModuleTestSuite))
}

type ModuleTestSuite struct {
	suite.Suite
	db       *egorm.Component
	svc      progress.Service
	uid      int64
	lessonId int64
}

func (s *ModuleTestSuite) SetupSuite() {
	s.db = testioc.InitDB()
	modules, err := startup.InitModules()
	require.NoError(s.T(), err)
	s.svc = modules.Progress.Svc

	ctx := context.Background()
	s.uid, err = modules.User.Svc.Signup(ctx, user.User{
		Email:    shortuuid.New() + "@example.com",
		Password: "hello#world123",
	})
	require.NoError(s.T(), err)
	s.lessonId, err = modules.Lesson.Svc.Save(ctx, lesson.Lesson{
		CourseId: 1,
		Title:    "提交目标",
		Content:  `{"schema_version": 1}`,
	})
	require.NoError(s.T(), err)
}

func (s *ModuleTestSuite) TearDownSuite() {
	err := s.db.Exec("DROP TABLE `submissions`").Error
	require.NoError(s.T(), err)
}

func (s *ModuleTestSuite) TearDownTest() {
	err := s.db.Exec("TRUNCATE TABLE `submissions`").Error
	require.NoError(s.T(), err)
}

func (s *ModuleTestSuite) TestConcurrentDuplicatesExactlyOneWins() {
	t := s.T()
	attemptId := shortuuid.New()
	sub := progress.Submission{
		Uid:       s.uid,
		LessonId:  s.lessonId,
		AttemptId: attemptId,
		Score:     0.8,
		Answers:   `{"q1": "a"}`,
	}

	const concurrency = 10
	var succeeded, duplicated int64
	var eg errgroup.Group
	for i := 0; i < concurrency; i++ {
		eg.Go(func() error {
			_, err := s.svc.Submit(context.Background(), sub)
			switch {
			case err == nil:
				atomic.AddInt64(&succeeded, 1)
				return nil
			case errors.Is(err, progress.ErrDuplicatedSubmission):
				atomic.AddInt64(&duplicated, 1)
				return nil
			default:
				return err
			}
		})
	}
	require.NoError(t, eg.Wait())
	require.Equal(t, int64(1), succeeded)
	require.Equal(t, int64(concurrency-1), duplicated)

	var count int64
	err := s.db.Table("submissions").
		Where("attempt_id = ?", attemptId).Count(&count).Error
	require.NoError(t, err)
	require.Equal(t, int64(1), count)
}

func (s *ModuleTestSuite) TestRetryAfterSuccessIsRejected() {
	t := s.T()
	ctx := context.Background()
	sub := progress.Submission{
		Uid:       s.uid,
		LessonId:  s.lessonId,
		AttemptId: shortuuid.New(),
	}

	id, err := s.svc.Submit(ctx, sub)
	require.NoError(t, err)
	require.True(t, id > 0)

	_, err = s.svc.Submit(ctx, sub)
	require.ErrorIs(t, err, progress.ErrDuplicatedSubmission)
}

func (s *ModuleTestSuite) TestAnonymousAttemptsNeverCollide() {
	t := s.T()
	ctx := context.Background()
	sub := progress.Submission{
		Uid:      s.uid,
		LessonId: s.lessonId,
	}

	_, err := s.svc.Submit(ctx, sub)
	require.NoError(t, err)
	_, err = s.svc.Submit(ctx, sub)
	require.NoError(t, err)

	var count int64
	err = s.db.Table("submissions").
		Where("uid = ? AND lesson_id = ?", s.uid, s.lessonId).Count(&count).Error
	require.NoError(t, err)
	require.Equal(t, int64(2), count)
}

func (s *ModuleTestSuite) TestUnknownSubmitterRejected() {
	t := s.T()
	_, err := s.svc.Submit(context.Background(), progress.Submission{
		Uid:      99999999,
		LessonId: s.lessonId,
	})
	require.ErrorIs(t, err, progress.ErrSubmitterNotFound)
}
