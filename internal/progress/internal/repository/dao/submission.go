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
	"errors"
	"time"

	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

var (
	// ErrDuplicatedSubmission 幂等标识冲突。
	// 预检查和唯一索引都会落到这一个错误上
	ErrDuplicatedSubmission = errors.New("重复的提交")
	ErrRecordNotFound       = gorm.ErrRecordNotFound
)

type SubmissionDAO interface {
	// Insert 单事务写入。唯一索引兜底预检查和写入之间的并发窗口，
	// 冲突翻译成 ErrDuplicatedSubmission
	Insert(ctx context.Context, sub Submission) (int64, error)
	FindByAttempt(ctx context.Context, attemptId string, uid, lessonId int64) (Submission, error)
}

type GORMSubmissionDAO struct {
	db *egorm.Component
}

func NewGORMSubmissionDAO(db *egorm.Component) SubmissionDAO {
	return &GORMSubmissionDAO{db: db}
}

func (dao *GORMSubmissionDAO) Insert(ctx context.Context, sub Submission) (int64, error) {
	sub.Ctime = time.Now().UnixMilli()
	err := dao.db.WithContext(ctx).Create(&sub).Error
	if err != nil {
		var me *mysql.MySQLError
		if errors.As(err, &me) {
			const uniqueIndexErrNo uint16 = 1062
			if me.Number == uniqueIndexErrNo {
				return 0, ErrDuplicatedSubmission
			}
		}
		return 0, err
	}
	return sub.Id, nil
}

func (dao *GORMSubmissionDAO) FindByAttempt(ctx context.Context, attemptId string, uid, lessonId int64) (Submission, error) {
	var sub Submission
	err := dao.db.WithContext(ctx).
		Where("attempt_id = ? AND uid = ? AND lesson_id = ?", attemptId, uid, lessonId).
		First(&sub).Error
	return sub, err
}

type Submission struct {
	Id  int64 `gorm:"primaryKey,autoIncrement"`
	Uid int64 `gorm:"uniqueIndex:uid_lesson_attempt;index"`
	// LessonId 提交目标
	LessonId int64 `gorm:"uniqueIndex:uid_lesson_attempt;index"`
	// AttemptId 为 NULL 时不参与唯一约束，
	// MySQL 的唯一索引对 NULL 不去重，匿名提交互不冲突
	AttemptId sql.NullString `gorm:"type:varchar(255);uniqueIndex:uid_lesson_attempt"`
	Score     float64
	// TimeSpent 用时，秒
	TimeSpent int64
	Answers   string `gorm:"type:json"`
	Ctime     int64
}
