package dao

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormMysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func TestGORMSubmissionDAO_Insert(t *testing.T) {
	testCases := []struct {
		name    string
		ctx     context.Context
		sub     Submission
		mock    func(t *testing.T) *sql.DB
		wantId  int64
		wantErr error
	}{
		{
			name: "幂等标识冲突",
			ctx:  context.Background(),
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectExec("INSERT INTO `submissions` .*").
					WillReturnError(&mysql.MySQLError{
						Number: 1062,
					})
				return mockDB
			},
			sub: Submission{
				Uid:       123,
				LessonId:  456,
				AttemptId: sql.NullString{String: "abc", Valid: true},
			},
			wantErr: ErrDuplicatedSubmission,
		},
		{
			name: "数据库错误",
			ctx:  context.Background(),
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectExec("INSERT INTO `submissions` .*").
					WillReturnError(errors.New("数据库错误"))
				return mockDB
			},
			sub:     Submission{},
			wantErr: errors.New("数据库错误"),
		},
		{
			name: "插入成功",
			ctx:  context.Background(),
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectExec("INSERT INTO `submissions` .*").
					WillReturnResult(sqlmock.NewResult(3, 1))
				return mockDB
			},
			sub: Submission{
				Uid:      123,
				LessonId: 456,
			},
			wantId: 3,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			db, err := gorm.Open(gormMysql.New(gormMysql.Config{
				Conn:                      tc.mock(t),
				SkipInitializeWithVersion: true,
			}), &gorm.Config{
				DisableAutomaticPing:   true,
				SkipDefaultTransaction: true,
			})
			require.NoError(t, err)
			d := NewGORMSubmissionDAO(db)
			id, err := d.Insert(tc.ctx, tc.sub)
			assert.Equal(t, tc.wantErr, err)
			assert.Equal(t, tc.wantId, id)
		})
	}
}

func TestGORMSubmissionDAO_FindByAttempt(t *testing.T) {
	testCases := []struct {
		name    string
		ctx     context.Context
		mock    func(t *testing.T) *sql.DB
		wantId  int64
		wantErr error
	}{
		{
			name: "查找成功",
			ctx:  context.Background(),
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				rows := sqlmock.NewRows([]string{"id", "uid", "lesson_id", "attempt_id"})
				rows.AddRow(7, 123, 456, "abc")
				mock.ExpectQuery("SELECT \\* FROM `submissions` .*").
					WillReturnRows(rows)
				return mockDB
			},
			wantId: 7,
		},
		{
			name: "查找不存在",
			ctx:  context.Background(),
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				rows := sqlmock.NewRows([]string{"id", "uid", "lesson_id", "attempt_id"})
				mock.ExpectQuery("SELECT \\* FROM `submissions` .*").
					WillReturnRows(rows)
				return mockDB
			},
			wantErr: gorm.ErrRecordNotFound,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			db, err := gorm.Open(gormMysql.New(gormMysql.Config{
				Conn:                      tc.mock(t),
				SkipInitializeWithVersion: true,
			}), &gorm.Config{
				DisableAutomaticPing:   true,
				SkipDefaultTransaction: true,
			})
			require.NoError(t, err)
			d := NewGORMSubmissionDAO(db)
			sub, err := d.FindByAttempt(tc.ctx, "abc", 123, 456)
			assert.Equal(t, tc.wantErr, err)
			assert.Equal(t, tc.wantId, sub.Id)
		})
	}
}
