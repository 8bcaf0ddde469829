package dao

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormMysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func TestGORMLessonDAO_UpdateContent(t *testing.T) {
	testCases := []struct {
		name    string
		ctx     context.Context
		id      int64
		mock    func(t *testing.T) *sql.DB
		wantErr error
	}{
		{
			name: "更新成功，版本 +1",
			ctx:  context.Background(),
			id:   1,
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				// 版本号必须在同一条 UPDATE 里原子推进
				mock.ExpectExec("UPDATE `lessons` SET .*`version`=`version` \\+ 1.*").
					WillReturnResult(sqlmock.NewResult(0, 1))
				return mockDB
			},
		},
		{
			name: "课程不存在",
			ctx:  context.Background(),
			id:   2,
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectExec("UPDATE `lessons` .*").
					WillReturnResult(sqlmock.NewResult(0, 0))
				return mockDB
			},
			wantErr: ErrRecordNotFound,
		},
		{
			name: "数据库错误",
			ctx:  context.Background(),
			id:   3,
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectExec("UPDATE `lessons` .*").
					WillReturnError(errors.New("数据库错误"))
				return mockDB
			},
			wantErr: errors.New("数据库错误"),
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
			d := NewGORMLessonDAO(db)
			err = d.UpdateContent(tc.ctx, tc.id, `{"title":"t"}`)
			assert.Equal(t, tc.wantErr, err)
		})
	}
}

func TestGORMLessonDAO_Version(t *testing.T) {
	testCases := []struct {
		name        string
		ctx         context.Context
		mock        func(t *testing.T) *sql.DB
		wantVersion int64
		wantErr     error
	}{
		{
			name: "查版本成功",
			ctx:  context.Background(),
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				rows := sqlmock.NewRows([]string{"id", "version"})
				rows.AddRow(1, 4)
				mock.ExpectQuery("SELECT .* FROM `lessons` .*").
					WillReturnRows(rows)
				return mockDB
			},
			wantVersion: 4,
		},
		{
			name: "课程不存在",
			ctx:  context.Background(),
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				rows := sqlmock.NewRows([]string{"id", "version"})
				mock.ExpectQuery("SELECT .* FROM `lessons` .*").
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
			d := NewGORMLessonDAO(db)
			version, err := d.Version(tc.ctx, 1)
			assert.Equal(t, tc.wantErr, err)
			assert.Equal(t, tc.wantVersion, version)
		})
	}
}
