package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ecodeclub/studyhub/internal/lesson/internal/domain"
	"github.com/ecodeclub/studyhub/internal/lesson/internal/service"
	lessonmocks "github.com/ecodeclub/studyhub/internal/lesson/mocks"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestHandler_Content(t *testing.T) {
	testCases := []struct {
		name       string
		mock       func(ctrl *gomock.Controller) service.LessonService
		path       string
		wantCode   int
		wantCached bool
		wantErrMsg string
	}{
		{
			name: "缓存命中",
			mock: func(ctrl *gomock.Controller) service.LessonService {
				svc := lessonmocks.NewMockLessonService(ctrl)
				svc.EXPECT().Content(gomock.Any(), int64(1)).Return(domain.ContentView{
					LessonId:      1,
					Version:       2,
					Payload:       `{"schema_version":1}`,
					SchemaVersion: 1,
				}, true, nil)
				return svc
			},
			path:       "/content/1",
			wantCode:   http.StatusOK,
			wantCached: true,
		},
		{
			name: "回源读取",
			mock: func(ctrl *gomock.Controller) service.LessonService {
				svc := lessonmocks.NewMockLessonService(ctrl)
				svc.EXPECT().Content(gomock.Any(), int64(1)).Return(domain.ContentView{
					LessonId: 1,
					Version:  1,
					Payload:  `{}`,
				}, false, nil)
				return svc
			},
			path:     "/content/1",
			wantCode: http.StatusOK,
		},
		{
			name: "非法 id",
			mock: func(ctrl *gomock.Controller) service.LessonService {
				return lessonmocks.NewMockLessonService(ctrl)
			},
			path:       "/content/abc",
			wantCode:   http.StatusBadRequest,
			wantErrMsg: "invalid lesson id",
		},
		{
			name: "课程不存在",
			mock: func(ctrl *gomock.Controller) service.LessonService {
				svc := lessonmocks.NewMockLessonService(ctrl)
				svc.EXPECT().Content(gomock.Any(), int64(42)).
					Return(domain.ContentView{}, false, service.ErrLessonNotFound)
				return svc
			},
			path:       "/content/42",
			wantCode:   http.StatusNotFound,
			wantErrMsg: "lesson not found",
		},
		{
			name: "系统错误",
			mock: func(ctrl *gomock.Controller) service.LessonService {
				svc := lessonmocks.NewMockLessonService(ctrl)
				svc.EXPECT().Content(gomock.Any(), int64(1)).
					Return(domain.ContentView{}, false, errors.New("数据库错误"))
				return svc
			},
			path:       "/content/1",
			wantCode:   http.StatusInternalServerError,
			wantErrMsg: "system error",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			server := gin.New()
			NewHandler(tc.mock(ctrl)).PublicRoutes(server)

			req := httptest.NewRequest(http.MethodGet, tc.path, nil)
			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, req)

			assert.Equal(t, tc.wantCode, recorder.Code)
			var resp ContentResp
			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
			if tc.wantCode == http.StatusOK {
				assert.True(t, resp.Success)
				assert.Equal(t, tc.wantCached, resp.Cached)
				require.NotNil(t, resp.Data)
			} else {
				assert.False(t, resp.Success)
				assert.Equal(t, tc.wantErrMsg, resp.Error)
			}
		})
	}
}
