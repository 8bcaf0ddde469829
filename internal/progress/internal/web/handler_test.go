package web

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ecodeclub/studyhub/internal/progress/internal/domain"
	"github.com/ecodeclub/studyhub/internal/progress/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProgressService struct {
	id  int64
	err error
}

func (f *fakeProgressService) Submit(ctx context.Context, sub domain.Submission) (int64, error) {
	return f.id, f.err
}

func newSubmitServer(svc service.ProgressService) *gin.Engine {
	server := gin.New()
	noLimit := func(ctx *gin.Context) {}
	NewHandler(svc, noLimit).PublicRoutes(server)
	return server
}

func TestHandler_Submit(t *testing.T) {
	testCases := []struct {
		name       string
		svc        service.ProgressService
		body       string
		wantCode   int
		wantId     int64
		wantErrMsg string
	}{
		{
			name:     "提交成功",
			svc:      &fakeProgressService{id: 7},
			body:     `{"submitterId":1,"targetId":2,"attemptId":"abc","score":0.8}`,
			wantCode: http.StatusOK,
			wantId:   7,
		},
		{
			name:       "非 JSON 载荷",
			svc:        &fakeProgressService{},
			body:       "not json",
			wantCode:   http.StatusBadRequest,
			wantErrMsg: "JSON payload required",
		},
		{
			name:       "缺少提交人或目标",
			svc:        &fakeProgressService{},
			body:       `{"attemptId":"abc"}`,
			wantCode:   http.StatusBadRequest,
			wantErrMsg: "submitterId and targetId required",
		},
		{
			name:       "提交人不存在",
			svc:        &fakeProgressService{err: service.ErrSubmitterNotFound},
			body:       `{"submitterId":99,"targetId":2}`,
			wantCode:   http.StatusBadRequest,
			wantErrMsg: "submitter or target not found",
		},
		{
			name:       "重复提交",
			svc:        &fakeProgressService{err: service.ErrDuplicatedSubmission},
			body:       `{"submitterId":1,"targetId":2,"attemptId":"abc"}`,
			wantCode:   http.StatusConflict,
			wantErrMsg: "duplicate submission",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			server := newSubmitServer(tc.svc)
			req := httptest.NewRequest(http.MethodPost, "/progress",
				bytes.NewBufferString(tc.body))
			req.Header.Set("Content-Type", "application/json")
			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, req)

			assert.Equal(t, tc.wantCode, recorder.Code)
			var resp SubmitResp
			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
			if tc.wantCode == http.StatusOK {
				assert.True(t, resp.Success)
				assert.Equal(t, tc.wantId, resp.Id)
			} else {
				assert.False(t, resp.Success)
				assert.Equal(t, tc.wantErrMsg, resp.Error)
			}
		})
	}
}
