package rule_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/nearzk/ddd-leave-sample/internal/rule"
	"github.com/nearzk/ddd-leave-sample/internal/rule/mock"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newRuleRouter(svc rule.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	rule.RegisterRoutes(r.Group("/api/v1"), rule.NewHandler(svc))
	return r
}

func TestRuleHandler_Configure(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mock.NewMockService(ctrl)
	r := newRuleRouter(svc)

	t.Run("success", func(t *testing.T) {
		svc.EXPECT().Configure(gomock.Any(), "STAFF", "ANNUAL", 2).Return(nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/api/v1/approval-rules",
			strings.NewReader(`{"person_type":"STAFF","leave_type":"ANNUAL","leader_max_level":2}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"leader_max_level":2`)
	})

	t.Run("negative validation error", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/api/v1/approval-rules",
			strings.NewReader(`{"person_type":"STAFF","leave_type":"HOLIDAY","leader_max_level":0}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "VALIDATION_ERROR")
	})
}

func TestRuleHandler_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mock.NewMockService(ctrl)
	r := newRuleRouter(svc)

	t.Run("success", func(t *testing.T) {
		svc.EXPECT().LeaderMaxLevel(gomock.Any(), "STAFF", "SICK").Return(3, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/approval-rules?person_type=STAFF&leave_type=SICK", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"leader_max_level":3`)
	})

	t.Run("negative missing query", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/approval-rules?person_type=STAFF", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("negative repository error", func(t *testing.T) {
		svc.EXPECT().LeaderMaxLevel(gomock.Any(), "STAFF", "SICK").Return(0, errors.New("db down"))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/approval-rules?person_type=STAFF&leave_type=SICK", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
