package core

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/marmotedu/errors"
	"github.com/stretchr/testify/assert"

	"github.com/maxiaolu1981/cretem/usercrud/internal/pkg/code"
)

func TestWriteResponse(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		err        error
		data       interface{}
		wantStatus int
		wantBody   string
	}{
		{
			name:       "success",
			data:       gin.H{"Success": true},
			wantStatus: http.StatusOK,
			wantBody:   `{"Success":true}`,
		},
		{
			name:       "user not found",
			err:        errors.WithCode(code.ErrUserNotFound, "user 9 not found"),
			wantStatus: http.StatusNotFound,
			wantBody:   `{"detail":"User not found"}`,
		},
		{
			name:       "store unavailable",
			err:        errors.WithCode(code.ErrStoreUnavailable, "dial tcp: connection refused"),
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   `{"detail":"Store unavailable"}`,
		},
		{
			name:       "plain error",
			err:        fmt.Errorf("boom"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"detail":"Internal server error"}`,
		},
		{
			name:       "unregistered code",
			err:        errors.WithCode(999999, "mystery"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"detail":"Internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			WriteResponse(c, tt.err, tt.data)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}
