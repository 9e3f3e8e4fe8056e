package user

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/marmotedu/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxiaolu1981/cretem/usercrud/internal/apiserver/store"
	"github.com/maxiaolu1981/cretem/usercrud/internal/apiserver/store/fake"
	"github.com/maxiaolu1981/cretem/usercrud/internal/pkg/code"
	v1 "github.com/maxiaolu1981/cretem/usercrud/pkg/api/apiserver/v1"
)

func newTestEngine(factory store.Factory) *gin.Engine {
	gin.SetMode(gin.TestMode)

	g := gin.New()
	ctrl := NewUserController(factory)
	users := g.Group("/users")
	users.GET("", ctrl.List)
	users.POST("", ctrl.Create)
	users.GET(":id", ctrl.Get)
	users.PUT(":id", ctrl.Update)
	users.DELETE(":id", ctrl.Delete)

	return g
}

func do(g *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	g.ServeHTTP(w, req)

	return w
}

func TestUserController(t *testing.T) {
	g := newTestEngine(fake.New())

	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		wantStatus int
		wantBody   string
	}{
		{"empty list", http.MethodGet, "/users", "", http.StatusOK, `[]`},
		{"create", http.MethodPost, "/users", `{"name":"Test User"}`, http.StatusOK, `{"id":1,"name":"Test User"}`},
		{"create empty name", http.MethodPost, "/users", `{"name":""}`, http.StatusOK, `{"id":2,"name":""}`},
		{"get", http.MethodGet, "/users/1", "", http.StatusOK, `{"id":1,"name":"Test User"}`},
		{"list", http.MethodGet, "/users", "", http.StatusOK, `[{"id":1,"name":"Test User"},{"id":2,"name":""}]`},
		{"get missing", http.MethodGet, "/users/9999", "", http.StatusNotFound, `{"detail":"User not found"}`},
		{"update", http.MethodPut, "/users/1", `{"name":"New Name"}`, http.StatusOK, `{"id":1,"name":"New Name"}`},
		{"update missing", http.MethodPut, "/users/9999", `{"name":"New Name"}`, http.StatusNotFound, `{"detail":"User not found"}`},
		{"delete", http.MethodDelete, "/users/1", "", http.StatusOK, `{"Success":true}`},
		{"delete again", http.MethodDelete, "/users/1", "", http.StatusNotFound, `{"detail":"User not found"}`},
		{"get deleted", http.MethodGet, "/users/1", "", http.StatusNotFound, `{"detail":"User not found"}`},
		{"create missing name", http.MethodPost, "/users", `{}`, http.StatusUnprocessableEntity, `{"detail":"Validation failed"}`},
		{"create malformed", http.MethodPost, "/users", `{"name":`, http.StatusUnprocessableEntity, `{"detail":"Error occurred while binding the request body to the struct"}`},
		{"create wrong type", http.MethodPost, "/users", `{"name":42}`, http.StatusUnprocessableEntity, `{"detail":"Error occurred while binding the request body to the struct"}`},
		{"update missing name", http.MethodPut, "/users/2", `{"nom":"x"}`, http.StatusUnprocessableEntity, `{"detail":"Validation failed"}`},
		{"bad id", http.MethodGet, "/users/abc", "", http.StatusUnprocessableEntity, `{"detail":"Validation failed"}`},
		{"negative id", http.MethodDelete, "/users/-1", "", http.StatusNotFound, `{"detail":"User not found"}`},
		{"negative id get", http.MethodGet, "/users/-7", "", http.StatusNotFound, `{"detail":"User not found"}`},
		{"max uint64 id", http.MethodGet, "/users/18446744073709551615", "", http.StatusNotFound, `{"detail":"User not found"}`},
		{"id overflows uint64", http.MethodGet, "/users/18446744073709551616", "", http.StatusUnprocessableEntity, `{"detail":"Validation failed"}`},
	}

	// 用例按顺序共享同一个存储
	for _, tt := range tests {
		w := do(g, tt.method, tt.path, tt.body)
		if !assert.Equal(t, tt.wantStatus, w.Code, tt.name) {
			continue
		}
		assert.JSONEq(t, tt.wantBody, w.Body.String(), tt.name)
	}
}

// unavailableUserStore 模拟数据库不可达。
type unavailableUserStore struct{}

func (unavailableUserStore) err() error {
	return errors.WithCode(code.ErrStoreUnavailable, "dial tcp 127.0.0.1:3306: connect: connection refused")
}

func (s unavailableUserStore) List(context.Context) ([]*v1.User, error) { return nil, s.err() }
func (s unavailableUserStore) Get(context.Context, uint64) (*v1.User, error) {
	return nil, s.err()
}
func (s unavailableUserStore) Create(context.Context, string) (*v1.User, error) {
	return nil, s.err()
}
func (s unavailableUserStore) Update(context.Context, uint64, string) (*v1.User, error) {
	return nil, s.err()
}
func (s unavailableUserStore) Delete(context.Context, uint64) (bool, error) { return false, s.err() }

type unavailableFactory struct{}

func (unavailableFactory) Users() store.UserStore { return unavailableUserStore{} }
func (unavailableFactory) Close() error           { return nil }

func TestStoreUnavailable(t *testing.T) {
	g := newTestEngine(unavailableFactory{})

	requests := []struct {
		method string
		path   string
		body   string
	}{
		{http.MethodGet, "/users", ""},
		{http.MethodGet, "/users/1", ""},
		{http.MethodPost, "/users", `{"name":"x"}`},
		{http.MethodPut, "/users/1", `{"name":"x"}`},
		{http.MethodDelete, "/users/1", ""},
	}

	for _, r := range requests {
		w := do(g, r.method, r.path, r.body)
		require.Equal(t, http.StatusServiceUnavailable, w.Code, "%s %s", r.method, r.path)
		assert.JSONEq(t, `{"detail":"Store unavailable"}`, w.Body.String())
	}
}
