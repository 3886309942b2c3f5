package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"salonbook/models"
	"salonbook/services/user"
)

type stubUsers struct {
	user.UserService
	sessions map[string]*user.Session
	err      error
}

func (s *stubUsers) Authenticate(_ context.Context, token string) (*user.Session, error) {
	if s.err != nil {
		return nil, s.err
	}
	if session, ok := s.sessions[token]; ok {
		return session, nil
	}
	return nil, user.ErrUnauthorized
}

func newRouter(users user.UserService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := zap.NewNop()
	r := gin.New()
	r.Use(RequestLogger(logger))

	authed := r.Group("/", JWTAuthUserMiddleware(users, logger))
	authed.GET("/me", func(c *gin.Context) {
		session, _ := SessionFrom(c)
		c.JSON(http.StatusOK, gin.H{"userId": c.GetString(ContextUserID), "role": session.Role})
	})
	authed.GET("/admin", JWTAuthAdminMiddleware(logger), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return r
}

func do(r http.Handler, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestJWTAuthUserMiddleware(t *testing.T) {
	users := &stubUsers{sessions: map[string]*user.Session{
		"customer-token": {UserID: "u1", Role: models.RoleCustomer},
	}}
	r := newRouter(users)

	w := do(r, "/me", "customer-token")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"userId":"u1","role":"customer"}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	assert.Equal(t, http.StatusUnauthorized, do(r, "/me", "").Code)
	assert.Equal(t, http.StatusUnauthorized, do(r, "/me", "revoked").Code)
}

func TestJWTAuthUserMiddleware_BackendError(t *testing.T) {
	r := newRouter(&stubUsers{err: errors.New("mongo down")})
	assert.Equal(t, http.StatusInternalServerError, do(r, "/me", "any").Code)
}

func TestJWTAuthAdminMiddleware(t *testing.T) {
	users := &stubUsers{sessions: map[string]*user.Session{
		"customer-token": {UserID: "u1", Role: models.RoleCustomer},
		"admin-token":    {UserID: "a1", Role: models.RoleAdmin},
	}}
	r := newRouter(users)

	assert.Equal(t, http.StatusNoContent, do(r, "/admin", "admin-token").Code)
	assert.Equal(t, http.StatusForbidden, do(r, "/admin", "customer-token").Code)
	assert.Equal(t, http.StatusUnauthorized, do(r, "/admin", "").Code)
}

func TestRateLimiter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rl := NewRateLimiter(2)
	r := gin.New()
	r.Use(rl.Middleware(zap.NewNop()))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	request := func(ip string) int {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Forwarded-For", ip+", 10.0.0.1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, request("1.1.1.1"))
	assert.Equal(t, http.StatusOK, request("1.1.1.1"))
	assert.Equal(t, http.StatusTooManyRequests, request("1.1.1.1"))
	assert.Equal(t, http.StatusOK, request("2.2.2.2"))

	rl.Cleanup()
	assert.Len(t, rl.visitors, 2)
}

func TestRateLimiter_Disabled(t *testing.T) {
	rl := NewRateLimiter(0)
	for i := 0; i < 100; i++ {
		assert.True(t, rl.getLimiter("1.1.1.1").Allow())
	}
}
