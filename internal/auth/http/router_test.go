package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/cursorcraft/cursorcraft-backend/internal/auth"
)

func TestMe(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	Register(r.Group("/auth", auth.OptionalUser()))

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	req.Header.Set("X-User-Id", "bob")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"ok":true,"user_id":"bob","email":"","mode":"header"}`, rr.Body.String())
}

func TestMeUnauthenticated(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	Register(r.Group("/auth"))

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/auth/me", nil))
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}
