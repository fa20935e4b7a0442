package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elitecards/admin-console/internal/session"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	claims := jwt.MapClaims{"sub": "admin-1", "exp": exp.Unix()}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("platform-secret"))
	require.NoError(t, err)
	return token
}

func guardedRouter(store session.Store) *gin.Engine {
	r := gin.New()
	r.GET("/guarded", RequireSession(store), func(c *gin.Context) {
		role, _ := c.Get("user_role")
		c.JSON(http.StatusOK, gin.H{"role": role})
	})
	return r
}

func TestRequireSessionRejectsWhenNotLoggedIn(t *testing.T) {
	r := guardedRouter(session.NewMemoryStore())

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/guarded", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "not logged in")
}

func TestRequireSessionPassesValidToken(t *testing.T) {
	store := session.NewMemoryStore()
	require.NoError(t, store.Set(context.Background(), signedToken(t, time.Now().Add(time.Hour)), "admin"))

	r := guardedRouter(store)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/guarded", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"role":"admin"`)
}

func TestRequireSessionClearsExpiredToken(t *testing.T) {
	store := session.NewMemoryStore()
	require.NoError(t, store.Set(context.Background(), signedToken(t, time.Now().Add(-time.Hour)), "admin"))

	r := guardedRouter(store)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/guarded", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "session expired")

	// The stale credential must be gone so the next login starts clean.
	token, err := store.Token(context.Background())
	require.NoError(t, err)
	assert.Empty(t, token)
}

func TestRequireSessionPassesOpaqueToken(t *testing.T) {
	// Non-JWT credentials carry no local expiry; the upstream service
	// stays the authority on their validity.
	store := session.NewMemoryStore()
	require.NoError(t, store.Set(context.Background(), "opaque-token", "admin"))

	r := guardedRouter(store)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/guarded", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
