package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/endoclin/admin/internal"
	"github.com/endoclin/admin/internal/session"
	"github.com/endoclin/admin/internal/storage"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRouter(t *testing.T) (*gin.Engine, storage.SessionStore) {
	gin.SetMode(gin.TestMode)
	store, err := storage.NewFileSessionStore(filepath.Join(t.TempDir(), "sessions.json"), internal.NopLogger())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	identity := session.NewIdentity([]byte("0123456789abcdef0123456789abcdef"), false)
	r := gin.New()
	r.Use(SessionMiddleware(identity, store, internal.NopLogger()))
	r.GET("/whoami", func(c *gin.Context) {
		c.String(http.StatusOK, CurrentSession(c).Namespace())
	})
	r.GET("/protected", RequireAuth(), func(c *gin.Context) {
		c.String(http.StatusOK, storage.TokenFromContext(c.Request.Context()))
	})
	return r, store
}

func TestRequireAuth(t *testing.T) {
	r, store := setupRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/whoami", nil))
	require.Equal(t, http.StatusOK, w.Code)
	ns := w.Body.String()
	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(cookies[0])
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	ctx := context.Background()
	require.NoError(t, store.Set(ctx, ns, session.KeyAuthToken, "tok-9"))
	require.NoError(t, store.Set(ctx, ns, session.KeyIsAuthenticated, "true"))

	req = httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(cookies[0])
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "tok-9", w.Body.String())
}
