package session

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentity_MintsAndReusesNamespace(t *testing.T) {
	id := NewIdentity([]byte("0123456789abcdef0123456789abcdef"), false)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	first, err := id.Namespace(w, r)
	require.NoError(t, err)
	assert.NotEmpty(t, first)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)

	r2 := httptest.NewRequest(http.MethodGet, "/", nil)
	r2.AddCookie(cookies[0])
	w2 := httptest.NewRecorder()
	second, err := id.Namespace(w2, r2)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Empty(t, w2.Result().Cookies())
}

func TestIdentity_TamperedCookieGetsFreshNamespace(t *testing.T) {
	id := NewIdentity([]byte("0123456789abcdef0123456789abcdef"), false)

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(&http.Cookie{Name: cookieName, Value: "forged"})
	w := httptest.NewRecorder()
	ns, err := id.Namespace(w, r)
	require.NoError(t, err)
	assert.NotEmpty(t, ns)
	assert.Len(t, w.Result().Cookies(), 1)
}
