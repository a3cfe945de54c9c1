package cookie_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studykit/studykit/pkg/cookie"
)

const (
	secretA = "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"
	secretB = "bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb"
)

func requestWithCookies(w *httptest.ResponseRecorder) *http.Request {
	r := httptest.NewRequest("GET", "/", nil)
	for _, c := range w.Result().Cookies() {
		r.AddCookie(c)
	}
	return r
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("requires a secret", func(t *testing.T) {
		t.Parallel()
		_, err := cookie.New(nil)
		assert.ErrorIs(t, err, cookie.ErrNoSecret)

		_, err = cookie.New([]string{""})
		assert.ErrorIs(t, err, cookie.ErrNoSecret)
	})

	t.Run("rejects short secrets", func(t *testing.T) {
		t.Parallel()
		_, err := cookie.New([]string{"short"})
		assert.ErrorIs(t, err, cookie.ErrSecretTooShort)

		_, err = cookie.New([]string{secretA, "short"})
		assert.ErrorIs(t, err, cookie.ErrSecretTooShort)
	})
}

func TestPlainCookies(t *testing.T) {
	t.Parallel()

	manager, err := cookie.New([]string{secretA})
	require.NoError(t, err)

	t.Run("set and get", func(t *testing.T) {
		t.Parallel()
		w := httptest.NewRecorder()
		manager.Set(w, "theme", "dark")

		got, err := manager.Get(requestWithCookies(w), "theme")
		require.NoError(t, err)
		assert.Equal(t, "dark", got)
	})

	t.Run("defaults applied", func(t *testing.T) {
		t.Parallel()
		w := httptest.NewRecorder()
		manager.Set(w, "theme", "dark")

		cookies := w.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, "/", cookies[0].Path)
		assert.True(t, cookies[0].HttpOnly)
		assert.Equal(t, http.SameSiteLaxMode, cookies[0].SameSite)
	})

	t.Run("per-call overrides", func(t *testing.T) {
		t.Parallel()
		w := httptest.NewRecorder()
		manager.Set(w, "theme", "dark",
			cookie.WithPath("/app"),
			cookie.WithMaxAge(3600),
			cookie.WithSecure(true),
			cookie.WithSameSite(http.SameSiteStrictMode),
		)

		cookies := w.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, "/app", cookies[0].Path)
		assert.Equal(t, 3600, cookies[0].MaxAge)
		assert.True(t, cookies[0].Secure)
		assert.Equal(t, http.SameSiteStrictMode, cookies[0].SameSite)
	})

	t.Run("missing cookie", func(t *testing.T) {
		t.Parallel()
		_, err := manager.Get(httptest.NewRequest("GET", "/", nil), "absent")
		assert.ErrorIs(t, err, cookie.ErrCookieNotFound)
	})

	t.Run("delete expires immediately", func(t *testing.T) {
		t.Parallel()
		w := httptest.NewRecorder()
		manager.Delete(w, "theme")

		cookies := w.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, -1, cookies[0].MaxAge)
		assert.Empty(t, cookies[0].Value)
	})
}

func TestSignedCookies(t *testing.T) {
	t.Parallel()

	manager, err := cookie.New([]string{secretA})
	require.NoError(t, err)

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()
		w := httptest.NewRecorder()
		require.NoError(t, manager.SetSigned(w, "sid", "token-value"))

		got, err := manager.GetSigned(requestWithCookies(w), "sid")
		require.NoError(t, err)
		assert.Equal(t, "token-value", got)
	})

	t.Run("tampered value rejected", func(t *testing.T) {
		t.Parallel()
		w := httptest.NewRecorder()
		require.NoError(t, manager.SetSigned(w, "sid", "token-value"))

		cookies := w.Result().Cookies()
		require.Len(t, cookies, 1)

		_, signature, ok := strings.Cut(cookies[0].Value, "|")
		require.True(t, ok)

		r := httptest.NewRequest("GET", "/", nil)
		r.AddCookie(&http.Cookie{Name: "sid", Value: "dGFtcGVyZWQ=|" + signature})

		_, err := manager.GetSigned(r, "sid")
		assert.ErrorIs(t, err, cookie.ErrInvalidSignature)
	})

	t.Run("malformed value rejected", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest("GET", "/", nil)
		r.AddCookie(&http.Cookie{Name: "sid", Value: "no-separator"})

		_, err := manager.GetSigned(r, "sid")
		assert.ErrorIs(t, err, cookie.ErrInvalidFormat)
	})

	t.Run("foreign secret rejected", func(t *testing.T) {
		t.Parallel()
		foreign, err := cookie.New([]string{secretB})
		require.NoError(t, err)

		w := httptest.NewRecorder()
		require.NoError(t, foreign.SetSigned(w, "sid", "token-value"))

		_, err = manager.GetSigned(requestWithCookies(w), "sid")
		assert.ErrorIs(t, err, cookie.ErrInvalidSignature)
	})

	t.Run("rotated secret still verifies", func(t *testing.T) {
		t.Parallel()
		old, err := cookie.New([]string{secretB})
		require.NoError(t, err)
		rotated, err := cookie.New([]string{secretA, secretB})
		require.NoError(t, err)

		w := httptest.NewRecorder()
		require.NoError(t, old.SetSigned(w, "sid", "token-value"))

		got, err := rotated.GetSigned(requestWithCookies(w), "sid")
		require.NoError(t, err)
		assert.Equal(t, "token-value", got)
	})

	t.Run("new cookies signed with primary secret", func(t *testing.T) {
		t.Parallel()
		rotated, err := cookie.New([]string{secretA, secretB})
		require.NoError(t, err)
		primaryOnly, err := cookie.New([]string{secretA})
		require.NoError(t, err)

		w := httptest.NewRecorder()
		require.NoError(t, rotated.SetSigned(w, "sid", "token-value"))

		got, err := primaryOnly.GetSigned(requestWithCookies(w), "sid")
		require.NoError(t, err)
		assert.Equal(t, "token-value", got)
	})
}
