package main

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"price_tag_app_go/config"
	"price_tag_app_go/middleware"
	"price_tag_app_go/services"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupServer(t *testing.T) (*echo.Echo, *services.WorkspaceStore) {
	t.Helper()
	cfg := &config.Config{Environment: "test", AllowedOrigins: []string{"*"}}
	store := services.NewWorkspaceStore(time.Hour, zap.NewNop())
	background := services.NewBackgroundLoader("https://example.com/base.jpg", services.BackgroundOptions{Embed: false})
	limiter := middleware.NewRateLimiter(middleware.RateLimitConfig{Requests: 1, Window: time.Minute})
	t.Cleanup(limiter.Stop)

	return newServer(cfg, zap.NewNop(), store, background, limiter), store
}

func responseCookie(t *testing.T, rec *httptest.ResponseRecorder, name string) *http.Cookie {
	t.Helper()
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == name {
			return cookie
		}
	}
	t.Fatalf("cookie %s not set", name)
	return nil
}

// openEditor loads the editor and returns a function that binds follow-up
// requests to the same workspace and CSRF token
func openEditor(t *testing.T, e *echo.Echo) func(*http.Request) {
	t.Helper()
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	workspace := responseCookie(t, rec, middleware.WorkspaceCookieName)
	csrf := responseCookie(t, rec, middleware.CSRFCookieName)
	return func(req *http.Request) {
		req.AddCookie(workspace)
		req.AddCookie(csrf)
		req.Header.Set(middleware.CSRFHeader, csrf.Value)
	}
}

func TestServerEditorFlow(t *testing.T) {
	e, store := setupServer(t)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Security-Policy"), "script-src 'self' 'nonce-")
	assert.Contains(t, rec.Body.String(), "https://example.com/base.jpg")
	assert.Contains(t, rec.Body.String(), "hx-headers=")
	assert.Equal(t, 1, store.Len())

	bind := openEditor(t, e)
	assert.Equal(t, 2, store.Len())

	form := url.Values{"mode": {"4x"}}
	req := httptest.NewRequest(http.MethodPost, "/htmx/mode", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	bind(req)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 4, strings.Count(rec.Body.String(), `class="tag-cell"`))

	req = httptest.NewRequest(http.MethodGet, "/print", nil)
	bind(req)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `data-target="print"`)
	assert.Equal(t, 4, strings.Count(rec.Body.String(), `class="tag-cell"`))
	assert.Equal(t, 2, store.Len(), "the cookie keeps the same workspace")
}

func TestServerRejectsMutationWithoutCSRFToken(t *testing.T) {
	e, _ := setupServer(t)
	bind := openEditor(t, e)

	form := url.Values{"mode": {"2x"}}
	req := httptest.NewRequest(http.MethodPost, "/htmx/mode", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	bind(req)
	req.Header.Del(middleware.CSRFHeader)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Contains(t, []int{http.StatusBadRequest, http.StatusForbidden}, rec.Code)
}

func TestServerHealthz(t *testing.T) {
	e, _ := setupServer(t)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"background":"fallback"`)
	assert.Empty(t, rec.Result().Cookies(), "health checks do not open workspaces")
}

func TestServerImportIsRateLimited(t *testing.T) {
	e, _ := setupServer(t)

	bind := openEditor(t, e)

	codes := make([]int, 2)
	for i := range codes {
		req := httptest.NewRequest(http.MethodPost, "/api/tags/import", nil)
		req.Header.Set("HX-Request", "true")
		bind(req)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		codes[i] = rec.Code
	}

	assert.Equal(t, http.StatusOK, codes[0], "first attempt reaches the handler")
	assert.Equal(t, http.StatusTooManyRequests, codes[1])
}
