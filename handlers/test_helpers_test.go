package handlers

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"price_tag_app_go/config"
	"price_tag_app_go/middleware"
	"price_tag_app_go/services"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testBackground = "data:image/png;base64,iVBORw0KGgo="

func setupHandler(t *testing.T) (*EditorHandler, *services.WorkspaceStore, services.WorkspaceSnapshot) {
	t.Helper()
	store := services.NewWorkspaceStore(time.Hour, zap.NewNop())
	background := services.NewBackgroundLoader(testBackground, services.BackgroundOptions{Embed: true})
	require.Equal(t, services.BackgroundEmbedded, background.State())

	return NewEditorHandler(store, background, zap.NewNop()), store, store.Create()
}

func setupEcho(method, path string, body io.Reader) (*echo.Echo, echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, path, body)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	// Add config to context
	c.Set("config", &config.Config{
		Environment: "test",
	})

	return e, c, rec
}

func bindWorkspace(c echo.Context, snap services.WorkspaceSnapshot) {
	c.Set(middleware.WorkspaceIDKey, snap.ID)
	c.Set(middleware.WorkspaceKey, snap)
}

func httpStatus(t *testing.T, err error) int {
	t.Helper()
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok, "expected *echo.HTTPError, got %T", err)
	return he.Code
}
