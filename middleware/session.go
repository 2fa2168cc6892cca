package middleware

import (
	"net/http"
	"strconv"

	"price_tag_app_go/config"
	"price_tag_app_go/services"

	"github.com/labstack/echo/v4"
)

const (
	// WorkspaceCookieName is the cookie that binds a browser to its workspace
	WorkspaceCookieName = "price_tag_workspace"
	// ViewportCookieName carries the browser window width written by scale.js
	ViewportCookieName = "price_tag_viewport"
	// WorkspaceIDKey is the context key for the workspace id
	WorkspaceIDKey = "workspace_id"
	// WorkspaceKey is the context key for the workspace snapshot taken on entry
	WorkspaceKey = "workspace"
)

// Workspace binds every request to an editor workspace, opening a fresh one
// (and setting the cookie) when the browser has none or it has expired
func Workspace(store *services.WorkspaceStore) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := ""
			if cookie, err := c.Cookie(WorkspaceCookieName); err == nil {
				id = cookie.Value
			}

			snap, created := store.GetOrCreate(id)
			if created {
				setWorkspaceCookie(c, snap.ID)
			}

			c.Set(WorkspaceIDKey, snap.ID)
			c.Set(WorkspaceKey, snap)

			return next(c)
		}
	}
}

// GetWorkspaceID returns the workspace id bound to the request
func GetWorkspaceID(c echo.Context) string {
	id, _ := c.Get(WorkspaceIDKey).(string)
	return id
}

// GetWorkspace returns the snapshot taken when the request entered
func GetWorkspace(c echo.Context) (services.WorkspaceSnapshot, bool) {
	snap, ok := c.Get(WorkspaceKey).(services.WorkspaceSnapshot)
	return snap, ok
}

// GetViewportWidth returns the last window width reported by the browser
func GetViewportWidth(c echo.Context) (float64, bool) {
	cookie, err := c.Cookie(ViewportCookieName)
	if err != nil {
		return 0, false
	}
	width, err := strconv.ParseFloat(cookie.Value, 64)
	if err != nil || width <= 0 {
		return 0, false
	}
	return width, true
}

func setWorkspaceCookie(c echo.Context, id string) {
	var isProduction bool
	if cfg, ok := c.Get("config").(*config.Config); ok {
		isProduction = cfg.IsProduction()
	}

	c.SetCookie(&http.Cookie{
		Name:     WorkspaceCookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		Secure:   isProduction,
		SameSite: http.SameSiteLaxMode,
	})
}
