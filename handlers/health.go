package handlers

import (
	"net/http"

	"price_tag_app_go/services"

	"github.com/labstack/echo/v4"
)

// HealthHandler reports liveness plus the state of the shared background
func HealthHandler(store *services.WorkspaceStore, background *services.BackgroundLoader) echo.HandlerFunc {
	return func(c echo.Context) error {
		status := map[string]interface{}{
			"status": "ok",
		}
		if store != nil {
			status["workspaces"] = store.Len()
		}
		if background != nil {
			status["background"] = background.State().String()
		}
		return c.JSON(http.StatusOK, status)
	}
}
