package handlers

import (
	"net/http"
	"strconv"

	"price_tag_app_go/models"
	"price_tag_app_go/services/layout"

	"github.com/labstack/echo/v4"
)

type viewportJSON struct {
	WindowWidth    float64 `json:"window_width,omitempty"`
	AvailableWidth float64 `json:"available_width,omitempty"`
	Scale          float64 `json:"scale"`
}

type pageStyleJSON struct {
	Width  string  `json:"width"`
	Height string  `json:"height"`
	Margin string  `json:"margin,omitempty"`
	Scale  float64 `json:"scale"`
	CSS    string  `json:"css"`
}

// LayoutDescription is the computed geometry of one composed sheet
type LayoutDescription struct {
	layout.Composition
	TileScales []float64     `json:"tile_scales"`
	Viewport   viewportJSON  `json:"viewport"`
	Preview    pageStyleJSON `json:"preview"`
	Print      pageStyleJSON `json:"print"`
}

// Layout returns the computed geometry of the workspace sheet. ?mode=
// previews another mode without changing the workspace and ?window= sets
// the browser width used for the preview scale.
func (h *EditorHandler) Layout(c echo.Context) error {
	snap, err := h.current(c)
	if err != nil {
		return err
	}

	mode := snap.Mode
	if raw := c.QueryParam("mode"); raw != "" {
		if mode, err = models.ParseLayoutMode(raw); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
	}

	comp, err := layout.Compose(mode, snap.Records)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	width, _ := windowWidth(c)
	return c.JSON(http.StatusOK, DescribeLayout(comp, width))
}

// DescribeLayout computes tile scales, the preview scale for a browser
// window of the given width (0 when unknown) and both page styles
func DescribeLayout(comp layout.Composition, window float64) LayoutDescription {
	out := LayoutDescription{Composition: comp, TileScales: make([]float64, len(comp.Cells))}
	for i, cell := range comp.Cells {
		out.TileScales[i] = cell.TileScale()
	}

	scaler := layout.NewViewportScaler(comp.Orientation())
	if window > 0 {
		scaler.Resize(window)
		out.Viewport.WindowWidth = window
		out.Viewport.AvailableWidth = layout.AvailableWidth(window)
	}
	out.Viewport.Scale = scaler.Scale()

	out.Preview = pageStyle(layout.PageStyleFor(layout.TargetPreview, comp.Page, out.Viewport.Scale))
	out.Print = pageStyle(layout.PageStyleFor(layout.TargetPrint, comp.Page, out.Viewport.Scale))
	return out
}

func pageStyle(s layout.PageStyle) pageStyleJSON {
	return pageStyleJSON{
		Width:  s.Width,
		Height: s.Height,
		Margin: s.Margin,
		Scale:  s.Transform.Scale,
		CSS:    s.CSS(),
	}
}

// TileScale fits the master frame into a container of ?width= by ?height=
func TileScale(c echo.Context) error {
	width, errW := strconv.ParseFloat(c.QueryParam("width"), 64)
	height, errH := strconv.ParseFloat(c.QueryParam("height"), 64)
	if errW != nil || errH != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "width and height are required"})
	}

	scale, ok := layout.FitScale(layout.Size{Width: width, Height: height})
	if !ok {
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": "container has no area"})
	}

	frame := layout.FrameSize(scale)
	return c.JSON(http.StatusOK, map[string]interface{}{
		"scale": scale,
		"frame": frame,
	})
}
