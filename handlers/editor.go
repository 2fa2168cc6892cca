package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"price_tag_app_go/middleware"
	"price_tag_app_go/models"
	"price_tag_app_go/services"
	"price_tag_app_go/services/layout"
	"price_tag_app_go/templates/pages"
	"price_tag_app_go/templates/partials"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const pageTitle = "Etiquetas de Precio"

// EditorHandler serves the editor, the composed sheet and the print view
type EditorHandler struct {
	store      *services.WorkspaceStore
	background *services.BackgroundLoader
	logger     *zap.Logger
}

// NewEditorHandler wires the handler to the workspace store and the shared
// background
func NewEditorHandler(store *services.WorkspaceStore, background *services.BackgroundLoader, logger *zap.Logger) *EditorHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EditorHandler{store: store, background: background, logger: logger}
}

// Page renders the full editor
func (h *EditorHandler) Page(c echo.Context) error {
	snap, err := h.current(c)
	if err != nil {
		return err
	}
	view, err := h.sheetView(c, snap, layout.TargetPreview)
	if err != nil {
		return err
	}
	return render(c, pages.Editor(pages.EditorView{
		Title:     pageTitle,
		Snapshot:  snap,
		Sheet:     view,
		CSRFToken: middleware.GetCSRFToken(c),
	}))
}

// PrintPage renders the sheet alone at its physical size and asks the
// browser to print it
func (h *EditorHandler) PrintPage(c echo.Context) error {
	snap, err := h.current(c)
	if err != nil {
		return err
	}
	view, err := h.sheetView(c, snap, layout.TargetPrint)
	if err != nil {
		return err
	}
	return render(c, pages.Print(pages.EditorView{
		Title:     pageTitle,
		Snapshot:  snap,
		Sheet:     view,
		AutoPrint: c.QueryParam("auto") != "0",
		CSRFToken: middleware.GetCSRFToken(c),
	}))
}

// SheetPartial returns the composed sheet as an HTMX partial
func (h *EditorHandler) SheetPartial(c echo.Context) error {
	snap, err := h.current(c)
	if err != nil {
		return err
	}
	return h.renderSheet(c, snap)
}

// WorkspacePartial returns editor panel and sheet as an HTMX partial
func (h *EditorHandler) WorkspacePartial(c echo.Context) error {
	snap, err := h.current(c)
	if err != nil {
		return err
	}
	return h.renderWorkspace(c, snap)
}

// SetMode switches the layout mode
func (h *EditorHandler) SetMode(c echo.Context) error {
	mode, err := models.ParseLayoutMode(c.FormValue("mode"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	snap, err := h.store.SetMode(middleware.GetWorkspaceID(c), mode)
	if err != nil {
		return workspaceError(err)
	}

	h.logger.Debug("Layout mode changed", zap.String("workspace_id", snap.ID), zap.String("mode", string(mode)))
	return h.renderWorkspace(c, snap)
}

// SetActive selects the editor tab
func (h *EditorHandler) SetActive(c echo.Context) error {
	index, err := strconv.Atoi(c.FormValue("index"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid tag index")
	}

	snap, err := h.store.SetActive(middleware.GetWorkspaceID(c), index)
	if err != nil {
		return workspaceError(err)
	}
	return h.renderWorkspace(c, snap)
}

// UpdateTag replaces the tag at :index with the submitted form. Every field
// is taken from the form; a missing field becomes empty.
func (h *EditorHandler) UpdateTag(c echo.Context) error {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid tag index")
	}

	var record models.TagRecord
	for _, field := range models.TagFields {
		field.Set(&record, c.FormValue(field.Name))
	}

	snap, err := h.store.ReplaceRecord(middleware.GetWorkspaceID(c), index, services.NormalizeTagRecord(record))
	if err != nil {
		return workspaceError(err)
	}
	return h.renderSheet(c, snap)
}

// current re-reads the workspace so handlers see writes made earlier in the
// same request chain
func (h *EditorHandler) current(c echo.Context) (services.WorkspaceSnapshot, error) {
	snap, err := h.store.Get(middleware.GetWorkspaceID(c))
	if err != nil {
		return snap, workspaceError(err)
	}
	return snap, nil
}

func (h *EditorHandler) renderSheet(c echo.Context, snap services.WorkspaceSnapshot) error {
	view, err := h.sheetView(c, snap, layout.TargetPreview)
	if err != nil {
		return err
	}
	return render(c, partials.Sheet(view))
}

func (h *EditorHandler) renderWorkspace(c echo.Context, snap services.WorkspaceSnapshot) error {
	view, err := h.sheetView(c, snap, layout.TargetPreview)
	if err != nil {
		return err
	}
	return render(c, partials.Workspace(snap, view))
}

func (h *EditorHandler) sheetView(c echo.Context, snap services.WorkspaceSnapshot, target layout.Target) (partials.SheetView, error) {
	comp, err := snap.Compose()
	if err != nil {
		h.logger.Error("Failed to compose sheet", zap.String("workspace_id", snap.ID), zap.Error(err))
		return partials.SheetView{}, echo.NewHTTPError(http.StatusInternalServerError, "Failed to compose sheet")
	}

	scaler := layout.NewViewportScaler(comp.Orientation())
	if width, ok := windowWidth(c); ok {
		scaler.Resize(width)
	}

	return partials.SheetView{
		Composition:  comp,
		Background:   h.backgroundRef(),
		Target:       target,
		PreviewScale: scaler.Scale(),
	}, nil
}

func (h *EditorHandler) backgroundRef() string {
	if h.background == nil {
		return ""
	}
	return h.background.Ref()
}

// windowWidth prefers an explicit ?window= over the cookie scale.js keeps
func windowWidth(c echo.Context) (float64, bool) {
	if raw := c.QueryParam("window"); raw != "" {
		if width, err := strconv.ParseFloat(raw, 64); err == nil && width > 0 {
			return width, true
		}
	}
	return middleware.GetViewportWidth(c)
}

func workspaceError(err error) error {
	switch {
	case errors.Is(err, services.ErrWorkspaceNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "Workspace expired, reload the page")
	case errors.Is(err, services.ErrTagIndexRange):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
}

func render(c echo.Context, component templ.Component) error {
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	return component.Render(c.Request().Context(), c.Response().Writer)
}
