package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"price_tag_app_go/middleware"
	"price_tag_app_go/services"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportTags downloads the workspace pool as a workbook
func (h *EditorHandler) ExportTags(c echo.Context) error {
	snap, err := h.current(c)
	if err != nil {
		return err
	}

	buf, err := services.ExportTagSheet(snap.Records)
	if err != nil {
		h.logger.Error("Failed to export tags", zap.String("workspace_id", snap.ID), zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to generate workbook")
	}

	filename := fmt.Sprintf("etiquetas_%s.xlsx", time.Now().Format("20060102"))
	c.Response().Header().Set(echo.HeaderContentDisposition, "attachment; filename="+filename)
	return c.Blob(http.StatusOK, xlsxContentType, buf.Bytes())
}

// ImportTags replaces the leading records of the pool with the rows of an
// uploaded workbook and re-renders the workspace. Failures come back as an
// inline notice so the HTMX swap keeps the editor usable.
func (h *EditorHandler) ImportTags(c echo.Context) error {
	id := middleware.GetWorkspaceID(c)

	file, err := c.FormFile("file")
	if err != nil {
		return importNotice(c, "No se recibió ningún archivo")
	}
	if err := services.ValidateTagSheetUpload(file); err != nil {
		h.logger.Warn("Tag upload rejected", zap.String("workspace_id", id), zap.String("filename", file.Filename), zap.Error(err))
		if errors.Is(err, services.ErrInvalidUpload) {
			return importNotice(c, strings.TrimPrefix(err.Error(), services.ErrInvalidUpload.Error()+": "))
		}
		return importNotice(c, "No se pudo leer el archivo")
	}

	src, err := file.Open()
	if err != nil {
		return importNotice(c, "No se pudo abrir el archivo")
	}
	defer src.Close()

	records, err := services.ImportTagSheet(src)
	if err != nil {
		h.logger.Warn("Tag import rejected", zap.String("workspace_id", id), zap.String("filename", file.Filename), zap.Error(err))
		return importNotice(c, err.Error())
	}

	snap, err := h.store.ReplaceRecords(id, records)
	if err != nil {
		return workspaceError(err)
	}

	h.logger.Info("Tags imported", zap.String("workspace_id", id), zap.Int("records", len(records)))
	return h.renderWorkspace(c, snap)
}

func importNotice(c echo.Context, msg string) error {
	c.Response().Header().Set("HX-Retarget", "#notices")
	c.Response().Header().Set("HX-Reswap", "innerHTML")
	return c.HTML(http.StatusOK, `<div class="notice notice-error">`+templ.EscapeString(msg)+`</div>`)
}
