package pages

import (
	"price_tag_app_go/services"
	"price_tag_app_go/templates/partials"
)

// EditorView holds the data for the editor page and the print page
type EditorView struct {
	Title     string
	Snapshot  services.WorkspaceSnapshot
	Sheet     partials.SheetView
	AutoPrint bool
	CSRFToken string
}
