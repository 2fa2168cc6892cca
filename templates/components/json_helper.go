package components

import (
	"encoding/json"

	"price_tag_app_go/services/layout"
)

// JSON marshals an object to a JSON string, returning "{}" on error
func JSON(v interface{}) string {
	b, err := json.Marshal(v)
	if err != nil {
		return "{}"
	}
	return string(b)
}

// LayoutConfig carries the layout constants to the browser script so the
// live resize path uses exactly the server's numbers
type LayoutConfig struct {
	MasterWidth       float64 `json:"masterWidth"`
	MasterHeight      float64 `json:"masterHeight"`
	DesktopBreakpoint float64 `json:"desktopBreakpoint"`
	SidebarAllowance  float64 `json:"sidebarAllowance"`
	CompactMargin     float64 `json:"compactMargin"`
	ScaleEpsilon      float64 `json:"scaleEpsilon"`
	PreviewOnlyClass  string  `json:"previewOnlyClass"`
}

// DefaultLayoutConfig mirrors the layout package constants
func DefaultLayoutConfig() LayoutConfig {
	return LayoutConfig{
		MasterWidth:       layout.MasterWidth,
		MasterHeight:      layout.MasterHeight,
		DesktopBreakpoint: layout.DesktopBreakpoint,
		SidebarAllowance:  layout.SidebarAllowance,
		CompactMargin:     layout.CompactMargin,
		ScaleEpsilon:      layout.ScaleEpsilon,
		PreviewOnlyClass:  layout.PreviewOnlyClass,
	}
}
