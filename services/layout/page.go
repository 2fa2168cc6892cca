package layout

import (
	"fmt"

	"price_tag_app_go/models"
)

// Orientation of the physical A4 sheet
type Orientation string

const (
	Landscape Orientation = "landscape"
	Portrait  Orientation = "portrait"
)

// A4 dimensions (mm)
const (
	A4ShortEdgeMM = 210.0
	A4LongEdgeMM  = 297.0
)

// A4 rendered at 96 DPI, matching the master frame (px)
const (
	A4ShortEdgePx = 794.0
	A4LongEdgePx  = 1122.0
)

// OrientationFor maps a layout mode to its page orientation. Double mode
// stacks two tags on a portrait sheet; the other modes are landscape.
func OrientationFor(mode models.LayoutMode) Orientation {
	if mode == models.LayoutDouble {
		return Portrait
	}
	return Landscape
}

// PhysicalPage is an A4 sheet in a given orientation
type PhysicalPage struct {
	Orientation Orientation `json:"orientation"`
	SizeMM      Size        `json:"size_mm"`
	SizePx      Size        `json:"size_px"`
}

// A4 returns the sheet for an orientation
func A4(o Orientation) PhysicalPage {
	if o == Portrait {
		return PhysicalPage{
			Orientation: Portrait,
			SizeMM:      Size{Width: A4ShortEdgeMM, Height: A4LongEdgeMM},
			SizePx:      Size{Width: A4ShortEdgePx, Height: A4LongEdgePx},
		}
	}
	return PhysicalPage{
		Orientation: Landscape,
		SizeMM:      Size{Width: A4LongEdgeMM, Height: A4ShortEdgeMM},
		SizePx:      Size{Width: A4LongEdgePx, Height: A4ShortEdgePx},
	}
}

// CSSWidth is the page width in physical units for stylesheets
func (p PhysicalPage) CSSWidth() string {
	return mm(p.SizeMM.Width)
}

// CSSHeight is the page height in physical units for stylesheets
func (p PhysicalPage) CSSHeight() string {
	return mm(p.SizeMM.Height)
}

func mm(v float64) string {
	return fmt.Sprintf("%gmm", v)
}
