package layout

import (
	"fmt"
	"strconv"
	"strings"
)

// Target is the output path a page is rendered for
type Target int

const (
	TargetPreview Target = iota
	TargetPrint
)

func (t Target) String() string {
	if t == TargetPrint {
		return "print"
	}
	return "preview"
}

// PreviewOnlyClass marks editor chrome that never reaches paper
const PreviewOnlyClass = "no-print"

// PrintContainerClass marks the page element the print rules pin to the sheet
const PrintContainerClass = "print-container"

// PageStyle is the geometry applied to the page element
type PageStyle struct {
	Width     string
	Height    string
	Margin    string
	Transform Transform
}

// PageStyleFor switches between the scaled preview and the literal physical
// sheet. It is pure: the preview scale is an input, never overwritten, so
// going back to preview yields the previous scale unchanged.
func PageStyleFor(target Target, page PhysicalPage, previewScale float64) PageStyle {
	style := PageStyle{
		Width:  page.CSSWidth(),
		Height: page.CSSHeight(),
	}
	if target == TargetPrint {
		style.Margin = "0"
		style.Transform = Identity
		return style
	}
	style.Transform = Transform{Scale: previewScale}
	return style
}

// CSS renders the style as an inline style attribute value
func (s PageStyle) CSS() string {
	var b strings.Builder
	fmt.Fprintf(&b, "width: %s; height: %s;", s.Width, s.Height)
	if s.Margin != "" {
		fmt.Fprintf(&b, " margin: %s;", s.Margin)
	}
	if s.Transform.IsIdentity() {
		b.WriteString(" transform: none;")
	} else {
		fmt.Fprintf(&b, " transform: scale(%s);", FormatScale(s.Transform.Scale))
	}
	return b.String()
}

// FormatScale prints a scale compactly for CSS and data attributes
func FormatScale(scale float64) string {
	return strconv.FormatFloat(scale, 'f', -1, 64)
}

// PrintStylesheet returns the @media print rules for a page orientation. On
// paper the preview transform is discarded, the page element takes the
// literal A4 size with zero margin and preview-only elements are hidden.
func PrintStylesheet(o Orientation) string {
	page := A4(o)
	return fmt.Sprintf(`@media print {
  @page {
    size: A4 %s;
    margin: 0mm;
  }
  * {
    -webkit-print-color-adjust: exact !important;
    print-color-adjust: exact !important;
    color-adjust: exact !important;
  }
  html, body {
    margin: 0 !important;
    padding: 0 !important;
    background: white !important;
  }
  .%s { display: none !important; }
  .tag-cell { outline: none !important; }
  .%s {
    display: block !important;
    width: %s !important;
    height: %s !important;
    margin: 0 !important;
    padding: 0 !important;
    transform: none !important;
    position: fixed !important;
    top: 0 !important;
    left: 0 !important;
    z-index: 99999;
  }
}
`, page.Orientation, PreviewOnlyClass, PrintContainerClass, page.CSSWidth(), page.CSSHeight())
}
