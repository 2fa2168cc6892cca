package layout

import (
	"math"
	"sync"
)

// Viewport allowances (px). Above DesktopBreakpoint the editor panel sits
// beside the page and SidebarAllowance is reserved for it.
const (
	DesktopBreakpoint = 1024.0
	SidebarAllowance  = 460.0
	CompactMargin     = 30.0
)

// AvailableWidth is the width left for the page in a window of windowWidth
func AvailableWidth(windowWidth float64) float64 {
	if windowWidth > DesktopBreakpoint {
		return windowWidth - SidebarAllowance
	}
	return windowWidth - CompactMargin
}

// ScaleForViewport scales the whole page as one rigid unit so it fits the
// available width, never above 100%: min(available/pageWidth, 1). ok is
// false when either width is not positive.
func ScaleForViewport(page Size, availableWidth float64) (scale float64, ok bool) {
	if !positive(page.Width) || !positive(availableWidth) {
		return 0, false
	}
	return math.Min(availableWidth/page.Width, 1), true
}

// ViewportScaler tracks the page-level preview scale. It reacts to window
// resizes and orientation changes only and knows nothing of tile scales.
type ViewportScaler struct {
	mu          sync.Mutex
	windowWidth float64
	orientation Orientation
	scale       float64
}

// NewViewportScaler starts at the given orientation with scale 1 until a
// window width is known
func NewViewportScaler(o Orientation) *ViewportScaler {
	return &ViewportScaler{orientation: o, scale: 1}
}

// Resize records a new window width and recomputes
func (v *ViewportScaler) Resize(windowWidth float64) float64 {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.windowWidth = windowWidth
	return v.recompute()
}

// SetOrientation swaps the target page and recomputes
func (v *ViewportScaler) SetOrientation(o Orientation) float64 {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.orientation = o
	return v.recompute()
}

// Scale returns the current page scale
func (v *ViewportScaler) Scale() float64 {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.scale
}

// Transform returns the current page scale as a uniform transform
func (v *ViewportScaler) Transform() Transform {
	return Transform{Scale: v.Scale()}
}

func (v *ViewportScaler) recompute() float64 {
	if scale, ok := ScaleForViewport(A4(v.orientation).SizePx, AvailableWidth(v.windowWidth)); ok {
		v.scale = scale
	}
	return v.scale
}
