package layout

import "math"

// Master frame: the coordinate space the tag artwork is authored in
// (a landscape half of A4 at 96 DPI). Slot positions are percentages of it.
const (
	MasterWidth  = 1122.0
	MasterHeight = 794.0
)

// MasterSize is the master frame as a Size
var MasterSize = Size{Width: MasterWidth, Height: MasterHeight}

// FitScale returns the uniform factor that makes the master frame fit the
// container without distortion: min(w/1122, h/794). The frame letterboxes
// when the container's aspect ratio differs. ok is false for degenerate
// containers (zero, negative or non-finite sides) and the caller must keep
// its previous scale.
func FitScale(container Size) (scale float64, ok bool) {
	if !container.Valid() {
		return 0, false
	}
	return math.Min(container.Width/MasterWidth, container.Height/MasterHeight), true
}

// FrameSize is the on-screen size of the master frame at the given scale
func FrameSize(scale float64) Size {
	return MasterSize.Scaled(scale)
}

// Letterbox returns the empty space left on each axis when the scaled frame
// is centred inside container
func Letterbox(container Size, scale float64) Size {
	frame := FrameSize(scale)
	return Size{
		Width:  math.Max(0, container.Width-frame.Width),
		Height: math.Max(0, container.Height-frame.Height),
	}
}
