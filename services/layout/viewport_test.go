package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAvailableWidth(t *testing.T) {
	assert.Equal(t, 740.0, AvailableWidth(1200))
	assert.Equal(t, 994.0, AvailableWidth(1024))
	assert.Equal(t, 570.0, AvailableWidth(600))
}

func TestScaleForViewportDesktop(t *testing.T) {
	scale, ok := ScaleForViewport(A4(Landscape).SizePx, AvailableWidth(1200))
	require.True(t, ok)
	assert.InDelta(t, 0.6595, scale, 1e-4)
	assert.Equal(t, 740.0/1122.0, scale)
}

func TestScaleForViewportClamp(t *testing.T) {
	for _, page := range []Size{A4(Landscape).SizePx, A4(Portrait).SizePx} {
		for _, available := range []float64{0.5, 1, 100, 500, 794, 1122, 2000, 10000} {
			scale, ok := ScaleForViewport(page, available)
			require.True(t, ok)
			assert.Greater(t, scale, 0.0)
			assert.LessOrEqual(t, scale, 1.0)
		}
	}

	_, ok := ScaleForViewport(A4(Portrait).SizePx, 0)
	assert.False(t, ok)
	_, ok = ScaleForViewport(Size{}, 500)
	assert.False(t, ok)
}

func TestViewportScaler(t *testing.T) {
	v := NewViewportScaler(Landscape)
	assert.Equal(t, 1.0, v.Scale())

	assert.Equal(t, 740.0/1122.0, v.Resize(1200))

	t.Run("OrientationChangeRecomputes", func(t *testing.T) {
		assert.Equal(t, 740.0/794.0, v.SetOrientation(Portrait))
		assert.Equal(t, 740.0/1122.0, v.SetOrientation(Landscape))
	})

	t.Run("WideWindowNeverUpscales", func(t *testing.T) {
		assert.Equal(t, 1.0, v.Resize(4000))
	})

	t.Run("DegenerateWindowKeepsScale", func(t *testing.T) {
		v.Resize(1200)
		assert.Equal(t, 740.0/1122.0, v.Resize(0))
		assert.Equal(t, 740.0/1122.0, v.Scale())
	})
}

func TestViewportAndTileScalesAreIndependent(t *testing.T) {
	v := NewViewportScaler(Landscape)
	tile := NewTileScaler()
	tile.Observe(Size{561, 397})
	v.Resize(1200)

	v.Resize(800)
	assert.Equal(t, 0.5, tile.Scale())

	tile.Observe(Size{1122, 794})
	assert.Equal(t, 770.0/1122.0, v.Scale())

	// on screen the two compose multiplicatively
	onScreen := Transform{Scale: v.Scale() * tile.Scale()}.Apply(MasterSize)
	assert.InDelta(t, 770.0, onScreen.Width, 1e-9)
}
