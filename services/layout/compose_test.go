package layout

import (
	"testing"

	"price_tag_app_go/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPool() []models.TagRecord {
	pool := models.NewDefaultTagPool()
	for i := range pool {
		pool[i].Brand = []string{"ALPHA", "BETA", "GAMMA", "DELTA"}[i]
	}
	return pool
}

func TestComposeModes(t *testing.T) {
	pool := testPool()

	tests := []struct {
		mode        models.LayoutMode
		visible     int
		orientation Orientation
		grid        Grid
	}{
		{models.LayoutSingle, 1, Landscape, Grid{Rows: 1, Cols: 1}},
		{models.LayoutDouble, 2, Portrait, Grid{Rows: 2, Cols: 1}},
		{models.LayoutQuad, 4, Landscape, Grid{Rows: 2, Cols: 2}},
	}

	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			comp, err := Compose(tt.mode, pool)
			require.NoError(t, err)

			assert.Equal(t, tt.orientation, comp.Orientation())
			assert.Equal(t, tt.orientation, OrientationFor(tt.mode))
			assert.Equal(t, tt.grid, comp.Grid)
			assert.Equal(t, tt.grid.Cells(), len(comp.Cells))
			assert.Equal(t, pool[:tt.visible], comp.Visible())
		})
	}
}

func TestComposeScenarioSingle(t *testing.T) {
	comp, err := Compose(models.LayoutSingle, testPool()[:1])
	require.NoError(t, err)

	assert.Equal(t, Landscape, comp.Orientation())
	assert.Equal(t, Grid{Rows: 1, Cols: 1}, comp.Grid)
	require.Len(t, comp.Cells, 1)
	assert.Equal(t, 0, comp.Cells[0].Record.ID)
	assert.Equal(t, Rect{0, 0, 1, 1}, comp.Cells[0].Rect)
	assert.Equal(t, 1.0, comp.Cells[0].TileScale())
}

func TestComposeCellsTileThePage(t *testing.T) {
	for _, mode := range models.LayoutModes {
		comp, err := Compose(mode, testPool())
		require.NoError(t, err)

		var area float64
		for _, cell := range comp.Cells {
			area += cell.Rect.Width * cell.Rect.Height
			assert.InDelta(t, comp.Page.SizeMM.Width*cell.Rect.Width, cell.SizeMM.Width, 1e-9)
			assert.InDelta(t, comp.Page.SizeMM.Height*cell.Rect.Height, cell.SizeMM.Height, 1e-9)
			assert.Equal(t, comp.Cells[0].SizeMM, cell.SizeMM, "cells must be equal")
		}
		assert.InDelta(t, 1.0, area, 1e-12, "no gaps in %s", mode)
	}
}

func TestComposeQuadPositions(t *testing.T) {
	comp, err := Compose(models.LayoutQuad, testPool())
	require.NoError(t, err)

	assert.Equal(t, Rect{0, 0, 0.5, 0.5}, comp.Cells[0].Rect)
	assert.Equal(t, Rect{0.5, 0, 0.5, 0.5}, comp.Cells[1].Rect)
	assert.Equal(t, Rect{0, 0.5, 0.5, 0.5}, comp.Cells[2].Rect)
	assert.Equal(t, Rect{0.5, 0.5, 0.5, 0.5}, comp.Cells[3].Rect)
	assert.Equal(t, Size{148.5, 105}, comp.Cells[0].SizeMM)
	assert.Equal(t, 0.5, comp.Cells[3].TileScale())
}

func TestComposeDoubleStacksVertically(t *testing.T) {
	comp, err := Compose(models.LayoutDouble, testPool())
	require.NoError(t, err)

	assert.Equal(t, Size{210, 148.5}, comp.Cells[0].SizeMM)
	assert.Equal(t, 0.0, comp.Cells[1].Rect.X)
	assert.Equal(t, 0.5, comp.Cells[1].Rect.Y)
}

func TestComposeInsufficientRecords(t *testing.T) {
	_, err := Compose(models.LayoutQuad, testPool()[:3])
	assert.ErrorIs(t, err, ErrInsufficientRecords)

	_, err = Compose(models.LayoutDouble, testPool()[:1])
	assert.ErrorIs(t, err, ErrInsufficientRecords)
}

func TestComposeModeSwitchKeepsRecords(t *testing.T) {
	pool := testPool()

	double, err := Compose(models.LayoutDouble, pool)
	require.NoError(t, err)
	quad, err := Compose(models.LayoutQuad, pool)
	require.NoError(t, err)

	assert.Equal(t, Portrait, double.Orientation())
	assert.Equal(t, Landscape, quad.Orientation())
	assert.Len(t, double.Cells, 2)
	assert.Len(t, quad.Cells, 4)
	assert.Equal(t, double.Visible(), quad.Visible()[:2])
}
