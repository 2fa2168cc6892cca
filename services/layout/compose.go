package layout

import (
	"errors"
	"fmt"

	"price_tag_app_go/models"
)

// ErrInsufficientRecords means the caller broke the contract of always
// holding a full tag pool. The composer never pads.
var ErrInsufficientRecords = errors.New("layout: record pool smaller than the visible count")

// Grid is the row/column partition of a page
type Grid struct {
	Rows int `json:"rows"`
	Cols int `json:"cols"`
}

// Cells is the number of tiles in the grid
func (g Grid) Cells() int {
	return g.Rows * g.Cols
}

// GridFor returns the partition for a mode: single 1x1, double one column
// of two rows, quad 2x2
func GridFor(mode models.LayoutMode) Grid {
	switch mode {
	case models.LayoutDouble:
		return Grid{Rows: 2, Cols: 1}
	case models.LayoutQuad:
		return Grid{Rows: 2, Cols: 2}
	default:
		return Grid{Rows: 1, Cols: 1}
	}
}

// Cell is one tile of the composed page
type Cell struct {
	Index  int              `json:"index"`
	Row    int              `json:"row"`
	Col    int              `json:"col"`
	Record models.TagRecord `json:"record"`
	Rect   Rect             `json:"rect"`
	SizeMM Size             `json:"size_mm"`
	SizePx Size             `json:"size_px"`
}

// TileScale is the initial master-frame scale for the cell at 100% page size
func (c Cell) TileScale() float64 {
	scale, ok := FitScale(c.SizePx)
	if !ok {
		return 1
	}
	return scale
}

// Composition is the composed page for one mode
type Composition struct {
	Mode  models.LayoutMode `json:"mode"`
	Page  PhysicalPage      `json:"page"`
	Grid  Grid              `json:"grid"`
	Cells []Cell            `json:"cells"`
}

// Orientation of the composed page
func (c Composition) Orientation() Orientation {
	return c.Page.Orientation
}

// Visible returns the records shown, in page order
func (c Composition) Visible() []models.TagRecord {
	out := make([]models.TagRecord, len(c.Cells))
	for i, cell := range c.Cells {
		out[i] = cell.Record
	}
	return out
}

// Compose selects the visible records for mode (always the first N of the
// pool, in order), derives the page orientation and partitions the page into
// equal, gapless cells filled row by row.
func Compose(mode models.LayoutMode, records []models.TagRecord) (Composition, error) {
	count := mode.VisibleCount()
	if len(records) < count {
		return Composition{}, fmt.Errorf("%w: mode %s needs %d, got %d", ErrInsufficientRecords, mode, count, len(records))
	}

	page := A4(OrientationFor(mode))
	grid := GridFor(mode)

	fw := 1 / float64(grid.Cols)
	fh := 1 / float64(grid.Rows)
	cellMM := Size{Width: page.SizeMM.Width * fw, Height: page.SizeMM.Height * fh}
	cellPx := Size{Width: page.SizePx.Width * fw, Height: page.SizePx.Height * fh}

	cells := make([]Cell, 0, count)
	for i := 0; i < count; i++ {
		row, col := i/grid.Cols, i%grid.Cols
		cells = append(cells, Cell{
			Index:  i,
			Row:    row,
			Col:    col,
			Record: records[i],
			Rect:   Rect{X: float64(col) * fw, Y: float64(row) * fh, Width: fw, Height: fh},
			SizeMM: cellMM,
			SizePx: cellPx,
		})
	}

	return Composition{Mode: mode, Page: page, Grid: grid, Cells: cells}, nil
}
