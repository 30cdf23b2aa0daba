package physics

import (
	"math"

	"github.com/vovakirdan/retro-arcade/internal/core"
)

// Space answers candidate queries for the resolver.
type Space interface {
	// Query calls visit for every entity of category t that may overlap box.
	// Returning extra entities is allowed; missing overlapping ones is not.
	Query(t Type, box core.BBox, visit func(Entity))
}

// Grid is a uniform cell index where each cell holds at most one entity.
type Grid struct {
	cellSize float64
	rows     int
	cols     int
	cells    []Entity
}

// NewGrid creates an empty rows x cols grid.
func NewGrid(rows, cols int, cellSize float64) *Grid {
	return &Grid{
		cellSize: cellSize,
		rows:     rows,
		cols:     cols,
		cells:    make([]Entity, rows*cols),
	}
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// CellSize returns the edge length of a cell.
func (g *Grid) CellSize() float64 { return g.cellSize }

// CellOf returns the row and column containing the world point, unclamped.
func (g *Grid) CellOf(x, y float64) (row, col int) {
	return int(math.Floor(y / g.cellSize)), int(math.Floor(x / g.cellSize))
}

func (g *Grid) inBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// Set stores e in a cell. It returns false when the cell is outside the grid.
func (g *Grid) Set(row, col int, e Entity) bool {
	if !g.inBounds(row, col) {
		return false
	}
	g.cells[row*g.cols+col] = e
	return true
}

// At returns the entity in a cell, or nil.
func (g *Grid) At(row, col int) Entity {
	if !g.inBounds(row, col) {
		return nil
	}
	return g.cells[row*g.cols+col]
}

// Clear empties a cell.
func (g *Grid) Clear(row, col int) {
	g.Set(row, col, nil)
}

// Visit calls fn for every occupied cell spanned by box. The row and column
// range is clamped to the grid, so boxes partly or fully outside still see
// the border cells.
func (g *Grid) Visit(box core.BBox, fn func(Entity)) {
	rowMin, colMin := g.CellOf(box.Left, box.Up)
	rowMax, colMax := g.CellOf(box.Right, box.Down)
	rowMin = core.Clamp(rowMin, 0, g.rows-1)
	rowMax = core.Clamp(rowMax, 0, g.rows-1)
	colMin = core.Clamp(colMin, 0, g.cols-1)
	colMax = core.Clamp(colMax, 0, g.cols-1)

	for i := rowMin; i <= rowMax; i++ {
		for j := colMin; j <= colMax; j++ {
			if e := g.cells[i*g.cols+j]; e != nil {
				fn(e)
			}
		}
	}
}
