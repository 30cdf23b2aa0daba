package tanks

import (
	"fmt"
)

// Map cell codes.
const (
	CellEmpty      = 0
	CellBrickFirst = 1 // brick types 1..4
	CellBrickLast  = 4
	CellEnemyFirst = 5 // enemy sprites 0..3
	CellEnemyLast  = 8
	CellPlayer     = 9
)

// Level is a parsed map grid [row][col].
type Level struct {
	Rows  int
	Cols  int
	Cells [][]int
}

// ParseLevel creates a Level from digit rows.
func ParseLevel(rows []string) (*Level, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("tanks: level has no rows")
	}

	lvl := &Level{
		Rows:  len(rows),
		Cols:  len(rows[0]),
		Cells: make([][]int, len(rows)),
	}
	players := 0
	for i, row := range rows {
		if len(row) != lvl.Cols {
			return nil, fmt.Errorf("tanks: level row %d has %d cells, expected %d", i, len(row), lvl.Cols)
		}
		lvl.Cells[i] = make([]int, lvl.Cols)
		for j, ch := range row {
			if ch < '0' || ch > '9' {
				return nil, fmt.Errorf("tanks: level row %d col %d: invalid cell %q", i, j, ch)
			}
			code := int(ch - '0')
			if code == CellPlayer {
				players++
			}
			lvl.Cells[i][j] = code
		}
	}
	if players != 1 {
		return nil, fmt.Errorf("tanks: level needs exactly one player start, found %d", players)
	}
	return lvl, nil
}

// CountEnemies returns the number of enemy spawn cells.
func (l *Level) CountEnemies() int {
	n := 0
	for _, row := range l.Cells {
		for _, c := range row {
			if c >= CellEnemyFirst && c <= CellEnemyLast {
				n++
			}
		}
	}
	return n
}
