// Package grid describes the board an atomix puzzle is played on: which cells
// can be walked, where pieces are, and where a piece ends up when it slides.
//
// A Grid is immutable once built. All queries are pure and safe to call from
// several goroutines.
package grid

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyGrid indicates a width or height below one.
	ErrEmptyGrid = errors.New("grid: width and height must be at least one")
	// ErrCellCount indicates len(cells) != width*height.
	ErrCellCount = errors.New("grid: cell count does not match dimensions")
	// ErrCellPosition indicates a cell stored at an index that disagrees with its position.
	ErrCellPosition = errors.New("grid: cell position does not match its index")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
)

// Cell is a single board square.
type Cell struct {
	Position
	Walkable bool
}

// Grid is a rectangular board. Cells are stored row-major: the cell at (x, y)
// lives at index y*Width + x.
type Grid struct {
	Width, Height int
	Cells         []Cell
}

// NewGrid validates and wraps a row-major cell slice. The slice is copied.
func NewGrid(width, height int, cells []Cell) (*Grid, error) {
	if width < 1 || height < 1 {
		return nil, ErrEmptyGrid
	}
	if len(cells) != width*height {
		return nil, fmt.Errorf("%w: got %d cells for %dx%d", ErrCellCount, len(cells), width, height)
	}
	g := &Grid{
		Width:  width,
		Height: height,
		Cells:  make([]Cell, len(cells)),
	}
	copy(g.Cells, cells)
	for i, c := range g.Cells {
		if g.Index(c.Position) != i {
			return nil, fmt.Errorf("%w: cell %s at index %d", ErrCellPosition, c.Position, i)
		}
	}
	return g, nil
}

// FromWalkable builds a grid from rows of walkability flags, rows[y][x].
func FromWalkable(rows [][]bool) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	w, h := len(rows[0]), len(rows)
	cells := make([]Cell, 0, w*h)
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(row), w)
		}
		for x, ok := range row {
			cells = append(cells, Cell{Position: Position{X: x, Y: y}, Walkable: ok})
		}
	}
	return NewGrid(w, h, cells)
}

// Index maps a position to its row-major index. The result is meaningless for
// out-of-bounds positions.
func (g *Grid) Index(p Position) int {
	return g.Width*p.Y + p.X
}

func (g *Grid) IsInBounds(p Position) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// IsWalkable reports whether p is on the board and not a wall.
func (g *Grid) IsWalkable(p Position) bool {
	if !g.IsInBounds(p) {
		return false
	}
	return g.Cells[g.Index(p)].Walkable
}

// Slide moves from `from` one cell at a time along dir and returns the last
// cell that was in bounds, walkable and unoccupied. It returns false when the
// very first step is already blocked. The starting cell itself is never
// consulted, so a piece does not block its own slide.
func (g *Grid) Slide(from Position, dir Direction, occupied Occupancy) (Position, bool) {
	var (
		dest  Position
		moved bool
	)
	for next := from.Add(dir.Vector()); g.canEnter(next, occupied); next = next.Add(dir.Vector()) {
		dest = next
		moved = true
	}
	return dest, moved
}

func (g *Grid) canEnter(p Position, occupied Occupancy) bool {
	return g.IsWalkable(p) && !occupied.Has(p)
}

// Move is a single slide of one piece and the configuration it produces.
type Move struct {
	Piece     int
	Direction Direction
	From, To  Position
	Result    Configuration
}

func (m Move) String() string {
	return fmt.Sprintf("piece %d %s %s -> %s", m.Piece, m.Direction, m.From, m.To)
}

// Successors returns every configuration reachable from cfg with one slide.
// Pieces are tried in index order and, for each piece, directions in the order
// of Directions. No returned configuration equals cfg.
func (g *Grid) Successors(cfg Configuration) []Move {
	out := make([]Move, 0, len(cfg)*len(Directions))
	for i, from := range cfg {
		occupied := NewOccupancy(cfg, i)
		for _, dir := range Directions {
			to, ok := g.Slide(from, dir, occupied)
			if !ok {
				continue
			}
			out = append(out, Move{
				Piece:     i,
				Direction: dir,
				From:      from,
				To:        to,
				Result:    cfg.With(i, to),
			})
		}
	}
	return out
}
