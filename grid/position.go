package grid

import "fmt"

// Position is a cell coordinate on the board. X grows to the right and Y grows
// downwards, matching the row-major layout of Grid.Cells.
type Position struct {
	X int `json:"x" msgpack:"x"`
	Y int `json:"y" msgpack:"y"`
}

func (p Position) Add(o Position) Position {
	return Position{X: p.X + o.X, Y: p.Y + o.Y}
}

func (p Position) Sub(o Position) Position {
	return Position{X: p.X - o.X, Y: p.Y - o.Y}
}

// Manhattan returns |x| + |y|.
func (p Position) Manhattan() int {
	return abs(p.X) + abs(p.Y)
}

func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Direction is one of the four unit axis vectors a piece can slide along.
type Direction Position

var (
	Right = Direction{X: 1, Y: 0}
	Up    = Direction{X: 0, Y: -1}
	Left  = Direction{X: -1, Y: 0}
	Down  = Direction{X: 0, Y: 1}
)

// Directions is the order in which moves are generated for each piece.
var Directions = [4]Direction{Right, Up, Left, Down}

func (d Direction) Vector() Position {
	return Position(d)
}

func (d Direction) String() string {
	switch d {
	case Right:
		return "right"
	case Up:
		return "up"
	case Left:
		return "left"
	case Down:
		return "down"
	default:
		return fmt.Sprintf("direction%s", Position(d))
	}
}

// DirectionBetween returns the axis direction of a straight displacement from
// one cell to another. It reports false for a zero or diagonal displacement.
func DirectionBetween(from, to Position) (Direction, bool) {
	d := to.Sub(from)
	switch {
	case d.X == 0 && d.Y == 0:
		return Direction{}, false
	case d.Y == 0 && d.X > 0:
		return Right, true
	case d.Y == 0 && d.X < 0:
		return Left, true
	case d.X == 0 && d.Y > 0:
		return Down, true
	case d.X == 0 && d.Y < 0:
		return Up, true
	}
	return Direction{}, false
}
