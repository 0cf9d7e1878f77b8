package grid

import (
	"bytes"
	"testing"

	"github.com/gookit/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// parse builds a grid from ASCII rows: '#' is a wall, anything else is floor.
func parse(t *testing.T, rows ...string) *Grid {
	t.Helper()
	walk := make([][]bool, len(rows))
	for y, row := range rows {
		walk[y] = make([]bool, len(row))
		for x, r := range row {
			walk[y][x] = r != '#'
		}
	}
	g, err := FromWalkable(walk)
	require.NoError(t, err)
	return g
}

func TestNewGrid_Errors(t *testing.T) {
	cases := []struct {
		name          string
		width, height int
		cells         []Cell
		err           error
	}{
		{"ZeroWidth", 0, 1, nil, ErrEmptyGrid},
		{"ZeroHeight", 1, 0, nil, ErrEmptyGrid},
		{"ShortCells", 2, 1, []Cell{{Position: Position{0, 0}}}, ErrCellCount},
		{"Misplaced", 2, 1, []Cell{{Position: Position{1, 0}}, {Position: Position{0, 0}}}, ErrCellPosition},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewGrid(tc.width, tc.height, tc.cells)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestFromWalkable_Ragged(t *testing.T) {
	_, err := FromWalkable([][]bool{{true, true}, {true}})
	assert.ErrorIs(t, err, ErrNonRectangular)

	_, err = FromWalkable(nil)
	assert.ErrorIs(t, err, ErrEmptyGrid)
}

func TestIsInBounds(t *testing.T) {
	g := parse(t, "...", "...")
	for _, p := range []Position{{0, 0}, {2, 1}, {1, 1}} {
		assert.True(t, g.IsInBounds(p), "%s should be in bounds", p)
	}
	for _, p := range []Position{{-1, 0}, {3, 0}, {1, 2}, {2, -1}} {
		assert.False(t, g.IsInBounds(p), "%s should be out of bounds", p)
	}
}

func TestIsWalkable(t *testing.T) {
	g := parse(t, ".#.")
	assert.True(t, g.IsWalkable(Position{0, 0}))
	assert.False(t, g.IsWalkable(Position{1, 0}))
	assert.False(t, g.IsWalkable(Position{3, 0}))
}

func TestSlide_ToWall(t *testing.T) {
	g := parse(t, ".....")
	to, ok := g.Slide(Position{0, 0}, Right, nil)
	require.True(t, ok)
	assert.Equal(t, Position{4, 0}, to)
}

func TestSlide_BlockedFirstStep(t *testing.T) {
	g := parse(t, ".#...")
	_, ok := g.Slide(Position{0, 0}, Right, Occupancy{})
	assert.False(t, ok)

	_, ok = g.Slide(Position{0, 0}, Left, Occupancy{})
	assert.False(t, ok, "edge of the board blocks the first step")
}

func TestSlide_StopsBeforeObstacles(t *testing.T) {
	cases := []struct {
		name     string
		rows     []string
		from     Position
		dir      Direction
		occupied Occupancy
		want     Position
	}{
		{"Wall", []string{"....#."}, Position{0, 0}, Right, nil, Position{3, 0}},
		{"Piece", []string{"......"}, Position{0, 0}, Right, Occupancy{{4, 0}: {}}, Position{3, 0}},
		{"NearObstacleNotEdge", []string{"..#..."}, Position{0, 0}, Right, nil, Position{1, 0}},
		{"Up", []string{".", ".", "#", ".", "."}, Position{0, 4}, Up, nil, Position{0, 3}},
		{"DownToEdge", []string{".", ".", "."}, Position{0, 0}, Down, nil, Position{0, 2}},
		{"LeftPastOwnCell", []string{"....."}, Position{4, 0}, Left, Occupancy{{4, 0}: {}}, Position{0, 0}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := parse(t, tc.rows...)
			got, ok := g.Slide(tc.from, tc.dir, tc.occupied)
			require.True(t, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestSlide_Idempotent(t *testing.T) {
	g := parse(t,
		"......",
		"..#...",
		"......",
		"....#.",
	)
	occupied := Occupancy{{5, 2}: {}, {0, 3}: {}}
	for _, from := range []Position{{0, 0}, {1, 1}, {3, 2}, {5, 0}} {
		for _, dir := range Directions {
			once, ok := g.Slide(from, dir, occupied)
			if !ok {
				continue
			}
			twice, ok := g.Slide(once, dir, occupied)
			if ok {
				assert.Equal(t, once, twice, "from %s %s", from, dir)
			}
		}
	}
}

func TestSuccessors_NoSelfMoves(t *testing.T) {
	g := parse(t,
		".....",
		".#...",
		".....",
	)
	cfg := Configuration{{0, 0}, {4, 0}, {2, 2}}
	moves := g.Successors(cfg)
	require.NotEmpty(t, moves)
	for _, m := range moves {
		assert.False(t, m.Result.Equal(cfg))
		assert.Equal(t, m.To, m.Result[m.Piece])
		for i := range cfg {
			if i != m.Piece {
				assert.Equal(t, cfg[i], m.Result[i])
			}
		}
	}
	assert.Equal(t, Configuration{{0, 0}, {4, 0}, {2, 2}}, cfg, "input must not be modified")
}

func TestSuccessors_Order(t *testing.T) {
	g := parse(t, "...", "...")
	cfg := Configuration{{0, 0}, {2, 1}}
	moves := g.Successors(cfg)
	require.Len(t, moves, 4)
	assert.Equal(t, Move{Piece: 0, Direction: Right, From: Position{0, 0}, To: Position{2, 0}, Result: Configuration{{2, 0}, {2, 1}}}, moves[0])
	assert.Equal(t, Move{Piece: 0, Direction: Down, From: Position{0, 0}, To: Position{0, 1}, Result: Configuration{{0, 1}, {2, 1}}}, moves[1])
	assert.Equal(t, Up, moves[2].Direction)
	assert.Equal(t, 1, moves[2].Piece)
	assert.Equal(t, Left, moves[3].Direction)
}

func TestPiecesBlockEachOther(t *testing.T) {
	g := parse(t, ".....")
	cfg := Configuration{{0, 0}, {3, 0}}
	moves := g.Successors(cfg)
	got := map[int][]Position{}
	for _, m := range moves {
		got[m.Piece] = append(got[m.Piece], m.To)
	}
	assert.Equal(t, []Position{{2, 0}}, got[0])
	assert.ElementsMatch(t, []Position{{4, 0}, {1, 0}}, got[1])
}

func TestDirectionBetween(t *testing.T) {
	d, ok := DirectionBetween(Position{1, 1}, Position{1, 5})
	require.True(t, ok)
	assert.Equal(t, Down, d)

	_, ok = DirectionBetween(Position{1, 1}, Position{2, 2})
	assert.False(t, ok)
	_, ok = DirectionBetween(Position{1, 1}, Position{1, 1})
	assert.False(t, ok)
}

func TestConfigurationSerialize_Deterministic(t *testing.T) {
	cfg := Configuration{{1, 2}, {3, 4}}
	var a, b bytes.Buffer
	require.NoError(t, cfg.Serialize(&a))
	require.NoError(t, cfg.Clone().Serialize(&b))
	assert.Equal(t, a.Bytes(), b.Bytes())

	var back Configuration
	require.NoError(t, back.Deserialize(&a))
	assert.True(t, back.Equal(cfg))
}

func TestRenderString(t *testing.T) {
	color.Enable = false
	defer func() { color.Enable = true }()

	g := parse(t, "#..", "...")
	out := g.RenderString(Configuration{{1, 0}, {2, 1}})
	want := "  0 1 2 \n" +
		"0 # C   \n" +
		"1     H \n"
	assert.Equal(t, want, out)
}
