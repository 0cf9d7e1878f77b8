package level

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slideworks/atomix/grid"
)

func TestLoadFile_Testdata(t *testing.T) {
	f, err := LoadFile(filepath.Join("..", "testdata", "levels.toml"))
	require.NoError(t, err)
	assert.Equal(t, []string{"Pair", "Water", "Already There", "Sealed"}, f.Names())

	l, err := f.Find("Water")
	require.NoError(t, err)
	p, err := l.Build()
	require.NoError(t, err)

	assert.Equal(t, "Water", p.Name)
	assert.Equal(t, 7, p.Grid.Width)
	assert.Equal(t, 6, p.Grid.Height)
	assert.Equal(t, grid.Configuration{{X: 5, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 4}}, p.Start)
	assert.Equal(t, grid.Configuration{{X: 3, Y: 2}, {X: 2, Y: 2}, {X: 4, Y: 2}}, p.Target)
	assert.False(t, p.Grid.IsWalkable(grid.Position{X: 3, Y: 3}))
	assert.True(t, p.Grid.IsWalkable(p.Start[0]), "atom cells are floor")

	_, err = f.Find("Nope")
	assert.ErrorIs(t, err, ErrUnknownLevel)
}

func TestLoadFile_NoLevels(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.toml")
	require.NoError(t, os.WriteFile(path, []byte("# nothing here\n"), 0o644))
	_, err := LoadFile(path)
	assert.ErrorIs(t, err, ErrNoLevels)
}

func TestParseFile(t *testing.T) {
	src := `
[[level]]
name = "One"
atoms = ["A", "B"]
diagram = "A.B"
solution = "AB."
expect = "solved"
`
	f, err := parseFile(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, f.Levels, 1)
	assert.Equal(t, ExpectSolved, f.Levels[0].Expect)

	p, err := f.Levels[0].Build()
	require.NoError(t, err)
	assert.Equal(t, grid.Configuration{{X: 0, Y: 0}, {X: 2, Y: 0}}, p.Start)
	assert.Equal(t, grid.Configuration{{X: 0, Y: 0}, {X: 1, Y: 0}}, p.Target)
}

func TestBuild_Errors(t *testing.T) {
	cases := []struct {
		name  string
		level Level
		err   error
	}{
		{"NoAtoms", Level{Diagram: "..."}, ErrNoAtoms},
		{"LongAtom", Level{Atoms: []string{"AB"}, Diagram: "AB"}, ErrBadAtom},
		{"WallAtom", Level{Atoms: []string{"#"}, Diagram: "#"}, ErrBadAtom},
		{"DuplicateSymbol", Level{Atoms: []string{"A", "A"}, Diagram: "A."}, ErrDuplicateAtom},
		{"NoDiagram", Level{Atoms: []string{"A"}}, ErrNoDiagram},
		{"Ragged", Level{Atoms: []string{"A"}, Diagram: "A..\n.."}, ErrRaggedDiagram},
		{"MissingInDiagram", Level{Atoms: []string{"A", "B"}, Diagram: "A..", Solution: "AB."}, ErrMissingAtom},
		{"MissingInSolution", Level{Atoms: []string{"A", "B"}, Diagram: "A.B", Solution: "A.."}, ErrMissingAtom},
		{"TwiceInDiagram", Level{Atoms: []string{"A"}, Diagram: "A.A", Solution: "A"}, ErrDuplicateAtom},
		{"SolutionTooWide", Level{Atoms: []string{"A"}, Diagram: "A.", Solution: "..A"}, ErrDiagramMismatch},
		{"SolutionTooTall", Level{Atoms: []string{"A"}, Diagram: "A.", Solution: "..\nA."}, ErrDiagramMismatch},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.level.Build()
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func writePNG(t *testing.T, path string, w, h int, pixels map[image.Point]color.NRGBA) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
		}
	}
	for p, c := range pixels {
		img.Set(p.X, p.Y, c)
	}
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
}

func TestBuild_Image(t *testing.T) {
	dir := t.TempDir()
	wall := color.NRGBA{A: 255}
	red := color.NRGBA{R: 255, A: 255}
	blue := color.NRGBA{B: 255, A: 255}

	writePNG(t, filepath.Join(dir, "diagram.png"), 4, 2, map[image.Point]color.NRGBA{
		{X: 0, Y: 0}: red,
		{X: 3, Y: 0}: blue,
		{X: 1, Y: 1}: wall,
	})
	writePNG(t, filepath.Join(dir, "solution.png"), 4, 2, map[image.Point]color.NRGBA{
		{X: 2, Y: 1}: red,
		{X: 3, Y: 1}: blue,
	})

	levelFile := filepath.Join(dir, "levels.toml")
	require.NoError(t, os.WriteFile(levelFile, []byte(`
[[level]]
name = "Picture"
atoms = ["C", "H"]
colors = [[255, 0, 0], [0, 0, 255]]
diagram_path = "diagram.png"
solution_path = "solution.png"
`), 0o644))

	f, err := LoadFile(levelFile)
	require.NoError(t, err)
	l, err := f.Find("Picture")
	require.NoError(t, err)
	p, err := l.Build()
	require.NoError(t, err)

	assert.Equal(t, 4, p.Grid.Width)
	assert.Equal(t, 2, p.Grid.Height)
	assert.False(t, p.Grid.IsWalkable(grid.Position{X: 1, Y: 1}))
	assert.True(t, p.Grid.IsWalkable(grid.Position{X: 0, Y: 0}))
	assert.Equal(t, grid.Configuration{{X: 0, Y: 0}, {X: 3, Y: 0}}, p.Start)
	assert.Equal(t, grid.Configuration{{X: 2, Y: 1}, {X: 3, Y: 1}}, p.Target)
}

func TestBuild_ImageSizeMismatch(t *testing.T) {
	dir := t.TempDir()
	red := color.NRGBA{R: 255, A: 255}
	writePNG(t, filepath.Join(dir, "a.png"), 3, 1, map[image.Point]color.NRGBA{{X: 0, Y: 0}: red})
	writePNG(t, filepath.Join(dir, "b.png"), 2, 1, map[image.Point]color.NRGBA{{X: 0, Y: 0}: red})

	l := Level{
		Name:         "Mismatch",
		Atoms:        []string{"C"},
		Colors:       [][3]uint8{{255, 0, 0}},
		DiagramPath:  "a.png",
		SolutionPath: "b.png",
		dir:          dir,
	}
	_, err := l.Build()
	assert.ErrorIs(t, err, ErrDiagramMismatch)
}
