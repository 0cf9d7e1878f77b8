package level

import (
	"fmt"
	"image"
	"image/color"
	_ "image/png"
	"os"

	"github.com/slideworks/atomix/grid"
)

var black = [3]uint8{0, 0, 0}

func (l *Level) buildImage() (*grid.Grid, grid.Configuration, grid.Configuration, error) {
	if len(l.Colors) != len(l.Atoms) {
		return nil, nil, nil, fmt.Errorf("%w: %d colors for %d atoms", ErrMissingAtom, len(l.Colors), len(l.Atoms))
	}

	diagram, err := readImage(l.resolve(l.DiagramPath))
	if err != nil {
		return nil, nil, nil, err
	}
	bounds := diagram.Bounds()
	cells := make([]grid.Cell, 0, bounds.Dx()*bounds.Dy())
	for y := 0; y < bounds.Dy(); y++ {
		for x := 0; x < bounds.Dx(); x++ {
			px := rgb(diagram.At(bounds.Min.X+x, bounds.Min.Y+y))
			cells = append(cells, grid.Cell{
				Position: grid.Position{X: x, Y: y},
				Walkable: px != black,
			})
		}
	}
	g, err := grid.NewGrid(bounds.Dx(), bounds.Dy(), cells)
	if err != nil {
		return nil, nil, nil, err
	}

	start, err := l.locateColors("diagram", diagram)
	if err != nil {
		return nil, nil, nil, err
	}

	if l.SolutionPath == "" {
		return nil, nil, nil, fmt.Errorf("%w: solution_path", ErrNoDiagram)
	}
	solution, err := readImage(l.resolve(l.SolutionPath))
	if err != nil {
		return nil, nil, nil, err
	}
	if solution.Bounds().Dx() != bounds.Dx() || solution.Bounds().Dy() != bounds.Dy() {
		return nil, nil, nil, fmt.Errorf("%w: %v vs %v", ErrDiagramMismatch, solution.Bounds().Size(), bounds.Size())
	}
	target, err := l.locateColors("solution", solution)
	if err != nil {
		return nil, nil, nil, err
	}
	return g, start, target, nil
}

func readImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return img, nil
}

func rgb(c color.Color) [3]uint8 {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return [3]uint8{n.R, n.G, n.B}
}

// locateColors finds the single pixel of every atom colour.
func (l *Level) locateColors(what string, img image.Image) (grid.Configuration, error) {
	index := make(map[[3]uint8]int, len(l.Colors))
	for i, c := range l.Colors {
		index[c] = i
	}
	bounds := img.Bounds()
	cfg := make(grid.Configuration, len(l.Atoms))
	found := make([]bool, len(l.Atoms))
	for y := 0; y < bounds.Dy(); y++ {
		for x := 0; x < bounds.Dx(); x++ {
			i, ok := index[rgb(img.At(bounds.Min.X+x, bounds.Min.Y+y))]
			if !ok {
				continue
			}
			if found[i] {
				return nil, fmt.Errorf("%w: %q twice in %s", ErrDuplicateAtom, l.Atoms[i], what)
			}
			cfg[i] = grid.Position{X: x, Y: y}
			found[i] = true
		}
	}
	for i, ok := range found {
		if !ok {
			return nil, fmt.Errorf("%w: %q not in %s", ErrMissingAtom, l.Atoms[i], what)
		}
	}
	return cfg, nil
}
