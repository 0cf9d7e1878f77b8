package level

import (
	"fmt"
	"strings"

	"github.com/slideworks/atomix/grid"
)

const wallRune = '#'

func diagramRows(s string) [][]rune {
	lines := strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	rows := make([][]rune, len(lines))
	for i, l := range lines {
		rows[i] = []rune(l)
	}
	return rows
}

func (l *Level) buildASCII() (*grid.Grid, grid.Configuration, grid.Configuration, error) {
	rows := diagramRows(l.Diagram)
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, nil, nil, ErrNoDiagram
	}
	width := len(rows[0])
	walk := make([][]bool, len(rows))
	for y, row := range rows {
		if len(row) != width {
			return nil, nil, nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrRaggedDiagram, y, len(row), width)
		}
		walk[y] = make([]bool, width)
		for x, r := range row {
			walk[y][x] = r != wallRune
		}
	}
	g, err := grid.FromWalkable(walk)
	if err != nil {
		return nil, nil, nil, err
	}

	start, err := l.locateRunes("diagram", rows)
	if err != nil {
		return nil, nil, nil, err
	}

	solution := diagramRows(l.Solution)
	if len(solution) > g.Height {
		return nil, nil, nil, fmt.Errorf("%w: %d rows, diagram has %d", ErrDiagramMismatch, len(solution), g.Height)
	}
	for y, row := range solution {
		if len(row) > g.Width {
			return nil, nil, nil, fmt.Errorf("%w: row %d has %d cells, diagram has %d", ErrDiagramMismatch, y, len(row), g.Width)
		}
	}
	target, err := l.locateRunes("solution", solution)
	if err != nil {
		return nil, nil, nil, err
	}
	return g, start, target, nil
}

// locateRunes finds the single occurrence of every atom symbol.
func (l *Level) locateRunes(what string, rows [][]rune) (grid.Configuration, error) {
	index := make(map[rune]int, len(l.Atoms))
	for i, a := range l.Atoms {
		index[[]rune(a)[0]] = i
	}
	cfg := make(grid.Configuration, len(l.Atoms))
	found := make([]bool, len(l.Atoms))
	for y, row := range rows {
		for x, r := range row {
			i, ok := index[r]
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
