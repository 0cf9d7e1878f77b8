package search

import (
	"errors"
	"fmt"

	"github.com/slideworks/atomix/grid"
)

// Sentinel errors for malformed puzzles. An unsolvable puzzle is not an
// error: Solve reports it through Result.Solved.
var (
	ErrNilGrid            = errors.New("search: grid is nil")
	ErrEmptyConfiguration = errors.New("search: configuration has no pieces")
	ErrLengthMismatch     = errors.New("search: start and target have different piece counts")
	ErrOutOfBounds        = errors.New("search: piece is outside the grid")
	ErrNotWalkable        = errors.New("search: piece is on a non-walkable cell")
	ErrOverlappingPieces  = errors.New("search: two pieces share a cell")
)

// Validate checks that start and target describe the same pieces and that
// every piece sits alone on a walkable in-bounds cell.
func Validate(g *grid.Grid, start, target grid.Configuration) error {
	if g == nil {
		return ErrNilGrid
	}
	if len(start) == 0 || len(target) == 0 {
		return ErrEmptyConfiguration
	}
	if len(start) != len(target) {
		return fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(start), len(target))
	}
	if err := validateConfiguration(g, "start", start); err != nil {
		return err
	}
	return validateConfiguration(g, "target", target)
}

func validateConfiguration(g *grid.Grid, name string, cfg grid.Configuration) error {
	seen := make(map[grid.Position]int, len(cfg))
	for i, p := range cfg {
		if !g.IsInBounds(p) {
			return fmt.Errorf("%w: %s piece %d at %s", ErrOutOfBounds, name, i, p)
		}
		if !g.IsWalkable(p) {
			return fmt.Errorf("%w: %s piece %d at %s", ErrNotWalkable, name, i, p)
		}
		if j, ok := seen[p]; ok {
			return fmt.Errorf("%w: %s pieces %d and %d at %s", ErrOverlappingPieces, name, j, i, p)
		}
		seen[p] = i
	}
	return nil
}
