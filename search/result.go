package search

import (
	"time"

	"github.com/slideworks/atomix/grid"
	"github.com/slideworks/atomix/state"
)

// Result is the outcome of a search. When Solved is false Path is nil.
type Result struct {
	RunID      string
	Solved     bool
	Path       []*state.State // start to goal, inclusive
	Statistics Statistics
}

// Statistics describes the work a search did.
type Statistics struct {
	Iterations      int // states popped from the open list
	Expanded        int // states whose successors were generated
	Generated       int // successor states produced, duplicates included
	UniqueStates    int // distinct configurations discovered
	DuplicateStates int // successors that mapped to an already known configuration
	ClosedStates    int
	MaxOpenSize     int
	Moves           int // length of the solution, zero when unsolved
	Elapsed         time.Duration
}

// Moves describes the path as individual slides. Consecutive states differ in
// exactly one piece.
func (r *Result) Moves() []grid.Move {
	if r == nil || len(r.Path) < 2 {
		return nil
	}
	out := make([]grid.Move, 0, len(r.Path)-1)
	for i := 1; i < len(r.Path); i++ {
		prev, next := r.Path[i-1].Config, r.Path[i].Config
		for piece := range next {
			if prev[piece] == next[piece] {
				continue
			}
			dir, _ := grid.DirectionBetween(prev[piece], next[piece])
			out = append(out, grid.Move{
				Piece:     piece,
				Direction: dir,
				From:      prev[piece],
				To:        next[piece],
				Result:    next,
			})
		}
	}
	return out
}

// Configurations returns the configuration of every state on the path.
func (r *Result) Configurations() []grid.Configuration {
	if r == nil {
		return nil
	}
	out := make([]grid.Configuration, len(r.Path))
	for i, s := range r.Path {
		out[i] = s.Config
	}
	return out
}
