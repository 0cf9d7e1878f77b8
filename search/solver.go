// Package search solves atomix puzzles with a best-first (A*-style) search
// over piece configurations.
//
// The goal is a formation: every piece must sit at the same offset from piece
// 0 as in the target configuration, wherever piece 0 ends up. The search is
// satisficing. Its heuristic is not admissible for sliding moves and the step
// cost between two states is the heuristic distance between them, so the path
// found is a solution but not necessarily the shortest one.
package search

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/slideworks/atomix/cas"
	"github.com/slideworks/atomix/grid"
	"github.com/slideworks/atomix/state"
)

// Solver runs one search at a time. The open list, closed list and state
// cache are created fresh by every call to Solve, so one Solver can be reused
// sequentially and separate Solvers can run in parallel.
type Solver struct {
	Grid   *grid.Grid
	Start  grid.Configuration
	Target grid.Configuration

	// Reporter is notified once per iteration. Nil means silent.
	Reporter Reporter

	open   *state.OpenList
	closed cas.CAS
	cache  *state.Cache
	stats  Statistics
}

func NewSolver(g *grid.Grid, start, target grid.Configuration) *Solver {
	return &Solver{
		Grid:   g,
		Start:  start,
		Target: target,
	}
}

// Solve searches for a sequence of slides turning Start into Target's
// formation. A puzzle without a solution is reported with Solved == false and
// a nil error; errors are reserved for malformed input.
func (s *Solver) Solve() (*Result, error) {
	return s.SolveContext(context.Background())
}

// SolveContext is Solve with cancellation. The context is checked once per
// iteration and its error is returned when it is done.
func (s *Solver) SolveContext(ctx context.Context) (*Result, error) {
	if err := Validate(s.Grid, s.Start, s.Target); err != nil {
		return nil, err
	}
	reporter := s.Reporter
	if reporter == nil {
		reporter = SilentReporter{}
	}

	runID := uuid.NewString()
	logger := log.With().Str("run_id", runID).Logger()
	logger.Debug().
		Int("width", s.Grid.Width).
		Int("height", s.Grid.Height).
		Int("pieces", len(s.Start)).
		Msg("starting search")

	s.open = state.NewOpenList()
	s.closed = cas.NewMemoryCAS()
	s.cache = state.NewCache()
	s.stats = Statistics{}
	began := time.Now()

	start, _, err := s.cache.Canonical(s.Start.Clone())
	if err != nil {
		return nil, err
	}
	start.Prev = nil
	start.SetCost(0, Heuristic(start.Config, s.Target))
	s.open.Push(start)

	for s.open.Len() > 0 {
		if err := ctx.Err(); err != nil {
			logger.Debug().Int("iterations", s.stats.Iterations).Msg("search cancelled")
			return nil, err
		}
		s.stats.Iterations++
		if n := s.open.Len(); n > s.stats.MaxOpenSize {
			s.stats.MaxOpenSize = n
		}

		current := s.open.Pop()
		if _, err := s.closed.Put(current.Config); err != nil {
			return nil, fmt.Errorf("closing state %s: %w", current.Config, err)
		}

		reporter.Progress(Progress{
			Iteration: s.stats.Iterations,
			Elapsed:   time.Since(began),
			Heuristic: current.Heuristic,
			Priority:  current.Priority,
			OpenSize:  s.open.Len(),
		})

		if IsGoal(current.Config, s.Target) {
			path := current.Path()
			result := s.result(runID, path, began)
			reporter.Finish(result.Statistics)
			logger.Debug().
				Int("iterations", s.stats.Iterations).
				Int("moves", result.Statistics.Moves).
				Msg("search solved")
			return result, nil
		}

		if err := s.expand(current); err != nil {
			return nil, err
		}
	}

	result := s.result(runID, nil, began)
	reporter.Finish(result.Statistics)
	logger.Debug().
		Int("iterations", s.stats.Iterations).
		Int("unique_states", result.Statistics.UniqueStates).
		Msg("search exhausted without a solution")
	return result, nil
}

// expand generates the neighbors of current and relaxes each one that has
// not been closed yet.
func (s *Solver) expand(current *state.State) error {
	neighbors, known, err := s.cache.Expand(s.Grid, current)
	if err != nil {
		return err
	}
	s.stats.Expanded++
	s.stats.Generated += len(neighbors)
	s.stats.DuplicateStates += known

	for _, n := range neighbors {
		closed, err := s.closed.Contains(n.Config)
		if err != nil {
			return fmt.Errorf("checking closed list: %w", err)
		}
		if closed {
			continue
		}

		// The step cost is the formation distance between the two states.
		cost := current.Cost + Heuristic(n.Config, current.Config)
		if n.InOpen() && cost >= n.Cost {
			continue
		}
		n.SetCost(cost, Heuristic(n.Config, s.Target))
		n.Prev = current
		if n.InOpen() {
			s.open.Fix(n)
		} else {
			s.open.Push(n)
		}
		log.Trace().
			Stringer("from", current.Config).
			Stringer("to", n.Config).
			Int("g", n.Cost).
			Int("h", n.Heuristic).
			Msg("relaxed neighbor")
	}
	return nil
}

func (s *Solver) result(runID string, path []*state.State, began time.Time) *Result {
	stats := s.stats
	stats.UniqueStates = s.cache.Len()
	stats.ClosedStates = s.closed.Len()
	stats.Elapsed = time.Since(began)
	if len(path) > 0 {
		stats.Moves = len(path) - 1
	}
	return &Result{
		RunID:      runID,
		Solved:     path != nil,
		Path:       path,
		Statistics: stats,
	}
}

// Solve is a convenience wrapper for a silent one-off search.
func Solve(g *grid.Grid, start, target grid.Configuration) (*Result, error) {
	return NewSolver(g, start, target).Solve()
}
