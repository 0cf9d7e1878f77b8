package search

import "github.com/slideworks/atomix/grid"

// IsGoal reports whether cfg has the same formation as target: every piece
// sits at the same offset from piece 0 as it does in target. Where piece 0
// itself is on the board does not matter.
func IsGoal(cfg, target grid.Configuration) bool {
	if len(cfg) != len(target) {
		return false
	}
	if len(cfg) == 0 {
		return true
	}
	for i := 1; i < len(cfg); i++ {
		if cfg[i].Sub(cfg[0]) != target[i].Sub(target[0]) {
			return false
		}
	}
	return true
}

// Heuristic sums, over every piece but piece 0, the Manhattan distance
// between its offset from piece 0 in target and its offset from piece 0 in
// cfg. It is zero exactly when IsGoal holds.
//
// The estimate is not admissible for sliding moves, so searches guided by it
// find a solution but not necessarily the shortest one.
func Heuristic(cfg, target grid.Configuration) int {
	if len(cfg) == 0 || len(target) == 0 {
		return 0
	}
	n := min(len(cfg), len(target))
	h := 0
	for i := 1; i < n; i++ {
		want := target[i].Sub(target[0])
		got := cfg[i].Sub(cfg[0])
		h += want.Sub(got).Manhattan()
	}
	return h
}
