// Package state holds search nodes and the cache that keeps exactly one node
// per distinct configuration.
package state

import (
	"fmt"

	"github.com/slideworks/atomix/grid"
)

// State is a search node. Config never changes after creation; the cost
// fields and Prev are bookkeeping owned by whichever search is running.
//
// Two states are the same node when their configurations are equal. The Cache
// guarantees that at most one *State exists per configuration, so pointer
// identity can be used within a search.
type State struct {
	Config grid.Configuration

	Cost      int // g
	Heuristic int // h
	Priority  int // f = g + h

	// Prev is the state this one was last reached from. It forms a tree
	// rooted at the start state.
	Prev *State

	index int // position in the open list, -1 when not queued
	seq   int // insertion order, used to break priority ties
}

func New(cfg grid.Configuration) *State {
	return &State{Config: cfg, index: -1}
}

// SetCost updates g and h and recomputes the priority.
func (s *State) SetCost(cost, heuristic int) int {
	s.Cost = cost
	s.Heuristic = heuristic
	s.Priority = cost + heuristic
	return s.Priority
}

// Equal compares configurations only.
func (s *State) Equal(o *State) bool {
	if o == nil {
		return false
	}
	return s.Config.Equal(o.Config)
}

// InOpen reports whether the state is currently queued in an open list.
func (s *State) InOpen() bool {
	return s.index >= 0
}

// Path follows Prev links back to the root and returns the states in
// root-to-s order. A state without a predecessor yields a one-element path.
func (s *State) Path() []*State {
	var path []*State
	for cur := s; cur != nil; cur = cur.Prev {
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

func (s *State) String() string {
	return fmt.Sprintf("S%s g=%d h=%d f=%d", s.Config, s.Cost, s.Heuristic, s.Priority)
}
