package state

import "container/heap"

// OpenList is a min-priority queue of states ordered by Priority. Equal
// priorities pop in insertion order, which makes searches deterministic.
type OpenList struct {
	h    stateHeap
	next int
}

func NewOpenList() *OpenList {
	return &OpenList{}
}

func (o *OpenList) Len() int {
	return o.h.Len()
}

// Push queues s. Pushing a state that is already queued just re-sorts it.
func (o *OpenList) Push(s *State) {
	if s.InOpen() {
		o.Fix(s)
		return
	}
	s.seq = o.next
	o.next++
	heap.Push(&o.h, s)
}

// Pop removes and returns the state with the lowest priority, or nil.
func (o *OpenList) Pop() *State {
	if o.h.Len() == 0 {
		return nil
	}
	return heap.Pop(&o.h).(*State)
}

// Fix restores heap order after the priority of a queued state changed.
func (o *OpenList) Fix(s *State) {
	if !s.InOpen() {
		return
	}
	heap.Fix(&o.h, s.index)
}

// stateHeap implements heap.Interface.
type stateHeap []*State

func (h stateHeap) Len() int { return len(h) }

func (h stateHeap) Less(i, j int) bool {
	if h[i].Priority != h[j].Priority {
		return h[i].Priority < h[j].Priority
	}
	return h[i].seq < h[j].seq
}

func (h stateHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *stateHeap) Push(x any) {
	s := x.(*State)
	s.index = len(*h)
	*h = append(*h, s)
}

func (h *stateHeap) Pop() any {
	old := *h
	n := len(old)
	s := old[n-1]
	old[n-1] = nil
	s.index = -1
	*h = old[:n-1]
	return s
}
