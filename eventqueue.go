package contagiongo

import "container/heap"

// Event is a tuple of (time, kind, source, target), ordered strictly by
// time with ties broken by insertion order. Events are immutable once
// enqueued; stale events are filtered at dequeue time by the handler
// inspecting current node status rather than by cancellation, per spec.md
// section 3.
type Event struct {
	Time   float64
	Kind   EventKind
	Source int
	Target int

	seq int // insertion order, used only to break time ties deterministically
}

// eventHeap is the container/heap.Interface backing EventQueue. Ties are
// broken by seq (insertion order) rather than left unspecified, satisfying
// spec.md section 5's "implementations must be deterministic given a fixed
// RNG seed".
type eventHeap []*Event

func (h eventHeap) Len() int { return len(h) }
func (h eventHeap) Less(i, j int) bool {
	if h[i].Time != h[j].Time {
		return h[i].Time < h[j].Time
	}
	return h[i].seq < h[j].seq
}
func (h eventHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *eventHeap) Push(x interface{}) {
	*h = append(*h, x.(*Event))
}
func (h *eventHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return item
}

// EventQueue is a min-heap priority queue of scheduled events keyed by
// time, with a hard upper time bound Tmax that silently discards future
// events, per spec.md section 4.2.
type EventQueue struct {
	h      eventHeap
	tmax   float64
	nextID int
}

// NewEventQueue creates an empty EventQueue with the given horizon tmax.
func NewEventQueue(tmax float64) *EventQueue {
	q := &EventQueue{tmax: tmax}
	heap.Init(&q.h)
	return q
}

// Add is a no-op if event.Time >= tmax; otherwise it heap-inserts the event
// in O(log n).
func (q *EventQueue) Add(e Event) {
	if e.Time >= q.tmax {
		return
	}
	e.seq = q.nextID
	q.nextID++
	heap.Push(&q.h, &e)
}

// PopAndRun removes the minimum-time event and returns it. Undefined
// (panics) if the queue is empty; callers must check Len first.
func (q *EventQueue) PopAndRun() Event {
	if q.h.Len() == 0 {
		panic(ErrEmptyQueue)
	}
	e := heap.Pop(&q.h).(*Event)
	return *e
}

// Len returns the number of pending events.
func (q *EventQueue) Len() int {
	return q.h.Len()
}

// Empty reports whether the queue has no pending events (the distilled
// spec's "truthiness" check, spec.md section 4.2).
func (q *EventQueue) Empty() bool {
	return q.h.Len() == 0
}
