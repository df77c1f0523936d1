package value

import "container/heap"

// PriorityQueue is an opaque, reference-counted min-priority-queue
// backed by container/heap.
type PriorityQueue struct {
	refCounted
	h pqHeap
}

type pqEntry struct {
	priority float64
	item     Value
}

type pqHeap []pqEntry

func (h pqHeap) Len() int            { return len(h) }
func (h pqHeap) Less(i, j int) bool  { return h[i].priority < h[j].priority }
func (h pqHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *pqHeap) Push(x any)         { *h = append(*h, x.(pqEntry)) }
func (h *pqHeap) Pop() any {
	old := *h
	n := len(old)
	entry := old[n-1]
	*h = old[:n-1]
	return entry
}

// NewPriorityQueue constructs an empty PriorityQueue.
func NewPriorityQueue() *PriorityQueue { return &PriorityQueue{} }

func (p *PriorityQueue) Kind() Kind   { return KindPriorityQueue }
func (p *PriorityQueue) Truthy() bool { return p.h.Len() > 0 }
func (p *PriorityQueue) String() string {
	return stringifyCycle(p, make(map[any]bool))
}

func (p *PriorityQueue) Retain() Value {
	p.retain()
	return p
}

func (p *PriorityQueue) Release() {
	p.release(func() {
		for _, e := range p.h {
			e.item.Release()
		}
		p.h = nil
	})
}

// Size returns the element count.
func (p *PriorityQueue) Size() int { return p.h.Len() }

// Push inserts item with the given priority (lower dequeues first),
// taking ownership of the caller's reference.
func (p *PriorityQueue) Push(priority float64, item Value) {
	heap.Push(&p.h, pqEntry{priority: priority, item: item})
}

// Pop removes and returns the lowest-priority item, transferring
// ownership to the caller. ok is false when empty.
func (p *PriorityQueue) Pop() (Value, bool) {
	if p.h.Len() == 0 {
		return nil, false
	}
	entry := heap.Pop(&p.h).(pqEntry)
	return entry.item, true
}
