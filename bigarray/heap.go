package bigarray

import (
	"container/heap"
	"fmt"
	"slices"

	"github.com/govalues/bignum"
)

func compareAsc(x, y bignum.Int) int  { return x.Cmp(y) }
func compareDesc(x, y bignum.Int) int { return y.Cmp(x) }

// items adapts a slice to [heap.Interface].
type items struct {
	v   []bignum.Int
	cmp func(x, y bignum.Int) int
}

func (h *items) Len() int           { return len(h.v) }
func (h *items) Less(i, j int) bool { return h.cmp(h.v[i], h.v[j]) < 0 }
func (h *items) Swap(i, j int)      { h.v[i], h.v[j] = h.v[j], h.v[i] }
func (h *items) Push(x any)         { h.v = append(h.v, x.(bignum.Int)) }

func (h *items) Pop() any {
	n := len(h.v) - 1
	x := h.v[n]
	h.v[n] = bignum.Int{}
	h.v = h.v[:n]
	return x
}

// Heap is a binary heap of integers.
// The element on top is the one ordered first by the compare function.
type Heap struct {
	h items
}

// NewHeap returns an empty heap ordered by cmp, which returns a negative
// number when x must be closer to the top than y.
// For example, [bignum.Int.Cmp] gives a min-heap.
// A nil cmp orders the heap as [NewMinHeap] does.
func NewHeap(cmp func(x, y bignum.Int) int) *Heap {
	return newHeap(nil, cmp)
}

// NewMinHeap returns an empty heap with the smallest element on top.
func NewMinHeap() *Heap {
	return NewHeap(compareAsc)
}

// NewMaxHeap returns an empty heap with the largest element on top.
func NewMaxHeap() *Heap {
	return NewHeap(compareDesc)
}

func newHeap(values []bignum.Int, cmp func(x, y bignum.Int) int) *Heap {
	if cmp == nil {
		cmp = compareAsc
	}
	h := &Heap{h: items{v: slices.Clone(values), cmp: cmp}}
	heap.Init(&h.h)
	return h
}

// Len returns the number of elements.
func (h *Heap) Len() int {
	return h.h.Len()
}

// Push adds v to the heap.
func (h *Heap) Push(v bignum.Int) {
	heap.Push(&h.h, v)
}

// Pop removes the element on top and returns it.
//
// Pop returns an error if the heap is empty.
func (h *Heap) Pop() (bignum.Int, error) {
	if h.Len() == 0 {
		return bignum.Int{}, fmt.Errorf("popping: %w", ErrEmpty)
	}
	return heap.Pop(&h.h).(bignum.Int), nil
}

// Peek returns the element on top without removing it.
//
// Peek returns an error if the heap is empty.
func (h *Heap) Peek() (bignum.Int, error) {
	if h.Len() == 0 {
		return bignum.Int{}, fmt.Errorf("peeking: %w", ErrEmpty)
	}
	return h.h.v[0], nil
}
