package ixheap

import (
	"cmp"
	"fmt"
	"strings"
)

// Heap is an indexed binary min-heap of (key, value) pairs.
//
// Keys order the heap; values are identities. Each value appears at most
// once, and an index from value to array slot lets Upsert and Remove
// reach any element in O(1) before an O(log n) resettle.
//
// Layout: keys[i] and vals[i] form the pair stored at position i. Position 1
// is the root, the children of i are 2i and 2i+1, and slot 0 is unused.
//
// Invariants after every exported call:
//   - keys[i] >= keys[i/2] for every live i > 1.
//   - index[vals[i]] == i for every live i, and len(index) == Len().
//
// A Heap is not safe for concurrent use.
type Heap[K cmp.Ordered, V comparable] struct {
	keys  []K
	vals  []V
	index map[V]int
	next  int // first free slot; Len() == next-1
}

// New returns an empty heap.
//
// Complexity: O(capacity).
func New[K cmp.Ordered, V comparable](opts ...Option) *Heap[K, V] {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Capacity < minCapacity {
		cfg.Capacity = minCapacity
	}

	return &Heap[K, V]{
		keys:  make([]K, cfg.Capacity),
		vals:  make([]V, cfg.Capacity),
		index: make(map[V]int, cfg.Capacity/2),
		next:  1,
	}
}

// Len returns the number of elements in the heap.
func (h *Heap[K, V]) Len() int { return h.next - 1 }

// Cap returns the current length of the backing arrays, slot 0 included.
func (h *Heap[K, V]) Cap() int { return len(h.keys) }

// Upsert inserts val with the given key, or, if val is already present,
// replaces its key and moves it to the position the new key requires.
// The size of the heap never changes for a present value.
//
// Returns ErrInvalidKey for a NaN key and ErrNilValue for a nil value.
//
// Complexity: O(log n) amortized.
func (h *Heap[K, V]) Upsert(key K, val V) error {
	if key != key { // NaN
		return ErrInvalidKey
	}
	if isNil(val) {
		return ErrNilValue
	}

	if i, ok := h.index[val]; ok {
		h.keys[i] = key
		h.fix(i)
		return nil
	}

	if h.next >= len(h.keys)/2 {
		h.grow()
	}
	i := h.next
	h.keys[i] = key
	h.vals[i] = val
	h.index[val] = i
	h.next++
	h.up(i)

	return nil
}

// ExtractMin removes and returns the pair with the smallest key.
// Returns ErrEmpty if the heap has no elements.
//
// Complexity: O(log n).
func (h *Heap[K, V]) ExtractMin() (K, V, error) {
	if h.Len() == 0 {
		var (
			k K
			v V
		)
		return k, v, ErrEmpty
	}
	k, v := h.removeAt(1)

	return k, v, nil
}

// Peek returns the pair with the smallest key without removing it.
// Returns ErrEmpty if the heap has no elements.
func (h *Heap[K, V]) Peek() (K, V, error) {
	if h.Len() == 0 {
		var (
			k K
			v V
		)
		return k, v, ErrEmpty
	}

	return h.keys[1], h.vals[1], nil
}

// Remove deletes val from the heap and returns its pair. The boolean is
// false, and the heap untouched, if val is not present.
//
// Complexity: O(log n).
func (h *Heap[K, V]) Remove(val V) (K, V, bool) {
	i, ok := h.index[val]
	if !ok {
		var (
			k K
			v V
		)
		return k, v, false
	}
	k, v := h.removeAt(i)

	return k, v, true
}

// Contains reports whether val is in the heap.
func (h *Heap[K, V]) Contains(val V) bool {
	_, ok := h.index[val]
	return ok
}

// Key returns the current key of val.
func (h *Heap[K, V]) Key(val V) (K, bool) {
	i, ok := h.index[val]
	if !ok {
		var k K
		return k, false
	}

	return h.keys[i], true
}

// Validate checks heap order and index consistency over every live slot.
// It returns an error wrapping ErrCorrupt describing the first violation.
//
// Complexity: O(n).
func (h *Heap[K, V]) Validate() error {
	if len(h.index) != h.Len() {
		return fmt.Errorf("%w: index holds %d identities, heap holds %d",
			ErrCorrupt, len(h.index), h.Len())
	}
	for i := 1; i < h.next; i++ {
		if j, ok := h.index[h.vals[i]]; !ok || j != i {
			return fmt.Errorf("%w: value at slot %d indexed at %d (present=%t)",
				ErrCorrupt, i, j, ok)
		}
		if i > 1 && h.keys[i] < h.keys[i/2] {
			return fmt.Errorf("%w: key at slot %d (%v) below parent %d (%v)",
				ErrCorrupt, i, h.keys[i], i/2, h.keys[i/2])
		}
	}

	return nil
}

// String renders the keys level by level, one tree level per line.
func (h *Heap[K, V]) String() string {
	var sb strings.Builder
	for first := 1; first < h.next; first *= 2 {
		for i := first; i < 2*first && i < h.next; i++ {
			if i > first {
				sb.WriteByte(' ')
			}
			fmt.Fprint(&sb, h.keys[i])
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// removeAt detaches the pair at position i. The last element takes its
// place and may have to move either up or down from there.
func (h *Heap[K, V]) removeAt(i int) (K, V) {
	key, val := h.keys[i], h.vals[i]
	last := h.next - 1

	h.swap(i, last)
	delete(h.index, val)

	var (
		zk K
		zv V
	)
	h.keys[last], h.vals[last] = zk, zv
	h.next = last

	if i < last {
		h.fix(i)
	}

	return key, val
}

// fix restores heap order around position i after its key changed.
func (h *Heap[K, V]) fix(i int) {
	if !h.up(i) {
		h.down(i)
	}
}

// up moves the element at i toward the root while it is smaller than its
// parent and reports whether it moved.
func (h *Heap[K, V]) up(i int) bool {
	moved := false
	for i > 1 {
		parent := i / 2
		if !(h.keys[i] < h.keys[parent]) {
			break
		}
		h.swap(i, parent)
		i = parent
		moved = true
	}

	return moved
}

// down moves the element at i toward the leaves while a child is smaller.
func (h *Heap[K, V]) down(i int) {
	for {
		smallest := 2 * i
		if smallest >= h.next {
			return
		}
		if right := smallest + 1; right < h.next && h.keys[right] < h.keys[smallest] {
			smallest = right
		}
		if !(h.keys[smallest] < h.keys[i]) {
			return
		}
		h.swap(i, smallest)
		i = smallest
	}
}

// swap exchanges the pairs at a and b and their index entries.
// A live value without an index entry means the bookkeeping is broken.
func (h *Heap[K, V]) swap(a, b int) {
	if a == b {
		return
	}
	va, vb := h.vals[a], h.vals[b]
	if _, ok := h.index[va]; !ok {
		panic(fmt.Errorf("%w: slot %d has no index entry", ErrCorrupt, a))
	}
	if _, ok := h.index[vb]; !ok {
		panic(fmt.Errorf("%w: slot %d has no index entry", ErrCorrupt, b))
	}
	h.index[va] = b
	h.index[vb] = a
	h.keys[a], h.keys[b] = h.keys[b], h.keys[a]
	h.vals[a], h.vals[b] = vb, va
}

// grow doubles the backing arrays.
func (h *Heap[K, V]) grow() {
	n := 2 * len(h.keys)
	keys := make([]K, n)
	vals := make([]V, n)
	copy(keys, h.keys)
	copy(vals, h.vals)
	h.keys, h.vals = keys, vals
}
