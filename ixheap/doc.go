// Package ixheap provides an indexed binary min-heap: a priority queue that,
// besides Upsert and ExtractMin, can update or remove any element by its
// identity in O(log n).
//
// Overview:
//
//   - Keys are any cmp.Ordered type (NaN keys are rejected); values are any
//     comparable type and act as identities, so each value is stored once.
//   - The tree lives in 1-indexed parallel arrays (root at 1, children of i at
//     2i and 2i+1) with a map from value to its current slot. Every swap
//     updates both slots' index entries.
//   - The backing arrays double once half of their length is in use.
//
// Removal semantics:
//
//	Remove(v) swaps v with the last occupied slot, clears that slot and then
//	resettles the relocated element: up if it is smaller than its new parent,
//	down otherwise. ExtractMin is Remove applied to the root.
//
// Upsert semantics:
//
//	Upsert on a present value replaces its key in place and resettles it, so
//	decrease-key and increase-key are both a single call and the heap-order
//	invariant holds after every operation.
//
// Errors (sentinel):
//
//   - ErrEmpty:      ExtractMin or Peek on an empty heap.
//   - ErrInvalidKey: NaN key passed to Upsert.
//   - ErrNilValue:   nil pointer/interface value passed to Upsert.
//   - ErrCorrupt:    returned by Validate, or the panic value if the index
//     ever misses a live element (a defect, not an input error).
//
// Not-found is not an error: Remove, Key and Contains report absence with a
// boolean.
//
// Complexity:
//
//   - Upsert, ExtractMin, Remove: O(log n) (Upsert amortized over resizes).
//   - Len, Cap, Peek, Contains, Key: O(1).
//   - Validate, String: O(n).
//
// Thread safety:
//
//   - A Heap must not be shared between goroutines without external locking.
package ixheap
