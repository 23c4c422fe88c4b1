package ixheap_test

import (
	"fmt"

	"github.com/katalvlaran/frontier/ixheap"
)

// ExampleHeap shows decrease-key and removal by identity.
func ExampleHeap() {
	h := ixheap.New[int64, string]()
	_ = h.Upsert(14, "F")
	_ = h.Upsert(9, "C")
	_ = h.Upsert(7, "B")

	// A shorter route to F was found: same identity, smaller key.
	_ = h.Upsert(11, "F")

	// B is no longer wanted.
	_, _, _ = h.Remove("B")

	for h.Len() > 0 {
		k, v, _ := h.ExtractMin()
		fmt.Printf("%s=%d\n", v, k)
	}
	// Output:
	// C=9
	// F=11
}

// ExampleHeap_ExtractMin shows the empty-heap sentinel.
func ExampleHeap_ExtractMin() {
	h := ixheap.New[int, int]()
	_, _, err := h.ExtractMin()
	fmt.Println(err)
	// Output: ixheap: heap is empty
}
