package ixheap_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/frontier/ixheap"
)

// BenchmarkHeap_UpsertExtract fills a heap with N random keys and drains it.
func BenchmarkHeap_UpsertExtract(b *testing.B) {
	const N = 10000
	rng := rand.New(rand.NewSource(1))
	keys := make([]int64, N)
	for i := range keys {
		keys[i] = rng.Int63n(1 << 20)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		h := ixheap.New[int64, int](ixheap.WithCapacity(2*N + 2))
		for v, k := range keys {
			_ = h.Upsert(k, v)
		}
		for h.Len() > 0 {
			_, _, _ = h.ExtractMin()
		}
	}
}

// BenchmarkHeap_DecreaseKey measures re-keying present identities.
func BenchmarkHeap_DecreaseKey(b *testing.B) {
	const N = 10000
	h := ixheap.New[int64, int]()
	for v := 0; v < N; v++ {
		_ = h.Upsert(int64(N+v), v)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		v := i % N
		k, _ := h.Key(v)
		_ = h.Upsert(k-1, v)
	}
}

// BenchmarkHeap_RemoveReinsert measures the remove-then-insert pattern used
// by the shortest-path frontier.
func BenchmarkHeap_RemoveReinsert(b *testing.B) {
	const N = 10000
	h := ixheap.New[int64, int]()
	for v := 0; v < N; v++ {
		_ = h.Upsert(int64(v), v)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		v := i % N
		k, _, _ := h.Remove(v)
		_ = h.Upsert(k, v)
	}
}
