// Package ixheap defines sentinel errors and configuration options
// for the indexed min-heap.
package ixheap

import (
	"errors"
	"reflect"
)

// Sentinel errors for heap operations.
var (
	// ErrEmpty is returned by ExtractMin and Peek on a heap with no elements.
	ErrEmpty = errors.New("ixheap: heap is empty")

	// ErrInvalidKey indicates a key that cannot be ordered (a NaN float).
	ErrInvalidKey = errors.New("ixheap: key is not ordered")

	// ErrNilValue indicates a nil pointer or interface passed as a value.
	ErrNilValue = errors.New("ixheap: value is nil")

	// ErrCorrupt indicates that heap order or the identity index is broken.
	// It is returned by Validate and is the panic value for internal
	// bookkeeping failures; neither can happen under any valid sequence
	// of operations.
	ErrCorrupt = errors.New("ixheap: internal state corrupted")
)

// minCapacity is the initial length of the backing arrays. Slot 0 is
// never used, and with the half-full growth rule a default heap doubles
// on its first insertion.
const minCapacity = 3

// Options configures a Heap at construction time.
type Options struct {
	// Capacity is the initial length of the backing arrays (including
	// the unused slot 0). Values below minCapacity are raised to it.
	Capacity int
}

// Option represents a functional option for New.
type Option func(*Options)

// WithCapacity presizes the backing arrays. The heap still doubles once
// half of the capacity is in use.
func WithCapacity(n int) Option {
	return func(o *Options) {
		o.Capacity = n
	}
}

// DefaultOptions returns the Options used when New is called without any.
func DefaultOptions() Options {
	return Options{Capacity: minCapacity}
}

// isNil reports whether v holds a nil pointer, channel or interface.
// Only zero values can be nil, so reflection is skipped for everything else.
func isNil[V comparable](v V) bool {
	var zero V
	if v != zero {
		return false
	}
	rv := reflect.ValueOf(any(v))
	if !rv.IsValid() {
		return true // nil interface
	}
	switch rv.Kind() {
	case reflect.Pointer, reflect.Chan, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}
