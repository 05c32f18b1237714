// Package partition provides helpers for splitting documents into folds.
package partition

import (
	"errors"
	"fmt"
)

var (
	// ErrUnequalSubsets is returned when the documents cannot be split into equal subsets.
	ErrUnequalSubsets = errors.New("partition: can't create equal subsets")
	// ErrIndexOutOfRange is returned when the excluded index is not part of the sequence.
	ErrIndexOutOfRange = errors.New("partition: index out of range")
)

// Subset splits the items into contiguous subsets of size k.
// For example splitting [foo bar baz qux] with k=2 results in [[foo bar] [baz qux]].
// The length of items must be evenly divisible by k.
func Subset[T any](items []T, k int) ([][]T, error) {
	if k <= 0 || len(items)%k != 0 {
		return nil, fmt.Errorf("%w when k=%d", ErrUnequalSubsets, k)
	}
	subsets := make([][]T, 0, len(items)/k)
	for i := 0; i < len(items); i += k {
		subset := make([]T, k)
		copy(subset, items[i:i+k])
		subsets = append(subsets, subset)
	}
	return subsets, nil
}

// Rotate returns a copy of the items rotated left by i positions,
// so that the element at index i comes first.
func Rotate[T any](items []T, i int) []T {
	rotated := make([]T, 0, len(items))
	if len(items) == 0 {
		return rotated
	}
	i = ((i % len(items)) + len(items)) % len(items)
	rotated = append(rotated, items[i:]...)
	return append(rotated, items[:i]...)
}

// ExcludeIndex returns a copy of the items without the element at index i.
// The remaining elements follow the rotated order, starting right after i.
func ExcludeIndex[T any](items []T, i int) ([]T, error) {
	if i < 0 || i >= len(items) {
		return nil, fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, i, len(items))
	}
	return Rotate(items, i)[1:], nil
}

// ExcludeChunk returns the flattened subsets without the subset at index i.
// This is the training set of the fold i.
func ExcludeChunk[T any](subsets [][]T, i int) ([]T, error) {
	rest, err := ExcludeIndex(subsets, i)
	if err != nil {
		return nil, err
	}
	return Flatten(rest), nil
}

// Flatten concatenates the subsets into one slice, preserving order.
func Flatten[T any](subsets [][]T) []T {
	n := 0
	for _, s := range subsets {
		n += len(s)
	}
	flat := make([]T, 0, n)
	for _, s := range subsets {
		flat = append(flat, s...)
	}
	return flat
}
