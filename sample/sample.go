// Package sample provides an optional container pairing a class with a datum.
package sample

import (
	"errors"
	"fmt"
)

// ErrMalformedTuple is returned when a tuple does not carry both a class and a value.
var ErrMalformedTuple = errors.New("malformed tuple")

// Sample associates a datum with its class (e.g. "spam").
// It is an optional container, callers can use any document type with the runner.
type Sample[L, V any] struct {
	Label L `json:"label"`
	Value V `json:"value"`
}

// New creates a new sample.
func New[L, V any](label L, value V) Sample[L, V] {
	return Sample[L, V]{
		Label: label,
		Value: value,
	}
}

// FromPair converts a [class, value] tuple into a Sample.
// Elements after the second one are ignored.
func FromPair[T any](tuple []T) (Sample[T, T], error) {
	if len(tuple) < 2 {
		return Sample[T, T]{}, fmt.Errorf("index %d outside of tuple of size %d: %w", len(tuple), len(tuple), ErrMalformedTuple)
	}
	return New(tuple[0], tuple[1]), nil
}

// Class returns the label of the sample.
func Class[L, V any](s Sample[L, V]) L {
	return s.Label
}

// Datum returns the value of the sample.
func Datum[L, V any](s Sample[L, V]) V {
	return s.Value
}
