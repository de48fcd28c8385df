// Package extremal picks the element of a sequence with the largest or
// smallest value under a caller supplied projection.
package extremal

import (
	"errors"
	"iter"
	"slices"
)

// ErrInvalidArgument is returned for an empty or nil sequence.
var ErrInvalidArgument = errors.New("extremal: sequence must not be empty")

// FindMax returns the first element of items with the largest projected
// value.
func FindMax[T any](items []T, projector func(T) float64) (T, error) {
	return FindMaxSeq(slices.Values(items), projector)
}

// FindMin returns the first element of items with the smallest projected
// value.
func FindMin[T any](items []T, projector func(T) float64) (T, error) {
	return FindMinSeq(slices.Values(items), projector)
}

// FindMaxSeq is FindMax over an iterator. seq is consumed once.
func FindMaxSeq[T any](seq iter.Seq[T], projector func(T) float64) (T, error) {
	return find(seq, projector, func(candidate, best float64) bool { return candidate > best })
}

// FindMinSeq is FindMin over an iterator. seq is consumed once.
func FindMinSeq[T any](seq iter.Seq[T], projector func(T) float64) (T, error) {
	return find(seq, projector, func(candidate, best float64) bool { return candidate < best })
}

// find keeps the running best and replaces it only on a strict improvement,
// so ties resolve to the earliest element.
func find[T any](seq iter.Seq[T], projector func(T) float64, better func(candidate, best float64) bool) (T, error) {
	var (
		bestItem  T
		bestValue float64
		found     bool
	)
	if seq == nil || projector == nil {
		return bestItem, ErrInvalidArgument
	}

	for item := range seq {
		value := projector(item)
		if !found || better(value, bestValue) {
			bestItem, bestValue, found = item, value, true
		}
	}

	if !found {
		return bestItem, ErrInvalidArgument
	}
	return bestItem, nil
}
