// Package sortedview renders Go maps with their keys in sorted order.
//
// Use it when output is rare (logging, debugging, test failure messages) and changing the
// map to a sorted container is not worth it:
//
//	log.Printf("state: %v", sortedview.New(state))
//
// A SortedView does not copy the map. The map must not be modified while a view over it is
// being formatted.
package sortedview

import (
	"cmp"
	"fmt"
	"io"

	"github.com/ArrayNone/sortedview/internal/maputils"
)

// SortedView formats the map it refers to as `{key: value, ...}` with entries in ascending key
// order. The verb, flags, width and precision of the formatting directive apply to every key and
// value, so `%v` prints `{1: a, 2: b}` and `%#v` prints `{1: "a", 2: "b"}`.
type SortedView[K comparable, V any] struct {
	m       map[K]V
	compare func(a, b K) int
}

// New returns a view over m ordered by the natural order of its keys.
func New[M ~map[K]V, K cmp.Ordered, V any](m M) SortedView[K, V] {
	return SortedView[K, V]{m: m, compare: cmp.Compare[K]}
}

// NewFunc returns a view over m ordered by compare, which must be a strict weak ordering
// returning a negative number when a < b, zero when equal and a positive number when a > b.
// A nil compare orders keys by their `%v` text.
func NewFunc[M ~map[K]V, K comparable, V any](m M, compare func(a, b K) int) SortedView[K, V] {
	if compare == nil {
		compare = compareText[K]
	}

	return SortedView[K, V]{m: m, compare: compare}
}

func compareText[K any](a, b K) int {
	return cmp.Compare(fmt.Sprint(a), fmt.Sprint(b))
}

// Format implements fmt.Formatter, printing `{key: value, ...}` in key order.
func (sv SortedView[K, V]) Format(f fmt.State, verb rune) {
	elementFormat := fmt.FormatString(f, verb)

	io.WriteString(f, "{")
	for i, entry := range maputils.SortedEntries(sv.m, sv.compare) {
		if i > 0 {
			io.WriteString(f, ", ")
		}

		fmt.Fprintf(f, elementFormat, entry.Key)
		io.WriteString(f, ": ")
		fmt.Fprintf(f, elementFormat, entry.Value)
	}
	io.WriteString(f, "}")
}

// String returns the view formatted with `%v`.
func (sv SortedView[K, V]) String() string {
	return fmt.Sprint(sv)
}
