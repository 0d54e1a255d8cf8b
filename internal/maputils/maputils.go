package maputils

import (
	"cmp"
	"maps"
	"slices"
)

type Entry[K, V any] struct {
	Key   K
	Value V
}

func SortedKeys[M ~map[K]V, K cmp.Ordered, V any](m M) []K {
	return slices.Sorted(maps.Keys(m))
}

// Collects every entry of `m` in one pass and sorts them by key using `compare`. Values are taken
// from the iteration itself, so keys that never compare equal to themselves (NaN) keep their value.
func SortedEntries[M ~map[K]V, K comparable, V any](m M, compare func(a, b K) int) []Entry[K, V] {
	entries := make([]Entry[K, V], 0, len(m))
	for key, value := range m {
		entries = append(entries, Entry[K, V]{Key: key, Value: value})
	}

	slices.SortStableFunc(entries, func(a, b Entry[K, V]) int {
		return compare(a.Key, b.Key)
	})

	return entries
}
