package sortedview

import "cmp"

// SortedOutput is implemented by containers that can present themselves as a SortedView.
type SortedOutput[K comparable, V any] interface {
	Sorted() SortedView[K, V]
}

// Map is a map that can produce a sorted view of itself. Any map with ordered keys converts to
// it without copying:
//
//	fmt.Println(sortedview.Map[string, int](counts).Sorted())
type Map[K cmp.Ordered, V any] map[K]V

var _ SortedOutput[string, any] = Map[string, any](nil)

func (m Map[K, V]) Sorted() SortedView[K, V] {
	return New(m)
}

// Sorted returns a view over m ordered by its keys. It is the free-function form of
// Map.Sorted for maps of any type.
func Sorted[M ~map[K]V, K cmp.Ordered, V any](m M) SortedView[K, V] {
	return New(m)
}
