package sortedview_test

import (
	"fmt"

	"github.com/ArrayNone/sortedview"
)

func ExampleNew() {
	m := map[int]string{3: "c", 1: "a", 2: "b"}

	fmt.Printf("%v\n", sortedview.New(m))
	fmt.Printf("%#v\n", sortedview.New(m))

	// Output:
	// {1: a, 2: b, 3: c}
	// {1: "a", 2: "b", 3: "c"}
}

func ExampleNewFunc() {
	byLength := func(a, b string) int { return len(a) - len(b) }

	fmt.Println(sortedview.NewFunc(map[string]int{"ccc": 3, "a": 1, "bb": 2}, byLength))

	// Output:
	// {a: 1, bb: 2, ccc: 3}
}

func ExampleMap_Sorted() {
	counts := map[string]int{"pear": 2, "apple": 5, "fig": 1}

	fmt.Println(sortedview.Map[string, int](counts).Sorted())

	// Output:
	// {apple: 5, fig: 1, pear: 2}
}
