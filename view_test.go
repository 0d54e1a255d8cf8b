package sortedview_test

import (
	"cmp"
	"fmt"
	"maps"
	"math"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"testing"
	"testing/quick"

	"github.com/ArrayNone/sortedview"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type point struct {
	X, Y int
}

type panicky struct{}

func (panicky) String() string {
	panic("boom")
}

func TestSortedView_Format(t *testing.T) {
	m := map[int]string{3: "c", 1: "a", 2: "b"}

	tests := []struct {
		name   string
		format string
		want   string
	}{
		{name: "default", format: "%v", want: "{1: a, 2: b, 3: c}"},
		{name: "go syntax", format: "%#v", want: `{1: "a", 2: "b", 3: "c"}`},
		{name: "plus flag", format: "%+v", want: "{1: a, 2: b, 3: c}"},
		{name: "width", format: "%2v", want: "{ 1:  a,  2:  b,  3:  c}"},
		{name: "string verb", format: "%s", want: "{%!s(int=1): a, %!s(int=2): b, %!s(int=3): c}"},
		{name: "hex", format: "%x", want: "{1: 61, 2: 62, 3: 63}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, fmt.Sprintf(tt.format, sortedview.New(m)))
		})
	}
}

func TestSortedView_String(t *testing.T) {
	view := sortedview.New(map[string]float64{"pi": 3.14, "e": 2.72})

	assert.Equal(t, "{e: 2.72, pi: 3.14}", view.String())
	assert.Equal(t, view.String(), fmt.Sprint(view))
}

func TestSortedView_Empty(t *testing.T) {
	t.Run("empty map", func(t *testing.T) {
		assert.Equal(t, "{}", sortedview.New(map[string]int{}).String())
	})

	t.Run("nil map", func(t *testing.T) {
		var m map[string]int
		assert.Equal(t, "{}", fmt.Sprintf("%#v", sortedview.New(m)))
	})

	t.Run("zero view", func(t *testing.T) {
		var view sortedview.SortedView[string, int]
		assert.Equal(t, "{}", view.String())
	})
}

func TestSortedView_Values(t *testing.T) {
	t.Run("struct values with field names", func(t *testing.T) {
		view := sortedview.New(map[string]point{"b": {3, 4}, "a": {1, 2}})
		assert.Equal(t, "{a: {X:1 Y:2}, b: {X:3 Y:4}}", fmt.Sprintf("%+v", view))
	})

	t.Run("nested views", func(t *testing.T) {
		inner := sortedview.New(map[string]int{"y": 2, "x": 1})
		view := sortedview.New(map[string]any{"outer": inner, "first": true})
		assert.Equal(t, "{first: true, outer: {x: 1, y: 2}}", view.String())
	})

	t.Run("nil values", func(t *testing.T) {
		view := sortedview.New(map[string]*point{"p": nil})
		assert.Equal(t, "{p: <nil>}", view.String())
	})

	t.Run("panicking value is reported by fmt", func(t *testing.T) {
		view := sortedview.New(map[int]panicky{1: {}})
		out := view.String()
		assert.True(t, strings.HasPrefix(out, "{1: %!v(PANIC=String method: boom)"), out)
		assert.True(t, strings.HasSuffix(out, "}"), out)
	})
}

func TestSortedView_NaNKeys(t *testing.T) {
	m := map[float64]string{2: "two", math.NaN(): "nan", 1: "one"}
	assert.Equal(t, "{NaN: nan, 1: one, 2: two}", sortedview.New(m).String())
}

func TestNewFunc(t *testing.T) {
	t.Run("struct keys", func(t *testing.T) {
		m := map[point]string{{2, 1}: "c", {1, 2}: "b", {1, 1}: "a"}
		byXY := func(a, b point) int {
			return cmp.Or(cmp.Compare(a.X, b.X), cmp.Compare(a.Y, b.Y))
		}

		assert.Equal(t, "{{1 1}: a, {1 2}: b, {2 1}: c}", sortedview.NewFunc(m, byXY).String())
	})

	t.Run("nil compare orders by text", func(t *testing.T) {
		m := map[int]string{10: "a", 2: "b", 1: "c"}
		assert.Equal(t, "{1: c, 10: a, 2: b}", sortedview.NewFunc(m, nil).String())
	})

	t.Run("descending order", func(t *testing.T) {
		descending := func(a, b int) int { return cmp.Compare(b, a) }
		assert.Equal(t, "{3: c, 2: b, 1: a}", sortedview.NewFunc(map[int]string{1: "a", 2: "b", 3: "c"}, descending).String())
	})
}

var entryPattern = regexp.MustCompile(`(-?\d+): (-?\d+)`)

func parseRendered(t *testing.T, rendered string) (keys []int, pairs map[int]int) {
	t.Helper()

	require.True(t, strings.HasPrefix(rendered, "{") && strings.HasSuffix(rendered, "}"), rendered)

	pairs = make(map[int]int)
	for _, match := range entryPattern.FindAllStringSubmatch(rendered, -1) {
		key, err := strconv.Atoi(match[1])
		require.NoError(t, err)
		value, err := strconv.Atoi(match[2])
		require.NoError(t, err)

		keys = append(keys, key)
		pairs[key] = value
	}

	return keys, pairs
}

func renderTreeMap(tm *treemap.Map) string {
	var builder strings.Builder

	builder.WriteByte('{')
	it := tm.Iterator()
	for i := 0; it.Next(); i++ {
		if i > 0 {
			builder.WriteString(", ")
		}
		fmt.Fprintf(&builder, "%v: %v", it.Key(), it.Value())
	}
	builder.WriteByte('}')

	return builder.String()
}

func TestSortedView_Properties(t *testing.T) {
	t.Run("keys are rendered in ascending order", func(t *testing.T) {
		property := func(m map[int]int) bool {
			keys, _ := parseRendered(t, sortedview.New(m).String())
			return slices.IsSorted(keys) && len(keys) == len(m)
		}

		require.NoError(t, quick.Check(property, nil))
	})

	t.Run("rendered pairs equal the map", func(t *testing.T) {
		property := func(m map[int]int) bool {
			_, pairs := parseRendered(t, sortedview.New(m).String())
			return maps.Equal(pairs, m)
		}

		require.NoError(t, quick.Check(property, nil))
	})

	t.Run("matches an ordered map oracle", func(t *testing.T) {
		property := func(m map[int]int) bool {
			tm := treemap.NewWithIntComparator()
			for k, v := range m {
				tm.Put(k, v)
			}

			return sortedview.New(m).String() == renderTreeMap(tm)
		}

		require.NoError(t, quick.Check(property, nil))
	})

	t.Run("map is left unchanged", func(t *testing.T) {
		property := func(m map[int]int) bool {
			before := maps.Clone(m)
			_ = fmt.Sprintf("%#v", sortedview.New(m))
			return maps.Equal(before, m) && len(before) == len(m)
		}

		require.NoError(t, quick.Check(property, nil))
	})

	t.Run("string keys match sorted keys", func(t *testing.T) {
		property := func(m map[string]bool) bool {
			var want strings.Builder
			want.WriteByte('{')
			for i, k := range slices.Sorted(maps.Keys(m)) {
				if i > 0 {
					want.WriteString(", ")
				}
				fmt.Fprintf(&want, "%q: %t", k, m[k])
			}
			want.WriteByte('}')

			return fmt.Sprintf("%#v", sortedview.New(m)) == want.String()
		}

		require.NoError(t, quick.Check(property, nil))
	})
}
