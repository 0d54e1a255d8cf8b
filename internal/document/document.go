// Package document decodes mapping documents (YAML or JSON) for printing through sorted views.
package document

import (
	"bytes"
	"cmp"
	"errors"
	"fmt"
	"reflect"

	"github.com/ArrayNone/sortedview"

	"github.com/gabriel-vasile/mimetype"
	"go.yaml.in/yaml/v3"
)

var ErrUnsupportedFormat = errors.New("unsupported input format")

// Decode sniffs data and decodes its top-level mapping. JSON is read as YAML. Keys keep the type
// YAML resolves them to, so `10: a` has an int key. Inputs that are not detected as one of
// `accepted`, or as a subtype of one, are rejected with ErrUnsupportedFormat. An empty document
// decodes to an empty mapping.
func Decode(data []byte, accepted []string) (map[any]any, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return map[any]any{}, nil
	}

	detected := mimetype.Detect(data)
	if !IsAccepted(detected, accepted) {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, detected.String())
	}

	var doc map[any]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("cannot decode %s as a mapping: %w", detected.Extension(), err)
	}

	if doc == nil {
		doc = map[any]any{}
	}

	return doc, nil
}

// Returns `true` if `detected` or any of its parents is one of `accepted`.
func IsAccepted(detected *mimetype.MIME, accepted []string) bool {
	for mime := detected; mime != nil; mime = mime.Parent() {
		for _, format := range accepted {
			if mime.Is(format) {
				return true
			}
		}
	}

	return false
}

// View returns a view over doc ordered by CompareAny, the order used for nested mappings.
func View(doc map[any]any) sortedview.SortedView[any, any] {
	return sortedview.NewFunc(doc, CompareAny)
}

// SortNested returns a copy of doc whose nested mappings are replaced by sorted views.
func SortNested[K comparable](doc map[K]any) map[K]any {
	result := make(map[K]any, len(doc))
	for key, value := range doc {
		result[key] = Sort(value)
	}

	return result
}

// Sort replaces mappings in value, at any depth, with sorted views. Mappings with string keys
// are ordered by key, others by CompareAny. Slices are copied with their elements sorted the
// same way; anything else is returned as is.
func Sort(value any) any {
	switch v := value.(type) {
	case map[string]any:
		return sortedview.New(SortNested(v))

	case map[any]any:
		return View(SortNested(v))

	case []any:
		result := make([]any, len(v))
		for i, element := range v {
			result[i] = Sort(element)
		}

		return result

	default:
		return value
	}
}

const (
	rankNil = iota
	rankBool
	rankNumber
	rankString
	rankOther
)

func rank(value any) int {
	switch value.(type) {
	case nil:
		return rankNil
	case bool:
		return rankBool
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		return rankNumber
	case string:
		return rankString
	default:
		return rankOther
	}
}

func toFloat(value any) float64 {
	v := reflect.ValueOf(value)
	switch {
	case v.CanInt():
		return float64(v.Int())
	case v.CanUint():
		return float64(v.Uint())
	case v.CanFloat():
		return v.Float()
	default:
		return 0
	}
}

// CompareAny orders keys of mixed types: nil, then booleans, numbers, strings and everything
// else. Values of the same kind compare by value; ties between different types are broken by
// type name and then by their `%v` text.
func CompareAny(a, b any) int {
	rankA, rankB := rank(a), rank(b)
	if rankA != rankB {
		return cmp.Compare(rankA, rankB)
	}

	var byValue int
	switch rankA {
	case rankBool:
		byValue = compareBool(a.(bool), b.(bool))
	case rankNumber:
		ia, okA := a.(int)
		ib, okB := b.(int)
		if okA && okB {
			byValue = cmp.Compare(ia, ib)
		} else {
			byValue = cmp.Compare(toFloat(a), toFloat(b))
		}
	case rankString:
		byValue = cmp.Compare(a.(string), b.(string))
	}

	return cmp.Or(
		byValue,
		cmp.Compare(fmt.Sprintf("%T", a), fmt.Sprintf("%T", b)),
		cmp.Compare(fmt.Sprint(a), fmt.Sprint(b)),
	)
}

func compareBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case !a:
		return -1
	default:
		return 1
	}
}
