package normalization

import (
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

// The helpers below are the single place where the defaulting policy lives:
// an absent path, a JSON null, or a value of the wrong shape resolves to the
// zero value of the requested type, never to an error.

func present(r gjson.Result, path string) bool {
	v := r.Get(path)
	return v.Exists() && v.Type != gjson.Null
}

// String resolves path to a string; numbers are rendered as text.
func String(r gjson.Result, path string) string {
	v := r.Get(path)
	switch v.Type {
	case gjson.String:
		return v.Str
	case gjson.Number:
		return v.Raw
	default:
		return ""
	}
}

// Int resolves path to an int. Numeric strings are parsed from their leading
// digits, so "2" and "2nd" both give 2.
func Int(r gjson.Result, path string) int {
	v := r.Get(path)
	switch v.Type {
	case gjson.Number:
		return int(v.Int())
	case gjson.String:
		return leadingInt(v.Str)
	default:
		return 0
	}
}

// Float resolves path to a float64.
func Float(r gjson.Result, path string) float64 {
	v := r.Get(path)
	switch v.Type {
	case gjson.Number:
		return v.Num
	case gjson.String:
		f, err := strconv.ParseFloat(strings.TrimSpace(v.Str), 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

// Each maps every element of the array at path. A missing or non-array value
// yields an empty, non-nil slice.
func Each[T any](r gjson.Result, path string, fn func(gjson.Result) T) []T {
	return EachValid(r, path, func(el gjson.Result) (T, bool) { return fn(el), true })
}

// EachValid is Each with a filter: elements for which fn reports false are
// dropped without affecting the order of the rest.
func EachValid[T any](r gjson.Result, path string, fn func(gjson.Result) (T, bool)) []T {
	arr := r
	if path != "" {
		arr = r.Get(path)
	}
	if !arr.IsArray() {
		return []T{}
	}
	items := arr.Array()
	out := make([]T, 0, len(items))
	for _, el := range items {
		if v, ok := fn(el); ok {
			out = append(out, v)
		}
	}
	return out
}

func leadingInt(s string) int {
	s = strings.TrimSpace(s)
	end := 0
	for end < len(s) {
		c := s[end]
		if (c < '0' || c > '9') && !(end == 0 && (c == '-' || c == '+')) {
			break
		}
		end++
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return n
}
