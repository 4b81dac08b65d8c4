package props

import (
	"fmt"
	"reflect"
	"strconv"
)

// Cell is a boxed value with a read operation. Anything implementing Cell is
// unwrapped by Normalize wherever a prop is read.
type Cell interface {
	Read() any
}

// Subscribable is a Cell that can notify interested parties when it changes.
// Subscribe returns a function that removes the subscription.
type Subscribable interface {
	Cell
	Subscribe(fn func()) (unsubscribe func())
}

// Normalize unwraps v to a plain value. Cells are read until the result is no
// longer a Cell, so Normalize(Normalize(v)) == Normalize(v) for any v.
func Normalize(v any) any {
	for {
		c, ok := v.(Cell)
		if !ok || isNilPointer(c) {
			return v
		}
		v = c.Read()
	}
}

// NormalizeAll returns a new bag holding every value of p normalized.
// Keys and their order are preserved.
func NormalizeAll(p *Props) *Props {
	out := &Props{values: make(map[string]any, p.Len())}
	p.Range(func(k string, v any) bool {
		out.set(k, Normalize(v))
		return true
	})
	return out
}

// Extract partitions p. selected holds the requested fields present in p,
// normalized, in p's order. rest holds every other entry untouched. Requested
// fields missing from p are simply absent from selected.
func Extract(p *Props, fields ...string) (selected, rest *Props) {
	want := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		want[f] = struct{}{}
	}
	selected = &Props{values: make(map[string]any, len(fields))}
	rest = &Props{values: make(map[string]any, p.Len())}
	p.Range(func(k string, v any) bool {
		if _, ok := want[k]; ok {
			selected.set(k, Normalize(v))
		} else {
			rest.set(k, v)
		}
		return true
	})
	return selected, rest
}

// Truthy reports whether a normalized value counts as set: nil, false, "",
// and numeric zero are false; everything else is true.
func Truthy(v any) bool {
	v = Normalize(v)
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case int:
		return t != 0
	case int64:
		return t != 0
	case int32:
		return t != 0
	case uint:
		return t != 0
	case uint64:
		return t != 0
	case float64:
		return t != 0
	case float32:
		return t != 0
	}
	return !isNilPointer(v)
}

// ToString formats a normalized value. nil yields "".
func ToString(v any) string {
	v = Normalize(v)
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case fmt.Stringer:
		return t.String()
	}
	return fmt.Sprint(v)
}

// Equal compares two values after normalization. Comparable values use ==;
// anything else is never equal, and nil never equals nil.
func Equal(a, b any) bool {
	a, b = Normalize(a), Normalize(b)
	if a == nil || b == nil {
		return false
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb || !ta.Comparable() {
		return false
	}
	return a == b
}

func isNilPointer(v any) bool {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
