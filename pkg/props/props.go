// Package props provides the ordered property bag passed to components on every
// render, and the normalization rules applied to values that may be observable
// cells rather than plain values.
//
// A Props value is never mutated once handed to the framework. Every transform
// (With, Merge, Omit, Extract, NormalizeAll) returns a new bag and leaves the
// receiver untouched. A nil *Props behaves as an empty bag.
package props

import (
	"fmt"
	"slices"
	"strings"
)

// Props is an ordered mapping from attribute name to value.
type Props struct {
	keys   []string
	values map[string]any
}

// New builds a bag from alternating name/value pairs:
//
//	props.New("label", "Name", "required", true)
//
// A repeated name keeps its first position and takes the last value.
// New panics if a name is not a string or a value is missing.
func New(kv ...any) *Props {
	if len(kv)%2 != 0 {
		panic(fmt.Sprintf("props.New: odd number of arguments (%d)", len(kv)))
	}
	p := &Props{values: make(map[string]any, len(kv)/2)}
	for i := 0; i < len(kv); i += 2 {
		name, ok := kv[i].(string)
		if !ok {
			panic(fmt.Sprintf("props.New: name at position %d is %T, not string", i, kv[i]))
		}
		p.set(name, kv[i+1])
	}
	return p
}

// FromMap builds a bag from a map. Keys are sorted so the order is deterministic.
func FromMap(m map[string]any) *Props {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	p := &Props{keys: keys, values: make(map[string]any, len(m))}
	for k, v := range m {
		p.values[k] = v
	}
	return p
}

func (p *Props) set(name string, value any) {
	if _, exists := p.values[name]; !exists {
		p.keys = append(p.keys, name)
	}
	p.values[name] = value
}

// Len returns the number of entries.
func (p *Props) Len() int {
	if p == nil {
		return 0
	}
	return len(p.keys)
}

// Keys returns a copy of the names in declaration order.
func (p *Props) Keys() []string {
	if p == nil {
		return nil
	}
	out := make([]string, len(p.keys))
	copy(out, p.keys)
	return out
}

// Has reports whether name is present, even with a nil value.
func (p *Props) Has(name string) bool {
	if p == nil {
		return false
	}
	_, ok := p.values[name]
	return ok
}

// Get returns the raw (not normalized) value for name.
func (p *Props) Get(name string) (any, bool) {
	if p == nil {
		return nil, false
	}
	v, ok := p.values[name]
	return v, ok
}

// Value returns the normalized value for name, or nil when absent.
func (p *Props) Value(name string) any {
	v, _ := p.Get(name)
	return Normalize(v)
}

// String returns the normalized value for name formatted as a string.
// Absent and nil values yield "".
func (p *Props) String(name string) string {
	return ToString(p.Value(name))
}

// Bool returns the truthiness of the normalized value for name.
func (p *Props) Bool(name string) bool {
	return Truthy(p.Value(name))
}

// Range calls fn for each entry in order until fn returns false.
// Values are passed raw.
func (p *Props) Range(fn func(name string, value any) bool) {
	if p == nil {
		return
	}
	for _, k := range p.keys {
		if !fn(k, p.values[k]) {
			return
		}
	}
}

// Clone returns a shallow copy.
func (p *Props) Clone() *Props {
	out := &Props{values: make(map[string]any, p.Len())}
	p.Range(func(k string, v any) bool {
		out.set(k, v)
		return true
	})
	return out
}

// With returns a copy with name set to value. An existing name keeps its position.
func (p *Props) With(name string, value any) *Props {
	out := p.Clone()
	out.set(name, value)
	return out
}

// Merge returns a copy of p overlaid with every entry of other.
func (p *Props) Merge(other *Props) *Props {
	out := p.Clone()
	other.Range(func(k string, v any) bool {
		out.set(k, v)
		return true
	})
	return out
}

// Omit returns a copy without the given names.
func (p *Props) Omit(names ...string) *Props {
	drop := make(map[string]struct{}, len(names))
	for _, n := range names {
		drop[n] = struct{}{}
	}
	out := &Props{values: make(map[string]any, p.Len())}
	p.Range(func(k string, v any) bool {
		if _, skip := drop[k]; !skip {
			out.set(k, v)
		}
		return true
	})
	return out
}

// GoString renders the bag for debugging, values normalized.
func (p *Props) GoString() string {
	var sb strings.Builder
	sb.WriteString("props{")
	first := true
	p.Range(func(k string, v any) bool {
		if !first {
			sb.WriteString(", ")
		}
		first = false
		fmt.Fprintf(&sb, "%s: %#v", k, Normalize(v))
		return true
	})
	sb.WriteString("}")
	return sb.String()
}
