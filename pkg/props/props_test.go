package props

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type box struct{ v any }

func (b box) Read() any { return b.v }

func TestNormalize(t *testing.T) {
	obs := NewObservable("hello")
	tests := []struct {
		name string
		in   any
		want any
	}{
		{"plain string", "x", "x"},
		{"nil", nil, nil},
		{"bool", true, true},
		{"observable", obs, "hello"},
		{"boxed", box{42}, 42},
		{"nested cells", box{box{obs}}, "hello"},
		{"nil observable", (*Observable[string])(nil), (*Observable[string])(nil)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, Normalize(got), "normalize must be idempotent")
		})
	}
}

func TestNormalizeAll_PreservesOrderAndInput(t *testing.T) {
	obs := NewObservable(3)
	in := New("b", obs, "a", "plain", "c", box{false})

	out := NormalizeAll(in)

	assert.Equal(t, []string{"b", "a", "c"}, out.Keys())
	assert.Equal(t, 3, mustGet(t, out, "b"))
	assert.Equal(t, false, mustGet(t, out, "c"))

	raw, _ := in.Get("b")
	assert.Same(t, obs, raw, "input bag must not be touched")
}

func TestExtract_Partition(t *testing.T) {
	label := NewObservable("Name")
	in := New("className", "wide", "label", label, "id", "f1", "onClick", func() {})

	selected, rest := Extract(in, "label", "className", "missing")

	assert.Equal(t, []string{"className", "label"}, selected.Keys())
	assert.Equal(t, "Name", mustGet(t, selected, "label"))
	assert.Equal(t, []string{"id", "onClick"}, rest.Keys())
	assert.False(t, selected.Has("missing"))

	union := map[string]bool{}
	for _, k := range selected.Keys() {
		union[k] = true
	}
	for _, k := range rest.Keys() {
		require.False(t, union[k], "key %q in both halves", k)
		union[k] = true
	}
	assert.Len(t, union, in.Len())
}

func TestExtract_RestIsNotNormalized(t *testing.T) {
	obs := NewObservable("v")
	_, rest := Extract(New("value", obs), "label")
	raw, _ := rest.Get("value")
	assert.Same(t, obs, raw)
}

func TestProps_TransformsDoNotMutate(t *testing.T) {
	base := New("a", 1, "b", 2)

	with := base.With("a", 10).With("c", 3)
	merged := base.Merge(New("b", 20, "d", 4))
	omitted := base.Omit("a")

	assert.Equal(t, 1, mustGet(t, base, "a"))
	assert.Equal(t, 2, base.Len())
	assert.Equal(t, []string{"a", "b", "c"}, with.Keys())
	assert.Equal(t, 10, mustGet(t, with, "a"))
	assert.Equal(t, []string{"a", "b", "d"}, merged.Keys())
	assert.Equal(t, 20, mustGet(t, merged, "b"))
	assert.Equal(t, []string{"b"}, omitted.Keys())
}

func TestProps_NilBag(t *testing.T) {
	var p *Props
	assert.Equal(t, 0, p.Len())
	assert.False(t, p.Has("x"))
	assert.Nil(t, p.Value("x"))
	assert.Equal(t, "", p.String("x"))
	assert.Equal(t, []string{"x"}, p.With("x", 1).Keys())
	s, r := Extract(p, "x")
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, 0, r.Len())
}

func TestNew_PanicsOnBadArguments(t *testing.T) {
	assert.Panics(t, func() { New("a") })
	assert.Panics(t, func() { New(1, 2) })
}

func TestTruthy(t *testing.T) {
	assert.False(t, Truthy(nil))
	assert.False(t, Truthy(""))
	assert.False(t, Truthy(0))
	assert.False(t, Truthy(NewObservable(false)))
	assert.True(t, Truthy("x"))
	assert.True(t, Truthy(1.5))
	assert.True(t, Truthy(NewObservable(true)))
	assert.True(t, Truthy(struct{}{}))
}

func TestEqual(t *testing.T) {
	assert.True(t, Equal("b", NewObservable("b")))
	assert.True(t, Equal(2, 2))
	assert.False(t, Equal(2, "2"))
	assert.False(t, Equal(nil, nil))
	assert.False(t, Equal([]int{1}, []int{1}))
}

func TestObservable_Subscribe(t *testing.T) {
	obs := NewObservable(0)
	var calls int
	unsub := obs.Subscribe(func() { calls++ })

	obs.Set(1)
	obs.Update(func(v int) int { return v + 1 })
	assert.Equal(t, 2, calls)
	assert.Equal(t, 2, obs.Value())
	assert.Equal(t, 1, obs.ListenerCount())

	unsub()
	obs.Set(5)
	assert.Equal(t, 2, calls)
	assert.Equal(t, 0, obs.ListenerCount())
}

func mustGet(t *testing.T, p *Props, name string) any {
	t.Helper()
	v, ok := p.Get(name)
	require.True(t, ok, "missing %q", name)
	return v
}
