package selection

import (
	"testing"

	"github.com/go-drift/materialweb/pkg/props"
	"github.com/go-drift/materialweb/pkg/vdom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func items(values ...string) []vdom.Node {
	out := make([]vdom.Node, len(values))
	for i, v := range values {
		out[i] = vdom.H("li", props.New("value", v, "className", "item"), v)
	}
	return out
}

func TestPropagate_MarksOnlyMatchingChild(t *testing.T) {
	children := items("a", "b", "c")

	got := Propagate(children, "b", true)
	require.Len(t, got, 3)
	for i, n := range got {
		e, ok := vdom.AsElement(n)
		require.True(t, ok)
		assert.Equal(t, i == 1, e.Props.Bool("selected"), "child %d", i)
		assert.Equal(t, i, e.Props.Value("tabIndex"))
		assert.Equal(t, "option", e.Props.String("role"))
		if i == 1 {
			assert.Equal(t, "true", e.Props.String("aria-selected"))
		} else {
			assert.Equal(t, "false", e.Props.String("aria-selected"))
		}
		assert.Equal(t, "item", e.Props.String("className"), "original props preserved")
	}
}

func TestPropagate_Disabled(t *testing.T) {
	children := append(items("a", "b"),
		vdom.H("li", props.New("value", "c", "role", "option", "aria-selected", "true")))
	got := Propagate(children, "c", false)
	for i, n := range got {
		e, _ := vdom.AsElement(n)
		assert.False(t, e.Props.Bool("selected"))
		assert.False(t, e.Props.Has("role"))
		assert.False(t, e.Props.Has("aria-selected"))
		assert.Equal(t, i, e.Props.Value("tabIndex"))
	}
}

func TestPropagate_DoesNotMutateInput(t *testing.T) {
	children := items("a", "b")
	before := children[1].(*vdom.Element).Props.Keys()

	got := Propagate(children, "b", true)
	assert.NotSame(t, children[1], got[1])
	assert.Equal(t, before, children[1].(*vdom.Element).Props.Keys())
	assert.False(t, children[1].(*vdom.Element).Props.Has("selected"))
}

func TestPropagate_NonElementsPassThrough(t *testing.T) {
	children := []vdom.Node{"text", nil, vdom.H("li", props.New("value", "a"))}
	got := Propagate(children, "a", true)
	assert.Equal(t, "text", got[0])
	assert.Nil(t, got[1])
	e, _ := vdom.AsElement(got[2])
	assert.True(t, e.Props.Bool("selected"))
	assert.Equal(t, 2, e.Props.Value("tabIndex"), "index counts every child")
}

func TestPropagate_ObservableValues(t *testing.T) {
	current := props.NewObservable("c")
	children := []vdom.Node{
		vdom.H("li", props.New("value", props.NewObservable("c"))),
		vdom.H("li", props.New("value", "d")),
	}
	got := Propagate(children, current, true)
	assert.True(t, got[0].(*vdom.Element).Props.Bool("selected"))
	assert.False(t, got[1].(*vdom.Element).Props.Bool("selected"))
}

func TestPropagate_DuplicateValues(t *testing.T) {
	got := Propagate(items("a", "a"), "a", true)
	assert.True(t, got[0].(*vdom.Element).Props.Bool("selected"))
	assert.True(t, got[1].(*vdom.Element).Props.Bool("selected"))
}

func TestKey(t *testing.T) {
	tests := []struct {
		name  string
		child vdom.Node
		want  any
	}{
		{"value", vdom.H("li", props.New("value", "a", "data-value", "b")), "a"},
		{"data-value fallback", vdom.H("li", props.New("data-value", "b")), "b"},
		{"nil value falls back", vdom.H("li", props.New("value", nil, "data-value", "b")), "b"},
		{"empty value is declared", vdom.H("li", props.New("value", "", "data-value", "b")), ""},
		{"no key", vdom.H("li", nil), nil},
		{"text", "a", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Key(tt.child))
		})
	}
}

func TestSelectedIndex(t *testing.T) {
	children := items("a", "b", "c")
	assert.Equal(t, 2, SelectedIndex(children, "c"))
	assert.Equal(t, -1, SelectedIndex(children, "z"))
	assert.Equal(t, -1, SelectedIndex(children, nil))
	assert.Equal(t, 1, SelectedIndex(children, props.NewObservable("b")))
}
