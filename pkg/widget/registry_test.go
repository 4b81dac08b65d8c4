package widget

import (
	stderrors "errors"
	"testing"

	"github.com/go-drift/materialweb/pkg/dom"
	"github.com/go-drift/materialweb/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

type stubWidget struct {
	destroyed int
	handlers  map[string][]func(Event)
}

func (w *stubWidget) Destroy() { w.destroyed++ }

func (w *stubWidget) Listen(event string, handler func(Event)) {
	if w.handlers == nil {
		w.handlers = make(map[string][]func(Event))
	}
	w.handlers[event] = append(w.handlers[event], handler)
}

func (w *stubWidget) emit(name string) {
	for _, h := range w.handlers[name] {
		h(Event{Name: name})
	}
}

func newStubRegistry(kind string) (*Registry, *[]*stubWidget) {
	var made []*stubWidget
	r := NewRegistry()
	r.RegisterFactory(FactoryFunc{WidgetKind: kind, Fn: func(el *html.Node) (Widget, error) {
		w := &stubWidget{}
		made = append(made, w)
		return w, nil
	}})
	return r, &made
}

func attachedElement() *html.Node {
	_, body := dom.NewDocument()
	el := dom.NewElement("div")
	body.AppendChild(el)
	return el
}

func TestConstruct_Errors(t *testing.T) {
	r, _ := newStubRegistry(KindRipple)

	tests := []struct {
		name string
		kind string
		el   *html.Node
		want error
	}{
		{"nil element", KindRipple, nil, errors.ErrMissingElement},
		{"detached element", KindRipple, dom.NewElement("div"), errors.ErrDetachedElement},
		{"unknown kind", "nope", attachedElement(), errors.ErrWidgetKindNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := r.Construct(tt.kind, tt.el)
			assert.Nil(t, h)
			var mountErr *errors.MountError
			require.ErrorAs(t, err, &mountErr)
			assert.Equal(t, tt.kind, mountErr.Widget)
			assert.ErrorIs(t, err, tt.want)
		})
	}
	assert.Equal(t, 0, r.Live())
}

func TestConstruct_FactoryErrorIsWrapped(t *testing.T) {
	boom := stderrors.New("boom")
	r := NewRegistry()
	r.RegisterFactory(FactoryFunc{WidgetKind: KindDialog, Fn: func(*html.Node) (Widget, error) {
		return nil, boom
	}})

	_, err := r.Construct(KindDialog, attachedElement())
	var mountErr *errors.MountError
	require.ErrorAs(t, err, &mountErr)
	assert.ErrorIs(t, err, boom)
}

func TestHandle_DestroyOnce(t *testing.T) {
	r, made := newStubRegistry(KindRipple)
	el := attachedElement()

	h, err := r.Construct(KindRipple, el)
	require.NoError(t, err)
	assert.Equal(t, 1, r.Live())
	assert.Equal(t, KindRipple, h.Kind())
	assert.Same(t, el, h.Element())
	assert.NotZero(t, h.ID())
	assert.True(t, r.HasKind(KindRipple))
	assert.Len(t, r.LiveHandles(), 1)

	require.NoError(t, h.Destroy())
	assert.True(t, h.Destroyed())
	assert.Equal(t, 0, r.Live())

	err = h.Destroy()
	var lifecycleErr *errors.LifecycleError
	require.ErrorAs(t, err, &lifecycleErr)
	assert.ErrorIs(t, err, errors.ErrDestroyed)
	assert.Equal(t, 1, (*made)[0].destroyed, "the widget must be destroyed exactly once")
}

func TestHandle_DropsEventsAfterDestroy(t *testing.T) {
	r, made := newStubRegistry(KindSelect)
	h, err := r.Construct(KindSelect, attachedElement())
	require.NoError(t, err)

	var got []string
	h.Listen(EventSelectChange, func(ev Event) { got = append(got, ev.Name) })

	w := (*made)[0]
	w.emit(EventSelectChange)
	require.NoError(t, h.Destroy())
	w.emit(EventSelectChange)

	assert.Equal(t, []string{EventSelectChange}, got)
}
