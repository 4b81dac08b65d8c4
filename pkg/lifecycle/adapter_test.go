package lifecycle

import (
	stderrors "errors"
	"testing"

	"github.com/go-drift/materialweb/pkg/dom"
	"github.com/go-drift/materialweb/pkg/errors"
	"github.com/go-drift/materialweb/pkg/props"
	"github.com/go-drift/materialweb/pkg/widget"
	"github.com/go-drift/materialweb/pkg/widgettest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func setup(t *testing.T, kind string) (*Adapter, *widgettest.Toolkit, *html.Node) {
	t.Helper()
	tk := widgettest.NewToolkit()
	_, body := dom.NewDocument()
	el := dom.NewElement("div")
	body.AppendChild(el)
	return New(kind, tk.NewRegistry()), tk, el
}

func TestAdapter_MountUnmountPairing(t *testing.T) {
	a, tk, el := setup(t, widget.KindRipple)
	assert.Equal(t, StateUnmounted, a.State())
	assert.Equal(t, widget.KindRipple, a.Kind())

	require.NoError(t, a.Mount(el))
	assert.Equal(t, StateMounted, a.State())
	w := tk.Last(widget.KindRipple)
	require.NotNil(t, w)
	assert.Same(t, el, w.Element())

	got, err := a.Element()
	require.NoError(t, err)
	assert.Same(t, el, got)

	require.NoError(t, a.Unmount())
	assert.Equal(t, StateUnmounted, a.State())
	assert.Equal(t, 1, w.DestroyCount())
}

func TestAdapter_MountErrors(t *testing.T) {
	a, _, _ := setup(t, widget.KindDialog)

	err := a.Mount(nil)
	var mountErr *errors.MountError
	require.ErrorAs(t, err, &mountErr)
	assert.ErrorIs(t, err, errors.ErrMissingElement)
	assert.Equal(t, StateUnmounted, a.State())

	err = a.Mount(dom.NewElement("div"))
	require.ErrorAs(t, err, &mountErr)
	assert.ErrorIs(t, err, errors.ErrDetachedElement)
}

func TestAdapter_LifecycleErrors(t *testing.T) {
	a, tk, el := setup(t, widget.KindList)

	var lifecycleErr *errors.LifecycleError
	require.ErrorAs(t, a.PropsChanged(nil, nil), &lifecycleErr)
	require.ErrorAs(t, a.Unmount(), &lifecycleErr)
	_, err := a.Widget()
	require.ErrorAs(t, err, &lifecycleErr)
	_, err = a.Element()
	require.ErrorAs(t, err, &lifecycleErr)

	require.NoError(t, a.Mount(el))
	err = a.Mount(el)
	require.ErrorAs(t, err, &lifecycleErr)
	assert.ErrorIs(t, err, errors.ErrAlreadyMounted)

	require.NoError(t, a.Unmount())
	err = a.Unmount()
	assert.ErrorIs(t, err, errors.ErrNotMounted, "double destroy is a lifecycle error")
	err = a.Mount(el)
	assert.ErrorIs(t, err, errors.ErrRetired)

	assert.Len(t, tk.Widgets(widget.KindList), 1)
	assert.Equal(t, 1, tk.Last(widget.KindList).DestroyCount())
}

func TestAdapter_ListenersOnlyInsideMountWindow(t *testing.T) {
	a, tk, el := setup(t, widget.KindDialog)
	var events []string
	a.Listen(widget.EventDialogOpened, func(ev widget.Event) { events = append(events, ev.Name) })

	require.NoError(t, a.Mount(el))
	w := tk.Last(widget.KindDialog)
	a.Listen(widget.EventDialogClosing, func(ev widget.Event) { events = append(events, ev.Name) })

	w.Emit(widget.EventDialogOpened, nil)
	w.Emit(widget.EventDialogClosing, nil)
	require.NoError(t, a.Unmount())
	w.Emit(widget.EventDialogOpened, nil)

	assert.Equal(t, []string{widget.EventDialogOpened, widget.EventDialogClosing}, events)
}

func TestAdapter_SetupFailureDestroysWidget(t *testing.T) {
	a, tk, el := setup(t, widget.KindList)
	boom := stderrors.New("boom")
	a.OnMount(func(w widget.Widget) error { return boom })

	err := a.Mount(el)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, StateUnmounted, a.State())
	assert.Equal(t, 1, tk.Last(widget.KindList).DestroyCount())
}

func TestAdapter_OnMountSeesWidget(t *testing.T) {
	a, tk, el := setup(t, widget.KindList)
	a.OnMount(func(w widget.Widget) error {
		w.(widget.SingleSelector).SetSingleSelection(true)
		return nil
	})
	require.NoError(t, a.Mount(el))
	assert.True(t, tk.Last(widget.KindList).SingleSelection())
}

func TestAdapter_WatchFiresOnlyOnChange(t *testing.T) {
	a, _, el := setup(t, widget.KindDialog)
	var transitions [][2]any
	a.Watch("visible", func(old, cur any) error {
		transitions = append(transitions, [2]any{old, cur})
		return nil
	})
	require.NoError(t, a.Mount(el))

	visible := props.NewObservable(true)
	steps := []*props.Props{
		props.New("visible", false),
		props.New("visible", true, "title", "x"),
		props.New("visible", visible, "title", "y"),
		props.New("visible", false),
	}
	prev := props.New("visible", false)
	for _, next := range steps {
		require.NoError(t, a.PropsChanged(prev, next))
		prev = next
	}

	assert.Equal(t, [][2]any{{false, true}, {true, false}}, transitions)
}

func TestAdapter_WatchErrorStops(t *testing.T) {
	a, _, el := setup(t, widget.KindSelect)
	boom := stderrors.New("boom")
	var second bool
	a.Watch("value", func(_, _ any) error { return boom })
	a.Watch("value", func(_, _ any) error { second = true; return nil })
	require.NoError(t, a.Mount(el))

	err := a.PropsChanged(props.New("value", "a"), props.New("value", "b"))
	assert.ErrorIs(t, err, boom)
	assert.False(t, second)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "unmounted", StateUnmounted.String())
	assert.Equal(t, "mounting", StateMounting.String())
	assert.Equal(t, "mounted", StateMounted.String())
	assert.Equal(t, "unmounting", StateUnmounting.String())
}
