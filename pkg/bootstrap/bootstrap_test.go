package bootstrap

import (
	stderrors "errors"
	"testing"

	"github.com/go-drift/materialweb/pkg/dom"
	"github.com/go-drift/materialweb/pkg/errors"
	"github.com/go-drift/materialweb/pkg/widget"
	"github.com/go-drift/materialweb/pkg/widgettest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

const page = `<!DOCTYPE html>
<html><body>
  <header class="mdc-top-app-bar"></header>
  <header class="mdc-top-app-bar"></header>
  <main id="main">
    <button class="mdc-button">Save</button>
    <button class="mdc-icon-button">menu</button>
    <label class="mdc-text-field"><input class="mdc-text-field__input"></label>
    <div class="mdc-form-field"><div class="mdc-checkbox"></div></div>
    <div class="mdc-data-table"></div>
    <section data-mdc-auto-init="false">
      <button class="mdc-button">Manual</button>
      <div><label class="mdc-text-field"></label></div>
    </section>
  </main>
</body></html>`

type recordingHandler struct{ errs []*errors.Error }

func (h *recordingHandler) HandleError(err *errors.Error) { h.errs = append(h.errs, err) }

func setup(t *testing.T) (*widgettest.Toolkit, *widget.Registry) {
	t.Helper()
	t.Cleanup(func() { require.NoError(t, Shutdown()) })
	tk := widgettest.NewToolkit()
	return tk, tk.NewRegistry()
}

func parse(t *testing.T) *html.Node {
	t.Helper()
	doc, err := dom.Parse(page)
	require.NoError(t, err)
	return doc
}

func TestInit_DefaultRules(t *testing.T) {
	tk, reg := setup(t)
	s, err := Init(parse(t), reg, nil)
	require.NoError(t, err)

	assert.Equal(t, 2, s.Count(widget.KindRipple))
	assert.Equal(t, 1, s.Count(widget.KindTextField))
	assert.Equal(t, 1, s.Count(widget.KindCheckbox))
	assert.Equal(t, 1, s.Count(widget.KindFormField))
	assert.Equal(t, 1, s.Count(widget.KindTopAppBar), "singletons bind the first match only")
	assert.Equal(t, 1, s.Count(widget.KindDataTable))
	assert.Equal(t, 2, s.Skipped())
	assert.Len(t, tk.Alive(), s.Count(""))
	assert.Same(t, s, Current())
}

func TestInit_OncePerProcess(t *testing.T) {
	tk, reg := setup(t)
	first, err := Init(parse(t), reg, nil)
	require.NoError(t, err)
	built := len(tk.Widgets(""))

	second, err := Init(parse(t), reg, nil)
	assert.ErrorIs(t, err, ErrAlreadyInitialized)
	assert.Same(t, first, second)
	assert.Len(t, tk.Widgets(""), built)
}

func TestInit_ReportsFailuresAndContinues(t *testing.T) {
	tk, reg := setup(t)
	boom := stderrors.New("boom")
	tk.FailKinds[widget.KindTextField] = boom

	h := &recordingHandler{}
	errors.SetHandler(h)
	t.Cleanup(func() { errors.SetHandler(nil) })

	s, err := Init(parse(t), reg, []Rule{
		{Selector: ".mdc-text-field", Kind: widget.KindTextField},
		{Selector: ".mdc-button", Kind: widget.KindRipple},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, s.Failed())
	assert.Equal(t, 1, s.Count(widget.KindRipple))
	require.Len(t, h.errs, 1)
	assert.Equal(t, errors.KindBootstrap, h.errs[0].Kind)
	assert.Equal(t, ".mdc-text-field", h.errs[0].Selector)
	assert.ErrorIs(t, h.errs[0], boom)
}

func TestShutdown_DestroysSessionWidgets(t *testing.T) {
	tk, reg := setup(t)
	_, err := Init(parse(t), reg, nil)
	require.NoError(t, err)

	require.NoError(t, Shutdown())
	assert.Nil(t, Current())
	assert.Empty(t, tk.Alive())
	assert.Equal(t, 0, reg.Live())

	_, err = Init(parse(t), reg, nil)
	assert.NoError(t, err)
}

func TestInit_NilDocument(t *testing.T) {
	_, reg := setup(t)
	_, err := Init(nil, reg, nil)
	assert.ErrorIs(t, err, errors.ErrMissingElement)
	assert.Nil(t, Current())
}

func TestInit_NilRegistry(t *testing.T) {
	setup(t)
	_, err := Init(parse(t), nil, nil)
	assert.ErrorIs(t, err, ErrNoRegistry)
	assert.Nil(t, Current())
}
