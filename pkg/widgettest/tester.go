// Package widgettest provides a fake widget toolkit and a tester that mounts
// components into an in-memory document.
//
// # Quick Start
//
//	func TestDialog(t *testing.T) {
//	    tester := widgettest.New(t)
//	    visible := props.NewObservable(false)
//	    require.NoError(t, tester.PumpWidget(vdom.New(mdc.Dialog{}, props.New("visible", visible))))
//
//	    visible.Set(true)
//	    require.NoError(t, tester.Pump())
//
//	    dialog := tester.Toolkit.Last(widget.KindDialog)
//	    assert.Equal(t, 1, dialog.OpenCount())
//	}
//
// The fake toolkit records construction, destruction and every capability
// call, and lets tests emit widget events with FakeWidget.Emit.
package widgettest

import (
	"fmt"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-drift/materialweb/pkg/core"
	"github.com/go-drift/materialweb/pkg/dom"
	"github.com/go-drift/materialweb/pkg/vdom"
	"github.com/go-drift/materialweb/pkg/widget"
	"golang.org/x/net/html"
)

// Tester mounts components into the body of a fresh document backed by a
// fake toolkit.
type Tester struct {
	Doc      *html.Node
	Body     *html.Node
	Toolkit  *Toolkit
	Registry *widget.Registry
	Owner    *core.Owner

	root *core.Root
}

// NewTester creates a tester. Call Cleanup when done, or use New instead.
func NewTester() *Tester {
	doc, body := dom.NewDocument()
	tk := NewToolkit()
	reg := tk.NewRegistry()
	return &Tester{
		Doc:      doc,
		Body:     body,
		Toolkit:  tk,
		Registry: reg,
		Owner:    core.NewOwner(reg),
	}
}

// New creates a tester that unmounts its tree via t.Cleanup.
// This is the recommended constructor for tests.
func New(t testing.TB) *Tester {
	tester := NewTester()
	t.Cleanup(func() {
		if err := tester.Cleanup(); err != nil {
			t.Errorf("widgettest: cleanup: %v", err)
		}
	})
	return tester
}

// PumpWidget mounts node on the first call and re-renders the mounted tree
// with node afterwards, then flushes pending rebuilds.
func (t *Tester) PumpWidget(node vdom.Node) error {
	if t.root == nil {
		root, err := t.Owner.Mount(t.Body, node)
		t.root = root
		return err
	}
	return t.root.Render(node)
}

// Pump runs pending rebuilds and the hooks they queue.
func (t *Tester) Pump() error {
	return t.Owner.FlushBuild()
}

// Find evaluates a CSS selector against the document body.
func (t *Tester) Find(selector string) *goquery.Selection {
	return dom.Find(t.Body, selector)
}

// Dispatch delivers event to the first node matching selector and pumps.
func (t *Tester) Dispatch(selector, event string) error {
	sel := t.Find(selector)
	if sel.Length() == 0 {
		return fmt.Errorf("widgettest: no node matches %q", selector)
	}
	if !t.Owner.Dispatch(sel.Get(0), event) {
		return fmt.Errorf("widgettest: no %s handler for %q", event, selector)
	}
	return t.Pump()
}

// HTML renders the body for diagnostics.
func (t *Tester) HTML() string {
	return dom.Render(t.Body)
}

// Unmount tears the mounted tree down.
func (t *Tester) Unmount() error {
	if t.root == nil {
		return nil
	}
	root := t.root
	t.root = nil
	return root.Unmount()
}

// Cleanup unmounts any mounted tree.
func (t *Tester) Cleanup() error {
	return t.Unmount()
}
