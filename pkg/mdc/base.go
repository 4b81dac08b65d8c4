// Package mdc provides declarative components for the material widget
// toolkit. Each component renders the markup the toolkit expects and, where
// the toolkit has a widget for it, keeps exactly one widget alive for as long
// as the rendered element is mounted.
//
// Sub-components are flat types named after their parent:
//
//	vdom.New(mdc.List{}, props.New("selection", true, "value", selected),
//	    vdom.New(mdc.ListItem{}, props.New("value", "a"),
//	        vdom.New(mdc.ListItemPrimary{}, nil, "Apples"),
//	    ),
//	    vdom.New(mdc.ListDivider{}, nil),
//	)
//
// Every prop a component does not recognize is passed through to the element
// it renders. Prop values may be props.Cell values; mounted components
// re-render when a subscribable cell changes.
package mdc

import (
	"strings"

	"github.com/go-drift/materialweb/pkg/core"
	"github.com/go-drift/materialweb/pkg/lifecycle"
	"github.com/go-drift/materialweb/pkg/props"
	"github.com/go-drift/materialweb/pkg/vdom"
	"github.com/go-drift/materialweb/pkg/widget"
	"github.com/google/uuid"
	"golang.org/x/net/html"
)

// widgetState binds one toolkit widget to the element referenced by ref.
type widgetState struct {
	core.StateBase
	kind    string
	ref     *vdom.Ref
	adapter *lifecycle.Adapter
	uid     string

	// render describes the markup; it must bind ref to the widget's root.
	render func(s *widgetState, ctx *core.BuildContext) vdom.Node
	// declare registers listeners, watches and setup steps before mount.
	declare func(a *lifecycle.Adapter)
	// afterMount runs once the widget exists.
	afterMount func() error
}

func newWidgetState(kind string, render func(s *widgetState, ctx *core.BuildContext) vdom.Node) *widgetState {
	return &widgetState{kind: kind, ref: vdom.NewRef(), render: render}
}

func (s *widgetState) Render(ctx *core.BuildContext) vdom.Node {
	return s.render(s, ctx)
}

func (s *widgetState) DidMount() error {
	s.adapter = lifecycle.New(s.kind, s.Registry())
	if s.declare != nil {
		s.declare(s.adapter)
	}
	if err := s.adapter.Mount(s.ref.Current()); err != nil {
		return err
	}
	if s.afterMount != nil {
		return s.afterMount()
	}
	return nil
}

func (s *widgetState) DidUpdate(old *props.Props) error {
	if !s.mounted() {
		return nil
	}
	return s.adapter.PropsChanged(old, s.Props())
}

func (s *widgetState) WillUnmount() error {
	if !s.mounted() {
		return nil
	}
	return s.adapter.Unmount()
}

func (s *widgetState) mounted() bool {
	return s.adapter != nil && s.adapter.State() == lifecycle.StateMounted
}

// widget returns the mounted widget, or nil.
func (s *widgetState) widget() widget.Widget {
	if !s.mounted() {
		return nil
	}
	w, _ := s.adapter.Widget()
	return w
}

// instanceID returns the "id" prop, or an identifier generated once for this
// instance.
func (s *widgetState) instanceID(p *props.Props) string {
	if id := p.String("id"); id != "" {
		return id
	}
	if s.uid == "" {
		s.uid = "mdc-" + s.kind + "-" + uuid.NewString()
	}
	return s.uid
}

// classNames joins the non-empty class lists in parts.
func classNames(parts ...string) string {
	var out []string
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, " ")
}

// when returns class if cond holds.
func when(cond bool, class string) string {
	if cond {
		return class
	}
	return ""
}

// resolveNode accepts a *html.Node or a *vdom.Ref and returns the node.
func resolveNode(v any) *html.Node {
	switch t := v.(type) {
	case *html.Node:
		return t
	case *vdom.Ref:
		return t.Current()
	}
	return nil
}
