package mdc

import (
	"github.com/go-drift/materialweb/pkg/core"
	"github.com/go-drift/materialweb/pkg/lifecycle"
	"github.com/go-drift/materialweb/pkg/props"
	"github.com/go-drift/materialweb/pkg/selection"
	"github.com/go-drift/materialweb/pkg/vdom"
	"github.com/go-drift/materialweb/pkg/widget"
)

// List is a list of items. With selection set it becomes a single-selection
// listbox whose selected item is the child whose value equals the value prop.
//
// Props: selection, value, twoLines, className.
type List struct{}

func (List) CreateState() core.State {
	s := newWidgetState(widget.KindList, renderList)
	s.declare = func(a *lifecycle.Adapter) {
		a.OnMount(func(w widget.Widget) error {
			if s.Props().Bool("selection") {
				setSingleSelection(w, true)
			}
			return nil
		})
		a.Watch("selection", func(_, cur any) error {
			setSingleSelection(s.widget(), props.Truthy(cur))
			return nil
		})
	}
	return s
}

func setSingleSelection(w widget.Widget, enabled bool) {
	if ss, ok := w.(widget.SingleSelector); ok {
		ss.SetSingleSelection(enabled)
	}
}

func renderList(s *widgetState, ctx *core.BuildContext) vdom.Node {
	values, rest := props.Extract(ctx.Props(), "className", "twoLines", "selection", "value")
	enabled := values.Bool("selection")

	var role any
	if enabled {
		role = "listbox"
	}
	return vdom.H("ul", rest.Merge(props.New(
		"ref", s.ref,
		"role", role,
		"className", classNames("mdc-list", when(values.Bool("twoLines"), "mdc-list--two-line"), values.String("className")),
	)), selection.Propagate(ctx.Children(), values.Value("value"), enabled)...)
}

// ListItem is one entry of a List, with a ripple.
//
// Props: value, selected, className.
type ListItem struct{}

func (ListItem) CreateState() core.State {
	return newWidgetState(widget.KindRipple, renderListItem)
}

func renderListItem(s *widgetState, ctx *core.BuildContext) vdom.Node {
	values, rest := props.Extract(ctx.Props(), "className", "selected", "value")
	selected := values.Bool("selected")

	attrs := rest.Merge(props.New(
		"ref", s.ref,
		"className", classNames("mdc-list-item", when(selected, "mdc-list-item--selected"), values.String("className")),
	))
	if v := values.Value("value"); v != nil && !rest.Has("data-value") {
		attrs = attrs.With("data-value", props.ToString(v))
	}
	return vdom.H("li", attrs,
		vdom.H("span", props.New("className", "mdc-list-item__ripple")),
		vdom.H("span", props.New("className", "mdc-list-item__text"), ctx.Children()...),
	)
}

// ListItemPrimary is the first line of a two-line ListItem.
type ListItemPrimary struct{}

func (ListItemPrimary) Render(ctx *core.BuildContext) vdom.Node {
	return vdom.H("span", props.New("className", "mdc-list-item__primary-text"), ctx.Children()...)
}

// ListItemSecondary is the second line of a two-line ListItem.
type ListItemSecondary struct{}

func (ListItemSecondary) Render(ctx *core.BuildContext) vdom.Node {
	return vdom.H("span", props.New("className", "mdc-list-item__secondary-text"), ctx.Children()...)
}

// ListDivider separates items of a List.
type ListDivider struct{}

func (ListDivider) Render(*core.BuildContext) vdom.Node {
	return vdom.H("li", props.New("role", "separator", "className", "mdc-list-divider"))
}

// ListGroup groups several lists under headings.
type ListGroup struct{}

func (ListGroup) Render(ctx *core.BuildContext) vdom.Node {
	values, rest := props.Extract(ctx.Props(), "className")
	return vdom.H("div", rest.With("className", classNames("mdc-list-group", values.String("className"))),
		ctx.Children()...)
}

// ListGroupHeading is the heading of one list in a ListGroup.
type ListGroupHeading struct{}

func (ListGroupHeading) Render(ctx *core.BuildContext) vdom.Node {
	values, rest := props.Extract(ctx.Props(), "className")
	return vdom.H("h3", rest.With("className", classNames("mdc-list-group__subheader", values.String("className"))),
		ctx.Children()...)
}
