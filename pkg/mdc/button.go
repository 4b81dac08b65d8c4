package mdc

import (
	"github.com/go-drift/materialweb/pkg/core"
	"github.com/go-drift/materialweb/pkg/lifecycle"
	"github.com/go-drift/materialweb/pkg/props"
	"github.com/go-drift/materialweb/pkg/vdom"
	"github.com/go-drift/materialweb/pkg/widget"
)

// Button is a text button with a ripple.
//
// Props: outlined, raised (outlined wins), className, type (default
// "button"), onClick.
type Button struct{}

func (Button) CreateState() core.State {
	return newWidgetState(widget.KindRipple, renderButton)
}

func renderButton(s *widgetState, ctx *core.BuildContext) vdom.Node {
	values, rest := props.Extract(ctx.Props(), "className", "outlined", "raised", "type")

	variant := ""
	if values.Bool("outlined") {
		variant = "mdc-button--outlined"
	} else if values.Bool("raised") {
		variant = "mdc-button--raised"
	}
	typ := values.String("type")
	if typ == "" {
		typ = "button"
	}

	children := append([]vdom.Node{vdom.H("div", props.New("className", "mdc-button__ripple"))}, ctx.Children()...)
	children = append(children, vdom.H("div", props.New("className", "mdc-button__touch")))

	return vdom.H("div", props.New("className", "mdc-touch-target-wrapper"),
		vdom.H("button", rest.Merge(props.New(
			"ref", s.ref,
			"type", typ,
			"className", classNames("mdc-button mdc-button--touch", variant, values.String("className")),
		)), children...),
	)
}

// ButtonLabel is the text of a Button.
type ButtonLabel struct{}

func (ButtonLabel) Render(ctx *core.BuildContext) vdom.Node {
	return vdom.H("span", props.New("className", "mdc-button__label"), ctx.Children()...)
}

// ButtonIcon is a leading or trailing icon of a Button.
type ButtonIcon struct{}

func (ButtonIcon) Render(ctx *core.BuildContext) vdom.Node {
	return vdom.H("i", props.New(
		"aria-hidden", "true",
		"className", classNames("mdc-button__icon", ctx.Props().String("className")),
	), ctx.Children()...)
}

// IconButton is an icon-only button with an unbounded ripple. The label prop
// becomes its accessible name and tooltip.
type IconButton struct{}

func (IconButton) CreateState() core.State {
	s := newWidgetState(widget.KindRipple, renderIconButton)
	s.declare = func(a *lifecycle.Adapter) {
		a.OnMount(func(w widget.Widget) error {
			if u, ok := w.(widget.Unbounder); ok {
				u.SetUnbounded(true)
			}
			return nil
		})
	}
	return s
}

func renderIconButton(s *widgetState, ctx *core.BuildContext) vdom.Node {
	values, rest := props.Extract(ctx.Props(), "className", "label", "type", "icon")
	typ := values.String("type")
	if typ == "" {
		typ = "button"
	}
	return vdom.H("button", rest.Merge(props.New(
		"ref", s.ref,
		"type", typ,
		"aria-label", values.Value("label"),
		"title", values.Value("label"),
		"className", classNames("mdc-icon-button", values.String("className")),
	)), ctx.Children()...)
}

// ToggleButton is an icon button with an on and an off state.
//
// Props: state (on when truthy), label, iconOn, iconOff, className, onClick.
type ToggleButton struct{}

func (ToggleButton) CreateState() core.State {
	return newWidgetState(widget.KindIconButtonToggle, renderToggleButton)
}

func renderToggleButton(s *widgetState, ctx *core.BuildContext) vdom.Node {
	values, rest := props.Extract(ctx.Props(), "className", "state", "label", "iconOn", "iconOff")
	on := values.Bool("state")
	return vdom.H("button", rest.Merge(props.New(
		"ref", s.ref,
		"type", "button",
		"aria-label", values.Value("label"),
		"title", values.Value("label"),
		"aria-pressed", on,
		"className", classNames("mdc-icon-button toggle", when(on, "mdc-icon-button--on"), values.String("className")),
	)),
		vdom.H("i", props.New("className", "material-icons mdc-icon-button__icon mdc-icon-button__icon--on"), values.String("iconOn")),
		vdom.H("i", props.New("className", "material-icons mdc-icon-button__icon"), values.String("iconOff")),
	)
}
