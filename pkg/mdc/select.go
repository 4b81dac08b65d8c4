package mdc

import (
	"strings"

	"github.com/go-drift/materialweb/pkg/core"
	"github.com/go-drift/materialweb/pkg/dom"
	"github.com/go-drift/materialweb/pkg/lifecycle"
	"github.com/go-drift/materialweb/pkg/props"
	"github.com/go-drift/materialweb/pkg/selection"
	"github.com/go-drift/materialweb/pkg/vdom"
	"github.com/go-drift/materialweb/pkg/widget"
)

// Select is a dropdown of SelectItem children. The anchor shows the text of
// the item whose value is current.
//
// Props: value, label, hint, disabled, required, filled (default) or
// outlined, className, id, onChange. onChange is a func(value string) or a
// func(value, label string) and runs after the shown label is updated.
type Select struct{}

func (Select) CreateState() core.State {
	s := &selectState{widgetState: widgetState{kind: widget.KindSelect, ref: vdom.NewRef()}}
	s.label = core.NewManaged(s, "")
	s.declare = s.declareSelect
	s.afterMount = func() error {
		s.refreshLabel()
		return nil
	}
	return s
}

type selectState struct {
	widgetState
	label *core.Managed[string]
}

// Label returns the text currently shown in the anchor.
func (s *selectState) Label() string { return s.label.Value() }

func (s *selectState) declareSelect(a *lifecycle.Adapter) {
	a.Listen(widget.EventSelectChange, func(widget.Event) {
		value := s.currentValue()
		s.refreshLabel()
		notifyChange(s.Props().Value("onChange"), value, s.label.Value())
	})
	a.Watch("value", func(_, cur any) error {
		if setter, ok := s.widget().(widget.ValueSetter); ok {
			setter.SetValue(props.ToString(cur))
		}
		s.refreshLabel()
		return nil
	})
}

// currentValue is the widget's value. The value prop stands in only for a
// widget that cannot report one. An empty string is a real value.
func (s *selectState) currentValue() string {
	if holder, ok := s.widget().(widget.ValueHolder); ok {
		return holder.Value()
	}
	return s.Props().String("value")
}

// refreshLabel caches the text of the rendered item bearing the current
// value. No match yields an empty label.
func (s *selectState) refreshLabel() {
	text := ""
	if root := s.ref.Current(); root != nil {
		item := dom.FindByAttr(root, ".mdc-list-item", "data-value", s.currentValue())
		text = strings.TrimSpace(item.First().Find(".mdc-list-item__text").First().Text())
	}
	if text != s.label.Value() {
		s.label.Set(text)
	}
}

func notifyChange(fn any, value, label string) {
	switch f := fn.(type) {
	case func(string):
		f(value)
	case func(string, string):
		f(value, label)
	}
}

func (s *selectState) Render(ctx *core.BuildContext) vdom.Node {
	options, rest := props.Extract(ctx.Props(), modeOutlined, modeFilled)
	values, attrs := props.Extract(rest, "className", "label", "value", "disabled", "required", "hint", "onChange")

	id := s.instanceID(attrs)
	attrs = attrs.With("id", id)
	label := values.String("label")
	disabled, required := values.Bool("disabled"), values.Bool("required")
	outlined := presentation(options) == modeOutlined

	mode := "mdc-select--filled"
	if outlined {
		mode = "mdc-select--outlined"
	}
	className := classNames("mdc-select", mode,
		when(disabled, "mdc-select--disabled"),
		when(required, "mdc-select--required"),
		when(label == "", "mdc-select--no-label"),
		values.String("className"),
	)

	var floating vdom.Node
	if label != "" {
		floating = vdom.H("span", props.New(
			"id", id+"-label",
			"className", "mdc-floating-label mdc-floating-label--float-above",
		), label)
	}

	anchor := []vdom.Node{
		vdom.H("span", props.New("id", id+"-selected-text", "className", "mdc-select__selected-text"), s.label.Value()),
		dropdownIcon(),
	}
	if outlined {
		var notch vdom.Node
		if floating != nil {
			notch = vdom.H("span", props.New("className", "mdc-notched-outline__notch"), floating)
		}
		anchor = append(anchor, vdom.H("span", props.New("className", "mdc-notched-outline"),
			vdom.H("span", props.New("className", "mdc-notched-outline__leading")),
			notch,
			vdom.H("span", props.New("className", "mdc-notched-outline__trailing")),
		))
	} else {
		anchor = append([]vdom.Node{vdom.H("span", props.New("className", "mdc-select__ripple"))}, anchor...)
		anchor = append(anchor, floating, vdom.H("span", props.New("className", "mdc-line-ripple")))
	}

	hintID := ""
	if values.Bool("hint") {
		hintID = id + "-hint"
	}

	return vdom.H("div", props.New("className", "mdc-select-container"),
		vdom.H("div", attrs.Merge(props.New("ref", s.ref, "className", className)),
			vdom.H("div", props.New(
				"role", "button",
				"aria-haspopup", "listbox",
				"aria-labelledby", id+"-label "+id+"-selected-text",
				"aria-required", required,
				"aria-disabled", disabled,
				"aria-describedby", optional(hintID),
				"className", "mdc-select__anchor",
			), anchor...),
			vdom.H("div", props.New(
				"role", "listbox",
				"className", "mdc-select__menu mdc-menu mdc-menu-surface mdc-menu-surface--fullwidth",
			),
				vdom.H("ul", props.New("className", "mdc-list"),
					selection.Propagate(ctx.Children(), values.Value("value"), true)...,
				),
			),
		),
		helperLine(hintID, values.Value("hint")),
	)
}

func dropdownIcon() vdom.Node {
	return vdom.H("span", props.New("className", "mdc-select__dropdown-icon"),
		vdom.H("svg", props.New("viewBox", "7 10 10 5", "className", "mdc-select__dropdown-icon-graphic"),
			vdom.H("polygon", props.New(
				"points", "7 10 12 15 17 10",
				"stroke", "none",
				"fillRule", "evenodd",
				"className", "mdc-select__dropdown-icon-inactive",
			)),
			vdom.H("polygon", props.New(
				"points", "7 15 12 10 17 15",
				"stroke", "none",
				"fillRule", "evenodd",
				"className", "mdc-select__dropdown-icon-active",
			)),
		),
	)
}

// SelectItem is one option of a Select.
//
// Props: value, selected, disabled, className.
type SelectItem struct{}

func (SelectItem) Render(ctx *core.BuildContext) vdom.Node {
	values, rest := props.Extract(ctx.Props(), "className", "disabled", "selected", "value")
	disabled, selected := values.Bool("disabled"), values.Bool("selected")
	return vdom.H("li", rest.Merge(props.New(
		"role", "option",
		"data-value", values.String("value"),
		"aria-selected", selected,
		"aria-disabled", disabled,
		"className", classNames("mdc-list-item",
			when(disabled, "mdc-list-item--disabled"),
			when(selected, "mdc-list-item--selected"),
			values.String("className"),
		),
	)),
		vdom.H("span", props.New("className", "mdc-list-item__ripple")),
		vdom.H("span", props.New("className", "mdc-list-item__text"), ctx.Children()...),
	)
}
