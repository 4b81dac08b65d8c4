package mdc

import (
	"github.com/go-drift/materialweb/pkg/core"
	"github.com/go-drift/materialweb/pkg/props"
	"github.com/go-drift/materialweb/pkg/vdom"
	"github.com/go-drift/materialweb/pkg/widget"
)

// Presentation modes shared by TextField, TextArea and Select. They are mutually
// exclusive; when several are set, outlined wins over fullwidth, and
// fullwidth over filled.
const (
	modeFilled    = "filled"
	modeOutlined  = "outlined"
	modeFullwidth = "fullwidth"
)

func presentation(options *props.Props) string {
	switch {
	case options.Bool(modeOutlined):
		return modeOutlined
	case options.Bool(modeFullwidth):
		return modeFullwidth
	default:
		return modeFilled
	}
}

// TextField is a single-line text input with a floating label.
//
// Props: filled (default), outlined, fullwidth, label, hint, className. Other
// props, including id, value, disabled and placeholder, go to the <input>.
type TextField struct{}

func (TextField) CreateState() core.State {
	return newWidgetState(widget.KindTextField, renderTextField)
}

func renderTextField(s *widgetState, ctx *core.BuildContext) vdom.Node {
	options, rest := props.Extract(ctx.Props(), modeOutlined, modeFullwidth, modeFilled)
	values, input := props.Extract(rest, "label", "className", "hint")

	id := s.instanceID(input)
	input = input.With("id", id)
	hintID := ""
	if values.Bool("hint") {
		hintID = id + "-hint"
	}
	className := classNames(values.String("className"), when(input.Bool("disabled"), "mdc-text-field--disabled"))
	label := values.String("label")

	var field vdom.Node
	switch presentation(options) {
	case modeOutlined:
		field = vdom.H("label", props.New(
			"ref", s.ref,
			"className", classNames("mdc-text-field mdc-text-field--outlined", className),
		),
			textInput(input, id, hintID),
			vdom.H("span", props.New("className", "mdc-notched-outline"),
				vdom.H("span", props.New("className", "mdc-notched-outline__leading")),
				vdom.H("span", props.New("className", "mdc-notched-outline__notch"),
					vdom.H("span", props.New("id", id+"-label", "className", "mdc-floating-label"), label),
				),
				vdom.H("span", props.New("className", "mdc-notched-outline__trailing")),
			),
		)
	case modeFullwidth:
		placeholder := input.String("placeholder")
		if placeholder == "" {
			placeholder = label
		}
		field = vdom.H("label", props.New(
			"ref", s.ref,
			"className", classNames("mdc-text-field mdc-text-field--filled mdc-text-field--fullwidth", className),
		),
			vdom.H("span", props.New("className", "mdc-text-field__ripple")),
			vdom.H("input", input.Merge(props.New(
				"placeholder", placeholder,
				"aria-label", label,
				"aria-controls", optional(hintID),
				"aria-describedby", optional(hintID),
				"className", "mdc-text-field__input",
			))),
			vdom.H("span", props.New("className", "mdc-line-ripple")),
		)
	default:
		field = vdom.H("label", props.New(
			"ref", s.ref,
			"className", classNames("mdc-text-field mdc-text-field--filled", className),
		),
			vdom.H("span", props.New("className", "mdc-text-field__ripple")),
			textInput(input, id, hintID),
			vdom.H("span", props.New("id", id+"-label", "className", "mdc-floating-label"), label),
			vdom.H("span", props.New("className", "mdc-line-ripple")),
		)
	}

	return vdom.H("div", props.New("className", "mdc-text-field-container"),
		field,
		helperLine(hintID, values.Value("hint")),
	)
}

// TextArea is a multi-line text input. It has no floating label; label
// becomes the aria-label of the <textarea>.
//
// Props: filled (default) or outlined, label, hint, className, value. Other
// props, including id, rows, cols and disabled, go to the <textarea>.
type TextArea struct{}

func (TextArea) CreateState() core.State {
	return newWidgetState(widget.KindTextField, renderTextArea)
}

func renderTextArea(s *widgetState, ctx *core.BuildContext) vdom.Node {
	options, rest := props.Extract(ctx.Props(), modeOutlined, modeFullwidth, modeFilled)
	values, input := props.Extract(rest, "label", "className", "hint", "value")

	id := s.instanceID(input)
	input = input.With("id", id)
	hintID := ""
	if values.Bool("hint") {
		hintID = id + "-hint"
	}
	className := classNames(values.String("className"), when(input.Bool("disabled"), "mdc-text-field--disabled"))

	resizer := vdom.H("span", props.New("className", "mdc-text-field__resizer"),
		vdom.H("textarea", input.Merge(props.New(
			"aria-label", optional(values.String("label")),
			"aria-controls", optional(hintID),
			"aria-describedby", optional(hintID),
			"className", "mdc-text-field__input",
		)), values.String("value")),
	)

	var field vdom.Node
	if presentation(options) == modeOutlined {
		field = vdom.H("label", props.New(
			"ref", s.ref,
			"className", classNames("mdc-text-field mdc-text-field--outlined mdc-text-field--textarea mdc-text-field--no-label", className),
		),
			resizer,
			vdom.H("span", props.New("className", "mdc-notched-outline"),
				vdom.H("span", props.New("className", "mdc-notched-outline__leading")),
				vdom.H("span", props.New("className", "mdc-notched-outline__trailing")),
			),
		)
	} else {
		field = vdom.H("label", props.New(
			"ref", s.ref,
			"className", classNames("mdc-text-field mdc-text-field--filled mdc-text-field--textarea mdc-text-field--no-label", className),
		),
			vdom.H("span", props.New("className", "mdc-text-field__ripple")),
			resizer,
			vdom.H("span", props.New("className", "mdc-line-ripple")),
		)
	}

	return vdom.H("div", props.New("className", "mdc-text-field-container"),
		field,
		helperLine(hintID, values.Value("hint")),
	)
}

func textInput(input *props.Props, id, hintID string) vdom.Node {
	return vdom.H("input", input.Merge(props.New(
		"aria-labelledby", id+"-label",
		"aria-controls", optional(hintID),
		"aria-describedby", optional(hintID),
		"className", "mdc-text-field__input",
	)))
}

// helperLine renders the hint below a field, or nothing without a hint.
func helperLine(hintID string, hint any) vdom.Node {
	if hintID == "" {
		return nil
	}
	return vdom.H("div", props.New("className", "mdc-text-field-helper-line"),
		vdom.H("div", props.New(
			"id", hintID,
			"aria-hidden", "true",
			"className", "mdc-text-field-helper-text",
		), hint),
	)
}

// optional maps "" to nil so the attribute is left out.
func optional(s string) any {
	if s == "" {
		return nil
	}
	return s
}
