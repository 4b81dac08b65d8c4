package mdc

import (
	"github.com/go-drift/materialweb/pkg/core"
	"github.com/go-drift/materialweb/pkg/dom"
	"github.com/go-drift/materialweb/pkg/lifecycle"
	"github.com/go-drift/materialweb/pkg/props"
	"github.com/go-drift/materialweb/pkg/vdom"
	"github.com/go-drift/materialweb/pkg/widget"
	"golang.org/x/net/html"
)

// Dialog actions understood by the toolkit, for DialogButton's action prop.
const (
	ActionCancel = "cancel"
	ActionSubmit = "submit"
)

// Dialog is a modal dialog driven by its visible prop.
//
// Props: visible, onOpen, onClose, outsideElement, className, id.
// onOpen and onClose are a func() or a func(widget.Event). outsideElement is
// a *html.Node or a *vdom.Ref naming content to hide from assistive
// technology while the dialog is open.
//
// Component children receive a dialogId prop so DialogTitle and
// DialogContent can label the dialog surface.
type Dialog struct{}

func (Dialog) CreateState() core.State {
	s := &dialogState{widgetState: widgetState{kind: widget.KindDialog, ref: vdom.NewRef()}}
	s.declare = s.declareDialog
	s.afterMount = s.openIfVisible
	return s
}

type dialogState struct {
	widgetState
}

func (s *dialogState) declareDialog(a *lifecycle.Adapter) {
	a.Listen(widget.EventDialogOpened, func(ev widget.Event) {
		notify(s.Props().Value("onOpen"), ev)
		if outside := s.outside(); outside != nil {
			dom.SetAttr(outside, "aria-hidden", "true")
		}
	})
	a.Listen(widget.EventDialogClosing, func(ev widget.Event) {
		notify(s.Props().Value("onClose"), ev)
		if outside := s.outside(); outside != nil {
			dom.RemoveAttr(outside, "aria-hidden")
		}
	})
	a.Watch("visible", func(old, cur any) error {
		was, is := props.Truthy(old), props.Truthy(cur)
		if was == is {
			return nil
		}
		if opener, ok := s.widget().(widget.Opener); ok {
			if is {
				opener.Open()
			} else {
				opener.Close()
			}
		}
		return nil
	})
}

func (s *dialogState) openIfVisible() error {
	if !s.Props().Bool("visible") {
		return nil
	}
	if opener, ok := s.widget().(widget.Opener); ok {
		opener.Open()
	}
	return nil
}

func (s *dialogState) outside() *html.Node {
	return resolveNode(s.Props().Value("outsideElement"))
}

func notify(fn any, ev widget.Event) {
	switch f := fn.(type) {
	case func():
		f()
	case func(widget.Event):
		f(ev)
	}
}

func (s *dialogState) Render(ctx *core.BuildContext) vdom.Node {
	values, rest := props.Extract(ctx.Props(), "visible", "onOpen", "onClose", "outsideElement", "className")
	id := s.instanceID(rest)

	children := vdom.ForEachChild(ctx.Children(), func(child vdom.Node, _ int) vdom.Node {
		if e, ok := vdom.AsElement(child); ok && !e.IsHost() {
			return vdom.CloneWithProps(e, props.New("dialogId", id))
		}
		return child
	})

	return vdom.H("div", rest.Merge(props.New(
		"ref", s.ref,
		"id", id,
		"className", classNames("mdc-dialog", values.String("className")),
	)),
		vdom.H("div", props.New("className", "mdc-dialog__container"),
			vdom.H("div", props.New(
				"role", "alertdialog",
				"aria-modal", "true",
				"aria-labelledby", id+"-title",
				"aria-describedby", id+"-content",
				"className", "mdc-dialog__surface",
			), children...),
		),
		vdom.H("div", props.New("className", "mdc-dialog__scrim")),
	)
}

// DialogTitle is the heading of a Dialog.
type DialogTitle struct{}

func (DialogTitle) Render(ctx *core.BuildContext) vdom.Node {
	values, rest := props.Extract(ctx.Props(), "dialogId", "className")
	return vdom.H("h2", rest.Merge(props.New(
		"id", optional(suffixed(values.String("dialogId"), "-title")),
		"className", classNames("mdc-dialog__title", values.String("className")),
	)), ctx.Children()...)
}

// DialogContent is the body of a Dialog.
type DialogContent struct{}

func (DialogContent) Render(ctx *core.BuildContext) vdom.Node {
	values, rest := props.Extract(ctx.Props(), "dialogId", "className")
	return vdom.H("div", rest.Merge(props.New(
		"id", optional(suffixed(values.String("dialogId"), "-content")),
		"className", classNames("mdc-dialog__content", values.String("className")),
	)), ctx.Children()...)
}

// DialogActions holds the buttons of a Dialog.
type DialogActions struct{}

func (DialogActions) Render(ctx *core.BuildContext) vdom.Node {
	values, rest := props.Extract(ctx.Props(), "dialogId", "className")
	return vdom.H("div", rest.With("className", classNames("mdc-dialog__actions", values.String("className"))),
		ctx.Children()...)
}

// DialogButton is a Button that closes its Dialog with the given action,
// e.g. ActionCancel.
type DialogButton struct{}

func (DialogButton) Render(ctx *core.BuildContext) vdom.Node {
	values, rest := props.Extract(ctx.Props(), "dialogId", "className", "action")
	p := rest.With("className", classNames(values.String("className"), "mdc-dialog__button"))
	if action := values.String("action"); action != "" {
		p = p.With("data-mdc-dialog-action", action)
	}
	return vdom.New(Button{}, p, ctx.Children()...)
}

func suffixed(id, suffix string) string {
	if id == "" {
		return ""
	}
	return id + suffix
}
