// Package core is the component runtime: it turns vdom descriptions into
// document nodes and keeps them in step as descriptions change.
//
// # Components
//
// A component is any value used as the Type of a vdom.Element that implements
// StatelessComponent or StatefulComponent. Stateless components render from
// their props alone:
//
//	type Heading struct{}
//
//	func (Heading) Render(ctx *core.BuildContext) vdom.Node {
//	    return vdom.H("h2", props.New("className", "title"), ctx.Children()...)
//	}
//
// Stateful components create a State that lives as long as the mounted
// instance. Embed StateBase to get SetState, OnDispose and no-op hooks:
//
//	type counterState struct {
//	    core.StateBase
//	    count int
//	}
//
//	func (s *counterState) Render(ctx *core.BuildContext) vdom.Node {
//	    return vdom.H("button", props.New("onClick", func() {
//	        s.SetState(func() { s.count++ })
//	    }), strconv.Itoa(s.count))
//	}
//
// # Hook order
//
// DidMount runs after the whole mounted subtree is attached to its
// container, children before parents. DidUpdate runs after every re-render,
// children before parents, with the props of the previous render. WillUnmount
// runs before the instance's children are removed. Replacing an element
// unmounts the old instance before the new one mounts.
//
// # Observable props
//
// A props.Subscribable value passed to a component is subscribed while the
// instance is mounted; each notification schedules a rebuild that happens on
// the next FlushBuild.
package core
