package view

import (
	"context"
	"io"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
)

// Page fragments are built with gomponents while the outer document is a
// templ.Component, so both directions need a bridge.

type nodeComponent struct {
	node g.Node
}

func (a nodeComponent) Render(_ context.Context, w io.Writer) error {
	return a.node.Render(w)
}

// Component wraps a gomponents node so it can be placed in a templ layout.
func Component(node g.Node) templ.Component {
	return nodeComponent{node: node}
}

type componentNode struct {
	ctx       context.Context
	component templ.Component
}

func (a componentNode) Render(w io.Writer) error {
	return a.component.Render(a.ctx, w)
}

// Node wraps a templ component so it can be nested in a gomponents tree.
// The component renders with ctx, which carries the request values.
func Node(ctx context.Context, component templ.Component) g.Node {
	if ctx == nil {
		ctx = context.Background()
	}
	return componentNode{ctx: ctx, component: component}
}
