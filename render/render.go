// SPDX-License-Identifier: Unlicense OR MIT

/*
Package render defines the contracts between a host render tree and
the nodes that contribute to its layout passes.

A node registers with a Registry and receives a Token. During each
layout pass the host calls the node's Commit method exactly once with
the current parent size. Afterwards the node hands the host an Output
pairing its Token with a Spec: the size the node resolved and the
target payload it passes through unchanged.

Tree is a minimal Registry that drives the passes itself.
*/
package render

import (
	"gioui.org/sizemod/f32"
)

// Token identifies a registered Node. The zero Token is never
// handed out by a Registry and marks an unregistered node.
type Token uint32

// Context is the state passed to a Node during a layout pass.
type Context struct {
	// Size of the parent, with X as the width and Y as the height.
	Size f32.Point
}

// Node is implemented by anything that takes part in layout passes.
type Node interface {
	// Commit is called once per layout pass with the parent context.
	Commit(ctx Context)
}

// Registry hands out Tokens for Nodes.
type Registry interface {
	Register(n Node) Token
}

// Spec is the result a Node contributes to the next rendering stage.
type Spec struct {
	// Size is the resolved size. It is only meaningful if Sized
	// is set; otherwise the target inherits the parent size.
	Size  f32.Point
	Sized bool
	// Target is the pass-through payload.
	Target interface{}
}

// Output is what a Node returns to the host: its registration Token
// and its Spec. An Output is valid until the next Commit of the Node.
type Output struct {
	Token Token
	Spec  Spec
}
