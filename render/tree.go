// SPDX-License-Identifier: Unlicense OR MIT

package render

import (
	"golang.org/x/exp/slices"
)

// Tree is a flat host render tree. It issues tokens to the nodes
// that register with it and commits them once per Layout.
//
// The zero value is ready to use. A Tree must not be used
// concurrently.
type Tree struct {
	last  Token
	nodes []entry
}

type entry struct {
	token Token
	node  Node
}

// Register n and return its token. Tokens start at 1 and are
// never reused.
func (t *Tree) Register(n Node) Token {
	t.last++
	t.nodes = append(t.nodes, entry{token: t.last, node: n})
	return t.last
}

// Unregister removes the node with token tok and reports whether it
// was registered.
func (t *Tree) Unregister(tok Token) bool {
	i := t.index(tok)
	if i == -1 {
		return false
	}
	t.nodes = slices.Delete(t.nodes, i, i+1)
	return true
}

// Node returns the node registered for tok.
func (t *Tree) Node(tok Token) (Node, bool) {
	i := t.index(tok)
	if i == -1 {
		return nil, false
	}
	return t.nodes[i].node, true
}

// Len returns the number of registered nodes.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Commit routes ctx to the node registered for tok. It reports
// whether such a node exists.
func (t *Tree) Commit(tok Token, ctx Context) bool {
	n, ok := t.Node(tok)
	if !ok {
		return false
	}
	n.Commit(ctx)
	return true
}

// Layout runs a layout pass: every registered node is committed
// once, in registration order.
func (t *Tree) Layout(ctx Context) {
	for _, e := range t.nodes {
		e.node.Commit(ctx)
	}
}

func (t *Tree) index(tok Token) int {
	if tok == 0 {
		return -1
	}
	return slices.IndexFunc(t.nodes, func(e entry) bool {
		return e.token == tok
	})
}
