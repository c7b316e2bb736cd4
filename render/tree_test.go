// SPDX-License-Identifier: Unlicense OR MIT

package render

import (
	"testing"

	"gioui.org/sizemod/f32"
)

type recorder struct {
	commits []Context
}

func (r *recorder) Commit(ctx Context) {
	r.commits = append(r.commits, ctx)
}

func TestTreeTokens(t *testing.T) {
	var tree Tree
	a, b := new(recorder), new(recorder)
	ta := tree.Register(a)
	tb := tree.Register(b)
	if ta == 0 || tb == 0 {
		t.Fatalf("zero token handed out: %d, %d", ta, tb)
	}
	if ta == tb {
		t.Fatalf("duplicate token %d", ta)
	}
	if n, ok := tree.Node(tb); !ok || n != Node(b) {
		t.Errorf("Node(%d) = %v, %v; want %v, true", tb, n, ok, b)
	}
	if !tree.Unregister(ta) {
		t.Errorf("Unregister(%d) failed", ta)
	}
	if tree.Unregister(ta) {
		t.Errorf("second Unregister(%d) succeeded", ta)
	}
	if _, ok := tree.Node(ta); ok {
		t.Errorf("node %d still registered", ta)
	}
	if got := tree.Len(); got != 1 {
		t.Errorf("have %d nodes, want 1", got)
	}
	tc := tree.Register(new(recorder))
	if tc == ta || tc == tb {
		t.Errorf("token %d reused", tc)
	}
}

func TestTreeLayout(t *testing.T) {
	var tree Tree
	var order []int
	nodes := make([]*orderNode, 3)
	for i := range nodes {
		nodes[i] = &orderNode{id: i, order: &order}
		tree.Register(nodes[i])
	}
	ctx := Context{Size: f32.Pt(200, 100)}
	tree.Layout(ctx)
	tree.Layout(ctx)
	want := []int{0, 1, 2, 0, 1, 2}
	if len(order) != len(want) {
		t.Fatalf("have %d commits, want %d", len(order), len(want))
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("commit %d: have node %d, want node %d", i, order[i], want[i])
		}
	}
	for _, n := range nodes {
		if n.last != ctx {
			t.Errorf("node %d committed with %v, want %v", n.id, n.last, ctx)
		}
	}
}

func TestTreeCommit(t *testing.T) {
	var tree Tree
	a, b := new(recorder), new(recorder)
	tree.Register(a)
	tb := tree.Register(b)
	ctx := Context{Size: f32.Pt(10, 20)}
	if !tree.Commit(tb, ctx) {
		t.Fatalf("Commit(%d) found no node", tb)
	}
	if len(a.commits) != 0 {
		t.Errorf("unrelated node committed %d times", len(a.commits))
	}
	if len(b.commits) != 1 || b.commits[0] != ctx {
		t.Errorf("have commits %v, want [%v]", b.commits, ctx)
	}
	if tree.Commit(0, ctx) {
		t.Errorf("zero token routed to a node")
	}
	if tree.Commit(tb+1, ctx) {
		t.Errorf("unknown token routed to a node")
	}
}

type orderNode struct {
	id    int
	order *[]int
	last  Context
}

func (n *orderNode) Commit(ctx Context) {
	*n.order = append(*n.order, n.id)
	n.last = ctx
}
