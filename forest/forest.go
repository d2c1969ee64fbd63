package forest

import (
	"fmt"

	"github.com/cmookj/network/core"
)

// builder encapsulates state during forest construction.
type builder[T any] struct {
	order  []string              // snapshot of labels in creation order
	edges  map[string][]string   // snapshot of outgoing edges per label
	data   map[string]T          // snapshot of payloads per label
	status map[string]VisitState // visitation state machine
	opts   Options               // build options
	res    *Forest[T]            // result collector
	cursor int                   // root-scan position into order
}

// frame is one entry of the explicit traversal stack: a node plus the
// index of its next unexplored edge.
type frame struct {
	label string
	next  int
}

// Build constructs the depth-first forest of g and classifies every
// edge. It snapshots the digraph up front, so the result is immune to
// later mutation. Returns ErrDigraphNil for a nil graph,
// ErrDanglingEdge for a corrupt snapshot, or any error returned by an
// OnVisit hook (with the partial forest built so far).
func Build[T any](g *core.Digraph[T], opts ...Option) (*Forest[T], error) {
	// 1. Validate input graph
	if g == nil {
		return nil, ErrDigraphNil
	}

	// 2. Apply options
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	// 3. Snapshot (label, payload, ordered edge labels) per node
	order := g.Labels()
	b := &builder[T]{
		order:  order,
		edges:  make(map[string][]string, len(order)),
		data:   make(map[string]T, len(order)),
		status: make(map[string]VisitState, len(order)),
		opts:   o,
		res:    &Forest[T]{Order: make([]string, 0, len(order))},
	}
	var n *core.Node[T]
	for _, l := range order {
		n, _ = g.Node(l)
		b.edges[l] = n.Edges()
		b.data[l] = n.Data()
		b.status[l] = Unvisited
	}
	if o.RootOrder == LastCreated {
		b.cursor = len(order) - 1
	}

	// 4. Guard the snapshot: every edge target must be a known label.
	for _, l := range order {
		for _, e := range b.edges[l] {
			if _, ok := b.status[e]; !ok {
				return nil, fmt.Errorf("forest: edge %s→%s: %w", l, e, ErrDanglingEdge)
			}
		}
	}

	// 5. Root trees until every node is closed.
	for {
		root, ok := b.nextRoot()
		if !ok {
			break
		}
		if err := b.grow(root); err != nil {
			return b.res, err
		}
	}

	return b.res, nil
}

// nextRoot scans the snapshot order for the next unvisited node,
// honoring the configured root convention. The cursor never backs up:
// statuses only move forward, so skipped positions stay visited.
func (b *builder[T]) nextRoot() (string, bool) {
	if b.opts.RootOrder == LastCreated {
		for ; b.cursor >= 0; b.cursor-- {
			if b.status[b.order[b.cursor]] == Unvisited {
				return b.order[b.cursor], true
			}
		}

		return "", false
	}
	for ; b.cursor < len(b.order); b.cursor++ {
		if b.status[b.order[b.cursor]] == Unvisited {
			return b.order[b.cursor], true
		}
	}

	return "", false
}

// grow roots a new spanning tree and explores it depth-first with an
// explicit stack, classifying every edge it encounters.
func (b *builder[T]) grow(root string) error {
	tr := core.NewTree(root, b.data[root])
	b.res.Trees = append(b.res.Trees, tr)
	if err := b.visit(root); err != nil {
		return err
	}

	stack := []frame{{label: root}}
	var (
		top      *frame
		src, dst string
		out      []string
	)
	for len(stack) > 0 {
		top = &stack[len(stack)-1]
		src = top.label
		out = b.edges[src]

		// Edges exhausted: close the node and backtrack.
		if top.next >= len(out) {
			b.status[src] = Closed
			stack = stack[:len(stack)-1]
			continue
		}

		dst = out[top.next]
		top.next++
		arc := Arc{From: src, To: dst}

		switch {
		case b.status[dst] == Unvisited:
			// First discovery: the edge joins the current tree.
			b.res.TreeArcs = append(b.res.TreeArcs, arc)
			tr.AppendNode(src, dst, b.data[dst])
			if err := b.visit(dst); err != nil {
				return err
			}
			stack = append(stack, frame{label: dst})

		case tr.IsAncestorOf(dst, src):
			// Target sits on the root→src path of the current tree.
			b.res.BackArcs = append(b.res.BackArcs, arc)

		case dst == src:
			b.res.LoopArcs = append(b.res.LoopArcs, arc)

		case tr.IsDescendantOf(dst, src):
			// Target is an already-closed node below src.
			b.res.ForwardArcs = append(b.res.ForwardArcs, arc)

		default:
			// Sibling subtree or an earlier tree of the forest.
			b.res.CrossArcs = append(b.res.CrossArcs, arc)
		}
	}

	return nil
}

// visit marks a node Open, records its discovery, and runs the
// OnVisit hook.
func (b *builder[T]) visit(label string) error {
	b.status[label] = Open
	b.res.Order = append(b.res.Order, label)
	if b.opts.OnVisit != nil {
		if err := b.opts.OnVisit(label); err != nil {
			return fmt.Errorf("forest: OnVisit hook for %q: %w", label, err)
		}
	}

	return nil
}
