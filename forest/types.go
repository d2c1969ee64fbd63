// Package forest defines the result types and options of depth-first
// forest construction: visitation states, arcs, the Forest itself,
// and the functional options accepted by Build.
package forest

import (
	"errors"

	"github.com/cmookj/network/core"
)

// VisitState is the tri-state visitation status a node moves through
// during forest construction. Transitions are monotone:
// Unvisited → Open → Closed, each taken exactly once per node.
type VisitState uint8

const (
	// Unvisited marks a node not yet reached by any tree.
	Unvisited VisitState = iota

	// Open marks a node on the traversal stack of the current tree.
	Open

	// Closed marks a node whose outgoing edges are fully explored.
	Closed
)

var (
	// ErrDigraphNil is returned when a nil *core.Digraph is passed to Build.
	ErrDigraphNil = errors.New("forest: digraph is nil")

	// ErrDanglingEdge indicates the snapshot contains an edge whose
	// target label is absent from the node set — a broken upstream
	// invariant, reported instead of silently skipped.
	ErrDanglingEdge = errors.New("forest: edge references a label absent from the digraph")
)

// Arc is one directed edge of the digraph, recorded as an ordered
// (source label, target label) pair.
type Arc struct {
	// From is the source node label.
	From string

	// To is the target node label.
	To string
}

// String renders the arc as "From→To".
func (a Arc) String() string { return a.From + "→" + a.To }

// Forest is the read-only outcome of Build: an ordered sequence of
// spanning trees plus the classification of every digraph edge.
//
// Every node of the source digraph appears in exactly one tree, and
// every edge appears in exactly one arc slice, exactly once.
type Forest[T any] struct {
	// Trees holds the spanning trees in the order they were rooted.
	Trees []*core.Tree[T]

	// TreeArcs are the edges that first discovered their target; they
	// are exactly the parent→child links of Trees.
	TreeArcs []Arc

	// BackArcs point from a node to one of its ancestors in the same
	// tree; each one closes a cycle.
	BackArcs []Arc

	// LoopArcs are self-edges (From == To).
	LoopArcs []Arc

	// ForwardArcs point from a node to an already-closed descendant in
	// the same tree.
	ForwardArcs []Arc

	// CrossArcs point outside the source's lineage: into a sibling
	// subtree or an earlier tree of the forest.
	CrossArcs []Arc

	// Order records node labels in discovery order across all trees.
	Order []string
}

// Size returns the total number of nodes across all trees, which
// equals the node count of the source digraph.
func (f *Forest[T]) Size() int {
	var n int
	for _, tr := range f.Trees {
		n += tr.Size()
	}

	return n
}

// ArcCount returns the total number of classified arcs, which equals
// the edge count of the source digraph.
func (f *Forest[T]) ArcCount() int {
	return len(f.TreeArcs) + len(f.BackArcs) + len(f.LoopArcs) +
		len(f.ForwardArcs) + len(f.CrossArcs)
}

// RootOrder selects which unvisited node roots the next tree.
type RootOrder int

const (
	// LastCreated roots each tree at the last remaining unvisited node
	// in creation order (the default convention).
	LastCreated RootOrder = iota

	// FirstCreated roots each tree at the first remaining unvisited
	// node in creation order.
	FirstCreated
)

// Option configures optional behavior of Build.
type Option func(*Options)

// Options holds configurable parameters for forest construction.
type Options struct {
	// RootOrder picks the next tree root among unvisited nodes.
	// Default is LastCreated.
	RootOrder RootOrder

	// OnVisit, if non-nil, is invoked when a node is first discovered
	// (pre-order). Returning an error aborts the build with that error.
	OnVisit func(label string) error
}

// DefaultOptions returns the Options used when none are supplied:
// LastCreated root selection and no visit hook.
func DefaultOptions() Options {
	return Options{
		RootOrder: LastCreated,
		OnVisit:   nil,
	}
}

// WithRootOrder returns an Option that sets the root-selection
// convention for disconnected graphs.
func WithRootOrder(ro RootOrder) Option {
	return func(o *Options) {
		o.RootOrder = ro
	}
}

// WithOnVisit returns an Option that installs fn as a pre-order hook,
// called once per node at discovery time.
func WithOnVisit(fn func(label string) error) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}
