package scc

import (
	"errors"

	"github.com/cmookj/network/core"
	"github.com/cmookj/network/forest"
)

// ErrForestNil is returned when a nil *forest.Forest is passed to
// Components.
var ErrForestNil = errors.New("scc: forest is nil")

// extractor holds the lowlink bookkeeping shared across all trees of
// one extraction.
type extractor struct {
	nonTree map[string][]string // non-tree arc targets per source
	index   map[string]int      // discovery index per label
	low     map[string]int      // lowest index reachable per label
	onStack map[string]bool     // membership in the undecided stack
	stack   []string            // nodes whose component is undecided
	next    int                 // next discovery index
	comps   [][]string          // finished components, completion order
}

// frame is one entry of the replay stack: a node, its children in
// original attach order, and the index of the next child to enter.
type frame struct {
	label    string
	children []string
	next     int
}

// Components partitions the forest's nodes into strongly connected
// components. Each component is a slice of labels; components are
// returned in completion order. Returns ErrForestNil for a nil
// forest.
func Components[T any](f *forest.Forest[T]) ([][]string, error) {
	// 1. Validate input forest
	if f == nil {
		return nil, ErrForestNil
	}

	// 2. Index the non-tree arcs by source; tree arcs are replayed
	//    through the trees themselves.
	n := f.Size()
	x := &extractor{
		nonTree: make(map[string][]string, n),
		index:   make(map[string]int, n),
		low:     make(map[string]int, n),
		onStack: make(map[string]bool, n),
		stack:   make([]string, 0, n),
		comps:   make([][]string, 0, n),
	}
	for _, set := range [...][]forest.Arc{f.BackArcs, f.LoopArcs, f.ForwardArcs, f.CrossArcs} {
		for _, a := range set {
			x.nonTree[a.From] = append(x.nonTree[a.From], a.To)
		}
	}

	// 3. Replay each tree in rooting order.
	for _, tr := range f.Trees {
		replay(x, tr)
	}

	return x.comps, nil
}

// FromDigraph builds the depth-first forest of g and extracts its
// strongly connected components in one call. Options are forwarded
// to forest.Build.
func FromDigraph[T any](g *core.Digraph[T], opts ...forest.Option) ([][]string, error) {
	f, err := forest.Build(g, opts...)
	if err != nil {
		return nil, err
	}

	return Components(f)
}

// replay walks one spanning tree in its original traversal order —
// children in attach order — computing lowlinks and sealing
// components. It is a free function because it is generic over the
// tree's payload type, which the extractor itself never touches.
func replay[T any](x *extractor, tr *core.Tree[T]) {
	root := tr.Root()
	x.discover(root.Label())
	stack := []frame{{label: root.Label(), children: root.Edges()}}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]

		// Enter the next unexplored child, if any. Tree children are
		// unique and unvisited by construction (each node lives in
		// exactly one tree under exactly one parent).
		if top.next < len(top.children) {
			child := top.children[top.next]
			top.next++
			x.discover(child)
			cn, _ := tr.Node(child)
			stack = append(stack, frame{label: child, children: cn.Edges()})
			continue
		}

		// Completion: fold the node's non-tree arcs into its lowlink.
		// Targets already sealed into a component cannot merge with
		// this node and are skipped.
		label := top.label
		for _, w := range x.nonTree[label] {
			if x.onStack[w] && x.index[w] < x.low[label] {
				x.low[label] = x.index[w]
			}
		}

		// First-discovered node of its component: seal it.
		if x.low[label] == x.index[label] {
			var comp []string
			for {
				w := x.stack[len(x.stack)-1]
				x.stack = x.stack[:len(x.stack)-1]
				x.onStack[w] = false
				comp = append(comp, w)
				if w == label {
					break
				}
			}
			x.comps = append(x.comps, comp)
		}

		// Propagate the final lowlink to the parent frame.
		if len(stack) > 1 {
			parent := &stack[len(stack)-2]
			if x.low[label] < x.low[parent.label] {
				x.low[parent.label] = x.low[label]
			}
		}
		stack = stack[:len(stack)-1]
	}
}

// discover assigns the next index to label and pushes it onto the
// undecided stack.
func (x *extractor) discover(label string) {
	x.index[label] = x.next
	x.low[label] = x.next
	x.next++
	x.stack = append(x.stack, label)
	x.onStack[label] = true
}
