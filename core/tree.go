package core

import (
	"fmt"
	"strings"
)

// SearchMethod selects the traversal strategy used by Tree.Path.
type SearchMethod int

const (
	// DepthFirst walks branch by branch with an explicit path stack.
	DepthFirst SearchMethod = iota

	// BreadthFirst walks level by level, recording parent links and
	// backtracking from the target.
	BreadthFirst
)

// Tree is an owning, rooted, append-only collection of nodes. The
// root is the node the tree was created with; every other node enters
// through AppendNode, which rejects duplicate labels — so each
// non-root node has exactly one parent and exactly one root→node
// path.
//
// Tree is both a standalone structure and the record of one spanning
// tree inside a depth-first forest (package forest).
type Tree[T any] struct {
	nodes  map[string]*Node[T] // label → node
	order  []string            // labels in creation order; order[0] is the root
	parent map[string]string   // child label → parent label; root absent
}

// NewTree creates a tree containing only its root node.
func NewTree[T any](rootLabel string, data T) *Tree[T] {
	t := &Tree[T]{
		nodes:  make(map[string]*Node[T]),
		parent: make(map[string]string),
	}
	t.nodes[rootLabel] = newNode(rootLabel, data)
	t.order = append(t.order, rootLabel)

	return t
}

// Root returns the root node.
func (t *Tree[T]) Root() *Node[T] { return t.nodes[t.order[0]] }

// Size returns the number of nodes in the tree.
func (t *Tree[T]) Size() int { return len(t.nodes) }

// Contains reports whether label is present in the tree.
func (t *Tree[T]) Contains(label string) bool {
	_, ok := t.nodes[label]

	return ok
}

// Node returns the owned node for label, or (nil, false) if absent.
func (t *Tree[T]) Node(label string) (*Node[T], bool) {
	n, ok := t.nodes[label]

	return n, ok
}

// Labels returns a copy of all node labels in creation order.
func (t *Tree[T]) Labels() []string {
	out := make([]string, len(t.order))
	copy(out, t.order)

	return out
}

// Parent returns the parent label of the given node. The root (and
// any absent label) has no parent: ok is false.
func (t *Tree[T]) Parent(label string) (string, bool) {
	p, ok := t.parent[label]

	return p, ok
}

// AppendNode creates a new node under parentLabel. No-op if label is
// already present anywhere in the tree, or if parentLabel is absent —
// the tree only ever grows, and never gains a second route to a node.
func (t *Tree[T]) AppendNode(parentLabel, label string, data T) {
	if _, exists := t.nodes[label]; exists {
		return
	}
	p, ok := t.nodes[parentLabel]
	if !ok {
		return
	}
	t.nodes[label] = newNode(label, data)
	t.order = append(t.order, label)
	t.parent[label] = parentLabel
	p.Connect(label)
}

// Path returns the label sequence from the root to target, inclusive,
// or nil if target is absent. Both methods find the same (unique)
// path; they differ only in traversal strategy.
func (t *Tree[T]) Path(target string, method SearchMethod) []string {
	if _, ok := t.nodes[target]; !ok {
		return nil
	}
	if method == BreadthFirst {
		return t.breadthFirstPath(target)
	}

	return t.depthFirstPath(target)
}

// depthFirstPath runs a pre-order walk with an explicit stack; the
// stack of open frames is the root→current path, so reaching the
// target means the answer is already at hand.
func (t *Tree[T]) depthFirstPath(target string) []string {
	type frame struct {
		label string
		next  int // index of the next child edge to explore
	}
	stack := []frame{{label: t.order[0]}}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]

		// First touch of this node: check for the target.
		if top.next == 0 && top.label == target {
			path := make([]string, len(stack))
			for i, f := range stack {
				path[i] = f.label
			}

			return path
		}

		edges := t.nodes[top.label].edges
		if top.next < len(edges) {
			child := edges[top.next]
			top.next++
			stack = append(stack, frame{label: child})
		} else {
			stack = stack[:len(stack)-1] // subtree exhausted, backtrack
		}
	}

	return nil
}

// breadthFirstPath runs a level-order walk recording (node, parent)
// pairs, then backtracks from the target to the root and reverses.
func (t *Tree[T]) breadthFirstPath(target string) []string {
	root := t.order[0]
	prev := map[string]string{root: ""}
	queue := []string{root}

	var found bool
	for qi := 0; qi < len(queue) && !found; qi++ {
		current := queue[qi]
		if current == target {
			found = true
			break
		}
		for _, child := range t.nodes[current].edges {
			prev[child] = current
			queue = append(queue, child)
		}
	}
	if !found {
		return nil
	}

	// Backtrack target→root, then reverse in place.
	var path []string
	for at := target; at != ""; at = prev[at] {
		path = append(path, at)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// IsAncestorOf reports whether candidate lies on the root→label path
// strictly above label. A node is not its own ancestor, and absent
// labels answer false.
// Complexity: O(depth) via parent links.
func (t *Tree[T]) IsAncestorOf(candidate, label string) bool {
	if _, ok := t.nodes[candidate]; !ok {
		return false
	}
	for p, ok := t.parent[label]; ok; p, ok = t.parent[p] {
		if p == candidate {
			return true
		}
	}

	return false
}

// IsDescendantOf reports whether candidate lies strictly below label,
// i.e. label is an ancestor of candidate.
func (t *Tree[T]) IsDescendantOf(candidate, label string) bool {
	return t.IsAncestorOf(label, candidate)
}

// String renders a node-count header, the root label, and the whole
// hierarchy in pre-order, one "<label> : {...}" line per node.
func (t *Tree[T]) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# nodes: %d\n", t.Size())
	fmt.Fprintf(&sb, "Root: %s\n", t.order[0])
	t.describe(&sb, t.order[0])

	return sb.String()
}

func (t *Tree[T]) describe(sb *strings.Builder, label string) {
	sb.WriteString(t.nodes[label].String())
	sb.WriteByte('\n')
	for _, child := range t.nodes[label].edges {
		t.describe(sb, child)
	}
}
