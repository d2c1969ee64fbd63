package core

import "strings"

// Node is a labeled vertex with an optional payload and an ordered
// list of outgoing edge targets.
//
// Edges are target labels, not pointers: a Node never owns the nodes
// it references, and resolving a label is the owning container's job.
// All mutators are silent no-ops on input that would break the edge
// list (duplicate target, absent target).
type Node[T any] struct {
	label string
	data  T
	edges []string // outgoing targets, insertion order, duplicate-free
}

// newNode allocates a node owned by a Digraph or Tree.
func newNode[T any](label string, data T) *Node[T] {
	return &Node[T]{label: label, data: data}
}

// Label returns the node's identifier.
func (n *Node[T]) Label() string { return n.label }

// Data returns the node's payload (the zero value if none was given).
func (n *Node[T]) Data() T { return n.data }

// OutDegree returns the number of outgoing edges.
func (n *Node[T]) OutDegree() int { return len(n.edges) }

// Edges returns a copy of the outgoing targets in insertion order.
// Mutating the returned slice does not affect the node.
func (n *Node[T]) Edges() []string {
	out := make([]string, len(n.edges))
	copy(out, n.edges)

	return out
}

// IsConnected reports whether the node has an outgoing edge to label.
// Complexity: O(out-degree).
func (n *Node[T]) IsConnected(label string) bool {
	for _, e := range n.edges {
		if e == label {
			return true
		}
	}

	return false
}

// Connect appends an outgoing edge to label unless one already
// exists. Connecting twice to the same target is a no-op, so the edge
// list stays duplicate-free. Self-edges (label == n.Label()) are
// permitted.
func (n *Node[T]) Connect(label string) {
	if n.IsConnected(label) {
		return
	}
	n.edges = append(n.edges, label)
}

// Disconnect removes the outgoing edge to label; no-op if absent.
// The relative order of the remaining edges is preserved.
func (n *Node[T]) Disconnect(label string) {
	kept := n.edges[:0]
	for _, e := range n.edges {
		if e != label {
			kept = append(kept, e)
		}
	}
	n.edges = kept
}

// String renders the node as "<label> : {<edge1>, <edge2>, ...}".
func (n *Node[T]) String() string {
	var sb strings.Builder
	sb.WriteString(n.label)
	sb.WriteString(" : {")
	for i, e := range n.edges {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(e)
	}
	sb.WriteByte('}')

	return sb.String()
}
