package core

import "strings"

// Digraph is an owning collection of nodes keyed by unique label,
// forming an arbitrary directed graph. Cycles, self-loops, and
// disconnected components are all valid; parallel edges are not
// (Connect is idempotent per pair).
//
// Nodes iterate in creation order, which fixes the rendering of
// String and the traversal order of forest.Build.
type Digraph[T any] struct {
	nodes map[string]*Node[T] // label → node
	order []string            // labels in creation order
}

// NewDigraph creates an empty directed graph.
func NewDigraph[T any]() *Digraph[T] {
	return &Digraph[T]{nodes: make(map[string]*Node[T])}
}

// CreateNode inserts a new node unless label already exists.
// The call is idempotent per label: a second call is silently
// ignored, including a call carrying a different payload.
func (g *Digraph[T]) CreateNode(label string, data T) {
	if _, exists := g.nodes[label]; exists {
		return
	}
	g.nodes[label] = newNode(label, data)
	g.order = append(g.order, label)
}

// RemoveNode deletes the node and every edge pointing at it from all
// remaining nodes, so no dangling reference survives. No-op if label
// is absent.
func (g *Digraph[T]) RemoveNode(label string) {
	if _, exists := g.nodes[label]; !exists {
		return
	}
	delete(g.nodes, label)
	kept := g.order[:0]
	for _, l := range g.order {
		if l != label {
			kept = append(kept, l)
		}
	}
	g.order = kept
	for _, l := range g.order {
		g.nodes[l].Disconnect(label)
	}
}

// ConnectNode adds a directed edge head→tail. No-op if either label
// is absent; self-edges are allowed; connecting an existing pair
// again changes nothing.
func (g *Digraph[T]) ConnectNode(head, tail string) {
	h, ok := g.nodes[head]
	if !ok {
		return
	}
	if _, ok = g.nodes[tail]; !ok {
		return
	}
	h.Connect(tail)
}

// DisconnectNode removes the directed edge head→tail; no-op if either
// label or the edge itself is absent.
func (g *Digraph[T]) DisconnectNode(head, tail string) {
	if h, ok := g.nodes[head]; ok {
		h.Disconnect(tail)
	}
}

// IsConnected reports whether the edge head→tail exists.
// False if either label is absent.
func (g *Digraph[T]) IsConnected(head, tail string) bool {
	h, ok := g.nodes[head]
	if !ok {
		return false
	}

	return h.IsConnected(tail)
}

// Contains reports whether a node with the given label exists.
func (g *Digraph[T]) Contains(label string) bool {
	_, ok := g.nodes[label]

	return ok
}

// Node returns the owned node for label, or (nil, false) if absent.
// The returned node is live: edge mutations through it are visible to
// the graph.
func (g *Digraph[T]) Node(label string) (*Node[T], bool) {
	n, ok := g.nodes[label]

	return n, ok
}

// Labels returns a copy of all node labels in creation order.
func (g *Digraph[T]) Labels() []string {
	out := make([]string, len(g.order))
	copy(out, g.order)

	return out
}

// Size returns the number of nodes.
func (g *Digraph[T]) Size() int { return len(g.nodes) }

// EdgeCount returns the total number of directed edges (the sum of
// all out-degrees). Complexity: O(V).
func (g *Digraph[T]) EdgeCount() int {
	var count int
	for _, l := range g.order {
		count += g.nodes[l].OutDegree()
	}

	return count
}

// String renders one "<label> : {<edge1>, <edge2>, ...}" line per
// node, in creation order.
func (g *Digraph[T]) String() string {
	var sb strings.Builder
	for _, l := range g.order {
		sb.WriteString(g.nodes[l].String())
		sb.WriteByte('\n')
	}

	return sb.String()
}
