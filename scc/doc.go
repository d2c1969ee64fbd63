// Package scc groups the nodes of a digraph into strongly connected
// components, driven entirely by a classified depth-first forest
// (package forest).
//
// What:
//
//   - Components(f): partitions the forest's node set into maximal
//     groups with mutual reachability. The forest's five arc sets
//     together hold every edge of the original digraph, so no further
//     graph access is needed.
//   - FromDigraph(g, opts...): convenience that builds the forest and
//     extracts components in one call.
//
// How:
//
//	A lowlink pass replays the forest exactly as it was built — trees
//	in rooting order, children in attach order — assigning discovery
//	indices and folding the non-tree arcs (back, loop, forward, cross)
//	into each node's lowlink at completion time, against a stack of
//	nodes whose component is still undecided. A node whose lowlink
//	equals its own index is the first-discovered node of its
//	component and pops the stack down to itself.
//
//	Folding non-tree arcs at completion rather than interleaved with
//	child exploration is equivalent: a previously visited target is
//	still undecided at completion if and only if it was undecided when
//	the edge was originally examined, because components are only
//	sealed at their first-discovered node, which is an ancestor of
//	every member.
//
// Guarantees:
//
//   - The returned components partition the node set (disjoint,
//     covering); each is internally mutually reachable over original
//     digraph edges.
//   - A digraph with no cycles yields one singleton per node; a
//     self-loop makes its node a non-trivial component of one.
//   - Components are emitted in completion order (reverse
//     topological order of the condensation).
//
// Complexity:
//
//   - Time O(V + E), Memory O(V + E).
//
// Errors:
//
//   - ErrForestNil  forest pointer is nil
package scc
