// Package forest builds a depth-first forest over a core.Digraph and
// classifies every edge of the graph against that forest.
//
// What:
//
//   - Build(g, opts...): repeatedly roots a new spanning tree at an
//     unvisited node and explores depth-first until every node of the
//     digraph is visited, covering disconnected components. Each edge
//     encountered is recorded exactly once as one of:
//   - tree arc    — first discovery of the target; the edge joins the
//     current spanning tree
//   - back arc    — target is an ancestor of the source in the current
//     tree (closes a cycle)
//   - loop arc    — self-edge (source == target)
//   - forward arc — target is an already-closed descendant of the
//     source in the current tree
//   - cross arc   — target lies outside the source's lineage
//     (a sibling subtree or an earlier tree)
//
// Why:
//   - Arc classification is the groundwork for strongly connected
//     components (package scc), cycle reasoning, and traversal
//     diagnostics.
//
// Key Types & Constants:
//
//   - VisitState: Unvisited, Open, Closed (visitation markers)
//   - Arc: an ordered (From, To) label pair
//   - Forest: ordered spanning Trees plus the five arc sets and the
//     discovery Order
//   - Option / Options: functional options (root order, visit hook)
//
// Traversal rules:
//
//   - The traversal is iterative (explicit work stack), so graph depth
//     is bounded by memory, not by goroutine stack limits.
//   - Input is a snapshot of (label, payload, ordered edge labels)
//     taken at call time; later digraph mutation is never observed.
//   - Roots default to the last remaining unvisited node in creation
//     order (WithRootOrder(FirstCreated) flips the convention); edge
//     exploration always follows recorded edge order. One run is fully
//     deterministic.
//
// Invariants:
//
//   - Every node appears in exactly one tree; every edge lands in
//     exactly one arc set, exactly once.
//   - len(TreeArcs) == Size() − len(Trees).
//
// Complexity:
//
//   - Time O(V + E·d) where d is the current tree depth (ancestor and
//     descendant checks walk parent links), Memory O(V + E) for the
//     snapshot and result.
//
// Errors:
//
//   - ErrDigraphNil    digraph pointer is nil
//   - ErrDanglingEdge  snapshot edge references an unknown label
//     (an upstream invariant break, surfaced rather than skipped)
//   - hook errors      propagated from OnVisit
package forest
