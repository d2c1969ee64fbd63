// Package core provides the fundamental labeled containers of the
// network library: Node, Digraph, and Tree.
//
// The containers share one storage scheme:
//
//   - Every node is identified by a label, unique within its owning
//     container.
//   - Edges are stored as ordered target labels inside the source
//     node, resolved through the owner — never as pointers. Removing
//     a node therefore cannot leave a dangling reference.
//   - Iteration follows creation order, so traversals, renderings,
//     and derived computations are reproducible.
//
// Mutation semantics are deliberately forgiving: every operation that
// references an unknown label is a silent no-op, and duplicate
// insertions (a second CreateNode with an existing label, a second
// Connect to the same target) change nothing. Callers that need to
// distinguish "absent" pre-check with Contains or IsConnected; those
// queries answer false for unknown labels and never fail.
//
// Digraph is an arbitrary directed graph: cycles, self-loops, and
// disconnected components are all allowed. Tree is a rooted,
// append-only hierarchy — AppendNode refuses duplicates, so every
// non-root node keeps exactly one parent, and Path/IsAncestorOf
// answer against the unique root→node route.
//
// Concurrency: the containers carry no internal locking. Mutation and
// traversal are single-threaded by contract; callers sharing a
// container across goroutines must serialize access themselves.
// Derived computations (forest.Build, scc.Components) copy their
// input up front and never observe later mutation.
package core
