// Package network is an in-memory playground for labeled directed
// graphs — from core containers to depth-first forests and strongly
// connected components.
//
// What is network?
//
//	A small, deterministic, zero-dependency library that brings together:
//		• Core containers: labeled nodes with generic payloads, owning
//		  Digraph and Tree structures, silent no-op mutation semantics
//		• Tree search: depth-first and breadth-first root→target paths,
//		  ancestor/descendant queries via parent links
//		• Depth-first forests: full-graph traversal that spans every
//		  component and classifies every edge as a tree, back, loop,
//		  forward, or cross arc
//		• SCC extraction: Tarjan-style grouping driven by the
//		  classified forest
//
// Why choose network?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – creation-order iteration everywhere, reproducible
//     traversals and renderings
//   - Pure Go – no cgo, no hidden deps
//   - Extensible – functional options and hooks (WithRootOrder, WithOnVisit)
//
// Everything is organized under three subpackages:
//
//	core/   — Node, Digraph, and Tree containers with path search
//	forest/ — depth-first forest construction and arc classification
//	scc/    — strongly connected components from a classified forest
//
// Quick ASCII example:
//
//	    A ⇄ M ⇄ D      O → N → J ⇄ L
//
//	two mutual cycles; forest/ classifies the closing edges as back
//	arcs and scc/ groups {A, M, D} and {J, L}.
//
//	go get github.com/cmookj/network
package network
