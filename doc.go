// Package descry provides lightweight, type-safe descriptors for graph
// vertices and edges that work uniformly over index-addressed storage
// (slices) and key-addressed storage (ordered key-value containers).
//
// 🚀 What is descry?
//
//	A small, generics-first library that brings together:
//		• Descriptors: comparable value handles for vertices & edges,
//		  storing a plain offset or an opaque cursor - never the container
//		• Views: lazy, restartable sequences that synthesize descriptors
//		  on demand over half-open storage ranges
//		• Storage adapters: slices, sorted pair lists, B-tree maps, and
//		  edge-payload shape adapters (scalar / pair / tuple)
//		• DOT export: dump any descriptor graph to Graphviz notation
//
// ✨ Why choose descry?
//
//   - One call site per operation - the storage kind is selected at
//     compile time by constraints, never branched on at runtime
//   - Handles are pure values - copy them, compare them, key maps with
//     them; payload access always re-pairs a handle with its container
//   - Pure Go - no cgo, a deliberately small dependency surface
//
// Everything is organized under three subpackages plus this root:
//
//	store/      — positions, capability constraints & container adapters
//	descriptor/ — Vertex and Edge handle types, payload access, hashing
//	view/       — VertexView and EdgeView lazy sequences
//	(root)      — Dump: Graphviz DOT rendering of a descriptor graph
//
// Quick ASCII example:
//
//	    A───B
//	    │   │
//	    C───D
//
//	four vertices in any container, four edges in adjacency rows;
//	descriptors address them without owning either container.
//
// Dive into the package docs for the capability table and the edge
// payload shape rules.
package descry
