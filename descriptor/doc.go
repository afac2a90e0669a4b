// Package descriptor defines the vertex and edge handle types of descry:
// cheap, comparable values that identify one element of graph storage
// without owning or referencing the container that stores it.
//
// What:
//
//   - Vertex[ID, P]: a handle wrapping a single storage position.
//     P is store.Index for index-addressed backends and an opaque cursor
//     for key-addressed backends; the choice is made once per backend by
//     the constraints in package store and never branches at runtime.
//   - Edge[EP, ID, VP]: a handle wrapping a position in edge storage
//     plus the Vertex descriptor of the edge's source, fixed at
//     construction. Advancing an Edge walks to the next edge of the same
//     source.
//   - Payload access: Underlying, Inner and Target are free functions
//     that take the container explicitly at call time. A descriptor's
//     validity is therefore bounded by the caller keeping the container
//     alive and structurally unmodified - the arena-and-index rule.
//   - Hashing: Sum64, HashVertex and HashEdge hash the extracted
//     identity value, never cursor internals, so independently
//     reconstructed descriptors for the same logical element hash
//     identically.
//
// Why:
//
//	Algorithms want to pass vertices and edges around, use them as map
//	and set keys, and fetch payloads late. Handles that embed container
//	references drag lifetime and aliasing hazards along; handles that
//	are pure positions do not.
//
// Equality:
//
//	Descriptors are comparable; == is structural over the stored
//	position (and, for edges, the source). Comparing descriptors built
//	over different containers is not detected and is caller error.
//
// Complexity:
//
//	Every operation is O(1) plus whatever the backing container charges
//	for a lookup.
package descriptor
