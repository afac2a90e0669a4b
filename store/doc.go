// Package store defines the storage-access classification layer of descry:
// position types, capability constraints, and thin adapters that expose
// external containers to descriptors and views.
//
// What:
//
//   - Positions: Index (offset into index-addressed storage) and opaque
//     cursors (PairPos, TreePos) into key-addressed storage. A position is
//     a pure value; advancing it never touches descriptor state.
//   - Constraints: Position[P] (comparable, forward movement) and
//     Keyed[P, ID] (a position that carries the vertex identity). These
//     are the compile-time predicates that classify a storage backend:
//     a type satisfying neither cannot instantiate a descriptor at all.
//   - Capability interfaces: Reader, InnerReader, Ranger, Sized,
//     VertexStore, EdgeStore. Descriptors and views accept these, so one
//     call site serves every backend without a runtime branch on kind.
//   - Adapters: Slice (index-addressed), Pairs and TreeMap
//     (key-addressed, cursor positions), and the edge-payload shape
//     adapters Targets, Entries, Triples.
//
// Why:
//
//	Descriptors must store either a plain offset or an opaque cursor,
//	selected once per storage kind. Centralizing that choice here keeps
//	backend detection out of every descriptor and view; downstream code
//	is written once against the capability interfaces.
//
// Edge payload shapes:
//
//	The target identity of an edge is read from its stored payload. The
//	shape of that payload is bound at compile time by picking the adapter:
//
//	  Targets[ID]       scalar payload - the stored value IS the target
//	                    (also the fallback when a payload has no shape)
//	  Entries[K, V]     pair payload - first component is the target
//	  Triples[A, B, C]  tuple payload - component 0 is the target
//	  Pairs / TreeMap   key-addressed edge rows - the key is the target
//
// Errors:
//
//	Operations here are total within their preconditions and expose no
//	error channel. Dereferencing an end-of-range or foreign position is
//	caller error and panics, matching slice out-of-range discipline.
//	Find reports absence via its second return value.
//
// Complexity:
//
//	All adapter operations are O(1) except TreeMap cursor movement and
//	lookups, which are O(log n) as provided by the backing B-tree.
package store
