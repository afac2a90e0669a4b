package store

// Capability interfaces consumed by descriptors and views. They are
// ordinary interfaces (not constraints) so concrete adapters flow
// through type inference at call sites; the representation choice made
// in position.go never resurfaces as a runtime branch.

// Reader fetches the full element stored at a position: the slot value
// for index-addressed storage, the key-value entry for key-addressed
// storage. The returned value's lifetime is the container's, never the
// descriptor's.
type Reader[P comparable, T any] interface {
	At(p P) T
}

// InnerReader fetches the element payload with its identity stripped:
// the whole element for index-addressed storage (the element IS the
// payload), the value component for key-addressed storage.
type InnerReader[P comparable, V any] interface {
	InnerAt(p P) V
}

// Ranger exposes the half-open position range [Begin, End) covering the
// whole container. Views use it to construct themselves from a container
// without the caller naming the storage kind.
type Ranger[P comparable] interface {
	Begin() P
	End() P
}

// Sized reports the element count in O(1). Only index-addressed
// adapters provide it; key-addressed adapters deliberately do not, so
// an O(n) walk can never masquerade as a cheap length query.
type Sized interface {
	Len() int
}

// VertexStore is the capability set a vertex view needs: the container's
// position range plus the identity stored at any of its positions.
type VertexStore[P comparable, ID comparable] interface {
	Ranger[P]

	// KeyAt returns the vertex identity of the element at p.
	KeyAt(p P) ID
}

// EdgeStore resolves the target vertex identity of the edge payload
// stored at a position. Each adapter binds one payload shape (scalar,
// pair, tuple, key-addressed row) at compile time; see the package
// documentation for the shape table.
type EdgeStore[P comparable, ID comparable] interface {
	TargetAt(p P) ID
}
