package store

// Slice adapts a plain Go slice as index-addressed vertex or payload
// storage. Positions are Index offsets; the element identity is the
// offset itself. The adapter is a view over the caller's slice and never
// copies or mutates it.
type Slice[T any] []T

// At returns the element stored at p. Panics if p is out of range.
// Complexity: O(1)
func (s Slice[T]) At(p Index) T { return s[p] }

// InnerAt returns the payload at p. For index-addressed storage the
// whole element is the payload, so InnerAt is At.
// Complexity: O(1)
func (s Slice[T]) InnerAt(p Index) T { return s[p] }

// Begin returns the first position of the slice.
func (s Slice[T]) Begin() Index { return 0 }

// End returns the past-the-end position of the slice.
func (s Slice[T]) End() Index { return Index(len(s)) }

// Len reports the element count.
// Complexity: O(1)
func (s Slice[T]) Len() int { return len(s) }

// KeyAt returns the vertex identity of the element at p: its offset.
func (s Slice[T]) KeyAt(p Index) int { return int(p) }
