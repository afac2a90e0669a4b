// Package view provides lazy, restartable sequences of descriptors over
// half-open storage ranges.
//
// What:
//
//   - VertexView[ID, P]: a [begin, end) range of vertex positions. All()
//     yields one freshly synthesized descriptor per position; nothing is
//     materialized or cached.
//   - EdgeView[EP, ID, VP]: the edge analogue, carrying one fixed source
//     vertex that every yielded edge descriptor shares.
//   - Two construction modes: an explicit position range (Range,
//     EdgeRange) and a whole container (Vertices, Edges) where the
//     adapter's capability set picks the representation and the caller
//     never names the storage kind.
//   - Len and EdgeLen: O(1) length, offered only for index-addressed
//     views. Key-addressed views have no cheap length and deliberately
//     offer none.
//
// Iteration:
//
//	A view's iterator state is exactly the current position; termination
//	compares positions against end and nothing else. Every range over
//	All() restarts from begin, so a view can be walked any number of
//	times and two independent walks yield identical sequences. A view
//	over an empty range yields nothing and its Begin() equals its End().
//
// Nothing here validates ranges: an inverted [begin, end) is caller
// error, the same as an out-of-bounds slice expression.
//
// Complexity:
//
//	Construction O(1); each iteration step costs one position advance
//	(O(1) for offsets, O(log n) for tree cursors).
package view
