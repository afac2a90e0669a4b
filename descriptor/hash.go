package descriptor

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/cespare/xxhash/v2"

	"github.com/katalvlaran/descry/store"
)

// Identity hashing. Descriptors hash by the identity value they extract,
// never by cursor internals or element addresses, so two descriptors for
// the same logical vertex or edge hash identically even when they were
// reconstructed independently or the container relocated its elements.

// Sum64 returns a stable 64-bit xxhash of an identity value. Strings and
// fixed-size numerics hash their value bytes directly; any other
// comparable identity falls back to its printed form.
// Complexity: O(len(id))
func Sum64[ID comparable](id ID) uint64 {
	var buf [8]byte
	switch v := any(id).(type) {
	case string:
		return xxhash.Sum64String(v)
	case int:
		binary.LittleEndian.PutUint64(buf[:], uint64(v))
	case int8:
		binary.LittleEndian.PutUint64(buf[:], uint64(v))
	case int16:
		binary.LittleEndian.PutUint64(buf[:], uint64(v))
	case int32:
		binary.LittleEndian.PutUint64(buf[:], uint64(v))
	case int64:
		binary.LittleEndian.PutUint64(buf[:], uint64(v))
	case uint:
		binary.LittleEndian.PutUint64(buf[:], uint64(v))
	case uint8:
		binary.LittleEndian.PutUint64(buf[:], uint64(v))
	case uint16:
		binary.LittleEndian.PutUint64(buf[:], uint64(v))
	case uint32:
		binary.LittleEndian.PutUint64(buf[:], uint64(v))
	case uint64:
		binary.LittleEndian.PutUint64(buf[:], v)
	case float32:
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(float64(v)))
	case float64:
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
	default:
		return xxhash.Sum64(fmt.Append(nil, id))
	}

	return xxhash.Sum64(buf[:])
}

// HashVertex hashes a vertex descriptor by its extracted identity. Must
// not be called on an end-of-range descriptor.
func HashVertex[ID comparable, P store.Keyed[P, ID]](v Vertex[ID, P]) uint64 {
	return Sum64(v.VertexID())
}

// HashEdge hashes an edge descriptor by its source identity and the
// target identity extracted from the caller-supplied edge container.
// Equal edge descriptors hash equally regardless of how their positions
// were obtained.
func HashEdge[TID comparable, EP store.Position[EP], ID comparable, VP store.Keyed[VP, ID]](e Edge[EP, ID, VP], s store.EdgeStore[EP, TID]) uint64 {
	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[:8], HashVertex(e.Source()))
	binary.LittleEndian.PutUint64(buf[8:], Sum64(Target(e, s)))

	return xxhash.Sum64(buf[:])
}
