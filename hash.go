// Hash algorithm implementations for item-to-position mapping.
//
// Every algorithm produces a 64-bit value from an item and a 32-bit seed.
// The filter only relies on the contract — deterministic and uniformly
// distributed — not on any particular algorithm. Three are supported,
// selectable via Config.HashAlgorithm.
package bloom

import (
	"encoding/binary"
	"hash/fnv"

	"github.com/zeebo/xxh3"
	"golang.org/x/crypto/blake2b"
)

// Hash algorithm constants.
const (
	AlgXXHash3 = 1 // Default, fastest
	AlgFNV1a   = 2 // No external dependencies
	AlgBlake2b = 3 // Best distribution
)

// hash64 computes a 64-bit hash of item using the given algorithm and seed.
// xxHash3 takes the seed natively; FNV-1a has the seed bytes prepended to
// the input; Blake2b uses the seed as a MAC key. Returns 0 for an unknown
// algorithm — construction validates the algorithm so this is unreachable
// through the public API.
func hash64(item string, alg int, seed uint32) uint64 {
	switch alg {
	case AlgXXHash3:
		return xxh3.HashStringSeed(item, uint64(seed))
	case AlgFNV1a:
		var sb [4]byte
		binary.LittleEndian.PutUint32(sb[:], seed)
		h := fnv.New64a()
		h.Write(sb[:])
		h.Write([]byte(item))
		return h.Sum64()
	case AlgBlake2b:
		var sb [4]byte
		binary.LittleEndian.PutUint32(sb[:], seed)
		h, _ := blake2b.New(8, sb[:]) // 8 bytes = 64 bits
		h.Write([]byte(item))
		return binary.LittleEndian.Uint64(h.Sum(nil))
	default:
		return 0
	}
}

// validAlgorithm reports whether alg names a supported hash algorithm.
func validAlgorithm(alg int) bool {
	return alg == AlgXXHash3 || alg == AlgFNV1a || alg == AlgBlake2b
}
