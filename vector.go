// Packed bit vector, the storage primitive underneath Filter.
//
// Bits are numbered LSB-first: bit i lives in byte i/8 at position i%8,
// with position 0 the least-significant bit. The backing buffer is sized
// at construction and never resized.
package bloom

// popcount maps every byte value to its set-bit count. Built once at
// process start from the recurrence count(n) = (n&1) + count(n>>1);
// read-only afterward, so it needs no synchronization.
var popcount = func() (t [256]uint8) {
	for n := 1; n < 256; n++ {
		t[n] = uint8(n&1) + t[n>>1]
	}
	return t
}()

// BitVector is a fixed-size packed array of bits. The bit length is set at
// construction and never changes.
//
// Positions passed to Get, Set and SetRange must be within [0, Len());
// out-of-range positions are a programming error and panic on indexing.
type BitVector struct {
	bits int
	buf  []byte
}

// bytesFor returns the buffer length needed for n bits: ceil(n/8).
func bytesFor(bits int) int {
	return (bits + 7) / 8
}

// NewBitVector returns a zero-filled vector of the given bit length.
// The bit length must be positive; anything else panics in make.
func NewBitVector(bits int) *BitVector {
	return &BitVector{bits: bits, buf: make([]byte, bytesFor(bits))}
}

// WrapBitVector adopts buf as the backing store for a vector of the given
// bit length. The buffer is NOT copied: mutations through the vector are
// visible to anyone else holding buf, so callers handing over a buffer
// should not retain it. Use Snapshot to obtain an independent copy.
//
// Returns ErrInvalidSize if bits is not positive, or ErrSnapshotSize if
// len(buf) is not exactly ceil(bits/8).
func WrapBitVector(buf []byte, bits int) (*BitVector, error) {
	if bits <= 0 {
		return nil, ErrInvalidSize
	}
	if len(buf) != bytesFor(bits) {
		return nil, ErrSnapshotSize
	}
	return &BitVector{bits: bits, buf: buf}, nil
}

// Len returns the number of addressable bits.
func (v *BitVector) Len() int {
	return v.bits
}

// Get reports whether the bit at pos is set.
func (v *BitVector) Get(pos int) bool {
	return v.buf[pos/8]&(1<<(pos%8)) != 0
}

// Set sets (value true) or clears (value false) the bit at pos.
func (v *BitVector) Set(pos int, value bool) {
	mask := byte(1) << (pos % 8)
	if value {
		v.buf[pos/8] |= mask
	} else {
		v.buf[pos/8] &^= mask
	}
}

// SetRange sets or clears every bit in the half-open range [from, to).
// Changes are accumulated in a register and written back only when the
// loop crosses into a new byte, rather than read-modify-writing the
// buffer once per bit.
func (v *BitVector) SetRange(from, to int, value bool) {
	if from >= to {
		return
	}
	idx := from / 8
	cur := v.buf[idx]
	for pos := from; pos < to; pos++ {
		if i := pos / 8; i != idx {
			v.buf[idx] = cur
			idx = i
			cur = v.buf[idx]
		}
		mask := byte(1) << (pos % 8)
		if value {
			cur |= mask
		} else {
			cur &^= mask
		}
	}
	v.buf[idx] = cur
}

// TotalSetBits returns the number of set bits across the whole vector.
func (v *BitVector) TotalSetBits() int {
	total := 0
	for _, b := range v.buf {
		total += int(popcount[b])
	}
	return total
}

// Equal reports structural equality: same bit length and identical byte
// contents. A vector is never equal to nil.
func (v *BitVector) Equal(other *BitVector) bool {
	if other == nil || v.bits != other.bits {
		return false
	}
	for i, b := range v.buf {
		if b != other.buf[i] {
			return false
		}
	}
	return true
}

// Snapshot returns an independent copy of the backing buffer. Mutating
// the copy never affects the vector.
func (v *BitVector) Snapshot() []byte {
	out := make([]byte, len(v.buf))
	copy(out, v.buf)
	return out
}

// reset clears all bits in place.
func (v *BitVector) reset() {
	clear(v.buf)
}
