// Core filter type and membership operations.
//
// A Filter owns a BitVector sized in bits and maps each item to k bit
// positions via double hashing: one 64-bit hash is split into 32-bit
// halves (low, high) and position i is (low + i*high) mod size. Deriving
// all k positions from a single hash trades a little distribution quality
// for one hash invocation per operation instead of k.
package bloom

// DefaultSeed is mixed into the hash function when Config.Seed is zero.
const DefaultSeed uint32 = 0x7e53a269

// Config holds filter construction options. The zero value selects
// xxHash3 with DefaultSeed and an empty filter.
type Config struct {
	HashAlgorithm int    // 1=xxHash3, 2=FNV1a, 3=Blake2b
	Seed          uint32 // Mixed into the hash; default DefaultSeed
	Snapshot      []byte // Optional prior state to rehydrate from
}

// Filter is a bloom filter. Size, hash count and seed are fixed at
// construction; all mutation flows through the owned bit vector.
//
// A Filter is not safe for concurrent use.
type Filter struct {
	size   int // bit-vector capacity in bits, multiple of 8
	k      int // hash positions per item
	seed   uint32
	alg    int
	vector *BitVector
}

// New constructs a filter with the given bit capacity and number of hash
// positions per item. sizeInBits must be a positive multiple of 8 and
// numHashes at least 1.
//
// If config.Snapshot is supplied, its length must be exactly sizeInBits/8
// and it is adopted as the backing store without copying — the caller
// must not retain and mutate it. The snapshot format carries no metadata,
// so sizeInBits, numHashes, seed and algorithm must match the filter that
// produced it; Export/Import carry them for you.
func New(sizeInBits, numHashes int, config Config) (*Filter, error) {
	if sizeInBits <= 0 || sizeInBits%8 != 0 {
		return nil, ErrInvalidSize
	}
	if numHashes < 1 {
		return nil, ErrInvalidK
	}

	// Default config values
	if config.HashAlgorithm == 0 {
		config.HashAlgorithm = AlgXXHash3
	}
	if !validAlgorithm(config.HashAlgorithm) {
		return nil, ErrUnknownAlgorithm
	}
	if config.Seed == 0 {
		config.Seed = DefaultSeed
	}

	var vector *BitVector
	if config.Snapshot != nil {
		var err error
		if vector, err = WrapBitVector(config.Snapshot, sizeInBits); err != nil {
			return nil, err
		}
	} else {
		vector = NewBitVector(sizeInBits)
	}

	return &Filter{
		size:   sizeInBits,
		k:      numHashes,
		seed:   config.Seed,
		alg:    config.HashAlgorithm,
		vector: vector,
	}, nil
}

// Size returns the bit-vector capacity in bits.
func (f *Filter) Size() int { return f.size }

// K returns the number of hash positions computed per item.
func (f *Filter) K() int { return f.k }

// Seed returns the seed mixed into the hash function.
func (f *Filter) Seed() uint32 { return f.seed }

// Add inserts an item into the filter.
func (f *Filter) Add(item string) {
	low, high := f.halves(item)
	for i := 0; i < f.k; i++ {
		f.vector.Set(f.position(low, high, i), true)
	}
}

// Contains returns true if the item might be present, false if it is
// definitely absent. There are no false negatives: once Add(x) has been
// called, Contains(x) returns true regardless of what else is added.
func (f *Filter) Contains(item string) bool {
	low, high := f.halves(item)
	for i := 0; i < f.k; i++ {
		if !f.vector.Get(f.position(low, high, i)) {
			return false
		}
	}
	return true
}

// Snapshot returns an independent copy of the filter's bit vector. The
// buffer is bare bits with no header or metadata; pair it with the
// filter's size, hash count and seed to reconstruct via Config.Snapshot,
// or use Export for a self-describing form.
func (f *Filter) Snapshot() []byte {
	return f.vector.Snapshot()
}

// Reset clears all bits, returning the filter to its freshly-constructed
// state.
func (f *Filter) Reset() {
	f.vector.reset()
}

// halves hashes an item and splits the result into its 32-bit halves.
func (f *Filter) halves(item string) (low, high uint32) {
	h := hash64(item, f.alg, f.seed)
	return uint32(h), uint32(h >> 32)
}

// position derives the i-th bit position from the two hash halves.
// Positions are not deduplicated; a collision between two of the k
// formulas just touches the same bit twice.
func (f *Filter) position(low, high uint32, i int) int {
	return int((uint64(low) + uint64(i)*uint64(high)) % uint64(f.size))
}
