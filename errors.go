// Package bloom implements a probabilistic set-membership filter backed by
// a compact bit vector. A filter answers "is this item possibly a member?"
// with no false negatives and a tunable false-positive rate, using constant
// space per configured capacity rather than storing the items themselves.
//
// Items are mapped to k bit positions by splitting a single 64-bit seeded
// hash into two 32-bit halves and combining them (double hashing), so one
// hash invocation serves all k positions. Three hash algorithms are
// available, selectable via Config.HashAlgorithm.
//
// Filters are not safe for concurrent use. Each filter exclusively owns its
// bit vector; callers that share a filter across goroutines must provide
// their own synchronization.
package bloom

import "errors"

// Sentinel errors for programmatic handling. All are construction-time or
// input-validation failures — no operation fails after a filter has been
// successfully constructed. Callers can use errors.Is.
var (
	ErrInvalidSize      = errors.New("size in bits must be a positive multiple of 8")
	ErrInvalidK         = errors.New("number of hash functions must be at least 1")
	ErrSnapshotSize     = errors.New("snapshot length does not match declared bit size")
	ErrCorruptSnapshot  = errors.New("corrupt snapshot envelope")
	ErrDecompress       = errors.New("decompression failed")
	ErrUnknownAlgorithm = errors.New("unknown hash algorithm")
)
