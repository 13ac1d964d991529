// Self-describing snapshot envelope.
//
// Snapshot() deliberately returns bare bits: the parameters that produced
// them travel out-of-band. Export bundles everything into one artifact —
// a fixed-size JSON header (version, algorithm, k, seed, bit size) padded
// with spaces and terminated with a newline, followed by the
// zstd-compressed bit vector. Import reverses it.
package bloom

import (
	"bytes"
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/klauspost/compress/zstd"
)

// HeaderSize is the fixed size of the export header in bytes.
const HeaderSize = 80

// exportVersion identifies the envelope layout.
const exportVersion = 1

// Shared encoder/decoder — both are documented as safe for concurrent use.
// Allocated once at init because zstd encoder/decoder construction is
// expensive (internal state tables, dictionaries). SpeedFastest: filter
// bitsets are high-entropy once moderately filled, so a stronger level
// buys almost nothing.
var (
	zstdEncoder, _ = zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedFastest))
	zstdDecoder, _ = zstd.NewReader(nil)
)

// exportHeader is the envelope metadata stored ahead of the compressed bits.
type exportHeader struct {
	Version   int    `json:"_v"`    // Envelope layout version
	Algorithm int    `json:"_alg"`  // Hash algorithm (1=xxHash3, 2=FNV1a, 3=Blake2b)
	K         int    `json:"_k"`    // Hash positions per item
	Seed      uint32 `json:"_seed"` // Hash seed
	Size      int    `json:"_m"`    // Bit-vector capacity in bits
}

// encode serialises the header to exactly HeaderSize bytes with padding.
func (h *exportHeader) encode() ([]byte, error) {
	data, err := json.Marshal(h)
	if err != nil {
		return nil, err
	}

	// Pad with spaces to HeaderSize-1, then add newline
	if len(data) > HeaderSize-1 {
		return nil, ErrCorruptSnapshot // header too large
	}

	buf := make([]byte, HeaderSize)
	copy(buf, data)
	for i := len(data); i < HeaderSize-1; i++ {
		buf[i] = ' '
	}
	buf[HeaderSize-1] = '\n'

	return buf, nil
}

// Export returns a self-describing snapshot: the filter's parameters in a
// fixed-size header followed by its compressed bit vector. Import
// reconstructs an identical filter from the result without out-of-band
// state.
func (f *Filter) Export() ([]byte, error) {
	hdr := exportHeader{
		Version:   exportVersion,
		Algorithm: f.alg,
		K:         f.k,
		Seed:      f.seed,
		Size:      f.size,
	}
	head, err := hdr.encode()
	if err != nil {
		return nil, err
	}
	return append(head, zstdEncoder.EncodeAll(f.vector.buf, nil)...), nil
}

// Import reconstructs a filter from an Export buffer. Returns
// ErrCorruptSnapshot for an unreadable or unsupported header,
// ErrDecompress for a damaged payload, and ErrSnapshotSize when the
// decompressed bits do not match the declared size. Invalid header
// parameters surface as the corresponding construction errors.
func Import(data []byte) (*Filter, error) {
	if len(data) < HeaderSize {
		return nil, ErrCorruptSnapshot
	}

	var hdr exportHeader
	if err := json.Unmarshal(bytes.TrimSpace(data[:HeaderSize]), &hdr); err != nil {
		return nil, ErrCorruptSnapshot
	}
	if hdr.Version != exportVersion {
		return nil, ErrCorruptSnapshot
	}

	bits, err := zstdDecoder.DecodeAll(data[HeaderSize:], nil)
	if err != nil {
		return nil, fmt.Errorf("%w: zstd: %w", ErrDecompress, err)
	}
	if len(bits) != bytesFor(hdr.Size) {
		return nil, ErrSnapshotSize
	}

	return New(hdr.Size, hdr.K, Config{
		HashAlgorithm: hdr.Algorithm,
		Seed:          hdr.Seed,
		Snapshot:      bits,
	})
}
