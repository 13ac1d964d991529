// Export envelope tests.
//
// Export is the self-describing alternative to Snapshot: parameters ride
// in a fixed-size JSON header ahead of the zstd-compressed bits, so
// Import needs no out-of-band state. These tests cover the round trip,
// parameter preservation and rejection of damaged envelopes, with a
// distinct error for each failure mode so callers can tell a torn file
// from a parameter mismatch.
package bloom

import (
	"bytes"
	"errors"
	"strconv"
	"testing"
)

// TestExportImportRoundTrip verifies that an imported filter preserves
// the original's parameters and answers every query identically.
func TestExportImportRoundTrip(t *testing.T) {
	f, err := New(2048, 5, Config{Seed: 0xCAFE, HashAlgorithm: AlgBlake2b})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	for i := 0; i < 100; i++ {
		f.Add("doc-" + strconv.Itoa(i))
	}

	data, err := f.Export()
	if err != nil {
		t.Fatalf("Export: %v", err)
	}

	g, err := Import(data)
	if err != nil {
		t.Fatalf("Import: %v", err)
	}

	if g.Size() != 2048 || g.K() != 5 || g.Seed() != 0xCAFE || g.alg != AlgBlake2b {
		t.Errorf("imported parameters = (%d, %d, %#x, %d), want (2048, 5, 0xcafe, %d)",
			g.Size(), g.K(), g.Seed(), g.alg, AlgBlake2b)
	}
	for i := 0; i < 100; i++ {
		if !g.Contains("doc-" + strconv.Itoa(i)) {
			t.Errorf("doc-%d missing after import", i)
		}
	}
	if !f.vector.Equal(g.vector) {
		t.Error("imported bit vector differs from the original")
	}
}

// TestExportHeaderLayout pins the envelope framing: a HeaderSize-byte
// header ending in a newline, with JSON up front and space padding. The
// layout is a persistence format — tooling that peeks at exported files
// depends on it staying put.
func TestExportHeaderLayout(t *testing.T) {
	f, _ := New(64, 4, Config{})
	data, err := f.Export()
	if err != nil {
		t.Fatalf("Export: %v", err)
	}

	if len(data) <= HeaderSize {
		t.Fatalf("export length %d, want more than HeaderSize %d", len(data), HeaderSize)
	}
	if data[HeaderSize-1] != '\n' {
		t.Error("header does not end with a newline")
	}
	if data[0] != '{' {
		t.Error("header does not start with JSON")
	}
	if !bytes.Contains(data[:HeaderSize], []byte(`"_m":64`)) {
		t.Error("header does not carry the bit size")
	}
}

// TestImportTruncated verifies that anything shorter than a full header
// is rejected as corrupt rather than mis-parsed.
func TestImportTruncated(t *testing.T) {
	if _, err := Import(nil); !errors.Is(err, ErrCorruptSnapshot) {
		t.Errorf("Import(nil) = %v, want ErrCorruptSnapshot", err)
	}
	if _, err := Import(make([]byte, HeaderSize-1)); !errors.Is(err, ErrCorruptSnapshot) {
		t.Errorf("Import(short) = %v, want ErrCorruptSnapshot", err)
	}
}

// TestImportMangledHeader verifies that header damage — broken JSON or an
// unsupported version — is reported as corruption, not as a size or
// decompression problem.
func TestImportMangledHeader(t *testing.T) {
	f, _ := New(64, 4, Config{})
	data, _ := f.Export()

	broken := bytes.Clone(data)
	broken[0] = 'X'
	if _, err := Import(broken); !errors.Is(err, ErrCorruptSnapshot) {
		t.Errorf("broken JSON: got %v, want ErrCorruptSnapshot", err)
	}

	wrongVersion := bytes.Clone(data)
	// {"_v":1 — flip the version digit.
	wrongVersion[6] = '9'
	if _, err := Import(wrongVersion); !errors.Is(err, ErrCorruptSnapshot) {
		t.Errorf("wrong version: got %v, want ErrCorruptSnapshot", err)
	}
}

// TestImportMangledPayload verifies that damage past the header surfaces
// as ErrDecompress — the header parsed fine, the bits did not.
func TestImportMangledPayload(t *testing.T) {
	f, _ := New(64, 4, Config{})
	data, _ := f.Export()

	broken := bytes.Clone(data)
	for i := HeaderSize; i < len(broken); i++ {
		broken[i] ^= 0xA5
	}
	if _, err := Import(broken); !errors.Is(err, ErrDecompress) {
		t.Errorf("mangled payload: got %v, want ErrDecompress", err)
	}
}

// TestImportSizeMismatch verifies that a payload that decompresses to the
// wrong length for the declared bit size is rejected with ErrSnapshotSize.
// This catches a header from one filter stapled to another's bits.
func TestImportSizeMismatch(t *testing.T) {
	small, _ := New(64, 4, Config{})
	big, _ := New(128, 4, Config{})

	smallData, _ := small.Export()
	bigData, _ := big.Export()

	// Small filter's header, big filter's payload.
	frank := append(bytes.Clone(smallData[:HeaderSize]), bigData[HeaderSize:]...)
	if _, err := Import(frank); !errors.Is(err, ErrSnapshotSize) {
		t.Errorf("mismatched payload: got %v, want ErrSnapshotSize", err)
	}
}
