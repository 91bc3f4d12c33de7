// Package snapshot serializes completed sieves into compact, checksummed
// binary blobs.
//
// A snapshot records the limit, the prime count, and the packed candidate
// bitmap (one bit per odd number). Snapshots written on one machine can be
// verified on another, which makes them usable as golden files for checking
// that the benchmark is deterministic across runs, architectures, and
// compiler versions.
//
// # Layout
//
// All multi-byte integers use the engine recorded in the header flags
// (little-endian unless WithBigEndian was used):
//
//	offset  size  field
//	0       4     magic "PSNP"
//	4       1     format version (currently 1)
//	5       1     compression type (format.CompressionType)
//	6       1     flags (bit 0: big-endian)
//	7       1     reserved, zero
//	8       8     limit
//	16      8     prime count
//	24      4     raw bitmap length in bytes
//	28      8     xxHash64 of the raw (uncompressed) bitmap
//	36      -     compressed bitmap payload
//
// The checksum covers the bitmap before compression, so corruption is caught
// even when the codec's own framing validates.
package snapshot

import (
	"bytes"
	"fmt"

	"github.com/arloliu/primecount/compress"
	"github.com/arloliu/primecount/endian"
	"github.com/arloliu/primecount/errs"
	"github.com/arloliu/primecount/format"
	"github.com/arloliu/primecount/internal/bitmap"
	"github.com/arloliu/primecount/internal/hash"
	"github.com/arloliu/primecount/sieve"
)

const (
	// Version is the current snapshot format version.
	Version = 1

	headerSize = 36

	flagBigEndian = 0x01
)

var magic = []byte("PSNP")

// Snapshot is a decoded sieve snapshot.
type Snapshot struct {
	limit int64
	count int64
	bits  *bitmap.Bitmap
}

// Limit returns the inclusive upper bound the sieve was run for.
func (s *Snapshot) Limit() int64 {
	return s.limit
}

// Count returns the prime count recorded in the snapshot header.
// Use Verify to cross-check it against the bitmap contents.
func (s *Snapshot) Count() int64 {
	return s.count
}

// IsPrime reports whether the snapshot marks n as prime.
func (s *Snapshot) IsPrime(n int64) bool {
	if n < 2 || n > s.limit {
		return false
	}
	if n == 2 {
		return true
	}
	if n%2 == 0 {
		return false
	}

	return s.bits.IsSet((n - 1) / 2)
}

// Primes reconstructs the prime list from the bitmap, ascending,
// with the implicit prime 2 first.
func (s *Snapshot) Primes() []int64 {
	if s.limit < 2 {
		return nil
	}

	primes := make([]int64, 0, s.count)
	primes = append(primes, 2)
	for i := int64(1); i < s.bits.Size(); i++ {
		if s.bits.IsSet(i) {
			primes = append(primes, i*2+1)
		}
	}

	return primes
}

// Verify cross-checks the snapshot three ways: the bitmap popcount against
// the header count, index 0 (the number 1) being unmarked, and a fresh sieve
// run against the header count. It returns errs.ErrCountMismatch on any
// disagreement.
//
// The fresh run costs O(limit), so Verify is meant for golden-file checks,
// not hot paths.
func (s *Snapshot) Verify() error {
	var fromBits int64
	if s.limit >= 2 {
		if s.bits.IsSet(0) {
			return fmt.Errorf("%w: bitmap marks 1 as prime", errs.ErrCountMismatch)
		}
		fromBits = s.bits.OnesCount() + 1 // the bitmap never holds 2
	}
	if fromBits != s.count {
		return fmt.Errorf("%w: header says %d, bitmap holds %d", errs.ErrCountMismatch, s.count, fromBits)
	}

	fresh, err := sieve.Count(s.limit)
	if err != nil {
		return err
	}
	if fresh != s.count {
		return fmt.Errorf("%w: header says %d, fresh sieve counted %d", errs.ErrCountMismatch, s.count, fresh)
	}

	return nil
}

// Decode parses and validates snapshot data produced by Encode.
//
// It returns errs.ErrInvalidSnapshot for structural problems (bad magic,
// truncation, length mismatches), errs.ErrUnsupportedVersion and
// errs.ErrUnsupportedCompression for headers this library cannot read, and
// errs.ErrChecksumMismatch when the bitmap fails its integrity check.
func Decode(data []byte) (*Snapshot, error) {
	if len(data) < headerSize {
		return nil, fmt.Errorf("%w: %d bytes is shorter than the %d byte header", errs.ErrInvalidSnapshot, len(data), headerSize)
	}
	if !bytes.Equal(data[0:4], magic) {
		return nil, fmt.Errorf("%w: bad magic", errs.ErrInvalidSnapshot)
	}
	if data[4] != Version {
		return nil, fmt.Errorf("%w: version %d", errs.ErrUnsupportedVersion, data[4])
	}

	codec, err := compress.GetCodec(format.CompressionType(data[5]))
	if err != nil {
		return nil, err
	}

	engine := endian.GetLittleEndianEngine()
	if data[6]&flagBigEndian != 0 {
		engine = endian.GetBigEndianEngine()
	}

	limit := int64(engine.Uint64(data[8:16]))
	count := int64(engine.Uint64(data[16:24]))
	bitmapLen := int64(engine.Uint32(data[24:28]))
	checksum := engine.Uint64(data[28:36])

	if limit < 0 {
		return nil, fmt.Errorf("%w: negative limit %d", errs.ErrInvalidSnapshot, limit)
	}
	size := (limit + 1) / 2
	if bitmapLen != (size+7)/8 {
		return nil, fmt.Errorf("%w: bitmap length %d does not match limit %d", errs.ErrInvalidSnapshot, bitmapLen, limit)
	}

	raw, err := codec.Decompress(data[headerSize:])
	if err != nil {
		return nil, fmt.Errorf("failed to decompress bitmap payload: %w", err)
	}
	if int64(len(raw)) != bitmapLen {
		return nil, fmt.Errorf("%w: decompressed to %d bytes, header says %d", errs.ErrInvalidSnapshot, len(raw), bitmapLen)
	}
	if hash.Checksum(raw) != checksum {
		return nil, fmt.Errorf("%w: bitmap checksum 0x%016x, header says 0x%016x", errs.ErrChecksumMismatch, hash.Checksum(raw), checksum)
	}

	bits, err := bitmap.FromBytes(raw, size)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrInvalidSnapshot, err)
	}

	return &Snapshot{limit: limit, count: count, bits: bits}, nil
}
