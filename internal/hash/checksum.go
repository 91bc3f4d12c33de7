package hash

import "github.com/cespare/xxhash/v2"

// Checksum computes the xxHash64 of the given bytes.
//
// Snapshots store this over the raw (uncompressed) bitmap so corruption is
// detected after decompression, independent of the codec's own framing.
func Checksum(data []byte) uint64 {
	return xxhash.Sum64(data)
}
