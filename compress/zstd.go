package compress

// ZstdCompressor compresses bitmap payloads with Zstandard, the best-ratio
// option for archived golden snapshots.
//
// Two implementations exist, selected at build time:
//   - cgo builds use valyala/gozstd (the reference C library)
//   - pure-Go builds use klauspost/compress/zstd with pooled coders
//
// Both produce standard zstd frames and can decode each other's output.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
