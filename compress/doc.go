// Package compress provides compression codecs for sieve snapshot payloads.
//
// A snapshot payload is the packed candidate bitmap of a completed sieve:
// one bit per odd number up to the limit. For large limits the bitmap is
// dense but highly structured (long composite runs past sqrt(limit)), so
// general-purpose compressors shrink it well.
//
// Supported algorithms:
//   - None: no compression (fastest, largest)
//   - Zstd: best ratio; pure-Go klauspost encoder, or gozstd under cgo
//   - S2: balanced ratio and speed
//   - LZ4: fastest decompression, moderate ratio
//
// Codecs are selected through format.CompressionType via GetCodec.
// All codecs are stateless or internally pooled and safe for concurrent use.
package compress
