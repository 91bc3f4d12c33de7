package snapshot

import (
	"fmt"

	"github.com/arloliu/primecount/compress"
	"github.com/arloliu/primecount/endian"
	"github.com/arloliu/primecount/format"
	"github.com/arloliu/primecount/internal/bitmap"
	"github.com/arloliu/primecount/internal/hash"
	"github.com/arloliu/primecount/internal/options"
	"github.com/arloliu/primecount/internal/pool"
	"github.com/arloliu/primecount/sieve"
)

type encodeConfig struct {
	compression format.CompressionType
	engine      endian.EndianEngine
	bigEndian   bool
}

// Option configures Encode.
type Option = options.Option[*encodeConfig]

// WithCompression selects the codec for the bitmap payload.
// The default is format.CompressionNone.
func WithCompression(compressionType format.CompressionType) Option {
	return options.New(func(cfg *encodeConfig) error {
		if _, err := compress.GetCodec(compressionType); err != nil {
			return err
		}
		cfg.compression = compressionType

		return nil
	})
}

// WithLittleEndian encodes header integers little-endian (the default).
func WithLittleEndian() Option {
	return options.NoError(func(cfg *encodeConfig) {
		cfg.engine = endian.GetLittleEndianEngine()
		cfg.bigEndian = false
	})
}

// WithBigEndian encodes header integers big-endian, for tooling that expects
// network byte order.
func WithBigEndian() Option {
	return options.NoError(func(cfg *encodeConfig) {
		cfg.engine = endian.GetBigEndianEngine()
		cfg.bigEndian = true
	})
}

// Encode serializes a completed sieve into the snapshot format documented in
// the package comment. The returned slice is newly allocated and owned by
// the caller.
func Encode(s *sieve.Sieve, opts ...Option) ([]byte, error) {
	cfg := &encodeConfig{
		compression: format.CompressionNone,
		engine:      endian.GetLittleEndianEngine(),
	}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	codec, err := compress.GetCodec(cfg.compression)
	if err != nil {
		return nil, err
	}

	bits := bitmap.FromFlags(s.Flags())
	raw := bits.Bytes()
	checksum := hash.Checksum(raw)

	payload, err := codec.Compress(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to compress bitmap payload: %w", err)
	}

	buf := pool.GetBuffer()
	defer pool.PutBuffer(buf)

	var flags byte
	if cfg.bigEndian {
		flags |= flagBigEndian
	}

	buf.MustWrite(magic)
	buf.MustWrite([]byte{Version, byte(cfg.compression), flags, 0})
	buf.B = cfg.engine.AppendUint64(buf.B, uint64(s.Limit()))
	buf.B = cfg.engine.AppendUint64(buf.B, uint64(s.Count()))
	buf.B = cfg.engine.AppendUint32(buf.B, uint32(len(raw)))
	buf.B = cfg.engine.AppendUint64(buf.B, checksum)
	buf.MustWrite(payload)

	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())

	return out, nil
}
