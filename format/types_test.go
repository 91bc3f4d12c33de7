package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompressionTypeString(t *testing.T) {
	assert.Equal(t, "None", CompressionNone.String())
	assert.Equal(t, "Zstd", CompressionZstd.String())
	assert.Equal(t, "S2", CompressionS2.String())
	assert.Equal(t, "LZ4", CompressionLZ4.String())
	assert.Equal(t, "Unknown", CompressionType(0xff).String())
}

func TestParseCompression(t *testing.T) {
	tests := []struct {
		name string
		want CompressionType
	}{
		{"none", CompressionNone},
		{"", CompressionNone},
		{"zstd", CompressionZstd},
		{"s2", CompressionS2},
		{"lz4", CompressionLZ4},
	}
	for _, tt := range tests {
		got, err := ParseCompression(tt.name)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}

	_, err := ParseCompression("brotli")
	assert.Error(t, err)
}
