package endian

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngineRoundTrip(t *testing.T) {
	engines := []struct {
		name   string
		engine EndianEngine
	}{
		{"little", GetLittleEndianEngine()},
		{"big", GetBigEndianEngine()},
	}
	for _, tt := range engines {
		t.Run(tt.name, func(t *testing.T) {
			buf := tt.engine.AppendUint64(nil, 0xdeadbeefcafef00d)
			buf = tt.engine.AppendUint32(buf, 78498)
			require.Len(t, buf, 12)

			assert.Equal(t, uint64(0xdeadbeefcafef00d), tt.engine.Uint64(buf[:8]))
			assert.Equal(t, uint32(78498), tt.engine.Uint32(buf[8:]))
		})
	}
}

func TestCheckEndianness(t *testing.T) {
	order := CheckEndianness()
	assert.Contains(t, []binary.ByteOrder{binary.LittleEndian, binary.BigEndian}, order)
	assert.Equal(t, order == binary.LittleEndian, IsNativeLittleEndian())
	assert.Equal(t, order == binary.BigEndian, IsNativeBigEndian())
}
