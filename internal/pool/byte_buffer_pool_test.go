package pool

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetBufferEmptyWithCapacity(t *testing.T) {
	bb := GetBuffer()
	defer PutBuffer(bb)

	require.NotNil(t, bb)
	assert.Zero(t, bb.Len())
	assert.GreaterOrEqual(t, bb.Cap(), SnapshotBufferDefaultSize)
}

func TestByteBufferWrite(t *testing.T) {
	bb := GetBuffer()
	defer PutBuffer(bb)

	bb.MustWrite([]byte{1, 2, 3})
	bb.MustWrite([]byte{4})

	assert.Equal(t, 4, bb.Len())
	assert.Equal(t, []byte{1, 2, 3, 4}, bb.Bytes())

	bb.Reset()
	assert.Zero(t, bb.Len())
}

func TestPutBufferDropsOversized(t *testing.T) {
	bb := &ByteBuffer{B: make([]byte, 0, snapshotBufferMaxThreshold+1)}
	// Must not panic; the buffer is silently discarded.
	PutBuffer(bb)
	PutBuffer(nil)
}

func TestBufferReuseDoesNotLeakContent(t *testing.T) {
	bb := GetBuffer()
	bb.MustWrite([]byte("stale content"))
	PutBuffer(bb)

	again := GetBuffer()
	defer PutBuffer(again)
	assert.Zero(t, again.Len(), "pooled buffers are handed out empty")
}
