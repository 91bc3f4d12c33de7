// Package pool provides pooled byte buffers for the snapshot encode path.
//
// Only encoding scratch space is pooled. Sieve flag buffers are never pooled:
// each sieve run allocates and discards its own buffer.
package pool

import "sync"

const (
	// SnapshotBufferDefaultSize is the initial capacity of pooled buffers,
	// sized to hold the packed bitmap for limits around 1M (~62KiB) plus the
	// header without growing.
	SnapshotBufferDefaultSize = 1024 * 64

	// snapshotBufferMaxThreshold caps the capacity of buffers returned to
	// the pool; oversized buffers from unusually large limits are dropped so
	// the pool does not pin their memory.
	snapshotBufferMaxThreshold = 1024 * 1024
)

// ByteBuffer is a reusable byte slice wrapper handed out by GetBuffer.
type ByteBuffer struct {
	// B is the underlying byte slice.
	B []byte
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Reset empties the buffer while retaining its allocation.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// Len returns the length of the buffer.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Cap returns the capacity of the buffer.
func (bb *ByteBuffer) Cap() int {
	return cap(bb.B)
}

// MustWrite appends data to the buffer, growing it if necessary.
func (bb *ByteBuffer) MustWrite(data []byte) {
	bb.B = append(bb.B, data...)
}

var bufferPool = sync.Pool{
	New: func() any {
		return &ByteBuffer{B: make([]byte, 0, SnapshotBufferDefaultSize)}
	},
}

// GetBuffer returns an empty pooled buffer.
func GetBuffer() *ByteBuffer {
	bb := bufferPool.Get().(*ByteBuffer)
	bb.Reset()

	return bb
}

// PutBuffer returns a buffer to the pool. Buffers that grew past the
// threshold are dropped.
func PutBuffer(bb *ByteBuffer) {
	if bb == nil || cap(bb.B) > snapshotBufferMaxThreshold {
		return
	}
	bufferPool.Put(bb)
}
