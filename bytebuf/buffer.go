// Package bytebuf provides a growable byte buffer with positioned
// little-endian reads/writes and the fixed-width ASCII field helpers the
// DBF/DBT codecs build record and block payloads out of.
//
// It is not safe for concurrent use; callers serialise externally if
// that is needed, matching the single-writer, single-pass model the
// codecs are built around.
package bytebuf

import (
	"encoding/binary"
	"io"
	"math"
)

// DefaultSize is the initial capacity used by New when no better estimate
// is available.
const DefaultSize = 4096

// Buffer is a growable []byte with positioned little-endian accessors.
// All multi-byte integers written through Buffer are little-endian, matching
// the on-disk layout of every xBase-family field this library encodes.
type Buffer struct {
	B []byte
}

// New creates a Buffer with the given initial capacity.
func New(capacity int) *Buffer {
	if capacity <= 0 {
		capacity = DefaultSize
	}

	return &Buffer{B: make([]byte, 0, capacity)}
}

// Bytes returns the underlying byte slice.
func (b *Buffer) Bytes() []byte {
	return b.B
}

// Len returns the number of bytes currently held.
func (b *Buffer) Len() int {
	return len(b.B)
}

// Reset empties the buffer but keeps the allocated memory for reuse.
func (b *Buffer) Reset() {
	b.B = b.B[:0]
}

// Grow ensures the buffer can accept at least n more bytes without a
// further reallocation.
func (b *Buffer) Grow(n int) {
	if cap(b.B)-len(b.B) >= n {
		return
	}

	growBy := DefaultSize
	if cap(b.B) > 4*DefaultSize {
		growBy = cap(b.B) / 4
	}
	if growBy < n {
		growBy = n
	}

	newBuf := make([]byte, len(b.B), len(b.B)+growBy)
	copy(newBuf, b.B)
	b.B = newBuf
}

// Extend grows the length of the buffer by n zero bytes and returns the
// slice of the newly-added region so the caller can fill it in place.
func (b *Buffer) Extend(n int) []byte {
	b.Grow(n)
	start := len(b.B)
	b.B = b.B[:start+n]
	clear(b.B[start:])

	return b.B[start:]
}

// Write implements io.Writer, appending data and growing as needed.
func (b *Buffer) Write(data []byte) (int, error) {
	b.Grow(len(data))
	b.B = append(b.B, data...)

	return len(data), nil
}

// WriteByte appends a single byte.
func (b *Buffer) WriteByte(c byte) error {
	b.Grow(1)
	b.B = append(b.B, c)

	return nil
}

// WriteTo writes the buffer's contents to w.
func (b *Buffer) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(b.B)
	return int64(n), err
}

// PutUint16LE writes v as two little-endian bytes at the end of the buffer.
func (b *Buffer) PutUint16LE(v uint16) {
	dst := b.Extend(2)
	binary.LittleEndian.PutUint16(dst, v)
}

// PutUint32LE writes v as four little-endian bytes at the end of the buffer.
func (b *Buffer) PutUint32LE(v uint32) {
	dst := b.Extend(4)
	binary.LittleEndian.PutUint32(dst, v)
}

// PutInt32LE writes v as four little-endian bytes at the end of the buffer.
func (b *Buffer) PutInt32LE(v int32) {
	b.PutUint32LE(uint32(v))
}

// PutFloat64LE writes v as eight little-endian IEEE-754 bytes.
func (b *Buffer) PutFloat64LE(v float64) {
	dst := b.Extend(8)
	binary.LittleEndian.PutUint64(dst, math.Float64bits(v))
}

// PutASCIIPadRight writes s into dst in place, truncated or zero-padded to
// exactly len(dst) bytes, used for the DBF field-descriptor name and zero-padded fixed fields.
func PutASCIIPadRight(dst []byte, s string) {
	n := copy(dst, s)
	clear(dst[n:])
}

// PutASCIIJustifyRight right-justifies s within dst, left-padding with pad.
// Used for N/F numeric fields (pad=' ') and M/G/B block indices (pad='0').
func PutASCIIJustifyRight(dst []byte, s string, pad byte) {
	if len(s) >= len(dst) {
		copy(dst, s[len(s)-len(dst):])
		return
	}

	padLen := len(dst) - len(s)
	for i := range dst[:padLen] {
		dst[i] = pad
	}
	copy(dst[padLen:], s)
}

// ReadUint16LE reads two little-endian bytes from the start of b.
func ReadUint16LE(b []byte) uint16 {
	return binary.LittleEndian.Uint16(b)
}

// ReadUint32LE reads four little-endian bytes from the start of b.
func ReadUint32LE(b []byte) uint32 {
	return binary.LittleEndian.Uint32(b)
}

// ReadFloat64LE reads eight little-endian bytes from the start of b as an
// IEEE-754 double.
func ReadFloat64LE(b []byte) float64 {
	return math.Float64frombits(binary.LittleEndian.Uint64(b))
}
