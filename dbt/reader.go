// Package dbt implements the companion memo-block heap for a .dbf file:
// a 512-byte header block followed by any number of 512-byte data
// blocks, referenced from .dbf records by 1-based block index.
package dbt

import (
	"fmt"
	"strconv"

	"github.com/solidxbase/dbase/errs"
)

// Reader resolves block indices against a fully materialised DBT
// buffer.
type Reader struct {
	buf []byte
}

// NewReader validates buf's basic shape (length ≥ 1024, a multiple of
// 512) and returns a Reader over it.
func NewReader(buf []byte) (*Reader, error) {
	if len(buf) < 1024 {
		return nil, fmt.Errorf("%w: got %d bytes", errs.ErrDBTTooShort, len(buf))
	}
	if len(buf)%BlockSize != 0 {
		return nil, fmt.Errorf("%w: length %d is not a multiple of %d", errs.ErrDBTNotBlockAligned, len(buf), BlockSize)
	}

	return &Reader{buf: buf}, nil
}

// Resolve implements the dbf package's memo-resolver contract: it reads
// the memo at index via the indexed read path.
func (r *Reader) Resolve(index uint32) (string, error) {
	return r.ReadMemo(index)
}

// ReadMemo decodes the memo referenced by index. It preserves the
// reference implementation's documented imperfection: the EOF marker is
// searched for from the start of the buffer, not from the start of the
// requested block, so a memo in an earlier block can mask a later one.
func (r *Reader) ReadMemo(index uint32) (string, error) {
	start := BlockSize * int(index)
	if start >= len(r.buf) {
		return "", fmt.Errorf("%w: index %d", errs.ErrDBTIndexOutOfRange, index)
	}

	eof := -1
	for i := 0; i < len(r.buf); i++ {
		if r.buf[i] == 0x1A {
			eof = i
			break
		}
	}
	if eof < 0 {
		return "", fmt.Errorf("%w: index %d", errs.ErrUnterminatedMemo, index)
	}

	if eof-start >= BlockSize {
		if eof+1 >= len(r.buf) || r.buf[eof+1] != 0x1A {
			return "", fmt.Errorf("%w: index %d", errs.ErrUnterminatedMemo, index)
		}
	}

	if eof < start {
		return "", nil
	}

	return trimTrailingNUL(r.buf[start:eof]), nil
}

// trimTrailingNUL strips the zero-padding a short payload leaves between
// its content and the block's terminal 0x1A byte.
func trimTrailingNUL(b []byte) string {
	end := len(b)
	for end > 0 && b[end-1] == 0 {
		end--
	}

	return string(b[:end])
}

// EnumerateMerged returns every block's decoded content keyed by block
// index, merging spanning payloads into a single entry at the span's
// starting index. Key 0 holds the header's next-free index as a decimal
// string.
func (r *Reader) EnumerateMerged() (map[uint32]string, error) {
	h, err := parseHeader(r.buf[:BlockSize])
	if err != nil {
		return nil, err
	}

	out := map[uint32]string{0: strconv.FormatUint(uint64(h.NextFreeBlock), 10)}

	numBlocks := len(r.buf) / BlockSize
	blockIndex := uint32(1)
	for int(blockIndex) < numBlocks {
		start := BlockSize * int(blockIndex)
		tail := r.buf[start:]

		relEOF := -1
		for i, b := range tail {
			if b == 0x1A {
				relEOF = i
				break
			}
		}

		if relEOF < 0 {
			out[blockIndex] = trimTrailingNUL(tail)
			blockIndex++
			continue
		}

		if relEOF >= BlockSize {
			span := uint32((relEOF + BlockSize) / BlockSize)
			out[blockIndex] = trimTrailingNUL(tail[:relEOF])
			blockIndex += span
			continue
		}

		out[blockIndex] = trimTrailingNUL(tail[:relEOF])
		blockIndex++
	}

	return out, nil
}

// EnumerateUnmerged returns a flat list of raw block contents with no
// merging and no EOF handling: element 0 is the header's next-free
// index stringified; each subsequent element is exactly 511 bytes of a
// block. This reproduces the reference implementation's documented
// off-by-one (a true block is 512 bytes).
func (r *Reader) EnumerateUnmerged() ([]string, error) {
	h, err := parseHeader(r.buf[:BlockSize])
	if err != nil {
		return nil, err
	}

	numBlocks := len(r.buf) / BlockSize
	out := make([]string, 0, numBlocks)
	out = append(out, strconv.FormatUint(uint64(h.NextFreeBlock), 10))

	for i := 1; i < numBlocks; i++ {
		start := BlockSize * i
		out = append(out, string(r.buf[start:start+511]))
	}

	return out, nil
}
