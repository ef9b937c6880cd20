package dbt

import (
	"github.com/solidxbase/dbase/bytebuf"
)

// Writer accumulates memo payloads into a DBT block heap. Create one with
// NewWriter, which starts block numbering at 1; the header block is
// lazily materialised on the first Allocate call, matching the "no memo,
// no DBT buffer" write path.
type Writer struct {
	buf         *bytebuf.Buffer
	nextIndex   uint32
	initialised bool
}

// NewWriter creates an empty Writer. The returned Writer allocates no
// buffer until the first memo payload is written.
func NewWriter() *Writer {
	return &Writer{nextIndex: 1}
}

// Reset discards any accumulated DBT state, so the Writer can be reused
// for another write pass. Required before reusing a Writer, matching the
// DBT-state-reset rule for a reused DBF Writer.
func (w *Writer) Reset() {
	w.buf = nil
	w.nextIndex = 1
	w.initialised = false
}

func (w *Writer) ensureInitialised() {
	if w.initialised {
		return
	}

	w.buf = bytebuf.New(BlockSize * 4)
	w.buf.Extend(BlockSize)
	w.initialised = true
	w.writeHeader()
}

func (w *Writer) writeHeader() {
	copy(w.buf.B[0:BlockSize], header{NextFreeBlock: w.nextIndex}.bytes())
}

// Allocate writes payload into one or more new blocks and returns the
// block index it was assigned (the index in effect before this call,
// per the pre-assignment semantics the DBF record field must reference).
func (w *Writer) Allocate(payload []byte) (uint32, error) {
	w.ensureInitialised()

	assigned := w.nextIndex

	singleBlock := len(payload) < 510

	var span int
	if singleBlock {
		span = 1
	} else {
		span = (len(payload) + BlockSize - 1) / BlockSize
	}

	region := w.buf.Extend(span * BlockSize)
	copy(region, payload)

	if singleBlock {
		region[BlockSize-1] = 0x1A
	} else {
		region[span*BlockSize-1] = 0x1A
		region[span*BlockSize-2] = 0x1A
	}

	w.nextIndex += uint32(span)
	w.writeHeader()

	return assigned, nil
}

// HasData reports whether any memo payload has been written.
func (w *Writer) HasData() bool {
	return w.initialised
}

// Bytes returns the accumulated DBT buffer, or nil if no memo payload
// was ever written.
func (w *Writer) Bytes() []byte {
	if !w.initialised {
		return nil
	}

	return w.buf.Bytes()
}
