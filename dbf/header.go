package dbf

import (
	"fmt"
	"time"

	"github.com/solidxbase/dbase/errs"
)

// HeaderSize is the fixed byte length of the DBF header block.
const HeaderSize = 32

// Version byte values.
const (
	VersionNoMemo = 0x03
	VersionMemo   = 0x83
)

// Header is the fixed 32-byte block at the start of a DBF file.
type Header struct {
	Version       byte
	UpdateYear    int // full year, e.g. 2024; stored on disk as year-1900
	UpdateMonth   int
	UpdateDay     int
	RecordCount   uint32
	HeaderLength  uint16 // 32*numColumns + 33
	RecordLength  uint16 // 1 + Σ widths
	IncompleteTxn bool
	Encrypted     bool
}

// NewHeader builds a Header for a schema with the given column count and
// record width, stamped with updatedAt and the memo/no-memo version byte.
func NewHeader(numColumns int, recordCount uint32, recordLength int, hasMemo bool, updatedAt time.Time) Header {
	version := byte(VersionNoMemo)
	if hasMemo {
		version = VersionMemo
	}

	return Header{
		Version:      version,
		UpdateYear:   updatedAt.Year(),
		UpdateMonth:  int(updatedAt.Month()),
		UpdateDay:    updatedAt.Day(),
		RecordCount:  recordCount,
		HeaderLength: uint16(32*numColumns + 33),
		RecordLength: uint16(recordLength),
	}
}

// Bytes serialises h into a 32-byte block.
func (h Header) Bytes() []byte {
	b := make([]byte, HeaderSize)

	b[0] = h.Version
	b[1] = byte(h.UpdateYear - 1900)
	b[2] = byte(h.UpdateMonth)
	b[3] = byte(h.UpdateDay)
	putUint32LE(b[4:8], h.RecordCount)
	putUint16LE(b[8:10], h.HeaderLength)
	putUint16LE(b[10:12], h.RecordLength)
	// bytes 12-13 reserved, zero
	if h.IncompleteTxn {
		b[14] = 1
	}
	if h.Encrypted {
		b[15] = 1
	}
	// bytes 16-31 reserved/production-mdx/language-driver, zero

	return b
}

// Parse decodes a 32-byte header block. It fails if data is shorter than
// HeaderSize or if the incomplete-transaction/encryption flag bytes are
// not 0 or 1.
func (h *Header) Parse(data []byte) error {
	if len(data) < HeaderSize {
		return fmt.Errorf("%w: header needs %d bytes, got %d", errs.ErrFileTooShort, HeaderSize, len(data))
	}

	h.Version = data[0]
	h.UpdateYear = 1900 + int(data[1])
	h.UpdateMonth = int(data[2])
	h.UpdateDay = int(data[3])
	h.RecordCount = readUint32LE(data[4:8])
	h.HeaderLength = readUint16LE(data[8:10])
	h.RecordLength = readUint16LE(data[10:12])

	switch data[14] {
	case 0:
		h.IncompleteTxn = false
	case 1:
		h.IncompleteTxn = true
	default:
		return fmt.Errorf("%w: incomplete-transaction flag byte %#x", errs.ErrInvalidFlag, data[14])
	}

	switch data[15] {
	case 0:
		h.Encrypted = false
	case 1:
		h.Encrypted = true
	default:
		return fmt.Errorf("%w: encryption flag byte %#x", errs.ErrInvalidFlag, data[15])
	}

	return nil
}

// HasMemo reports whether the version byte indicates a companion DBT
// file.
func (h Header) HasMemo() bool {
	return h.Version == VersionMemo
}
