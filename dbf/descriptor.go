package dbf

import (
	"fmt"

	"github.com/solidxbase/dbase/coltype"
	"github.com/solidxbase/dbase/errs"
)

// DescriptorSize is the fixed byte length of one field descriptor.
const DescriptorSize = 32

// DescriptorTerminator is the single byte emitted after the last field
// descriptor, before the first record.
const DescriptorTerminator = 0x0D

// fieldDescriptor is the 32-byte on-disk description of one column.
type fieldDescriptor struct {
	Name  string
	Type  coltype.Type
	Width int
}

// Bytes serialises d into a 32-byte descriptor slot.
func (d fieldDescriptor) Bytes() []byte {
	b := make([]byte, DescriptorSize)

	copy(b[0:10], d.Name) // at most 10 name bytes; byte 10 and the rest stay zero, matching the on-disk zero-pad convention

	b[11] = byte(d.Type)
	// bytes 12-15 reserved, zero
	putUint16LE(b[16:18], uint16(d.Width))
	// byte 17 decimal count is zero for every type this library writes
	// bytes 18-31 reserved/work-area/MDX, zero

	return b
}

// parseDescriptor decodes one 32-byte descriptor slot. The slot's type
// tag must be one of the twelve recognised ColumnType values.
func parseDescriptor(slot []byte) (fieldDescriptor, error) {
	if len(slot) < DescriptorSize {
		return fieldDescriptor{}, fmt.Errorf("%w: descriptor needs %d bytes, got %d", errs.ErrFileTooShort, DescriptorSize, len(slot))
	}

	nameEnd := 0
	for nameEnd < 11 && slot[nameEnd] != 0 {
		nameEnd++
	}
	name := string(slot[:nameEnd])

	typ := coltype.Type(slot[11])
	if !typ.Valid() {
		return fieldDescriptor{}, fmt.Errorf("%w: %q", errs.ErrUnknownType, string(typ))
	}

	width := int(readUint16LE(slot[16:18]))

	return fieldDescriptor{Name: name, Type: typ, Width: width}, nil
}
