package dbf

import (
	"fmt"

	"github.com/solidxbase/dbase/errs"
	"github.com/solidxbase/dbase/internal/options"
	"github.com/solidxbase/dbase/schema"
	"github.com/solidxbase/dbase/textenc"
)

// ReaderOption configures a Reader.
type ReaderOption = options.Option[*Reader]

// WithReaderTextCodec overrides the codec used to decode type-C values.
// The default is textenc.UTF8.
func WithReaderTextCodec(codec textenc.Codec) ReaderOption {
	return options.NoError[*Reader](func(r *Reader) {
		r.textCodec = codec
	})
}

// WithMemoSource supplies the companion DBT reader used to resolve
// memo-indirected (M/G/B) column values. Memo columns decode to an empty
// string if none is supplied.
func WithMemoSource(source memoResolver) ReaderOption {
	return options.NoError[*Reader](func(r *Reader) {
		r.memo = source
	})
}

// Reader decodes a DBF byte buffer into a locked Schema.
type Reader struct {
	textCodec textenc.Codec
	memo      memoResolver
}

// NewReader creates a Reader.
func NewReader(opts ...ReaderOption) *Reader {
	r := &Reader{textCodec: textenc.UTF8}

	_ = options.Apply(r, opts...)

	return r
}

// Read decodes data into a new, locked Schema.
func (r *Reader) Read(data []byte) (*schema.Schema, error) {
	var header Header
	if err := header.Parse(data); err != nil {
		return nil, errs.NewReadError("header", err)
	}

	descriptors, recordStart, err := r.readDescriptors(data)
	if err != nil {
		return nil, err
	}

	recordSize := 1
	for _, d := range descriptors {
		recordSize += d.Width
	}
	if uint16(recordSize) != header.RecordLength {
		return nil, errs.NewReadError("header", fmt.Errorf("%w: header says %d, columns sum to %d", errs.ErrRecordLengthMismatch, header.RecordLength, recordSize))
	}

	if len(data) == 0 || data[len(data)-1] != EOFMarker {
		return nil, errs.NewReadError("trailer", errs.ErrMissingEOF)
	}

	recordArea := data[recordStart : len(data)-1]
	if len(recordArea)%recordSize != 0 {
		return nil, errs.NewReadError("trailer", fmt.Errorf("%w: record area is not a multiple of %d bytes", errs.ErrRecordLengthMismatch, recordSize))
	}

	s := schema.New()
	for _, d := range descriptors {
		if err := s.AddColumn(d.Name, d.Type, d.Width); err != nil {
			return nil, errs.NewReadError("field descriptor", err)
		}
	}
	s.Lock()

	numRecords := int(header.RecordCount)
	available := len(recordArea) / recordSize
	if numRecords > available {
		numRecords = available
	}

	for i := 0; i < numRecords; i++ {
		record := recordArea[i*recordSize : (i+1)*recordSize]

		row, deleted, err := r.decodeRecord(record, descriptors)
		if err != nil {
			return nil, errs.NewReadError(fmt.Sprintf("record %d", i), err)
		}

		if deleted {
			_ = s.AddRowDeleted(row)
		} else {
			_ = s.AddRow(row)
		}
	}

	return s, nil
}

func (r *Reader) readDescriptors(data []byte) ([]fieldDescriptor, int, error) {
	cursor := HeaderSize

	var descriptors []fieldDescriptor
	for {
		if cursor >= len(data) {
			return nil, 0, errs.NewReadError("field descriptors", errs.ErrFileTooShort)
		}
		if data[cursor] == DescriptorTerminator {
			return descriptors, cursor + 1, nil
		}

		if cursor+DescriptorSize > len(data) {
			return nil, 0, errs.NewReadError("field descriptors", errs.ErrFileTooShort)
		}

		d, err := parseDescriptor(data[cursor : cursor+DescriptorSize])
		if err != nil {
			return nil, 0, errs.NewReadError("field descriptors", err)
		}

		descriptors = append(descriptors, d)
		cursor += DescriptorSize
	}
}

func (r *Reader) decodeRecord(record []byte, descriptors []fieldDescriptor) (schema.Row, bool, error) {
	var deleted bool
	switch record[0] {
	case 0x20:
		deleted = false
	case 0x2A:
		deleted = true
	default:
		return nil, false, fmt.Errorf("%w: %#x", errs.ErrInvalidRecordMarker, record[0])
	}

	row := make(schema.Row, len(descriptors))
	cursor := 1
	for i, d := range descriptors {
		field := record[cursor : cursor+d.Width]
		codec := codecFor(d.Type)

		value, err := codec.decode(field, r.textCodec, r.memo)
		if err != nil {
			return nil, false, fmt.Errorf("column %q: %w", d.Name, err)
		}

		row[i] = value
		cursor += d.Width
	}

	return row, deleted, nil
}
