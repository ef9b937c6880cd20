// Package dbf implements the .dbf binary codec: header, field-descriptor
// array, and fixed-width record encoding/decoding, coupled to a
// companion DBT memo heap for memo-indirected columns.
package dbf

import (
	"fmt"
	"io"
	"time"

	"github.com/solidxbase/dbase/bytebuf"
	"github.com/solidxbase/dbase/dbt"
	"github.com/solidxbase/dbase/errs"
	"github.com/solidxbase/dbase/internal/options"
	"github.com/solidxbase/dbase/schema"
	"github.com/solidxbase/dbase/textenc"
)

// EOFMarker terminates the record area of a DBF file.
const EOFMarker = 0x1A

// WriterOption configures a Writer.
type WriterOption = options.Option[*Writer]

// WithTextCodec overrides the codec used to encode type-C values. The
// default is textenc.UTF8.
func WithTextCodec(codec textenc.Codec) WriterOption {
	return options.NoError[*Writer](func(w *Writer) {
		w.textCodec = codec
	})
}

// WithNow overrides the timestamp stamped into the header's last-update
// fields. The default is time.Now at the moment Write is called.
func WithNow(now func() time.Time) WriterOption {
	return options.NoError[*Writer](func(w *Writer) {
		w.now = now
	})
}

// Writer serialises a locked Schema into a DBF byte buffer, accumulating
// a parallel DBT buffer for any memo-indirected columns. A Writer
// instance carries DBT state across a single Write call; reusing a
// Writer for another Write resets that state automatically.
type Writer struct {
	textCodec textenc.Codec
	now       func() time.Time
	dbtWriter *dbt.Writer
}

// NewWriter creates a Writer.
func NewWriter(opts ...WriterOption) *Writer {
	w := &Writer{
		textCodec: textenc.UTF8,
		now:       time.Now,
		dbtWriter: dbt.NewWriter(),
	}

	_ = options.Apply(w, opts...)

	return w
}

// Write serialises s to dst. If s has any memo-indirected column, the
// accumulated DBT buffer is retrievable afterwards via WriteDBT.
func (w *Writer) Write(dst io.Writer, s *schema.Schema) error {
	w.dbtWriter.Reset()

	columns := s.Columns()
	header := NewHeader(len(columns), uint32(s.RecordCount()), s.RecordWidth(), s.HasMemoColumn(), w.now())

	buf := bytebuf.New(int(header.HeaderLength) + s.RecordCount()*s.RecordWidth() + 1)
	buf.Write(header.Bytes())

	for _, col := range columns {
		buf.Write(fieldDescriptor{Name: col.Name(), Type: col.Type(), Width: col.Width()}.Bytes())
	}
	buf.WriteByte(DescriptorTerminator)

	if err := w.writeRows(buf, columns, s.LiveRows(), 0x20); err != nil {
		return err
	}
	if err := w.writeRows(buf, columns, s.DeletedRows(), 0x2A); err != nil {
		return err
	}

	buf.WriteByte(EOFMarker)

	_, err := buf.WriteTo(dst)

	return err
}

func (w *Writer) writeRows(buf *bytebuf.Buffer, columns []schema.Column, rows []schema.Row, marker byte) error {
	for _, row := range rows {
		if len(row) != len(columns) {
			return errs.NewRowAddError("", fmt.Errorf("%w: got %d, want %d", errs.ErrRowArityMismatch, len(row), len(columns)))
		}

		buf.WriteByte(marker)

		for i, col := range columns {
			dst := buf.Extend(col.Width())
			codec := codecFor(col.Type())

			if err := codec.encode(dst, row[i], w.textCodec, w.dbtWriter); err != nil {
				return errs.NewRowAddError(col.Name(), err)
			}
		}
	}

	return nil
}

// WriteDBT writes the accumulated DBT buffer to dst. It returns false
// without writing if no memo payload was ever written during the last
// Write call.
func (w *Writer) WriteDBT(dst io.Writer) (bool, error) {
	data := w.dbtWriter.Bytes()
	if data == nil {
		return false, nil
	}

	if _, err := dst.Write(data); err != nil {
		return false, err
	}

	return true, nil
}
