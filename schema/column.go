package schema

import (
	"strings"

	"github.com/solidxbase/dbase/coltype"
)

// MaxNameLength is the total byte budget for a column name; only the
// first 10 bytes are significant on disk, but the in-memory name may
// run up to this length.
const MaxNameLength = 32

// Column describes one field of a Schema. It is immutable once added.
type Column struct {
	name  string
	typ   coltype.Type
	width int
}

// Name returns the column's name.
func (c Column) Name() string { return c.name }

// Type returns the column's type tag.
func (c Column) Type() coltype.Type { return c.typ }

// Width returns the column's on-disk field width in bytes.
func (c Column) Width() int { return c.width }

func trimmedName(name string) string {
	return strings.TrimSpace(name)
}
