// Package schema implements the in-memory table model: a two-phase
// column/row lifecycle (columns mutable until locked, then rows mutable
// until serialised) with the width and naming invariants a DBF codec
// depends on.
package schema

import (
	"fmt"
	"log"

	"github.com/solidxbase/dbase/coltype"
	"github.com/solidxbase/dbase/errs"
	"github.com/solidxbase/dbase/internal/coltracker"
	"github.com/solidxbase/dbase/internal/options"
)

// Row is one record's field values, one string per column, in column
// order.
type Row []string

// Option configures a Schema at construction time.
type Option = options.Option[*Schema]

// WithLogger overrides the logger used for advisory messages, such as
// width auto-correction. The default is log.Default().
func WithLogger(l *log.Logger) Option {
	return options.NoError[*Schema](func(s *Schema) {
		s.logger = l
	})
}

// Schema owns an ordered column list and two disjoint row lists, live
// and deleted (tombstoned). Columns may only be appended before Lock;
// rows may only be appended after.
type Schema struct {
	columns []Column
	tracker *coltracker.Tracker

	locked  bool
	live    []Row
	deleted []Row

	logger *log.Logger
}

// New creates an empty, unlocked Schema.
func New(opts ...Option) *Schema {
	s := &Schema{
		tracker: coltracker.New(),
		logger:  log.Default(),
	}

	// Options on Schema never fail; NoError-wrapped options cannot
	// return an error, so Apply's error path is unreachable here.
	_ = options.Apply(s, opts...)

	return s
}

// CanAddColumns reports whether the schema is still unlocked.
func (s *Schema) CanAddColumns() bool {
	return !s.locked
}

// AddColumn appends a column. name is trimmed of surrounding
// whitespace; width is corrected to the type's default width if the
// type has one (an advisory message is logged when a correction
// occurs). Returns *errs.ColumnAddError on any invariant violation.
func (s *Schema) AddColumn(name string, typ coltype.Type, width int) error {
	if s.locked {
		return errs.NewColumnAddError(name, errs.ErrColumnLocked)
	}

	trimmed := trimmedName(name)
	if trimmed == "" {
		return errs.NewColumnAddError(name, errs.ErrColumnNameEmpty)
	}
	if len(trimmed) > MaxNameLength {
		return errs.NewColumnAddError(name, errs.ErrColumnNameTooBig)
	}

	if !typ.Valid() {
		return errs.NewColumnAddError(trimmed, fmt.Errorf("%w: %q", errs.ErrUnknownType, string(typ)))
	}

	if defaultWidth, fixed := typ.DefaultWidth(); fixed && width != defaultWidth {
		s.logger.Printf("schema: column %q: width %d corrected to %d for type %s", trimmed, width, defaultWidth, typ)
		width = defaultWidth
	}

	if width < 1 || width > 254 {
		return errs.NewColumnAddError(trimmed, errs.ErrWidthOutOfRange)
	}

	if err := s.tracker.Add(trimmed); err != nil {
		return errs.NewColumnAddError(trimmed, err)
	}

	s.columns = append(s.columns, Column{name: trimmed, typ: typ, width: width})

	return nil
}

// Lock freezes the column list. Subsequent AddColumn calls fail;
// subsequent AddRow/AddRowDeleted calls succeed.
func (s *Schema) Lock() {
	s.locked = true
}

// Locked reports whether the schema has been locked.
func (s *Schema) Locked() bool {
	return s.locked
}

// Columns returns the schema's columns in declaration order.
func (s *Schema) Columns() []Column {
	return s.columns
}

// ColumnIndex returns the position of the named column and true, or
// (0, false) if no column has that name.
func (s *Schema) ColumnIndex(name string) (int, bool) {
	for i, c := range s.columns {
		if c.name == name {
			return i, true
		}
	}

	return 0, false
}

// AddRow appends a live row. Fails with *errs.RowAddError if the schema
// is not locked, or if len(values) does not match the column count.
func (s *Schema) AddRow(values []string) error {
	if err := s.checkRow(values); err != nil {
		return err
	}

	s.live = append(s.live, Row(values))

	return nil
}

// AddRowDeleted appends a tombstoned row, subject to the same
// validation as AddRow.
func (s *Schema) AddRowDeleted(values []string) error {
	if err := s.checkRow(values); err != nil {
		return err
	}

	s.deleted = append(s.deleted, Row(values))

	return nil
}

func (s *Schema) checkRow(values []string) error {
	if !s.locked {
		return errs.NewRowAddError("", errs.ErrSchemaNotLocked)
	}
	if len(values) != len(s.columns) {
		return errs.NewRowAddError("", fmt.Errorf("%w: got %d, want %d", errs.ErrRowArityMismatch, len(values), len(s.columns)))
	}

	return nil
}

// LiveRows returns the rows added via AddRow, in insertion order.
func (s *Schema) LiveRows() []Row {
	return s.live
}

// DeletedRows returns the rows added via AddRowDeleted, in insertion
// order.
func (s *Schema) DeletedRows() []Row {
	return s.deleted
}

// RecordCount returns the total number of rows, live plus deleted.
func (s *Schema) RecordCount() int {
	return len(s.live) + len(s.deleted)
}

// RecordWidth returns 1 + the sum of every column's width: the byte
// length of one on-disk record, marker byte included.
func (s *Schema) RecordWidth() int {
	width := 1
	for _, c := range s.columns {
		width += c.width
	}

	return width
}

// HasMemoColumn reports whether any column is of a memo-indirected type
// (M, G, or B), which determines whether a companion DBT file and the
// 0x83 DBF version byte are needed.
func (s *Schema) HasMemoColumn() bool {
	for _, c := range s.columns {
		if c.typ.IsMemoBlock() {
			return true
		}
	}

	return false
}
