package schema

import (
	"errors"
	"testing"

	"github.com/solidxbase/dbase/coltype"
	"github.com/solidxbase/dbase/errs"
	"github.com/stretchr/testify/require"
)

func TestSchema_AddColumn_Success(t *testing.T) {
	s := New()

	require.NoError(t, s.AddColumn("name", coltype.String, 10))
	require.NoError(t, s.AddColumn("dob", coltype.Date, 8))
	require.Len(t, s.Columns(), 2)
	require.Equal(t, "name", s.Columns()[0].Name())
	require.Equal(t, coltype.Date, s.Columns()[1].Type())
}

func TestSchema_AddColumn_TrimsWhitespace(t *testing.T) {
	s := New()

	require.NoError(t, s.AddColumn("  name  ", coltype.String, 10))
	require.Equal(t, "name", s.Columns()[0].Name())
}

func TestSchema_AddColumn_EmptyName(t *testing.T) {
	s := New()

	err := s.AddColumn("   ", coltype.String, 10)
	require.ErrorIs(t, err, errs.ErrColumnNameEmpty)

	var target *errs.ColumnAddError
	require.True(t, errors.As(err, &target))
}

func TestSchema_AddColumn_NameTooBig(t *testing.T) {
	s := New()

	longName := make([]byte, 33)
	for i := range longName {
		longName[i] = 'a'
	}

	err := s.AddColumn(string(longName), coltype.String, 10)
	require.ErrorIs(t, err, errs.ErrColumnNameTooBig)
}

func TestSchema_AddColumn_Duplicate(t *testing.T) {
	s := New()

	require.NoError(t, s.AddColumn("name", coltype.String, 10))
	err := s.AddColumn("name", coltype.String, 10)
	require.ErrorIs(t, err, errs.ErrColumnDuplicate)
}

func TestSchema_AddColumn_DefaultWidthCorrection(t *testing.T) {
	s := New()

	require.NoError(t, s.AddColumn("dob", coltype.Date, 100))
	require.Equal(t, 8, s.Columns()[0].Width())

	require.NoError(t, s.AddColumn("flag", coltype.Bool, 5))
	require.Equal(t, 1, s.Columns()[1].Width())
}

func TestSchema_AddColumn_WidthOutOfRange(t *testing.T) {
	s := New()

	err := s.AddColumn("n", coltype.Numeric, 0)
	require.ErrorIs(t, err, errs.ErrWidthOutOfRange)

	err = s.AddColumn("n", coltype.Numeric, 255)
	require.ErrorIs(t, err, errs.ErrWidthOutOfRange)
}

func TestSchema_AddColumn_UnknownType(t *testing.T) {
	s := New()

	err := s.AddColumn("n", coltype.Type('Z'), 10)
	require.ErrorIs(t, err, errs.ErrUnknownType)
}

func TestSchema_AddColumn_RejectedAfterLock(t *testing.T) {
	s := New()
	s.Lock()

	err := s.AddColumn("name", coltype.String, 10)
	require.ErrorIs(t, err, errs.ErrColumnLocked)
	require.False(t, s.CanAddColumns())
}

func TestSchema_AddRow_RejectedBeforeLock(t *testing.T) {
	s := New()
	require.NoError(t, s.AddColumn("u", coltype.String, 2))

	err := s.AddRow([]string{"gg"})
	require.ErrorIs(t, err, errs.ErrSchemaNotLocked)
}

func TestSchema_AddRow_ArityMismatch(t *testing.T) {
	s := New()
	require.NoError(t, s.AddColumn("u", coltype.String, 2))
	s.Lock()

	err := s.AddRow([]string{"gg", "extra"})
	require.ErrorIs(t, err, errs.ErrRowArityMismatch)
}

func TestSchema_AddRow_LiveAndDeleted(t *testing.T) {
	s := New()
	require.NoError(t, s.AddColumn("u", coltype.String, 2))
	s.Lock()

	require.NoError(t, s.AddRow([]string{"aa"}))
	require.NoError(t, s.AddRowDeleted([]string{"xx"}))

	require.Equal(t, []Row{{"aa"}}, s.LiveRows())
	require.Equal(t, []Row{{"xx"}}, s.DeletedRows())
	require.Equal(t, 2, s.RecordCount())
}

func TestSchema_ColumnIndex(t *testing.T) {
	s := New()
	require.NoError(t, s.AddColumn("a", coltype.String, 1))
	require.NoError(t, s.AddColumn("b", coltype.String, 1))

	idx, ok := s.ColumnIndex("b")
	require.True(t, ok)
	require.Equal(t, 1, idx)

	_, ok = s.ColumnIndex("missing")
	require.False(t, ok)
}

func TestSchema_RecordWidth(t *testing.T) {
	s := New()
	require.NoError(t, s.AddColumn("num", coltype.Numeric, 1))
	require.NoError(t, s.AddColumn("score", coltype.Float, 4))

	require.Equal(t, 1+1+4, s.RecordWidth())
}

func TestSchema_HasMemoColumn(t *testing.T) {
	s := New()
	require.NoError(t, s.AddColumn("n", coltype.Numeric, 1))
	require.False(t, s.HasMemoColumn())

	require.NoError(t, s.AddColumn("notes", coltype.Memo, 10))
	require.True(t, s.HasMemoColumn())
}
