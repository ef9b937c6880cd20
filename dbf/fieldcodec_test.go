package dbf

import (
	"testing"

	"github.com/solidxbase/dbase/coltype"
	"github.com/solidxbase/dbase/textenc"
	"github.com/stretchr/testify/require"
)

func TestStringCodec_EncodeDecode(t *testing.T) {
	c := codecFor(coltype.String)
	dst := make([]byte, 5)

	require.NoError(t, c.encode(dst, "ab", textenc.UTF8, nil))
	require.Equal(t, []byte{'a', 'b', 0, 0, 0}, dst)

	decoded, err := c.decode(dst, textenc.UTF8, nil)
	require.NoError(t, err)
	require.Equal(t, "ab\x00\x00\x00", decoded)
}

func TestStringCodec_TooLong(t *testing.T) {
	c := codecFor(coltype.String)
	dst := make([]byte, 2)

	err := c.encode(dst, "abc", textenc.UTF8, nil)
	require.Error(t, err)
}

func TestNumericASCIICodec_RightJustifies(t *testing.T) {
	c := codecFor(coltype.Numeric)
	dst := make([]byte, 1)

	require.NoError(t, c.encode(dst, "1", textenc.UTF8, nil))
	require.Equal(t, []byte{'1'}, dst)
}

func TestFloatASCIICodec_Encode(t *testing.T) {
	c := codecFor(coltype.Float)
	dst := make([]byte, 4)

	require.NoError(t, c.encode(dst, "2.50", textenc.UTF8, nil))
	require.Equal(t, []byte("2.50"), dst)
}

func TestNumericASCIICodec_NotANumber(t *testing.T) {
	c := codecFor(coltype.Numeric)
	dst := make([]byte, 4)

	err := c.encode(dst, "abc", textenc.UTF8, nil)
	require.Error(t, err)
}

func TestNumericASCIICodec_RejectsFloat(t *testing.T) {
	c := codecFor(coltype.Numeric)
	dst := make([]byte, 4)

	err := c.encode(dst, "1.5", textenc.UTF8, nil)
	require.Error(t, err)
}

func TestBoolCodec(t *testing.T) {
	c := codecFor(coltype.Bool)
	dst := make([]byte, 1)

	require.NoError(t, c.encode(dst, "T", textenc.UTF8, nil))
	require.Equal(t, byte('T'), dst[0])

	decoded, err := c.decode([]byte{'Y'}, textenc.UTF8, nil)
	require.NoError(t, err)
	require.Equal(t, "T", decoded)
}

func TestInt32Codec_NegativeReadsBackUnsigned(t *testing.T) {
	c := codecFor(coltype.Long)
	dst := make([]byte, 4)

	require.NoError(t, c.encode(dst, "-12", textenc.UTF8, nil))

	// Written as signed int32, read back as uint32.
	decoded, err := c.decode(dst, textenc.UTF8, nil)
	require.NoError(t, err)
	require.Equal(t, "4294967284", decoded)
}

func TestFloat64Codec_RoundTrip(t *testing.T) {
	c := codecFor(coltype.Double)
	dst := make([]byte, 8)

	require.NoError(t, c.encode(dst, "3.5", textenc.UTF8, nil))

	decoded, err := c.decode(dst, textenc.UTF8, nil)
	require.NoError(t, err)
	require.Equal(t, "3.5", decoded)
}

func TestTimestampCodec_RoundTrip(t *testing.T) {
	c := codecFor(coltype.Timestamp)
	dst := make([]byte, 8)

	require.NoError(t, c.encode(dst, "2460298 26706000", textenc.UTF8, nil))

	decoded, err := c.decode(dst, textenc.UTF8, nil)
	require.NoError(t, err)
	require.Equal(t, "2460298 26706000", decoded)
}

type fakeMemo struct {
	allocated [][]byte
	resolved  map[uint32]string
}

func (f *fakeMemo) Allocate(payload []byte) (uint32, error) {
	f.allocated = append(f.allocated, payload)
	return uint32(len(f.allocated)), nil
}

func (f *fakeMemo) Resolve(index uint32) (string, error) {
	return f.resolved[index], nil
}

func TestMemoCodec_EncodeDecode(t *testing.T) {
	c := codecFor(coltype.Memo)
	dst := make([]byte, 10)
	mem := &fakeMemo{resolved: map[uint32]string{1: "hello"}}

	require.NoError(t, c.encode(dst, "hello", textenc.UTF8, mem))
	require.Equal(t, "0000000001", string(dst))

	decoded, err := c.decode(dst, textenc.UTF8, mem)
	require.NoError(t, err)
	require.Equal(t, "hello", decoded)
}
