package dbf

import (
	"testing"

	"github.com/solidxbase/dbase/coltype"
	"github.com/stretchr/testify/require"
)

func TestFieldDescriptor_Bytes(t *testing.T) {
	d := fieldDescriptor{Name: "u", Type: coltype.String, Width: 2}

	b := d.Bytes()
	require.Len(t, b, DescriptorSize)
	require.Equal(t, byte('u'), b[0])
	require.Equal(t, byte(0), b[1])
	require.Equal(t, byte('C'), b[11])
	require.Equal(t, []byte{0x02, 0x00}, b[16:18])
}

func TestParseDescriptor_RoundTrip(t *testing.T) {
	d := fieldDescriptor{Name: "score", Type: coltype.Float, Width: 4}

	parsed, err := parseDescriptor(d.Bytes())
	require.NoError(t, err)
	require.Equal(t, d, parsed)
}

func TestParseDescriptor_TooShort(t *testing.T) {
	_, err := parseDescriptor(make([]byte, 5))
	require.Error(t, err)
}

func TestParseDescriptor_UnknownType(t *testing.T) {
	b := make([]byte, DescriptorSize)
	copy(b, "x")
	b[11] = 'Z'

	_, err := parseDescriptor(b)
	require.Error(t, err)
}
