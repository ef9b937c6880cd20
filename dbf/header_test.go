package dbf

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewHeader_NoMemo(t *testing.T) {
	updated := time.Date(2024, time.December, 19, 0, 0, 0, 0, time.UTC)
	h := NewHeader(1, 1, 3, false, updated)

	require.Equal(t, byte(VersionNoMemo), h.Version)
	require.Equal(t, uint16(32+33), h.HeaderLength)
	require.Equal(t, uint16(3), h.RecordLength)
}

func TestNewHeader_WithMemo(t *testing.T) {
	h := NewHeader(2, 0, 1, true, time.Now())
	require.Equal(t, byte(VersionMemo), h.Version)
}

func TestHeader_Bytes_RoundTrip(t *testing.T) {
	updated := time.Date(2024, time.December, 19, 0, 0, 0, 0, time.UTC)
	h := NewHeader(1, 1, 3, false, updated)

	b := h.Bytes()
	require.Len(t, b, HeaderSize)
	require.Equal(t, byte(0x03), b[0])
	require.Equal(t, byte(2024-1900), b[1])
	require.Equal(t, byte(12), b[2])
	require.Equal(t, byte(19), b[3])
	require.Equal(t, []byte{0x01, 0x00, 0x00, 0x00}, b[4:8])
	require.Equal(t, []byte{0x41, 0x00}, b[8:10])
	require.Equal(t, []byte{0x03, 0x00}, b[10:12])

	var parsed Header
	require.NoError(t, parsed.Parse(b))
	require.Equal(t, h.Version, parsed.Version)
	require.Equal(t, h.UpdateYear, parsed.UpdateYear)
	require.Equal(t, h.RecordCount, parsed.RecordCount)
	require.Equal(t, h.HeaderLength, parsed.HeaderLength)
	require.Equal(t, h.RecordLength, parsed.RecordLength)
}

func TestHeader_Parse_TooShort(t *testing.T) {
	var h Header
	err := h.Parse(make([]byte, 10))
	require.Error(t, err)
}

func TestHeader_Parse_InvalidFlag(t *testing.T) {
	b := make([]byte, HeaderSize)
	b[14] = 5

	var h Header
	err := h.Parse(b)
	require.Error(t, err)
}

func TestHeader_HasMemo(t *testing.T) {
	h := Header{Version: VersionMemo}
	require.True(t, h.HasMemo())

	h.Version = VersionNoMemo
	require.False(t, h.HasMemo())
}
