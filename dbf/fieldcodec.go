package dbf

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/solidxbase/dbase/bytebuf"
	"github.com/solidxbase/dbase/coltype"
	"github.com/solidxbase/dbase/errs"
	"github.com/solidxbase/dbase/textenc"
)

// memoAllocator is the DBT-side of the coupling described in spec.md
// §4.6: the DBF writer hands a memo payload to the allocator and gets
// back the pre-assignment block index that payload will occupy.
type memoAllocator interface {
	Allocate(payload []byte) (index uint32, err error)
}

// memoResolver is the DBT-side of memo reading: given a block index, it
// returns the memo's decoded text.
type memoResolver interface {
	Resolve(index uint32) (string, error)
}

// fieldCodec encodes and decodes one column's value into/from its
// fixed-width on-disk slot. Each ColumnType tag maps to one
// implementation (M/G/B share memoCodec, I/+ share int32Codec); dispatch
// is exhaustive over the twelve tags.
type fieldCodec interface {
	encode(dst []byte, value string, codec textenc.Codec, memo memoAllocator) error
	decode(src []byte, codec textenc.Codec, memo memoResolver) (string, error)
}

// codecFor returns the fieldCodec for typ. typ must be Valid(); callers
// that decode attacker-controlled bytes check Valid() first and surface
// errs.ErrUnknownType themselves.
func codecFor(typ coltype.Type) fieldCodec {
	switch typ {
	case coltype.String:
		return stringCodec{}
	case coltype.Date:
		return dateCodec{}
	case coltype.Float:
		return floatASCIICodec{}
	case coltype.Numeric:
		return numericASCIICodec{}
	case coltype.Bool:
		return boolCodec{}
	case coltype.Memo, coltype.OLE, coltype.Binary:
		return memoCodec{}
	case coltype.Long, coltype.Autoincrement:
		return int32Codec{}
	case coltype.Double:
		return float64Codec{}
	case coltype.Timestamp:
		return timestampCodec{}
	default:
		return nil
	}
}

type stringCodec struct{}

func (stringCodec) encode(dst []byte, value string, codec textenc.Codec, _ memoAllocator) error {
	encoded, err := codec.Encode(value)
	if err != nil {
		return fmt.Errorf("%w: %v", errs.ErrValueNotEncodable, err)
	}
	if len(encoded) > len(dst) {
		return fmt.Errorf("%w: %d bytes exceeds width %d", errs.ErrValueTooLong, len(encoded), len(dst))
	}

	bytebuf.PutASCIIPadRight(dst, string(encoded))

	return nil
}

func (stringCodec) decode(src []byte, codec textenc.Codec, _ memoResolver) (string, error) {
	return codec.Decode(src)
}

type dateCodec struct{}

func (dateCodec) encode(dst []byte, value string, _ textenc.Codec, _ memoAllocator) error {
	if len(value) != len(dst) {
		return fmt.Errorf("%w: date %q is not %d digits", errs.ErrInvalidDate, value, len(dst))
	}
	for _, c := range value {
		if c < '0' || c > '9' {
			return fmt.Errorf("%w: date %q is not all digits", errs.ErrInvalidDate, value)
		}
	}

	copy(dst, value)

	return nil
}

func (dateCodec) decode(src []byte, _ textenc.Codec, _ memoResolver) (string, error) {
	return string(src), nil
}

// numericASCIICodec handles N: right-justified decimal ASCII, validated
// as a parseable integer.
type numericASCIICodec struct{}

func (numericASCIICodec) encode(dst []byte, value string, _ textenc.Codec, _ memoAllocator) error {
	trimmed := strings.TrimSpace(value)
	if _, err := strconv.ParseInt(trimmed, 10, 64); err != nil {
		return fmt.Errorf("%w: %q", errs.ErrValueNotInteger, value)
	}
	if len(trimmed) > len(dst) {
		return fmt.Errorf("%w: %d bytes exceeds width %d", errs.ErrValueTooLong, len(trimmed), len(dst))
	}

	bytebuf.PutASCIIJustifyRight(dst, trimmed, ' ')

	return nil
}

func (numericASCIICodec) decode(src []byte, _ textenc.Codec, _ memoResolver) (string, error) {
	return strings.TrimSpace(string(src)), nil
}

// floatASCIICodec handles F: right-justified decimal ASCII, validated as
// a parseable double.
type floatASCIICodec struct{}

func (floatASCIICodec) encode(dst []byte, value string, _ textenc.Codec, _ memoAllocator) error {
	trimmed := strings.TrimSpace(value)
	if _, err := strconv.ParseFloat(trimmed, 64); err != nil {
		return fmt.Errorf("%w: %q", errs.ErrValueNotFloat, value)
	}
	if len(trimmed) > len(dst) {
		return fmt.Errorf("%w: %d bytes exceeds width %d", errs.ErrValueTooLong, len(trimmed), len(dst))
	}

	bytebuf.PutASCIIJustifyRight(dst, trimmed, ' ')

	return nil
}

func (floatASCIICodec) decode(src []byte, _ textenc.Codec, _ memoResolver) (string, error) {
	return strings.TrimSpace(string(src)), nil
}

type boolCodec struct{}

func (boolCodec) encode(dst []byte, value string, _ textenc.Codec, _ memoAllocator) error {
	if len(dst) != 1 {
		return fmt.Errorf("%w: bool column width must be 1, got %d", errs.ErrInvalidBool, len(dst))
	}

	switch value {
	case "T", "t", "Y", "y", "true":
		dst[0] = 'T'
	case "F", "f", "N", "n", "false":
		dst[0] = 'F'
	case "?", "", " ":
		dst[0] = '?'
	default:
		return fmt.Errorf("%w: %q", errs.ErrInvalidBool, value)
	}

	return nil
}

func (boolCodec) decode(src []byte, _ textenc.Codec, _ memoResolver) (string, error) {
	if len(src) == 0 {
		return "?", nil
	}

	switch src[0] {
	case 'T', 't', 'Y', 'y':
		return "T", nil
	case 'F', 'f', 'N', 'n':
		return "F", nil
	default:
		return "?", nil
	}
}

// memoCodec handles M/G/B: a 10-byte right-justified, zero-padded decimal
// block index referencing the companion DBT file.
type memoCodec struct{}

func (memoCodec) encode(dst []byte, value string, _ textenc.Codec, memo memoAllocator) error {
	if memo == nil {
		return fmt.Errorf("%w: memo column used without a DBT allocator", errs.ErrValueNotEncodable)
	}

	index, err := memo.Allocate([]byte(value))
	if err != nil {
		return err
	}

	bytebuf.PutASCIIJustifyRight(dst, strconv.FormatUint(uint64(index), 10), '0')

	return nil
}

func (memoCodec) decode(src []byte, _ textenc.Codec, memo memoResolver) (string, error) {
	trimmed := strings.TrimLeft(strings.TrimSpace(string(src)), "0")
	if trimmed == "" {
		trimmed = "0"
	}

	index, err := strconv.ParseUint(trimmed, 10, 32)
	if err != nil {
		return "", fmt.Errorf("%w: memo index %q", errs.ErrUnterminatedMemo, string(src))
	}
	if index == 0 || memo == nil {
		return "", nil
	}

	return memo.Resolve(uint32(index))
}

type int32Codec struct{}

func (int32Codec) encode(dst []byte, value string, _ textenc.Codec, _ memoAllocator) error {
	n, err := strconv.ParseInt(strings.TrimSpace(value), 10, 32)
	if err != nil {
		return fmt.Errorf("%w: %q", errs.ErrValueNotInteger, value)
	}
	if len(dst) != 4 {
		return fmt.Errorf("%w: integer column width must be 4, got %d", errs.ErrValueNotInteger, len(dst))
	}

	putUint32LE(dst, uint32(int32(n)))

	return nil
}

func (int32Codec) decode(src []byte, _ textenc.Codec, _ memoResolver) (string, error) {
	// Decoded as unsigned for compatibility with the reference behaviour
	// this format is modelled on; see spec.md §9 "known imperfections".
	return strconv.FormatUint(uint64(readUint32LE(src)), 10), nil
}

type float64Codec struct{}

func (float64Codec) encode(dst []byte, value string, _ textenc.Codec, _ memoAllocator) error {
	f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return fmt.Errorf("%w: %q", errs.ErrValueNotFloat, value)
	}
	if len(dst) != 8 {
		return fmt.Errorf("%w: double column width must be 8, got %d", errs.ErrValueNotFloat, len(dst))
	}

	bb := bytebuf.Buffer{B: dst[:0:8]}
	bb.PutFloat64LE(f)

	return nil
}

func (float64Codec) decode(src []byte, _ textenc.Codec, _ memoResolver) (string, error) {
	return strconv.FormatFloat(bytebuf.ReadFloat64LE(src), 'g', -1, 64), nil
}

// timestampCodec handles @: a "<days> <ms>" string split into two little-
// endian u32 fields.
type timestampCodec struct{}

func (timestampCodec) encode(dst []byte, value string, _ textenc.Codec, _ memoAllocator) error {
	parts := strings.SplitN(value, " ", 2)
	if len(parts) != 2 || len(dst) != 8 {
		return fmt.Errorf("%w: %q", errs.ErrInvalidTimestamp, value)
	}

	days, err := strconv.ParseInt(parts[0], 10, 32)
	if err != nil {
		return fmt.Errorf("%w: day count %q", errs.ErrInvalidTimestamp, parts[0])
	}

	ms, err := strconv.ParseInt(parts[1], 10, 32)
	if err != nil {
		return fmt.Errorf("%w: millisecond count %q", errs.ErrInvalidTimestamp, parts[1])
	}

	putUint32LE(dst[0:4], uint32(int32(days)))
	putUint32LE(dst[4:8], uint32(int32(ms)))

	return nil
}

func (timestampCodec) decode(src []byte, _ textenc.Codec, _ memoResolver) (string, error) {
	days := readUint32LE(src[0:4])
	ms := readUint32LE(src[4:8])

	return fmt.Sprintf("%d %d", days, ms), nil
}
