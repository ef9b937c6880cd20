// Package textenc wraps golang.org/x/text/encoding so that type-C field
// values can be encoded and decoded under a caller-selected codepage,
// matching the codepage-selection surface of the wider xBase library
// ecosystem while defaulting to UTF-8.
package textenc

import (
	"fmt"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/htmlindex"
)

// Codec encodes and decodes type-C field payloads.
type Codec interface {
	// Encode converts s to its on-disk byte representation.
	Encode(s string) ([]byte, error)
	// Decode converts raw on-disk bytes to a string.
	Decode(b []byte) (string, error)
}

// UTF8 is the default Codec: a UTF-8 passthrough that performs no
// transcoding.
var UTF8 Codec = utf8Codec{}

type utf8Codec struct{}

func (utf8Codec) Encode(s string) ([]byte, error) { return []byte(s), nil }
func (utf8Codec) Decode(b []byte) (string, error) { return string(b), nil }

// xtextCodec adapts a golang.org/x/text/encoding.Encoding to Codec.
type xtextCodec struct {
	enc encoding.Encoding
}

func (c xtextCodec) Encode(s string) ([]byte, error) {
	out, err := c.enc.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, fmt.Errorf("textenc: encode: %w", err)
	}

	return out, nil
}

func (c xtextCodec) Decode(b []byte) (string, error) {
	out, err := c.enc.NewDecoder().Bytes(b)
	if err != nil {
		return "", fmt.Errorf("textenc: decode: %w", err)
	}

	return string(out), nil
}

// ByName looks up a Codec by its IANA or common name (e.g. "windows-1252",
// "ibm437", the common xBase codepages), checking a small charmap table
// first and falling back to the golang.org/x/text/encoding/htmlindex
// registry.
func ByName(name string) (Codec, error) {
	if enc, ok := namedCharmaps[name]; ok {
		return xtextCodec{enc: enc}, nil
	}

	if enc, err := htmlindex.Get(name); err == nil {
		return xtextCodec{enc: enc}, nil
	}

	return nil, fmt.Errorf("textenc: unknown codepage %q", name)
}

// namedCharmaps covers the DOS/OEM codepages common in xBase tables,
// most of which htmlindex's WHATWG-oriented registry does not carry, plus
// the common Windows codepages.
var namedCharmaps = map[string]encoding.Encoding{
	"ibm437":       enc(charmap.CodePage437),
	"cp437":        enc(charmap.CodePage437),
	"ibm850":       enc(charmap.CodePage850),
	"cp850":        enc(charmap.CodePage850),
	"ibm852":       enc(charmap.CodePage852),
	"cp852":        enc(charmap.CodePage852),
	"ibm866":       enc(charmap.CodePage866),
	"cp866":        enc(charmap.CodePage866),
	"windows-1250": enc(charmap.Windows1250),
	"windows-1251": enc(charmap.Windows1251),
	"windows-1252": enc(charmap.Windows1252),
}

func enc(cm *charmap.Charmap) encoding.Encoding {
	return cm
}
