package hashing

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/multiformats/go-multibase"
	"golang.org/x/xerrors"
)

// Encoding selects how a Digest is rendered in a filename.
type Encoding string

const (
	EncodingHex    Encoding = "hex"    // Uppercase hexadecimal (default).
	EncodingBase32 Encoding = "base32" // RFC 4648 uppercase, no padding.
)

// ParseEncoding maps a case-insensitive name to an Encoding.
func ParseEncoding(s string) (Encoding, error) {
	switch e := Encoding(strings.ToLower(strings.TrimSpace(s))); e {
	case EncodingHex, EncodingBase32:
		return e, nil
	}
	return "", xerrors.Errorf("invalid encoding %q (use 'hex' or 'base32')", s)
}

// Valid reports whether e names a supported encoding.
func (e Encoding) Valid() bool {
	return e == EncodingHex || e == EncodingBase32
}

// Digest is the raw output of an Algorithm over a file's full content.
type Digest []byte

// Format renders d in the given encoding. Both encodings produce uppercase
// text so the same content always yields the same name regardless of the
// library's native case.
func (d Digest) Format(e Encoding) string {
	switch e {
	case EncodingHex:
		return strings.ToUpper(hex.EncodeToString(d))
	case EncodingBase32:
		s, err := multibase.Encode(multibase.Base32Upper, d)
		if err != nil {
			panic(fmt.Sprintf("hashing: base32 encode: %v", err))
		}
		return s[1:] // drop the multibase prefix 'B'
	}
	panic(fmt.Sprintf("hashing: unknown encoding %q", string(e)))
}

// String returns the uppercase hex form.
func (d Digest) String() string { return d.Format(EncodingHex) }
