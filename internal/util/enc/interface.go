package enc

import (
	"github.com/pkg/errors"
	"strings"
)

type Encoder interface {
	// Name is the user-friendly name of this encoder
	Name() string
	// Code represents the short (one-letter) code for the encoder
	Code() byte

	// Encode will take an array of bytes and encode it using this encoder.
	// The returned buffer is freshly allocated and owned by the caller. It
	// fails only when the output length can no longer be represented.
	Encode(data []byte) ([]byte, error)

	// Decode is the reverse process of encoding. Malformed input is reported
	// as an error, never silently misread.
	Decode(data []byte) ([]byte, error)

	// Ratio returns the average encoded-to-raw size ratio of this encoder
	Ratio() float64

	// TestPatterns returns a list of byte vectors which exercise the whole
	// alphabet of the encoder
	TestPatterns() [][]byte
}

// Encodings lists every registered encoder, densest encoding first. The
// one-letter codes are stable and must never be reassigned.
var Encodings = []Encoder{
	RawEncoding,
	Base128Encoding,
	Base91Encoding,
	Base85Encoding,
	Base64Encoding,
	Base32Encoding,
}

var (
	RawEncoding     = &RawEncoder{}
	Base128Encoding = &Base128Encoder{}
	Base91Encoding  = &Base91Encoder{}
	Base85Encoding  = &Base85Encoder{}
	Base64Encoding  = &Base64Encoder{}
	Base32Encoding  = &Base32Encoder{}
)

// FromCode will return the encoder registered under the given one-letter
// code, or an error when no such encoder exists.
func FromCode(code byte) (Encoder, error) {
	for _, e := range Encodings {
		if e.Code() == code {
			return e, nil
		}
	}
	return nil, errors.Errorf("Unknown encoder code: %q", code)
}

// FromName will return the encoder with the given user-friendly name,
// ignoring case. A single letter is tried as a code as well, so both
// "base64" and "S" find the same encoder.
func FromName(name string) (Encoder, error) {
	for _, e := range Encodings {
		if strings.EqualFold(e.Name(), name) {
			return e, nil
		}
	}
	if len(name) == 1 {
		return FromCode(name[0])
	}
	return nil, errors.Errorf("Unknown encoder: %v", name)
}
