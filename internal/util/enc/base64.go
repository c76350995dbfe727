package enc

import (
	"fmt"
	"github.com/pkg/errors"
)

const (
	// cb64 is the classical radix-64 alphabet: uppercase, lowercase, digits,
	// '+' and '/'. The position of a symbol in this string is its 6-bit value.
	cb64 = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

	// base64Pad fills the last output window when the input length is not a
	// multiple of three. It is not part of the alphabet itself.
	base64Pad = '='

	// base64PadIndex is the out-of-alphabet index assigned to the padding
	// character while decoding -- it means "no value contributed".
	base64PadIndex = 64

	// base64Invalid marks bytes which are neither alphabet nor padding in the
	// inverse table.
	base64Invalid = 0xff
)

const maxInt = int(^uint(0) >> 1)

// Errors reported by the radix-64 codec. Decode wraps them with positional
// context where that helps tracking down the offending byte.
var (
	ErrTooLong = errors.New("input too long: encoded length overflows int")
	ErrLength  = errors.New("encoded length is not a multiple of 4")
	ErrSymbol  = errors.New("symbol outside the radix-64 alphabet")
	ErrPadding = errors.New("padding symbol in an illegal position")
)

// cb64Invert maps a symbol back to its alphabet index. Built once on startup,
// read-only afterwards.
var cb64Invert [256]byte

func init() {
	for i := range cb64Invert {
		cb64Invert[i] = base64Invalid
	}
	for i := 0; i < len(cb64); i++ {
		cb64Invert[cb64[i]] = byte(i)
	}
	cb64Invert[base64Pad] = base64PadIndex
}

// IntToBase64Char will convert the given number into a letter from the
// radix-64 alphabet. Or to put it in another term it will return the letter
// from the alphabet at a position given by the argument. If the number is
// larger than 63, it will "wrap over" and work on the remainder of the
// parameter divided by 64.
func IntToBase64Char(in int) byte {
	return cb64[in&63]
}

// Base64CharToInt returns the alphabet index of the given symbol. The padding
// character returns the sentinel index 64, any other symbol outside the
// alphabet returns -1.
func Base64CharToInt(in byte) int {
	v := cb64Invert[in]
	if v == base64Invalid {
		return -1
	}
	return int(v)
}

// EncodedLen returns the exact number of bytes the radix-64 encoding of n
// input bytes occupies: zero for empty input, otherwise ceil(n/3)*4. A
// partial final window still takes a full 4-symbol group. Fails with
// ErrTooLong when the result does not fit into an int.
func EncodedLen(n int) (int, error) {
	if n <= 0 {
		return 0, nil
	}
	groups := n / 3
	if n%3 != 0 {
		groups++
	}
	if groups > maxInt/4 {
		return 0, errors.WithStack(ErrTooLong)
	}
	return groups * 4, nil
}

// DecodedLen returns the maximum number of bytes that n bytes of radix-64
// input decode to. The exact length can be up to two bytes shorter, depending
// on the trailing padding of the final window.
func DecodedLen(n int) int {
	return n / 4 * 3
}

// -------------------------------------------------------

// Base64Encoder encodes 3 bytes to 4 characters using the classical radix-64
// alphabet with explicit '=' padding.
type Base64Encoder struct {
}

func (b *Base64Encoder) Name() string {
	return "Base64"
}

func (b *Base64Encoder) String() string {
	return fmt.Sprintf("%v(%v)", b.Name(), string(b.Code()))
}

func (b *Base64Encoder) Code() byte {
	return 'S'
}

// Encode processes the input in windows of three bytes. Every full window
// turns into four symbols of six bits each; a partial final window is topped
// up with padding. The output buffer is allocated up front at its exact
// final size, never grown.
func (b *Base64Encoder) Encode(src []byte) ([]byte, error) {
	n, err := EncodedLen(len(src))
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return []byte{}, nil
	}

	dst := make([]byte, n)
	di := 0
	for len(src) >= 3 {
		b0, b1, b2 := src[0], src[1], src[2]
		dst[di] = IntToBase64Char(int(b0 >> 2))
		dst[di+1] = IntToBase64Char(int((b0&0x03)<<4 | b1>>4))
		dst[di+2] = IntToBase64Char(int((b1&0x0f)<<2 | b2>>6))
		dst[di+3] = IntToBase64Char(int(b2 & 0x3f))
		di += 4
		src = src[3:]
	}

	switch len(src) {
	case 2:
		b0, b1 := src[0], src[1]
		dst[di] = IntToBase64Char(int(b0 >> 2))
		dst[di+1] = IntToBase64Char(int((b0&0x03)<<4 | b1>>4))
		dst[di+2] = IntToBase64Char(int((b1 & 0x0f) << 2))
		dst[di+3] = base64Pad
	case 1:
		b0 := src[0]
		dst[di] = IntToBase64Char(int(b0 >> 2))
		dst[di+1] = IntToBase64Char(int((b0 & 0x03) << 4))
		dst[di+2] = base64Pad
		dst[di+3] = base64Pad
	}

	return dst, nil
}

// Decode processes the input in windows of four symbols and reverses the
// 6-bit packing. The input length must be a multiple of four and '=' may only
// appear as the tail of the final window, at most twice. Anything else is
// reported as an error -- Decode never guesses and never returns a partial
// result.
func (b *Base64Encoder) Decode(src []byte) ([]byte, error) {
	if len(src) == 0 {
		return []byte{}, nil
	}
	if len(src)%4 != 0 {
		return nil, errors.Wrapf(ErrLength, "got %v bytes", len(src))
	}

	pad, err := base64PadCount(src)
	if err != nil {
		return nil, err
	}

	dst := make([]byte, DecodedLen(len(src))-pad)
	di := 0
	for si := 0; si < len(src); si += 4 {
		idx0 := Base64CharToInt(src[si])
		idx1 := Base64CharToInt(src[si+1])
		idx2 := Base64CharToInt(src[si+2])
		idx3 := Base64CharToInt(src[si+3])
		if idx0 < 0 || idx1 < 0 || idx2 < 0 || idx3 < 0 {
			for k := si; k < si+4; k++ {
				if Base64CharToInt(src[k]) < 0 {
					return nil, errors.Wrapf(ErrSymbol, "%q at offset %v", src[k], k)
				}
			}
		}

		dst[di] = byte(idx0<<2 | idx1>>4)
		di++
		if idx2 == base64PadIndex {
			continue
		}
		dst[di] = byte(idx1<<4 | idx2>>2)
		di++
		if idx3 == base64PadIndex {
			continue
		}
		dst[di] = byte(idx2<<6 | idx3)
		di++
	}

	return dst, nil
}

// base64PadCount counts the trailing padding of the final window. Padding may
// only appear in the last two positions of the input; a '=' anywkere before
// that is malformed and never silently shortens the output.
func base64PadCount(src []byte) (int, error) {
	pad := 0
	for i := len(src) - 1; i >= 0 && src[i] == base64Pad; i-- {
		pad++
	}
	if pad > 2 {
		return 0, errors.Wrapf(ErrPadding, "%v consecutive padding symbols", pad)
	}
	for i := 0; i < len(src)-pad; i++ {
		if src[i] == base64Pad {
			return 0, errors.Wrapf(ErrPadding, "padding at offset %v", i)
		}
	}
	return pad, nil
}

func (b *Base64Encoder) Ratio() float64 {
	return 4.0 / 3.0
}

func (b *Base64Encoder) TestPatterns() [][]byte {
	// A ramp over every possible byte exercises all 64 symbols and each of
	// the three window phases.
	ramp := make([]byte, 256)
	for k := range ramp {
		ramp[k] = byte(k)
	}

	return [][]byte{
		[]byte("foobar"),
		ramp,
	}
}
