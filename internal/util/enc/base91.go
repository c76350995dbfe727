package enc

import (
	"fmt"
	"github.com/mtraver/base91"
	"github.com/pkg/errors"
)

var base91Encoding = base91.StdEncoding

// -------------------------------------------------------

// Base91Encoder converts each group of 13 bits into 2 radix-91 digits. The
// densest printable encoding in the registry.
type Base91Encoder struct {
}

func (b *Base91Encoder) Name() string {
	return "Base91"
}

func (b *Base91Encoder) String() string {
	return fmt.Sprintf("%v(%v)", b.Name(), string(b.Code()))
}

func (b *Base91Encoder) Code() byte {
	return 'X'
}

func (b *Base91Encoder) Encode(data []byte) ([]byte, error) {
	return []byte(base91Encoding.EncodeToString(data)), nil
}

func (b *Base91Encoder) Decode(data []byte) ([]byte, error) {
	res, err := base91Encoding.DecodeString(string(data))
	if err != nil {
		err = errors.WithStack(err)
		return nil, err
	}
	return res, nil
}

func (b *Base91Encoder) Ratio() float64 {
	// worst case; the average sits closer to 1.14
	return 16.0 / 13.0
}

func (b *Base91Encoder) TestPatterns() [][]byte {
	return [][]byte{
		[]byte("aAbBcCdDeEfFgGhHiIjJkKlLmMnNoOpPqQrRsStTuUvVwWxXyYzZ+0129-"),
	}
}
