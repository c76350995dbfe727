package enc

import (
	"encoding/ascii85"
	"fmt"
	"github.com/pkg/errors"
)

// -------------------------------------------------------

// Base85Encoder encodes 4 bytes to 5 characters using the ascii85 scheme.
type Base85Encoder struct {
}

func (b *Base85Encoder) Name() string {
	return "Base85"
}

func (b *Base85Encoder) String() string {
	return fmt.Sprintf("%v(%v)", b.Name(), string(b.Code()))
}

func (b *Base85Encoder) Code() byte {
	return 'W'
}

func (b *Base85Encoder) Encode(data []byte) ([]byte, error) {
	dst := make([]byte, ascii85.MaxEncodedLen(len(data)))
	n := ascii85.Encode(dst, data)
	return dst[:n], nil
}

func (b *Base85Encoder) Decode(data []byte) ([]byte, error) {
	// Each input byte yields at most four output bytes -- a single 'z'
	// stands for a whole zero group.
	dst := make([]byte, 4*len(data))
	ndst, _, err := ascii85.Decode(dst, data, true)
	if err != nil {
		err = errors.WithStack(err)
		return nil, err
	}
	return dst[:ndst], nil
}

func (b *Base85Encoder) Ratio() float64 {
	return 1.25
}

func (b *Base85Encoder) TestPatterns() [][]byte {
	// 33 (!) through 117 (u), the whole ascii85 range
	str := make([]byte, 85)
	for k := range str {
		str[k] = byte(k + 33)
	}

	return [][]byte{
		str,
		// All zeroes collapse to a run of 'z' shorthands
		make([]byte, 8),
	}
}
