package enc

import (
	"github.com/stretchr/testify/require"
	"testing"
)

func Test_Base128Transliterate(t *testing.T) {
	str := make([]byte, 128)
	for k := range str {
		str[k] = byte(k)
	}
	trans := escape128(str)
	require.Equal(t, len(str), len(trans))

	back, err := unescape128(trans)
	require.NoError(t, err)
	require.Equal(t, len(str), len(back))
	require.Equal(t, str, back)

	_, err = unescape128([]byte{0x00})
	require.Error(t, err)
}

func Test_Base128Encoder(t *testing.T) {
	encoder := Base128Encoder{}
	encoded, err := encoder.Encode(encoderTest)
	require.NoError(t, err)
	decoded, err := encoder.Decode(encoded)
	require.NoError(t, err)
	require.Equal(t, encoderTest, decoded)
}

// Every input length modulo 7 hits a different tail in the bit window, so
// walk all of them.
func Test_Base128Encoder_WindowPhases(t *testing.T) {
	encoder := Base128Encoder{}
	for n := 0; n <= 16; n++ {
		data := make([]byte, n)
		for i := range data {
			data[i] = byte(0xa5 ^ i)
		}

		encoded, err := encoder.Encode(data)
		require.NoError(t, err)

		expected := n + (n+6)/7
		require.Equalf(t, expected, len(encoded), "Encoded length of %v input bytes", n)

		decoded, err := encoder.Decode(encoded)
		require.NoError(t, err)
		require.Equalf(t, data, decoded, "Round-trip of %v input bytes", n)
	}
}
