package enc

import (
	"github.com/stretchr/testify/require"
	"testing"
)

func Test_Base85Encoder(t *testing.T) {
	for _, data := range encoderTests {
		encoder := Base85Encoder{}
		encoded, err := encoder.Encode(data)
		require.NoError(t, err)
		decoded, err := encoder.Decode(encoded)
		require.NoError(t, err)
		require.Equal(t, data, decoded)
	}
}

func Test_Base85Encoder_Malformed(t *testing.T) {
	encoder := Base85Encoder{}
	_, err := encoder.Decode([]byte("v\x00w"))
	require.Error(t, err)
}
