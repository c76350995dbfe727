package enc

import (
	"github.com/stretchr/testify/require"
	"testing"
)

// encoderTest is the classic mixed vector: zero runs, one runs, alternating
// bits and some real-world noise.
var encoderTest = []byte("\000\000\000\000\377\377\377\377\125\125\125\125\252\252\252\252" +
	"\201\143\310\322\307\174\262\027\137\117\316\311\111\055\122\041" +
	"\141\251\161\040\045\263\006\163\346\330\104\060\171\120\127\277")

// encoderTests drives the round-trip test of every encoder: the mixed vector
// plus every window phase down to the empty input.
var encoderTests = [][]byte{
	{},
	[]byte("f"),
	[]byte("fo"),
	[]byte("foo"),
	[]byte("foob"),
	[]byte("fooba"),
	[]byte("foobar"),
	encoderTest,
}

func Test_Encodings_RoundTrip(t *testing.T) {
	for _, encoder := range Encodings {
		vectors := append([][]byte{}, encoderTests...)
		vectors = append(vectors, encoder.TestPatterns()...)

		for _, data := range vectors {
			encoded, err := encoder.Encode(data)
			require.NoErrorf(t, err, "%v could not encode %q", encoder, data)
			decoded, err := encoder.Decode(encoded)
			require.NoErrorf(t, err, "%v could not decode %q", encoder, encoded)
			require.Equalf(t, data, decoded, "%v did not round-trip %q", encoder, data)
		}
	}
}

func Test_Encodings_CodesUnique(t *testing.T) {
	seen := map[byte]string{}
	for _, encoder := range Encodings {
		name, found := seen[encoder.Code()]
		require.Falsef(t, found, "Code %q taken by both %v and %v", encoder.Code(), name, encoder.Name())
		seen[encoder.Code()] = encoder.Name()
	}
}

func Test_FromCode(t *testing.T) {
	for _, encoder := range Encodings {
		found, err := FromCode(encoder.Code())
		require.NoError(t, err)
		require.Same(t, encoder, found)
	}

	_, err := FromCode('!')
	require.Error(t, err)
}

func Test_FromName(t *testing.T) {
	for _, encoder := range Encodings {
		found, err := FromName(encoder.Name())
		require.NoError(t, err)
		require.Same(t, encoder, found)
	}

	found, err := FromName("base64")
	require.NoError(t, err)
	require.Same(t, Base64Encoding, found)

	found, err = FromName("S")
	require.NoError(t, err)
	require.Same(t, Base64Encoding, found)

	_, err = FromName("base63")
	require.Error(t, err)
}
