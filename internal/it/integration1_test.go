package it

import (
	"bytes"
	"github.com/bokysan/baseace/internal/args"
	"github.com/bokysan/baseace/internal/commands/decode"
	"github.com/bokysan/baseace/internal/commands/encode"
	baFlags "github.com/bokysan/baseace/internal/flags"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"io/ioutil"
	"os"
	"strings"
	"testing"
)

// newParser wires the given commands into a fresh parser the same way the
// main executable does, configuration file callback included.
func newParser(encodeCmd *encode.Command, decodeCmd *decode.Command) (*flags.Parser, error) {
	parser := flags.NewNamedParser("baseace", flags.HelpFlag|flags.PrintErrors)

	if _, err := parser.AddGroup("General", "General options", &args.General); err != nil {
		return nil, errors.WithStack(err)
	}
	if _, err := parser.AddCommand("encode", "Encode data", "Encode the given data", encodeCmd); err != nil {
		return nil, errors.WithStack(err)
	}
	if _, err := parser.AddCommand("decode", "Decode data", "Decode the given data", decodeCmd); err != nil {
		return nil, errors.WithStack(err)
	}

	args.General.ConfigurationFile = func(file string) error {
		yamlParser := baFlags.NewYamlParser(parser)
		args.General.ConfigurationFilePath = file
		return yamlParser.ParseFile(file)
	}

	return parser, nil
}

func Test_EncodeDecodeRoundTrip(t *testing.T) {
	encoded := &bytes.Buffer{}

	encodeCmd := encode.NewCommand()
	encodeCmd.Output = encoded

	parser, err := newParser(encodeCmd, decode.NewCommand())
	require.NoError(t, err)

	_, err = parser.ParseArgs([]string{"encode", "-e", "base91", "Hello, World!"})
	require.NoError(t, err)

	decoded := &bytes.Buffer{}

	decodeCmd := decode.NewCommand()
	decodeCmd.Output = decoded

	parser, err = newParser(encode.NewCommand(), decodeCmd)
	require.NoError(t, err)

	payload := strings.TrimRight(encoded.String(), "\n")
	_, err = parser.ParseArgs([]string{"decode", "-e", "base91", payload})
	require.NoError(t, err)

	require.Equal(t, "Hello, World!", decoded.String())
}

func Test_ConfigurationFile(t *testing.T) {
	f, err := ioutil.TempFile("", "config")
	require.NoErrorf(t, err, "Could not create temp file: %v", err)
	defer os.Remove(f.Name())

	_, err = f.WriteString("encode:\n  encoding: base32\n")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	out := &bytes.Buffer{}

	encodeCmd := encode.NewCommand()
	encodeCmd.Output = out

	parser, err := newParser(encodeCmd, decode.NewCommand())
	require.NoError(t, err)

	_, err = parser.ParseArgs([]string{"-c", f.Name(), "encode", "foobar"})
	require.NoError(t, err)

	require.Equal(t, "mzxw4ytboi\n", out.String(), "The encoding from the configuration file should be used")
}

func Test_UnknownCommand(t *testing.T) {
	parser, err := newParser(encode.NewCommand(), decode.NewCommand())
	require.NoError(t, err)

	_, err = parser.ParseArgs([]string{"transcode", "foobar"})
	require.Error(t, err, "Unknown commands should be rejected")
}

func Test_VerbosityFlag(t *testing.T) {
	out := &bytes.Buffer{}

	encodeCmd := encode.NewCommand()
	encodeCmd.Output = out

	parser, err := newParser(encodeCmd, decode.NewCommand())
	require.NoError(t, err)

	_, err = parser.ParseArgs([]string{"-vvvv", "encode", "foobar"})
	require.NoError(t, err)

	require.Equal(t, log.InfoLevel, log.GetLevel())
	require.Equal(t, "Zm9vYmFy\n", out.String())
}
