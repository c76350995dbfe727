package encode

import (
	"bytes"
	"github.com/stretchr/testify/require"
	"io/ioutil"
	"os"
	"strings"
	"testing"
)

func Test_EncodeCommand_DefaultEncoding(t *testing.T) {
	out := &bytes.Buffer{}

	cmd := NewCommand()
	cmd.Output = out

	err := cmd.Execute([]string{"foobar"})
	require.NoError(t, err)
	require.Equal(t, "Zm9vYmFy\n", out.String())
}

func Test_EncodeCommand_Args(t *testing.T) {
	out := &bytes.Buffer{}

	cmd := NewCommand()
	cmd.Encoding = "base64"
	cmd.Output = out

	err := cmd.Execute([]string{"f", "foobar"})
	require.NoError(t, err)
	require.Equal(t, "Zg==\nZm9vYmFy\n", out.String())
}

func Test_EncodeCommand_Stdin(t *testing.T) {
	out := &bytes.Buffer{}

	cmd := NewCommand()
	cmd.Encoding = "base64"
	cmd.Input = strings.NewReader("foobar")
	cmd.Output = out

	err := cmd.Execute(nil)
	require.NoError(t, err)
	require.Equal(t, "Zm9vYmFy\n", out.String())
}

func Test_EncodeCommand_File(t *testing.T) {
	f, err := ioutil.TempFile("", "test")
	require.NoErrorf(t, err, "Could not create temp file: %v", err)
	defer os.Remove(f.Name())

	_, err = f.WriteString("foobar")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	name := f.Name()
	out := &bytes.Buffer{}

	cmd := NewCommand()
	cmd.Encoding = "base64"
	cmd.InputFile = &name
	cmd.Output = out

	err = cmd.Execute(nil)
	require.NoError(t, err)
	require.Equal(t, "Zm9vYmFy\n", out.String())
}

func Test_EncodeCommand_SelectByCodeAndName(t *testing.T) {
	for _, encoding := range []string{"base32", "Base32", "T"} {
		out := &bytes.Buffer{}

		cmd := NewCommand()
		cmd.Encoding = encoding
		cmd.Output = out

		err := cmd.Execute([]string{"foobar"})
		require.NoErrorf(t, err, "Could not encode with encoding %v", encoding)
		require.Equal(t, "mzxw4ytboi\n", out.String())
	}
}

func Test_EncodeCommand_UnknownEncoding(t *testing.T) {
	cmd := NewCommand()
	cmd.Encoding = "base1337"
	cmd.Output = &bytes.Buffer{}

	err := cmd.Execute([]string{"foobar"})
	require.Error(t, err)
}

func Test_EncodeCommand_FileAndArgs(t *testing.T) {
	name := "something.txt"

	cmd := NewCommand()
	cmd.Encoding = "base64"
	cmd.InputFile = &name
	cmd.Output = &bytes.Buffer{}

	err := cmd.Execute([]string{"foobar"})
	require.Error(t, err, "Mixing an input file and data arguments should not be allowed")
}
