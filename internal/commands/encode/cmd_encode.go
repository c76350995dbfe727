package encode

import (
	"fmt"
	"github.com/bokysan/baseace/internal/logging"
	"github.com/bokysan/baseace/internal/util/enc"
	"github.com/davecgh/go-spew/spew"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"io"
	"io/ioutil"
	"os"
)

// Command encodes data with one of the registered encoders. Each command line
// argument is encoded on its own; when no arguments are given, the data is
// taken from the input file or standard input instead.
type Command struct {
	Encoding  string  `json:"encoding" short:"e" long:"encoding" env:"ENCODING" description:"Encoding to use. Either a name or a one-letter code, see 'encoders' for the list. If not set, defaults to base64."`
	InputFile *string `json:"input"    short:"i" long:"input"    env:"INPUT"    description:"Read the data from a file instead of the arguments. Use '-' for standard input."`

	// Input and Output are the standard streams of the command. They may be
	// replaced when the command is driven programmatically (e.g. from tests).
	Input  io.Reader `json:"-"`
	Output io.Writer `json:"-"`
}

func NewCommand() *Command {
	return &Command{}
}

func (c *Command) String() string {
	return "Encode data"
}

//noinspection GoUnusedParameter
func (c *Command) Execute(args []string) error {
	logging.SetupLogging()

	if c.Encoding == "" {
		c.Encoding = "base64"
	}

	encoder, err := enc.FromName(c.Encoding)
	if err != nil {
		return errors.WithStack(err)
	}

	out := c.Output
	if out == nil {
		out = os.Stdout
	}

	inputs, err := c.data(args)
	if err != nil {
		return err
	}

	var errs error
	for _, data := range inputs {
		log.Tracef("Raw input:\n%s", spew.Sdump(data))
		encoded, err := encoder.Encode(data)
		if err != nil {
			errs = multierror.Append(errs, errors.Wrapf(err, "Could not encode %d bytes as %v", len(data), encoder.Name()))
			continue
		}
		if _, err := fmt.Fprintf(out, "%s\n", encoded); err != nil {
			return errors.WithStack(err)
		}
	}

	return errs
}

// data collects the units of work for the command. Each command line argument
// is one unit; with no arguments the input file (or standard input) is read
// whole and treated as a single unit.
func (c *Command) data(args []string) ([][]byte, error) {
	fromFile := c.InputFile != nil && len(*c.InputFile) > 0

	if fromFile && len(args) > 0 {
		return nil, errors.Errorf("Specify either an input file or data arguments, not both")
	}

	if len(args) > 0 {
		inputs := make([][]byte, 0, len(args))
		for _, arg := range args {
			inputs = append(inputs, []byte(arg))
		}
		return inputs, nil
	}

	if fromFile && *c.InputFile != "-" {
		data, err := ioutil.ReadFile(*c.InputFile)
		if err != nil {
			return nil, errors.Wrapf(err, "Could not read %s", *c.InputFile)
		}
		return [][]byte{data}, nil
	}

	in := c.Input
	if in == nil {
		in = os.Stdin
	}
	data, err := ioutil.ReadAll(in)
	if err != nil {
		return nil, errors.Wrapf(err, "Could not read standard input")
	}
	return [][]byte{data}, nil
}
