package encoders

import (
	"fmt"
	"github.com/bokysan/baseace/internal/logging"
	"github.com/bokysan/baseace/internal/util/enc"
	"github.com/k0kubun/go-ansi"
	"github.com/pkg/errors"
	"io"
)

const (
	Bold     = "\x1b[1m"
	Reset    = "\x1b[0m"
	DarkGray = "\x1b[90m"
	White    = "\x1b[97m"
)

// Command lists the registered encoders, one line per encoder: the one-letter
// code, the name, the size expansion ratio and a sample of the encoded form
// of a probe string.
type Command struct {
	Probe string `json:"probe" short:"p" long:"probe" env:"PROBE" description:"Probe string to run through every encoder for the sample column. If not set, defaults to foobar."`

	// Output is the stream the listing is written to. It may be replaced when
	// the command is driven programmatically (e.g. from tests).
	Output io.Writer `json:"-"`
}

func NewCommand() *Command {
	return &Command{}
}

func (c *Command) String() string {
	return "List encoders"
}

//noinspection GoUnusedParameter
func (c *Command) Execute(args []string) error {
	logging.SetupLogging()

	if c.Probe == "" {
		c.Probe = "foobar"
	}

	out := c.Output
	if out == nil {
		out = ansi.NewAnsiStdout()
	}

	return c.print(out)
}

// print renders the encoder table to the given writer.
func (c *Command) print(out io.Writer) error {
	if _, err := fmt.Fprintf(out, Bold+DarkGray+" %-4s %-8s %6s  %s"+Reset+"\n", "CODE", "NAME", "RATIO", "SAMPLE"); err != nil {
		return errors.WithStack(err)
	}

	for _, e := range enc.Encodings {
		sample, err := e.Encode([]byte(c.Probe))
		if err != nil {
			return errors.Wrapf(err, "Could not encode the probe as %v", e.Name())
		}
		if _, err := fmt.Fprintf(out, DarkGray+" %-4c "+White+"%-8s %6.2f  %s"+Reset+"\n", e.Code(), e.Name(), e.Ratio(), sample); err != nil {
			return errors.WithStack(err)
		}
	}

	return nil
}
