package main

import (
	"fmt"
	"github.com/bokysan/baseace/internal/args"
	"github.com/bokysan/baseace/internal/commands/decode"
	"github.com/bokysan/baseace/internal/commands/encode"
	"github.com/bokysan/baseace/internal/commands/encoders"
	"github.com/bokysan/baseace/internal/commands/version"
	baFlags "github.com/bokysan/baseace/internal/flags"
	"github.com/bokysan/baseace/internal/util"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	"os"
	"path"
)

const (
	// ErrConfigFileDoesNotExist is raised when configuration file cannot be found
	ErrConfigFileDoesNotExist = flags.ErrInvalidTag + 1
)

// BaseAce is the main executable
type BaseAce struct {
	parser *flags.Parser
}

// NewBaseAce will create a new instance of BaseAce and initialize the parser
func NewBaseAce() *BaseAce {
	executableFilename := os.Args[0]
	executablePath := path.Base(executableFilename)

	ba := &BaseAce{
		parser: flags.NewNamedParser(executablePath, flags.HelpFlag|flags.PrintErrors),
	}

	ba.setupGeneral()
	ba.setupVersion()
	ba.setupEncode()
	ba.setupDecode()
	ba.setupEncoders()

	return ba
}

// setupGeneral will configure general options
func (ba *BaseAce) setupGeneral() {
	if _, err := ba.parser.AddGroup("General", "General options", &args.General); err != nil {
		err = errors.WithStack(err)
		util.MustErrorNilOrExit(err)
	}
}

// setupVersion adds the `version` command
func (ba *BaseAce) setupVersion() {
	cmd := &version.Command{}
	_, err := ba.parser.AddCommand(
		"version",
		"Print the version",
		"Print the application version and exit",
		cmd,
	)
	util.MustErrorNilOrExit(err)
}

// setupEncode adds the `encode` command
func (ba *BaseAce) setupEncode() {
	cmd := encode.NewCommand()
	_, err := ba.parser.AddCommand(
		"encode",
		"Encode data",
		"Encode the given data (or a file, or standard input) with one of the registered encoders",
		cmd,
	)
	util.MustErrorNilOrExit(err)
}

// setupDecode adds the `decode` command
func (ba *BaseAce) setupDecode() {
	cmd := decode.NewCommand()
	_, err := ba.parser.AddCommand(
		"decode",
		"Decode data",
		"Decode the given data (or a file, or standard input) with one of the registered encoders",
		cmd,
	)
	util.MustErrorNilOrExit(err)
}

// setupEncoders adds the `encoders` command
func (ba *BaseAce) setupEncoders() {
	cmd := encoders.NewCommand()
	_, err := ba.parser.AddCommand(
		"encoders",
		"List encoders",
		"List the registered encoders together with their codes and expansion ratios",
		cmd,
	)
	util.MustErrorNilOrExit(err)
}

// main starts baseace and reads the configuration file
func main() {

	baseAce := NewBaseAce()
	args.General.ConfigurationFile = func(file string) error {
		if _, err := os.Stat(file); os.IsNotExist(err) {
			message := fmt.Sprintf("Configuration file %s does not exist.", file)
			util.MustErrorNilOrExit(&flags.Error{
				Type:    ErrConfigFileDoesNotExist,
				Message: message,
			})
		}

		yamlParser := baFlags.NewYamlParser(baseAce.parser)

		args.General.ConfigurationFilePath = file
		return yamlParser.ParseFile(file)
	}

	_, err := baseAce.parser.Parse()
	util.MustErrorNilOrExit(err)

}
