package util

import (
	"github.com/jessevdk/go-flags"
	log "github.com/sirupsen/logrus"
	"os"
)

const (
	// ErrGeneric is the exit code used for errors which don't carry one.
	ErrGeneric = 99
)

// MustErrorNilOrExit will check the provided argument. If it's `nil` it will
// simply return. If it's not `nil`, it will log the error as `log.FatalLevel`
// and exit immediately. The exit code is unwrapped from a `flags.Error`
// object; any other kind of error exits with the generic code 99. Asking for
// help is not an error and exits clean.
func MustErrorNilOrExit(err error) {
	if err == nil {
		return
	}

	if flagsError, ok := err.(*flags.Error); ok {
		if flagsError.Type == flags.ErrHelp {
			os.Exit(0)
		}

		log.StandardLogger().WithError(err).Logf(log.FatalLevel, "Error: %+v", err)
		log.Exit(int(flagsError.Type))
	} else {
		log.StandardLogger().WithError(err).Logf(log.FatalLevel, "Error: %+v", err)
		log.Exit(ErrGeneric)
	}

}
