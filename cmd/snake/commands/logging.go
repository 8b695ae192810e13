package commands

import (
	"io"
	"os"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// setupLogging points logrus at the --log-file, or at fallback when no file
// was given, and returns a func that closes the file.
func setupLogging(fallback io.Writer) (func(), error) {
	level, err := log.ParseLevel(logLevel)
	if err != nil {
		return nil, errors.Wrap(err, "invalid log level")
	}
	log.SetLevel(level)

	if logFile == "" {
		log.SetOutput(fallback)
		return func() {}, nil
	}

	f, err := os.OpenFile(logFile, os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0644)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to open log file %s", logFile)
	}
	log.SetOutput(f)
	return func() {
		log.SetOutput(os.Stderr)
		if err := f.Close(); err != nil {
			log.WithError(err).Warn("failed to close log file")
		}
	}, nil
}
