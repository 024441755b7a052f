// Package logging configures the structured logger for the CLI.
package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

// New creates a logger writing to stderr. Debug mode lowers the level to
// debug; otherwise only warnings and errors surface. LOG_LEVEL overrides
// both when set.
func New(debug bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})

	log.SetLevel(logrus.WarnLevel)
	if debug {
		log.SetLevel(logrus.DebugLevel)
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		if lvl, err := logrus.ParseLevel(level); err == nil {
			log.SetLevel(lvl)
		}
	}

	return log
}
