// Package logger configures the global zerolog logger from CLI options.
package logger

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger holds logging options, embeddable as a go-flags option group.
type Logger struct {
	Level string `long:"log-level" env:"LOG_LEVEL" description:"Logging level" choice:"trace" choice:"debug" choice:"info" choice:"warn" choice:"error" default:"info"`
	JSON  bool   `long:"log-json"  env:"LOG_JSON"  description:"Log in JSON format instead of pretty console output"`
}

// Setup applies the options to the global zerolog logger.
func (l *Logger) Setup() {
	level, err := zerolog.ParseLevel(strings.ToLower(l.Level))
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if !l.JSON {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}
}
