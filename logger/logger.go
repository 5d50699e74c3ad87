package logger

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Initialize sets up the global logger for the portal.
func Initialize() {
	output := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	log.Logger = zerolog.New(output).
		With().
		Timestamp().
		Str("service", "resume-portal").
		Logger()

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}

// SetDebug lowers the global log level for local development.
func SetDebug() {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
}

// Get returns the global logger
func Get() *zerolog.Logger {
	return &log.Logger
}
