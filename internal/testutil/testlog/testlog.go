package testlog

import (
	"testing"

	"github.com/danmuck/podctl/internal/logging"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Start configures test logging and returns a logger tagged with the test.
func Start(t *testing.T) zerolog.Logger {
	t.Helper()
	logging.ConfigureTests()
	l := log.Logger.With().Str("test", t.Name()).Logger()
	l.Info().Msg("test start")
	return l
}
