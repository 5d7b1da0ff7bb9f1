package logging

import (
	"io"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	EnvLogLevel     = "PODCTL_LOG_LEVEL"
	EnvLogTimestamp = "PODCTL_LOG_TIMESTAMP"
	EnvLogNoColor   = "PODCTL_LOG_NOCOLOR"
	EnvLogBypass    = "PODCTL_LOG_BYPASS"
)

type Profile int

const (
	ProfileRuntime Profile = iota
	ProfileTest
)

// Config is the resolved logging setup of a process.
type Config struct {
	Level     zerolog.Level
	Timestamp bool
	NoColor   bool
	// Bypass skips the console writer and emits raw JSON lines.
	Bypass bool
	Out    io.Writer
}

var configureOnce sync.Once

func ConfigureRuntime() {
	Configure(ProfileRuntime)
}

func ConfigureTests() {
	Configure(ProfileTest)
}

// Configure installs the global logger once per process.
func Configure(profile Profile) {
	configureOnce.Do(func() {
		cfg := defaultConfig(profile)
		applyEnvOverrides(&cfg)
		log.Logger = New(cfg)
		zerolog.SetGlobalLevel(cfg.Level)
	})
}

// New builds a logger from cfg without touching global state.
func New(cfg Config) zerolog.Logger {
	out := cfg.Out
	if out == nil {
		out = os.Stderr
	}
	if !cfg.Bypass {
		out = zerolog.ConsoleWriter{
			Out:        out,
			NoColor:    cfg.NoColor,
			TimeFormat: time.RFC3339,
		}
	}
	ctx := zerolog.New(out).Level(cfg.Level).With()
	if cfg.Timestamp {
		ctx = ctx.Timestamp()
	}
	return ctx.Logger()
}

// Logger returns the process logger scoped to a component.
func Logger(component string) zerolog.Logger {
	return log.Logger.With().Str("component", component).Logger()
}

func defaultConfig(profile Profile) Config {
	switch profile {
	case ProfileTest:
		return Config{Level: zerolog.DebugLevel, Timestamp: false}
	default:
		return Config{Level: zerolog.InfoLevel, Timestamp: true}
	}
}

func applyEnvOverrides(cfg *Config) {
	if lvl, ok := parseLevel(os.Getenv(EnvLogLevel)); ok {
		cfg.Level = lvl
	}
	if v, ok := parseBool(os.Getenv(EnvLogTimestamp)); ok {
		cfg.Timestamp = v
	}
	if v, ok := parseBool(os.Getenv(EnvLogNoColor)); ok {
		cfg.NoColor = v
	}
	if v, ok := parseBool(os.Getenv(EnvLogBypass)); ok {
		cfg.Bypass = v
	}
}

// ParseLevel maps a level name to a zerolog level.
func ParseLevel(raw string) (zerolog.Level, bool) {
	return parseLevel(raw)
}

func parseLevel(raw string) (zerolog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "":
		return zerolog.InfoLevel, false
	case "trace", "diagnostics":
		return zerolog.TraceLevel, true
	case "debug":
		return zerolog.DebugLevel, true
	case "info":
		return zerolog.InfoLevel, true
	case "warn", "warning":
		return zerolog.WarnLevel, true
	case "error":
		return zerolog.ErrorLevel, true
	case "disabled", "disable", "off", "none", "inactive":
		return zerolog.Disabled, true
	default:
		return zerolog.InfoLevel, false
	}
}

func parseBool(raw string) (bool, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return false, false
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, false
	}
	return v, true
}
