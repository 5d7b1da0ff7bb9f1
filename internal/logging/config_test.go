package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"trace":   zerolog.TraceLevel,
		" DEBUG ": zerolog.DebugLevel,
		"warning": zerolog.WarnLevel,
		"off":     zerolog.Disabled,
		"error":   zerolog.ErrorLevel,
		"info":    zerolog.InfoLevel,
	}
	for in, want := range cases {
		got, ok := ParseLevel(in)
		if !ok || got != want {
			t.Fatalf("ParseLevel(%q) = %v, %v", in, got, ok)
		}
	}
	if _, ok := ParseLevel("loud"); ok {
		t.Fatalf("unknown level should not parse")
	}
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv(EnvLogLevel, "error")
	t.Setenv(EnvLogTimestamp, "false")
	t.Setenv(EnvLogNoColor, "true")
	t.Setenv(EnvLogBypass, "not-a-bool")

	cfg := defaultConfig(ProfileRuntime)
	applyEnvOverrides(&cfg)
	if cfg.Level != zerolog.ErrorLevel || cfg.Timestamp || !cfg.NoColor || cfg.Bypass {
		t.Fatalf("unexpected config after overrides: %+v", cfg)
	}
}

func TestNewBypassWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: zerolog.DebugLevel, Bypass: true, Out: &buf})
	l.Debug().Str("path", ".fields[0]").Msg("pod node error")
	if !strings.Contains(buf.String(), `"path":".fields[0]"`) {
		t.Fatalf("expected JSON line, got %q", buf.String())
	}

	buf.Reset()
	l = New(Config{Level: zerolog.WarnLevel, Bypass: true, Out: &buf})
	l.Info().Msg("hidden")
	if buf.Len() != 0 {
		t.Fatalf("info should be filtered at warn level, got %q", buf.String())
	}
}
