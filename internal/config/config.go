package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/danmuck/podctl/internal/pod"
	"github.com/danmuck/podctl/internal/pod/typeinfo"
	"github.com/rs/zerolog"
)

const (
	DefaultListenAddr = ":9400"
	DefaultFileName   = "podctl.toml"
)

// Config drives the decoder, the vocabulary and the introspection service.
type Config struct {
	MaxDepth    int
	Policy      pod.Policy
	Vocabulary  []string
	ListenAddr  string
	CorsOrigins []string
	Hexdump     bool
}

type fileConfig struct {
	MaxDepth    int      `toml:"max_depth"`
	Policy      string   `toml:"policy"`
	Vocabulary  []string `toml:"vocabulary"`
	ListenAddr  string   `toml:"listen_addr"`
	CorsOrigins []string `toml:"cors_origins"`
	Hexdump     bool     `toml:"hexdump"`
}

func Default() Config {
	return Config{
		MaxDepth:    pod.DefaultMaxDepth,
		Policy:      pod.CollectAll,
		ListenAddr:  DefaultListenAddr,
		CorsOrigins: []string{"http://localhost:3000"},
		Hexdump:     true,
	}
}

// Load reads path over the defaults. Only keys present in the file change
// the result. Relative vocabulary paths resolve against the file's directory.
func Load(path string) (Config, error) {
	cfg := Default()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("config load failed (%s): %w", path, err)
	}

	if meta.IsDefined("max_depth") {
		cfg.MaxDepth = raw.MaxDepth
	}
	if meta.IsDefined("policy") {
		p, err := pod.ParsePolicy(strings.TrimSpace(raw.Policy))
		if err != nil {
			return Config{}, fmt.Errorf("parse policy: %w", err)
		}
		cfg.Policy = p
	}
	if meta.IsDefined("vocabulary") {
		dir := filepath.Dir(path)
		cfg.Vocabulary = make([]string, 0, len(raw.Vocabulary))
		for _, v := range raw.Vocabulary {
			v = strings.TrimSpace(v)
			if v == "" {
				continue
			}
			if !filepath.IsAbs(v) {
				v = filepath.Join(dir, v)
			}
			cfg.Vocabulary = append(cfg.Vocabulary, v)
		}
	}
	if meta.IsDefined("listen_addr") {
		cfg.ListenAddr = strings.TrimSpace(raw.ListenAddr)
	}
	if meta.IsDefined("cors_origins") {
		cfg.CorsOrigins = normalizeOrigins(raw.CorsOrigins)
	}
	if meta.IsDefined("hexdump") {
		cfg.Hexdump = raw.Hexdump
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("config parse failed (%s): unknown key %q", path, undecoded[0].String())
	}
	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func Validate(cfg Config) error {
	if cfg.MaxDepth <= 0 {
		return fmt.Errorf("config max_depth must be positive, got %d", cfg.MaxDepth)
	}
	switch cfg.Policy {
	case pod.CollectAll, pod.AbortOnFirst:
	default:
		return fmt.Errorf("config policy invalid: %v", cfg.Policy)
	}
	if strings.TrimSpace(cfg.ListenAddr) == "" {
		return fmt.Errorf("config missing listen_addr")
	}
	return nil
}

// Registry builds the default vocabulary extended with the configured files.
func (c Config) Registry() (*typeinfo.Registry, error) {
	return typeinfo.LoadExtended(typeinfo.Default(), c.Vocabulary)
}

// DecoderOptions translates the decoder settings.
func (c Config) DecoderOptions(logger zerolog.Logger) []pod.Option {
	return []pod.Option{
		pod.WithMaxDepth(c.MaxDepth),
		pod.WithPolicy(c.Policy),
		pod.WithLogger(logger),
	}
}

func normalizeOrigins(in []string) []string {
	out := make([]string, 0, len(in))
	for _, origin := range in {
		v := strings.TrimSpace(origin)
		if v == "" {
			continue
		}
		out = append(out, v)
	}
	return out
}
