package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/danmuck/podctl/internal/config"
	"github.com/danmuck/podctl/internal/logging"
	"github.com/danmuck/podctl/internal/server"
	"github.com/spf13/pflag"
)

type cmdInit struct {
	force bool
}

func (cmd *cmdInit) help() *commandHelp {
	return &commandHelp{
		usage:   "init [options] [PATH]",
		summary: "Write a config template",
	}
}

func (cmd *cmdInit) flags(flags *pflag.FlagSet) {
	flags.BoolVar(&cmd.force, "force", false, "overwrite an existing file")
}

func (cmd *cmdInit) run(ctx context.Context, e *env, argv []string) int {
	path := config.DefaultFileName
	switch len(argv) {
	case 0:
	case 1:
		path = argv[0]
	default:
		return e.errorf("init takes at most one path")
	}
	if err := config.WriteTemplate(path, cmd.force); err != nil {
		return e.errorf("%v", err)
	}
	fmt.Fprintf(e.stdout, "wrote config template to %s\n", path)
	return 0
}

type cmdServe struct {
	addr string
}

func (cmd *cmdServe) help() *commandHelp {
	return &commandHelp{
		usage:   "serve [options]",
		summary: "Run the HTTP introspection service",
	}
}

func (cmd *cmdServe) flags(flags *pflag.FlagSet) {
	flags.StringVar(&cmd.addr, "addr", "", "listen address (default from config)")
}

func (cmd *cmdServe) run(ctx context.Context, e *env, argv []string) int {
	cfg, err := e.config()
	if err != nil {
		return e.errorf("%v", err)
	}
	if addr := strings.TrimSpace(cmd.addr); addr != "" {
		cfg.ListenAddr = addr
	}
	reg, err := cfg.Registry()
	if err != nil {
		return e.errorf("%v", err)
	}
	logger := logging.Logger("serve")
	logger.Info().Str("addr", cfg.ListenAddr).Strs("vocabulary", cfg.Vocabulary).Msg("podctl starting")
	if err := server.New(cfg, reg, logger).Serve(); err != nil {
		logger.Error().Err(err).Msg("podctl stopped")
		return 1
	}
	return 0
}
