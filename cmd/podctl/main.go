package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/danmuck/podctl/internal/config"
	"github.com/danmuck/podctl/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type command interface {
	help() *commandHelp
	flags(flags *pflag.FlagSet)
	run(ctx context.Context, env *env, argv []string) int
}

type commandHelp struct {
	usage   string
	summary string
}

// env carries the process streams and the global flags into a command.
type env struct {
	stdin      io.Reader
	stdout     io.Writer
	stderr     io.Writer
	configPath string
}

func (e *env) errorf(format string, args ...any) int {
	fmt.Fprintf(e.stderr, "podctl: "+format+"\n", args...)
	return 1
}

// config loads --config, or podctl.toml from the working directory when it
// exists, or the defaults.
func (e *env) config() (config.Config, error) {
	path := e.configPath
	if path == "" {
		if _, err := os.Stat(config.DefaultFileName); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return config.Default(), nil
			}
			return config.Config{}, err
		}
		path = config.DefaultFileName
	}
	return config.Load(path)
}

func newRootCommand(ctx context.Context, e *env, exit func(int)) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "podctl [options] COMMAND",
		Short: "Inspect SPA POD buffers and type vocabularies",
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}
	rootCmd.SetOut(e.stdout)
	rootCmd.SetErr(e.stderr)
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		fmt.Fprint(e.stderr, rootCmd.UsageString())
		exit(1)
		return nil
	}
	rootCmd.PersistentFlags().StringVar(&e.configPath, "config", "", "config file (default ./"+config.DefaultFileName+" when present)")

	commands := []command{
		&cmdDump{},
		&cmdTypes{},
		&cmdExport{},
		&cmdSample{},
		&cmdInit{},
		&cmdServe{},
	}
	for _, cmd := range commands {
		cmd := cmd
		help := cmd.help()
		cobraCmd := &cobra.Command{
			Use:   help.usage,
			Short: help.summary,
			RunE: func(_ *cobra.Command, args []string) error {
				exit(cmd.run(ctx, e, args))
				return nil
			},
		}
		rootCmd.AddCommand(cobraCmd)
		cmd.flags(cobraCmd.Flags())
	}
	return rootCmd
}

func main() {
	logging.ConfigureRuntime()
	ctx := context.Background()
	e := &env{stdin: os.Stdin, stdout: os.Stdout, stderr: os.Stderr}

	rootCmd := newRootCommand(ctx, e, os.Exit)
	if _, err := rootCmd.ExecuteC(); err != nil {
		os.Exit(1)
	}
}
