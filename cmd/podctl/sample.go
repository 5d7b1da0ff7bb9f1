package main

import (
	"context"
	"fmt"

	"github.com/danmuck/podctl/internal/pod/sample"
	"github.com/spf13/pflag"
)

type cmdSample struct {
	output string
}

func (cmd *cmdSample) help() *commandHelp {
	return &commandHelp{
		usage:   "sample [options] [NAME]",
		summary: "Write a sample POD, or list the samples",
	}
}

func (cmd *cmdSample) flags(flags *pflag.FlagSet) {
	flags.StringVarP(&cmd.output, "output", "o", "", "output file (default stdout)")
}

func (cmd *cmdSample) run(ctx context.Context, e *env, argv []string) int {
	switch len(argv) {
	case 0:
		for _, name := range sample.Names() {
			fmt.Fprintln(e.stdout, name)
		}
		return 0
	case 1:
	default:
		return e.errorf("sample takes at most one name")
	}
	data, err := sample.Build(argv[0])
	if err != nil {
		return e.errorf("%v", err)
	}
	return writeOutput(e, cmd.output, data)
}
