package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/danmuck/podctl/internal/pod/typeinfo"
	"github.com/spf13/pflag"
)

type cmdTypes struct {
	table string
}

func (cmd *cmdTypes) help() *commandHelp {
	return &commandHelp{
		usage:   "types [options] [TABLE|ID]",
		summary: "List a vocabulary table or resolve one id",
	}
}

func (cmd *cmdTypes) flags(flags *pflag.FlagSet) {
	flags.StringVar(&cmd.table, "table", "", "table to resolve ids in (default root)")
}

func (cmd *cmdTypes) run(ctx context.Context, e *env, argv []string) int {
	if len(argv) > 1 {
		return e.errorf("types takes at most one argument")
	}
	cfg, err := e.config()
	if err != nil {
		return e.errorf("%v", err)
	}
	reg, err := cfg.Registry()
	if err != nil {
		return e.errorf("%v", err)
	}

	scope := reg.Root()
	if cmd.table != "" {
		if scope, err = reg.Scope(cmd.table); err != nil {
			return e.errorf("%v", err)
		}
	}

	if len(argv) == 0 {
		printTable(e, reg, scope)
		return 0
	}
	if id, err := strconv.ParseUint(argv[0], 0, 32); err == nil {
		info, err := scope.Resolve(uint32(id))
		if err != nil {
			return e.errorf("%v", err)
		}
		printEntry(e, reg, info)
		return 0
	}
	named, err := reg.Scope(argv[0])
	if err != nil {
		return e.errorf("%v", err)
	}
	printTable(e, reg, named)
	return 0
}

func printTable(e *env, reg *typeinfo.Registry, scope typeinfo.Scope) {
	fmt.Fprintf(e.stdout, "%s\n", scope.TableName())
	for _, info := range scope.Entries() {
		printEntry(e, reg, info)
	}
}

func printEntry(e *env, reg *typeinfo.Registry, info typeinfo.Info) {
	line := fmt.Sprintf("  %#08x %s (%s)", info.ID, info.Name, reg.Root().Name(info.Type))
	if child, ok := reg.Table(info.Children); ok {
		line += " -> " + child.Name
	}
	fmt.Fprintln(e.stdout, line)
}

type cmdExport struct {
	format string
	output string
}

func (cmd *cmdExport) help() *commandHelp {
	return &commandHelp{
		usage:   "export [options]",
		summary: "Write the effective vocabulary as TOML or YAML",
	}
}

func (cmd *cmdExport) flags(flags *pflag.FlagSet) {
	flags.StringVar(&cmd.format, "format", "toml", "vocabulary format: toml|yaml")
	flags.StringVarP(&cmd.output, "output", "o", "", "output file (default stdout)")
}

func (cmd *cmdExport) run(ctx context.Context, e *env, argv []string) int {
	if len(argv) != 0 {
		return e.errorf("export takes no arguments")
	}
	cfg, err := e.config()
	if err != nil {
		return e.errorf("%v", err)
	}
	reg, err := cfg.Registry()
	if err != nil {
		return e.errorf("%v", err)
	}
	data, err := typeinfo.ExportFormat(typeinfo.Format(cmd.format), reg)
	if err != nil {
		return e.errorf("%v", err)
	}
	return writeOutput(e, cmd.output, data)
}

// writeOutput writes data to path, or to stdout when path is empty.
func writeOutput(e *env, path string, data []byte) int {
	if path == "" {
		if _, err := e.stdout.Write(data); err != nil {
			return e.errorf("%v", err)
		}
		return 0
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return e.errorf("%v", err)
	}
	return 0
}
