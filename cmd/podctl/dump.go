package main

import (
	"context"
	"encoding/json"
	"io"
	"os"

	"github.com/danmuck/podctl/internal/logging"
	"github.com/danmuck/podctl/internal/observability"
	"github.com/danmuck/podctl/internal/pod"
	"github.com/danmuck/podctl/internal/pod/dump"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

type cmdDump struct {
	format   string
	hex      bool
	noHex    bool
	maxDepth int
	abort    bool
	log      bool
}

func (cmd *cmdDump) help() *commandHelp {
	return &commandHelp{
		usage:   "dump [options] [FILE|-]",
		summary: "Decode one POD value and print it",
	}
}

func (cmd *cmdDump) flags(flags *pflag.FlagSet) {
	flags.StringVar(&cmd.format, "format", "text", "output format: text|json|yaml")
	flags.BoolVar(&cmd.hex, "hex", false, "hex dump opaque bodies")
	flags.BoolVar(&cmd.noHex, "no-hex", false, "never hex dump opaque bodies")
	flags.IntVar(&cmd.maxDepth, "max-depth", 0, "nesting limit (default from config)")
	flags.BoolVar(&cmd.abort, "abort", false, "stop at the first malformed node")
	flags.BoolVar(&cmd.log, "log", false, "render text output through the logger")
}

func (cmd *cmdDump) run(ctx context.Context, e *env, argv []string) int {
	if len(argv) > 1 {
		return e.errorf("dump takes at most one input")
	}
	cfg, err := e.config()
	if err != nil {
		return e.errorf("%v", err)
	}
	if cmd.maxDepth > 0 {
		cfg.MaxDepth = cmd.maxDepth
	}
	if cmd.abort {
		cfg.Policy = pod.AbortOnFirst
	}
	if cmd.hex {
		cfg.Hexdump = true
	}
	if cmd.noHex {
		cfg.Hexdump = false
	}

	buf, err := readInput(e, argv)
	if err != nil {
		return e.errorf("%v", err)
	}
	reg, err := cfg.Registry()
	if err != nil {
		return e.errorf("%v", err)
	}

	logger := logging.Logger("dump")
	node, _ := pod.NewDecoder(reg.Root(), cfg.DecoderOptions(logger)...).Decode(buf)
	nodeErrs := node.Errors()
	observability.RecordDecode("cli", len(buf), nodeErrs)

	switch cmd.format {
	case "text":
		var sink dump.Sink
		if cmd.log {
			sink = dump.LogSink{Logger: logger, Level: zerolog.InfoLevel}
		} else {
			sink = dump.NewWriterSink(e.stdout)
		}
		dump.Printer{Sink: sink, Hexdump: cfg.Hexdump}.Node(0, node)
		if ws, ok := sink.(*dump.WriterSink); ok && ws.Err() != nil {
			return e.errorf("%v", ws.Err())
		}
	case "json":
		enc := json.NewEncoder(e.stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(dump.NewView(node)); err != nil {
			return e.errorf("%v", err)
		}
	case "yaml":
		enc := yaml.NewEncoder(e.stdout)
		if err := enc.Encode(dump.NewView(node)); err != nil {
			return e.errorf("%v", err)
		}
		if err := enc.Close(); err != nil {
			return e.errorf("%v", err)
		}
	default:
		return e.errorf("unknown format %q", cmd.format)
	}

	for _, nerr := range nodeErrs {
		e.errorf("%v", nerr)
	}
	if len(nodeErrs) > 0 {
		return 2
	}
	return 0
}

// readInput reads the named file, or stdin for "-" or no argument.
func readInput(e *env, argv []string) ([]byte, error) {
	if len(argv) == 0 || argv[0] == "-" {
		return io.ReadAll(e.stdin)
	}
	return os.ReadFile(argv[0])
}
