// Package dump renders decoded POD trees for humans and for the HTTP
// surface: an indented text layout written to a line Sink, a hex/ASCII
// dump of opaque bodies, and a structured View for JSON or YAML encoders.
package dump

import (
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
)

// Sink receives rendered lines. Implementations add the line terminator.
type Sink interface {
	Line(indent int, format string, args ...any)
}

// WriterSink writes lines to an io.Writer and keeps the first write error.
type WriterSink struct {
	w   io.Writer
	err error
}

func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

func (s *WriterSink) Line(indent int, format string, args ...any) {
	if s.err != nil {
		return
	}
	_, s.err = fmt.Fprintf(s.w, "%s%s\n", strings.Repeat(" ", indent), fmt.Sprintf(format, args...))
}

func (s *WriterSink) Err() error {
	return s.err
}

// LogSink forwards each line as one log event at a fixed level.
type LogSink struct {
	Logger zerolog.Logger
	Level  zerolog.Level
}

func (s LogSink) Line(indent int, format string, args ...any) {
	s.Logger.WithLevel(s.Level).Msg(strings.Repeat(" ", indent) + fmt.Sprintf(format, args...))
}

// Lines collects rendered lines in memory.
type Lines []string

func (l *Lines) Line(indent int, format string, args ...any) {
	*l = append(*l, strings.Repeat(" ", indent)+fmt.Sprintf(format, args...))
}

func (l Lines) String() string {
	if len(l) == 0 {
		return ""
	}
	return strings.Join(l, "\n") + "\n"
}
