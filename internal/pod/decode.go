package pod

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/danmuck/podctl/internal/pod/typeinfo"
	"github.com/rs/zerolog"
)

// DefaultMaxDepth is the container nesting ceiling used when none is set.
const DefaultMaxDepth = 64

// Policy selects how the decoder reacts to a node error.
type Policy int

const (
	// CollectAll walks every sibling and reports every node error.
	CollectAll Policy = iota
	// AbortOnFirst stops descending after the first node error.
	AbortOnFirst
)

func (p Policy) String() string {
	switch p {
	case CollectAll:
		return "collect"
	case AbortOnFirst:
		return "abort"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// ParsePolicy maps a config or flag value to a Policy.
func ParsePolicy(s string) (Policy, error) {
	switch s {
	case "", "collect":
		return CollectAll, nil
	case "abort":
		return AbortOnFirst, nil
	}
	return CollectAll, fmt.Errorf("pod: unknown policy %q", s)
}

type Options struct {
	MaxDepth int
	Policy   Policy
	Logger   zerolog.Logger
}

type Option func(*Options)

func WithMaxDepth(depth int) Option {
	return func(o *Options) {
		if depth > 0 {
			o.MaxDepth = depth
		}
	}
}

func WithPolicy(p Policy) Option {
	return func(o *Options) {
		o.Policy = p
	}
}

// WithLogger sets the logger node errors are reported to at debug level.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// Decoder walks POD buffers against a fixed root scope. It holds no
// per-call state and is safe for concurrent use.
type Decoder struct {
	scope typeinfo.Scope
	opts  Options
}

func NewDecoder(scope typeinfo.Scope, opts ...Option) *Decoder {
	o := Options{
		MaxDepth: DefaultMaxDepth,
		Policy:   CollectAll,
		Logger:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return &Decoder{scope: scope, opts: o}
}

// Scope returns the decoder's root scope.
func (d *Decoder) Scope() typeinfo.Scope {
	return d.scope
}

func (d *Decoder) Options() Options {
	return d.opts
}

// Decode reads one complete value from the front of buf. Bytes after the
// value's body are ignored. The returned tree is always usable; the error
// joins every node error encountered (only the first under AbortOnFirst).
func (d *Decoder) Decode(buf []byte) (Node, error) {
	w := d.walker()
	if len(buf) < HeaderSize {
		n := Node{Body: buf}
		w.failf(&n, ErrMalformedLength, "header needs %d bytes, have %d", HeaderSize, len(buf))
		return n, w.err()
	}
	size := binary.LittleEndian.Uint32(buf[0:4])
	kind := Kind(binary.LittleEndian.Uint32(buf[4:8]))
	if uint64(size) > uint64(len(buf)-HeaderSize) {
		n := Node{Type: kind, Size: size, Offset: HeaderSize}
		w.failf(&n, ErrMalformedLength, "body of %d bytes exceeds buffer of %d", size, len(buf)-HeaderSize)
		return n, w.err()
	}
	n := w.value(d.scope, kind, size, buf[HeaderSize:HeaderSize+int(size)], HeaderSize, "", 0)
	return n, w.err()
}

// DecodeBody decodes a headerless body of the given kind, the way array
// elements and prop alternatives are stored.
func (d *Decoder) DecodeBody(kind Kind, body []byte) (Node, error) {
	w := d.walker()
	n := w.value(d.scope, kind, uint32(len(body)), body, 0, "", 0)
	return n, w.err()
}

func (d *Decoder) walker() *walker {
	return &walker{opts: d.opts}
}

// walker carries the state of one Decode call.
type walker struct {
	opts    Options
	errs    []error
	stopped bool
}

func (w *walker) err() error {
	return errors.Join(w.errs...)
}

func (w *walker) fail(n *Node, err error) {
	de := &DecodeError{Path: n.Path, Offset: n.Offset, Type: n.Type, Err: err}
	w.record(n, de)
}

func (w *walker) failf(n *Node, sentinel error, format string, args ...any) {
	de := &DecodeError{
		Path:   n.Path,
		Offset: n.Offset,
		Type:   n.Type,
		Reason: fmt.Sprintf(format, args...),
		Err:    sentinel,
	}
	w.record(n, de)
}

func (w *walker) record(n *Node, de *DecodeError) {
	n.Err = de
	w.errs = append(w.errs, de)
	w.opts.Logger.Debug().
		Str("path", displayPath(de.Path)).
		Int("offset", de.Offset).
		Stringer("type", de.Type).
		Err(de.Err).
		Msg("pod node error")
	if w.opts.Policy == AbortOnFirst {
		w.stopped = true
	}
}

// value decodes one body. off is the position of body in the top-level
// buffer.
func (w *walker) value(scope typeinfo.Scope, kind Kind, size uint32, body []byte, off int, path string, depth int) Node {
	n := Node{Type: kind, Size: size, Offset: off, Path: path, Body: body}
	if w.stopped {
		return n
	}
	if depth > w.opts.MaxDepth {
		w.failf(&n, ErrRecursionLimit, "depth %d exceeds %d", depth, w.opts.MaxDepth)
		return n
	}
	switch kind {
	case KindArray:
		w.array(scope, &n, depth)
	case KindStruct:
		w.structure(scope, &n, depth)
	case KindObject:
		w.object(scope, &n, depth)
	case KindProp:
		w.prop(scope, &n, depth)
	default:
		v, err := DecodeScalar(scope, kind, body)
		n.Value = v
		if err != nil {
			w.fail(&n, err)
		}
	}
	return n
}

// values peels complete, padded values from body until it is exhausted.
// base is the buffer position of body[0].
func (w *walker) values(scope typeinfo.Scope, parent *Node, body []byte, base int, field string, depth int) []Node {
	var out []Node
	le := binary.LittleEndian
	pos := 0
	for i := 0; pos < len(body) && !w.stopped; i++ {
		rest := len(body) - pos
		if rest < HeaderSize {
			w.failf(parent, ErrMalformedLength, "%d trailing bytes, short of a value header", rest)
			break
		}
		size := le.Uint32(body[pos : pos+4])
		kind := Kind(le.Uint32(body[pos+4 : pos+8]))
		extent := uint64(HeaderSize) + PaddedSize(size)
		if extent > uint64(rest) {
			w.failf(parent, ErrMalformedLength, "%s[%d] needs %d bytes, have %d", field, i, extent, rest)
			break
		}
		start := pos + HeaderSize
		child := w.value(scope, kind, size, body[start:start+int(size)], base+start, fmt.Sprintf("%s.%s[%d]", parent.Path, field, i), depth+1)
		out = append(out, child)
		pos += int(extent)
	}
	return out
}

func displayPath(path string) string {
	if path == "" {
		return "."
	}
	return path
}
