package pod

import (
	"errors"
	"fmt"
)

var (
	ErrMalformedLength  = errors.New("pod: malformed length")
	ErrUnsupportedKind  = errors.New("pod: unsupported basic kind")
	ErrRecursionLimit   = errors.New("pod: recursion limit exceeded")
	ErrNotScalar        = errors.New("pod: kind is not a scalar")
	ErrBuilderOpenFrame = errors.New("pod: builder has open containers")
	ErrBuilderNoFrame   = errors.New("pod: builder pop without open container")
	ErrBuilderMismatch  = errors.New("pod: builder element does not match container")
	ErrBuilderNesting   = errors.New("pod: builder cannot nest a container here")
)

// DecodeError reports a failure scoped to one node of a decoded tree.
type DecodeError struct {
	Path   string
	Offset int
	Type   Kind
	Reason string
	Err    error
}

func (e *DecodeError) Error() string {
	path := e.Path
	if path == "" {
		path = "."
	}
	if e.Reason == "" {
		return fmt.Sprintf("%v: path=%s offset=%d type=%s", e.Err, path, e.Offset, e.Type)
	}
	return fmt.Sprintf("%v: path=%s offset=%d type=%s: %s", e.Err, path, e.Offset, e.Type, e.Reason)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
