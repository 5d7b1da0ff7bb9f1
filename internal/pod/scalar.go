package pod

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"

	"github.com/danmuck/podctl/internal/pod/typeinfo"
)

// Pointer bodies follow the producer's pointer width: {type u32, value u32}
// from a 32-bit producer, {type u32, pad u32, value u64} from a 64-bit one.
const (
	pointerBodyNarrow = 8
	pointerBodyWide   = 16
)

// DecodeScalar decodes the body of a non-container value. Id values and
// pointer types are resolved to names through scope. Container kinds return
// ErrNotScalar and unknown kinds return an Unhandled value together with
// ErrUnsupportedKind.
func DecodeScalar(scope typeinfo.Scope, kind Kind, body []byte) (Value, error) {
	if width, ok := kind.FixedWidth(); ok && len(body) != width {
		return nil, fmt.Errorf("%w: %s body is %d bytes, want %d", ErrMalformedLength, kind, len(body), width)
	}
	le := binary.LittleEndian
	switch kind {
	case KindNone:
		return None(body), nil
	case KindBool:
		return Bool(le.Uint32(body) != 0), nil
	case KindID:
		id := le.Uint32(body)
		return ID{Value: id, Name: scope.Name(id)}, nil
	case KindInt:
		return Int(int32(le.Uint32(body))), nil
	case KindLong:
		return Long(int64(le.Uint64(body))), nil
	case KindFloat:
		return Float(math.Float32frombits(le.Uint32(body))), nil
	case KindDouble:
		return Double(math.Float64frombits(le.Uint64(body))), nil
	case KindFd:
		return Fd(int32(le.Uint32(body))), nil
	case KindRectangle:
		return Rectangle{Width: le.Uint32(body[0:4]), Height: le.Uint32(body[4:8])}, nil
	case KindFraction:
		return Fraction{Num: le.Uint32(body[0:4]), Denom: le.Uint32(body[4:8])}, nil
	case KindString:
		if len(body) < 1 {
			return nil, fmt.Errorf("%w: empty string body", ErrMalformedLength)
		}
		if i := bytes.IndexByte(body, 0); i >= 0 {
			body = body[:i]
		}
		return String(body), nil
	case KindBytes:
		return Bytes(body), nil
	case KindBitmap:
		return Bitmap(body), nil
	case KindPointer:
		return decodePointer(scope, body)
	case KindArray, KindStruct, KindObject, KindProp:
		return nil, fmt.Errorf("%w: %s", ErrNotScalar, kind)
	}
	return Unhandled{Type: uint32(kind), Body: body}, fmt.Errorf("%w: type=%d", ErrUnsupportedKind, uint32(kind))
}

func decodePointer(scope typeinfo.Scope, body []byte) (Value, error) {
	le := binary.LittleEndian
	var p Pointer
	switch len(body) {
	case pointerBodyNarrow:
		p.Value = uint64(le.Uint32(body[4:8]))
		p.Width = 4
	case pointerBodyWide:
		p.Value = le.Uint64(body[8:16])
		p.Width = 8
	default:
		return nil, fmt.Errorf("%w: pointer body is %d bytes", ErrMalformedLength, len(body))
	}
	p.Type = le.Uint32(body[0:4])
	p.TypeName = scope.Root().Name(p.Type)
	return p, nil
}
