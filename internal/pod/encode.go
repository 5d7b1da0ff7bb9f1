package pod

import (
	"encoding/binary"
	"fmt"
	"math"
)

// Builder produces POD buffers in the layout the decoder reads. Inside an
// array, values are written as bare bodies and the first one fixes the
// child header. Inside a prop, the first value is the main value and later
// values are written as bare alternative bodies. The first error latches and
// every later call is a no-op.
type Builder struct {
	buf    []byte
	frames []frame
	err    error
}

type frame struct {
	kind  Kind
	start int

	// array child header, or prop main value once written
	typed     bool
	childKind Kind
	childSize uint32
}

func NewBuilder() *Builder {
	return &Builder{buf: make([]byte, 0, 256)}
}

// Err returns the first error the builder latched.
func (b *Builder) Err() error {
	return b.err
}

// Finish returns the encoded buffer. Every pushed container must be popped.
func (b *Builder) Finish() ([]byte, error) {
	if b.err != nil {
		return nil, b.err
	}
	if len(b.frames) > 0 {
		return nil, fmt.Errorf("%w: %d open", ErrBuilderOpenFrame, len(b.frames))
	}
	return b.buf, nil
}

// Reset discards the buffer and any latched error.
func (b *Builder) Reset() {
	b.buf = b.buf[:0]
	b.frames = b.frames[:0]
	b.err = nil
}

func (b *Builder) None() { b.Primitive(KindNone, nil) }

func (b *Builder) Bool(v bool) {
	var x uint32
	if v {
		x = 1
	}
	b.Primitive(KindBool, le32(x))
}

func (b *Builder) ID(v uint32)     { b.Primitive(KindID, le32(v)) }
func (b *Builder) Int(v int32)     { b.Primitive(KindInt, le32(uint32(v))) }
func (b *Builder) Long(v int64)    { b.Primitive(KindLong, le64(uint64(v))) }
func (b *Builder) Float(v float32) { b.Primitive(KindFloat, le32(math.Float32bits(v))) }
func (b *Builder) Double(v float64) {
	b.Primitive(KindDouble, le64(math.Float64bits(v)))
}
func (b *Builder) Fd(v int32)      { b.Primitive(KindFd, le32(uint32(v))) }
func (b *Builder) Bytes(v []byte)  { b.Primitive(KindBytes, v) }
func (b *Builder) Bitmap(v []byte) { b.Primitive(KindBitmap, v) }

// String writes s with its NUL terminator.
func (b *Builder) String(s string) {
	body := make([]byte, len(s)+1)
	copy(body, s)
	b.Primitive(KindString, body)
}

func (b *Builder) Rectangle(width, height uint32) {
	body := make([]byte, 8)
	binary.LittleEndian.PutUint32(body[0:4], width)
	binary.LittleEndian.PutUint32(body[4:8], height)
	b.Primitive(KindRectangle, body)
}

func (b *Builder) Fraction(num, denom uint32) {
	body := make([]byte, 8)
	binary.LittleEndian.PutUint32(body[0:4], num)
	binary.LittleEndian.PutUint32(body[4:8], denom)
	b.Primitive(KindFraction, body)
}

// Pointer writes a pointer token with an 8-byte value.
func (b *Builder) Pointer(typ uint32, value uint64) {
	b.pointer(typ, value, 8)
}

// pointer writes the 32-bit layout when width is 4, else the 64-bit one.
func (b *Builder) pointer(typ uint32, value uint64, width int) {
	var body []byte
	if width == 4 {
		body = make([]byte, pointerBodyNarrow)
		binary.LittleEndian.PutUint32(body[4:8], uint32(value))
	} else {
		body = make([]byte, pointerBodyWide)
		binary.LittleEndian.PutUint64(body[8:16], value)
	}
	binary.LittleEndian.PutUint32(body[0:4], typ)
	b.Primitive(KindPointer, body)
}

// Primitive writes a value of any kind from its raw body.
func (b *Builder) Primitive(kind Kind, body []byte) {
	if b.err != nil {
		return
	}
	if f := b.top(); f != nil && b.bare(f) {
		if !f.typed {
			b.setChild(f, kind, uint32(len(body)))
		} else if f.childKind != kind || f.childSize != uint32(len(body)) {
			b.err = fmt.Errorf("%w: got %s/%d want %s/%d", ErrBuilderMismatch, kind, len(body), f.childKind, f.childSize)
			return
		}
		b.buf = append(b.buf, body...)
		return
	}
	b.buf = binary.LittleEndian.AppendUint32(b.buf, uint32(len(body)))
	b.buf = binary.LittleEndian.AppendUint32(b.buf, uint32(kind))
	b.buf = append(b.buf, body...)
	b.pad()
	b.settleMain(kind, uint32(len(body)))
}

// Raw appends bytes to the open container without a header.
func (b *Builder) Raw(p []byte) {
	if b.err != nil {
		return
	}
	b.buf = append(b.buf, p...)
}

func (b *Builder) PushStruct() {
	b.push(KindStruct, nil)
}

func (b *Builder) PushObject(typ, id uint32) {
	hdr := make([]byte, objectBodyHeaderSize)
	binary.LittleEndian.PutUint32(hdr[0:4], typ)
	binary.LittleEndian.PutUint32(hdr[4:8], id)
	b.push(KindObject, hdr)
}

func (b *Builder) PushProp(key uint32, flags PropFlags) {
	hdr := make([]byte, propBodyHeaderSize)
	binary.LittleEndian.PutUint32(hdr[0:4], key)
	binary.LittleEndian.PutUint16(hdr[4:6], uint16(flags))
	b.push(KindProp, hdr)
}

// PushArray opens an array whose child header is taken from the first
// element written.
func (b *Builder) PushArray() {
	b.push(KindArray, make([]byte, arrayBodyHeaderSize))
}

// PushArrayOf opens an array with a fixed child header, so an empty array
// still records its child type.
func (b *Builder) PushArrayOf(childSize uint32, childKind Kind) {
	b.PushArray()
	if f := b.top(); b.err == nil && f != nil {
		b.setChild(f, childKind, childSize)
	}
}

// Pop closes the innermost container and patches its size.
func (b *Builder) Pop() {
	if b.err != nil {
		return
	}
	if len(b.frames) == 0 {
		b.err = ErrBuilderNoFrame
		return
	}
	f := b.frames[len(b.frames)-1]
	b.frames = b.frames[:len(b.frames)-1]
	size := uint32(len(b.buf) - f.start - HeaderSize)
	binary.LittleEndian.PutUint32(b.buf[f.start:f.start+4], size)
	b.pad()
	b.settleMain(f.kind, size)
}

func (b *Builder) push(kind Kind, bodyHeader []byte) {
	if b.err != nil {
		return
	}
	if f := b.top(); f != nil && b.bare(f) {
		b.err = fmt.Errorf("%w: %s inside %s", ErrBuilderNesting, kind, f.kind)
		return
	}
	start := len(b.buf)
	b.buf = binary.LittleEndian.AppendUint32(b.buf, 0)
	b.buf = binary.LittleEndian.AppendUint32(b.buf, uint32(kind))
	b.buf = append(b.buf, bodyHeader...)
	b.frames = append(b.frames, frame{kind: kind, start: start})
}

func (b *Builder) top() *frame {
	if len(b.frames) == 0 {
		return nil
	}
	return &b.frames[len(b.frames)-1]
}

// bare reports whether values written into f drop their header.
func (b *Builder) bare(f *frame) bool {
	return f.kind == KindArray || (f.kind == KindProp && f.typed)
}

func (b *Builder) setChild(f *frame, kind Kind, size uint32) {
	f.typed = true
	f.childKind = kind
	f.childSize = size
	if f.kind == KindArray {
		hdr := b.buf[f.start+HeaderSize : f.start+HeaderSize+arrayBodyHeaderSize]
		binary.LittleEndian.PutUint32(hdr[0:4], size)
		binary.LittleEndian.PutUint32(hdr[4:8], uint32(kind))
	}
}

// settleMain records a just-written value as the main value of an open prop.
func (b *Builder) settleMain(kind Kind, size uint32) {
	if f := b.top(); f != nil && f.kind == KindProp && !f.typed {
		b.setChild(f, kind, size)
	}
}

func (b *Builder) pad() {
	for len(b.buf)%Alignment != 0 {
		b.buf = append(b.buf, 0)
	}
}

func le32(v uint32) []byte {
	return binary.LittleEndian.AppendUint32(nil, v)
}

func le64(v uint64) []byte {
	return binary.LittleEndian.AppendUint64(nil, v)
}

// Encode writes a decoded tree back through b. Containers nested where the
// builder only takes bare bodies are copied from their borrowed body.
func Encode(b *Builder, n Node) error {
	encodeNode(b, n)
	return b.Err()
}

func encodeNode(b *Builder, n Node) {
	if b.err != nil {
		return
	}
	if f := b.top(); f != nil && b.bare(f) && n.Type.Container() {
		b.Primitive(n.Type, n.Body)
		return
	}
	switch v := n.Value.(type) {
	case nil:
		b.Primitive(n.Type, n.Body)
	case None:
		b.Primitive(KindNone, v)
	case Bool:
		b.Bool(bool(v))
	case ID:
		b.ID(v.Value)
	case Int:
		b.Int(int32(v))
	case Long:
		b.Long(int64(v))
	case Float:
		b.Float(float32(v))
	case Double:
		b.Double(float64(v))
	case String:
		b.String(string(v))
	case Bytes:
		b.Bytes(v)
	case Bitmap:
		b.Bitmap(v)
	case Fd:
		b.Fd(int32(v))
	case Pointer:
		b.pointer(v.Type, v.Value, v.Width)
	case Rectangle:
		b.Rectangle(v.Width, v.Height)
	case Fraction:
		b.Fraction(v.Num, v.Denom)
	case Unhandled:
		b.Primitive(Kind(v.Type), v.Body)
	case Array:
		b.PushArrayOf(v.ChildSize, v.ChildType)
		for _, e := range v.Elements {
			encodeNode(b, e)
		}
		b.Pop()
	case Struct:
		b.PushStruct()
		for _, f := range v.Fields {
			encodeNode(b, f)
		}
		b.Pop()
	case Object:
		b.PushObject(v.Type, v.ID)
		for _, f := range v.Fields {
			encodeNode(b, f)
		}
		b.Pop()
	case Prop:
		b.PushProp(v.Key, v.Flags)
		if v.Value != nil {
			encodeNode(b, *v.Value)
		}
		for _, a := range v.Alternatives {
			encodeNode(b, a)
		}
		b.Raw(v.Unread)
		b.Pop()
	default:
		b.err = fmt.Errorf("%w: %T", ErrBuilderMismatch, n.Value)
	}
}
