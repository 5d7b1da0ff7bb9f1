package pod

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"

	"github.com/danmuck/podctl/internal/pod/typeinfo"
)

func newTestDecoder(opts ...Option) *Decoder {
	return NewDecoder(typeinfo.Default().Root(), opts...)
}

func finish(t *testing.T, b *Builder) []byte {
	t.Helper()
	buf, err := b.Finish()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	return buf
}

func TestDecodeIntArrayPreservesOrder(t *testing.T) {
	b := NewBuilder()
	b.PushArray()
	b.Int(1)
	b.Int(2)
	b.Int(-5)
	b.Pop()
	buf := finish(t, b)

	n, err := newTestDecoder().Decode(buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	arr, ok := n.Value.(Array)
	if !ok {
		t.Fatalf("expected Array, got %T", n.Value)
	}
	if arr.ChildSize != 4 || arr.ChildType != KindInt || arr.ChildName != "Spa:Int" {
		t.Fatalf("unexpected child header: %+v", arr)
	}
	want := []Int{1, 2, -5}
	if len(arr.Elements) != len(want) {
		t.Fatalf("expected %d elements, got %d", len(want), len(arr.Elements))
	}
	for i, e := range arr.Elements {
		if e.Value != want[i] {
			t.Fatalf("element %d: got %v want %v", i, e.Value, want[i])
		}
		if e.Path != ".elements["+string(rune('0'+i))+"]" {
			t.Fatalf("element %d path: %q", i, e.Path)
		}
	}
}

func TestDecodeArrayRemainderIsMalformed(t *testing.T) {
	b := NewBuilder()
	b.PushArray()
	b.Int(1)
	b.Raw([]byte{0xaa, 0xbb})
	b.Pop()
	buf := finish(t, b)

	_, err := newTestDecoder().Decode(buf)
	if !errors.Is(err, ErrMalformedLength) {
		t.Fatalf("expected ErrMalformedLength, got %v", err)
	}
}

func TestDecodePropUnsetReadsNothingPastHeader(t *testing.T) {
	garbage := []byte{0xff, 0xff, 0xff, 0xff, 0x13, 0, 0, 0}
	b := NewBuilder()
	b.PushProp(typeinfo.FormatAudioRate, PropUnset|PropFlags(RangeMinMax))
	b.Raw(garbage)
	b.Pop()
	buf := finish(t, b)

	n, err := newTestDecoder().Decode(buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	p := n.Value.(Prop)
	if !p.Unset() || p.Value != nil {
		t.Fatalf("expected unset prop with no value, got %+v", p)
	}
	if len(p.Alternatives) != 0 {
		t.Fatalf("unset prop decoded %d alternatives", len(p.Alternatives))
	}
	if !bytes.Equal(p.Unread, garbage) {
		t.Fatalf("unread bytes: got %x want %x", p.Unread, garbage)
	}
}

func TestDecodePropMinMaxConsumesTwoAlternatives(t *testing.T) {
	trailing := []byte{0xde, 0xad, 0xbe, 0xef}
	b := NewBuilder()
	b.PushProp(typeinfo.FormatAudioRate, PropFlags(RangeMinMax))
	b.Int(10)
	b.Int(0)
	b.Int(100)
	b.Raw(trailing)
	b.Pop()
	buf := finish(t, b)

	n, err := newTestDecoder().Decode(buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	p := n.Value.(Prop)
	if p.Value == nil || p.Value.Value != Int(10) {
		t.Fatalf("main value: %+v", p.Value)
	}
	if len(p.Alternatives) != 2 {
		t.Fatalf("expected 2 alternatives, got %d", len(p.Alternatives))
	}
	lo, ok := p.Min()
	if !ok || lo.Value != Int(0) {
		t.Fatalf("min: %+v", lo)
	}
	hi, ok := p.Max()
	if !ok || hi.Value != Int(100) {
		t.Fatalf("max: %+v", hi)
	}
	if _, ok := p.Step(); ok {
		t.Fatalf("minmax prop reported a step")
	}
	if !bytes.Equal(p.Unread, trailing) {
		t.Fatalf("trailing bytes: got %x want %x", p.Unread, trailing)
	}
}

func TestDecodePropStepNeedsThreeAlternatives(t *testing.T) {
	b := NewBuilder()
	b.PushProp(1, PropFlags(RangeStep))
	b.Int(10)
	b.Int(0)
	b.Int(100)
	b.Pop()
	buf := finish(t, b)

	_, err := newTestDecoder().Decode(buf)
	if !errors.Is(err, ErrMalformedLength) {
		t.Fatalf("expected ErrMalformedLength, got %v", err)
	}
}

func TestDecodePropEnumIsOpenEnded(t *testing.T) {
	b := NewBuilder()
	b.PushProp(typeinfo.FormatAudioFormat, PropFlags(RangeEnum))
	b.ID(typeinfo.AudioFormatS16LE)
	b.ID(typeinfo.AudioFormatS16LE)
	b.ID(typeinfo.AudioFormatF32LE)
	b.ID(typeinfo.AudioFormatS32LE)
	b.Pop()
	buf := finish(t, b)

	format, err := typeinfo.Default().Scope(typeinfo.ParamObjectBase + "Format")
	if err != nil {
		t.Fatalf("scope: %v", err)
	}
	n, err := NewDecoder(format).Decode(buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	p := n.Value.(Prop)
	if p.KeyName != typeinfo.FormatAudioBase+"format" {
		t.Fatalf("key name: %q", p.KeyName)
	}
	if len(p.Alternatives) != 3 {
		t.Fatalf("expected 3 alternatives, got %d", len(p.Alternatives))
	}
	last := p.Alternatives[2].Value.(ID)
	if last.Name != typeinfo.AudioFormatBase+"S32LE" {
		t.Fatalf("alternative resolved to %q", last.Name)
	}
}

func TestDecodePropFlagsAlternativesStayRaw(t *testing.T) {
	b := NewBuilder()
	b.PushProp(1, PropFlags(RangeFlags))
	b.Int(3)
	b.Int(1)
	b.Int(2)
	b.Pop()
	buf := finish(t, b)

	n, err := newTestDecoder().Decode(buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	p := n.Value.(Prop)
	if len(p.Alternatives) != 0 || len(p.Unread) != 8 {
		t.Fatalf("flags alternatives should stay raw: alts=%d unread=%d", len(p.Alternatives), len(p.Unread))
	}
}

func TestDecodeObjectResolvesKindAndID(t *testing.T) {
	b := NewBuilder()
	b.PushObject(typeinfo.TypeObjectFormat, typeinfo.ParamEnumFormat)
	b.PushProp(typeinfo.FormatMediaType, 0)
	b.ID(typeinfo.MediaTypeAudio)
	b.Pop()
	b.Pop()
	buf := finish(t, b)

	n, err := newTestDecoder().Decode(buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	obj := n.Value.(Object)
	if typeinfo.ShortName(obj.TypeName) != "Format" {
		t.Fatalf("object type name: %q", obj.TypeName)
	}
	if typeinfo.ShortName(obj.IDName) != "EnumFormat" {
		t.Fatalf("object id name: %q", obj.IDName)
	}
	if len(obj.Fields) != 1 {
		t.Fatalf("expected 1 field, got %d", len(obj.Fields))
	}
	p := obj.Fields[0].Value.(Prop)
	if p.KeyName != typeinfo.FormatBase+"mediaType" {
		t.Fatalf("key name: %q", p.KeyName)
	}
	id := p.Value.Value.(ID)
	if id.Name != typeinfo.MediaTypeBase+"audio" {
		t.Fatalf("media type resolved to %q", id.Name)
	}
}

func TestDecodeObjectUnknownIDDegrades(t *testing.T) {
	b := NewBuilder()
	b.PushObject(typeinfo.TypeObjectFormat, 0x7777)
	b.PushProp(0x9999, 0)
	b.Int(1)
	b.Pop()
	b.Pop()
	buf := finish(t, b)

	n, err := newTestDecoder().Decode(buf)
	if err != nil {
		t.Fatalf("unknown identifiers must not error: %v", err)
	}
	obj := n.Value.(Object)
	if obj.IDName != typeinfo.UnknownName {
		t.Fatalf("expected placeholder id name, got %q", obj.IDName)
	}
	p := obj.Fields[0].Value.(Prop)
	if p.KeyName != typeinfo.UnknownName || p.Value.Value != Int(1) {
		t.Fatalf("unknown key should still decode its value: %+v", p)
	}
}

func TestDecodeObjectUnknownTypeDegrades(t *testing.T) {
	b := NewBuilder()
	b.PushObject(0x4ffff, 1)
	b.Pop()
	buf := finish(t, b)

	n, err := newTestDecoder().Decode(buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	obj := n.Value.(Object)
	if obj.TypeName != typeinfo.UnknownName || obj.IDName != typeinfo.UnknownName {
		t.Fatalf("expected placeholder names, got %+v", obj)
	}
}

func buildTupleStruct(t *testing.T) []byte {
	t.Helper()
	b := NewBuilder()
	b.PushStruct()
	b.Int(1)
	b.String("x")
	b.Bool(true)
	b.Pop()
	return finish(t, b)
}

func TestDecodeStructConsumesExactSize(t *testing.T) {
	buf := buildTupleStruct(t)
	if got := binary.LittleEndian.Uint32(buf[0:4]); got != 48 {
		t.Fatalf("expected struct size 48, got %d", got)
	}

	n, err := newTestDecoder().Decode(buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	st := n.Value.(Struct)
	if len(st.Fields) != 3 {
		t.Fatalf("expected 3 fields, got %d", len(st.Fields))
	}
	if st.Fields[0].Value != Int(1) || st.Fields[1].Value != String("x") || st.Fields[2].Value != Bool(true) {
		t.Fatalf("unexpected fields: %+v", st.Fields)
	}
}

func TestDecodeStructOneByteShortIsMalformed(t *testing.T) {
	buf := buildTupleStruct(t)
	binary.LittleEndian.PutUint32(buf[0:4], 47)

	n, err := newTestDecoder().Decode(buf)
	if !errors.Is(err, ErrMalformedLength) {
		t.Fatalf("expected ErrMalformedLength, got %v", err)
	}
	var de *DecodeError
	if !errors.As(err, &de) || de.Path != "" || de.Type != KindStruct {
		t.Fatalf("error should be scoped to the struct: %#v", de)
	}
	if !errors.Is(n.Err, ErrMalformedLength) {
		t.Fatalf("struct node should carry the error, got %v", n.Err)
	}
	if got := len(n.Value.(Struct).Fields); got != 2 {
		t.Fatalf("expected 2 complete fields before the short one, got %d", got)
	}
}

func TestDecodeUnknownLeafKeepsSiblings(t *testing.T) {
	b := NewBuilder()
	b.PushStruct()
	b.Int(1)
	b.Primitive(Kind(0xffff), []byte{1, 2, 3, 4})
	b.Int(2)
	b.Pop()
	buf := finish(t, b)

	n, err := newTestDecoder().Decode(buf)
	if !errors.Is(err, ErrUnsupportedKind) {
		t.Fatalf("expected ErrUnsupportedKind, got %v", err)
	}
	st := n.Value.(Struct)
	if len(st.Fields) != 3 {
		t.Fatalf("expected 3 fields, got %d", len(st.Fields))
	}
	if !st.Fields[1].Unhandled() {
		t.Fatalf("expected unhandled middle field, got %T", st.Fields[1].Value)
	}
	if st.Fields[2].Value != Int(2) || st.Fields[2].Err != nil {
		t.Fatalf("sibling after unknown leaf: %+v", st.Fields[2])
	}
	var de *DecodeError
	if !errors.As(err, &de) || de.Path != ".fields[1]" {
		t.Fatalf("unexpected error scope: %v", err)
	}
	if errs := n.Errors(); len(errs) != 1 {
		t.Fatalf("expected 1 node error, got %d", len(errs))
	}
}

func TestDecodePolicyAbortOnFirst(t *testing.T) {
	b := NewBuilder()
	b.PushStruct()
	b.Primitive(Kind(0xfff0), nil)
	b.Primitive(Kind(0xfff1), nil)
	b.Int(7)
	b.Pop()
	buf := finish(t, b)

	n, err := newTestDecoder().Decode(buf)
	if got := len(n.Errors()); got != 2 || err == nil {
		t.Fatalf("collect policy: expected 2 node errors, got %d (%v)", got, err)
	}

	n, err = newTestDecoder(WithPolicy(AbortOnFirst)).Decode(buf)
	if !errors.Is(err, ErrUnsupportedKind) {
		t.Fatalf("expected ErrUnsupportedKind, got %v", err)
	}
	if got := len(n.Errors()); got != 1 {
		t.Fatalf("abort policy: expected 1 node error, got %d", got)
	}
	if got := len(n.Value.(Struct).Fields); got != 1 {
		t.Fatalf("abort policy should stop after the first field, got %d", got)
	}
}

func TestDecodeFixedWidthMismatchIsMalformed(t *testing.T) {
	b := NewBuilder()
	b.Primitive(KindInt, []byte{1, 2})
	buf := finish(t, b)

	n, err := newTestDecoder().Decode(buf)
	if !errors.Is(err, ErrMalformedLength) {
		t.Fatalf("expected ErrMalformedLength, got %v", err)
	}
	if n.Value != nil {
		t.Fatalf("short int should not decode a value, got %v", n.Value)
	}
}

func TestDecodeRecursionLimit(t *testing.T) {
	const depth = 70
	b := NewBuilder()
	for i := 0; i < depth; i++ {
		b.PushStruct()
	}
	b.Int(1)
	for i := 0; i < depth; i++ {
		b.Pop()
	}
	buf := finish(t, b)

	_, err := newTestDecoder().Decode(buf)
	if !errors.Is(err, ErrRecursionLimit) {
		t.Fatalf("expected ErrRecursionLimit, got %v", err)
	}
	if _, err := newTestDecoder(WithMaxDepth(depth + 1)).Decode(buf); err != nil {
		t.Fatalf("raised limit: %v", err)
	}
}

func TestDecodeShortBuffer(t *testing.T) {
	_, err := newTestDecoder().Decode([]byte{8, 0, 0})
	if !errors.Is(err, ErrMalformedLength) {
		t.Fatalf("expected ErrMalformedLength, got %v", err)
	}

	head := make([]byte, HeaderSize)
	binary.LittleEndian.PutUint32(head[0:4], 4)
	binary.LittleEndian.PutUint32(head[4:8], uint32(KindInt))
	_, err = newTestDecoder().Decode(head)
	if !errors.Is(err, ErrMalformedLength) {
		t.Fatalf("expected ErrMalformedLength for truncated body, got %v", err)
	}
}

func TestDecodeBodyHeaderless(t *testing.T) {
	body := make([]byte, 8)
	binary.LittleEndian.PutUint32(body[0:4], 30000)
	binary.LittleEndian.PutUint32(body[4:8], 1001)
	n, err := newTestDecoder().DecodeBody(KindFraction, body)
	if err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if n.Value != (Fraction{Num: 30000, Denom: 1001}) {
		t.Fatalf("unexpected fraction: %+v", n.Value)
	}
}

func TestDecodeScalarRejectsContainers(t *testing.T) {
	_, err := DecodeScalar(typeinfo.Default().Root(), KindStruct, nil)
	if !errors.Is(err, ErrNotScalar) {
		t.Fatalf("expected ErrNotScalar, got %v", err)
	}
}

func TestDecodePointerResolvesType(t *testing.T) {
	b := NewBuilder()
	b.Pointer(typeinfo.TypePointerBuffer, 0xfeed)
	buf := finish(t, b)

	n, err := newTestDecoder().Decode(buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	p := n.Value.(Pointer)
	if p.TypeName != typeinfo.PointerBase+"Buffer" || p.Value != 0xfeed || p.Width != 8 {
		t.Fatalf("unexpected pointer: %+v", p)
	}
}

func buildEveryKind(t *testing.T) []byte {
	t.Helper()
	b := NewBuilder()
	b.PushStruct()
	b.None()
	b.Bool(true)
	b.ID(typeinfo.TypeInt)
	b.Int(-42)
	b.Long(-1 << 40)
	b.Float(1.5)
	b.Double(-2.25)
	b.String("hello")
	b.Bytes([]byte{1, 2, 3})
	b.Bitmap([]byte{0xf0, 0x0f})
	b.Fd(3)
	b.Rectangle(1920, 1080)
	b.Fraction(30000, 1001)
	b.Pointer(typeinfo.TypePointerMeta, 0xdeadbeef)
	b.PushArray()
	b.Long(1)
	b.Long(2)
	b.Pop()
	b.PushArrayOf(4, KindInt)
	b.Pop()
	b.PushObject(typeinfo.TypeObjectFormat, typeinfo.ParamEnumFormat)
	b.PushProp(typeinfo.FormatMediaType, 0)
	b.ID(typeinfo.MediaTypeAudio)
	b.Pop()
	b.PushProp(typeinfo.FormatAudioRate, PropFlags(RangeEnum))
	b.Int(48000)
	b.Int(44100)
	b.Int(48000)
	b.Pop()
	b.PushProp(typeinfo.FormatAudioChannels, PropFlags(RangeStep)|PropOptional)
	b.Int(2)
	b.Int(1)
	b.Int(8)
	b.Int(1)
	b.Pop()
	b.PushProp(typeinfo.FormatAudioFlags, PropUnset)
	b.Pop()
	b.Pop()
	b.PushProp(1, 0)
	b.PushStruct()
	b.String("nested")
	b.Pop()
	b.Pop()
	b.Pop()
	return finish(t, b)
}

func TestRoundTripEveryKind(t *testing.T) {
	buf := buildEveryKind(t)

	n, err := newTestDecoder().Decode(buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	b := NewBuilder()
	if err := Encode(b, n); err != nil {
		t.Fatalf("encode: %v", err)
	}
	out := finish(t, b)
	if !bytes.Equal(buf, out) {
		t.Fatalf("round-trip mismatch:\n in=%x\nout=%x", buf, out)
	}
}

func TestRoundTripPreservesUnhandled(t *testing.T) {
	b := NewBuilder()
	b.PushStruct()
	b.Primitive(Kind(0xffff), []byte{9, 8, 7})
	b.Int(1)
	b.Pop()
	buf := finish(t, b)

	n, _ := newTestDecoder().Decode(buf)
	rb := NewBuilder()
	if err := Encode(rb, n); err != nil {
		t.Fatalf("encode: %v", err)
	}
	if out := finish(t, rb); !bytes.Equal(buf, out) {
		t.Fatalf("round-trip mismatch:\n in=%x\nout=%x", buf, out)
	}
}

func TestBuilderErrors(t *testing.T) {
	b := NewBuilder()
	b.Pop()
	if _, err := b.Finish(); !errors.Is(err, ErrBuilderNoFrame) {
		t.Fatalf("expected ErrBuilderNoFrame, got %v", err)
	}

	b = NewBuilder()
	b.PushStruct()
	if _, err := b.Finish(); !errors.Is(err, ErrBuilderOpenFrame) {
		t.Fatalf("expected ErrBuilderOpenFrame, got %v", err)
	}

	b = NewBuilder()
	b.PushArray()
	b.Int(1)
	b.Long(2)
	b.Pop()
	if _, err := b.Finish(); !errors.Is(err, ErrBuilderMismatch) {
		t.Fatalf("expected ErrBuilderMismatch, got %v", err)
	}

	b = NewBuilder()
	b.PushArray()
	b.PushStruct()
	if !errors.Is(b.Err(), ErrBuilderNesting) {
		t.Fatalf("expected ErrBuilderNesting, got %v", b.Err())
	}
}

func TestWalkVisitsPropValueBeforeAlternatives(t *testing.T) {
	b := NewBuilder()
	b.PushProp(1, PropFlags(RangeMinMax))
	b.Int(5)
	b.Int(1)
	b.Int(9)
	b.Pop()
	buf := finish(t, b)

	n, err := newTestDecoder().Decode(buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	var paths []string
	Walk(n, func(c Node) bool {
		paths = append(paths, c.Path)
		return true
	})
	want := []string{"", ".value", ".alternatives[0]", ".alternatives[1]"}
	if len(paths) != len(want) {
		t.Fatalf("paths: %v", paths)
	}
	for i := range want {
		if paths[i] != want[i] {
			t.Fatalf("paths: got %v want %v", paths, want)
		}
	}
}

func TestDecodeOffsetsPointIntoBuffer(t *testing.T) {
	buf := buildEveryKind(t)
	n, err := newTestDecoder().Decode(buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	Walk(n, func(c Node) bool {
		end := c.Offset + len(c.Body)
		if end > len(buf) || !bytes.Equal(buf[c.Offset:end], c.Body) {
			t.Fatalf("node %q offset %d does not locate its body", c.Path, c.Offset)
		}
		return true
	})
}

func TestPolicyParse(t *testing.T) {
	for in, want := range map[string]Policy{"": CollectAll, "collect": CollectAll, "abort": AbortOnFirst} {
		got, err := ParsePolicy(in)
		if err != nil || got != want {
			t.Fatalf("ParsePolicy(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParsePolicy("strict"); err == nil {
		t.Fatalf("expected error for unknown policy")
	}
}

// expectContainerMalformed checks that the only error is a length error on
// the top-level container of kind k.
func expectContainerMalformed(t *testing.T, n Node, err error, k Kind) {
	t.Helper()
	if !errors.Is(err, ErrMalformedLength) {
		t.Fatalf("expected ErrMalformedLength, got %v", err)
	}
	var de *DecodeError
	if !errors.As(err, &de) || de.Path != "" || de.Type != k {
		t.Fatalf("error should be scoped to the %s: %#v", k, de)
	}
	if !errors.Is(n.Err, ErrMalformedLength) {
		t.Fatalf("%s node should carry the error, got %v", k, n.Err)
	}
}

func TestDecodeStructPartialHeaderIsMalformed(t *testing.T) {
	b := NewBuilder()
	b.PushStruct()
	b.Int(1)
	b.Raw([]byte{1, 2, 3, 4})
	b.Pop()
	buf := finish(t, b)

	n, err := newTestDecoder().Decode(buf)
	expectContainerMalformed(t, n, err, KindStruct)
	if got := len(n.Value.(Struct).Fields); got != 1 {
		t.Fatalf("expected the complete field to survive, got %d fields", got)
	}
}

func TestDecodePropEnumRemainderIsMalformed(t *testing.T) {
	b := NewBuilder()
	b.PushProp(typeinfo.FormatAudioRate, PropFlags(RangeEnum))
	b.Int(48000)
	b.Raw([]byte{0x44, 0xac, 0, 0, 0xaa, 0xbb})
	b.Pop()
	buf := finish(t, b)

	n, err := newTestDecoder().Decode(buf)
	expectContainerMalformed(t, n, err, KindProp)
	p := n.Value.(Prop)
	if p.Value == nil || p.Value.Value != Int(48000) {
		t.Fatalf("main value should still decode, got %+v", p.Value)
	}
	if len(p.Alternatives) != 0 {
		t.Fatalf("expected no alternatives, got %d", len(p.Alternatives))
	}
}

func TestDecodeArrayZeroChildSizeIsMalformed(t *testing.T) {
	b := NewBuilder()
	b.PushArrayOf(0, KindInt)
	b.Raw([]byte{1, 0, 0, 0})
	b.Pop()
	buf := finish(t, b)

	n, err := newTestDecoder().Decode(buf)
	expectContainerMalformed(t, n, err, KindArray)
	if got := len(n.Value.(Array).Elements); got != 0 {
		t.Fatalf("expected no elements, got %d", got)
	}
}

func TestDecodePointerNarrowLayout(t *testing.T) {
	body := make([]byte, 8)
	binary.LittleEndian.PutUint32(body[0:4], typeinfo.TypePointerDict)
	binary.LittleEndian.PutUint32(body[4:8], 0xcafe)
	b := NewBuilder()
	b.Primitive(KindPointer, body)
	buf := finish(t, b)

	n, err := newTestDecoder().Decode(buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	p := n.Value.(Pointer)
	if p.TypeName != typeinfo.PointerBase+"Dict" || p.Value != 0xcafe || p.Width != 4 {
		t.Fatalf("unexpected pointer: %+v", p)
	}

	out := NewBuilder()
	if err := Encode(out, n); err != nil {
		t.Fatalf("encode: %v", err)
	}
	if got := finish(t, out); !bytes.Equal(got, buf) {
		t.Fatalf("narrow pointer did not round trip:\n got %x\nwant %x", got, buf)
	}

	if _, err := DecodeScalar(typeinfo.Default().Root(), KindPointer, make([]byte, 12)); !errors.Is(err, ErrMalformedLength) {
		t.Fatalf("expected a 12-byte pointer body to be malformed, got %v", err)
	}
}
