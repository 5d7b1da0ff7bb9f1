package dump

import (
	"github.com/danmuck/podctl/internal/pod"
)

// Printer renders decoded trees in the debug layout, one line per value,
// children indented by two columns.
type Printer struct {
	Sink Sink
	// Hexdump adds a Mem dump under None, Bytes and Bitmap values.
	Hexdump bool
}

// Pod renders n with hex dumps of opaque bodies.
func Pod(s Sink, indent int, n pod.Node) {
	Printer{Sink: s, Hexdump: true}.Node(indent, n)
}

func (p Printer) Node(indent int, n pod.Node) {
	s := p.Sink
	switch v := n.Value.(type) {
	case nil:
		s.Line(indent, "%s: size %d", n.Type, n.Size)
	case pod.None:
		s.Line(indent, "None")
		p.mem(indent+2, v)
	case pod.Bool:
		s.Line(indent, "Bool %t", bool(v))
	case pod.ID:
		s.Line(indent, "Id %d (%s)", v.Value, v.Name)
	case pod.Int:
		s.Line(indent, "Int %d", int32(v))
	case pod.Long:
		s.Line(indent, "Long %d", int64(v))
	case pod.Float:
		s.Line(indent, "Float %f", float32(v))
	case pod.Double:
		s.Line(indent, "Double %f", float64(v))
	case pod.String:
		s.Line(indent, "String %q", string(v))
	case pod.Fd:
		s.Line(indent, "Fd %d", int32(v))
	case pod.Pointer:
		s.Line(indent, "Pointer %s 0x%x", v.TypeName, v.Value)
	case pod.Rectangle:
		s.Line(indent, "Rectangle %dx%d", v.Width, v.Height)
	case pod.Fraction:
		s.Line(indent, "Fraction %d/%d", v.Num, v.Denom)
	case pod.Bitmap:
		s.Line(indent, "Bitmap")
		p.mem(indent+2, v)
	case pod.Bytes:
		s.Line(indent, "Bytes")
		p.mem(indent+2, v)
	case pod.Array:
		s.Line(indent, "Array: child.size %d, child.type %s", v.ChildSize, v.ChildName)
		p.errLine(indent+2, n)
		for _, e := range v.Elements {
			p.Node(indent+2, e)
		}
		return
	case pod.Struct:
		s.Line(indent, "Struct: size %d", n.Size)
		p.errLine(indent+2, n)
		for _, f := range v.Fields {
			p.Node(indent+2, f)
		}
		return
	case pod.Object:
		s.Line(indent, "Object: size %d, type %s, id %s", n.Size, v.TypeName, v.IDName)
		p.errLine(indent+2, n)
		for _, f := range v.Fields {
			p.Node(indent+2, f)
		}
		return
	case pod.Prop:
		p.prop(indent, n, v)
		return
	case pod.Unhandled:
		s.Line(indent, "unhandled POD type %d", v.Type)
	}
	p.errLine(indent+2, n)
}

func (p Printer) prop(indent int, n pod.Node, v pod.Prop) {
	s := p.Sink
	s.Line(indent, "Prop: key %s, flags %d", v.KeyName, uint16(v.Flags))
	p.errLine(indent+2, n)
	if v.Unset() {
		s.Line(indent+2, "Unset (Default):")
		return
	}
	if v.Value == nil {
		return
	}
	s.Line(indent+2, "Value: size %d", v.Value.Size)
	p.Node(indent+4, *v.Value)

	var labels []string
	switch v.Range() {
	case pod.RangeMinMax:
		labels = []string{"Min:", "Max:"}
	case pod.RangeStep:
		labels = []string{"Min:", "Max:", "Step:"}
	case pod.RangeEnum:
		if len(v.Alternatives) > 0 {
			s.Line(indent+2, "Enum:")
		}
	}
	for i, alt := range v.Alternatives {
		if i < len(labels) {
			s.Line(indent+2, labels[i])
		}
		p.Node(indent+4, alt)
	}
}

func (p Printer) mem(indent int, data []byte) {
	if p.Hexdump {
		Mem(p.Sink, indent, data)
	}
}

func (p Printer) errLine(indent int, n pod.Node) {
	if n.Err != nil {
		p.Sink.Line(indent, "error: %v", n.Err)
	}
}
