package pod

// Value is the decoded body of one node. Each basic kind has exactly one
// concrete Value type; kinds the decoder does not understand decode to
// Unhandled.
type Value interface {
	Kind() Kind
}

type (
	None   []byte
	Bool   bool
	Int    int32
	Long   int64
	Float  float32
	Double float64
	String string
	Bytes  []byte
	Bitmap []byte
	Fd     int32
)

// ID is an enumerated value resolved against the scope it was decoded in.
type ID struct {
	Value uint32
	Name  string
}

// Pointer is an opaque identity token; the decoder never dereferences it.
type Pointer struct {
	Type     uint32
	TypeName string
	Value    uint64
	// Width is the size in bytes of Value on the wire, 4 or 8.
	Width int
}

type Rectangle struct {
	Width  uint32
	Height uint32
}

type Fraction struct {
	Num   uint32
	Denom uint32
}

// Array is a homogeneous run of headerless child bodies.
type Array struct {
	ChildSize uint32
	ChildType Kind
	ChildName string
	Elements  []Node
}

// Struct is a positional tuple of complete values.
type Struct struct {
	Fields []Node
}

// Object is a keyed property bag identified by (Type, ID).
type Object struct {
	Type     uint32
	ID       uint32
	TypeName string
	IDName   string
	Fields   []Node
}

// Prop is a parameter descriptor: a key, a main value and the alternatives
// its range kind prescribes.
type Prop struct {
	Key     uint32
	KeyName string
	Flags   PropFlags
	// Value is nil when the prop is unset.
	Value        *Node
	Alternatives []Node
	// Unread holds the bytes of the prop body the decoder did not
	// interpret: the whole remainder of an unset prop, Flags range
	// alternatives, and trailing bytes past a bounded range.
	Unread []byte
}

// Unhandled is the outcome for a kind code the decoder cannot interpret.
type Unhandled struct {
	Type uint32
	Body []byte
}

func (None) Kind() Kind      { return KindNone }
func (Bool) Kind() Kind      { return KindBool }
func (ID) Kind() Kind        { return KindID }
func (Int) Kind() Kind       { return KindInt }
func (Long) Kind() Kind      { return KindLong }
func (Float) Kind() Kind     { return KindFloat }
func (Double) Kind() Kind    { return KindDouble }
func (String) Kind() Kind    { return KindString }
func (Bytes) Kind() Kind     { return KindBytes }
func (Bitmap) Kind() Kind    { return KindBitmap }
func (Fd) Kind() Kind        { return KindFd }
func (Pointer) Kind() Kind   { return KindPointer }
func (Rectangle) Kind() Kind { return KindRectangle }
func (Fraction) Kind() Kind  { return KindFraction }
func (Array) Kind() Kind     { return KindArray }
func (Struct) Kind() Kind    { return KindStruct }
func (Object) Kind() Kind    { return KindObject }
func (Prop) Kind() Kind      { return KindProp }
func (u Unhandled) Kind() Kind {
	return Kind(u.Type)
}

// Range returns the prop's range kind.
func (p Prop) Range() RangeKind {
	return p.Flags.Range()
}

// Unset reports whether the prop carries no value.
func (p Prop) Unset() bool {
	return p.Flags.Unset()
}

// Min returns the lower bound of a MinMax or Step prop.
func (p Prop) Min() (Node, bool) {
	return p.bound(0)
}

// Max returns the upper bound of a MinMax or Step prop.
func (p Prop) Max() (Node, bool) {
	return p.bound(1)
}

// Step returns the increment of a Step prop.
func (p Prop) Step() (Node, bool) {
	if p.Range() != RangeStep {
		return Node{}, false
	}
	return p.bound(2)
}

func (p Prop) bound(i int) (Node, bool) {
	switch p.Range() {
	case RangeMinMax, RangeStep:
	default:
		return Node{}, false
	}
	if i >= len(p.Alternatives) {
		return Node{}, false
	}
	return p.Alternatives[i], true
}
