package pod

import (
	"fmt"

	"github.com/danmuck/podctl/internal/pod/typeinfo"
)

const (
	// HeaderSize is the size of the value header: u32 size, u32 type.
	HeaderSize = 8
	// Alignment is the padding boundary of values stored in containers.
	Alignment = 8

	arrayBodyHeaderSize  = 8
	objectBodyHeaderSize = 8
	propBodyHeaderSize   = 8
)

// Kind is the basic type code of a value.
type Kind uint32

const (
	KindNone      = Kind(typeinfo.TypeNone)
	KindBool      = Kind(typeinfo.TypeBool)
	KindID        = Kind(typeinfo.TypeID)
	KindInt       = Kind(typeinfo.TypeInt)
	KindLong      = Kind(typeinfo.TypeLong)
	KindFloat     = Kind(typeinfo.TypeFloat)
	KindDouble    = Kind(typeinfo.TypeDouble)
	KindString    = Kind(typeinfo.TypeString)
	KindBytes     = Kind(typeinfo.TypeBytes)
	KindRectangle = Kind(typeinfo.TypeRectangle)
	KindFraction  = Kind(typeinfo.TypeFraction)
	KindBitmap    = Kind(typeinfo.TypeBitmap)
	KindArray     = Kind(typeinfo.TypeArray)
	KindStruct    = Kind(typeinfo.TypeStruct)
	KindObject    = Kind(typeinfo.TypeObject)
	KindPointer   = Kind(typeinfo.TypePointer)
	KindFd        = Kind(typeinfo.TypeFd)
	KindProp      = Kind(typeinfo.TypeProp)
)

var kindNames = map[Kind]string{
	KindNone:      "None",
	KindBool:      "Bool",
	KindID:        "Id",
	KindInt:       "Int",
	KindLong:      "Long",
	KindFloat:     "Float",
	KindDouble:    "Double",
	KindString:    "String",
	KindBytes:     "Bytes",
	KindRectangle: "Rectangle",
	KindFraction:  "Fraction",
	KindBitmap:    "Bitmap",
	KindArray:     "Array",
	KindStruct:    "Struct",
	KindObject:    "Object",
	KindPointer:   "Pointer",
	KindFd:        "Fd",
	KindProp:      "Prop",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", uint32(k))
}

// Known reports whether k is one of the supported basic kinds.
func (k Kind) Known() bool {
	_, ok := kindNames[k]
	return ok
}

// Container reports whether values of k hold nested values.
func (k Kind) Container() bool {
	switch k {
	case KindArray, KindStruct, KindObject, KindProp:
		return true
	}
	return false
}

// FixedWidth returns the exact body width of fixed-width kinds.
func (k Kind) FixedWidth() (int, bool) {
	switch k {
	case KindBool, KindID, KindInt, KindFloat, KindFd:
		return 4, true
	case KindLong, KindDouble, KindRectangle, KindFraction:
		return 8, true
	}
	return 0, false
}

// PropFlags is the u16 flag word of a prop body.
type PropFlags uint16

const (
	PropRangeMask  PropFlags = 0x000f
	PropUnset      PropFlags = 1 << 4
	PropOptional   PropFlags = 1 << 5
	PropReadonly   PropFlags = 1 << 6
	PropDeprecated PropFlags = 1 << 7
)

// Range returns the range kind carried in the low bits.
func (f PropFlags) Range() RangeKind {
	return RangeKind(f & PropRangeMask)
}

// Unset reports whether the prop carries no value.
func (f PropFlags) Unset() bool {
	return f&PropUnset != 0
}

// RangeKind selects how many alternatives follow a prop's main value.
type RangeKind uint8

const (
	RangeNone RangeKind = iota
	RangeMinMax
	RangeStep
	RangeEnum
	RangeFlags
)

func (r RangeKind) String() string {
	switch r {
	case RangeNone:
		return "None"
	case RangeMinMax:
		return "MinMax"
	case RangeStep:
		return "Step"
	case RangeEnum:
		return "Enum"
	case RangeFlags:
		return "Flags"
	default:
		return fmt.Sprintf("Range(%d)", uint8(r))
	}
}

// fixedAlternatives is the alternative count of bounded range kinds.
func (r RangeKind) fixedAlternatives() (int, bool) {
	switch r {
	case RangeNone:
		return 0, true
	case RangeMinMax:
		return 2, true
	case RangeStep:
		return 3, true
	}
	return 0, false
}

// PaddedSize rounds size up to the container alignment.
func PaddedSize(size uint32) uint64 {
	return (uint64(size) + Alignment - 1) &^ (Alignment - 1)
}
