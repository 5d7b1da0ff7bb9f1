package pod

import (
	"encoding/binary"
	"fmt"

	"github.com/danmuck/podctl/internal/pod/typeinfo"
)

// array decodes a homogeneous run of headerless child bodies. Every element
// shares the scope narrowed by the child type.
func (w *walker) array(scope typeinfo.Scope, n *Node, depth int) {
	body := n.Body
	if len(body) < arrayBodyHeaderSize {
		w.failf(n, ErrMalformedLength, "array header needs %d bytes, have %d", arrayBodyHeaderSize, len(body))
		return
	}
	le := binary.LittleEndian
	childSize := le.Uint32(body[0:4])
	childType := le.Uint32(body[4:8])
	arr := Array{
		ChildSize: childSize,
		ChildType: Kind(childType),
		ChildName: childName(scope, childType),
	}
	n.Value = arr

	elems := body[arrayBodyHeaderSize:]
	if childSize == 0 {
		if len(elems) > 0 {
			w.failf(n, ErrMalformedLength, "%d element bytes with zero child size", len(elems))
		}
		return
	}
	if rem := uint64(len(elems)) % uint64(childSize); rem != 0 {
		w.failf(n, ErrMalformedLength, "%d element bytes not a multiple of child size %d", len(elems), childSize)
	}
	count := uint64(len(elems)) / uint64(childSize)
	elemScope := scope.Narrow(childType)
	base := n.Offset + arrayBodyHeaderSize
	arr.Elements = make([]Node, 0, count)
	for i := uint64(0); i < count && !w.stopped; i++ {
		start := int(i * uint64(childSize))
		elem := elems[start : start+int(childSize)]
		path := fmt.Sprintf("%s.elements[%d]", n.Path, i)
		arr.Elements = append(arr.Elements, w.value(elemScope, Kind(childType), childSize, elem, base+start, path, depth+1))
	}
	n.Value = arr
}

// childName names an array's child type, preferring the enclosing scope and
// falling back to the root table of basic types.
func childName(scope typeinfo.Scope, childType uint32) string {
	if info, ok := scope.Find(childType); ok {
		return info.Name
	}
	return scope.Root().Name(childType)
}
