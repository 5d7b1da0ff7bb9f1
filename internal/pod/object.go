package pod

import (
	"encoding/binary"

	"github.com/danmuck/podctl/internal/pod/typeinfo"
)

// objectIDEntry is the kind-table entry whose children list the valid
// object ids of that kind.
const objectIDEntry = 0

// object decodes a keyed property bag. The object type selects the kind
// table used for field keys; the kind table's id 0 entry selects the table
// the object id resolves against.
func (w *walker) object(scope typeinfo.Scope, n *Node, depth int) {
	body := n.Body
	if len(body) < objectBodyHeaderSize {
		w.failf(n, ErrMalformedLength, "object header needs %d bytes, have %d", objectBodyHeaderSize, len(body))
		return
	}
	le := binary.LittleEndian
	obj := Object{
		Type:     le.Uint32(body[0:4]),
		ID:       le.Uint32(body[4:8]),
		TypeName: typeinfo.UnknownName,
		IDName:   typeinfo.UnknownName,
	}
	fieldScope := scope
	if kind, ok := scope.Find(obj.Type); ok {
		obj.TypeName = kind.Name
		fieldScope = scope.Into(kind)
		obj.IDName = objectIDName(scope, fieldScope, obj.ID)
	}
	n.Value = obj
	obj.Fields = w.values(fieldScope, n, body[objectBodyHeaderSize:], n.Offset+objectBodyHeaderSize, "fields", depth)
	n.Value = obj
}

func objectIDName(scope, kindScope typeinfo.Scope, id uint32) string {
	if kindScope.Ref() == scope.Ref() {
		return typeinfo.UnknownName
	}
	entry, ok := kindScope.Find(objectIDEntry)
	if !ok {
		return typeinfo.UnknownName
	}
	idScope := kindScope.Into(entry)
	if idScope.Ref() == kindScope.Ref() {
		return typeinfo.UnknownName
	}
	return idScope.Name(id)
}
