package pod

import (
	"encoding/binary"
	"fmt"

	"github.com/danmuck/podctl/internal/pod/typeinfo"
)

// prop decodes a parameter descriptor: a key, a complete main value and the
// headerless alternatives the range kind prescribes.
func (w *walker) prop(scope typeinfo.Scope, n *Node, depth int) {
	body := n.Body
	if len(body) < propBodyHeaderSize {
		w.failf(n, ErrMalformedLength, "prop header needs %d bytes, have %d", propBodyHeaderSize, len(body))
		return
	}
	le := binary.LittleEndian
	p := Prop{
		Key:     le.Uint32(body[0:4]),
		KeyName: typeinfo.UnknownName,
		Flags:   PropFlags(le.Uint16(body[4:6])),
	}
	valueScope := scope
	if info, ok := scope.Find(p.Key); ok {
		p.KeyName = info.Name
		valueScope = scope.Into(info)
	}
	rest := body[propBodyHeaderSize:]
	if p.Unset() {
		p.Unread = rest
		n.Value = p
		return
	}
	n.Value = p

	if len(rest) < HeaderSize {
		w.failf(n, ErrMalformedLength, "main value header needs %d bytes, have %d", HeaderSize, len(rest))
		return
	}
	size := le.Uint32(rest[0:4])
	kind := Kind(le.Uint32(rest[4:8]))
	if uint64(size) > uint64(len(rest)-HeaderSize) {
		w.failf(n, ErrMalformedLength, "main value body of %d bytes exceeds %d", size, len(rest)-HeaderSize)
		return
	}
	base := n.Offset + propBodyHeaderSize
	main := w.value(valueScope, kind, size, rest[HeaderSize:HeaderSize+int(size)], base+HeaderSize, n.Path+".value", depth+1)
	p.Value = &main

	altStart := uint64(HeaderSize) + PaddedSize(size)
	if altStart > uint64(len(rest)) {
		altStart = uint64(len(rest))
	}
	alts := rest[altStart:]
	p.Alternatives, p.Unread = w.alternatives(valueScope, n, p.Range(), kind, size, alts, base+int(altStart), depth)
	n.Value = p
}

// alternatives decodes the run of bodies after a prop's main value. It
// returns the decoded alternatives and the bytes it left uninterpreted.
func (w *walker) alternatives(scope typeinfo.Scope, n *Node, rk RangeKind, kind Kind, size uint32, alts []byte, base int, depth int) ([]Node, []byte) {
	var count uint64
	switch rk {
	case RangeEnum:
		if size == 0 {
			return nil, alts
		}
		count = uint64(len(alts)) / uint64(size)
		if uint64(len(alts))%uint64(size) != 0 {
			w.failf(n, ErrMalformedLength, "%d enum bytes not a multiple of value size %d", len(alts), size)
			return nil, alts
		}
	case RangeMinMax, RangeStep:
		want, _ := rk.fixedAlternatives()
		count = uint64(want)
		if size == 0 {
			return nil, alts
		}
		if need := count * uint64(size); need > uint64(len(alts)) {
			w.failf(n, ErrMalformedLength, "%s range needs %d alternative bytes, have %d", rk, need, len(alts))
			return nil, alts
		}
	default:
		// None carries no alternatives. Flags alternatives and unknown
		// range kinds are left to the caller.
		if len(alts) == 0 {
			return nil, nil
		}
		return nil, alts
	}

	out := make([]Node, 0, count)
	for i := uint64(0); i < count && !w.stopped; i++ {
		start := int(i * uint64(size))
		body := alts[start : start+int(size)]
		path := fmt.Sprintf("%s.alternatives[%d]", n.Path, i)
		out = append(out, w.value(scope, kind, size, body, base+start, path, depth+1))
	}
	used := int(count * uint64(size))
	if used == len(alts) {
		return out, nil
	}
	return out, alts[used:]
}
