package pod

// Node is one decoded value and where it was found.
type Node struct {
	Type Kind
	// Size is the declared, unpadded body length.
	Size uint32
	// Offset is the position of the body in the decoded buffer.
	Offset int
	// Path locates the node from the root, e.g. ".fields[1].value".
	Path string
	// Body borrows the value's bytes from the decoded buffer.
	Body  []byte
	Value Value
	// Err is the error scoped to this node, if any. Children carry their
	// own errors.
	Err error
}

// Unhandled reports whether the node's kind could not be interpreted.
func (n Node) Unhandled() bool {
	_, ok := n.Value.(Unhandled)
	return ok
}

// Children returns the nested nodes of a container in wire order. A prop's
// main value precedes its alternatives.
func (n Node) Children() []Node {
	switch v := n.Value.(type) {
	case Array:
		return v.Elements
	case Struct:
		return v.Fields
	case Object:
		return v.Fields
	case Prop:
		out := make([]Node, 0, len(v.Alternatives)+1)
		if v.Value != nil {
			out = append(out, *v.Value)
		}
		return append(out, v.Alternatives...)
	}
	return nil
}

// Walk visits n and its descendants depth first. Returning false from fn
// skips the children of the visited node.
func Walk(n Node, fn func(Node) bool) {
	if !fn(n) {
		return
	}
	for _, c := range n.Children() {
		Walk(c, fn)
	}
}

// Errors collects every node error in the tree in wire order.
func (n Node) Errors() []error {
	var out []error
	Walk(n, func(c Node) bool {
		if c.Err != nil {
			out = append(out, c.Err)
		}
		return true
	})
	return out
}
