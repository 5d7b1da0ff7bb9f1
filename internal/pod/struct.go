package pod

import "github.com/danmuck/podctl/internal/pod/typeinfo"

// structure decodes a positional tuple. Fields keep the enclosing scope and
// their padded extents must add up to the declared size exactly.
func (w *walker) structure(scope typeinfo.Scope, n *Node, depth int) {
	n.Value = Struct{Fields: w.values(scope, n, n.Body, n.Offset, "fields", depth)}
}
