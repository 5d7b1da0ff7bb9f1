package dump

import (
	"encoding/hex"
	"fmt"

	"github.com/danmuck/podctl/internal/pod"
)

// View is a self-contained description of one node, shaped for JSON and
// YAML encoders.
type View struct {
	Path   string `json:"path" yaml:"path"`
	Type   string `json:"type" yaml:"type"`
	Size   uint32 `json:"size" yaml:"size"`
	Offset int    `json:"offset" yaml:"offset"`
	// Name is the resolved id, key, pointer, array child or object type name.
	Name  string `json:"name,omitempty" yaml:"name,omitempty"`
	Value any    `json:"value,omitempty" yaml:"value,omitempty"`
	Error string `json:"error,omitempty" yaml:"error,omitempty"`

	ObjectID     *uint32 `json:"object_id,omitempty" yaml:"object_id,omitempty"`
	ObjectIDName string  `json:"object_id_name,omitempty" yaml:"object_id_name,omitempty"`
	ChildSize    *uint32 `json:"child_size,omitempty" yaml:"child_size,omitempty"`

	Flags        *uint16 `json:"flags,omitempty" yaml:"flags,omitempty"`
	Range        string  `json:"range,omitempty" yaml:"range,omitempty"`
	Unset        bool    `json:"unset,omitempty" yaml:"unset,omitempty"`
	Main         *View   `json:"main,omitempty" yaml:"main,omitempty"`
	Alternatives []View  `json:"alternatives,omitempty" yaml:"alternatives,omitempty"`
	Unread       string  `json:"unread,omitempty" yaml:"unread,omitempty"`

	Children []View `json:"children,omitempty" yaml:"children,omitempty"`
}

// NewView converts a decoded tree. Opaque bodies are hex encoded.
func NewView(n pod.Node) View {
	v := View{
		Path:   n.Path,
		Type:   n.Type.String(),
		Size:   n.Size,
		Offset: n.Offset,
	}
	if v.Path == "" {
		v.Path = "."
	}
	if n.Err != nil {
		v.Error = n.Err.Error()
	}
	switch val := n.Value.(type) {
	case pod.None:
		v.Value = hex.EncodeToString(val)
	case pod.Bool:
		v.Value = bool(val)
	case pod.ID:
		v.Value = val.Value
		v.Name = val.Name
	case pod.Int:
		v.Value = int32(val)
	case pod.Long:
		v.Value = int64(val)
	case pod.Float:
		v.Value = float32(val)
	case pod.Double:
		v.Value = float64(val)
	case pod.String:
		v.Value = string(val)
	case pod.Bytes:
		v.Value = hex.EncodeToString(val)
	case pod.Bitmap:
		v.Value = hex.EncodeToString(val)
	case pod.Fd:
		v.Value = int32(val)
	case pod.Pointer:
		v.Value = fmt.Sprintf("0x%x", val.Value)
		v.Name = val.TypeName
	case pod.Rectangle:
		v.Value = fmt.Sprintf("%dx%d", val.Width, val.Height)
	case pod.Fraction:
		v.Value = fmt.Sprintf("%d/%d", val.Num, val.Denom)
	case pod.Unhandled:
		v.Value = hex.EncodeToString(val.Body)
	case pod.Array:
		size := val.ChildSize
		v.ChildSize = &size
		v.Name = val.ChildName
		v.Children = views(val.Elements)
	case pod.Struct:
		v.Children = views(val.Fields)
	case pod.Object:
		id := val.ID
		v.Name = val.TypeName
		v.ObjectID = &id
		v.ObjectIDName = val.IDName
		v.Children = views(val.Fields)
	case pod.Prop:
		flags := uint16(val.Flags)
		v.Value = val.Key
		v.Name = val.KeyName
		v.Flags = &flags
		v.Range = val.Range().String()
		v.Unset = val.Unset()
		if val.Value != nil {
			main := NewView(*val.Value)
			v.Main = &main
		}
		v.Alternatives = views(val.Alternatives)
		if len(val.Unread) > 0 {
			v.Unread = hex.EncodeToString(val.Unread)
		}
	}
	return v
}

func views(nodes []pod.Node) []View {
	if len(nodes) == 0 {
		return nil
	}
	out := make([]View, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, NewView(n))
	}
	return out
}
