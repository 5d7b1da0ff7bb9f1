package typeinfo

import "fmt"

// Scope is the table in effect at one point of a traversal. It is a small
// value: narrowing returns a new Scope and never changes the receiver.
type Scope struct {
	reg *Registry
	ref Ref
}

// Registry returns the registry the scope belongs to.
func (s Scope) Registry() *Registry {
	return s.reg
}

// Ref returns the table the scope points at.
func (s Scope) Ref() Ref {
	return s.ref
}

// Valid reports whether the scope points at a table.
func (s Scope) Valid() bool {
	_, ok := s.reg.Table(s.ref)
	return ok
}

// TableName returns the name of the scope's table.
func (s Scope) TableName() string {
	t, _ := s.reg.Table(s.ref)
	return t.Name
}

// Entries returns the records of the scope's table.
func (s Scope) Entries() []Info {
	return s.reg.Entries(s.ref)
}

// Find resolves id in the scope's table.
func (s Scope) Find(id uint32) (Info, bool) {
	return FindByID(s.Entries(), id)
}

// FindName resolves name in the scope's table.
func (s Scope) FindName(name string) (Info, bool) {
	return FindByName(s.Entries(), name)
}

// Name resolves id to its name, or UnknownName.
func (s Scope) Name(id uint32) string {
	return NameOf(s.Entries(), id)
}

// Resolve is Find with an ErrUnknownIdentifier error for absent ids.
func (s Scope) Resolve(id uint32) (Info, error) {
	info, ok := s.Find(id)
	if !ok {
		return Info{}, fmt.Errorf("%w: id=%d table=%q", ErrUnknownIdentifier, id, s.TableName())
	}
	return info, nil
}

// Into returns the scope of info's children, or s when info has none.
func (s Scope) Into(info Info) Scope {
	if !info.HasChildren() || len(s.reg.Entries(info.Children)) == 0 {
		return s
	}
	return Scope{reg: s.reg, ref: info.Children}
}

// Narrow resolves id and descends into its children table when it has a
// non-empty one. Otherwise the receiver is returned unchanged; narrowing
// never fails.
func (s Scope) Narrow(id uint32) Scope {
	info, ok := s.Find(id)
	if !ok {
		return s
	}
	return s.Into(info)
}

// Root returns the root scope of the registry.
func (s Scope) Root() Scope {
	if s.reg == nil {
		return s
	}
	return s.reg.Root()
}
