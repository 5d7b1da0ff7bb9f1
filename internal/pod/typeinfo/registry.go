package typeinfo

import "fmt"

// Registry is an immutable arena of tables. Tables reference each other by
// Ref, never by pointer, so a registry can be exported and reloaded as is.
type Registry struct {
	// tables[0] is reserved so the zero Ref stays "no table".
	tables []Table
	root   Ref
}

// Root returns the scope of the registry's root table.
func (r *Registry) Root() Scope {
	return Scope{reg: r, ref: r.root}
}

// RootRef returns the Ref of the root table.
func (r *Registry) RootRef() Ref {
	return r.root
}

// Len returns the number of tables, excluding the reserved slot.
func (r *Registry) Len() int {
	if r == nil || len(r.tables) == 0 {
		return 0
	}
	return len(r.tables) - 1
}

// Table returns the table referenced by ref.
func (r *Registry) Table(ref Ref) (Table, bool) {
	if r == nil || ref <= NoTable || int(ref) >= len(r.tables) {
		return Table{}, false
	}
	return r.tables[ref], true
}

// Entries returns the entries of ref, or nil when ref is not a table.
func (r *Registry) Entries(ref Ref) []Info {
	t, ok := r.Table(ref)
	if !ok {
		return nil
	}
	return t.Entries
}

// Lookup finds a table by name.
func (r *Registry) Lookup(name string) (Ref, bool) {
	if r == nil {
		return NoTable, false
	}
	for i := 1; i < len(r.tables); i++ {
		if r.tables[i].Name == name {
			return Ref(i), true
		}
	}
	return NoTable, false
}

// Tables returns every table in declaration order. Callers must not modify
// the returned entries.
func (r *Registry) Tables() []Table {
	if r == nil || len(r.tables) < 2 {
		return nil
	}
	return r.tables[1:]
}

// Scope opens the table named name.
func (r *Registry) Scope(name string) (Scope, error) {
	ref, ok := r.Lookup(name)
	if !ok {
		return Scope{}, fmt.Errorf("%w: %q", ErrUnknownTable, name)
	}
	return Scope{reg: r, ref: ref}, nil
}

// Builder assembles a Registry. Tables must be declared before they are
// referenced, so leaf tables come first.
type Builder struct {
	tables []Table
	names  map[string]Ref
	err    error
}

func NewBuilder() *Builder {
	return &Builder{
		tables: []Table{{}},
		names:  make(map[string]Ref),
	}
}

// Table declares a table and returns its Ref. Duplicate ids within the
// table, duplicate table names and dangling child refs latch an error that
// Build reports.
func (b *Builder) Table(name string, entries ...Info) Ref {
	if b.err != nil {
		return NoTable
	}
	if _, ok := b.names[name]; ok {
		b.err = fmt.Errorf("%w: %q", ErrDuplicateTable, name)
		return NoTable
	}
	seen := make(map[uint32]struct{}, len(entries))
	for _, e := range entries {
		if _, dup := seen[e.ID]; dup {
			b.err = fmt.Errorf("%w: table=%q id=%d", ErrDuplicateID, name, e.ID)
			return NoTable
		}
		seen[e.ID] = struct{}{}
		if e.Children < NoTable || int(e.Children) >= len(b.tables) {
			b.err = fmt.Errorf("%w: table=%q entry=%q ref=%d", ErrUnknownTable, name, e.Name, e.Children)
			return NoTable
		}
	}
	copied := make([]Info, len(entries))
	copy(copied, entries)
	ref := Ref(len(b.tables))
	b.tables = append(b.tables, Table{Name: name, Entries: copied})
	b.names[name] = ref
	return ref
}

// Build freezes the tables with root as the top-level scope.
func (b *Builder) Build(root Ref) (*Registry, error) {
	if b.err != nil {
		return nil, b.err
	}
	if root <= NoTable || int(root) >= len(b.tables) {
		return nil, fmt.Errorf("%w: root ref=%d", ErrUnknownTable, root)
	}
	tables := make([]Table, len(b.tables))
	copy(tables, b.tables)
	return &Registry{tables: tables, root: root}, nil
}

// Extend returns a new registry holding base's tables followed by ext's.
// ext's root entries are appended after base's root entries, so on a
// duplicate id the base entry wins. Neither input is modified.
func Extend(base, ext *Registry) (*Registry, error) {
	if ext.Len() == 0 {
		return base, nil
	}
	shift := Ref(len(base.tables) - 1)
	tables := make([]Table, 0, len(base.tables)+len(ext.tables)-1)
	tables = append(tables, base.tables...)
	for i, t := range ext.Tables() {
		ref := Ref(i + 1)
		if ref != ext.root {
			if _, dup := base.Lookup(t.Name); dup {
				return nil, fmt.Errorf("%w: %q", ErrDuplicateTable, t.Name)
			}
		}
		tables = append(tables, Table{Name: t.Name, Entries: shiftRefs(t.Entries, shift)})
	}

	baseRoot := base.tables[base.root]
	merged := make([]Info, 0, len(baseRoot.Entries)+len(ext.tables[ext.root].Entries))
	merged = append(merged, baseRoot.Entries...)
	for _, e := range shiftRefs(ext.tables[ext.root].Entries, shift) {
		if _, dup := FindByID(merged, e.ID); dup {
			continue
		}
		merged = append(merged, e)
	}
	tables[base.root] = Table{Name: baseRoot.Name, Entries: merged}
	return &Registry{tables: tables, root: base.root}, nil
}

func shiftRefs(entries []Info, shift Ref) []Info {
	out := make([]Info, len(entries))
	for i, e := range entries {
		if e.Children != NoTable {
			e.Children += shift
		}
		out[i] = e
	}
	return out
}
