package typeinfo

import (
	"errors"
	"strings"
)

// UnknownName is the placeholder returned for ids absent from a table.
const UnknownName = "unknown"

var (
	ErrUnknownIdentifier = errors.New("typeinfo: unknown identifier")
	ErrUnknownTable      = errors.New("typeinfo: unknown table")
	ErrDuplicateID       = errors.New("typeinfo: duplicate id in table")
	ErrDuplicateTable    = errors.New("typeinfo: duplicate table name")
)

// Ref indexes a table inside a Registry. The zero Ref means "no table".
type Ref int32

// NoTable is the Ref of an entry without children.
const NoTable Ref = 0

// Info is one type-info record.
type Info struct {
	ID   uint32
	Name string
	// Type is the basic kind of the entry, or the parent id for enum tables.
	Type     uint32
	Children Ref
}

// HasChildren reports whether the entry owns a nested table.
func (i Info) HasChildren() bool {
	return i.Children != NoTable
}

// Table is one named, ordered set of records.
type Table struct {
	Name    string
	Entries []Info
}

// FindByID returns the first entry whose id matches.
func FindByID(entries []Info, id uint32) (Info, bool) {
	for _, e := range entries {
		if e.ID == id {
			return e, true
		}
	}
	return Info{}, false
}

// FindByName returns the first entry whose name matches exactly.
func FindByName(entries []Info, name string) (Info, bool) {
	for _, e := range entries {
		if e.Name == name {
			return e, true
		}
	}
	return Info{}, false
}

// NameOf returns the entry name for id, or UnknownName.
func NameOf(entries []Info, id uint32) string {
	if e, ok := FindByID(entries, id); ok {
		return e.Name
	}
	return UnknownName
}

// ShortName returns the last namespace segment of a registry name,
// "Spa:Pod:Object:Param:Format" -> "Format".
func ShortName(name string) string {
	trimmed := strings.TrimRight(name, ":")
	if i := strings.LastIndexByte(trimmed, ':'); i >= 0 {
		return trimmed[i+1:]
	}
	return trimmed
}
