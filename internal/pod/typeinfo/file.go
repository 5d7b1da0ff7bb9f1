package typeinfo

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

var ErrInvalidVocabulary = errors.New("typeinfo: invalid vocabulary")

// Format is the encoding of a vocabulary file.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// FormatOf picks the vocabulary format from a file extension. Anything that
// is not .yaml or .yml is read as TOML.
func FormatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	}
	return FormatTOML
}

// vocabularyFile is the on-disk layout of a registry. Children are
// referenced by table name so files stay readable and order independent.
type vocabularyFile struct {
	Root   string      `toml:"root" yaml:"root"`
	Tables []fileTable `toml:"tables" yaml:"tables"`
}

type fileTable struct {
	Name    string      `toml:"name" yaml:"name"`
	Entries []fileEntry `toml:"entries" yaml:"entries"`
}

type fileEntry struct {
	ID       uint32 `toml:"id" yaml:"id"`
	Name     string `toml:"name" yaml:"name"`
	Type     uint32 `toml:"type" yaml:"type"`
	Children string `toml:"children,omitempty" yaml:"children,omitempty"`
}

// LoadFile reads a vocabulary from path in the format its extension names.
func LoadFile(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("vocabulary load failed (%s): %w", path, err)
	}
	reg, err := ParseFormat(FormatOf(path), data)
	if err != nil {
		return nil, fmt.Errorf("vocabulary parse failed (%s): %w", path, err)
	}
	return reg, nil
}

// Parse decodes a TOML vocabulary. Children must name a table declared in
// the same document.
func Parse(data []byte) (*Registry, error) {
	return ParseFormat(FormatTOML, data)
}

func ParseFormat(format Format, data []byte) (*Registry, error) {
	var raw vocabularyFile
	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: format %q", ErrInvalidVocabulary, format)
	}
	return fromFile(raw)
}

func fromFile(raw vocabularyFile) (*Registry, error) {
	if raw.Root == "" {
		return nil, fmt.Errorf("%w: missing root", ErrInvalidVocabulary)
	}

	refs := make(map[string]Ref, len(raw.Tables))
	for i, t := range raw.Tables {
		if t.Name == "" {
			return nil, fmt.Errorf("%w: table[%d] missing name", ErrInvalidVocabulary, i)
		}
		if _, dup := refs[t.Name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateTable, t.Name)
		}
		refs[t.Name] = Ref(i + 1)
	}
	root, ok := refs[raw.Root]
	if !ok {
		return nil, fmt.Errorf("%w: root %q is not a table", ErrInvalidVocabulary, raw.Root)
	}

	tables := make([]Table, 1, len(raw.Tables)+1)
	for _, t := range raw.Tables {
		entries := make([]Info, 0, len(t.Entries))
		seen := make(map[uint32]struct{}, len(t.Entries))
		for _, e := range t.Entries {
			if _, dup := seen[e.ID]; dup {
				return nil, fmt.Errorf("%w: table=%q id=%d", ErrDuplicateID, t.Name, e.ID)
			}
			seen[e.ID] = struct{}{}
			info := Info{ID: e.ID, Name: e.Name, Type: e.Type}
			if e.Children != "" {
				ref, ok := refs[e.Children]
				if !ok {
					return nil, fmt.Errorf("%w: table=%q entry=%q children=%q", ErrUnknownTable, t.Name, e.Name, e.Children)
				}
				info.Children = ref
			}
			entries = append(entries, info)
		}
		tables = append(tables, Table{Name: t.Name, Entries: entries})
	}
	return &Registry{tables: tables, root: root}, nil
}

// Export encodes the registry as a TOML vocabulary.
func Export(r *Registry) ([]byte, error) {
	return ExportFormat(FormatTOML, r)
}

func ExportFormat(format Format, r *Registry) ([]byte, error) {
	if r.Len() == 0 {
		return nil, fmt.Errorf("%w: empty registry", ErrInvalidVocabulary)
	}
	out := vocabularyFile{Root: r.tables[r.root].Name}
	seen := make(map[string]struct{}, r.Len())
	for _, t := range r.Tables() {
		// An extended registry keeps the extension's original root under
		// the merged root's name; the merged root already holds its entries.
		if _, dup := seen[t.Name]; dup {
			continue
		}
		seen[t.Name] = struct{}{}
		ft := fileTable{Name: t.Name, Entries: make([]fileEntry, 0, len(t.Entries))}
		for _, e := range t.Entries {
			fe := fileEntry{ID: e.ID, Name: e.Name, Type: e.Type}
			if child, ok := r.Table(e.Children); ok {
				fe.Children = child.Name
			}
			ft.Entries = append(ft.Entries, fe)
		}
		out.Tables = append(out.Tables, ft)
	}
	switch format {
	case FormatTOML:
		return toml.Marshal(out)
	case FormatYAML:
		return yaml.Marshal(out)
	}
	return nil, fmt.Errorf("%w: format %q", ErrInvalidVocabulary, format)
}

// LoadExtended loads every vocabulary file in paths and extends base with
// them in order.
func LoadExtended(base *Registry, paths []string) (*Registry, error) {
	reg := base
	for _, path := range paths {
		ext, err := LoadFile(path)
		if err != nil {
			return nil, err
		}
		reg, err = Extend(reg, ext)
		if err != nil {
			return nil, fmt.Errorf("vocabulary extend failed (%s): %w", path, err)
		}
	}
	return reg, nil
}
