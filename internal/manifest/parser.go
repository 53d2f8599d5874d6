package manifest

import (
	"fmt"
	"os"
	"sort"

	"go.yaml.in/yaml/v3"
)

// UnmarshalYAML decodes either a bare filename scalar or a single-key
// mapping of a directory name to its file list. Key and file list are read
// from the same mapping pair, so files are always attributed to their own
// directory.
func (e *Entry) UnmarshalYAML(n *yaml.Node) error {
	switch n.Kind {
	case yaml.ScalarNode:
		if n.ShortTag() == "!!null" || n.Value == "" {
			return fmt.Errorf("line %d: empty file entry", n.Line)
		}
		*e = FileEntry(n.Value)
		return nil

	case yaml.MappingNode:
		if len(n.Content) != 2 {
			return fmt.Errorf("line %d: %w (got %d)", n.Line, ErrMultiKeyEntry, len(n.Content)/2)
		}
		key, val := n.Content[0], n.Content[1]
		if key.Value == "" {
			return fmt.Errorf("line %d: empty directory name", key.Line)
		}

		var files []string
		switch val.Kind {
		case yaml.SequenceNode:
			for _, f := range val.Content {
				if f.Kind == yaml.AliasNode && f.Alias != nil {
					f = f.Alias
				}
				if f.Kind != yaml.ScalarNode || f.ShortTag() == "!!null" || f.Value == "" {
					return fmt.Errorf("line %d: directory %q: file names must be non-empty strings", f.Line, key.Value)
				}
				files = append(files, f.Value)
			}
		case yaml.ScalarNode:
			if val.ShortTag() != "!!null" {
				return fmt.Errorf("line %d: directory %q: expected a list of files", val.Line, key.Value)
			}
		default:
			return fmt.Errorf("line %d: directory %q: expected a list of files", val.Line, key.Value)
		}

		*e = DirEntry(key.Value, files...)
		return nil

	default:
		return fmt.Errorf("line %d: entry must be a filename or a single-key mapping", n.Line)
	}
}

// UnmarshalYAML decodes a structure item by item. The sequence is walked
// here rather than by the YAML decoder, which silently drops null items.
func (s *Structure) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.SequenceNode {
		return fmt.Errorf("line %d: structure must be a list of entries", n.Line)
	}
	out := make(Structure, 0, len(n.Content))
	for _, item := range n.Content {
		if item.Kind == yaml.AliasNode && item.Alias != nil {
			item = item.Alias
		}
		var e Entry
		if err := e.UnmarshalYAML(item); err != nil {
			return err
		}
		out = append(out, e)
	}
	*s = out
	return nil
}

// MarshalYAML writes the entry back in the shape it was declared in.
func (e Entry) MarshalYAML() (interface{}, error) {
	if e.IsDir() {
		files := e.Files
		if files == nil {
			files = []string{}
		}
		return map[string][]string{e.Dir: files}, nil
	}
	return e.File, nil
}

// ParseStructures decodes a structures document: a mapping of structure
// name to structure.
func ParseStructures(data []byte) (map[string]Structure, error) {
	var out map[string]Structure
	if err := yaml.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("parsing structures: %w", err)
	}
	if out == nil {
		out = map[string]Structure{}
	}
	return out, nil
}

// ParseStructuresFile reads and decodes a structures document.
func ParseStructuresFile(path string) (map[string]Structure, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	s, err := ParseStructures(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// ParseTemplates decodes a templates document: a mapping of well-known
// filename to boilerplate body.
func ParseTemplates(data []byte) (map[string]string, error) {
	var out map[string]string
	if err := yaml.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}
	if out == nil {
		out = map[string]string{}
	}
	return out, nil
}

// Names returns the structure names in sorted order.
func Names(structures map[string]Structure) []string {
	names := make([]string, 0, len(structures))
	for name := range structures {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// readFile reads the contents of a file at the given path.
func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	return data, nil
}
