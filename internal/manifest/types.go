package manifest

import "errors"

// ErrMultiKeyEntry is returned when a directory entry maps more (or fewer)
// than one directory name to its file list.
var ErrMultiKeyEntry = errors.New("directory entry must have exactly one key")

// Entry is one item of a structure. It is either a bare file placed directly
// under the project root, or a directory with the files created inside it.
type Entry struct {
	File  string   // set for file entries
	Dir   string   // set for directory entries
	Files []string // files inside Dir; may be empty
}

// IsDir reports whether the entry declares a directory.
func (e Entry) IsDir() bool { return e.Dir != "" }

// FileEntry returns a bare file entry.
func FileEntry(name string) Entry { return Entry{File: name} }

// DirEntry returns a directory entry holding files.
func DirEntry(name string, files ...string) Entry {
	return Entry{Dir: name, Files: files}
}

// Structure is an ordered project layout as declared in structures.yaml.
type Structure []Entry

// ProjectManifest is the flattened list of paths to create for one run.
// Every path is rooted under the project root.
type ProjectManifest struct {
	Root        string
	Directories []string
	Files       []string
}

// Well-known structure names.
const (
	DefaultStructure  = "advanced"
	FallbackStructure = "basic"
)
