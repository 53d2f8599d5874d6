package manifest

import "path/filepath"

// Build flattens a structure and the user's extra subdirectories into a
// ProjectManifest rooted at root. Directory entries contribute their
// directory and the files inside it; file entries contribute a file directly
// under root. Extra subdirectories are appended after the structure's own
// directories, in order and without deduplication.
//
// Build does not touch the filesystem and does not validate names.
func Build(s Structure, extraSubdirs []string, root string) *ProjectManifest {
	m := &ProjectManifest{
		Root:        root,
		Directories: []string{},
		Files:       []string{},
	}

	for _, e := range s {
		if e.IsDir() {
			dir := filepath.Join(root, e.Dir)
			m.Directories = append(m.Directories, dir)
			for _, f := range e.Files {
				m.Files = append(m.Files, filepath.Join(dir, f))
			}
			continue
		}
		m.Files = append(m.Files, filepath.Join(root, e.File))
	}

	for _, sub := range extraSubdirs {
		m.Directories = append(m.Directories, filepath.Join(root, sub))
	}

	return m
}
