package specfile

import "os"

// OsReadFile is overridable in tests, keeping filesystem access mockable
// without wrapping os.ReadFile behind an interface.
var OsReadFile = os.ReadFile

// PersistedFile is a tables/*.spec file as it exists on disk.
type PersistedFile struct {
	Path    string
	Content *string
}

// NewPersistedFile creates a PersistedFile for path with no content loaded yet.
func NewPersistedFile(path string) PersistedFile {
	return PersistedFile{Path: path}
}

// Load reads the file's content from disk into Content.
func (p *PersistedFile) Load() error {
	content, err := OsReadFile(p.Path)
	if err != nil {
		return err
	}
	s := string(content)
	p.Content = &s
	return nil
}

// Loaded reports whether Load has already populated Content.
func (p *PersistedFile) Loaded() bool {
	return p.Content != nil
}
