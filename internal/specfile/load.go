package specfile

import (
	"fmt"
	"path/filepath"
)

// Load reads path and returns its source with its own !include directives
// expanded by ExpandIncludes, ready for internal/tablegen's lexer. Before
// expanding anything it rejects an include cycle anywhere in the !include
// tree. Expansion is one level deep: !include directives inside an
// included file are left in the returned source unexpanded.
func Load(path string) (string, error) {
	root := NewPersistedFile(path)
	if err := root.Load(); err != nil {
		return "", fmt.Errorf("specfile: %w", err)
	}

	cwd := filepath.Dir(path)
	graph, err := BuildGraph(path, *root.Content, cwd)
	if err != nil {
		return "", err
	}
	if cycle := graph.CyclePath(); cycle != nil {
		return "", fmt.Errorf("specfile: include cycle detected: %v", cycle)
	}

	expanded, _, err := ExpandIncludes(*root.Content, cwd, nil)
	if err != nil {
		return "", err
	}
	return expanded, nil
}
