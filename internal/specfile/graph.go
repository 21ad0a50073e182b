package specfile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// dependencyNode is one file reachable from the root spec file via !include
// directives.
type dependencyNode struct {
	path  string
	edges []string
}

// Graph detects !include cycles across a spec file tree before the parser
// ever runs.
type Graph struct {
	cwd   string
	nodes map[string]*dependencyNode
}

// BuildGraph scans rootSource (the content of rootPath) and every file it
// transitively !includes, building the dependency graph rooted at rootPath.
func BuildGraph(rootPath, rootSource, cwd string) (*Graph, error) {
	g := &Graph{cwd: cwd, nodes: make(map[string]*dependencyNode)}
	root := &dependencyNode{path: rootPath}
	g.nodes[rootPath] = root
	if err := g.scan(rootSource, root); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Graph) scan(source string, parent *dependencyNode) error {
	for _, line := range strings.Split(source, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "!include") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		raw := strings.Trim(fields[1], `"`)
		if !strings.HasSuffix(raw, ".spec") {
			return fmt.Errorf("specfile: included file %q is not a .spec file", raw)
		}

		resolved := raw
		if !filepath.IsAbs(raw) {
			resolved = filepath.Join(g.cwd, raw)
		}

		node, exists := g.nodes[resolved]
		var content []byte
		if !exists {
			var err error
			content, err = os.ReadFile(resolved)
			if err != nil {
				return fmt.Errorf("specfile: failed to read %q: %w", resolved, err)
			}
			node = &dependencyNode{path: resolved}
			g.nodes[resolved] = node
		}
		parent.edges = append(parent.edges, resolved)
		if !exists {
			if err := g.scan(string(content), node); err != nil {
				return err
			}
		}
	}
	return nil
}

// CyclePath returns the node path sequence forming the first include cycle
// found, or nil if the graph is acyclic.
func (g *Graph) CyclePath() []string {
	visited := make(map[string]bool, len(g.nodes))
	stack := make(map[string]bool, len(g.nodes))
	for name := range g.nodes {
		if !visited[name] {
			if path := g.cyclic(name, visited, stack, nil); path != nil {
				return path
			}
		}
	}
	return nil
}

func (g *Graph) cyclic(name string, visited, stack map[string]bool, path []string) []string {
	visited[name] = true
	stack[name] = true
	path = append(path, name)

	for _, target := range g.nodes[name].edges {
		if stack[target] {
			for i, n := range path {
				if n == target {
					cycle := append([]string{}, path[i:]...)
					return append(cycle, target)
				}
			}
			return []string{target}
		}
		if !visited[target] {
			if found := g.cyclic(target, visited, stack, path); found != nil {
				return found
			}
		}
	}
	stack[name] = false
	return nil
}
