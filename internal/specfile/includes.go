package specfile

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
)

// includeDirectiveRegex matches the `!include "path.spec"` directive
// recognised by tables/x86_64.spec.
var includeDirectiveRegex = regexp.MustCompile(`(?m)^\s*!include\s+"([^"]+)"\s*$`)

// Inclusion records one !include directive resolved while flattening a spec
// file, for diagnostics location reporting (internal/diagnostics).
type Inclusion struct {
	IncludedFilePath string
	LineNumber       int
}

// ExpandIncludes replaces every `!include "path.spec"` directive in source
// with the content of the referenced file, wrapped in `; FILE:` / `; END
// FILE:` marker comments so a later parse error can still be attributed to
// the originating file. Only .spec files may be included; any other
// extension is a specfile error.
//
// alreadyIncluded deduplicates shared dependencies across multiple calls
// (e.g. two top-level record files that both !include the same
// encoding-group fragment) — a directive referencing an already-included
// path is silently stripped rather than inlined a second time. Pass nil if
// no deduplication is needed.
//
// A relative path in a directive is resolved against baseDir (the
// directory holding the file being expanded), matching how Graph.scan
// resolves the same directives when building the cycle-detection graph —
// the two must agree, or a file readable by one would be unreadable by
// the other.
func ExpandIncludes(source, baseDir string, alreadyIncluded map[string]bool) (string, []Inclusion, error) {
	if len(source) == 0 || !strings.Contains(source, "!include") {
		return source, nil, nil
	}

	matches := includeDirectiveRegex.FindAllStringSubmatchIndex(source, -1)
	inclusions := make([]Inclusion, 0, len(matches))
	var sharedPaths []string

	for _, m := range matches {
		if len(m) < 4 {
			continue
		}
		lineNumber := strings.Count(source[:m[0]], "\n") + 1
		path := source[m[2]:m[3]]

		if !strings.HasSuffix(path, ".spec") {
			return "", nil, fmt.Errorf("specfile: included file %q at line %d must have a .spec extension", path, lineNumber)
		}

		if alreadyIncluded != nil && alreadyIncluded[path] {
			sharedPaths = append(sharedPaths, path)
			continue
		}
		inclusions = append(inclusions, Inclusion{IncludedFilePath: path, LineNumber: lineNumber})
	}

	seen := make(map[string]bool, len(inclusions))
	deduped := make([]Inclusion, 0, len(inclusions))
	for _, inc := range inclusions {
		if seen[inc.IncludedFilePath] {
			continue
		}
		seen[inc.IncludedFilePath] = true
		deduped = append(deduped, inc)
	}
	inclusions = deduped

	for idx := len(inclusions) - 1; idx >= 0; idx-- {
		inc := inclusions[idx]
		resolved := inc.IncludedFilePath
		if !filepath.IsAbs(resolved) {
			resolved = filepath.Join(baseDir, resolved)
		}
		contentBytes, err := OsReadFile(resolved)
		if err != nil {
			return "", nil, fmt.Errorf("specfile: failed to read included file %q at line %d: %w", inc.IncludedFilePath, inc.LineNumber, err)
		}

		wrapped := fmt.Sprintf("; FILE: %s\n%s\n; END FILE: %s\n",
			inc.IncludedFilePath, strings.TrimSpace(string(contentBytes)), inc.IncludedFilePath)

		pattern := regexp.MustCompile(`(?m)^\s*!include\s+"` + regexp.QuoteMeta(inc.IncludedFilePath) + `"\s*$`)
		if loc := pattern.FindStringIndex(source); loc != nil {
			source = source[:loc[0]] + wrapped + source[loc[1]:]
		}
		if alreadyIncluded != nil {
			alreadyIncluded[inc.IncludedFilePath] = true
		}
	}

	for _, path := range sharedPaths {
		pattern := regexp.MustCompile(`(?m)^\s*!include\s+"` + regexp.QuoteMeta(path) + `"\s*\n?`)
		source = pattern.ReplaceAllString(source, "")
	}
	for path := range seen {
		pattern := regexp.MustCompile(`(?m)^\s*!include\s+"` + regexp.QuoteMeta(path) + `"\s*\n?`)
		source = pattern.ReplaceAllString(source, "")
	}

	return source, inclusions, nil
}
