package tablegen

import "strings"

// Lexer tokenizes one line of a tables/*.spec file into whitespace-separated
// words, skipping comments and blank lines. It operates a line at a time,
// since the spec file format is line-oriented records rather than a
// free-form token stream.
//
// It also recognises the `; FILE: path` / `; END FILE: path`
// marker comments internal/specfile.ExpandIncludes wraps included content in,
// so a line originating from an !include'd fragment can still be attributed
// to its own file and line number rather than the flattened source's.
type Lexer struct {
	lines    []string
	pos      int
	file     string
	fileLine int
}

// NewLexer returns a Lexer over source, split into physical lines.
func NewLexer(source string) *Lexer {
	return &Lexer{lines: strings.Split(source, "\n")}
}

// Line is one non-blank, non-comment physical line, numbered from 1 in the
// flattened source. File and FileLine additionally identify the original
// spec file and line number when this line came from an !include'd
// fragment; File is empty for lines from the primary spec file.
type Line struct {
	Number   int
	Words    []string
	File     string
	FileLine int
}

// Next returns the next significant line, or ok == false at end of input.
// Comment lines (starting with ';', after optional leading whitespace) and
// blank lines are skipped entirely, except for the `; FILE:` / `; END FILE:`
// include markers, which update the lexer's notion of the current origin
// file instead of being treated as ordinary comments.
func (l *Lexer) Next() (Line, bool) {
	for l.pos < len(l.lines) {
		lineNo := l.pos + 1
		raw := strings.TrimSpace(l.lines[l.pos])
		l.pos++

		if path, ok := strings.CutPrefix(raw, "; FILE: "); ok {
			l.file = path
			l.fileLine = 0
			continue
		}
		if strings.HasPrefix(raw, "; END FILE: ") {
			l.file = ""
			l.fileLine = 0
			continue
		}
		if l.file != "" {
			l.fileLine++
		}

		if raw == "" || strings.HasPrefix(raw, ";") {
			continue
		}
		return Line{Number: lineNo, Words: strings.Fields(raw), File: l.file, FileLine: l.fileLine}, true
	}
	return Line{}, false
}
