package tablegen

import (
	"fmt"

	"github.com/keurnel/x86decode/internal/decodetab"
	"github.com/keurnel/x86decode/internal/diagnostics"
	"github.com/keurnel/x86decode/internal/specfile"
)

// Generate compiles the tables/*.spec file at path into a decodetab.Table,
// flattening !include directives first (internal/specfile), then lexing,
// parsing, and trie-building the flattened source. The returned
// diagnostics.Context carries every warning or recoverable parse error
// encountered along the way; callers should check HasErrors() before
// trusting the table for anything beyond inspection.
func Generate(path string) (*decodetab.Table, *diagnostics.Context, error) {
	source, err := specfile.Load(path)
	if err != nil {
		return nil, nil, err
	}

	diag := diagnostics.NewContext(path)

	diag.SetPhase("parse")
	parser := NewParser(source, diag)
	records := parser.Parse()
	if len(records) == 0 {
		diag.Warning(diag.Loc(0, 0), "spec file produced zero ENTRY/GROUP/VEX records")
	}

	diag.SetPhase("build")
	vocab := NewVocabulary()
	tab, err := Build(records, vocab)
	if err != nil {
		return nil, diag, fmt.Errorf("tablegen: %w", err)
	}

	diag.SetPhase("compress")
	Compress(tab)

	diag.Trace(diag.Loc(0, 0), fmt.Sprintf(
		"generation complete: %d record(s) compiled from %s", len(records), path))

	return tab, diag, nil
}
