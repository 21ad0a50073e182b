package tablegen_test

import (
	"testing"

	"github.com/keurnel/x86decode/internal/diagnostics"
	"github.com/keurnel/x86decode/internal/tablegen"
)

func TestLexer_TracksIncludedFileMarkers(t *testing.T) {
	source := "ENTRY opcode=0x00 mnemonic=ADD\n" +
		"; FILE: frag.spec\n" +
		"ENTRY opcode=0x01 mnemonic=OR\n" +
		"ENTRY opcode=0x02 mnemonic=AND\n" +
		"; END FILE: frag.spec\n" +
		"ENTRY opcode=0x03 mnemonic=SUB\n"

	lex := tablegen.NewLexer(source)

	line, ok := lex.Next()
	if !ok || line.File != "" {
		t.Fatalf("line 1: File = %q, want empty (primary file)", line.File)
	}

	line, ok = lex.Next()
	if !ok || line.File != "frag.spec" || line.FileLine != 1 {
		t.Fatalf("line 2: File = %q FileLine = %d, want frag.spec/1", line.File, line.FileLine)
	}

	line, ok = lex.Next()
	if !ok || line.File != "frag.spec" || line.FileLine != 2 {
		t.Fatalf("line 3: File = %q FileLine = %d, want frag.spec/2", line.File, line.FileLine)
	}

	line, ok = lex.Next()
	if !ok || line.File != "" {
		t.Fatalf("line 4 (after END FILE): File = %q, want empty", line.File)
	}
}

func TestParser_AttributesErrorsToIncludedFile(t *testing.T) {
	source := "ENTRY opcode=0x00 mnemonic=ADD\n" +
		"; FILE: frag.spec\n" +
		"GARBAGE not=a-record\n" +
		"; END FILE: frag.spec\n"

	diag := diagnostics.NewContext("main.spec")
	parser := tablegen.NewParser(source, diag)
	parser.Parse()

	errs := diag.Errors()
	if len(errs) != 1 {
		t.Fatalf("got %d errors, want 1: %v", len(errs), errs)
	}
	loc := errs[0].Location()
	if loc.FilePath() != "frag.spec" || loc.Line() != 1 {
		t.Fatalf("location = %s, want frag.spec:1", loc.String())
	}
	if errs[0].Snippet() == "" {
		t.Fatalf("expected a snippet attached to the malformed-record error")
	}
	if errs[0].Hint() == "" {
		t.Fatalf("expected a hint attached to the malformed-record error")
	}
}
