package tablegen_test

import (
	"go/parser"
	"go/token"
	"strings"
	"testing"

	"github.com/keurnel/x86decode/internal/tablegen"
)

// TestEmit_ProducesParseableSource guards the one property a code
// generator absolutely cannot get wrong: its output must be syntactically
// valid Go. It doesn't type-check the result (that needs the full import
// graph resolved), just parses it.
func TestEmit_ProducesParseableSource(t *testing.T) {
	tab, diag, err := tablegen.Generate(specPath)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if diag.HasErrors() {
		t.Fatalf("unexpected errors: %v", diag.Errors())
	}

	src := tablegen.Emit("decodetab", "GeneratedX86_64", tab)

	fset := token.NewFileSet()
	if _, err := parser.ParseFile(fset, "generated_x86_64.go", src, parser.AllErrors); err != nil {
		t.Fatalf("Emit produced unparseable source: %v\n---\n%s", err, src)
	}
}

// TestEmit_QualifiesTypesForAForeignPackage checks that emitting into a
// package other than decodetab itself qualifies every decodetab type name
// and adds the decodetab import, since the generated file can no longer
// rely on being decodetab's own package.
func TestEmit_QualifiesTypesForAForeignPackage(t *testing.T) {
	tab, diag, err := tablegen.Generate(specPath)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if diag.HasErrors() {
		t.Fatalf("unexpected errors: %v", diag.Errors())
	}

	src := tablegen.Emit("mypackage", "Tab", tab)

	if !strings.Contains(src, `"github.com/keurnel/x86decode/internal/decodetab"`) {
		t.Fatalf("expected a decodetab import when emitting into a foreign package:\n%s", src)
	}
	if !strings.Contains(src, "decodetab.Table") {
		t.Fatalf("expected qualified decodetab.Table in foreign-package output:\n%s", src)
	}

	fset := token.NewFileSet()
	if _, err := parser.ParseFile(fset, "tab.go", src, parser.AllErrors); err != nil {
		t.Fatalf("Emit produced unparseable source: %v\n---\n%s", err, src)
	}
}

// TestEmit_DeterministicAcrossRuns checks that emitting the same table
// twice produces byte-identical source — the VEX map's sorted-key
// iteration is what makes this possible despite Go's randomised map
// iteration order.
func TestEmit_DeterministicAcrossRuns(t *testing.T) {
	tab, _, err := tablegen.Generate(specPath)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	first := tablegen.Emit("decodetab", "GeneratedX86_64", tab)
	for i := 0; i < 5; i++ {
		if got := tablegen.Emit("decodetab", "GeneratedX86_64", tab); got != first {
			t.Fatalf("Emit run %d differs from the first run", i)
		}
	}
}
