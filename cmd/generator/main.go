// Command generator compiles a tables/*.spec file into a Go source file
// defining a decodetab.Table, the same pipeline cmd/cli's generate-tables
// subcommand wraps for interactive use. It exists as its own binary so the
// table can be regenerated from a Makefile/CI step without going through
// cobra's command tree.
//
// Usage: generator <spec-file> [<package-name> <var-name>] <output-file>.
// Without the two middle arguments the package is "decodetab" and the
// variable "GeneratedX86_64".
package main

import (
	"fmt"
	"os"

	"github.com/keurnel/x86decode/internal/tablegen"
)

func main() {
	var specPath, packageName, varName, outPath string
	switch len(os.Args) {
	case 3:
		specPath, packageName, varName, outPath = os.Args[1], "decodetab", "GeneratedX86_64", os.Args[2]
	case 5:
		specPath, packageName, varName, outPath = os.Args[1], os.Args[2], os.Args[3], os.Args[4]
	default:
		fmt.Fprintln(os.Stderr, "usage: generator <spec-file> [<package-name> <var-name>] <output-file>")
		os.Exit(2)
	}

	tab, diag, err := tablegen.Generate(specPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "generator:", err)
		os.Exit(1)
	}
	if diag.HasErrors() {
		for _, e := range diag.Errors() {
			fmt.Fprintln(os.Stderr, e.String())
		}
		os.Exit(1)
	}

	src := tablegen.Emit(packageName, varName, tab)
	if err := os.WriteFile(outPath, []byte(src), 0644); err != nil {
		fmt.Fprintln(os.Stderr, "generator: failed to write output:", err)
		os.Exit(1)
	}
}
