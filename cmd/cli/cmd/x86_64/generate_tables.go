package x86_64

import (
	"fmt"
	"os"

	"github.com/keurnel/x86decode/internal/tablegen"
	"github.com/spf13/cobra"
)

var (
	generateTablesPackage string
	generateTablesVar     string
	generateTablesOut     string
)

var GenerateTablesCmd = &cobra.Command{
	Use:     "generate-tables <spec-file>",
	GroupID: "tables",
	Short:   "Compile a tables/*.spec file into a decodetab.Table Go source file.",
	Long: `Compile a tables/*.spec file into a decodetab.Table Go source file,
the same pipeline cmd/generator wraps as a standalone binary. Error
diagnostics collected while parsing are printed to stderr and abort
generation; a record that cannot be built aborts it with that error. On
either failure the command exits with status 1.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runGenerateTables(cmd, args); err != nil {
			cmd.PrintErrln("Error:", err)
			os.Exit(1)
		}
	},
}

func init() {
	GenerateTablesCmd.Flags().StringVar(&generateTablesPackage, "package", "decodetab", "generated file's package name")
	GenerateTablesCmd.Flags().StringVar(&generateTablesVar, "var", "GeneratedX86_64", "generated table variable name")
	GenerateTablesCmd.Flags().StringVar(&generateTablesOut, "out", "", "output file path (required)")
}

func runGenerateTables(cmd *cobra.Command, args []string) error {
	if generateTablesOut == "" {
		return fmt.Errorf("--out is required")
	}
	specPath := args[0]

	tab, diag, err := tablegen.Generate(specPath)
	if err != nil {
		return err
	}
	for _, e := range diag.Errors() {
		cmd.PrintErrln(e.String())
	}
	if diag.HasErrors() {
		return fmt.Errorf("%d error(s) while compiling %s", len(diag.Errors()), specPath)
	}

	src := tablegen.Emit(generateTablesPackage, generateTablesVar, tab)
	if err := os.WriteFile(generateTablesOut, []byte(src), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", generateTablesOut, err)
	}
	cmd.Printf("wrote %s\n", generateTablesOut)
	return nil
}
