package cmd

import (
	"github.com/keurnel/x86decode/cmd/cli/cmd/x86_64"
	"github.com/spf13/cobra"
)

var x8664Cmd = &cobra.Command{
	Use:     "x86_64",
	GroupID: "arch",
	Short:   "x86_64 architecture",
	Long:    `Functions related to decoding x86/x86-64 machine code.`,
}

func init() {
	x8664Cmd.AddGroup(
		&cobra.Group{ID: "decode", Title: "Decoding"},
		&cobra.Group{ID: "tables", Title: "Table generation"},
	)
	x8664Cmd.AddCommand(x86_64.DecodeHexCmd)
	x8664Cmd.AddCommand(x86_64.GenerateTablesCmd)
}
