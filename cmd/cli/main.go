// Command cli is the x86decode command-line front end: decode-hex for
// ad-hoc decoding of a hex byte string, and generate-tables for the
// §6.6 build-time table generator contract, both wired as cobra
// subcommands under the x86_64 architecture group.
package main

import "github.com/keurnel/x86decode/cmd/cli/cmd"

func main() {
	cmd.Execute()
}
