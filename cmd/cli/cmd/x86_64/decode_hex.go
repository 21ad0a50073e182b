package x86_64

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/keurnel/x86decode/internal/decode"
	"github.com/spf13/cobra"
)

var (
	decodeHexMode    string
	decodeHexAddress string
)

var DecodeHexCmd = &cobra.Command{
	Use:     "decode-hex <hex-bytes>",
	GroupID: "decode",
	Short:   "Decode a run of hex-encoded bytes into instructions.",
	Long: `Decode a run of hex-encoded bytes into instructions, one per line,
stopping at the first byte sequence that does not decode cleanly.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runDecodeHex(cmd, args); err != nil {
			cmd.PrintErrln("Error:", err)
		}
	},
}

func init() {
	DecodeHexCmd.Flags().StringVar(&decodeHexMode, "mode", "64", "processor mode: 32 or 64")
	DecodeHexCmd.Flags().StringVar(&decodeHexAddress, "address", "0x0", "starting virtual address")
}

func runDecodeHex(cmd *cobra.Command, args []string) error {
	buf, err := parseHexBytes(args[0])
	if err != nil {
		return fmt.Errorf("invalid hex bytes: %w", err)
	}

	mode, err := parseMode(decodeHexMode)
	if err != nil {
		return err
	}

	address, err := parseAddress(decodeHexAddress)
	if err != nil {
		return fmt.Errorf("invalid address: %w", err)
	}

	instructions, decErr := decode.DecodeAll(buf, mode, address)
	for i, in := range instructions {
		cmd.Printf("%04x: %s\n", i, in.DebugString())
	}
	if decErr != nil {
		return fmt.Errorf("decode stopped after %d instruction(s): %w", len(instructions), decErr)
	}
	return nil
}

// parseHexBytes accepts both compact ("4889d8") and space-separated
// ("48 89 d8") hex byte strings.
func parseHexBytes(s string) ([]byte, error) {
	s = strings.Join(strings.Fields(s), "")
	s = strings.TrimPrefix(s, "0x")
	return hex.DecodeString(s)
}

func parseMode(s string) (decode.Mode, error) {
	switch s {
	case "32":
		return decode.Mode32, nil
	case "64":
		return decode.Mode64, nil
	default:
		return 0, fmt.Errorf("unknown mode %q, want 32 or 64", s)
	}
}

func parseAddress(s string) (uint64, error) {
	s = strings.TrimPrefix(s, "0x")
	return strconv.ParseUint(s, 16, 64)
}
