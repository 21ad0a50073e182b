package decode

import (
	"fmt"
	"strings"

	"github.com/keurnel/x86decode/architecture/x86_64/regs"
)

// DebugString renders an Instruction in a human-readable form for tests and
// diagnostics (§11). It is not part of the decode hot path and is never
// called from Decode itself — accumulation (Decode) and human-facing
// rendering stay in separate files, the same split the table generator's
// internal/diagnostics keeps between recording an entry and formatting
// one for a terminal.
func (in *Instruction) DebugString() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s", in.mnemonic)
	for i := 0; i < in.numOperands; i++ {
		if i == 0 {
			b.WriteByte(' ')
		} else {
			b.WriteString(", ")
		}
		b.WriteString(operandDebugString(in.operands[i], in.operandSize))
	}
	return b.String()
}

func operandDebugString(op Operand, opSize int) string {
	width := regs.Width32
	switch opSize {
	case 1:
		width = regs.Width8
	case 2:
		width = regs.Width16
	case 8:
		width = regs.Width64
	}

	switch op.Kind {
	case OperandReg:
		if op.RegKind == regs.GPR {
			return regs.GPName(op.RegIndex, width, true)
		}
		return regs.Name(op.RegKind, op.RegIndex)
	case OperandImm:
		return fmt.Sprintf("0x%x", op.ImmSized)
	case OperandPCRel:
		return fmt.Sprintf("0x%x", op.PCTarget)
	case OperandMem:
		if op.RIPRelative {
			prefix := ""
			if op.Segment() != SegNone {
				prefix = op.Segment().String() + ":"
			}
			return fmt.Sprintf("%s[rip+0x%x]", prefix, op.MemTarget)
		}
		var inner strings.Builder
		if op.HasBase {
			inner.WriteString(regs.GPName(op.BaseReg, regs.Width64, true))
		}
		if op.HasIndex {
			if inner.Len() > 0 {
				inner.WriteByte('+')
			}
			fmt.Fprintf(&inner, "%s*%d", regs.GPName(op.IndexReg, regs.Width64, true), op.Scale)
		}
		prefix := ""
		if op.Segment() != SegNone {
			prefix = op.Segment().String() + ":"
		}
		return fmt.Sprintf("%s[%s]", prefix, inner.String())
	default:
		return "?"
	}
}
