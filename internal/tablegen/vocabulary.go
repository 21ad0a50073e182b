package tablegen

import (
	"fmt"
	"strconv"

	"github.com/keurnel/x86decode/architecture/x86_64/regs"
	"github.com/keurnel/x86decode/internal/decodetab"
)

// Vocabulary is the generator's validated, immutable mapping from the
// string tokens a tables/*.spec file is written in — mnemonic names,
// operand template codes, processor-mode tags — to the decodetab types the
// dispatch tree is built from. It is consulted by Build, built once and
// never mutated.
type Vocabulary struct {
	mnemonics map[string]decodetab.Mnemonic
}

// NewVocabulary returns the vocabulary covering every mnemonic enum
// identifier listed by internal/decodetab's EnumIdentifiers.
func NewVocabulary() *Vocabulary {
	return &Vocabulary{mnemonics: decodetab.EnumIdentifiers()}
}

// Mnemonic resolves a spec-file mnemonic token (e.g. "ADD", "JCC_NE") to its
// decodetab.Mnemonic value.
func (v *Vocabulary) Mnemonic(name string) (decodetab.Mnemonic, error) {
	m, ok := v.mnemonics[name]
	if !ok {
		return decodetab.MnemonicInvalid, fmt.Errorf("unknown mnemonic %q", name)
	}
	return m, nil
}

// OperandTemplate resolves one Intel-manual-style operand template code
// (Eb, Ev, Gb, Gv, Ib, Iz, Jb, Jz, AL, eAX, CL, DX, M) to an OperandSpec.
// This is the generator's operand vocabulary — the counterpart of
// Vocabulary.Mnemonic for the operand-shape half of an ENTRY/GROUP record.
func OperandTemplate(code string) (decodetab.OperandSpec, error) {
	switch code {
	case "Eb", "Ev", "Ed", "Eq":
		return decodetab.OperandSpec{Source: decodetab.SrcModRMRM, Kind: regs.GPR}, nil
	case "Gb", "Gv", "Gd", "Gq":
		return decodetab.OperandSpec{Source: decodetab.SrcModRMReg, Kind: regs.GPR}, nil
	case "Ib", "Iz", "Iw":
		return decodetab.OperandSpec{Source: decodetab.SrcImm}, nil
	case "Jb", "Jz":
		return decodetab.OperandSpec{Source: decodetab.SrcRel}, nil
	case "AL", "eAX", "rAX":
		return decodetab.OperandSpec{Source: decodetab.SrcImplicitReg, Kind: regs.GPR, FixedReg: 0}, nil
	case "CL":
		return decodetab.OperandSpec{Source: decodetab.SrcImplicitReg, Kind: regs.GPR, FixedReg: 1}, nil
	case "DX":
		return decodetab.OperandSpec{Source: decodetab.SrcImplicitReg, Kind: regs.GPR, FixedReg: 2}, nil
	case "M", "Mp":
		return decodetab.OperandSpec{Source: decodetab.SrcModRMRM, Kind: regs.GPR}, nil
	case "Zv", "Zb":
		return decodetab.OperandSpec{Source: decodetab.SrcOpcodeReg, Kind: regs.GPR}, nil
	case "Ob", "Ov":
		return decodetab.OperandSpec{Source: decodetab.SrcMOffs}, nil
	default:
		return decodetab.OperandSpec{}, fmt.Errorf("unknown operand template %q", code)
	}
}

// ImmBytes parses an ENTRY/GROUP record's imm= field: a literal byte count,
// "z" for the IMM16/32 template class (decodetab's -1 sentinel), or "zq"
// for the REX.W-widened IMM16/32/64 class the B8-BF MOV r, imm family uses
// (decodetab's -2 sentinel).
func ImmBytes(s string) (int, error) {
	switch s {
	case "":
		return 0, nil
	case "z":
		return -1, nil
	case "zq":
		return -2, nil
	default:
		n, err := strconv.Atoi(s)
		if err != nil {
			return 0, fmt.Errorf("bad imm byte count %q: %w", s, err)
		}
		return n, nil
	}
}

// ModeGate parses an ENTRY record's mode= field.
func ModeGate(s string) (decodetab.ModeGate, error) {
	switch s {
	case "":
		return decodetab.ModeAny, nil
	case "only32":
		return decodetab.ModeOnly32, nil
	case "only64":
		return decodetab.ModeOnly64, nil
	default:
		return decodetab.ModeAny, fmt.Errorf("unknown mode gate %q", s)
	}
}

// OpcodeMap parses an ENTRY/GROUP/VEX record's map= field.
func OpcodeMap(s string) (decodetab.OpcodeMap, error) {
	switch s {
	case "one":
		return decodetab.MapOneByte, nil
	case "two":
		return decodetab.MapTwoByte, nil
	case "0f38":
		return decodetab.Map0F38, nil
	case "0f3a":
		return decodetab.Map0F3A, nil
	default:
		return decodetab.MapOneByte, fmt.Errorf("unknown opcode map %q", s)
	}
}
