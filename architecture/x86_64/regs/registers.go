// Package regs holds the x86/x86-64 register name tables shared by the
// table generator and the decoder, generalised from "assembler operand
// sources" to "decoder operand sinks": there is no RegistersByName lookup
// here because the decoder never sees register mnemonics, only (kind,
// index) pairs pulled out of ModR/M, SIB, and REX/VEX fields.
package regs

// Kind identifies the register file an operand index is drawn from.
type Kind int

const (
	GPR Kind = iota
	XMM
	YMM
	MMX
	Segment
	FPU
	Control
	Debug
	Mask
)

// String renders a Kind for debug output and diagnostics.
func (k Kind) String() string {
	switch k {
	case GPR:
		return "gpr"
	case XMM:
		return "xmm"
	case YMM:
		return "ymm"
	case MMX:
		return "mmx"
	case Segment:
		return "seg"
	case FPU:
		return "fpu"
	case Control:
		return "cr"
	case Debug:
		return "dr"
	case Mask:
		return "mask"
	default:
		return "?"
	}
}

// Width is the operand-size in bytes conventionally associated with a GPR
// index, given the effective operand size. Segment, FPU, and mask register
// operands always report size 0 per §6.5 — callers should not consult this
// table for those kinds.
type Width int

const (
	Width8  Width = 1
	Width16 Width = 2
	Width32 Width = 4
	Width64 Width = 8
)

// gpNames8Legacy are the low-byte register names used when no REX prefix is
// present (AH/CH/DH/BH occupy encodings 4-7 instead of SPL/BPL/SIL/DIL).
var gpNames8Legacy = [8]string{"al", "cl", "dl", "bl", "ah", "ch", "dh", "bh"}

// gpNames8REX are the low-byte register names used once a REX prefix (even
// REX with no bits set) is present in the instruction.
var gpNames8REX = [16]string{
	"al", "cl", "dl", "bl", "spl", "bpl", "sil", "dil",
	"r8b", "r9b", "r10b", "r11b", "r12b", "r13b", "r14b", "r15b",
}

var gpNames16 = [16]string{
	"ax", "cx", "dx", "bx", "sp", "bp", "si", "di",
	"r8w", "r9w", "r10w", "r11w", "r12w", "r13w", "r14w", "r15w",
}

var gpNames32 = [16]string{
	"eax", "ecx", "edx", "ebx", "esp", "ebp", "esi", "edi",
	"r8d", "r9d", "r10d", "r11d", "r12d", "r13d", "r14d", "r15d",
}

var gpNames64 = [16]string{
	"rax", "rcx", "rdx", "rbx", "rsp", "rbp", "rsi", "rdi",
	"r8", "r9", "r10", "r11", "r12", "r13", "r14", "r15",
}

var segNames = [6]string{"es", "cs", "ss", "ds", "fs", "gs"}

var fpuNames = [8]string{"st0", "st1", "st2", "st3", "st4", "st5", "st6", "st7"}

var crNames = [16]string{
	"cr0", "cr1", "cr2", "cr3", "cr4", "cr5", "cr6", "cr7",
	"cr8", "cr9", "cr10", "cr11", "cr12", "cr13", "cr14", "cr15",
}

var drNames = [8]string{"dr0", "dr1", "dr2", "dr3", "dr4", "dr5", "dr6", "dr7"}

func simdName(prefix string, index int) string {
	const digits = "0123456789"
	if index < 10 {
		return prefix + string(digits[index])
	}
	return prefix + string(digits[index/10]) + string(digits[index%10])
}

// GPName returns the name of general-purpose register index idx at the
// given width. hasREX distinguishes the AH/CH/DH/BH legacy high-byte
// encodings (hasREX == false) from SPL/BPL/SIL/DIL (hasREX == true) for the
// 8-bit width, matching the real encoding ambiguity at indices 4-7.
func GPName(idx int, width Width, hasREX bool) string {
	switch width {
	case Width8:
		if idx < 8 && !hasREX {
			return gpNames8Legacy[idx]
		}
		return gpNames8REX[idx]
	case Width16:
		return gpNames16[idx]
	case Width32:
		return gpNames32[idx]
	default:
		return gpNames64[idx]
	}
}

// Name returns the conventional register name for (kind, index), used only
// by debug output (internal/decode's DebugString) and diagnostics — never
// consulted on the decode hot path.
func Name(kind Kind, index int) string {
	switch kind {
	case GPR:
		return gpNames64[index&0xF]
	case XMM:
		return simdName("xmm", index)
	case YMM:
		return simdName("ymm", index)
	case MMX:
		return simdName("mm", index&7)
	case Segment:
		if index < len(segNames) {
			return segNames[index]
		}
	case FPU:
		return fpuNames[index&7]
	case Control:
		return crNames[index&0xF]
	case Debug:
		return drNames[index&7]
	case Mask:
		return simdName("k", index&7)
	}
	return "?"
}
