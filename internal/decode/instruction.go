package decode

// maxOperands is the fixed operand-slot count carried by every Instruction
// (§3.1, §9 "Variant operand" — a fixed array avoids indirection; no
// x86 encoding in this decoder's scope needs a fifth operand).
const maxOperands = 4

// Instruction is the single output of decoding (§3.1). It is fixed-size and
// contains no indirection: callers own the value, and the decoder never
// retains a reference to it after Decode returns.
type Instruction struct {
	mnemonic    Mnemonic
	length      int
	address     uint64
	operandSize int
	addressSize int
	prefixes    PrefixFlags
	segment     SegmentOverride
	operands    [maxOperands]Operand
	numOperands int
	immediate   int64
	displacement int64
}

// Mnemonic returns the decoded instruction's opcode-level identity.
func (in *Instruction) Mnemonic() Mnemonic { return in.mnemonic }

// Length returns the number of bytes consumed, 1..15.
func (in *Instruction) Length() int { return in.length }

// Address returns the virtual address supplied to Decode, stored verbatim.
func (in *Instruction) Address() uint64 { return in.address }

// OperandSize returns the effective operand size in bytes, or 0 for the
// §6.5 exception list and for over-approximated SIMD permute-style sizes.
func (in *Instruction) OperandSize() int { return in.operandSize }

// AddressSize returns the effective address size in bytes for memory
// operands: 2, 4, or 8.
func (in *Instruction) AddressSize() int { return in.addressSize }

// HasPrefix reports whether the given prefix flag is set.
func (in *Instruction) HasPrefix(flag PrefixFlags) bool { return in.prefixes.Has(flag) }

// PrefixFlags returns the full prefix bitset.
func (in *Instruction) PrefixFlags() PrefixFlags { return in.prefixes }

// SegmentOverride returns the effective segment override.
func (in *Instruction) SegmentOverride() SegmentOverride { return in.segment }

// NumOperands returns how many of the fixed operand slots are populated.
func (in *Instruction) NumOperands() int { return in.numOperands }

// Operand returns operand slot i (0-based). Returns a zero-value
// OperandNone operand if i is out of range, rather than panicking — callers
// are expected to bound their loop with NumOperands, but an accessor is not
// a place to introduce a panic path into a decoder with no I/O and no
// recovery story.
func (in *Instruction) Operand(i int) Operand {
	if i < 0 || i >= maxOperands {
		return Operand{}
	}
	return in.operands[i]
}

// Immediate returns the decoded immediate, sign- or zero-extended per the
// encoding. Only meaningful if some operand references it.
func (in *Instruction) Immediate() int64 { return in.immediate }

// Displacement returns the decoded memory displacement. Only meaningful for
// memory operands that carry one.
func (in *Instruction) Displacement() int64 { return in.displacement }

// PCRelTarget returns the resolved absolute target of a PC-relative
// operand, if this instruction has one, and whether one was present.
func (in *Instruction) PCRelTarget() (uint64, bool) {
	for i := 0; i < in.numOperands; i++ {
		if in.operands[i].Kind == OperandPCRel {
			return in.operands[i].PCTarget, true
		}
	}
	return 0, false
}

// appendOperand fills the next free operand slot. Callers (the decoder)
// guarantee numOperands never exceeds maxOperands — no x86 encoding in
// this decoder's table needs more than four.
func (in *Instruction) appendOperand(op Operand) {
	in.operands[in.numOperands] = op
	in.numOperands++
}
