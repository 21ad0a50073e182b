package decode

import "github.com/keurnel/x86decode/architecture/x86_64/regs"

// OperandKind is the tag of the Operand sum type (§3.2).
type OperandKind int

const (
	OperandNone OperandKind = iota
	OperandReg
	OperandMem
	OperandImm
	OperandPCRel
)

func (k OperandKind) String() string {
	switch k {
	case OperandNone:
		return "none"
	case OperandReg:
		return "reg"
	case OperandMem:
		return "mem"
	case OperandImm:
		return "imm"
	case OperandPCRel:
		return "pcrel"
	default:
		return "?"
	}
}

// Scale is the SIB scale factor, one of {1, 2, 4, 8}.
type Scale uint8

// Operand is a tagged variant (§3.2). Every field is present regardless of
// Kind — this is a discriminated struct, not an untagged union (§9,
// "Variant operand"), so the zero value of unused fields is simply ignored
// by Kind-aware accessors. No field is a pointer: the Instruction record is
// stack-resident and allocation-free.
type Operand struct {
	Kind OperandKind

	// Valid when Kind == OperandReg.
	RegKind  regs.Kind
	RegIndex int

	// Valid when Kind == OperandMem. HasBase/HasIndex distinguish an
	// absent register slot from index 0 (RAX/EAX), since both are valid
	// encodings.
	HasBase   bool
	BaseReg   int
	HasIndex  bool
	IndexReg  int
	Scale     Scale
	MemSeg    SegmentOverride
	DispValid bool

	// RIPRelative is set when Kind == OperandMem and the ModR/M byte decoded
	// to mod=00,rm=101 under 64-bit addressing (§3.2, §4.1 phase 4): no base
	// or index register is present, and MemTarget already carries the
	// resolved absolute address (instruction address + length + disp32,
	// wrapped modulo 2^64) rather than leaving the caller to redo that
	// arithmetic from the raw displacement.
	RIPRelative bool
	MemTarget   uint64

	// Valid when Kind == OperandImm: the instruction's Immediate field is
	// the payload, sized by Instruction.OperandSize unless the mnemonic
	// overrides (§3.2).
	ImmSized int

	// Valid when Kind == OperandPCRel: the resolved absolute target,
	// computed as address + length + displacement at decode time,
	// wrapping modulo 2^64 (§8, "Boundaries").
	PCTarget uint64
}

// IsRegister reports whether the operand is a register reference.
func (o Operand) IsRegister() bool { return o.Kind == OperandReg }

// IsMemory reports whether the operand is a memory reference.
func (o Operand) IsMemory() bool { return o.Kind == OperandMem }

// Register returns the operand's register kind and index. Only meaningful
// when IsRegister() is true.
func (o Operand) Register() (regs.Kind, int) { return o.RegKind, o.RegIndex }

// MemoryBase returns the memory operand's base register index and whether
// one is present.
func (o Operand) MemoryBase() (int, bool) { return o.BaseReg, o.HasBase }

// MemoryIndex returns the memory operand's index register index, whether
// one is present, and the SIB scale factor.
func (o Operand) MemoryIndex() (int, bool, Scale) { return o.IndexReg, o.HasIndex, o.Scale }

// Segment returns the effective segment for a memory operand, after
// override resolution (§4.1 phase 6).
func (o Operand) Segment() SegmentOverride { return o.MemSeg }

// RIPTarget returns the resolved absolute address of a RIP-relative memory
// operand and whether the operand is in fact RIP-relative. Only meaningful
// when IsMemory() is true.
func (o Operand) RIPTarget() (uint64, bool) { return o.MemTarget, o.RIPRelative }
