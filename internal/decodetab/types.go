// Package decodetab is the packed dispatch-table contract (§3.3) shared
// between internal/tablegen (the generator, §4.2) and internal/decode (the
// decoder, §4.1). Nothing in this package performs I/O or allocates beyond
// the fixed-size tables constructed once at package init by
// generated_x86_64.go, which is hand-written in the shape the generator
// emits (§3.4, "process-lifetime read-only data").
//
// The layout favours small, fixed-shape nodes over a pointer-rich tree only
// where it matters for footprint (terminals, §9 "Table representation");
// the dispatch skeleton itself is plain Go structs rather than a hand-packed
// byte blob, since indexing a Go slice/array is already O(1) and a real
// byte-packed format would buy nothing a freestanding C decoder doesn't
// already need for other reasons (no runtime, no GC).
package decodetab

import "github.com/keurnel/x86decode/architecture/x86_64/regs"

// OperandSource names where a Terminal's operand value is read from during
// phases 3-5 of the decode walk (§4.1).
type OperandSource int

const (
	SrcNone OperandSource = iota
	SrcModRMRM                  // ModR/M r/m field: register if mod==3, else a memory operand
	SrcModRMReg                 // ModR/M reg field: always a register
	SrcImm                      // the primary immediate
	SrcImm2                     // the second immediate (ENTER, EXTRQ)
	SrcRel                      // relative branch displacement, resolved to a PCREL operand
	SrcImplicitReg              // a fixed register encoded in the opcode itself (AL, EAX, RAX, CL, DX...)
	SrcOpcodeReg                // a register encoded in the low 3 bits of the opcode byte (+rd forms)
	SrcMOffs                    // the moffs direct-address form: a memory operand with displacement only
)

// OperandSpec describes one operand slot of a Terminal encoding.
type OperandSpec struct {
	Source   OperandSource
	Kind     regs.Kind // register kind this operand draws from, when applicable
	FixedReg int       // register index for SrcImplicitReg (e.g. 0 for AL/EAX/RAX, 2 for DX)
}

// ModeGate restricts a Terminal to one processor mode, or none (§4.2
// "ONLY64", "ONLY32" tags).
type ModeGate int8

const (
	ModeAny ModeGate = iota
	ModeOnly32
	ModeOnly64
)

// Terminal describes one decoded encoding (§3.3): a mnemonic, its operand
// template, and the immediate/displacement rules needed to consume the
// rest of the instruction. It is the leaf of the dispatch tree built by
// internal/tablegen and walked by internal/decode.
type Terminal struct {
	Mnemonic Mnemonic

	ModRM bool // whether a ModR/M byte (and possibly SIB) must be consumed

	Operands    [4]OperandSpec
	NumOperands int

	// ImmBytes is the size in bytes of the primary immediate (0, 1, 2, 4,
	// or 8); -1 means "16 if the operand-size-override prefix is present,
	// else 32" (the IMM16/32 template class); -2 is the same as -1 except
	// that REX.W widens it to 8 (the IMM16/32/64 class of MOV r64, imm64).
	ImmBytes      int
	ImmSignExtend bool

	// Imm2Bytes is the size of a second immediate, 0 if the encoding has
	// only one (ENTER's imm16,imm8 pair is the only user in this table).
	Imm2Bytes int

	// RelBytes is the size of a REL8/REL32 branch displacement, 0 if none.
	RelBytes int

	// Default64 marks operand-64-default mnemonics (near CALL/JMP/PUSH/POP
	// in 64-bit mode, §4.1 phase 6) whose operand size is 8 even without
	// REX.W.
	Default64 bool

	// Mode restricts this terminal to one processor mode.
	Mode ModeGate

	// MandatoryPrefix, if non-zero, is the legacy prefix byte (0x66, 0xF2,
	// 0xF3) this encoding requires. No terminal in GeneratedX86_64 sets it,
	// and Decode does not read it: a mandatory prefix is neither dispatched
	// on nor validated.
	MandatoryPrefix byte

	// StringOp marks SCAS/CMPS-family mnemonics, for which an F3 prefix
	// means REPZ architecturally but is still reported via PrefixRep
	// (§4.1 "String prefix quirk").
	StringOp bool

	// Invalid marks an explicitly-invalid terminal (decodes to ErrInvalid
	// rather than a real instruction). Used for opcode-extension slots
	// that the ISA leaves undefined.
	Invalid bool

}

// VEXSlot holds the up-to-two terminals reachable from one VEXKey,
// distinguished by the VEX.L bit (L0 = 128-bit/scalar, L1 = 256-bit). Either
// field may be nil if that L value is not a valid encoding at this key.
type VEXSlot struct {
	L0 *Terminal
	L1 *Terminal
}

// GroupNode dispatches on the ModR/M reg field (an opcode-extension group,
// §4.1 phase 3 discriminator 6/8).
type GroupNode struct {
	ByReg [8]*DispatchNode
}

// ModSplitNode dispatches on ModR/M mod == 3 vs mod != 3 (register form vs
// memory form, §4.1 phase 3 discriminator 7) — used where a group's
// register-operand and memory-operand forms are genuinely different
// encodings (e.g. group 0xFF /2: CALL r/m64 vs CALL m16:64 share nothing
// but the opcode extension).
type ModSplitNode struct {
	RegForm *DispatchNode
	MemForm *DispatchNode
}

// DispatchNode is one node of the trie: exactly one of its non-nil fields
// is meaningful, mirroring the generator's own internal node union
// (internal/tablegen builds the same shape before compression).
type DispatchNode struct {
	Terminal *Terminal
	Group    *GroupNode
	ModSplit *ModSplitNode
}

// OpcodeMap selects which root table an opcode byte is looked up in,
// chosen by escape-byte recognition before the table walk begins (§3.3).
type OpcodeMap int

const (
	MapOneByte OpcodeMap = iota
	MapTwoByte           // 0F xx
	Map0F38              // 0F 38 xx
	Map0F3A              // 0F 3A xx
)

// VEXKey identifies a VEX-table slot by opcode map selector, mandatory
// prefix (pp), and opcode byte — the VEX equivalent of the legacy root
// table's escape-byte + opcode-byte indexing (§4.1 phase 2/3).
type VEXKey struct {
	Map    OpcodeMap
	PP     byte // 0 = none, 1 = 0x66, 2 = 0xF3, 3 = 0xF2
	Opcode byte
}

// Table is the full dispatch structure produced by the generator and
// consumed by the decoder (§3.3). All four root tables are fixed-size
// 256-entry arrays indexed directly by opcode byte — sparse slots are simply
// nil, which the generator's compression pass (internal/tablegen/compress.go)
// is free to rewrite into denser indirection arrays without changing this
// type, since decode only ever indexes through the exported methods below.
type Table struct {
	OneByte    [256]*DispatchNode
	TwoByte    [256]*DispatchNode
	ThreeByte8 [256]*DispatchNode // 0F 38
	ThreeByteA [256]*DispatchNode // 0F 3A
	VEX        map[VEXKey]*VEXSlot
}

// Lookup returns the root-level dispatch node for the given opcode map and
// opcode byte, or nil if the byte sequence is not covered by any encoding
// record (§3.3 invariant: uncovered sequences decode to ErrInvalid).
func (t *Table) Lookup(m OpcodeMap, opcode byte) *DispatchNode {
	switch m {
	case MapOneByte:
		return t.OneByte[opcode]
	case MapTwoByte:
		return t.TwoByte[opcode]
	case Map0F38:
		return t.ThreeByte8[opcode]
	case Map0F3A:
		return t.ThreeByteA[opcode]
	default:
		return nil
	}
}

// LookupVEX returns the VEX-encoded slot for key, or nil.
func (t *Table) LookupVEX(key VEXKey) *VEXSlot {
	if t.VEX == nil {
		return nil
	}
	return t.VEX[key]
}
