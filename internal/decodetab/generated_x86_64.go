package decodetab

import "github.com/keurnel/x86decode/architecture/x86_64/regs"

// generated_x86_64.go is hand-written in the shape internal/tablegen/emit.go
// would produce from a tables/*.spec file, not itself a run of the
// generator: it covers a substantially larger mnemonic surface
// (descriptor-table, string, shift, SETcc/CMOVcc families) than the
// checked-in tables/x86_64.spec encodes, so running cmd/generator over
// that file today would emit a strict subset of this table, not this table
// itself — see DESIGN.md, "Why two tables", for the coverage gap and the
// regeneration command once tables/x86_64.spec is grown to close it.
//
// GeneratedX86_64 is computed once at package init and never mutated
// afterwards (§3.3 "Tables are immutable after generation").
var GeneratedX86_64 = buildGeneratedX86_64()

func t(mn Mnemonic) *Terminal {
	return &Terminal{Mnemonic: mn}
}

func leaf(t *Terminal) *DispatchNode { return &DispatchNode{Terminal: t} }

func invalidLeaf() *DispatchNode { return &DispatchNode{Terminal: &Terminal{Invalid: true}} }

func group(entries [8]*DispatchNode) *DispatchNode {
	return &DispatchNode{Group: &GroupNode{ByReg: entries}}
}

// rmReg builds the standard two-operand "r/m, reg" or "reg, r/m" ModR/M
// terminal shared by the arithmetic, MOV, TEST, XCHG, and MOVZX/MOVSX
// families.
func rmReg(mn Mnemonic, kind regs.Kind, rmFirst bool) *Terminal {
	term := &Terminal{Mnemonic: mn, ModRM: true, NumOperands: 2}
	rm := OperandSpec{Source: SrcModRMRM, Kind: kind}
	reg := OperandSpec{Source: SrcModRMReg, Kind: kind}
	if rmFirst {
		term.Operands[0], term.Operands[1] = rm, reg
	} else {
		term.Operands[0], term.Operands[1] = reg, rm
	}
	return term
}

// arithGroup wires the six standard forms of a legacy arithmetic opcode
// group (ADD, OR, ADC, SBB, AND, SUB, XOR, CMP each follow this layout,
// offset from a distinct base opcode) into the one-byte table:
//
//	base+0: Eb, Gb      base+1: Ev, Gv
//	base+2: Gb, Eb      base+3: Gv, Ev
//	base+4: AL, Ib      base+5: eAX, Iz
func arithGroup(tab *Table, base byte, mn Mnemonic) {
	tab.OneByte[base+0] = leaf(rmReg(mn, regs.GPR, true))
	tab.OneByte[base+1] = leaf(rmReg(mn, regs.GPR, true))
	tab.OneByte[base+2] = leaf(rmReg(mn, regs.GPR, false))
	tab.OneByte[base+3] = leaf(rmReg(mn, regs.GPR, false))

	alImm := &Terminal{Mnemonic: mn, NumOperands: 2, ImmBytes: 1}
	alImm.Operands[0] = OperandSpec{Source: SrcImplicitReg, Kind: regs.GPR, FixedReg: 0}
	alImm.Operands[1] = OperandSpec{Source: SrcImm}
	tab.OneByte[base+4] = leaf(alImm)

	eaxImm := &Terminal{Mnemonic: mn, NumOperands: 2, ImmBytes: -1, ImmSignExtend: true}
	eaxImm.Operands[0] = OperandSpec{Source: SrcImplicitReg, Kind: regs.GPR, FixedReg: 0}
	eaxImm.Operands[1] = OperandSpec{Source: SrcImm}
	tab.OneByte[base+5] = leaf(eaxImm)
}

// immGroup wires the /0../7 opcode-extension group shared by
// 0x80 (Eb, Ib), 0x81 (Ev, Iz), and 0x83 (Ev, Ib sign-extended).
func immGroup(tab *Table, opcode byte, immBytes int, signExtend bool) {
	mnemonics := [8]Mnemonic{ADD, OR, ADC, SBB, AND, SUB, XOR, CMP}
	var entries [8]*DispatchNode
	for i, mn := range mnemonics {
		term := &Terminal{Mnemonic: mn, ModRM: true, NumOperands: 2, ImmBytes: immBytes, ImmSignExtend: signExtend}
		term.Operands[0] = OperandSpec{Source: SrcModRMRM, Kind: regs.GPR}
		term.Operands[1] = OperandSpec{Source: SrcImm}
		entries[i] = leaf(term)
	}
	tab.OneByte[opcode] = group(entries)
}

// unaryGroupF6F7 wires the 0xF6/0xF7 TEST/NOT/NEG/MUL/IMUL/DIV/IDIV group.
func unaryGroupF6F7(tab *Table, opcode byte, testImmBytes int) {
	var entries [8]*DispatchNode
	testTerm := &Terminal{Mnemonic: TEST, ModRM: true, NumOperands: 2, ImmBytes: testImmBytes}
	testTerm.Operands[0] = OperandSpec{Source: SrcModRMRM, Kind: regs.GPR}
	testTerm.Operands[1] = OperandSpec{Source: SrcImm}
	entries[0] = leaf(testTerm)
	entries[1] = leaf(testTerm)

	unary := func(mn Mnemonic) *DispatchNode {
		term := &Terminal{Mnemonic: mn, ModRM: true, NumOperands: 1}
		term.Operands[0] = OperandSpec{Source: SrcModRMRM, Kind: regs.GPR}
		return leaf(term)
	}
	entries[2] = unary(NOT)
	entries[3] = unary(NEG)
	entries[4] = unary(MUL)
	entries[5] = unary(IMUL)
	entries[6] = unary(DIV)
	entries[7] = unary(IDIV)
	tab.OneByte[opcode] = group(entries)
}

// incDecGroupFE wires 0xFE: /0 INC Eb, /1 DEC Eb.
func incDecGroupFE(tab *Table) {
	inc := &Terminal{Mnemonic: INC, ModRM: true, NumOperands: 1}
	inc.Operands[0] = OperandSpec{Source: SrcModRMRM, Kind: regs.GPR}
	dec := &Terminal{Mnemonic: DEC, ModRM: true, NumOperands: 1}
	dec.Operands[0] = OperandSpec{Source: SrcModRMRM, Kind: regs.GPR}
	tab.OneByte[0xFE] = group([8]*DispatchNode{leaf(inc), leaf(dec), invalidLeaf(), invalidLeaf(), invalidLeaf(), invalidLeaf(), invalidLeaf(), invalidLeaf()})
}

// groupFF wires 0xFF: /0 INC Ev, /1 DEC Ev, /2 CALL r/m (near), /4 JMP r/m
// (near), /6 PUSH r/m. The far-call/far-jmp slots (/3, /5) are left
// invalid — far branches are out of this table's coverage.
func groupFF(tab *Table) {
	unary := func(mn Mnemonic, default64 bool) *DispatchNode {
		term := &Terminal{Mnemonic: mn, ModRM: true, NumOperands: 1, Default64: default64}
		term.Operands[0] = OperandSpec{Source: SrcModRMRM, Kind: regs.GPR}
		return leaf(term)
	}
	tab.OneByte[0xFF] = group([8]*DispatchNode{
		unary(INC, false),
		unary(DEC, false),
		unary(CALL, true),
		invalidLeaf(),
		unary(JMP, true),
		invalidLeaf(),
		unary(PUSH, true),
		invalidLeaf(),
	})
}

// shiftGroup wires the 0xC0/0xC1 (imm8), 0xD0/0xD1 (implicit 1), and
// 0xD2/0xD3 (implicit CL) shift/rotate groups, which all share the same
// ROL/ROR/RCL/RCR/SHL/SHR/SAL/SAR-by-reg-field layout.
func shiftGroup(tab *Table, opcode byte, immBytes int, implicitCL bool) {
	mnemonics := [8]Mnemonic{ROL, ROR, RCL, RCR, SHL, SHR, SHL /* SAL aliases SHL */, SAR}
	var entries [8]*DispatchNode
	for i, mn := range mnemonics {
		term := &Terminal{Mnemonic: mn, ModRM: true}
		term.Operands[0] = OperandSpec{Source: SrcModRMRM, Kind: regs.GPR}
		switch {
		case immBytes > 0:
			term.NumOperands = 2
			term.Operands[1] = OperandSpec{Source: SrcImm}
			term.ImmBytes = immBytes
		case implicitCL:
			term.NumOperands = 2
			term.Operands[1] = OperandSpec{Source: SrcImplicitReg, Kind: regs.GPR, FixedReg: 1 /* CL */}
		default:
			term.NumOperands = 1
		}
		entries[i] = leaf(term)
	}
	tab.OneByte[opcode] = group(entries)
}

// opcodeRegTerminal builds a terminal for the 0x50-57/0x58-5F/0xB0-B7/
// 0xB8-BF "+rd" family, where the low 3 bits of the opcode byte (plus
// REX.B) select the register operand directly, with no ModR/M byte.
func opcodeRegTerminal(mn Mnemonic, kind regs.Kind, immBytes int, signExtend bool, default64 bool) *Terminal {
	term := &Terminal{Mnemonic: mn, NumOperands: 1, ImmBytes: immBytes, ImmSignExtend: signExtend, Default64: default64}
	term.Operands[0] = OperandSpec{Source: SrcOpcodeReg, Kind: kind}
	if immBytes != 0 {
		term.NumOperands = 2
		term.Operands[1] = OperandSpec{Source: SrcImm}
	}
	return term
}

func opcodeRegFamily(tab *Table, base byte, mn Mnemonic, kind regs.Kind, immBytes int, signExtend, default64 bool) {
	for i := byte(0); i < 8; i++ {
		tab.OneByte[base+i] = leaf(opcodeRegTerminal(mn, kind, immBytes, signExtend, default64))
	}
}

// incDecShortFamily wires the 0x40-0x4F one-byte INC/DEC "+rd" short forms
// (0x40-47 INC, 0x48-4F DEC), the 32-bit-mode counterpart to the ModR/M-based
// INC/DEC group at 0xFE/0xFF. These opcode bytes are reused as the REX prefix
// in 64-bit mode, so the decoder's REX consumption phase (§4.1 phase 2) never
// lets them reach this table there; ModeOnly32 makes that exclusion explicit
// rather than relying on it as an accident of dispatch order.
func incDecShortFamily(tab *Table, base byte, mn Mnemonic) {
	for i := byte(0); i < 8; i++ {
		term := opcodeRegTerminal(mn, regs.GPR, 0, false, false)
		term.Mode = ModeOnly32
		tab.OneByte[base+i] = leaf(term)
	}
}

// jccMnemonics lists the 16 Jcc mnemonics that jccShort (0x70, rel8) and
// jccNear (0x0F 0x80, rel32) wire in condition-code order O,NO,B,AE,E,NE,
// BE,A,S,NS,P,NP,L,GE,LE,G.
var jccMnemonics = [16]Mnemonic{
	JCC_O, JCC_NO, JCC_B, JCC_AE, JCC_E, JCC_NE, JCC_BE, JCC_A,
	JCC_S, JCC_NS, JCC_P, JCC_NP, JCC_L, JCC_GE, JCC_LE, JCC_G,
}

var setccMnemonics = [16]Mnemonic{
	SETCC_O, SETCC_NO, SETCC_B, SETCC_AE, SETCC_E, SETCC_NE, SETCC_BE, SETCC_A,
	SETCC_S, SETCC_NS, SETCC_P, SETCC_NP, SETCC_L, SETCC_GE, SETCC_LE, SETCC_G,
}

var cmovMnemonics = [16]Mnemonic{
	CMOVCC_O, CMOVCC_NO, CMOVCC_B, CMOVCC_AE, CMOVCC_E, CMOVCC_NE, CMOVCC_BE, CMOVCC_A,
	CMOVCC_S, CMOVCC_NS, CMOVCC_P, CMOVCC_NP, CMOVCC_L, CMOVCC_GE, CMOVCC_LE, CMOVCC_G,
}

func jccShort(tab *Table) {
	for i, mn := range jccMnemonics {
		term := &Terminal{Mnemonic: mn, NumOperands: 1, RelBytes: 1}
		term.Operands[0] = OperandSpec{Source: SrcRel}
		tab.OneByte[0x70+byte(i)] = leaf(term)
	}
}

func jccNear(tab *Table) {
	for i, mn := range jccMnemonics {
		term := &Terminal{Mnemonic: mn, NumOperands: 1, RelBytes: 4}
		term.Operands[0] = OperandSpec{Source: SrcRel}
		tab.TwoByte[0x80+byte(i)] = leaf(term)
	}
}

func setccFamily(tab *Table) {
	for i, mn := range setccMnemonics {
		term := &Terminal{Mnemonic: mn, ModRM: true, NumOperands: 1}
		term.Operands[0] = OperandSpec{Source: SrcModRMRM, Kind: regs.GPR}
		tab.TwoByte[0x90+byte(i)] = leaf(term)
	}
}

func cmovFamily(tab *Table) {
	for i, mn := range cmovMnemonics {
		term := rmReg(mn, regs.GPR, false)
		tab.TwoByte[0x40+byte(i)] = leaf(term)
	}
}

func buildGeneratedX86_64() *Table {
	tab := &Table{VEX: make(map[VEXKey]*VEXSlot)}

	// --- Arithmetic group: ADD/OR/ADC/SBB/AND/SUB/XOR/CMP (§4.2) ---
	arithGroup(tab, 0x00, ADD)
	arithGroup(tab, 0x08, OR)
	arithGroup(tab, 0x10, ADC)
	arithGroup(tab, 0x18, SBB)
	arithGroup(tab, 0x20, AND)
	arithGroup(tab, 0x28, SUB)
	arithGroup(tab, 0x30, XOR)
	arithGroup(tab, 0x38, CMP)

	immGroup(tab, 0x80, 1, false)
	immGroup(tab, 0x81, -1, true)
	immGroup(tab, 0x83, 1, true)

	unaryGroupF6F7(tab, 0xF6, 1)
	unaryGroupF6F7(tab, 0xF7, -1)
	incDecGroupFE(tab)
	groupFF(tab)

	shiftGroup(tab, 0xC0, 1, false)
	shiftGroup(tab, 0xC1, 1, false)
	shiftGroup(tab, 0xD0, 0, false)
	shiftGroup(tab, 0xD1, 0, false)
	shiftGroup(tab, 0xD2, 0, true)
	shiftGroup(tab, 0xD3, 0, true)

	// --- Data movement ---
	tab.OneByte[0x84] = leaf(rmReg(TEST, regs.GPR, true))
	tab.OneByte[0x85] = leaf(rmReg(TEST, regs.GPR, true))
	tab.OneByte[0x86] = leaf(rmReg(XCHG, regs.GPR, true))
	tab.OneByte[0x87] = leaf(rmReg(XCHG, regs.GPR, true))
	tab.OneByte[0x88] = leaf(rmReg(MOV, regs.GPR, true))
	tab.OneByte[0x89] = leaf(rmReg(MOV, regs.GPR, true))
	tab.OneByte[0x8A] = leaf(rmReg(MOV, regs.GPR, false))
	tab.OneByte[0x8B] = leaf(rmReg(MOV, regs.GPR, false))

	lea := &Terminal{Mnemonic: LEA, ModRM: true, NumOperands: 2}
	lea.Operands[0] = OperandSpec{Source: SrcModRMReg, Kind: regs.GPR}
	lea.Operands[1] = OperandSpec{Source: SrcModRMRM, Kind: regs.GPR}
	tab.OneByte[0x8D] = leaf(lea)

	movC6 := &Terminal{Mnemonic: MOV, ModRM: true, NumOperands: 2, ImmBytes: 1}
	movC6.Operands[0] = OperandSpec{Source: SrcModRMRM, Kind: regs.GPR}
	movC6.Operands[1] = OperandSpec{Source: SrcImm}
	tab.OneByte[0xC6] = group([8]*DispatchNode{leaf(movC6), invalidLeaf(), invalidLeaf(), invalidLeaf(), invalidLeaf(), invalidLeaf(), invalidLeaf(), invalidLeaf()})

	movC7 := &Terminal{Mnemonic: MOV, ModRM: true, NumOperands: 2, ImmBytes: -1, ImmSignExtend: true}
	movC7.Operands[0] = OperandSpec{Source: SrcModRMRM, Kind: regs.GPR}
	movC7.Operands[1] = OperandSpec{Source: SrcImm}
	tab.OneByte[0xC7] = group([8]*DispatchNode{leaf(movC7), invalidLeaf(), invalidLeaf(), invalidLeaf(), invalidLeaf(), invalidLeaf(), invalidLeaf(), invalidLeaf()})

	tab.OneByte[0x90] = leaf(t(NOP))
	opcodeRegFamily(tab, 0x91, XCHG, regs.GPR, 0, false, false)
	tab.OneByte[0x98] = leaf(t(CWDE)) // remapped by size in decode.go
	tab.OneByte[0x99] = leaf(t(CDQ))  // remapped by size in decode.go

	tab.OneByte[0x9B] = leaf(t(FWAIT))
	tab.OneByte[0x9C] = leaf(t(PUSHF))
	tab.OneByte[0x9D] = leaf(t(POPF))
	tab.OneByte[0x9E] = leaf(t(SAHF))
	tab.OneByte[0x9F] = leaf(t(LAHF))

	moffs := func(mn Mnemonic, toMem bool) *Terminal {
		term := &Terminal{Mnemonic: mn, NumOperands: 2}
		accum := OperandSpec{Source: SrcImplicitReg, Kind: regs.GPR, FixedReg: 0}
		mem := OperandSpec{Source: SrcMOffs}
		if toMem {
			term.Operands[0], term.Operands[1] = mem, accum
		} else {
			term.Operands[0], term.Operands[1] = accum, mem
		}
		return term
	}
	tab.OneByte[0xA0] = leaf(moffs(MOV, false))
	tab.OneByte[0xA1] = leaf(moffs(MOV, false))
	tab.OneByte[0xA2] = leaf(moffs(MOV, true))
	tab.OneByte[0xA3] = leaf(moffs(MOV, true))

	tab.OneByte[0xA4] = leaf(t(MOVS))
	tab.OneByte[0xA5] = leaf(t(MOVS))
	cmps := &Terminal{Mnemonic: CMPS, StringOp: true}
	tab.OneByte[0xA6] = leaf(cmps)
	tab.OneByte[0xA7] = leaf(cmps)

	testAL := &Terminal{Mnemonic: TEST, NumOperands: 2, ImmBytes: 1}
	testAL.Operands[0] = OperandSpec{Source: SrcImplicitReg, Kind: regs.GPR, FixedReg: 0}
	testAL.Operands[1] = OperandSpec{Source: SrcImm}
	tab.OneByte[0xA8] = leaf(testAL)
	testEAX := &Terminal{Mnemonic: TEST, NumOperands: 2, ImmBytes: -1}
	testEAX.Operands[0] = OperandSpec{Source: SrcImplicitReg, Kind: regs.GPR, FixedReg: 0}
	testEAX.Operands[1] = OperandSpec{Source: SrcImm}
	tab.OneByte[0xA9] = leaf(testEAX)

	tab.OneByte[0xAA] = leaf(t(STOS))
	tab.OneByte[0xAB] = leaf(t(STOS))
	tab.OneByte[0xAC] = leaf(t(LODS))
	tab.OneByte[0xAD] = leaf(t(LODS))
	scas := &Terminal{Mnemonic: SCAS, StringOp: true}
	tab.OneByte[0xAE] = leaf(scas)
	tab.OneByte[0xAF] = leaf(scas)

	incDecShortFamily(tab, 0x40, INC)
	incDecShortFamily(tab, 0x48, DEC)
	opcodeRegFamily(tab, 0x50, PUSH, regs.GPR, 0, false, true)
	opcodeRegFamily(tab, 0x58, POP, regs.GPR, 0, false, true)
	opcodeRegFamily(tab, 0xB0, MOV, regs.GPR, 1, false, false)
	opcodeRegFamily(tab, 0xB8, MOV, regs.GPR, -2, false, false)

	push32 := &Terminal{Mnemonic: PUSH, NumOperands: 1, ImmBytes: -1, Default64: true}
	push32.Operands[0] = OperandSpec{Source: SrcImm}
	tab.OneByte[0x68] = leaf(push32)
	push8 := &Terminal{Mnemonic: PUSH, NumOperands: 1, ImmBytes: 1, ImmSignExtend: true, Default64: true}
	push8.Operands[0] = OperandSpec{Source: SrcImm}
	tab.OneByte[0x6A] = leaf(push8)

	jccShort(tab)
	jccNear(tab)
	setccFamily(tab)
	cmovFamily(tab)

	retImm := &Terminal{Mnemonic: RET, NumOperands: 1, ImmBytes: 2}
	retImm.Operands[0] = OperandSpec{Source: SrcImm}
	tab.OneByte[0xC2] = leaf(retImm)
	tab.OneByte[0xC3] = leaf(t(RET))
	tab.OneByte[0xC9] = leaf(t(LEAVE))
	tab.OneByte[0xCC] = leaf(t(INT3))
	intImm := &Terminal{Mnemonic: INT, NumOperands: 1, ImmBytes: 1}
	intImm.Operands[0] = OperandSpec{Source: SrcImm}
	tab.OneByte[0xCD] = leaf(intImm)

	enter := &Terminal{Mnemonic: ENTER, NumOperands: 2, ImmBytes: 2, Imm2Bytes: 1}
	enter.Operands[0] = OperandSpec{Source: SrcImm}
	enter.Operands[1] = OperandSpec{Source: SrcImm2}
	tab.OneByte[0xC8] = leaf(enter)

	call32 := &Terminal{Mnemonic: CALL, NumOperands: 1, RelBytes: 4, Default64: true}
	call32.Operands[0] = OperandSpec{Source: SrcRel}
	tab.OneByte[0xE8] = leaf(call32)
	jmp32 := &Terminal{Mnemonic: JMP, NumOperands: 1, RelBytes: 4, Default64: true}
	jmp32.Operands[0] = OperandSpec{Source: SrcRel}
	tab.OneByte[0xE9] = leaf(jmp32)
	jmp8 := &Terminal{Mnemonic: JMP, NumOperands: 1, RelBytes: 1}
	jmp8.Operands[0] = OperandSpec{Source: SrcRel}
	tab.OneByte[0xEB] = leaf(jmp8)

	tab.OneByte[0xF4] = leaf(t(HLT))
	tab.OneByte[0xF5] = leaf(t(CMC))
	tab.OneByte[0xF8] = leaf(t(CLC))
	tab.OneByte[0xF9] = leaf(t(STC))
	tab.OneByte[0xFA] = leaf(t(CLI))
	tab.OneByte[0xFB] = leaf(t(STI))
	tab.OneByte[0xFC] = leaf(t(CLD))
	tab.OneByte[0xFD] = leaf(t(STD))

	// --- Two-byte (0F) map ---
	descGroup := func(mn0, mn1, mn2, mn3 Mnemonic) *DispatchNode {
		unary := func(mn Mnemonic) *DispatchNode {
			if mn == MnemonicInvalid {
				return invalidLeaf()
			}
			term := &Terminal{Mnemonic: mn, ModRM: true, NumOperands: 1}
			term.Operands[0] = OperandSpec{Source: SrcModRMRM, Kind: regs.GPR}
			return leaf(term)
		}
		return group([8]*DispatchNode{unary(mn0), unary(mn1), unary(mn2), unary(mn3), invalidLeaf(), invalidLeaf(), invalidLeaf(), invalidLeaf()})
	}
	tab.TwoByte[0x00] = descGroup(SLDT, STR, LLDT, LTR)
	tab.TwoByte[0x01] = descGroup(SGDT, SIDT, LGDT, LIDT)

	syscallTerm := &Terminal{Mnemonic: SYSCALL, Mode: ModeOnly64}
	tab.TwoByte[0x05] = leaf(syscallTerm)

	nopRM := &Terminal{Mnemonic: NOP, ModRM: true, NumOperands: 1}
	nopRM.Operands[0] = OperandSpec{Source: SrcModRMRM, Kind: regs.GPR}
	tab.TwoByte[0x1F] = leaf(nopRM)

	imul2 := rmReg(IMUL, regs.GPR, false)
	tab.TwoByte[0xAF] = leaf(imul2)

	tab.TwoByte[0xB0] = leaf(rmReg(CMPXCHG, regs.GPR, true))
	tab.TwoByte[0xB1] = leaf(rmReg(CMPXCHG, regs.GPR, true))

	movzxB := rmReg(MOVZX, regs.GPR, false)
	movzxB.Operands[1].Source = SrcModRMRM
	tab.TwoByte[0xB6] = leaf(movzxB)
	tab.TwoByte[0xB7] = leaf(movzxB)
	movsxB := rmReg(MOVSX, regs.GPR, false)
	tab.TwoByte[0xBE] = leaf(movsxB)
	tab.TwoByte[0xBF] = leaf(movsxB)

	tab.TwoByte[0xC0] = leaf(rmReg(XADD, regs.GPR, true))
	tab.TwoByte[0xC1] = leaf(rmReg(XADD, regs.GPR, true))

	cmpxchg8b := &Terminal{Mnemonic: CMPXCHG8B, ModRM: true, NumOperands: 1}
	cmpxchg8b.Operands[0] = OperandSpec{Source: SrcModRMRM, Kind: regs.GPR}
	tab.TwoByte[0xC7] = group([8]*DispatchNode{invalidLeaf(), leaf(cmpxchg8b), invalidLeaf(), invalidLeaf(), invalidLeaf(), invalidLeaf(), invalidLeaf(), invalidLeaf()})

	// --- VEX (minimal, §1 Non-goals excludes EVEX/AVX-512 but not VEX) ---
	tab.VEX[VEXKey{Map: MapTwoByte, PP: 0, Opcode: 0x77}] = &VEXSlot{
		L0: &Terminal{Mnemonic: VZEROUPPER},
		L1: &Terminal{Mnemonic: VZEROALL},
	}

	return tab
}
