package decode

import (
	"github.com/keurnel/x86decode/architecture/x86_64/regs"
	"github.com/keurnel/x86decode/internal/decodetab"
)

// Decode reads a single instruction from the front of buf (§4.1). It never
// reads past buf's end and never allocates: every return value is either a
// plain int, the fixed-size Instruction, or the DecodeError value type. The
// address parameter is recorded verbatim and used to resolve PC-relative
// operands (§3.2); Decode performs no validation of it.
//
// Decode walks six phases in order: legacy prefixes, REX/VEX recognition,
// opcode-table dispatch, ModR/M+SIB+displacement, immediate consumption, and
// finalization (operand-size computation, operand materialisation, and the
// §6.5/§6.6 mnemonic-dependent overrides).
func Decode(buf []byte, mode Mode, address uint64) (int, Instruction, error) {
	if !mode.Valid() {
		return 0, Instruction{}, ErrBadMode
	}
	if len(buf) == 0 {
		return 0, Instruction{}, ErrShortBuffer
	}

	d := decoder{buf: buf, mode: mode}
	if err := d.legacyPrefixes(); err != nil {
		return 0, Instruction{}, err
	}
	if mode == Mode64 {
		d.rex()
	}
	vexActive, vexSlot, vexL, err := d.vex()
	if err != nil {
		return 0, Instruction{}, err
	}

	var term *decodetab.Terminal
	if vexActive {
		if vexSlot == nil {
			return 0, Instruction{}, ErrInvalid
		}
		if vexL {
			term = vexSlot.L1
		} else {
			term = vexSlot.L0
		}
		if term == nil {
			return 0, Instruction{}, ErrInvalid
		}
		d.prefixes |= PrefixVEXPresent
	} else {
		node, fpuSpecial, err := d.lookupOpcode()
		if err != nil {
			return 0, Instruction{}, err
		}
		if fpuSpecial != nil {
			term = fpuSpecial
		} else {
			if node == nil {
				return 0, Instruction{}, ErrInvalid
			}
			resolved, err := d.resolveDispatch(node)
			if err != nil {
				return 0, Instruction{}, err
			}
			term = resolved
		}
	}

	if term == nil || term.Invalid {
		return 0, Instruction{}, ErrInvalid
	}
	if term.Mode == decodetab.ModeOnly32 && mode != Mode32 {
		return 0, Instruction{}, ErrInvalid
	}
	if term.Mode == decodetab.ModeOnly64 && mode != Mode64 {
		return 0, Instruction{}, ErrInvalid
	}

	if d.hasMOffsOperand(term) {
		if err := d.consumeMOffs(); err != nil {
			return 0, Instruction{}, err
		}
	}

	if err := d.consumeImmediates(term); err != nil {
		return 0, Instruction{}, err
	}

	if d.pos > maxInstructionLength {
		return 0, Instruction{}, ErrTooLong
	}

	in := d.finalize(term, address)
	return d.pos, in, nil
}

// decoder carries the mutable state threaded through one Decode call. It is
// stack-allocated by the caller (Decode's local d) and never escapes.
type decoder struct {
	buf  []byte
	pos  int
	mode Mode

	prefixes PrefixFlags
	segment  SegmentOverride

	haveREX             bool
	rexW, rexR, rexX, rexB bool

	haveModRM     bool
	modRMMod      int
	modRMReg      int
	modRMRM       int
	sibPresent    bool
	sibScale      int
	sibIndex      int
	sibBase       int
	dispValid     bool
	dispValue     int64
	ripRelative   bool
	noBase        bool // mod==0, rm==5 in 32-bit addressing: disp32, no base register

	imm    int64
	imm2   int64

	lastOpcodeByte byte
}

func (d *decoder) byteAt(off int) (byte, bool) {
	if off < 0 || off >= len(d.buf) || off >= maxInstructionLength {
		return 0, false
	}
	return d.buf[off], true
}

func (d *decoder) next() (byte, error) {
	if d.pos >= maxInstructionLength {
		return 0, ErrTooLong
	}
	b, ok := d.byteAt(d.pos)
	if !ok {
		return 0, ErrShortBuffer
	}
	d.pos++
	return b, nil
}

func (d *decoder) peek() (byte, bool) { return d.byteAt(d.pos) }

// legacyPrefixes consumes phase 1 (§4.1): the run of legacy prefix bytes at
// the front of the instruction. REPZ (0xF3) and REPNZ (0xF2) are mutually
// exclusive in the flag set; the last one seen wins, matching real hardware.
func (d *decoder) legacyPrefixes() error {
	for {
		b, ok := d.peek()
		if !ok {
			return nil
		}
		switch b {
		case 0xF0:
			d.prefixes |= PrefixLock
		case 0xF2:
			d.prefixes = (d.prefixes &^ PrefixRep) | PrefixRepNZ
		case 0xF3:
			d.prefixes = (d.prefixes &^ PrefixRepNZ) | PrefixRep
		case 0x2E:
			d.segment, d.prefixes = SegCS, d.prefixes|PrefixSegmentOverride
		case 0x36:
			d.segment, d.prefixes = SegSS, d.prefixes|PrefixSegmentOverride
		case 0x3E:
			d.segment, d.prefixes = SegDS, d.prefixes|PrefixSegmentOverride
		case 0x26:
			d.segment, d.prefixes = SegES, d.prefixes|PrefixSegmentOverride
		case 0x64:
			d.segment, d.prefixes = SegFS, d.prefixes|PrefixSegmentOverride
		case 0x65:
			d.segment, d.prefixes = SegGS, d.prefixes|PrefixSegmentOverride
		case 0x66:
			d.prefixes |= PrefixOperandSizeOverride
		case 0x67:
			d.prefixes |= PrefixAddressSizeOverride
		default:
			return nil
		}
		d.pos++
		if d.pos > maxInstructionLength {
			return ErrTooLong
		}
	}
}

// rex recognises a single REX prefix byte (0x40-0x4F), valid only in 64-bit
// mode and only immediately before the opcode (§4.1 phase 2).
func (d *decoder) rex() {
	b, ok := d.peek()
	if !ok || b < 0x40 || b > 0x4F {
		return
	}
	d.pos++
	d.haveREX = true
	d.rexW = b&0x08 != 0
	d.rexR = b&0x04 != 0
	d.rexX = b&0x02 != 0
	d.rexB = b&0x01 != 0
	if d.rexW {
		d.prefixes |= PrefixREXW
	}
}

// vex recognises the two- and three-byte VEX prefixes (0xC5/0xC4). It
// returns whether a VEX prefix was present, the VEX-table slot for the
// opcode that follows, and the VEX.L bit. A VEX prefix preempts the
// legacy opcode-table walk entirely (§4.1, "VEX prefixes are mutually
// exclusive with REX").
func (d *decoder) vex() (present bool, slot *decodetab.VEXSlot, l bool, err error) {
	b, ok := d.peek()
	if !ok {
		return false, nil, false, nil
	}

	var mapSel decodetab.OpcodeMap
	var pp byte

	switch b {
	case 0xC5: // two-byte VEX: C5 RvvvvLpp
		b2, ok := d.byteAt(d.pos + 1)
		if !ok {
			return false, nil, false, nil
		}
		d.rexR = b2&0x80 == 0
		l = b2&0x04 != 0
		pp = b2 & 0x03
		mapSel = decodetab.MapTwoByte
		d.pos += 2
	case 0xC4: // three-byte VEX: C4 RXBmmmmm WvvvvLpp
		b2, ok := d.byteAt(d.pos + 1)
		if !ok {
			return false, nil, false, nil
		}
		b3, ok := d.byteAt(d.pos + 2)
		if !ok {
			return false, nil, false, nil
		}
		d.rexR = b2&0x80 == 0
		d.rexX = b2&0x40 == 0
		d.rexB = b2&0x20 == 0
		switch b2 & 0x1F {
		case 1:
			mapSel = decodetab.MapTwoByte
		case 2:
			mapSel = decodetab.Map0F38
		case 3:
			mapSel = decodetab.Map0F3A
		default:
			return false, nil, false, ErrInvalid
		}
		d.rexW = b3&0x80 != 0
		l = b3&0x04 != 0
		pp = b3 & 0x03
		d.pos += 3
	default:
		return false, nil, false, nil
	}

	opcode, err := d.next()
	if err != nil {
		return true, nil, l, err
	}
	key := decodetab.VEXKey{Map: mapSel, PP: pp, Opcode: opcode}
	return true, decodetab.GeneratedX86_64.LookupVEX(key), l, nil
}

// fninit and fnclex are synthesised directly rather than through the
// dispatch tree: the x87 escape opcodes' instruction identity depends on
// the raw ModR/M byte value rather than just its reg field, which is finer
// grained than GroupNode/ModSplitNode can express for the handful of
// non-memory x87 control forms this decoder covers (§4.1 phase 3 note).
var fninitTerm = &decodetab.Terminal{Mnemonic: FNINIT}
var fnclexTerm = &decodetab.Terminal{Mnemonic: FNCLEX}

// lookupOpcode performs phase 3's escape-byte recognition and root-table
// index (§4.1). It returns a non-nil fpuSpecial when the DB-escape
// special case (FNINIT/FNCLEX) applies, bypassing the generated table.
func (d *decoder) lookupOpcode() (node *decodetab.DispatchNode, fpuSpecial *decodetab.Terminal, err error) {
	b, err := d.next()
	if err != nil {
		return nil, nil, err
	}

	if b == 0x0F {
		b2, err := d.next()
		if err != nil {
			return nil, nil, err
		}
		switch b2 {
		case 0x38:
			op, err := d.next()
			if err != nil {
				return nil, nil, err
			}
			return decodetab.GeneratedX86_64.Lookup(decodetab.Map0F38, op), nil, nil
		case 0x3A:
			op, err := d.next()
			if err != nil {
				return nil, nil, err
			}
			return decodetab.GeneratedX86_64.Lookup(decodetab.Map0F3A, op), nil, nil
		default:
			return decodetab.GeneratedX86_64.Lookup(decodetab.MapTwoByte, b2), nil, nil
		}
	}

	if b == 0xDB {
		next, ok := d.peek()
		if ok && next == 0xE3 {
			d.pos++
			return nil, fninitTerm, nil
		}
		if ok && next == 0xE2 {
			d.pos++
			return nil, fnclexTerm, nil
		}
		return nil, nil, ErrInvalid
	}

	d.lastOpcodeByte = b
	return decodetab.GeneratedX86_64.Lookup(decodetab.MapOneByte, b), nil, nil
}

// resolveDispatch walks a DispatchNode down to its Terminal, reading a
// ModR/M byte when the node requires discriminating on the reg field
// (GroupNode) or the mod field (ModSplitNode). At most one ModR/M byte is
// ever read per instruction (§4.1 phase 3).
func (d *decoder) resolveDispatch(node *decodetab.DispatchNode) (*decodetab.Terminal, error) {
	for {
		switch {
		case node.Terminal != nil:
			if node.Terminal.ModRM {
				if err := d.readModRM(); err != nil {
					return nil, err
				}
			}
			return node.Terminal, nil
		case node.Group != nil:
			if err := d.readModRM(); err != nil {
				return nil, err
			}
			next := node.Group.ByReg[d.modRMReg]
			if next == nil {
				return nil, ErrInvalid
			}
			node = next
		case node.ModSplit != nil:
			b, ok := d.peek()
			if !ok {
				return nil, ErrShortBuffer
			}
			if (b>>6)&0x3 == 0x3 {
				node = node.ModSplit.RegForm
			} else {
				node = node.ModSplit.MemForm
			}
			if node == nil {
				return nil, ErrInvalid
			}
		default:
			return nil, ErrInvalid
		}
	}
}

// readModRM consumes the ModR/M byte and, if present, the SIB byte and any
// displacement (§4.1 phase 4). It is idempotent-guarded by haveModRM so a
// GroupNode chain that re-enters resolveDispatch never reads the byte
// twice.
func (d *decoder) readModRM() error {
	if d.haveModRM {
		return nil
	}
	b, err := d.next()
	if err != nil {
		return err
	}
	d.haveModRM = true
	d.modRMMod = int(b>>6) & 0x3
	d.modRMReg = int(b>>3) & 0x7
	d.modRMRM = int(b) & 0x7
	if d.rexR {
		d.modRMReg |= 0x8
	}

	if d.modRMMod == 3 {
		if d.rexB {
			d.modRMRM |= 0x8
		}
		return nil
	}

	rm := d.modRMRM
	if rm == 4 {
		sib, err := d.next()
		if err != nil {
			return err
		}
		d.sibPresent = true
		d.sibScale = 1 << (sib >> 6)
		d.sibIndex = int(sib>>3) & 0x7
		d.sibBase = int(sib) & 0x7
		if d.rexX {
			d.sibIndex |= 0x8
		}
		if d.sibIndex == 4 && !d.rexX {
			d.sibIndex = -1 // no index register (§4.1, SIB.index == 0b100 with no REX.X)
		}
		if d.rexB {
			d.sibBase |= 0x8
		}
		if d.modRMMod == 0 && d.sibBase&0x7 == 5 {
			d.noBase = true
			if err := d.readDisp32(); err != nil {
				return err
			}
		}
		return nil
	}

	if d.modRMMod == 0 && rm == 5 {
		// disp32, RIP-relative in 64-bit mode, no base in 32-bit mode.
		d.noBase = true
		if d.mode == Mode64 {
			d.ripRelative = true
		}
		return d.readDisp32()
	}

	if d.rexB {
		d.modRMRM |= 0x8
	}

	switch d.modRMMod {
	case 1:
		return d.readDisp8()
	case 2:
		return d.readDisp32()
	}
	return nil
}

func (d *decoder) readDisp8() error {
	b, err := d.next()
	if err != nil {
		return err
	}
	d.dispValid = true
	d.dispValue = int64(int8(b))
	return nil
}

func (d *decoder) readDisp32() error {
	v, err := d.readLE(4)
	if err != nil {
		return err
	}
	d.dispValid = true
	d.dispValue = int64(int32(v))
	return nil
}

// readLE reads n little-endian bytes as an unsigned value.
func (d *decoder) readLE(n int) (uint64, error) {
	var v uint64
	for i := 0; i < n; i++ {
		b, err := d.next()
		if err != nil {
			return 0, err
		}
		v |= uint64(b) << (8 * i)
	}
	return v, nil
}

// hasMOffsOperand reports whether term has an Ob/Ov-style moffs operand: the
// 0xA0-0xA3 MOV forms address memory with a bare, address-sized absolute
// offset instead of a ModR/M byte (§3.2, §4.1 phase 4 note for Ob/Ov).
func (d *decoder) hasMOffsOperand(term *decodetab.Terminal) bool {
	for i := 0; i < term.NumOperands; i++ {
		if term.Operands[i].Source == decodetab.SrcMOffs {
			return true
		}
	}
	return false
}

// consumeMOffs reads the bare address-sized displacement the Ob/Ov operand
// templates encode in place of a ModR/M byte, since readModRM is never
// entered for these opcodes (term.ModRM is false for all moffs forms).
func (d *decoder) consumeMOffs() error {
	v, err := d.readLE(d.effectiveAddressSize())
	if err != nil {
		return err
	}
	d.dispValid = true
	d.dispValue = int64(v)
	return nil
}

// consumeImmediates reads phase 5's immediate/second-immediate/relative
// fields (§4.1). ImmBytes == -1 means "16 bits under the operand-size
// override, else 32", the IMM16/32 template class. ImmBytes == -2 is the
// same rule widened by REX.W ("16/32/64", the B8-BF MOV r, imm family,
// which unlike Ev,Iz can carry a full 64-bit immediate).
func (d *decoder) consumeImmediates(term *decodetab.Terminal) error {
	if term.RelBytes != 0 {
		v, err := d.readLE(term.RelBytes)
		if err != nil {
			return err
		}
		switch term.RelBytes {
		case 1:
			d.imm = int64(int8(v))
		case 4:
			d.imm = int64(int32(v))
		default:
			d.imm = int64(v)
		}
		return nil
	}

	if term.ImmBytes != 0 {
		n := term.ImmBytes
		if n < 0 {
			switch {
			case d.prefixes.Has(PrefixOperandSizeOverride):
				n = 2
			case n == -2 && d.haveREX && d.rexW:
				n = 8
			default:
				n = 4
			}
		}
		v, err := d.readLE(n)
		if err != nil {
			return err
		}
		if term.ImmSignExtend {
			switch n {
			case 1:
				d.imm = int64(int8(v))
			case 2:
				d.imm = int64(int16(v))
			case 4:
				d.imm = int64(int32(v))
			default:
				d.imm = int64(v)
			}
		} else {
			d.imm = int64(v)
		}
	}

	if term.Imm2Bytes != 0 {
		v, err := d.readLE(term.Imm2Bytes)
		if err != nil {
			return err
		}
		d.imm2 = int64(v)
	}
	return nil
}

// effectiveOperandSize applies §4.1 phase 6's size-computation rules: REX.W
// wins over the 0x66 override, and Default64 terminals are forced to 8 bytes
// in 64-bit mode regardless of either. The §6.5 zero-size list, which
// overrides all of these, is applied afterwards by finalize.
func (d *decoder) effectiveOperandSize(term *decodetab.Terminal) int {
	if d.mode == Mode64 && term.Default64 {
		return 8
	}
	if d.haveREX && d.rexW {
		return 8
	}
	if d.prefixes.Has(PrefixOperandSizeOverride) {
		return 2
	}
	return 4
}

func (d *decoder) effectiveAddressSize() int {
	override := d.prefixes.Has(PrefixAddressSizeOverride)
	if d.mode == Mode64 {
		if override {
			return 4
		}
		return 8
	}
	if override {
		return 2
	}
	return 4
}

// finalize builds the returned Instruction from the decoder's accumulated
// state and the resolved Terminal (§4.1 phase 6).
func (d *decoder) finalize(term *decodetab.Terminal, address uint64) Instruction {
	mnemonic := term.Mnemonic
	opSize := d.effectiveOperandSize(term)

	switch mnemonic {
	case CWDE:
		switch opSize {
		case 2:
			mnemonic = CBW
		case 8:
			mnemonic = CDQE
		}
	case CDQ:
		switch opSize {
		case 2:
			mnemonic = CWD
		case 8:
			mnemonic = CQO
		}
	case CMPXCHG8B:
		if d.haveREX && d.rexW {
			mnemonic = CMPXCHG16B
		}
	}

	if decodetab.ZeroOperandSize(mnemonic) {
		opSize = 0
	}

	in := Instruction{
		mnemonic:    mnemonic,
		length:      d.pos,
		address:     address,
		operandSize: opSize,
		addressSize: d.effectiveAddressSize(),
		prefixes:    d.prefixes,
		segment:     d.segment,
		immediate:   d.imm,
		displacement: d.dispValue,
	}

	for i := 0; i < term.NumOperands && i < maxOperands; i++ {
		in.appendOperand(d.materializeOperand(term.Operands[i], opSize, address))
	}

	return in
}

// materializeOperand turns one OperandSpec into a concrete Operand value,
// reading the ModR/M/SIB/displacement/immediate state the earlier phases
// already consumed (§3.2).
func (d *decoder) materializeOperand(spec decodetab.OperandSpec, opSize int, address uint64) Operand {
	kind := spec.Kind

	switch spec.Source {
	case decodetab.SrcModRMReg:
		return Operand{Kind: OperandReg, RegKind: kind, RegIndex: d.modRMReg}

	case decodetab.SrcModRMRM:
		if d.modRMMod == 3 {
			return Operand{Kind: OperandReg, RegKind: kind, RegIndex: d.modRMRM}
		}
		return d.memoryOperand(address)

	case decodetab.SrcMOffs:
		return Operand{
			Kind:      OperandMem,
			MemSeg:    d.effectiveSegment(),
			DispValid: true,
		}

	case decodetab.SrcImm:
		return Operand{Kind: OperandImm, ImmSized: int(d.imm)}

	case decodetab.SrcImm2:
		return Operand{Kind: OperandImm, ImmSized: int(d.imm2)}

	case decodetab.SrcRel:
		target := uint64(int64(address) + int64(d.pos) + d.imm)
		return Operand{Kind: OperandPCRel, PCTarget: target}

	case decodetab.SrcImplicitReg:
		return Operand{Kind: OperandReg, RegKind: regs.GPR, RegIndex: spec.FixedReg}

	case decodetab.SrcOpcodeReg:
		idx := d.opcodeRegIndex()
		return Operand{Kind: OperandReg, RegKind: kind, RegIndex: idx}

	default:
		return Operand{}
	}
}

// opcodeRegIndex recovers the +rd register index encoded in the low three
// bits of the opcode byte, extended by REX.B (§4.1 phase 3, "+rd" forms).
func (d *decoder) opcodeRegIndex() int {
	idx := int(d.lastOpcodeByte) & 0x7
	if d.rexB {
		idx |= 0x8
	}
	return idx
}

// effectiveSegment resolves the segment override for a memory operand,
// defaulting to DS (or SS for stack-relative accesses, which this decoder's
// operand specs never produce directly) when no override prefix was seen.
func (d *decoder) effectiveSegment() SegmentOverride {
	if d.prefixes.Has(PrefixSegmentOverride) {
		return d.segment
	}
	return SegDS
}

// memoryOperand builds the Operand for a ModR/M r/m field that decoded to a
// memory reference, folding in any SIB base/index/scale and the
// RIP-relative disp32 special case (§4.1 phase 4, §3.2). address is the
// instruction's own address, needed to resolve RIP-relative targets.
func (d *decoder) memoryOperand(address uint64) Operand {
	op := Operand{
		Kind:      OperandMem,
		MemSeg:    d.effectiveSegment(),
		DispValid: d.dispValid,
	}

	switch {
	case d.ripRelative:
		// RIP-relative addressing resolves against the address of the byte
		// following the instruction, the same "next instruction pointer"
		// base SrcRel uses for branch targets (§3.2, §8 "Boundaries"); the
		// base register is left unset since the resolved target already
		// folds in the displacement.
		op.RIPRelative = true
		op.MemTarget = uint64(int64(address) + int64(d.pos) + d.dispValue)
		return op
	case d.sibPresent:
		if d.sibIndex >= 0 {
			op.HasIndex = true
			op.IndexReg = d.sibIndex
			op.Scale = Scale(d.sibScale)
		}
		if !(d.noBase && d.modRMMod == 0) {
			op.HasBase = true
			op.BaseReg = d.sibBase
		}
	case d.noBase:
		// mod==0, rm==5 in 32-bit addressing: disp32 with no base register.
	default:
		op.HasBase = true
		op.BaseReg = d.modRMRM
	}
	return op
}
