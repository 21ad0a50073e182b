package decode

import (
	"testing"

	"github.com/keurnel/x86decode/architecture/x86_64/regs"
)

func TestDecode_NOP(t *testing.T) {
	n, in, err := Decode([]byte{0x90}, Mode64, 0)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if n != 1 {
		t.Fatalf("length = %d, want 1", n)
	}
	if in.Mnemonic() != NOP {
		t.Fatalf("mnemonic = %v, want NOP", in.Mnemonic())
	}
	if in.NumOperands() != 0 {
		t.Fatalf("NumOperands = %d, want 0", in.NumOperands())
	}
}

func TestDecode_MovRegReg64(t *testing.T) {
	// 48 89 D8 -> MOV RAX, RBX
	n, in, err := Decode([]byte{0x48, 0x89, 0xD8}, Mode64, 0)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if n != 3 {
		t.Fatalf("length = %d, want 3", n)
	}
	if in.Mnemonic() != MOV {
		t.Fatalf("mnemonic = %v, want MOV", in.Mnemonic())
	}
	if !in.HasPrefix(PrefixREXW) {
		t.Fatalf("expected PrefixREXW set")
	}
	if in.OperandSize() != 8 {
		t.Fatalf("OperandSize = %d, want 8", in.OperandSize())
	}
	if in.NumOperands() != 2 {
		t.Fatalf("NumOperands = %d, want 2", in.NumOperands())
	}
	dst, src := in.Operand(0), in.Operand(1)
	if !dst.IsRegister() || dst.RegIndex != 0 {
		t.Fatalf("dst = %+v, want RAX (index 0)", dst)
	}
	if !src.IsRegister() || src.RegIndex != 3 {
		t.Fatalf("src = %+v, want RBX (index 3)", src)
	}
}

func TestDecode_MovMOffs(t *testing.T) {
	// A1 01 02 03 04 05 06 07 08 -> MOV EAX, [0x0807060504030201], 64-bit
	// absolute addressing (no 0x67 override, so the moffs field is 8 bytes).
	buf := []byte{0xA1, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08}
	n, in, err := Decode(buf, Mode64, 0)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if n != len(buf) {
		t.Fatalf("length = %d, want %d", n, len(buf))
	}
	if in.Mnemonic() != MOV {
		t.Fatalf("mnemonic = %v, want MOV", in.Mnemonic())
	}
	want := int64(0x0807060504030201)
	if in.Displacement() != want {
		t.Fatalf("Displacement = %#x, want %#x", in.Displacement(), want)
	}
	mem := in.Operand(1)
	if !mem.IsMemory() {
		t.Fatalf("operand 1 = %+v, want memory", mem)
	}
}

func TestDecode_MovAddressSizeOverride(t *testing.T) {
	// 67 8B 04 25 78 56 34 12 -> MOV EAX, [0x12345678], address_size=4
	buf := []byte{0x67, 0x8B, 0x04, 0x25, 0x78, 0x56, 0x34, 0x12}
	n, in, err := Decode(buf, Mode64, 0)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if n != len(buf) {
		t.Fatalf("length = %d, want %d", n, len(buf))
	}
	if in.Mnemonic() != MOV {
		t.Fatalf("mnemonic = %v, want MOV", in.Mnemonic())
	}
	if in.AddressSize() != 4 {
		t.Fatalf("AddressSize = %d, want 4", in.AddressSize())
	}
	if in.OperandSize() != 4 {
		t.Fatalf("OperandSize = %d, want 4", in.OperandSize())
	}
	dst, src := in.Operand(0), in.Operand(1)
	if !dst.IsRegister() || dst.RegIndex != 0 {
		t.Fatalf("dst = %+v, want EAX (index 0)", dst)
	}
	if !src.IsMemory() {
		t.Fatalf("src = %+v, want memory operand", src)
	}
	if base, hasBase := src.MemoryBase(); hasBase {
		t.Fatalf("unexpected base register %d", base)
	}
	if _, hasIndex, _ := src.MemoryIndex(); hasIndex {
		t.Fatalf("unexpected index register")
	}
	if in.Displacement() != 0x12345678 {
		t.Fatalf("Displacement = %#x, want 0x12345678", in.Displacement())
	}
}

func TestDecode_LockCmpxchgMemoryDest(t *testing.T) {
	// F0 0F B1 0F -> LOCK CMPXCHG [RDI], ECX
	n, in, err := Decode([]byte{0xF0, 0x0F, 0xB1, 0x0F}, Mode64, 0)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if n != 4 {
		t.Fatalf("length = %d, want 4", n)
	}
	if in.Mnemonic() != CMPXCHG {
		t.Fatalf("mnemonic = %v, want CMPXCHG", in.Mnemonic())
	}
	if !in.HasPrefix(PrefixLock) {
		t.Fatalf("expected PrefixLock set")
	}
	dst := in.Operand(0)
	if !dst.IsMemory() {
		t.Fatalf("dst = %+v, want memory operand", dst)
	}
	if base, hasBase := dst.MemoryBase(); !hasBase || base != 7 {
		t.Fatalf("base = %d, %v, want 7, true", base, hasBase)
	}
}

func TestDecode_FwaitThenFninit(t *testing.T) {
	// 9B DB E3 -> FWAIT (len 1), then FNINIT (len 2) starting at offset 1.
	buf := []byte{0x9B, 0xDB, 0xE3}
	n1, in1, err := Decode(buf, Mode64, 0)
	if err != nil {
		t.Fatalf("Decode (first): %v", err)
	}
	if n1 != 1 || in1.Mnemonic() != FWAIT {
		t.Fatalf("first = (%d, %v), want (1, FWAIT)", n1, in1.Mnemonic())
	}

	n2, in2, err := Decode(buf[n1:], Mode64, uint64(n1))
	if err != nil {
		t.Fatalf("Decode (second): %v", err)
	}
	if n2 != 2 || in2.Mnemonic() != FNINIT {
		t.Fatalf("second = (%d, %v), want (2, FNINIT)", n2, in2.Mnemonic())
	}
}

func TestDecode_VzeroupperVzeroall(t *testing.T) {
	// C5 F8 77 -> VZEROUPPER (VEX.L=0)
	n, in, err := Decode([]byte{0xC5, 0xF8, 0x77}, Mode64, 0)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if n != 3 {
		t.Fatalf("length = %d, want 3", n)
	}
	if in.Mnemonic() != VZEROUPPER {
		t.Fatalf("mnemonic = %v, want VZEROUPPER", in.Mnemonic())
	}
	if !in.HasPrefix(PrefixVEXPresent) {
		t.Fatalf("expected PrefixVEXPresent set")
	}

	// C5 FC 77 -> VZEROALL (VEX.L=1)
	_, in2, err := Decode([]byte{0xC5, 0xFC, 0x77}, Mode64, 0)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if in2.Mnemonic() != VZEROALL {
		t.Fatalf("mnemonic = %v, want VZEROALL", in2.Mnemonic())
	}
}

func TestDecode_CallRel32(t *testing.T) {
	// E8 05 00 00 00 @ 0x401000 -> CALL 0x40100A
	n, in, err := Decode([]byte{0xE8, 0x05, 0x00, 0x00, 0x00}, Mode64, 0x401000)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if n != 5 {
		t.Fatalf("length = %d, want 5", n)
	}
	if in.Mnemonic() != CALL {
		t.Fatalf("mnemonic = %v, want CALL", in.Mnemonic())
	}
	target, ok := in.PCRelTarget()
	if !ok {
		t.Fatalf("expected a PC-relative target")
	}
	if target != 0x40100A {
		t.Fatalf("target = %#x, want 0x40100a", target)
	}
	if in.OperandSize() != 8 {
		t.Fatalf("OperandSize = %d, want 8 (Default64)", in.OperandSize())
	}
}

func TestDecode_RIPRelative(t *testing.T) {
	// 48 8B 05 10 00 00 00 @ 0x401000 -> MOV RAX, [RIP+0x10]
	// resolved target = 0x401000 + 7 (instruction length) + 0x10 = 0x401017.
	n, in, err := Decode([]byte{0x48, 0x8B, 0x05, 0x10, 0x00, 0x00, 0x00}, Mode64, 0x401000)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if n != 7 {
		t.Fatalf("length = %d, want 7", n)
	}
	if in.Mnemonic() != MOV {
		t.Fatalf("mnemonic = %v, want MOV", in.Mnemonic())
	}
	mem := in.Operand(1)
	if !mem.IsMemory() {
		t.Fatalf("operand 1 = %v, want memory", mem.Kind)
	}
	target, ripRelative := mem.RIPTarget()
	if !ripRelative {
		t.Fatalf("expected a RIP-relative operand")
	}
	if target != 0x401017 {
		t.Fatalf("target = %#x, want 0x401017", target)
	}
	if mem.HasBase || mem.HasIndex {
		t.Fatalf("RIP-relative operand should carry no base/index register")
	}
}

func TestDecode_IncDecShortForm32(t *testing.T) {
	// 0x40 = INC EAX, 0x4F = DEC EDI, both ModR/M-less "+rd" forms that only
	// exist in 32-bit mode (0x40-0x4F is the REX prefix range in 64-bit mode).
	n, in, err := Decode([]byte{0x40}, Mode32, 0)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if n != 1 {
		t.Fatalf("length = %d, want 1", n)
	}
	if in.Mnemonic() != INC {
		t.Fatalf("mnemonic = %v, want INC", in.Mnemonic())
	}
	reg := in.Operand(0)
	if kind, idx := reg.Register(); kind != regs.GPR || idx != 0 {
		t.Fatalf("operand = %v/%d, want GPR/0 (EAX)", kind, idx)
	}

	n, in, err = Decode([]byte{0x4F}, Mode32, 0)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if n != 1 {
		t.Fatalf("length = %d, want 1", n)
	}
	if in.Mnemonic() != DEC {
		t.Fatalf("mnemonic = %v, want DEC", in.Mnemonic())
	}
	if _, idx := in.Operand(0).Register(); idx != 7 {
		t.Fatalf("operand index = %d, want 7 (EDI)", idx)
	}
}

func TestDecode_IncDecShortForm64IsREX(t *testing.T) {
	// The same 0x40 byte in 64-bit mode is a (no-op) REX prefix in front of
	// NOP, not INC: 0x40 0x90 -> REX then NOP.
	n, in, err := Decode([]byte{0x40, 0x90}, Mode64, 0)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if n != 2 {
		t.Fatalf("length = %d, want 2", n)
	}
	if in.Mnemonic() != NOP {
		t.Fatalf("mnemonic = %v, want NOP", in.Mnemonic())
	}
}

func TestDecode_ShortBuffer(t *testing.T) {
	// 0x0F alone: a two-byte-escape opcode missing its second byte.
	_, _, err := Decode([]byte{0x0F}, Mode64, 0)
	if err != ErrShortBuffer {
		t.Fatalf("err = %v, want ErrShortBuffer", err)
	}
}

func TestDecode_EmptyBuffer(t *testing.T) {
	_, _, err := Decode(nil, Mode64, 0)
	if err != ErrShortBuffer {
		t.Fatalf("err = %v, want ErrShortBuffer", err)
	}
}

func TestDecode_BadMode(t *testing.T) {
	_, _, err := Decode([]byte{0x90}, Mode(0), 0)
	if err != ErrBadMode {
		t.Fatalf("err = %v, want ErrBadMode", err)
	}
}

func TestDecode_InvalidOpcode(t *testing.T) {
	// 0x0F 0xFF is not wired into the generated table's two-byte map.
	_, _, err := Decode([]byte{0x0F, 0xFF}, Mode64, 0)
	if err != ErrInvalid {
		t.Fatalf("err = %v, want ErrInvalid", err)
	}
}

func TestDecode_ZeroOperandSizeMnemonic(t *testing.T) {
	// 0F 01 /0 -> SGDT, always operand_size 0 regardless of REX.W (§6.5).
	n, in, err := Decode([]byte{0x48, 0x0F, 0x01, 0x00}, Mode64, 0)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if n != 4 {
		t.Fatalf("length = %d, want 4", n)
	}
	if in.Mnemonic() != SGDT {
		t.Fatalf("mnemonic = %v, want SGDT", in.Mnemonic())
	}
	if in.OperandSize() != 0 {
		t.Fatalf("OperandSize = %d, want 0", in.OperandSize())
	}
}

func TestDecode_MovR64Imm64(t *testing.T) {
	// 48 B8 <8 bytes> -> MOV RAX, imm64 (REX.W widens the B8-BF immediate
	// to 8 bytes, unlike the Ev,Iz IMM16/32 template).
	buf := []byte{0x48, 0xB8, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08}
	n, in, err := Decode(buf, Mode64, 0)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if n != len(buf) {
		t.Fatalf("length = %d, want %d", n, len(buf))
	}
	if in.Mnemonic() != MOV {
		t.Fatalf("mnemonic = %v, want MOV", in.Mnemonic())
	}
	want := int64(0x0807060504030201)
	if in.Immediate() != want {
		t.Fatalf("Immediate = %#x, want %#x", in.Immediate(), want)
	}

	// B8 <4 bytes> without REX.W -> MOV EAX, imm32 (unchanged behavior).
	buf32 := []byte{0xB8, 0x01, 0x02, 0x03, 0x04}
	n32, in32, err := Decode(buf32, Mode64, 0)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if n32 != len(buf32) {
		t.Fatalf("length = %d, want %d", n32, len(buf32))
	}
	if in32.Immediate() != 0x04030201 {
		t.Fatalf("Immediate = %#x, want 0x04030201", in32.Immediate())
	}
}

func TestDecodeAll(t *testing.T) {
	buf := []byte{0x90, 0x90, 0x9B, 0xDB, 0xE3}
	insts, err := DecodeAll(buf, Mode64, 0)
	if err != nil {
		t.Fatalf("DecodeAll: %v", err)
	}
	if len(insts) != 4 {
		t.Fatalf("len(insts) = %d, want 4", len(insts))
	}
	want := []Mnemonic{NOP, NOP, FWAIT, FNINIT}
	for i, w := range want {
		if insts[i].Mnemonic() != w {
			t.Fatalf("insts[%d] = %v, want %v", i, insts[i].Mnemonic(), w)
		}
	}
}

func TestInstruction_DebugString(t *testing.T) {
	_, in, err := Decode([]byte{0x48, 0x89, 0xD8}, Mode64, 0)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	got := in.DebugString()
	if got == "" {
		t.Fatalf("DebugString returned empty string")
	}
}
