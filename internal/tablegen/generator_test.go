package tablegen_test

import (
	"testing"

	"github.com/keurnel/x86decode/internal/decodetab"
	"github.com/keurnel/x86decode/internal/tablegen"
)

// specPath points at the checked-in root table, exercising the full
// specfile-load -> lex -> parse -> build -> compress pipeline against real
// data rather than an inline fixture.
const specPath = "../../tables/x86_64.spec"

func TestGenerate_CheckedInSpecBuilds(t *testing.T) {
	tab, diag, err := tablegen.Generate(specPath)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if diag.HasErrors() {
		t.Fatalf("unexpected parse/build errors: %v", diag.Errors())
	}
	if tab == nil {
		t.Fatal("Generate returned a nil table")
	}
}

func TestGenerate_ArithmeticOpcodesResolve(t *testing.T) {
	tab, _, err := tablegen.Generate(specPath)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	cases := []struct {
		opcode byte
		want   decodetab.Mnemonic
	}{
		{0x00, decodetab.ADD},
		{0x08, decodetab.OR},
		{0x28, decodetab.SUB},
		{0x38, decodetab.CMP},
	}
	for _, c := range cases {
		node := tab.Lookup(decodetab.MapOneByte, c.opcode)
		if node == nil || node.Terminal == nil {
			t.Fatalf("opcode %#x: no terminal", c.opcode)
		}
		if node.Terminal.Mnemonic != c.want {
			t.Errorf("opcode %#x: mnemonic = %v, want %v", c.opcode, node.Terminal.Mnemonic, c.want)
		}
	}
}

func TestGenerate_GroupOpcodeDispatchesByRegField(t *testing.T) {
	tab, _, err := tablegen.Generate(specPath)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	node := tab.Lookup(decodetab.MapOneByte, 0x80)
	if node == nil || node.Group == nil {
		t.Fatalf("opcode 0x80: expected a GroupNode, got %+v", node)
	}
	wantByReg := []decodetab.Mnemonic{
		decodetab.ADD, decodetab.OR, decodetab.ADC, decodetab.SBB,
		decodetab.AND, decodetab.SUB, decodetab.XOR, decodetab.CMP,
	}
	for reg, want := range wantByReg {
		child := node.Group.ByReg[reg]
		if child == nil || child.Terminal == nil {
			t.Fatalf("0x80 /%d: no terminal", reg)
		}
		if child.Terminal.Mnemonic != want {
			t.Errorf("0x80 /%d: mnemonic = %v, want %v", reg, child.Terminal.Mnemonic, want)
		}
	}
}

func TestGenerate_VEXKeyDisambiguatesByL(t *testing.T) {
	tab, _, err := tablegen.Generate(specPath)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	slot := tab.LookupVEX(decodetab.VEXKey{Map: decodetab.MapTwoByte, PP: 0, Opcode: 0x77})
	if slot == nil {
		t.Fatal("expected a VEX slot for map=two pp=0 opcode=0x77")
	}
	if slot.L0 == nil || slot.L0.Mnemonic != decodetab.VZEROUPPER {
		t.Errorf("L0 = %+v, want VZEROUPPER", slot.L0)
	}
	if slot.L1 == nil || slot.L1.Mnemonic != decodetab.VZEROALL {
		t.Errorf("L1 = %+v, want VZEROALL", slot.L1)
	}
}
