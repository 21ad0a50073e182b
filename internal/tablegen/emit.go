package tablegen

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"

	"github.com/keurnel/x86decode/architecture/x86_64/regs"
	"github.com/keurnel/x86decode/internal/decodetab"
)

// Emit renders a Go source file declaring varName as a fully-built
// *decodetab.Table literal equivalent to tab — the table a prior call to
// Generate already parsed, built, and compressed. cmd/generator and the
// cli's generate-tables subcommand write this file's output to
// internal/decodetab/generated_x86_64.go when the checked-in table is
// regenerated from tables/x86_64.spec (see DESIGN.md for the regeneration
// command); day-to-day builds use the checked-in file directly.
//
// The literal is self-contained: unlike embedding the flattened spec
// source and re-parsing it at init, this never calls back into tablegen
// from the generated file, so internal/decodetab (which tablegen itself
// imports to build tab in the first place) never has to import tablegen
// back — no import cycle, no runtime parse cost.
func Emit(packageName, varName string, tab *decodetab.Table) string {
	e := &emitter{qualify: packageName != "decodetab"}

	var b strings.Builder
	fmt.Fprintf(&b, "// Code generated by cmd/generator from a tables/*.spec file. DO NOT EDIT.\n\n")
	fmt.Fprintf(&b, "package %s\n\n", packageName)
	b.WriteString("import \"github.com/keurnel/x86decode/architecture/x86_64/regs\"\n")
	if e.qualify {
		b.WriteString("import \"github.com/keurnel/x86decode/internal/decodetab\"\n")
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "var %s = %s\n", varName, e.table(tab))
	return b.String()
}

// emitter holds the state Emit's recursive descent needs: how to spell a
// decodetab type name (unqualified when the generated file lives in
// package decodetab itself, qualified otherwise) and a memoised reverse
// lookup from Mnemonic value to Go enum identifier.
type emitter struct {
	qualify       bool
	mnemonicNames map[decodetab.Mnemonic]string
}

func (e *emitter) t(name string) string {
	if e.qualify {
		return "decodetab." + name
	}
	return name
}

func (e *emitter) table(tab *decodetab.Table) string {
	var b strings.Builder
	b.WriteString("&" + e.t("Table") + "{\n")
	fmt.Fprintf(&b, "OneByte: %s,\n", e.dispatchArray(tab.OneByte[:]))
	fmt.Fprintf(&b, "TwoByte: %s,\n", e.dispatchArray(tab.TwoByte[:]))
	fmt.Fprintf(&b, "ThreeByte8: %s,\n", e.dispatchArray(tab.ThreeByte8[:]))
	fmt.Fprintf(&b, "ThreeByteA: %s,\n", e.dispatchArray(tab.ThreeByteA[:]))
	if len(tab.VEX) > 0 {
		fmt.Fprintf(&b, "VEX: %s,\n", e.vexMap(tab.VEX))
	}
	b.WriteString("}")
	return b.String()
}

// dispatchArray emits a sparse [N]*DispatchNode composite literal, only
// writing the non-nil indices — the idiomatic Go spelling for a mostly-nil
// fixed-size array (the same density every root table and GroupNode.ByReg
// exhibits, §3.3 "packed entries").
func (e *emitter) dispatchArray(nodes []*decodetab.DispatchNode) string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%d]*%s{", len(nodes), e.t("DispatchNode"))
	for i, n := range nodes {
		if n == nil {
			continue
		}
		fmt.Fprintf(&b, "%d: %s, ", i, e.node(n))
	}
	b.WriteString("}")
	return b.String()
}

func (e *emitter) node(n *decodetab.DispatchNode) string {
	if n == nil {
		return "nil"
	}
	switch {
	case n.Terminal != nil:
		return fmt.Sprintf("&%s{Terminal: %s}", e.t("DispatchNode"), e.terminal(n.Terminal))
	case n.Group != nil:
		return fmt.Sprintf("&%s{Group: %s}", e.t("DispatchNode"), e.group(n.Group))
	case n.ModSplit != nil:
		return fmt.Sprintf("&%s{ModSplit: %s}", e.t("DispatchNode"), e.modSplit(n.ModSplit))
	default:
		return "nil"
	}
}

func (e *emitter) group(g *decodetab.GroupNode) string {
	return fmt.Sprintf("&%s{ByReg: %s}", e.t("GroupNode"), e.dispatchArray(g.ByReg[:]))
}

func (e *emitter) modSplit(m *decodetab.ModSplitNode) string {
	return fmt.Sprintf("&%s{RegForm: %s, MemForm: %s}",
		e.t("ModSplitNode"), e.node(m.RegForm), e.node(m.MemForm))
}

func (e *emitter) terminal(t *decodetab.Terminal) string {
	var ops strings.Builder
	for _, o := range t.Operands {
		ops.WriteString(e.operandSpec(o) + ", ")
	}
	return fmt.Sprintf(
		"&%s{Mnemonic: %s, ModRM: %t, Operands: [4]%s{%s}, NumOperands: %d, "+
			"ImmBytes: %d, ImmSignExtend: %t, Imm2Bytes: %d, RelBytes: %d, "+
			"Default64: %t, Mode: %s, MandatoryPrefix: %#02x, StringOp: %t, Invalid: %t}",
		e.t("Terminal"), e.mnemonic(t.Mnemonic), t.ModRM, e.t("OperandSpec"), ops.String(),
		t.NumOperands, t.ImmBytes, t.ImmSignExtend, t.Imm2Bytes, t.RelBytes,
		t.Default64, e.modeGate(t.Mode), t.MandatoryPrefix, t.StringOp, t.Invalid,
	)
}

func (e *emitter) operandSpec(o decodetab.OperandSpec) string {
	return fmt.Sprintf("{Source: %s, Kind: %s, FixedReg: %d}",
		e.operandSource(o.Source), e.regKind(o.Kind), o.FixedReg)
}

func (e *emitter) operandSource(s decodetab.OperandSource) string {
	names := [...]string{
		"SrcNone", "SrcModRMRM", "SrcModRMReg", "SrcImm", "SrcImm2",
		"SrcRel", "SrcImplicitReg", "SrcOpcodeReg", "SrcMOffs",
	}
	if int(s) < 0 || int(s) >= len(names) {
		return fmt.Sprintf("%s(%d)", e.t("OperandSource"), int(s))
	}
	return e.t(names[s])
}

func (e *emitter) modeGate(m decodetab.ModeGate) string {
	switch m {
	case decodetab.ModeOnly32:
		return e.t("ModeOnly32")
	case decodetab.ModeOnly64:
		return e.t("ModeOnly64")
	default:
		return e.t("ModeAny")
	}
}

// mnemonicIdentifiers maps every Mnemonic value a tables/*.spec record can
// produce back to the Go enum identifier it was parsed from (the reverse
// of decodetab.EnumIdentifiers()).
func mnemonicIdentifiers() map[decodetab.Mnemonic]string {
	fwd := decodetab.EnumIdentifiers()
	rev := make(map[decodetab.Mnemonic]string, len(fwd))
	for name, m := range fwd {
		rev[m] = name
	}
	return rev
}

func (e *emitter) mnemonic(m decodetab.Mnemonic) string {
	if e.mnemonicNames == nil {
		e.mnemonicNames = mnemonicIdentifiers()
	}
	if name, ok := e.mnemonicNames[m]; ok {
		return e.t(name)
	}
	return fmt.Sprintf("%s(%d)", e.t("Mnemonic"), int(m))
}

func (e *emitter) regKind(k regs.Kind) string {
	switch k {
	case regs.XMM:
		return "regs.XMM"
	case regs.YMM:
		return "regs.YMM"
	case regs.MMX:
		return "regs.MMX"
	case regs.Segment:
		return "regs.Segment"
	case regs.FPU:
		return "regs.FPU"
	case regs.Control:
		return "regs.Control"
	case regs.Debug:
		return "regs.Debug"
	case regs.Mask:
		return "regs.Mask"
	default:
		return "regs.GPR"
	}
}

// vexMap emits a map[VEXKey]*VEXSlot literal with keys sorted into a
// deterministic order first — map iteration order is randomised in Go, and
// without sorting two runs of cmd/generator over the same input could emit
// byte-different (if behaviourally identical) source, defeating a clean
// diff in the checked-in generated_x86_64.go.
func (e *emitter) vexMap(m map[decodetab.VEXKey]*decodetab.VEXSlot) string {
	keys := make([]decodetab.VEXKey, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, func(a, b decodetab.VEXKey) bool {
		if a.Map != b.Map {
			return a.Map < b.Map
		}
		if a.PP != b.PP {
			return a.PP < b.PP
		}
		return a.Opcode < b.Opcode
	})

	var b strings.Builder
	fmt.Fprintf(&b, "map[%s]*%s{\n", e.t("VEXKey"), e.t("VEXSlot"))
	for _, k := range keys {
		slot := m[k]
		fmt.Fprintf(&b, "%s{Map: %s, PP: %d, Opcode: %#02x}: %s,\n",
			e.t("VEXKey"), e.opcodeMap(k.Map), k.PP, k.Opcode, e.vexSlot(slot))
	}
	b.WriteString("}")
	return b.String()
}

func (e *emitter) vexSlot(s *decodetab.VEXSlot) string {
	if s == nil {
		return "nil"
	}
	l0, l1 := "nil", "nil"
	if s.L0 != nil {
		l0 = e.terminal(s.L0)
	}
	if s.L1 != nil {
		l1 = e.terminal(s.L1)
	}
	return fmt.Sprintf("&%s{L0: %s, L1: %s}", e.t("VEXSlot"), l0, l1)
}

func (e *emitter) opcodeMap(m decodetab.OpcodeMap) string {
	switch m {
	case decodetab.MapTwoByte:
		return e.t("MapTwoByte")
	case decodetab.Map0F38:
		return e.t("Map0F38")
	case decodetab.Map0F3A:
		return e.t("Map0F3A")
	default:
		return e.t("MapOneByte")
	}
}
