package tablegen

import "github.com/keurnel/x86decode/internal/decodetab"

// Compress interns structurally-identical Terminals across tab, so that the
// many opcode slots sharing a shape (e.g. every PUSH +rd slot in the 0x50-57
// range) point at one allocation instead of eight. This only reduces the
// table's memory footprint and emitted-source size; it must never change
// Decode's observable behaviour, since decode.go only ever reads through
// Table.Lookup/LookupVEX (types.go's "indexing is free to change shape"
// invariant).
func Compress(tab *decodetab.Table) {
	interned := make(map[terminalKey]*decodetab.Terminal)

	intern := func(t *decodetab.Terminal) *decodetab.Terminal {
		if t == nil {
			return nil
		}
		key := keyOf(t)
		if existing, ok := interned[key]; ok {
			return existing
		}
		interned[key] = t
		return t
	}

	var visitNode func(n *decodetab.DispatchNode)
	visitNode = func(n *decodetab.DispatchNode) {
		if n == nil {
			return
		}
		switch {
		case n.Terminal != nil:
			n.Terminal = intern(n.Terminal)
		case n.Group != nil:
			for i, child := range n.Group.ByReg {
				visitNode(child)
				n.Group.ByReg[i] = child
			}
		case n.ModSplit != nil:
			visitNode(n.ModSplit.RegForm)
			visitNode(n.ModSplit.MemForm)
		}
	}

	for _, root := range [][256]*decodetab.DispatchNode{tab.OneByte, tab.TwoByte, tab.ThreeByte8, tab.ThreeByteA} {
		for _, node := range root {
			visitNode(node)
		}
	}
}

// terminalKey is the comparable projection of a Terminal used to detect
// structural duplicates. Terminal itself is not comparable (it embeds a
// fixed array of OperandSpec, which is comparable, so in fact the whole
// struct is comparable — but we key on field values explicitly rather than
// relying on that, since OperandSpec gaining a non-comparable field later
// shouldn't silently break Compress).
type terminalKey struct {
	mnemonic                                decodetab.Mnemonic
	modrm                                    bool
	ops                                      [4]decodetab.OperandSpec
	numOperands, immBytes, imm2Bytes, relBytes int
	signExtend, default64, stringOp, invalid bool
	mode                                     decodetab.ModeGate
	mandatoryPrefix                          byte
}

func keyOf(t *decodetab.Terminal) terminalKey {
	return terminalKey{
		mnemonic:        t.Mnemonic,
		modrm:           t.ModRM,
		ops:             t.Operands,
		numOperands:     t.NumOperands,
		immBytes:        t.ImmBytes,
		imm2Bytes:       t.Imm2Bytes,
		relBytes:        t.RelBytes,
		signExtend:      t.ImmSignExtend,
		default64:       t.Default64,
		stringOp:        t.StringOp,
		invalid:         t.Invalid,
		mode:            t.Mode,
		mandatoryPrefix: t.MandatoryPrefix,
	}
}
