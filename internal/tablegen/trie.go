package tablegen

import (
	"fmt"

	"github.com/keurnel/x86decode/internal/decodetab"
)

// Build compiles records into a decodetab.Table, resolving mnemonic and
// operand-template tokens through vocab. Build records nothing into
// diagnostics: it stops at the first record it cannot compile (an unknown
// mnemonic, operand, map or mode token, too many operands, or two records
// claiming the same opcode slot) and returns that error with the record's
// line number.
func Build(records []Record, vocab *Vocabulary) (*decodetab.Table, error) {
	tab := &decodetab.Table{VEX: make(map[decodetab.VEXKey]*decodetab.VEXSlot)}

	for _, r := range records {
		switch rec := r.(type) {
		case *EntryRecord:
			if err := buildEntry(tab, rec, vocab); err != nil {
				return nil, fmt.Errorf("line %d: %w", rec.Line, err)
			}
		case *GroupRecord:
			if err := buildGroup(tab, rec, vocab); err != nil {
				return nil, fmt.Errorf("line %d: %w", rec.Line, err)
			}
		case *VEXRecord:
			if err := buildVEX(tab, rec, vocab); err != nil {
				return nil, fmt.Errorf("line %d: %w", rec.Line, err)
			}
		}
	}
	return tab, nil
}

func rootTable(tab *decodetab.Table, m decodetab.OpcodeMap) (*[256]*decodetab.DispatchNode, error) {
	switch m {
	case decodetab.MapOneByte:
		return &tab.OneByte, nil
	case decodetab.MapTwoByte:
		return &tab.TwoByte, nil
	case decodetab.Map0F38:
		return &tab.ThreeByte8, nil
	case decodetab.Map0F3A:
		return &tab.ThreeByteA, nil
	default:
		return nil, fmt.Errorf("unsupported opcode map %v", m)
	}
}

func buildTerminal(mnemonic decodetab.Mnemonic, modrm bool, operands []string, immField string, signExt bool, relField string, default64 bool, mode decodetab.ModeGate) (*decodetab.Terminal, error) {
	term := &decodetab.Terminal{
		Mnemonic:      mnemonic,
		ModRM:         modrm,
		Default64:     default64,
		ImmSignExtend: signExt,
		Mode:          mode,
	}

	for i, code := range operands {
		if i >= 4 {
			return nil, fmt.Errorf("too many operands (max 4)")
		}
		spec, err := OperandTemplate(code)
		if err != nil {
			return nil, err
		}
		term.Operands[i] = spec
	}
	term.NumOperands = len(operands)

	imm, err := ImmBytes(immField)
	if err != nil {
		return nil, err
	}
	term.ImmBytes = imm

	if relField != "" {
		rel, err := ImmBytes(relField)
		if err != nil {
			return nil, err
		}
		term.RelBytes = rel
	}

	return term, nil
}

func buildEntry(tab *decodetab.Table, rec *EntryRecord, vocab *Vocabulary) error {
	mapSel, err := OpcodeMap(rec.Map)
	if err != nil {
		return err
	}
	mnemonic, err := vocab.Mnemonic(rec.Mnemonic)
	if err != nil {
		return err
	}
	mode, err := ModeGate(rec.Mode)
	if err != nil {
		return err
	}
	term, err := buildTerminal(mnemonic, rec.ModRM, rec.Operands, rec.ImmBytes, rec.SignExt, rec.RelBytes, rec.Default64, mode)
	if err != nil {
		return err
	}

	root, err := rootTable(tab, mapSel)
	if err != nil {
		return err
	}
	if root[rec.Opcode] != nil {
		return fmt.Errorf("opcode %#x already has an entry", rec.Opcode)
	}
	root[rec.Opcode] = &decodetab.DispatchNode{Terminal: term}
	return nil
}

func buildGroup(tab *decodetab.Table, rec *GroupRecord, vocab *Vocabulary) error {
	mapSel, err := OpcodeMap(rec.Map)
	if err != nil {
		return err
	}

	var group decodetab.GroupNode
	for i, name := range rec.ByReg {
		if name == "" {
			group.ByReg[i] = &decodetab.DispatchNode{Terminal: &decodetab.Terminal{Invalid: true}}
			continue
		}
		mnemonic, err := vocab.Mnemonic(name)
		if err != nil {
			return fmt.Errorf("reg%d: %w", i, err)
		}
		term, err := buildTerminal(mnemonic, true, rec.Operands, rec.ImmBytes, rec.SignExt, "", false, decodetab.ModeAny)
		if err != nil {
			return fmt.Errorf("reg%d: %w", i, err)
		}
		group.ByReg[i] = &decodetab.DispatchNode{Terminal: term}
	}

	root, err := rootTable(tab, mapSel)
	if err != nil {
		return err
	}
	if root[rec.Opcode] != nil {
		return fmt.Errorf("opcode %#x already has an entry", rec.Opcode)
	}
	root[rec.Opcode] = &decodetab.DispatchNode{Group: &group}
	return nil
}

func buildVEX(tab *decodetab.Table, rec *VEXRecord, vocab *Vocabulary) error {
	mapSel, err := OpcodeMap(rec.Map)
	if err != nil {
		return err
	}
	key := decodetab.VEXKey{Map: mapSel, PP: rec.PP, Opcode: rec.Opcode}
	if _, exists := tab.VEX[key]; exists {
		return fmt.Errorf("VEX key %+v already has an entry", key)
	}

	slot := &decodetab.VEXSlot{}
	if rec.L0 != "" {
		m, err := vocab.Mnemonic(rec.L0)
		if err != nil {
			return fmt.Errorf("l0: %w", err)
		}
		slot.L0 = &decodetab.Terminal{Mnemonic: m}
	}
	if rec.L1 != "" {
		m, err := vocab.Mnemonic(rec.L1)
		if err != nil {
			return fmt.Errorf("l1: %w", err)
		}
		slot.L1 = &decodetab.Terminal{Mnemonic: m}
	}
	tab.VEX[key] = slot
	return nil
}
