package tablegen

// Record is one parsed line of a tables/*.spec file: either a single
// encoding (Entry) or an opcode-extension group keyed on the ModR/M reg
// field (Group). The parser (parser.go) produces a []Record; the trie
// builder (trie.go) consumes it to populate a decodetab.Table.
type Record interface {
	recordLine() int
}

// Field is one `key=value` pair on a record line.
type Field struct {
	Key   string
	Value string
}

// EntryRecord describes a single-terminal encoding: one opcode (optionally
// under the 0F/0F38/0F3A escape) maps directly to one mnemonic.
type EntryRecord struct {
	Line     int
	Mnemonic string
	Map      string // "one", "two", "0f38", "0f3a"
	Opcode   byte
	ModRM    bool
	Operands []string // e.g. "Eb,Gb" split into ["Eb", "Gb"]
	ImmBytes string    // "", "1", "2", "4", "-1" (IMM16/32), etc.
	SignExt  bool
	RelBytes string
	Default64 bool
	Mode     string // "", "only32", "only64"
}

func (e *EntryRecord) recordLine() int { return e.Line }

// GroupRecord describes an opcode-extension group: one opcode dispatches to
// up to eight mnemonics keyed by the ModR/M reg field.
type GroupRecord struct {
	Line     int
	Map      string
	Opcode   byte
	ByReg    [8]string // mnemonic name, "" for an invalid/unused slot
	Operands []string
	ImmBytes string
	SignExt  bool
}

func (g *GroupRecord) recordLine() int { return g.Line }

// VEXRecord describes a VEX-encoded entry, keyed by opcode map, mandatory
// prefix, and opcode byte, with separate mnemonics for VEX.L=0 and VEX.L=1.
type VEXRecord struct {
	Line   int
	Map    string
	PP     byte
	Opcode byte
	L0     string
	L1     string
}

func (v *VEXRecord) recordLine() int { return v.Line }
