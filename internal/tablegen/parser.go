package tablegen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/keurnel/x86decode/internal/diagnostics"
)

// Parser turns the lexer's line stream into Records, recording any
// malformed line into the supplied diagnostics.Context rather than failing
// the whole spec file outright — a single bad record shouldn't block
// generation of everything else.
type Parser struct {
	lex  *Lexer
	diag *diagnostics.Context
}

// NewParser returns a Parser reading from source, reporting into diag.
func NewParser(source string, diag *diagnostics.Context) *Parser {
	return &Parser{lex: NewLexer(source), diag: diag}
}

// Parse consumes the entire input and returns every record successfully
// parsed. Malformed lines are skipped after being recorded as errors.
func (p *Parser) Parse() []Record {
	var records []Record
	var errCount int
	for {
		line, ok := p.lex.Next()
		if !ok {
			break
		}
		record, err := p.parseLine(line)
		if err != nil {
			errCount++
			p.diag.Error(p.loc(line), err.Error()).
				WithSnippet(strings.Join(line.Words, " ")).
				WithHint("expected a record like ENTRY opcode=0x90 mnemonic=NOP")
			continue
		}
		records = append(records, record)
	}
	p.diag.Info(p.diag.Loc(0, 0), fmt.Sprintf(
		"parsed %d record(s) with %d error(s)", len(records), errCount))
	return records
}

// loc attributes a diagnostic to line's true origin: the included fragment's
// own file and line number when line came from an !include, or the primary
// spec file's flattened line number otherwise.
func (p *Parser) loc(line Line) diagnostics.Location {
	if line.File != "" {
		return p.diag.LocIn(line.File, line.FileLine, 0)
	}
	return p.diag.Loc(line.Number, 0)
}

func (p *Parser) parseLine(line Line) (Record, error) {
	if len(line.Words) == 0 {
		return nil, fmt.Errorf("empty record")
	}

	kind := line.Words[0]
	fields, err := parseFields(line.Words[1:])
	if err != nil {
		return nil, err
	}

	switch kind {
	case "ENTRY":
		return p.parseEntry(line.Number, fields)
	case "GROUP":
		return p.parseGroup(line.Number, fields)
	case "VEX":
		return p.parseVEX(line.Number, fields)
	default:
		return nil, fmt.Errorf("unknown record kind %q", kind)
	}
}

func parseFields(words []string) (map[string]string, error) {
	fields := make(map[string]string, len(words))
	for _, w := range words {
		idx := strings.IndexByte(w, '=')
		if idx < 0 {
			return nil, fmt.Errorf("malformed field %q, want key=value", w)
		}
		fields[w[:idx]] = w[idx+1:]
	}
	return fields, nil
}

func parseOpcode(s string) (byte, error) {
	v, err := strconv.ParseUint(strings.TrimPrefix(s, "0x"), 16, 8)
	if err != nil {
		return 0, fmt.Errorf("bad opcode %q: %w", s, err)
	}
	return byte(v), nil
}

func splitOperands(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}

func (p *Parser) parseEntry(lineNo int, f map[string]string) (*EntryRecord, error) {
	opcode, err := parseOpcode(f["opcode"])
	if err != nil {
		return nil, err
	}
	if f["mnemonic"] == "" {
		return nil, fmt.Errorf("ENTRY missing mnemonic")
	}
	return &EntryRecord{
		Line:      lineNo,
		Mnemonic:  f["mnemonic"],
		Map:       orDefault(f["map"], "one"),
		Opcode:    opcode,
		ModRM:     f["modrm"] == "yes",
		Operands:  splitOperands(f["operands"]),
		ImmBytes:  f["imm"],
		SignExt:   f["signext"] == "yes",
		RelBytes:  f["rel"],
		Default64: f["default64"] == "yes",
		Mode:      f["mode"],
	}, nil
}

func (p *Parser) parseGroup(lineNo int, f map[string]string) (*GroupRecord, error) {
	opcode, err := parseOpcode(f["opcode"])
	if err != nil {
		return nil, err
	}
	g := &GroupRecord{
		Line:     lineNo,
		Map:      orDefault(f["map"], "one"),
		Opcode:   opcode,
		Operands: splitOperands(f["operands"]),
		ImmBytes: f["imm"],
		SignExt:  f["signext"] == "yes",
	}
	for i := 0; i < 8; i++ {
		g.ByReg[i] = f[fmt.Sprintf("reg%d", i)]
	}
	return g, nil
}

func (p *Parser) parseVEX(lineNo int, f map[string]string) (*VEXRecord, error) {
	opcode, err := parseOpcode(f["opcode"])
	if err != nil {
		return nil, err
	}
	pp, err := strconv.ParseUint(f["pp"], 10, 8)
	if err != nil {
		return nil, fmt.Errorf("bad pp %q: %w", f["pp"], err)
	}
	return &VEXRecord{
		Line:   lineNo,
		Map:    orDefault(f["map"], "two"),
		PP:     byte(pp),
		Opcode: opcode,
		L0:     f["l0"],
		L1:     f["l1"],
	}, nil
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
