package decodetab

// Mnemonic is the decoded instruction's opcode-level identity (§3.1).
// Condition codes are folded into the mnemonic itself (JCC_NE rather than
// JCC + a separate condition field) matching spec.md's own example.
//
// The real instruction set distilled by this decoder has on the order of
// two thousand encodings (§9, "Mnemonic enumeration"); a build whose
// tables/*.spec covers that whole set would derive this enum from the spec
// file at generation time, the way internal/tablegen's Vocabulary resolves
// spec-file tokens through EnumIdentifiers() below. This enum is hand-written,
// not generator output — it enumerates the subset wired into
// generated_x86_64.go's hand-written table, which is itself ahead of what
// the checked-in tables/x86_64.spec encodes (see DESIGN.md, "Why two
// tables"). Vocabulary.Mnemonic already resolves spec-file tokens against
// this same enum, so growing tables/x86_64.spec to cover more of it needs
// no change here.
type Mnemonic int

const (
	MnemonicInvalid Mnemonic = iota

	// FPU wait decomposition (§4.1 "FWAIT decomposition").
	FWAIT

	// Data movement.
	MOV
	MOVZX
	MOVSX
	MOVSXD
	LEA
	PUSH
	POP
	XCHG
	CBW
	CWDE
	CDQE
	CWD
	CDQ
	CQO

	// Arithmetic / logic.
	ADD
	OR
	ADC
	SBB
	AND
	SUB
	XOR
	CMP
	TEST
	INC
	DEC
	NEG
	NOT
	MUL
	IMUL
	DIV
	IDIV

	// Shifts / rotates.
	ROL
	ROR
	RCL
	RCR
	SHL
	SHR
	SAR

	// Control flow.
	JMP
	CALL
	RET
	RETF
	LEAVE
	ENTER
	SYSCALL
	INT3
	INT

	// Conditional jumps, one mnemonic per x86 condition code.
	JCC_O
	JCC_NO
	JCC_B
	JCC_AE
	JCC_E
	JCC_NE
	JCC_BE
	JCC_A
	JCC_S
	JCC_NS
	JCC_P
	JCC_NP
	JCC_L
	JCC_GE
	JCC_LE
	JCC_G

	// SETcc, one mnemonic per condition.
	SETCC_O
	SETCC_NO
	SETCC_B
	SETCC_AE
	SETCC_E
	SETCC_NE
	SETCC_BE
	SETCC_A
	SETCC_S
	SETCC_NS
	SETCC_P
	SETCC_NP
	SETCC_L
	SETCC_GE
	SETCC_LE
	SETCC_G

	// CMOVcc, one mnemonic per condition.
	CMOVCC_O
	CMOVCC_NO
	CMOVCC_B
	CMOVCC_AE
	CMOVCC_E
	CMOVCC_NE
	CMOVCC_BE
	CMOVCC_A
	CMOVCC_S
	CMOVCC_NS
	CMOVCC_P
	CMOVCC_NP
	CMOVCC_L
	CMOVCC_GE
	CMOVCC_LE
	CMOVCC_G

	// Flags / misc.
	NOP
	HLT
	CLI
	STI
	CLD
	STD
	CLC
	STC
	CMC
	LAHF
	SAHF
	PUSHF
	POPF

	// String instructions (§4.1 "String prefix quirk").
	MOVS
	CMPS
	SCAS
	STOS
	LODS

	// Synchronisation.
	CMPXCHG
	CMPXCHG8B
	CMPXCHG16B
	XADD

	// Descriptor-table / rare instructions with a mandated zero
	// operand_size (§6.5).
	LDS
	LES
	LGDT
	LIDT
	LLDT
	LTR
	SGDT
	SIDT
	SLDT
	STR
	FBLD
	FBSTP
	FLDENV
	FRSTOR
	FSAVE
	FSTENV
	FSTP80
	FXRSTOR
	FXSAVE

	// x87 FPU, non-waiting forms (the *waiting* forms decompose into
	// FWAIT + the corresponding non-waiting mnemonic, §4.1).
	FNINIT
	FNCLEX
	FNSTCW
	FNSTSW

	// AVX (VEX-encoded), minimal set.
	VZEROUPPER
	VZEROALL
)

var mnemonicNames = map[Mnemonic]string{
	MnemonicInvalid: "(invalid)",
	FWAIT:           "FWAIT",
	MOV:             "MOV", MOVZX: "MOVZX", MOVSX: "MOVSX", MOVSXD: "MOVSXD",
	LEA: "LEA", PUSH: "PUSH", POP: "POP", XCHG: "XCHG",
	CBW: "CBW", CWDE: "CWDE", CDQE: "CDQE", CWD: "CWD", CDQ: "CDQ", CQO: "CQO",
	ADD: "ADD", OR: "OR", ADC: "ADC", SBB: "SBB", AND: "AND", SUB: "SUB",
	XOR: "XOR", CMP: "CMP", TEST: "TEST", INC: "INC", DEC: "DEC",
	NEG: "NEG", NOT: "NOT", MUL: "MUL", IMUL: "IMUL", DIV: "DIV", IDIV: "IDIV",
	ROL: "ROL", ROR: "ROR", RCL: "RCL", RCR: "RCR", SHL: "SHL", SHR: "SHR", SAR: "SAR",
	JMP: "JMP", CALL: "CALL", RET: "RET", RETF: "RETF", LEAVE: "LEAVE",
	ENTER: "ENTER", SYSCALL: "SYSCALL", INT3: "INT3", INT: "INT",
	JCC_O: "JO", JCC_NO: "JNO", JCC_B: "JB", JCC_AE: "JAE", JCC_E: "JE",
	JCC_NE: "JNE", JCC_BE: "JBE", JCC_A: "JA", JCC_S: "JS", JCC_NS: "JNS",
	JCC_P: "JP", JCC_NP: "JNP", JCC_L: "JL", JCC_GE: "JGE", JCC_LE: "JLE", JCC_G: "JG",
	SETCC_O: "SETO", SETCC_NO: "SETNO", SETCC_B: "SETB", SETCC_AE: "SETAE",
	SETCC_E: "SETE", SETCC_NE: "SETNE", SETCC_BE: "SETBE", SETCC_A: "SETA",
	SETCC_S: "SETS", SETCC_NS: "SETNS", SETCC_P: "SETP", SETCC_NP: "SETNP",
	SETCC_L: "SETL", SETCC_GE: "SETGE", SETCC_LE: "SETLE", SETCC_G: "SETG",
	CMOVCC_O: "CMOVO", CMOVCC_NO: "CMOVNO", CMOVCC_B: "CMOVB", CMOVCC_AE: "CMOVAE",
	CMOVCC_E: "CMOVE", CMOVCC_NE: "CMOVNE", CMOVCC_BE: "CMOVBE", CMOVCC_A: "CMOVA",
	CMOVCC_S: "CMOVS", CMOVCC_NS: "CMOVNS", CMOVCC_P: "CMOVP", CMOVCC_NP: "CMOVNP",
	CMOVCC_L: "CMOVL", CMOVCC_GE: "CMOVGE", CMOVCC_LE: "CMOVLE", CMOVCC_G: "CMOVG",
	NOP: "NOP", HLT: "HLT", CLI: "CLI", STI: "STI", CLD: "CLD", STD: "STD",
	CLC: "CLC", STC: "STC", CMC: "CMC", LAHF: "LAHF", SAHF: "SAHF",
	PUSHF: "PUSHF", POPF: "POPF",
	MOVS: "MOVS", CMPS: "CMPS", SCAS: "SCAS", STOS: "STOS", LODS: "LODS",
	CMPXCHG: "CMPXCHG", CMPXCHG8B: "CMPXCHG8B", CMPXCHG16B: "CMPXCHG16B", XADD: "XADD",
	LDS: "LDS", LES: "LES", LGDT: "LGDT", LIDT: "LIDT", LLDT: "LLDT", LTR: "LTR",
	SGDT: "SGDT", SIDT: "SIDT", SLDT: "SLDT", STR: "STR",
	FBLD: "FBLD", FBSTP: "FBSTP", FLDENV: "FLDENV", FRSTOR: "FRSTOR",
	FSAVE: "FSAVE", FSTENV: "FSTENV", FSTP80: "FSTP", FXRSTOR: "FXRSTOR", FXSAVE: "FXSAVE",
	FNINIT: "FNINIT", FNCLEX: "FNCLEX", FNSTCW: "FNSTCW", FNSTSW: "FNSTSW",
	VZEROUPPER: "VZEROUPPER", VZEROALL: "VZEROALL",
}

// String renders the mnemonic's canonical upper-case name. Used only for
// debug output and diagnostics (§9's accessor guidance keeps this off the
// decode hot path).
func (m Mnemonic) String() string {
	if name, ok := mnemonicNames[m]; ok {
		return name
	}
	return "(unknown)"
}

// zeroOperandSizeMnemonics is the §6.5 list that must always report
// operand_size = 0, independent of the normal size-computation rules.
var zeroOperandSizeMnemonics = map[Mnemonic]bool{
	CMPXCHG8B: true, CMPXCHG16B: true,
	FBLD: true, FBSTP: true, FLDENV: true, FRSTOR: true, FSAVE: true,
	FSTENV: true, FSTP80: true, FXRSTOR: true, FXSAVE: true,
	LDS: true, LES: true, LGDT: true, LIDT: true, LLDT: true, LTR: true,
	SGDT: true, SIDT: true, SLDT: true, STR: true,
}

// ZeroOperandSize reports whether m is on the §6.5 list that must always
// decode with operand_size = 0.
func ZeroOperandSize(m Mnemonic) bool {
	return zeroOperandSizeMnemonics[m]
}

// Names returns a copy of the mnemonic-to-canonical-name table String()
// uses. internal/tablegen's vocabulary does not use it: spec files name
// mnemonics by enum identifier, which it resolves through EnumIdentifiers.
func Names() map[Mnemonic]string {
	out := make(map[Mnemonic]string, len(mnemonicNames))
	for m, name := range mnemonicNames {
		out[m] = name
	}
	return out
}

// enumIdentifiers maps each Mnemonic's Go identifier (as written in a
// tables/*.spec ENTRY/GROUP/VEX record's mnemonic= field) to its value.
// This is distinct from mnemonicNames: that table holds the *assembly
// syntax* name ("JNE"), this one holds the *enum* name ("JCC_NE") a spec
// file author actually writes.
var enumIdentifiers = map[string]Mnemonic{
	"MOV": MOV, "MOVZX": MOVZX, "MOVSX": MOVSX, "MOVSXD": MOVSXD,
	"LEA": LEA, "PUSH": PUSH, "POP": POP, "XCHG": XCHG,
	"CBW": CBW, "CWDE": CWDE, "CDQE": CDQE, "CWD": CWD, "CDQ": CDQ, "CQO": CQO,
	"ADD": ADD, "OR": OR, "ADC": ADC, "SBB": SBB, "AND": AND, "SUB": SUB,
	"XOR": XOR, "CMP": CMP, "TEST": TEST, "INC": INC, "DEC": DEC,
	"NEG": NEG, "NOT": NOT, "MUL": MUL, "IMUL": IMUL, "DIV": DIV, "IDIV": IDIV,
	"ROL": ROL, "ROR": ROR, "RCL": RCL, "RCR": RCR, "SHL": SHL, "SHR": SHR, "SAR": SAR,
	"JMP": JMP, "CALL": CALL, "RET": RET, "RETF": RETF, "LEAVE": LEAVE,
	"ENTER": ENTER, "SYSCALL": SYSCALL, "INT3": INT3, "INT": INT, "NOP": NOP,
	"JCC_O": JCC_O, "JCC_NO": JCC_NO, "JCC_B": JCC_B, "JCC_AE": JCC_AE,
	"JCC_E": JCC_E, "JCC_NE": JCC_NE, "JCC_BE": JCC_BE, "JCC_A": JCC_A,
	"JCC_S": JCC_S, "JCC_NS": JCC_NS, "JCC_P": JCC_P, "JCC_NP": JCC_NP,
	"JCC_L": JCC_L, "JCC_GE": JCC_GE, "JCC_LE": JCC_LE, "JCC_G": JCC_G,
	"SETCC_O": SETCC_O, "SETCC_NO": SETCC_NO, "SETCC_B": SETCC_B, "SETCC_AE": SETCC_AE,
	"SETCC_E": SETCC_E, "SETCC_NE": SETCC_NE, "SETCC_BE": SETCC_BE, "SETCC_A": SETCC_A,
	"SETCC_S": SETCC_S, "SETCC_NS": SETCC_NS, "SETCC_P": SETCC_P, "SETCC_NP": SETCC_NP,
	"SETCC_L": SETCC_L, "SETCC_GE": SETCC_GE, "SETCC_LE": SETCC_LE, "SETCC_G": SETCC_G,
	"CMOVCC_O": CMOVCC_O, "CMOVCC_NO": CMOVCC_NO, "CMOVCC_B": CMOVCC_B, "CMOVCC_AE": CMOVCC_AE,
	"CMOVCC_E": CMOVCC_E, "CMOVCC_NE": CMOVCC_NE, "CMOVCC_BE": CMOVCC_BE, "CMOVCC_A": CMOVCC_A,
	"CMOVCC_S": CMOVCC_S, "CMOVCC_NS": CMOVCC_NS, "CMOVCC_P": CMOVCC_P, "CMOVCC_NP": CMOVCC_NP,
	"CMOVCC_L": CMOVCC_L, "CMOVCC_GE": CMOVCC_GE, "CMOVCC_LE": CMOVCC_LE, "CMOVCC_G": CMOVCC_G,
	"HLT": HLT, "CLI": CLI, "STI": STI, "CLD": CLD, "STD": STD,
	"CLC": CLC, "STC": STC, "CMC": CMC, "LAHF": LAHF, "SAHF": SAHF,
	"PUSHF": PUSHF, "POPF": POPF,
	"MOVS": MOVS, "CMPS": CMPS, "SCAS": SCAS, "STOS": STOS, "LODS": LODS,
	"CMPXCHG": CMPXCHG, "CMPXCHG8B": CMPXCHG8B, "CMPXCHG16B": CMPXCHG16B, "XADD": XADD,
	"LDS": LDS, "LES": LES, "LGDT": LGDT, "LIDT": LIDT, "LLDT": LLDT, "LTR": LTR,
	"SGDT": SGDT, "SIDT": SIDT, "SLDT": SLDT, "STR": STR,
	"FBLD": FBLD, "FBSTP": FBSTP, "FLDENV": FLDENV, "FRSTOR": FRSTOR,
	"FSAVE": FSAVE, "FSTENV": FSTENV, "FSTP80": FSTP80, "FXRSTOR": FXRSTOR, "FXSAVE": FXSAVE,
	"FNINIT": FNINIT, "FNCLEX": FNCLEX, "FNSTCW": FNSTCW, "FNSTSW": FNSTSW,
	"VZEROUPPER": VZEROUPPER, "VZEROALL": VZEROALL,
	"FWAIT": FWAIT,
}

// EnumIdentifiers returns a copy of the enum-identifier vocabulary table.
func EnumIdentifiers() map[string]Mnemonic {
	out := make(map[string]Mnemonic, len(enumIdentifiers))
	for name, m := range enumIdentifiers {
		out[name] = m
	}
	return out
}
