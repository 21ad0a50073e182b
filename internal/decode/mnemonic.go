package decode

import "github.com/keurnel/x86decode/internal/decodetab"

// Mnemonic is defined once, in internal/decodetab, where the table
// generator emits it alongside the dispatch tables that reference it
// (§9, "Mnemonic enumeration" — the enum is derived from the same spec
// file as the tables, so the two must never drift apart). decode re-exports
// the type so callers never need to import decodetab directly.
type Mnemonic = decodetab.Mnemonic

const (
	MnemonicInvalid = decodetab.MnemonicInvalid
	FWAIT           = decodetab.FWAIT
	MOV             = decodetab.MOV
	MOVZX           = decodetab.MOVZX
	MOVSX           = decodetab.MOVSX
	MOVSXD          = decodetab.MOVSXD
	LEA             = decodetab.LEA
	PUSH            = decodetab.PUSH
	POP             = decodetab.POP
	XCHG            = decodetab.XCHG
	CBW             = decodetab.CBW
	CWDE            = decodetab.CWDE
	CDQE            = decodetab.CDQE
	CWD             = decodetab.CWD
	CDQ             = decodetab.CDQ
	CQO             = decodetab.CQO
	ADD             = decodetab.ADD
	OR              = decodetab.OR
	ADC             = decodetab.ADC
	SBB             = decodetab.SBB
	AND             = decodetab.AND
	SUB             = decodetab.SUB
	XOR             = decodetab.XOR
	CMP             = decodetab.CMP
	TEST            = decodetab.TEST
	INC             = decodetab.INC
	DEC             = decodetab.DEC
	NEG             = decodetab.NEG
	NOT             = decodetab.NOT
	MUL             = decodetab.MUL
	IMUL            = decodetab.IMUL
	DIV             = decodetab.DIV
	IDIV            = decodetab.IDIV
	ROL             = decodetab.ROL
	ROR             = decodetab.ROR
	RCL             = decodetab.RCL
	RCR             = decodetab.RCR
	SHL             = decodetab.SHL
	SHR             = decodetab.SHR
	SAR             = decodetab.SAR
	JMP             = decodetab.JMP
	CALL            = decodetab.CALL
	RET             = decodetab.RET
	RETF            = decodetab.RETF
	LEAVE           = decodetab.LEAVE
	ENTER           = decodetab.ENTER
	SYSCALL         = decodetab.SYSCALL
	INT3            = decodetab.INT3
	INT             = decodetab.INT
	NOP             = decodetab.NOP
	HLT             = decodetab.HLT
	CLI             = decodetab.CLI
	STI             = decodetab.STI
	CLD             = decodetab.CLD
	STD             = decodetab.STD
	CLC             = decodetab.CLC
	STC             = decodetab.STC
	CMC             = decodetab.CMC
	LAHF            = decodetab.LAHF
	SAHF            = decodetab.SAHF
	PUSHF           = decodetab.PUSHF
	POPF            = decodetab.POPF
	MOVS            = decodetab.MOVS
	CMPS            = decodetab.CMPS
	SCAS            = decodetab.SCAS
	STOS            = decodetab.STOS
	LODS            = decodetab.LODS
	CMPXCHG         = decodetab.CMPXCHG
	CMPXCHG8B       = decodetab.CMPXCHG8B
	CMPXCHG16B      = decodetab.CMPXCHG16B
	XADD            = decodetab.XADD
	LDS             = decodetab.LDS
	LES             = decodetab.LES
	LGDT            = decodetab.LGDT
	LIDT            = decodetab.LIDT
	LLDT            = decodetab.LLDT
	LTR             = decodetab.LTR
	SGDT            = decodetab.SGDT
	SIDT            = decodetab.SIDT
	SLDT            = decodetab.SLDT
	STR             = decodetab.STR
	FBLD            = decodetab.FBLD
	FBSTP           = decodetab.FBSTP
	FLDENV          = decodetab.FLDENV
	FRSTOR          = decodetab.FRSTOR
	FSAVE           = decodetab.FSAVE
	FSTENV          = decodetab.FSTENV
	FSTP80          = decodetab.FSTP80
	FXRSTOR         = decodetab.FXRSTOR
	FXSAVE          = decodetab.FXSAVE
	FNINIT          = decodetab.FNINIT
	FNCLEX          = decodetab.FNCLEX
	FNSTCW          = decodetab.FNSTCW
	FNSTSW          = decodetab.FNSTSW
	VZEROUPPER      = decodetab.VZEROUPPER
	VZEROALL        = decodetab.VZEROALL

	JCC_O  = decodetab.JCC_O
	JCC_NO = decodetab.JCC_NO
	JCC_B  = decodetab.JCC_B
	JCC_AE = decodetab.JCC_AE
	JCC_E  = decodetab.JCC_E
	JCC_NE = decodetab.JCC_NE
	JCC_BE = decodetab.JCC_BE
	JCC_A  = decodetab.JCC_A
	JCC_S  = decodetab.JCC_S
	JCC_NS = decodetab.JCC_NS
	JCC_P  = decodetab.JCC_P
	JCC_NP = decodetab.JCC_NP
	JCC_L  = decodetab.JCC_L
	JCC_GE = decodetab.JCC_GE
	JCC_LE = decodetab.JCC_LE
	JCC_G  = decodetab.JCC_G

	SETCC_O  = decodetab.SETCC_O
	SETCC_NO = decodetab.SETCC_NO
	SETCC_B  = decodetab.SETCC_B
	SETCC_AE = decodetab.SETCC_AE
	SETCC_E  = decodetab.SETCC_E
	SETCC_NE = decodetab.SETCC_NE
	SETCC_BE = decodetab.SETCC_BE
	SETCC_A  = decodetab.SETCC_A
	SETCC_S  = decodetab.SETCC_S
	SETCC_NS = decodetab.SETCC_NS
	SETCC_P  = decodetab.SETCC_P
	SETCC_NP = decodetab.SETCC_NP
	SETCC_L  = decodetab.SETCC_L
	SETCC_GE = decodetab.SETCC_GE
	SETCC_LE = decodetab.SETCC_LE
	SETCC_G  = decodetab.SETCC_G

	CMOVCC_O  = decodetab.CMOVCC_O
	CMOVCC_NO = decodetab.CMOVCC_NO
	CMOVCC_B  = decodetab.CMOVCC_B
	CMOVCC_AE = decodetab.CMOVCC_AE
	CMOVCC_E  = decodetab.CMOVCC_E
	CMOVCC_NE = decodetab.CMOVCC_NE
	CMOVCC_BE = decodetab.CMOVCC_BE
	CMOVCC_A  = decodetab.CMOVCC_A
	CMOVCC_S  = decodetab.CMOVCC_S
	CMOVCC_NS = decodetab.CMOVCC_NS
	CMOVCC_P  = decodetab.CMOVCC_P
	CMOVCC_NP = decodetab.CMOVCC_NP
	CMOVCC_L  = decodetab.CMOVCC_L
	CMOVCC_GE = decodetab.CMOVCC_GE
	CMOVCC_LE = decodetab.CMOVCC_LE
	CMOVCC_G  = decodetab.CMOVCC_G
)
