package decode

// DecodeError is the decoder's closed error domain (§4.1 "Error
// conditions"). It is a plain value rather than a wrapped `error` chain:
// the decoder must not allocate, so there is nothing to wrap and nothing
// to attach context to beyond the fixed sentinel.
type DecodeError int

const (
	// ErrNone is the zero value; never returned from Decode.
	ErrNone DecodeError = iota
	// ErrShortBuffer: the input was exhausted mid-instruction.
	ErrShortBuffer
	// ErrInvalid: reached a terminal marked invalid, or encountered an
	// architecturally illegal prefix/encoding combination.
	ErrInvalid
	// ErrTooLong: the instruction would consume more than 15 bytes.
	ErrTooLong
	// ErrBadMode: mode was not Mode32 or Mode64.
	ErrBadMode
)

func (e DecodeError) Error() string {
	switch e {
	case ErrShortBuffer:
		return "x86decode: short buffer"
	case ErrInvalid:
		return "x86decode: invalid encoding"
	case ErrTooLong:
		return "x86decode: instruction exceeds 15 bytes"
	case ErrBadMode:
		return "x86decode: unsupported processor mode"
	default:
		return "x86decode: unknown error"
	}
}

// maxInstructionLength is the architectural bound on x86 instruction
// length: at most 15 bytes are ever read by Decode.
const maxInstructionLength = 15
