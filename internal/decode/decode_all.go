package decode

// DecodeAll decodes every instruction in buf in sequence, starting at
// address, advancing address by each instruction's length (§11,
// "streaming decode" — adapted from the assembler's own line-by-line
// accumulation style, generalised to a flat instruction stream). It stops
// at the first error, returning the instructions decoded so far alongside
// it; a fully clean buffer returns a nil error.
//
// DecodeAll never retains buf past the call: the returned slice holds
// Instruction values, not sub-slices or pointers into buf.
func DecodeAll(buf []byte, mode Mode, address uint64) ([]Instruction, error) {
	var out []Instruction
	pos := 0
	for pos < len(buf) {
		n, in, err := Decode(buf[pos:], mode, address+uint64(pos))
		if err != nil {
			return out, err
		}
		out = append(out, in)
		pos += n
	}
	return out, nil
}
