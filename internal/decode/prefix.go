package decode

// PrefixFlags is a bitset of recognised prefixes and encoding-context bits
// (§3.1). The segment-override register is carried separately in
// SegmentOverride rather than packed into the bitset, since it needs more
// than one bit of state.
type PrefixFlags uint16

const (
	PrefixRep PrefixFlags = 1 << iota
	PrefixRepNZ
	PrefixLock
	PrefixSegmentOverride
	PrefixVEXPresent
	PrefixREXW
	PrefixOperandSizeOverride // the raw 0x66 byte was present
	PrefixAddressSizeOverride // the raw 0x67 byte was present
)

// Has reports whether flag is set.
func (p PrefixFlags) Has(flag PrefixFlags) bool { return p&flag != 0 }

// SegmentOverride identifies the effective segment register, or NONE when
// no override applies (§3.1).
type SegmentOverride int

const (
	SegNone SegmentOverride = iota
	SegCS
	SegDS
	SegES
	SegFS
	SegGS
	SegSS
)

func (s SegmentOverride) String() string {
	switch s {
	case SegCS:
		return "cs"
	case SegDS:
		return "ds"
	case SegES:
		return "es"
	case SegFS:
		return "fs"
	case SegGS:
		return "gs"
	case SegSS:
		return "ss"
	default:
		return "none"
	}
}
