package fixint

// WordSize selects the native machine word the promotion table assumes.
// The word size changes the signedness of some mixed Uint32 promotions,
// so it is an explicit parameter rather than an implicit host detail.
type WordSize int

const (
	Word32 WordSize = 32
	Word64 WordSize = 64
)

// HostWordSize is the word size of the running platform.
const HostWordSize = WordSize(intSize)

// Kind identifies one of the ten fixed-width integer variants.
//
// The zero Kind is invalid; it exists so an uninitialised Value is
// recognisably broken rather than quietly an Int8.
type Kind uint8

const (
	KindInvalid Kind = iota
	Int8
	Int16
	Int32
	Int64
	Int128
	Uint8
	Uint16
	Uint32
	Uint64
	Uint128

	kindCount
)

var kindInfos = [kindCount]struct {
	name   string
	bits   uint
	signed bool
}{
	KindInvalid: {"invalid", 0, false},
	Int8:        {"int8", 8, true},
	Int16:       {"int16", 16, true},
	Int32:       {"int32", 32, true},
	Int64:       {"int64", 64, true},
	Int128:      {"int128", 128, true},
	Uint8:       {"uint8", 8, false},
	Uint16:      {"uint16", 16, false},
	Uint32:      {"uint32", 32, false},
	Uint64:      {"uint64", 64, false},
	Uint128:     {"uint128", 128, false},
}

// kindBounds carries the representable range of each kind as unsigned
// magnitudes: maxU is typemax, minMagU is |typemin| (zero for unsigned
// kinds). The conversion and checked paths are driven entirely by this
// table; there is no per-pair conversion code anywhere in the package.
var kindBounds [kindCount]struct {
	maxU    U128
	minMagU U128
}

func (k Kind) String() string {
	if k >= kindCount {
		return "invalid"
	}
	return kindInfos[k].name
}

// Bits returns the width of the kind's representation: 8, 16, 32, 64 or
// 128. Invalid kinds report 0.
func (k Kind) Bits() uint {
	if k >= kindCount {
		return 0
	}
	return kindInfos[k].bits
}

// Signed reports whether the kind is a two's complement signed variant.
// Invalid kinds report false.
func (k Kind) Signed() bool {
	if k >= kindCount {
		return false
	}
	return kindInfos[k].signed
}

// Min returns typemin: the smallest representable value of the kind.
func (k Kind) Min() Value {
	if !k.Signed() {
		return makeValue(k, 0, 0)
	}
	if k.Bits() == 128 {
		return Value{kind: k, hi: signBit, lo: 0}
	}
	return makeValue(k, 0, uint64(1)<<(k.Bits()-1))
}

// Max returns typemax: the largest representable value of the kind.
func (k Kind) Max() Value {
	b := kindBounds[k]
	return makeValue(k, b.maxU.hi, b.maxU.lo)
}

var (
	promote32 [kindCount][kindCount]Kind
	promote64 [kindCount][kindCount]Kind
)

func init() {
	for k := Int8; k < kindCount; k++ {
		w := kindInfos[k].bits
		if kindInfos[k].signed {
			kindBounds[k].maxU = U128From64(1).Lsh(w - 1).Dec()
			kindBounds[k].minMagU = U128From64(1).Lsh(w - 1)
		} else if w == 128 {
			kindBounds[k].maxU = MaxU128
		} else {
			kindBounds[k].maxU = U128From64(1).Lsh(w).Dec()
		}
	}

	for a := Int8; a < kindCount; a++ {
		for b := Int8; b < kindCount; b++ {
			promote32[a][b] = promoteRule(a, b, Word32)
			promote64[a][b] = promoteRule(a, b, Word64)
		}
	}
}

// promoteRule is only ever consulted while the tables are built; the
// lookup itself never compares widths at runtime.
func promoteRule(a, b Kind, word WordSize) Kind {
	if a == b {
		return a
	}

	// Uint32 against a signed kind no wider than itself changes meaning
	// with the machine word: a 64-bit word can absorb the whole uint32
	// range into its default signed type without widening the unsigned
	// operand's kind, a 32-bit word cannot.
	if a == Uint32 && b.Signed() && b.Bits() <= 32 {
		if word == Word64 {
			return Int64
		}
		return Uint32
	}
	if b == Uint32 && a.Signed() && a.Bits() <= 32 {
		if word == Word64 {
			return Int64
		}
		return Uint32
	}

	aw, bw := a.Bits(), b.Bits()
	if aw == bw {
		// Unsigned wins only when there is nothing to win: both
		// operands already unsigned is the a == b case above.
		return signedKind(aw)
	}
	if aw > bw {
		return a
	}
	return b
}

func signedKind(bits uint) Kind {
	switch bits {
	case 8:
		return Int8
	case 16:
		return Int16
	case 32:
		return Int32
	case 64:
		return Int64
	default:
		return Int128
	}
}

// Promote returns the result kind of a mixed binary arithmetic
// operation over operands of kinds a and b, for the given word size.
// The relation is total and symmetric over the ten kinds and is a
// plain table lookup.
func Promote(a, b Kind, word WordSize) Kind {
	if a >= kindCount || b >= kindCount {
		return KindInvalid
	}
	if word == Word32 {
		return promote32[a][b]
	}
	return promote64[a][b]
}

// PromoteDefault is Promote for the host's word size.
func PromoteDefault(a, b Kind) Kind {
	return Promote(a, b, HostWordSize)
}
