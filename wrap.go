package fixint

import "math/bits"

// SignedN is any native-width signed integer type. The 128-bit signed
// variant is the I128 value type.
type SignedN interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedN is any native-width unsigned integer type. The 128-bit
// unsigned variant is the U128 value type.
type UnsignedN interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// IntN is any native-width fixed integer type, signed or unsigned.
type IntN interface {
	SignedN | UnsignedN
}

// widthOf returns the bit width of T. The loop shifts the all-ones
// pattern left until it drains; the compiler folds it per
// instantiation.
func widthOf[T IntN]() uint {
	n := uint(0)
	for v := ^T(0); v != 0; v <<= 1 {
		n++
	}
	return n
}

func isSigned[T IntN]() bool { return ^T(0) < 0 }

func minOf[T IntN]() T {
	if !isSigned[T]() {
		return 0
	}
	return T(1) << (widthOf[T]() - 1)
}

func maxOf[T IntN]() T {
	if isSigned[T]() {
		return ^minOf[T]()
	}
	return ^T(0)
}

// rawBits returns v's representation zero-extended into a uint64,
// which is where all of the bit-counting ops do their work.
func rawBits[T IntN](v T) uint64 {
	w := widthOf[T]()
	u := uint64(v)
	if w < 64 {
		u &= uint64(1)<<w - 1
	}
	return u
}

// The Wrap* family is modular arithmetic over the representation
// width: the bit pattern of the true result, truncated. None of these
// can fail.

func WrapAdd[T IntN](x, y T) T { return x + y }
func WrapSub[T IntN](x, y T) T { return x - y }
func WrapMul[T IntN](x, y T) T { return x * y }
func WrapNeg[T IntN](x T) T    { return -x }

// WrapAbs returns the magnitude of x. The signed minimum has no
// representable magnitude and wraps to itself.
func WrapAbs[T IntN](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

func Not[T IntN](x T) T       { return ^x }
func And[T IntN](x, y T) T    { return x & y }
func Or[T IntN](x, y T) T     { return x | y }
func Xor[T IntN](x, y T) T    { return x ^ y }
func AndNot[T IntN](x, y T) T { return x &^ y }

// Shl is the logical left shift for both signednesses. Counts of the
// full width or more drain to zero, as native Go shifts do.
func Shl[T IntN](x T, n uint) T { return x << n }

// Shr is the native right shift: arithmetic (sign-filling) for signed
// operands, logical (zero-filling) for unsigned operands.
func Shr[T IntN](x T, n uint) T { return x >> n }

// Lshr is the logical right shift regardless of signedness: vacated
// high bits are zero-filled even for a negative signed operand. For
// unsigned operands it coincides with Shr.
func Lshr[T IntN](x T, n uint) T {
	if n >= widthOf[T]() {
		return 0
	}
	return T(rawBits(x) >> n)
}

// ReverseBytes reorders the bytes of x's representation. It is the
// identity at width 8.
func ReverseBytes[T IntN](x T) T {
	w := widthOf[T]()
	if w == 8 {
		return x
	}
	return T(bits.ReverseBytes64(rawBits(x)) >> (64 - w))
}

// OnesCount returns the number of set bits in x's representation.
func OnesCount[T IntN](x T) uint {
	return uint(bits.OnesCount64(rawBits(x)))
}

// ZerosCount is OnesCount of the complement.
func ZerosCount[T IntN](x T) uint { return OnesCount(^x) }

func LeadingZeros[T IntN](x T) uint {
	return uint(bits.LeadingZeros64(rawBits(x))) - (64 - widthOf[T]())
}

func TrailingZeros[T IntN](x T) uint {
	if x == 0 {
		return widthOf[T]()
	}
	return uint(bits.TrailingZeros64(rawBits(x)))
}

// LeadingOnes and TrailingOnes are the zero counts of the complement.
func LeadingOnes[T IntN](x T) uint  { return LeadingZeros(^x) }
func TrailingOnes[T IntN](x T) uint { return TrailingZeros(^x) }
