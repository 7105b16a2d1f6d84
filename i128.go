package fixint

import (
	"fmt"
	"math/big"
)

// I128 is a signed two's complement integer with 128 bits of
// precision, represented as two 64-bit limbs. It is a value type;
// operations return new values and never mutate their operands.
type I128 struct {
	hi uint64
	lo uint64
}

var minusOneI128 = I128{hi: maxUint64, lo: maxUint64}

// I128FromString creates a I128 from a string. Overflow truncates to
// MaxI128/MinI128 and sets accurate to 'false'. Only decimal strings are
// currently supported.
func I128FromString(s string) (out I128, accurate bool, err error) {
	// This deliberately limits the scope of what we accept as input just in case
	// we decide to hand-roll our own fast decimal-only parser:
	b, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return out, false, fmt.Errorf("fixint: i128 string %q invalid", s)
	}
	out, accurate = I128FromBigInt(b)
	return out, accurate, nil
}

// I128FromRaw is the complement to I128.Raw(); it creates an I128 from two
// uint64s representing the hi and lo bits.
func I128FromRaw(hi, lo uint64) I128 {
	return I128{hi: hi, lo: lo}
}

func I128From64(v int64) I128 {
	var hi uint64
	if v < 0 {
		hi = maxUint64
	}
	return I128{hi: hi, lo: uint64(v)}
}

func I128From32(v int32) I128   { return I128From64(int64(v)) }
func I128From16(v int16) I128   { return I128From64(int64(v)) }
func I128From8(v int8) I128     { return I128From64(int64(v)) }
func I128FromInt(v int) I128    { return I128From64(int64(v)) }
func I128FromU64(v uint64) I128 { return I128{lo: v} }

func I128FromBigInt(v *big.Int) (out I128, accurate bool) {
	neg := v.Sign() < 0

	words := v.Bits()

	var u U128
	accurate = true

	switch intSize {
	case 64:
		lw := len(words)
		switch lw {
		case 0:
		case 1:
			u.lo = uint64(words[0])
		case 2:
			u.hi = uint64(words[1])
			u.lo = uint64(words[0])
		default:
			u, accurate = MaxU128, false
		}

	case 32:
		lw := len(words)
		switch lw {
		case 0:
		case 1:
			u.lo = uint64(words[0])
		case 2:
			u.lo = (uint64(words[1]) << 32) | (uint64(words[0]))
		case 3:
			u.hi = uint64(words[2])
			u.lo = (uint64(words[1]) << 32) | (uint64(words[0]))
		case 4:
			u.hi = (uint64(words[3]) << 32) | (uint64(words[2]))
			u.lo = (uint64(words[1]) << 32) | (uint64(words[0]))
		default:
			u, accurate = MaxU128, false
		}

	default:
		panic("fixint: unsupported bit size")
	}

	if !neg {
		if cmp := u.Cmp(maxI128AsU128); cmp == 0 {
			out = MaxI128
		} else if cmp > 0 {
			out, accurate = MaxI128, false
		} else {
			out = u.AsI128()
		}

	} else {
		if cmp := u.Cmp(minI128AsAbsU128); cmp == 0 {
			out = MinI128
		} else if cmp > 0 {
			out, accurate = MinI128, false
		} else {
			out = u.AsI128().Neg()
		}
	}

	return out, accurate
}

func I128FromFloat32(f float32) (out I128, inRange bool) {
	return I128FromFloat64(float64(f))
}

// I128FromFloat64 creates a I128 from a float64.
//
// Any fractional portion will be truncated towards zero.
//
// Floats outside the bounds of a I128 may be discarded or clamped and inRange
// will be set to false.
//
// The range checks are exclusive against the exact powers of two at the
// width boundaries; the type maxima round up to those same float64
// values, so an inclusive bound would admit an out-of-range float.
// Negative inputs go through their magnitude, a float-to-uint
// conversion of a negative value is not portable.
//
// NaN is treated as 0, inRange is set to false.
func I128FromFloat64(f float64) (out I128, inRange bool) {
	if f == 0 {
		return out, true

	} else if f != f { // f != f == isnan
		return out, false

	} else if f < 0 {
		if f > -wrapUint64Float {
			return U128{lo: uint64(-f)}.AsI128().Neg(), true
		} else if f >= minI128Float {
			// Dividing by a power of two is exact. Negating MinI128
			// wraps back to itself, which is the value the minimum
			// float maps to.
			mag := -f
			lo := modpos(mag, wrapUint64Float)
			return U128{hi: uint64(mag / wrapUint64Float), lo: uint64(lo)}.AsI128().Neg(), true
		} else {
			return MinI128, false
		}

	} else {
		if f < wrapUint64Float {
			return I128{lo: uint64(f)}, true
		} else if f < wrapI128Float {
			lo := modpos(f, wrapUint64Float) // f is guaranteed to be > 0 here.
			return I128{hi: uint64(f / wrapUint64Float), lo: uint64(lo)}, true
		} else {
			return MaxI128, false
		}
	}
}

// RandI128 generates a positive signed 128-bit random integer from an external
// source.
func RandI128(source RandSource) (out I128) {
	return I128{hi: source.Uint64() & maxInt64, lo: source.Uint64()}
}

func (i I128) IsZero() bool { return i == zeroI128 }

// Raw returns access to the I128 as a pair of uint64s. See I128FromRaw() for
// the counterpart.
func (i I128) Raw() (hi uint64, lo uint64) { return i.hi, i.lo }

func (i I128) String() string {
	v := i.AsBigInt()
	return v.String()
}

func (i I128) Format(s fmt.State, c rune) {
	i.AsBigInt().Format(s, c)
}

// IntoBigInt copies this I128 into a big.Int, allowing you to retain and
// recycle memory.
func (i I128) IntoBigInt(b *big.Int) {
	neg := i.hi&signBit != 0
	if i.hi > 0 {
		b.SetUint64(i.hi)
		b.Lsh(b, 64)
	} else {
		b.SetUint64(0)
	}
	var lo big.Int
	lo.SetUint64(i.lo)
	b.Add(b, &lo)

	if neg {
		b.Xor(b, maxBigU128).Add(b, big1).Neg(b)
	}
}

// AsBigInt allocates a new big.Int and copies this I128 into it.
func (i I128) AsBigInt() (b *big.Int) {
	b = new(big.Int)
	i.IntoBigInt(b)
	return b
}

// AsU128 performs a direct cast of an I128 to a U128. Negative numbers
// become values > MaxI128.
func (i I128) AsU128() U128 {
	return U128{lo: i.lo, hi: i.hi}
}

// IsU128 reports whether i can be represented in a U128.
func (i I128) IsU128() bool {
	return i.hi&signBit == 0
}

func (i I128) AsBigFloat() (b *big.Float) {
	return new(big.Float).SetInt(i.AsBigInt())
}

func (i I128) AsFloat64() float64 {
	if i.hi == 0 && i.lo == 0 {
		return 0
	} else if i.hi&signBit != 0 {
		if i.hi == maxUint64 {
			return -float64((^i.lo) + 1)
		} else {
			return (-float64(^i.hi) * wrapUint64Float) + -float64(^i.lo)
		}
	} else {
		if i.hi == 0 {
			return float64(i.lo)
		} else {
			return (float64(i.hi) * wrapUint64Float) + float64(i.lo)
		}
	}
}

// AsInt64 truncates the I128 to fit in a int64. Values outside the range will
// over/underflow. See IsInt64() if you want to check before you convert.
func (i I128) AsInt64() int64 {
	if i.hi&signBit != 0 {
		return -int64(^(i.lo - 1))
	} else {
		return int64(i.lo)
	}
}

// IsInt64 reports whether i can be represented as a int64.
func (i I128) IsInt64() bool {
	if i.hi&signBit != 0 {
		return i.hi == maxUint64 && i.lo >= 0x8000000000000000
	} else {
		return i.hi == 0 && i.lo <= maxInt64
	}
}

func (i I128) Sign() int {
	if i == zeroI128 {
		return 0
	} else if i.hi&signBit == 0 {
		return 1
	}
	return -1
}

func (i I128) Inc() (v I128) { return i.AsU128().Inc().AsI128() }
func (i I128) Dec() (v I128) { return i.AsU128().Dec().AsI128() }

// Add returns i + n. Overflow wraps, two's complement addition being
// the same bit operation for both signednesses.
func (i I128) Add(n I128) (v I128) { return i.AsU128().Add(n.AsU128()).AsI128() }

// Sub returns i - n, wrapping on overflow.
func (i I128) Sub(n I128) (v I128) { return i.AsU128().Sub(n.AsU128()).AsI128() }

// Neg returns -i. Negating MinI128 wraps back to MinI128.
func (i I128) Neg() (v I128) { return i.AsU128().Neg().AsI128() }

// Abs returns the magnitude of i. The magnitude of MinI128 is not
// representable and wraps to MinI128; see AbsU128 for the exact
// magnitude and CheckedAbs for the reporting variant.
func (i I128) Abs() I128 {
	if i.hi&signBit != 0 {
		return i.Neg()
	}
	return i
}

// AbsU128 returns the magnitude of i as a U128, which is exact for
// every value including MinI128.
func (i I128) AbsU128() U128 {
	if i.hi&signBit != 0 {
		return i.AsU128().Neg()
	}
	return i.AsU128()
}

// Cmp compares i to n and returns:
//
//	< 0 if i <  n
//	  0 if i == n
//	> 0 if i >  n
//
// The specific value returned by Cmp is undefined, but it is guaranteed to
// satisfy the above constraints.
func (i I128) Cmp(n I128) int {
	if i.hi == n.hi && i.lo == n.lo {
		return 0
	} else if i.hi&signBit == n.hi&signBit {
		if i.hi > n.hi || (i.hi == n.hi && i.lo > n.lo) {
			return 1
		}
	} else if i.hi&signBit == 0 {
		return 1
	}
	return -1
}

func (i I128) Equal(n I128) bool {
	return i.hi == n.hi && i.lo == n.lo
}

func (i I128) GreaterThan(n I128) bool {
	if i.hi&signBit == n.hi&signBit {
		return i.hi > n.hi || (i.hi == n.hi && i.lo > n.lo)
	} else if i.hi&signBit == 0 {
		return true
	}
	return false
}

func (i I128) GreaterOrEqualTo(n I128) bool {
	if i.hi == n.hi && i.lo == n.lo {
		return true
	}
	return i.GreaterThan(n)
}

func (i I128) LessThan(n I128) bool {
	if i.hi&signBit == n.hi&signBit {
		return i.hi < n.hi || (i.hi == n.hi && i.lo < n.lo)
	} else if i.hi&signBit != 0 {
		return true
	}
	return false
}

func (i I128) LessOrEqualTo(n I128) bool {
	if i.hi == n.hi && i.lo == n.lo {
		return true
	}
	return i.LessThan(n)
}

func (i I128) And(n I128) I128    { return i.AsU128().And(n.AsU128()).AsI128() }
func (i I128) AndNot(n I128) I128 { return i.AsU128().AndNot(n.AsU128()).AsI128() }
func (i I128) Or(n I128) I128     { return i.AsU128().Or(n.AsU128()).AsI128() }
func (i I128) Xor(n I128) I128    { return i.AsU128().Xor(n.AsU128()).AsI128() }
func (i I128) Not() I128          { return i.AsU128().Not().AsI128() }

// Lsh shifts i left by n bits. Left shift is logical for both
// signednesses.
func (i I128) Lsh(n uint) I128 { return i.AsU128().Lsh(n).AsI128() }

// Rsh is the arithmetic right shift: vacated bits take the sign bit's
// value. Implemented for negative operands by shifting the complement,
// which inherits the zero-shift special case from U128.Rsh.
func (i I128) Rsh(n uint) I128 {
	if i.hi&signBit == 0 {
		return i.AsU128().Rsh(n).AsI128()
	}
	return i.AsU128().Not().Rsh(n).Not().AsI128()
}

// Lshr is the logical right shift, zero-filling even when i is
// negative.
func (i I128) Lshr(n uint) I128 { return i.AsU128().Rsh(n).AsI128() }

// Bit counting operates on the raw two's complement pattern.
func (i I128) OnesCount() uint     { return i.AsU128().OnesCount() }
func (i I128) ZerosCount() uint    { return i.AsU128().ZerosCount() }
func (i I128) LeadingZeros() uint  { return i.AsU128().LeadingZeros() }
func (i I128) TrailingZeros() uint { return i.AsU128().TrailingZeros() }
func (i I128) LeadingOnes() uint   { return i.AsU128().LeadingOnes() }
func (i I128) TrailingOnes() uint  { return i.AsU128().TrailingOnes() }

// ReverseBytes reorders the 16 bytes of i's representation.
func (i I128) ReverseBytes() I128 { return i.AsU128().ReverseBytes().AsI128() }

// Mul returns the product of two I128s. Overflow wraps; the low 128
// bits of a two's complement product do not depend on signedness.
func (i I128) Mul(n I128) (dest I128) {
	return i.AsU128().Mul(n.AsU128()).AsI128()
}

// CheckedAdd returns i + n, or ok == false if the sum wrapped: the
// operands share a sign the result does not.
func (i I128) CheckedAdd(n I128) (v I128, ok bool) {
	v = i.Add(n)
	if i.hi&signBit == n.hi&signBit && v.hi&signBit != i.hi&signBit {
		return zeroI128, false
	}
	return v, true
}

// CheckedSub returns i - n, or ok == false if the difference wrapped:
// the operands differ in sign and the result does not follow the
// minuend.
func (i I128) CheckedSub(n I128) (v I128, ok bool) {
	v = i.Sub(n)
	if i.hi&signBit != n.hi&signBit && v.hi&signBit != i.hi&signBit {
		return zeroI128, false
	}
	return v, true
}

// CheckedMul returns i * n, or ok == false if the product is outside
// [MinI128, MaxI128]. The product is formed from exact magnitudes and
// bounded against the asymmetric signed range before the sign is
// reapplied.
func (i I128) CheckedMul(n I128) (v I128, ok bool) {
	neg := (i.hi&signBit != 0) != (n.hi&signBit != 0)
	mag, ok := i.AbsU128().CheckedMul(n.AbsU128())
	if !ok {
		return zeroI128, false
	}
	if neg {
		if mag.GreaterThan(minI128AsAbsU128) {
			return zeroI128, false
		}
		return mag.Neg().AsI128(), true
	}
	if mag.GreaterThan(maxI128AsU128) {
		return zeroI128, false
	}
	return mag.AsI128(), true
}

// CheckedNeg fails exactly when i is MinI128.
func (i I128) CheckedNeg() (v I128, ok bool) {
	if i == MinI128 {
		return zeroI128, false
	}
	return i.Neg(), true
}

// CheckedAbs fails exactly when i is MinI128.
func (i I128) CheckedAbs() (v I128, ok bool) {
	if i == MinI128 {
		return zeroI128, false
	}
	return i.Abs(), true
}

// QuoRem returns the quotient q and remainder r for y != 0. If y == 0, a
// division-by-zero run-time panic occurs.
//
// QuoRem implements T-division and modulus (like Go):
//
//	q = x/y      with the result truncated to zero
//	r = x - y*q
//
// The division itself happens over exact unsigned magnitudes with the
// signs split off and reapplied, so MinI128 operands take the same
// path as everything else.
func (i I128) QuoRem(by I128) (q, r I128) {
	qSign, rSign := 1, 1
	if i.LessThan(zeroI128) {
		qSign, rSign = -1, -1
	}
	if by.LessThan(zeroI128) {
		qSign = -qSign
	}

	qu, ru := i.AbsU128().QuoRem(by.AbsU128())
	q, r = qu.AsI128(), ru.AsI128()
	if qSign < 0 {
		q = q.Neg()
	}
	if rSign < 0 {
		r = r.Neg()
	}
	return q, r
}

// Quo returns the quotient x/y for y != 0. If y == 0, a division-by-zero
// run-time panic occurs. Quo implements truncated division (like Go); see
// QuoRem for more details.
func (i I128) Quo(by I128) (q I128) {
	qSign := 1
	if i.LessThan(zeroI128) {
		qSign = -1
	}
	if by.LessThan(zeroI128) {
		qSign = -qSign
	}

	qu := i.AbsU128().Quo(by.AbsU128())
	q = qu.AsI128()
	if qSign < 0 {
		q = q.Neg()
	}
	return q
}

// Div returns the quotient of truncating division, or
// ErrDivisionByZero. MinI128 divided by -1 is the one overflowing
// quotient and returns ErrOverflow.
func (i I128) Div(by I128) (q I128, err error) {
	if by == zeroI128 {
		return zeroI128, ErrDivisionByZero
	}
	if by == minusOneI128 && i == MinI128 {
		return zeroI128, ErrOverflow
	}
	return i.Quo(by), nil
}

// Rem returns the remainder of truncating division, or
// ErrDivisionByZero. The sign follows the dividend. Rem(MinI128, -1)
// is zero and does not overflow.
func (i I128) Rem(by I128) (r I128, err error) {
	if by == zeroI128 {
		return zeroI128, ErrDivisionByZero
	}
	_, r = i.QuoRem(by)
	return r, nil
}

// Fld is floor division: the truncating quotient, less one when the
// operands disagree in sign and divide inexactly.
func (i I128) Fld(by I128) (q I128, err error) {
	if by == zeroI128 {
		return zeroI128, ErrDivisionByZero
	}
	if by == minusOneI128 {
		if i == MinI128 {
			return zeroI128, ErrOverflow
		}
		return i.Neg(), nil
	}
	q, r := i.QuoRem(by)
	if !r.IsZero() && (i.hi&signBit != by.hi&signBit) {
		q = q.Dec()
	}
	return q, nil
}

// Mod is the floor modulus: x - Fld(x,y)*y, with the divisor's sign.
// Mod(x, -1) is zero for every x, which keeps MinI128 clear of the Fld
// overflow.
func (i I128) Mod(by I128) (r I128, err error) {
	if by == zeroI128 {
		return zeroI128, ErrDivisionByZero
	}
	if by == minusOneI128 {
		return zeroI128, nil
	}
	_, r = i.QuoRem(by)
	if !r.IsZero() && (r.hi&signBit != by.hi&signBit) {
		r = r.Add(by)
	}
	return r, nil
}

// Cld is ceiling division: the truncating quotient, plus one when the
// operands agree in sign and divide inexactly.
func (i I128) Cld(by I128) (q I128, err error) {
	if by == zeroI128 {
		return zeroI128, ErrDivisionByZero
	}
	if by == minusOneI128 {
		if i == MinI128 {
			return zeroI128, ErrOverflow
		}
		return i.Neg(), nil
	}
	q, r := i.QuoRem(by)
	if !r.IsZero() && (i.hi&signBit == by.hi&signBit) {
		q = q.Inc()
	}
	return q, nil
}

func (i I128) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

func (i *I128) UnmarshalText(bts []byte) (err error) {
	v, _, err := I128FromString(string(bts))
	if err != nil {
		return err
	}
	*i = v
	return nil
}

func (i I128) MarshalJSON() ([]byte, error) {
	return []byte(`"` + i.String() + `"`), nil
}

func (i *I128) UnmarshalJSON(bts []byte) (err error) {
	if bts[0] == '"' {
		ln := len(bts)
		if bts[ln-1] != '"' {
			return fmt.Errorf("fixint: i128 invalid JSON %q", string(bts))
		}
		bts = bts[1 : ln-1]
	}

	v, _, err := I128FromString(string(bts))
	if err != nil {
		return err
	}
	*i = v
	return nil
}
