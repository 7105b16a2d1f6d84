package fixint

import (
	"math"
	"math/big"
)

// Convert returns v's numeric value as a Value of kind 'to', or
// ErrInexact if the kind cannot represent it. One routine serves all
// hundred kind pairs: the range check runs against the destination's
// bounds table and the extended payload makes the re-tag a single
// re-extension. Sign loss counts as inexact, so a negative value never
// converts to an unsigned kind and an equal-width unsigned value with
// its top bit set never converts to signed.
func Convert(v Value, to Kind) (Value, error) {
	if to == KindInvalid || to >= kindCount {
		return Value{}, ErrInexact
	}
	if v.isNeg() {
		if !kindInfos[to].signed {
			return Value{}, ErrInexact
		}
		if v.asI128().AbsU128().GreaterThan(kindBounds[to].minMagU) {
			return Value{}, ErrInexact
		}
	} else {
		if v.asU128().GreaterThan(kindBounds[to].maxU) {
			return Value{}, ErrInexact
		}
	}
	return makeValue(to, v.hi, v.lo), nil
}

// Reinterpret re-tags v's bit pattern as kind 'to' without changing
// any bits within the width. The kinds must have the same width;
// mismatched widths are a caller bug and panic.
func Reinterpret(v Value, to Kind) Value {
	if kindInfos[v.kind].bits != kindInfos[to].bits {
		panic("fixint: reinterpret between kinds of different widths")
	}
	u := v.rawU128()
	return makeValue(to, u.hi, u.lo)
}

// PromotePair converts both operands to the kind the lattice assigns
// the pair for the given word size. The conversions wrap, the same way
// the mixed-kind arithmetic entry points promote internally.
func PromotePair(a, b Value, word WordSize) (Value, Value) {
	k := Promote(a.kind, b.kind, word)
	return makeValue(k, a.hi, a.lo), makeValue(k, b.hi, b.lo)
}

// ValueFromBigInt returns b as a Value of kind k, or ErrInexact when b
// is outside the kind's range.
func ValueFromBigInt(k Kind, b *big.Int) (Value, error) {
	if b.Sign() < 0 {
		i, acc := I128FromBigInt(b)
		if !acc {
			return Value{}, ErrInexact
		}
		return Convert(ValueOfI128(i), k)
	}
	u, acc := U128FromBigInt(b)
	if !acc {
		return Value{}, ErrInexact
	}
	return Convert(ValueOfU128(u), k)
}

// ValueFromFloat64 converts f to a Value of kind k only when f is an
// exact integer the kind can represent; anything else, fractional
// values, NaN and the infinities included, is ErrInexact.
func ValueFromFloat64(k Kind, f float64) (Value, error) {
	if f != math.Trunc(f) || math.IsInf(f, 0) {
		return Value{}, ErrInexact
	}
	if f < 0 {
		i, inRange := I128FromFloat64(f)
		if !inRange {
			return Value{}, ErrInexact
		}
		return Convert(ValueOfI128(i), k)
	}
	u, inRange := U128FromFloat64(f)
	if !inRange {
		return Value{}, ErrInexact
	}
	return Convert(ValueOfU128(u), k)
}
