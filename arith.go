package fixint

import (
	"math/big"
	"math/bits"
)

// wideOpsNative selects between the hardware-backed wide operations
// and the software emulation used on platforms whose native word
// cannot carry a full 64-bit product. The flag is a package variable
// rather than a build tag so the test suite can exercise both paths on
// every host.
var wideOpsNative = HostWordSize == Word64

// wideMul64 returns the full 128-bit product of u and v as two 64-bit
// limbs.
func wideMul64(u, v uint64) (hi, lo uint64) {
	if wideOpsNative {
		return bits.Mul64(u, v)
	}
	return mul64to128(u, v)
}

// WideMulU64 is the widening multiply: the exact 128-bit product of
// two 64-bit unsigned operands, with no information loss.
func WideMulU64(u, v uint64) U128 {
	hi, lo := wideMul64(u, v)
	return U128{hi: hi, lo: lo}
}

// WideMulI64 is the signed widening multiply. The sign is separated
// before the unsigned widening multiply and reapplied after; the
// magnitude of the product is at most 1<<126, so the reapplication can
// never overflow the 128-bit result.
func WideMulI64(u, v int64) I128 {
	neg := (u < 0) != (v < 0)
	p := WideMulU64(absU64(u), absU64(v))
	if neg {
		return p.AsI128().Neg()
	}
	return p.AsI128()
}

// absU64 returns the magnitude of v, exact for minInt64 because the
// negation happens after the reinterpret.
func absU64(v int64) uint64 {
	if v < 0 {
		return -uint64(v)
	}
	return uint64(v)
}

// mul64to128 emulates the widening multiply from four 32-bit limb
// cross products with carry propagation. Adapted from Warren, Hacker's
// Delight, p. 132.
func mul64to128(u, v uint64) (hi, lo uint64) {
	var (
		u1 = (u & 0xffffffff)
		v1 = (v & 0xffffffff)
		t  = (u1 * v1)
		w3 = (t & 0xffffffff)
		k  = (t >> 32)
	)

	u >>= 32
	t = (u * v1) + k
	k = (t & 0xffffffff)
	var w1 = (t >> 32)

	v >>= 32
	t = (u1 * v) + k
	k = (t >> 32)

	return (u * v) + w1 + k,
		(t << 32) + w3
}

// quorem128big delegates 128-bit division to the arbitrary-precision
// collaborator: both operands are promoted to big.Int, divided there,
// and the result converted back down. Unsigned 128-bit division of
// representable operands is always representable, so an inaccurate
// conversion here is a bug, not an input condition.
func quorem128big(u, by U128) (q, r U128) {
	var ub, byb, qb, rb big.Int
	u.IntoBigInt(&ub)
	by.IntoBigInt(&byb)
	qb.QuoRem(&ub, &byb, &rb)

	q, qacc := U128FromBigInt(&qb)
	r, racc := U128FromBigInt(&rb)
	if !qacc || !racc {
		panic("fixint: u128 big-division result out of range")
	}
	return q, r
}

func quo128big(u, by U128) (q U128) {
	q, _ = quorem128big(u, by)
	return q
}
