package fixint

import (
	"fmt"
	"math/big"
)

// Value carries an integer of any Kind behind a runtime tag. The
// payload is the value's two's complement pattern widened to 128 bits:
// sign-extended for signed kinds, zero-extended for unsigned ones, so
// that numerically equal values of different kinds share a payload.
//
// Value is immutable; operations return new values. Binary operations
// accept operands of any kind and promote both sides through the
// lattice before dispatching on the promoted kind.
type Value struct {
	kind Kind
	hi   uint64
	lo   uint64
}

// makeValue truncates the pattern to the kind's width and re-extends
// it. Every constructor and every arithmetic result funnels through
// here, which is what makes the wrapping behaviour uniform.
func makeValue(k Kind, hi, lo uint64) Value {
	w := kindInfos[k].bits
	switch {
	case w == 128:
		return Value{kind: k, hi: hi, lo: lo}
	case w == 64:
		if kindInfos[k].signed && lo&signBit != 0 {
			hi = maxUint64
		} else {
			hi = 0
		}
		return Value{kind: k, hi: hi, lo: lo}
	default:
		mask := uint64(1)<<w - 1
		lo &= mask
		if kindInfos[k].signed && lo&(uint64(1)<<(w-1)) != 0 {
			lo |= ^mask
			hi = maxUint64
		} else {
			hi = 0
		}
		return Value{kind: k, hi: hi, lo: lo}
	}
}

func ValueOfInt8(v int8) Value   { return makeValue(Int8, 0, uint64(int64(v))) }
func ValueOfInt16(v int16) Value { return makeValue(Int16, 0, uint64(int64(v))) }
func ValueOfInt32(v int32) Value { return makeValue(Int32, 0, uint64(int64(v))) }
func ValueOfInt64(v int64) Value { return makeValue(Int64, 0, uint64(v)) }
func ValueOfInt(v int) Value     { return ValueOfInt64(int64(v)) }

func ValueOfUint8(v uint8) Value   { return makeValue(Uint8, 0, uint64(v)) }
func ValueOfUint16(v uint16) Value { return makeValue(Uint16, 0, uint64(v)) }
func ValueOfUint32(v uint32) Value { return makeValue(Uint32, 0, uint64(v)) }
func ValueOfUint64(v uint64) Value { return makeValue(Uint64, 0, v) }
func ValueOfUint(v uint) Value     { return ValueOfUint64(uint64(v)) }

func ValueOfI128(v I128) Value {
	hi, lo := v.Raw()
	return Value{kind: Int128, hi: hi, lo: lo}
}

func ValueOfU128(v U128) Value {
	hi, lo := v.Raw()
	return Value{kind: Uint128, hi: hi, lo: lo}
}

// ValueFromBits builds a Value of kind k from a raw bit pattern,
// truncating to the kind's width. The complement of Raw().
func ValueFromBits(k Kind, hi, lo uint64) Value {
	return makeValue(k, hi, lo)
}

// ValueFromString parses a decimal string into a Value of kind k.
// Values outside the kind's range return ErrInexact.
func ValueFromString(k Kind, s string) (Value, error) {
	b, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return Value{}, fmt.Errorf("fixint: value string %q invalid", s)
	}
	return ValueFromBigInt(k, b)
}

func (v Value) Kind() Kind { return v.kind }

// Raw returns the value's bit pattern within its width, zero-extended
// to two uint64s.
func (v Value) Raw() (hi, lo uint64) {
	u := v.rawU128()
	return u.hi, u.lo
}

func (v Value) IsZero() bool { return v.hi == 0 && v.lo == 0 }

func (v Value) Sign() int {
	if v.hi == 0 && v.lo == 0 {
		return 0
	}
	if kindInfos[v.kind].signed && v.hi&signBit != 0 {
		return -1
	}
	return 1
}

func (v Value) asI128() I128 { return I128FromRaw(v.hi, v.lo) }
func (v Value) asU128() U128 { return U128FromRaw(v.hi, v.lo) }

// rawU128 is the pattern masked back to the kind's width, with the
// extension bits cleared.
func (v Value) rawU128() U128 {
	w := kindInfos[v.kind].bits
	switch {
	case w == 128:
		return U128{hi: v.hi, lo: v.lo}
	case w == 64:
		return U128{lo: v.lo}
	default:
		return U128{lo: v.lo & (uint64(1)<<w - 1)}
	}
}

// isNeg is true only for signed kinds with the sign bit set; the
// extended payload makes the 128th bit authoritative for every width.
func (v Value) isNeg() bool {
	return v.hi&signBit != 0 && kindInfos[v.kind].signed
}

// AsI128 returns the numeric value as an I128. Uint128 values above
// MaxI128 do not fit; see Convert for the checked route.
func (v Value) AsI128() I128 { return v.asI128() }

// AsU128 returns the numeric value reinterpreted as a U128; negative
// values become their two's complement pattern.
func (v Value) AsU128() U128 { return v.asU128() }

// AsInt64 truncates the value to an int64.
func (v Value) AsInt64() int64 { return int64(v.lo) }

// AsUint64 truncates the value to a uint64.
func (v Value) AsUint64() uint64 { return v.lo }

func (v Value) IntoBigInt(b *big.Int) {
	if v.kind == Uint128 {
		v.asU128().IntoBigInt(b)
		return
	}
	v.asI128().IntoBigInt(b)
}

func (v Value) AsBigInt() *big.Int {
	b := new(big.Int)
	v.IntoBigInt(b)
	return b
}

func (v Value) String() string {
	if v.kind == Uint128 {
		return v.asU128().String()
	}
	return v.asI128().String()
}

func (v Value) Format(s fmt.State, c rune) {
	v.AsBigInt().Format(s, c)
}

// Cmp compares the numeric values of v and n, ignoring their kinds.
func (v Value) Cmp(n Value) int {
	vn, nn := v.isNeg(), n.isNeg()
	if vn != nn {
		if vn {
			return -1
		}
		return 1
	}
	if vn {
		return v.asI128().Cmp(n.asI128())
	}
	return v.asU128().Cmp(n.asU128())
}

// Equal reports numeric equality, ignoring kind.
func (v Value) Equal(n Value) bool { return v.Cmp(n) == 0 }

// promoted converts both operands to the kind the lattice assigns the
// pair under the host word size. The conversion wraps; the extended
// payload makes it a single re-extension.
func promoted(a, b Value) (x, y Value, k Kind) {
	k = PromoteDefault(a.kind, b.kind)
	return makeValue(k, a.hi, a.lo), makeValue(k, b.hi, b.lo), k
}

// Add returns the wrapping sum in the promoted kind.
func (v Value) Add(n Value) Value {
	x, y, k := promoted(v, n)
	r := x.asU128().Add(y.asU128())
	return makeValue(k, r.hi, r.lo)
}

// Sub returns the wrapping difference in the promoted kind.
func (v Value) Sub(n Value) Value {
	x, y, k := promoted(v, n)
	r := x.asU128().Sub(y.asU128())
	return makeValue(k, r.hi, r.lo)
}

// Mul returns the wrapping product in the promoted kind. The low bits
// of a two's complement product do not depend on signedness, so one
// 128-bit multiply serves every kind.
func (v Value) Mul(n Value) Value {
	x, y, k := promoted(v, n)
	r := x.asU128().Mul(y.asU128())
	return makeValue(k, r.hi, r.lo)
}

// Neg returns the wrapping negation; the kind's minimum negates to
// itself for signed kinds.
func (v Value) Neg() Value {
	r := v.asU128().Neg()
	return makeValue(v.kind, r.hi, r.lo)
}

// Abs returns the wrapping magnitude. For unsigned kinds it is the
// identity; for signed kinds the minimum wraps to itself.
func (v Value) Abs() Value {
	if v.isNeg() {
		return v.Neg()
	}
	return v
}

func (v Value) Not() Value {
	r := v.asU128().Not()
	return makeValue(v.kind, r.hi, r.lo)
}

func (v Value) And(n Value) Value {
	x, y, k := promoted(v, n)
	r := x.asU128().And(y.asU128())
	return makeValue(k, r.hi, r.lo)
}

func (v Value) Or(n Value) Value {
	x, y, k := promoted(v, n)
	r := x.asU128().Or(y.asU128())
	return makeValue(k, r.hi, r.lo)
}

func (v Value) Xor(n Value) Value {
	x, y, k := promoted(v, n)
	r := x.asU128().Xor(y.asU128())
	return makeValue(k, r.hi, r.lo)
}

// Shl shifts left within the kind's width; bits shifted past the width
// are discarded.
func (v Value) Shl(n uint) Value {
	r := v.asU128().Lsh(n)
	return makeValue(v.kind, r.hi, r.lo)
}

// Shr is the kind's natural right shift: arithmetic for signed kinds,
// logical for unsigned ones.
func (v Value) Shr(n uint) Value {
	if kindInfos[v.kind].signed {
		r := v.asI128().Rsh(n)
		hi, lo := r.Raw()
		return makeValue(v.kind, hi, lo)
	}
	r := v.asU128().Rsh(n)
	return makeValue(v.kind, r.hi, r.lo)
}

// Lshr is the logical right shift regardless of kind: zeros fill from
// the kind's width down even when the value is negative.
func (v Value) Lshr(n uint) Value {
	r := v.rawU128().Rsh(n)
	return makeValue(v.kind, r.hi, r.lo)
}

// fits reports whether the exact value r is representable in kind k.
func fitsKind(k Kind, r I128) bool {
	if r.Sign() < 0 {
		return kindInfos[k].signed && r.AbsU128().LessOrEqualTo(kindBounds[k].minMagU)
	}
	return r.AsU128().LessOrEqualTo(kindBounds[k].maxU)
}

func valueOfExact(k Kind, r I128) Value {
	hi, lo := r.Raw()
	return makeValue(k, hi, lo)
}

// CheckedAdd returns the sum in the promoted kind, or ErrOverflow if
// it is not representable there. Width 128 dispatches to the checked
// 128-bit methods; everything narrower is computed exactly in 128 bits
// and range-checked against the kind's bounds.
func (v Value) CheckedAdd(n Value) (Value, error) {
	x, y, k := promoted(v, n)
	switch k {
	case Int128:
		r, ok := x.asI128().CheckedAdd(y.asI128())
		return checkedResult(k, r.AsU128(), ok)
	case Uint128:
		r, ok := x.asU128().CheckedAdd(y.asU128())
		return checkedResult(k, r, ok)
	}
	r := x.asI128().Add(y.asI128())
	if !fitsKind(k, r) {
		return Value{}, ErrOverflow
	}
	return valueOfExact(k, r), nil
}

// CheckedSub returns the difference in the promoted kind, or
// ErrOverflow.
func (v Value) CheckedSub(n Value) (Value, error) {
	x, y, k := promoted(v, n)
	switch k {
	case Int128:
		r, ok := x.asI128().CheckedSub(y.asI128())
		return checkedResult(k, r.AsU128(), ok)
	case Uint128:
		r, ok := x.asU128().CheckedSub(y.asU128())
		return checkedResult(k, r, ok)
	}
	r := x.asI128().Sub(y.asI128())
	if !fitsKind(k, r) {
		return Value{}, ErrOverflow
	}
	return valueOfExact(k, r), nil
}

// CheckedMul returns the product in the promoted kind, or ErrOverflow.
// Unsigned products up to 64 bits are formed in the unsigned 128-bit
// domain, where they are always exact; signed ones in the signed
// domain, where the 126-bit magnitude bound keeps them exact too.
func (v Value) CheckedMul(n Value) (Value, error) {
	x, y, k := promoted(v, n)
	switch k {
	case Int128:
		r, ok := x.asI128().CheckedMul(y.asI128())
		return checkedResult(k, r.AsU128(), ok)
	case Uint128:
		r, ok := x.asU128().CheckedMul(y.asU128())
		return checkedResult(k, r, ok)
	}
	if !kindInfos[k].signed {
		r := x.asU128().Mul(y.asU128())
		if r.GreaterThan(kindBounds[k].maxU) {
			return Value{}, ErrOverflow
		}
		return makeValue(k, r.hi, r.lo), nil
	}
	r := x.asI128().Mul(y.asI128())
	if !fitsKind(k, r) {
		return Value{}, ErrOverflow
	}
	return valueOfExact(k, r), nil
}

func checkedResult(k Kind, r U128, ok bool) (Value, error) {
	if !ok {
		return Value{}, ErrOverflow
	}
	return makeValue(k, r.hi, r.lo), nil
}

// CheckedNeg fails with ErrOverflow at the signed minimum and for any
// nonzero unsigned value.
func (v Value) CheckedNeg() (Value, error) {
	switch v.kind {
	case Int128:
		r, ok := v.asI128().CheckedNeg()
		return checkedResult(v.kind, r.AsU128(), ok)
	case Uint128:
		r, ok := v.asU128().CheckedNeg()
		return checkedResult(v.kind, r, ok)
	}
	r := v.asI128().Neg()
	if !fitsKind(v.kind, r) {
		return Value{}, ErrOverflow
	}
	return valueOfExact(v.kind, r), nil
}

// CheckedAbs fails with ErrOverflow exactly at the signed minimum.
func (v Value) CheckedAbs() (Value, error) {
	if !v.isNeg() {
		return v, nil
	}
	return v.CheckedNeg()
}

// Div is truncating division in the promoted kind. A zero divisor is
// ErrDivisionByZero; the signed minimum over minus one is ErrOverflow.
func (v Value) Div(n Value) (Value, error) { return v.divOp(n, I128.Div, U128.Div) }

// Rem is the remainder of truncating division; the sign follows the
// dividend.
func (v Value) Rem(n Value) (Value, error) { return v.divOp(n, I128.Rem, U128.Rem) }

// Fld is floor division.
func (v Value) Fld(n Value) (Value, error) { return v.divOp(n, I128.Fld, U128.Fld) }

// Mod is the floor modulus; the sign follows the divisor.
func (v Value) Mod(n Value) (Value, error) { return v.divOp(n, I128.Mod, U128.Mod) }

// Cld is ceiling division.
func (v Value) Cld(n Value) (Value, error) { return v.divOp(n, I128.Cld, U128.Cld) }

// divOp promotes, then runs the division in whichever 128-bit domain
// matches the promoted signedness. Operands narrower than 128 bits are
// exact there, so the only out-of-range quotient is the kind's own
// minimum over minus one, which the fit check turns into ErrOverflow.
func (v Value) divOp(n Value, sop func(I128, I128) (I128, error), uop func(U128, U128) (U128, error)) (Value, error) {
	x, y, k := promoted(v, n)
	if !kindInfos[k].signed {
		r, err := uop(x.asU128(), y.asU128())
		if err != nil {
			return Value{}, err
		}
		return makeValue(k, r.hi, r.lo), nil
	}
	r, err := sop(x.asI128(), y.asI128())
	if err != nil {
		return Value{}, err
	}
	if !fitsKind(k, r) {
		return Value{}, ErrOverflow
	}
	return valueOfExact(k, r), nil
}
