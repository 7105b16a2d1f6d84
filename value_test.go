package fixint

import (
	"fmt"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

func TestValueConstructors(t *testing.T) {
	tt := assert.WrapTB(t)

	tt.MustEqual(Int8, ValueOfInt8(-1).Kind())
	tt.MustEqual("-1", ValueOfInt8(-1).String())
	tt.MustEqual("127", ValueOfInt8(127).String())
	tt.MustEqual("255", ValueOfUint8(255).String())
	tt.MustEqual("-9223372036854775808", ValueOfInt64(minInt64).String())
	tt.MustEqual("18446744073709551615", ValueOfUint64(maxUint64).String())
	tt.MustEqual(MaxU128.String(), ValueOfU128(MaxU128).String())
	tt.MustEqual(MinI128.String(), ValueOfI128(MinI128).String())

	// ValueFromBits truncates to the kind's width:
	tt.MustEqual("-1", ValueFromBits(Int8, 0, 0xFF).String())
	tt.MustEqual("255", ValueFromBits(Uint8, 0, 0xFF).String())
	tt.MustEqual("-1", ValueFromBits(Int8, maxUint64, maxUint64).String())

	v, err := ValueFromString(Int16, "-32768")
	tt.MustOK(err)
	tt.MustEqual(ValueOfInt16(-32768), v)

	_, err = ValueFromString(Int16, "32768")
	tt.MustEqual(ErrInexact, err)

	_, err = ValueFromString(Int16, "bogus")
	tt.MustAssert(err != nil)
}

func TestValueRaw(t *testing.T) {
	tt := assert.WrapTB(t)

	hi, lo := ValueOfInt8(-1).Raw()
	tt.MustEqual(uint64(0), hi)
	tt.MustEqual(uint64(0xFF), lo)

	hi, lo = ValueOfInt64(-1).Raw()
	tt.MustEqual(uint64(0), hi)
	tt.MustEqual(uint64(maxUint64), lo)

	hi, lo = ValueOfI128(i64(-1)).Raw()
	tt.MustEqual(uint64(maxUint64), hi)
	tt.MustEqual(uint64(maxUint64), lo)
}

func TestValueMinMax(t *testing.T) {
	tt := assert.WrapTB(t)

	tt.MustEqual("-128", Int8.Min().String())
	tt.MustEqual("127", Int8.Max().String())
	tt.MustEqual("0", Uint64.Min().String())
	tt.MustEqual("18446744073709551615", Uint64.Max().String())
	tt.MustEqual(MinI128.String(), Int128.Min().String())
	tt.MustEqual(MaxI128.String(), Int128.Max().String())
	tt.MustEqual(MaxU128.String(), Uint128.Max().String())
}

func TestValueAddPromotes(t *testing.T) {
	for idx, tc := range []struct {
		a, b Value
		kind Kind
		out  string
	}{
		// Same kind wraps in that kind:
		{ValueOfInt8(127), ValueOfInt8(1), Int8, "-128"},
		{ValueOfUint8(200), ValueOfUint8(100), Uint8, "44"},

		// Same width, mixed signedness goes signed:
		{ValueOfInt8(-1), ValueOfUint8(1), Int8, "0"},
		{ValueOfInt64(-1), ValueOfUint64(maxUint64), Int64, "-2"},

		// Wider operand wins:
		{ValueOfInt8(-1), ValueOfInt64(1000), Int64, "999"},
		{ValueOfInt8(-1), ValueOfUint64(0), Uint64, "18446744073709551615"},
		{ValueOfUint64(maxUint64), ValueOfU128(u64(1)), Uint128, "18446744073709551616"},
		{ValueOfInt64(-1), ValueOfI128(MinI128), Int128, MaxI128.String()},
	} {
		t.Run(fmt.Sprintf("%d/%s+%s", idx, tc.a, tc.b), func(t *testing.T) {
			tt := assert.WrapTB(t)
			sum := tc.a.Add(tc.b)
			tt.MustEqual(tc.kind, sum.Kind())
			tt.MustEqual(tc.out, sum.String())
		})
	}
}

func TestValueSubMul(t *testing.T) {
	tt := assert.WrapTB(t)

	v := ValueOfUint8(3).Sub(ValueOfUint8(5))
	tt.MustEqual("254", v.String())

	v = ValueOfInt8(-128).Mul(ValueOfInt8(-1))
	tt.MustEqual("-128", v.String()) // wrap

	v = ValueOfInt16(1000).Mul(ValueOfInt16(1000))
	tt.MustEqual(Int16, v.Kind())
	tt.MustEqual("16960", v.String()) // 1000000 wrapped into int16

	v = ValueOfU128(MaxU128).Mul(ValueOfU128(MaxU128))
	tt.MustEqual("1", v.String())
}

func TestValueNegAbs(t *testing.T) {
	tt := assert.WrapTB(t)

	tt.MustEqual("-7", ValueOfInt8(7).Neg().String())
	tt.MustEqual("-128", ValueOfInt8(-128).Neg().String()) // wrap
	tt.MustEqual("249", ValueOfUint8(7).Neg().String())
	tt.MustEqual("7", ValueOfInt8(-7).Abs().String())
	tt.MustEqual("7", ValueOfUint8(7).Abs().String())
}

func TestValueChecked(t *testing.T) {
	tt := assert.WrapTB(t)

	v, err := ValueOfInt8(100).CheckedAdd(ValueOfInt8(27))
	tt.MustOK(err)
	tt.MustEqual("127", v.String())

	_, err = ValueOfInt8(100).CheckedAdd(ValueOfInt8(28))
	tt.MustEqual(ErrOverflow, err)

	_, err = ValueOfUint8(200).CheckedAdd(ValueOfUint8(100))
	tt.MustEqual(ErrOverflow, err)

	// Promotion first, then the check runs in the promoted kind:
	v, err = ValueOfInt8(100).CheckedAdd(ValueOfInt64(100))
	tt.MustOK(err)
	tt.MustEqual(Int64, v.Kind())
	tt.MustEqual("200", v.String())

	_, err = ValueOfInt8(-128).CheckedSub(ValueOfInt8(1))
	tt.MustEqual(ErrOverflow, err)

	v, err = ValueOfInt8(127).CheckedMul(ValueOfInt8(1))
	tt.MustOK(err)
	tt.MustEqual("127", v.String())

	_, err = ValueOfInt8(127).CheckedMul(ValueOfInt8(2))
	tt.MustEqual(ErrOverflow, err)

	v, err = ValueOfInt8(63).CheckedMul(ValueOfInt8(2))
	tt.MustOK(err)
	tt.MustEqual("126", v.String())

	_, err = ValueOfUint64(maxUint64).CheckedMul(ValueOfUint64(2))
	tt.MustEqual(ErrOverflow, err)

	_, err = ValueOfI128(MinI128).CheckedMul(ValueOfI128(i64(-1)))
	tt.MustEqual(ErrOverflow, err)

	_, err = ValueOfInt8(-128).CheckedNeg()
	tt.MustEqual(ErrOverflow, err)

	v, err = ValueOfInt8(-127).CheckedNeg()
	tt.MustOK(err)
	tt.MustEqual("127", v.String())

	_, err = ValueOfUint8(1).CheckedNeg()
	tt.MustEqual(ErrOverflow, err)

	_, err = ValueOfInt8(-128).CheckedAbs()
	tt.MustEqual(ErrOverflow, err)

	v, err = ValueOfInt8(-127).CheckedAbs()
	tt.MustOK(err)
	tt.MustEqual("127", v.String())

	v, err = ValueOfUint8(200).CheckedAbs()
	tt.MustOK(err)
	tt.MustEqual("200", v.String())
}

func TestValueDivisionFamily(t *testing.T) {
	for idx, tc := range []struct {
		x, y                    Value
		div, rem, fld, mod, cld string
	}{
		{ValueOfInt8(-7), ValueOfInt8(2), "-3", "-1", "-4", "1", "-3"},
		{ValueOfInt8(7), ValueOfInt8(-2), "-3", "1", "-4", "-1", "-3"},
		{ValueOfUint8(7), ValueOfUint8(2), "3", "1", "3", "1", "4"},
		{ValueOfInt64(-7), ValueOfInt64(2), "-3", "-1", "-4", "1", "-3"},
		{ValueOfI128(i64(-7)), ValueOfI128(i64(2)), "-3", "-1", "-4", "1", "-3"},
		{ValueOfU128(u64(7)), ValueOfU128(u64(2)), "3", "1", "3", "1", "4"},

		// Mixed kinds promote first; int8 -7 with uint8 2 lands in
		// Int8:
		{ValueOfInt8(-7), ValueOfUint8(2), "-3", "-1", "-4", "1", "-3"},
	} {
		t.Run(fmt.Sprintf("%d/%s,%s", idx, tc.x, tc.y), func(t *testing.T) {
			tt := assert.WrapTB(t)

			div, err := tc.x.Div(tc.y)
			tt.MustOK(err)
			tt.MustEqual(tc.div, div.String())

			rem, err := tc.x.Rem(tc.y)
			tt.MustOK(err)
			tt.MustEqual(tc.rem, rem.String())

			fld, err := tc.x.Fld(tc.y)
			tt.MustOK(err)
			tt.MustEqual(tc.fld, fld.String())

			mod, err := tc.x.Mod(tc.y)
			tt.MustOK(err)
			tt.MustEqual(tc.mod, mod.String())

			cld, err := tc.x.Cld(tc.y)
			tt.MustOK(err)
			tt.MustEqual(tc.cld, cld.String())
		})
	}
}

func TestValueDivisionEdges(t *testing.T) {
	tt := assert.WrapTB(t)

	for _, k := range []Kind{Int8, Int16, Int32, Int64, Int128} {
		min := k.Min()
		minusOne, err := Convert(ValueOfInt8(-1), k)
		tt.MustOK(err)

		_, err = min.Div(minusOne)
		tt.MustEqual(ErrOverflow, err, "%s min / -1", k)
		_, err = min.Fld(minusOne)
		tt.MustEqual(ErrOverflow, err, "%s min fld -1", k)
		_, err = min.Cld(minusOne)
		tt.MustEqual(ErrOverflow, err, "%s min cld -1", k)

		r, err := min.Rem(minusOne)
		tt.MustOK(err)
		tt.MustAssert(r.IsZero(), "%s min rem -1", k)

		r, err = min.Mod(minusOne)
		tt.MustOK(err)
		tt.MustAssert(r.IsZero(), "%s min mod -1", k)

		zero := ValueFromBits(k, 0, 0)
		_, err = min.Div(zero)
		tt.MustEqual(ErrDivisionByZero, err)
		_, err = min.Mod(zero)
		tt.MustEqual(ErrDivisionByZero, err)
	}

	for _, k := range []Kind{Uint8, Uint16, Uint32, Uint64, Uint128} {
		one, err := Convert(ValueOfUint8(1), k)
		tt.MustOK(err)
		zero := ValueFromBits(k, 0, 0)
		_, err = one.Div(zero)
		tt.MustEqual(ErrDivisionByZero, err)
		_, err = one.Cld(zero)
		tt.MustEqual(ErrDivisionByZero, err)
	}
}

func TestValueShifts(t *testing.T) {
	tt := assert.WrapTB(t)

	tt.MustEqual("-2", ValueOfInt8(127).Shl(1).String())
	tt.MustEqual("64", ValueOfUint8(128).Shr(1).String())
	tt.MustEqual("-1", ValueOfInt8(-2).Shr(1).String())
	tt.MustEqual("-1", ValueOfInt8(-128).Shr(7).String())
	tt.MustEqual("127", ValueOfInt8(-2).Lshr(1).String())
	tt.MustEqual("1", ValueOfInt8(-128).Lshr(7).String())
	tt.MustEqual("0", ValueOfUint8(255).Shl(8).String())

	tt.MustEqual(MinI128.String(), ValueOfI128(i64(1)).Shl(127).String())
	tt.MustEqual("1", ValueOfI128(MinI128).Lshr(127).String())
	tt.MustEqual("-1", ValueOfI128(MinI128).Shr(127).String())
}

func TestValueBitwise(t *testing.T) {
	tt := assert.WrapTB(t)

	tt.MustEqual("-1", ValueOfInt8(0).Not().String())
	tt.MustEqual("15", ValueOfUint8(0xFF).And(ValueOfUint8(0x0F)).String())
	tt.MustEqual("255", ValueOfUint8(0xF0).Or(ValueOfUint8(0x0F)).String())
	tt.MustEqual("255", ValueOfUint8(0xF0).Xor(ValueOfUint8(0x0F)).String())
}

func TestValueCmp(t *testing.T) {
	tt := assert.WrapTB(t)

	tt.MustEqual(0, ValueOfInt8(1).Cmp(ValueOfUint64(1)))
	tt.MustEqual(-1, ValueOfInt8(-1).Cmp(ValueOfUint8(0)))
	tt.MustEqual(1, ValueOfUint64(maxUint64).Cmp(ValueOfInt64(maxInt64)))
	tt.MustEqual(-1, ValueOfI128(MinI128).Cmp(ValueOfU128(MaxU128)))
	tt.MustEqual(1, ValueOfU128(MaxU128).Cmp(ValueOfI128(MaxI128)))

	tt.MustAssert(ValueOfInt8(5).Equal(ValueOfUint64(5)))
	tt.MustAssert(!ValueOfInt8(-5).Equal(ValueOfUint64(5)))

	tt.MustEqual(-1, ValueOfInt8(-1).Sign())
	tt.MustEqual(0, ValueOfUint64(0).Sign())
	tt.MustEqual(1, ValueOfUint8(255).Sign())
}

func TestValueSignOfUnsignedPattern(t *testing.T) {
	tt := assert.WrapTB(t)

	// The same bit pattern is negative as Int8 and positive as Uint8:
	tt.MustEqual(-1, ValueFromBits(Int8, 0, 0x80).Sign())
	tt.MustEqual(1, ValueFromBits(Uint8, 0, 0x80).Sign())
}
