package fixint

import (
	"fmt"
	"math"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

func TestConvert(t *testing.T) {
	for idx, tc := range []struct {
		in  Value
		to  Kind
		out string
		err error
	}{
		// Widening sign-extends signed sources:
		{ValueOfInt8(-1), Int64, "-1", nil},
		{ValueOfInt8(-128), Int16, "-128", nil},
		{ValueOfInt8(127), Int128, "127", nil},

		// Widening zero-extends unsigned sources:
		{ValueOfUint8(255), Uint16, "255", nil},
		{ValueOfUint8(255), Int16, "255", nil},
		{ValueOfUint64(maxUint64), Uint128, "18446744073709551615", nil},
		{ValueOfUint64(maxUint64), Int128, "18446744073709551615", nil},

		// Narrowing in range:
		{ValueOfInt64(127), Int8, "127", nil},
		{ValueOfInt64(-128), Int8, "-128", nil},
		{ValueOfUint64(255), Uint8, "255", nil},

		// Narrowing out of range:
		{ValueOfInt64(128), Int8, "", ErrInexact},
		{ValueOfInt64(-129), Int8, "", ErrInexact},
		{ValueOfUint64(256), Uint8, "", ErrInexact},

		// Sign loss:
		{ValueOfInt8(-1), Uint64, "", ErrInexact},
		{ValueOfInt64(minInt64), Uint64, "", ErrInexact},

		// Equal width, unsigned to signed requires top bit clear:
		{ValueOfUint8(127), Int8, "127", nil},
		{ValueOfUint8(128), Int8, "", ErrInexact},
		{ValueOfUint64(maxUint64), Int64, "", ErrInexact},

		// Equal width, signed to unsigned requires non-negative:
		{ValueOfInt8(127), Uint8, "127", nil},
		{ValueOfInt8(-1), Uint8, "", ErrInexact},

		// Identity:
		{ValueOfInt32(-7), Int32, "-7", nil},
	} {
		t.Run(fmt.Sprintf("%d/%s(%s)->%s", idx, tc.in.Kind(), tc.in, tc.to), func(t *testing.T) {
			tt := assert.WrapTB(t)
			v, err := Convert(tc.in, tc.to)
			tt.MustEqual(tc.err, err)
			if err == nil {
				tt.MustEqual(tc.to, v.Kind())
				tt.MustEqual(tc.out, v.String())
			}
		})
	}
}

func TestConvert128(t *testing.T) {
	tt := assert.WrapTB(t)

	v, err := Convert(ValueOfU128(maxI128AsU128), Int128)
	tt.MustOK(err)
	tt.MustEqual("170141183460469231731687303715884105727", v.String())

	_, err = Convert(ValueOfU128(maxI128AsU128.Inc()), Int128)
	tt.MustEqual(ErrInexact, err)

	v, err = Convert(ValueOfI128(MinI128), Int128)
	tt.MustOK(err)
	tt.MustEqual("-170141183460469231731687303715884105728", v.String())

	_, err = Convert(ValueOfI128(i64(-1)), Uint128)
	tt.MustEqual(ErrInexact, err)

	v, err = Convert(ValueOfU128(MaxU128), Uint128)
	tt.MustOK(err)
	tt.MustEqual(MaxU128.String(), v.String())
}

// Every in-range value must survive a widen and narrow round trip
// unchanged.
func TestConvertRoundTrip(t *testing.T) {
	tt := assert.WrapTB(t)

	for _, x := range []int8{-128, -1, 0, 1, 127} {
		for _, wide := range []Kind{Int16, Int32, Int64, Int128} {
			w, err := Convert(ValueOfInt8(x), wide)
			tt.MustOK(err)
			n, err := Convert(w, Int8)
			tt.MustOK(err)
			tt.MustEqual(ValueOfInt8(x), n, "%d via %s", x, wide)
		}
	}

	for _, x := range []uint8{0, 1, 127, 128, 255} {
		for _, wide := range []Kind{Uint16, Uint32, Uint64, Uint128, Int16, Int64, Int128} {
			w, err := Convert(ValueOfUint8(x), wide)
			tt.MustOK(err)
			n, err := Convert(w, Uint8)
			tt.MustOK(err)
			tt.MustEqual(ValueOfUint8(x), n, "%d via %s", x, wide)
		}
	}
}

func TestReinterpret(t *testing.T) {
	tt := assert.WrapTB(t)

	tt.MustEqual("255", Reinterpret(ValueOfInt8(-1), Uint8).String())
	tt.MustEqual("-1", Reinterpret(ValueOfUint8(255), Int8).String())
	tt.MustEqual("-128", Reinterpret(ValueOfUint8(128), Int8).String())
	tt.MustEqual("18446744073709551615", Reinterpret(ValueOfInt64(-1), Uint64).String())
	tt.MustEqual(MaxU128.String(), Reinterpret(ValueOfI128(i64(-1)), Uint128).String())
	tt.MustEqual("7", Reinterpret(ValueOfUint16(7), Int16).String())
}

func TestReinterpretWidthMismatchPanics(t *testing.T) {
	tt := assert.WrapTB(t)

	defer func() {
		tt.MustAssert(recover() != nil)
	}()
	Reinterpret(ValueOfInt8(1), Int16)
}

func TestValueFromBigInt(t *testing.T) {
	tt := assert.WrapTB(t)

	v, err := ValueFromBigInt(Int8, bigs("-128"))
	tt.MustOK(err)
	tt.MustEqual("-128", v.String())

	_, err = ValueFromBigInt(Int8, bigs("128"))
	tt.MustEqual(ErrInexact, err)

	v, err = ValueFromBigInt(Uint128, bigs("340282366920938463463374607431768211455"))
	tt.MustOK(err)
	tt.MustEqual(MaxU128.String(), v.String())

	_, err = ValueFromBigInt(Uint128, bigs("340282366920938463463374607431768211456"))
	tt.MustEqual(ErrInexact, err)

	_, err = ValueFromBigInt(Int128, bigs("-170141183460469231731687303715884105729"))
	tt.MustEqual(ErrInexact, err)
}

func TestValueFromFloat64(t *testing.T) {
	for idx, tc := range []struct {
		f   float64
		to  Kind
		out string
		err error
	}{
		{0, Int8, "0", nil},
		{127, Int8, "127", nil},
		{-128, Int8, "-128", nil},
		{128, Int8, "", ErrInexact},
		{0.5, Int8, "", ErrInexact},
		{-0.5, Int64, "", ErrInexact},
		{1e15, Int64, "1000000000000000", nil},
		{-1, Uint8, "", ErrInexact},
		{255, Uint8, "255", nil},
		{math.NaN(), Int64, "", ErrInexact},
		{math.Inf(1), Uint128, "", ErrInexact},
		{math.Inf(-1), Int128, "", ErrInexact},

		// Power-of-two width boundaries. The type maxima are not
		// representable as float64 and round up to the boundary itself,
		// so the boundary must either fail or convert exactly, never
		// slide through a narrower branch:
		{math.Ldexp(1, 63), Int64, "", ErrInexact},
		{math.Nextafter(math.Ldexp(1, 63), 0), Int64, "9223372036854774784", nil},
		{-math.Ldexp(1, 63), Int64, "-9223372036854775808", nil},
		{math.Ldexp(1, 64), Uint64, "", ErrInexact},
		{math.Nextafter(math.Ldexp(1, 64), 0), Uint64, "18446744073709549568", nil},
		{math.Ldexp(1, 64), Uint128, "18446744073709551616", nil},
		{-math.Ldexp(1, 64), Int128, "-18446744073709551616", nil},
		{-math.Ldexp(1, 65), Int128, "-36893488147419103232", nil},
		{math.Ldexp(1, 127), Int128, "", ErrInexact},
		{math.Nextafter(math.Ldexp(1, 127), 0), Int128, "170141183460469212842221372237303250944", nil},
		{-math.Ldexp(1, 127), Int128, "-170141183460469231731687303715884105728", nil},
		{math.Ldexp(1, 128), Uint128, "", ErrInexact},
		{math.Nextafter(math.Ldexp(1, 128), 0), Uint128, "340282366920938425684442744474606501888", nil},
	} {
		t.Run(fmt.Sprintf("%d/%f->%s", idx, tc.f, tc.to), func(t *testing.T) {
			tt := assert.WrapTB(t)
			v, err := ValueFromFloat64(tc.to, tc.f)
			tt.MustEqual(tc.err, err)
			if err == nil {
				tt.MustEqual(tc.out, v.String())
			}
		})
	}
}

func TestPromotePair(t *testing.T) {
	tt := assert.WrapTB(t)

	a, b := PromotePair(ValueOfInt8(-1), ValueOfUint64(7), Word64)
	tt.MustEqual(Uint64, a.Kind())
	tt.MustEqual(Uint64, b.Kind())
	tt.MustEqual("18446744073709551615", a.String()) // -1 wrapped
	tt.MustEqual("7", b.String())

	a, b = PromotePair(ValueOfUint32(7), ValueOfInt8(-1), Word64)
	tt.MustEqual(Int64, a.Kind())
	tt.MustEqual("-1", b.String())

	a, b = PromotePair(ValueOfUint32(7), ValueOfInt8(-1), Word32)
	tt.MustEqual(Uint32, a.Kind())
	tt.MustEqual("4294967295", b.String())
}
