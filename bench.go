package fixint

import (
	"math/big"
	"testing"
)

var (
	BenchBigFloatResult *big.Float
	BenchBigIntResult   *big.Int
	BenchBoolResult     bool
	BenchErrResult      error
	BenchFloatResult    float64
	BenchI128Result     I128
	BenchInt64Result    int64
	BenchIntResult      int
	BenchStringResult   string
	BenchU128Result     U128
	BenchUint64Result   uint64
	BenchValueResult    Value

	BenchUint641, BenchUint642 uint64 = 12093749018, 18927348917
	BenchInt641, BenchInt642   int64  = -12093749018, 18927348917
)

func BenchmarkUint64Mul(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchUint64Result = BenchUint641 * BenchUint642
	}
}

func BenchmarkUint64Add(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchUint64Result = BenchUint641 + BenchUint642
	}
}

func BenchmarkUint64Div(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchUint64Result = BenchUint641 / BenchUint642
	}
}

func BenchmarkCheckedAdd64(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchUint64Result, BenchBoolResult = CheckedAdd(BenchUint641, BenchUint642)
	}
}

func BenchmarkCheckedMul64(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchUint64Result, BenchBoolResult = CheckedMul(BenchUint641, BenchUint642)
	}
}

func BenchmarkFld64(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchInt64Result, BenchErrResult = Fld(BenchInt641, BenchInt642)
	}
}

func BenchmarkMod64(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchInt64Result, BenchErrResult = Mod(BenchInt641, BenchInt642)
	}
}

func BenchmarkWideMulU64(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchU128Result = WideMulU64(BenchUint641, BenchUint642)
	}
}

func BenchmarkWideMulU64Emulated(b *testing.B) {
	defer func(prev bool) { wideOpsNative = prev }(wideOpsNative)
	wideOpsNative = false
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		BenchU128Result = WideMulU64(BenchUint641, BenchUint642)
	}
}

func BenchmarkValueAdd(b *testing.B) {
	v1, v2 := ValueOfUint64(BenchUint641), ValueOfUint64(BenchUint642)
	for i := 0; i < b.N; i++ {
		BenchValueResult = v1.Add(v2)
	}
}

func BenchmarkValueAddMixed(b *testing.B) {
	v1, v2 := ValueOfInt32(-1234567), ValueOfUint64(BenchUint642)
	for i := 0; i < b.N; i++ {
		BenchValueResult = v1.Add(v2)
	}
}

func BenchmarkBigIntMul(b *testing.B) {
	var max big.Int
	max.SetUint64(maxUint64)

	for i := 0; i < b.N; i++ {
		var dest big.Int
		dest.Mul(&dest, &max)
	}
}

func BenchmarkBigIntAdd(b *testing.B) {
	var max big.Int
	max.SetUint64(maxUint64)

	for i := 0; i < b.N; i++ {
		var dest big.Int
		dest.Add(&dest, &max)
	}
}

func BenchmarkBigIntDiv(b *testing.B) {
	u := new(big.Int).SetUint64(maxUint64)
	by := new(big.Int).SetUint64(121525124)
	for i := 0; i < b.N; i++ {
		var z big.Int
		z.Div(u, by)
	}
}
