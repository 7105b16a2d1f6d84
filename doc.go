/*
Package fixint provides fixed-width two's complement integer arithmetic
for the signed and unsigned 8, 16, 32, 64 and 128-bit widths.

Three layers are exposed. Generic functions over the native machine
widths give wrapping, checked and rounding-mode division operations
with explicit names:

	v := fixint.WrapAdd(int8(127), 1)          // -128
	v, ok := fixint.CheckedAdd(int8(127), 1)   // 0, false
	q, err := fixint.Fld(int8(-7), int8(2))    // -4

U128 and I128 extend the ladder to 128 bits as value types built from
two 64-bit limbs, implementing most of the big.Int API alongside the
same wrapping/checked/division surface:

	u1 := fixint.U128From64(math.MaxUint64)
	u2 := fixint.U128From64(math.MaxUint64)
	fmt.Println(u1.Mul(u2))
	// Output: 340282366920938463426481119284349108225

Value carries any of the ten widths behind a runtime Kind tag, with
checked conversion between kinds and the standard promotion rules for
mixed-kind arithmetic.

Division comes in five flavours at every width: Div and Rem truncate
toward zero, Fld and Mod round toward negative infinity, Cld rounds
toward positive infinity. All reject a zero divisor with
ErrDivisionByZero and report the signed minimum divided by minus one
as ErrOverflow.

U128 and I128 support the following formatting and marshalling
interfaces:

  - fmt.Formatter
  - fmt.Stringer
  - json.Marshaler
  - json.Unmarshaler
  - encoding.TextMarshaler
  - encoding.TextUnmarshaler
*/
package fixint
