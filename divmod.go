package fixint

// The division family. Five operators, all rejecting a zero divisor
// with ErrDivisionByZero:
//
//	Div  truncates toward zero
//	Rem  satisfies x == Div(x,y)*y + Rem(x,y); sign follows x
//	Fld  rounds toward negative infinity
//	Mod  satisfies x == Fld(x,y)*y + Mod(x,y); sign follows y
//	Cld  rounds toward positive infinity
//
// The only representable-operand overflow in the family is the signed
// minimum divided by -1, reported as ErrOverflow.

// Div returns x / y truncated toward zero.
func Div[T IntN](x, y T) (T, error) {
	if y == 0 {
		return 0, ErrDivisionByZero
	}
	if isSigned[T]() && y == ^T(0) && x == minOf[T]() {
		return 0, ErrOverflow
	}
	return x / y, nil
}

// Rem returns the remainder of truncating division. Rem(typemin, -1)
// is zero and does not overflow.
func Rem[T IntN](x, y T) (T, error) {
	if y == 0 {
		return 0, ErrDivisionByZero
	}
	return x % y, nil
}

// Fld returns x / y rounded toward negative infinity: the truncating
// quotient, less one when the operands disagree in sign and divide
// inexactly.
func Fld[T IntN](x, y T) (T, error) {
	if y == 0 {
		return 0, ErrDivisionByZero
	}
	if isSigned[T]() && y == ^T(0) {
		if x == minOf[T]() {
			return 0, ErrOverflow
		}
		return -x, nil
	}
	q := x / y
	if x%y != 0 && (x < 0) != (y < 0) {
		q--
	}
	return q, nil
}

// Mod returns the floor-division modulus: x - Fld(x,y)*y. The result
// takes the divisor's sign. Mod(x, -1) is zero for every x, which
// keeps the signed minimum clear of the Fld overflow.
func Mod[T IntN](x, y T) (T, error) {
	if y == 0 {
		return 0, ErrDivisionByZero
	}
	if isSigned[T]() && y == ^T(0) {
		return 0, nil
	}
	r := x % y
	if r != 0 && (r < 0) != (y < 0) {
		r += y
	}
	return r, nil
}

// Cld returns x / y rounded toward positive infinity: the truncating
// quotient, plus one when the operands agree in sign and divide
// inexactly.
func Cld[T IntN](x, y T) (T, error) {
	if y == 0 {
		return 0, ErrDivisionByZero
	}
	if isSigned[T]() && y == ^T(0) {
		if x == minOf[T]() {
			return 0, ErrOverflow
		}
		return -x, nil
	}
	q := x / y
	if x%y != 0 && (x < 0) == (y < 0) {
		q++
	}
	return q, nil
}

// Cross-signedness division over same-width operand pairs. The signed
// operand's magnitude is taken by reinterpreting into the unsigned
// counterpart and negating there, which is exact even for the signed
// minimum; the division happens unsigned and the sign is reapplied
// with flipSign afterwards. Results that the destination signedness
// cannot carry wrap, the same way the same-width conversions of the
// underlying machine do.

// unsignedMag returns |x| in the unsigned counterpart type. S and U
// must be the same width.
func unsignedMag[U UnsignedN, S SignedN](x S) U {
	u := U(x)
	if x < 0 {
		u = -u
	}
	return u
}

// flipSign negates v when sign is negative.
func flipSign[S SignedN](v, sign S) S {
	if sign < 0 {
		return -v
	}
	return v
}

// DivSU divides a signed dividend by an unsigned divisor of the same
// width. The quotient keeps the dividend's sign.
func DivSU[S SignedN, U UnsignedN](x S, y U) (S, error) {
	if y == 0 {
		return 0, ErrDivisionByZero
	}
	return flipSign(S(unsignedMag[U](x)/y), x), nil
}

// RemSU is the truncating remainder for a signed dividend and an
// unsigned divisor; the sign follows the dividend.
func RemSU[S SignedN, U UnsignedN](x S, y U) (S, error) {
	if y == 0 {
		return 0, ErrDivisionByZero
	}
	return flipSign(S(unsignedMag[U](x)%y), x), nil
}

// FldSU floors the quotient of a signed dividend and unsigned divisor.
func FldSU[S SignedN, U UnsignedN](x S, y U) (S, error) {
	q, err := DivSU(x, y)
	if err != nil {
		return 0, err
	}
	if x < 0 && unsignedMag[U](x)%y != 0 {
		q--
	}
	return q, nil
}

// ModSU is the floor modulus for a signed dividend and unsigned
// divisor. The divisor is non-negative, so the result is unsigned.
// Computed as x - Fld(x,y)*y in the wrapping unsigned domain, which is
// exact because the true modulus always fits the width.
func ModSU[S SignedN, U UnsignedN](x S, y U) (U, error) {
	q, err := FldSU(x, y)
	if err != nil {
		return 0, err
	}
	return U(x) - U(q)*y, nil
}

// CldSU is the ceiling quotient for a signed dividend and unsigned
// divisor.
func CldSU[S SignedN, U UnsignedN](x S, y U) (S, error) {
	q, err := DivSU(x, y)
	if err != nil {
		return 0, err
	}
	if x >= 0 && unsignedMag[U](x)%y != 0 {
		q++
	}
	return q, nil
}

// DivUS divides an unsigned dividend by a signed divisor of the same
// width. A negative divisor yields a negative quotient, carried in the
// unsigned result by wraparound.
func DivUS[U UnsignedN, S SignedN](x U, y S) (U, error) {
	if y == 0 {
		return 0, ErrDivisionByZero
	}
	q := x / unsignedMag[U](y)
	if y < 0 {
		q = -q
	}
	return q, nil
}

// RemUS is the truncating remainder for an unsigned dividend and a
// signed divisor; the dividend is non-negative so the result is too.
func RemUS[U UnsignedN, S SignedN](x U, y S) (U, error) {
	if y == 0 {
		return 0, ErrDivisionByZero
	}
	return x % unsignedMag[U](y), nil
}

// FldUS floors the quotient of an unsigned dividend and signed
// divisor.
func FldUS[U UnsignedN, S SignedN](x U, y S) (U, error) {
	q, err := DivUS(x, y)
	if err != nil {
		return 0, err
	}
	if y < 0 && x%unsignedMag[U](y) != 0 {
		q--
	}
	return q, nil
}

// ModUS is the floor modulus for an unsigned dividend and signed
// divisor; the sign follows the divisor. Computed as x - Fld(x,y)*y in
// the wrapping unsigned domain, which is exact because the true
// modulus always fits the width.
func ModUS[U UnsignedN, S SignedN](x U, y S) (S, error) {
	q, err := FldUS(x, y)
	if err != nil {
		return 0, err
	}
	return S(x - q*U(y)), nil
}

// CldUS is the ceiling quotient for an unsigned dividend and signed
// divisor.
func CldUS[U UnsignedN, S SignedN](x U, y S) (U, error) {
	q, err := DivUS(x, y)
	if err != nil {
		return 0, err
	}
	if y >= 0 && x%unsignedMag[U](y) != 0 {
		q++
	}
	return q, nil
}
