package fixint

// The Checked* family computes the same operation as the Wrap* family
// but reports whether the true result survived: ok is false exactly
// when wraparound occurred, and the returned value is then zero rather
// than the corrupted pattern.

// CheckedAdd returns x + y, detecting overflow with sign tests: a
// signed sum overflowed iff the operands share a sign and the result
// does not; an unsigned sum overflowed iff it shrank.
func CheckedAdd[T IntN](x, y T) (T, bool) {
	sum := x + y
	if isSigned[T]() {
		if (x < 0) == (y < 0) && (sum < 0) != (x < 0) {
			return 0, false
		}
	} else if sum < x {
		return 0, false
	}
	return sum, true
}

func CheckedSub[T IntN](x, y T) (T, bool) {
	diff := x - y
	if isSigned[T]() {
		if (x < 0) != (y < 0) && (diff < 0) != (x < 0) {
			return 0, false
		}
	} else if y > x {
		return 0, false
	}
	return diff, true
}

// CheckedMul bounds the product by pre-division: for positive y the
// product fits iff min/y <= x <= max/y, symmetrically for negative y,
// with y == -1 tested against the type minimum alone.
func CheckedMul[T IntN](x, y T) (T, bool) {
	if y == 0 {
		return 0, true
	}
	if isSigned[T]() {
		min, max := minOf[T](), maxOf[T]()
		if y == ^T(0) { // y == -1
			if x == min {
				return 0, false
			}
		} else if y > 0 {
			if x > max/y || x < min/y {
				return 0, false
			}
		} else {
			if x < max/y || x > min/y {
				return 0, false
			}
		}
	} else if x > maxOf[T]()/y {
		return 0, false
	}
	return x * y, true
}

// CheckedNeg fails for the signed minimum, whose negation is
// unrepresentable, and for any nonzero unsigned operand.
func CheckedNeg[T IntN](x T) (T, bool) {
	if isSigned[T]() {
		if x == minOf[T]() {
			return 0, false
		}
	} else if x != 0 {
		return 0, false
	}
	return -x, true
}

// CheckedAbs fails exactly when x is the signed minimum. Unsigned
// operands are their own magnitude.
func CheckedAbs[T IntN](x T) (T, bool) {
	if x < 0 {
		if x == minOf[T]() {
			return 0, false
		}
		return -x, true
	}
	return x, true
}

// CheckedAddAll folds CheckedAdd left to right over one or more
// operands, stopping at the first overflow.
func CheckedAddAll[T IntN](first T, rest ...T) (T, bool) {
	sum := first
	for _, v := range rest {
		var ok bool
		if sum, ok = CheckedAdd(sum, v); !ok {
			return 0, false
		}
	}
	return sum, true
}

// CheckedMulAll folds CheckedMul left to right over one or more
// operands, stopping at the first overflow.
func CheckedMulAll[T IntN](first T, rest ...T) (T, bool) {
	product := first
	for _, v := range rest {
		var ok bool
		if product, ok = CheckedMul(product, v); !ok {
			return 0, false
		}
	}
	return product, true
}
