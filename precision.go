package bignum

//go:generate go run scripts/pow10/codegen.go

import (
	"fmt"
	"math/big"
	"strings"
)

// mustParseBig converts a string to a big integer.
// It is used only for initialization of the generated tables.
func mustParseBig(s string) *big.Int {
	z, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic(fmt.Sprintf("mustParseBig(%q) failed: invalid integer", s))
	}
	return z
}

// pow10 returns 10^n for n >= 0.
// The result must not be modified.
func pow10(n int) *big.Int {
	if n < len(bpow10) {
		return bpow10[n]
	}
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n)), nil)
}

func checkPrecision(prec int) error {
	if prec < 0 || prec > MaxPrecision {
		return errPrecisionRange(prec)
	}
	return nil
}

// ScaleByPowerOfTen returns v * 10^power.
// If power is negative, v is divided by 10^-power and the quotient is
// truncated towards zero.
func ScaleByPowerOfTen(v Int, power int) Int {
	switch {
	case power == 0 || v.IsZero():
		return v
	case power > 0:
		return newIntUnsafe(new(big.Int).Mul(v.ref(), pow10(power)))
	default:
		return newIntUnsafe(new(big.Int).Quo(v.ref(), pow10(-power)))
	}
}

// Round interprets v as a value with the given number of fractional digits
// and rounds it to an integer according to the rounding mode.
// The result keeps the scale of v, so that it equals round(v / 10^precision) * 10^precision.
// For example, Round(25, 1, RoundHalfEven) = 20, since 2.5 is rounded to 2.
// If precision is not positive, v is returned unchanged.
func Round(v Int, precision int, mode RoundingMode) Int {
	if precision <= 0 || v.IsZero() {
		return v
	}
	d := pow10(precision)
	q, r := new(big.Int).QuoRem(v.ref(), d, new(big.Int))
	if r.Sign() == 0 {
		return v
	}
	q = mode.roundQuo(q, r, d)
	return newIntUnsafe(q.Mul(q, d))
}

// ScaledDivision returns the unscaled value of num / den with the given number
// of fractional digits, rounded according to the rounding mode.
// For example, ScaledDivision(1, 3, 2, RoundHalfEven) = 33, which stands for 0.33.
//
// ScaledDivision returns an error if:
//   - the denominator is 0;
//   - the precision is negative or greater than [MaxPrecision].
func ScaledDivision(num, den Int, precision int, mode RoundingMode) (Int, error) {
	if err := checkPrecision(precision); err != nil {
		return Int{}, err
	}
	if den.IsZero() {
		return Int{}, errDivisionByZero()
	}
	n := new(big.Int).Mul(num.ref(), pow10(precision))
	q, r := n.QuoRem(n, den.ref(), new(big.Int))
	return newIntUnsafe(mode.roundQuo(q, r, den.ref())), nil
}

// NormalizePrecision brings two scaled values to a common precision.
// The value with the lower precision is multiplied by a power of ten,
// the other one is returned as is.
//
// NormalizePrecision returns an error if any of the precisions is negative
// or greater than [MaxPrecision].
func NormalizePrecision(a, b Int, precA, precB int) (Int, Int, int, error) {
	if err := checkPrecision(precA); err != nil {
		return Int{}, Int{}, 0, err
	}
	if err := checkPrecision(precB); err != nil {
		return Int{}, Int{}, 0, err
	}
	switch {
	case precA < precB:
		return ScaleByPowerOfTen(a, precB-precA), b, precB, nil
	case precA > precB:
		return a, ScaleByPowerOfTen(b, precA-precB), precA, nil
	default:
		return a, b, precA, nil
	}
}

// CalculateRequiredPrecision returns the smallest number of fractional digits
// that represents v / 10^precision exactly.
// For example, CalculateRequiredPrecision(1500, 3) = 1, since 1.500 = 1.5.
func CalculateRequiredPrecision(v Int, precision int) int {
	if precision <= 0 || v.IsZero() {
		return 0
	}
	z := new(big.Int).Set(v.ref())
	ten := big.NewInt(10)
	var q, r big.Int
	for precision > 0 {
		q.QuoRem(z, ten, &r)
		if r.Sign() != 0 {
			break
		}
		z.Set(&q)
		precision--
	}
	return precision
}

// numDigits returns the number of decimal digits of |v|.
// The number of digits of 0 is 1.
func numDigits(v *big.Int) int {
	s := v.String()
	if v.Sign() < 0 {
		return len(s) - 1
	}
	return len(s)
}

// SignificantDigits returns the number of decimal digits of |v| without
// trailing zeros.
// For example, SignificantDigits(-12300) = 3.
// SignificantDigits of 0 is 0.
func SignificantDigits(v Int) int {
	if v.IsZero() {
		return 0
	}
	s := strings.TrimRight(v.Abs().String(), "0")
	return len(s)
}

// TruncateToSignificantDigits keeps the given number of leading digits of v
// and replaces the remaining ones with zeros, truncating towards zero.
// For example, TruncateToSignificantDigits(-98765, 2) = -98000.
//
// TruncateToSignificantDigits returns an error if digits is less than 1.
func TruncateToSignificantDigits(v Int, digits int) (Int, error) {
	if digits < 1 {
		return Int{}, newError(ErrValidation, CodeInvalidArgument, "number of significant digits %v is less than 1", digits)
	}
	drop := numDigits(v.ref()) - digits
	if drop <= 0 {
		return v, nil
	}
	return ScaleByPowerOfTen(ScaleByPowerOfTen(v, -drop), drop), nil
}

// EqualWithinPrecision returns true if scaled values a / 10^precA and b / 10^precB
// differ by less than 10^-digits.
//
// EqualWithinPrecision returns an error if:
//   - any of the precisions is negative or greater than [MaxPrecision];
//   - digits is negative or greater than [MaxPrecision].
func EqualWithinPrecision(a, b Int, precA, precB, digits int) (bool, error) {
	if digits < 0 || digits > MaxPrecision {
		return false, newError(ErrPrecision, CodePrecisionRange, "tolerance digits %v is not within [0, %v]", digits, MaxPrecision)
	}
	a, b, prec, err := NormalizePrecision(a, b, precA, precB)
	if err != nil {
		return false, err
	}
	// |a - b| / 10^prec < 10^-digits  <=>  |a - b| * 10^digits < 10^prec
	diff := new(big.Int).Sub(a.ref(), b.ref())
	diff.Abs(diff)
	diff.Mul(diff, pow10(digits))
	return diff.Cmp(pow10(prec)) < 0, nil
}

// GetFractionalPart returns the fractional digits of v / 10^precision as an
// unscaled value with the same precision and the sign of v.
// For example, GetFractionalPart(-12345, 2) = -45, which stands for -0.45.
// If precision is not positive, the result is 0.
func GetFractionalPart(v Int, precision int) Int {
	if precision <= 0 || v.IsZero() {
		return Int{}
	}
	return newIntUnsafe(new(big.Int).Rem(v.ref(), pow10(precision)))
}
