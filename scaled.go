package bignum

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/govalues/decimal"
	"gopkg.in/inf.v0"
)

// Scaled type represents a fixed-point value equal to unscaled / 10^precision.
// The zero value is 0 with precision 0.
// Scaled is immutable and designed to be safe for concurrent use by multiple goroutines.
//
// The precision of a scaled value is always within [0, MaxPrecision].
type Scaled struct {
	unscaled Int
	prec     int
}

// NewScaled returns a scaled value equal to unscaled / 10^precision.
//
// NewScaled returns an error if the precision is negative or greater than [MaxPrecision].
func NewScaled(unscaled Int, precision int) (Scaled, error) {
	if err := checkPrecision(precision); err != nil {
		return Scaled{}, fmt.Errorf("creating scaled value: %w", err)
	}
	return Scaled{unscaled: unscaled, prec: precision}, nil
}

// NewScaledFromDecimal converts a decimal to a scaled value with the same scale.
// See also method [Scaled.Decimal].
func NewScaledFromDecimal(d decimal.Decimal) Scaled {
	z := new(big.Int).SetUint64(d.Coef())
	if d.IsNeg() {
		z.Neg(z)
	}
	return Scaled{unscaled: newIntUnsafe(z), prec: d.Scale()}
}

// ParseScaled converts a string to a scaled value.
// The input string must be in one of the following formats:
//
//	1.234
//	-1234
//	+0.000001234
//
// The precision of the result is the number of digits after the decimal point.
//
// ParseScaled returns an error if:
//   - the string does not represent a number;
//   - there are more than [MaxPrecision] digits after the decimal point.
func ParseScaled(s string) (Scaled, error) {
	d, ok := new(inf.Dec).SetString(strings.TrimSpace(s))
	if !ok {
		return Scaled{}, newError(ErrValidation, CodeInvalidNumber, "%q is not a number", s)
	}
	return newScaledFromDec(d)
}

// MustParseScaled is like [ParseScaled] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding scaled values.
func MustParseScaled(s string) Scaled {
	v, err := ParseScaled(s)
	if err != nil {
		panic(fmt.Sprintf("ParseScaled(%q) failed: %v", s, err))
	}
	return v
}

// newScaledFromDec converts an inf.Dec, bringing negative scales to 0.
func newScaledFromDec(d *inf.Dec) (Scaled, error) {
	z := new(big.Int).Set(d.UnscaledBig())
	prec := int(d.Scale())
	if prec < 0 {
		z.Mul(z, pow10(-prec))
		prec = 0
	}
	if err := checkPrecision(prec); err != nil {
		return Scaled{}, err
	}
	return Scaled{unscaled: newIntUnsafe(z), prec: prec}, nil
}

// Unscaled returns the unscaled integer of the value.
func (s Scaled) Unscaled() Int {
	return s.unscaled
}

// Precision returns the number of digits after the decimal point.
func (s Scaled) Precision() int {
	return s.prec
}

// Sign returns:
//
//	-1 if s < 0
//	 0 if s = 0
//	+1 if s > 0
func (s Scaled) Sign() int {
	return s.unscaled.Sign()
}

// IsZero returns true if s = 0.
func (s Scaled) IsZero() bool {
	return s.unscaled.IsZero()
}

// IsInt returns true if the fractional part of the value is equal to 0.
func (s Scaled) IsInt() bool {
	return GetFractionalPart(s.unscaled, s.prec).IsZero()
}

// Rescale returns the value with the given precision.
// If the new precision is less than the current one, the value is rounded
// according to the rounding mode.
//
// Rescale returns an error if the precision is negative or greater than [MaxPrecision].
func (s Scaled) Rescale(precision int, mode RoundingMode) (Scaled, error) {
	if err := checkPrecision(precision); err != nil {
		return Scaled{}, fmt.Errorf("rescaling %v: %w", s, err)
	}
	return s.rescale(precision, mode), nil
}

func (s Scaled) rescale(precision int, mode RoundingMode) Scaled {
	switch {
	case precision == s.prec:
		return s
	case precision > s.prec:
		return Scaled{unscaled: ScaleByPowerOfTen(s.unscaled, precision-s.prec), prec: precision}
	}
	d := pow10(s.prec - precision)
	q, r := new(big.Int).QuoRem(s.unscaled.ref(), d, new(big.Int))
	return Scaled{unscaled: newIntUnsafe(mode.roundQuo(q, r, d)), prec: precision}
}

// Trim returns the value with trailing zeros removed from the fractional part.
// See also function [CalculateRequiredPrecision].
func (s Scaled) Trim() Scaled {
	prec := CalculateRequiredPrecision(s.unscaled, s.prec)
	return Scaled{unscaled: ScaleByPowerOfTen(s.unscaled, prec-s.prec), prec: prec}
}

// Neg returns a value with the opposite sign.
func (s Scaled) Neg() Scaled {
	return Scaled{unscaled: s.unscaled.Neg(), prec: s.prec}
}

// Abs returns the absolute value.
func (s Scaled) Abs() Scaled {
	return Scaled{unscaled: s.unscaled.Abs(), prec: s.prec}
}

// Add returns the exact sum s + t.
// The precision of the result is the larger of the two precisions.
func (s Scaled) Add(t Scaled) Scaled {
	a, b, prec := s.normalize(t)
	return Scaled{unscaled: newIntUnsafe(new(big.Int).Add(a.ref(), b.ref())), prec: prec}
}

// Sub returns the exact difference s - t.
// The precision of the result is the larger of the two precisions.
func (s Scaled) Sub(t Scaled) Scaled {
	a, b, prec := s.normalize(t)
	return Scaled{unscaled: newIntUnsafe(new(big.Int).Sub(a.ref(), b.ref())), prec: prec}
}

// normalize never fails, since precisions of scaled values are always valid.
func (s Scaled) normalize(t Scaled) (Int, Int, int) {
	a, b, prec, _ := NormalizePrecision(s.unscaled, t.unscaled, s.prec, t.prec)
	return a, b, prec
}

// Mul returns the product s * t.
// The precision of the result is the sum of the two precisions.
// If the sum is greater than [MaxPrecision], the product is rounded to
// [MaxPrecision] digits using half-to-even rounding.
func (s Scaled) Mul(t Scaled) Scaled {
	p := Scaled{
		unscaled: newIntUnsafe(new(big.Int).Mul(s.unscaled.ref(), t.unscaled.ref())),
		prec:     s.prec + t.prec,
	}
	if p.prec > MaxPrecision {
		return p.rescale(MaxPrecision, RoundHalfEven)
	}
	return p
}

// Quo returns the quotient s / t with the given precision,
// rounded according to the rounding mode.
//
// Quo returns an error if:
//   - the divisor is 0;
//   - the precision is negative or greater than [MaxPrecision].
func (s Scaled) Quo(t Scaled, precision int, mode RoundingMode) (Scaled, error) {
	q, err := s.quo(t, precision, mode)
	if err != nil {
		return Scaled{}, fmt.Errorf("computing [%v / %v]: %w", s, t, err)
	}
	return q, nil
}

func (s Scaled) quo(t Scaled, precision int, mode RoundingMode) (Scaled, error) {
	a, b, _ := s.normalize(t)
	q, err := ScaledDivision(a, b, precision, mode)
	if err != nil {
		return Scaled{}, err
	}
	return Scaled{unscaled: q, prec: precision}, nil
}

// Cmp compares scaled values and returns:
//
//	-1 if s < t
//	 0 if s = t
//	+1 if s > t
func (s Scaled) Cmp(t Scaled) int {
	a, b, _ := s.normalize(t)
	return a.Cmp(b)
}

// Equal returns true if s and t are numerically equal, regardless of their precisions.
func (s Scaled) Equal(t Scaled) bool {
	return s.Cmp(t) == 0
}

// EqualWithin returns true if s and t differ by less than 10^-digits.
// See also function [EqualWithinPrecision].
//
// EqualWithin returns an error if digits is negative or greater than [MaxPrecision].
func (s Scaled) EqualWithin(t Scaled, digits int) (bool, error) {
	ok, err := EqualWithinPrecision(s.unscaled, t.unscaled, s.prec, t.prec, digits)
	if err != nil {
		return false, fmt.Errorf("comparing %v and %v: %w", s, t, err)
	}
	return ok, nil
}

// FractionalPart returns the fractional part of the value, keeping its sign and precision.
// For example, the fractional part of -1.25 is -0.25.
func (s Scaled) FractionalPart() Scaled {
	return Scaled{unscaled: GetFractionalPart(s.unscaled, s.prec), prec: s.prec}
}

// Int returns the value rounded to an integer according to the rounding mode.
func (s Scaled) Int(mode RoundingMode) Int {
	return s.rescale(0, mode).unscaled
}

// Dec returns the value as an [inf.Dec].
//
// [inf.Dec]: https://pkg.go.dev/gopkg.in/inf.v0#Dec
func (s Scaled) Dec() *inf.Dec {
	return inf.NewDecBig(s.unscaled.Big(), inf.Scale(s.prec))
}

// Decimal converts the value to a decimal.
// See also constructor [NewScaledFromDecimal].
//
// Decimal returns an error if the value has more than [decimal.MaxPrec] digits
// or its precision is greater than [decimal.MaxScale].
func (s Scaled) Decimal() (decimal.Decimal, error) {
	d, err := decimal.Parse(s.String())
	if err != nil {
		return decimal.Decimal{}, newError(ErrOverflow, CodeOverflow, "%v does not fit into a decimal: %v", s, err)
	}
	return d, nil
}

// String implements the [fmt.Stringer] interface and returns a string
// representation of the value with exactly [Scaled.Precision] digits
// after the decimal point.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (s Scaled) String() string {
	return s.Dec().String()
}

// MarshalText implements the [encoding.TextMarshaler] interface.
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (s Scaled) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
// See also constructor [ParseScaled].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (s *Scaled) UnmarshalText(text []byte) error {
	var err error
	*s, err = ParseScaled(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Scaled{}, err)
	}
	return nil
}
