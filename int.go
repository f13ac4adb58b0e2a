package bignum

import (
	"fmt"
	"math"
	"math/big"
	"strings"

	"github.com/govalues/decimal"
	"gopkg.in/inf.v0"
)

// Int type represents a signed integer of unbounded magnitude.
// The zero value is the numeric value of 0.
// It is immutable and designed to be safe for concurrent use by multiple goroutines.
//
// Int does not enforce any range on its own.
// The range checks described in the package documentation are performed by
// the operations of [Context].
type Int struct {
	v *big.Int // never modified after construction, nil means 0
}

var bigZero = new(big.Int)

// newIntUnsafe creates an integer that takes ownership of v.
// Use it only if you are absolutely sure that v is not referenced elsewhere.
func newIntUnsafe(v *big.Int) Int {
	if v.Sign() == 0 {
		return Int{}
	}
	return Int{v: v}
}

// NewInt returns an integer equal to v.
func NewInt(v int64) Int {
	return newIntUnsafe(big.NewInt(v))
}

// NewIntFromUint64 returns an integer equal to v.
func NewIntFromUint64(v uint64) Int {
	return newIntUnsafe(new(big.Int).SetUint64(v))
}

// NewIntFromBig returns an integer equal to v.
// The value is copied, so later changes of v do not affect the integer.
// A nil pointer is treated as 0.
func NewIntFromBig(v *big.Int) Int {
	if v == nil {
		return Int{}
	}
	return newIntUnsafe(new(big.Int).Set(v))
}

// NewIntFromFloat64 converts a float to an integer.
//
// NewIntFromFloat64 returns an error if:
//   - the float is a special value (NaN or Inf);
//   - the float has a fractional part.
func NewIntFromFloat64(f float64) (Int, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Int{}, newError(ErrValidation, CodeNonFinite, "special value %v", f)
	}
	if f != math.Trunc(f) {
		return Int{}, newError(ErrValidation, CodeNotInteger, "%v has a fractional part", f)
	}
	z, _ := new(big.Float).SetFloat64(f).Int(nil)
	return newIntUnsafe(z), nil
}

// NewIntFromDecimal converts a decimal to an integer.
// See also method [Int.Decimal].
//
// NewIntFromDecimal returns an error if the decimal has significant digits
// after the decimal point.
func NewIntFromDecimal(d decimal.Decimal) (Int, error) {
	if !d.IsInt() {
		return Int{}, newError(ErrValidation, CodeNotInteger, "%v has a fractional part", d)
	}
	z := new(big.Int).SetUint64(d.Coef())
	z.Quo(z, pow10(d.Scale()))
	if d.IsNeg() {
		z.Neg(z)
	}
	return newIntUnsafe(z), nil
}

// ParseInt converts a string to an integer.
// The input string must be in one of the following formats:
//
//	123
//	-123
//	+1_000_000
//	1.000
//
// Digits may be grouped with underscores.
// A decimal point is accepted only if all digits after it are zeros.
//
// ParseInt returns an error if the string does not represent an integer.
func ParseInt(s string) (Int, error) {
	t := strings.TrimSpace(s)
	if strings.IndexByte(t, '_') >= 0 {
		var ok bool
		t, ok = stripGroups(t)
		if !ok {
			return Int{}, newError(ErrValidation, CodeInvalidNumber, "%q is not a number", s)
		}
	}
	if t == "" {
		return Int{}, newError(ErrValidation, CodeInvalidNumber, "%q is not a number", s)
	}
	if z, ok := new(big.Int).SetString(t, 10); ok {
		return newIntUnsafe(z), nil
	}
	d, ok := new(inf.Dec).SetString(t)
	if !ok {
		return Int{}, newError(ErrValidation, CodeInvalidNumber, "%q is not a number", s)
	}
	x, err := intFromDec(d)
	if err != nil {
		return Int{}, newError(ErrValidation, CodeNotInteger, "%q has a fractional part", s)
	}
	return x, nil
}

// stripGroups removes underscores placed between digits.
func stripGroups(s string) (string, bool) {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != '_' {
			b.WriteByte(s[i])
			continue
		}
		if i == 0 || i == len(s)-1 || !isDigit(s[i-1]) || !isDigit(s[i+1]) {
			return "", false
		}
	}
	return b.String(), true
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// intFromDec converts an integral inf.Dec to an integer.
func intFromDec(d *inf.Dec) (Int, error) {
	z := new(big.Int).Set(d.UnscaledBig())
	scale := int(d.Scale())
	switch {
	case scale < 0:
		z.Mul(z, pow10(-scale))
	case scale > 0:
		var r big.Int
		z.QuoRem(z, pow10(scale), &r)
		if r.Sign() != 0 {
			return Int{}, newError(ErrValidation, CodeNotInteger, "%v has a fractional part", d)
		}
	}
	return newIntUnsafe(z), nil
}

// MustParseInt is like [ParseInt] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding integers.
func MustParseInt(s string) Int {
	x, err := ParseInt(s)
	if err != nil {
		panic(fmt.Sprintf("ParseInt(%q) failed: %v", s, err))
	}
	return x
}

// ref returns the underlying value.
// The result must not be modified.
func (x Int) ref() *big.Int {
	if x.v == nil {
		return bigZero
	}
	return x.v
}

// Big returns a copy of the integer as a [big.Int].
func (x Int) Big() *big.Int {
	return new(big.Int).Set(x.ref())
}

// Int64 returns the integer as an int64.
// If the integer cannot be represented as an int64, then false is returned.
func (x Int) Int64() (int64, bool) {
	v := x.ref()
	if !v.IsInt64() {
		return 0, false
	}
	return v.Int64(), true
}

// Decimal converts the integer to a decimal.
// See also constructor [NewIntFromDecimal].
//
// Decimal returns an error if the integer has more than [decimal.MaxPrec] digits.
func (x Int) Decimal() (decimal.Decimal, error) {
	d, err := decimal.Parse(x.String())
	if err != nil {
		return decimal.Decimal{}, newError(ErrOverflow, CodeOverflow, "%v does not fit into a decimal: %v", x, err)
	}
	return d, nil
}

// Sign returns:
//
//	-1 if x < 0
//	 0 if x = 0
//	+1 if x > 0
func (x Int) Sign() int {
	return x.ref().Sign()
}

// IsZero returns true if x = 0.
func (x Int) IsZero() bool {
	return x.Sign() == 0
}

// IsNeg returns true if x < 0.
func (x Int) IsNeg() bool {
	return x.Sign() < 0
}

// IsPos returns true if x > 0.
func (x Int) IsPos() bool {
	return x.Sign() > 0
}

// IsOdd returns true if x is not divisible by 2.
func (x Int) IsOdd() bool {
	return x.ref().Bit(0) != 0
}

// BitLen returns the length of |x| in bits.
// The bit length of 0 is 0.
func (x Int) BitLen() int {
	return x.ref().BitLen()
}

// Neg returns an integer with the opposite sign.
func (x Int) Neg() Int {
	return newIntUnsafe(new(big.Int).Neg(x.ref()))
}

// Abs returns the absolute value of the integer.
func (x Int) Abs() Int {
	if !x.IsNeg() {
		return x
	}
	return x.Neg()
}

// Cmp compares integers and returns:
//
//	-1 if x < y
//	 0 if x = y
//	+1 if x > y
func (x Int) Cmp(y Int) int {
	return x.ref().Cmp(y.ref())
}

// CmpAbs compares absolute values of integers and returns:
//
//	-1 if |x| < |y|
//	 0 if |x| = |y|
//	+1 if |x| > |y|
func (x Int) CmpAbs(y Int) int {
	return x.ref().CmpAbs(y.ref())
}

// Equal returns true if x = y.
func (x Int) Equal(y Int) bool {
	return x.Cmp(y) == 0
}

// Max returns the larger integer.
func (x Int) Max(y Int) Int {
	if x.Cmp(y) >= 0 {
		return x
	}
	return y
}

// Min returns the smaller integer.
func (x Int) Min(y Int) Int {
	if x.Cmp(y) <= 0 {
		return x
	}
	return y
}

// String implements the [fmt.Stringer] interface and returns
// the decimal representation of the integer.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (x Int) String() string {
	return x.ref().String()
}

// Format implements the [fmt.Formatter] interface.
// The verbs %v, %s, %d, %b, %o, %x and %X are handled as by [big.Int],
// %q produces a double-quoted decimal representation and honors width and flags
// as for strings.
//
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (x Int) Format(state fmt.State, verb rune) {
	switch verb {
	case 'q', 'Q':
		//nolint:errcheck
		fmt.Fprintf(state, fmt.FormatString(state, verb), x.String())
	case 's', 'S':
		x.ref().Format(state, 'd')
	default:
		x.ref().Format(state, verb)
	}
}

// MarshalText implements the [encoding.TextMarshaler] interface.
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (x Int) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
// See also constructor [ParseInt].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (x *Int) UnmarshalText(text []byte) error {
	var err error
	*x, err = ParseInt(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Int{}, err)
	}
	return nil
}
