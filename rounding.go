package bignum

import (
	"fmt"
	"math/big"
	"strings"
)

// RoundingMode type represents a rule for discarding digits that cannot be
// represented at the target precision.
// The zero value is [RoundHalfEven].
//
// When persisting a rounding mode, use the name returned by
// the [RoundingMode.String] method, rather than the integer value.
type RoundingMode uint8

const (
	RoundHalfEven RoundingMode = iota // to nearest, ties to the even digit
	RoundHalfUp                       // to nearest, ties away from zero
	RoundHalfDown                     // to nearest, ties toward zero
	RoundFloor                        // toward negative infinity
	RoundCeil                         // toward positive infinity
	RoundDown                         // toward zero
	RoundUp                           // away from zero
)

var roundingNames = [...]string{
	RoundHalfEven: "HALF_EVEN",
	RoundHalfUp:   "HALF_UP",
	RoundHalfDown: "HALF_DOWN",
	RoundFloor:    "FLOOR",
	RoundCeil:     "CEIL",
	RoundDown:     "DOWN",
	RoundUp:       "UP",
}

// RoundingModes returns all rounding modes in declaration order.
func RoundingModes() []RoundingMode {
	return []RoundingMode{RoundHalfEven, RoundHalfUp, RoundHalfDown, RoundFloor, RoundCeil, RoundDown, RoundUp}
}

// ParseRoundingMode converts a string to a rounding mode.
// The input is case-insensitive and may use dashes or underscores:
//
//	HALF_EVEN
//	half-even
//	halfeven
//
// ParseRoundingMode returns an error if the string does not name a rounding mode.
func ParseRoundingMode(s string) (RoundingMode, error) {
	key := strings.ToUpper(strings.TrimSpace(s))
	key = strings.NewReplacer("-", "", "_", "", " ", "").Replace(key)
	for m, name := range roundingNames {
		if key == strings.ReplaceAll(name, "_", "") {
			return RoundingMode(m), nil
		}
	}
	return RoundHalfEven, newError(ErrValidation, CodeInvalidRounding, "unknown rounding mode %q", s)
}

// MustParseRoundingMode is like [ParseRoundingMode] but panics if the string cannot be parsed.
func MustParseRoundingMode(s string) RoundingMode {
	m, err := ParseRoundingMode(s)
	if err != nil {
		panic(fmt.Sprintf("ParseRoundingMode(%q) failed: %v", s, err))
	}
	return m
}

// IsValid returns true if m is one of the declared rounding modes.
func (m RoundingMode) IsValid() bool {
	return int(m) < len(roundingNames)
}

// String implements the [fmt.Stringer] interface and returns
// the name of the rounding mode, such as "HALF_EVEN".
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (m RoundingMode) String() string {
	if !m.IsValid() {
		return fmt.Sprintf("RoundingMode(%d)", uint8(m))
	}
	return roundingNames[m]
}

// MarshalText implements the [encoding.TextMarshaler] interface.
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (m RoundingMode) MarshalText() ([]byte, error) {
	if !m.IsValid() {
		return nil, newError(ErrValidation, CodeInvalidRounding, "unknown rounding mode %d", uint8(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
// See also constructor [ParseRoundingMode].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (m *RoundingMode) UnmarshalText(text []byte) error {
	var err error
	*m, err = ParseRoundingMode(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", RoundHalfEven, err)
	}
	return nil
}

// roundQuo returns q rounded by mode, where q and r are the truncated
// quotient and remainder of n / d (d != 0).
// The remainder has the sign of n, as produced by [big.Int.QuoRem].
func (m RoundingMode) roundQuo(q, r, d *big.Int) *big.Int {
	if r.Sign() == 0 {
		return q
	}
	// The exact quotient lies strictly between q and q + dir.
	dir := int64(r.Sign() * d.Sign())
	away := false
	switch m {
	case RoundDown:
	case RoundUp:
		away = true
	case RoundFloor:
		away = dir < 0
	case RoundCeil:
		away = dir > 0
	default:
		var twice big.Int
		twice.Lsh(r, 1)
		switch twice.CmpAbs(d) {
		case 1:
			away = true
		case 0:
			switch m {
			case RoundHalfUp:
				away = true
			case RoundHalfDown:
			default:
				away = q.Bit(0) != 0
			}
		}
	}
	if away {
		q.Add(q, big.NewInt(dir))
	}
	return q
}
