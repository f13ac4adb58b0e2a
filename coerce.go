package bignum

import (
	"fmt"
	"math/big"

	"fortio.org/safecast"
	"github.com/govalues/decimal"
)

// Coerce converts a value to an integer.
// The following types are supported:
//
//   - [Int], *[big.Int] and [big.Int];
//   - [Scaled] and [decimal.Decimal], if they have no fractional part;
//   - all signed and unsigned integer types;
//   - float32 and float64, if they are finite and have no fractional part;
//   - strings accepted by [ParseInt].
//
// Coerce returns an error wrapping [ErrValidation] for any other input.
func Coerce(v any) (Int, error) {
	switch v := v.(type) {
	case Int:
		return v, nil
	case *Int:
		if v == nil {
			return Int{}, newError(ErrValidation, CodeInvalidNumber, "nil %T", v)
		}
		return *v, nil
	case *big.Int:
		if v == nil {
			return Int{}, newError(ErrValidation, CodeInvalidNumber, "nil %T", v)
		}
		return NewIntFromBig(v), nil
	case big.Int:
		return NewIntFromBig(&v), nil
	case Scaled:
		if !v.IsInt() {
			return Int{}, newError(ErrValidation, CodeNotInteger, "%v has a fractional part", v)
		}
		return v.Int(RoundDown), nil
	case decimal.Decimal:
		return NewIntFromDecimal(v)
	case int:
		return NewInt(int64(v)), nil
	case int8:
		return NewInt(int64(v)), nil
	case int16:
		return NewInt(int64(v)), nil
	case int32:
		return NewInt(int64(v)), nil
	case int64:
		return NewInt(v), nil
	case uint:
		return NewIntFromUint64(uint64(v)), nil
	case uint8:
		return NewIntFromUint64(uint64(v)), nil
	case uint16:
		return NewIntFromUint64(uint64(v)), nil
	case uint32:
		return NewIntFromUint64(uint64(v)), nil
	case uint64:
		return NewIntFromUint64(v), nil
	case uintptr:
		u, err := safecast.Conv[uint64](v)
		if err != nil {
			return Int{}, newError(ErrValidation, CodeInvalidNumber, "%v: %v", v, err)
		}
		return NewIntFromUint64(u), nil
	case float32:
		return NewIntFromFloat64(float64(v))
	case float64:
		return NewIntFromFloat64(v)
	case string:
		return ParseInt(v)
	case nil:
		return Int{}, newError(ErrValidation, CodeUnsupportedType, "nil value")
	default:
		return Int{}, newError(ErrValidation, CodeUnsupportedType, "unsupported type %T", v)
	}
}

// MustCoerce is like [Coerce] but panics if the value cannot be converted.
func MustCoerce(v any) Int {
	x, err := Coerce(v)
	if err != nil {
		panic(fmt.Sprintf("Coerce(%v) failed: %v", v, err))
	}
	return x
}

// smallInt converts x to an int, used for exponents, degrees, and heights.
// The code is reported when x does not fit into an int.
func smallInt(x Int, kind error, code, what string) (int, error) {
	i64, ok := x.Int64()
	if !ok {
		return 0, newError(kind, code, "%v %v is out of range", what, x)
	}
	n, err := safecast.Conv[int](i64)
	if err != nil {
		return 0, newError(kind, code, "%v %v: %v", what, x, err)
	}
	return n, nil
}
