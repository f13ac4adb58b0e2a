package bignum

import (
	"errors"
	"fmt"
)

// Error kinds.
// Every error returned by this package wraps exactly one of them.
var (
	ErrValidation       = errors.New("validation error")
	ErrOverflow         = errors.New("overflow")
	ErrUnderflow        = errors.New("underflow")
	ErrDivisionByZero   = errors.New("division by zero")
	ErrPrecision        = errors.New("precision out of range")
	ErrComputationLimit = errors.New("computation limit exceeded")
	ErrDataStructure    = errors.New("data structure error")
)

// Error codes reported by [Code].
const (
	CodeInvalidNumber      = "INVALID_NUMBER"
	CodeNonFinite          = "NON_FINITE"
	CodeNotInteger         = "NOT_INTEGER"
	CodeUnsupportedType    = "UNSUPPORTED_TYPE"
	CodeNegativeExponent   = "NEGATIVE_EXPONENT"
	CodeNegativeRoot       = "NEGATIVE_ROOT"
	CodeNegativeBase       = "NEGATIVE_BASE"
	CodeInvalidRootDegree  = "INVALID_ROOT_DEGREE"
	CodeInvalidHeight      = "INVALID_HEIGHT"
	CodeInvalidRounding    = "INVALID_ROUNDING_MODE"
	CodeInvalidArgument    = "INVALID_ARGUMENT"
	CodePrecisionRange     = "PRECISION_RANGE"
	CodeOverflow           = "OVERFLOW"
	CodeUnderflow          = "UNDERFLOW"
	CodeDivisionByZero     = "DIVISION_BY_ZERO"
	CodeStepLimit          = "STEP_LIMIT"
	CodePowerBaseLimit     = "POWER_BASE_LIMIT"
	CodePowerExponentLimit = "POWER_EXPONENT_LIMIT"
	CodeTetrationLimit     = "TETRATION_HEIGHT_LIMIT"
)

// Error describes a failed operation.
// Kind is one of the Err* variables of this package and is returned by Unwrap.
type Error struct {
	Kind error
	Code string
	Msg  string
}

func newError(kind error, code, format string, args ...any) *Error {
	return &Error{Kind: kind, Code: code, Msg: fmt.Sprintf(format, args...)}
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Msg == "" {
		return e.Kind.Error()
	}
	return fmt.Sprintf("%v: %v", e.Kind, e.Msg)
}

// Unwrap returns the error kind.
func (e *Error) Unwrap() error {
	return e.Kind
}

// Code returns the code of the first [Error] in the chain of err,
// or an empty string if there is none.
func Code(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

func errDivisionByZero() *Error {
	return newError(ErrDivisionByZero, CodeDivisionByZero, "")
}

func errPrecisionRange(prec int) *Error {
	return newError(ErrPrecision, CodePrecisionRange, "precision %v is not within [0, %v]", prec, MaxPrecision)
}
