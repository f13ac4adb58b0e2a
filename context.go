package bignum

import "fmt"

// Context holds the options of arithmetic operations.
// It is a plain value: operations read it and never modify it, so a single
// Context can be shared by multiple goroutines.
// Use [BaseContext] or [NewContext] rather than the zero value, which has
// overflow checks disabled.
type Context struct {
	// Precision is the number of fractional digits of scaled results,
	// such as the quotient of Quo. It must be within [0, MaxPrecision].
	Precision int
	// Rounding is applied when a result cannot be represented exactly
	// at the target precision.
	Rounding RoundingMode
	// CheckOverflow enables range checks against [MinSafeInteger] and
	// [MaxSafeInteger].
	CheckOverflow bool
	// MaxSteps bounds the number of iterations of Newton's method and
	// of binary searches. Non-positive values mean [MaxComputationSteps].
	MaxSteps int
}

// BaseContext is the context used by the methods of [Int] and [Scaled].
var BaseContext = Context{
	Precision:     0,
	Rounding:      RoundHalfEven,
	CheckOverflow: true,
	MaxSteps:      MaxComputationSteps,
}

// NewContext returns a copy of [BaseContext] with the given precision and rounding mode.
func NewContext(precision int, mode RoundingMode) Context {
	ctx := BaseContext
	ctx.Precision = precision
	ctx.Rounding = mode
	return ctx
}

// WithPrecision returns a copy of the context with a different precision.
func (ctx Context) WithPrecision(precision int) Context {
	ctx.Precision = precision
	return ctx
}

// WithRounding returns a copy of the context with a different rounding mode.
func (ctx Context) WithRounding(mode RoundingMode) Context {
	ctx.Rounding = mode
	return ctx
}

// WithOverflowCheck returns a copy of the context with overflow checks
// enabled or disabled.
func (ctx Context) WithOverflowCheck(check bool) Context {
	ctx.CheckOverflow = check
	return ctx
}

// WithMaxSteps returns a copy of the context with a different iteration bound.
func (ctx Context) WithMaxSteps(steps int) Context {
	ctx.MaxSteps = steps
	return ctx
}

// Validate returns an error if:
//   - the precision is negative or greater than [MaxPrecision];
//   - the rounding mode is unknown;
//   - the iteration bound is greater than [MaxComputationSteps].
func (ctx Context) Validate() error {
	if ctx.Precision < 0 || ctx.Precision > MaxPrecision {
		return errPrecisionRange(ctx.Precision)
	}
	if !ctx.Rounding.IsValid() {
		return newError(ErrValidation, CodeInvalidRounding, "unknown rounding mode %v", ctx.Rounding)
	}
	if ctx.MaxSteps > MaxComputationSteps {
		return newError(ErrValidation, CodeInvalidArgument, "max steps %v is greater than %v", ctx.MaxSteps, MaxComputationSteps)
	}
	return nil
}

// steps returns the effective iteration bound.
func (ctx Context) steps() int {
	if ctx.MaxSteps <= 0 {
		return MaxComputationSteps
	}
	return ctx.MaxSteps
}

// String returns a short description of the context.
func (ctx Context) String() string {
	return fmt.Sprintf("precision=%v rounding=%v overflow=%v steps=%v", ctx.Precision, ctx.Rounding, ctx.CheckOverflow, ctx.steps())
}

// checkRange verifies that z is within [MinSafeInteger, MaxSafeInteger]
// when overflow checks are enabled.
func (ctx Context) checkRange(z Int) error {
	if !ctx.CheckOverflow {
		return nil
	}
	if z.BitLen() <= MaxBits {
		return nil
	}
	if z.IsNeg() {
		return newError(ErrUnderflow, CodeUnderflow, "result is less than -(2^%v - 1)", MaxBits)
	}
	return newError(ErrOverflow, CodeOverflow, "result is greater than 2^%v - 1", MaxBits)
}

// checkBits fails early when a result is known to have at least minBits bits.
// neg is the sign of the result.
func (ctx Context) checkBits(minBits int, neg bool) error {
	if !ctx.CheckOverflow || minBits <= MaxBits {
		return nil
	}
	if neg {
		return newError(ErrUnderflow, CodeUnderflow, "result has at least %v bits", minBits)
	}
	return newError(ErrOverflow, CodeOverflow, "result has at least %v bits", minBits)
}
