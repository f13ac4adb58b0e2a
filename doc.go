/*
Package bignum implements exact, overflow-checked arithmetic over integers of
unbounded magnitude, together with fixed-point scaling, integer roots, and
bounded exponent towers.

# Features

  - Immutable integers and scaled values, safe for use across multiple goroutines
  - Seven rounding modes shared by division, rescaling, and conversions
  - Range checks performed before expensive computations
  - Binary exponentiation, Newton's method roots, tetration and super-roots
  - Every loop is bounded by an iteration limit

# Representation

An [Int] wraps a [big.Int] that is never modified after construction.
A [Scaled] value is a pair of an unscaled Int and a precision p, representing
unscaled / 10^p, where p is within [0, MaxPrecision].

# Supported Ranges

Integers themselves have no range.
When [Context.CheckOverflow] is enabled, which is the default, results must be
within [MinSafeInteger, MaxSafeInteger], that is within ±(2^MaxBits - 1).
Operations detect most violations from the bit lengths of their operands,
before the result is computed.

# Operations

Arithmetic operations are methods of [Context], which holds the precision,
the rounding mode, the overflow switch, and the iteration bound.
Operands may be of any type accepted by [Coerce], such as Int, *big.Int,
decimal.Decimal, native integers and floats, or decimal strings.
Methods of Int use [BaseContext].

Package bigarray provides a growable array of integers with range aggregate
queries built on the same checked operations.

# Rounding

Scaled division and rescaling use one of the rounding modes:
[RoundHalfEven] (default), [RoundHalfUp], [RoundHalfDown], [RoundFloor],
[RoundCeil], [RoundDown], and [RoundUp].
Rounding is performed on integers only and never depends on floating-point
arithmetic.

# Errors

Every error wraps exactly one of [ErrValidation], [ErrOverflow], [ErrUnderflow],
[ErrDivisionByZero], [ErrPrecision], [ErrComputationLimit], or [ErrDataStructure],
and carries a machine-readable code available through [Code].
Functions prefixed with Must panic instead of returning an error.
*/
package bignum
