package bignum

import (
	"fmt"
	"math/big"
)

// operand converts a single operand, checking the context first.
func (ctx Context) operand(a any) (Int, error) {
	if err := ctx.Validate(); err != nil {
		return Int{}, err
	}
	x, err := Coerce(a)
	if err != nil {
		return Int{}, fmt.Errorf("coercing operand: %w", err)
	}
	return x, nil
}

// operands converts a pair of operands, checking the context first.
func (ctx Context) operands(a, b any) (Int, Int, error) {
	x, err := ctx.operand(a)
	if err != nil {
		return Int{}, Int{}, err
	}
	y, err := Coerce(b)
	if err != nil {
		return Int{}, Int{}, fmt.Errorf("coercing operand: %w", err)
	}
	return x, y, nil
}

// Add returns the exact sum a + b.
//
// Add returns an error if:
//   - any of the operands cannot be converted by [Coerce];
//   - the result is outside of the safe range and overflow checks are enabled.
func (ctx Context) Add(a, b any) (Int, error) {
	x, y, err := ctx.operands(a, b)
	if err != nil {
		return Int{}, fmt.Errorf("computing [%v + %v]: %w", a, b, err)
	}
	z, err := ctx.add(x, y)
	if err != nil {
		return Int{}, fmt.Errorf("computing [%v + %v]: %w", x, y, err)
	}
	return z, nil
}

func (ctx Context) add(x, y Int) (Int, error) {
	// |x + y| <= 2 * max(|x|, |y|), so only operands with equal signs can
	// push a result of MaxBits bits out of range.
	if x.Sign() == y.Sign() {
		if err := ctx.checkBits(max(x.BitLen(), y.BitLen()), x.IsNeg()); err != nil {
			return Int{}, err
		}
	}
	z := newIntUnsafe(new(big.Int).Add(x.ref(), y.ref()))
	if err := ctx.checkRange(z); err != nil {
		return Int{}, err
	}
	return z, nil
}

// Sub returns the exact difference a - b.
//
// Sub returns an error if:
//   - any of the operands cannot be converted by [Coerce];
//   - the result is outside of the safe range and overflow checks are enabled.
func (ctx Context) Sub(a, b any) (Int, error) {
	x, y, err := ctx.operands(a, b)
	if err != nil {
		return Int{}, fmt.Errorf("computing [%v - %v]: %w", a, b, err)
	}
	z, err := ctx.add(x, y.Neg())
	if err != nil {
		return Int{}, fmt.Errorf("computing [%v - %v]: %w", x, y, err)
	}
	return z, nil
}

// Mul returns the exact product a * b.
//
// Mul returns an error if:
//   - any of the operands cannot be converted by [Coerce];
//   - the result is outside of the safe range and overflow checks are enabled.
//     The check is performed before the multiplication whenever the bit lengths
//     of the operands already prove the overflow.
func (ctx Context) Mul(a, b any) (Int, error) {
	x, y, err := ctx.operands(a, b)
	if err != nil {
		return Int{}, fmt.Errorf("computing [%v * %v]: %w", a, b, err)
	}
	z, err := ctx.mul(x, y)
	if err != nil {
		return Int{}, fmt.Errorf("computing [%v * %v]: %w", x, y, err)
	}
	return z, nil
}

func (ctx Context) mul(x, y Int) (Int, error) {
	if x.IsZero() || y.IsZero() {
		return Int{}, nil
	}
	// 2^(m-1) * 2^(n-1) <= |x * y| < 2^(m+n)
	neg := x.Sign() != y.Sign()
	if err := ctx.checkBits(x.BitLen()+y.BitLen()-1, neg); err != nil {
		return Int{}, err
	}
	z := newIntUnsafe(new(big.Int).Mul(x.ref(), y.ref()))
	if err := ctx.checkRange(z); err != nil {
		return Int{}, err
	}
	return z, nil
}

// Quo returns the unscaled quotient a / b with [Context.Precision] fractional
// digits, rounded according to [Context.Rounding].
// With the default precision of 0, it is the quotient rounded to an integer.
// See also methods [Context.QuoScaled], [Context.QuoRem] and function [ScaledDivision].
//
// Quo returns an error if:
//   - any of the operands cannot be converted by [Coerce];
//   - the divisor is 0;
//   - the result is outside of the safe range and overflow checks are enabled.
func (ctx Context) Quo(a, b any) (Int, error) {
	x, y, err := ctx.operands(a, b)
	if err != nil {
		return Int{}, fmt.Errorf("computing [%v / %v]: %w", a, b, err)
	}
	z, err := ctx.quo(x, y)
	if err != nil {
		return Int{}, fmt.Errorf("computing [%v / %v]: %w", x, y, err)
	}
	return z, nil
}

func (ctx Context) quo(x, y Int) (Int, error) {
	if y.IsZero() {
		return Int{}, errDivisionByZero()
	}
	// |x * 10^p / y| >= 2^(bitlen(x) - 1 + 3p) / 2^bitlen(y)
	if !x.IsZero() {
		if err := ctx.checkBits(x.BitLen()-y.BitLen()-1+3*ctx.Precision, x.Sign() != y.Sign()); err != nil {
			return Int{}, err
		}
	}
	z, err := ScaledDivision(x, y, ctx.Precision, ctx.Rounding)
	if err != nil {
		return Int{}, err
	}
	if err := ctx.checkRange(z); err != nil {
		return Int{}, err
	}
	return z, nil
}

// QuoScaled is like [Context.Quo] but returns the quotient as a scaled value
// with [Context.Precision] fractional digits.
func (ctx Context) QuoScaled(a, b any) (Scaled, error) {
	z, err := ctx.Quo(a, b)
	if err != nil {
		return Scaled{}, err
	}
	return Scaled{unscaled: z, prec: ctx.Precision}, nil
}

// Rem returns the Euclidean remainder r of a and b, such that 0 <= r < |b|.
// See also method [Context.QuoRem].
//
// Rem returns an error if:
//   - any of the operands cannot be converted by [Coerce];
//   - the divisor is 0.
func (ctx Context) Rem(a, b any) (Int, error) {
	x, y, err := ctx.operands(a, b)
	if err != nil {
		return Int{}, fmt.Errorf("computing [%v mod %v]: %w", a, b, err)
	}
	if y.IsZero() {
		return Int{}, fmt.Errorf("computing [%v mod %v]: %w", x, y, errDivisionByZero())
	}
	return newIntUnsafe(new(big.Int).Mod(x.ref(), y.ref())), nil
}

// QuoRem returns the quotient q and remainder r of a and b truncated towards zero,
// such that a = b * q + r and the sign of r is the same as the sign of a.
//
// QuoRem returns an error if:
//   - any of the operands cannot be converted by [Coerce];
//   - the divisor is 0.
func (ctx Context) QuoRem(a, b any) (q, r Int, err error) {
	x, y, err := ctx.operands(a, b)
	if err != nil {
		return Int{}, Int{}, fmt.Errorf("computing [%v div %v] and [%v rem %v]: %w", a, b, a, b, err)
	}
	if y.IsZero() {
		return Int{}, Int{}, fmt.Errorf("computing [%v div %v] and [%v rem %v]: %w", x, y, x, y, errDivisionByZero())
	}
	qq, rr := new(big.Int).QuoRem(x.ref(), y.ref(), new(big.Int))
	return newIntUnsafe(qq), newIntUnsafe(rr), nil
}

// Abs returns the absolute value of a.
// The safe range is symmetric, so the result is in range whenever a is.
func (ctx Context) Abs(a any) (Int, error) {
	x, err := ctx.operand(a)
	if err != nil {
		return Int{}, fmt.Errorf("computing [abs(%v)]: %w", a, err)
	}
	return x.Abs(), nil
}

// Neg returns a with the opposite sign.
func (ctx Context) Neg(a any) (Int, error) {
	x, err := ctx.operand(a)
	if err != nil {
		return Int{}, fmt.Errorf("computing [-%v]: %w", a, err)
	}
	return x.Neg(), nil
}

// Sign returns -1, 0, or +1 depending on the sign of a.
func (ctx Context) Sign(a any) (int, error) {
	x, err := ctx.operand(a)
	if err != nil {
		return 0, fmt.Errorf("computing [sign(%v)]: %w", a, err)
	}
	return x.Sign(), nil
}

// Cmp compares a and b and returns -1, 0, or +1.
func (ctx Context) Cmp(a, b any) (int, error) {
	x, y, err := ctx.operands(a, b)
	if err != nil {
		return 0, fmt.Errorf("comparing %v and %v: %w", a, b, err)
	}
	return x.Cmp(y), nil
}

// Max returns the larger of a and b.
func (ctx Context) Max(a, b any) (Int, error) {
	x, y, err := ctx.operands(a, b)
	if err != nil {
		return Int{}, fmt.Errorf("computing [max(%v, %v)]: %w", a, b, err)
	}
	return x.Max(y), nil
}

// Min returns the smaller of a and b.
func (ctx Context) Min(a, b any) (Int, error) {
	x, y, err := ctx.operands(a, b)
	if err != nil {
		return Int{}, fmt.Errorf("computing [min(%v, %v)]: %w", a, b, err)
	}
	return x.Min(y), nil
}

// GCD returns the greatest common divisor of |a| and |b|.
// GCD(0, 0) = 0.
func (ctx Context) GCD(a, b any) (Int, error) {
	x, y, err := ctx.operands(a, b)
	if err != nil {
		return Int{}, fmt.Errorf("computing [gcd(%v, %v)]: %w", a, b, err)
	}
	return gcd(x, y), nil
}

// gcd computes the greatest common divisor using Euclid's algorithm.
func gcd(x, y Int) Int {
	u := new(big.Int).Abs(x.ref())
	v := new(big.Int).Abs(y.ref())
	for v.Sign() != 0 {
		u.Rem(u, v)
		u, v = v, u
	}
	return newIntUnsafe(u)
}

// LCM returns the least common multiple |a * b| / GCD(a, b).
// If any of the operands is 0, the result is 0.
//
// LCM returns an error if:
//   - any of the operands cannot be converted by [Coerce];
//   - the product |a * b| is outside of the safe range and overflow checks
//     are enabled, even though the final result may be in range.
func (ctx Context) LCM(a, b any) (Int, error) {
	x, y, err := ctx.operands(a, b)
	if err != nil {
		return Int{}, fmt.Errorf("computing [lcm(%v, %v)]: %w", a, b, err)
	}
	z, err := ctx.lcm(x, y)
	if err != nil {
		return Int{}, fmt.Errorf("computing [lcm(%v, %v)]: %w", x, y, err)
	}
	return z, nil
}

func (ctx Context) lcm(x, y Int) (Int, error) {
	if x.IsZero() || y.IsZero() {
		return Int{}, nil
	}
	p, err := ctx.mul(x.Abs(), y.Abs())
	if err != nil {
		return Int{}, err
	}
	return newIntUnsafe(new(big.Int).Quo(p.ref(), gcd(x, y).ref())), nil
}

// Add returns the exact sum x + y.
// See also method [Context.Add].
//
// Add returns an error if the result is outside of the safe range.
func (x Int) Add(y Int) (Int, error) {
	return BaseContext.Add(x, y)
}

// Sub returns the exact difference x - y.
// See also method [Context.Sub].
//
// Sub returns an error if the result is outside of the safe range.
func (x Int) Sub(y Int) (Int, error) {
	return BaseContext.Sub(x, y)
}

// Mul returns the exact product x * y.
// See also method [Context.Mul].
//
// Mul returns an error if the result is outside of the safe range.
func (x Int) Mul(y Int) (Int, error) {
	return BaseContext.Mul(x, y)
}

// Quo returns the quotient x / y rounded to the nearest integer, with ties
// rounded to an even integer.
// See also methods [Int.QuoRem], [Int.Rem] and [Context.Quo].
//
// Quo returns an error if the divisor is 0.
func (x Int) Quo(y Int) (Int, error) {
	return BaseContext.Quo(x, y)
}

// QuoRem returns the truncated quotient and remainder of x and y.
// See also method [Context.QuoRem].
//
// QuoRem returns an error if the divisor is 0.
func (x Int) QuoRem(y Int) (q, r Int, err error) {
	return BaseContext.QuoRem(x, y)
}

// Rem returns the Euclidean remainder of x and y.
// See also method [Context.Rem].
//
// Rem returns an error if the divisor is 0.
func (x Int) Rem(y Int) (Int, error) {
	return BaseContext.Rem(x, y)
}

// GCD returns the greatest common divisor of |x| and |y|.
func (x Int) GCD(y Int) Int {
	return gcd(x, y)
}

// LCM returns the least common multiple of x and y.
// See also method [Context.LCM].
//
// LCM returns an error if the product |x * y| is outside of the safe range.
func (x Int) LCM(y Int) (Int, error) {
	return BaseContext.LCM(x, y)
}
