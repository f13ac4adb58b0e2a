package bignum

import (
	"fmt"
	"math/big"
)

var (
	intOne              = NewInt(1)
	intMaxPowerExponent = NewInt(MaxPowerExponent)
	intMaxTetration     = NewInt(MaxTetrationHeight)
)

// Pow returns base raised to the power of exp.
// It uses binary exponentiation, so the number of multiplications is
// proportional to the bit length of the exponent.
// Pow(0, 0) = 1.
//
// Pow returns an error if:
//   - any of the operands cannot be converted by [Coerce];
//   - the exponent is negative;
//   - |base| is greater than [MaxPowerBase] or exp is greater than [MaxPowerExponent];
//   - the result is outside of the safe range and overflow checks are enabled.
func (ctx Context) Pow(base, exp any) (Int, error) {
	x, e, err := ctx.operands(base, exp)
	if err != nil {
		return Int{}, fmt.Errorf("computing [%v^%v]: %w", base, exp, err)
	}
	z, err := ctx.pow(x, e)
	if err != nil {
		return Int{}, fmt.Errorf("computing [%v^%v]: %w", x, e, err)
	}
	return z, nil
}

func (ctx Context) pow(x, e Int) (Int, error) {
	if e.IsNeg() {
		return Int{}, newError(ErrValidation, CodeNegativeExponent, "negative exponent %v", e)
	}
	if e.Cmp(intMaxPowerExponent) > 0 {
		return Int{}, newError(ErrComputationLimit, CodePowerExponentLimit, "exponent %v is greater than %v", e, MaxPowerExponent)
	}
	if x.CmpAbs(MaxPowerBase()) > 0 {
		return Int{}, newError(ErrComputationLimit, CodePowerBaseLimit, "base has %v bits, more than %v", x.BitLen(), MaxBits)
	}
	n, err := smallInt(e, ErrComputationLimit, CodePowerExponentLimit, "exponent")
	if err != nil {
		return Int{}, err
	}

	// Special cases
	switch {
	case n == 0:
		return intOne, nil
	case x.IsZero() || n == 1:
		return x, nil
	case x.CmpAbs(intOne) == 0:
		if x.IsNeg() && n%2 == 0 {
			return intOne, nil
		}
		return x, nil
	}

	// |x|^n >= 2^((bitlen(x) - 1) * n)
	neg := x.IsNeg() && n%2 == 1
	if err := ctx.checkBits((x.BitLen()-1)*n+1, neg); err != nil {
		return Int{}, err
	}

	// Binary exponentiation
	z, b := intOne, x
	for n > 0 {
		if n&1 == 1 {
			z, err = ctx.mul(z, b)
			if err != nil {
				return Int{}, err
			}
		}
		n >>= 1
		if n > 0 {
			b, err = ctx.mul(b, b)
			if err != nil {
				return Int{}, err
			}
		}
	}
	return z, nil
}

// Sqrt returns the integer square root of a, that is the largest integer r
// such that r * r <= a.
// See also method [Context.NthRoot].
//
// Sqrt returns an error if:
//   - the operand cannot be converted by [Coerce];
//   - the operand is negative;
//   - Newton's method does not converge within [Context.MaxSteps] iterations.
func (ctx Context) Sqrt(a any) (Int, error) {
	x, err := ctx.operand(a)
	if err != nil {
		return Int{}, fmt.Errorf("computing [sqrt(%v)]: %w", a, err)
	}
	z, err := ctx.nthRoot(x, 2)
	if err != nil {
		return Int{}, fmt.Errorf("computing [sqrt(%v)]: %w", x, err)
	}
	return z, nil
}

// NthRoot returns the integer n-th root of a, that is the largest integer r
// such that r^n <= a.
// It uses Newton's method starting from an estimate derived from the bit
// length of a.
//
// NthRoot returns an error if:
//   - any of the operands cannot be converted by [Coerce];
//   - the operand is negative;
//   - the degree is less than 1;
//   - Newton's method does not converge within [Context.MaxSteps] iterations.
func (ctx Context) NthRoot(a, n any) (Int, error) {
	x, d, err := ctx.operands(a, n)
	if err != nil {
		return Int{}, fmt.Errorf("computing [root(%v, %v)]: %w", a, n, err)
	}
	z, err := ctx.root(x, d)
	if err != nil {
		return Int{}, fmt.Errorf("computing [root(%v, %v)]: %w", x, d, err)
	}
	return z, nil
}

func (ctx Context) root(x, d Int) (Int, error) {
	if d.Sign() < 1 {
		return Int{}, newError(ErrValidation, CodeInvalidRootDegree, "degree %v is less than 1", d)
	}
	n, err := smallInt(d, ErrValidation, CodeInvalidRootDegree, "degree")
	if err != nil {
		return Int{}, err
	}
	return ctx.nthRoot(x, n)
}

func (ctx Context) nthRoot(x Int, n int) (Int, error) {
	if x.IsNeg() {
		return Int{}, newError(ErrValidation, CodeNegativeRoot, "root of negative number %v", x)
	}
	bits := x.BitLen()
	switch {
	case n == 1 || x.Cmp(intOne) <= 0:
		return x, nil
	case n >= bits:
		// 1 <= x < 2^bits <= 2^n
		return intOne, nil
	}

	// Initial estimate 2^ceil(bits/n) is never less than the root.
	v := x.ref()
	xk := new(big.Int).Lsh(big.NewInt(1), uint((bits+n-1)/n))
	nn := big.NewInt(int64(n))
	n1 := big.NewInt(int64(n - 1))
	e := big.NewInt(int64(n - 1))
	var t, y big.Int
	for step := 0; ; step++ {
		if step >= ctx.steps() {
			return Int{}, newError(ErrComputationLimit, CodeStepLimit, "root did not converge in %v steps", ctx.steps())
		}
		// y = ((n - 1) * xk + x / xk^(n - 1)) / n
		t.Exp(xk, e, nil)
		t.Quo(v, &t)
		y.Mul(n1, xk)
		y.Add(&y, &t)
		y.Quo(&y, nn)
		if y.Cmp(xk) >= 0 {
			return newIntUnsafe(xk), nil
		}
		xk.Set(&y)
	}
}

// Tetration returns the right-associative exponent tower base^(base^(...^base))
// of the given height.
// Tetration(base, 0) = 1 and Tetration(base, 1) = base.
//
// Tetration returns an error if:
//   - any of the operands cannot be converted by [Coerce];
//   - the base or the height is negative;
//   - the height is greater than [MaxTetrationHeight];
//   - any exponent of the tower is greater than [MaxPowerExponent];
//   - the result is outside of the safe range and overflow checks are enabled.
func (ctx Context) Tetration(base, height any) (Int, error) {
	x, h, err := ctx.operands(base, height)
	if err != nil {
		return Int{}, fmt.Errorf("computing [%v^^%v]: %w", base, height, err)
	}
	z, err := ctx.tetration(x, h)
	if err != nil {
		return Int{}, fmt.Errorf("computing [%v^^%v]: %w", x, h, err)
	}
	return z, nil
}

func (ctx Context) tetration(x, h Int) (Int, error) {
	if x.IsNeg() {
		return Int{}, newError(ErrValidation, CodeNegativeBase, "negative base %v", x)
	}
	height, err := towerHeight(h, 0)
	if err != nil {
		return Int{}, err
	}
	if height == 0 {
		return intOne, nil
	}
	z := x
	for i := 1; i < height; i++ {
		z, err = ctx.pow(x, z)
		if err != nil {
			return Int{}, err
		}
	}
	return z, nil
}

// towerHeight validates the height of an exponent tower.
func towerHeight(h Int, minHeight int64) (int, error) {
	if h.Cmp(NewInt(minHeight)) < 0 {
		return 0, newError(ErrValidation, CodeInvalidHeight, "height %v is less than %v", h, minHeight)
	}
	if h.Cmp(intMaxTetration) > 0 {
		return 0, newError(ErrComputationLimit, CodeTetrationLimit, "height %v is greater than %v", h, MaxTetrationHeight)
	}
	return smallInt(h, ErrValidation, CodeInvalidHeight, "height")
}

// SuperRoot returns the largest integer x such that x^^height <= value.
// If value is an exact tower, the result is its base, so that
// SuperRoot(Tetration(b, h), h) = b.
// The root is found by a binary search, since tetration cannot be inverted
// by Newton's method.
//
// SuperRoot returns an error if:
//   - any of the operands cannot be converted by [Coerce];
//   - the value is less than 1;
//   - the height is less than 1 or greater than [MaxTetrationHeight];
//   - the search does not finish within [Context.MaxSteps] probes.
func (ctx Context) SuperRoot(value, height any) (Int, error) {
	v, h, err := ctx.operands(value, height)
	if err != nil {
		return Int{}, fmt.Errorf("computing [superroot(%v, %v)]: %w", value, height, err)
	}
	z, err := ctx.superRoot(v, h)
	if err != nil {
		return Int{}, fmt.Errorf("computing [superroot(%v, %v)]: %w", v, h, err)
	}
	return z, nil
}

func (ctx Context) superRoot(v, h Int) (Int, error) {
	if v.Sign() < 1 {
		return Int{}, newError(ErrValidation, CodeInvalidArgument, "value %v is less than 1", v)
	}
	height, err := towerHeight(h, 1)
	if err != nil {
		return Int{}, err
	}
	if height == 1 || v.Cmp(intOne) == 0 {
		return v, nil
	}

	// For height >= 2, x^^height >= x^x >= 2^x, so the root is less than
	// bitlen(v) + 1, which is never greater than v.
	lo, hi := 1, v.BitLen()+1
	for step := 0; lo < hi; step++ {
		if step >= ctx.steps() {
			return Int{}, newError(ErrComputationLimit, CodeStepLimit, "search did not finish in %v steps", ctx.steps())
		}
		mid := lo + (hi-lo+1)/2
		if cmpTower(mid, height, v) <= 0 {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return NewInt(int64(lo)), nil
}

// cmpTower compares x^^height with v, where x >= 1 and v >= 1.
// The tower is evaluated only while its exponents stay below bitlen(v),
// since otherwise the next level already exceeds v.
func cmpTower(x, height int, v Int) int {
	if x == 1 {
		return intOne.Cmp(v)
	}
	bx := big.NewInt(int64(x))
	bits := big.NewInt(int64(v.BitLen()))
	t := new(big.Int).Set(bx)
	for i := 1; i < height; i++ {
		// x^t >= 2^t > v when t >= bitlen(v)
		if t.Cmp(bits) >= 0 {
			return 1
		}
		t.Exp(bx, t, nil)
	}
	return t.Cmp(v.ref())
}

// Pow returns x raised to the power of n.
// See also method [Context.Pow].
//
// Pow returns an error if:
//   - the exponent is negative or greater than [MaxPowerExponent];
//   - the result is outside of the safe range.
func (x Int) Pow(n int) (Int, error) {
	return BaseContext.Pow(x, n)
}

// Sqrt returns the integer square root of x.
// See also method [Context.Sqrt].
//
// Sqrt returns an error if x is negative.
func (x Int) Sqrt() (Int, error) {
	return BaseContext.Sqrt(x)
}

// NthRoot returns the integer n-th root of x.
// See also method [Context.NthRoot].
//
// NthRoot returns an error if x is negative or n is less than 1.
func (x Int) NthRoot(n int) (Int, error) {
	return BaseContext.NthRoot(x, n)
}

// Tetration returns the exponent tower of x with the given height.
// See also method [Context.Tetration].
func (x Int) Tetration(height int) (Int, error) {
	return BaseContext.Tetration(x, height)
}

// SuperRoot returns the largest integer r such that r^^height <= x.
// See also method [Context.SuperRoot].
func (x Int) SuperRoot(height int) (Int, error) {
	return BaseContext.SuperRoot(x, height)
}
