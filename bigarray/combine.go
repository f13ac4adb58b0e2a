package bigarray

import (
	"github.com/govalues/bignum"
)

// Combine is an associative operator used to aggregate array elements.
// It returns an error if the aggregate cannot be computed, for example
// when a sum leaves the safe range.
type Combine func(a, b bignum.Int) (bignum.Int, error)

// Max returns the larger of a and b.
func Max(a, b bignum.Int) (bignum.Int, error) {
	return a.Max(b), nil
}

// Min returns the smaller of a and b.
func Min(a, b bignum.Int) (bignum.Int, error) {
	return a.Min(b), nil
}

// Sum returns a + b.
// It fails if the sum is outside of the safe range.
func Sum(a, b bignum.Int) (bignum.Int, error) {
	return a.Add(b)
}

// GCD returns the greatest common divisor of a and b.
func GCD(a, b bignum.Int) (bignum.Int, error) {
	return a.GCD(b), nil
}

// SumWith returns a sum operator that adds elements using the given context.
// For example, the context may disable overflow checks.
func SumWith(ctx bignum.Context) Combine {
	return func(a, b bignum.Int) (bignum.Int, error) {
		return ctx.Add(a, b)
	}
}

// ParseCombine returns the operator with the given name:
// "max", "min", "sum" or "gcd".
func ParseCombine(name string) (Combine, error) {
	switch name {
	case "max":
		return Max, nil
	case "min":
		return Min, nil
	case "sum":
		return Sum, nil
	case "gcd":
		return GCD, nil
	}
	return nil, &bignum.Error{
		Kind: bignum.ErrValidation,
		Code: bignum.CodeInvalidArgument,
		Msg:  "unknown aggregate " + name,
	}
}

// repeat returns the aggregate of k copies of v, where k >= 1.
// It uses O(log k) calls of c.
func repeat(c Combine, v bignum.Int, k int) (bignum.Int, error) {
	var (
		z    bignum.Int
		have bool
		err  error
	)
	p := v
	for {
		if k&1 == 1 {
			if have {
				z, err = c(z, p)
				if err != nil {
					return bignum.Int{}, err
				}
			} else {
				z, have = p, true
			}
		}
		k >>= 1
		if k == 0 {
			return z, nil
		}
		p, err = c(p, p)
		if err != nil {
			return bignum.Int{}, err
		}
	}
}
