package bignum

import "math/big"

const (
	MaxPrecision        = 100       // maximum number of fractional digits of a scaled value
	MaxComputationSteps = 1000      // default iteration bound of Newton and search loops
	MaxBits             = 1024      // bit length of the largest value accepted by overflow checks
	MaxTetrationHeight  = 8         // maximum height of an exponent tower
	MaxArraySize        = 1_000_000 // maximum capacity of a bigarray.Array
	MaxPowerExponent    = 1 << 20   // maximum exponent accepted by Pow
)

// maxSafe and minSafe are shared by every Int returned from MaxSafeInteger
// and MinSafeInteger, they must never be modified.
var (
	maxSafe = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), MaxBits), big.NewInt(1))
	minSafe = new(big.Int).Neg(maxSafe)
)

// MaxSafeInteger returns the largest value accepted when overflow checks are
// enabled, which is 2^[MaxBits] - 1.
func MaxSafeInteger() Int {
	return Int{v: maxSafe}
}

// MinSafeInteger returns the smallest value accepted when overflow checks are
// enabled, which is -(2^[MaxBits] - 1).
func MinSafeInteger() Int {
	return Int{v: minSafe}
}

// MaxPowerBase returns the largest absolute value of a base accepted by Pow.
func MaxPowerBase() Int {
	return MaxSafeInteger()
}
