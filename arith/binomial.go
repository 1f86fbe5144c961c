package arith

import "math/big"

// Factorial returns n! as a big integer.
func Factorial(n int) *big.Int {
	return new(big.Int).MulRange(1, int64(n))
}

// Binomial returns the binomial coefficient C(n, k), zero when k is out of
// range.
func Binomial(n, k int) *big.Int {
	if k < 0 || k > n {
		return big.NewInt(0)
	}
	return new(big.Int).Binomial(int64(n), int64(k))
}
