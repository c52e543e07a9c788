// Package pascal computes binomial coefficients and stores Pascal's Triangle
// in a half-triangle table, along with the parity ("Sierpinski") encodings
// derived from it.
package pascal

import (
	"math/big"
	"math/bits"
)

// Choose returns the binomial coefficient C(n, k).
//
// It uses the multiplicative recurrence C(n, i+1) = C(n, i) * (n-i) / (i+1).
// The product is formed in 128 bits so the division is always exact. Choose
// panics if k > n or if the result does not fit in a uint64.
func Choose(n, k uint64) uint64 {
	if k > n {
		panic("pascal: k larger than n")
	}
	if k > n-k {
		k = n - k
	}

	c := uint64(1)
	for i := uint64(0); i < k; i++ {
		hi, lo := bits.Mul64(c, n-i)
		if hi >= i+1 {
			panic("pascal: binomial coefficient overflows uint64")
		}
		c, _ = bits.Div64(hi, lo, i+1)
	}
	return c
}

// ChooseBig is Choose for arbitrarily large n.
func ChooseBig(n, k int64) *big.Int {
	if k < 0 || k > n {
		panic("pascal: k out of range")
	}
	if k > n-k {
		k = n - k
	}

	c := big.NewInt(1)
	var num, den big.Int
	for i := int64(0); i < k; i++ {
		c.Mul(c, num.SetInt64(n-i))
		c.Quo(c, den.SetInt64(i+1))
	}
	return c
}
