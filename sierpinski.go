package pascal

import (
	"math/big"
	"strings"
)

// SierpinskiNumber reduces every entry of t mod 2, concatenates the digits in
// table order and reads the result as a base 2 integer. The first digit is
// C(0, 0) = 1, so the result has exactly t.Len() bits.
func SierpinskiNumber(t Table) *big.Int {
	var sb strings.Builder
	sb.Grow(len(t.coefs))
	for _, c := range t.coefs {
		sb.WriteByte('0' + byte(c&1))
	}

	s, ok := new(big.Int).SetString(sb.String(), 2)
	if !ok {
		panic("pascal: empty table")
	}
	return s
}
