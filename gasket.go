package pascal

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"math/big"

	"github.com/32bitkid/bitreader"
	"github.com/bits-and-blooms/bitset"
)

// Gasket is a table reduced mod 2: bit i is set when entry i of the
// corresponding Table is odd. The odd entries of Pascal's Triangle trace the
// Sierpinski gasket.
type Gasket struct {
	// rows is the number of triangle rows covered.
	rows int
	// size is the number of bits, always Size(rows).
	size int
	// parity holds one bit per table entry, in table order.
	parity *bitset.BitSet
}

// NewGasket reduces t mod 2.
func NewGasket(t Table) *Gasket {
	parity := bitset.New(uint(len(t.coefs)))
	for i, c := range t.coefs {
		if c&1 == 1 {
			parity.Set(uint(i))
		}
	}
	return &Gasket{
		rows:   t.rows,
		size:   len(t.coefs),
		parity: parity,
	}
}

// GasketFromNumber decodes a Sierpinski number back into its mod 2 table.
// The bit length of s must be the size of some table.
func GasketFromNumber(s *big.Int) (*Gasket, error) {
	if s.Sign() <= 0 {
		return nil, errors.New("pascal: sierpinski number must be positive")
	}
	size := s.BitLen()
	rows, ok := rowsForSize(size)
	if !ok {
		return nil, fmt.Errorf("pascal: %d bits is not the size of any table", size)
	}

	buf := s.Bytes()
	br := bitreader.NewReader(bytes.NewReader(buf))

	// Bytes is big endian, so the padding sits in front of the leading 1.
	if err := br.Skip(uint(8*len(buf) - size)); err != nil {
		return nil, fmt.Errorf("pascal: skipping padding: %w", err)
	}

	parity := bitset.New(uint(size))
	for i := 0; i < size; i++ {
		odd, err := br.Read1()
		if err != nil {
			return nil, fmt.Errorf("pascal: reading bit %d: %w", i, err)
		}
		if odd {
			parity.Set(uint(i))
		}
	}

	return &Gasket{
		rows:   rows,
		size:   size,
		parity: parity,
	}, nil
}

// rowsForSize inverts Size.
func rowsForSize(size int) (int, bool) {
	for rows := 1; Size(rows) <= size; rows++ {
		if Size(rows) == size {
			return rows, true
		}
	}
	return 0, false
}

// Number packs the parity bits into a Sierpinski number, first entry most
// significant. It equals SierpinskiNumber of the source table.
func (g *Gasket) Number() *big.Int {
	s := new(big.Int)
	for i, ok := g.parity.NextSet(0); ok; i, ok = g.parity.NextSet(i + 1) {
		s.SetBit(s, g.size-1-int(i), 1)
	}
	return s
}

// Words returns the Sierpinski number as 32-bit words, most significant
// first. The first word is zero padded on the left.
func (g *Gasket) Words() []uint32 {
	n := (g.size + 31) / 32
	buf := g.Number().FillBytes(make([]byte, 4*n))

	words := make([]uint32, n)
	for i := range words {
		words[i] = binary.BigEndian.Uint32(buf[4*i:])
	}
	return words
}

// WordsDeclaration formats the Sierpinski number of g as a GLSL array:
//
//	uint[W] SIERPINSKI = uint[W](0x...u, ...);
func WordsDeclaration(g *Gasket) string {
	words := g.Words()
	vals := make([]string, len(words))
	for i, w := range words {
		vals[i] = fmt.Sprintf("0x%08Xu", w)
	}
	return declare("uint", "SIERPINSKI", vals)
}

// Access returns true if table entry i is odd.
func (g *Gasket) Access(i int) bool {
	if i < 0 || i >= g.size {
		panic("unable to access bit larger than size")
	}
	return g.parity.Test(uint(i))
}

// Odd reports whether C(n, k) is odd.
func (g *Gasket) Odd(n, k int) bool {
	return g.parity.Test(uint(position(g.rows, n, k)))
}

// Rank1 returns the number of odd entries before entry i.
func (g *Gasket) Rank1(i int) int {
	if i <= 0 {
		return 0
	}
	return int(g.parity.Rank(uint(i - 1)))
}

// Rank0 returns the number of even entries before entry i.
func (g *Gasket) Rank0(i int) int {
	if i <= 0 {
		return 0
	}
	if i > g.size {
		i = g.size
	}
	return i - g.Rank1(i)
}

// Select1 returns the index of the jth odd entry, counting from 1.
func (g *Gasket) Select1(j int) int {
	if j < 1 || j > g.Count() {
		panic("pascal: select out of range")
	}
	return int(g.parity.Select(uint(j - 1)))
}

// Count returns the number of odd entries.
func (g *Gasket) Count() int {
	return int(g.parity.Count())
}

// Size returns the number of entries in g.
func (g *Gasket) Size() int {
	return g.size
}

// Rows returns the number of triangle rows covered by g.
func (g *Gasket) Rows() int {
	return g.rows
}
