package pascal

import (
	"fmt"
	"strconv"
	"strings"
)

// MaxRows is the largest row count whose coefficients all fit in a uint64.
const MaxRows = 68

// Table holds the coefficients C(n, k) for n < Rows() and k <= n/2, rows
// ascending and k ascending within a row. The other half of each row
// follows from C(n, k) = C(n, n-k).
type Table struct {
	rows  int
	coefs []uint64
}

// Offset returns the position of C(n, 0) in a table.
// It is the sum of the per-row counts n/2+1 over all earlier rows.
func Offset(n int) int {
	if n%2 == 0 {
		return (n / 2) * (n/2 + 1)
	}
	return ((n + 1) / 2) * ((n + 1) / 2)
}

// Size returns the number of entries in a table with the given number of
// rows. Odd row counts are allowed.
func Size(rows int) int {
	return Offset(rows)
}

// BuildTable computes the table for rows 0 through rows-1.
func BuildTable(rows int) (Table, error) {
	if rows < 1 || rows > MaxRows {
		return Table{}, fmt.Errorf("pascal: rows must be in [1, %d], got %d", MaxRows, rows)
	}

	coefs := make([]uint64, 0, Size(rows))
	for n := 0; n < rows; n++ {
		for k := 0; k <= n/2; k++ {
			coefs = append(coefs, Choose(uint64(n), uint64(k)))
		}
	}
	return Table{rows: rows, coefs: coefs}, nil
}

// Rows returns the number of triangle rows stored in t.
func (t Table) Rows() int {
	return t.rows
}

// Len returns the number of stored coefficients.
func (t Table) Len() int {
	return len(t.coefs)
}

// Coefs returns a copy of the stored coefficients in table order.
func (t Table) Coefs() []uint64 {
	return append([]uint64(nil), t.coefs...)
}

// At returns C(n, k) from the table.
func (t Table) At(n, k int) uint64 {
	return t.coefs[t.index(n, k)]
}

func (t Table) index(n, k int) int {
	return position(t.rows, n, k)
}

// position maps (n, k) to its index in a table of the given rows.
func position(rows, n, k int) int {
	if n < 0 || n >= rows {
		panic("pascal: row outside of table")
	}
	if k < 0 || k > n {
		panic("pascal: k out of range for row")
	}
	if k > n/2 {
		k = n - k
	}
	return Offset(n) + k
}

// Declaration formats t as a GLSL array declaration:
//
//	int[N] BCOEFFS = int[N](v0, v1, ...);
func Declaration(t Table) string {
	vals := make([]string, len(t.coefs))
	for i, c := range t.coefs {
		vals[i] = strconv.FormatUint(c, 10)
	}
	return declare("int", "BCOEFFS", vals)
}

func declare(typ, name string, vals []string) string {
	return fmt.Sprintf("%s[%d] %s = %s[%d](%s);", typ, len(vals), name, typ, len(vals), strings.Join(vals, ", "))
}
