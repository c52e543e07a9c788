package pascal

import (
	"math/big"
	"testing"
)

func TestCorrect(t *testing.T) {
	z := big.NewInt(0)
	var n, k uint64
	for n = 0; n < MaxRows; n++ {
		for k = 0; k <= n; k++ {
			if Choose(n, k) != z.Binomial(int64(n), int64(k)).Uint64() {
				t.Fatalf("Choose is wrong for %d,%d. expected %d, got %d", n, k, z.Binomial(int64(n), int64(k)).Uint64(), Choose(n, k))
			}
		}
	}
}

func TestKnownValues(t *testing.T) {
	tests := []struct {
		n, k, want uint64
	}{
		{0, 0, 1},
		{1, 0, 1},
		{3, 2, 3},
		{4, 1, 4},
		{4, 2, 6},
		{9, 4, 126},
		{10, 3, 120},
		{15, 3, 455},
		{15, 6, 5005},
		{15, 11, 1365},
		{67, 33, 14226520737620288370},
	}
	for _, tt := range tests {
		if got := Choose(tt.n, tt.k); got != tt.want {
			t.Errorf("Choose(%d, %d): expected %d; got %d", tt.n, tt.k, tt.want, got)
		}
	}
}

func TestSymmetry(t *testing.T) {
	var n, k uint64
	for n = 0; n <= 20; n++ {
		for k = 0; k <= n; k++ {
			if Choose(n, k) != Choose(n, n-k) {
				t.Errorf("C(%d,%d) = %d but C(%d,%d) = %d", n, k, Choose(n, k), n, n-k, Choose(n, n-k))
			}
		}
	}
}

func TestChooseBig(t *testing.T) {
	z := big.NewInt(0)
	for n := int64(0); n < 140; n++ {
		for k := int64(0); k <= n; k++ {
			if ChooseBig(n, k).Cmp(z.Binomial(n, k)) != 0 {
				t.Fatalf("ChooseBig is wrong for %d,%d. expected %s, got %s", n, k, z.Binomial(n, k), ChooseBig(n, k))
			}
		}
	}
}

func TestChoosePanics(t *testing.T) {
	tests := []struct {
		name string
		n, k uint64
	}{
		{"k>n", 3, 4},
		{"overflow", 68, 34},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("expected Choose(%d, %d) to panic", tt.n, tt.k)
				}
			}()
			Choose(tt.n, tt.k)
		})
	}
}

func BenchmarkChoose(b *testing.B) {
	var sum uint64
	for i := 0; i < b.N; i++ {
		sum += Choose(63, uint64(i%64))
	}
	_ = sum
}
