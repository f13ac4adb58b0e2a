package bigarray

import (
	"errors"
	"testing"

	"github.com/govalues/bignum"
)

func TestCombine(t *testing.T) {
	tests := []struct {
		name    string
		combine Combine
		a, b    int64
		want    int64
	}{
		{"max", Max, -3, 2, 2},
		{"max", Max, 7, 7, 7},
		{"min", Min, -3, 2, -3},
		{"sum", Sum, -3, 2, -1},
		{"gcd", GCD, 12, -18, 6},
		{"gcd", GCD, 0, 5, 5},
	}
	for _, tt := range tests {
		a, b := bignum.NewInt(tt.a), bignum.NewInt(tt.b)
		got, err := tt.combine(a, b)
		if err != nil {
			t.Errorf("%v(%v, %v) failed: %v", tt.name, a, b, err)
			continue
		}
		if want := bignum.NewInt(tt.want); !got.Equal(want) {
			t.Errorf("%v(%v, %v) = %v, want %v", tt.name, a, b, got, want)
		}
	}
}

func TestSum_Overflow(t *testing.T) {
	a := bignum.MaxSafeInteger()
	_, err := Sum(a, bignum.NewInt(1))
	if !errors.Is(err, bignum.ErrOverflow) {
		t.Errorf("Sum(%v, 1) error = %v, want %v", a, err, bignum.ErrOverflow)
	}
	sum := SumWith(bignum.BaseContext.WithOverflowCheck(false))
	got, err := sum(a, bignum.NewInt(1))
	if err != nil {
		t.Fatalf("SumWith(unchecked)(%v, 1) failed: %v", a, err)
	}
	if got.BitLen() != bignum.MaxBits+1 {
		t.Errorf("SumWith(unchecked)(%v, 1).BitLen() = %v, want %v", a, got.BitLen(), bignum.MaxBits+1)
	}
}

func TestParseCombine(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		for _, name := range []string{"max", "min", "sum", "gcd"} {
			c, err := ParseCombine(name)
			if err != nil {
				t.Errorf("ParseCombine(%q) failed: %v", name, err)
				continue
			}
			if c == nil {
				t.Errorf("ParseCombine(%q) = nil", name)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		for _, name := range []string{"", "avg", "MAX"} {
			_, err := ParseCombine(name)
			if !errors.Is(err, bignum.ErrValidation) {
				t.Errorf("ParseCombine(%q) error = %v, want %v", name, err, bignum.ErrValidation)
			}
		}
	})
}

func TestRepeat(t *testing.T) {
	v := bignum.NewInt(-3)
	for k := 1; k <= 40; k++ {
		got, err := repeat(Sum, v, k)
		if err != nil {
			t.Errorf("repeat(Sum, %v, %v) failed: %v", v, k, err)
			continue
		}
		if want := bignum.NewInt(-3 * int64(k)); !got.Equal(want) {
			t.Errorf("repeat(Sum, %v, %v) = %v, want %v", v, k, got, want)
		}
		for _, c := range []Combine{Max, Min} {
			got, err := repeat(c, v, k)
			if err != nil {
				t.Errorf("repeat(%v, %v) failed: %v", v, k, err)
				continue
			}
			if !got.Equal(v) {
				t.Errorf("repeat(%v, %v) = %v, want %v", v, k, got, v)
			}
		}
	}

	_, err := repeat(Sum, bignum.MaxSafeInteger(), 2)
	if !errors.Is(err, bignum.ErrOverflow) {
		t.Errorf("repeat(Sum, MaxSafeInteger, 2) error = %v, want %v", err, bignum.ErrOverflow)
	}
}
