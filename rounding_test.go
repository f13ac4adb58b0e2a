package bignum

import (
	"errors"
	"math/big"
	"testing"

	"gopkg.in/inf.v0"
)

func TestParseRoundingMode(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			s    string
			want RoundingMode
		}{
			{"HALF_EVEN", RoundHalfEven},
			{"half-even", RoundHalfEven},
			{"halfeven", RoundHalfEven},
			{"Half_Up", RoundHalfUp},
			{"half down", RoundHalfDown},
			{"FLOOR", RoundFloor},
			{"ceil", RoundCeil},
			{" down ", RoundDown},
			{"Up", RoundUp},
		}
		for _, tt := range tests {
			got, err := ParseRoundingMode(tt.s)
			if err != nil {
				t.Errorf("ParseRoundingMode(%q) failed: %v", tt.s, err)
				continue
			}
			if got != tt.want {
				t.Errorf("ParseRoundingMode(%q) = %v, want %v", tt.s, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := []string{"", "HALF", "nearest", "half_odd", "UPP"}
		for _, s := range tests {
			_, err := ParseRoundingMode(s)
			if !errors.Is(err, ErrValidation) {
				t.Errorf("ParseRoundingMode(%q) error = %v, want %v", s, err, ErrValidation)
			}
			if got := Code(err); got != CodeInvalidRounding {
				t.Errorf("Code(ParseRoundingMode(%q)) = %v, want %v", s, got, CodeInvalidRounding)
			}
		}
	})
}

func TestRoundingMode_String(t *testing.T) {
	for _, m := range RoundingModes() {
		if !m.IsValid() {
			t.Errorf("%v.IsValid() = false, want true", m)
		}
		got, err := ParseRoundingMode(m.String())
		if err != nil {
			t.Errorf("ParseRoundingMode(%q) failed: %v", m, err)
			continue
		}
		if got != m {
			t.Errorf("ParseRoundingMode(%q) = %v, want %v", m, got, m)
		}
	}
	m := RoundingMode(7)
	if m.IsValid() {
		t.Errorf("%v.IsValid() = true, want false", m)
	}
	if got, want := m.String(), "RoundingMode(7)"; got != want {
		t.Errorf("RoundingMode(7).String() = %q, want %q", got, want)
	}
	if _, err := m.MarshalText(); err == nil {
		t.Errorf("RoundingMode(7).MarshalText() did not fail")
	}
}

func TestRoundingMode_UnmarshalText(t *testing.T) {
	var m RoundingMode
	if err := m.UnmarshalText([]byte("ceil")); err != nil {
		t.Fatalf("UnmarshalText(\"ceil\") failed: %v", err)
	}
	if m != RoundCeil {
		t.Errorf("UnmarshalText(\"ceil\") = %v, want %v", m, RoundCeil)
	}
	if err := m.UnmarshalText([]byte("sideways")); err == nil {
		t.Errorf("UnmarshalText(\"sideways\") did not fail")
	}
}

func TestRoundingMode_roundQuo(t *testing.T) {
	// Each row holds the results of rounding v / 10 to an integer in the order
	// of RoundingModes: HALF_EVEN, HALF_UP, HALF_DOWN, FLOOR, CEIL, DOWN, UP.
	tests := []struct {
		v    int64
		want [7]int64
	}{
		{25, [7]int64{2, 3, 2, 2, 3, 2, 3}},
		{15, [7]int64{2, 2, 1, 1, 2, 1, 2}},
		{11, [7]int64{1, 1, 1, 1, 2, 1, 2}},
		{16, [7]int64{2, 2, 2, 1, 2, 1, 2}},
		{10, [7]int64{1, 1, 1, 1, 1, 1, 1}},
		{5, [7]int64{0, 1, 0, 0, 1, 0, 1}},
		{0, [7]int64{0, 0, 0, 0, 0, 0, 0}},
		{-5, [7]int64{0, -1, 0, -1, 0, 0, -1}},
		{-11, [7]int64{-1, -1, -1, -2, -1, -1, -2}},
		{-15, [7]int64{-2, -2, -1, -2, -1, -1, -2}},
		{-16, [7]int64{-2, -2, -2, -2, -1, -1, -2}},
		{-25, [7]int64{-2, -3, -2, -3, -2, -2, -3}},
	}
	for _, tt := range tests {
		for i, m := range RoundingModes() {
			n, d := big.NewInt(tt.v), big.NewInt(10)
			q, r := new(big.Int).QuoRem(n, d, new(big.Int))
			got := m.roundQuo(q, r, d)
			if got.Int64() != tt.want[i] {
				t.Errorf("%v.roundQuo(%v / %v) = %v, want %v", m, tt.v, d, got, tt.want[i])
			}
		}
	}
}

var infRounders = map[RoundingMode]inf.Rounder{
	RoundHalfEven: inf.RoundHalfEven,
	RoundHalfUp:   inf.RoundHalfUp,
	RoundHalfDown: inf.RoundHalfDown,
	RoundFloor:    inf.RoundFloor,
	RoundCeil:     inf.RoundCeil,
	RoundDown:     inf.RoundDown,
	RoundUp:       inf.RoundUp,
}

func TestScaledDivision_Inf(t *testing.T) {
	nums := []string{"0", "1", "-1", "2", "7", "-7", "10", "25", "-25", "99", "12345678901234567890", "-98765432109876543210"}
	dens := []string{"1", "-1", "2", "3", "-3", "4", "7", "8", "-16", "1000", "999999999999"}
	for _, ns := range nums {
		for _, ds := range dens {
			for _, prec := range []int{0, 1, 2, 5, 20} {
				for _, m := range RoundingModes() {
					num, den := MustParseInt(ns), MustParseInt(ds)
					got, err := ScaledDivision(num, den, prec, m)
					if err != nil {
						t.Errorf("ScaledDivision(%v, %v, %v, %v) failed: %v", num, den, prec, m, err)
						continue
					}
					x, y := inf.NewDecBig(num.Big(), 0), inf.NewDecBig(den.Big(), 0)
					want := new(inf.Dec).QuoRound(x, y, inf.Scale(prec), infRounders[m])
					if s := (Scaled{unscaled: got, prec: prec}); s.Dec().Cmp(want) != 0 {
						t.Errorf("ScaledDivision(%v, %v, %v, %v) = %v, want %v", num, den, prec, m, s, want)
					}
				}
			}
		}
	}
}
