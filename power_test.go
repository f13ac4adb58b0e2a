package bignum

import (
	"errors"
	"math/big"
	"testing"
)

func TestContext_Pow(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			base, exp any
			want      string
		}{
			{2, 10, "1024"},
			{-2, 3, "-8"},
			{-2, 4, "16"},
			{0, 0, "1"},
			{0, 5, "0"},
			{3, 0, "1"},
			{-7, 1, "-7"},
			{1, MaxPowerExponent, "1"},
			{-1, MaxPowerExponent, "1"},
			{-1, MaxPowerExponent - 1, "-1"},
			{10, 20, "100000000000000000000"},
			{"3", "40", "12157665459056928801"},
			{2, 1023, new(big.Int).Lsh(big.NewInt(1), 1023).String()},
			{-2, 1023, new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), 1023)).String()},
		}
		for _, tt := range tests {
			got, err := BaseContext.Pow(tt.base, tt.exp)
			if err != nil {
				t.Errorf("Pow(%v, %v) failed: %v", tt.base, tt.exp, err)
				continue
			}
			if got.String() != tt.want {
				t.Errorf("Pow(%v, %v) = %v, want %v", tt.base, tt.exp, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tooBig := new(big.Int).Lsh(big.NewInt(1), MaxBits)
		tests := map[string]struct {
			base, exp any
			want      error
			code      string
		}{
			"negative exponent": {2, -1, ErrValidation, CodeNegativeExponent},
			"exponent limit":    {2, MaxPowerExponent + 1, ErrComputationLimit, CodePowerExponentLimit},
			"huge exponent":     {1, "100000000000000000000000", ErrComputationLimit, CodePowerExponentLimit},
			"base limit":        {tooBig, 1, ErrComputationLimit, CodePowerBaseLimit},
			"overflow 1":        {2, 1024, ErrOverflow, CodeOverflow},
			"overflow 2":        {MaxSafeInteger(), 2, ErrOverflow, CodeOverflow},
			"overflow 3":        {3, 1000, ErrOverflow, CodeOverflow},
			"underflow":         {-2, 1025, ErrUnderflow, CodeUnderflow},
			"operand":           {"two", 2, ErrValidation, CodeInvalidNumber},
		}
		for name, tt := range tests {
			_, err := BaseContext.Pow(tt.base, tt.exp)
			if !errors.Is(err, tt.want) {
				t.Errorf("%v: Pow(%v, %v) error = %v, want %v", name, tt.base, tt.exp, err, tt.want)
				continue
			}
			if got := Code(err); got != tt.code {
				t.Errorf("%v: Code(Pow(%v, %v)) = %v, want %v", name, tt.base, tt.exp, got, tt.code)
			}
		}
	})

	t.Run("unchecked", func(t *testing.T) {
		got, err := BaseContext.WithOverflowCheck(false).Pow(2, 1024)
		if err != nil {
			t.Fatalf("Pow(2, 1024) failed: %v", err)
		}
		if got.BitLen() != 1025 {
			t.Errorf("Pow(2, 1024).BitLen() = %v, want 1025", got.BitLen())
		}
	})
}

func TestContext_Pow_Property(t *testing.T) {
	for a := int64(-3); a <= 12; a++ {
		want := NewInt(1)
		for n := 0; n <= 20; n++ {
			got, err := NewInt(a).Pow(n)
			if err != nil {
				t.Errorf("%v.Pow(%v) failed: %v", a, n, err)
				break
			}
			if !got.Equal(want) {
				t.Errorf("%v.Pow(%v) = %v, want %v", a, n, got, want)
			}
			want, err = want.Mul(NewInt(a))
			if err != nil {
				t.Errorf("%v.Mul(%v) failed: %v", want, a, err)
				break
			}
		}
	}
}

func TestContext_Sqrt(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			x, want string
		}{
			{"0", "0"},
			{"1", "1"},
			{"2", "1"},
			{"3", "1"},
			{"4", "2"},
			{"15", "3"},
			{"16", "4"},
			{"17", "4"},
			{"10000000000000000000000000000000000000000", "100000000000000000000"},
			{"99999999999999999999999999999999999999999", "316227766016837933199"},
		}
		for _, tt := range tests {
			x := MustParseInt(tt.x)
			got, err := x.Sqrt()
			if err != nil {
				t.Errorf("%v.Sqrt() failed: %v", x, err)
				continue
			}
			if got.String() != tt.want {
				t.Errorf("%v.Sqrt() = %v, want %v", x, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		_, err := BaseContext.Sqrt(-4)
		if !errors.Is(err, ErrValidation) || Code(err) != CodeNegativeRoot {
			t.Errorf("Sqrt(-4) error = %v, want %v", err, CodeNegativeRoot)
		}
	})
}

func TestContext_Sqrt_Property(t *testing.T) {
	check := func(x *big.Int) {
		r, err := BaseContext.Sqrt(x)
		if err != nil {
			t.Errorf("Sqrt(%v) failed: %v", x, err)
			return
		}
		rr := r.Big()
		lo := new(big.Int).Mul(rr, rr)
		rr.Add(rr, big.NewInt(1))
		hi := rr.Mul(rr, rr)
		if lo.Cmp(x) > 0 || hi.Cmp(x) <= 0 {
			t.Errorf("Sqrt(%v) = %v, want r^2 <= x < (r+1)^2", x, r)
		}
		if want := new(big.Int).Sqrt(x); r.Big().Cmp(want) != 0 {
			t.Errorf("Sqrt(%v) = %v, want %v", x, r, want)
		}
	}
	for i := int64(0); i <= 2000; i++ {
		check(big.NewInt(i))
	}
	x := big.NewInt(3)
	for i := 0; i < 300; i++ {
		check(x)
		check(new(big.Int).Sub(x, big.NewInt(1)))
		x = new(big.Int).Mul(x, big.NewInt(7))
		if x.BitLen() > MaxBits {
			break
		}
	}
	check(new(big.Int).Set(maxSafe))
}

func TestContext_NthRoot(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			x    string
			n    int
			want string
		}{
			{"27", 3, "3"},
			{"26", 3, "2"},
			{"1024", 10, "2"},
			{"1023", 10, "1"},
			{"1000000000000000000000000000000", 3, "10000000000"},
			{"999999999999999999999999999999", 3, "9999999999"},
			{"5", 1, "5"},
			{"100", 200, "1"},
			{"0", 5, "0"},
			{"1", 5, "1"},
		}
		for _, tt := range tests {
			x := MustParseInt(tt.x)
			got, err := x.NthRoot(tt.n)
			if err != nil {
				t.Errorf("%v.NthRoot(%v) failed: %v", x, tt.n, err)
				continue
			}
			if got.String() != tt.want {
				t.Errorf("%v.NthRoot(%v) = %v, want %v", x, tt.n, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]struct {
			ctx  Context
			x, n any
			want error
			code string
		}{
			"negative": {BaseContext, -8, 3, ErrValidation, CodeNegativeRoot},
			"degree 1": {BaseContext, 8, 0, ErrValidation, CodeInvalidRootDegree},
			"degree 2": {BaseContext, 8, -2, ErrValidation, CodeInvalidRootDegree},
			"degree 3": {BaseContext, 8, "100000000000000000000000", ErrValidation, CodeInvalidRootDegree},
			"steps":    {BaseContext.WithMaxSteps(1), "1000000000000000000000000000000", 3, ErrComputationLimit, CodeStepLimit},
		}
		for name, tt := range tests {
			_, err := tt.ctx.NthRoot(tt.x, tt.n)
			if !errors.Is(err, tt.want) {
				t.Errorf("%v: NthRoot(%v, %v) error = %v, want %v", name, tt.x, tt.n, err, tt.want)
				continue
			}
			if got := Code(err); got != tt.code {
				t.Errorf("%v: Code(NthRoot(%v, %v)) = %v, want %v", name, tt.x, tt.n, got, tt.code)
			}
		}
	})
}

func TestContext_NthRoot_Property(t *testing.T) {
	values := []string{"2", "8", "9", "80", "81", "1000", "123456789", "18446744073709551615", "18446744073709551616"}
	for _, s := range values {
		x := MustParseInt(s)
		for n := 1; n <= 12; n++ {
			r, err := x.NthRoot(n)
			if err != nil {
				t.Errorf("%v.NthRoot(%v) failed: %v", x, n, err)
				continue
			}
			e := big.NewInt(int64(n))
			lo := new(big.Int).Exp(r.Big(), e, nil)
			hi := new(big.Int).Exp(new(big.Int).Add(r.Big(), big.NewInt(1)), e, nil)
			if lo.Cmp(x.Big()) > 0 || hi.Cmp(x.Big()) <= 0 {
				t.Errorf("%v.NthRoot(%v) = %v, want r^n <= x < (r+1)^n", x, n, r)
			}
		}
	}
}

func TestContext_Tetration(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			base, height int
			want         string
		}{
			{2, 3, "16"},
			{2, 4, "65536"},
			{3, 2, "27"},
			{3, 3, "7625597484987"},
			{5, 1, "5"},
			{7, 0, "1"},
			{0, 0, "1"},
			{0, 1, "0"},
			{0, 2, "1"},
			{0, 3, "0"},
			{1, MaxTetrationHeight, "1"},
			{4, 3, new(big.Int).Lsh(big.NewInt(1), 512).String()},
		}
		for _, tt := range tests {
			x := NewInt(int64(tt.base))
			got, err := x.Tetration(tt.height)
			if err != nil {
				t.Errorf("%v.Tetration(%v) failed: %v", x, tt.height, err)
				continue
			}
			if got.String() != tt.want {
				t.Errorf("%v.Tetration(%v) = %v, want %v", x, tt.height, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]struct {
			base, height any
			want         error
			code         string
		}{
			"negative base":   {-2, 2, ErrValidation, CodeNegativeBase},
			"negative height": {2, -1, ErrValidation, CodeInvalidHeight},
			"height limit":    {2, MaxTetrationHeight + 1, ErrComputationLimit, CodeTetrationLimit},
			"overflow":        {2, 5, ErrOverflow, CodeOverflow},
			"exponent limit":  {3, 4, ErrComputationLimit, CodePowerExponentLimit},
		}
		for name, tt := range tests {
			_, err := BaseContext.Tetration(tt.base, tt.height)
			if !errors.Is(err, tt.want) {
				t.Errorf("%v: Tetration(%v, %v) error = %v, want %v", name, tt.base, tt.height, err, tt.want)
				continue
			}
			if got := Code(err); got != tt.code {
				t.Errorf("%v: Code(Tetration(%v, %v)) = %v, want %v", name, tt.base, tt.height, got, tt.code)
			}
		}
	})

	t.Run("unchecked", func(t *testing.T) {
		got, err := BaseContext.WithOverflowCheck(false).Tetration(2, 5)
		if err != nil {
			t.Fatalf("Tetration(2, 5) failed: %v", err)
		}
		if got.BitLen() != 65537 {
			t.Errorf("Tetration(2, 5).BitLen() = %v, want 65537", got.BitLen())
		}
	})
}

func TestContext_SuperRoot(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			value  string
			height int
			want   string
		}{
			{"16", 3, "2"},
			{"65536", 4, "2"},
			{"27", 2, "3"},
			{"7625597484987", 3, "3"},
			{"100", 2, "3"},
			{"255", 2, "3"},
			{"256", 2, "4"},
			{"3", 2, "1"},
			{"4", 2, "2"},
			{"1", 5, "1"},
			{"5", 1, "5"},
			{"15", 3, "1"},
		}
		for _, tt := range tests {
			v := MustParseInt(tt.value)
			got, err := v.SuperRoot(tt.height)
			if err != nil {
				t.Errorf("%v.SuperRoot(%v) failed: %v", v, tt.height, err)
				continue
			}
			if got.String() != tt.want {
				t.Errorf("%v.SuperRoot(%v) = %v, want %v", v, tt.height, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]struct {
			ctx           Context
			value, height any
			want          error
			code          string
		}{
			"zero":         {BaseContext, 0, 2, ErrValidation, CodeInvalidArgument},
			"negative":     {BaseContext, -5, 2, ErrValidation, CodeInvalidArgument},
			"height 1":     {BaseContext, 16, 0, ErrValidation, CodeInvalidHeight},
			"height 2":     {BaseContext, 16, MaxTetrationHeight + 1, ErrComputationLimit, CodeTetrationLimit},
			"steps":        {BaseContext.WithMaxSteps(1), 16, 3, ErrComputationLimit, CodeStepLimit},
			"invalid type": {BaseContext, []byte("16"), 3, ErrValidation, CodeUnsupportedType},
		}
		for name, tt := range tests {
			_, err := tt.ctx.SuperRoot(tt.value, tt.height)
			if !errors.Is(err, tt.want) {
				t.Errorf("%v: SuperRoot(%v, %v) error = %v, want %v", name, tt.value, tt.height, err, tt.want)
				continue
			}
			if got := Code(err); got != tt.code {
				t.Errorf("%v: Code(SuperRoot(%v, %v)) = %v, want %v", name, tt.value, tt.height, got, tt.code)
			}
		}
	})
}

func TestContext_SuperRoot_Tetration(t *testing.T) {
	for base := int64(1); base <= 6; base++ {
		for height := 1; height <= 4; height++ {
			x := NewInt(base)
			v, err := x.Tetration(height)
			if err != nil {
				continue // out of the safe range
			}
			got, err := v.SuperRoot(height)
			if err != nil {
				t.Errorf("%v.SuperRoot(%v) failed: %v", v, height, err)
				continue
			}
			if !got.Equal(x) {
				t.Errorf("Tetration(%v, %v).SuperRoot(%v) = %v, want %v", x, height, height, got, x)
			}
			// The value just below an exact tower has a smaller root.
			if base > 1 && height > 1 {
				below, err := v.Sub(NewInt(1))
				if err != nil {
					t.Errorf("%v.Sub(1) failed: %v", v, err)
					continue
				}
				got, err = below.SuperRoot(height)
				if err != nil {
					t.Errorf("%v.SuperRoot(%v) failed: %v", below, height, err)
					continue
				}
				if want := NewInt(base - 1); !got.Equal(want) {
					t.Errorf("%v.SuperRoot(%v) = %v, want %v", below, height, got, want)
				}
			}
		}
	}
}
