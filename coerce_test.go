package bignum

import (
	"errors"
	"math"
	"math/big"
	"testing"

	"github.com/govalues/decimal"
)

func TestCoerce(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		x := NewInt(-7)
		tests := []struct {
			v    any
			want string
		}{
			{NewInt(5), "5"},
			{&x, "-7"},
			{big.NewInt(-42), "-42"},
			{*big.NewInt(42), "42"},
			{MustParseScaled("12.00"), "12"},
			{MustParseScaled("-3.0"), "-3"},
			{decimal.MustParse("12.0"), "12"},
			{int(-1), "-1"},
			{int8(-8), "-8"},
			{int16(1600), "1600"},
			{int32(-32), "-32"},
			{int64(math.MinInt64), "-9223372036854775808"},
			{uint(1), "1"},
			{uint8(255), "255"},
			{uint16(65535), "65535"},
			{uint32(math.MaxUint32), "4294967295"},
			{uint64(math.MaxUint64), "18446744073709551615"},
			{uintptr(7), "7"},
			{float32(2), "2"},
			{float64(-1e3), "-1000"},
			{"1_000", "1000"},
			{"-4_000", "-4000"},
			{"1.000", "1"},
		}
		for _, tt := range tests {
			got, err := Coerce(tt.v)
			if err != nil {
				t.Errorf("Coerce(%v) failed: %v", tt.v, err)
				continue
			}
			if got.String() != tt.want {
				t.Errorf("Coerce(%v) = %v, want %v", tt.v, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		var nilBig *big.Int
		var nilInt *Int
		tests := map[string]struct {
			v    any
			code string
		}{
			"string 1": {"x", CodeInvalidNumber},
			"string 2": {"", CodeInvalidNumber},
			"string 3": {"1.5", CodeNotInteger},
			"nan":      {math.NaN(), CodeNonFinite},
			"inf":      {float32(math.Inf(1)), CodeNonFinite},
			"float":    {1.5, CodeNotInteger},
			"scaled":   {MustParseScaled("1.5"), CodeNotInteger},
			"decimal":  {decimal.MustParse("1.5"), CodeNotInteger},
			"nil":      {nil, CodeUnsupportedType},
			"nil big":  {nilBig, CodeInvalidNumber},
			"nil int":  {nilInt, CodeInvalidNumber},
			"struct":   {struct{}{}, CodeUnsupportedType},
			"slice":    {[]int{1}, CodeUnsupportedType},
			"boolean":  {true, CodeUnsupportedType},
			"complex":  {complex(1, 0), CodeUnsupportedType},
		}
		for name, tt := range tests {
			_, err := Coerce(tt.v)
			if !errors.Is(err, ErrValidation) {
				t.Errorf("%v: Coerce(%v) error = %v, want %v", name, tt.v, err, ErrValidation)
				continue
			}
			if got := Code(err); got != tt.code {
				t.Errorf("%v: Code(Coerce(%v)) = %v, want %v", name, tt.v, got, tt.code)
			}
		}
	})
}

func TestMustCoerce(t *testing.T) {
	if got := MustCoerce("12"); got.String() != "12" {
		t.Errorf("MustCoerce(\"12\") = %v, want 12", got)
	}
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("MustCoerce(true) did not panic")
		}
	}()
	MustCoerce(true)
}
