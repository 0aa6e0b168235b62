package valueobject

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestMoneyFromDecimal(t *testing.T) {
	cases := []struct {
		in   string
		want Money
	}{
		{"0", 0},
		{"10.00", 1000},
		{"1234.56", 123456},
		{"0.005", 1},    // half rounds up
		{"-0.005", -1},  // half away from zero
		{"99.999", 10000},
	}

	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			if got := MoneyFromDecimal(decimal.RequireFromString(tc.in)); got != tc.want {
				t.Errorf("expected %d cents, got %d", tc.want, got)
			}
		})
	}
}

func TestMoney_String(t *testing.T) {
	cases := []struct {
		in   Money
		want string
	}{
		{0, "0.00"},
		{5, "0.05"},
		{123456, "1234.56"},
		{-5000, "-50.00"},
		{-7, "-0.07"},
	}

	for _, tc := range cases {
		if got := tc.in.String(); got != tc.want {
			t.Errorf("Money(%d).String() = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestMoney_DivCount(t *testing.T) {
	if got := Money(7500).DivCount(3); got != 2500 {
		t.Errorf("expected 2500, got %d", got)
	}
	if got := Money(100).DivCount(3); got != 33 {
		t.Errorf("expected 33, got %d", got)
	}
	if got := Money(50).DivCount(4); got != 13 {
		t.Errorf("expected half-up 13, got %d", got)
	}
	if got := Money(1000).DivCount(0); got != 0 {
		t.Errorf("division by zero count must yield 0, got %d", got)
	}
	if got := Money(-7500).DivCount(3); got != -2500 {
		t.Errorf("expected -2500, got %d", got)
	}
}

func TestMoney_JSONRoundTrip(t *testing.T) {
	m := Money(-123456)
	data, err := m.MarshalJSON()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(data) != "-123456" {
		t.Errorf("expected bare cents, got %s", data)
	}

	var back Money
	if err := back.UnmarshalJSON(data); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if back != m {
		t.Errorf("round trip mismatch: %d != %d", back, m)
	}
}
