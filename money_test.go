package dumpsplit

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestParseMoney(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"100.00", "100.00"},
		{"$150.00", "150.00"},
		{"$1,234.56", "1234.56"},
		{" 1 000.50 ", "1000.50"},
		{"-$42.00", "-42.00"},
		{"€99.99", "99.99"},
	}
	for _, tc := range tests {
		m, err := ParseMoney(tc.in, "USD")
		if err != nil {
			t.Errorf("ParseMoney(%q) error = %v", tc.in, err)
			continue
		}
		if got := m.Amount(); got != tc.want {
			t.Errorf("ParseMoney(%q).Amount() = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestParseMoney_Invalid(t *testing.T) {
	for _, in := range []string{"", "abc", "12.34.56"} {
		if _, err := ParseMoney(in, "USD"); err == nil {
			t.Errorf("ParseMoney(%q) expected an error", in)
		}
	}
}

func TestMoneyString(t *testing.T) {
	m := M(decimal.RequireFromString("1234.56"), "USD")
	if got := m.String(); got != "$1,234.56" {
		t.Errorf("String() = %q, want $1,234.56", got)
	}
}

func TestMoneySignedString(t *testing.T) {
	if got := M(decimal.RequireFromString("50"), "USD").SignedString(); got != "+$50.00" {
		t.Errorf("SignedString(50) = %q, want +$50.00", got)
	}
	if got := M(decimal.Zero, "USD").SignedString(); got != "-" {
		t.Errorf("SignedString(0) = %q, want -", got)
	}
}

func TestMoneyArithmetic(t *testing.T) {
	a := M(decimal.RequireFromString("150.00"), "USD")
	b := M(decimal.RequireFromString("100.00"), "USD")

	if got := a.Sub(b).Amount(); got != "50.00" {
		t.Errorf("Sub() = %s, want 50.00", got)
	}
	if got := b.Sub(a); !got.IsNegative() {
		t.Errorf("Sub() = %s, want a negative value", got.Amount())
	}
	if got := a.Add(b).Amount(); got != "250.00" {
		t.Errorf("Add() = %s, want 250.00", got)
	}
}
