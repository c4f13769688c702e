package utils

import "testing"

func TestFormatCurrency(t *testing.T) {
	cases := []struct {
		value float64
		want  string
	}{
		{0, "0.00"},
		{250, "250.00"},
		{999.5, "999.50"},
		{1000, "1,000.00"},
		{100000, "1,00,000.00"},
		{1234567.89, "12,34,567.89"},
		{-1500.5, "-1,500.50"},
	}

	for _, tc := range cases {
		if got := FormatCurrency(tc.value); got != tc.want {
			t.Errorf("FormatCurrency(%v) = %q, want %q", tc.value, got, tc.want)
		}
	}
}

func TestFormatPhoneNumber(t *testing.T) {
	cases := []struct {
		phone string
		want  string
	}{
		{"9876543210", "98765 43210"},
		{"98765-43210", "98765 43210"},
		{"+91 9876543210", "+91 9876543210"}, // 12 digits, left alone
		{"12345", "12345"},
		{"", ""},
	}

	for _, tc := range cases {
		if got := FormatPhoneNumber(tc.phone); got != tc.want {
			t.Errorf("FormatPhoneNumber(%q) = %q, want %q", tc.phone, got, tc.want)
		}
	}
}

func TestCapitalize(t *testing.T) {
	if got := Capitalize("rAJ kumar"); got != "Raj Kumar" {
		t.Errorf("Capitalize = %q", got)
	}
	if got := Capitalize(""); got != "" {
		t.Errorf("Capitalize empty = %q", got)
	}
}
