package core

import (
	"encoding/json"
	"testing"
)

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in    string
		cents int64
		ok    bool
	}{
		{"12.34", 1234, true},
		{"12,34", 1234, true},
		{"12.345", 1235, true}, // rounds half-up on the third decimal
		{"12.344", 1234, true},
		{"5000", 500000, true},
		{"0.01", 1, true},
		{" 42 ", 4200, true},
		{"0", 0, false},
		{"0.004", 0, false},
		{"-5", 0, false},
		{"", 0, false},
		{"abc", 0, false},
		{"1.2.3", 0, false},
	}
	for _, tc := range cases {
		m, err := ParseAmount(tc.in)
		if tc.ok && err != nil {
			t.Fatalf("ParseAmount(%q) unexpected error %v", tc.in, err)
		}
		if !tc.ok && err == nil {
			t.Fatalf("ParseAmount(%q) expected error", tc.in)
		}
		if tc.ok && m.Cents != tc.cents {
			t.Fatalf("ParseAmount(%q) = %d cents, want %d", tc.in, m.Cents, tc.cents)
		}
	}
}

func TestMoneyDecimal(t *testing.T) {
	cases := []struct {
		cents int64
		want  string
	}{
		{1234, "12.34"},
		{500000, "5000"},
		{8550, "85.5"},
		{1, "0.01"},
	}
	for _, tc := range cases {
		if got := (Money{Cents: tc.cents}).Decimal(); got != tc.want {
			t.Fatalf("Decimal(%d) = %q, want %q", tc.cents, got, tc.want)
		}
	}
}

func TestMoneyDisplay(t *testing.T) {
	if got := (Money{Cents: 123456}).Display(); got != "$1,234.56" {
		t.Fatalf("unexpected display %q", got)
	}
}

func TestMoneyJSONRoundTrip(t *testing.T) {
	m := Money{Cents: 1234}
	data, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `"12.34"` {
		t.Fatalf("unexpected encoding %s", data)
	}
	var back Money
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back != m {
		t.Fatalf("round trip mismatch: %+v != %+v", back, m)
	}

	// Bare numbers from legacy persisted state are accepted too.
	if err := json.Unmarshal([]byte(`85.5`), &back); err != nil {
		t.Fatalf("unmarshal bare number: %v", err)
	}
	if back.Cents != 8550 {
		t.Fatalf("expected 8550 cents, got %d", back.Cents)
	}
}

func TestMoneyArithmetic(t *testing.T) {
	a := Money{Cents: 500}
	b := Money{Cents: 300}
	if a.Add(b).Cents != 800 {
		t.Fatalf("add failed")
	}
	if a.Sub(b).Cents != 200 {
		t.Fatalf("sub failed")
	}
	if (Money{Cents: 100}).Validate() != nil {
		t.Fatalf("positive amount should validate")
	}
	if (Money{}).Validate() == nil {
		t.Fatalf("zero amount should not validate")
	}
}
