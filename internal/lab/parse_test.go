package lab

import (
	"math"
	"testing"
)

func TestParseFloat(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"0.002", 0.002},
		{"  1.5abc", 1.5},
		{".5", 0.5},
		{"5.", 5},
		{"-2.25", -2.25},
		{"1e3", 1000},
		{"1e", 1},
		{"2.5e-2kg", 0.025},
		{"Infinity", math.Inf(1)},
		{"-Infinity", math.Inf(-1)},
		{"1e400", math.Inf(1)},
		{"\uFEFF0.5", 0.5},
		{"\u00a0\u3000\n2", 2},
	}

	for _, tt := range tests {
		got := ParseFloat(tt.in)
		if got != tt.want {
			t.Errorf("ParseFloat(%q): expected %v, got %v", tt.in, tt.want, got)
		}
	}
}

func TestParseFloat_NaN(t *testing.T) {
	for _, in := range []string{"", "   ", "abc", "-", ".", "e5", "inf", "NaN", "\u00850.5"} {
		if v := ParseFloat(in); !math.IsNaN(v) {
			t.Errorf("ParseFloat(%q): expected NaN, got %v", in, v)
		}
	}
}

func TestParseInt(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"10", 10},
		{"3.7", 3},
		{" 42 drops", 42},
		{"-4", -4},
		{"+8", 8},
		{"0x1f", 31},
		{"0XFF", 255},
		{"007", 7},
		{"\uFEFF12", 12},
	}

	for _, tt := range tests {
		got := ParseInt(tt.in)
		if got != tt.want {
			t.Errorf("ParseInt(%q): expected %v, got %v", tt.in, tt.want, got)
		}
	}

	for _, in := range []string{"", "x", "0x", "-", ".5"} {
		if v := ParseInt(in); !math.IsNaN(v) {
			t.Errorf("ParseInt(%q): expected NaN, got %v", in, v)
		}
	}
}

func TestFormatFixed(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0.0000"},
		{0.045419, "0.0454"},
		{0.03125, "0.0313"},
		{-0.03125, "-0.0313"},
		{0.99999, "1.0000"},
		{99.99999, "100.0000"},
		{-0.00001, "-0.0000"},
		{math.Copysign(0, -1), "0.0000"},
		{12.5, "12.5000"},
		{math.NaN(), "NaN"},
		{math.Inf(1), "Infinity"},
		{math.Inf(-1), "-Infinity"},
		{1e21, "1e+21"},
	}

	for _, tt := range tests {
		if got := FormatFixed(tt.in, 4); got != tt.want {
			t.Errorf("FormatFixed(%v): expected %s, got %s", tt.in, tt.want, got)
		}
	}

	if got := FormatFixed(2.5, 0); got != "3" {
		t.Errorf("FormatFixed(2.5, 0): expected 3, got %s", got)
	}
}
