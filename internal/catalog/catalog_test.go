package catalog

import (
	"errors"
	"testing"
)

func TestDefaultConstants(t *testing.T) {
	c := Default()

	tests := []struct {
		table Table
		key   string
		want  float64
	}{
		{c.Liquids, "water", 0.0728},
		{c.Liquids, "oil", 0.030},
		{c.Liquids, "alcohol", 0.022},
		{c.Planets, "earth", 9.8},
		{c.Planets, "moon", 1.62},
		{c.Planets, "mars", 3.71},
	}

	for _, tt := range tests {
		got, ok := tt.table.Lookup(tt.key)
		if !ok {
			t.Fatalf("%s: missing", tt.key)
		}
		if got != tt.want {
			t.Errorf("%s: expected %v, got %v", tt.key, tt.want, got)
		}
	}

	if _, ok := c.Liquids.Lookup("mercury"); ok {
		t.Error("expected mercury to be absent")
	}
}

func TestNamesSorted(t *testing.T) {
	names := Default().Planets.Names()
	want := []string{"earth", "mars", "moon"}
	if len(names) != len(want) {
		t.Fatalf("expected %d names, got %d", len(want), len(names))
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("index %d: expected %s, got %s", i, want[i], names[i])
		}
	}

	names[0] = "pluto"
	if Default().Planets.Names()[0] != "earth" {
		t.Error("Names should return a copy")
	}
}

func TestNewExtends(t *testing.T) {
	c, err := New(map[string]float64{"glycerol": 0.063}, map[string]float64{"jupiter": 24.79}, map[string]string{"glycerol": "Glycerol"})
	if err != nil {
		t.Fatalf("new failed: %v", err)
	}
	if v, ok := c.Liquids.Lookup("glycerol"); !ok || v != 0.063 {
		t.Errorf("expected glycerol 0.063, got %v %v", v, ok)
	}
	if c.Planets.Len() != 4 {
		t.Errorf("expected 4 planets, got %d", c.Planets.Len())
	}
	if c.DisplayName("glycerol") != "Glycerol" {
		t.Errorf("unexpected display name %q", c.DisplayName("glycerol"))
	}
	if c.DisplayName("unknown") != "unknown" {
		t.Error("expected fallback to key")
	}
}

func TestNewRejectsNonPositive(t *testing.T) {
	_, err := New(map[string]float64{"void": 0}, nil, nil)
	if !errors.Is(err, ErrNonPositive) {
		t.Errorf("expected ErrNonPositive, got %v", err)
	}
}
