package catalog

import (
	"fmt"
	"sort"
)

// Built-in surface tensions in N/m.
var defaultLiquids = map[string]float64{
	"water":   0.0728,
	"oil":     0.030,
	"alcohol": 0.022,
}

// Built-in gravitational accelerations in m/s^2.
var defaultPlanets = map[string]float64{
	"earth": 9.8,
	"moon":  1.62,
	"mars":  3.71,
}

var defaultDisplayNames = map[string]string{
	"water":   "Ус",
	"oil":     "Тос",
	"alcohol": "Спирт",
	"earth":   "Дэлхий",
	"moon":    "Сар",
	"mars":    "Ангараг",
}

const (
	DefaultLiquid = "water"
	DefaultPlanet = "earth"
)

// Table is a read-only lookup of named physical constants.
type Table struct {
	values map[string]float64
	names  []string
}

func newTable(src map[string]float64) Table {
	t := Table{values: make(map[string]float64, len(src))}
	for k, v := range src {
		t.values[k] = v
		t.names = append(t.names, k)
	}
	sort.Strings(t.names)
	return t
}

// Lookup returns the constant stored under key.
func (t Table) Lookup(key string) (float64, bool) {
	v, ok := t.values[key]
	return v, ok
}

// Names returns the keys in sorted order. The slice is a copy.
func (t Table) Names() []string {
	out := make([]string, len(t.names))
	copy(out, t.names)
	return out
}

func (t Table) Len() int { return len(t.names) }

// Catalogs bundles the liquid and planet tables. It is built once at
// startup and never mutated afterwards.
type Catalogs struct {
	Liquids Table
	Planets Table
	display map[string]string
}

// Default returns the catalogs with the built-in constants only.
func Default() *Catalogs {
	c, _ := New(nil, nil, nil)
	return c
}

// New builds catalogs from the built-in constants extended with the given
// liquids, planets and display names. Extra entries override built-ins.
func New(liquids, planets map[string]float64, display map[string]string) (*Catalogs, error) {
	l := merge(defaultLiquids, liquids)
	p := merge(defaultPlanets, planets)
	for k, v := range l {
		if v <= 0 {
			return nil, fmt.Errorf("%w: liquid %q has tension %v", ErrNonPositive, k, v)
		}
	}
	for k, v := range p {
		if v <= 0 {
			return nil, fmt.Errorf("%w: planet %q has gravity %v", ErrNonPositive, k, v)
		}
	}

	names := make(map[string]string, len(defaultDisplayNames)+len(display))
	for k, v := range defaultDisplayNames {
		names[k] = v
	}
	for k, v := range display {
		names[k] = v
	}

	return &Catalogs{
		Liquids: newTable(l),
		Planets: newTable(p),
		display: names,
	}, nil
}

// DisplayName returns the human label for a liquid or planet key, falling
// back to the key itself.
func (c *Catalogs) DisplayName(key string) string {
	if n, ok := c.display[key]; ok {
		return n
	}
	return key
}

func merge(base, extra map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(base)+len(extra))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range extra {
		out[k] = v
	}
	return out
}
