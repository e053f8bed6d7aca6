package lab

import (
	"fmt"
	"math"

	"github.com/san-kum/stalagsim/internal/catalog"
)

// Field names a numeric form input.
type Field string

const (
	FieldDropMass  Field = "dropMass"
	FieldRadius    Field = "radius"
	FieldDropCount Field = "dropCount"

	// Selector names, used only to label strict-mode errors.
	FieldLiquid Field = "liquid"
	FieldPlanet Field = "planet"
)

// Fields lists the numeric inputs in form order.
var Fields = []Field{FieldDropMass, FieldRadius, FieldDropCount}

// ParseField maps a form input name to a Field.
func ParseField(name string) (Field, error) {
	for _, f := range Fields {
		if string(f) == name {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownField, name)
}

// Parameters is the current experiment input. Tension and Gravity are
// derived from Liquid and Planet through the catalogs.
type Parameters struct {
	Liquid  string
	Planet  string
	Tension float64 // N/m
	Gravity float64 // m/s^2

	DropMass float64 // kg
	Radius   float64 // cm
	// DropCount has integer semantics but is NaN after a failed parse.
	// It is tracked for display and never enters the formula.
	DropCount float64
}

// Form holds raw input values as typed by the user.
type Form struct {
	DropMass  string
	Radius    string
	DropCount string
}

// Model owns the experiment parameters and produces the surface-tension
// estimate on demand.
type Model struct {
	catalogs *catalog.Catalogs
	params   Parameters
	strict   bool
}

type Option func(*Model)

// WithStrict makes setters reject unparsable numbers and unknown keys
// instead of storing NaN.
func WithStrict(strict bool) Option {
	return func(m *Model) { m.strict = strict }
}

// NewModel creates a model with the default liquid and planet and the
// numeric fields parsed from form. Parse failures are stored as NaN in
// every mode; strictness only applies to later edits.
func NewModel(c *catalog.Catalogs, form Form, opts ...Option) *Model {
	if c == nil {
		c = catalog.Default()
	}
	m := &Model{catalogs: c}
	for _, opt := range opts {
		opt(m)
	}

	m.params.Liquid = catalog.DefaultLiquid
	m.params.Tension, _ = c.Liquids.Lookup(catalog.DefaultLiquid)
	m.params.Planet = catalog.DefaultPlanet
	m.params.Gravity, _ = c.Planets.Lookup(catalog.DefaultPlanet)
	m.params.DropMass = ParseFloat(form.DropMass)
	m.params.Radius = ParseFloat(form.Radius)
	m.params.DropCount = ParseInt(form.DropCount)
	return m
}

func (m *Model) Catalogs() *catalog.Catalogs { return m.catalogs }
func (m *Model) Strict() bool                { return m.strict }

// Parameters returns a copy of the current parameters.
func (m *Model) Parameters() Parameters { return m.params }

// SetLiquid selects a liquid. An unknown key yields a NaN tension unless
// the model is strict.
func (m *Model) SetLiquid(key string) error {
	v, ok := m.catalogs.Liquids.Lookup(key)
	if !ok {
		if m.strict {
			return &FieldError{Field: FieldLiquid, Raw: key, Wrapped: ErrUnknownKey}
		}
		v = math.NaN()
	}
	m.params.Liquid, m.params.Tension = key, v
	return nil
}

// SetPlanet selects a planet. An unknown key yields a NaN gravity unless
// the model is strict.
func (m *Model) SetPlanet(key string) error {
	v, ok := m.catalogs.Planets.Lookup(key)
	if !ok {
		if m.strict {
			return &FieldError{Field: FieldPlanet, Raw: key, Wrapped: ErrUnknownKey}
		}
		v = math.NaN()
	}
	m.params.Planet, m.params.Gravity = key, v
	return nil
}

func (m *Model) SetDropMass(raw string) error {
	return m.setFloat(FieldDropMass, raw, ParseFloat, &m.params.DropMass)
}

func (m *Model) SetRadius(raw string) error {
	return m.setFloat(FieldRadius, raw, ParseFloat, &m.params.Radius)
}

func (m *Model) SetDropCount(raw string) error {
	return m.setFloat(FieldDropCount, raw, ParseInt, &m.params.DropCount)
}

// Set routes a raw value to the setter for field.
func (m *Model) Set(field Field, raw string) error {
	switch field {
	case FieldDropMass:
		return m.SetDropMass(raw)
	case FieldRadius:
		return m.SetRadius(raw)
	case FieldDropCount:
		return m.SetDropCount(raw)
	}
	return fmt.Errorf("%w: %s", ErrUnknownField, field)
}

func (m *Model) setFloat(field Field, raw string, parse func(string) float64, dst *float64) error {
	v := parse(raw)
	if math.IsNaN(v) && m.strict {
		return &FieldError{Field: field, Raw: raw, Wrapped: ErrInvalidInput}
	}
	*dst = v
	return nil
}

// Calculate returns the surface-tension estimate for the current
// parameters.
func (m *Model) Calculate() Result { return Calculate(m.params) }

// Result is a calculated surface tension and its 4-digit rendering.
type Result struct {
	Value float64
	Text  string
}

// Calculate evaluates tension * (mass * gravity) / (2π * radius / 100).
// Zero radius gives +Inf and NaN inputs give NaN; neither is an error.
func Calculate(p Parameters) Result {
	force := p.DropMass * p.Gravity
	circumference := 2 * math.Pi * p.Radius / 100 // cm to m
	v := p.Tension * (force / circumference)
	return Result{Value: v, Text: FormatFixed(v, 4)}
}
