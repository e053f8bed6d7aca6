// Package form holds the state of the experiment form shared by the
// graphical front ends: which input has focus, the raw text typed into each
// numeric field and the last status line.
package form

import (
	"fmt"

	"github.com/san-kum/stalagsim/internal/lab"
)

type Focus int

const (
	FocusLiquid Focus = iota
	FocusPlanet
	FocusDropMass
	FocusRadius
	FocusDropCount
	FocusCalculate
	focusCount
)

// Field returns the numeric field under f, if any.
func (f Focus) Field() (lab.Field, bool) {
	if f < FocusDropMass || f > FocusDropCount {
		return "", false
	}
	return lab.Fields[f-FocusDropMass], true
}

var Labels = map[lab.Field]string{
	lab.FieldDropMass:  "Drop mass",
	lab.FieldRadius:    "Radius",
	lab.FieldDropCount: "Drop count",
}

var Units = map[lab.Field]string{
	lab.FieldDropMass: "kg",
	lab.FieldRadius:   "cm",
}

// Form drives a lab.Session from key-level edits. Every edit is forwarded
// to the session immediately, as an input event would be.
type Form struct {
	session   *lab.Session
	inputs    map[lab.Field]string
	focus     Focus
	status    string
	statusErr bool
}

func New(s *lab.Session, initial lab.Form) *Form {
	return &Form{
		session: s,
		inputs: map[lab.Field]string{
			lab.FieldDropMass:  initial.DropMass,
			lab.FieldRadius:    initial.Radius,
			lab.FieldDropCount: initial.DropCount,
		},
	}
}

func (f *Form) Session() *lab.Session { return f.session }
func (f *Form) Focus() Focus          { return f.focus }

// OnField reports whether the focus is on a text input.
func (f *Form) OnField() bool {
	_, ok := f.focus.Field()
	return ok
}

func (f *Form) Input(field lab.Field) string { return f.inputs[field] }

// Status returns the status line and whether it is an error.
func (f *Form) Status() (string, bool) { return f.status, f.statusErr }

func (f *Form) Next() { f.focus = (f.focus + 1) % focusCount }
func (f *Form) Prev() { f.focus = (f.focus + focusCount - 1) % focusCount }

// Type appends s to the focused field.
func (f *Form) Type(s string) {
	field, ok := f.focus.Field()
	if !ok || s == "" {
		return
	}
	f.set(field, f.inputs[field]+s)
}

// Backspace removes the last character of the focused field.
func (f *Form) Backspace() {
	field, ok := f.focus.Field()
	if !ok {
		return
	}
	r := []rune(f.inputs[field])
	if len(r) == 0 {
		return
	}
	f.set(field, string(r[:len(r)-1]))
}

func (f *Form) set(field lab.Field, raw string) {
	f.inputs[field] = raw
	f.report(f.session.OnFieldChanged(field, raw))
}

// Cycle moves the focused selector dir entries through its sorted names.
func (f *Form) Cycle(dir int) {
	p := f.session.Model().Parameters()
	cats := f.session.Model().Catalogs()
	switch f.focus {
	case FocusLiquid:
		f.report(f.session.OnLiquidChanged(Step(cats.Liquids.Names(), p.Liquid, dir)))
	case FocusPlanet:
		f.report(f.session.OnPlanetChanged(Step(cats.Planets.Names(), p.Planet, dir)))
	}
}

func (f *Form) Calculate() lab.FormattedResult {
	res := f.session.OnCalculateRequested()
	f.status, f.statusErr = res.Label, false
	return res
}

func (f *Form) report(err error) {
	if err != nil {
		f.status, f.statusErr = err.Error(), true
		return
	}
	if f.statusErr {
		f.status, f.statusErr = "", false
	}
}

// Step returns the name dir places away from current, wrapping around.
// An unknown current key starts from the first name.
func Step(names []string, current string, dir int) string {
	if len(names) == 0 {
		return current
	}
	for i, n := range names {
		if n == current {
			return names[((i+dir)%len(names)+len(names))%len(names)]
		}
	}
	return names[0]
}

// Row is one line of the form ready for display.
type Row struct {
	Focus   Focus
	Label   string
	Value   string
	Focused bool
}

// Rows renders the form. Selector values use display names when ascii is
// false and catalog keys otherwise, for fonts without Cyrillic glyphs.
func (f *Form) Rows(ascii bool) []Row {
	p := f.session.Model().Parameters()
	cats := f.session.Model().Catalogs()
	name := func(key string) string {
		if ascii {
			return key
		}
		return cats.DisplayName(key)
	}

	rows := []Row{
		{Focus: FocusLiquid, Label: "Liquid", Value: fmt.Sprintf("< %s > %v N/m", name(p.Liquid), p.Tension)},
		{Focus: FocusPlanet, Label: "Planet", Value: fmt.Sprintf("< %s > %v m/s2", name(p.Planet), p.Gravity)},
	}
	for i, field := range lab.Fields {
		v := f.inputs[field]
		if f.focus == FocusDropMass+Focus(i) {
			v += "_"
		}
		if u := Units[field]; u != "" {
			v += " " + u
		}
		rows = append(rows, Row{Focus: FocusDropMass + Focus(i), Label: Labels[field], Value: v})
	}
	rows = append(rows, Row{Focus: FocusCalculate, Value: "[ Calculate ]"})
	for i := range rows {
		rows[i].Focused = rows[i].Focus == f.focus
	}
	return rows
}
