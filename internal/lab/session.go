package lab

import (
	"fmt"
	"io"
	"log"
)

const (
	DefaultLabel = "Гадаргуугийн таталцал"
	DefaultUnit  = "Н/м"
)

// ResultSink receives the formatted label after each calculation.
type ResultSink interface {
	ShowResult(text string)
}

// SinkFunc adapts a function to ResultSink.
type SinkFunc func(text string)

func (f SinkFunc) ShowResult(text string) { f(text) }

// FormattedResult is the outcome of a calculate request.
type FormattedResult struct {
	Result
	Label string
}

func (r FormattedResult) String() string { return r.Label }

// Session is the command surface a front end drives in response to its own
// input events. It is not safe for concurrent use; each front end owns one.
type Session struct {
	model  *Model
	sink   ResultSink
	logger *log.Logger
	label  string
	unit   string
	last   *FormattedResult
}

type SessionOption func(*Session)

func WithSink(s ResultSink) SessionOption {
	return func(se *Session) { se.sink = s }
}

func WithLogger(l *log.Logger) SessionOption {
	return func(se *Session) { se.logger = l }
}

// WithLabel overrides the result label and unit. Empty values keep the
// defaults.
func WithLabel(label, unit string) SessionOption {
	return func(se *Session) {
		if label != "" {
			se.label = label
		}
		if unit != "" {
			se.unit = unit
		}
	}
}

func NewSession(m *Model, opts ...SessionOption) *Session {
	s := &Session{
		model:  m,
		logger: log.New(io.Discard, "", 0),
		label:  DefaultLabel,
		unit:   DefaultUnit,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Session) Model() *Model { return s.model }

// Last returns the most recent calculation, if any.
func (s *Session) Last() (FormattedResult, bool) {
	if s.last == nil {
		return FormattedResult{}, false
	}
	return *s.last, true
}

func (s *Session) OnLiquidChanged(key string) error {
	if err := s.model.SetLiquid(key); err != nil {
		return err
	}
	p := s.model.Parameters()
	s.logger.Printf("Selected Liquid: %s, Surface Tension: %v", p.Liquid, p.Tension)
	return nil
}

func (s *Session) OnPlanetChanged(key string) error {
	if err := s.model.SetPlanet(key); err != nil {
		return err
	}
	p := s.model.Parameters()
	s.logger.Printf("Selected Planet: %s, Gravity: %v", p.Planet, p.Gravity)
	return nil
}

func (s *Session) OnFieldChanged(field Field, raw string) error {
	return s.model.Set(field, raw)
}

// OnCalculateRequested computes the estimate, pushes the label to the sink
// and returns it.
func (s *Session) OnCalculateRequested() FormattedResult {
	res := s.model.Calculate()
	p := s.model.Parameters()
	out := FormattedResult{
		Result: res,
		Label:  fmt.Sprintf("%s (%s): %s %s", s.label, s.model.Catalogs().DisplayName(p.Liquid), res.Text, s.unit),
	}
	s.last = &out
	if s.sink != nil {
		s.sink.ShowResult(out.Label)
	}
	return out
}
