package lab

import (
	"bytes"
	"log"
	"strings"
	"testing"

	"github.com/san-kum/stalagsim/internal/catalog"
)

func TestSessionCalculatePushesLabel(t *testing.T) {
	var shown []string
	s := NewSession(NewModel(catalog.Default(), defaultForm()), WithSink(SinkFunc(func(text string) {
		shown = append(shown, text)
	})))

	if _, ok := s.Last(); ok {
		t.Error("expected no result before the first calculation")
	}

	res := s.OnCalculateRequested()
	want := "Гадаргуугийн таталцал (Ус): 0.0454 Н/м"
	if res.Label != want {
		t.Errorf("expected %q, got %q", want, res.Label)
	}
	if len(shown) != 1 || shown[0] != want {
		t.Errorf("sink got %v", shown)
	}

	last, ok := s.Last()
	if !ok || last.Label != want {
		t.Errorf("expected last result %q, got %q", want, last.Label)
	}
}

func TestSessionCommands(t *testing.T) {
	var buf bytes.Buffer
	s := NewSession(NewModel(catalog.Default(), defaultForm()),
		WithLogger(log.New(&buf, "", 0)),
		WithLabel("Surface tension", "N/m"),
	)

	if err := s.OnLiquidChanged("alcohol"); err != nil {
		t.Fatalf("liquid change failed: %v", err)
	}
	if err := s.OnPlanetChanged("mars"); err != nil {
		t.Fatalf("planet change failed: %v", err)
	}
	if err := s.OnFieldChanged(FieldDropMass, "0.004"); err != nil {
		t.Fatalf("field change failed: %v", err)
	}

	res := s.OnCalculateRequested()
	if !strings.HasPrefix(res.Label, "Surface tension (Спирт): ") || !strings.HasSuffix(res.Label, " N/m") {
		t.Errorf("unexpected label %q", res.Label)
	}
	if res.String() != res.Label {
		t.Error("String should return the label")
	}

	logged := buf.String()
	if !strings.Contains(logged, "Selected Liquid: alcohol, Surface Tension: 0.022") {
		t.Errorf("missing liquid log line in %q", logged)
	}
	if !strings.Contains(logged, "Selected Planet: mars, Gravity: 3.71") {
		t.Errorf("missing planet log line in %q", logged)
	}
}

func TestSessionStrictError(t *testing.T) {
	s := NewSession(NewModel(catalog.Default(), defaultForm(), WithStrict(true)))
	if err := s.OnLiquidChanged("honey"); err == nil {
		t.Error("expected error for unknown liquid in strict mode")
	}
	if s.Model().Parameters().Liquid != "water" {
		t.Error("strict failure should keep the previous liquid")
	}
}
