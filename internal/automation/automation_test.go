package automation

import (
	"bytes"
	"context"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/san-kum/stalagsim/internal/catalog"
	"github.com/san-kum/stalagsim/internal/lab"
)

const scenarioYAML = `
name: planets
description: water on three planets
steps:
  - fields: {dropMass: "0.002", radius: "0.5"}
    calculate: true
    expect: "0.0454"
  - planet: moon
    calculate: true
  - liquid: oil
    planet: mars
    fields: {dropCount: "12"}
  - calculate: true
`

func newSession(strict bool) *lab.Session {
	m := lab.NewModel(catalog.Default(), lab.Form{DropMass: "0.001", Radius: "1", DropCount: "1"}, lab.WithStrict(strict))
	return lab.NewSession(m)
}

func TestRunScenario(t *testing.T) {
	sc, err := ParseScenario([]byte(scenarioYAML))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if sc.Name != "planets" || len(sc.Steps) != 4 {
		t.Fatalf("unexpected scenario %+v", sc)
	}

	var out bytes.Buffer
	s := newSession(false)
	results, err := RunScenario(context.Background(), sc, s, &out)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	if results[0].Text != "0.0454" {
		t.Errorf("expected 0.0454, got %s", results[0].Text)
	}
	if !strings.Contains(results[2].Label, "(Тос)") {
		t.Errorf("expected oil label, got %s", results[2].Label)
	}
	if s.Model().Parameters().DropCount != 12 {
		t.Error("dropCount edit not applied")
	}
	if strings.Count(out.String(), "\n") != 3 {
		t.Errorf("expected 3 progress lines, got %q", out.String())
	}
}

func TestRunScenarioExpectation(t *testing.T) {
	sc := &Scenario{Steps: []ScenarioStep{{Calculate: true, Expect: "9.9999"}}}
	_, err := RunScenario(context.Background(), sc, newSession(false), &bytes.Buffer{})
	var ee *ExpectationError
	if !errors.As(err, &ee) {
		t.Fatalf("expected ExpectationError, got %v", err)
	}
	if ee.Step != 1 || ee.Want != "9.9999" {
		t.Errorf("unexpected error %+v", ee)
	}
}

func TestRunScenarioStrict(t *testing.T) {
	sc := &Scenario{Steps: []ScenarioStep{{Liquid: "honey", Calculate: true}}}
	_, err := RunScenario(context.Background(), sc, newSession(true), &bytes.Buffer{})
	if !errors.Is(err, lab.ErrUnknownKey) {
		t.Errorf("expected ErrUnknownKey, got %v", err)
	}
}

func TestRunScenarioUnknownField(t *testing.T) {
	sc := &Scenario{Steps: []ScenarioStep{{Fields: map[string]string{"volume": "3"}}}}
	_, err := RunScenario(context.Background(), sc, newSession(false), &bytes.Buffer{})
	if !errors.Is(err, lab.ErrUnknownField) {
		t.Errorf("expected ErrUnknownField, got %v", err)
	}
}

func TestMonteCarlo(t *testing.T) {
	base := newSession(false).Model().Parameters()
	base.DropMass, base.Radius = 0.002, 0.5

	res, err := RunMonteCarlo(context.Background(), MonteCarloConfig{Trials: 5000, MassSigma: 0.00001, RadiusSigma: 0.001, Seed: 7}, base)
	if err != nil {
		t.Fatalf("monte carlo failed: %v", err)
	}
	want := lab.Calculate(base).Value
	if res.Finite != 5000 {
		t.Errorf("expected all trials finite, got %d", res.Finite)
	}
	if math.Abs(res.Mean-want)/want > 0.01 {
		t.Errorf("mean %v too far from %v", res.Mean, want)
	}
	if res.StdDev <= 0 || res.Min >= res.Max {
		t.Errorf("expected a spread, got %+v", res)
	}

	again, _ := RunMonteCarlo(context.Background(), MonteCarloConfig{Trials: 5000, MassSigma: 0.00001, RadiusSigma: 0.001, Seed: 7}, base)
	if again != res {
		t.Error("same seed should reproduce the result")
	}
}

func TestMonteCarloNoNoise(t *testing.T) {
	base := newSession(false).Model().Parameters()
	res, _ := RunMonteCarlo(context.Background(), MonteCarloConfig{Trials: 10}, base)
	if math.Abs(res.Mean-lab.Calculate(base).Value) > 1e-15 || res.StdDev > 1e-9 {
		t.Errorf("unexpected noiseless result %+v", res)
	}
}
