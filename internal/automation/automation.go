package automation

import (
	"context"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/stalagsim/internal/lab"
)

// Scenario is a scripted sequence of lab commands.
type Scenario struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Steps       []ScenarioStep `yaml:"steps"`
}

// ScenarioStep applies its selections and field edits in that order, then
// calculates when Calculate is set. Expect, if present, must equal the
// 4-digit result text.
type ScenarioStep struct {
	Liquid    string            `yaml:"liquid"`
	Planet    string            `yaml:"planet"`
	Fields    map[string]string `yaml:"fields"`
	Calculate bool              `yaml:"calculate"`
	Expect    string            `yaml:"expect"`
}

// LoadScenario loads a scenario from a YAML file
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseScenario(data)
}

func ParseScenario(data []byte) (*Scenario, error) {
	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, err
	}
	return &scenario, nil
}

// ExpectationError reports a step whose result differs from Expect.
type ExpectationError struct {
	Step int
	Want string
	Got  string
}

func (e *ExpectationError) Error() string {
	return fmt.Sprintf("step %d: expected %s, got %s", e.Step, e.Want, e.Got)
}

// RunScenario replays every step through the session and returns the
// results of the calculating steps. Progress lines go to w.
func RunScenario(ctx context.Context, scenario *Scenario, s *lab.Session, w io.Writer) ([]lab.FormattedResult, error) {
	results := make([]lab.FormattedResult, 0, len(scenario.Steps))

	for i, step := range scenario.Steps {
		select {
		case <-ctx.Done():
			return results, ctx.Err()
		default:
		}

		for name := range step.Fields {
			if _, err := lab.ParseField(name); err != nil {
				return results, fmt.Errorf("step %d: %w", i+1, err)
			}
		}

		if step.Liquid != "" {
			if err := s.OnLiquidChanged(step.Liquid); err != nil {
				return results, fmt.Errorf("step %d: %w", i+1, err)
			}
		}
		if step.Planet != "" {
			if err := s.OnPlanetChanged(step.Planet); err != nil {
				return results, fmt.Errorf("step %d: %w", i+1, err)
			}
		}
		for _, f := range lab.Fields {
			raw, ok := step.Fields[string(f)]
			if !ok {
				continue
			}
			if err := s.OnFieldChanged(f, raw); err != nil {
				return results, fmt.Errorf("step %d: %w", i+1, err)
			}
		}

		if !step.Calculate {
			continue
		}
		res := s.OnCalculateRequested()
		results = append(results, res)
		fmt.Fprintf(w, "step %d/%d: %s\n", i+1, len(scenario.Steps), res.Label)

		if step.Expect != "" && step.Expect != res.Text {
			return results, &ExpectationError{Step: i + 1, Want: step.Expect, Got: res.Text}
		}
	}

	return results, nil
}
