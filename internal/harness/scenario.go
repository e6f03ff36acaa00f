package harness

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultRunToken is used when a scenario does not pin its own token.
// A fixed default keeps golden files stable across runs.
const DefaultRunToken = "test-run-default"

// Scenario is one self-contained import exercise: rig, motion data and
// expected outcomes, all inline.
type Scenario struct {
	// Name uniquely identifies the scenario. It doubles as the run
	// source label and the golden file name.
	Name string `yaml:"name"`

	// Description explains what the scenario exercises.
	Description string `yaml:"description"`

	// FPS converts time-column seconds into frames. Zero means the
	// loader default.
	FPS float64 `yaml:"fps,omitempty"`

	// TimeColumn overrides the time column header. Zero value means
	// the loader default.
	TimeColumn string `yaml:"time_column,omitempty"`

	// Rig is an inline CUE rig profile.
	Rig string `yaml:"rig"`

	// Motion is an inline CSV motion file.
	Motion string `yaml:"motion"`

	// RunToken pins the run token for deterministic reports. Empty
	// means DefaultRunToken.
	RunToken string `yaml:"run_token,omitempty"`

	// Expect lists the expected per-joint outcomes. Subset match:
	// only listed joints are checked.
	Expect Expectations `yaml:"expect"`
}

// Expectations are the expected joint outcomes of a scenario run.
type Expectations struct {
	// Imported names joints that must finish with status imported.
	Imported []string `yaml:"imported,omitempty"`

	// Skipped lists joints that must be skipped, with the error code
	// explaining why.
	Skipped []SkippedJoint `yaml:"skipped,omitempty"`
}

// SkippedJoint is one expected skip outcome.
type SkippedJoint struct {
	Joint string `yaml:"joint"`
	Code  string `yaml:"code"`
}

// LoadScenario reads and parses a scenario YAML file. Unknown fields
// are rejected so a typo fails loudly instead of silently weakening
// the expectations.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}

	var scenario Scenario
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("parse scenario %s: %w", path, err)
	}

	if err := scenario.validate(); err != nil {
		return nil, fmt.Errorf("invalid scenario %s: %w", path, err)
	}
	return &scenario, nil
}

func (s *Scenario) validate() error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if s.Rig == "" {
		return fmt.Errorf("rig is required")
	}
	if s.Motion == "" {
		return fmt.Errorf("motion is required")
	}
	if len(s.Expect.Imported) == 0 && len(s.Expect.Skipped) == 0 {
		return fmt.Errorf("expect must list at least one outcome")
	}
	for i, sk := range s.Expect.Skipped {
		if sk.Joint == "" {
			return fmt.Errorf("expect.skipped[%d]: joint is required", i)
		}
		if sk.Code == "" {
			return fmt.Errorf("expect.skipped[%d]: code is required", i)
		}
	}
	return nil
}
