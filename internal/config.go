package internal

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/nocturnecity/play-assets/pkg"
)

// LoadPlan returns the built-in plan, overlaid with the YAML file at path when path is set.
// Keys absent from the file keep their defaults; lists given in the file replace the
// default lists entirely.
func LoadPlan(path string) (*pkg.Plan, error) {
	plan := pkg.DefaultPlan()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &plan); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := plan.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &plan, nil
}
