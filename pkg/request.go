package pkg

import (
	"errors"
	"fmt"
)

var ErrInvalidPlan = errors.New("invalid asset plan")

func (p *Plan) Validate() error {
	if p.TargetDir == "" {
		return fmt.Errorf("target_dir is required field: %w", ErrInvalidPlan)
	}

	if p.Icon.Source == "" || p.Icon.Output == "" {
		return fmt.Errorf("icon.source and icon.output are required fields: %w", ErrInvalidPlan)
	}

	if p.Icon.Width <= 0 || p.Icon.Height <= 0 {
		return fmt.Errorf("icon size must be positive: %w", ErrInvalidPlan)
	}

	if p.Feature.Output == "" || p.Feature.Logo.Source == "" {
		return fmt.Errorf("feature.output and feature.logo.source are required fields: %w", ErrInvalidPlan)
	}

	if p.Feature.Width <= 0 || p.Feature.Height <= 0 {
		return fmt.Errorf("feature size must be positive: %w", ErrInvalidPlan)
	}

	if p.Feature.Logo.Width <= 0 || p.Feature.Logo.Height <= 0 {
		return fmt.Errorf("feature.logo size must be positive: %w", ErrInvalidPlan)
	}

	for i, label := range []TextLabel{p.Feature.Title, p.Feature.Subtitle} {
		if label.Text != "" && label.Size <= 0 {
			return fmt.Errorf("feature text[%d].size must be positive: %w", i, ErrInvalidPlan)
		}
	}

	for i, src := range p.ScreenSources {
		if src.Source == "" {
			return fmt.Errorf("screen_sources[%d].source is required field: %w", i, ErrInvalidPlan)
		}
		if src.Output == "" {
			return fmt.Errorf("screen_sources[%d].output is required field: %w", i, ErrInvalidPlan)
		}
	}

	for i, ff := range p.FormFactors {
		if ff.Dir == "" {
			return fmt.Errorf("form_factors[%d].dir is required field: %w", i, ErrInvalidPlan)
		}
		if ff.Width <= 0 || ff.Height <= 0 {
			return fmt.Errorf("form_factors[%d] size must be positive: %w", i, ErrInvalidPlan)
		}
	}

	return nil
}

// Sources lists every input file the plan reads, logo first, without duplicates.
func (p *Plan) Sources() []string {
	seen := map[string]bool{}
	var res []string
	add := func(path string) {
		if path == "" || seen[path] {
			return
		}
		seen[path] = true
		res = append(res, path)
	}
	add(p.Icon.Source)
	add(p.Feature.Logo.Source)
	for _, src := range p.ScreenSources {
		add(src.Source)
	}
	return res
}
