package report

import (
	"errors"
	"fmt"
)

// Config controls how values are displayed.
type Config struct {
	// DisplayLimit caps how many names each field partition lists.
	DisplayLimit int `json:"displayLimit" yaml:"displayLimit"`
	// MinSteps is the step count below which the validator warns.
	MinSteps int `json:"minSteps" yaml:"minSteps"`
	// Placeholder is shown for absent values.
	Placeholder string `json:"placeholder" yaml:"placeholder"`
	// UnknownType keys fields without a type in the type statistics.
	UnknownType string `json:"unknownType" yaml:"unknownType"`
}

// DefaultConfig returns the settings of the standard report.
func DefaultConfig() Config {
	return Config{
		DisplayLimit: 10,
		MinSteps:     2,
		Placeholder:  "N/A",
		UnknownType:  "unknown",
	}
}

// Validate returns an aggregated error describing invalid settings or nil.
func (c *Config) Validate() error {
	var errs []error
	if c.DisplayLimit <= 0 {
		errs = append(errs, fmt.Errorf("report.displayLimit must be > 0"))
	}
	if c.MinSteps < 0 {
		errs = append(errs, fmt.Errorf("report.minSteps must be >= 0"))
	}
	return errors.Join(errs...)
}
