package validator

import (
	"fmt"

	"github.com/viant/wfreview/model"
)

const (
	// DefaultMinSteps is the step count below which a workflow is reported as short.
	DefaultMinSteps = 2
	// DefaultPlaceholder names a step without summary in messages.
	DefaultPlaceholder = "N/A"
)

// Sections every workflow document is expected to define, in reporting order.
var requiredSections = []string{model.KeyRelatives, model.KeyRelationships}

// Result holds advisory findings; neither list stops a review.
type Result struct {
	Errors   []string `json:"errors,omitempty" yaml:"errors,omitempty"`
	Warnings []string `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

// Valid reports whether no error was found. Warnings do not count.
func (r *Result) Valid() bool {
	return len(r.Errors) == 0
}

// Service performs presence checks on a workflow document.
type Service struct {
	minSteps    int
	placeholder string
}

// Validate collects structural errors and warnings. It never mutates doc.
func (s *Service) Validate(doc *model.Document) *Result {
	result := &Result{}
	for _, section := range requiredSections {
		if !doc.Has(section) {
			result.Errors = append(result.Errors, fmt.Sprintf("Thiếu section: %s", section))
		}
	}
	if !doc.Has(model.KeyRelatives) {
		return result
	}
	if doc.Relatives().Len() < s.minSteps {
		result.Warnings = append(result.Warnings, fmt.Sprintf("Workflow có ít hơn %d bước", s.minSteps))
	}
	for _, step := range doc.Steps() {
		summary := step.Summary().Text(s.placeholder)
		if !step.Has("id") {
			result.Errors = append(result.Errors, fmt.Sprintf("Step thiếu ID: %s", summary))
		}
		if !step.Has("type") {
			result.Errors = append(result.Errors, fmt.Sprintf("Step thiếu type: %s", summary))
		}
	}
	return result
}

// New creates a validator service
func New(opts ...Option) *Service {
	ret := &Service{
		minSteps:    DefaultMinSteps,
		placeholder: DefaultPlaceholder,
	}
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}
