package report

import "github.com/viant/wfreview/model"

// Section renders one facet of a workflow document.
type Section interface {
	// Name identifies the section in traces and errors.
	Name() string
	Render(doc *model.Document, p *Printer)
}

// DefaultSections returns the standard sections in report order.
func DefaultSections(config Config) []Section {
	return []Section{
		NewStepsSection(config),
		NewFieldsSection(config),
		NewTableSection(config),
		NewRelationshipsSection(config),
		NewPrintConfigSection(config),
		NewValidationSection(config),
	}
}
