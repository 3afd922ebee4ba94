package report

import "github.com/viant/wfreview/model"

// StepsSection lists the workflow steps.
type StepsSection struct {
	placeholder string
}

func (s *StepsSection) Name() string { return "steps" }

func (s *StepsSection) Render(doc *model.Document, p *Printer) {
	p.Banner("📋 PHÂN TÍCH CẤU HÌNH WORKFLOW")
	if !doc.Has(model.KeyRelatives) {
		return
	}
	steps := doc.Steps()
	p.Blank()
	p.Printf("🔄 WORKFLOW STEPS (%d bước):\n", len(steps))
	for i, step := range steps {
		p.Printf("  %d. %s\n", i+1, step.Summary().Text(s.placeholder))
		p.Printf("     - ID: %s\n", step.ID().Text(s.placeholder))
		p.Printf("     - Type: %s\n", step.Type().Text(s.placeholder))
		p.Printf("     - Status: %s\n", step.Status().Text(s.placeholder))
		p.Printf("     - Phase Type: %s\n", step.PhaseType().Text(s.placeholder))
		if sla := step.SLA(); sla != nil {
			p.Printf("     - SLA: Response %sh, Fix %sh\n", sla.Response().Text(s.placeholder), sla.Fix().Text(s.placeholder))
		}
		p.Blank()
	}
}

// NewStepsSection creates the workflow steps section
func NewStepsSection(config Config) *StepsSection {
	return &StepsSection{placeholder: config.Placeholder}
}
