package report

import "github.com/viant/wfreview/model"

// PrintConfigSection describes the print templates attached to steps.
type PrintConfigSection struct {
	placeholder string
}

func (s *PrintConfigSection) Name() string { return "print-config" }

func (s *PrintConfigSection) Render(doc *model.Document, p *Printer) {
	p.Blank()
	p.Heading("🖨️ PHÂN TÍCH CẤU HÌNH IN ẤN:")
	for _, step := range doc.Steps() {
		printConfig := step.PrintConfig()
		if printConfig == nil {
			continue
		}
		p.Printf("Template: %s\n", printConfig.Filename().Text(s.placeholder))
		p.Printf("URL: %s\n", printConfig.TemplateURL().Text(s.placeholder))
		p.Printf("Landscape: %t\n", printConfig.Landscape())
		p.Printf("Số tham số: %d\n", len(printConfig.Parameters()))
	}
}

// NewPrintConfigSection creates the print configuration section
func NewPrintConfigSection(config Config) *PrintConfigSection {
	return &PrintConfigSection{placeholder: config.Placeholder}
}
