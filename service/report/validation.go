package report

import (
	"github.com/viant/wfreview/model"
	"github.com/viant/wfreview/service/validator"
)

// ValidationSection prints the structural validator findings.
type ValidationSection struct {
	validator *validator.Service
}

func (s *ValidationSection) Name() string { return "validation" }

func (s *ValidationSection) Render(doc *model.Document, p *Printer) {
	p.Blank()
	p.Heading("✅ VALIDATION:")
	result := s.validator.Validate(doc)
	if result.Valid() {
		p.Line("✅ Không có lỗi cấu trúc")
	} else {
		p.Line("❌ LỖI:")
		for _, msg := range result.Errors {
			p.Printf("  - %s\n", msg)
		}
	}
	if len(result.Warnings) > 0 {
		p.Line("⚠️ CẢNH BÁO:")
		for _, msg := range result.Warnings {
			p.Printf("  - %s\n", msg)
		}
	}
}

// NewValidationSection creates the validation section
func NewValidationSection(config Config) *ValidationSection {
	return &ValidationSection{
		validator: validator.New(
			validator.WithMinSteps(config.MinSteps),
			validator.WithPlaceholder(config.Placeholder),
		),
	}
}
