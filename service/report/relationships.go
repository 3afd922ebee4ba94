package report

import "github.com/viant/wfreview/model"

// RelationshipsSection lists the directed links of the workflow.
type RelationshipsSection struct {
	placeholder string
}

func (s *RelationshipsSection) Name() string { return "relationships" }

func (s *RelationshipsSection) Render(doc *model.Document, p *Printer) {
	p.Blank()
	p.Heading("🔗 PHÂN TÍCH MỐI QUAN HỆ:")
	if !doc.Has(model.KeyRelationships) {
		return
	}
	relationships := doc.Relationships()
	p.Printf("Số mối quan hệ: %d\n", len(relationships))
	for _, relationship := range relationships {
		p.Printf("  - Từ %s → %s\n", relationship.From().Text(s.placeholder), relationship.To().Text(s.placeholder))
		p.Printf("    Type: %s\n", relationship.Type().Text(s.placeholder))
		p.Printf("    Status: %s\n", relationship.Status().Text(s.placeholder))
	}
}

// NewRelationshipsSection creates the relationships section
func NewRelationshipsSection(config Config) *RelationshipsSection {
	return &RelationshipsSection{placeholder: config.Placeholder}
}
