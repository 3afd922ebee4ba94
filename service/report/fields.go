package report

import "github.com/viant/wfreview/model"

// TypeCount is the number of fields sharing a type.
type TypeCount struct {
	Type  string
	Count int
}

// FieldStats summarises the form fields of a document.
type FieldStats struct {
	Total int
	// Types lists each field type once, in order of first occurrence.
	Types []TypeCount
	// Required and Optional hold field names in document order.
	Required []string
	Optional []string
}

// AnalyzeFields counts fields by type and splits them by conditions.required.
func AnalyzeFields(fields []*model.Field, placeholder, unknownType string) *FieldStats {
	stats := &FieldStats{Total: len(fields)}
	index := map[string]int{}
	for _, field := range fields {
		fieldType := field.Type().Text(unknownType)
		if i, ok := index[fieldType]; ok {
			stats.Types[i].Count++
		} else {
			index[fieldType] = len(stats.Types)
			stats.Types = append(stats.Types, TypeCount{Type: fieldType, Count: 1})
		}
		name := field.Name().Text(placeholder)
		if field.Required() {
			stats.Required = append(stats.Required, name)
		} else {
			stats.Optional = append(stats.Optional, name)
		}
	}
	return stats
}

// FieldsSection reports field statistics.
type FieldsSection struct {
	config Config
}

func (s *FieldsSection) Name() string { return "fields" }

func (s *FieldsSection) Render(doc *model.Document, p *Printer) {
	p.Heading("📝 PHÂN TÍCH FORM FIELDS:")
	if !doc.Has(model.KeyIndividual) {
		return
	}
	stats := AnalyzeFields(doc.Fields(), s.config.Placeholder, s.config.UnknownType)
	p.Printf("Tổng số trường: %d\n", stats.Total)

	p.Blank()
	p.Line("📊 Thống kê theo loại:")
	for _, typeCount := range stats.Types {
		p.Printf("  - %s: %d\n", typeCount.Type, typeCount.Count)
	}

	p.Blank()
	p.Printf("🔴 Trường bắt buộc (%d):\n", len(stats.Required))
	s.list(p, stats.Required)

	p.Blank()
	p.Printf("🟢 Trường tùy chọn (%d):\n", len(stats.Optional))
	s.list(p, stats.Optional)
}

// list prints at most DisplayLimit names and a count of the rest.
func (s *FieldsSection) list(p *Printer, names []string) {
	shown := names
	if len(shown) > s.config.DisplayLimit {
		shown = shown[:s.config.DisplayLimit]
	}
	for _, name := range shown {
		p.Printf("  - %s\n", name)
	}
	if rest := len(names) - len(shown); rest > 0 {
		p.Printf("  ... và %d trường khác\n", rest)
	}
}

// NewFieldsSection creates the form fields section
func NewFieldsSection(config Config) *FieldsSection {
	return &FieldsSection{config: config}
}
