package report

import "github.com/viant/wfreview/model"

// TableSection describes the table columns.
type TableSection struct {
	placeholder string
}

func (s *TableSection) Name() string { return "table" }

func (s *TableSection) Render(doc *model.Document, p *Printer) {
	p.Blank()
	p.Heading("📊 PHÂN TÍCH CẤU TRÚC BẢNG:")
	table := doc.Table()
	if table == nil {
		return
	}
	columns := table.Columns()
	p.Printf("Số cột: %d\n", len(columns))
	for i, column := range columns {
		p.Printf("  %d. %s\n", i+1, column.Name().Text(s.placeholder))
		p.Printf("     - Type: %s\n", column.Type().Text(s.placeholder))
		p.Printf("     - Required: %t\n", column.Required())
	}
}

// NewTableSection creates the table structure section
func NewTableSection(config Config) *TableSection {
	return &TableSection{placeholder: config.Placeholder}
}
