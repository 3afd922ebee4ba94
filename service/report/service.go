package report

import (
	"context"
	"fmt"

	"github.com/viant/wfreview/model"
	"github.com/viant/wfreview/tracing"
)

// Service renders report sections in order.
type Service struct {
	sections []Section
}

// Sections returns the sections in render order.
func (s *Service) Sections() []Section {
	return s.sections
}

// Render writes every section of doc. It stops at the first write error.
func (s *Service) Render(ctx context.Context, doc *model.Document, p *Printer) error {
	for _, section := range s.sections {
		_, span := tracing.StartSpan(ctx, "report."+section.Name())
		section.Render(doc, p)
		err := p.Err()
		tracing.EndSpan(span, err)
		if err != nil {
			return fmt.Errorf("failed to render %s section: %w", section.Name(), err)
		}
	}
	return nil
}

// New creates a report service with the default sections
func New(config Config, opts ...Option) *Service {
	ret := &Service{sections: DefaultSections(config)}
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}
