package wfreview

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/viant/afs"
	"github.com/viant/afs/storage"
	"github.com/viant/wfreview/internal/clock"
	"github.com/viant/wfreview/internal/idgen"
	"github.com/viant/wfreview/model"
	"github.com/viant/wfreview/service/loader"
	"github.com/viant/wfreview/service/report"
	"github.com/viant/wfreview/tracing"
)

type Service struct {
	config        *Config
	sourceURL     string
	fs            afs.Service
	fsOptions     []storage.Option
	loader        *loader.Service
	reporter      *report.Service
	reportOptions []report.Option
}

func (s *Service) init(options []Option) error {
	for _, option := range options {
		option(s)
	}
	if s.config == nil {
		s.config = DefaultConfig()
	}
	if s.sourceURL != "" {
		s.config.Source.URL = s.sourceURL
	}
	if err := s.config.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if s.fs == nil {
		s.fs = afs.New()
	}
	s.loader = loader.New(
		loader.WithFS(s.fs),
		loader.WithBaseURL(s.config.Source.BaseURL),
		loader.WithFSOptions(s.fsOptions...),
	)
	s.reporter = report.New(s.config.Report, s.reportOptions...)

	if tracingConfig := s.config.Tracing; tracingConfig.Output != "" {
		if err := tracing.Init(tracingConfig.ServiceName, tracingConfig.ServiceVersion, tracingConfig.Output); err != nil {
			log.Printf("failed to initialise tracing: %v", err)
		}
	}
	return nil
}

// Config returns the effective configuration.
func (s *Service) Config() *Config {
	return s.config
}

// Review writes the report of the configured document to w. It returns an
// error only when the document cannot be loaded or the report cannot be
// written; in the first case the failure is also reported on w and no
// section is rendered.
func (s *Service) Review(ctx context.Context, w io.Writer) (err error) {
	location := s.config.Source.URL
	ctx, span := tracing.StartSpan(ctx, "review")
	span.WithAttributes(map[string]string{"review.id": idgen.New(), "review.source": location})
	defer func() { tracing.EndSpan(span, err) }()

	p := report.NewPrinter(w)
	p.Printf("🔍 REVIEW FILE: %s\n", location)
	p.Printf("⏰ Thời gian: %s\n", clock.Stamp())

	doc, err := s.load(ctx, location)
	if err != nil {
		p.Line(failureMessage(location, err))
		return err
	}
	if err = s.reporter.Render(ctx, doc, p); err != nil {
		return err
	}
	p.Blank()
	p.Banner("🎉 REVIEW HOÀN THÀNH!")
	if err = p.Err(); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

func (s *Service) load(ctx context.Context, location string) (doc *model.Document, err error) {
	ctx, span := tracing.StartSpan(ctx, "load")
	defer func() { tracing.EndSpan(span, err) }()
	return s.loader.Load(ctx, location)
}

func failureMessage(location string, err error) string {
	var loadErr *loader.Error
	switch {
	case errors.As(err, &loadErr) && loadErr.Kind == loader.Malformed:
		return "❌ Lỗi JSON: " + loadErr.Diagnostic()
	case errors.Is(err, loader.ErrNotFound):
		return "❌ Không tìm thấy file: " + location
	default:
		return "❌ " + err.Error()
	}
}

// New creates a review service. It fails when the configuration is invalid.
func New(options ...Option) (*Service, error) {
	ret := &Service{}
	if err := ret.init(options); err != nil {
		return nil, err
	}
	return ret, nil
}
