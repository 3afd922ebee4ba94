package wfreview

import (
	"github.com/viant/afs"
	"github.com/viant/afs/storage"
	"github.com/viant/wfreview/service/report"
)

// Option configures a Service
type Option func(s *Service)

// WithConfig sets the review configuration
func WithConfig(config *Config) Option {
	return func(s *Service) {
		s.config = config
	}
}

// WithSourceURL sets the reviewed document location
func WithSourceURL(URL string) Option {
	return func(s *Service) {
		s.sourceURL = URL
	}
}

// WithFS sets the storage service used to read documents
func WithFS(fs afs.Service) Option {
	return func(s *Service) {
		s.fs = fs
	}
}

// WithFSOptions sets storage options used to read documents, e.g. an embed.FS
func WithFSOptions(options ...storage.Option) Option {
	return func(s *Service) {
		s.fsOptions = options
	}
}

// WithReportOptions passes options to the report service, e.g. custom sections
func WithReportOptions(opts ...report.Option) Option {
	return func(s *Service) {
		s.reportOptions = append(s.reportOptions, opts...)
	}
}
