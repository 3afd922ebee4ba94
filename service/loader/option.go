package loader

import (
	"github.com/viant/afs"
	"github.com/viant/afs/storage"
)

type Option func(*Service)

// WithFS sets the storage service used to read documents
func WithFS(fs afs.Service) Option {
	return func(s *Service) {
		s.fs = fs
	}
}

// WithBaseURL sets the location relative URLs are resolved against
func WithBaseURL(baseURL string) Option {
	return func(s *Service) {
		s.baseURL = baseURL
	}
}

// WithFSOptions sets storage options passed on every read, e.g. an embed.FS
func WithFSOptions(options ...storage.Option) Option {
	return func(s *Service) {
		s.fsOptions = options
	}
}
