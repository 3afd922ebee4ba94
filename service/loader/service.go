package loader

import (
	"bytes"
	"context"
	"errors"
	"strings"

	"github.com/goccy/go-json"
	"github.com/viant/afs"
	"github.com/viant/afs/storage"
	"github.com/viant/afs/url"
	"github.com/viant/wfreview/internal/yml"
	"github.com/viant/wfreview/model"
)

var byteOrderMark = []byte{0xEF, 0xBB, 0xBF}

// Service loads workflow documents from any location supported by afs.
type Service struct {
	fs        afs.Service
	baseURL   string
	fsOptions []storage.Option
}

// URL resolves location against the base URL when it is relative.
func (s *Service) URL(location string) string {
	if s.baseURL != "" && url.IsRelative(location) {
		return url.Join(s.baseURL, location)
	}
	return location
}

// Load reads and parses the document at location. Failures are reported
// as *Error wrapping ErrNotFound or ErrMalformed.
func (s *Service) Load(ctx context.Context, location string) (*model.Document, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}
	URL := s.URL(location)
	exists, err := s.fs.Exists(ctx, URL, s.fsOptions...)
	if err != nil || !exists {
		return nil, &Error{Kind: NotFound, URL: location, Err: err}
	}
	data, err := s.fs.DownloadWithURL(ctx, URL, s.fsOptions...)
	if err != nil {
		return nil, &Error{Kind: NotFound, URL: location, Err: err}
	}
	doc, err := Decode(data)
	if err != nil {
		var loadErr *Error
		if errors.As(err, &loadErr) {
			loadErr.URL = location
		}
		return nil, err
	}
	doc.Source = &model.Source{URL: URL}
	return doc, nil
}

// Decode parses JSON text into a document. The text must be well-formed
// JSON; any shape is accepted at the root.
func Decode(data []byte) (*model.Document, error) {
	data = bytes.TrimPrefix(data, byteOrderMark)
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, newMalformed(data, "unexpected end of JSON input", int64(len(data)), nil)
	}
	var probe interface{}
	if err := json.Unmarshal(data, &probe); err != nil {
		offset := int64(-1)
		var syntaxErr *json.SyntaxError
		if errors.As(err, &syntaxErr) {
			offset = syntaxErr.Offset
		}
		return nil, newMalformed(data, strings.TrimPrefix(err.Error(), "json: "), offset, err)
	}
	root, err := yml.Decode(data)
	if err != nil {
		return nil, newMalformed(data, strings.TrimPrefix(err.Error(), "json: "), -1, err)
	}
	return model.NewDocument(nil, root), nil
}

func newMalformed(data []byte, msg string, offset int64, err error) *Error {
	ret := &Error{Kind: Malformed, Msg: msg, Offset: offset, Err: err}
	if offset < 0 {
		ret.Offset = 0
		return ret
	}
	if offset > int64(len(data)) {
		offset = int64(len(data))
		ret.Offset = offset
	}
	ret.Line, ret.Column = position(data[:offset])
	return ret
}

// position returns the 1-based line and column just past prefix.
func position(prefix []byte) (line, column int) {
	line = 1 + bytes.Count(prefix, []byte{'\n'})
	column = len(prefix) - bytes.LastIndexByte(prefix, '\n')
	return line, column
}

// New creates a loader service
func New(opts ...Option) *Service {
	ret := &Service{fs: afs.New()}
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}
