package wfreview

import (
	"context"
	"errors"
	"fmt"

	"github.com/viant/afs"
	"github.com/viant/wfreview/service/report"
	"gopkg.in/yaml.v3"
)

// DefaultSourceURL is the document reviewed when no other location is configured.
const DefaultSourceURL = "Untitled-1.json"

// Config is a serialisable representation of the review configuration. It
// can be populated from YAML or JSON; fields missing from the file keep
// their DefaultConfig value.
type Config struct {
	Source  SourceConfig  `json:"source" yaml:"source"`
	Report  report.Config `json:"report" yaml:"report"`
	Tracing TracingConfig `json:"tracing" yaml:"tracing"`
}

type SourceConfig struct {
	URL string `json:"url" yaml:"url"`
	// BaseURL resolves a relative URL; any afs location is accepted.
	BaseURL string `json:"baseURL,omitempty" yaml:"baseURL,omitempty"`
}

type TracingConfig struct {
	// Output is the span file; tracing is disabled when empty.
	Output         string `json:"output,omitempty" yaml:"output,omitempty"`
	ServiceName    string `json:"serviceName" yaml:"serviceName"`
	ServiceVersion string `json:"serviceVersion" yaml:"serviceVersion"`
}

// DefaultConfig returns a Config populated with the standard review settings.
// Callers may modify the returned struct before passing it to WithConfig.
func DefaultConfig() *Config {
	return &Config{
		Source: SourceConfig{URL: DefaultSourceURL},
		Report: report.DefaultConfig(),
		Tracing: TracingConfig{
			ServiceName:    "wfreview",
			ServiceVersion: Version,
		},
	}
}

// Validate returns aggregated error describing invalid settings or nil.
func (c *Config) Validate() error {
	if c == nil {
		return nil
	}
	var errs []error
	if c.Source.URL == "" {
		errs = append(errs, fmt.Errorf("source.url is required"))
	}
	if err := c.Report.Validate(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// LoadConfig reads a YAML configuration from URL over DefaultConfig.
func LoadConfig(ctx context.Context, fs afs.Service, URL string) (*Config, error) {
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to load config from %s: %w", URL, err)
	}
	ret := DefaultConfig()
	if err = yaml.Unmarshal(data, ret); err != nil {
		return nil, fmt.Errorf("failed to decode config %s: %w", URL, err)
	}
	if err = ret.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", URL, err)
	}
	return ret, nil
}
