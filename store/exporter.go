package store

import (
	"bytes"
	"context"
	"fmt"

	"github.com/viant/afs"
	"github.com/viant/dpgraph/profile"
)

// Payload is the exported document
type Payload struct {
	Name    string          `yaml:"name" json:"name"`
	Entries []profile.Entry `yaml:"entries" json:"entries"`
}

// Exporter uploads the export projection to a URL
type Exporter struct {
	fs  afs.Service
	URL string
}

// NewExporter creates an exporter uploading to URL
func NewExporter(URL string, options ...Option) *Exporter {
	s := New(options...)
	return &Exporter{fs: s.fs, URL: URL}
}

// Upload writes the entries encoded after the URL extension
func (e *Exporter) Upload(ctx context.Context, name string, entries []profile.Entry) error {
	data, err := profile.FormatOf(e.URL).Marshal(&Payload{Name: name, Entries: entries})
	if err != nil {
		return fmt.Errorf("failed to encode export %v: %w", name, err)
	}
	if err = e.fs.Upload(ctx, e.URL, fileMode, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to upload export %v: %w", e.URL, err)
	}
	return nil
}

// Bind returns a profile exporter uploading with ctx
func (e *Exporter) Bind(ctx context.Context) profile.Exporter {
	return profile.ExporterFunc(func(name string, entries []profile.Entry) error {
		return e.Upload(ctx, name, entries)
	})
}
