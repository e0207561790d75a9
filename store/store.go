// Package store loads and saves profile documents by URL.
package store

import (
	"bytes"
	"context"
	"fmt"
	"sync"

	"github.com/viant/afs"
	"github.com/viant/dpgraph/logger"
	"github.com/viant/dpgraph/profile"
)

const fileMode = 0644

// Store persists profiles with afs, the encoding follows the URL extension
type Store struct {
	fs    afs.Service
	mux   sync.Mutex
	saved map[string]uint64 // URL fingerprint of the last load or save
}

// Option configures a Store
type Option func(*Store)

// WithService sets the storage service
func WithService(fs afs.Service) Option {
	return func(s *Store) {
		s.fs = fs
	}
}

// New creates a store
func New(options ...Option) *Store {
	s := &Store{saved: make(map[string]uint64)}
	for _, option := range options {
		option(s)
	}
	if s.fs == nil {
		s.fs = afs.New()
	}
	return s
}

// Exists returns true if URL holds a resource
func (s *Store) Exists(ctx context.Context, URL string) (bool, error) {
	return s.fs.Exists(ctx, URL)
}

// Load downloads, validates and builds the profile stored at URL
func (s *Store) Load(ctx context.Context, URL string) (*profile.Profile, error) {
	data, err := s.fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to download profile %v: %w", URL, err)
	}
	p, err := profile.Decode(data, profile.FormatOf(URL))
	if err != nil {
		return nil, fmt.Errorf("failed to load profile %v: %w", URL, err)
	}
	if fingerprint, err := p.Fingerprint(); err == nil {
		s.remember(URL, fingerprint)
	}
	logger.Debug("profile loaded", "url", URL, "points", p.Len())
	return p, nil
}

// Save uploads the profile to URL unless the stored content is already identical.
// It returns true if an upload took place.
func (s *Store) Save(ctx context.Context, URL string, p *profile.Profile) (bool, error) {
	fingerprint, err := p.Fingerprint()
	if err != nil {
		return false, err
	}
	if previous, ok := s.fingerprint(URL); ok && previous == fingerprint {
		if exists, _ := s.fs.Exists(ctx, URL); exists {
			p.MarkClean()
			logger.Debug("profile unchanged", "url", URL)
			return false, nil
		}
	}
	data, err := p.Encode(profile.FormatOf(URL))
	if err != nil {
		return false, fmt.Errorf("failed to encode profile %v: %w", p.Name, err)
	}
	if err = s.fs.Upload(ctx, URL, fileMode, bytes.NewReader(data)); err != nil {
		return false, fmt.Errorf("failed to upload profile %v: %w", URL, err)
	}
	s.remember(URL, fingerprint)
	p.MarkClean()
	logger.Info("profile saved", "url", URL, "points", p.Len())
	return true, nil
}

func (s *Store) remember(URL string, fingerprint uint64) {
	s.mux.Lock()
	defer s.mux.Unlock()
	s.saved[URL] = fingerprint
}

func (s *Store) fingerprint(URL string) (uint64, bool) {
	s.mux.Lock()
	defer s.mux.Unlock()
	fingerprint, ok := s.saved[URL]
	return fingerprint, ok
}
