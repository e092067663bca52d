// Package mock provides hand-rolled mock implementations of artid
// interfaces for testing.
package mock

import (
	"context"

	"github.com/rgolab/artid"
)

var _ artid.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of artid.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*artid.Extraction, error)
	MethodFn  func() string
}

func (e *Extractor) Extract(html string) (*artid.Extraction, error) {
	return e.ExtractFn(html)
}

func (e *Extractor) Method() string {
	if e.MethodFn == nil {
		return artid.MethodReadability
	}
	return e.MethodFn()
}

var _ artid.MetadataExtractor = (*MetadataExtractor)(nil)

// MetadataExtractor is a mock implementation of artid.MetadataExtractor.
type MetadataExtractor struct {
	ExtractMetadataFn func(html, url string) (*artid.Metadata, error)
}

func (m *MetadataExtractor) ExtractMetadata(html, url string) (*artid.Metadata, error) {
	return m.ExtractMetadataFn(html, url)
}

var _ artid.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of artid.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	if f.CloseFn == nil {
		return nil
	}
	return f.CloseFn()
}

var _ artid.SitemapService = (*SitemapService)(nil)

// SitemapService is a mock implementation of artid.SitemapService.
type SitemapService struct {
	DiscoverURLsFn func(ctx context.Context, baseURL string, filter *artid.URLFilter) ([]string, error)
}

func (s *SitemapService) DiscoverURLs(ctx context.Context, baseURL string, filter *artid.URLFilter) ([]string, error) {
	return s.DiscoverURLsFn(ctx, baseURL, filter)
}

var _ artid.SnapshotStore = (*SnapshotStore)(nil)

// SnapshotStore is a mock implementation of artid.SnapshotStore.
type SnapshotStore struct {
	SaveSnapshotFn func(ctx context.Context, snap *artid.Snapshot) error
}

func (s *SnapshotStore) SaveSnapshot(ctx context.Context, snap *artid.Snapshot) error {
	if s.SaveSnapshotFn == nil {
		return nil
	}
	return s.SaveSnapshotFn(ctx, snap)
}

var _ artid.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter is a mock implementation of artid.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (d *DomainLimiter) Wait(ctx context.Context, domain string) error {
	if d.WaitFn == nil {
		return nil
	}
	return d.WaitFn(ctx, domain)
}
