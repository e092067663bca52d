// Package fs provides file-based storage for raw page captures.
package fs

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/rgolab/artid"
)

// Ensure Store implements artid.SnapshotStore at compile time.
var _ artid.SnapshotStore = (*Store)(nil)

// Store writes raw HTML captures under a base directory, one file per URL,
// grouped by host.
type Store struct {
	baseDir string
}

// NewStore creates a new Store that writes to the given base directory.
func NewStore(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

// SnapshotPath converts an article URL to a relative file path.
// Example: https://example.com/2024/03/15/story → example.com/2024/03/15/story.html
// URLs with query strings or unusable paths get a hash-derived name, so any
// URL maps to exactly one file.
func SnapshotPath(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return hashName(rawURL)
	}

	if u.RawQuery != "" {
		return filepath.Join(u.Host, hashName(rawURL))
	}

	path := strings.Trim(u.Path, "/")
	if path == "" {
		return filepath.Join(u.Host, "index.html")
	}
	return filepath.Join(u.Host, path+".html")
}

func hashName(rawURL string) string {
	return fmt.Sprintf("%016x.html", xxhash.Sum64String(rawURL))
}

// SaveSnapshot writes one capture to disk with a small comment header
// recording provenance.
func (s *Store) SaveSnapshot(ctx context.Context, snap *artid.Snapshot) error {
	if snap == nil || snap.URL == "" {
		return artid.Errorf(artid.EINVALID, "snapshot URL required")
	}

	fullPath := filepath.Join(s.baseDir, SnapshotPath(snap.URL))
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}

	var b strings.Builder
	b.WriteString("<!-- source: ")
	b.WriteString(snap.URL)
	b.WriteString("\n     captured: ")
	b.WriteString(time.Now().UTC().Format("2006-01-02"))
	b.WriteString(" -->\n")
	b.WriteString(snap.HTML)

	return os.WriteFile(fullPath, []byte(b.String()), 0644)
}
