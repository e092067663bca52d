package artid

import "context"

// Snapshot is a raw HTML capture of a fetched page, kept so articles can be
// re-fingerprinted later without refetching.
type Snapshot struct {
	URL   string
	HTML  string
	Title string
}

// SnapshotStore persists raw page captures.
type SnapshotStore interface {
	SaveSnapshot(ctx context.Context, snap *Snapshot) error
}
