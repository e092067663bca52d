package artid

import (
	"context"
	"time"
)

// Record is an archived fingerprint: the fingerprint fields flattened
// alongside the resolved identity and the normalized text, as persisted by
// a RecordService.
type Record struct {
	ID               string    `json:"id"`
	ArticleID        string    `json:"articleId"`
	ContentHash      string    `json:"contentHash"`
	ExtractionMethod string    `json:"extractionMethod"`
	WordCount        int       `json:"wordCount"`
	CharCount        int       `json:"charCount"`
	Version          string    `json:"version"`
	URL              string    `json:"url"`
	CanonicalURL     string    `json:"canonicalUrl"`
	Title            string    `json:"title"`
	PublishDate      string    `json:"publishDate"`
	ProcessedText    string    `json:"processedText"`
	RawHash          string    `json:"rawHash"`
	ArchivedAt       time.Time `json:"archivedAt"`
}

// Validate returns an error if the record contains invalid fields.
func (r *Record) Validate() error {
	if r.ArticleID == "" {
		return Errorf(EINVALID, "record article ID required")
	}
	if r.ContentHash == "" {
		return Errorf(EINVALID, "record content hash required")
	}
	if r.URL == "" {
		return Errorf(EINVALID, "record URL required")
	}
	return nil
}

// RecordService represents a service for managing archived fingerprints.
type RecordService interface {
	// CreateRecord persists a new record.
	CreateRecord(ctx context.Context, rec *Record) error

	// FindRecordByID retrieves a record by ID.
	// Returns ENOTFOUND if the record does not exist.
	FindRecordByID(ctx context.Context, id string) (*Record, error)

	// FindRecordByContentHash retrieves the record with the given content
	// hash, the duplicate-content lookup used before archiving.
	// Returns ENOTFOUND if no record matches.
	FindRecordByContentHash(ctx context.Context, hash string) (*Record, error)

	// FindRecords retrieves records matching the filter, newest first.
	FindRecords(ctx context.Context, filter RecordFilter) ([]*Record, error)

	// DeleteRecord permanently removes a record.
	// Returns ENOTFOUND if the record does not exist.
	DeleteRecord(ctx context.Context, id string) error
}

// RecordFilter represents a filter for FindRecords.
type RecordFilter struct {
	ID          *string `json:"id"`
	ArticleID   *string `json:"articleId"`
	ContentHash *string `json:"contentHash"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
