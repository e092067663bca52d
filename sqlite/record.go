package sqlite

import (
	"context"
	"database/sql"
	"encoding/binary"
	"encoding/hex"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"github.com/rgolab/artid"
)

// Compile-time interface verification.
var _ artid.RecordService = (*RecordService)(nil)

// RecordService implements artid.RecordService using SQLite.
type RecordService struct {
	db *DB
}

// NewRecordService creates a new RecordService.
func NewRecordService(db *DB) *RecordService {
	return &RecordService{db: db}
}

// hashRaw computes xxHash of the processed text and returns a hex string.
// This is a cheap change-detection key, distinct from the SHA-256 content
// hash that defines identity.
func hashRaw(text string) string {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], xxhash.Sum64String(text))
	return hex.EncodeToString(b[:])
}

const recordColumns = `id, article_id, content_hash, extraction_method, word_count, char_count,
	version, url, canonical_url, title, publish_date, processed_text, raw_hash, archived_at`

// CreateRecord persists a new record, assigning its ID, raw hash, and
// archive timestamp.
func (s *RecordService) CreateRecord(ctx context.Context, rec *artid.Record) error {
	if err := rec.Validate(); err != nil {
		return err
	}

	rec.ID = uuid.New().String()
	rec.RawHash = hashRaw(rec.ProcessedText)
	rec.ArchivedAt = time.Now().UTC()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO records (`+recordColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, rec.ID, rec.ArticleID, rec.ContentHash, rec.ExtractionMethod, rec.WordCount, rec.CharCount,
		rec.Version, rec.URL, rec.CanonicalURL, rec.Title, rec.PublishDate, rec.ProcessedText,
		rec.RawHash, rec.ArchivedAt.Format(time.RFC3339))

	return err
}

// FindRecordByID retrieves a record by ID.
func (s *RecordService) FindRecordByID(ctx context.Context, id string) (*artid.Record, error) {
	return s.findOne(ctx, "id = ?", id)
}

// FindRecordByContentHash retrieves the record with the given content hash.
func (s *RecordService) FindRecordByContentHash(ctx context.Context, hash string) (*artid.Record, error) {
	return s.findOne(ctx, "content_hash = ?", hash)
}

func (s *RecordService) findOne(ctx context.Context, where string, arg any) (*artid.Record, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+recordColumns+`
		FROM records
		WHERE `+where, arg)

	rec, err := scanRecord(row.Scan)
	if err == sql.ErrNoRows {
		return nil, artid.Errorf(artid.ENOTFOUND, "record not found")
	}
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// FindRecords retrieves records matching the filter, newest first.
func (s *RecordService) FindRecords(ctx context.Context, filter artid.RecordFilter) ([]*artid.Record, error) {
	var query strings.Builder
	query.WriteString("SELECT " + recordColumns + " FROM records WHERE 1=1")

	var args []any
	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.ArticleID != nil {
		query.WriteString(" AND article_id = ?")
		args = append(args, *filter.ArticleID)
	}
	if filter.ContentHash != nil {
		query.WriteString(" AND content_hash = ?")
		args = append(args, *filter.ContentHash)
	}
	query.WriteString(" ORDER BY archived_at DESC, id")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*artid.Record
	for rows.Next() {
		rec, err := scanRecord(rows.Scan)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// DeleteRecord permanently removes a record.
func (s *RecordService) DeleteRecord(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM records WHERE id = ?", id)
	if err != nil {
		return err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return artid.Errorf(artid.ENOTFOUND, "record not found")
	}
	return nil
}

// scanRecord scans one row into a Record using the given scan function.
func scanRecord(scan func(dest ...any) error) (*artid.Record, error) {
	var rec artid.Record
	var archivedAt string

	if err := scan(&rec.ID, &rec.ArticleID, &rec.ContentHash, &rec.ExtractionMethod,
		&rec.WordCount, &rec.CharCount, &rec.Version, &rec.URL, &rec.CanonicalURL,
		&rec.Title, &rec.PublishDate, &rec.ProcessedText, &rec.RawHash, &archivedAt); err != nil {
		return nil, err
	}

	t, err := parseRFC3339(archivedAt, "archived_at")
	if err != nil {
		return nil, err
	}
	rec.ArchivedAt = t

	return &rec, nil
}
