// Package slog provides logging decorators for artid services using the
// standard library's structured logger.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/rgolab/artid"
)

// Ensure LoggingRecordService implements artid.RecordService.
var _ artid.RecordService = (*LoggingRecordService)(nil)

// LoggingRecordService wraps a RecordService with structured logging for
// archive writes and duplicate lookups.
type LoggingRecordService struct {
	next   artid.RecordService
	logger *slog.Logger
}

// NewLoggingRecordService creates a new LoggingRecordService.
func NewLoggingRecordService(next artid.RecordService, logger *slog.Logger) *LoggingRecordService {
	return &LoggingRecordService{next: next, logger: logger}
}

// CreateRecord logs the outcome and timing of an archive write.
func (s *LoggingRecordService) CreateRecord(ctx context.Context, rec *artid.Record) error {
	begin := time.Now()
	err := s.next.CreateRecord(ctx, rec)
	if err != nil {
		s.logger.Error("archive record",
			"article_id", rec.ArticleID,
			"content_hash", rec.ContentHash,
			"error", err,
			"duration", time.Since(begin),
		)
		return err
	}
	s.logger.Info("archive record",
		"article_id", rec.ArticleID,
		"content_hash", rec.ContentHash,
		"words", rec.WordCount,
		"duration", time.Since(begin),
	)
	return nil
}

// FindRecordByID delegates to the wrapped service.
func (s *LoggingRecordService) FindRecordByID(ctx context.Context, id string) (*artid.Record, error) {
	return s.next.FindRecordByID(ctx, id)
}

// FindRecordByContentHash logs duplicate-content lookups at debug level.
func (s *LoggingRecordService) FindRecordByContentHash(ctx context.Context, hash string) (*artid.Record, error) {
	rec, err := s.next.FindRecordByContentHash(ctx, hash)
	s.logger.Debug("duplicate lookup",
		"content_hash", hash,
		"found", err == nil,
	)
	return rec, err
}

// FindRecords delegates to the wrapped service.
func (s *LoggingRecordService) FindRecords(ctx context.Context, filter artid.RecordFilter) ([]*artid.Record, error) {
	return s.next.FindRecords(ctx, filter)
}

// DeleteRecord delegates to the wrapped service.
func (s *LoggingRecordService) DeleteRecord(ctx context.Context, id string) error {
	return s.next.DeleteRecord(ctx, id)
}
