package mock

import (
	"context"

	"github.com/rgolab/artid"
)

var _ artid.RecordService = (*RecordService)(nil)

// RecordService is a mock implementation of artid.RecordService.
type RecordService struct {
	CreateRecordFn            func(ctx context.Context, rec *artid.Record) error
	FindRecordByIDFn          func(ctx context.Context, id string) (*artid.Record, error)
	FindRecordByContentHashFn func(ctx context.Context, hash string) (*artid.Record, error)
	FindRecordsFn             func(ctx context.Context, filter artid.RecordFilter) ([]*artid.Record, error)
	DeleteRecordFn            func(ctx context.Context, id string) error
}

func (s *RecordService) CreateRecord(ctx context.Context, rec *artid.Record) error {
	return s.CreateRecordFn(ctx, rec)
}

func (s *RecordService) FindRecordByID(ctx context.Context, id string) (*artid.Record, error) {
	return s.FindRecordByIDFn(ctx, id)
}

func (s *RecordService) FindRecordByContentHash(ctx context.Context, hash string) (*artid.Record, error) {
	return s.FindRecordByContentHashFn(ctx, hash)
}

func (s *RecordService) FindRecords(ctx context.Context, filter artid.RecordFilter) ([]*artid.Record, error) {
	return s.FindRecordsFn(ctx, filter)
}

func (s *RecordService) DeleteRecord(ctx context.Context, id string) error {
	return s.DeleteRecordFn(ctx, id)
}
