package main_test

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rgolab/artid"
	main "github.com/rgolab/artid/cmd/artid"
	"github.com/rgolab/artid/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShowCmd_Run(t *testing.T) {
	t.Parallel()

	rec := &artid.Record{
		ID:            "rec-123",
		ArticleID:     "a1b2c3d4e5f60718",
		ContentHash:   "feedbeef",
		Title:         "Senate passes spending bill",
		URL:           "https://example.com/senate",
		ProcessedText: "Full normalized article text.",
	}

	t.Run("shows record by ID as JSON without text", func(t *testing.T) {
		t.Parallel()

		records := &mock.RecordService{
			FindRecordByIDFn: func(_ context.Context, id string) (*artid.Record, error) {
				assert.Equal(t, "rec-123", id)
				r := *rec
				return &r, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  &bytes.Buffer{},
			Records: records,
		}

		cmd := &main.ShowCmd{ID: "rec-123"}
		err := cmd.Run(deps)

		require.NoError(t, err)

		var got artid.Record
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &got))
		assert.Equal(t, "a1b2c3d4e5f60718", got.ArticleID)
		assert.Empty(t, got.ProcessedText)
	})

	t.Run("includes text with --text", func(t *testing.T) {
		t.Parallel()

		records := &mock.RecordService{
			FindRecordByIDFn: func(_ context.Context, _ string) (*artid.Record, error) {
				r := *rec
				return &r, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  &bytes.Buffer{},
			Records: records,
		}

		cmd := &main.ShowCmd{ID: "rec-123", Text: true}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Full normalized article text.")
	})

	t.Run("looks up by content hash with --by-hash", func(t *testing.T) {
		t.Parallel()

		records := &mock.RecordService{
			FindRecordByContentHashFn: func(_ context.Context, hash string) (*artid.Record, error) {
				assert.Equal(t, "feedbeef", hash)
				r := *rec
				return &r, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  &bytes.Buffer{},
			Records: records,
		}

		cmd := &main.ShowCmd{ID: "feedbeef", Hash: true}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "rec-123")
	})

	t.Run("reports not found", func(t *testing.T) {
		t.Parallel()

		records := &mock.RecordService{
			FindRecordByIDFn: func(_ context.Context, _ string) (*artid.Record, error) {
				return nil, artid.Errorf(artid.ENOTFOUND, "record not found")
			},
		}

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  &bytes.Buffer{},
			Stderr:  stderr,
			Records: records,
		}

		cmd := &main.ShowCmd{ID: "missing"}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "record not found")
	})
}
