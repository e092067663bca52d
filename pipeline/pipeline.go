// Package pipeline orchestrates article archiving: fetch, extract, resolve
// metadata, fingerprint, deduplicate, and store.
package pipeline

import (
	"context"
	"errors"
	"net/url"
	"sync/atomic"

	"github.com/rgolab/artid"
	"golang.org/x/sync/errgroup"
)

// SeenFilter is a probabilistic duplicate pre-check keyed by content hash.
// A negative answer is authoritative; a positive one must be confirmed
// against the record service.
type SeenFilter interface {
	Add(hash string)
	Test(hash string) bool
}

// Archiver runs the fingerprint pipeline for batches of article URLs.
type Archiver struct {
	Fetcher     artid.Fetcher
	Extractor   artid.Extractor
	Metadata    artid.MetadataExtractor
	Builder     *artid.Builder
	Records     artid.RecordService
	Seen        SeenFilter
	Snapshots   artid.SnapshotStore
	RateLimiter artid.DomainLimiter
	Concurrency int
}

// Result holds the outcome of an archiving run.
type Result struct {
	Archived   int // new records written
	Duplicates int // content hash already archived
	Skipped    int // nothing to fingerprint (empty, errored, or excluded)
	Failed     int // fetch/extract/store errors
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressArchived
	ProgressDuplicate
	ProgressSkipped
	ProgressFailed
	ProgressFinished
)

// ProgressEvent reports progress during an archiving run.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Error     error
}

// ProgressFunc is a callback for reporting archiving progress.
type ProgressFunc func(event ProgressEvent)

// urlResult holds the outcome of processing a single URL.
type urlResult struct {
	url    string
	result *artid.Result
	err    error
}

// ArchiveURLs fingerprints and stores each URL. Individual failures never
// abort the batch; the Result tallies outcomes. The progress callback, if
// provided, receives events as the run proceeds.
func (a *Archiver) ArchiveURLs(ctx context.Context, urls []string, progress ProgressFunc) (*Result, error) {
	total := len(urls)
	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}

	concurrency := a.Concurrency
	if concurrency <= 0 {
		concurrency = 4
	}

	resultCh := make(chan urlResult, total)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for _, u := range urls {
			g.Go(func() error {
				res, err := a.processURL(gctx, u)
				resultCh <- urlResult{url: u, result: res, err: err}
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	// Writes go through this single collection loop, so the record
	// service and the seen filter are never hit concurrently.
	out := &Result{}
	var completed atomic.Int64

	for r := range resultCh {
		completed.Add(1)
		event := ProgressEvent{Completed: int(completed.Load()), Total: total, URL: r.url}

		switch {
		case r.err != nil && artid.ErrorCode(r.err) == artid.ENOCONTENT:
			out.Skipped++
			event.Type = ProgressSkipped
		case r.err != nil:
			out.Failed++
			event.Type = ProgressFailed
			event.Error = r.err
		default:
			switch err := a.store(ctx, r.url, r.result); {
			case err == errDuplicate:
				out.Duplicates++
				event.Type = ProgressDuplicate
			case err != nil:
				out.Failed++
				event.Type = ProgressFailed
				event.Error = err
			default:
				out.Archived++
				event.Type = ProgressArchived
			}
		}

		if progress != nil {
			progress(event)
		}
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})
	}

	if err := ctx.Err(); err != nil {
		return out, err
	}
	return out, nil
}

// processURL runs fetch through fingerprint for one article URL.
func (a *Archiver) processURL(ctx context.Context, rawURL string) (*artid.Result, error) {
	if a.RateLimiter != nil {
		if err := a.RateLimiter.Wait(ctx, domainOf(rawURL)); err != nil {
			return nil, err
		}
	}

	html, err := a.Fetcher.Fetch(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	ext, err := a.Extractor.Extract(html)
	if err != nil {
		return nil, err
	}

	var hints *artid.Metadata
	if a.Metadata != nil {
		// Metadata extraction is best effort; a page without parseable
		// metadata still fingerprints from URL-derived fields.
		if md, err := a.Metadata.ExtractMetadata(html, rawURL); err == nil {
			hints = md
		}
	}
	// The extracted headline backs up page metadata as a title source.
	if hints == nil {
		hints = &artid.Metadata{URL: rawURL, Title: ext.Title}
	} else if hints.Title == "" || hints.Title == "Unknown" {
		hints.Title = ext.Title
	}

	res, err := a.Builder.Build(ext, rawURL, hints)
	if err != nil {
		return nil, err
	}

	if a.Snapshots != nil {
		snap := &artid.Snapshot{URL: rawURL, HTML: html, Title: ext.Title}
		if err := a.Snapshots.SaveSnapshot(ctx, snap); err != nil {
			return nil, err
		}
	}

	return res, nil
}

// errDuplicate is an internal sentinel from store; never returned to callers.
var errDuplicate = errors.New("duplicate content hash")

// store writes one fingerprint result, consulting the seen filter and the
// archive before inserting.
func (a *Archiver) store(ctx context.Context, rawURL string, res *artid.Result) error {
	hash := res.Fingerprint.ContentHash

	if a.Seen == nil || a.Seen.Test(hash) {
		if _, err := a.Records.FindRecordByContentHash(ctx, hash); err == nil {
			return errDuplicate
		} else if artid.ErrorCode(err) != artid.ENOTFOUND {
			return err
		}
	}

	rec := &artid.Record{
		ArticleID:        res.Fingerprint.ArticleID,
		ContentHash:      hash,
		ExtractionMethod: res.Fingerprint.ExtractionMethod,
		WordCount:        res.Fingerprint.WordCount,
		CharCount:        res.Fingerprint.CharCount,
		Version:          res.Fingerprint.Version,
		URL:              rawURL,
		CanonicalURL:     res.Metadata.CanonicalURL,
		Title:            res.Metadata.Title,
		PublishDate:      res.Metadata.PublishDate,
		ProcessedText:    res.ProcessedText,
	}
	if err := a.Records.CreateRecord(ctx, rec); err != nil {
		return err
	}

	if a.Seen != nil {
		a.Seen.Add(hash)
	}
	return nil
}

// domainOf extracts the host for rate limiting; a malformed URL rate-limits
// under its raw string, which is safe if overly conservative.
func domainOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return rawURL
	}
	return u.Host
}
