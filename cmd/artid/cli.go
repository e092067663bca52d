package main

import (
	"context"
	"io"

	"github.com/rgolab/artid"
	"github.com/rgolab/artid/pipeline"
	"github.com/rgolab/artid/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	DB        *sqlite.DB
	Records   artid.RecordService
	Sitemaps  artid.SitemapService
	Fetcher   artid.Fetcher
	Extractor artid.Extractor
	Metadata  artid.MetadataExtractor
	Archiver  *pipeline.Archiver
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Fingerprint FingerprintCmd `cmd:"" help:"Fingerprint a single article and print the result as JSON"`
	Archive     ArchiveCmd     `cmd:"" help:"Fetch, fingerprint, and store a batch of articles"`
	List        ListCmd        `cmd:"" help:"List archived records"`
	Show        ShowCmd        `cmd:"" help:"Show a single archived record"`
	Delete      DeleteCmd      `cmd:"" help:"Delete an archived record"`
}

// FingerprintCmd is the "fingerprint" subcommand.
type FingerprintCmd struct {
	URL    string `arg:"" help:"Article URL"`
	Method string `short:"m" default:"readability" enum:"readability,trafilatura" help:"Extraction method"`
	File   string `short:"f" help:"Read HTML from a file instead of fetching the URL"`
}

// ArchiveCmd is the "archive" subcommand.
type ArchiveCmd struct {
	URLs        []string `arg:"" optional:"" help:"Article URLs"`
	Sitemap     string   `short:"s" help:"Discover article URLs from this site's sitemap"`
	Filter      []string `short:"F" name:"filter" help:"Filter sitemap URLs by regex (repeatable)"`
	Method      string   `short:"m" default:"readability" enum:"readability,trafilatura" help:"Extraction method"`
	Concurrency int      `short:"c" default:"4" help:"Concurrent fetch limit"`
	SnapshotDir string   `help:"Save raw HTML captures under this directory"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	ArticleID string `help:"Only records for this article id"`
	Limit     int    `default:"50" help:"Maximum records to print"`
	Offset    int    `help:"Records to skip"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	ID   string `arg:"" help:"Record ID, or content hash with --by-hash"`
	Hash bool   `name:"by-hash" help:"Look up by content hash instead of record ID"`
	Text bool   `help:"Include the normalized article text"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID    string `arg:"" help:"Record ID"`
	Force bool   `help:"Confirm deletion"`
}
