package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/rgolab/artid"
	"github.com/rgolab/artid/bloom"
	"github.com/rgolab/artid/fs"
	"github.com/rgolab/artid/goquery"
	artidhttp "github.com/rgolab/artid/http"
	"github.com/rgolab/artid/pipeline"
	"github.com/rgolab/artid/readability"
	artidslog "github.com/rgolab/artid/slog"
	"github.com/rgolab/artid/sqlite"
	"github.com/rgolab/artid/trafilatura"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Service for end-to-end testing.
	RecordService artid.RecordService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("artid"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'artid --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// The fingerprint command is stateless and can run without a database.
	if cmd != "fingerprint" {
		m.DB = sqlite.NewDB(m.DBPath)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set ARTID_DB to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
		}
		defer m.Close()

		logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: logLevel()}))
		m.RecordService = artidslog.NewLoggingRecordService(sqlite.NewRecordService(m.DB), logger)
		deps.DB = m.DB
		deps.Records = m.RecordService
	}

	deps.Sitemaps = artidhttp.NewSitemapService(nil)
	deps.Fetcher = artidhttp.NewFetcher()
	deps.Metadata = goquery.NewExtractor()

	if cmd == "fingerprint" {
		deps.Extractor = newExtractor(cli.Fingerprint.Method)
	}

	if cmd == "archive" {
		extractor := newExtractor(cli.Archive.Method)

		// Seed the duplicate filter with hashes already archived so
		// re-runs short-circuit without a database probe per URL.
		seen := bloom.NewFilter(100000, 0.01)
		existing, err := m.RecordService.FindRecords(ctx, artid.RecordFilter{})
		if err != nil {
			return err
		}
		for _, rec := range existing {
			seen.Add(rec.ContentHash)
		}

		deps.Archiver = &pipeline.Archiver{
			Fetcher:     deps.Fetcher,
			Extractor:   extractor,
			Metadata:    deps.Metadata,
			Builder:     artid.NewBuilder(nil, extractor.Method()),
			Records:     m.RecordService,
			Seen:        seen,
			RateLimiter: pipeline.NewDomainLimiter(1.0),
			Concurrency: cli.Archive.Concurrency,
		}
		if cli.Archive.SnapshotDir != "" {
			deps.Archiver.Snapshots = fs.NewStore(cli.Archive.SnapshotDir)
		}
	}

	return kongCtx.Run(deps)
}

// newExtractor maps a --method flag value to an extractor implementation.
func newExtractor(method string) artid.Extractor {
	if method == artid.MethodTrafilatura {
		return trafilatura.NewExtractor()
	}
	return readability.NewExtractor()
}

func logLevel() slog.Level {
	if os.Getenv("ARTID_DEBUG") != "" {
		return slog.LevelDebug
	}
	return slog.LevelWarn
}

func defaultDBPath() string {
	if path := os.Getenv("ARTID_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "artid.db"
	}
	dir := filepath.Join(home, ".artid")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "artid.db")
}
