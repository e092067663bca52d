package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rgolab/artid"
)

// Run executes the fingerprint command.
func (c *FingerprintCmd) Run(deps *Dependencies) error {
	var html string
	if c.File != "" {
		data, err := os.ReadFile(c.File)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: cannot read %q: %v\n", c.File, err)
			return err
		}
		html = string(data)
	} else {
		fetched, err := deps.Fetcher.Fetch(deps.Ctx, c.URL)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", artid.ErrorMessage(err))
			return err
		}
		html = fetched
	}

	ext, err := deps.Extractor.Extract(html)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", artid.ErrorMessage(err))
		return err
	}

	hints, err := deps.Metadata.ExtractMetadata(html, c.URL)
	if err != nil {
		// Metadata is best effort; identity falls back to the URL.
		hints = nil
	}
	if hints == nil || hints.Title == "" || hints.Title == "Unknown" {
		if hints == nil {
			hints = &artid.Metadata{URL: c.URL}
		}
		hints.Title = ext.Title
	}

	builder := artid.NewBuilder(nil, deps.Extractor.Method())
	result, err := builder.Build(ext, c.URL, hints)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", artid.ErrorMessage(err))
		return err
	}

	enc := json.NewEncoder(deps.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}
