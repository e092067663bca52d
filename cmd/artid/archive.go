package main

import (
	"fmt"
	"regexp"

	"github.com/rgolab/artid"
	"github.com/rgolab/artid/pipeline"
)

// Run executes the archive command.
func (c *ArchiveCmd) Run(deps *Dependencies) error {
	urls := c.URLs

	if c.Sitemap != "" {
		var urlFilter *artid.URLFilter
		if len(c.Filter) > 0 {
			urlFilter = &artid.URLFilter{}
			for _, pattern := range c.Filter {
				re, err := regexp.Compile(pattern)
				if err != nil {
					fmt.Fprintf(deps.Stderr, "error: invalid filter pattern %q: %v\n", pattern, err)
					return err
				}
				urlFilter.Include = append(urlFilter.Include, re)
			}
		}

		discovered, err := deps.Sitemaps.DiscoverURLs(deps.Ctx, c.Sitemap, urlFilter)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", artid.ErrorMessage(err))
			return err
		}
		urls = append(urls, discovered...)
	}

	if len(urls) == 0 {
		fmt.Fprintf(deps.Stderr, "error: no URLs given; pass URLs or --sitemap\n")
		return artid.Errorf(artid.EINVALID, "no URLs given")
	}

	progress := func(event pipeline.ProgressEvent) {
		switch event.Type {
		case pipeline.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "Archiving %d URLs\n", event.Total)
		case pipeline.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  fail %s: %v\n", event.URL, event.Error)
		case pipeline.ProgressSkipped:
			fmt.Fprintf(deps.Stderr, "  skip %s: no fingerprintable content\n", event.URL)
		}
	}

	result, err := deps.Archiver.ArchiveURLs(deps.Ctx, urls, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error archiving: %v\n", err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "Archived %d, duplicates %d, skipped %d, failed %d\n",
		result.Archived, result.Duplicates, result.Skipped, result.Failed)
	return nil
}
