package main

import (
	"fmt"

	"github.com/rgolab/artid"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	filter := artid.RecordFilter{Offset: c.Offset, Limit: c.Limit}
	if c.ArticleID != "" {
		filter.ArticleID = &c.ArticleID
	}

	records, err := deps.Records.FindRecords(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", artid.ErrorMessage(err))
		return err
	}

	if len(records) == 0 {
		fmt.Fprintln(deps.Stdout, "No records found. Use 'artid archive' to add some.")
		return nil
	}

	for _, rec := range records {
		date := rec.PublishDate
		if date == "" {
			date = "----------"
		}
		fmt.Fprintf(deps.Stdout, "%s  %s  %s  %s  %s\n", rec.ID, rec.ArticleID, date, rec.Title, rec.URL)
	}

	return nil
}
