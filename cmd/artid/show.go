package main

import (
	"encoding/json"
	"fmt"

	"github.com/rgolab/artid"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	var (
		rec *artid.Record
		err error
	)
	if c.Hash {
		rec, err = deps.Records.FindRecordByContentHash(deps.Ctx, c.ID)
	} else {
		rec, err = deps.Records.FindRecordByID(deps.Ctx, c.ID)
	}
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", artid.ErrorMessage(err))
		return err
	}

	if !c.Text {
		// The normalized text dominates the output; keep it opt-in.
		rec.ProcessedText = ""
	}

	enc := json.NewEncoder(deps.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(rec)
}
