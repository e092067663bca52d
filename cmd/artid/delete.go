package main

import (
	"fmt"

	"github.com/rgolab/artid"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return artid.Errorf(artid.EINVALID, "use --force to confirm deletion")
	}

	if err := deps.Records.DeleteRecord(deps.Ctx, c.ID); err != nil {
		if artid.ErrorCode(err) == artid.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: record %q not found. Use 'artid list' to see archived records.\n", c.ID)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", artid.ErrorMessage(err))
		}
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted record %q\n", c.ID)
	return nil
}
