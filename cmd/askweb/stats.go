package main

import (
	"fmt"

	"github.com/askweb/askweb"
)

// Run executes the stats command.
func (c *StatsCmd) Run(deps *Dependencies) error {
	count, err := deps.Documents.CountDocuments(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", askweb.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Documents: %d\n", count)
	return nil
}
