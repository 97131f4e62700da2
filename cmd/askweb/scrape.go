package main

import (
	"fmt"

	"github.com/askweb/askweb"
)

// Run executes the scrape command.
func (c *ScrapeCmd) Run(deps *Dependencies) error {
	inserted, err := deps.Pipeline.Run(deps.Ctx, c.URLs)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", askweb.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Inserted %d document(s).\n", inserted)
	return nil
}
