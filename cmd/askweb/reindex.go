package main

import (
	"fmt"

	"github.com/askweb/askweb"
)

// Run executes the reindex command.
func (c *ReindexCmd) Run(deps *Dependencies) error {
	idx, err := deps.Cache.Rebuild(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", askweb.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Indexed %d document(s) with model %s.\n", idx.Len(), idx.Model())
	return nil
}
