package main

import (
	"fmt"

	"github.com/askweb/askweb"
)

// Run executes the ask command.
func (c *AskCmd) Run(deps *Dependencies) error {
	if c.Stream {
		err := deps.Asker.AskStream(deps.Ctx, c.Question, func(chunk string) error {
			_, werr := fmt.Fprint(deps.Stdout, chunk)
			return werr
		})
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", askweb.ErrorMessage(err))
			return err
		}
		fmt.Fprintln(deps.Stdout)
		return nil
	}

	answer, err := deps.Asker.Ask(deps.Ctx, c.Question)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", askweb.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, answer)
	return nil
}
