package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/askweb/askweb/httpd"
)

// Run executes the serve command. It blocks until interrupted.
func (c *ServeCmd) Run(deps *Dependencies) error {
	srv := &httpd.Server{
		Addr:           c.Addr,
		Pipeline:       deps.Pipeline,
		Documents:      deps.Documents,
		Cache:          deps.Cache,
		Asker:          deps.Asker,
		Logger:         deps.Logger,
		AllowedOrigins: c.AllowOrigin,
	}

	ctx, stop := signal.NotifyContext(deps.Ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Fprintf(deps.Stdout, "Listening on %s\n", c.Addr)
	return srv.ListenAndServe(ctx)
}
