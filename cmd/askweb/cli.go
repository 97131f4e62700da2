package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/askweb/askweb"
	"github.com/askweb/askweb/rag"
	"github.com/askweb/askweb/scrape"
	"github.com/askweb/askweb/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	DB        *sqlite.DB
	Documents askweb.DocumentService
	Pipeline  *scrape.Pipeline
	Cache     *rag.Cache
	Asker     askweb.Asker
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Serve   ServeCmd   `cmd:"" help:"Run the HTTP API server"`
	Scrape  ScrapeCmd  `cmd:"" help:"Scrape URLs into the document store"`
	Ask     AskCmd     `cmd:"" help:"Ask a question about the scraped content"`
	Reindex ReindexCmd `cmd:"" help:"Rebuild the vector index from the store"`
	Stats   StatsCmd   `cmd:"" help:"Show document store statistics"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr        string   `default:":8080" help:"Listen address"`
	AllowOrigin []string `name:"allow-origin" help:"Allowed CORS origin (repeatable)"`
}

// ScrapeCmd is the "scrape" subcommand.
type ScrapeCmd struct {
	URLs        []string `arg:"" help:"URLs to scrape (comma-separated lists accepted)"`
	Concurrency int      `short:"c" default:"4" help:"Concurrent scrape limit"`
}

// AskCmd is the "ask" subcommand.
type AskCmd struct {
	Question string `arg:"" help:"Question to ask about the scraped content"`
	Stream   bool   `short:"s" help:"Print the answer as it is generated"`
	TopK     int    `short:"k" default:"4" help:"Number of passages to retrieve"`
}

// ReindexCmd is the "reindex" subcommand.
type ReindexCmd struct{}

// StatsCmd is the "stats" subcommand.
type StatsCmd struct{}
