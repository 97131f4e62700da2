package askweb

import "context"

// Extraction is one non-empty piece of clean text produced by an extraction
// stage for a URL.
type Extraction struct {
	Content string
	URL     string
}

// Stage is one fallback strategy for turning a URL into text. Stages are
// best-effort: a stage that finds nothing returns an empty slice and a nil
// error, and the pipeline treats stage errors the same as empty results.
// The pipeline commits to the first stage that yields any non-empty
// candidate; later stages are not attempted.
type Stage interface {
	// Name returns the stage identifier for logging (e.g., "reader").
	Name() string

	// Extract produces zero or more non-empty text candidates for the URL.
	Extract(ctx context.Context, url string) ([]Extraction, error)
}
