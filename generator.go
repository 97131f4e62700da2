package askweb

import "context"

// StreamFunc receives incremental chunks of generated text. Returning an
// error aborts the stream.
type StreamFunc func(chunk string) error

// Generator produces text from a language model.
type Generator interface {
	// Generate returns the complete response for the prompt. Blocking.
	Generate(ctx context.Context, prompt string) (string, error)

	// GenerateStream emits partial text through fn as it is produced.
	GenerateStream(ctx context.Context, prompt string, fn StreamFunc) error
}
