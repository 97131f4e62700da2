package askweb

import "context"

// Asker provides natural language question answering over stored content.
type Asker interface {
	// Ask answers a question using the indexed documents. Returns
	// EEMPTYCORPUS if no documents are stored, EMISMATCH if the query
	// embedding space differs from the index, and EGENERATION if the
	// language model call fails.
	Ask(ctx context.Context, question string) (string, error)

	// AskStream is like Ask but emits the answer incrementally through fn.
	AskStream(ctx context.Context, question string, fn StreamFunc) error
}
