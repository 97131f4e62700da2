package rag

import (
	"context"

	"github.com/askweb/askweb"
)

// DefaultTopK is the number of passages retrieved per question.
const DefaultTopK = 4

// Ensure Asker implements askweb.Asker at compile time.
var _ askweb.Asker = (*Asker)(nil)

// Asker answers questions by retrieving the most relevant passages from
// the index and conditioning the generator on them.
type Asker struct {
	Documents askweb.DocumentService
	Embedder  askweb.Embedder
	Source    askweb.IndexSource
	Generator askweb.Generator

	// TopK is the number of passages to retrieve (default: DefaultTopK).
	TopK int
}

// Ask answers a natural language question over the stored content.
func (a *Asker) Ask(ctx context.Context, question string) (string, error) {
	prompt, err := a.prepare(ctx, question)
	if err != nil {
		return "", err
	}

	answer, err := a.Generator.Generate(ctx, prompt)
	if err != nil {
		return "", askweb.WrapError(err, askweb.EGENERATION, "language model call failed")
	}
	return answer, nil
}

// AskStream is like Ask but emits the answer incrementally through fn.
func (a *Asker) AskStream(ctx context.Context, question string, fn askweb.StreamFunc) error {
	prompt, err := a.prepare(ctx, question)
	if err != nil {
		return err
	}

	if err := a.Generator.GenerateStream(ctx, prompt, fn); err != nil {
		return askweb.WrapError(err, askweb.EGENERATION, "language model call failed")
	}
	return nil
}

// prepare validates the question, rejects an empty corpus before any
// embedding work, retrieves the top-k passages, and composes the prompt.
func (a *Asker) prepare(ctx context.Context, question string) (string, error) {
	if question == "" {
		return "", askweb.Errorf(askweb.EINVALID, "question required")
	}

	n, err := a.Documents.CountDocuments(ctx)
	if err != nil {
		return "", err
	}
	if n == 0 {
		return "", askweb.Errorf(askweb.EEMPTYCORPUS, "no documents stored; scrape some URLs first")
	}

	idx, err := a.Source.Index(ctx)
	if err != nil {
		return "", err
	}

	vec, err := a.Embedder.Embed(ctx, question)
	if err != nil {
		return "", err
	}

	// A query embedded in a different space than the index is a
	// configuration fault, not something retrieval can paper over.
	if idx.Len() > 0 {
		if idx.Model() != a.Embedder.Model() {
			return "", askweb.Errorf(askweb.EMISMATCH,
				"query embedding model %q does not match index model %q", a.Embedder.Model(), idx.Model())
		}
		if idx.Dimensions() != len(vec) {
			return "", askweb.Errorf(askweb.EMISMATCH,
				"query embedding has %d dimensions, index has %d", len(vec), idx.Dimensions())
		}
	}

	k := a.TopK
	if k <= 0 {
		k = DefaultTopK
	}

	matches, err := idx.Search(ctx, vec, k)
	if err != nil {
		return "", err
	}

	return askweb.BuildPrompt(matches, question), nil
}
