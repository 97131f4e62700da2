package gemini

import (
	"context"

	"github.com/askweb/askweb"
	"google.golang.org/genai"
)

// DefaultEmbedModel is the embedding model used when none is configured.
const DefaultEmbedModel = "text-embedding-004"

// Ensure Embedder implements askweb.Embedder at compile time.
var _ askweb.Embedder = (*Embedder)(nil)

// Embedder generates embeddings using the Gemini API.
type Embedder struct {
	client *genai.Client
	model  string
}

// NewEmbedder creates a new Embedder. An empty model selects
// DefaultEmbedModel.
func NewEmbedder(client *genai.Client, model string) *Embedder {
	if model == "" {
		model = DefaultEmbedModel
	}
	return &Embedder{client: client, model: model}
}

// Model returns the embedding model identifier.
func (e *Embedder) Model() string { return e.model }

// Embed returns the embedding vector for the given text.
func (e *Embedder) Embed(ctx context.Context, text string) ([]float32, error) {
	result, err := e.client.Models.EmbedContent(ctx, e.model, contents(text), nil)
	if err != nil {
		return nil, err
	}
	if result == nil || len(result.Embeddings) == 0 {
		return nil, askweb.Errorf(askweb.EINTERNAL, "gemini returned no embedding")
	}
	return result.Embeddings[0].Values, nil
}
