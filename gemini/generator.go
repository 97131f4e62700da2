// Package gemini provides askweb.Generator and askweb.Embedder
// implementations backed by the Google Gemini API. It is the hosted
// alternative to the default ollama backend; the two must not be mixed
// within one process, since their embedding spaces differ.
package gemini

import (
	"context"

	"github.com/askweb/askweb"
	"google.golang.org/genai"
)

// DefaultModel is the generation model used when none is configured.
const DefaultModel = "gemini-2.5-flash"

// Ensure Generator implements askweb.Generator at compile time.
var _ askweb.Generator = (*Generator)(nil)

// Generator produces answers using Google Gemini.
type Generator struct {
	client *genai.Client
	model  string
}

// NewGenerator creates a new Generator. An empty model selects DefaultModel.
func NewGenerator(client *genai.Client, model string) *Generator {
	if model == "" {
		model = DefaultModel
	}
	return &Generator{client: client, model: model}
}

// buildConfig returns the GenerateContentConfig for Gemini API calls.
func buildConfig() *genai.GenerateContentConfig {
	temp := float32(0.4)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: askweb.SystemInstruction}},
		},
		Temperature: &temp,
	}
}

func contents(prompt string) []*genai.Content {
	return []*genai.Content{{
		Parts: []*genai.Part{{Text: prompt}},
	}}
}

// Generate returns the complete response for the prompt.
func (g *Generator) Generate(ctx context.Context, prompt string) (string, error) {
	result, err := g.client.Models.GenerateContent(ctx, g.model, contents(prompt), buildConfig())
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", askweb.Errorf(askweb.EGENERATION, "gemini returned nil result")
	}
	return result.Text(), nil
}

// GenerateStream emits partial text through fn as it is produced.
func (g *Generator) GenerateStream(ctx context.Context, prompt string, fn askweb.StreamFunc) error {
	for resp, err := range g.client.Models.GenerateContentStream(ctx, g.model, contents(prompt), buildConfig()) {
		if err != nil {
			return err
		}
		if text := resp.Text(); text != "" {
			if err := fn(text); err != nil {
				return err
			}
		}
	}
	return nil
}
