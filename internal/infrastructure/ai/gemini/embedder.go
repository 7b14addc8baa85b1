package gemini

import (
	"context"
	"fmt"

	domainErrors "github.com/Tomas-vilte/MateTicket/internal/domain/errors"
	"github.com/Tomas-vilte/MateTicket/internal/domain/ports"
	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const defaultEmbeddingModel = "text-embedding-004"

var _ ports.Embedder = (*Embedder)(nil)

// Embedder turns text into embedding vectors with Gemini. It is the
// optional semantic capability of the ranker; when it is not constructed
// the pipeline runs in lexical mode.
type Embedder struct {
	client *genai.Client
	model  string
}

func NewEmbedder(ctx context.Context, apiKey, model string) (*Embedder, error) {
	if apiKey == "" {
		return nil, domainErrors.ErrAPIKeyMissing
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	if model == "" {
		model = defaultEmbeddingModel
	}

	return &Embedder{
		client: client,
		model:  model,
	}, nil
}

// EmbedText implements ports.Embedder.
func (e *Embedder) EmbedText(ctx context.Context, text string) ([]float32, error) {
	em := e.client.EmbeddingModel(e.model)
	resp, err := em.EmbedContent(ctx, genai.Text(text))
	if err != nil {
		return nil, fmt.Errorf("failed to embed content: %w", err)
	}
	if resp == nil || resp.Embedding == nil {
		return nil, fmt.Errorf("embedding model returned no vector")
	}
	return resp.Embedding.Values, nil
}

// Close releases the underlying client.
func (e *Embedder) Close() error {
	return e.client.Close()
}
