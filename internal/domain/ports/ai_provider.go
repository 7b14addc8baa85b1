package ports

import "context"

// TicketContentGenerator is the generation collaborator. It receives the
// composed contextual prompt as the guiding instruction plus a fixed user
// instruction, and returns raw markdown. It may fail; the synthesizer
// converts failures into a degraded ticket instead of propagating them.
type TicketContentGenerator interface {
	GenerateTicketContent(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// Embedder is the optional semantic capability. When it is not configured
// the ranker scores candidates lexically; mode selection is a configuration
// decision made once per call, not an error-driven fallback.
type Embedder interface {
	EmbedText(ctx context.Context, text string) ([]float32, error)
}
