package gemini

import (
	"context"
	"fmt"
	"strings"

	domainErrors "github.com/Tomas-vilte/MateTicket/internal/domain/errors"
	"github.com/Tomas-vilte/MateTicket/internal/domain/ports"
	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const (
	defaultModel = "gemini-1.5-flash"

	// Generation settings match the ticket pipeline contract: low
	// temperature for stable structure, bounded output size.
	generationTemperature = 0.3
	maxOutputTokens       = 2000
)

var _ ports.TicketContentGenerator = (*TicketGenerator)(nil)

// TicketGenerator produces ticket markdown with Gemini. The composed
// contextual prompt is installed as the system instruction and the fixed
// user instruction travels as the user turn.
type TicketGenerator struct {
	client *genai.Client
	model  string
}

func NewTicketGenerator(ctx context.Context, apiKey, model string) (*TicketGenerator, error) {
	if apiKey == "" {
		return nil, domainErrors.ErrAPIKeyMissing
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	if model == "" {
		model = defaultModel
	}

	return &TicketGenerator{
		client: client,
		model:  model,
	}, nil
}

// GenerateTicketContent implements ports.TicketContentGenerator.
func (g *TicketGenerator) GenerateTicketContent(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	model := g.client.GenerativeModel(g.model)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(systemPrompt)},
	}
	model.SetTemperature(generationTemperature)
	model.SetMaxOutputTokens(maxOutputTokens)

	resp, err := model.GenerateContent(ctx, genai.Text(userPrompt))
	if err != nil {
		return "", domainErrors.ErrAIGeneration.WithError(err)
	}

	content := formatResponse(resp)
	if strings.TrimSpace(content) == "" {
		return "", domainErrors.ErrEmptyAIResponse
	}

	return content, nil
}

// Close releases the underlying client.
func (g *TicketGenerator) Close() error {
	return g.client.Close()
}

func formatResponse(resp *genai.GenerateContentResponse) string {
	if resp == nil || resp.Candidates == nil {
		return ""
	}

	var formattedContent strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content != nil {
			for _, part := range cand.Content.Parts {
				formattedContent.WriteString(fmt.Sprintf("%v", part))
			}
		}
	}
	return formattedContent.String()
}
