package di

import (
	"context"

	"github.com/Tomas-vilte/MateTicket/internal/config"
	domainErrors "github.com/Tomas-vilte/MateTicket/internal/domain/errors"
	"github.com/Tomas-vilte/MateTicket/internal/domain/ports"
	"github.com/Tomas-vilte/MateTicket/internal/i18n"
	"github.com/Tomas-vilte/MateTicket/internal/infrastructure/ai/gemini"
	"github.com/Tomas-vilte/MateTicket/internal/infrastructure/indexer"
	"github.com/Tomas-vilte/MateTicket/internal/infrastructure/vcs/github"
	"github.com/Tomas-vilte/MateTicket/internal/logger"
	"github.com/Tomas-vilte/MateTicket/internal/services"
)

// Container wires the application's dependencies. The AI clients are built
// lazily so commands that never touch Gemini (config, insights without
// semantic ranking) work without an API key.
type Container struct {
	config       *config.Config
	translations *i18n.Translations

	// lazily initialized
	ticketService *services.TicketService
	generator     *gemini.TicketGenerator
	embedder      *gemini.Embedder
	vcsClient     ports.VCSClient
}

func NewContainer(cfg *config.Config, trans *i18n.Translations) *Container {
	return &Container{
		config:       cfg,
		translations: trans,
	}
}

// GetTicketService builds the full pipeline on first use.
func (c *Container) GetTicketService(ctx context.Context) (*services.TicketService, error) {
	if c.ticketService != nil {
		return c.ticketService, nil
	}

	if c.config.GeminiAPIKey == "" {
		return nil, domainErrors.ErrAPIKeyMissing
	}

	generator, err := gemini.NewTicketGenerator(ctx, c.config.GeminiAPIKey, c.config.Model)
	if err != nil {
		return nil, err
	}
	c.generator = generator

	indexerOpts := make([]indexer.GitIndexerOption, 0, 1)
	serviceOpts := []services.TicketServiceOption{
		services.WithTopK(c.config.TopK),
	}

	if c.config.UseSemanticRanking {
		embedder, err := gemini.NewEmbedder(ctx, c.config.GeminiAPIKey, c.config.EmbeddingModel)
		if err != nil {
			logger.Warn(ctx, "semantic ranking unavailable, falling back to lexical mode", "error", err)
		} else {
			c.embedder = embedder
			indexerOpts = append(indexerOpts, indexer.WithEmbedder(embedder))
			serviceOpts = append(serviceOpts, services.WithSemanticRanking(embedder))
		}
	}

	repoIndexer := indexer.NewGitIndexer(indexerOpts...)

	c.ticketService = services.NewTicketService(repoIndexer, generator, serviceOpts...)
	return c.ticketService, nil
}

// GetInsightsService builds a pipeline without the AI generator: insights
// only index and aggregate, they never call the model.
func (c *Container) GetInsightsService() *services.TicketService {
	return services.NewTicketService(indexer.NewGitIndexer(), nil)
}

// GetVCSClient returns the GitHub metadata client.
func (c *Container) GetVCSClient() ports.VCSClient {
	if c.vcsClient == nil {
		c.vcsClient = github.NewGitHubClient(c.config.GitHubToken)
	}
	return c.vcsClient
}

// Close releases the AI clients created by the container.
func (c *Container) Close() error {
	var firstErr error
	if c.generator != nil {
		if err := c.generator.Close(); err != nil {
			firstErr = err
		}
	}
	if c.embedder != nil {
		if err := c.embedder.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (c *Container) GetConfig() *config.Config {
	return c.config
}

func (c *Container) GetTranslations() *i18n.Translations {
	return c.translations
}
