package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/Tomas-vilte/MateTicket/internal/domain/models"
	"github.com/Tomas-vilte/MateTicket/internal/domain/ports"
	"github.com/Tomas-vilte/MateTicket/internal/logger"
)

// TicketService sequences the full pipeline: indexing, request analysis,
// relevance ranking, context building, prompt composition and ticket
// synthesis. Only an indexing failure aborts a run; every later stage
// degrades instead of failing, so callers always receive either a usable
// ticket or a single explanatory error string.
type TicketService struct {
	indexer     ports.RepositoryIndexer
	analyzer    *RequestAnalyzer
	ranker      *RelevanceRanker
	builder     *ProjectContextBuilder
	composer    *PromptComposer
	synthesizer *TicketSynthesizer
	topK        int
}

type TicketServiceOption func(*TicketService)

// WithSemanticRanking wires the optional embedding capability into the
// ranker.
func WithSemanticRanking(embedder ports.Embedder) TicketServiceOption {
	return func(s *TicketService) {
		s.ranker = NewRelevanceRanker(WithEmbedder(embedder))
	}
}

// WithTopK overrides how many chunks a ranking call may return.
func WithTopK(topK int) TicketServiceOption {
	return func(s *TicketService) {
		s.topK = topK
	}
}

func NewTicketService(indexer ports.RepositoryIndexer, generator ports.TicketContentGenerator, opts ...TicketServiceOption) *TicketService {
	s := &TicketService{
		indexer:     indexer,
		analyzer:    NewRequestAnalyzer(),
		ranker:      NewRelevanceRanker(),
		builder:     NewProjectContextBuilder(),
		composer:    NewPromptComposer(),
		synthesizer: NewTicketSynthesizer(generator),
		topK:        DefaultTopK,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GenerateIntelligentTicket runs the pipeline end to end and returns one
// success/failure envelope. No error escapes this method.
func (s *TicketService) GenerateIntelligentTicket(ctx context.Context, userRequest, repoURL, token string) *models.TicketResult {
	logger.Info(ctx, "starting intelligent ticket generation", "repo", repoURL)

	indexResult, snapshot, err := s.indexer.Index(ctx, repoURL, token)
	if err != nil {
		return &models.TicketResult{
			Success: false,
			Error:   fmt.Sprintf("Failed to index repository: %v", err),
		}
	}
	if !indexResult.Success {
		return &models.TicketResult{
			Success: false,
			Error:   fmt.Sprintf("Failed to index repository: %s", indexResult.Error),
		}
	}
	logger.Info(ctx, "repository indexed",
		"files", indexResult.IndexedFiles,
		"embeddings", indexResult.EmbeddingsGenerated)

	analysis := s.analyzer.Analyze(userRequest)
	logger.Info(ctx, "request analyzed",
		"intent", analysis.Intent,
		"complexity", analysis.Complexity)

	var candidates []models.ChunkRecord
	var manifests map[string]string
	if snapshot != nil {
		candidates = snapshot.Chunks
		manifests = snapshot.Manifests
	}

	chunks, err := s.ranker.Rank(ctx, userRequest, candidates, s.topK)
	if err != nil {
		// A failing embedder is a configuration problem; the run continues
		// without ranked context rather than aborting.
		logger.Warn(ctx, "ranking failed, continuing without relevant chunks", "error", err)
		chunks = nil
	}
	logger.Info(ctx, "relevant code ranked", "chunks", len(chunks))

	projectContext := s.builder.Build(chunks, manifests)
	prompt := s.composer.Compose(userRequest, projectContext, analysis)
	ticket := s.synthesizer.Synthesize(ctx, prompt, userRequest)

	return &models.TicketResult{
		Success: true,
		Ticket:  ticket,
		Context: &models.ContextSummary{
			IndexResult:       *indexResult,
			RequestAnalysis:   analysis,
			RelevantCodeCount: len(chunks),
			Languages:         sortedKeys(projectContext.TechnologyStack.Languages),
			Frameworks:        sortedKeys(projectContext.TechnologyStack.Frameworks),
			Patterns:          projectContext.ArchitecturalPatterns,
			BestPractices:     projectContext.BestPractices,
		},
	}
}

// ProjectInsights indexes the repository and builds a full-context view of
// it, independent of any user request. Every indexed chunk participates
// with full relevance so the aggregation sees the whole snapshot.
func (s *TicketService) ProjectInsights(ctx context.Context, repoURL, token string) (*models.ProjectContext, *models.IndexResult, error) {
	indexResult, snapshot, err := s.indexer.Index(ctx, repoURL, token)
	if err != nil {
		return nil, nil, err
	}
	if !indexResult.Success {
		return nil, indexResult, fmt.Errorf("failed to index repository: %s", indexResult.Error)
	}

	var chunks []models.CodeChunk
	var manifests map[string]string
	if snapshot != nil {
		manifests = snapshot.Manifests
		chunks = make([]models.CodeChunk, 0, len(snapshot.Chunks))
		for _, record := range snapshot.Chunks {
			chunks = append(chunks, models.CodeChunk{
				Filename: record.Filename,
				Code:     record.Code,
				Language: record.Language,
				Score:    1.0,
				Metadata: record.Metadata,
				Location: record.Location,
			})
		}
	}

	projectContext := s.builder.Build(chunks, manifests)
	return &projectContext, indexResult, nil
}

func sortedKeys(counts map[string]int) []string {
	keys := make([]string, 0, len(counts))
	for key := range counts {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
