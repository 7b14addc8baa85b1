package services

import (
	"context"

	"github.com/Tomas-vilte/MateTicket/internal/domain/models"
	"github.com/Tomas-vilte/MateTicket/internal/domain/ports"
	"github.com/stretchr/testify/mock"
)

var (
	_ ports.RepositoryIndexer      = (*MockRepositoryIndexer)(nil)
	_ ports.TicketContentGenerator = (*MockTicketContentGenerator)(nil)
	_ ports.Embedder               = (*MockEmbedder)(nil)
)

type MockRepositoryIndexer struct {
	mock.Mock
}

func (m *MockRepositoryIndexer) Index(ctx context.Context, repoURL, token string) (*models.IndexResult, *models.IndexSnapshot, error) {
	args := m.Called(ctx, repoURL, token)
	var result *models.IndexResult
	if args.Get(0) != nil {
		result = args.Get(0).(*models.IndexResult)
	}
	var snapshot *models.IndexSnapshot
	if args.Get(1) != nil {
		snapshot = args.Get(1).(*models.IndexSnapshot)
	}
	return result, snapshot, args.Error(2)
}

type MockTicketContentGenerator struct {
	mock.Mock
}

func (m *MockTicketContentGenerator) GenerateTicketContent(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	args := m.Called(ctx, systemPrompt, userPrompt)
	return args.String(0), args.Error(1)
}

type MockEmbedder struct {
	mock.Mock
}

func (m *MockEmbedder) EmbedText(ctx context.Context, text string) ([]float32, error) {
	args := m.Called(ctx, text)
	var vector []float32
	if args.Get(0) != nil {
		vector = args.Get(0).([]float32)
	}
	return vector, args.Error(1)
}
