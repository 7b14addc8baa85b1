package ports

import (
	"context"

	"github.com/Tomas-vilte/MateTicket/internal/domain/models"
)

// RepositoryIndexer indexes a repository and exposes the resulting chunk
// candidates and manifests. Indexing is the only fatal stage of the
// pipeline: a failed result aborts the whole run.
type RepositoryIndexer interface {
	Index(ctx context.Context, repoURL, token string) (*models.IndexResult, *models.IndexSnapshot, error)
}
