package ports

import "context"

// RepoInfo is the lightweight repository metadata shown by the insights
// command.
type RepoInfo struct {
	FullName      string
	Description   string
	DefaultBranch string
	Language      string
	Stars         int
}

// VCSClient reads repository metadata from the hosting provider. It is an
// optional collaborator: insights degrade to indexer-derived data when no
// client is configured.
type VCSClient interface {
	GetRepoInfo(ctx context.Context, owner, repo string) (*RepoInfo, error)
}
