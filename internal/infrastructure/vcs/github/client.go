package github

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	domainErrors "github.com/Tomas-vilte/MateTicket/internal/domain/errors"
	"github.com/Tomas-vilte/MateTicket/internal/domain/ports"
	"github.com/google/go-github/github"
	"golang.org/x/oauth2"
)

var _ ports.VCSClient = (*GitHubClient)(nil)

// GitHubClient reads repository metadata from the GitHub API. The token is
// optional; without one the client works for public repositories within
// the anonymous rate limit.
type GitHubClient struct {
	client *github.Client
}

func NewGitHubClient(token string) *GitHubClient {
	var httpClient *http.Client
	if token != "" {
		ts := oauth2.StaticTokenSource(
			&oauth2.Token{AccessToken: token},
		)
		httpClient = oauth2.NewClient(context.Background(), ts)
	}

	return &GitHubClient{
		client: github.NewClient(httpClient),
	}
}

// GetRepoInfo implements ports.VCSClient.
func (ghc *GitHubClient) GetRepoInfo(ctx context.Context, owner, repo string) (*ports.RepoInfo, error) {
	repository, resp, err := ghc.client.Repositories.Get(ctx, owner, repo)
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusNotFound {
			return nil, domainErrors.ErrRepositoryNotFound.WithError(err)
		}
		return nil, fmt.Errorf("failed to get repository %s/%s: %w", owner, repo, err)
	}

	return &ports.RepoInfo{
		FullName:      repository.GetFullName(),
		Description:   repository.GetDescription(),
		DefaultBranch: repository.GetDefaultBranch(),
		Language:      repository.GetLanguage(),
		Stars:         repository.GetStargazersCount(),
	}, nil
}

// ParseRepoURL extracts owner and repository name from an HTTPS or SSH
// GitHub URL.
func ParseRepoURL(repoURL string) (owner, repo string, err error) {
	trimmed := strings.TrimSuffix(repoURL, ".git")

	var path string
	switch {
	case strings.HasPrefix(trimmed, "https://github.com/"):
		path = strings.TrimPrefix(trimmed, "https://github.com/")
	case strings.HasPrefix(trimmed, "git@github.com:"):
		path = strings.TrimPrefix(trimmed, "git@github.com:")
	default:
		return "", "", fmt.Errorf("not a GitHub repository URL: %s", repoURL)
	}

	parts := strings.Split(path, "/")
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("cannot extract owner and repository from: %s", repoURL)
	}

	return parts[0], parts[1], nil
}
