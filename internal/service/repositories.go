package service

import (
	"context"
	"fmt"

	"github.com/tracker-tv/github-ruleset-bot/internal/github"
	"github.com/tracker-tv/github-ruleset-bot/models"
)

type RepositoryService interface {
	// ListActive returns the organization repositories that are not
	// archived.
	ListActive(ctx context.Context) ([]models.Repository, error)
}

type repositoriesService struct {
	gh github.Client
}

func NewRepositoriesService(ghClient github.Client) RepositoryService {
	return &repositoriesService{gh: ghClient}
}

func (s *repositoriesService) ListActive(ctx context.Context) ([]models.Repository, error) {
	repos, err := s.gh.ListAllRepos(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: listing repositories: %w", ErrUpstreamFetch, err)
	}

	result := make([]models.Repository, 0, len(repos))

	for _, repo := range repos {
		if repo == nil || repo.GetArchived() {
			continue
		}

		result = append(result, models.Repository{
			Name:     repo.GetName(),
			FullName: repo.GetFullName(),
			Private:  repo.GetPrivate(),
			Archived: repo.GetArchived(),
		})
	}

	return result, nil
}
