package github

import (
	"context"

	gh "github.com/google/go-github/v80/github"
)

func (c *client) ListAllRepos(ctx context.Context) ([]*gh.Repository, error) {
	var allRepos []*gh.Repository
	opts := &gh.RepositoryListByOrgOptions{
		ListOptions: gh.ListOptions{
			PerPage: 100,
		},
	}

	for {
		repos, resp, err := withRetry(ctx, func() ([]*gh.Repository, *gh.Response, error) {
			return c.repositories.ListByOrg(ctx, c.org, opts)
		})
		if err != nil {
			return nil, err
		}

		allRepos = append(allRepos, repos...)

		if resp == nil || resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return allRepos, nil
}

func (c *client) GetCommit(ctx context.Context, repo, sha string) (*gh.RepositoryCommit, error) {
	commit, _, err := withRetry(ctx, func() (*gh.RepositoryCommit, *gh.Response, error) {
		return c.repositories.GetCommit(ctx, c.org, repo, sha, nil)
	})
	return commit, err
}
