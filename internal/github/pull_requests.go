package github

import (
	"context"

	gh "github.com/google/go-github/v80/github"
)

// ListPullRequestsWithCommit returns the pull requests associated with a
// commit, following pagination.
func (c *client) ListPullRequestsWithCommit(ctx context.Context, repo, sha string) ([]*gh.PullRequest, error) {
	var all []*gh.PullRequest
	opts := &gh.ListOptions{PerPage: 100}

	for {
		prs, resp, err := withRetry(ctx, func() ([]*gh.PullRequest, *gh.Response, error) {
			return c.pullRequests.ListPullRequestsWithCommit(ctx, c.org, repo, sha, opts)
		})
		if err != nil {
			return nil, err
		}

		all = append(all, prs...)

		if resp == nil || resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return all, nil
}
