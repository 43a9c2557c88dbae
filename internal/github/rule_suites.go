package github

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	gh "github.com/google/go-github/v80/github"
	"github.com/tracker-tv/github-ruleset-bot/models"
)

func ruleSuiteQuery(filter *models.RuleSuiteFilter, page int) string {
	values := url.Values{}
	values.Set("per_page", "100")
	if page > 0 {
		values.Set("page", strconv.Itoa(page))
	}
	if filter != nil && filter.TimePeriod != "" {
		values.Set("time_period", filter.TimePeriod)
	}
	if filter != nil && filter.Result != "" {
		values.Set("rule_suite_result", string(filter.Result))
	}
	return values.Encode()
}

// ListRuleSuites returns the rule suite summaries of a repository. Summaries
// do not carry rule evaluations; use GetRuleSuite for those.
func (c *client) ListRuleSuites(ctx context.Context, repo string, filter *models.RuleSuiteFilter) ([]models.RuleSuite, error) {
	var all []models.RuleSuite
	page := 0

	for {
		path := fmt.Sprintf("repos/%s/%s/rulesets/rule-suites?%s", c.org, repo, ruleSuiteQuery(filter, page))

		suites, resp, err := withRetry(ctx, func() ([]models.RuleSuite, *gh.Response, error) {
			var suites []models.RuleSuite
			resp, err := c.get(ctx, path, &suites)
			return suites, resp, err
		})
		if err != nil {
			return nil, fmt.Errorf("listing rule suites for %s: %w", repo, err)
		}

		all = append(all, suites...)

		if resp == nil || resp.NextPage == 0 {
			break
		}
		page = resp.NextPage
	}

	return all, nil
}

func (c *client) GetRuleSuite(ctx context.Context, repo string, id int64) (*models.RuleSuite, error) {
	path := fmt.Sprintf("repos/%s/%s/rulesets/rule-suites/%d", c.org, repo, id)

	suite, _, err := withRetry(ctx, func() (*models.RuleSuite, *gh.Response, error) {
		var suite models.RuleSuite
		resp, err := c.get(ctx, path, &suite)
		if err != nil {
			return nil, resp, err
		}
		return &suite, resp, nil
	})
	if err != nil {
		return nil, fmt.Errorf("getting rule suite %d: %w", id, err)
	}
	return suite, nil
}

func (c *client) get(ctx context.Context, path string, v any) (*gh.Response, error) {
	req, err := c.requester.NewRequest(http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	return c.requester.Do(ctx, req, v)
}
