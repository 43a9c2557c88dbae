package github

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	gh "github.com/google/go-github/v80/github"
	"github.com/tracker-tv/github-ruleset-bot/models"
)

type RepositoriesAdapter interface {
	ListByOrg(ctx context.Context, org string, opts *gh.RepositoryListByOrgOptions) ([]*gh.Repository, *gh.Response, error)
	GetAllCustomPropertyValues(ctx context.Context, org, repo string) ([]*gh.CustomPropertyValue, *gh.Response, error)
	GetCommit(ctx context.Context, owner, repo, sha string, opts *gh.ListOptions) (*gh.RepositoryCommit, *gh.Response, error)
}

type PullRequestsAdapter interface {
	ListPullRequestsWithCommit(ctx context.Context, owner, repo, sha string, opts *gh.ListOptions) ([]*gh.PullRequest, *gh.Response, error)
}

// Requester issues REST calls that go-github has no typed service for.
type Requester interface {
	NewRequest(method, urlStr string, body any, opts ...gh.RequestOption) (*http.Request, error)
	Do(ctx context.Context, req *http.Request, v any) (*gh.Response, error)
}

type Client interface {
	ListAllRepos(ctx context.Context) ([]*gh.Repository, error)
	ListRuleSuites(ctx context.Context, repo string, filter *models.RuleSuiteFilter) ([]models.RuleSuite, error)
	GetRuleSuite(ctx context.Context, repo string, id int64) (*models.RuleSuite, error)
	GetCommit(ctx context.Context, repo, sha string) (*gh.RepositoryCommit, error)
	ListPullRequestsWithCommit(ctx context.Context, repo, sha string) ([]*gh.PullRequest, error)
	GetAssetLevel(ctx context.Context, repo string) (models.AssetLevel, error)
}

type client struct {
	repositories RepositoriesAdapter
	pullRequests PullRequestsAdapter
	requester    Requester
	org          string
}

type authTransport struct {
	token string
	base  http.RoundTripper
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.Header.Set("Authorization", "Bearer "+t.token)
	base := t.base
	if base == nil {
		base = http.DefaultTransport
	}
	return base.RoundTrip(req)
}

type options struct {
	baseURL    string
	httpClient *http.Client
}

type Option func(*options)

// WithBaseURL points the client at a GitHub Enterprise or test API root.
func WithBaseURL(baseURL string) Option {
	return func(o *options) { o.baseURL = baseURL }
}

// WithHTTPClient sets the underlying HTTP client. Its transport is wrapped
// with token authentication.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(o *options) { o.httpClient = httpClient }
}

func New(token, org string, opts ...Option) (Client, error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	httpClient := &http.Client{}
	if o.httpClient != nil {
		clone := *o.httpClient
		httpClient = &clone
	}
	if token != "" {
		httpClient.Transport = &authTransport{token: token, base: httpClient.Transport}
	}

	ghClient := gh.NewClient(httpClient)
	if o.baseURL != "" {
		baseURL, err := parseBaseURL(o.baseURL)
		if err != nil {
			return nil, err
		}
		ghClient.BaseURL = baseURL
	}

	return &client{
		repositories: ghClient.Repositories,
		pullRequests: ghClient.PullRequests,
		requester:    ghClient,
		org:          org,
	}, nil
}

func parseBaseURL(raw string) (*url.URL, error) {
	if !strings.HasSuffix(raw, "/") {
		raw += "/"
	}
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parsing GitHub API base URL: %w", err)
	}
	return u, nil
}
