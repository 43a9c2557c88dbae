package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	gh "github.com/google/go-github/v80/github"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	githubMocks "github.com/tracker-tv/github-ruleset-bot/internal/github/mocks"
	serviceMocks "github.com/tracker-tv/github-ruleset-bot/internal/service/mocks"
	"github.com/tracker-tv/github-ruleset-bot/internal/store"
	"github.com/tracker-tv/github-ruleset-bot/models"
	"go.uber.org/zap"
)

var testRepo = models.Repository{Name: "api", FullName: "tracker-tv/api"}

func bypassSuite(id int64, actor string) models.RuleSuite {
	return models.RuleSuite{
		ID:        id,
		ActorName: gh.Ptr(actor),
		AfterSHA:  "0123456789abcdef",
		Ref:       "refs/heads/main",
		Result:    models.RuleOutcomeBypass,
	}
}

func defaultIngestionOptions() IngestionOptions {
	return IngestionOptions{TimePeriod: "day", IgnoredActors: []string{`*\[bot\]`}}
}

func TestIngest_StoresNewBypassSuites(t *testing.T) {
	ctx := context.Background()
	client := githubMocks.NewMockClient(t)
	eventStore := serviceMocks.NewMockEventStore(t)

	client.EXPECT().GetAssetLevel(mock.Anything, "api").Once().Return(models.AssetLevelProduction, nil)
	client.
		EXPECT().
		ListRuleSuites(mock.Anything, "api", &models.RuleSuiteFilter{TimePeriod: "day", Result: models.RuleOutcomeBypass}).
		Once().
		Return([]models.RuleSuite{
			bypassSuite(1, "octocat"),
			{ID: 2, ActorName: gh.Ptr("octocat"), Result: models.RuleOutcomePass},
			bypassSuite(3, "dependabot[bot]"),
		}, nil)

	full := bypassSuite(1, "octocat")
	full.RuleEvaluations = []models.RuleEvaluation{rulesetFailure(3973005, "Require reviews", "pull_request")}

	eventStore.EXPECT().FindByGithubID(mock.Anything, "1").Once().Return(nil, nil)
	client.EXPECT().GetRuleSuite(mock.Anything, "api", int64(1)).Once().Return(&full, nil)
	client.
		EXPECT().
		GetCommit(mock.Anything, "api", "0123456789abcdef").
		Once().
		Return(&gh.RepositoryCommit{SHA: gh.Ptr("0123456789abcdef")}, nil)
	client.
		EXPECT().
		ListPullRequestsWithCommit(mock.Anything, "api", "0123456789abcdef").
		Once().
		Return([]*gh.PullRequest{{Number: gh.Ptr(7)}}, nil)

	var inserted models.NewRuleSuiteEvent
	eventStore.
		EXPECT().
		Insert(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, event models.NewRuleSuiteEvent) (*models.RuleSuiteEvent, error) {
			inserted = event
			return &models.RuleSuiteEvent{ID: 1, GithubID: event.GithubID}, nil
		}).
		Once()

	svc := NewIngestionService(eventStore, defaultIngestionOptions(), zap.NewNop())
	count, err := svc.Ingest(ctx, client, testRepo)

	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.Equal(t, "1", inserted.GithubID)
	assert.Equal(t, "tracker-tv/api", inserted.RepositoryFullName)

	var stored models.StoredRuleSuite
	require.NoError(t, json.Unmarshal([]byte(inserted.EventData), &stored))
	assert.Equal(t, models.AssetLevelProduction, stored.AssetLevel)
	assert.Len(t, stored.RuleEvaluations, 1)

	require.NotNil(t, inserted.ResultingCommit)
	assert.Contains(t, *inserted.ResultingCommit, "0123456789abcdef")
	require.NotNil(t, inserted.PullRequests)
	assert.Contains(t, *inserted.PullRequests, `"number":7`)
}

func TestIngest_SkipsKnownEvents(t *testing.T) {
	ctx := context.Background()
	client := githubMocks.NewMockClient(t)
	eventStore := serviceMocks.NewMockEventStore(t)

	client.EXPECT().GetAssetLevel(mock.Anything, "api").Once().Return(models.AssetLevelUnspecified, nil)
	client.
		EXPECT().
		ListRuleSuites(mock.Anything, "api", mock.Anything).
		Once().
		Return([]models.RuleSuite{bypassSuite(1, "octocat")}, nil)
	eventStore.
		EXPECT().
		FindByGithubID(mock.Anything, "1").
		Once().
		Return(&models.RuleSuiteEvent{ID: 9, GithubID: "1"}, nil)

	svc := NewIngestionService(eventStore, defaultIngestionOptions(), zap.NewNop())
	count, err := svc.Ingest(ctx, client, testRepo)

	assert.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestIngest_DuplicateInsertIsNotNew(t *testing.T) {
	ctx := context.Background()
	client := githubMocks.NewMockClient(t)
	eventStore := serviceMocks.NewMockEventStore(t)
	suite := bypassSuite(1, "octocat")

	client.EXPECT().GetAssetLevel(mock.Anything, "api").Once().Return(models.AssetLevelProduction, nil)
	client.EXPECT().ListRuleSuites(mock.Anything, "api", mock.Anything).Once().Return([]models.RuleSuite{suite}, nil)
	eventStore.EXPECT().FindByGithubID(mock.Anything, "1").Once().Return(nil, nil)
	client.EXPECT().GetRuleSuite(mock.Anything, "api", int64(1)).Once().Return(&suite, nil)
	client.EXPECT().GetCommit(mock.Anything, "api", mock.Anything).Once().Return(nil, errors.New("not found"))
	client.EXPECT().ListPullRequestsWithCommit(mock.Anything, "api", mock.Anything).Once().Return(nil, errors.New("boom"))
	eventStore.
		EXPECT().
		Insert(mock.Anything, mock.MatchedBy(func(e models.NewRuleSuiteEvent) bool {
			return e.ResultingCommit == nil && e.PullRequests == nil
		})).
		Once().
		Return(nil, store.ErrDuplicateEvent)

	svc := NewIngestionService(eventStore, defaultIngestionOptions(), zap.NewNop())
	count, err := svc.Ingest(ctx, client, testRepo)

	assert.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestIngest_IgnoredActorPatterns(t *testing.T) {
	ctx := context.Background()
	client := githubMocks.NewMockClient(t)
	eventStore := serviceMocks.NewMockEventStore(t)

	client.EXPECT().GetAssetLevel(mock.Anything, "api").Once().Return(models.AssetLevelProduction, nil)
	client.
		EXPECT().
		ListRuleSuites(mock.Anything, "api", mock.Anything).
		Once().
		Return([]models.RuleSuite{
			bypassSuite(1, "renovate[bot]"),
			bypassSuite(2, "release-automation"),
		}, nil)

	opts := IngestionOptions{IgnoredActors: []string{`*\[bot\]`, "release-*"}}
	svc := NewIngestionService(eventStore, opts, zap.NewNop())
	count, err := svc.Ingest(ctx, client, testRepo)

	assert.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestIngest_AssetLevelFailure(t *testing.T) {
	ctx := context.Background()
	client := githubMocks.NewMockClient(t)
	eventStore := serviceMocks.NewMockEventStore(t)

	client.EXPECT().GetAssetLevel(mock.Anything, "api").Once().Return(models.AssetLevelUnspecified, errors.New("forbidden"))

	svc := NewIngestionService(eventStore, defaultIngestionOptions(), zap.NewNop())
	count, err := svc.Ingest(ctx, client, testRepo)

	assert.ErrorIs(t, err, ErrUpstreamFetch)
	assert.True(t, IsRetryable(err))
	assert.Equal(t, 0, count)
}

func TestIngest_StopsAtFirstFailureWithPartialCount(t *testing.T) {
	ctx := context.Background()
	client := githubMocks.NewMockClient(t)
	eventStore := serviceMocks.NewMockEventStore(t)
	first := bypassSuite(1, "octocat")
	first.AfterSHA = ""

	client.EXPECT().GetAssetLevel(mock.Anything, "api").Once().Return(models.AssetLevelProduction, nil)
	client.
		EXPECT().
		ListRuleSuites(mock.Anything, "api", mock.Anything).
		Once().
		Return([]models.RuleSuite{first, bypassSuite(2, "octocat"), bypassSuite(3, "octocat")}, nil)

	eventStore.EXPECT().FindByGithubID(mock.Anything, "1").Once().Return(nil, nil)
	client.EXPECT().GetRuleSuite(mock.Anything, "api", int64(1)).Once().Return(&first, nil)
	eventStore.EXPECT().Insert(mock.Anything, mock.Anything).Once().Return(&models.RuleSuiteEvent{ID: 1}, nil)

	eventStore.EXPECT().FindByGithubID(mock.Anything, "2").Once().Return(nil, nil)
	client.EXPECT().GetRuleSuite(mock.Anything, "api", int64(2)).Once().Return(nil, errors.New("timeout"))

	svc := NewIngestionService(eventStore, defaultIngestionOptions(), zap.NewNop())
	count, err := svc.Ingest(ctx, client, testRepo)

	assert.ErrorIs(t, err, ErrUpstreamFetch)
	assert.Equal(t, 1, count)
}

func TestIngest_StoreFailure(t *testing.T) {
	ctx := context.Background()
	client := githubMocks.NewMockClient(t)
	eventStore := serviceMocks.NewMockEventStore(t)

	client.EXPECT().GetAssetLevel(mock.Anything, "api").Once().Return(models.AssetLevelProduction, nil)
	client.EXPECT().ListRuleSuites(mock.Anything, "api", mock.Anything).Once().Return([]models.RuleSuite{bypassSuite(1, "octocat")}, nil)
	eventStore.EXPECT().FindByGithubID(mock.Anything, "1").Once().Return(nil, errors.New("disk I/O error"))

	svc := NewIngestionService(eventStore, defaultIngestionOptions(), zap.NewNop())
	count, err := svc.Ingest(ctx, client, testRepo)

	assert.ErrorIs(t, err, ErrStore)
	assert.Equal(t, 0, count)
}
