package service_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	gh "github.com/google/go-github/v80/github"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/tracker-tv/github-ruleset-bot/internal/directory"
	githubMocks "github.com/tracker-tv/github-ruleset-bot/internal/github/mocks"
	"github.com/tracker-tv/github-ruleset-bot/internal/policy"
	"github.com/tracker-tv/github-ruleset-bot/internal/service"
	serviceMocks "github.com/tracker-tv/github-ruleset-bot/internal/service/mocks"
	"github.com/tracker-tv/github-ruleset-bot/internal/store/sqlite"
	"github.com/tracker-tv/github-ruleset-bot/models"
	"go.uber.org/zap"
)

const forcePushID = 5602260

var apiRepo = models.Repository{Name: "api", FullName: "tracker-tv/api"}

var complianceChannel = models.Destination{Kind: models.DestinationChannel, ID: "C-SOC2"}

// pipelineSuites are two bypassed force pushes to a production repository:
// 101 by a known engineer, 102 by an actor with no directory entry whose
// pull request author has no chat account.
func pipelineSuites() map[int64]models.RuleSuite {
	failure := models.RuleEvaluation{
		RuleSource:  models.RuleSource{Type: models.RuleSourceRuleset, ID: gh.Ptr(int64(forcePushID)), Name: gh.Ptr("No force push")},
		Enforcement: models.EnforcementActive,
		Result:      models.EvaluationResultFail,
		RuleType:    "non_fast_forward",
	}
	return map[int64]models.RuleSuite{
		101: {
			ID:              101,
			ActorName:       gh.Ptr("alice"),
			AfterSHA:        "aaaaaaaaaaaaaaaa",
			Ref:             "refs/heads/main",
			Result:          models.RuleOutcomeBypass,
			RuleEvaluations: []models.RuleEvaluation{failure},
		},
		102: {
			ID:              102,
			ActorName:       gh.Ptr("mallory"),
			AfterSHA:        "bbbbbbbbbbbbbbbb",
			Ref:             "refs/heads/main",
			Result:          models.RuleOutcomeBypass,
			RuleEvaluations: []models.RuleEvaluation{failure},
		},
	}
}

func newPipelineClient(t *testing.T) *githubMocks.MockClient {
	t.Helper()

	suites := pipelineSuites()
	client := githubMocks.NewMockClient(t)
	client.EXPECT().GetAssetLevel(mock.Anything, "api").Return(models.AssetLevelProduction, nil)
	client.
		EXPECT().
		ListRuleSuites(mock.Anything, "api", mock.Anything).
		Return([]models.RuleSuite{{ID: 101, Result: models.RuleOutcomeBypass}, {ID: 102, Result: models.RuleOutcomeBypass}}, nil)
	client.
		EXPECT().
		GetRuleSuite(mock.Anything, "api", mock.Anything).
		RunAndReturn(func(_ context.Context, _ string, id int64) (*models.RuleSuite, error) {
			suite := suites[id]
			return &suite, nil
		})
	client.
		EXPECT().
		GetCommit(mock.Anything, "api", mock.Anything).
		RunAndReturn(func(_ context.Context, _, sha string) (*gh.RepositoryCommit, error) {
			return &gh.RepositoryCommit{SHA: gh.Ptr(sha)}, nil
		})
	client.
		EXPECT().
		ListPullRequestsWithCommit(mock.Anything, "api", mock.Anything).
		RunAndReturn(func(_ context.Context, _, sha string) ([]*gh.PullRequest, error) {
			if sha != "bbbbbbbbbbbbbbbb" {
				return nil, nil
			}
			return []*gh.PullRequest{{Number: gh.Ptr(12), User: &gh.User{Login: gh.Ptr("bob")}}}, nil
		})
	return client
}

type pipeline struct {
	store         *sqlite.Store
	messenger     *serviceMocks.MockMessenger
	ingestion     service.IngestionService
	notifications service.NotificationService
}

func newPipeline(t *testing.T) pipeline {
	t.Helper()

	eventStore, err := sqlite.Open(t.Context(), ":memory:", zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = eventStore.Close() })

	users, err := directory.New([]models.User{
		{Email: "alice@example.com", GithubUsername: "alice"},
		{Email: "bob@example.com", GithubUsername: "bob"},
	})
	require.NoError(t, err)

	messenger := serviceMocks.NewMockMessenger(t)
	messenger.EXPECT().LookupUserByEmail(mock.Anything, "alice@example.com").Return(&models.ChatUser{ID: "U-ALICE"}, nil).Maybe()
	messenger.EXPECT().LookupUserByEmail(mock.Anything, "bob@example.com").Return(nil, models.ErrUserNotFound).Maybe()

	rules := policy.Rules{
		CriticalRulesets:   []models.CriticalRuleset{{Kind: models.RulesetKindBlockForcePush, ID: forcePushID}},
		CriticalAssetLevel: models.AssetLevelProduction,
		CalloutAssetLevel:  models.AssetLevelProduction,
	}

	return pipeline{
		store:     eventStore,
		messenger: messenger,
		ingestion: service.NewIngestionService(eventStore, service.IngestionOptions{
			TimePeriod:    "day",
			IgnoredActors: []string{`*\[bot\]`},
		}, zap.NewNop()),
		notifications: service.NewNotificationService(eventStore, users, messenger, service.NotificationOptions{
			Rules:          rules,
			WebBaseURL:     "https://github.com",
			Org:            "tracker-tv",
			DefaultChannel: "C-SOC2",
		}, zap.NewNop()),
	}
}

func TestPipeline_IngestAndDispatchAreIdempotent(t *testing.T) {
	ctx := context.Background()
	p := newPipeline(t)
	client := newPipelineClient(t)

	var sentTo []models.Destination
	p.messenger.
		EXPECT().
		Send(mock.Anything, mock.Anything, mock.Anything).
		Run(func(_ context.Context, dest models.Destination, _ models.Notification) {
			sentTo = append(sentTo, dest)
		}).
		Return(nil).
		Times(3)

	ingested, err := p.ingestion.Ingest(ctx, client, apiRepo)
	require.NoError(t, err)
	assert.Equal(t, 2, ingested)

	ingested, err = p.ingestion.Ingest(ctx, client, apiRepo)
	require.NoError(t, err)
	assert.Equal(t, 0, ingested)

	notified, err := p.notifications.Dispatch(ctx, apiRepo)
	require.NoError(t, err)
	assert.Equal(t, 2, notified)

	notified, err = p.notifications.Dispatch(ctx, apiRepo)
	require.NoError(t, err)
	assert.Equal(t, 0, notified)

	// alice gets a direct message with the compliance copy; mallory and bob
	// cannot be resolved so their event only goes to the channel.
	assert.Equal(t, []models.Destination{
		{Kind: models.DestinationDirect, ID: "U-ALICE"},
		complianceChannel,
		complianceChannel,
	}, sentTo)

	pending, err := p.store.FindUnnotified(ctx, apiRepo.FullName)
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestPipeline_SendFailureIsRetriedOnNextDispatch(t *testing.T) {
	ctx := context.Background()
	p := newPipeline(t)
	client := newPipelineClient(t)

	_, err := p.ingestion.Ingest(ctx, client, apiRepo)
	require.NoError(t, err)

	// First pass: the DM to alice fails, mallory's channel message goes out.
	p.messenger.
		EXPECT().
		Send(mock.Anything, models.Destination{Kind: models.DestinationDirect, ID: "U-ALICE"}, mock.Anything).
		Once().
		Return(errors.New("channel_not_found"))
	p.messenger.EXPECT().Send(mock.Anything, complianceChannel, mock.Anything).Once().Return(nil)

	notified, err := p.notifications.Dispatch(ctx, apiRepo)
	assert.Equal(t, 1, notified)
	assert.ErrorIs(t, err, service.ErrMessagingSend)

	pending, err := p.store.FindUnnotified(ctx, apiRepo.FullName)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "101", pending[0].GithubID)

	// Second pass delivers the remaining event.
	p.messenger.
		EXPECT().
		Send(mock.Anything, models.Destination{Kind: models.DestinationDirect, ID: "U-ALICE"}, mock.Anything).
		Once().
		Return(nil)
	p.messenger.EXPECT().Send(mock.Anything, complianceChannel, mock.Anything).Once().Return(nil)

	notified, err = p.notifications.Dispatch(ctx, apiRepo)
	require.NoError(t, err)
	assert.Equal(t, 1, notified)
}

func TestPipeline_ConcurrentIngestStoresEachSuiteOnce(t *testing.T) {
	ctx := context.Background()
	p := newPipeline(t)
	client := newPipelineClient(t)

	const workers = 4
	counts := make([]int, workers)
	errs := make([]error, workers)

	var wg sync.WaitGroup
	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			counts[i], errs[i] = p.ingestion.Ingest(ctx, client, apiRepo)
		}()
	}
	wg.Wait()

	total := 0
	for i := range workers {
		require.NoError(t, errs[i])
		total += counts[i]
	}
	assert.Equal(t, 2, total)

	pending, err := p.store.FindUnnotified(ctx, apiRepo.FullName)
	require.NoError(t, err)
	assert.Len(t, pending, 2)
}

func TestPipeline_RepositoryWithoutAssetLevelIsNotNotified(t *testing.T) {
	ctx := context.Background()
	p := newPipeline(t)

	suite := pipelineSuites()[101]
	client := githubMocks.NewMockClient(t)
	client.EXPECT().GetAssetLevel(mock.Anything, "api").Once().Return(models.AssetLevelUnspecified, nil)
	client.
		EXPECT().
		ListRuleSuites(mock.Anything, "api", mock.Anything).
		Once().
		Return([]models.RuleSuite{{ID: 101, Result: models.RuleOutcomeBypass}}, nil)
	client.EXPECT().GetRuleSuite(mock.Anything, "api", int64(101)).Once().Return(&suite, nil)
	client.EXPECT().GetCommit(mock.Anything, "api", suite.AfterSHA).Once().Return(nil, errors.New("not found"))
	client.EXPECT().ListPullRequestsWithCommit(mock.Anything, "api", suite.AfterSHA).Once().Return(nil, nil)

	ingested, err := p.ingestion.Ingest(ctx, client, apiRepo)
	require.NoError(t, err)
	assert.Equal(t, 1, ingested)

	notified, err := p.notifications.Dispatch(ctx, apiRepo)
	require.NoError(t, err)
	assert.Equal(t, 0, notified)
	p.messenger.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)

	pending, err := p.store.FindUnnotified(ctx, apiRepo.FullName)
	require.NoError(t, err)
	assert.Len(t, pending, 1)
}
