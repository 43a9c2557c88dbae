package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/tracker-tv/github-ruleset-bot/internal/github"
	"github.com/tracker-tv/github-ruleset-bot/internal/store"
	"github.com/tracker-tv/github-ruleset-bot/models"
	"go.uber.org/zap"
)

type IngestionOptions struct {
	// TimePeriod is passed to the rule suite listing (hour, day, week, month).
	TimePeriod string
	// IgnoredActors are doublestar patterns matched against the actor login.
	IgnoredActors []string
}

type IngestionService interface {
	// Ingest stores every new bypassed rule suite of repo and returns how
	// many were stored. It stops at the first fetch or store failure; the
	// count then covers the events stored before it.
	Ingest(ctx context.Context, client github.Client, repo models.Repository) (int, error)
}

type ingestionService struct {
	store  EventStore
	opts   IngestionOptions
	logger *zap.Logger
}

func NewIngestionService(store EventStore, opts IngestionOptions, logger *zap.Logger) IngestionService {
	return &ingestionService{store: store, opts: opts, logger: logger}
}

func (s *ingestionService) Ingest(ctx context.Context, client github.Client, repo models.Repository) (int, error) {
	logger := s.logger.With(zap.String("repository", repo.FullName))

	level, err := client.GetAssetLevel(ctx, repo.Name)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrUpstreamFetch, err)
	}

	suites, err := client.ListRuleSuites(ctx, repo.Name, &models.RuleSuiteFilter{
		TimePeriod: s.opts.TimePeriod,
		Result:     models.RuleOutcomeBypass,
	})
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrUpstreamFetch, err)
	}

	stored := 0
	for _, summary := range suites {
		if summary.Result != models.RuleOutcomeBypass {
			continue
		}
		if s.ignored(summary.GetActorName()) {
			logger.Debug("skipping ignored actor",
				zap.Int64("rule_suite_id", summary.ID),
				zap.String("actor", summary.GetActorName()))
			continue
		}

		isNew, err := s.ingestOne(ctx, client, repo, level, summary.ID, logger)
		if err != nil {
			return stored, err
		}
		if isNew {
			stored++
		}
	}

	logger.Info("ingested rule suites",
		zap.Int("listed", len(suites)),
		zap.Int("stored", stored),
		zap.Stringer("asset_level", level))
	return stored, nil
}

func (s *ingestionService) ingestOne(ctx context.Context, client github.Client, repo models.Repository, level models.AssetLevel, id int64, logger *zap.Logger) (bool, error) {
	githubID := strconv.FormatInt(id, 10)

	existing, err := s.store.FindByGithubID(ctx, githubID)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrStore, err)
	}
	if existing != nil {
		return false, nil
	}

	suite, err := client.GetRuleSuite(ctx, repo.Name, id)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrUpstreamFetch, err)
	}

	event, err := s.buildEvent(ctx, client, repo, level, suite, logger)
	if err != nil {
		return false, err
	}

	_, err = s.store.Insert(ctx, event)
	if errors.Is(err, store.ErrDuplicateEvent) {
		logger.Debug("rule suite stored concurrently", zap.String("github_id", githubID))
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrStore, err)
	}

	logger.Info("stored rule suite",
		zap.String("github_id", githubID),
		zap.String("actor", suite.GetActorName()),
		zap.String("ref", suite.Ref))
	return true, nil
}

// buildEvent serializes the suite with the repository asset level. The
// resulting commit and pull requests are best effort.
func (s *ingestionService) buildEvent(ctx context.Context, client github.Client, repo models.Repository, level models.AssetLevel, suite *models.RuleSuite, logger *zap.Logger) (models.NewRuleSuiteEvent, error) {
	eventData, err := json.Marshal(models.StoredRuleSuite{RuleSuite: *suite, AssetLevel: level})
	if err != nil {
		return models.NewRuleSuiteEvent{}, fmt.Errorf("encoding rule suite %d: %w", suite.ID, err)
	}

	event := models.NewRuleSuiteEvent{
		GithubID:           strconv.FormatInt(suite.ID, 10),
		RepositoryFullName: repo.FullName,
		EventData:          string(eventData),
	}

	if suite.AfterSHA == "" {
		return event, nil
	}

	commit, err := client.GetCommit(ctx, repo.Name, suite.AfterSHA)
	if err != nil {
		logger.Warn("fetching resulting commit", zap.String("sha", suite.AfterSHA), zap.Error(err))
	} else if commit != nil {
		event.ResultingCommit = encodeOptional(commit, logger)
	}

	prs, err := client.ListPullRequestsWithCommit(ctx, repo.Name, suite.AfterSHA)
	if err != nil {
		logger.Warn("listing pull requests for commit", zap.String("sha", suite.AfterSHA), zap.Error(err))
	} else {
		event.PullRequests = encodeOptional(prs, logger)
	}

	return event, nil
}

func encodeOptional(v any, logger *zap.Logger) *string {
	data, err := json.Marshal(v)
	if err != nil {
		logger.Warn("encoding optional event field", zap.Error(err))
		return nil
	}
	encoded := string(data)
	return &encoded
}

func (s *ingestionService) ignored(actor string) bool {
	if actor == "" {
		return false
	}
	for _, pattern := range s.opts.IgnoredActors {
		if matched, _ := doublestar.Match(pattern, actor); matched {
			return true
		}
	}
	return false
}
