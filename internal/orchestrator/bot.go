package orchestrator

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/tracker-tv/github-ruleset-bot/internal/github"
	"github.com/tracker-tv/github-ruleset-bot/internal/service"
	"github.com/tracker-tv/github-ruleset-bot/models"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Stage names the pipeline step a run failed in.
type Stage string

const (
	StageNone        Stage = ""
	StageCredentials Stage = "credentials"
	StageIngest      Stage = "ingest"
	StageDispatch    Stage = "dispatch"
)

// Summary reports what a run did for one repository. Counts are partial when
// Stage is set.
type Summary struct {
	Repository string
	Ingested   int
	Notified   int
	Stage      Stage
}

// Connector builds a GitHub client authenticated with auth.
type Connector func(auth *models.AuthContext) (github.Client, error)

type RulesetBot struct {
	credentials   github.Credentials
	connect       Connector
	ingestion     service.IngestionService
	notifications service.NotificationService
	workers       int
	logger        *zap.Logger
}

func NewRulesetBot(
	credentials github.Credentials,
	connect Connector,
	ingestion service.IngestionService,
	notifications service.NotificationService,
	workers int,
	logger *zap.Logger,
) *RulesetBot {
	if workers < 1 {
		workers = 1
	}
	return &RulesetBot{
		credentials:   credentials,
		connect:       connect,
		ingestion:     ingestion,
		notifications: notifications,
		workers:       workers,
		logger:        logger,
	}
}

// Run ingests and then dispatches a single repository. A failed ingestion
// still dispatches the events stored by earlier runs; the first error is
// returned.
func (b *RulesetBot) Run(ctx context.Context, repo models.Repository) (Summary, error) {
	logger := b.logger.With(zap.String("run_id", uuid.NewString()))

	client, err := b.client(ctx)
	if err != nil {
		logger.Error("acquiring GitHub client", zap.Bool("retryable", service.IsRetryable(err)), zap.Error(err))
		return Summary{Repository: repo.FullName, Stage: StageCredentials}, err
	}

	return b.runRepository(ctx, client, repo, logger)
}

// RunOrg runs every active repository of the organization on a bounded
// worker pool. A failing repository does not stop the others.
func (b *RulesetBot) RunOrg(ctx context.Context) ([]Summary, error) {
	logger := b.logger.With(zap.String("run_id", uuid.NewString()))

	client, err := b.client(ctx)
	if err != nil {
		logger.Error("acquiring GitHub client", zap.Bool("retryable", service.IsRetryable(err)), zap.Error(err))
		return nil, err
	}

	repos, err := service.NewRepositoriesService(client).ListActive(ctx)
	if err != nil {
		logger.Error("listing repositories", zap.Error(err))
		return nil, err
	}
	logger.Info("running organization", zap.Int("repositories", len(repos)), zap.Int("workers", b.workers))

	summaries := make([]Summary, len(repos))
	jobs := make(chan int)

	var (
		mu   sync.Mutex
		errs error
		wg   sync.WaitGroup
	)
	for range b.workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				summary, err := b.runRepository(ctx, client, repos[i], logger)
				summaries[i] = summary
				if err != nil {
					mu.Lock()
					errs = multierr.Append(errs, fmt.Errorf("%s: %w", repos[i].FullName, err))
					mu.Unlock()
				}
			}
		}()
	}

	for i := range repos {
		select {
		case jobs <- i:
		case <-ctx.Done():
		}
		if ctx.Err() != nil {
			break
		}
	}
	close(jobs)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		errs = multierr.Append(errs, err)
	}
	return summaries, errs
}

func (b *RulesetBot) client(ctx context.Context) (github.Client, error) {
	auth, err := b.credentials.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", service.ErrCredential, err)
	}

	client, err := b.connect(auth)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", service.ErrCredential, err)
	}
	return client, nil
}

func (b *RulesetBot) runRepository(ctx context.Context, client github.Client, repo models.Repository, logger *zap.Logger) (Summary, error) {
	logger = logger.With(zap.String("repository", repo.FullName))
	summary := Summary{Repository: repo.FullName}

	var firstErr error

	ingested, err := b.ingestion.Ingest(ctx, client, repo)
	summary.Ingested = ingested
	if err != nil {
		logger.Error("ingesting rule suites",
			zap.Int("ingested", ingested),
			zap.Bool("retryable", service.IsRetryable(err)),
			zap.Error(err))
		summary.Stage = StageIngest
		firstErr = err
	}

	notified, err := b.notifications.Dispatch(ctx, repo)
	summary.Notified = notified
	if err != nil {
		logger.Error("dispatching notifications",
			zap.Int("notified", notified),
			zap.Bool("retryable", service.IsRetryable(err)),
			zap.Error(err))
		if firstErr == nil {
			summary.Stage = StageDispatch
			firstErr = err
		}
	}

	logger.Info("pipeline run finished",
		zap.Int("ingested", summary.Ingested),
		zap.Int("notified", summary.Notified),
		zap.String("failed_stage", string(summary.Stage)))
	return summary, firstErr
}
