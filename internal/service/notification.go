package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/tracker-tv/github-ruleset-bot/internal/policy"
	"github.com/tracker-tv/github-ruleset-bot/models"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

type NotificationOptions struct {
	Rules      policy.Rules
	WebBaseURL string
	Org        string
	// DefaultChannel receives notifications nobody could be resolved for,
	// and a copy of every call-out.
	DefaultChannel string
	// WatcherEmails get a direct copy of every notification.
	WatcherEmails []string
}

type NotificationService interface {
	// Dispatch notifies every unnotified event of repo and returns how many
	// were sent and marked. A failing event stays unnotified and does not
	// stop the others; the failures are returned together.
	Dispatch(ctx context.Context, repo models.Repository) (int, error)
}

type notificationService struct {
	store     EventStore
	users     UserDirectory
	messenger Messenger
	opts      NotificationOptions
	logger    *zap.Logger
}

func NewNotificationService(store EventStore, users UserDirectory, messenger Messenger, opts NotificationOptions, logger *zap.Logger) NotificationService {
	return &notificationService{
		store:     store,
		users:     users,
		messenger: messenger,
		opts:      opts,
		logger:    logger,
	}
}

func (s *notificationService) Dispatch(ctx context.Context, repo models.Repository) (int, error) {
	logger := s.logger.With(zap.String("repository", repo.FullName))

	events, err := s.store.FindUnnotified(ctx, repo.FullName)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrStore, err)
	}

	var errs error
	notified := 0
	for _, event := range events {
		if err := ctx.Err(); err != nil {
			errs = multierr.Append(errs, err)
			break
		}

		marked, err := s.notify(ctx, event, logger.With(zap.String("github_id", event.GithubID)))
		if err != nil {
			logger.Error("notifying rule suite", zap.String("github_id", event.GithubID), zap.Error(err))
			errs = multierr.Append(errs, fmt.Errorf("rule suite %s: %w", event.GithubID, err))
			continue
		}
		if marked {
			notified++
		}
	}

	if len(events) > 0 {
		logger.Info("dispatched notifications", zap.Int("pending", len(events)), zap.Int("notified", notified))
	}
	return notified, errs
}

func (s *notificationService) notify(ctx context.Context, event models.RuleSuiteEvent, logger *zap.Logger) (bool, error) {
	suite, err := policy.DecodeSuite(event)
	if err != nil {
		return false, err
	}
	if !s.opts.Rules.InScope(suite.AssetLevel) {
		logger.Debug("repository asset level out of scope, leaving event unnotified",
			zap.Stringer("asset_level", suite.AssetLevel))
		return false, nil
	}

	verdict, err := policy.Classify(event, s.opts.Rules)
	if err != nil {
		return false, err
	}

	recipient, err := s.resolveRecipient(ctx, event, suite, logger)
	if err != nil {
		return false, err
	}

	notification := FormatNotification(MessageInput{
		Repository:  event.RepositoryFullName,
		Suite:       suite,
		Verdict:     verdict,
		PullRequest: policy.PullRequest(event),
		Recipient:   recipient,
		WebBaseURL:  s.opts.WebBaseURL,
		Org:         s.opts.Org,
	})

	destinations, err := s.destinations(ctx, recipient, verdict, logger)
	if err != nil {
		return false, err
	}

	for _, dest := range destinations {
		if err := s.messenger.Send(ctx, dest, notification); err != nil {
			return false, fmt.Errorf("%w: %w", ErrMessagingSend, err)
		}
	}

	marked, err := s.store.MarkNotified(ctx, event.ID)
	if err != nil {
		logger.Error("notification sent but not marked, possible duplicate notification risk", zap.Error(err))
		return false, fmt.Errorf("%w: %w", ErrStore, err)
	}
	if !marked {
		logger.Warn("event was already marked notified, possible duplicate notification")
		return false, nil
	}

	logger.Info("notified rule suite",
		zap.String("severity", string(verdict.Severity)),
		zap.Bool("call_out", verdict.CallOut),
		zap.Int("destinations", len(destinations)))
	return true, nil
}

// resolveRecipient maps the actor, then the associated pull request authors,
// to a chat user. A nil user without error means nobody could be resolved.
func (s *notificationService) resolveRecipient(ctx context.Context, event models.RuleSuiteEvent, suite models.StoredRuleSuite, logger *zap.Logger) (*models.ChatUser, error) {
	candidates := []string{suite.GetActorName()}
	for _, pr := range policy.PullRequests(event) {
		candidates = append(candidates, pr.GetUser().GetLogin())
	}

	seen := make(map[string]bool, len(candidates))
	for _, login := range candidates {
		if login == "" || seen[login] {
			continue
		}
		seen[login] = true

		user, err := s.users.FindByGithubUsername(ctx, login)
		if err != nil {
			return nil, fmt.Errorf("%w: looking up %s: %w", ErrStore, login, err)
		}
		if user == nil {
			logger.Debug("no directory entry for login", zap.String("login", login))
			continue
		}

		chatUser, err := s.lookup(ctx, user.Email)
		if err != nil {
			return nil, err
		}
		if chatUser != nil {
			return chatUser, nil
		}
		logger.Debug("no chat account for email", zap.String("login", login))
	}

	return nil, nil
}

func (s *notificationService) lookup(ctx context.Context, email string) (*models.ChatUser, error) {
	user, err := s.messenger.LookupUserByEmail(ctx, email)
	if errors.Is(err, models.ErrUserNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMessagingSend, err)
	}
	return user, nil
}

func (s *notificationService) destinations(ctx context.Context, recipient *models.ChatUser, verdict models.Verdict, logger *zap.Logger) ([]models.Destination, error) {
	channel := models.Destination{Kind: models.DestinationChannel, ID: s.opts.DefaultChannel}

	var destinations []models.Destination
	if recipient != nil {
		destinations = append(destinations, models.Destination{Kind: models.DestinationDirect, ID: recipient.ID})
		if verdict.CallOut {
			destinations = append(destinations, channel)
		}
	} else {
		destinations = append(destinations, channel)
	}

	for _, email := range s.opts.WatcherEmails {
		watcher, err := s.lookup(ctx, email)
		if err != nil {
			return nil, err
		}
		if watcher == nil {
			logger.Warn("watcher has no chat account", zap.String("email", email))
			continue
		}
		destinations = append(destinations, models.Destination{Kind: models.DestinationDirect, ID: watcher.ID})
	}

	return dedupe(destinations), nil
}

func dedupe(destinations []models.Destination) []models.Destination {
	seen := make(map[models.Destination]bool, len(destinations))
	result := destinations[:0]
	for _, dest := range destinations {
		if seen[dest] {
			continue
		}
		seen[dest] = true
		result = append(result, dest)
	}
	return result
}
