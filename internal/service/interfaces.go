package service

import (
	"context"

	"github.com/tracker-tv/github-ruleset-bot/models"
)

// EventStore persists rule suite events. Implementations enforce a unique
// GitHub ID and make MarkNotified conditional on the event not being
// notified yet.
type EventStore interface {
	// FindByGithubID returns nil without error when the event is unknown.
	FindByGithubID(ctx context.Context, githubID string) (*models.RuleSuiteEvent, error)
	// Insert returns store.ErrDuplicateEvent when the GitHub ID exists.
	Insert(ctx context.Context, event models.NewRuleSuiteEvent) (*models.RuleSuiteEvent, error)
	FindUnnotified(ctx context.Context, fullName string) ([]models.RuleSuiteEvent, error)
	// MarkNotified reports whether this call flipped the flag.
	MarkNotified(ctx context.Context, id int64) (bool, error)
}

type UserDirectory interface {
	// FindByGithubUsername returns nil without error for unknown logins.
	FindByGithubUsername(ctx context.Context, login string) (*models.User, error)
}

type Messenger interface {
	// LookupUserByEmail returns models.ErrUserNotFound for unknown addresses.
	LookupUserByEmail(ctx context.Context, email string) (*models.ChatUser, error)
	Send(ctx context.Context, dest models.Destination, notification models.Notification) error
}
