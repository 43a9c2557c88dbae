// Package postgres stores rule suite events in PostgreSQL.
package postgres

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	"github.com/tracker-tv/github-ruleset-bot/internal/store"
	"github.com/tracker-tv/github-ruleset-bot/models"
	"go.uber.org/zap"
)

//go:embed schema.sql
var schemaSQL string

const eventColumns = `id, github_id, repository_full_name, event_data, resulting_commit, pull_requests, notified, created_at, updated_at`

type Store struct {
	db     *sql.DB
	logger *zap.Logger
}

func New(db *sql.DB, logger *zap.Logger) *Store {
	return &Store{db: db, logger: logger}
}

// Open connects to dsn and verifies the connection.
func Open(ctx context.Context, dsn string, logger *zap.Logger) (*Store, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	logger.Info("database connection established", zap.String("driver", "postgres"))
	return New(db, logger), nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Migrate creates the tables and indexes. It is idempotent.
func (s *Store) Migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("applying schema: %w", err)
	}
	s.logger.Info("database schema applied")
	return nil
}

func (s *Store) FindByGithubID(ctx context.Context, githubID string) (*models.RuleSuiteEvent, error) {
	query := `SELECT ` + eventColumns + ` FROM rule_suite_events WHERE github_id = $1`

	event, err := scanEvent(s.db.QueryRowContext(ctx, query, githubID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("finding event %s: %w", githubID, err)
	}
	return event, nil
}

// Insert stores a new unnotified event. A conflicting GitHub ID returns
// store.ErrDuplicateEvent and leaves the existing row untouched.
func (s *Store) Insert(ctx context.Context, event models.NewRuleSuiteEvent) (*models.RuleSuiteEvent, error) {
	query := `
		INSERT INTO rule_suite_events (github_id, repository_full_name, event_data, resulting_commit, pull_requests)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (github_id) DO NOTHING
		RETURNING ` + eventColumns

	inserted, err := scanEvent(s.db.QueryRowContext(ctx, query,
		event.GithubID,
		event.RepositoryFullName,
		event.EventData,
		event.ResultingCommit,
		event.PullRequests,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, store.ErrDuplicateEvent
	}
	if err != nil {
		return nil, fmt.Errorf("inserting event %s: %w", event.GithubID, err)
	}

	s.logger.Debug("event stored",
		zap.Int64("id", inserted.ID),
		zap.String("github_id", inserted.GithubID),
		zap.String("repository", inserted.RepositoryFullName))
	return inserted, nil
}

// FindUnnotified returns the events of a repository still awaiting
// notification, oldest first.
func (s *Store) FindUnnotified(ctx context.Context, fullName string) ([]models.RuleSuiteEvent, error) {
	query := `SELECT ` + eventColumns + `
		FROM rule_suite_events
		WHERE repository_full_name = $1 AND notified = false
		ORDER BY created_at, id`

	rows, err := s.db.QueryContext(ctx, query, fullName)
	if err != nil {
		return nil, fmt.Errorf("listing unnotified events for %s: %w", fullName, err)
	}
	defer rows.Close()

	var events []models.RuleSuiteEvent
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning event: %w", err)
		}
		events = append(events, *event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing unnotified events for %s: %w", fullName, err)
	}
	return events, nil
}

// MarkNotified flips the notified flag. It reports false when the event was
// already notified or does not exist.
func (s *Store) MarkNotified(ctx context.Context, id int64) (bool, error) {
	query := `UPDATE rule_suite_events SET notified = true, updated_at = now() WHERE id = $1 AND notified = false`

	result, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("marking event %d notified: %w", id, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("marking event %d notified: %w", id, err)
	}
	return affected == 1, nil
}

// FindByGithubUsername looks a user up case-insensitively. Unknown users
// return nil without error.
func (s *Store) FindByGithubUsername(ctx context.Context, login string) (*models.User, error) {
	query := `SELECT email, github_username FROM users WHERE lower(github_username) = lower($1)`

	var user models.User
	err := s.db.QueryRowContext(ctx, query, login).Scan(&user.Email, &user.GithubUsername)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("finding user %s: %w", login, err)
	}
	return &user, nil
}

// PutUser inserts or replaces a directory entry.
func (s *Store) PutUser(ctx context.Context, user models.User) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO users (email, github_username) VALUES ($1, $2)
		ON CONFLICT (email) DO UPDATE SET github_username = EXCLUDED.github_username`,
		user.Email, user.GithubUsername)
	if err != nil {
		return fmt.Errorf("storing user %s: %w", user.Email, err)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEvent(row scanner) (*models.RuleSuiteEvent, error) {
	var (
		event                models.RuleSuiteEvent
		commit, pullRequests sql.NullString
		createdAt, updatedAt sql.NullTime
	)

	err := row.Scan(
		&event.ID,
		&event.GithubID,
		&event.RepositoryFullName,
		&event.EventData,
		&commit,
		&pullRequests,
		&event.Notified,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if commit.Valid {
		event.ResultingCommit = &commit.String
	}
	if pullRequests.Valid {
		event.PullRequests = &pullRequests.String
	}
	event.CreatedAt = timeOrEpoch(createdAt)
	event.UpdatedAt = timeOrEpoch(updatedAt)

	return &event, nil
}

func timeOrEpoch(t sql.NullTime) time.Time {
	if !t.Valid {
		return time.Unix(0, 0).UTC()
	}
	return t.Time.UTC()
}
