// Package sqlite stores rule suite events in a local SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/tracker-tv/github-ruleset-bot/internal/store"
	"github.com/tracker-tv/github-ruleset-bot/models"
	"go.uber.org/zap"
)

//go:embed schema.sql
var schemaSQL string

const eventColumns = `id, github_id, repository_full_name, event_data, resulting_commit, pull_requests, notified, created_at, updated_at`

// Store is an event store backed by SQLite. Timestamps are kept as RFC 3339
// text.
type Store struct {
	db     *sql.DB
	logger *zap.Logger
	now    func() time.Time
}

// Open creates or opens the database at path and applies the schema.
func Open(ctx context.Context, path string, logger *zap.Logger) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// SQLite allows a single writer.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	if err := applyPragmas(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	s := &Store{db: db, logger: logger, now: time.Now}
	if err := s.Migrate(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	logger.Info("database connection established", zap.String("driver", "sqlite"), zap.String("path", path))
	return s, nil
}

func applyPragmas(ctx context.Context, db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}

	for _, pragma := range pragmas {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			return fmt.Errorf("executing %q: %w", pragma, err)
		}
	}
	return nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Migrate creates the tables and indexes. It is idempotent.
func (s *Store) Migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("applying schema: %w", err)
	}
	return nil
}

func (s *Store) FindByGithubID(ctx context.Context, githubID string) (*models.RuleSuiteEvent, error) {
	query := `SELECT ` + eventColumns + ` FROM rule_suite_events WHERE github_id = ?`

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
	now := store.FormatTimestamp(s.now())
	query := `
		INSERT INTO rule_suite_events (github_id, repository_full_name, event_data, resulting_commit, pull_requests, notified, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, 0, ?, ?)
		ON CONFLICT (github_id) DO NOTHING`

	result, err := s.db.ExecContext(ctx, query,
		event.GithubID,
		event.RepositoryFullName,
		event.EventData,
		event.ResultingCommit,
		event.PullRequests,
		now,
		now,
	)
	if err != nil {
		return nil, fmt.Errorf("inserting event %s: %w", event.GithubID, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("inserting event %s: %w", event.GithubID, err)
	}
	if affected == 0 {
		return nil, store.ErrDuplicateEvent
	}

	inserted, err := s.FindByGithubID(ctx, event.GithubID)
	if err != nil {
		return nil, err
	}
	if inserted == nil {
		return nil, fmt.Errorf("inserting event %s: row vanished after insert", event.GithubID)
	}

	s.logger.Debug("event stored",
		zap.Int64("id", inserted.ID),
		zap.String("github_id", inserted.GithubID),
		zap.String("repository", inserted.RepositoryFullName))
	return inserted, nil
}

// FindUnnotified returns the events of a repository still awaiting
// notification in insertion order.
func (s *Store) FindUnnotified(ctx context.Context, fullName string) ([]models.RuleSuiteEvent, error) {
	query := `SELECT ` + eventColumns + `
		FROM rule_suite_events
		WHERE repository_full_name = ? AND notified = 0
		ORDER BY id`

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
	query := `UPDATE rule_suite_events SET notified = 1, updated_at = ? WHERE id = ? AND notified = 0`

	result, err := s.db.ExecContext(ctx, query, store.FormatTimestamp(s.now()), id)
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
	var user models.User
	err := s.db.QueryRowContext(ctx,
		`SELECT email, github_username FROM users WHERE github_username = ?`, login,
	).Scan(&user.Email, &user.GithubUsername)
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
		INSERT INTO users (email, github_username) VALUES (?, ?)
		ON CONFLICT (email) DO UPDATE SET github_username = excluded.github_username`,
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
		createdAt, updatedAt sql.NullString
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
	event.CreatedAt = store.ParseTimestamp(createdAt)
	event.UpdatedAt = store.ParseTimestamp(updatedAt)

	return &event, nil
}
