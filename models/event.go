package models

import "time"

// RuleSuiteEvent is the durable record of one rule suite evaluation.
type RuleSuiteEvent struct {
	ID                 int64
	GithubID           string
	RepositoryFullName string
	EventData          string  // JSON StoredRuleSuite
	ResultingCommit    *string // JSON github.RepositoryCommit
	PullRequests       *string // JSON []*github.PullRequest
	Notified           bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

type NewRuleSuiteEvent struct {
	GithubID           string
	RepositoryFullName string
	EventData          string
	ResultingCommit    *string
	PullRequests       *string
}
