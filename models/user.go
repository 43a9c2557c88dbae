package models

import "errors"

// ErrUserNotFound is returned by a messenger when no chat account matches
// the looked up address.
var ErrUserNotFound = errors.New("chat user not found")

type User struct {
	Email          string `yaml:"email"`
	GithubUsername string `yaml:"github_username"`
}

// ChatUser is a user known to the messaging platform.
type ChatUser struct {
	ID   string
	Name string
}
