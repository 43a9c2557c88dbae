// Package directory maps GitHub logins to company email addresses from a
// YAML file.
package directory

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/tracker-tv/github-ruleset-bot/models"
	"gopkg.in/yaml.v3"
)

type file struct {
	Users []models.User `yaml:"users"`
}

// Directory is an immutable in-memory user directory.
type Directory struct {
	byLogin map[string]models.User
}

// LoadFile reads a directory file of the form
//
//	users:
//	  - email: octo@example.com
//	    github_username: octocat
func LoadFile(path string) (*Directory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading user directory: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Directory, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing user directory: %w", err)
	}
	return New(f.Users)
}

func New(users []models.User) (*Directory, error) {
	d := &Directory{byLogin: make(map[string]models.User, len(users))}
	for i, user := range users {
		if user.GithubUsername == "" || user.Email == "" {
			return nil, fmt.Errorf("user directory entry %d: email and github_username are required", i)
		}
		key := strings.ToLower(user.GithubUsername)
		if _, ok := d.byLogin[key]; ok {
			return nil, fmt.Errorf("user directory entry %d: duplicate github_username %q", i, user.GithubUsername)
		}
		d.byLogin[key] = user
	}
	return d, nil
}

// FindByGithubUsername matches logins case-insensitively. Unknown logins
// return nil without error.
func (d *Directory) FindByGithubUsername(_ context.Context, login string) (*models.User, error) {
	user, ok := d.byLogin[strings.ToLower(login)]
	if !ok {
		return nil, nil
	}
	return &user, nil
}

// Users returns every entry, in no particular order.
func (d *Directory) Users() []models.User {
	users := make([]models.User, 0, len(d.byLogin))
	for _, user := range d.byLogin {
		users = append(users, user)
	}
	return users
}
