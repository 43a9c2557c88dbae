package service

import (
	"context"
	"errors"
	"testing"

	gh "github.com/google/go-github/v80/github"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	githubMocks "github.com/tracker-tv/github-ruleset-bot/internal/github/mocks"
)

func TestNewRepositoriesService(t *testing.T) {
	mockClient := githubMocks.NewMockClient(t)

	svc := NewRepositoriesService(mockClient)

	assert.NotNil(t, svc)
	assert.Implements(t, (*RepositoryService)(nil), svc)
}

func TestListActive_SkipsArchived(t *testing.T) {
	ctx := context.Background()
	mockClient := githubMocks.NewMockClient(t)

	repos := []*gh.Repository{
		{
			Name:     gh.Ptr("repo1"),
			FullName: gh.Ptr("org/repo1"),
			Private:  gh.Ptr(false),
			Archived: gh.Ptr(false),
		},
		{
			Name:     gh.Ptr("repo2"),
			FullName: gh.Ptr("org/repo2"),
			Private:  gh.Ptr(true),
			Archived: gh.Ptr(true),
		},
		{
			Name:     gh.Ptr("repo3"),
			FullName: gh.Ptr("org/repo3"),
			Private:  gh.Ptr(true),
		},
	}

	mockClient.
		EXPECT().
		ListAllRepos(mock.Anything).
		Once().
		Return(repos, nil)

	svc := NewRepositoriesService(mockClient)
	result, err := svc.ListActive(ctx)

	assert.NoError(t, err)
	assert.Len(t, result, 2)
	assert.Equal(t, "repo1", result[0].Name)
	assert.Equal(t, "org/repo1", result[0].FullName)
	assert.False(t, result[0].Private)
	assert.Equal(t, "repo3", result[1].Name)
	assert.True(t, result[1].Private)
	assert.False(t, result[1].Archived)
}

func TestListActive_WithNilRepo(t *testing.T) {
	ctx := context.Background()
	mockClient := githubMocks.NewMockClient(t)

	repos := []*gh.Repository{
		{Name: gh.Ptr("repo1"), FullName: gh.Ptr("org/repo1")},
		nil,
		{Name: gh.Ptr("repo2"), FullName: gh.Ptr("org/repo2")},
	}

	mockClient.
		EXPECT().
		ListAllRepos(mock.Anything).
		Once().
		Return(repos, nil)

	svc := NewRepositoriesService(mockClient)
	result, err := svc.ListActive(ctx)

	assert.NoError(t, err)
	assert.Len(t, result, 2)
	assert.Equal(t, "repo1", result[0].Name)
	assert.Equal(t, "repo2", result[1].Name)
}

func TestListActive_Empty(t *testing.T) {
	ctx := context.Background()
	mockClient := githubMocks.NewMockClient(t)

	mockClient.
		EXPECT().
		ListAllRepos(mock.Anything).
		Once().
		Return([]*gh.Repository{}, nil)

	svc := NewRepositoriesService(mockClient)
	result, err := svc.ListActive(ctx)

	assert.NoError(t, err)
	assert.Empty(t, result)
}

func TestListActive_Error(t *testing.T) {
	ctx := context.Background()
	mockClient := githubMocks.NewMockClient(t)

	mockClient.
		EXPECT().
		ListAllRepos(mock.Anything).
		Once().
		Return(nil, errors.New("API error"))

	svc := NewRepositoriesService(mockClient)
	result, err := svc.ListActive(ctx)

	assert.Error(t, err)
	assert.ErrorIs(t, err, ErrUpstreamFetch)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "API error")
}
