package github

import (
	"context"
	"errors"
	"net/http"
	"testing"

	gh "github.com/google/go-github/v80/github"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	github "github.com/tracker-tv/github-ruleset-bot/internal/github/mocks"
	"github.com/tracker-tv/github-ruleset-bot/models"
)

func TestGetAssetLevel(t *testing.T) {
	tests := []struct {
		name string
		body string
		want models.AssetLevel
	}{
		{
			name: "production",
			body: `[{"property_name": "team", "value": "core"}, {"property_name": "repository-level", "value": "Production"}]`,
			want: models.AssetLevelProduction,
		},
		{
			name: "research and development",
			body: `[{"property_name": "repository-level", "value": "Research & Development"}]`,
			want: models.AssetLevelResearchAndDevelopment,
		},
		{
			name: "property missing",
			body: `[{"property_name": "team", "value": "core"}]`,
			want: models.AssetLevelUnspecified,
		},
		{
			name: "unknown value",
			body: `[{"property_name": "repository-level", "value": "Mission Critical"}]`,
			want: models.AssetLevelUnspecified,
		},
		{
			name: "multi select value",
			body: `[{"property_name": "repository-level", "value": ["Production"]}]`,
			want: models.AssetLevelUnspecified,
		},
		{
			name: "null value",
			body: `[{"property_name": "repository-level", "value": null}]`,
			want: models.AssetLevelUnspecified,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/repos/org-name/repo-name/properties/values", r.URL.Path)
				_, _ = w.Write([]byte(tt.body))
			}))

			level, err := c.GetAssetLevel(t.Context(), "repo-name")

			assert.NoError(t, err)
			assert.Equal(t, tt.want, level)
		})
	}
}

func TestGetAssetLevel_Error(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"message": "Resource not accessible by integration"}`))
	}))

	level, err := c.GetAssetLevel(t.Context(), "repo-name")

	assert.Error(t, err)
	assert.Equal(t, models.AssetLevelUnspecified, level)
}

func TestGetAssetLevel_UsesCustomPropertiesService(t *testing.T) {
	ctx := context.Background()
	reposSvc := github.NewMockRepositoriesAdapter(t)

	reposSvc.
		EXPECT().
		GetAllCustomPropertyValues(mock.Anything, "org-name", "repo-name").
		Once().
		Return([]*gh.CustomPropertyValue{
			nil,
			{PropertyName: "team", Value: "core"},
			{PropertyName: "repository-level", Value: "Corporate"},
		}, &gh.Response{}, nil)

	c := &client{repositories: reposSvc, org: "org-name"}

	level, err := c.GetAssetLevel(ctx, "repo-name")

	assert.NoError(t, err)
	assert.Equal(t, models.AssetLevelCorporate, level)
}

func TestGetAssetLevel_AdapterError(t *testing.T) {
	ctx := context.Background()
	reposSvc := github.NewMockRepositoriesAdapter(t)

	reposSvc.
		EXPECT().
		GetAllCustomPropertyValues(mock.Anything, "org-name", "repo-name").
		Once().
		Return(nil, nil, errors.New("API error"))

	c := &client{repositories: reposSvc, org: "org-name"}

	level, err := c.GetAssetLevel(ctx, "repo-name")

	assert.ErrorContains(t, err, "API error")
	assert.Equal(t, models.AssetLevelUnspecified, level)
}
