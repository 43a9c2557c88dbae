package github

import (
	"context"
	"fmt"

	gh "github.com/google/go-github/v80/github"
	"github.com/tracker-tv/github-ruleset-bot/models"
)

// GetAssetLevel reads the repository-level custom property. Repositories
// without the property, or with a value that is not a known level, are
// Unspecified.
func (c *client) GetAssetLevel(ctx context.Context, repo string) (models.AssetLevel, error) {
	props, _, err := withRetry(ctx, func() ([]*gh.CustomPropertyValue, *gh.Response, error) {
		return c.repositories.GetAllCustomPropertyValues(ctx, c.org, repo)
	})
	if err != nil {
		return models.AssetLevelUnspecified, fmt.Errorf("listing custom properties for %s: %w", repo, err)
	}

	for _, prop := range props {
		if prop == nil || prop.PropertyName != models.AssetLevelProperty {
			continue
		}
		value, ok := prop.Value.(string)
		if !ok {
			return models.AssetLevelUnspecified, nil
		}
		level, _ := models.ParseAssetLevel(value)
		return level, nil
	}

	return models.AssetLevelUnspecified, nil
}
