package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/tracker-tv/github-ruleset-bot/internal/policy"
	"github.com/tracker-tv/github-ruleset-bot/models"
)

type Config struct {
	GithubOrg        string `env:"RULESET_BOT_GITHUB_ORG,required" validate:"required"`
	GithubWebBaseURL string `env:"RULESET_BOT_GITHUB_WEB_BASE_URL" envDefault:"https://github.com" validate:"url"`
	GithubAPIBaseURL string `env:"RULESET_BOT_GITHUB_API_BASE_URL" envDefault:"https://api.github.com/" validate:"url"`

	// Either a personal access token or GitHub App credentials.
	GithubPAT            string `env:"RULESET_BOT_GITHUB_PAT" validate:"required_without=GithubAppID"`
	GithubAppID          int64  `env:"RULESET_BOT_GITHUB_APP_ID" validate:"required_without=GithubPAT"`
	GithubInstallationID int64  `env:"RULESET_BOT_GITHUB_INSTALLATION_ID" validate:"required_with=GithubAppID"`
	GithubPrivateKey     string `env:"RULESET_BOT_GITHUB_APP_PRIVATE_KEY_FILE,file" validate:"required_with=GithubAppID"`

	SlackToken          string   `env:"RULESET_BOT_SLACK_TOKEN,required" validate:"required"`
	SlackAPIURL         string   `env:"RULESET_BOT_SLACK_API_URL" validate:"omitempty,url"`
	SlackDefaultChannel string   `env:"RULESET_BOT_SLACK_SOC2_CHANNEL,required" validate:"required"`
	SlackWatcherEmails  []string `env:"RULESET_BOT_SLACK_WATCHER_EMAILS" envSeparator:"," validate:"dive,email"`

	ReviewRequirementRulesetID *int64 `env:"RULESET_BOT_REVIEW_REQUIREMENT_RULESET_ID"`
	BlockForcePushRulesetID    *int64 `env:"RULESET_BOT_BLOCK_FORCE_PUSH_RULESET_ID"`
	CodeOwnersRulesetID        *int64 `env:"RULESET_BOT_CODEOWNERS_RULESET_ID"`

	CriticalAssetLevel models.AssetLevel `env:"RULESET_BOT_CRITICAL_ASSET_LEVEL" envDefault:"Production"`
	CalloutAssetLevel  models.AssetLevel `env:"RULESET_BOT_CALLOUT_ASSET_LEVEL" envDefault:"Production"`
	InScopeAssetLevel  models.AssetLevel `env:"RULESET_BOT_IN_SCOPE_ASSET_LEVEL" envDefault:"Playground"`
	IgnoredActors      []string          `env:"RULESET_BOT_IGNORED_ACTORS" envSeparator:"," envDefault:"*\\[bot\\]"`

	// RuleSuiteTimePeriod bounds how far back rule suites are listed.
	RuleSuiteTimePeriod string `env:"RULESET_BOT_RULE_SUITE_TIME_PERIOD" envDefault:"day" validate:"oneof=hour day week month"`

	DatabaseDriver string `env:"RULESET_BOT_DATABASE_DRIVER" envDefault:"sqlite" validate:"oneof=postgres sqlite"`
	DatabaseDSN    string `env:"RULESET_BOT_DATABASE_DSN" envDefault:"ruleset-bot.db" validate:"required"`
	DirectoryFile  string `env:"RULESET_BOT_DIRECTORY_FILE"`

	RequestTimeout time.Duration `env:"RULESET_BOT_REQUEST_TIMEOUT" envDefault:"30s" validate:"gt=0"`
	PollInterval   time.Duration `env:"RULESET_BOT_POLL_INTERVAL" envDefault:"5m" validate:"gt=0"`
	Workers        int           `env:"RULESET_BOT_WORKERS" envDefault:"4" validate:"min=1"`

	LogLevel  string `env:"RULESET_BOT_LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn error"`
	LogFormat string `env:"RULESET_BOT_LOG_FORMAT" envDefault:"json" validate:"oneof=json console"`
}

// Load reads configuration from the environment, after loading an optional
// .env file from the working directory.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	for _, pattern := range c.IgnoredActors {
		if !doublestar.ValidatePattern(pattern) {
			return fmt.Errorf("invalid configuration: bad ignored actor pattern %q", pattern)
		}
	}
	return nil
}

// CriticalRulesets returns the tracked rulesets. Kinds without a configured
// ruleset ID are not tracked.
func (c *Config) CriticalRulesets() []models.CriticalRuleset {
	configured := []struct {
		kind models.RulesetKind
		id   *int64
	}{
		{kind: models.RulesetKindReviewRequirement, id: c.ReviewRequirementRulesetID},
		{kind: models.RulesetKindBlockForcePush, id: c.BlockForcePushRulesetID},
		{kind: models.RulesetKindCodeOwners, id: c.CodeOwnersRulesetID},
	}

	var rulesets []models.CriticalRuleset
	for _, r := range configured {
		if r.id == nil {
			continue
		}
		rulesets = append(rulesets, models.CriticalRuleset{Kind: r.kind, ID: *r.id})
	}
	return rulesets
}

func (c *Config) Rules() policy.Rules {
	return policy.Rules{
		CriticalRulesets:   c.CriticalRulesets(),
		CriticalAssetLevel: c.CriticalAssetLevel,
		CalloutAssetLevel:  c.CalloutAssetLevel,
		InScopeAssetLevel:  c.InScopeAssetLevel,
	}
}

// WebBaseURL returns the web base URL without a trailing slash.
func (c *Config) WebBaseURL() string {
	return strings.TrimRight(c.GithubWebBaseURL, "/")
}

func (c *Config) UsesGithubApp() bool {
	return c.GithubAppID != 0
}
