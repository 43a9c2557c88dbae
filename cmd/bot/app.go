package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/tracker-tv/github-ruleset-bot/internal/config"
	"github.com/tracker-tv/github-ruleset-bot/internal/directory"
	"github.com/tracker-tv/github-ruleset-bot/internal/github"
	"github.com/tracker-tv/github-ruleset-bot/internal/orchestrator"
	"github.com/tracker-tv/github-ruleset-bot/internal/service"
	"github.com/tracker-tv/github-ruleset-bot/internal/slack"
	"github.com/tracker-tv/github-ruleset-bot/internal/store/postgres"
	"github.com/tracker-tv/github-ruleset-bot/internal/store/sqlite"
	"github.com/tracker-tv/github-ruleset-bot/models"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// sqlStore is what both database backends provide.
type sqlStore interface {
	service.EventStore
	service.UserDirectory
	Migrate(ctx context.Context) error
	PutUser(ctx context.Context, user models.User) error
	Close() error
}

type app struct {
	cfg    *config.Config
	logger *zap.Logger
	db     sqlStore
	bot    *orchestrator.RulesetBot
}

func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return nil, err
	}

	httpClient := &http.Client{Timeout: cfg.RequestTimeout}

	credentials, err := newCredentials(cfg, httpClient)
	if err != nil {
		return nil, err
	}

	db, err := openStore(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	if err := db.Migrate(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	var users service.UserDirectory = db
	if cfg.DirectoryFile != "" {
		dir, err := directory.LoadFile(cfg.DirectoryFile)
		if err != nil {
			_ = db.Close()
			return nil, err
		}
		users = dir
		logger.Info("using user directory file", zap.String("path", cfg.DirectoryFile), zap.Int("users", len(dir.Users())))
	}

	slackOpts := []slack.Option{slack.WithHTTPClient(httpClient)}
	if cfg.SlackAPIURL != "" {
		slackOpts = append(slackOpts, slack.WithAPIURL(cfg.SlackAPIURL))
	}
	messenger := slack.New(cfg.SlackToken, slackOpts...)

	ingestion := service.NewIngestionService(db, service.IngestionOptions{
		TimePeriod:    cfg.RuleSuiteTimePeriod,
		IgnoredActors: cfg.IgnoredActors,
	}, logger)

	notifications := service.NewNotificationService(db, users, messenger, service.NotificationOptions{
		Rules:          cfg.Rules(),
		WebBaseURL:     cfg.WebBaseURL(),
		Org:            cfg.GithubOrg,
		DefaultChannel: cfg.SlackDefaultChannel,
		WatcherEmails:  cfg.SlackWatcherEmails,
	}, logger)

	connect := func(auth *models.AuthContext) (github.Client, error) {
		return github.New(auth.Token, cfg.GithubOrg,
			github.WithBaseURL(cfg.GithubAPIBaseURL),
			github.WithHTTPClient(httpClient))
	}

	return &app{
		cfg:    cfg,
		logger: logger,
		db:     db,
		bot:    orchestrator.NewRulesetBot(credentials, connect, ingestion, notifications, cfg.Workers, logger),
	}, nil
}

func (a *app) Close() {
	if err := a.db.Close(); err != nil {
		a.logger.Warn("closing database", zap.Error(err))
	}
	_ = a.logger.Sync()
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	level, err := zap.ParseAtomicLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("parsing log level: %w", err)
	}

	logConfig := zap.NewProductionConfig()
	logConfig.Level = level
	logConfig.Encoding = cfg.LogFormat
	if cfg.LogFormat == "console" {
		logConfig.EncoderConfig = zap.NewDevelopmentEncoderConfig()
	}
	logConfig.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := logConfig.Build()
	if err != nil {
		return nil, fmt.Errorf("building logger: %w", err)
	}
	return logger.With(zap.String("org", cfg.GithubOrg)), nil
}

func newCredentials(cfg *config.Config, httpClient *http.Client) (github.Credentials, error) {
	if !cfg.UsesGithubApp() {
		return github.StaticToken(cfg.GithubPAT), nil
	}

	auth, err := github.NewAppAuthenticator(cfg.GithubAppID, cfg.GithubInstallationID, []byte(cfg.GithubPrivateKey),
		github.WithBaseURL(cfg.GithubAPIBaseURL),
		github.WithHTTPClient(httpClient))
	if err != nil {
		return nil, err
	}
	return auth, nil
}

func openStore(ctx context.Context, cfg *config.Config, logger *zap.Logger) (sqlStore, error) {
	var (
		db  sqlStore
		err error
	)
	switch cfg.DatabaseDriver {
	case "postgres":
		db, err = postgres.Open(ctx, cfg.DatabaseDSN, logger)
	case "sqlite":
		db, err = sqlite.Open(ctx, cfg.DatabaseDSN, logger)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.DatabaseDriver)
	}
	if err != nil {
		return nil, err
	}
	return db, nil
}
