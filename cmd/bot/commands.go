package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/tracker-tv/github-ruleset-bot/internal/config"
	"github.com/tracker-tv/github-ruleset-bot/internal/directory"
	"github.com/tracker-tv/github-ruleset-bot/internal/orchestrator"
	"github.com/tracker-tv/github-ruleset-bot/models"
	"go.uber.org/zap"
)

func runCmd() *cobra.Command {
	var repo string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Ingest and notify once",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			a, err := newApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close()

			if repo != "" {
				summary, err := a.bot.Run(ctx, models.Repository{
					Name:     repo,
					FullName: a.cfg.GithubOrg + "/" + repo,
				})
				logSummaries(a.logger, summary)
				return err
			}

			summaries, err := a.bot.RunOrg(ctx)
			logSummaries(a.logger, summaries...)
			return err
		},
	}

	cmd.Flags().StringVar(&repo, "repo", "", "Repository name within the organization; all active repositories when empty")
	return cmd
}

func watchCmd() *cobra.Command {
	var interval time.Duration

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Run the organization repeatedly until interrupted",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			a, err := newApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close()

			if interval <= 0 {
				interval = a.cfg.PollInterval
			}
			a.logger.Info("watching organization", zap.String("org", a.cfg.GithubOrg), zap.Duration("interval", interval))

			ticker := time.NewTicker(interval)
			defer ticker.Stop()

			for {
				summaries, err := a.bot.RunOrg(ctx)
				logSummaries(a.logger, summaries...)
				if err != nil {
					a.logger.Error("organization run failed", zap.Error(err))
				}

				select {
				case <-ctx.Done():
					a.logger.Info("shutting down")
					return nil
				case <-ticker.C:
				}
			}
		},
	}

	cmd.Flags().DurationVar(&interval, "interval", 0, "Time between runs (defaults to RULESET_BOT_POLL_INTERVAL)")
	return cmd
}

func migrateCmd() *cobra.Command {
	var usersFile string

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply the database schema and optionally import users",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			logger, err := newLogger(cfg)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			db, err := openStore(ctx, cfg, logger)
			if err != nil {
				return err
			}
			defer func() { _ = db.Close() }()

			if err := db.Migrate(ctx); err != nil {
				return err
			}

			if usersFile == "" {
				return nil
			}
			return importUsers(ctx, db, usersFile, logger)
		},
	}

	cmd.Flags().StringVar(&usersFile, "users", "", "YAML user directory to import into the users table")
	return cmd
}

func importUsers(ctx context.Context, db sqlStore, path string, logger *zap.Logger) error {
	dir, err := directory.LoadFile(path)
	if err != nil {
		return err
	}

	for _, user := range dir.Users() {
		if err := db.PutUser(ctx, user); err != nil {
			return fmt.Errorf("importing %s: %w", user.GithubUsername, err)
		}
	}
	logger.Info("imported users", zap.Int("count", len(dir.Users())))
	return nil
}

func logSummaries(logger *zap.Logger, summaries ...orchestrator.Summary) {
	for _, s := range summaries {
		logger.Info("repository summary",
			zap.String("repository", s.Repository),
			zap.Int("ingested", s.Ingested),
			zap.Int("notified", s.Notified),
			zap.String("failed_stage", string(s.Stage)))
	}
}
