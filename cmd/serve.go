package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/abhisek/skilleval/internal/assessment"
	"github.com/abhisek/skilleval/internal/catalog"
	"github.com/abhisek/skilleval/internal/gateway"
	"github.com/abhisek/skilleval/internal/llm"
	"github.com/abhisek/skilleval/internal/lock"
	"github.com/abhisek/skilleval/internal/observability"
	"github.com/abhisek/skilleval/internal/questiongen"
	"github.com/abhisek/skilleval/internal/recommend"
	"github.com/abhisek/skilleval/internal/reporting"
	"github.com/abhisek/skilleval/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if err := cfg.ValidateServe(); err != nil {
			return err
		}

		log, err := newLogger(cfg)
		if err != nil {
			return err
		}
		defer log.Sync()

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		shutdownTracing, err := observability.SetupTracing(ctx, observability.TracingConfig{
			ServiceName: "skilleval",
			Version:     version,
			Exporter:    cfg.Tracing.Exporter,
			Endpoint:    cfg.Tracing.Endpoint,
			SampleRatio: cfg.Tracing.SampleRatio,
		}, log)
		if err != nil {
			return fmt.Errorf("setup tracing: %w", err)
		}
		defer func() {
			if err := shutdownTracing(context.Background()); err != nil {
				log.Warn("tracing shutdown failed", "error", err)
			}
		}()

		s, err := openStore(cfg)
		if err != nil {
			return err
		}
		defer s.Close()

		cat := catalog.New(s.ConceptRepo(), log)
		if err := cat.SeedDefaults(ctx); err != nil {
			return fmt.Errorf("seed default concepts: %w", err)
		}
		if cfg.Catalog.SeedFile != "" {
			f, err := catalog.LoadSeedFile(cfg.Catalog.SeedFile)
			if err != nil {
				return err
			}
			n, err := cat.Seed(ctx, f)
			if err != nil {
				return fmt.Errorf("seed concepts from %s: %w", cfg.Catalog.SeedFile, err)
			}
			log.Info("concepts seeded", "file", cfg.Catalog.SeedFile, "count", n)
		}

		provider, err := llm.NewProvider(ctx, cfg.LLM, s.EventRepo(), log)
		if err != nil {
			return fmt.Errorf("create LLM provider: %w", err)
		}
		gw := gateway.New(provider,
			gateway.WithTimeout(cfg.LLM.Timeout),
			gateway.WithLogger(log.With("component", "gateway")),
		)

		var locker lock.Locker = lock.NewLocal()
		if cfg.Redis.Addr != "" {
			rl, err := lock.NewRedis(ctx, lock.RedisOptions{
				Addr:     cfg.Redis.Addr,
				Password: cfg.Redis.Password,
				DB:       cfg.Redis.DB,
			})
			if err != nil {
				return fmt.Errorf("connect start guard: %w", err)
			}
			defer rl.Close()
			locker = rl
			log.Info("using redis start guard", "addr", cfg.Redis.Addr)
		}

		svc := assessment.New(assessment.Deps{
			Catalog:     cat,
			Attempts:    s.AttemptRepo(),
			Generator:   questiongen.New(gw, questiongen.DefaultConfig(), log.With("component", "questiongen")),
			Recommender: recommend.New(gw, recommend.DefaultConfig(), log.With("component", "recommend")),
			Locker:      locker,
			Logger:      log.With("component", "assessment"),
		}, assessment.Config{
			TimeLimitMinutes: cfg.Assessment.TimeLimit,
			StartLockTTL:     cfg.Assessment.StartLockTTL,
		})

		srv := server.New(server.Config{
			Addr:        cfg.Server.Addr,
			Mode:        cfg.Server.Mode,
			CORSOrigins: cfg.Server.CORSOrigins,
			JWTSecret:   cfg.Auth.JWTSecret,
			Issuer:      cfg.Auth.Issuer,
			AdminRole:   cfg.Auth.AdminRole,
		}, server.Deps{
			Assessments: svc,
			Concepts:    cat,
			Reports:     reporting.New(s.StatsRepo()),
			DB:          s,
			Logger:      log.With("component", "http"),
		})

		log.Info("starting skilleval", "version", version, "provider", cfg.LLM.Provider,
			"database", cfg.Database.Driver)
		return srv.Run(ctx)
	},
}
