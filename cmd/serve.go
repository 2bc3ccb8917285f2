package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/sashabaranov/go-openai"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	httpadapter "campaign-engine/internal/adapter/http"
	"campaign-engine/internal/adapter/llm"
	"campaign-engine/internal/adapter/metrics"
	natsadapter "campaign-engine/internal/adapter/nats"
	"campaign-engine/internal/adapter/postgres"
	redisadapter "campaign-engine/internal/adapter/redis"
	"campaign-engine/internal/adapter/usecase"
	"campaign-engine/internal/config"
	"campaign-engine/internal/config/configs"
	"campaign-engine/internal/core/port"
	"campaign-engine/internal/db"
	"campaign-engine/internal/telemetry"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the decision HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			return serve(cmd.Context(), cfg)
		},
	}
}

// serve wires the optional backends, then runs the HTTP server until a
// termination signal arrives and shuts it down gracefully.
func serve(ctx context.Context, cfg config.Config) error {
	logger := cfg.Log.NewLogger(os.Stdout).With(slog.String("env", cfg.Env))

	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	shutdownTracing, err := telemetry.InitTracing(ctx, cfg.Telemetry)
	if err != nil {
		return err
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			logger.Error("tracer shutdown error", slog.Any("error", err))
		}
	}()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	sinks := []port.DecisionSink{metrics.NewRecorder(reg)}
	handlerOpts := []httpadapter.Option{
		httpadapter.WithMetrics(promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})),
	}

	if cfg.Psql.Enabled {
		if cfg.Psql.RunMigrations {
			if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
				logger.Error("migration error", slog.Any("error", err))
			} else {
				logger.Info("migrations applied successfully")
			}
		}
		pool, err := db.NewPostgresPool(ctx, cfg.Psql)
		if err != nil {
			return fmt.Errorf("database connection: %w", err)
		}
		defer pool.Close()

		repo := postgres.NewDecisionRepository(pool)
		sinks = append(sinks, repo)
		handlerOpts = append(handlerOpts,
			httpadapter.WithStats(repo),
			httpadapter.WithHealthCheck("postgres", repo.Ping),
		)
		logger.Info("decision log enabled")
	}

	var quota port.QuotaGuard
	if cfg.Redis.Enabled {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()

		q := redisadapter.NewQuota(rdb, cfg.LLM.QuotaPerMinute, time.Minute)
		quota = q
		handlerOpts = append(handlerOpts, httpadapter.WithHealthCheck("redis", q.Ping))
		logger.Info("llm quota enabled", slog.Int64("per_minute", cfg.LLM.QuotaPerMinute))
	}

	if cfg.NATS.Enabled {
		nc, err := natsadapter.Connect(cfg.NATS.URL, "campaign-engine")
		if err != nil {
			return err
		}
		defer func() {
			if err := nc.Drain(); err != nil {
				logger.Error("nats drain error", slog.Any("error", err))
			}
		}()

		sinks = append(sinks, natsadapter.NewPublisher(nc, cfg.NATS.SubjectPrefix))
		handlerOpts = append(handlerOpts, httpadapter.WithHealthCheck("nats", natsadapter.ConnCheck(nc)))
		logger.Info("decision events enabled", slog.String("subject_prefix", cfg.NATS.SubjectPrefix))
	}

	strategies, err := contentStrategies(ctx, cfg.LLM, quota)
	if err != nil {
		return err
	}
	for _, s := range strategies {
		logger.Info("content model enabled", slog.String("backend", s.Name()))
	}
	if len(strategies) == 0 {
		logger.Info("no language model configured, content comes from templates")
	}

	engine := usecase.NewDecisionEngine(logger,
		usecase.WithContentStrategies(strategies...),
		usecase.WithSinks(sinks...),
	)
	handler := httpadapter.NewHandler(engine, logger, handlerOpts...)
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           handler.Router(),
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("server shutdown error", slog.Any("error", err))
			return err
		}
		logger.Info("server gracefully stopped")
		return nil
	})
	return g.Wait()
}

// contentStrategies builds one model strategy per configured backend, in
// preference order.
func contentStrategies(ctx context.Context, cfg configs.LLM, quota port.QuotaGuard) ([]usecase.ContentStrategy, error) {
	opts := []usecase.LLMOption{
		usecase.WithTimeout(cfg.Timeout),
		usecase.WithGenerationParams(port.GenerationParams{
			MaxTokens:   cfg.MaxTokens,
			Temperature: cfg.Temperature,
			JSON:        true,
		}),
	}
	if quota != nil {
		opts = append(opts, usecase.WithQuota(quota))
	}

	var out []usecase.ContentStrategy
	if key := cfg.OpenAIKey(); key != "" {
		oc := openai.DefaultConfig(key)
		if cfg.OpenAIBaseURL != "" {
			oc.BaseURL = cfg.OpenAIBaseURL
		}
		out = append(out, usecase.NewLLMStrategy(llm.NewOpenAIWriterWithConfig(oc, cfg.OpenAIModel), opts...))
	}
	if key := cfg.GeminiKey(); key != "" {
		w, err := llm.NewGeminiWriter(ctx, key, cfg.GeminiModel)
		if err != nil {
			return nil, err
		}
		out = append(out, usecase.NewLLMStrategy(w, opts...))
	}
	return out, nil
}
