package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/voting-agent/server/internal/agent/graph"
	"github.com/voting-agent/server/internal/agent/graph/nodes"
	"github.com/voting-agent/server/internal/agent/intent"
	"github.com/voting-agent/server/internal/agent/model"
	"github.com/voting-agent/server/internal/agent/repo"
	"github.com/voting-agent/server/internal/agent/voting"
	"github.com/voting-agent/server/internal/core"
	"github.com/voting-agent/server/internal/server"
	logx "github.com/voting-agent/server/pkg/logger"
	pkgredis "github.com/voting-agent/server/pkg/redis"
)

const shutdownTimeout = 10 * time.Second

// AppConfig defines all configurable parameters of the service,
// sourced from environment variables (loaded from .env for local runs).
type AppConfig struct {
	Environment string `envconfig:"APP_ENV" default:"development"`

	// Infrastructure
	Redis pkgredis.Config

	// LLM provider
	APIKey  string `envconfig:"GEMINI_API_KEY" required:"true"`
	BaseURL string `envconfig:"GEMINI_BASE_URL"`

	// Agent configs
	Classifier model.ClassifierModelConfig
	Response   model.ResponseModelConfig
	Thinking   model.ThinkingConfig
	Knowledge  model.KnowledgeConfig
	FactStore  model.FactStoreConfig
	Voting     model.VotingConfig
	Server     model.ServerConfig
}

func main() {
	if err := godotenv.Load(".env"); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not load .env file: %v\n", err)
	}

	var cfg AppConfig
	if err := envconfig.Process("", &cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to process environment config: %v\n", err)
		os.Exit(1)
	}

	logx.Init(logx.LoggerOpts{
		Environment: core.ParseEnvironment(cfg.Environment),
		Service:     cfg.Server.AgentName,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		logx.Fatal().Err(err).Msg("Voting agent stopped")
	}
}

func run(ctx context.Context, cfg AppConfig) error {
	facts, closeFacts, err := newFactStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeFacts()

	if err := facts.Seed(ctx, repo.SeedFacts()); err != nil {
		return fmt.Errorf("seed fact store: %w", err)
	}

	cms, err := nodes.NewChatModels(ctx, nodes.ChatModelConfig{
		APIKey:         cfg.APIKey,
		BaseURL:        cfg.BaseURL,
		ClassifierCfg:  &cfg.Classifier,
		ResponseCfg:    &cfg.Response,
		ThinkingBudget: cfg.Thinking.Budget,
	})
	if err != nil {
		return err
	}

	knowledge := repo.NewKnowledgeClient(cfg.Knowledge.BaseURL, nil)
	generator := voting.NewGenerator(cms.Response, cfg.Voting.BatchSize)

	runner, err := graph.BuildRunner(ctx, &graph.GraphConfig{
		Classifier: intent.NewClassifier(cms.Classifier),
		Knowledge:  knowledge,
		Facts:      facts,
		Generator:  generator,
		Response:   cms.Response,
	})
	if err != nil {
		return fmt.Errorf("build query graph: %w", err)
	}

	srv := &http.Server{
		Addr: cfg.Server.Addr,
		Handler: server.New(server.Config{
			Runner:    runner,
			Knowledge: knowledge,
			Generator: generator,
			AgentName: cfg.Server.AgentName,
		}).Router(),
	}

	errCh := make(chan error, 1)
	go func() {
		logx.Info().
			Str("addr", cfg.Server.Addr).
			Str("knowledge_url", cfg.Knowledge.BaseURL).
			Str("fact_store", cfg.FactStore.Backend).
			Str("classifier_model", cms.Classifier.Name()).
			Str("response_model", cms.Response.Name()).
			Msg("Starting voting agent")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logx.Info().Msg("Shutting down voting agent")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// newFactStore builds the configured fact store and its cleanup func.
func newFactStore(ctx context.Context, cfg AppConfig) (model.FactStore, func(), error) {
	switch cfg.FactStore.Backend {
	case model.FactStoreMemory, "":
		return repo.NewMemoryFactStore(), func() {}, nil
	case model.FactStoreRedis:
		ttl, err := time.ParseDuration(cfg.FactStore.TTL)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid FACT_STORE_TTL '%s': %w", cfg.FactStore.TTL, err)
		}
		rdb, err := cfg.Redis.New(ctx)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to initialise Redis client: %w", err)
		}
		logx.Info().Dur("ttl", ttl).Msg("Connected to Redis fact store")
		closeFn := func() {
			if err := rdb.Close(); err != nil {
				logx.Warn().Err(err).Msg("Failed to close Redis client")
			}
		}
		return repo.NewRedisFactStore(rdb, cfg.FactStore.Prefix, ttl), closeFn, nil
	default:
		return nil, nil, fmt.Errorf("unknown FACT_STORE_BACKEND %q", cfg.FactStore.Backend)
	}
}
