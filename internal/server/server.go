// Package server exposes the query pipeline and the brand endpoints over HTTP.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/voting-agent/server/internal/agent/model"
	logx "github.com/voting-agent/server/pkg/logger"
)

// QueryRunner answers a free-text query.
type QueryRunner interface {
	Invoke(ctx context.Context, in model.QueryInput) (model.Result, error)
}

// BatchGenerator produces one or several voting questions for a brand.
type BatchGenerator interface {
	model.QuestionGenerator
	GenerateMany(ctx context.Context, brand string, data model.NegativeData, count int) []string
}

// Config holds the collaborators of the HTTP surface.
type Config struct {
	Runner    QueryRunner
	Knowledge model.KnowledgeSource
	Generator BatchGenerator
	// AgentName is reported as agent_address in brand responses.
	AgentName string
	// Now defaults to time.Now.
	Now func() time.Time
}

type Server struct {
	runner    QueryRunner
	knowledge model.KnowledgeSource
	generator BatchGenerator
	agentName string
	now       func() time.Time
}

func New(cfg Config) *Server {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &Server{
		runner:    cfg.Runner,
		knowledge: cfg.Knowledge,
		generator: cfg.Generator,
		agentName: cfg.AgentName,
		now:       now,
	}
}

// Router builds the chi router with every route mounted.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(requestLogger)
	r.Use(chimiddleware.Recoverer)

	r.Get("/health", s.health)
	r.Post("/query", s.query)
	r.Post("/voting", s.voting)
	r.Post("/voting/batch", s.votingBatch)
	r.Post("/brand/negative-data", s.negativeData)

	return r
}

func (s *Server) timestamp() string {
	return s.now().UTC().Format(time.RFC3339Nano)
}

// requestLogger logs one line per request through logx.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		logx.Info().
			Str("request_id", chimiddleware.GetReqID(r.Context())).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("duration", time.Since(start)).
			Msg("HTTP request")
	})
}
