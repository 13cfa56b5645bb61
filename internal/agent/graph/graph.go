package graph

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino/compose"

	"github.com/voting-agent/server/internal/agent/graph/nodes"
	"github.com/voting-agent/server/internal/agent/graph/observers"
	"github.com/voting-agent/server/internal/agent/model"
	logx "github.com/voting-agent/server/pkg/logger"
)

// maxRunSteps covers the longest path: classifier, branch target, finalizer,
// humanizer and parser.
const maxRunSteps = 10

// Runner is a thin wrapper to execute the compiled graph with the public QueryInput.
type Runner interface {
	Invoke(ctx context.Context, in model.QueryInput) (model.Result, error)
}

// GraphConfig holds all collaborators needed to build the graph.
type GraphConfig struct {
	Classifier nodes.IntentClassifier
	Knowledge  model.KnowledgeSource
	Facts      model.FactStore
	Generator  model.QuestionGenerator
	// Response answers FAQ misses and produces the final reply.
	Response model.LanguageModel
}

// GraphBuilder handles the construction of the query graph
type GraphBuilder struct {
	config *GraphConfig
	graph  *compose.Graph[model.QueryInput, model.Result]
}

type graphRunner struct {
	runnable compose.Runnable[model.QueryInput, model.Result]
}

func (r *graphRunner) Invoke(ctx context.Context, in model.QueryInput) (model.Result, error) {
	out, err := r.runnable.Invoke(ctx, in, compose.WithCallbacks(observers.NewAllCallbacks()))
	if err != nil {
		logx.Error().Err(err).Str("query", in.Query).Msg("Query graph failed")
		return model.Result{}, err
	}
	return out, nil
}

// BuildRunner builds the graph and wraps it in a Runner.
func BuildRunner(ctx context.Context, cfg *GraphConfig) (Runner, error) {
	runnable, err := BuildGraph(ctx, cfg)
	if err != nil {
		return nil, err
	}
	logx.Debug().Msg("Query graph built successfully")
	return &graphRunner{runnable: runnable}, nil
}

// BuildGraph constructs and returns the compiled query graph
func BuildGraph(ctx context.Context, config *GraphConfig) (compose.Runnable[model.QueryInput, model.Result], error) {
	if config == nil {
		return nil, fmt.Errorf("graph config is nil")
	}
	if config.Classifier == nil || config.Response == nil {
		return nil, fmt.Errorf("language models are not properly initialized")
	}
	if config.Knowledge == nil || config.Facts == nil || config.Generator == nil {
		return nil, fmt.Errorf("knowledge source, fact store and generator are required")
	}

	builder := &GraphBuilder{
		config: config,
		graph: compose.NewGraph[model.QueryInput, model.Result](
			compose.WithGenLocalState(func(ctx context.Context) *model.AppState {
				return &model.AppState{}
			}),
		),
	}

	if err := builder.addNodes(); err != nil {
		return nil, err
	}
	if err := builder.addEdges(); err != nil {
		return nil, err
	}
	if err := builder.addBranches(); err != nil {
		return nil, err
	}

	return builder.compile(ctx)
}

// addNodes adds all processing nodes to the graph
func (b *GraphBuilder) addNodes() error {
	cfg := b.config
	add := func(key string, node *compose.Lambda, opts ...compose.GraphAddNodeOpt) error {
		if err := b.graph.AddLambdaNode(key, node, opts...); err != nil {
			logx.Error().Err(err).Str("node", key).Msg("Error adding node")
			return fmt.Errorf("error adding node %s: %w", key, err)
		}
		return nil
	}

	steps := []struct {
		key  string
		node *compose.Lambda
		opts []compose.GraphAddNodeOpt
	}{
		{nodes.NodeClassifier, nodes.NewClassifierNode(cfg.Classifier), []compose.GraphAddNodeOpt{
			compose.WithStatePreHandler(nodes.NewClassifierPreHandler()),
			compose.WithStatePostHandler(nodes.NewClassifierPostHandler()),
		}},
		{nodes.NodeFAQContext, nodes.NewFAQContextNode(cfg.Facts, cfg.Response), nil},
		{nodes.NodeVotingContext, nodes.NewVotingContextNode(cfg.Knowledge, cfg.Generator), nil},
		{nodes.NodeAnalysisContext, nodes.NewAnalysisContextNode(cfg.Knowledge), nil},
		{nodes.NodeComparisonContext, nodes.NewComparisonContextNode(cfg.Knowledge), nil},
		{nodes.NodeGeneralContext, nodes.NewGeneralContextNode(), nil},
		{nodes.NodePromptFinalizer, nodes.NewPromptFinalizerNode(), []compose.GraphAddNodeOpt{
			compose.WithStatePreHandler(nodes.NewPromptFinalizerPreHandler()),
		}},
		{nodes.NodeHumanizer, nodes.NewHumanizerNode(cfg.Response), nil},
		{nodes.NodeAnswerParser, nodes.NewAnswerParserNode(), nil},
	}
	for _, s := range steps {
		if err := add(s.key, s.node, s.opts...); err != nil {
			return err
		}
	}
	return nil
}

var contextNodes = []string{
	nodes.NodeFAQContext,
	nodes.NodeVotingContext,
	nodes.NodeAnalysisContext,
	nodes.NodeComparisonContext,
	nodes.NodeGeneralContext,
}

// addEdges creates the main flow connections between nodes
func (b *GraphBuilder) addEdges() error {
	edges := [][2]string{
		{compose.START, nodes.NodeClassifier},
		{nodes.NodePromptFinalizer, nodes.NodeHumanizer},
		{nodes.NodeHumanizer, nodes.NodeAnswerParser},
		{nodes.NodeAnswerParser, compose.END},
	}
	for _, n := range contextNodes {
		edges = append(edges, [2]string{n, nodes.NodePromptFinalizer})
	}

	for _, edge := range edges {
		if err := b.graph.AddEdge(edge[0], edge[1]); err != nil {
			logx.Error().Err(err).Str("from", edge[0]).Str("to", edge[1]).Msg("Error adding edge")
			return fmt.Errorf("error adding edge %s -> %s: %w", edge[0], edge[1], err)
		}
	}
	return nil
}

// addBranches creates the intent routing branch
func (b *GraphBuilder) addBranches() error {
	targets := make(map[string]bool, len(contextNodes))
	for _, n := range contextNodes {
		targets[n] = true
	}

	intentBranch := compose.NewGraphBranch(nodes.NewIntentCondition(), targets)
	if err := b.graph.AddBranch(nodes.NodeClassifier, intentBranch); err != nil {
		logx.Error().Err(err).Msg("Error adding intent branch")
		return fmt.Errorf("error adding intent branch: %w", err)
	}
	return nil
}

// compile finalizes and compiles the graph
func (b *GraphBuilder) compile(ctx context.Context) (compose.Runnable[model.QueryInput, model.Result], error) {
	runnable, err := b.graph.Compile(ctx, compose.WithMaxRunSteps(maxRunSteps))
	if err != nil {
		logx.Error().Err(err).Msg("Error compiling graph")
		return nil, fmt.Errorf("error compiling graph: %w", err)
	}

	logx.Debug().Msg("Graph compiled successfully")
	return runnable, nil
}
