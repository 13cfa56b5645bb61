package nodes

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino-ext/components/model/gemini"
	einomodel "github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"google.golang.org/genai"

	"github.com/voting-agent/server/internal/agent/model"
	errx "github.com/voting-agent/server/internal/core/error"
	logx "github.com/voting-agent/server/pkg/logger"
)

// ChatModelConfig holds the configuration for chat model creation
type ChatModelConfig struct {
	APIKey         string
	BaseURL        string
	ClassifierCfg  *model.ClassifierModelConfig
	ResponseCfg    *model.ResponseModelConfig
	ThinkingBudget int32
}

// ChatModels holds the classifier and response completers.
type ChatModels struct {
	Classifier *ChatCompleter
	Response   *ChatCompleter
}

// NewChatModels creates both Gemini chat models on one shared client.
func NewChatModels(ctx context.Context, config ChatModelConfig) (*ChatModels, error) {
	if config.ClassifierCfg == nil || config.ResponseCfg == nil {
		return nil, fmt.Errorf("chat model configs are nil")
	}

	clientCfg := &genai.ClientConfig{
		APIKey:  config.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if config.BaseURL != "" {
		clientCfg.HTTPOptions.BaseURL = config.BaseURL
	}

	client, err := genai.NewClient(ctx, clientCfg)
	if err != nil {
		logx.Error().Err(err).Msg("Error creating Gemini client")
		return nil, fmt.Errorf("error creating Gemini client: %w", err)
	}

	thinking := &genai.ThinkingConfig{
		IncludeThoughts: false,
		ThinkingBudget:  genai.Ptr(config.ThinkingBudget),
	}

	classifier, err := gemini.NewChatModel(ctx, &gemini.Config{
		Client:         client,
		Model:          config.ClassifierCfg.Model,
		Temperature:    &config.ClassifierCfg.Temperature,
		MaxTokens:      &config.ClassifierCfg.MaxTokens,
		ThinkingConfig: thinking,
	})
	if err != nil {
		logx.Error().Err(err).Msg("Error creating classifier model")
		return nil, fmt.Errorf("error creating classifier model: %w", err)
	}

	response, err := gemini.NewChatModel(ctx, &gemini.Config{
		Client:         client,
		Model:          config.ResponseCfg.Model,
		Temperature:    &config.ResponseCfg.Temperature,
		MaxTokens:      &config.ResponseCfg.MaxTokens,
		ThinkingConfig: thinking,
	})
	if err != nil {
		logx.Error().Err(err).Msg("Error creating response model")
		return nil, fmt.Errorf("error creating response model: %w", err)
	}

	return &ChatModels{
		Classifier: NewChatCompleter(classifier, config.ClassifierCfg.Model),
		Response:   NewChatCompleter(response, config.ResponseCfg.Model),
	}, nil
}

// ChatCompleter adapts an eino chat model to model.LanguageModel: one user
// message in, the reply content out.
type ChatCompleter struct {
	chat      einomodel.BaseChatModel
	modelName string
}

func NewChatCompleter(chat einomodel.BaseChatModel, modelName string) *ChatCompleter {
	return &ChatCompleter{chat: chat, modelName: modelName}
}

// Name returns the configured model name.
func (c *ChatCompleter) Name() string {
	return c.modelName
}

func (c *ChatCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	out, err := c.chat.Generate(ctx, []*schema.Message{schema.UserMessage(prompt)})
	if err != nil {
		logx.Error().Err(err).Str("model", c.modelName).Msg("Chat model call failed")
		return "", errx.WrapLLM(err)
	}
	if out == nil {
		return "", nil
	}
	logUsage(c.modelName, out)
	return out.Content, nil
}

// logUsage computes and logs usage cost when the provider reports tokens.
func logUsage(modelName string, out *schema.Message) {
	if out.ResponseMeta == nil || out.ResponseMeta.Usage == nil {
		return
	}
	usage := out.ResponseMeta.Usage
	inC, outC, totalC := model.ComputeCost(usage, model.ResolvePricing(modelName))
	logx.Debug().
		Str("model", modelName).
		Int("prompt_tokens", usage.PromptTokens).
		Int("completion_tokens", usage.CompletionTokens).
		Int("total_tokens", usage.TotalTokens).
		Float64("input_cost_usd", inC).
		Float64("output_cost_usd", outC).
		Float64("total_cost_usd", totalC).
		Msg("LLM usage")
}

var _ model.LanguageModel = (*ChatCompleter)(nil)
