package model

// ================ Config ================
type ClassifierModelConfig struct {
	Model       string  `envconfig:"CLASSIFIER_MODEL" default:"gemini-2.5-flash-lite"`
	MaxTokens   int     `envconfig:"CLASSIFIER_MAX_TOKENS" default:"512"`
	Temperature float32 `envconfig:"CLASSIFIER_TEMPERATURE" default:"0.1"`
}

type ResponseModelConfig struct {
	Model       string  `envconfig:"RESPONSE_MODEL" default:"gemini-2.5-flash"`
	MaxTokens   int     `envconfig:"RESPONSE_MAX_TOKENS" default:"2000"`
	Temperature float32 `envconfig:"RESPONSE_TEMPERATURE" default:"0.4"`
}

// ThinkingConfig sets the model thinking budget. A Budget of 0 disables thinking.
type ThinkingConfig struct {
	Budget int32 `envconfig:"MODEL_THINKING_BUDGET" default:"0"`
}

type KnowledgeConfig struct {
	BaseURL string `envconfig:"KNOWLEDGE_BASE_URL" required:"true"`
}

type FactStoreConfig struct {
	Backend string `envconfig:"FACT_STORE_BACKEND" default:"memory"`
	TTL     string `envconfig:"FACT_STORE_TTL" default:"24h"`
	Prefix  string `envconfig:"FACT_STORE_PREFIX" default:"facts"`
}

type VotingConfig struct {
	BatchSize int `envconfig:"VOTING_BATCH_SIZE" default:"5"`
}

type ServerConfig struct {
	Addr      string `envconfig:"SERVER_ADDR" default:":8080"`
	AgentName string `envconfig:"AGENT_NAME" default:"voting_agent"`
}

const (
	FactStoreMemory = "memory"
	FactStoreRedis  = "redis"
)
