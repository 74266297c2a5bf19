package config

// ProviderType identifies an LLM provider.
type ProviderType string

const (
	ProviderAnthropic ProviderType = "anthropic"
	ProviderOpenAI    ProviderType = "openai"
	ProviderOllama    ProviderType = "ollama"
)

// Config is the top-level service configuration, corresponding to kag.yml.
type Config struct {
	Provider          ProviderType `yaml:"provider" koanf:"provider"`
	Model             string       `yaml:"model" koanf:"model"`
	NERModel          string       `yaml:"ner_model" koanf:"ner_model"`
	NEREnabled        bool         `yaml:"ner_enabled" koanf:"ner_enabled"`
	RequestsPerMinute int          `yaml:"requests_per_minute" koanf:"requests_per_minute"`
	Neo4j             Neo4jConfig  `yaml:"neo4j" koanf:"neo4j"`
	Server            ServerConfig `yaml:"server" koanf:"server"`
	HistoryPath       string       `yaml:"history_path" koanf:"history_path"`
}

// Neo4jConfig holds the graph database connection settings.
type Neo4jConfig struct {
	URI      string `yaml:"uri" koanf:"uri"`
	Username string `yaml:"username" koanf:"username"`
	Password string `yaml:"password" koanf:"password"`
	Database string `yaml:"database" koanf:"database"`
}

// ServerConfig holds the HTTP server settings.
type ServerConfig struct {
	Port int `yaml:"port" koanf:"port"`
}
