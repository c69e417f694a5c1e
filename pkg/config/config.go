package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Server     ServerConfig
	Knowledge  KnowledgeConfig
	Similarity SimilarityConfig
	Documents  DocumentsConfig
	Retrieval  RetrievalConfig
	Generator  GeneratorConfig
	Redis      RedisConfig
	SQLite     SQLiteConfig
	RateLimit  RateLimitConfig
	Logging    LoggingConfig
}

type ServerConfig struct {
	Host         string
	Port         int
	ReadTimeout  int
	WriteTimeout int
	BodyLimit    int
}

type KnowledgeConfig struct {
	Path  string
	Watch bool
}

type SimilarityConfig struct {
	HighThreshold   float64
	MediumThreshold float64
}

type DocumentsConfig struct {
	BaseURL    string
	Names      []string
	TimeoutSec int
}

type RetrievalConfig struct {
	TopK            int
	EmbeddingModel  string
	BatchSize       int
	DocChunkSize    int
	DocChunkOverlap int
	QAChunkSize     int
	QAChunkOverlap  int
}

type GeneratorConfig struct {
	Model            string
	APIKey           string
	Temperature      float32
	MaxTokens        int
	TimeoutSec       int
	ForeignTolerance float64
}

type RedisConfig struct {
	Enabled    bool
	Host       string
	Port       int
	Password   string
	DB         int
	TTLMinutes int
}

type SQLiteConfig struct {
	Path string
}

type RateLimitConfig struct {
	RequestsPerMinute int
}

type LoggingConfig struct {
	Level      string
	Format     string
	OutputPath string
}

func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AddConfigPath("/etc/placement-bot")

	viper.SetEnvPrefix("PLACEMENT_BOT")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.readTimeout", 30)
	viper.SetDefault("server.writeTimeout", 30)
	viper.SetDefault("server.bodyLimit", 1048576)

	viper.SetDefault("knowledge.path", "./data/qa_data.json")
	viper.SetDefault("knowledge.watch", true)

	viper.SetDefault("similarity.highThreshold", 0.30)
	viper.SetDefault("similarity.mediumThreshold", 0.15)

	viper.SetDefault("documents.baseURL", "")
	viper.SetDefault("documents.names", []string{})
	viper.SetDefault("documents.timeoutSec", 12)

	viper.SetDefault("retrieval.topK", 6)
	viper.SetDefault("retrieval.embeddingModel", "text-embedding-3-small")
	viper.SetDefault("retrieval.batchSize", 100)
	viper.SetDefault("retrieval.docChunkSize", 1000)
	viper.SetDefault("retrieval.docChunkOverlap", 150)
	viper.SetDefault("retrieval.qaChunkSize", 400)
	viper.SetDefault("retrieval.qaChunkOverlap", 50)

	viper.SetDefault("generator.model", "gpt-4o-mini")
	viper.SetDefault("generator.temperature", 0.3)
	viper.SetDefault("generator.maxTokens", 1024)
	viper.SetDefault("generator.timeoutSec", 30)
	viper.SetDefault("generator.foreignTolerance", 0.15)

	viper.SetDefault("redis.enabled", false)
	viper.SetDefault("redis.host", "localhost")
	viper.SetDefault("redis.port", 6379)
	viper.SetDefault("redis.db", 0)
	viper.SetDefault("redis.ttlMinutes", 60)

	viper.SetDefault("sqlite.path", "./data/placement.db")

	viper.SetDefault("ratelimit.requestsPerMinute", 60)

	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "json")
	viper.SetDefault("logging.outputPath", "stdout")
}
