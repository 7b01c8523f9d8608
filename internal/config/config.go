package config

import (
	"os"
	"strconv"
)

type Config struct {
	APIPort  string
	LogLevel string

	FactsPath string

	// VectorBackend selects "memory" (in-process cosine index, rebuilt
	// on boot) or "qdrant".
	VectorBackend    string
	QdrantURL        string
	QdrantCollection string

	OllamaURL        string
	OllamaEmbedModel string

	GeminiBaseURL string
	GeminiAPIKey  string
	GeminiModel   string

	GenMaxTokens   int
	GenTemperature float64

	RetrievalTopK         int
	FallbackComprehensive bool

	NATSURL     string
	NATSSubject string

	// AnswerLogDSN empty disables the Postgres audit log.
	AnswerLogDSN string

	IndexerMetricsPort string
}

func Load() Config {
	return Config{
		APIPort:  mustEnv("API_PORT", "8080"),
		LogLevel: mustEnv("LOG_LEVEL", "info"),

		FactsPath: mustEnv("FACTS_PATH", "./data/portfolio.json"),

		VectorBackend:    mustEnv("VECTOR_BACKEND", "memory"),
		QdrantURL:        mustEnv("QDRANT_URL", "http://localhost:6333"),
		QdrantCollection: mustEnv("QDRANT_COLLECTION", "portfolio_chunks"),

		OllamaURL:        mustEnv("OLLAMA_URL", "http://localhost:11434"),
		OllamaEmbedModel: mustEnv("OLLAMA_EMBED_MODEL", "nomic-embed-text"),

		GeminiBaseURL: mustEnv("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com"),
		GeminiAPIKey:  mustEnv("GEMINI_API_KEY", ""),
		GeminiModel:   mustEnv("GEMINI_MODEL", "gemini-2.0-flash"),

		GenMaxTokens:   mustEnvInt("GEN_MAX_TOKENS", 300),
		GenTemperature: mustEnvFloat("GEN_TEMPERATURE", 0.2),

		RetrievalTopK:         mustEnvInt("RETRIEVAL_TOP_K", 3),
		FallbackComprehensive: mustEnvBool("FALLBACK_COMPREHENSIVE", true),

		NATSURL:     mustEnv("NATS_URL", "nats://localhost:4222"),
		NATSSubject: mustEnv("NATS_SUBJECT", "portfolio.reindex"),

		AnswerLogDSN: mustEnv("ANSWER_LOG_DSN", ""),

		IndexerMetricsPort: mustEnv("INDEXER_METRICS_PORT", "9090"),
	}
}

func mustEnv(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v
}

func mustEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func mustEnvFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}

func mustEnvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
