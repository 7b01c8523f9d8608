package bootstrap

import (
	"context"
	"fmt"

	"github.com/mayankdk/portfolio-assistant/internal/config"
	"github.com/mayankdk/portfolio-assistant/internal/core/domain"
	"github.com/mayankdk/portfolio-assistant/internal/core/ports"
	"github.com/mayankdk/portfolio-assistant/internal/core/usecase"
	ollamaembed "github.com/mayankdk/portfolio-assistant/internal/infrastructure/embed/ollama"
	"github.com/mayankdk/portfolio-assistant/internal/infrastructure/facts/jsonfile"
	"github.com/mayankdk/portfolio-assistant/internal/infrastructure/llm/gemini"
	"github.com/mayankdk/portfolio-assistant/internal/infrastructure/queue/nats"
	"github.com/mayankdk/portfolio-assistant/internal/infrastructure/repository/postgres"
	"github.com/mayankdk/portfolio-assistant/internal/infrastructure/resilience"
	"github.com/mayankdk/portfolio-assistant/internal/infrastructure/vector/memory"
	"github.com/mayankdk/portfolio-assistant/internal/infrastructure/vector/qdrant"
)

type App struct {
	Config config.Config
	Facts  *domain.Facts

	Queue     ports.ReindexQueue
	AnswerUC  ports.QuestionAnswerer
	RebuildUC ports.IndexRebuilder

	// MemoryBackend reports that the vector index lives in-process and
	// must be rebuilt on every boot.
	MemoryBackend bool

	closeFn func()
}

func New(ctx context.Context, cfg config.Config) (*App, error) {
	factSource := jsonfile.New(cfg.FactsPath)
	facts, err := factSource.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load facts: %w", err)
	}

	embedder := ollamaembed.New(cfg.OllamaURL, cfg.OllamaEmbedModel)

	var store ports.VectorStore
	memoryBackend := cfg.VectorBackend != "qdrant"
	if memoryBackend {
		store = memory.New()
	} else {
		store = qdrant.New(cfg.QdrantURL, cfg.QdrantCollection)
	}

	queue, err := nats.NewWithOptions(cfg.NATSURL, cfg.NATSSubject, nats.Options{
		ResilienceExecutor: resilience.NewExecutor(resilience.DefaultPolicy()),
	})
	if err != nil {
		return nil, fmt.Errorf("init reindex queue: %w", err)
	}

	closeFn := func() {
		queue.Close()
	}

	var auditLog ports.AnswerLog
	if cfg.AnswerLogDSN != "" {
		db, err := postgres.OpenDB(cfg.AnswerLogDSN)
		if err != nil {
			queue.Close()
			return nil, fmt.Errorf("open answer log db: %w", err)
		}
		repo := postgres.NewAnswerLogRepository(db)
		if err := repo.EnsureSchema(ctx); err != nil {
			queue.Close()
			_ = db.Close()
			return nil, fmt.Errorf("ensure answer log schema: %w", err)
		}
		auditLog = repo
		closeFn = func() {
			queue.Close()
			_ = db.Close()
		}
	}

	generator := gemini.New(gemini.Config{
		BaseURL:     cfg.GeminiBaseURL,
		APIKey:      cfg.GeminiAPIKey,
		Model:       cfg.GeminiModel,
		MaxTokens:   cfg.GenMaxTokens,
		Temperature: cfg.GenTemperature,
	}, resilience.NewExecutor(resilience.GenerationPolicy()))

	retriever := usecase.NewRetriever(embedder, store)
	answerUC := usecase.NewAnswerUseCase(facts, retriever, generator, auditLog, usecase.AnswerConfig{
		TopK:                  cfg.RetrievalTopK,
		FallbackComprehensive: cfg.FallbackComprehensive,
	})
	rebuildUC := usecase.NewRebuildIndexUseCase(facts, embedder, store)

	return &App{
		Config: cfg,
		Facts:  facts,

		Queue:     queue,
		AnswerUC:  answerUC,
		RebuildUC: rebuildUC,

		MemoryBackend: memoryBackend,

		closeFn: closeFn,
	}, nil
}

func (a *App) Close() {
	if a.closeFn != nil {
		a.closeFn()
	}
}
