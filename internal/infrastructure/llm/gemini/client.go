package gemini

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/mayankdk/portfolio-assistant/internal/core/domain"
	"github.com/mayankdk/portfolio-assistant/internal/infrastructure/resilience"
)

type Config struct {
	BaseURL     string
	APIKey      string
	Model       string
	MaxTokens   int
	Temperature float64
}

// Client calls the Gemini generateContent REST endpoint. It implements
// ports.AnswerGenerator; retry and breaker behavior comes from the
// shared executor.
type Client struct {
	cfg        Config
	httpClient *http.Client
	executor   *resilience.Executor
}

func New(cfg Config, executor *resilience.Executor) *Client {
	if cfg.Model == "" {
		cfg.Model = "gemini-2.0-flash"
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = 300
	}
	if cfg.Temperature <= 0 {
		cfg.Temperature = 0.2
	}
	if executor == nil {
		executor = resilience.NewExecutor(resilience.GenerationPolicy())
	}
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: 60 * time.Second},
		executor:   executor,
	}
}

type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
	SafetySettings   []safetySetting  `json:"safetySettings,omitempty"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	Temperature     float64 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type safetySetting struct {
	Category  string `json:"category"`
	Threshold string `json:"threshold"`
}

type generateResponse struct {
	Candidates []struct {
		Content      content `json:"content"`
		FinishReason string  `json:"finishReason"`
	} `json:"candidates"`
}

func (c *Client) GenerateGrounded(ctx context.Context, question string, contextChunks []string) (string, error) {
	request := generateRequest{
		Contents: []content{
			{Parts: []part{{Text: buildGroundedPrompt(question, contextChunks)}}},
		},
		GenerationConfig: generationConfig{
			Temperature:     c.cfg.Temperature,
			MaxOutputTokens: c.cfg.MaxTokens,
		},
	}

	var response generateResponse
	err := c.executor.Do(ctx, "gemini.generate", func(ctx context.Context) error {
		return c.postJSON(ctx, c.generatePath(), request, &response, "generate")
	}, classifyGeminiError)
	if err != nil {
		return "", domain.WrapError(domain.ErrGenerationFailed, "gemini generate", err)
	}

	text := candidateText(response)
	if text == "" {
		return "", domain.WrapError(domain.ErrGenerationFailed, "gemini generate", fmt.Errorf("empty candidate text"))
	}
	return text, nil
}

func (c *Client) generatePath() string {
	return fmt.Sprintf("/v1beta/models/%s:generateContent", c.cfg.Model)
}

func candidateText(response generateResponse) string {
	var b strings.Builder
	for _, candidate := range response.Candidates {
		for _, p := range candidate.Content.Parts {
			b.WriteString(p.Text)
		}
		break
	}
	return strings.TrimSpace(b.String())
}
