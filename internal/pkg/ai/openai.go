package ai

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/cmlabs-hris/hris-insights-go/internal/config"
	"github.com/cmlabs-hris/hris-insights-go/internal/metrics"
	"github.com/sashabaranov/go-openai"
	"golang.org/x/time/rate"
)

const (
	DefaultTimeout = 10 * time.Second
)

// OpenAICompleter calls an OpenAI-compatible /completions endpoint.
type OpenAICompleter struct {
	client  *openai.Client
	model   string
	timeout time.Duration
	limiter *rate.Limiter
}

// NewCompleter returns an OpenAICompleter when an API key is configured and a
// NullCompleter otherwise.
func NewCompleter(cfg config.AIConfig) Completer {
	if cfg.APIKey == "" {
		return NullCompleter{}
	}
	return NewOpenAICompleter(cfg)
}

func NewOpenAICompleter(cfg config.AIConfig) *OpenAICompleter {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	}
	clientCfg.HTTPClient = &http.Client{Timeout: timeout}

	limit := rate.Inf
	burst := 1
	if cfg.RateLimitPerMin > 0 {
		limit = rate.Limit(float64(cfg.RateLimitPerMin) / 60.0)
		burst = cfg.RateLimitPerMin
	}

	return &OpenAICompleter{
		client:  openai.NewClientWithConfig(clientCfg),
		model:   cfg.Model,
		timeout: timeout,
		limiter: rate.NewLimiter(limit, burst),
	}
}

// Complete sends a single completion request bounded by the configured timeout.
func (c *OpenAICompleter) Complete(ctx context.Context, prompt string, maxTokens int, temperature float32) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	if err := c.limiter.Wait(ctx); err != nil {
		c.record("throttled", 0)
		return "", fmt.Errorf("completion rate limit: %w", err)
	}

	start := time.Now()
	resp, err := c.client.CreateCompletion(ctx, openai.CompletionRequest{
		Model:       c.model,
		Prompt:      prompt,
		MaxTokens:   maxTokens,
		Temperature: temperature,
		N:           1,
	})
	if err != nil {
		c.record("error", time.Since(start))
		return "", fmt.Errorf("completion request failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		c.record("empty", time.Since(start))
		return "", ErrMalformedResponse
	}

	text := strings.TrimSpace(resp.Choices[0].Text)
	if text == "" {
		c.record("empty", time.Since(start))
		return "", ErrEmptyCompletion
	}

	// Some compatible providers omit usage
	tokens := 0
	if resp.Usage != nil {
		tokens = resp.Usage.TotalTokens
	}
	c.record("success", time.Since(start))
	slog.Debug("Completion received", "model", c.model, "tokens", tokens, "duration", time.Since(start))
	return text, nil
}

func (c *OpenAICompleter) record(status string, elapsed time.Duration) {
	metrics.AIRequestsTotal.WithLabelValues(c.model, status).Inc()
	if elapsed > 0 {
		metrics.AIRequestDuration.WithLabelValues(c.model).Observe(elapsed.Seconds())
	}
}
