package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"career-guide/internal/config"
	"career-guide/internal/pkg/logger"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

var (
	ErrNotConfigured = errors.New("generative model is not configured")
	ErrEmptyResponse = errors.New("generative model returned no content")
)

// Gemini sends single-prompt requests to the Gemini API.
type Gemini struct {
	client  *genai.Client
	model   string
	timeout time.Duration
	logger  *zap.Logger
}

func NewGemini(ctx context.Context, cfg config.GeminiConfig, log *zap.Logger) (*Gemini, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, ErrNotConfigured
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &Gemini{client: client, model: cfg.Model, timeout: cfg.Timeout, logger: logger.OrNop(log)}, nil
}

func (g *Gemini) Generate(ctx context.Context, prompt string) (string, error) {
	if g == nil || g.client == nil {
		return "", ErrNotConfigured
	}
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	start := time.Now()
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		g.logger.Warn("gemini request failed", zap.String("model", g.model), zap.Duration("latency", time.Since(start)), zap.Error(err))
		return "", fmt.Errorf("gemini generate: %w", err)
	}
	if resp == nil || len(resp.Candidates) == 0 {
		return "", ErrEmptyResponse
	}
	text := resp.Text()
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyResponse
	}
	g.logger.Debug("gemini request done", zap.String("model", g.model), zap.Duration("latency", time.Since(start)), zap.Int("chars", len(text)))
	return text, nil
}
