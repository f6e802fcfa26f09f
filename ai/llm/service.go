package llm

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
)

// ErrEmptyResponse is returned when the provider answers 2xx with no choices.
var ErrEmptyResponse = errors.New("empty response from LLM")

// Generator turns a pair of prompts into a single completion string.
// Handlers depend on this interface so tests can substitute a fake.
type Generator interface {
	// Generate sends a two-message (system + user) chat-completion request and
	// returns the first choice's content with surrounding whitespace trimmed.
	// Exactly one outbound call is made per invocation; failures are returned
	// as-is so their message reaches the caller unchanged.
	Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// Config represents LLM service configuration.
type Config struct {
	Provider string // openai, deepseek, ollama
	Model    string // gpt-4, deepseek-chat, etc.
	APIKey   string
	BaseURL  string
	Timeout  int // Request timeout in seconds (default: 120)
}

type service struct {
	client  *openai.Client
	model   string
	timeout int
}

// NewService creates a new Generator backed by an OpenAI-compatible provider.
func NewService(cfg *Config) (Generator, error) {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}
	clientConfig.HTTPClient = newHTTPClient(cfg.Timeout)

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 120
	}

	slog.Info("LLM service initialized",
		"provider", cfg.Provider,
		"model", cfg.Model,
		"base_url", clientConfig.BaseURL,
	)

	return &service{
		client:  openai.NewClientWithConfig(clientConfig),
		model:   cfg.Model,
		timeout: timeout,
	}, nil
}

func (s *service) Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, time.Duration(s.timeout)*time.Second)
	defer cancel()

	slog.Debug("LLM: generate request",
		"model", s.model,
		"prompt_length", len(userPrompt),
	)

	startTime := time.Now()

	req := openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
	}

	resp, err := s.client.CreateChatCompletion(ctx, req)
	if err != nil {
		slog.Error("LLM: generate request failed", "error", err)
		// Returned unwrapped: the caller surfaces the message verbatim.
		return "", err
	}

	if len(resp.Choices) == 0 {
		slog.Warn("LLM: empty response")
		return "", ErrEmptyResponse
	}

	slog.Debug("LLM: generate response received",
		"content_length", len(resp.Choices[0].Message.Content),
		"total_tokens", resp.Usage.TotalTokens,
		"duration_ms", time.Since(startTime).Milliseconds(),
	)

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

func newHTTPClient(timeoutSeconds int) *http.Client {
	if timeoutSeconds <= 0 {
		timeoutSeconds = 120
	}
	return &http.Client{
		Timeout: time.Duration(timeoutSeconds) * time.Second,
		Transport: &http.Transport{
			DialContext: (&net.Dialer{
				Timeout:   30 * time.Second,
				KeepAlive: 30 * time.Second,
			}).DialContext,
			MaxIdleConns:          100,
			IdleConnTimeout:       90 * time.Second,
			TLSHandshakeTimeout:   10 * time.Second,
			ExpectContinueTimeout: 1 * time.Second,
		},
	}
}
