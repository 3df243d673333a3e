package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/bigodev/bigod/pkg/defaults"
	"github.com/bigodev/bigod/pkg/errors"
)

const (
	// DefaultBaseURL is the DeepSeek OpenAI-compatible API endpoint.
	DefaultBaseURL = "https://api.deepseek.com"

	// DefaultModel is the chat model used for analysis.
	DefaultModel = "deepseek-chat"

	// defaultMaxTokens bounds the completion size. The expected output is
	// a small JSON object, so this is generous.
	defaultMaxTokens = 1024
)

// Config holds the DeepSeek client configuration. All values are read once
// at startup and never mutated afterwards.
type Config struct {
	APIKey      string
	BaseURL     string
	Model       string
	Temperature float64
	MaxTokens   int
	Timeout     time.Duration
}

// ConfigFromEnv builds a Config from process environment variables:
//
//	DEEPSEEK_API_KEY - required credential
//	DEEPSEEK_API_URL - optional base URL override
//	BIGOD_MODEL      - optional model identifier override
func ConfigFromEnv() Config {
	cfg := Config{
		APIKey:      os.Getenv("DEEPSEEK_API_KEY"),
		BaseURL:     DefaultBaseURL,
		Model:       DefaultModel,
		Temperature: 0,
		MaxTokens:   defaultMaxTokens,
		Timeout:     defaults.ModelClientTimeout,
	}

	if url := os.Getenv("DEEPSEEK_API_URL"); url != "" {
		cfg.BaseURL = url
	}
	if model := os.Getenv("BIGOD_MODEL"); model != "" {
		cfg.Model = model
	}

	return cfg
}

// DeepSeek is a chat-completions client for the DeepSeek API. It holds no
// per-request state and is safe for concurrent use.
type DeepSeek struct {
	config Config
	client *http.Client
}

// NewDeepSeek creates a new DeepSeek client. It fails when the API key is
// missing so the caller can decide whether that is fatal.
func NewDeepSeek(cfg Config) (*DeepSeek, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, errors.New(errors.ErrCodeConfiguration, "DEEPSEEK_API_KEY is not set")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = defaultMaxTokens
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaults.ModelClientTimeout
	}

	return &DeepSeek{
		config: cfg,
		client: &http.Client{
			Timeout: cfg.Timeout,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout:   defaults.HTTPConnectTimeout,
					KeepAlive: defaults.HTTPKeepAlive,
				}).DialContext,
				TLSHandshakeTimeout: defaults.HTTPTLSHandshakeTimeout,
				IdleConnTimeout:     defaults.HTTPIdleConnTimeout,
			},
		},
	}, nil
}

// Model returns the configured model identifier.
func (d *DeepSeek) Model() string {
	return d.config.Model
}

// chatRequest is the OpenAI-compatible chat completion request body.
type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatResponse is the OpenAI-compatible chat completion response body.
type chatResponse struct {
	ID      string `json:"id"`
	Model   string `json:"model"`
	Choices []struct {
		Index   int `json:"index"`
		Message struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
		TotalTokens      int `json:"total_tokens"`
	} `json:"usage"`
}

// Complete implements Client. It performs a single request with no retries;
// any failure surfaces directly to the caller.
func (d *DeepSeek) Complete(ctx context.Context, system, user string) (string, error) {
	start := time.Now()

	reqBody := chatRequest{
		Model: d.config.Model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		Temperature: d.config.Temperature,
		MaxTokens:   d.config.MaxTokens,
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInternal, "failed to marshal model request", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		d.config.BaseURL+"/chat/completions",
		bytes.NewBuffer(jsonBody),
	)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInternal, "failed to create model request", err)
	}

	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", d.config.APIKey))
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		modelCallsTotal.WithLabelValues("error").Inc()
		return "", errors.Wrap(errors.ErrCodeUpstream, "failed to call model API", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		modelCallsTotal.WithLabelValues("error").Inc()
		body, _ := io.ReadAll(resp.Body)
		return "", errors.NewWithContext(errors.ErrCodeUpstream,
			fmt.Sprintf("model API error (status %d): %s", resp.StatusCode, string(body)),
			map[string]any{"status": resp.StatusCode})
	}

	var chatResp chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		modelCallsTotal.WithLabelValues("error").Inc()
		return "", errors.Wrap(errors.ErrCodeUpstream, "failed to decode model response", err)
	}

	if len(chatResp.Choices) == 0 {
		modelCallsTotal.WithLabelValues("error").Inc()
		return "", errors.New(errors.ErrCodeUpstream, "no response choices from model API")
	}

	modelCallsTotal.WithLabelValues("ok").Inc()
	modelCallDuration.Observe(time.Since(start).Seconds())

	return chatResp.Choices[0].Message.Content, nil
}
