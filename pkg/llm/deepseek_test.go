package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bigodev/bigod/pkg/errors"
)

func newTestClient(t *testing.T, url string) *DeepSeek {
	t.Helper()
	c, err := NewDeepSeek(Config{
		APIKey:  "test-key",
		BaseURL: url,
	})
	require.NoError(t, err)
	return c
}

func TestNewDeepSeek_MissingKey(t *testing.T) {
	_, err := NewDeepSeek(Config{})
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeConfiguration, errors.CodeOf(err))
}

func TestNewDeepSeek_Defaults(t *testing.T) {
	c, err := NewDeepSeek(Config{APIKey: "k"})
	require.NoError(t, err)
	assert.Equal(t, DefaultModel, c.Model())
	assert.Equal(t, DefaultBaseURL, c.config.BaseURL)
	assert.Equal(t, defaultMaxTokens, c.config.MaxTokens)
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("DEEPSEEK_API_KEY", "secret")
	t.Setenv("DEEPSEEK_API_URL", "http://localhost:9999")
	t.Setenv("BIGOD_MODEL", "deepseek-reasoner")

	cfg := ConfigFromEnv()

	assert.Equal(t, "secret", cfg.APIKey)
	assert.Equal(t, "http://localhost:9999", cfg.BaseURL)
	assert.Equal(t, "deepseek-reasoner", cfg.Model)
	assert.Zero(t, cfg.Temperature)
}

func TestComplete_Success(t *testing.T) {
	var gotAuth string
	var gotBody chatRequest

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		resp := map[string]any{
			"id":    "cmpl-1",
			"model": DefaultModel,
			"choices": []map[string]any{
				{
					"index": 0,
					"message": map[string]any{
						"role":    "assistant",
						"content": `{"time":"O(n)"}`,
					},
					"finish_reason": "stop",
				},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}))
	defer ts.Close()

	c := newTestClient(t, ts.URL)

	out, err := c.Complete(context.Background(), "you are an analyst", "analyze this")
	require.NoError(t, err)

	assert.Equal(t, `{"time":"O(n)"}`, out)
	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, DefaultModel, gotBody.Model)
	assert.Zero(t, gotBody.Temperature)
	require.Len(t, gotBody.Messages, 2)
	assert.Equal(t, "system", gotBody.Messages[0].Role)
	assert.Equal(t, "you are an analyst", gotBody.Messages[0].Content)
	assert.Equal(t, "user", gotBody.Messages[1].Role)
}

func TestComplete_ProviderError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"error":"insufficient quota"}`, http.StatusPaymentRequired)
	}))
	defer ts.Close()

	c := newTestClient(t, ts.URL)

	_, err := c.Complete(context.Background(), "sys", "user")
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeUpstream, errors.CodeOf(err))
	assert.Contains(t, err.Error(), "status 402")
}

func TestComplete_EmptyChoices(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"cmpl-2","choices":[]}`))
	}))
	defer ts.Close()

	c := newTestClient(t, ts.URL)

	_, err := c.Complete(context.Background(), "sys", "user")
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeUpstream, errors.CodeOf(err))
	assert.True(t, strings.Contains(err.Error(), "no response choices"))
}

func TestComplete_UnreachableHost(t *testing.T) {
	// Closed server: connection refused, no retry.
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {}))
	ts.Close()

	c := newTestClient(t, ts.URL)

	_, err := c.Complete(context.Background(), "sys", "user")
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeUpstream, errors.CodeOf(err))
}
