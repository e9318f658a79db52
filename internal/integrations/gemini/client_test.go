package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// generateURL helper
// ---------------------------------------------------------------------------

func TestGenerateURL(t *testing.T) {
	cases := []struct {
		base  string
		model string
		want  string
	}{
		{"https://generativelanguage.googleapis.com", "gemini-1.5-pro-latest", "https://generativelanguage.googleapis.com/v1beta/models/gemini-1.5-pro-latest:generateContent"},
		{"https://generativelanguage.googleapis.com/v1beta/", "models/gemini-1.5-pro-latest", "https://generativelanguage.googleapis.com/v1beta/models/gemini-1.5-pro-latest:generateContent"},
		{"http://localhost:8080", "m", "http://localhost:8080/v1beta/models/m:generateContent"},
		{"", "m", "https://generativelanguage.googleapis.com/v1beta/models/m:generateContent"},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, generateURL(tc.base, tc.model), "base=%q", tc.base)
	}
}

// ---------------------------------------------------------------------------
// Initialization
// ---------------------------------------------------------------------------

func TestNewClient_Defaults(t *testing.T) {
	c := NewClient()
	require.False(t, c.Initialized())
	require.Equal(t, defaultBaseURL, c.baseURL)
	require.Equal(t, "gemini-1.5-pro-latest", c.Model())
}

func TestInitialize_RejectsEmptyKey(t *testing.T) {
	c := NewClient()
	require.Error(t, c.Initialize("  "))
	require.False(t, c.Initialized())

	require.NoError(t, c.Initialize("k"))
	require.True(t, c.Initialized())
}

func TestGenerate_NotInitialized(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer srv.Close()

	c := NewClient(WithBaseURL(srv.URL))
	_, err := c.Generate(context.Background(), "hello")
	require.ErrorIs(t, err, ErrNotInitialized)
	require.Zero(t, calls)
}

func TestGenerate_EmptyPrompt(t *testing.T) {
	c := NewClient(WithAPIKey("k"))
	_, err := c.Generate(context.Background(), "   ")
	require.Error(t, err)
	require.Contains(t, err.Error(), "prompt")
}

// ---------------------------------------------------------------------------
// Client.Generate
// ---------------------------------------------------------------------------

func newTestClient(t *testing.T, srv *httptest.Server) *Client {
	t.Helper()
	return NewClient(
		WithBaseURL(srv.URL),
		WithAPIKey("test-key"),
		WithHTTPClient(&http.Client{Timeout: 2 * time.Second}),
	)
}

func TestGenerate_HappyPath(t *testing.T) {
	var got generateRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/v1beta/models/gemini-1.5-pro-latest:generateContent", r.URL.Path)
		require.Equal(t, "test-key", r.URL.Query().Get("key"))
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"candidates": [
				{"content": {"parts": [{"text": "Losoong is celebrated in December."}], "role": "model"}},
				{"content": {"parts": [{"text": "second candidate"}]}}
			]
		}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv)
	out, err := c.Generate(context.Background(), "When is Losoong festival?")
	require.NoError(t, err)
	require.Equal(t, "Losoong is celebrated in December.", out)

	require.Len(t, got.Contents, 1)
	require.Equal(t, "When is Losoong festival?", *got.Contents[0].Parts[0].Text)
	require.Equal(t, DefaultGenerationConfig(), got.GenerationConfig)
}

func TestGenerate_WireBody(t *testing.T) {
	var raw map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&raw))
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"ok"}]}}]}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv)
	_, err := c.Generate(context.Background(), "hi")
	require.NoError(t, err)

	cfg := raw["generationConfig"].(map[string]any)
	require.Equal(t, 0.7, cfg["temperature"])
	require.Equal(t, float64(800), cfg["maxOutputTokens"])
	require.Equal(t, float64(40), cfg["topK"])
	require.Equal(t, 0.95, cfg["topP"])
}

func TestGenerate_OverridesMergeOverDefaults(t *testing.T) {
	var got generateRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"ok"}]}}]}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv)
	_, err := c.Generate(context.Background(), "hi", WithTemperature(0.2), WithMaxOutputTokens(128))
	require.NoError(t, err)
	require.Equal(t, GenerationConfig{Temperature: 0.2, MaxOutputTokens: 128, TopK: 40, TopP: 0.95}, got.GenerationConfig)
}

func TestGenerate_UpstreamErrorCarriesProviderMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"code":400,"message":"API key not valid.","status":"INVALID_ARGUMENT"}}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv)
	_, err := c.Generate(context.Background(), "hi")
	var upstream *UpstreamError
	require.ErrorAs(t, err, &upstream)
	require.Equal(t, http.StatusBadRequest, upstream.HTTPStatusCode())
	require.Equal(t, "API key not valid.", upstream.Message)
	require.NotContains(t, err.Error(), "test-key")
}

func TestGenerate_UpstreamErrorUnknownMessage(t *testing.T) {
	cases := []string{``, `not-json`, `{"error":{}}`, `{"other":true}`}
	for _, body := range cases {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(body))
		}))

		c := newTestClient(t, srv)
		_, err := c.Generate(context.Background(), "hi")
		var upstream *UpstreamError
		require.ErrorAs(t, err, &upstream, "body=%q", body)
		require.Equal(t, http.StatusInternalServerError, upstream.StatusCode)
		require.Equal(t, "Unknown error", upstream.Message)
		srv.Close()
	}
}

func TestGenerate_MalformedResponses(t *testing.T) {
	cases := map[string]string{
		"not json":           `not-a-json`,
		"missing candidates": `{}`,
		"empty candidates":   `{"candidates":[]}`,
		"missing content":    `{"candidates":[{}]}`,
		"empty parts":        `{"candidates":[{"content":{"parts":[]}}]}`,
		"missing text":       `{"candidates":[{"content":{"parts":[{}]}}]}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(body))
			}))
			defer srv.Close()

			c := newTestClient(t, srv)
			_, err := c.Generate(context.Background(), "hi")
			var malformed *MalformedResponseError
			require.ErrorAs(t, err, &malformed)
		})
	}
}

func TestGenerate_EmptyTextIsValid(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":""}]}}]}`))
	}))
	defer srv.Close()

	out, err := newTestClient(t, srv).Generate(context.Background(), "hi")
	require.NoError(t, err)
	require.Empty(t, out)
}

func TestGenerate_ContextCancelled(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := newTestClient(t, srv).Generate(ctx, "hi")
	require.Error(t, err)
	require.True(t, errors.Is(err, context.DeadlineExceeded))
	require.NotContains(t, err.Error(), "test-key")
}

func TestGenerate_NetworkError(t *testing.T) {
	c := NewClient(WithBaseURL("http://127.0.0.1:1"), WithAPIKey("secret"), WithHTTPClient(&http.Client{Timeout: 100 * time.Millisecond}))
	_, err := c.Generate(context.Background(), "hi")
	require.Error(t, err)
	require.Contains(t, err.Error(), "request to")
	require.NotContains(t, err.Error(), "secret")
}
