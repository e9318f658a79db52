package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
)

type part struct {
	Text *string `json:"text,omitempty"`
}

type content struct {
	Parts []part `json:"parts"`
}

// generateRequest is the minimal request shape for generateContent.
type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig GenerationConfig `json:"generationConfig"`
}

// generateResponse is the minimal response shape returned by generateContent.
type generateResponse struct {
	Candidates []struct {
		Content *content `json:"content"`
	} `json:"candidates"`
}

type errorResponse struct {
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

// Client calls the Gemini generateContent REST endpoint directly. It sends
// exactly one request per call: no retries and no rate limiting.
type Client struct {
	settings

	mu  sync.RWMutex
	key string
}

// NewClient creates a Client. It is unusable until Initialize is called or
// WithAPIKey is supplied.
func NewClient(opts ...Option) *Client {
	s := newSettings(opts)
	return &Client{settings: s, key: s.apiKey}
}

// Initialize sets the credential used for every subsequent call.
func (c *Client) Initialize(apiKey string) error {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return errors.New("gemini: API key is required")
	}
	c.mu.Lock()
	c.key = apiKey
	c.mu.Unlock()
	return nil
}

func (c *Client) Initialized() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.key != ""
}

func (c *Client) Model() string {
	return c.model
}

func generateURL(baseURL, model string) string {
	base := strings.TrimRight(baseURL, "/")
	if base == "" {
		base = defaultBaseURL
	}
	if !strings.HasSuffix(base, "/v1beta") {
		base += "/v1beta"
	}
	return base + "/models/" + normalizeModel(model) + ":generateContent"
}

// Generate sends prompt with the default sampling parameters, overridden by
// opts, and returns the text of the first candidate.
func (c *Client) Generate(ctx context.Context, prompt string, opts ...GenerateOption) (string, error) {
	c.mu.RLock()
	apiKey := c.key
	c.mu.RUnlock()
	if apiKey == "" {
		return "", ErrNotInitialized
	}
	if strings.TrimSpace(prompt) == "" {
		return "", errors.New("gemini: prompt must not be empty")
	}

	body, err := json.Marshal(generateRequest{
		Contents:         []content{{Parts: []part{{Text: &prompt}}}},
		GenerationConfig: resolveGenerationConfig(opts),
	})
	if err != nil {
		return "", fmt.Errorf("gemini: marshal request: %w", err)
	}

	endpoint := generateURL(c.baseURL, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint+"?"+url.Values{"key": {apiKey}}.Encode(), bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("gemini: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	raw, err := c.doJSONRequest(req, endpoint)
	if err != nil {
		return "", err
	}

	var payload generateResponse
	if err := json.Unmarshal(raw, &payload); err != nil {
		return "", &MalformedResponseError{Reason: "decode response", Err: err}
	}
	return firstCandidateText(payload)
}

func firstCandidateText(payload generateResponse) (string, error) {
	if len(payload.Candidates) == 0 {
		return "", &MalformedResponseError{Reason: "no candidates in response"}
	}
	first := payload.Candidates[0].Content
	if first == nil || len(first.Parts) == 0 {
		return "", &MalformedResponseError{Reason: "first candidate has no content parts"}
	}
	if first.Parts[0].Text == nil {
		return "", &MalformedResponseError{Reason: "first candidate part has no text"}
	}
	return *first.Parts[0].Text, nil
}

func (c *Client) resolvedHTTPClient() *http.Client {
	if c.httpClient != nil {
		return c.httpClient
	}
	return http.DefaultClient
}

// doJSONRequest executes req. endpoint is the URL without the credential and
// is the only form that appears in errors.
func (c *Client) doJSONRequest(req *http.Request, endpoint string) ([]byte, error) {
	res, err := c.resolvedHTTPClient().Do(req)
	if err != nil {
		// url.Error embeds the full URL, credential included.
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			err = urlErr.Err
		}
		return nil, fmt.Errorf("gemini: request to %s failed: %w", endpoint, err)
	}
	defer func() { _ = res.Body.Close() }()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		buf, _ := io.ReadAll(io.LimitReader(res.Body, 4096))
		return nil, &UpstreamError{
			StatusCode: res.StatusCode,
			URL:        endpoint,
			Message:    providerMessage(buf),
		}
	}

	buf, err := io.ReadAll(io.LimitReader(res.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("gemini: read response body: %w", err)
	}
	return buf, nil
}

func providerMessage(body []byte) string {
	var payload errorResponse
	if err := json.Unmarshal(body, &payload); err != nil || payload.Error == nil {
		return unknownErrorMessage
	}
	if msg := strings.TrimSpace(payload.Error.Message); msg != "" {
		return msg
	}
	return unknownErrorMessage
}
