package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"google.golang.org/genai"
)

// SDKClient serves the same contract as Client through the Google Gen AI
// SDK. Provider failures surface as *UpstreamError and unexpected payloads
// as *MalformedResponseError.
type SDKClient struct {
	settings

	mu     sync.RWMutex
	client *genai.Client
}

// NewSDKClient creates an SDKClient. When WithAPIKey is given the SDK client
// is built immediately.
func NewSDKClient(opts ...Option) (*SDKClient, error) {
	s := &SDKClient{settings: newSettings(opts)}
	if s.apiKey != "" {
		if err := s.Initialize(s.apiKey); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (s *SDKClient) Initialize(apiKey string) error {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return errors.New("gemini: API key is required")
	}
	cfg := &genai.ClientConfig{
		APIKey:     apiKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: s.httpClient,
	}
	if s.baseURL != "" && s.baseURL != defaultBaseURL {
		cfg.HTTPOptions = genai.HTTPOptions{BaseURL: strings.TrimRight(s.baseURL, "/") + "/"}
	}
	client, err := genai.NewClient(context.Background(), cfg)
	if err != nil {
		return fmt.Errorf("gemini: create sdk client: %w", err)
	}
	s.mu.Lock()
	s.client = client
	s.mu.Unlock()
	return nil
}

func (s *SDKClient) Initialized() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.client != nil
}

func (s *SDKClient) Model() string {
	return s.model
}

func (s *SDKClient) Generate(ctx context.Context, prompt string, opts ...GenerateOption) (string, error) {
	s.mu.RLock()
	client := s.client
	s.mu.RUnlock()
	if client == nil {
		return "", ErrNotInitialized
	}
	if strings.TrimSpace(prompt) == "" {
		return "", errors.New("gemini: prompt must not be empty")
	}

	g := resolveGenerationConfig(opts)
	resp, err := client.Models.GenerateContent(ctx, s.model, genai.Text(prompt), &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(float32(g.Temperature)),
		MaxOutputTokens: int32(g.MaxOutputTokens),
		TopK:            genai.Ptr(float32(g.TopK)),
		TopP:            genai.Ptr(float32(g.TopP)),
	})
	if err != nil {
		if ctx.Err() != nil {
			return "", fmt.Errorf("gemini: sdk request: %w", ctx.Err())
		}
		return "", &UpstreamError{URL: "sdk:" + s.model, Message: err.Error()}
	}
	if resp == nil || len(resp.Candidates) == 0 {
		return "", &MalformedResponseError{Reason: "no candidates in response"}
	}
	first := resp.Candidates[0].Content
	if first == nil || len(first.Parts) == 0 || first.Parts[0] == nil {
		return "", &MalformedResponseError{Reason: "first candidate has no content parts"}
	}
	return first.Parts[0].Text, nil
}
