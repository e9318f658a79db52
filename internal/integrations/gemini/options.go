package gemini

import (
	"net/http"
	"strings"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com"
	defaultModel   = "gemini-1.5-pro-latest"
)

// GenerationConfig holds the sampling parameters sent with every request.
type GenerationConfig struct {
	Temperature     float64 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
	TopK            int     `json:"topK"`
	TopP            float64 `json:"topP"`
}

// DefaultGenerationConfig returns the fixed sampling defaults.
func DefaultGenerationConfig() GenerationConfig {
	return GenerationConfig{
		Temperature:     0.7,
		MaxOutputTokens: 800,
		TopK:            40,
		TopP:            0.95,
	}
}

// GenerateOption overrides one sampling parameter for a single call.
type GenerateOption func(*GenerationConfig)

func WithTemperature(v float64) GenerateOption {
	return func(g *GenerationConfig) { g.Temperature = v }
}

func WithMaxOutputTokens(n int) GenerateOption {
	return func(g *GenerationConfig) { g.MaxOutputTokens = n }
}

func WithTopK(k int) GenerateOption {
	return func(g *GenerationConfig) { g.TopK = k }
}

func WithTopP(p float64) GenerateOption {
	return func(g *GenerationConfig) { g.TopP = p }
}

func resolveGenerationConfig(opts []GenerateOption) GenerationConfig {
	cfg := DefaultGenerationConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// settings is shared by the REST and SDK clients.
type settings struct {
	baseURL    string
	model      string
	httpClient *http.Client
	apiKey     string
}

// Option configures a client at construction time.
type Option func(*settings)

func WithBaseURL(baseURL string) Option {
	return func(s *settings) {
		s.baseURL = strings.TrimSpace(baseURL)
	}
}

func WithModel(model string) Option {
	return func(s *settings) {
		s.model = normalizeModel(model)
	}
}

func WithHTTPClient(httpClient *http.Client) Option {
	return func(s *settings) {
		s.httpClient = httpClient
	}
}

// WithAPIKey initializes the client at construction. An empty key leaves the
// client uninitialized.
func WithAPIKey(apiKey string) Option {
	return func(s *settings) {
		s.apiKey = strings.TrimSpace(apiKey)
	}
}

func newSettings(opts []Option) settings {
	s := settings{
		baseURL: defaultBaseURL,
		model:   defaultModel,
		// No timeout: callers bound the call through its context.
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(&s)
	}
	if s.model == "" {
		s.model = defaultModel
	}
	return s
}

func normalizeModel(model string) string {
	return strings.TrimPrefix(strings.TrimSpace(model), "models/")
}
