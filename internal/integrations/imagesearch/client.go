package imagesearch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"monastery-guide/internal/domain"
)

const (
	defaultEndpoint = "https://www.googleapis.com/customsearch/v1"
	defaultNum      = 6
	maxNum          = 10
)

// ErrNotInitialized is returned when no API key or engine id is configured.
var ErrNotInitialized = errors.New("imagesearch: client not initialized")

// HTTPStatusError captures non-2xx responses from the search endpoint.
type HTTPStatusError struct {
	StatusCode int
	Body       string
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("imagesearch: unexpected status %d: %s", e.StatusCode, e.Body)
}

func (e *HTTPStatusError) HTTPStatusCode() int {
	return e.StatusCode
}

type searchResponse struct {
	Items []struct {
		Link  string `json:"link"`
		Title string `json:"title"`
	} `json:"items"`
}

// Client queries a custom search engine for images.
type Client struct {
	endpoint   string
	apiKey     string
	engineID   string
	httpClient *http.Client
}

type Option func(*Client)

func WithEndpoint(endpoint string) Option {
	return func(c *Client) {
		c.endpoint = strings.TrimSpace(endpoint)
	}
}

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// NewClient creates a Client for the given credential and search engine id.
// Either may be empty; Search then fails with ErrNotInitialized.
func NewClient(apiKey, engineID string, opts ...Option) *Client {
	c := &Client{
		endpoint:   defaultEndpoint,
		apiKey:     strings.TrimSpace(apiKey),
		engineID:   strings.TrimSpace(engineID),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) Initialized() bool {
	return c.apiKey != "" && c.engineID != ""
}

// Search returns up to num images for query. num outside 1..10 falls back to
// the default of 6. A response without items yields an empty slice.
func (c *Client) Search(ctx context.Context, query string, num int) ([]domain.Image, error) {
	if !c.Initialized() {
		return nil, ErrNotInitialized
	}
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, errors.New("imagesearch: query is required")
	}
	if num <= 0 || num > maxNum {
		num = defaultNum
	}

	params := url.Values{
		"key":        {c.apiKey},
		"cx":         {c.engineID},
		"searchType": {"image"},
		"q":          {query},
		"num":        {strconv.Itoa(num)},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("imagesearch: create request: %w", err)
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			err = urlErr.Err
		}
		return nil, fmt.Errorf("imagesearch: request failed: %w", err)
	}
	defer func() { _ = res.Body.Close() }()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		buf, _ := io.ReadAll(io.LimitReader(res.Body, 4096))
		return nil, &HTTPStatusError{StatusCode: res.StatusCode, Body: string(buf)}
	}

	var payload searchResponse
	if err := json.NewDecoder(io.LimitReader(res.Body, 1<<20)).Decode(&payload); err != nil {
		return nil, fmt.Errorf("imagesearch: decode response: %w", err)
	}

	images := make([]domain.Image, 0, len(payload.Items))
	for _, item := range payload.Items {
		caption := item.Title
		if caption == "" {
			caption = query
		}
		images = append(images, domain.Image{Src: item.Link, Caption: caption})
	}
	return images, nil
}
