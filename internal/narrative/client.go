// Package narrative turns an engine result into customer-facing text through
// an external text-generation service. The engine itself never calls it.
package narrative

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"time"

	"solar-sizer/internal/model"
	"solar-sizer/internal/optimizer"
)

const (
	DefaultBaseURL = "https://generativelanguage.googleapis.com"
	DefaultModel   = "gemini-2.5-flash"
)

// Generator produces a narrative for one ranked configuration.
type Generator interface {
	Generate(ctx context.Context, in model.ProjectInput, rc optimizer.RankedConfiguration) (string, error)
}

// Client calls a generateContent-style JSON endpoint.
type Client struct {
	APIKey      string
	BaseURL     string
	Model       string
	Temperature float64
	MaxTokens   int
	HTTP        *http.Client
}

// NewClient creates a client. An empty baseURL selects DefaultBaseURL.
func NewClient(apiKey, baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		APIKey:      apiKey,
		BaseURL:     baseURL,
		Model:       DefaultModel,
		Temperature: 0.7,
		MaxTokens:   2048,
		HTTP: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// APIError is a non-success reply from the service.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
	RetryAfter string // For rate limit errors
}

func (e *APIError) Error() string {
	return e.Message
}

type part struct {
	Text string `json:"text"`
}

type content struct {
	Parts []part `json:"parts"`
}

type generationConfig struct {
	Temperature     float64 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (c *Client) Generate(ctx context.Context, in model.ProjectInput, rc optimizer.RankedConfiguration) (string, error) {
	return c.Complete(ctx, BuildPrompt(in, rc))
}

// Complete sends prompt and returns the first candidate's text.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	if c.APIKey == "" {
		return "", &APIError{Code: "MISSING_API_KEY", Message: "API key is required"}
	}

	u, err := url.Parse(fmt.Sprintf("%s/v1/models/%s:generateContent", c.BaseURL, c.Model))
	if err != nil {
		return "", fmt.Errorf("invalid base URL: %w", err)
	}
	q := u.Query()
	q.Set("key", c.APIKey)
	u.RawQuery = q.Encode()

	body, err := json.Marshal(generateRequest{
		Contents:         []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: generationConfig{Temperature: c.Temperature, MaxOutputTokens: c.MaxTokens},
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.String(), bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.HTTP.Do(req)
	duration := time.Since(start)
	if err != nil {
		log.Printf("[Narrative] Request failed: %v (duration: %v)", err, duration)
		return "", fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	log.Printf("[Narrative] Response: %d (duration: %v, model=%s)", resp.StatusCode, duration, c.Model)

	var out generateResponse
	decodeErr := json.NewDecoder(resp.Body).Decode(&out)

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized:
		return "", &APIError{StatusCode: resp.StatusCode, Code: "UNAUTHORIZED", Message: "Unauthorized: invalid API key"}
	case http.StatusForbidden:
		return "", &APIError{StatusCode: resp.StatusCode, Code: "INVALID_API_KEY", Message: "Invalid API key or insufficient permissions"}
	case http.StatusTooManyRequests:
		retryAfter := resp.Header.Get("Retry-After")
		log.Printf("[Narrative] Rate limited, retry after: %s", retryAfter)
		return "", &APIError{
			StatusCode: resp.StatusCode,
			Code:       "RATE_LIMIT_EXCEEDED",
			Message:    fmt.Sprintf("Rate limit exceeded. Retry after: %s", retryAfter),
			RetryAfter: retryAfter,
		}
	default:
		msg := fmt.Sprintf("API returned status %d", resp.StatusCode)
		if decodeErr == nil && out.Error != nil && out.Error.Message != "" {
			msg = fmt.Sprintf("%s: %s", msg, out.Error.Message)
		}
		return "", &APIError{StatusCode: resp.StatusCode, Code: "API_ERROR", Message: msg}
	}

	if decodeErr != nil {
		log.Printf("[Narrative] Error decoding response: %v", decodeErr)
		return "", fmt.Errorf("failed to decode response: %w", decodeErr)
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 || out.Candidates[0].Content.Parts[0].Text == "" {
		return "", &APIError{StatusCode: resp.StatusCode, Code: "EMPTY_RESPONSE", Message: "no text in response"}
	}
	return out.Candidates[0].Content.Parts[0].Text, nil
}
