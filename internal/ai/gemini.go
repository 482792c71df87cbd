package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

var ErrNoSuggestion = errors.New("no suggestion available")

// Suggestion is the parsed answer from the language model
type Suggestion struct {
	SuggestedCategory string `json:"suggestedCategory"`
	ShortDescription  string `json:"shortDescription"`
}

// Client calls the Gemini generateContent API. The model is treated as an
// opaque function from (product name, category names) to a Suggestion.
type Client struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

func NewClient() *Client {
	model := os.Getenv("GEMINI_MODEL")
	if model == "" {
		model = "gemini-2.0-flash"
	}
	return &Client{
		apiKey:     os.Getenv("GEMINI_API_KEY"),
		model:      model,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// NewClientWithBaseURL is used by tests to point at a stub server
func NewClientWithBaseURL(apiKey, model, baseURL string) *Client {
	return &Client{
		apiKey:     apiKey,
		model:      model,
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	ResponseMimeType string `json:"responseMimeType"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// Suggest asks the model for a category and short description for a new
// product. Every failure collapses to ErrNoSuggestion; callers treat the
// result as optional prefill, never as a hard dependency.
func (c *Client) Suggest(ctx context.Context, productName string, categoryNames []string) (*Suggestion, error) {
	if c.apiKey == "" {
		return nil, ErrNoSuggestion
	}

	prompt := fmt.Sprintf(
		"A shopkeeper is adding a product named %q to their inventory. "+
			"Existing categories: [%s]. "+
			"Reply with JSON only, shaped as {\"suggestedCategory\": string, \"shortDescription\": string}. "+
			"suggestedCategory must be one of the existing category names if any fits, otherwise a sensible new name. "+
			"shortDescription is one short sentence in the same language as the product name.",
		productName, strings.Join(categoryNames, ", "),
	)

	body, err := json.Marshal(generateRequest{
		Contents:         []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: generationConfig{ResponseMimeType: "application/json"},
	})
	if err != nil {
		return nil, ErrNoSuggestion
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, ErrNoSuggestion
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, ErrNoSuggestion
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, ErrNoSuggestion
	}

	var parsed generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, ErrNoSuggestion
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return nil, ErrNoSuggestion
	}

	var suggestion Suggestion
	text := parsed.Candidates[0].Content.Parts[0].Text
	if err := json.Unmarshal([]byte(text), &suggestion); err != nil {
		return nil, ErrNoSuggestion
	}
	if suggestion.ShortDescription == "" && suggestion.SuggestedCategory == "" {
		return nil, ErrNoSuggestion
	}

	return &suggestion, nil
}
