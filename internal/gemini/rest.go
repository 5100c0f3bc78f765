package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"google.golang.org/genai"
)

const DefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

type generateRequest struct {
	Contents         []*genai.Content `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type generationConfig struct {
	ResponseModalities []string `json:"responseModalities"`
}

type generateResponse struct {
	Candidates []*genai.Candidate `json:"candidates"`
	errorEnvelope
}

// RESTClient calls generateContent over plain HTTPS with an API key.
type RESTClient struct {
	httpClient *http.Client
	baseURL    string
	model      string
	apiKey     string
}

type Option func(*RESTClient)

func WithBaseURL(u string) Option {
	return func(c *RESTClient) { c.baseURL = u }
}

func WithHTTPClient(hc *http.Client) Option {
	return func(c *RESTClient) { c.httpClient = hc }
}

func NewRESTClient(apiKey, model string, opts ...Option) *RESTClient {
	c := &RESTClient{
		httpClient: http.DefaultClient,
		baseURL:    DefaultBaseURL,
		model:      model,
		apiKey:     apiKey,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *RESTClient) endpoint() string {
	return fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, url.PathEscape(c.model))
}

// GenerateImage sends one prompt and returns the decoded image bytes.
func (c *RESTClient) GenerateImage(ctx context.Context, prompt string) ([]byte, error) {
	payload, err := json.Marshal(generateRequest{
		Contents:         []*genai.Content{{Parts: []*genai.Part{{Text: prompt}}}},
		GenerationConfig: generationConfig{ResponseModalities: Modalities},
	})
	if err != nil {
		return nil, fmt.Errorf("encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(), bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, newAPIError(resp)
	}

	var body generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	data, text, ok := firstImage(body.Candidates)
	if ok {
		return data, nil
	}
	noImage := &NoImageError{Text: text}
	if body.Error != nil {
		noImage.Message = body.Error.Message
	}
	return nil, noImage
}
