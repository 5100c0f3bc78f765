package gemini

import (
	"context"
	"fmt"
	"net/http"

	"golang.org/x/oauth2/google"
	"google.golang.org/genai"
)

const (
	DefaultModel = "gemini-2.0-flash-exp-image-generation"

	cloudPlatformScope = "https://www.googleapis.com/auth/cloud-platform"
)

// Modalities asks for image output alongside text.
var Modalities = []string{"IMAGE", "TEXT"}

// ClientOption adjusts the genai client configuration built by SetupClient.
type ClientOption func(*genai.ClientConfig)

// WithClientBaseURL points the SDK at another endpoint. The URL must end in "/".
func WithClientBaseURL(u string) ClientOption {
	return func(cc *genai.ClientConfig) { cc.HTTPOptions.BaseURL = u }
}

// SetupClient builds a genai client whose HTTP errors surface as *APIError.
// With a project set it targets Vertex AI using application default
// credentials, otherwise the Gemini API with apiKey.
func SetupClient(ctx context.Context, apiKey, project, location string, opts ...ClientOption) (*genai.Client, error) {
	cc := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
		HTTPClient: &http.Client{
			Transport: &statusTransport{base: http.DefaultTransport},
		},
	}
	if project != "" {
		hc, err := google.DefaultClient(ctx, cloudPlatformScope)
		if err != nil {
			return nil, fmt.Errorf("loading default credentials: %w", err)
		}
		hc.Transport = &statusTransport{base: hc.Transport}
		cc = &genai.ClientConfig{
			Project:    project,
			Location:   location,
			Backend:    genai.BackendVertexAI,
			HTTPClient: hc,
		}
	}
	for _, opt := range opts {
		opt(cc)
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("creating genai client: %w", err)
	}
	return client, nil
}

func GetConfig() *genai.GenerateContentConfig {
	return &genai.GenerateContentConfig{
		ResponseModalities: Modalities,
	}
}

// SDKClient generates images through the genai SDK.
type SDKClient struct {
	client *genai.Client
	model  string
}

func NewSDKClient(client *genai.Client, model string) *SDKClient {
	return &SDKClient{client: client, model: model}
}

func (s *SDKClient) GenerateImage(ctx context.Context, prompt string) ([]byte, error) {
	parts := []*genai.Part{{Text: prompt}}

	result, err := s.client.Models.GenerateContent(ctx, s.model, []*genai.Content{{Parts: parts}}, GetConfig())
	if err != nil {
		return nil, err
	}

	data, text, ok := firstImage(result.Candidates)
	if !ok {
		return nil, &NoImageError{Text: text}
	}
	return data, nil
}
