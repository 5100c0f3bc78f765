package gemini

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"unicode/utf8"
)

const maxErrorBody = 200

// APIError is a non-2xx answer from the API.
type APIError struct {
	StatusCode int
	Status     string
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("HTTP %d", e.StatusCode)
	}
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Message)
}

func (e *APIError) RateLimited() bool { return e.StatusCode == http.StatusTooManyRequests }

func (e *APIError) ServerError() bool { return e.StatusCode >= 500 }

// NoImageError means the call succeeded but no image part came back. Message
// is the error embedded in the envelope, if any; Text is whatever prose the
// model answered with instead.
type NoImageError struct {
	Message string
	Text    string
}

func (e *NoImageError) Error() string {
	if e.Message == "" {
		return "No image in response"
	}
	return e.Message
}

type errorEnvelope struct {
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

// newAPIError consumes resp.Body. The caller still owns closing it.
func newAPIError(resp *http.Response) *APIError {
	apiErr := &APIError{StatusCode: resp.StatusCode}
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))

	var env errorEnvelope
	if err := json.Unmarshal(body, &env); err == nil && env.Error != nil {
		apiErr.Status = env.Error.Status
		apiErr.Message = env.Error.Message
		return apiErr
	}

	msg := strings.TrimSpace(string(body))
	apiErr.Message = truncate(msg, maxErrorBody)
	return apiErr
}

// truncate cuts s to at most n bytes without splitting a UTF-8 sequence.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
