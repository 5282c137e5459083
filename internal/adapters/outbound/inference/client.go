// Package inference talks to the remote text-generation backend the gateway proxies to.
package inference

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// StatusError is returned when the backend answers with a non-2xx status.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("non-2xx response: %d: %s", e.StatusCode, e.Body)
}

// APIClient is a thin client for the backend HTTP API.
// The base URL is passed per call because the gateway alternates between endpoints.
type APIClient struct {
	apiKey string
	http   *http.Client
}

// NewAPIClient creates a new client
func NewAPIClient(apiKey string, httpClient *http.Client) APIClient {
	return APIClient{
		apiKey: apiKey,
		http:   httpClient,
	}
}

// Health calls GET /health. Any 2xx answer is healthy; a body that is not a JSON
// object is returned under "message".
func (c APIClient) Health(ctx context.Context, baseURL string) (map[string]any, error) {
	respBody, err := c.get(ctx, baseURL, "/health")
	if err != nil {
		return nil, err
	}

	out := map[string]any{}
	if len(bytes.TrimSpace(respBody)) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(respBody, &out); err != nil {
		return map[string]any{"message": string(respBody)}, nil
	}
	return out, nil
}

// Models calls GET /models
func (c APIClient) Models(ctx context.Context, baseURL string) (ModelsResponse, error) {
	var out ModelsResponse
	if err := c.getJSON(ctx, baseURL, "/models", &out); err != nil {
		return ModelsResponse{}, err
	}
	return out, nil
}

// LoadModel calls POST /load_model. Non-2xx answers are returned, not treated as errors,
// so the caller can relay the backend's own status.
func (c APIClient) LoadModel(ctx context.Context, baseURL string, req LoadModelRequest) (int, map[string]any, error) {
	httpReq, err := c.newRequest(ctx, http.MethodPost, baseURL, "/load_model", req)
	if err != nil {
		return 0, nil, err
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return 0, nil, fmt.Errorf("http do: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("read response: %w", err)
	}

	out := map[string]any{}
	if len(respBody) > 0 {
		if err := json.Unmarshal(respBody, &out); err != nil {
			out = map[string]any{"message": string(respBody)}
		}
	}
	return resp.StatusCode, out, nil
}

// Chat sends a non-streaming request
func (c APIClient) Chat(ctx context.Context, baseURL string, req ChatRequest) (ChatResponse, error) {
	if err := validateChatRequest(req); err != nil {
		return ChatResponse{}, err
	}
	req.Stream = false

	httpReq, err := c.newRequest(ctx, http.MethodPost, baseURL, "/chat", req)
	if err != nil {
		return ChatResponse{}, err
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return ChatResponse{}, fmt.Errorf("http do: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return ChatResponse{}, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return ChatResponse{}, &StatusError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	var out ChatResponse
	if err := json.Unmarshal(respBody, &out); err != nil {
		return ChatResponse{}, fmt.Errorf("unmarshal response: %w", err)
	}
	return out, nil
}

// ChatStream opens a streaming request and returns the raw response once headers arrive.
// The caller must close the response body.
func (c APIClient) ChatStream(ctx context.Context, baseURL string, req ChatRequest) (*http.Response, error) {
	if err := validateChatRequest(req); err != nil {
		return nil, err
	}
	req.Stream = true

	httpReq, err := c.newRequest(ctx, http.MethodPost, baseURL, "/chat", req)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("http do: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		defer resp.Body.Close() //nolint:errcheck
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: string(b)}
	}
	return resp, nil
}

func validateChatRequest(req ChatRequest) error {
	if req.Model == "" {
		return errors.New("model is required")
	}
	if len(req.Messages) == 0 {
		return errors.New("messages are required")
	}
	return nil
}

func (c APIClient) get(ctx context.Context, baseURL, path string) ([]byte, error) {
	httpReq, err := c.newRequest(ctx, http.MethodGet, baseURL, path, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("http do: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}
	return respBody, nil
}

func (c APIClient) getJSON(ctx context.Context, baseURL, path string, out any) error {
	respBody, err := c.get(ctx, baseURL, path)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("unmarshal response: %w", err)
	}
	return nil
}

func (c APIClient) newRequest(ctx context.Context, method, baseURL, path string, body any) (*http.Request, error) {
	endpoint, err := url.JoinPath(baseURL, path)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	var bodyReader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request: %w", err)
		}
		bodyReader = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, endpoint, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
	return req, nil
}
