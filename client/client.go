// Package client is the Go counterpart of the web frontend's service layer:
// a thin HTTP client over the quiz API that classifies failures into typed
// errors.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"quizbuilder/models"
	"quizbuilder/services"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) ListQuizzes(ctx context.Context) ([]services.QuizSummary, error) {
	var summaries []services.QuizSummary
	if err := c.do(ctx, http.MethodGet, "/api/quizzes", nil, &summaries); err != nil {
		return nil, err
	}
	return summaries, nil
}

func (c *Client) GetQuiz(ctx context.Context, id uint) (*models.Quiz, error) {
	var quiz models.Quiz
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/quizzes/%d", id), nil, &quiz); err != nil {
		return nil, err
	}
	return &quiz, nil
}

func (c *Client) CreateQuiz(ctx context.Context, req services.CreateQuizRequest) (*models.Quiz, error) {
	var quiz models.Quiz
	if err := c.do(ctx, http.MethodPost, "/api/quizzes", req, &quiz); err != nil {
		return nil, err
	}
	return &quiz, nil
}

func (c *Client) DeleteQuiz(ctx context.Context, id uint) (string, error) {
	var resp struct {
		Message string `json:"message"`
	}
	if err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/quizzes/%d", id), nil, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

// errorEnvelope mirrors the API's error body.
type errorEnvelope struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
	Error      string `json:"error"`
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// No response received; distinct from a server-returned error.
		return networkError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		apiErr := &APIError{
			Type:       classifyStatus(resp.StatusCode),
			StatusCode: resp.StatusCode,
			Message:    http.StatusText(resp.StatusCode),
		}
		var envelope errorEnvelope
		if err := json.NewDecoder(resp.Body).Decode(&envelope); err == nil && envelope.Message != "" {
			apiErr.Message = envelope.Message
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
