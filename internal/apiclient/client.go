package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"tekfix_jobboard/internal/logger"
	"tekfix_jobboard/pkg/apperrors"
)

const apiPrefix = "/api/v1"

// TokenSource отдает текущий токен сессии, пустая строка - без авторизации
type TokenSource func() string

// Client ходит в HTTP API доски вакансий и реализует интерфейсы сервисов,
// поэтому сторы не знают, локальный у них бэкенд или удаленный.
type Client struct {
	baseURL    string
	httpClient *http.Client
	token      TokenSource
}

func New(baseURL string, timeout time.Duration, token TokenSource) *Client {
	if token == nil {
		token = func() string { return "" }
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/") + apiPrefix,
		httpClient: &http.Client{Timeout: timeout},
		token:      token,
	}
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if requestID := logger.GetRequestID(ctx); requestID != "" {
		req.Header.Set("X-Request-ID", requestID)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request %s %s failed: %w", method, path, err)
	}
	defer resp.Body.Close()

	logger.CtxDebug(ctx, "API call", "method", method, "path", path, "status", resp.StatusCode)

	if resp.StatusCode >= 400 {
		return decodeError(resp)
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// decodeError восстанавливает AppError из конверта {"error": {...}}.
// apperrors.Is сравнивает код и домен, так что сентинелы совпадают.
func decodeError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))

	var envelope struct {
		Error *apperrors.AppError `json:"error"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil || envelope.Error == nil || envelope.Error.Code == "" {
		return apperrors.New(
			apperrors.CodeUnknownError,
			"http",
			fmt.Sprintf("unexpected status %d", resp.StatusCode),
			resp.StatusCode,
		)
	}

	envelope.Error.HTTPCode = resp.StatusCode
	return envelope.Error
}
