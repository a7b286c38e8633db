// Package client は社員 REST API の HTTP クライアントです。
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultTimeout = 10 * time.Second

// Employee は API が返す社員です。
type Employee struct {
	FirstName     string    `json:"firstName"`
	LastName      string    `json:"lastName"`
	EmployeeID    string    `json:"employeeId"`
	Email         string    `json:"email"`
	PhoneNumber   string    `json:"phoneNumber"`
	Department    string    `json:"department"`
	DateOfJoining string    `json:"dateOfJoining"`
	Role          string    `json:"role"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// EmployeeInput は社員登録の入力です。
type EmployeeInput struct {
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	EmployeeID    string `json:"employeeId"`
	Email         string `json:"email"`
	PhoneNumber   string `json:"phoneNumber"`
	Department    string `json:"department"`
	DateOfJoining string `json:"dateOfJoining"`
	Role          string `json:"role"`
}

// UpdateInput は社員更新の入力です。nil のフィールドは送信しません。
type UpdateInput struct {
	FirstName     *string `json:"firstName,omitempty"`
	LastName      *string `json:"lastName,omitempty"`
	Email         *string `json:"email,omitempty"`
	PhoneNumber   *string `json:"phoneNumber,omitempty"`
	Department    *string `json:"department,omitempty"`
	DateOfJoining *string `json:"dateOfJoining,omitempty"`
	Role          *string `json:"role,omitempty"`
}

// Violation はフィールド単位の入力違反です。
type Violation struct {
	Field   string `json:"field"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// APIError は 2xx 以外の応答です。
type APIError struct {
	StatusCode int
	Message    string
	Violations []Violation
}

func (e *APIError) Error() string {
	if len(e.Violations) == 0 {
		return fmt.Sprintf("api: %d %s", e.StatusCode, e.Message)
	}
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, fmt.Sprintf("%s %s", v.Field, v.Message))
	}
	return fmt.Sprintf("api: %d %s (%s)", e.StatusCode, e.Message, strings.Join(parts, "; "))
}

// IsNotFound は err が 404 応答かを返します。
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// Client は社員 API のクライアントです。
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
}

// New は baseURL (例: http://localhost:5000) に対するクライアントを生成します。
func New(baseURL string, httpClient *http.Client) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("client: parse base url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("client: base url %q must include scheme and host", baseURL)
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	return &Client{baseURL: u, httpClient: httpClient}, nil
}

type messageResponse struct {
	Message string `json:"message"`
}

type errorResponse struct {
	Error      string      `json:"error"`
	Violations []Violation `json:"violations"`
}

// Add は社員を登録し、サーバーのメッセージを返します。
func (c *Client) Add(ctx context.Context, in EmployeeInput) (string, error) {
	var out messageResponse
	if err := c.do(ctx, http.MethodPost, "/add-employee", in, &out); err != nil {
		return "", err
	}
	return out.Message, nil
}

// List は社員を全件取得します。
func (c *Client) List(ctx context.Context) ([]Employee, error) {
	var out []Employee
	if err := c.do(ctx, http.MethodGet, "/employees", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Update は employeeID の社員を更新します。
func (c *Client) Update(ctx context.Context, employeeID string, in UpdateInput) (string, error) {
	var out messageResponse
	if err := c.do(ctx, http.MethodPut, "/employees/"+url.PathEscape(employeeID), in, &out); err != nil {
		return "", err
	}
	return out.Message, nil
}

// Delete は employeeID の社員を削除します。
func (c *Client) Delete(ctx context.Context, employeeID string) (string, error) {
	var out messageResponse
	if err := c.do(ctx, http.MethodDelete, "/employees/"+url.PathEscape(employeeID), nil, &out); err != nil {
		return "", err
	}
	return out.Message, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("client: encode request: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	endpoint := c.baseURL.JoinPath(path)
	req, err := http.NewRequestWithContext(ctx, method, endpoint.String(), reader)
	if err != nil {
		return fmt.Errorf("client: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("client: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var e errorResponse
		if err := json.NewDecoder(resp.Body).Decode(&e); err != nil || e.Error == "" {
			e.Error = http.StatusText(resp.StatusCode)
		}
		return &APIError{StatusCode: resp.StatusCode, Message: e.Error, Violations: e.Violations}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("client: decode response: %w", err)
	}
	return nil
}
