// Package client is a Go consumer of the showcase API. It keeps one
// piece of client-side state: the authenticated identity, cached after
// fetch and invalidated whenever a login, register or logout succeeds,
// so the next read reflects server truth instead of a locally computed
// value.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"
)

// identityTTL bounds how long a cached identity is served without
// revalidating against the server.
const identityTTL = 5 * time.Minute

// APIError is a non-2xx response from the API.
type APIError struct {
	Status  int
	Message string
	Code    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

// User is the authenticated identity as the server reports it.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Project mirrors the API's project resource. Position and Rotation are
// opaque JSON documents.
type Project struct {
	ID           uint            `json:"id"`
	Title        string          `json:"title"`
	Description  string          `json:"description"`
	Image        string          `json:"image"`
	Link         string          `json:"link,omitempty"`
	Technologies []string        `json:"technologies"`
	Position     json.RawMessage `json:"position"`
	Rotation     json.RawMessage `json:"rotation"`
	UserID       string          `json:"user_id"`
}

// ProjectInput carries the writable project fields.
type ProjectInput struct {
	Title        string          `json:"title"`
	Description  string          `json:"description"`
	Image        string          `json:"image"`
	Link         string          `json:"link,omitempty"`
	Technologies []string        `json:"technologies"`
	Position     json.RawMessage `json:"position,omitempty"`
	Rotation     json.RawMessage `json:"rotation,omitempty"`
}

// Review mirrors the API's review resource.
type Review struct {
	ID        uint    `json:"id"`
	ProjectID uint    `json:"projectId"`
	Rating    float64 `json:"rating"`
	Comment   string  `json:"comment"`
}

type authResponse struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}

// Client talks to a showcase API deployment.
type Client struct {
	baseURL string
	httpc   *http.Client
	retry   RetryPolicy

	mu        sync.Mutex
	token     string
	identity  *User
	fetchedAt time.Time
}

// New creates a client for the API at baseURL. A nil httpc uses
// http.DefaultClient.
func New(baseURL string, httpc *http.Client) *Client {
	if httpc == nil {
		httpc = http.DefaultClient
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   httpc,
		retry:   DefaultRetryPolicy,
	}
}

// Login authenticates and stores the returned token. The cached
// identity is dropped so the next CurrentUser call refetches.
func (c *Client) Login(ctx context.Context, email, password string) (*User, error) {
	var resp authResponse
	err := c.do(ctx, http.MethodPost, "/api/auth/login", map[string]string{
		"email":    email,
		"password": password,
	}, &resp)
	if err != nil {
		return nil, err
	}
	c.setToken(resp.Token)
	return resp.User, nil
}

// Register creates an account, signs in and stores the returned token.
func (c *Client) Register(ctx context.Context, name, email, password string) (*User, error) {
	var resp authResponse
	err := c.do(ctx, http.MethodPost, "/api/auth/register", map[string]string{
		"name":     name,
		"email":    email,
		"password": password,
	}, &resp)
	if err != nil {
		return nil, err
	}
	c.setToken(resp.Token)
	return resp.User, nil
}

// Logout invalidates the session server-side, then drops the stored
// token and cached identity.
func (c *Client) Logout(ctx context.Context) error {
	if err := c.do(ctx, http.MethodPost, "/api/auth/logout", nil, nil); err != nil {
		return err
	}
	c.setToken("")
	return nil
}

// CurrentUser returns the authenticated identity, served from cache
// when fresh. Returns (nil, nil) when no token is held.
func (c *Client) CurrentUser(ctx context.Context) (*User, error) {
	c.mu.Lock()
	if c.token == "" {
		c.mu.Unlock()
		return nil, nil
	}
	if c.identity != nil && time.Since(c.fetchedAt) < identityTTL {
		cached := *c.identity
		c.mu.Unlock()
		return &cached, nil
	}
	c.mu.Unlock()

	var user User
	if err := c.do(ctx, http.MethodGet, "/api/auth/me", nil, &user); err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.identity = &user
	c.fetchedAt = time.Now()
	c.mu.Unlock()

	return &user, nil
}

// Projects lists all projects.
func (c *Client) Projects(ctx context.Context) ([]Project, error) {
	var projects []Project
	if err := c.do(ctx, http.MethodGet, "/api/projects", nil, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

// Project fetches one project by id.
func (c *Client) Project(ctx context.Context, id uint) (*Project, error) {
	var project Project
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/projects/%d", id), nil, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

// CreateProject creates a project owned by the authenticated user.
func (c *Client) CreateProject(ctx context.Context, in ProjectInput) (*Project, error) {
	var project Project
	if err := c.do(ctx, http.MethodPost, "/api/projects", in, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

// UpdateProject overwrites a project's writable fields.
func (c *Client) UpdateProject(ctx context.Context, id uint, in ProjectInput) (*Project, error) {
	var project Project
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/projects/%d", id), in, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

// UpdateTransform updates only a project's position and rotation.
func (c *Client) UpdateTransform(ctx context.Context, id uint, position, rotation json.RawMessage) error {
	body := map[string]json.RawMessage{
		"position": position,
		"rotation": rotation,
	}
	return c.do(ctx, http.MethodPatch, fmt.Sprintf("/api/projects/%d/transform", id), body, nil)
}

// DeleteProject removes a project.
func (c *Client) DeleteProject(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/projects/%d", id), nil, nil)
}

// Reviews lists a project's reviews.
func (c *Client) Reviews(ctx context.Context, projectID uint) ([]Review, error) {
	var reviews []Review
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/projects/%d/reviews", projectID), nil, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

// CreateReview posts a review against a project.
func (c *Client) CreateReview(ctx context.Context, projectID uint, rating float64, comment string) (*Review, error) {
	var review Review
	body := map[string]interface{}{
		"rating":  rating,
		"comment": comment,
	}
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/api/projects/%d/reviews", projectID), body, &review); err != nil {
		return nil, err
	}
	return &review, nil
}

// setToken replaces the stored token and drops the cached identity so
// the next read goes back to the server.
func (c *Client) setToken(token string) {
	c.mu.Lock()
	c.token = token
	c.identity = nil
	c.fetchedAt = time.Time{}
	c.mu.Unlock()
}

func (c *Client) currentToken() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.token
}

// do marshals body once and runs the request under the retry policy.
func (c *Client) do(ctx context.Context, method, path string, body interface{}, out interface{}) error {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
	}
	return c.retry.Do(ctx, func() error {
		return c.doOnce(ctx, method, path, payload, out)
	})
}

func (c *Client) doOnce(ctx context.Context, method, path string, payload []byte, out interface{}) error {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.currentToken(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return apiError(resp)
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

// apiError extracts the server's error body. The API wraps its
// {error, code} payload in echo's {"message": ...} envelope.
func apiError(resp *http.Response) *APIError {
	apiErr := &APIError{Status: resp.StatusCode}

	data, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	var envelope struct {
		Message json.RawMessage `json:"message"`
	}
	if err := json.Unmarshal(data, &envelope); err == nil && envelope.Message != nil {
		var nested struct {
			Error string `json:"error"`
			Code  string `json:"code"`
		}
		if err := json.Unmarshal(envelope.Message, &nested); err == nil && nested.Error != "" {
			apiErr.Message = nested.Error
			apiErr.Code = nested.Code
			return apiErr
		}
		var plain string
		if err := json.Unmarshal(envelope.Message, &plain); err == nil {
			apiErr.Message = plain
			return apiErr
		}
	}

	apiErr.Message = strings.TrimSpace(string(data))
	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(resp.StatusCode)
	}
	return apiErr
}
