package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/bijmantra/wsctl/internal/workspace"
)

const defaultTimeout = 30 * time.Second

var (
	ErrUnauthorized   = errors.New("unauthorized")
	ErrWorkspaceLimit = errors.New("workspace limit reached")
	ErrUnavailable    = errors.New("service unavailable")
)

// Client talks to the BijMantra workspace endpoints. It satisfies
// workspace.Creator when a remote backend is configured.
type Client struct {
	baseURL  string
	token    string
	client   *http.Client
	validate *validator.Validate
}

func NewClient(baseURL, token string) *Client {
	return &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		token:    token,
		client:   &http.Client{Timeout: defaultTimeout},
		validate: validator.New(),
	}
}

// createRequest mirrors the server contract for POST /v1/workspaces.
// The tags restate the fixed platform limits.
type createRequest struct {
	Name        string   `json:"name" validate:"required,max=50"`
	Description string   `json:"description,omitempty" validate:"max=200"`
	Icon        string   `json:"icon" validate:"required"`
	Color       string   `json:"color" validate:"required"`
	PageIDs     []string `json:"pageIds" validate:"required,min=1,max=20,unique"`
	TemplateID  string   `json:"templateId,omitempty"`
}

type createResponse struct {
	ID string `json:"id"`
}

// Create posts a new workspace and returns its id.
func (c *Client) Create(ctx context.Context, input workspace.CreateInput) (string, error) {
	req := createRequest{
		Name:        input.Name,
		Description: input.Description,
		Icon:        input.Icon,
		Color:       input.Color,
		PageIDs:     input.PageIDs,
		TemplateID:  input.TemplateID,
	}
	if err := c.validate.Struct(req); err != nil {
		return "", fmt.Errorf("invalid workspace input: %w", err)
	}

	payload, err := json.Marshal(req)
	if err != nil {
		return "", err
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/workspaces", bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	c.setHeaders(httpReq)

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if err := checkStatus(resp.StatusCode, resp.Status); err != nil {
		return "", err
	}

	var out createResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if out.ID == "" {
		return "", fmt.Errorf("server returned no workspace id")
	}
	return out.ID, nil
}

// List fetches all workspaces for the authenticated user.
func (c *Client) List(ctx context.Context) ([]workspace.Workspace, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/v1/workspaces", nil)
	if err != nil {
		return nil, err
	}
	c.setHeaders(req)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if err := checkStatus(resp.StatusCode, resp.Status); err != nil {
		return nil, err
	}

	var out struct {
		Workspaces []workspace.Workspace `json:"workspaces"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return out.Workspaces, nil
}

// Delete removes a workspace by id.
func (c *Client) Delete(ctx context.Context, id string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.baseURL+"/v1/workspaces/"+id, nil)
	if err != nil {
		return err
	}
	c.setHeaders(req)

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	return checkStatus(resp.StatusCode, resp.Status)
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
}

func checkStatus(code int, status string) error {
	switch {
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		return ErrUnauthorized
	case code == http.StatusConflict:
		return ErrWorkspaceLimit
	case code >= 500:
		return ErrUnavailable
	case code < 200 || code >= 300:
		return fmt.Errorf("request failed: %s", status)
	}
	return nil
}
