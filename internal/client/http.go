package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/groblegark/gatekeep/internal/advisory"
	"github.com/groblegark/gatekeep/internal/model"
	"github.com/groblegark/gatekeep/internal/workflow"
)

// HTTPClient implements GatekeepClient using the gatekeep HTTP/JSON REST API.
type HTTPClient struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

var _ GatekeepClient = (*HTTPClient)(nil)

// NewHTTPClient creates a new HTTP client targeting the given base URL
// (e.g. "http://localhost:8080"). When token is non-empty, an Authorization
// header is set on every request.
func NewHTTPClient(baseURL, token string) *HTTPClient {
	return &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		httpClient: &http.Client{},
	}
}

// Close is a no-op for the HTTP client.
func (c *HTTPClient) Close() error { return nil }

// --- Projects ---

func (c *HTTPClient) CreateProject(ctx context.Context, req *CreateProjectRequest) (*model.Project, error) {
	var p model.Project
	if err := c.doJSON(ctx, http.MethodPost, "/v1/projects", req, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *HTTPClient) GetProject(ctx context.Context, id string) (*ProjectView, error) {
	var view ProjectView
	if err := c.doJSON(ctx, http.MethodGet, "/v1/projects/"+url.PathEscape(id), nil, &view); err != nil {
		return nil, err
	}
	return &view, nil
}

func (c *HTTPClient) ListProjects(ctx context.Context) (*ListProjectsResponse, error) {
	var resp ListProjectsResponse
	if err := c.doJSON(ctx, http.MethodGet, "/v1/projects", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) SetProjectStatus(ctx context.Context, id string, status model.ProjectStatus, actor model.Actor) (*model.Project, error) {
	body := map[string]any{"status": status, "actor": actor}
	var p model.Project
	if err := c.doJSON(ctx, http.MethodPost, "/v1/projects/"+url.PathEscape(id)+"/status", body, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *HTTPClient) AdvanceProject(ctx context.Context, id string, actor model.Actor) (*ProjectView, error) {
	body := map[string]any{"actor": actor}
	var view ProjectView
	if err := c.doJSON(ctx, http.MethodPost, "/v1/projects/"+url.PathEscape(id)+"/advance", body, &view); err != nil {
		return nil, err
	}
	return &view, nil
}

// --- Gates and checkpoints ---

func (c *HTTPClient) gatePath(projectID, gateID string) string {
	return "/v1/projects/" + url.PathEscape(projectID) + "/gates/" + url.PathEscape(gateID)
}

func (c *HTTPClient) checkpointPath(projectID, gateID, artifactKey string) string {
	return c.gatePath(projectID, gateID) + "/checkpoints/" + url.PathEscape(artifactKey)
}

func (c *HTTPClient) GetGate(ctx context.Context, projectID, gateID string) (*workflow.GateView, error) {
	var view workflow.GateView
	if err := c.doJSON(ctx, http.MethodGet, c.gatePath(projectID, gateID), nil, &view); err != nil {
		return nil, err
	}
	return &view, nil
}

func (c *HTTPClient) RecordDecision(ctx context.Context, projectID, gateID, artifactKey string, decision model.Decision, actor model.Actor) (*workflow.GateView, error) {
	body := map[string]any{"decision": decision, "actor": actor}
	var view workflow.GateView
	if err := c.doJSON(ctx, http.MethodPost, c.checkpointPath(projectID, gateID, artifactKey)+"/decision", body, &view); err != nil {
		return nil, err
	}
	return &view, nil
}

func (c *HTTPClient) RecordPayload(ctx context.Context, projectID, gateID, artifactKey string, payload model.Payload, actor model.Actor) (*workflow.GateView, error) {
	body := map[string]any{"payload": payload, "actor": actor}
	var view workflow.GateView
	if err := c.doJSON(ctx, http.MethodPost, c.checkpointPath(projectID, gateID, artifactKey)+"/payload", body, &view); err != nil {
		return nil, err
	}
	return &view, nil
}

func (c *HTTPClient) OverrideGate(ctx context.Context, projectID, gateID string, status model.Decision, reason string, actor model.Actor) (*workflow.GateView, error) {
	body := map[string]any{"status": status, "reason": reason, "actor": actor}
	var view workflow.GateView
	if err := c.doJSON(ctx, http.MethodPost, c.gatePath(projectID, gateID)+"/override", body, &view); err != nil {
		return nil, err
	}
	return &view, nil
}

func (c *HTTPClient) ClearOverride(ctx context.Context, projectID, gateID, reason string, actor model.Actor) (*workflow.GateView, error) {
	body := map[string]any{"reason": reason, "actor": actor}
	var view workflow.GateView
	if err := c.doJSON(ctx, http.MethodDelete, c.gatePath(projectID, gateID)+"/override", body, &view); err != nil {
		return nil, err
	}
	return &view, nil
}

func (c *HTTPClient) GetAudit(ctx context.Context, projectID, gateID string) ([]model.AuditEvent, error) {
	var resp struct {
		Audit []model.AuditEvent `json:"audit"`
	}
	if err := c.doJSON(ctx, http.MethodGet, c.gatePath(projectID, gateID)+"/audit", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Audit, nil
}

func (c *HTTPClient) GetArtifact(ctx context.Context, projectID, artifactKey string) (*ArtifactResponse, error) {
	var resp ArtifactResponse
	if err := c.doJSON(ctx, http.MethodGet, "/v1/projects/"+url.PathEscape(projectID)+"/artifacts/"+url.PathEscape(artifactKey), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) Suggest(ctx context.Context, projectID, gateID, artifactKey string) (*advisory.Suggestion, error) {
	var sug advisory.Suggestion
	if err := c.doJSON(ctx, http.MethodPost, c.checkpointPath(projectID, gateID, artifactKey)+"/suggest", nil, &sug); err != nil {
		return nil, err
	}
	return &sug, nil
}

func (c *HTTPClient) ListGates(ctx context.Context) (*model.Plan, error) {
	var plan model.Plan
	if err := c.doJSON(ctx, http.MethodGet, "/v1/gates", nil, &plan); err != nil {
		return nil, err
	}
	return &plan, nil
}

// --- Health ---

func (c *HTTPClient) Health(ctx context.Context) (string, error) {
	var resp struct {
		Status string `json:"status"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/v1/health", nil, &resp); err != nil {
		return "", err
	}
	return resp.Status, nil
}

// --- internal helpers ---

// APIError represents an error response from the server.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Message)
}

// doJSON performs an HTTP request with optional JSON body and decodes the JSON response.
// If result is nil, the response body is discarded.
func (c *HTTPClient) doJSON(ctx context.Context, method, path string, body any, result any) error {
	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshaling request body: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("performing request: %w", err)
	}
	defer resp.Body.Close()

	// 204 No Content — success with no body.
	if resp.StatusCode == http.StatusNoContent {
		return nil
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode >= 400 {
		var errResp struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(respBody, &errResp) == nil && errResp.Error != "" {
			return &APIError{StatusCode: resp.StatusCode, Message: errResp.Error}
		}
		return &APIError{StatusCode: resp.StatusCode, Message: string(respBody)}
	}

	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}
	return nil
}
