// Package client is a typed consumer of the bid portal HTTP API. It maps the
// service's error envelope back onto the domain error taxonomy so callers can
// use errors.Is instead of inspecting status codes and body text.
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
	"time"

	"bid-portal/internal/award"
	"bid-portal/internal/biderrors"
	"bid-portal/internal/identity"
	"bid-portal/internal/lifecycle"
	model "bid-portal/internal/models"
	"bid-portal/services/marketplace/helpers"
)

// Client talks to one bid portal instance on behalf of one actor
type Client struct {
	baseURL    string
	actorID    string
	httpClient *http.Client
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient swaps the underlying HTTP client
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) { c.httpClient = httpClient }
}

// New creates a client for the given base URL acting as the given user
func New(baseURL, actorID string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		actorID:    actorID,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetCategories returns the reference categories
func (c *Client) GetCategories(ctx context.Context) ([]model.Category, error) {
	var categories []model.Category
	err := c.do(ctx, http.MethodGet, "/api/categories", nil, &categories)
	return categories, err
}

// GetProjects returns projects, optionally filtered by category
func (c *Client) GetProjects(ctx context.Context, categoryIDs []string) ([]model.Project, error) {
	path := "/api/projects"
	if len(categoryIDs) > 0 {
		path += "?categories=" + url.QueryEscape(strings.Join(categoryIDs, ","))
	}
	var projects []model.Project
	err := c.do(ctx, http.MethodGet, path, nil, &projects)
	return projects, err
}

// GetProject returns one project
func (c *Client) GetProject(ctx context.Context, projectID string) (model.Project, error) {
	var project model.Project
	err := c.do(ctx, http.MethodGet, "/api/projects/"+url.PathEscape(projectID), nil, &project)
	return project, err
}

// GetOwnerProjectsWithStats returns the acting owner's dashboard rows
func (c *Client) GetOwnerProjectsWithStats(ctx context.Context, ownerID string) ([]lifecycle.ProjectWithStats, error) {
	var projects []lifecycle.ProjectWithStats
	err := c.do(ctx, http.MethodGet, "/api/projects/owner/"+url.PathEscape(ownerID)+"/with-stats", nil, &projects)
	return projects, err
}

// CreateProject posts a new project
func (c *Client) CreateProject(ctx context.Context, req helpers.ProjectRequest) (model.Project, error) {
	var project model.Project
	err := c.do(ctx, http.MethodPost, "/api/projects", req, &project)
	return project, err
}

// UpdateProject edits an open project
func (c *Client) UpdateProject(ctx context.Context, projectID string, req helpers.ProjectRequest) (model.Project, error) {
	var project model.Project
	err := c.do(ctx, http.MethodPut, "/api/projects/"+url.PathEscape(projectID), req, &project)
	return project, err
}

// DeleteProject removes a project and its bids
func (c *Client) DeleteProject(ctx context.Context, projectID string) error {
	return c.do(ctx, http.MethodDelete, "/api/projects/"+url.PathEscape(projectID), nil, nil)
}

// GetBidsByProject returns a project's bids (project owner only)
func (c *Client) GetBidsByProject(ctx context.Context, projectID string) ([]model.Bid, error) {
	var bids []model.Bid
	err := c.do(ctx, http.MethodGet, "/api/bids?projectId="+url.QueryEscape(projectID), nil, &bids)
	return bids, err
}

// GetBidsByContractor returns a contractor's own bids
func (c *Client) GetBidsByContractor(ctx context.Context, contractorID string) ([]model.Bid, error) {
	var bids []model.Bid
	err := c.do(ctx, http.MethodGet, "/api/bids?contractorId="+url.QueryEscape(contractorID), nil, &bids)
	return bids, err
}

// CreateBid submits a bid on an open project
func (c *Client) CreateBid(ctx context.Context, req helpers.SubmitBidRequest) (model.Bid, error) {
	var bid model.Bid
	err := c.do(ctx, http.MethodPost, "/api/bids", req, &bid)
	return bid, err
}

// UpdateBid edits the acting contractor's bid
func (c *Client) UpdateBid(ctx context.Context, bidID string, req helpers.EditBidRequest) (model.Bid, error) {
	var bid model.Bid
	err := c.do(ctx, http.MethodPut, "/api/bids/"+url.PathEscape(bidID), req, &bid)
	return bid, err
}

// WithdrawBid withdraws the acting contractor's bid
func (c *Client) WithdrawBid(ctx context.Context, bidID string) error {
	return c.do(ctx, http.MethodPost, "/api/bids/"+url.PathEscape(bidID)+"/withdraw", nil, nil)
}

// AwardBid awards a bid on behalf of the acting owner
func (c *Client) AwardBid(ctx context.Context, bidID, ownerActorID string, acceptanceInfo model.Signature) (award.Result, error) {
	req := helpers.AwardBidRequest{
		BidID:          bidID,
		OwnerActorID:   ownerActorID,
		AcceptanceInfo: acceptanceInfo,
	}
	var result award.Result
	err := c.do(ctx, http.MethodPost, "/api/bids/award", req, &result)
	return result, err
}

// Me returns the acting user as the service sees it
func (c *Client) Me(ctx context.Context) (model.User, error) {
	var user model.User
	err := c.do(ctx, http.MethodGet, "/api/session/me", nil, &user)
	return user, err
}

// envelope matches the service's response shape
type envelope struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("client: encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("client: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.actorID != "" {
		req.Header.Set(identity.HeaderActorID, c.actorID)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("client: %w: %v", biderrors.ErrTransport, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("client: %w: read response: %v", biderrors.ErrTransport, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return mapHTTPError(resp.StatusCode, raw)
	}
	if out == nil {
		return nil
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return fmt.Errorf("client: %w: decode envelope: %v", biderrors.ErrTransport, err)
	}
	if len(env.Data) == 0 || string(env.Data) == "null" {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("client: %w: decode payload: %v", biderrors.ErrTransport, err)
	}
	return nil
}

// mapHTTPError turns an error response back into the domain taxonomy. The
// already-awarded condition is detected by the body text, which is the
// service's stated contract for that case.
func mapHTTPError(status int, raw []byte) error {
	bodyText := errorText(raw)

	switch {
	case strings.Contains(bodyText, "already been awarded"):
		return fmt.Errorf("client: %w", biderrors.ErrAlreadyAwarded)
	case strings.Contains(bodyText, "active bid"):
		return fmt.Errorf("client: %w", biderrors.ErrDuplicateBid)
	}

	switch status {
	case http.StatusBadRequest:
		return fmt.Errorf("client: %w: %s", biderrors.ErrValidation, bodyText)
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("client: %w: %s", biderrors.ErrPermission, bodyText)
	case http.StatusNotFound:
		return fmt.Errorf("client: %w: %s", biderrors.ErrNotFound, bodyText)
	case http.StatusConflict:
		return fmt.Errorf("client: %w: %s", biderrors.ErrInvalidState, bodyText)
	default:
		return fmt.Errorf("client: %w: status %d: %s", biderrors.ErrTransport, status, bodyText)
	}
}

func errorText(raw []byte) string {
	var env envelope
	if err := json.Unmarshal(raw, &env); err == nil {
		if env.Error != "" {
			return env.Error
		}
		if env.Message != "" {
			return env.Message
		}
	}
	return string(raw)
}
