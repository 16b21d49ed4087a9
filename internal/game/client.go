package game

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/vardovia/vardovia/internal/httpclient"
	"github.com/vardovia/vardovia/internal/logging"
)

const userAgent = "vardovia-cli"

// ErrEmptyAction is returned when the player submits a blank action.
var ErrEmptyAction = errors.New("no action provided")

// Client talks to a game server.
type Client struct {
	baseURL string
	http    *httpclient.Client
}

// NewClient returns a Client for the server at baseURL. A nil http client
// gets httpclient defaults.
func NewClient(baseURL string, http *httpclient.Client) *Client {
	if http == nil {
		http = httpclient.New()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    http,
	}
}

// BaseURL returns the server root the client talks to.
func (c *Client) BaseURL() string { return c.baseURL }

// Act submits one player action. Any HTTP status yields a Response; only
// transport failures and undecodable success bodies are returned as errors.
func (c *Client) Act(ctx context.Context, action string) (*Response, error) {
	action = strings.TrimSpace(action)
	if action == "" {
		return nil, ErrEmptyAction
	}

	logger := logging.FromContext(ctx)
	logger.Debug("sending action", "action", action, "server", c.baseURL)

	var data ResponseData
	resp, err := c.http.PostJSONCtx(ctx, c.baseURL+"/api/action", actionRequest{Action: action}, &data,
		httpclient.WithUserAgent(userAgent))
	if err != nil {
		return nil, fmt.Errorf("network error: %w", err)
	}

	if resp.JSONErr != nil {
		if resp.OK() {
			return nil, fmt.Errorf("invalid response: %w", resp.JSONErr)
		}
		// Proxies and crashed servers answer with HTML or plain text.
		data = ResponseData{Error: httpclient.SummarizeBody(resp.Body)}
	}

	logger.Debug("action response", "status", resp.StatusCode, "has_state", data.State != nil)
	return &Response{OK: resp.OK(), StatusCode: resp.StatusCode, Data: data}, nil
}

// State fetches the current game state.
func (c *Client) State(ctx context.Context) (*State, error) {
	var st State
	resp, err := c.http.GetJSONCtx(ctx, c.baseURL+"/api/state", &st, httpclient.WithUserAgent(userAgent))
	if err != nil {
		return nil, fmt.Errorf("network error: %w", err)
	}
	if !resp.OK() {
		return nil, fmt.Errorf("state request failed: %d: %s", resp.StatusCode, httpclient.SummarizeBody(resp.Body))
	}
	if resp.JSONErr != nil {
		return nil, fmt.Errorf("invalid state: %w", resp.JSONErr)
	}
	return &st, nil
}

// ResolveURL turns a server-relative path such as /static/output_1.png into
// an absolute URL. Absolute URLs and "" are returned unchanged.
func (c *Client) ResolveURL(path string) string {
	if path == "" || strings.Contains(path, "://") {
		return path
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return c.baseURL + path
}
