package viking

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/viant/afs"
)

// DefaultURL is used when no runtime record announced the server location.
const DefaultURL = "http://localhost:1933"

const clientTimeout = 60 * time.Second

// Client talks JSON over HTTP to one OpenViking server. Calls are blocking
// round-trips; the transport timeout is the only deadline applied on top of
// the caller context.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	fs         afs.Service
}

// ClientOption customizes a Client.
type ClientOption func(*Client)

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) { c.httpClient = httpClient }
}

// NewClient builds a client for the given base URL. No handshake happens
// here; Initialize performs it.
func NewClient(baseURL, apiKey string, opts ...ClientOption) *Client {
	ret := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		fs:      afs.New(),
	}
	for _, opt := range opts {
		opt(ret)
	}
	if ret.httpClient == nil {
		ret.httpClient = &http.Client{Timeout: clientTimeout}
	}
	return ret
}

// URL returns the endpoint this client talks to.
func (c *Client) URL() string {
	return c.baseURL
}

// Initialize performs the connect handshake, verifying reachability and the
// API key in one round-trip.
func (c *Client) Initialize(ctx context.Context) error {
	return c.call(ctx, http.MethodPost, "/api/v1/initialize", struct{}{}, nil)
}

type searchRequest struct {
	Query     string `json:"query"`
	TargetURI string `json:"target_uri"`
	Limit     int    `json:"limit"`
}

// Find runs plain semantic search scoped to uri.
func (c *Client) Find(ctx context.Context, query, uri string, limit int) (*FindResult, error) {
	request := &searchRequest{Query: query, TargetURI: uri, Limit: limit}
	result := &FindResult{}
	if err := c.call(ctx, http.MethodPost, "/api/v1/find", request, result); err != nil {
		return nil, err
	}
	return result, nil
}

// Search runs intent-aware search with query expansion scoped to uri.
func (c *Client) Search(ctx context.Context, query, uri string, limit int) (*SearchResult, error) {
	request := &searchRequest{Query: query, TargetURI: uri, Limit: limit}
	result := &SearchResult{}
	if err := c.call(ctx, http.MethodPost, "/api/v1/search", request, result); err != nil {
		return nil, err
	}
	return result, nil
}

// Abstract returns the terse summary of the node at uri.
func (c *Client) Abstract(ctx context.Context, uri string) (string, error) {
	return c.content(ctx, "/api/v1/abstract", uri)
}

// Overview returns the expanded summary of the node at uri.
func (c *Client) Overview(ctx context.Context, uri string) (string, error) {
	return c.content(ctx, "/api/v1/overview", uri)
}

// Read returns the complete content of the node at uri.
func (c *Client) Read(ctx context.Context, uri string) (string, error) {
	return c.content(ctx, "/api/v1/read", uri)
}

func (c *Client) content(ctx context.Context, path, uri string) (string, error) {
	var result struct {
		Content string `json:"content"`
	}
	if err := c.call(ctx, http.MethodPost, path, map[string]string{"uri": uri}, &result); err != nil {
		return "", err
	}
	return result.Content, nil
}

// List returns the directory entries under uri.
func (c *Client) List(ctx context.Context, uri string) ([]Entry, error) {
	var result struct {
		Entries []Entry `json:"entries"`
	}
	if err := c.call(ctx, http.MethodPost, "/api/v1/ls", map[string]string{"uri": uri}, &result); err != nil {
		return nil, err
	}
	return result.Entries, nil
}

// AddResource uploads a staged file for ingestion under target. With wait
// set the call returns only once the server finished processing. The
// response shape is server-defined; callers pick the fields they need.
func (c *Client) AddResource(ctx context.Context, path, target, reason string, wait bool) (map[string]interface{}, error) {
	data, err := c.fs.DownloadWithURL(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("read staged resource %q: %w", path, err)
	}
	request := map[string]interface{}{
		"path":    path,
		"name":    filepath.Base(path),
		"content": string(data),
		"target":  target,
		"reason":  reason,
		"wait":    wait,
	}
	var result map[string]interface{}
	if err := c.call(ctx, http.MethodPost, "/api/v1/resource", request, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// IsHealthy reports whether the server answers its health probe positively.
// A transport failure is returned as an error; a reachable server reporting
// a bad state is not.
func (c *Client) IsHealthy(ctx context.Context) (bool, error) {
	resp, err := c.do(ctx, http.MethodGet, "/api/v1/health", nil)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return false, err
	}
	if resp.StatusCode != http.StatusOK {
		return false, nil
	}
	var result struct {
		Healthy bool `json:"healthy"`
	}
	if err := json.Unmarshal(data, &result); err != nil {
		return false, nil
	}
	return result.Healthy, nil
}

// GetStatus returns the server-reported status payload.
func (c *Client) GetStatus(ctx context.Context) (map[string]interface{}, error) {
	var result map[string]interface{}
	if err := c.call(ctx, http.MethodGet, "/api/v1/status", nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *Client) call(ctx context.Context, method, path string, in, out interface{}) error {
	resp, err := c.do(ctx, method, path, in)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%s %s: read response: %w", method, path, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%s %s: status %d: %s", method, path, resp.StatusCode, strings.TrimSpace(string(data)))
	}
	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%s %s: decode response: %w", method, path, err)
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, in interface{}) (*http.Response, error) {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return nil, fmt.Errorf("%s %s: encode request: %w", method, path, err)
		}
		body = bytes.NewReader(data)
	}
	request, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	if in != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	request.Header.Set("Authorization", "Bearer "+c.apiKey)
	return c.httpClient.Do(request)
}
