package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/karve/viking-mcp/internal/conv"
	"github.com/karve/viking-mcp/viking"
)

// startHint points operators at the launcher script when the stack is down.
const startHint = "Run: ./scripts/start_openviking.sh"

// defaultSearchLimit caps result counts when the caller does not ask for a
// specific one.
const defaultSearchLimit = 5

// Depth names accepted by viking_read.
const (
	depthAbstract = "abstract"
	depthOverview = "overview"
	depthFull     = "full"
)

// SearchInput carries viking_search and viking_deep_search arguments. URI is
// a pointer so an explicitly supplied empty scope stays distinguishable from
// an absent one.
type SearchInput struct {
	Query string  `json:"query"`
	URI   *string `json:"uri,omitempty"`
	Limit int     `json:"limit,omitempty"`
}

// ReadInput carries viking_read arguments.
type ReadInput struct {
	URI   string `json:"uri"`
	Depth string `json:"depth,omitempty"`
}

// ListInput carries viking_list arguments.
type ListInput struct {
	URI *string `json:"uri,omitempty"`
}

// RememberInput carries viking_remember arguments.
type RememberInput struct {
	Text     string `json:"text"`
	Category string `json:"category,omitempty"`
	Name     string `json:"name,omitempty"`
}

// defaultScope is the scope applied when a call does not narrow one. It is
// derived from the configured project on every invocation, not cached.
func (s *Service) defaultScope() string {
	if s.project != "" {
		return "viking://user/projects/" + s.project + "/"
	}
	return "viking://"
}

// scopeOrDefault honours an explicitly supplied scope, including an empty
// one, and falls back to the per-project default otherwise.
func (s *Service) scopeOrDefault(uri *string) string {
	if uri != nil {
		return *uri
	}
	return s.defaultScope()
}

// rememberTarget derives the storage location for a category.
func (s *Service) rememberTarget(category string) string {
	if s.project != "" {
		return "viking://user/projects/" + s.project + "/" + category + "/"
	}
	return "viking://user/" + category + "/"
}

func requireArg(args map[string]interface{}, tool, name string) error {
	if _, ok := args[name]; !ok {
		return fmt.Errorf("%s: missing required argument %q", tool, name)
	}
	return nil
}

func (s *Service) vikingSearch(ctx context.Context, args map[string]interface{}) (string, error) {
	if err := requireArg(args, "viking_search", "query"); err != nil {
		return "", err
	}
	in := &SearchInput{Limit: defaultSearchLimit}
	if err := conv.Convert(args, in); err != nil {
		return "", fmt.Errorf("viking_search: invalid arguments: %w", err)
	}
	scope := s.scopeOrDefault(in.URI)
	client, err := s.conn.Acquire(ctx)
	if err != nil {
		return searchFailure(err), nil
	}
	results, err := client.Find(ctx, in.Query, scope, in.Limit)
	if err != nil {
		return searchFailure(err), nil
	}
	return viking.Render(results), nil
}

func searchFailure(err error) string {
	slog.Error("viking_search failed", "error", err)
	return fmt.Sprintf("viking_search failed: %v\n%s", err, startHint)
}

func (s *Service) vikingDeepSearch(ctx context.Context, args map[string]interface{}) (string, error) {
	if err := requireArg(args, "viking_deep_search", "query"); err != nil {
		return "", err
	}
	in := &SearchInput{Limit: defaultSearchLimit}
	if err := conv.Convert(args, in); err != nil {
		return "", fmt.Errorf("viking_deep_search: invalid arguments: %w", err)
	}
	scope := s.scopeOrDefault(in.URI)
	client, err := s.conn.Acquire(ctx)
	if err != nil {
		return deepSearchFailure(err), nil
	}
	results, err := client.Search(ctx, in.Query, scope, in.Limit)
	if err != nil {
		return deepSearchFailure(err), nil
	}
	return viking.RenderSearch(results), nil
}

func deepSearchFailure(err error) string {
	slog.Error("viking_deep_search failed", "error", err)
	return fmt.Sprintf("viking_deep_search failed: %v", err)
}

// vikingRead validates the depth before any remote traffic; each depth
// dispatches to its own remote call and the payload is returned unmodified.
func (s *Service) vikingRead(ctx context.Context, args map[string]interface{}) (string, error) {
	if err := requireArg(args, "viking_read", "uri"); err != nil {
		return "", err
	}
	in := &ReadInput{Depth: depthOverview}
	if err := conv.Convert(args, in); err != nil {
		return "", fmt.Errorf("viking_read: invalid arguments: %w", err)
	}
	switch in.Depth {
	case depthAbstract, depthOverview, depthFull:
	default:
		return "", fmt.Errorf("viking_read: invalid depth %q, expected abstract, overview or full", in.Depth)
	}
	client, err := s.conn.Acquire(ctx)
	if err != nil {
		return readFailure(in.URI, err), nil
	}
	var content string
	switch in.Depth {
	case depthAbstract:
		content, err = client.Abstract(ctx, in.URI)
	case depthFull:
		content, err = client.Read(ctx, in.URI)
	default:
		content, err = client.Overview(ctx, in.URI)
	}
	if err != nil {
		return readFailure(in.URI, err), nil
	}
	return content, nil
}

func readFailure(uri string, err error) string {
	slog.Error("viking_read failed", "uri", uri, "error", err)
	return fmt.Sprintf("viking_read failed for %s: %v", uri, err)
}

func (s *Service) vikingList(ctx context.Context, args map[string]interface{}) (string, error) {
	in := &ListInput{}
	if err := conv.Convert(args, in); err != nil {
		return "", fmt.Errorf("viking_list: invalid arguments: %w", err)
	}
	scope := s.scopeOrDefault(in.URI)
	client, err := s.conn.Acquire(ctx)
	if err != nil {
		return listFailure(scope, err), nil
	}
	entries, err := client.List(ctx, scope)
	if err != nil {
		return listFailure(scope, err), nil
	}
	if len(entries) == 0 {
		return "Empty: " + scope, nil
	}
	lines := []string{fmt.Sprintf("Contents of %s:", scope)}
	for _, entry := range entries {
		icon := "📄"
		if entry.Type == "directory" {
			icon = "📁"
		}
		lines = append(lines, fmt.Sprintf("  %s %s  %s", icon, entry.Name, entry.URI))
	}
	return strings.Join(lines, "\n"), nil
}

func listFailure(uri string, err error) string {
	slog.Error("viking_list failed", "uri", uri, "error", err)
	return fmt.Sprintf("viking_list failed for %s: %v", uri, err)
}

// vikingRemember stages the note in a temporary file, hands it to the
// ingestion endpoint and discards the staged file on every exit path,
// ingestion failures included.
func (s *Service) vikingRemember(ctx context.Context, args map[string]interface{}) (string, error) {
	if err := requireArg(args, "viking_remember", "text"); err != nil {
		return "", err
	}
	in := &RememberInput{Category: "memory"}
	if err := conv.Convert(args, in); err != nil {
		return "", fmt.Errorf("viking_remember: invalid arguments: %w", err)
	}
	staged, err := viking.StageResource(in.Text, in.Name)
	if err != nil {
		return "", fmt.Errorf("viking_remember: %w", err)
	}
	defer viking.Discard(staged)

	client, err := s.conn.Acquire(ctx)
	if err != nil {
		return rememberFailure(err), nil
	}
	result, err := client.AddResource(ctx, staged, s.rememberTarget(in.Category), in.Category, true)
	if err != nil {
		return rememberFailure(err), nil
	}
	stored := "unknown"
	if uri, ok := result["uri"].(string); ok && uri != "" {
		stored = uri
	}
	slog.Info("stored resource", "uri", stored)
	return "Stored at: " + stored, nil
}

func rememberFailure(err error) string {
	slog.Error("viking_remember failed", "error", err)
	return fmt.Sprintf("viking_remember failed: %v", err)
}

func (s *Service) vikingStatus(ctx context.Context, _ map[string]interface{}) (string, error) {
	client, err := s.conn.Acquire(ctx)
	if err != nil {
		return s.statusFailure(err), nil
	}
	healthy, err := client.IsHealthy(ctx)
	if err != nil {
		return s.statusFailure(err), nil
	}
	if !healthy {
		return "OpenViking reachable but reports unhealthy status.", nil
	}
	status, err := client.GetStatus(ctx)
	if err != nil {
		return fmt.Sprintf("✓ OpenViking healthy at %s", s.baseURL), nil
	}
	payload, err := json.MarshalIndent(status, "", "  ")
	if err != nil {
		return fmt.Sprintf("✓ OpenViking healthy at %s", s.baseURL), nil
	}
	return fmt.Sprintf("✓ OpenViking healthy\n\n%s", payload), nil
}

func (s *Service) statusFailure(err error) string {
	slog.Error("viking_status check failed", "error", err)
	return fmt.Sprintf("✗ OpenViking not reachable at %s\nError: %v\n%s", s.baseURL, err, startHint)
}
