package mcp

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/karve/viking-mcp/dashboard"
	"github.com/karve/viking-mcp/internal/registry"
	"github.com/karve/viking-mcp/mcp/config"
	"github.com/karve/viking-mcp/mcp/tool"
	"github.com/karve/viking-mcp/viking"
)

// Service bundles configuration, the lazy OpenViking connection and the tool
// registry consumed by the MCP handler. All heavy lifting during
// instantiation lives in bootstrap.go to keep this file focused on the
// public surface.
type Service struct {
	started int32
	config  *config.Config

	creds   *config.Credentials
	runtime *config.Runtime
	project string
	baseURL string

	conn      *viking.Conn
	dashboard *dashboard.Server
	connOpts  []viking.ConnOption

	// Shared tool registry passed to every MCP handler so tools are
	// registered once system-wide instead of per connection.
	tools *registry.Map[*toolEntry]
}

// Option modifies a service instance before it is initialised. Users can
// pass an arbitrary number of options to New.
type Option func(*Service)

// WithConfig sets a custom configuration instance. When omitted a zero value
// config is assumed.
func WithConfig(cfg *config.Config) Option {
	return func(s *Service) {
		s.config = cfg
	}
}

// WithCredentials injects pre-validated credentials, skipping the
// credentials.yml lookup.
func WithCredentials(creds *config.Credentials) Option {
	return func(s *Service) {
		s.creds = creds
	}
}

// WithRuntime injects a pre-validated runtime record, skipping the
// runtime.json lookup.
func WithRuntime(record *config.Runtime) Option {
	return func(s *Service) {
		s.runtime = record
	}
}

// WithConnOptions forwards options to the connection facade, e.g. a custom
// backoff unit.
func WithConnOptions(opts ...viking.ConnOption) Option {
	return func(s *Service) {
		s.connOpts = append(s.connOpts, opts...)
	}
}

// New constructs a new service instance. The actual bootstrap is handled by
// init() in bootstrap.go so that callers do not need to care about the
// internal initialisation sequence.
func New(ctx context.Context, opts ...Option) (*Service, error) {
	svc := &Service{tools: registry.New[*toolEntry]()}
	for _, opt := range opts {
		opt(svc)
	}
	if err := svc.init(ctx); err != nil {
		return nil, err
	}
	return svc, nil
}

// Config returns the effective configuration instance passed to the service
// at construction time.  Callers must treat the returned object as read-only.
func (s *Service) Config() *config.Config { return s.config }

// Runtime returns the runtime record announced by the stack launcher, nil
// when none was found.
func (s *Service) Runtime() *config.Runtime { return s.runtime }

// BaseURL returns the resolved OpenViking endpoint.
func (s *Service) BaseURL() string { return s.baseURL }

// Conn returns the lazy connection facade.
func (s *Service) Conn() *viking.Conn { return s.conn }

// ToolNames returns all registered MCP tool names in registration order.
func (s *Service) ToolNames() []string {
	return s.tools.Names()
}

// ToolDescriptors returns basic metadata for every tool (name & description).
// The returned slice is detached from internal state and therefore read-only
// for callers.
func (s *Service) ToolDescriptors() []struct{ Name, Description string } {
	entries := s.tools.List()
	out := make([]struct{ Name, Description string }, len(entries))
	for i, e := range entries {
		out[i] = struct{ Name, Description string }{e.name, e.description}
	}
	return out
}

// ToolMetadata returns description and input schema for a named tool when
// present. The second return value is false when the tool does not exist.
func (s *Service) ToolMetadata(name string) (string, interface{}, bool) {
	entry, ok := s.tools.Get(tool.Canonical(name).String())
	if !ok {
		return "", nil, false
	}
	return entry.description, entry.inputSchema, true
}

// Start launches the auxiliary dashboard endpoint. Multiple invocations are
// safe; subsequent calls will be ignored. A dashboard bind failure degrades
// to a warning so tool serving stays available.
func (s *Service) Start(ctx context.Context) error {
	if !atomic.CompareAndSwapInt32(&s.started, 0, 1) {
		return nil
	}
	if s.dashboard != nil {
		if err := s.dashboard.Start(ctx); err != nil {
			slog.Warn("dashboard unavailable", "error", err)
		}
	}
	return nil
}

// Shutdown stops the dashboard endpoint. Additional invocations after the
// first successful call have no effect.
func (s *Service) Shutdown(ctx context.Context) error {
	if !atomic.CompareAndSwapInt32(&s.started, 1, 2) {
		return nil
	}
	if s.dashboard == nil {
		return nil
	}
	return s.dashboard.Shutdown(ctx)
}
