package mcp

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/karve/viking-mcp/dashboard"
	"github.com/karve/viking-mcp/mcp/config"
	"github.com/karve/viking-mcp/viking"
)

// init is the main bootstrap routine invoked by New once all options have
// been applied. Its sole responsibility is to orchestrate the individual
// preparation steps so that the logic stays easy to read and to maintain.
func (s *Service) init(ctx context.Context) error {
	s.initDefaults()

	// Validate configuration early to fail fast when possible.
	if err := s.config.Validate(); err != nil {
		return err
	}

	if err := s.initRemote(ctx); err != nil {
		return err
	}

	s.buildToolRegistry()
	s.initDashboard()
	return nil
}

// initDefaults applies fall-back values for optional dependencies that were
// not supplied through options.
func (s *Service) initDefaults() {
	if s.config == nil {
		s.config = &config.Config{}
	}
	s.config.Init()
	s.project = s.config.Project
}

// initRemote loads credentials and the runtime record, resolves the endpoint
// and prepares the lazy connection facade. Missing credentials abort
// startup; a missing runtime record only degrades to the default endpoint.
func (s *Service) initRemote(ctx context.Context) error {
	if s.creds == nil {
		creds, err := config.LoadCredentials(ctx, s.config.Credentials)
		if err != nil {
			return fmt.Errorf("load credentials: %w", err)
		}
		s.creds = creds
	}
	if s.runtime == nil {
		record, err := config.LoadRuntime(ctx, s.config.Runtime)
		if err != nil {
			return fmt.Errorf("load runtime: %w", err)
		}
		if record == nil {
			slog.Warn("runtime.json not found, is the stack running?", "path", s.config.Runtime)
		}
		s.runtime = record
	}
	s.baseURL = s.resolveBaseURL()
	s.conn = viking.NewConn(s.baseURL, s.creds.APIKey, s.connOpts...)
	return nil
}

// resolveBaseURL picks the endpoint: explicit config override first, then
// the runtime record, then the built-in default.
func (s *Service) resolveBaseURL() string {
	if s.config.URL != "" {
		return s.config.URL
	}
	if s.runtime != nil && s.runtime.OpenVikingURL != "" {
		return s.runtime.OpenVikingURL
	}
	return viking.DefaultURL
}

// initDashboard prepares the auxiliary endpoint server; Start launches it.
func (s *Service) initDashboard() {
	cfg := s.config.Dashboard
	if cfg == nil || cfg.Disabled {
		return
	}
	open := true
	if cfg.Open != nil {
		open = *cfg.Open
	}
	s.dashboard = dashboard.New(cfg.Dir, open)
}
