package cmd

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/karve/viking-mcp/mcp"
	mcpconfig "github.com/karve/viking-mcp/mcp/config"
)

var (
	cfgPath string

	svcOnce sync.Once
	svcInst *mcp.Service
	svcErr  error
)

// setConfigPath remembers the CLI-level -f/--config parameter so that the
// service singleton can be created lazily by whichever sub-command is
// executed first.
func setConfigPath(p string) { cfgPath = p }

// serviceSingleton initialises an mcp.Service only once and reuses the
// instance across sub-commands within the same CLI invocation.
func serviceSingleton() (*mcp.Service, error) {
	svcOnce.Do(func() {
		ctx := context.Background()
		var cfg *mcpconfig.Config
		if cfgPath != "" {
			var err error
			cfg, err = mcpconfig.Load(ctx, cfgPath)
			if err != nil {
				svcErr = err
				return
			}
			// Pretty-print the effective config if asked via env for debug.
			if debug := os.Getenv("VIKING_MCP_DEBUG_CONFIG"); debug == "1" {
				_ = json.NewEncoder(os.Stderr).Encode(cfg)
			}
		}
		setupLogging(cfg)

		svcInst, svcErr = mcp.New(ctx, mcp.WithConfig(cfg))
		if svcErr == nil {
			svcErr = svcInst.Start(ctx)
		}
	})
	return svcInst, svcErr
}

// setupLogging directs slog to stderr, duplicating into the configured log
// file when one is set. Stdout stays reserved for command output and the
// MCP transport.
func setupLogging(cfg *mcpconfig.Config) {
	var w io.Writer = os.Stderr
	if cfg != nil && cfg.Log != nil && cfg.Log.File != "" {
		if f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644); err == nil {
			w = io.MultiWriter(os.Stderr, f)
		} else {
			slog.Warn("log file unavailable", "path", cfg.Log.File, "error", err)
		}
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, nil)))
}
