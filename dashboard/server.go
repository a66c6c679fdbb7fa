package dashboard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os/exec"
	"runtime"
	"time"
)

// Server exposes a local directory over HTTP on an OS-assigned loopback
// port. Request access logs stay off; only lifecycle events are reported.
type Server struct {
	host string
	dir  string
	open bool

	srv  *http.Server
	port int
}

// New builds a server for dir. With open set, Start also launches the
// platform browser pointing at dashboard.html.
func New(dir string, open bool) *Server {
	return &Server{host: "127.0.0.1", dir: dir, open: open}
}

// Start binds an ephemeral port and begins serving in the background. The
// returned error reports a bind failure; serve errors after a successful
// bind are logged.
func (s *Server) Start(ctx context.Context) error {
	listener, err := (&net.ListenConfig{}).Listen(ctx, "tcp", net.JoinHostPort(s.host, "0"))
	if err != nil {
		return fmt.Errorf("bind dashboard listener: %w", err)
	}
	s.port = listener.Addr().(*net.TCPAddr).Port
	s.srv = &http.Server{
		Handler:      http.FileServer(http.Dir(s.dir)),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}
	go func() {
		if err := s.srv.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("dashboard server stopped", "error", err)
		}
	}()
	url := s.URL() + "/dashboard.html"
	slog.Info("dashboard served", "url", url)
	if s.open {
		if err := openURL(url); err != nil {
			slog.Warn("open dashboard in browser", "error", err)
		}
	}
	return nil
}

// URL returns the base address, valid once Start succeeded.
func (s *Server) URL() string {
	return fmt.Sprintf("http://%s:%d", s.host, s.port)
}

// Port returns the bound port, zero before Start.
func (s *Server) Port() int {
	return s.port
}

// Shutdown stops the server. Safe to call when Start never ran or failed.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.srv == nil {
		return nil
	}
	return s.srv.Shutdown(ctx)
}

func openURL(url string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	return cmd.Start()
}
