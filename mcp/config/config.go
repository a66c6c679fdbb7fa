package config

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/viant/afs"
	"gopkg.in/yaml.v3"

	mcp "github.com/viant/mcp"
)

// Credentials holds the validated secret loaded from credentials.yml.
type Credentials struct {
	APIKey string `yaml:"api_key" json:"api_key"`
}

// credentialsFile mirrors the on-disk layout; the secret lives under an
// openviking wrapper key.
type credentialsFile struct {
	OpenViking *Credentials `yaml:"openviking" json:"openviking"`
}

// Runtime mirrors the record the stack launcher writes to
// ~/.openviking/runtime.json.
type Runtime struct {
	OpenVikingURL  string `json:"openviking_url" yaml:"openviking_url"`
	EmbeddingURL   string `json:"embedding_url" yaml:"embedding_url"`
	OpenVikingPort int    `json:"openviking_port" yaml:"openviking_port"`
	EmbeddingPort  int    `json:"embedding_port" yaml:"embedding_port"`
}

// Dashboard configures the auxiliary static endpoint.
type Dashboard struct {
	Dir      string `yaml:"dir,omitempty" json:"dir,omitempty"`
	Open     *bool  `yaml:"open,omitempty" json:"open,omitempty"`
	Disabled bool   `yaml:"disabled,omitempty" json:"disabled,omitempty"`
}

// Log configures logging destinations. Stderr is always on so stdout stays
// reserved for the MCP transport.
type Log struct {
	File string `yaml:"file,omitempty" json:"file,omitempty"`
}

// Config is the service configuration loaded from the -f/--config file.
type Config struct {
	Server      *mcp.ServerOptions `yaml:"server,omitempty" json:"server,omitempty"`
	URL         string             `yaml:"url,omitempty" json:"url,omitempty"`
	Credentials string             `yaml:"credentials,omitempty" json:"credentials,omitempty"`
	Runtime     string             `yaml:"runtime,omitempty" json:"runtime,omitempty"`
	Project     string             `yaml:"project,omitempty" json:"project,omitempty"`
	Tools       []string           `yaml:"tools,omitempty" json:"tools,omitempty"`
	Dashboard   *Dashboard         `yaml:"dashboard,omitempty" json:"dashboard,omitempty"`
	Log         *Log               `yaml:"log,omitempty" json:"log,omitempty"`
}

// Load reads and parses a configuration file.
func Load(ctx context.Context, URL string) (*Config, error) {
	fs := afs.New()
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", URL, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %q: %w", URL, err)
	}
	return &cfg, nil
}

// Init applies defaults for unset fields.
func (c *Config) Init() {
	if c.Credentials == "" {
		c.Credentials = "credentials.yml"
	}
	if c.Runtime == "" {
		if home, err := os.UserHomeDir(); err == nil {
			c.Runtime = filepath.Join(home, ".openviking", "runtime.json")
		}
	}
	if c.Project == "" {
		c.Project = os.Getenv("KARVE_PROJECT")
	}
	if len(c.Tools) == 0 {
		c.Tools = []string{"*"}
	}
	if c.Dashboard == nil {
		c.Dashboard = &Dashboard{}
	}
	if c.Dashboard.Dir == "" {
		c.Dashboard.Dir = "."
	}
}

// Validate reports configuration errors that abort startup.
func (c *Config) Validate() error {
	if c.Credentials == "" {
		return fmt.Errorf("credentials path is empty")
	}
	return nil
}

// LoadCredentials reads and validates credentials.yml. A missing or
// incomplete file is a fatal startup condition.
func LoadCredentials(ctx context.Context, URL string) (*Credentials, error) {
	fs := afs.New()
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("credentials not found at %q, copy credentials.yml.dist and fill in values: %w", URL, err)
	}
	var file credentialsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse credentials %q: %w", URL, err)
	}
	if file.OpenViking == nil || strings.TrimSpace(file.OpenViking.APIKey) == "" {
		return nil, fmt.Errorf("credentials %q: openviking.api_key is required", URL)
	}
	return file.OpenViking, nil
}

// LoadRuntime reads the runtime record announced by the stack launcher. An
// absent file yields (nil, nil); a present but malformed or incomplete
// record is an error.
func LoadRuntime(ctx context.Context, URL string) (*Runtime, error) {
	fs := afs.New()
	if ok, _ := fs.Exists(ctx, URL); !ok {
		return nil, nil
	}
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to read runtime file %q: %w", URL, err)
	}
	var record Runtime
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("failed to parse runtime file %q: %w", URL, err)
	}
	if err := record.Validate(); err != nil {
		return nil, fmt.Errorf("runtime file %q: %w", URL, err)
	}
	return &record, nil
}

// Validate checks that every field the launcher writes is present.
func (r *Runtime) Validate() error {
	switch {
	case r.OpenVikingURL == "":
		return fmt.Errorf("openviking_url is required")
	case r.EmbeddingURL == "":
		return fmt.Errorf("embedding_url is required")
	case r.OpenVikingPort == 0:
		return fmt.Errorf("openviking_port is required")
	case r.EmbeddingPort == 0:
		return fmt.Errorf("embedding_port is required")
	}
	return nil
}
