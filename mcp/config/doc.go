// Package config defines the YAML/JSON configuration model passed to the
// viking MCP service on startup, the credentials and runtime record loaders
// and the helpers to apply defaults and validate them.
package config
