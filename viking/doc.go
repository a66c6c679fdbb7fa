// Package viking implements the OpenViking HTTP client together with the
// lazy, retry-backed connection facade and the result rendering helpers the
// MCP tool surface is built on.
package viking
