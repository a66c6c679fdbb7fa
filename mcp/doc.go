// Package mcp wires the OpenViking retrieval client into the MCP protocol
// implementation.  Its central Service type loads configuration, prepares the
// lazy remote connection, registers the viking tool set and can expose it
// over an MCP server alongside the auxiliary dashboard endpoint.
package mcp
