package mcp

import (
	"context"

	"github.com/karve/viking-mcp/internal/conv"
	"github.com/karve/viking-mcp/mcp/matcher"
	"github.com/viant/jsonrpc"
	mcpschema "github.com/viant/mcp-protocol/schema"
)

// toolEntry holds metadata and the execution handler for one registered
// viking tool.
type toolEntry struct {
	name        string
	description string
	inputSchema mcpschema.ToolInputSchema
	handler     func(context.Context, *mcpschema.CallToolRequest) (*mcpschema.CallToolResult, *jsonrpc.Error)
}

// operation is a dispatch-surface function: raw arguments in, rendered text
// out. Remote faults are encoded in the returned string so the model can
// read them; the error is reserved for argument validation.
type operation func(ctx context.Context, args map[string]interface{}) (string, error)

// builtinTools lists the fixed viking tool set in presentation order. The
// configured tool patterns select which of them get registered.
func (s *Service) builtinTools() []toolEntry {
	return []toolEntry{
		{
			name:        "viking_search",
			description: "Search OpenViking memories, resources and skills by semantic similarity. Returns ranked URIs with content previews.",
			inputSchema: searchSchema(),
			handler:     s.textHandler(s.vikingSearch),
		},
		{
			name:        "viking_deep_search",
			description: "Intent-aware search with query expansion. Slower than viking_search but recalls more, reporting the expanded query plan.",
			inputSchema: searchSchema(),
			handler:     s.textHandler(s.vikingDeepSearch),
		},
		{
			name:        "viking_read",
			description: "Read a viking:// URI at a chosen depth: abstract (terse), overview (expanded) or full (complete content).",
			inputSchema: readSchema(),
			handler:     s.textHandler(s.vikingRead),
		},
		{
			name:        "viking_list",
			description: "List the children of a viking:// directory URI.",
			inputSchema: listSchema(),
			handler:     s.textHandler(s.vikingList),
		},
		{
			name:        "viking_remember",
			description: "Store a note in OpenViking under a category (memory, preference, decision, ...) so later searches can recall it.",
			inputSchema: rememberSchema(),
			handler:     s.textHandler(s.vikingRemember),
		},
		{
			name:        "viking_status",
			description: "Check OpenViking reachability and report its health status.",
			inputSchema: statusSchema(),
			handler:     s.textHandler(s.vikingStatus),
		},
	}
}

// buildToolRegistry registers every built-in tool selected by the configured
// patterns, keeping the fixed registration order.
func (s *Service) buildToolRegistry() {
	for _, entry := range s.builtinTools() {
		if !matcher.MatchAny(s.config.Tools, entry.name) {
			continue
		}
		registered := entry
		s.tools.Set(registered.name, &registered)
	}
}

// textHandler adapts an operation to the MCP tool handler contract.
// Operation output becomes a text result; validation failures become error
// results without reaching the remote side.
func (s *Service) textHandler(op operation) func(context.Context, *mcpschema.CallToolRequest) (*mcpschema.CallToolResult, *jsonrpc.Error) {
	return func(ctx context.Context, req *mcpschema.CallToolRequest) (*mcpschema.CallToolResult, *jsonrpc.Error) {
		args := map[string]interface{}(req.Params.Arguments)
		res := &mcpschema.CallToolResult{}
		out, err := op(ctx, args)
		if err != nil {
			res.IsError = conv.Pointer[bool](true)
			res.Content = append(res.Content, mcpschema.CallToolResultContentElem{Type: "text", Text: err.Error()})
			return res, nil
		}
		res.Content = append(res.Content, mcpschema.CallToolResultContentElem{Type: "text", Text: out})
		return res, nil
	}
}

func searchSchema() mcpschema.ToolInputSchema {
	return mcpschema.ToolInputSchema{
		Type: "object",
		Properties: map[string]map[string]interface{}{
			"query": {
				"type":        "string",
				"description": "What to search for.",
			},
			"uri": {
				"type":        "string",
				"description": "Scope to search under. Defaults to the project scope when one is configured, otherwise the whole viking:// namespace.",
			},
			"limit": {
				"type":        "integer",
				"description": "Maximum results per category.",
				"default":     defaultSearchLimit,
			},
		},
		Required: []string{"query"},
	}
}

func readSchema() mcpschema.ToolInputSchema {
	return mcpschema.ToolInputSchema{
		Type: "object",
		Properties: map[string]map[string]interface{}{
			"uri": {
				"type":        "string",
				"description": "The viking:// URI to read.",
			},
			"depth": {
				"type":        "string",
				"enum":        []interface{}{"abstract", "overview", "full"},
				"default":     depthOverview,
				"description": "Content verbosity: abstract is terse, overview expanded, full complete.",
			},
		},
		Required: []string{"uri"},
	}
}

func listSchema() mcpschema.ToolInputSchema {
	return mcpschema.ToolInputSchema{
		Type: "object",
		Properties: map[string]map[string]interface{}{
			"uri": {
				"type":        "string",
				"description": "Directory URI to list. Defaults to the project scope when one is configured.",
			},
		},
	}
}

func rememberSchema() mcpschema.ToolInputSchema {
	return mcpschema.ToolInputSchema{
		Type: "object",
		Properties: map[string]map[string]interface{}{
			"text": {
				"type":        "string",
				"description": "The note to store.",
			},
			"category": {
				"type":        "string",
				"description": "Storage category, e.g. memory, preference, decision.",
				"default":     "memory",
			},
			"name": {
				"type":        "string",
				"description": "Optional filename stem for the stored note.",
			},
		},
		Required: []string{"text"},
	}
}

func statusSchema() mcpschema.ToolInputSchema {
	return mcpschema.ToolInputSchema{
		Type:       "object",
		Properties: map[string]map[string]interface{}{},
	}
}
