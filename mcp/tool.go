package mcp

import (
	"context"
	"errors"
	"fmt"

	"github.com/karve/viking-mcp/internal/conv"
	"github.com/karve/viking-mcp/mcp/matcher"
	"github.com/karve/viking-mcp/mcp/tool"
	mcpschema "github.com/viant/mcp-protocol/schema"
	serverproto "github.com/viant/mcp-protocol/server"
)

// Tools returns every registered tool as a protocol-level entry, in
// registration order.
func (s *Service) Tools() serverproto.Tools {
	entries := s.tools.List()
	result := make(serverproto.Tools, 0, len(entries))
	for _, entry := range entries {
		result = append(result, entry.proto())
	}
	return result
}

// proto converts the internal entry into its protocol representation.
func (e *toolEntry) proto() *serverproto.ToolEntry {
	description := e.description
	return &serverproto.ToolEntry{
		Metadata: mcpschema.Tool{
			Name:        e.name,
			Description: &description,
			InputSchema: e.inputSchema,
		},
		Handler: e.handler,
	}
}

// LookupTool resolves one tool by its canonical name or an accepted alias.
func (s *Service) LookupTool(name string) (*serverproto.ToolEntry, error) {
	entry, ok := s.tools.Get(tool.Canonical(name).String())
	if !ok {
		return nil, fmt.Errorf("unknown tool: %v", name)
	}
	return entry.proto(), nil
}

// MatchTools returns entries whose name satisfies the pattern, in
// registration order.
func (s *Service) MatchTools(pattern string) serverproto.Tools {
	var result serverproto.Tools
	for _, entry := range s.tools.List() {
		if !matcher.Match(pattern, entry.name) {
			continue
		}
		result = append(result, entry.proto())
	}
	return result
}

// ExecuteTool invokes a registered tool in-process with the supplied
// arguments and returns its textual output. Error results surface as errors.
func (s *Service) ExecuteTool(ctx context.Context, name string, args map[string]interface{}) (string, error) {
	canonical := tool.Canonical(name).String()
	entry, ok := s.tools.Get(canonical)
	if !ok {
		return "", fmt.Errorf("unknown tool: %v", name)
	}
	request := &mcpschema.CallToolRequest{
		Params: mcpschema.CallToolRequestParams{
			Name:      canonical,
			Arguments: mcpschema.CallToolRequestParamsArguments(args),
		},
	}
	res, jerr := entry.handler(ctx, request)
	if jerr != nil {
		return "", errors.New(jerr.Message)
	}
	var text string
	if len(res.Content) > 0 {
		text = res.Content[0].Text
	}
	if conv.Dereference[bool](res.IsError) {
		return "", errors.New(text)
	}
	return text, nil
}
