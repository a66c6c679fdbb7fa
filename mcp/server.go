package mcp

import (
	"context"

	"github.com/viant/jsonrpc/transport"
	protocolclient "github.com/viant/mcp-protocol/client"
	"github.com/viant/mcp-protocol/logger"
	serverproto "github.com/viant/mcp-protocol/server"
)

// NewHandler returns a server implementer exposing the already-built viking
// tool registry. Every incoming connection reuses the same entries; tools
// are registered once during Service bootstrap rather than per connection.
func (s *Service) NewHandler(ctx context.Context, notifier transport.Notifier, l logger.Logger, cli protocolclient.Operations) (serverproto.Handler, error) {
	impl := serverproto.NewDefaultHandler(notifier, l, cli)
	for _, entry := range s.Tools() {
		impl.Registry.ToolRegistry.Put(entry.Metadata.Name, entry)
	}
	return impl, nil
}
