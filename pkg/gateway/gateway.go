// Package gateway exposes HTTP requests as an MCP tool: it advertises the
// capability catalog, validates invocation arguments, performs the outbound
// call and turns the outcome into a tool result.
package gateway

import (
	"context"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/eng-elias-owis/mcp-setup-guide/pkg/logger"
	"github.com/eng-elias-owis/mcp-setup-guide/pkg/transport"
)

const DefaultUserAgent = "Simple-HTTP-MCP/1.0"

// Gateway dispatches tool invocations. It holds no mutable state and is safe
// for concurrent use.
type Gateway struct {
	catalog   *Catalog
	client    transport.Client
	userAgent string
}

type Option func(*Gateway)

// WithUserAgent replaces the default User-Agent sent with every call.
func WithUserAgent(userAgent string) Option {
	return func(g *Gateway) {
		if userAgent != "" {
			g.userAgent = userAgent
		}
	}
}

// New creates a gateway over catalog. A nil catalog means DefaultCatalog.
func New(catalog *Catalog, client transport.Client, opts ...Option) *Gateway {
	if catalog == nil {
		catalog = DefaultCatalog()
	}
	g := &Gateway{
		catalog:   catalog,
		client:    client,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Catalog returns the capability table the gateway serves.
func (g *Gateway) Catalog() *Catalog {
	return g.catalog
}

// ListCapabilities returns the advertised tool descriptors.
func (g *Gateway) ListCapabilities() []mcp.Tool {
	return g.catalog.Tools()
}

// Invoke runs the named tool. Unknown names fail with an error matching
// ErrUnknownCapability; every failure of the call itself is reported inside
// the returned result.
func (g *Gateway) Invoke(ctx context.Context, name string, args map[string]any) (*mcp.CallToolResult, error) {
	capability, err := g.catalog.Resolve(name)
	if err != nil {
		return nil, err
	}
	return g.dispatch(ctx, capability, args)
}

func (g *Gateway) dispatch(ctx context.Context, capability Capability, args map[string]any) (*mcp.CallToolResult, error) {
	switch capability {
	case CapabilityHTTPRequest:
		return g.httpRequest(ctx, args), nil
	default:
		return nil, &UnknownCapabilityError{Name: capability.String()}
	}
}

func (g *Gateway) httpRequest(ctx context.Context, args map[string]any) *mcp.CallToolResult {
	log := logger.FromContext(ctx).With("tool", HTTPRequestToolName)
	req, err := ParseRequest(args)
	if err != nil {
		log.Warn("Rejected http_request arguments", "error", err)
		return ErrorResult(err)
	}
	if g.client == nil {
		return ErrorResult(fmt.Errorf("no HTTP client configured"))
	}
	call := req.Call(g.userAgent)
	log.Debug("Sending HTTP request", "method", call.Method, "url", call.URL, "with_body", call.Body != nil)
	start := time.Now()
	resp, err := g.client.Do(ctx, call)
	if err != nil {
		log.Warn("HTTP request failed", "method", call.Method, "url", call.URL, "error", err)
		return ErrorResult(err)
	}
	text, err := FormatResponse(resp)
	if err != nil {
		return ErrorResult(err)
	}
	log.Debug("HTTP request completed",
		"method", call.Method,
		"url", call.URL,
		"status", resp.StatusCode,
		"bytes", len(resp.Body),
		"duration", time.Since(start),
	)
	return mcp.NewToolResultText(text)
}
