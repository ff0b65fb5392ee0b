package gateway

import (
	"context"
	"encoding/json"
	"io"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/tidwall/gjson"

	"github.com/eng-elias-owis/mcp-setup-guide/pkg/logger"
)

// ServerConfig controls the MCP server identity and the stdio worker pool.
type ServerConfig struct {
	Name      string
	Version   string
	Workers   int
	QueueSize int
}

func (c *ServerConfig) withDefaults() ServerConfig {
	out := ServerConfig{Name: "simple-http-server", Version: "1.0.0"}
	if c == nil {
		return out
	}
	if c.Name != "" {
		out.Name = c.Name
	}
	if c.Version != "" {
		out.Version = c.Version
	}
	out.Workers = c.Workers
	out.QueueSize = c.QueueSize
	return out
}

// NewMCPServer registers every catalog entry as an MCP tool backed by gw.
func NewMCPServer(gw *Gateway, cfg *ServerConfig) *server.MCPServer {
	conf := cfg.withDefaults()
	hooks := &server.Hooks{}
	hooks.AddOnRequestInitialization(gw.rejectUnknownTool)
	mcpServer := server.NewMCPServer(
		conf.Name,
		conf.Version,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
		server.WithHooks(hooks),
	)
	for _, entry := range gw.catalog.Entries() {
		mcpServer.AddTool(entry.Tool, gw.handleToolCall)
	}
	return mcpServer
}

func (g *Gateway) handleToolCall(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return g.Invoke(ctx, request.Params.Name, request.GetArguments())
}

// rejectUnknownTool answers tools/call requests for names outside the
// catalog with "Unknown tool: <name>" before mcp-go looks the tool up.
func (g *Gateway) rejectUnknownTool(_ context.Context, _ any, message any) error {
	var raw []byte
	switch m := message.(type) {
	case json.RawMessage:
		raw = m
	case []byte:
		raw = m
	default:
		return nil
	}
	if gjson.GetBytes(raw, "method").String() != string(mcp.MethodToolsCall) {
		return nil
	}
	_, err := g.catalog.Resolve(gjson.GetBytes(raw, "params.name").String())
	return err
}

// Serve attaches mcpServer to the given stdio streams and blocks until input
// ends or ctx is cancelled.
func Serve(ctx context.Context, mcpServer *server.MCPServer, cfg *ServerConfig, stdin io.Reader, stdout io.Writer) error {
	conf := cfg.withDefaults()
	log := logger.FromContext(ctx)
	stdio := server.NewStdioServer(mcpServer)
	stdio.SetErrorLogger(logger.StandardLog(log, logger.ErrorLevel))
	stdio.SetContextFunc(func(ctx context.Context) context.Context {
		return logger.ContextWithLogger(ctx, log)
	})
	opts := []server.StdioOption{
		server.WithWorkerPoolSize(conf.Workers),
		server.WithQueueSize(conf.QueueSize),
	}
	for _, opt := range opts {
		opt(stdio)
	}
	log.Info("Serving MCP over stdio", "server", conf.Name, "version", conf.Version)
	return stdio.Listen(ctx, stdin, stdout)
}
