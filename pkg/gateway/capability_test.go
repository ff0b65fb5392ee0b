package gateway

import (
	"errors"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCapability(t *testing.T) {
	t.Run("Should resolve http_request", func(t *testing.T) {
		c, err := ParseCapability("http_request")
		require.NoError(t, err)
		assert.Equal(t, CapabilityHTTPRequest, c)
		assert.Equal(t, "http_request", c.String())
	})

	t.Run("Should reject unknown names with the tool message", func(t *testing.T) {
		c, err := ParseCapability("nope")
		require.Error(t, err)
		assert.Equal(t, CapabilityUnknown, c)
		assert.Equal(t, "Unknown tool: nope", err.Error())
		assert.True(t, errors.Is(err, ErrUnknownCapability))
		var unknown *UnknownCapabilityError
		require.ErrorAs(t, err, &unknown)
		assert.Equal(t, "nope", unknown.Name)
	})
}

func TestCatalog(t *testing.T) {
	t.Run("Should hold exactly the http_request tool by default", func(t *testing.T) {
		tools := DefaultCatalog().Tools()
		require.Len(t, tools, 1)
		assert.Equal(t, HTTPRequestToolName, tools[0].Name)
	})

	t.Run("Should resolve registered names only", func(t *testing.T) {
		catalog := DefaultCatalog()
		c, err := catalog.Resolve("http_request")
		require.NoError(t, err)
		assert.Equal(t, CapabilityHTTPRequest, c)
		_, err = catalog.Resolve("HTTP_REQUEST")
		assert.ErrorIs(t, err, ErrUnknownCapability)
	})

	t.Run("Should reject duplicate entries", func(t *testing.T) {
		entry := Entry{Capability: CapabilityHTTPRequest, Tool: HTTPRequestTool()}
		_, err := NewCatalog(entry, entry)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "registered twice")
	})

	t.Run("Should reject tools without a capability", func(t *testing.T) {
		_, err := NewCatalog(Entry{Capability: CapabilityHTTPRequest, Tool: mcp.NewTool("other")})
		assert.ErrorIs(t, err, ErrUnknownCapability)
	})

	t.Run("Should reject mismatched capability and tool", func(t *testing.T) {
		_, err := NewCatalog(Entry{Capability: CapabilityUnknown, Tool: HTTPRequestTool()})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "does not describe")
	})

	t.Run("Should not expose internal storage", func(t *testing.T) {
		catalog := DefaultCatalog()
		entries := catalog.Entries()
		entries[0].Tool.Name = "mutated"
		assert.Equal(t, HTTPRequestToolName, catalog.Tools()[0].Name)
	})
}

func TestHTTPRequestTool(t *testing.T) {
	tool := HTTPRequestTool()

	t.Run("Should describe the tool", func(t *testing.T) {
		assert.Equal(t, "Make HTTP requests (GET, POST, PUT, DELETE, PATCH)", tool.Description)
		assert.Equal(t, "object", tool.InputSchema.Type)
		assert.Equal(t, []string{"url"}, tool.InputSchema.Required)
	})

	t.Run("Should default method to GET and enumerate verbs", func(t *testing.T) {
		method, ok := tool.InputSchema.Properties["method"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "GET", method["default"])
		assert.Equal(t, []string{"GET", "POST", "PUT", "DELETE", "PATCH"}, method["enum"])
	})

	t.Run("Should restrict header values to strings", func(t *testing.T) {
		headers, ok := tool.InputSchema.Properties["headers"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "object", headers["type"])
		assert.Equal(t, map[string]any{"type": "string"}, headers["additionalProperties"])
	})

	t.Run("Should expose body as an optional string", func(t *testing.T) {
		body, ok := tool.InputSchema.Properties["body"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "string", body["type"])
		assert.NotContains(t, tool.InputSchema.Required, "body")
	})
}
