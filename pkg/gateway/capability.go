package gateway

import (
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// Capability enumerates the operations the gateway can dispatch. Adding a
// capability means adding a constant here, a descriptor in DefaultCatalog and
// a case in Gateway.dispatch.
type Capability int

const (
	CapabilityUnknown Capability = iota
	CapabilityHTTPRequest
)

const HTTPRequestToolName = "http_request"

var (
	ErrUnknownCapability = errors.New("unknown capability")
	ErrInvalidArguments  = errors.New("invalid arguments")
)

// UnknownCapabilityError is returned for tool names outside the catalog.
type UnknownCapabilityError struct {
	Name string
}

func (e *UnknownCapabilityError) Error() string {
	return fmt.Sprintf("Unknown tool: %s", e.Name)
}

func (e *UnknownCapabilityError) Is(target error) bool {
	return target == ErrUnknownCapability
}

func (c Capability) String() string {
	switch c {
	case CapabilityHTTPRequest:
		return HTTPRequestToolName
	default:
		return "unknown"
	}
}

// ParseCapability maps a tool name onto its Capability.
func ParseCapability(name string) (Capability, error) {
	switch name {
	case HTTPRequestToolName:
		return CapabilityHTTPRequest, nil
	default:
		return CapabilityUnknown, &UnknownCapabilityError{Name: name}
	}
}

// Entry pairs a capability with the descriptor advertised to hosts.
type Entry struct {
	Capability Capability
	Tool       mcp.Tool
}

// Catalog is the read-only capability table handed to a Gateway.
type Catalog struct {
	entries []Entry
}

// NewCatalog builds a catalog from entries. Duplicate or unknown
// capabilities are rejected.
func NewCatalog(entries ...Entry) (*Catalog, error) {
	seen := make(map[Capability]bool, len(entries))
	for _, entry := range entries {
		parsed, err := ParseCapability(entry.Tool.Name)
		if err != nil {
			return nil, err
		}
		if parsed != entry.Capability {
			return nil, fmt.Errorf("tool %q does not describe capability %s", entry.Tool.Name, entry.Capability)
		}
		if seen[entry.Capability] {
			return nil, fmt.Errorf("capability %s registered twice", entry.Capability)
		}
		seen[entry.Capability] = true
	}
	return &Catalog{entries: append([]Entry(nil), entries...)}, nil
}

// DefaultCatalog returns the catalog holding the http_request tool.
func DefaultCatalog() *Catalog {
	return &Catalog{entries: []Entry{{
		Capability: CapabilityHTTPRequest,
		Tool:       HTTPRequestTool(),
	}}}
}

// Entries returns a copy of the catalog entries.
func (c *Catalog) Entries() []Entry {
	return append([]Entry(nil), c.entries...)
}

// Tools returns the descriptors in catalog order.
func (c *Catalog) Tools() []mcp.Tool {
	tools := make([]mcp.Tool, 0, len(c.entries))
	for _, entry := range c.entries {
		tools = append(tools, entry.Tool)
	}
	return tools
}

// Resolve returns the capability registered under name.
func (c *Catalog) Resolve(name string) (Capability, error) {
	for _, entry := range c.entries {
		if entry.Tool.Name == name {
			return entry.Capability, nil
		}
	}
	return CapabilityUnknown, &UnknownCapabilityError{Name: name}
}

// HTTPRequestTool describes the http_request tool.
func HTTPRequestTool() mcp.Tool {
	return mcp.NewTool(HTTPRequestToolName,
		mcp.WithDescription("Make HTTP requests (GET, POST, PUT, DELETE, PATCH)"),
		mcp.WithString("method",
			mcp.Description("HTTP method"),
			mcp.Enum(MethodNames()...),
			mcp.DefaultString(string(MethodGet)),
		),
		mcp.WithString("url",
			mcp.Required(),
			mcp.Description("Full URL including protocol"),
		),
		mcp.WithObject("headers",
			mcp.Description("Request headers (optional)"),
			mcp.AdditionalProperties(map[string]any{"type": "string"}),
		),
		mcp.WithString("body",
			mcp.Description("Request body for POST/PUT/PATCH (optional)"),
		),
	)
}
