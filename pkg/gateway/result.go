package gateway

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/tidwall/pretty"

	"github.com/eng-elias-owis/mcp-setup-guide/pkg/transport"
)

var headerPrettyOptions = &pretty.Options{Width: 80, Prefix: "", Indent: "  ", SortKeys: true}

// FormatResponse renders the text block returned for a completed call.
func FormatResponse(resp *transport.Response) (string, error) {
	headers, err := renderHeaders(resp.Header)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Status: %d %s\n\nHeaders:\n%s\n\nBody:\n%s",
		resp.StatusCode, resp.StatusText(), headers, resp.Body), nil
}

// renderHeaders prints the headers as an indented JSON object with
// lower-cased names and repeated values joined by ", ".
func renderHeaders(header http.Header) (string, error) {
	flat := make(map[string]string, len(header))
	for key, values := range header {
		name := strings.ToLower(key)
		if prev, ok := flat[name]; ok {
			values = append([]string{prev}, values...)
		}
		flat[name] = strings.Join(values, ", ")
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(flat); err != nil {
		return "", fmt.Errorf("failed to encode headers: %w", err)
	}
	out := pretty.PrettyOptions(buf.Bytes(), headerPrettyOptions)
	return strings.TrimRight(string(out), "\n"), nil
}

// ErrorResult wraps an invocation failure as a tool result with isError set.
func ErrorResult(err error) *mcp.CallToolResult {
	return mcp.NewToolResultError("Error: " + err.Error())
}

// ResultText returns the text of the first text content block.
func ResultText(result *mcp.CallToolResult) string {
	if result == nil {
		return ""
	}
	for _, content := range result.Content {
		if text, ok := mcp.AsTextContent(content); ok {
			return text.Text
		}
	}
	return ""
}
