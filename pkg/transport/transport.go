// Package transport performs the single outbound HTTP call behind each tool
// invocation.
package transport

import (
	"context"
	"net/http"
	"strconv"
	"strings"
)

// Call is one outbound HTTP request. Body is sent only when non-nil.
type Call struct {
	Method string
	URL    string
	Header http.Header
	Body   *string
}

// Response is the fully read result of a Call.
type Response struct {
	StatusCode int
	Status     string
	Header     http.Header
	Body       []byte
}

// StatusText returns the reason phrase the server sent, falling back to the
// standard text for the code.
func (r *Response) StatusText() string {
	code := strconv.Itoa(r.StatusCode)
	if text, ok := strings.CutPrefix(r.Status, code); ok {
		if text = strings.TrimSpace(text); text != "" {
			return text
		}
	}
	return http.StatusText(r.StatusCode)
}

// Client issues outbound calls.
type Client interface {
	Do(ctx context.Context, call *Call) (*Response, error)
}
