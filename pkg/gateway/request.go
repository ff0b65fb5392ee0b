package gateway

import (
	"fmt"
	"net/http"
	"net/url"
	"slices"
	"strings"

	"github.com/eng-elias-owis/mcp-setup-guide/pkg/transport"
)

// Method is an HTTP verb accepted by the http_request tool.
type Method string

const (
	MethodGet    Method = http.MethodGet
	MethodPost   Method = http.MethodPost
	MethodPut    Method = http.MethodPut
	MethodDelete Method = http.MethodDelete
	MethodPatch  Method = http.MethodPatch
)

var methods = []Method{MethodGet, MethodPost, MethodPut, MethodDelete, MethodPatch}

// MethodNames lists the accepted verbs in schema order.
func MethodNames() []string {
	names := make([]string, len(methods))
	for i, m := range methods {
		names[i] = string(m)
	}
	return names
}

// ParseMethod accepts a verb in any case.
func ParseMethod(s string) (Method, error) {
	m := Method(strings.ToUpper(strings.TrimSpace(s)))
	if !slices.Contains(methods, m) {
		return "", fmt.Errorf("%w: unsupported method %q (expected one of %s)",
			ErrInvalidArguments, s, strings.Join(MethodNames(), ", "))
	}
	return m, nil
}

// AllowsBody reports whether a payload is sent with this verb.
func (m Method) AllowsBody() bool {
	return m == MethodPost || m == MethodPut || m == MethodPatch
}

// Request is a validated http_request invocation with all defaults applied.
type Request struct {
	Method  Method
	URL     string
	Headers map[string]string
	// Body is empty when the caller sent none.
	Body string
}

// ParseRequest validates raw tool arguments. Method defaults to GET and
// headers to an empty map.
func ParseRequest(args map[string]any) (*Request, error) {
	req := &Request{
		Method:  MethodGet,
		Headers: map[string]string{},
	}
	if raw, ok := args["method"]; ok && raw != nil {
		s, ok := raw.(string)
		if !ok {
			return nil, fmt.Errorf("%w: method must be a string", ErrInvalidArguments)
		}
		m, err := ParseMethod(s)
		if err != nil {
			return nil, err
		}
		req.Method = m
	}
	rawURL, _ := args["url"].(string)
	if strings.TrimSpace(rawURL) == "" {
		return nil, fmt.Errorf("%w: url is required", ErrInvalidArguments)
	}
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid url: %w", ErrInvalidArguments, err)
	}
	if !parsed.IsAbs() || parsed.Host == "" {
		return nil, fmt.Errorf("%w: url must be absolute, got %q", ErrInvalidArguments, rawURL)
	}
	req.URL = rawURL
	if raw, ok := args["headers"]; ok && raw != nil {
		headers, ok := raw.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: headers must be an object", ErrInvalidArguments)
		}
		for key, value := range headers {
			s, ok := value.(string)
			if !ok {
				return nil, fmt.Errorf("%w: header %q must be a string", ErrInvalidArguments, key)
			}
			req.Headers[key] = s
		}
	}
	if raw, ok := args["body"]; ok && raw != nil {
		body, ok := raw.(string)
		if !ok {
			return nil, fmt.Errorf("%w: body must be a string", ErrInvalidArguments)
		}
		req.Body = body
	}
	return req, nil
}

// Call builds the outbound call. Caller headers override the user agent
// case-insensitively; the body travels only with POST, PUT and PATCH and
// defaults its content type to application/json.
func (r *Request) Call(userAgent string) *transport.Call {
	header := http.Header{}
	header.Set("User-Agent", userAgent)
	keys := make([]string, 0, len(r.Headers))
	for key := range r.Headers {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	for _, key := range keys {
		header.Set(key, r.Headers[key])
	}
	call := &transport.Call{
		Method: string(r.Method),
		URL:    r.URL,
		Header: header,
	}
	if r.Body != "" && r.Method.AllowsBody() {
		body := r.Body
		call.Body = &body
		if header.Get("Content-Type") == "" {
			header.Set("Content-Type", "application/json")
		}
	}
	return call
}
