package transport

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/eng-elias-owis/mcp-setup-guide/pkg/logger"
)

// Config holds outbound client options.
type Config struct {
	// Debug dumps every request and response through the logger.
	Debug bool
}

// RestyClient is the resty-backed Client. It sets no timeout, no retries and
// keeps the default redirect policy.
type RestyClient struct {
	client *resty.Client
}

// NewResty builds a client that shares one connection pool across calls.
func NewResty(cfg *Config, log logger.Logger) *RestyClient {
	if cfg == nil {
		cfg = &Config{}
	}
	if log == nil {
		log = logger.NewLogger(nil)
	}
	client := resty.New().
		SetCookieJar(nil).
		SetLogger(&restyLogger{log: log}).
		SetDebug(cfg.Debug)
	return &RestyClient{client: client}
}

// Do executes call and reads the whole response body.
func (c *RestyClient) Do(ctx context.Context, call *Call) (*Response, error) {
	if call == nil {
		return nil, fmt.Errorf("call is required")
	}
	req := c.client.R().SetContext(ctx)
	for key, values := range call.Header {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}
	if call.Body != nil {
		req.SetBody(*call.Body)
	}
	resp, err := req.Execute(strings.ToUpper(call.Method), call.URL)
	if err != nil {
		return nil, err
	}
	return &Response{
		StatusCode: resp.StatusCode(),
		Status:     resp.Status(),
		Header:     resp.Header().Clone(),
		Body:       resp.Body(),
	}, nil
}

// restyLogger routes resty's printf-style logging to the structured logger.
type restyLogger struct {
	log logger.Logger
}

func (l *restyLogger) Errorf(format string, v ...any) {
	l.log.Error(strings.TrimSpace(fmt.Sprintf(format, v...)), "component", "resty")
}

func (l *restyLogger) Warnf(format string, v ...any) {
	l.log.Warn(strings.TrimSpace(fmt.Sprintf(format, v...)), "component", "resty")
}

func (l *restyLogger) Debugf(format string, v ...any) {
	l.log.Debug(strings.TrimSpace(fmt.Sprintf(format, v...)), "component", "resty")
}
