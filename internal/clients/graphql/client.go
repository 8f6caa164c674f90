package graphql

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/tidwall/gjson"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/yungbote/mh1-bff/internal/observability"
	"github.com/yungbote/mh1-bff/internal/platform/logger"
)

// Operation is a named query document.
type Operation struct {
	Name  string
	Query string
}

// Client executes queries against the content-graph endpoint. Results are never
// cached; every call reaches the server.
type Client interface {
	Query(ctx context.Context, op Operation, vars map[string]any) (gjson.Result, error)
}

type Config struct {
	Endpoint string
	Token    string
	Timeout  time.Duration
}

type client struct {
	log        *logger.Logger
	endpoint   string
	token      string
	httpClient *http.Client
	metrics    *observability.Metrics
	tracer     trace.Tracer
}

type Option func(*client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

func WithMetrics(m *observability.Metrics) Option {
	return func(c *client) { c.metrics = m }
}

func NewClient(log *logger.Logger, cfg Config, opts ...Option) (Client, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}
	endpoint := strings.TrimSpace(cfg.Endpoint)
	if endpoint == "" {
		return nil, fmt.Errorf("missing CMS_GRAPHQL_URL")
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	c := &client{
		log:        log.With("service", "GraphQLClient"),
		endpoint:   endpoint,
		token:      strings.TrimSpace(cfg.Token),
		httpClient: &http.Client{Timeout: timeout},
		tracer:     observability.Tracer(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Error is a failed content-graph call. StatusCode is zero when the failure
// happened before a response was read.
type Error struct {
	Operation  string
	StatusCode int
	Err        error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("graphql query failed: %s: %v", e.Operation, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) HTTPStatusCode() int {
	if e == nil {
		return 0
	}
	return e.StatusCode
}

type httpError struct {
	StatusCode int
	Body       string
}

func (e *httpError) Error() string {
	return fmt.Sprintf("cms http %d: %s", e.StatusCode, e.Body)
}

type request struct {
	Query         string         `json:"query"`
	OperationName string         `json:"operationName,omitempty"`
	Variables     map[string]any `json:"variables"`
}

// Underline markup from the CMS rich-text editor is rewritten to the ++ marker
// the mobile client renders.
var markupReplacer = strings.NewReplacer("<u>", "++", "</u>", "++")

func (c *client) Query(ctx context.Context, op Operation, vars map[string]any) (gjson.Result, error) {
	start := time.Now()
	ctx, span := c.tracer.Start(ctx, "graphql.query", trace.WithAttributes(
		attribute.String("graphql.operation", op.Name),
	))
	defer span.End()

	data, status, err := c.do(ctx, op, vars)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		c.metrics.ObserveUpstream(op.Name, "error", time.Since(start))
		c.log.Warn("CMS query failed", "operation", op.Name, "status", status, "error", err)
		return gjson.Result{}, &Error{Operation: op.Name, StatusCode: status, Err: err}
	}
	c.metrics.ObserveUpstream(op.Name, "ok", time.Since(start))
	c.log.Debug("CMS query ok", "operation", op.Name, "duration_ms", time.Since(start).Milliseconds())
	return data, nil
}

func (c *client) do(ctx context.Context, op Operation, vars map[string]any) (gjson.Result, int, error) {
	if vars == nil {
		vars = map[string]any{}
	}
	body, err := json.Marshal(request{Query: op.Query, OperationName: op.Name, Variables: vars})
	if err != nil {
		return gjson.Result{}, 0, fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return gjson.Result{}, 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Cache-Control", "no-cache")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return gjson.Result{}, 0, err
	}
	raw, readErr := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if readErr != nil {
		return gjson.Result{}, resp.StatusCode, readErr
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return gjson.Result{}, resp.StatusCode, &httpError{StatusCode: resp.StatusCode, Body: truncate(string(raw), 512)}
	}

	text := markupReplacer.Replace(string(raw))
	if !gjson.Valid(text) {
		return gjson.Result{}, resp.StatusCode, fmt.Errorf("invalid JSON response")
	}
	doc := gjson.Parse(text)
	if errs := doc.Get("errors"); errs.IsArray() && len(errs.Array()) > 0 {
		msgs := make([]string, 0, len(errs.Array()))
		for _, e := range errs.Array() {
			msgs = append(msgs, e.Get("message").String())
		}
		return gjson.Result{}, resp.StatusCode, fmt.Errorf("graphql errors: %s", strings.Join(msgs, "; "))
	}
	data := doc.Get("data")
	if !data.Exists() || data.Type == gjson.Null {
		return gjson.Result{}, resp.StatusCode, fmt.Errorf("response has no data")
	}
	return data, resp.StatusCode, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
