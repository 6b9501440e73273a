// Package mapapi is the typed REST client for the district and player-note
// endpoints consumed by the map widget.
package mapapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/louisbranch/citymap/internal/platform/requestctx"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/louisbranch/citymap/internal/mapapi"

// RequestIDHeader correlates widget requests with backend logs. A request id
// stored with requestctx.WithRequestID wins over a generated one.
const RequestIDHeader = "X-Request-ID"

// Client calls the map REST API.
type Client struct {
	baseURL string
	http    *http.Client
	timeout time.Duration
	tracer  trace.Tracer
	newID   func() string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.http = client
		}
	}
}

// WithTimeout bounds every request. Zero disables the bound.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

// WithTracerProvider overrides the global tracer provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(c *Client) {
		if tp != nil {
			c.tracer = tp.Tracer(instrumentationName)
		}
	}
}

// New builds a client rooted at baseURL. An empty baseURL issues
// origin-relative requests, which is what the browser build wants.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		http:    http.DefaultClient,
		tracer:  otel.Tracer(instrumentationName),
		newID:   uuid.NewString,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

type response struct {
	status int
	body   []byte
}

func (r response) ok() bool {
	return r.status >= 200 && r.status < 300
}

func (r response) empty() bool {
	return len(bytes.TrimSpace(r.body)) == 0
}

type errorEnvelope struct {
	Error string `json:"error"`
}

// send performs one request. Only transport failures are returned as errors;
// status handling belongs to the caller.
func (c *Client) send(ctx context.Context, op string, method string, path string, payload any) (response, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	ctx, span := c.tracer.Start(ctx, "mapapi."+op, trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()
	span.SetAttributes(
		attribute.String("http.request.method", method),
		attribute.String("url.path", path),
	)

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return response{}, c.fail(span, &Error{Kind: KindTransport, Op: op, Cause: fmt.Errorf("encode request: %w", err)})
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return response{}, c.fail(span, &Error{Kind: KindTransport, Op: op, Cause: fmt.Errorf("build request: %w", err)})
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	requestID := requestctx.RequestIDFromContext(ctx)
	if requestID == "" {
		requestID = c.newID()
	}
	req.Header.Set(RequestIDHeader, requestID)
	span.SetAttributes(attribute.String("request.id", requestID))
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	resp, err := c.http.Do(req)
	if err != nil {
		return response{}, c.fail(span, &Error{Kind: KindTransport, Op: op, Cause: err})
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return response{}, c.fail(span, &Error{Kind: KindTransport, Op: op, Status: resp.StatusCode, Cause: fmt.Errorf("read response: %w", err)})
	}
	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))
	if resp.StatusCode >= 400 {
		span.SetStatus(codes.Error, resp.Status)
	}
	return response{status: resp.StatusCode, body: raw}, nil
}

func (c *Client) fail(span trace.Span, err *Error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, string(err.Kind))
	return err
}

// decode unmarshals a JSON body, reporting non-JSON bodies as transport
// failures.
func decode(op string, resp response, out any) error {
	if resp.empty() {
		return &Error{Kind: KindTransport, Op: op, Status: resp.status, Cause: fmt.Errorf("empty response body")}
	}
	if err := json.Unmarshal(resp.body, out); err != nil {
		return &Error{Kind: KindTransport, Op: op, Status: resp.status, Cause: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}

// rejected builds the failure for a non-2xx response, keeping any server
// error text.
func rejected(op string, resp response) error {
	kind := KindRejected
	if resp.status == http.StatusNotFound {
		kind = KindNotFound
	}
	var envelope errorEnvelope
	if !resp.empty() {
		_ = json.Unmarshal(resp.body, &envelope)
	}
	return &Error{Kind: kind, Op: op, Status: resp.status, Message: strings.TrimSpace(envelope.Error)}
}
