package oura

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/garrettladley/thoura/internal/validator"
	"github.com/garrettladley/thoura/internal/xhttp"
	"github.com/garrettladley/thoura/internal/xslog"
	go_json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"golang.org/x/oauth2"
)

const DefaultBaseURL = "https://api.ouraring.com/v1"

// Client is safe for concurrent use. Its configuration is fixed at construction.
type Client struct {
	Sleep     SleepService
	Activity  ActivityService
	Readiness ReadinessService

	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
	now        func() time.Time
}

// New returns a client authenticating with a personal access token. The token
// is not checked until the first request.
func New(accessToken string, opts ...Option) *Client {
	cfg := &clientConfig{
		baseURL:     DefaultBaseURL,
		tokenSource: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken}),
		logger:      slog.Default(),
		now:         time.Now,
		base:        xhttp.NewTransport(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	transport := &ouraTransport{
		base:        cfg.base,
		tokenSource: cfg.tokenSource,
	}

	c := &Client{
		baseURL: strings.TrimRight(cfg.baseURL, "/"),
		httpClient: xhttp.NewHTTPClient(
			xhttp.WithTransport(transport),
			xhttp.WithTimeout(cfg.timeout),
		),
		logger: cfg.logger,
		now:    cfg.now,
	}

	c.Sleep = &sleepService{client: c}
	c.Activity = &activityService{client: c}
	c.Readiness = &readinessService{client: c}

	return c
}

type clientConfig struct {
	baseURL     string
	tokenSource oauth2.TokenSource
	logger      *slog.Logger
	timeout     time.Duration
	now         func() time.Time
	base        http.RoundTripper
}

type Option func(*clientConfig)

func WithBaseURL(baseURL string) Option {
	return func(cfg *clientConfig) { cfg.baseURL = baseURL }
}

func WithLogger(logger *slog.Logger) Option {
	return func(cfg *clientConfig) { cfg.logger = logger }
}

// WithTimeout bounds each request, including reading the body. Zero means no timeout.
func WithTimeout(d time.Duration) Option {
	return func(cfg *clientConfig) { cfg.timeout = d }
}

// WithClock sets the clock used to compute the default date window.
func WithClock(now func() time.Time) Option {
	return func(cfg *clientConfig) { cfg.now = now }
}

// WithTokenSource replaces the static access token.
func WithTokenSource(ts oauth2.TokenSource) Option {
	return func(cfg *clientConfig) { cfg.tokenSource = ts }
}

// WithHTTPTransport replaces the round tripper beneath the token transport.
func WithHTTPTransport(rt http.RoundTripper) Option {
	return func(cfg *clientConfig) { cfg.base = rt }
}

// get performs a GET and returns the body of a 200 response. Any other status
// is returned as an *APIError.
func (c *Client) get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, &TransportError{Err: fmt.Errorf("creating request: %w", err)}
	}

	requestID := uuid.NewString()
	xhttp.SetRequestHeaderRequestID(req, requestID)

	logger := c.logger.With(xslog.Path(path), xslog.RequestID(requestID))

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.WarnContext(ctx, "oura request failed", xslog.Duration(time.Since(start)), xslog.Error(err))

		var authErr *AuthError
		if errors.As(err, &authErr) {
			return nil, authErr
		}
		return nil, &TransportError{Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	logger.DebugContext(ctx, "oura request",
		xslog.HTTPStatus(resp.StatusCode),
		xslog.Duration(time.Since(start)),
	)

	if resp.StatusCode != http.StatusOK {
		apiErr := parseAPIError(resp)
		logger.WarnContext(ctx, "oura request rejected",
			xslog.HTTPStatus(apiErr.StatusCode),
			xslog.Error(apiErr),
		)
		return nil, apiErr
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Err: fmt.Errorf("reading response: %w", err)}
	}
	return body, nil
}

// list fetches route and unwraps the array held under field. A status failure
// yields an empty slice alongside the *APIError; every other failure yields nil.
func list[T validator.Validator](ctx context.Context, c *Client, route string, field string, params *ListParams) ([]T, error) {
	query := params.values(c.now())

	body, err := c.get(ctx, route, query)
	if err != nil {
		if IsHTTPError(err) {
			return []T{}, err
		}
		return nil, err
	}

	records, err := decodeEnvelope[T](body, field)
	if err != nil {
		return nil, err
	}

	for i, r := range records {
		if err := validator.Validate(r); err != nil {
			c.logger.WarnContext(ctx, "oura record failed validation",
				xslog.Resource(field),
				slog.Int("index", i),
				xslog.Error(err),
			)
		}
	}

	c.logger.DebugContext(ctx, "oura records decoded",
		xslog.Resource(field),
		xslog.Start(query.Get("start")),
		xslog.End(query.Get("end")),
		xslog.Count(len(records)),
	)

	return records, nil
}

func decodeEnvelope[T any](body []byte, field string) ([]T, error) {
	var envelope map[string]go_json.RawMessage
	if err := go_json.Unmarshal(body, &envelope); err != nil {
		return nil, &DecodeError{Err: fmt.Errorf("decoding envelope: %w", err), Body: body}
	}

	raw, ok := envelope[field]
	if !ok || isNull(raw) {
		return nil, &DecodeError{Err: fmt.Errorf("envelope has no %q array", field), Body: body}
	}

	var records []T
	if err := go_json.Unmarshal(raw, &records); err != nil {
		return nil, &DecodeError{Err: fmt.Errorf("decoding %s: %w", field, err), Body: body}
	}
	if records == nil {
		records = []T{}
	}
	return records, nil
}

func isNull(raw go_json.RawMessage) bool {
	return len(raw) == 0 || string(raw) == "null"
}

type ouraTransport struct {
	base        http.RoundTripper
	tokenSource oauth2.TokenSource
}

var _ http.RoundTripper = (*ouraTransport)(nil)

func (t *ouraTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	token, err := t.tokenSource.Token()
	if err != nil {
		return nil, &AuthError{Err: fmt.Errorf("getting token: %w", err)}
	}

	req = req.Clone(req.Context())
	q := req.URL.Query()
	q.Set("access_token", token.AccessToken)
	req.URL.RawQuery = q.Encode()
	xhttp.SetRequestHeaderAcceptJSON(req)

	resp, err := t.base.RoundTrip(req)
	if err != nil {
		return nil, fmt.Errorf("round trip: %w", err)
	}
	return resp, nil
}
