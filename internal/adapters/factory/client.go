// Package factory is a small client for the Robocraft Factory (robot marketplace) REST API
package factory

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	perr "libfj/internal/platform/errors"
	"libfj/internal/platform/logger"
	"libfj/internal/platform/validate"
)

const (
	baseURLDefault = "https://factory.robocraftgame.com"
	defaultTimeout = 30 * time.Second
	defaultUA      = "libfj"
	defaultMaxBody = 8 << 20

	listPath = "/api/roboShopItems/list"
	getPath  = "/api/roboShopItems/get/"
)

// Options configures the Client
type Options struct {
	BaseURL   string        `json:"baseUrl" validate:"required,url"`
	UserAgent string        `json:"userAgent" validate:"required"`
	Timeout   time.Duration `json:"timeout" validate:"gt=0"`
	MaxBody   int64         `json:"maxBody" validate:"gt=0"`

	// Token is sent verbatim as a bearer token when set; nothing refreshes it
	Token string `json:"-"`

	// HTTPClient overrides the transport (tests); Timeout is ignored when set
	HTTPClient *http.Client `json:"-" validate:"-"`
}

// Client talks to one Factory endpoint. It is cheap to build and holds no caches
type Client struct {
	http *http.Client
	opts Options
	log  logger.Logger
	now  func() time.Time
}

// NewClient applies defaults, validates o and builds a Client
func NewClient(o Options) (*Client, error) {
	if o.BaseURL == "" {
		o.BaseURL = baseURLDefault
	}
	o.BaseURL = strings.TrimRight(o.BaseURL, "/")
	if o.UserAgent == "" {
		o.UserAgent = defaultUA
	}
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	if o.MaxBody <= 0 {
		o.MaxBody = defaultMaxBody
	}
	if err := validate.Struct(o); err != nil {
		return nil, perr.WithOp(err, "factory.NewClient")
	}
	hc := o.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: o.Timeout}
	}
	return &Client{
		http: hc,
		opts: o,
		log:  *logger.Named("factory"),
		now:  time.Now,
	}, nil
}

// BaseURL reports the endpoint the client talks to
func (c *Client) BaseURL() string { return c.opts.BaseURL }

// do issues one request and returns the raw body of a 2xx answer.
// There is no retry: a failure is reported to the caller as-is
func (c *Client) do(ctx context.Context, method, path string, body any) ([]byte, error) {
	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, perr.Wrap(err, perr.ErrorCodeJSON, "factory encode request")
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.opts.BaseURL+path, rdr)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUnknown, "factory new request failed")
	}
	req.Header.Set("User-Agent", c.opts.UserAgent)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.opts.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.opts.Token)
	}

	log := logger.C(ctx).With().Str("component", "factory").Logger()

	start := c.now()
	resp, err := c.http.Do(req)
	lat := c.now().Sub(start)
	if err != nil {
		log.Warn().Err(err).Str("method", method).Str("path", path).Dur("latency", lat).Msg("factory transport error")
		return nil, perr.Wrapf(err, perr.ErrorCodeUnavailable, "factory %s %s failed", method, path)
	}
	defer func() {
		if cerr := drainAndClose(resp.Body); cerr != nil {
			log.Error().Err(cerr).Str("path", path).Msg("factory close body failed")
		}
	}()

	log.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("latency", lat).
		Msg("factory http response")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		tail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		se := &StatusError{Status: resp.StatusCode, Body: strings.TrimSpace(string(tail))}
		return nil, perr.Wrapf(se, perr.CodeFromHTTPStatus(resp.StatusCode), "factory %s %s", method, path)
	}

	b, err := io.ReadAll(io.LimitReader(resp.Body, c.opts.MaxBody+1))
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUnavailable, "factory read body")
	}
	if int64(len(b)) > c.opts.MaxBody {
		return nil, perr.Decodef("factory response larger than %d bytes", c.opts.MaxBody)
	}
	return b, nil
}

// decodeEnvelope unwraps {"response": ..., "statusCode": ...}. The Factory may
// answer HTTP 200 while signalling a failure in statusCode
func decodeEnvelope[T any](b []byte) (T, error) {
	var env envelope[T]
	if err := json.Unmarshal(b, &env); err != nil {
		var zero T
		return zero, perr.Wrap(err, perr.ErrorCodeJSON, "factory decode response")
	}
	if env.StatusCode != 0 && (env.StatusCode < 200 || env.StatusCode > 299) {
		var zero T
		se := &StatusError{Status: env.StatusCode}
		return zero, perr.Wrapf(se, perr.CodeFromHTTPStatus(env.StatusCode), "factory reported status %d", env.StatusCode)
	}
	return env.Response, nil
}
