package legacy

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fieldops_completion/internal/infrastructure/config"
	"fieldops_completion/internal/infrastructure/metrics"

	"github.com/cenkalti/backoff/v4"
	json "github.com/goccy/go-json"
	"github.com/patrickmn/go-cache"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
)

var (
	ErrNotConfigured = errors.New("legacy client not configured")
	ErrBadEnvelope   = errors.New("legacy response is not a valid envelope")
)

// RemoteError is a well-formed legacy response whose code is not a success.
type RemoteError struct {
	Endpoint string
	Code     string
	Message  string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("%s: %s %s", e.Endpoint, e.Code, e.Message)
}

// StatusError is a non-2xx HTTP answer. 5xx is retried on reads.
type StatusError struct {
	Endpoint string
	Status   int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: http status %d", e.Endpoint, e.Status)
}

// envelope is the common legacy response body.
type envelope struct {
	Code    string          `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func (e envelope) ok() bool {
	switch e.Code {
	case "SUCCESS", "OK", "0", "0000":
		return true
	}
	return false
}

// Client talks to the legacy backend. Every endpoint is a JSON POST.
// Reads are retried with exponential backoff; mutating calls never are.
type Client struct {
	baseURL    string
	http       *fasthttp.Client
	timeout    time.Duration
	maxRetries int
	mockMode   bool
	codes      *cache.Cache
	codeGroup  string
	log        *zap.SugaredLogger
}

// NewClient builds the client. officeCodeGroup is the common-code group
// holding the certified service offices.
func NewClient(cfg config.LegacyConfig, officeCodeGroup string, log *zap.SugaredLogger) (*Client, error) {
	return newClient(cfg, officeCodeGroup, log, nil)
}

func newClient(cfg config.LegacyConfig, officeCodeGroup string, log *zap.SugaredLogger, dial fasthttp.DialFunc) (*Client, error) {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	ttl := cfg.CodeCacheTTL
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	c := &Client{
		baseURL:    cfg.BaseURL,
		timeout:    cfg.Timeout,
		maxRetries: cfg.MaxRetries,
		mockMode:   cfg.Mock,
		codes:      cache.New(ttl, 2*ttl),
		codeGroup:  officeCodeGroup,
		log:        log,
	}
	if c.timeout <= 0 {
		c.timeout = 10 * time.Second
	}

	if c.mockMode {
		log.Infow("[legacy][client] mock mode enabled")
		return c, nil
	}
	if c.baseURL == "" {
		log.Errorw("[legacy][client] missing LEGACY_API_BASE_URL")
		return nil, ErrNotConfigured
	}

	c.http = &fasthttp.Client{
		Name:                "fieldops-completion",
		ReadTimeout:         c.timeout,
		WriteTimeout:        c.timeout,
		MaxIdleConnDuration: time.Minute,
		Dial:                dial,
	}
	log.Infow("[legacy][client] initialized", "base_url", c.baseURL, "timeout", c.timeout, "max_retries", c.maxRetries)
	return c, nil
}

// read performs an idempotent call, retrying transport failures and 5xx.
func (c *Client) read(ctx context.Context, endpoint string, body any) (envelope, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return envelope{}, fmt.Errorf("%s: marshal: %w", endpoint, err)
	}

	var env envelope
	op := func() error {
		if err := ctx.Err(); err != nil {
			return backoff.Permanent(err)
		}
		var err error
		env, err = c.post(ctx, endpoint, payload)
		var se *StatusError
		if errors.As(err, &se) && se.Status < 500 {
			return backoff.Permanent(err)
		}
		if errors.Is(err, ErrBadEnvelope) {
			return backoff.Permanent(err)
		}
		return err
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 200 * time.Millisecond
	b.MaxInterval = 2 * time.Second
	policy := backoff.WithContext(backoff.WithMaxRetries(b, uint64(c.maxRetries)), ctx)

	err = backoff.RetryNotify(op, policy, func(err error, wait time.Duration) {
		c.log.Warnw("[legacy][client] read failed, retrying", "endpoint", endpoint, "wait", wait, "error", err)
	})
	return env, err
}

// write performs a mutating call exactly once.
func (c *Client) write(ctx context.Context, endpoint string, body any) (envelope, error) {
	if err := ctx.Err(); err != nil {
		return envelope{}, err
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return envelope{}, fmt.Errorf("%s: marshal: %w", endpoint, err)
	}
	return c.post(ctx, endpoint, payload)
}

func (c *Client) post(ctx context.Context, endpoint string, payload []byte) (envelope, error) {
	if c.mockMode {
		env := c.mockResponse(endpoint, payload)
		metrics.LegacyCalls.WithLabelValues(endpoint, "mock").Inc()
		c.log.Debugw("[legacy][client] mock call", "endpoint", endpoint, "code", env.Code)
		return env, nil
	}
	if c.http == nil {
		return envelope{}, ErrNotConfigured
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(c.baseURL + endpoint)
	req.Header.SetMethod(fasthttp.MethodPost)
	req.Header.SetContentType("application/json")
	req.SetBodyRaw(payload)

	timeout := c.timeout
	if dl, ok := ctx.Deadline(); ok {
		if d := time.Until(dl); d < timeout {
			timeout = d
		}
	}

	start := time.Now()
	if err := c.http.DoTimeout(req, resp, timeout); err != nil {
		metrics.LegacyCalls.WithLabelValues(endpoint, "transport_error").Inc()
		return envelope{}, fmt.Errorf("%s: %w", endpoint, err)
	}
	if status := resp.StatusCode(); status < 200 || status >= 300 {
		metrics.LegacyCalls.WithLabelValues(endpoint, "http_error").Inc()
		return envelope{}, &StatusError{Endpoint: endpoint, Status: status}
	}

	var env envelope
	if err := json.Unmarshal(resp.Body(), &env); err != nil {
		metrics.LegacyCalls.WithLabelValues(endpoint, "decode_error").Inc()
		return envelope{}, fmt.Errorf("%w: %s: %v", ErrBadEnvelope, endpoint, err)
	}
	result := "ok"
	if !env.ok() {
		result = "remote_error"
	}
	metrics.LegacyCalls.WithLabelValues(endpoint, result).Inc()
	c.log.Debugw("[legacy][client] call done", "endpoint", endpoint, "code", env.Code, "elapsed", time.Since(start))
	return env, nil
}

// decode unmarshals the data of a successful envelope into out. A non-success
// code becomes a *RemoteError.
func decode(endpoint string, env envelope, out any) error {
	if !env.ok() {
		return &RemoteError{Endpoint: endpoint, Code: env.Code, Message: env.Message}
	}
	if out == nil || len(env.Data) == 0 || string(env.Data) == "null" {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("%w: %s data: %v", ErrBadEnvelope, endpoint, err)
	}
	return nil
}

// cachedCodes serves a code list from the cache, loading it on a miss.
func (c *Client) cachedCodes(ctx context.Context, key string, load func(ctx context.Context) ([]string, error)) ([]string, error) {
	if v, ok := c.codes.Get(key); ok {
		return append([]string(nil), v.([]string)...), nil
	}
	list, err := load(ctx)
	if err != nil {
		return nil, err
	}
	c.codes.SetDefault(key, list)
	return append([]string(nil), list...), nil
}

