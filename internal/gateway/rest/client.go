package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"shipping/internal/pkg/requestid"
	orderservice "shipping/internal/service/order"
	retrierconfig "shipping/pkg/retrier"
	"shipping/pkg/retrier/backoff_adapter"
)

const (
	serviceName = "order-api"

	maxErrorBody = 4 << 10
)

const (
	initialInterval = 100 * time.Millisecond
	maxInterval     = 2 * time.Second
	maxElapsedTime  = 5 * time.Second
	maxRetries      = 3
	randomization   = 0.5
	multiplier      = 2.0
)

// Client - JSON-транспорт к серверу заказов. GET-запросы повторяются при
// сетевых сбоях и ответах 429/502/503/504, остальные методы выполняются один раз.
type Client struct {
	baseURL *url.URL
	http    httpDoer
	tokens  TokenSource
	retrier retrier
}

type Option func(*Client)

func WithRetrier(r retrier) Option {
	return func(c *Client) {
		c.retrier = r
	}
}

// WithTokenSource включает заголовок Authorization во всех запросах.
func WithTokenSource(tokens TokenSource) Option {
	return func(c *Client) {
		c.tokens = tokens
	}
}

func NewClient(baseURL string, httpClient httpDoer, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse base url %q: %w", baseURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("base url %q must be absolute", baseURL)
	}

	c := &Client{
		baseURL: u,
		http:    httpClient,
		retrier: backoff_adapter.New(retrierconfig.Config{
			InitialInterval: initialInterval,
			MaxInterval:     maxInterval,
			MaxElapsedTime:  maxElapsedTime,
			MaxRetries:      maxRetries,
			Randomization:   randomization,
			Multiplier:      multiplier,
			ShouldRetry:     isRetryable,
		}),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Do выполняет запрос и декодирует ответ в out (если out не nil).
// operation - имя вызова для метрик.
func (c *Client) Do(ctx context.Context, operation, method, path string, body, out any) error {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
	}

	ctx, _ = requestid.Ensure(ctx)

	var attempt uint64
	call := func(ctx context.Context) error {
		attempt++
		return c.roundTrip(ctx, method, path, payload, out)
	}

	start := time.Now()

	var err error
	if method == http.MethodGet {
		err = c.retrier.ExecuteWithContext(ctx, call)
	} else {
		err = call(ctx)
	}

	code := responseCode(err)
	GatewayRequestDuration.WithLabelValues(serviceName, operation, code).Observe(time.Since(start).Seconds())
	if attempt > 1 {
		GatewayRetriesTotal.WithLabelValues(serviceName, operation, code).Inc()
	}

	return err
}

func (c *Client) roundTrip(ctx context.Context, method, path string, payload []byte, out any) error {
	req, err := c.newRequest(ctx, method, path, payload)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return &orderservice.TransportError{Method: method, Path: path, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return statusError(method, path, resp.StatusCode, raw)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return &orderservice.TransportError{Method: method, Path: path, StatusCode: resp.StatusCode, Err: errors.New("empty response body")}
		}
		return &orderservice.TransportError{Method: method, Path: path, StatusCode: resp.StatusCode, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}

func (c *Client) newRequest(ctx context.Context, method, path string, payload []byte) (*http.Request, error) {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL.String()+path, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if id, ok := requestid.FromContext(ctx); ok {
		req.Header.Set(requestid.Header, id)
	}

	if c.tokens != nil {
		token, err := c.tokens.Token(ctx)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", orderservice.ErrUnauthorized, err)
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return req, nil
}

func isRetryable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var te *orderservice.TransportError
	if !errors.As(err, &te) {
		return false
	}

	switch te.StatusCode {
	case http.StatusTooManyRequests,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	case 0:
		// нет ответа: сетевой сбой
		return true
	default:
		return false
	}
}

func responseCode(err error) string {
	if err == nil {
		return "OK"
	}

	var te *orderservice.TransportError
	if errors.As(err, &te) {
		if te.StatusCode == 0 {
			return "NETWORK"
		}
		return strconv.Itoa(te.StatusCode)
	}

	switch {
	case errors.Is(err, orderservice.ErrNotFound):
		return strconv.Itoa(http.StatusNotFound)
	case errors.Is(err, orderservice.ErrInvalidTransition):
		return strconv.Itoa(http.StatusConflict)
	case errors.Is(err, orderservice.ErrUnauthorized):
		return strconv.Itoa(http.StatusUnauthorized)
	case errors.Is(err, orderservice.ErrValidation):
		return strconv.Itoa(http.StatusBadRequest)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "CANCELLED"
	default:
		return "UNKNOWN"
	}
}
