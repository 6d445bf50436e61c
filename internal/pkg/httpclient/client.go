package httpclient

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"shipping/internal/pkg/config"
	"shipping/pkg/logger"
	retrierconfig "shipping/pkg/retrier"
	"shipping/pkg/retrier/backoff_adapter"
)

const (
	dialTimeout         = 5 * time.Second
	keepAlive           = 30 * time.Second
	idleConnTimeout     = 90 * time.Second
	tlsHandshakeTimeout = 5 * time.Second
	maxIdleConnsPerHost = 16

	initialInterval = 1 * time.Second
	maxInterval     = 30 * time.Second
	maxElapsedTime  = 2 * time.Minute
	randomization   = 0.5
	multiplier      = 2
)

// NewClient создает HTTP клиент сервера заказов и дожидается его доступности.
// Любой HTTP ответ считается признаком доступности, повторяются только сетевые ошибки.
func NewClient(ctx context.Context, log logger.Logger, cfg *config.OrderAPI) (*http.Client, error) {
	client := &http.Client{
		Timeout: cfg.Timeout,
		Transport: &http.Transport{
			Proxy: http.ProxyFromEnvironment,
			DialContext: (&net.Dialer{
				Timeout:   dialTimeout,
				KeepAlive: keepAlive,
			}).DialContext,
			MaxIdleConnsPerHost: maxIdleConnsPerHost,
			IdleConnTimeout:     idleConnTimeout,
			TLSHandshakeTimeout: tlsHandshakeTimeout,
		},
	}

	httpLog := log.With(
		logger.NewField("component", "order-api-client"),
		logger.NewField("base_url", cfg.BaseURL),
	)

	if err := ping(ctx, httpLog, client, cfg.BaseURL); err != nil {
		client.CloseIdleConnections()
		return nil, fmt.Errorf("order api connection: %w", err)
	}

	return client, nil
}

func ping(ctx context.Context, log logger.Logger, client *http.Client, baseURL string) error {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     nil, // все ошибки ретраим
	}

	retrier := backoff_adapter.New(retryConfig)

	probe, err := http.NewRequestWithContext(ctx, http.MethodHead, baseURL, http.NoBody)
	if err != nil {
		return fmt.Errorf("ping request: %w", err)
	}

	var attempt uint64
	err = retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		log.With(
			logger.NewField("attempt", attempt),
		).Info("attempting order api connection")

		resp, err := client.Do(probe.Clone(ctx))
		if err != nil {
			return err
		}
		_, _ = io.Copy(io.Discard, resp.Body)
		return resp.Body.Close()
	})
	if err != nil {
		log.With(
			logger.NewField("error", err),
			logger.NewField("attempts", attempt),
		).Error("order api connection failed after retries")
		return fmt.Errorf("failed to reach order api: %w", err)
	}

	log.With(
		logger.NewField("attempts", attempt),
	).Info("order api connection established")
	return nil
}
