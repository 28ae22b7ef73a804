package ruter

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/transit-graph/internal/config"
	apperrors "github.com/transit-graph/internal/pkg/errors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// Params - query-параметры запроса к upstream; значения передаются как есть
type Params map[string]string

// Fetcher выполняет GET запрос и возвращает тело ответа, гарантированно валидный JSON.
type Fetcher interface {
	Fetch(ctx context.Context, rawURL string, params Params) ([]byte, error)
}

type httpFetcher struct {
	httpClient *http.Client
	userAgent  string
	logger     *zap.Logger
	tracer     trace.Tracer
}

// NewHTTPFetcher создает fetcher поверх net/http с OpenTelemetry инструментированием
func NewHTTPFetcher(cfg *config.UpstreamConfig, logger *zap.Logger) Fetcher {
	return &httpFetcher{
		httpClient: &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
			Timeout:   cfg.RequestTimeout,
		},
		userAgent: cfg.UserAgent,
		logger:    logger,
		tracer:    otel.Tracer("ruter-client"),
	}
}

func (f *httpFetcher) Fetch(ctx context.Context, rawURL string, params Params) ([]byte, error) {
	fullURL := buildURL(rawURL, params)

	ctx, span := f.tracer.Start(ctx, "ruter.fetch",
		trace.WithAttributes(
			attribute.String("http.url", fullURL),
			attribute.String("http.method", http.MethodGet),
		),
	)
	defer span.End()

	f.logger.Debug("Calling upstream API", zap.String("url", fullURL))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		span.RecordError(err)
		return nil, apperrors.UpstreamUnavailable(fullURL, 0, fmt.Errorf("failed to create request: %w", err))
	}
	req.Header.Set("Accept", "application/json")
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		f.logger.Error("Failed to execute request", zap.String("url", fullURL), zap.Error(err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "request failed")
		return nil, apperrors.UpstreamUnavailable(fullURL, 0, err)
	}
	defer resp.Body.Close()

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		f.logger.Error("Failed to read response body", zap.String("url", fullURL), zap.Error(err))
		span.RecordError(err)
		return nil, apperrors.UpstreamUnavailable(fullURL, resp.StatusCode, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		err := fmt.Errorf("status %d: %s", resp.StatusCode, truncate(body, 256))
		f.logger.Error("Upstream API returned error",
			zap.String("url", fullURL),
			zap.Int("status_code", resp.StatusCode))
		span.RecordError(err)
		span.SetStatus(codes.Error, "non-2xx status")
		return nil, apperrors.UpstreamUnavailable(fullURL, resp.StatusCode, err)
	}

	if !json.Valid(body) {
		err := fmt.Errorf("invalid JSON body: %s", truncate(body, 256))
		f.logger.Error("Upstream API returned malformed JSON", zap.String("url", fullURL))
		span.RecordError(err)
		span.SetStatus(codes.Error, "malformed response")
		return nil, apperrors.UpstreamMalformedResponse(fullURL, err)
	}

	span.SetAttributes(attribute.Int("response.size_bytes", len(body)))

	return body, nil
}

// buildURL appends params as an encoded query string, keys in sorted order.
func buildURL(rawURL string, params Params) string {
	if len(params) == 0 {
		return rawURL
	}

	values := url.Values{}
	for k, v := range params {
		values.Set(k, v)
	}
	return rawURL + "?" + values.Encode()
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
