package scoring

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/hassaan217/HeartGuard-AI/internal/form"
	"github.com/hassaan217/HeartGuard-AI/internal/prediction"
)

const maxResponseBytes = 1 << 20

// #region http-client
// HTTPClient posts predictions to <baseURL>/predict as JSON.
type HTTPClient struct {
	endpoint string
	timeout  time.Duration
	http     *http.Client
	logger   *zap.Logger
	now      func() time.Time
}

// NewHTTPClient creates a client for the service at baseURL. A zero timeout means DefaultTimeout.
func NewHTTPClient(baseURL string, timeout time.Duration, logger *zap.Logger) *HTTPClient {
	timeout = orDefault(timeout)
	return &HTTPClient{
		endpoint: strings.TrimRight(baseURL, "/") + "/predict",
		timeout:  timeout,
		http:     &http.Client{Timeout: timeout},
		logger:   orNop(logger).Named("scoring"),
		now:      time.Now,
	}
}

// Endpoint returns the full prediction URL.
func (c *HTTPClient) Endpoint() string {
	return c.endpoint
}

// Close releases idle connections.
func (c *HTTPClient) Close() error {
	c.http.CloseIdleConnections()
	return nil
}

// #endregion http-client

// #region predict
// Predict sends req and decodes the service's answer.
func (c *HTTPClient) Predict(ctx context.Context, req prediction.Request, snap form.Snapshot) (prediction.Result, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return prediction.Result{}, c.fail(KindRequestFailure, err)
	}
	if u, err := url.Parse(c.endpoint); err != nil {
		return prediction.Result{}, c.fail(KindRequestFailure, err)
	} else if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return prediction.Result{}, c.fail(KindRequestFailure, errors.New("endpoint must be an absolute http(s) URL"))
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return prediction.Result{}, c.fail(KindRequestFailure, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	c.logger.Debug("sending prediction request", zap.String("endpoint", c.endpoint), zap.ByteString("body", body))
	start := time.Now()

	resp, err := c.http.Do(httpReq)
	if err != nil {
		if isTimeout(err) {
			return prediction.Result{}, c.fail(KindTimeout, err)
		}
		return prediction.Result{}, c.fail(KindUnreachable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		if isTimeout(err) {
			return prediction.Result{}, c.fail(KindTimeout, err)
		}
		return prediction.Result{}, c.fail(KindUnreachable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		e := &Error{
			Kind:     KindServerError,
			Status:   strconv.Itoa(resp.StatusCode),
			Detail:   detailFrom(raw),
			Endpoint: c.endpoint,
		}
		c.logger.Warn("prediction rejected", zap.Int("status", resp.StatusCode), zap.String("detail", e.Detail))
		return prediction.Result{}, e
	}

	result, err := decodeResult(raw, snap, c.now())
	if err != nil {
		c.logger.Warn("undecodable prediction response", zap.Error(err))
		return prediction.Result{}, &Error{
			Kind:     KindServerError,
			Status:   strconv.Itoa(resp.StatusCode),
			Detail:   msgInvalidResponse,
			Endpoint: c.endpoint,
			Err:      err,
		}
	}

	c.logger.Info("prediction received",
		zap.String("id", result.ID),
		zap.String("prediction", result.Prediction),
		zap.String("risk_level", string(result.RiskLevel)),
		zap.Float64("probability", result.Probability),
		zap.Duration("latency", time.Since(start)))
	return result, nil
}

// #endregion predict

// #region helpers
func (c *HTTPClient) fail(kind Kind, err error) *Error {
	c.logger.Warn("prediction exchange failed", zap.String("kind", string(kind)), zap.Error(err))
	return &Error{Kind: kind, Endpoint: c.endpoint, Timeout: c.timeout, Err: err}
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}

// #endregion helpers
