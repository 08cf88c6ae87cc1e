package scoring

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/hassaan217/HeartGuard-AI/internal/form"
	"github.com/hassaan217/HeartGuard-AI/internal/prediction"
)

// DefaultTimeout bounds a single prediction exchange.
const DefaultTimeout = 10 * time.Second

// Supported transports.
const (
	TransportHTTP = "http"
	TransportGRPC = "grpc"
)

// #region client
// Client performs one prediction exchange per call. Implementations attach the
// result id, timestamp and a copy of snap before returning.
type Client interface {
	Predict(ctx context.Context, req prediction.Request, snap form.Snapshot) (prediction.Result, error)
	Close() error
}

// Options selects and configures a transport.
type Options struct {
	Transport string
	BaseURL   string // http
	GRPCAddr  string // grpc
	Timeout   time.Duration
	Logger    *zap.Logger
}

// New builds the client for opts.Transport.
func New(opts Options) (Client, error) {
	switch opts.Transport {
	case "", TransportHTTP:
		return NewHTTPClient(opts.BaseURL, opts.Timeout, opts.Logger), nil
	case TransportGRPC:
		c, err := NewGRPCClient(opts.GRPCAddr, opts.Timeout, opts.Logger)
		if err != nil {
			return nil, err
		}
		return c, nil
	default:
		return nil, fmt.Errorf("unknown transport %q", opts.Transport)
	}
}

// #endregion client

func orNop(l *zap.Logger) *zap.Logger {
	if l == nil {
		return zap.NewNop()
	}
	return l
}

func orDefault(d time.Duration) time.Duration {
	if d <= 0 {
		return DefaultTimeout
	}
	return d
}
