package scoring

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/hassaan217/HeartGuard-AI/internal/form"
	"github.com/hassaan217/HeartGuard-AI/internal/prediction"
)

// #region grpc-client
// GRPCClient calls the scoring service's unary Predict RPC. Payloads are
// google.protobuf.Struct values carrying the same keys as the JSON API.
type GRPCClient struct {
	conn    *grpc.ClientConn
	addr    string
	timeout time.Duration
	logger  *zap.Logger
	now     func() time.Time
}

// NewGRPCClient connects to addr. Without opts the connection is insecure.
func NewGRPCClient(addr string, timeout time.Duration, logger *zap.Logger, opts ...grpc.DialOption) (*GRPCClient, error) {
	if len(opts) == 0 {
		opts = []grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}
	}
	conn, err := grpc.NewClient(addr, opts...)
	if err != nil {
		return nil, fmt.Errorf("grpc dial %s: %w", addr, err)
	}
	return &GRPCClient{
		conn:    conn,
		addr:    addr,
		timeout: orDefault(timeout),
		logger:  orNop(logger).Named("scoring"),
		now:     time.Now,
	}, nil
}

// Close shuts down the gRPC connection.
func (c *GRPCClient) Close() error {
	return c.conn.Close()
}

// #endregion grpc-client

// #region predict
// Predict sends req over the Predict RPC.
func (c *GRPCClient) Predict(ctx context.Context, req prediction.Request, snap form.Snapshot) (prediction.Result, error) {
	in, err := structpb.NewStruct(req.AsMap())
	if err != nil {
		return prediction.Result{}, c.fail(KindRequestFailure, err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	start := time.Now()
	out := &structpb.Struct{}
	if err := c.conn.Invoke(ctx, predictMethod, in, out); err != nil {
		return prediction.Result{}, c.classify(err)
	}

	raw, err := protojson.Marshal(out)
	if err != nil {
		return prediction.Result{}, c.invalid(err)
	}
	result, err := decodeResult(raw, snap, c.now())
	if err != nil {
		return prediction.Result{}, c.invalid(err)
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

// #region classify
func (c *GRPCClient) classify(err error) *Error {
	st, ok := status.FromError(err)
	if !ok {
		return c.fail(KindUnreachable, err)
	}
	switch st.Code() {
	case codes.DeadlineExceeded:
		return c.fail(KindTimeout, err)
	case codes.Unavailable, codes.Canceled:
		return c.fail(KindUnreachable, err)
	default:
		c.logger.Warn("prediction rejected", zap.String("code", st.Code().String()), zap.String("detail", st.Message()))
		return &Error{
			Kind:     KindServerError,
			Status:   st.Code().String(),
			Detail:   st.Message(),
			Endpoint: c.addr,
			Err:      err,
		}
	}
}

func (c *GRPCClient) invalid(err error) *Error {
	c.logger.Warn("undecodable prediction response", zap.Error(err))
	return &Error{Kind: KindServerError, Status: codes.OK.String(), Detail: msgInvalidResponse, Endpoint: c.addr, Err: err}
}

func (c *GRPCClient) fail(kind Kind, err error) *Error {
	c.logger.Warn("prediction exchange failed", zap.String("kind", string(kind)), zap.Error(err))
	return &Error{Kind: kind, Endpoint: c.addr, Timeout: c.timeout, Err: err}
}

// #endregion classify
