package scoring

import (
	"context"
	"errors"
	"net"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/hassaan217/HeartGuard-AI/internal/prediction"
)

// #region fake-server
type fakeScoring struct {
	mu    sync.Mutex
	resp  map[string]any
	err   error
	block bool
	got   *structpb.Struct
}

func (f *fakeScoring) Predict(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	f.mu.Lock()
	f.got = in
	f.mu.Unlock()
	if f.block {
		<-ctx.Done()
		return nil, status.FromContextError(ctx.Err()).Err()
	}
	if f.err != nil {
		return nil, f.err
	}
	return structpb.NewStruct(f.resp)
}

func startGRPC(t *testing.T, srv ScoringServer, timeout time.Duration) (*GRPCClient, *bufconn.Listener) {
	t.Helper()
	lis := bufconn.Listen(1 << 20)
	s := grpc.NewServer()
	RegisterScoringServer(s, srv)
	go func() { _ = s.Serve(lis) }()
	t.Cleanup(s.Stop)

	c, err := NewGRPCClient("passthrough:///bufnet", timeout, nil,
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c, lis
}

// #endregion fake-server

// #region grpc-tests

func TestGRPCPredictSuccess(t *testing.T) {
	fake := &fakeScoring{resp: map[string]any{
		"prediction":  "Absence",
		"risk_level":  "Low",
		"probability": 0.12,
		"confidence":  "88.00%",
	}}
	c, _ := startGRPC(t, fake, time.Second)
	req, snap := highRisk(t)

	res, err := c.Predict(context.Background(), req, snap)
	require.NoError(t, err)
	assert.Equal(t, prediction.LabelAbsence, res.Prediction)
	assert.Equal(t, prediction.RiskLow, res.RiskLevel)
	assert.InDelta(t, 0.12, res.Probability, 1e-9)
	assert.NotEmpty(t, res.ID)
	assert.Equal(t, snap, res.Snapshot)

	fake.mu.Lock()
	got := fake.got
	fake.mu.Unlock()
	require.NotNil(t, got)
	assert.Equal(t, 160.0, got.Fields["BP"].GetNumberValue())
	assert.Equal(t, 4.0, got.Fields["chest_pain_type"].GetNumberValue())
	assert.Len(t, got.Fields, 13)
}

func TestGRPCPredictServerError(t *testing.T) {
	fake := &fakeScoring{err: status.Error(codes.InvalidArgument, "invalid input")}
	c, _ := startGRPC(t, fake, time.Second)
	req, snap := highRisk(t)

	_, err := c.Predict(context.Background(), req, snap)
	se := requireKind(t, err, KindServerError)
	assert.Equal(t, "InvalidArgument", se.Status)
	assert.Equal(t, "invalid input", Message(err))
}

func TestGRPCPredictServerErrorWithoutMessage(t *testing.T) {
	fake := &fakeScoring{err: status.Error(codes.Internal, "")}
	c, _ := startGRPC(t, fake, time.Second)
	req, snap := highRisk(t)

	_, err := c.Predict(context.Background(), req, snap)
	requireKind(t, err, KindServerError)
	assert.Equal(t, "Server error: Internal", Message(err))
}

func TestGRPCPredictUnavailable(t *testing.T) {
	fake := &fakeScoring{err: status.Error(codes.Unavailable, "model not loaded")}
	c, _ := startGRPC(t, fake, time.Second)
	req, snap := highRisk(t)

	_, err := c.Predict(context.Background(), req, snap)
	requireKind(t, err, KindUnreachable)
}

func TestGRPCPredictClosedListener(t *testing.T) {
	c, lis := startGRPC(t, &fakeScoring{}, time.Second)
	require.NoError(t, lis.Close())
	req, snap := highRisk(t)

	_, err := c.Predict(context.Background(), req, snap)
	se := requireKind(t, err, KindUnreachable)
	assert.True(t, se.IsUnreachable())
}

func TestGRPCPredictTimeout(t *testing.T) {
	c, _ := startGRPC(t, &fakeScoring{block: true}, 50*time.Millisecond)
	req, snap := highRisk(t)

	_, err := c.Predict(context.Background(), req, snap)
	requireKind(t, err, KindTimeout)
}

func TestGRPCPredictInvalidPayload(t *testing.T) {
	fake := &fakeScoring{resp: map[string]any{"prediction": "Presence", "risk_level": "Extreme", "probability": 0.9}}
	c, _ := startGRPC(t, fake, time.Second)
	req, snap := highRisk(t)

	_, err := c.Predict(context.Background(), req, snap)
	requireKind(t, err, KindServerError)
	assert.Equal(t, "Invalid response from prediction service", Message(err))
}

// #endregion grpc-tests

// #region factory-tests

func TestNewSelectsTransport(t *testing.T) {
	c, err := New(Options{BaseURL: "http://localhost:8000"})
	require.NoError(t, err)
	assert.IsType(t, &HTTPClient{}, c)

	g, err := New(Options{Transport: TransportGRPC, GRPCAddr: "localhost:50051"})
	require.NoError(t, err)
	assert.IsType(t, &GRPCClient{}, g)
	require.NoError(t, g.Close())

	_, err = New(Options{Transport: "carrier-pigeon"})
	require.Error(t, err)
}

func TestMessageForForeignError(t *testing.T) {
	assert.Equal(t, "Failed to make prediction request.", Message(errors.New("boom")))
	assert.Equal(t, KindRequestFailure, KindOf(errors.New("boom")))
}

// #endregion factory-tests
