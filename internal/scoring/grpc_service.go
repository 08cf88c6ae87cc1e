package scoring

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

const (
	scoringServiceName = "heartguard.v1.ScoringService"
	predictMethod      = "/" + scoringServiceName + "/Predict"
)

// ScoringServer is the server side of the Predict RPC.
type ScoringServer interface {
	Predict(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

// RegisterScoringServer attaches srv to s.
func RegisterScoringServer(s grpc.ServiceRegistrar, srv ScoringServer) {
	s.RegisterService(&scoringServiceDesc, srv)
}

var scoringServiceDesc = grpc.ServiceDesc{
	ServiceName: scoringServiceName,
	HandlerType: (*ScoringServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Predict", Handler: predictHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "heartguard/v1/scoring.proto",
}

func predictHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ScoringServer).Predict(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: predictMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ScoringServer).Predict(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}
