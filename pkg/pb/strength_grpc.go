package pb

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/dynamicpb"
)

const (
	// ServiceName is the fully qualified gRPC service name.
	ServiceName = "pwstrength.v1.PasswordStrengthService"
	// PasswordStrengthService_Evaluate_FullMethodName is the Evaluate method path.
	PasswordStrengthService_Evaluate_FullMethodName = "/" + ServiceName + "/Evaluate"
)

// PasswordStrengthServiceServer is the server API for PasswordStrengthService.
type PasswordStrengthServiceServer interface {
	Evaluate(context.Context, *EvaluateRequest) (*EvaluateResponse, error)
	mustEmbedUnimplementedPasswordStrengthServiceServer()
}

// UnimplementedPasswordStrengthServiceServer must be embedded by servers.
type UnimplementedPasswordStrengthServiceServer struct{}

// Evaluate returns codes.Unimplemented.
func (UnimplementedPasswordStrengthServiceServer) Evaluate(context.Context, *EvaluateRequest) (*EvaluateResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Evaluate not implemented")
}

func (UnimplementedPasswordStrengthServiceServer) mustEmbedUnimplementedPasswordStrengthServiceServer() {
}

// RegisterPasswordStrengthServiceServer registers srv on s.
func RegisterPasswordStrengthServiceServer(s grpc.ServiceRegistrar, srv PasswordStrengthServiceServer) {
	s.RegisterService(&PasswordStrengthService_ServiceDesc, srv)
}

func _PasswordStrengthService_Evaluate_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := dynamicpb.NewMessage(evaluateRequestDesc)
	if err := dec(in); err != nil {
		return nil, err
	}
	call := func(ctx context.Context, req interface{}) (interface{}, error) {
		typed, err := EvaluateRequestFromMessage(req.(*dynamicpb.Message))
		if err != nil {
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}
		resp, err := srv.(PasswordStrengthServiceServer).Evaluate(ctx, typed)
		if err != nil {
			return nil, err
		}
		if resp == nil {
			return nil, status.Error(codes.Internal, "empty response")
		}
		return resp.ToMessage(), nil
	}
	if interceptor == nil {
		return call(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PasswordStrengthService_Evaluate_FullMethodName,
	}
	return interceptor(ctx, in, info, call)
}

// PasswordStrengthService_ServiceDesc is the grpc.ServiceDesc for
// PasswordStrengthService.
var PasswordStrengthService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*PasswordStrengthServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Evaluate",
			Handler:    _PasswordStrengthService_Evaluate_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: FileName,
}

// PasswordStrengthServiceClient is the client API for PasswordStrengthService.
type PasswordStrengthServiceClient interface {
	Evaluate(ctx context.Context, in *EvaluateRequest, opts ...grpc.CallOption) (*EvaluateResponse, error)
}

type passwordStrengthServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewPasswordStrengthServiceClient returns a client bound to cc.
func NewPasswordStrengthServiceClient(cc grpc.ClientConnInterface) PasswordStrengthServiceClient {
	return &passwordStrengthServiceClient{cc}
}

func (c *passwordStrengthServiceClient) Evaluate(ctx context.Context, in *EvaluateRequest, opts ...grpc.CallOption) (*EvaluateResponse, error) {
	out := dynamicpb.NewMessage(evaluateResponseDesc)
	if err := c.cc.Invoke(ctx, PasswordStrengthService_Evaluate_FullMethodName, in.ToMessage(), out, opts...); err != nil {
		return nil, err
	}
	resp, err := EvaluateResponseFromMessage(out)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return resp, nil
}
