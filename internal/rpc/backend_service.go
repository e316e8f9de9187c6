package rpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// BackendServiceName is the full gRPC service name of the task-execution
// service.
const BackendServiceName = "adia.BackendService"

const (
	backendStartTaskMethod     = "/adia.BackendService/StartTask"
	backendGetTaskStatusMethod = "/adia.BackendService/GetTaskStatus"
)

// BackendServiceClient is the client API for the task-execution service.
type BackendServiceClient interface {
	StartTask(ctx context.Context, in *StartTaskRequest, opts ...grpc.CallOption) (*StartTaskResponse, error)
	GetTaskStatus(ctx context.Context, in *GetTaskStatusRequest, opts ...grpc.CallOption) (*GetTaskStatusResponse, error)
}

type backendServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewBackendServiceClient wraps a channel in a typed stub. The stub is a
// thin value and may be recreated per call.
func NewBackendServiceClient(cc grpc.ClientConnInterface) BackendServiceClient {
	return &backendServiceClient{cc}
}

func (c *backendServiceClient) StartTask(ctx context.Context, in *StartTaskRequest, opts ...grpc.CallOption) (*StartTaskResponse, error) {
	out := new(StartTaskResponse)
	if err := c.cc.Invoke(ctx, backendStartTaskMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *backendServiceClient) GetTaskStatus(ctx context.Context, in *GetTaskStatusRequest, opts ...grpc.CallOption) (*GetTaskStatusResponse, error) {
	out := new(GetTaskStatusResponse)
	if err := c.cc.Invoke(ctx, backendGetTaskStatusMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// BackendServiceServer is the server API implemented by the stub backend
// and by test doubles.
type BackendServiceServer interface {
	StartTask(context.Context, *StartTaskRequest) (*StartTaskResponse, error)
	GetTaskStatus(context.Context, *GetTaskStatusRequest) (*GetTaskStatusResponse, error)
}

// UnimplementedBackendServiceServer can be embedded to stub out individual
// methods in tests.
type UnimplementedBackendServiceServer struct{}

func (UnimplementedBackendServiceServer) StartTask(context.Context, *StartTaskRequest) (*StartTaskResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method StartTask not implemented")
}

func (UnimplementedBackendServiceServer) GetTaskStatus(context.Context, *GetTaskStatusRequest) (*GetTaskStatusResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetTaskStatus not implemented")
}

// RegisterBackendServiceServer registers srv on a gRPC server.
func RegisterBackendServiceServer(s grpc.ServiceRegistrar, srv BackendServiceServer) {
	s.RegisterService(&backendServiceDesc, srv)
}

func backendStartTaskHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(StartTaskRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BackendServiceServer).StartTask(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: backendStartTaskMethod}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BackendServiceServer).StartTask(ctx, req.(*StartTaskRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func backendGetTaskStatusHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetTaskStatusRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BackendServiceServer).GetTaskStatus(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: backendGetTaskStatusMethod}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BackendServiceServer).GetTaskStatus(ctx, req.(*GetTaskStatusRequest))
	}
	return interceptor(ctx, in, info, handler)
}

var backendServiceDesc = grpc.ServiceDesc{
	ServiceName: BackendServiceName,
	HandlerType: (*BackendServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "StartTask", Handler: backendStartTaskHandler},
		{MethodName: "GetTaskStatus", Handler: backendGetTaskStatusHandler},
	},
	Streams: []grpc.StreamDesc{},
}
