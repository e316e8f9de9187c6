package rpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// DatabaseServiceName is the full gRPC service name of the persistence
// service.
const DatabaseServiceName = "adia.DatabaseService"

const (
	databaseListTasksMethod      = "/adia.DatabaseService/ListTasks"
	databaseGetTaskHistoryMethod = "/adia.DatabaseService/GetTaskHistory"
	databaseGetTaskMethod        = "/adia.DatabaseService/GetTask"
)

// DatabaseServiceClient is the client API for the persistence service.
type DatabaseServiceClient interface {
	ListTasks(ctx context.Context, in *ListTasksRequest, opts ...grpc.CallOption) (*ListTasksResponse, error)
	GetTaskHistory(ctx context.Context, in *GetTaskHistoryRequest, opts ...grpc.CallOption) (*GetTaskHistoryResponse, error)
	GetTask(ctx context.Context, in *GetTaskRequest, opts ...grpc.CallOption) (*GetTaskResponse, error)
}

type databaseServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewDatabaseServiceClient wraps a channel in a typed stub.
func NewDatabaseServiceClient(cc grpc.ClientConnInterface) DatabaseServiceClient {
	return &databaseServiceClient{cc}
}

func (c *databaseServiceClient) ListTasks(ctx context.Context, in *ListTasksRequest, opts ...grpc.CallOption) (*ListTasksResponse, error) {
	out := new(ListTasksResponse)
	if err := c.cc.Invoke(ctx, databaseListTasksMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *databaseServiceClient) GetTaskHistory(ctx context.Context, in *GetTaskHistoryRequest, opts ...grpc.CallOption) (*GetTaskHistoryResponse, error) {
	out := new(GetTaskHistoryResponse)
	if err := c.cc.Invoke(ctx, databaseGetTaskHistoryMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *databaseServiceClient) GetTask(ctx context.Context, in *GetTaskRequest, opts ...grpc.CallOption) (*GetTaskResponse, error) {
	out := new(GetTaskResponse)
	if err := c.cc.Invoke(ctx, databaseGetTaskMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// DatabaseServiceServer is the server API implemented by the stub database
// service and by test doubles.
type DatabaseServiceServer interface {
	ListTasks(context.Context, *ListTasksRequest) (*ListTasksResponse, error)
	GetTaskHistory(context.Context, *GetTaskHistoryRequest) (*GetTaskHistoryResponse, error)
	GetTask(context.Context, *GetTaskRequest) (*GetTaskResponse, error)
}

// UnimplementedDatabaseServiceServer can be embedded to stub out individual
// methods in tests.
type UnimplementedDatabaseServiceServer struct{}

func (UnimplementedDatabaseServiceServer) ListTasks(context.Context, *ListTasksRequest) (*ListTasksResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListTasks not implemented")
}

func (UnimplementedDatabaseServiceServer) GetTaskHistory(context.Context, *GetTaskHistoryRequest) (*GetTaskHistoryResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetTaskHistory not implemented")
}

func (UnimplementedDatabaseServiceServer) GetTask(context.Context, *GetTaskRequest) (*GetTaskResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetTask not implemented")
}

// RegisterDatabaseServiceServer registers srv on a gRPC server.
func RegisterDatabaseServiceServer(s grpc.ServiceRegistrar, srv DatabaseServiceServer) {
	s.RegisterService(&databaseServiceDesc, srv)
}

func databaseListTasksHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListTasksRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DatabaseServiceServer).ListTasks(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: databaseListTasksMethod}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DatabaseServiceServer).ListTasks(ctx, req.(*ListTasksRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func databaseGetTaskHistoryHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetTaskHistoryRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DatabaseServiceServer).GetTaskHistory(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: databaseGetTaskHistoryMethod}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DatabaseServiceServer).GetTaskHistory(ctx, req.(*GetTaskHistoryRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func databaseGetTaskHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetTaskRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DatabaseServiceServer).GetTask(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: databaseGetTaskMethod}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DatabaseServiceServer).GetTask(ctx, req.(*GetTaskRequest))
	}
	return interceptor(ctx, in, info, handler)
}

var databaseServiceDesc = grpc.ServiceDesc{
	ServiceName: DatabaseServiceName,
	HandlerType: (*DatabaseServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "ListTasks", Handler: databaseListTasksHandler},
		{MethodName: "GetTaskHistory", Handler: databaseGetTaskHistoryHandler},
		{MethodName: "GetTask", Handler: databaseGetTaskHandler},
	},
	Streams: []grpc.StreamDesc{},
}
