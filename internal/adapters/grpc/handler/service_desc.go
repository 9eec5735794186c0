package handler

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// ServiceName は EmployeeService の完全修飾名です。
const ServiceName = "mockemployee.v1.EmployeeService"

const (
	methodGetEmployee                      = "/" + ServiceName + "/GetEmployee"
	methodListEmployees                    = "/" + ServiceName + "/ListEmployees"
	methodSearchEmployeesByName            = "/" + ServiceName + "/SearchEmployeesByName"
	methodCreateEmployee                   = "/" + ServiceName + "/CreateEmployee"
	methodDeleteEmployee                   = "/" + ServiceName + "/DeleteEmployee"
	methodGetHighestSalary                 = "/" + ServiceName + "/GetHighestSalary"
	methodGetTopTenHighestEarningEmployees = "/" + ServiceName + "/GetTopTenHighestEarningEmployees"
)

// EmployeeServiceServer は EmployeeService のサーバー側インターフェースです。
// メッセージは protobuf の well-known type をそのまま使います。
type EmployeeServiceServer interface {
	GetEmployee(context.Context, *wrapperspb.StringValue) (*structpb.Struct, error)
	ListEmployees(context.Context, *emptypb.Empty) (*structpb.ListValue, error)
	SearchEmployeesByName(context.Context, *wrapperspb.StringValue) (*structpb.ListValue, error)
	CreateEmployee(context.Context, *structpb.Struct) (*structpb.Struct, error)
	DeleteEmployee(context.Context, *wrapperspb.StringValue) (*wrapperspb.BoolValue, error)
	GetHighestSalary(context.Context, *emptypb.Empty) (*wrapperspb.Int64Value, error)
	GetTopTenHighestEarningEmployees(context.Context, *emptypb.Empty) (*structpb.ListValue, error)
}

// UnimplementedEmployeeServiceServer は全メソッドで Unimplemented を返します。
type UnimplementedEmployeeServiceServer struct{}

func (UnimplementedEmployeeServiceServer) GetEmployee(context.Context, *wrapperspb.StringValue) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method GetEmployee not implemented")
}

func (UnimplementedEmployeeServiceServer) ListEmployees(context.Context, *emptypb.Empty) (*structpb.ListValue, error) {
	return nil, status.Error(codes.Unimplemented, "method ListEmployees not implemented")
}

func (UnimplementedEmployeeServiceServer) SearchEmployeesByName(context.Context, *wrapperspb.StringValue) (*structpb.ListValue, error) {
	return nil, status.Error(codes.Unimplemented, "method SearchEmployeesByName not implemented")
}

func (UnimplementedEmployeeServiceServer) CreateEmployee(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateEmployee not implemented")
}

func (UnimplementedEmployeeServiceServer) DeleteEmployee(context.Context, *wrapperspb.StringValue) (*wrapperspb.BoolValue, error) {
	return nil, status.Error(codes.Unimplemented, "method DeleteEmployee not implemented")
}

func (UnimplementedEmployeeServiceServer) GetHighestSalary(context.Context, *emptypb.Empty) (*wrapperspb.Int64Value, error) {
	return nil, status.Error(codes.Unimplemented, "method GetHighestSalary not implemented")
}

func (UnimplementedEmployeeServiceServer) GetTopTenHighestEarningEmployees(context.Context, *emptypb.Empty) (*structpb.ListValue, error) {
	return nil, status.Error(codes.Unimplemented, "method GetTopTenHighestEarningEmployees not implemented")
}

// RegisterEmployeeServiceServer は srv を gRPC サーバーに登録します。
func RegisterEmployeeServiceServer(s grpc.ServiceRegistrar, srv EmployeeServiceServer) {
	s.RegisterService(&EmployeeServiceDesc, srv)
}

// unaryHandler は protoc-gen-go-grpc が生成するハンドラと同じ形の関数を組み立てます。
func unaryHandler[Req any, Resp any](fullMethod string, call func(EmployeeServiceServer, context.Context, *Req) (Resp, error)) func(any, context.Context, func(any) error, grpc.UnaryServerInterceptor) (any, error) {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(EmployeeServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(EmployeeServiceServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// EmployeeServiceDesc は EmployeeService の grpc.ServiceDesc です。
var EmployeeServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*EmployeeServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GetEmployee",
			Handler:    unaryHandler(methodGetEmployee, EmployeeServiceServer.GetEmployee),
		},
		{
			MethodName: "ListEmployees",
			Handler:    unaryHandler(methodListEmployees, EmployeeServiceServer.ListEmployees),
		},
		{
			MethodName: "SearchEmployeesByName",
			Handler:    unaryHandler(methodSearchEmployeesByName, EmployeeServiceServer.SearchEmployeesByName),
		},
		{
			MethodName: "CreateEmployee",
			Handler:    unaryHandler(methodCreateEmployee, EmployeeServiceServer.CreateEmployee),
		},
		{
			MethodName: "DeleteEmployee",
			Handler:    unaryHandler(methodDeleteEmployee, EmployeeServiceServer.DeleteEmployee),
		},
		{
			MethodName: "GetHighestSalary",
			Handler:    unaryHandler(methodGetHighestSalary, EmployeeServiceServer.GetHighestSalary),
		},
		{
			MethodName: "GetTopTenHighestEarningEmployees",
			Handler:    unaryHandler(methodGetTopTenHighestEarningEmployees, EmployeeServiceServer.GetTopTenHighestEarningEmployees),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "mockemployee/v1/employee.proto",
}
