package handler

import (
	"context"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// Client は EmployeeService の gRPC クライアントです。
type Client struct {
	cc grpc.ClientConnInterface
}

// NewClient は Client を生成します。
func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

// GetEmployee は ID で社員を取得します。該当者がいなければ NotFound になります。
func (c *Client) GetEmployee(ctx context.Context, id uuid.UUID, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, methodGetEmployee, wrapperspb.String(id.String()), out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// ListEmployees は全社員を取得します。
func (c *Client) ListEmployees(ctx context.Context, opts ...grpc.CallOption) (*structpb.ListValue, error) {
	out := new(structpb.ListValue)
	if err := c.cc.Invoke(ctx, methodListEmployees, &emptypb.Empty{}, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// SearchEmployeesByName は名前の先頭一致で社員を検索します。
func (c *Client) SearchEmployeesByName(ctx context.Context, fragment string, opts ...grpc.CallOption) (*structpb.ListValue, error) {
	out := new(structpb.ListValue)
	if err := c.cc.Invoke(ctx, methodSearchEmployeesByName, wrapperspb.String(fragment), out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateEmployee は fields をそのまま作成リクエストとして送ります。
func (c *Client) CreateEmployee(ctx context.Context, fields map[string]any, opts ...grpc.CallOption) (*structpb.Struct, error) {
	in, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, err
	}
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, methodCreateEmployee, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteEmployee は名前が一致する最初の社員を削除し、削除できたかを返します。
func (c *Client) DeleteEmployee(ctx context.Context, name string, opts ...grpc.CallOption) (bool, error) {
	out := new(wrapperspb.BoolValue)
	if err := c.cc.Invoke(ctx, methodDeleteEmployee, wrapperspb.String(name), out, opts...); err != nil {
		return false, err
	}
	return out.GetValue(), nil
}

// GetHighestSalary は最高給与を取得します。
func (c *Client) GetHighestSalary(ctx context.Context, opts ...grpc.CallOption) (int64, error) {
	out := new(wrapperspb.Int64Value)
	if err := c.cc.Invoke(ctx, methodGetHighestSalary, &emptypb.Empty{}, out, opts...); err != nil {
		return 0, err
	}
	return out.GetValue(), nil
}

// GetTopTenHighestEarningEmployees は給与上位 10 名を取得します。
func (c *Client) GetTopTenHighestEarningEmployees(ctx context.Context, opts ...grpc.CallOption) (*structpb.ListValue, error) {
	out := new(structpb.ListValue)
	if err := c.cc.Invoke(ctx, methodGetTopTenHighestEarningEmployees, &emptypb.Empty{}, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
