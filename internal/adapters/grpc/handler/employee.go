package handler

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/abhishk002/mock-employee-service/internal/core/employee"
	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// レスポンス上の社員フィールド名です。
const (
	FieldID     = "id"
	FieldName   = "employee_name"
	FieldSalary = "employee_salary"
	FieldAge    = "employee_age"
	FieldTitle  = "employee_title"
	FieldEmail  = "employee_email"
)

// 作成リクエストのフィールド名です。
const (
	inputName   = "name"
	inputSalary = "salary"
	inputAge    = "age"
	inputTitle  = "title"
)

// EmployeeGrpcHandler は EmployeeService の gRPC 実装です。
type EmployeeGrpcHandler struct {
	svc employee.UseCase
	UnimplementedEmployeeServiceServer
}

var _ EmployeeServiceServer = (*EmployeeGrpcHandler)(nil)

// NewEmployeeGrpcHandler は EmployeeGrpcHandler を生成します。
func NewEmployeeGrpcHandler(svc employee.UseCase) *EmployeeGrpcHandler {
	return &EmployeeGrpcHandler{svc: svc}
}

// GetEmployee は ID で社員を取得します。該当者がいなければ NotFound を返します。
func (h *EmployeeGrpcHandler) GetEmployee(ctx context.Context, req *wrapperspb.StringValue) (*structpb.Struct, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	id, err := parseID(req.GetValue())
	if err != nil {
		return nil, err
	}

	found, err := h.svc.GetEmployee(ctx, id)
	if err != nil {
		return nil, toStatusError(err)
	}
	if found == nil {
		return nil, status.Error(codes.NotFound, fmt.Sprintf("employee %s not found", id))
	}

	return toProtoEmployee(found), nil
}

// ListEmployees は全社員を返します。
func (h *EmployeeGrpcHandler) ListEmployees(ctx context.Context, _ *emptypb.Empty) (*structpb.ListValue, error) {
	employees, err := h.svc.ListEmployees(ctx)
	if err != nil {
		return nil, toStatusError(err)
	}
	return toProtoEmployeeList(employees), nil
}

// SearchEmployeesByName は名前の先頭一致で社員を検索します。
func (h *EmployeeGrpcHandler) SearchEmployeesByName(ctx context.Context, req *wrapperspb.StringValue) (*structpb.ListValue, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	employees, err := h.svc.SearchEmployeesByName(ctx, req.GetValue())
	if err != nil {
		return nil, toStatusError(err)
	}
	return toProtoEmployeeList(employees), nil
}

// CreateEmployee は社員を作成します。
func (h *EmployeeGrpcHandler) CreateEmployee(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	in, err := toCreateInput(req)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	created, err := h.svc.CreateEmployee(ctx, in)
	if err != nil {
		return nil, toStatusError(err)
	}

	return toProtoEmployee(created), nil
}

// DeleteEmployee は名前が一致する最初の社員を削除し、削除できたかを返します。
func (h *EmployeeGrpcHandler) DeleteEmployee(ctx context.Context, req *wrapperspb.StringValue) (*wrapperspb.BoolValue, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	deleted, err := h.svc.DeleteEmployee(ctx, &employee.DeleteEmployeeInput{Name: req.GetValue()})
	if err != nil {
		return nil, toStatusError(err)
	}

	return wrapperspb.Bool(deleted), nil
}

// GetHighestSalary は最高給与を返します。
func (h *EmployeeGrpcHandler) GetHighestSalary(ctx context.Context, _ *emptypb.Empty) (*wrapperspb.Int64Value, error) {
	highest, err := h.svc.GetHighestSalary(ctx)
	if err != nil {
		return nil, toStatusError(err)
	}
	return wrapperspb.Int64(int64(highest)), nil
}

// GetTopTenHighestEarningEmployees は給与上位 10 名を降順で返します。
func (h *EmployeeGrpcHandler) GetTopTenHighestEarningEmployees(ctx context.Context, _ *emptypb.Empty) (*structpb.ListValue, error) {
	employees, err := h.svc.GetTopTenHighestEarningEmployees(ctx)
	if err != nil {
		return nil, toStatusError(err)
	}
	return toProtoEmployeeList(employees), nil
}

func parseID(raw string) (uuid.UUID, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return uuid.Nil, toStatusError(employee.ErrInvalidID)
	}
	id, err := uuid.Parse(trimmed)
	if err != nil {
		return uuid.Nil, status.Error(codes.InvalidArgument, fmt.Sprintf("id: %v", err))
	}
	return id, nil
}

func toProtoEmployee(emp *employee.Employee) *structpb.Struct {
	if emp == nil {
		return nil
	}

	return &structpb.Struct{Fields: map[string]*structpb.Value{
		FieldID:     structpb.NewStringValue(emp.ID.String()),
		FieldName:   structpb.NewStringValue(emp.Name),
		FieldSalary: structpb.NewNumberValue(float64(emp.Salary)),
		FieldAge:    structpb.NewNumberValue(float64(emp.Age)),
		FieldTitle:  structpb.NewStringValue(emp.Title),
		FieldEmail:  structpb.NewStringValue(emp.Email),
	}}
}

func toProtoEmployeeList(employees []*employee.Employee) *structpb.ListValue {
	values := make([]*structpb.Value, 0, len(employees))
	for _, emp := range employees {
		values = append(values, structpb.NewStructValue(toProtoEmployee(emp)))
	}
	return &structpb.ListValue{Values: values}
}

func toCreateInput(req *structpb.Struct) (*employee.CreateEmployeeInput, error) {
	fields := req.GetFields()
	in := &employee.CreateEmployeeInput{}

	name, err := stringField(fields, inputName)
	if err != nil {
		return nil, err
	}
	in.Name = name

	title, err := stringField(fields, inputTitle)
	if err != nil {
		return nil, err
	}
	in.Title = title

	if _, ok := fields[inputSalary]; ok {
		salary, err := intField(fields, inputSalary)
		if err != nil {
			return nil, err
		}
		in.Salary = &salary
	}

	if _, ok := fields[inputAge]; ok {
		age, err := intField(fields, inputAge)
		if err != nil {
			return nil, err
		}
		in.Age = age
	}

	return in, nil
}

func stringField(fields map[string]*structpb.Value, key string) (string, error) {
	v, ok := fields[key]
	if !ok {
		return "", nil
	}
	switch kind := v.GetKind().(type) {
	case *structpb.Value_StringValue:
		return kind.StringValue, nil
	case *structpb.Value_NullValue:
		return "", nil
	default:
		return "", fmt.Errorf("%s: expected string", key)
	}
}

func intField(fields map[string]*structpb.Value, key string) (int, error) {
	num, ok := fields[key].GetKind().(*structpb.Value_NumberValue)
	if !ok {
		return 0, fmt.Errorf("%s: expected number", key)
	}
	f := num.NumberValue
	if f != math.Trunc(f) || f > math.MaxInt32 || f < math.MinInt32 {
		return 0, fmt.Errorf("%s: expected integer", key)
	}
	return int(f), nil
}
