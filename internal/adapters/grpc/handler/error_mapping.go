package handler

import (
	"errors"

	"github.com/abhishk002/mock-employee-service/internal/core/employee"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func toStatusError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, employee.ErrInvalidArgument):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, employee.ErrNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, employee.ErrIDAlreadyIssued):
		return status.Error(codes.Aborted, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
