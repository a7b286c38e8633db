package handler

import (
	"errors"

	"github.com/ogurasousui/employee-records/internal/core/employee"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func (h *EmployeeGrpcHandler) toStatusError(method string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, employee.ErrValidation),
		errors.Is(err, employee.ErrMissingField),
		errors.Is(err, employee.ErrInvalidFormat),
		errors.Is(err, employee.ErrOutOfRange),
		errors.Is(err, employee.ErrImmutableField):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, employee.ErrDuplicateKey):
		return status.Error(codes.AlreadyExists, err.Error())
	case errors.Is(err, employee.ErrNotFound):
		return status.Error(codes.NotFound, err.Error())
	default:
		// ストアのエラー内容はクライアントに返さない
		h.logger.Printf("%s: %v", method, err)
		return status.Error(codes.Internal, "internal error")
	}
}
