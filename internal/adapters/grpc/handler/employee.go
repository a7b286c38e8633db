package handler

import (
	"context"
	"log"
	"strings"

	"github.com/ogurasousui/employee-records/internal/core/employee"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// EmployeeGrpcHandler は EmployeeService の gRPC 実装です。
type EmployeeGrpcHandler struct {
	svc    employee.UseCase
	logger *log.Logger
}

var _ EmployeeServiceServer = (*EmployeeGrpcHandler)(nil)

// NewEmployeeGrpcHandler は EmployeeGrpcHandler を生成します。
func NewEmployeeGrpcHandler(svc employee.UseCase, logger *log.Logger) *EmployeeGrpcHandler {
	if logger == nil {
		logger = log.Default()
	}
	return &EmployeeGrpcHandler{svc: svc, logger: logger}
}

// CreateEmployee は社員を登録します。
func (h *EmployeeGrpcHandler) CreateEmployee(ctx context.Context, req *CreateEmployeeRequest) (*CreateEmployeeResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	created, err := h.svc.CreateEmployee(ctx, employee.CreateEmployeeInput{
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		EmployeeID:    req.EmployeeID,
		Email:         req.Email,
		PhoneNumber:   req.PhoneNumber,
		Department:    req.Department,
		DateOfJoining: req.DateOfJoining,
		Role:          req.Role,
	})
	if err != nil {
		return nil, h.toStatusError(methodCreateEmployee, err)
	}

	return &CreateEmployeeResponse{Employee: toGrpcEmployee(created)}, nil
}

// ListEmployees は社員を全件返します。
func (h *EmployeeGrpcHandler) ListEmployees(ctx context.Context, _ *ListEmployeesRequest) (*ListEmployeesResponse, error) {
	employees, err := h.svc.ListEmployees(ctx)
	if err != nil {
		return nil, h.toStatusError(methodListEmployees, err)
	}

	out := make([]*Employee, 0, len(employees))
	for _, emp := range employees {
		out = append(out, toGrpcEmployee(emp))
	}
	return &ListEmployeesResponse{Employees: out}, nil
}

// UpdateEmployee は patch に含まれるフィールドだけを更新します。
func (h *EmployeeGrpcHandler) UpdateEmployee(ctx context.Context, req *UpdateEmployeeRequest) (*UpdateEmployeeResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	patch := req.Patch
	if patch == nil {
		patch = &EmployeePatch{}
	}
	if patch.EmployeeID != nil && strings.TrimSpace(*patch.EmployeeID) != strings.TrimSpace(req.EmployeeID) {
		return nil, h.toStatusError(methodUpdateEmployee, employee.ErrImmutableField)
	}

	updated, err := h.svc.UpdateEmployee(ctx, employee.UpdateEmployeeInput{
		EmployeeID:    req.EmployeeID,
		FirstName:     patch.FirstName,
		LastName:      patch.LastName,
		Email:         patch.Email,
		PhoneNumber:   patch.PhoneNumber,
		Department:    patch.Department,
		DateOfJoining: patch.DateOfJoining,
		Role:          patch.Role,
	})
	if err != nil {
		return nil, h.toStatusError(methodUpdateEmployee, err)
	}

	return &UpdateEmployeeResponse{Employee: toGrpcEmployee(updated)}, nil
}

// DeleteEmployee は社員を削除します。
func (h *EmployeeGrpcHandler) DeleteEmployee(ctx context.Context, req *DeleteEmployeeRequest) (*DeleteEmployeeResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	if err := h.svc.DeleteEmployee(ctx, employee.DeleteEmployeeInput{EmployeeID: req.EmployeeID}); err != nil {
		return nil, h.toStatusError(methodDeleteEmployee, err)
	}

	return &DeleteEmployeeResponse{}, nil
}

func toGrpcEmployee(emp *employee.Employee) *Employee {
	if emp == nil {
		return nil
	}

	return &Employee{
		FirstName:     emp.FirstName,
		LastName:      emp.LastName,
		EmployeeID:    emp.EmployeeID,
		Email:         emp.Email,
		PhoneNumber:   emp.PhoneNumber,
		Department:    emp.Department,
		DateOfJoining: emp.DateOfJoining.Format(employee.DateLayout),
		Role:          emp.Role,
		CreatedAt:     emp.CreatedAt,
		UpdatedAt:     emp.UpdatedAt,
	}
}
