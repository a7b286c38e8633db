package handler

import (
	"errors"
	"net/http"

	"github.com/ogurasousui/employee-records/internal/core/employee"
)

const (
	msgDuplicateKey = "Employee ID or email already exists."
	msgNotFound     = "Employee not found."
	msgImmutableKey = "Employee ID cannot be changed."
	msgValidation   = "Validation failed."
)

// ErrorResponse は失敗時のレスポンスです。
type ErrorResponse struct {
	Error      string              `json:"error"`
	Violations []ViolationResponse `json:"violations,omitempty"`
}

// ViolationResponse はフィールド単位の入力違反です。
type ViolationResponse struct {
	Field   string `json:"field"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

func toErrorResponse(err error, internalMsg string) (int, ErrorResponse) {
	var verr *employee.ValidationError
	switch {
	case errors.As(err, &verr):
		violations := make([]ViolationResponse, 0, len(verr.Violations))
		for _, v := range verr.Violations {
			violations = append(violations, ViolationResponse{Field: v.Field, Kind: string(v.Kind), Message: v.Message})
		}
		return http.StatusBadRequest, ErrorResponse{Error: msgValidation, Violations: violations}
	case errors.Is(err, employee.ErrImmutableField):
		return http.StatusBadRequest, ErrorResponse{Error: msgImmutableKey}
	case errors.Is(err, employee.ErrValidation),
		errors.Is(err, employee.ErrMissingField),
		errors.Is(err, employee.ErrInvalidFormat),
		errors.Is(err, employee.ErrOutOfRange):
		return http.StatusBadRequest, ErrorResponse{Error: msgValidation}
	case errors.Is(err, employee.ErrDuplicateKey):
		return http.StatusBadRequest, ErrorResponse{Error: msgDuplicateKey}
	case errors.Is(err, employee.ErrNotFound):
		return http.StatusNotFound, ErrorResponse{Error: msgNotFound}
	default:
		return http.StatusInternalServerError, ErrorResponse{Error: internalMsg}
	}
}
