package handler

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/ogurasousui/employee-records/internal/core/employee"
)

const (
	msgEmployeeAdded   = "Employee added successfully!"
	msgEmployeeUpdated = "Employee updated successfully!"
	msgEmployeeDeleted = "Employee deleted successfully!"
)

// EmployeeHTTPHandler は社員 API の HTTP 実装です。
type EmployeeHTTPHandler struct {
	svc    employee.UseCase
	logger *log.Logger
}

// NewEmployeeHTTPHandler は EmployeeHTTPHandler を生成します。
func NewEmployeeHTTPHandler(svc employee.UseCase, logger *log.Logger) *EmployeeHTTPHandler {
	if logger == nil {
		logger = log.Default()
	}
	return &EmployeeHTTPHandler{svc: svc, logger: logger}
}

// Register は社員 API のルートを登録します。
func (h *EmployeeHTTPHandler) Register(e *echo.Echo) {
	e.POST("/add-employee", h.CreateEmployee)
	e.GET("/employees", h.ListEmployees)
	e.PUT("/employees/:employeeId", h.UpdateEmployee)
	e.DELETE("/employees/:employeeId", h.DeleteEmployee)
}

// EmployeeRequest は社員登録のリクエストボディです。
type EmployeeRequest struct {
	FirstName     string `json:"firstName" example:"Ann"`
	LastName      string `json:"lastName" example:"Lee"`
	EmployeeID    string `json:"employeeId" example:"1234AB"`
	Email         string `json:"email" example:"ann@example.com"`
	PhoneNumber   string `json:"phoneNumber" example:"5551234567"`
	Phone         string `json:"phone,omitempty" swaggerignore:"true"`
	Department    string `json:"department" example:"HR"`
	DateOfJoining string `json:"dateOfJoining" example:"2023-01-10"`
	Role          string `json:"role" example:"Analyst"`
}

// UpdateEmployeeRequest は社員更新のリクエストボディです。省略したフィールドは変更されません。
type UpdateEmployeeRequest struct {
	FirstName     *string `json:"firstName,omitempty"`
	LastName      *string `json:"lastName,omitempty"`
	EmployeeID    *string `json:"employeeId,omitempty"`
	Email         *string `json:"email,omitempty"`
	PhoneNumber   *string `json:"phoneNumber,omitempty"`
	Phone         *string `json:"phone,omitempty" swaggerignore:"true"`
	Department    *string `json:"department,omitempty"`
	DateOfJoining *string `json:"dateOfJoining,omitempty"`
	Role          *string `json:"role,omitempty"`
}

// EmployeeResponse は社員のレスポンス表現です。
type EmployeeResponse struct {
	FirstName     string    `json:"firstName"`
	LastName      string    `json:"lastName"`
	EmployeeID    string    `json:"employeeId"`
	Email         string    `json:"email"`
	PhoneNumber   string    `json:"phoneNumber"`
	Department    string    `json:"department"`
	DateOfJoining string    `json:"dateOfJoining"`
	Role          string    `json:"role"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// MessageResponse は成功時のレスポンスです。
type MessageResponse struct {
	Message string `json:"message"`
}

// CreateEmployee godoc
// @Summary Add employee
// @Tags employees
// @Accept json
// @Produce json
// @Param employee body EmployeeRequest true "Employee payload"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /add-employee [post]
func (h *EmployeeHTTPHandler) CreateEmployee(c echo.Context) error {
	var req EmployeeRequest
	if err := (&echo.DefaultBinder{}).BindBody(c, &req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}

	phone := req.PhoneNumber
	if phone == "" {
		phone = req.Phone
	}

	if _, err := h.svc.CreateEmployee(c.Request().Context(), employee.CreateEmployeeInput{
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		EmployeeID:    req.EmployeeID,
		Email:         req.Email,
		PhoneNumber:   phone,
		Department:    req.Department,
		DateOfJoining: dateOnly(req.DateOfJoining),
		Role:          req.Role,
	}); err != nil {
		return h.respondError(c, err, "Failed to add employee.")
	}

	return c.JSON(http.StatusOK, MessageResponse{Message: msgEmployeeAdded})
}

// ListEmployees godoc
// @Summary List employees
// @Tags employees
// @Produce json
// @Success 200 {array} EmployeeResponse
// @Failure 500 {object} ErrorResponse
// @Router /employees [get]
func (h *EmployeeHTTPHandler) ListEmployees(c echo.Context) error {
	employees, err := h.svc.ListEmployees(c.Request().Context())
	if err != nil {
		return h.respondError(c, err, "Failed to fetch employees.")
	}

	resp := make([]EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		resp = append(resp, toEmployeeResponse(emp))
	}
	return c.JSON(http.StatusOK, resp)
}

// UpdateEmployee godoc
// @Summary Update employee
// @Description Fields omitted from the body are left unchanged. employeeId cannot be changed.
// @Tags employees
// @Accept json
// @Produce json
// @Param employeeId path string true "Employee ID"
// @Param employee body UpdateEmployeeRequest true "Fields to change"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /employees/{employeeId} [put]
func (h *EmployeeHTTPHandler) UpdateEmployee(c echo.Context) error {
	key := c.Param("employeeId")

	var req UpdateEmployeeRequest
	if err := (&echo.DefaultBinder{}).BindBody(c, &req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}

	if req.EmployeeID != nil && strings.TrimSpace(*req.EmployeeID) != strings.TrimSpace(key) {
		return h.respondError(c, employee.ErrImmutableField, "Failed to update employee.")
	}

	phone := req.PhoneNumber
	if phone == nil {
		phone = req.Phone
	}

	var joined *string
	if req.DateOfJoining != nil {
		d := dateOnly(*req.DateOfJoining)
		joined = &d
	}

	if _, err := h.svc.UpdateEmployee(c.Request().Context(), employee.UpdateEmployeeInput{
		EmployeeID:    key,
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Email:         req.Email,
		PhoneNumber:   phone,
		Department:    req.Department,
		DateOfJoining: joined,
		Role:          req.Role,
	}); err != nil {
		return h.respondError(c, err, "Failed to update employee.")
	}

	return c.JSON(http.StatusOK, MessageResponse{Message: msgEmployeeUpdated})
}

// DeleteEmployee godoc
// @Summary Delete employee
// @Tags employees
// @Produce json
// @Param employeeId path string true "Employee ID"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /employees/{employeeId} [delete]
func (h *EmployeeHTTPHandler) DeleteEmployee(c echo.Context) error {
	if err := h.svc.DeleteEmployee(c.Request().Context(), employee.DeleteEmployeeInput{
		EmployeeID: c.Param("employeeId"),
	}); err != nil {
		return h.respondError(c, err, "Failed to delete employee.")
	}

	return c.JSON(http.StatusOK, MessageResponse{Message: msgEmployeeDeleted})
}

func (h *EmployeeHTTPHandler) respondError(c echo.Context, err error, internalMsg string) error {
	status, body := toErrorResponse(err, internalMsg)
	if status >= http.StatusInternalServerError {
		h.logger.Printf("%s %s: %v", c.Request().Method, c.Request().URL.Path, err)
	}
	return c.JSON(status, body)
}

func toEmployeeResponse(emp *employee.Employee) EmployeeResponse {
	return EmployeeResponse{
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

// dateOnly は "2023-01-10T00:00:00.000Z" のような日時文字列を日付部分だけにします。
func dateOnly(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if idx := strings.IndexByte(trimmed, 'T'); idx == len(employee.DateLayout) {
		return trimmed[:idx]
	}
	return trimmed
}
