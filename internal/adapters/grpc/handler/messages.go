package handler

import "time"

// Employee は gRPC で返す社員表現です。dateOfJoining は YYYY-MM-DD 形式です。
type Employee struct {
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

type CreateEmployeeRequest struct {
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	EmployeeID    string `json:"employeeId"`
	Email         string `json:"email"`
	PhoneNumber   string `json:"phoneNumber"`
	Department    string `json:"department"`
	DateOfJoining string `json:"dateOfJoining"`
	Role          string `json:"role"`
}

type CreateEmployeeResponse struct {
	Employee *Employee `json:"employee"`
}

type ListEmployeesRequest struct{}

type ListEmployeesResponse struct {
	Employees []*Employee `json:"employees"`
}

// EmployeePatch は更新対象のフィールドです。nil は変更なしを表します。
// EmployeeID はキーと一致する場合のみ受け付けます。
type EmployeePatch struct {
	FirstName     *string `json:"firstName,omitempty"`
	LastName      *string `json:"lastName,omitempty"`
	EmployeeID    *string `json:"employeeId,omitempty"`
	Email         *string `json:"email,omitempty"`
	PhoneNumber   *string `json:"phoneNumber,omitempty"`
	Department    *string `json:"department,omitempty"`
	DateOfJoining *string `json:"dateOfJoining,omitempty"`
	Role          *string `json:"role,omitempty"`
}

type UpdateEmployeeRequest struct {
	EmployeeID string         `json:"employeeId"`
	Patch      *EmployeePatch `json:"patch"`
}

type UpdateEmployeeResponse struct {
	Employee *Employee `json:"employee"`
}

type DeleteEmployeeRequest struct {
	EmployeeID string `json:"employeeId"`
}

type DeleteEmployeeResponse struct{}
