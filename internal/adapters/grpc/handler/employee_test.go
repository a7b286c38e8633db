package handler

import (
	"context"
	"errors"
	"io"
	"log"
	"net"
	"testing"
	"time"

	"github.com/ogurasousui/employee-records/internal/core/employee"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

type stubEmployeeUseCase struct {
	createInput employee.CreateEmployeeInput
	createOut   *employee.Employee
	createErr   error

	listOut []*employee.Employee
	listErr error

	updateInput  employee.UpdateEmployeeInput
	updateOut    *employee.Employee
	updateErr    error
	updateCalled bool

	deleteInput employee.DeleteEmployeeInput
	deleteErr   error
}

func (s *stubEmployeeUseCase) CreateEmployee(_ context.Context, in employee.CreateEmployeeInput) (*employee.Employee, error) {
	s.createInput = in
	return s.createOut, s.createErr
}

func (s *stubEmployeeUseCase) ListEmployees(_ context.Context) ([]*employee.Employee, error) {
	return s.listOut, s.listErr
}

func (s *stubEmployeeUseCase) UpdateEmployee(_ context.Context, in employee.UpdateEmployeeInput) (*employee.Employee, error) {
	s.updateCalled = true
	s.updateInput = in
	return s.updateOut, s.updateErr
}

func (s *stubEmployeeUseCase) DeleteEmployee(_ context.Context, in employee.DeleteEmployeeInput) error {
	s.deleteInput = in
	return s.deleteErr
}

func newTestHandler(stub *stubEmployeeUseCase) *EmployeeGrpcHandler {
	return NewEmployeeGrpcHandler(stub, log.New(io.Discard, "", 0))
}

func sampleEmployee() *employee.Employee {
	now := time.Date(2025, 3, 15, 9, 0, 0, 0, time.UTC)
	return &employee.Employee{
		FirstName:     "Ann",
		LastName:      "Lee",
		EmployeeID:    "1234AB",
		Email:         "ann@x.com",
		PhoneNumber:   "5551234567",
		Department:    "HR",
		DateOfJoining: time.Date(2023, 1, 10, 0, 0, 0, 0, time.UTC),
		Role:          "Analyst",
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func TestEmployeeGrpcHandler_CreateEmployee_Success(t *testing.T) {
	t.Parallel()

	stub := &stubEmployeeUseCase{createOut: sampleEmployee()}
	h := newTestHandler(stub)

	resp, err := h.CreateEmployee(context.Background(), &CreateEmployeeRequest{
		FirstName:     "Ann",
		LastName:      "Lee",
		EmployeeID:    "1234AB",
		Email:         "ann@x.com",
		PhoneNumber:   "5551234567",
		Department:    "HR",
		DateOfJoining: "2023-01-10",
		Role:          "Analyst",
	})
	if err != nil {
		t.Fatalf("CreateEmployee returned error: %v", err)
	}

	if stub.createInput.EmployeeID != "1234AB" || stub.createInput.DateOfJoining != "2023-01-10" {
		t.Fatalf("unexpected input: %+v", stub.createInput)
	}

	if resp.Employee == nil || resp.Employee.DateOfJoining != "2023-01-10" {
		t.Fatalf("unexpected response: %+v", resp.Employee)
	}
}

func TestEmployeeGrpcHandler_CreateEmployee_ErrorCodes(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		err  error
		want codes.Code
	}{
		{name: "validation", err: &employee.ValidationError{Violations: []employee.Violation{{Field: "employeeId", Kind: employee.KindFormat, Message: "bad"}}}, want: codes.InvalidArgument},
		{name: "duplicate", err: employee.ErrDuplicateKey, want: codes.AlreadyExists},
		{name: "store", err: errors.New("connection reset"), want: codes.Internal},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			h := newTestHandler(&stubEmployeeUseCase{createErr: tc.err})
			_, err := h.CreateEmployee(context.Background(), &CreateEmployeeRequest{})
			if status.Code(err) != tc.want {
				t.Fatalf("expected %s, got %v", tc.want, err)
			}
		})
	}
}

func TestEmployeeGrpcHandler_InternalErrorHidesDetail(t *testing.T) {
	t.Parallel()

	h := newTestHandler(&stubEmployeeUseCase{listErr: errors.New("dial tcp 10.0.0.1:5432")})

	_, err := h.ListEmployees(context.Background(), &ListEmployeesRequest{})
	st, ok := status.FromError(err)
	if !ok || st.Code() != codes.Internal {
		t.Fatalf("expected Internal, got %v", err)
	}
	if st.Message() != "internal error" {
		t.Fatalf("store detail leaked: %q", st.Message())
	}
}

func TestEmployeeGrpcHandler_UpdateEmployee_RejectsKeyChange(t *testing.T) {
	t.Parallel()

	stub := &stubEmployeeUseCase{}
	h := newTestHandler(stub)

	other := "9999ZZ"
	_, err := h.UpdateEmployee(context.Background(), &UpdateEmployeeRequest{
		EmployeeID: "1234AB",
		Patch:      &EmployeePatch{EmployeeID: &other},
	})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("expected InvalidArgument, got %v", err)
	}
	if stub.updateCalled {
		t.Fatalf("use case must not be called")
	}
}

func TestEmployeeGrpcHandler_UpdateEmployee_PassesPatch(t *testing.T) {
	t.Parallel()

	stub := &stubEmployeeUseCase{updateOut: sampleEmployee()}
	h := newTestHandler(stub)

	role := "Manager"
	same := "1234AB"
	if _, err := h.UpdateEmployee(context.Background(), &UpdateEmployeeRequest{
		EmployeeID: "1234AB",
		Patch:      &EmployeePatch{EmployeeID: &same, Role: &role},
	}); err != nil {
		t.Fatalf("UpdateEmployee returned error: %v", err)
	}

	if stub.updateInput.EmployeeID != "1234AB" {
		t.Fatalf("unexpected key: %s", stub.updateInput.EmployeeID)
	}
	if stub.updateInput.Role == nil || *stub.updateInput.Role != "Manager" {
		t.Fatalf("role not passed: %+v", stub.updateInput)
	}
	if stub.updateInput.FirstName != nil {
		t.Fatalf("unexpected firstName in patch")
	}
}

func TestEmployeeGrpcHandler_DeleteEmployee_NotFound(t *testing.T) {
	t.Parallel()

	stub := &stubEmployeeUseCase{deleteErr: employee.ErrNotFound}
	h := newTestHandler(stub)

	_, err := h.DeleteEmployee(context.Background(), &DeleteEmployeeRequest{EmployeeID: "0000AA"})
	if status.Code(err) != codes.NotFound {
		t.Fatalf("expected NotFound, got %v", err)
	}
	if stub.deleteInput.EmployeeID != "0000AA" {
		t.Fatalf("unexpected key: %s", stub.deleteInput.EmployeeID)
	}
}

func TestEmployeeService_JSONCodecRoundTrip(t *testing.T) {
	t.Parallel()

	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer(grpc.ForceServerCodec(JSONCodec{}))
	stub := &stubEmployeeUseCase{
		createOut: sampleEmployee(),
		listOut:   []*employee.Employee{sampleEmployee()},
		deleteErr: employee.ErrNotFound,
	}
	RegisterEmployeeServiceServer(srv, newTestHandler(stub))
	go func() {
		_ = srv.Serve(lis)
	}()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })

	client := NewEmployeeServiceClient(conn)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	created, err := client.CreateEmployee(ctx, &CreateEmployeeRequest{EmployeeID: "1234AB", DateOfJoining: "2023-01-10"})
	if err != nil {
		t.Fatalf("CreateEmployee returned error: %v", err)
	}
	if created.Employee == nil || created.Employee.EmployeeID != "1234AB" {
		t.Fatalf("unexpected create response: %+v", created)
	}
	if !created.Employee.CreatedAt.Equal(sampleEmployee().CreatedAt) {
		t.Fatalf("createdAt lost in transit: %v", created.Employee.CreatedAt)
	}

	listed, err := client.ListEmployees(ctx, &ListEmployeesRequest{})
	if err != nil {
		t.Fatalf("ListEmployees returned error: %v", err)
	}
	if len(listed.Employees) != 1 || listed.Employees[0].DateOfJoining != "2023-01-10" {
		t.Fatalf("unexpected list response: %+v", listed.Employees)
	}

	_, err = client.DeleteEmployee(ctx, &DeleteEmployeeRequest{EmployeeID: "0000AA"})
	if status.Code(err) != codes.NotFound {
		t.Fatalf("expected NotFound over the wire, got %v", err)
	}
}
