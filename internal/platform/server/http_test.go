package server

import (
	"context"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	httphandler "github.com/ogurasousui/employee-records/internal/adapters/http/handler"
	"github.com/ogurasousui/employee-records/internal/core/employee"
	"github.com/ogurasousui/employee-records/internal/platform/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type emptyUseCase struct{}

func (emptyUseCase) CreateEmployee(context.Context, employee.CreateEmployeeInput) (*employee.Employee, error) {
	return &employee.Employee{}, nil
}

func (emptyUseCase) ListEmployees(context.Context) ([]*employee.Employee, error) {
	return []*employee.Employee{}, nil
}

func (emptyUseCase) UpdateEmployee(context.Context, employee.UpdateEmployeeInput) (*employee.Employee, error) {
	return &employee.Employee{}, nil
}

func (emptyUseCase) DeleteEmployee(context.Context, employee.DeleteEmployeeInput) error {
	return nil
}

func newTestHTTPServer(origins ...string) *HTTPServer {
	h := httphandler.NewEmployeeHTTPHandler(emptyUseCase{}, log.New(io.Discard, "", 0))
	return NewHTTP(config.HTTPConfig{ListenAddr: "127.0.0.1:0", AllowedOrigins: origins}, h)
}

func TestHTTPServer_Healthz(t *testing.T) {
	t.Parallel()

	srv := newTestHTTPServer()
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
}

func TestHTTPServer_RoutesEmployees(t *testing.T) {
	t.Parallel()

	srv := newTestHTTPServer()
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/employees", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestHTTPServer_CORSPreflight(t *testing.T) {
	t.Parallel()

	srv := newTestHTTPServer("http://localhost:3000")

	req := httptest.NewRequest(http.MethodOptions, "/employees", nil)
	req.Header.Set(echo.HeaderOrigin, "http://localhost:3000")
	req.Header.Set(echo.HeaderAccessControlRequestMethod, http.MethodPut)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "http://localhost:3000", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
}

func TestHTTPServer_RunStopsOnCancel(t *testing.T) {
	t.Parallel()

	srv := newTestHTTPServer()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	cancel()
	assert.NoError(t, <-done)
}
