package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := New(srv.URL+"/", srv.Client())
	require.NoError(t, err)
	return c
}

func TestNew_RejectsRelativeURL(t *testing.T) {
	t.Parallel()

	_, err := New("localhost:5000", nil)
	assert.Error(t, err)
}

func TestClient_Add(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/add-employee", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "1234AB", body["employeeId"])
		assert.Equal(t, "5551234567", body["phoneNumber"])

		_, _ = w.Write([]byte(`{"message":"Employee added successfully!"}`))
	})

	msg, err := c.Add(context.Background(), EmployeeInput{EmployeeID: "1234AB", PhoneNumber: "5551234567"})
	require.NoError(t, err)
	assert.Equal(t, "Employee added successfully!", msg)
}

func TestClient_AddValidationError(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"Validation failed.","violations":[{"field":"employeeId","kind":"format","message":"bad"}]}`))
	})

	_, err := c.Add(context.Background(), EmployeeInput{EmployeeID: "12AB"})

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "Validation failed.", apiErr.Message)
	require.Len(t, apiErr.Violations, 1)
	assert.Equal(t, "employeeId", apiErr.Violations[0].Field)
	assert.Contains(t, err.Error(), "employeeId bad")
}

func TestClient_List(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/employees", r.URL.Path)
		_, _ = w.Write([]byte(`[{"firstName":"Ann","employeeId":"1234AB","dateOfJoining":"2023-01-10","createdAt":"2025-01-01T00:00:00Z","updatedAt":"2025-01-01T00:00:00Z"}]`))
	})

	employees, err := c.List(context.Background())
	require.NoError(t, err)
	require.Len(t, employees, 1)
	assert.Equal(t, "1234AB", employees[0].EmployeeID)
	assert.Equal(t, "2023-01-10", employees[0].DateOfJoining)
}

func TestClient_UpdateSendsOnlySetFields(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/employees/1234AB", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]any{"role": "Manager"}, body)

		_, _ = w.Write([]byte(`{"message":"Employee updated successfully!"}`))
	})

	role := "Manager"
	msg, err := c.Update(context.Background(), "1234AB", UpdateInput{Role: &role})
	require.NoError(t, err)
	assert.Equal(t, "Employee updated successfully!", msg)
}

func TestClient_DeleteNotFound(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"Employee not found."}`))
	})

	_, err := c.Delete(context.Background(), "0000AA")
	assert.True(t, IsNotFound(err))
}

func TestClient_NonJSONErrorBody(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream down"))
	})

	_, err := c.List(context.Background())

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusText(http.StatusBadGateway), apiErr.Message)
}
