package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/locvowork/employee_registry/internal/export"
	"github.com/locvowork/employee_registry/internal/logger"
	"github.com/locvowork/employee_registry/internal/repository"
	"github.com/locvowork/employee_registry/internal/service"
)

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

type employeeJSON struct {
	ID     int     `json:"id"`
	Name   string  `json:"name"`
	Role   string  `json:"role"`
	Salary float64 `json:"salary"`
	Bonus  float64 `json:"bonus"`
}

func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()
	logger.SetOutput(io.Discard)
	h := NewEmployeeHandler(service.NewEmployeeService(repository.NewEmployeeRepository()), 3)

	e := echo.New()
	e.POST("/employees", h.CreateHandler)
	e.GET("/employees", h.ListHandler)
	e.GET("/employees/recent", h.RecentHandler)
	e.GET("/employees/:id", h.GetHandler)
	e.DELETE("/employees/:id", h.DeleteHandler)
	e.GET("/payroll", h.PayrollHandler)
	e.GET("/export", h.ExportHandler)
	return e
}

func do(t *testing.T, e *echo.Echo, method, target, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var env envelope
	if strings.HasPrefix(rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}
	return rec, env
}

func hire(t *testing.T, e *echo.Echo, body string) {
	t.Helper()
	rec, env := do(t, e, http.MethodPost, "/employees", body)
	require.Equal(t, http.StatusCreated, rec.Code, env.Error)
}

func TestEmployeeHandler_Create(t *testing.T) {
	e := newTestServer(t)

	rec, env := do(t, e, http.MethodPost, "/employees", `{"id":1,"name":"Alice","age":40,"role":"manager","salary":1000}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, env.Success)

	var got employeeJSON
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, employeeJSON{ID: 1, Name: "Alice", Role: "Manager", Salary: 1000, Bonus: 200}, got)

	t.Run("Duplicate id", func(t *testing.T) {
		rec, env := do(t, e, http.MethodPost, "/employees", `{"id":1,"name":"Other","role":"intern"}`)
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.False(t, env.Success)
		assert.Contains(t, env.Error, "already exists")
	})

	t.Run("Invalid role", func(t *testing.T) {
		rec, _ := do(t, e, http.MethodPost, "/employees", `{"id":2,"name":"Zed","role":"wizard"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Malformed body", func(t *testing.T) {
		rec, _ := do(t, e, http.MethodPost, "/employees", `{"id":`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestEmployeeHandler_GetAndDelete(t *testing.T) {
	e := newTestServer(t)
	hire(t, e, `{"id":7,"name":"Grace","age":45,"role":"engineer","salary":2000}`)

	rec, env := do(t, e, http.MethodGet, "/employees/7", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var got employeeJSON
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, "Engineer", got.Role)
	assert.InDelta(t, 300.0, got.Bonus, 1e-9)

	rec, _ = do(t, e, http.MethodGet, "/employees/abc", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = do(t, e, http.MethodDelete, "/employees/7", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, _ = do(t, e, http.MethodDelete, "/employees/7", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, _ = do(t, e, http.MethodGet, "/employees/7", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestEmployeeHandler_ListRecentPayroll(t *testing.T) {
	e := newTestServer(t)

	rec, env := do(t, e, http.MethodGet, "/employees", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, string(env.Data))

	_, env = do(t, e, http.MethodGet, "/payroll", "")
	assert.JSONEq(t, `{"headcount":0,"total":0,"average":0}`, string(env.Data))

	hire(t, e, `{"id":1,"name":"Alice","role":"manager","salary":1000}`)
	hire(t, e, `{"id":2,"name":"Bob","role":"engineer","salary":2000}`)
	hire(t, e, `{"id":3,"name":"Ivy","role":"intern","salary":500}`)
	hire(t, e, `{"id":4,"name":"Dan","role":"employee","salary":1500}`)

	_, env = do(t, e, http.MethodGet, "/employees", "")
	var list []employeeJSON
	require.NoError(t, json.Unmarshal(env.Data, &list))
	require.Len(t, list, 4)
	assert.Equal(t, "Alice", list[0].Name)
	assert.Equal(t, "Dan", list[3].Name)
	assert.InDelta(t, 150.0, list[3].Bonus, 1e-9)

	t.Run("Recent uses configured default", func(t *testing.T) {
		_, env := do(t, e, http.MethodGet, "/employees/recent", "")
		var recent []employeeJSON
		require.NoError(t, json.Unmarshal(env.Data, &recent))
		require.Len(t, recent, 3)
		assert.Equal(t, []int{2, 3, 4}, []int{recent[0].ID, recent[1].ID, recent[2].ID})
	})

	t.Run("Recent with count", func(t *testing.T) {
		_, env := do(t, e, http.MethodGet, "/employees/recent?count=2", "")
		var recent []employeeJSON
		require.NoError(t, json.Unmarshal(env.Data, &recent))
		require.Len(t, recent, 2)
		assert.Equal(t, 3, recent[0].ID)
		assert.Equal(t, 4, recent[1].ID)
	})

	t.Run("Recent with non-positive count", func(t *testing.T) {
		_, env := do(t, e, http.MethodGet, "/employees/recent?count=-1", "")
		assert.JSONEq(t, `[]`, string(env.Data))
	})

	t.Run("Recent with bad count", func(t *testing.T) {
		rec, _ := do(t, e, http.MethodGet, "/employees/recent?count=x", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Payroll", func(t *testing.T) {
		_, env := do(t, e, http.MethodGet, "/payroll", "")
		var p struct {
			Headcount int     `json:"headcount"`
			Total     float64 `json:"total"`
			Average   float64 `json:"average"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &p))
		assert.Equal(t, 4, p.Headcount)
		assert.InDelta(t, 5000.0, p.Total, 1e-9)
		assert.InDelta(t, 1250.0, p.Average, 1e-9)
	})
}

func TestEmployeeHandler_Export(t *testing.T) {
	e := newTestServer(t)
	hire(t, e, `{"id":1,"name":"Alice","role":"manager","salary":1000}`)

	rec, _ := do(t, e, http.MethodGet, "/export", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, export.ContentType, rec.Header().Get(echo.HeaderContentType))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "employees.xlsx")

	f, err := excelize.OpenReader(bytes.NewReader(rec.Body.Bytes()))
	require.NoError(t, err)
	defer f.Close()
	name, err := f.GetCellValue(export.EmployeesSheet, "B2")
	require.NoError(t, err)
	assert.Equal(t, "Alice", name)
}
