package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/locvowork/employee_registry/internal/domain"
	"github.com/locvowork/employee_registry/internal/export"
	"github.com/locvowork/employee_registry/internal/service"
	"github.com/locvowork/employee_registry/internal/service/serviceutils"
)

type EmployeeHandler struct {
	svc         *service.EmployeeService
	recentCount int
}

// NewEmployeeHandler creates the employee API handler. recentCount is used
// by the recent endpoint when the request does not give a count.
func NewEmployeeHandler(svc *service.EmployeeService, recentCount int) *EmployeeHandler {
	return &EmployeeHandler{svc: svc, recentCount: recentCount}
}

// statusFor maps domain errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrDuplicateID):
		return http.StatusConflict
	case errors.Is(err, domain.ErrEmployeeNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidRole):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func views(list []domain.Employee) []domain.EmployeeView {
	out := make([]domain.EmployeeView, 0, len(list))
	for _, e := range list {
		out = append(out, domain.NewEmployeeView(e))
	}
	return out
}

func (h *EmployeeHandler) CreateHandler(c echo.Context) error {
	var req service.HireRequest
	if err := c.Bind(&req); err != nil {
		return serviceutils.ResponseError(c, http.StatusBadRequest, "Invalid request body", err)
	}

	e, err := h.svc.Hire(c.Request().Context(), req)
	if err != nil {
		return serviceutils.ResponseError(c, statusFor(err), "Failed to create employee", err)
	}

	return serviceutils.ResponseSuccess(c, http.StatusCreated, "Employee created successfully", domain.NewEmployeeView(e))
}

func (h *EmployeeHandler) GetHandler(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return serviceutils.ResponseError(c, http.StatusBadRequest, "Invalid employee ID", err)
	}

	e, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return serviceutils.ResponseError(c, statusFor(err), "Failed to get employee", err)
	}

	return serviceutils.ResponseSuccess(c, http.StatusOK, "Employee retrieved successfully", domain.NewEmployeeView(e))
}

func (h *EmployeeHandler) DeleteHandler(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return serviceutils.ResponseError(c, http.StatusBadRequest, "Invalid employee ID", err)
	}

	if err := h.svc.Dismiss(c.Request().Context(), id); err != nil {
		return serviceutils.ResponseError(c, statusFor(err), "Failed to delete employee", err)
	}

	return serviceutils.ResponseSuccess(c, http.StatusOK, "Employee deleted successfully", nil)
}

func (h *EmployeeHandler) ListHandler(c echo.Context) error {
	employees := h.svc.List(c.Request().Context())
	return serviceutils.ResponseSuccess(c, http.StatusOK, "Employees listed successfully", views(employees))
}

func (h *EmployeeHandler) RecentHandler(c echo.Context) error {
	count := h.recentCount
	if raw := c.QueryParam("count"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return serviceutils.ResponseError(c, http.StatusBadRequest, "Invalid count", err)
		}
		count = n
	}

	employees := h.svc.Recent(c.Request().Context(), count)
	return serviceutils.ResponseSuccess(c, http.StatusOK, "Recent employees listed successfully", views(employees))
}

func (h *EmployeeHandler) PayrollHandler(c echo.Context) error {
	p := h.svc.Payroll(c.Request().Context())
	return serviceutils.ResponseSuccess(c, http.StatusOK, "Payroll calculated successfully", p)
}

func (h *EmployeeHandler) ExportHandler(c echo.Context) error {
	ctx := c.Request().Context()
	data, err := export.NewRosterExporter(h.svc.List(ctx), h.svc.Payroll(ctx)).ToBytes()
	if err != nil {
		return serviceutils.ResponseError(c, http.StatusInternalServerError, "Failed to generate excel file", err)
	}

	c.Response().Header().Set("Content-Disposition", `attachment; filename="employees.xlsx"`)
	c.Response().Header().Set("Content-Transfer-Encoding", "binary")
	return c.Blob(http.StatusOK, export.ContentType, data)
}
