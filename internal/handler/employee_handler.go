package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/peopleops/employee-registry/internal/apperror"
	"github.com/peopleops/employee-registry/internal/domain"
	"github.com/peopleops/employee-registry/internal/export"
	"github.com/peopleops/employee-registry/internal/logger"
	"github.com/peopleops/employee-registry/internal/pagination"
	"github.com/peopleops/employee-registry/internal/service"
	"github.com/peopleops/employee-registry/internal/validation"
)

type EmployeeHandler struct {
	svc       service.EmployeeService
	validator *validation.Validator
}

func NewEmployeeHandler(svc service.EmployeeService, v *validation.Validator) *EmployeeHandler {
	return &EmployeeHandler{svc: svc, validator: v}
}

func (h *EmployeeHandler) CreateHandler(c echo.Context) error {
	var req validation.CreateEmployeeRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, apperror.Wrap(apperror.CodeValidation, "invalid request body", err))
	}

	emp, err := h.validator.ValidateCreate(req)
	if err != nil {
		return respondError(c, err)
	}

	created, err := h.svc.Create(c.Request().Context(), emp)
	if err != nil {
		return respondError(c, err)
	}

	return respondSuccess(c, http.StatusCreated, "Employee created successfully",
		map[string]interface{}{"employee": created})
}

func (h *EmployeeHandler) GetHandler(c echo.Context) error {
	employeeID := c.Param("employee_id")

	emp, err := h.svc.Get(c.Request().Context(), employeeID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, emp)
}

func (h *EmployeeHandler) ListHandler(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	var department *domain.Department
	if raw := c.QueryParam("department"); raw != "" {
		dept := domain.Department(raw)
		if !dept.Valid() {
			return respondError(c, apperror.NewValidation("invalid employee payload",
				map[string]string{"department": "is not a valid department"}))
		}
		department = &dept
	}

	result, err := h.svc.List(c.Request().Context(), department, pagination.NewParams(page, limit))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, result)
}

func (h *EmployeeHandler) UpdateHandler(c echo.Context) error {
	employeeID := c.Param("employee_id")

	var req validation.UpdateEmployeeRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, apperror.Wrap(apperror.CodeValidation, "invalid request body", err))
	}

	upd, err := h.validator.ValidateUpdate(req)
	if err != nil {
		return respondError(c, err)
	}

	updated, err := h.svc.Update(c.Request().Context(), employeeID, upd)
	if err != nil {
		return respondError(c, err)
	}

	return respondSuccess(c, http.StatusOK, "Employee updated successfully",
		map[string]interface{}{"employee": updated})
}

func (h *EmployeeHandler) DeleteHandler(c echo.Context) error {
	employeeID := c.Param("employee_id")

	deletedID, err := h.svc.Delete(c.Request().Context(), employeeID)
	if err != nil {
		return respondError(c, err)
	}

	return respondSuccess(c, http.StatusOK, "Employee deleted successfully",
		map[string]interface{}{"deleted_employee_id": deletedID})
}

func (h *EmployeeHandler) DepartmentsHandler(c echo.Context) error {
	logger.DebugLog(c.Request().Context(), "Fetching available departments")
	return c.JSON(http.StatusOK, DepartmentsResponse{Departments: domain.Departments()})
}

func (h *EmployeeHandler) SearchHandler(c echo.Context) error {
	name := c.QueryParam("q")
	if name == "" {
		return respondError(c, apperror.NewValidation("invalid search request",
			map[string]string{"q": "is required"}))
	}

	employees, err := h.svc.Search(c.Request().Context(), name)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, SearchResponse{Employees: employees})
}

func (h *EmployeeHandler) ExportHandler(c echo.Context) error {
	employees, err := h.svc.ListAll(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}

	data, err := export.BuildEmployeeWorkbook(employees)
	if err != nil {
		return respondError(c, apperror.Wrap(apperror.CodeInternal, "failed to generate workbook", err))
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="employees.xlsx"`)
	return c.Blob(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}
