package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/peopleops/employee-registry/internal/apperror"
	"github.com/peopleops/employee-registry/internal/logger"
)

// MessageResponse is the success envelope for mutating operations.
type MessageResponse struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// ErrorResponse is the failure envelope. Fields carries per-field detail for
// validation failures.
type ErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

func respondSuccess(c echo.Context, status int, message string, data interface{}) error {
	return c.JSON(status, MessageResponse{Message: message, Data: data})
}

// respondError maps the outcome taxonomy onto HTTP statuses. Internal
// failures are logged with their cause and answered with a generic body so
// store error text never reaches callers.
func respondError(c echo.Context, err error) error {
	code := apperror.GetCode(err)

	var status int
	switch code {
	case apperror.CodeValidation, apperror.CodeNoFields, apperror.CodeConflict:
		status = http.StatusBadRequest
	case apperror.CodeNotFound:
		status = http.StatusNotFound
	default:
		status = http.StatusInternalServerError
		logger.ErrorLog(c.Request().Context(), "Request failed", err)
	}

	return c.JSON(status, ErrorResponse{
		Error:  apperror.Message(err),
		Fields: apperror.GetFields(err),
	})
}
