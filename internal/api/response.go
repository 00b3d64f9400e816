package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pablozramirez73/questionari-webapp/internal/services"
)

// Envelope wraps all API responses in a consistent structure.
type Envelope struct {
	Success bool       `json:"success"`
	Data    any        `json:"data,omitempty"`
	Error   *ErrorInfo `json:"error,omitempty"`
}

// ErrorInfo contains error details for failed responses.
type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func ok(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Envelope{Success: true, Data: data})
}

func created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, Envelope{Success: true, Data: data})
}

func fail(c *gin.Context, status int, code, message string) {
	c.JSON(status, Envelope{Success: false, Error: &ErrorInfo{Code: code, Message: message}})
}

func badRequest(c *gin.Context, message string) {
	fail(c, http.StatusBadRequest, "bad_request", message)
}

func internalError(c *gin.Context, message string) {
	fail(c, http.StatusInternalServerError, "internal", message)
}

// failFromService maps service error codes onto HTTP statuses; anything that
// is not a ServiceError is a store/runtime failure.
func failFromService(c *gin.Context, err error) {
	se, okErr := services.AsServiceError(err)
	if !okErr {
		internalError(c, err.Error())
		return
	}
	status := http.StatusBadRequest
	if se.Code == services.ErrorNotFound {
		status = http.StatusNotFound
	}
	fail(c, status, string(se.Code), se.Message)
}
