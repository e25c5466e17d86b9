package utils

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Envelope is the JSON body shape shared by every HTTP endpoint.
// Successful responses carry Data; failures carry Error.
type Envelope struct {
	OK    bool        `json:"ok"`
	Data  interface{} `json:"data,omitempty"`
	Error *APIError   `json:"error,omitempty"`
}

// APIError carries the HTTP status alongside a human-readable message
// so clients can branch without re-parsing the transport status line.
type APIError struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// WriteJSON sends data wrapped in the shared envelope.
func WriteJSON(c echo.Context, statusCode int, data interface{}) error {
	return c.JSON(statusCode, Envelope{
		OK:   true,
		Data: data,
	})
}

// WriteError sends an error envelope. An empty message falls back to
// the standard status text.
func WriteError(c echo.Context, statusCode int, message string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}
	return c.JSON(statusCode, Envelope{
		Error: &APIError{
			Status:  statusCode,
			Message: message,
		},
	})
}

// BadRequest sends a 400 error envelope.
func BadRequest(c echo.Context, message string) error {
	return WriteError(c, http.StatusBadRequest, message)
}

// Unauthorized sends a 401 error envelope.
func Unauthorized(c echo.Context, message string) error {
	return WriteError(c, http.StatusUnauthorized, message)
}

// NotFound sends a 404 error envelope.
func NotFound(c echo.Context, message string) error {
	return WriteError(c, http.StatusNotFound, message)
}

// Conflict sends a 409 error envelope.
func Conflict(c echo.Context, message string) error {
	return WriteError(c, http.StatusConflict, message)
}

// InternalError sends a 500 error envelope.
func InternalError(c echo.Context, message string) error {
	return WriteError(c, http.StatusInternalServerError, message)
}
