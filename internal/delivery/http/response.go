package http

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
	"todo-auth-service/internal/apperr"
)

// Envelope is the uniform JSON response shape for every route.
type Envelope struct {
	Success           bool        `json:"success"`
	Message           string      `json:"message,omitempty"`
	Data              interface{} `json:"data,omitempty"`
	Error             interface{} `json:"error,omitempty"`
	IsValidationError bool        `json:"isValidationError,omitempty"`
}

func respondOK(c echo.Context, status int, message string, data interface{}) error {
	return c.JSON(status, Envelope{Success: true, Message: message, Data: data})
}

// respondError converts an application error into the envelope with a
// status derived from its kind. Unknown errors become a 500 whose message
// is suppressed in production.
func respondError(c echo.Context, err error, production bool) error {
	kind := apperr.KindOf(err)

	switch kind {
	case apperr.KindValidation:
		body := Envelope{Success: false, Error: err.Error(), IsValidationError: true}
		if fields := apperr.FieldsOf(err); len(fields) > 0 {
			body.Error = fields
		}
		return c.JSON(http.StatusBadRequest, body)
	case apperr.KindConflict, apperr.KindUnsupportedProvider:
		return c.JSON(http.StatusBadRequest, Envelope{Success: false, Error: err.Error()})
	case apperr.KindAuth:
		return c.JSON(http.StatusUnauthorized, Envelope{Success: false, Error: err.Error()})
	case apperr.KindNotFound:
		return c.JSON(http.StatusNotFound, Envelope{Success: false, Error: err.Error()})
	}

	log.Printf("internal error on %s %s: %v", c.Request().Method, c.Request().URL.Path, err)
	message := err.Error()
	if production {
		message = "Internal Server Error"
	}
	return c.JSON(http.StatusInternalServerError, Envelope{Success: false, Error: message})
}
