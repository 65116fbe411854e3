// Package response provides standardized HTTP response builders for the
// airline inventory API.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// BadRequest writes a 400 Bad Request response with the given error message.
func BadRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, &ErrorDetail{
		Code:    CodeInvalidRequest,
		Message: message,
	})
}

// InvalidRequestBody writes a 400 Bad Request response for malformed request bodies.
func InvalidRequestBody(c echo.Context) error {
	return c.JSON(http.StatusBadRequest, &ErrorDetail{
		Code:    CodeInvalidRequest,
		Message: MsgInvalidRequestBody,
	})
}

// ValidationError writes a 400 Bad Request response with validation error details.
func ValidationError(c echo.Context, details map[string]string) error {
	return c.JSON(http.StatusBadRequest, &ErrorDetail{
		Code:    CodeValidationError,
		Message: MsgValidationFailed,
		Details: details,
	})
}

// ValidationErrorWithMessage writes a 400 Bad Request response with a custom message.
func ValidationErrorWithMessage(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, &ErrorDetail{
		Code:    CodeValidationError,
		Message: message,
	})
}

// NotFound writes a 404 Not Found response with the given message.
func NotFound(c echo.Context, message string) error {
	return c.JSON(http.StatusNotFound, &ErrorDetail{
		Code:    CodeNotFound,
		Message: message,
	})
}

// Unauthorized writes a 401 Unauthorized response with the given message.
func Unauthorized(c echo.Context, message string) error {
	return c.JSON(http.StatusUnauthorized, &ErrorDetail{
		Code:    CodeUnauthorized,
		Message: message,
	})
}

// Forbidden writes a 403 Forbidden response.
func Forbidden(c echo.Context) error {
	return c.JSON(http.StatusForbidden, &ErrorDetail{
		Code:    CodeForbidden,
		Message: "insufficient role for this operation",
	})
}

// Overlap writes a 409 Conflict response for rotation time overlaps.
func Overlap(c echo.Context, message string) error {
	return c.JSON(http.StatusConflict, &ErrorDetail{
		Code:    CodeOverlap,
		Message: message,
	})
}

// Conflict writes a 409 Conflict response for concurrent-modification failures.
func Conflict(c echo.Context, message string) error {
	return c.JSON(http.StatusConflict, &ErrorDetail{
		Code:    CodeConflict,
		Message: message,
	})
}

// InsufficientInventory writes a 422 Unprocessable Entity response for seat
// decrements no single window can satisfy.
func InsufficientInventory(c echo.Context, message string) error {
	return c.JSON(http.StatusUnprocessableEntity, &ErrorDetail{
		Code:    CodeInsufficientInventory,
		Message: message,
	})
}

// InternalServerError writes a 500 Internal Server Error response.
func InternalServerError(c echo.Context) error {
	return c.JSON(http.StatusInternalServerError, &ErrorDetail{
		Code:    CodeInternalError,
		Message: MsgInternalError,
	})
}
