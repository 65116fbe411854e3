package http

import (
	"errors"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/airline-ops/airline-inventory-system/internal/adapter/http/response"
	"github.com/airline-ops/airline-inventory-system/internal/domain"
)

// pathID parses the named path parameter as an entity identifier.
func pathID(c echo.Context, name string) (uint64, error) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, errors.New(name + " must be a positive integer")
	}
	return id, nil
}

// handleDomainError maps domain errors to HTTP responses. The order matters:
// ErrOverlap and ErrInsufficientInventory wrap more specific situations than
// the generic validation and conflict sentinels.
func handleDomainError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return response.NotFound(c, err.Error())
	case errors.Is(err, domain.ErrOverlap):
		return response.Overlap(c, err.Error())
	case errors.Is(err, domain.ErrInsufficientInventory):
		return response.InsufficientInventory(c, err.Error())
	case errors.Is(err, domain.ErrValidation):
		return response.ValidationErrorWithMessage(c, err.Error())
	case errors.Is(err, domain.ErrConflict):
		return response.Conflict(c, err.Error())
	default:
		return response.InternalServerError(c)
	}
}
