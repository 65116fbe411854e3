package http

import (
	"github.com/labstack/echo/v4"

	"github.com/airline-ops/airline-inventory-system/internal/adapter/http/response"
	"github.com/airline-ops/airline-inventory-system/internal/usecase"
)

// RotationHandler handles HTTP requests for rotation templates and the
// materialization trigger.
type RotationHandler struct {
	rotations    usecase.RotationUseCase
	materializer usecase.MaterializerUseCase
}

// NewRotationHandler creates a RotationHandler with the given use cases.
func NewRotationHandler(rotations usecase.RotationUseCase, materializer usecase.MaterializerUseCase) *RotationHandler {
	return &RotationHandler{
		rotations:    rotations,
		materializer: materializer,
	}
}

// CreateRotation handles POST /api/v1/rotations
//
// @Summary Create a rotation template
// @Description Create a repeating closed-loop flight plan for an airplane. Rejected when its occupied time span overlaps an active rotation of the same airplane.
// @Tags rotations
// @Accept json
// @Produce json
// @Param request body CreateRotationRequest true "Rotation template"
// @Success 201 {object} domain.Rotation
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 409 {object} response.ErrorDetail "Rotation overlap"
// @Security BearerAuth
// @Router /api/v1/rotations [post]
func (h *RotationHandler) CreateRotation(c echo.Context) error {
	var req CreateRotationRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	input, err := req.ToInput()
	if err != nil {
		return response.ValidationErrorWithMessage(c, err.Error())
	}

	rotation, err := h.rotations.Create(c.Request().Context(), input)
	if err != nil {
		return handleDomainError(c, err)
	}
	return response.Created(c, rotation)
}

// CancelRotation handles DELETE /api/v1/rotations/:id
//
// @Summary Cancel a rotation
// @Description Marks the rotation cancelled so the materializer skips it. Already-generated flights are unaffected.
// @Tags rotations
// @Param id path int true "Rotation ID"
// @Success 204
// @Failure 404 {object} response.ErrorDetail "Not found"
// @Security BearerAuth
// @Router /api/v1/rotations/{id} [delete]
func (h *RotationHandler) CancelRotation(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, err.Error())
	}
	if err := h.rotations.Cancel(c.Request().Context(), id); err != nil {
		return handleDomainError(c, err)
	}
	return response.NoContent(c)
}

// Materialize handles POST /api/v1/rotations/materialize
//
// @Summary Materialize upcoming flights
// @Description Expands every active rotation into concrete flights for the configured forward horizon and advances each rotation's cursor. Intended to be triggered by a scheduler.
// @Tags rotations
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 500 {object} response.ErrorDetail "Materialization failure"
// @Security BearerAuth
// @Router /api/v1/rotations/materialize [post]
func (h *RotationHandler) Materialize(c echo.Context) error {
	if err := h.materializer.MaterializeUpcoming(c.Request().Context()); err != nil {
		return handleDomainError(c, err)
	}
	return response.OK(c, map[string]string{"status": "materialized"})
}
