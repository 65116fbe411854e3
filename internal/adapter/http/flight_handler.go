package http

import (
	"github.com/labstack/echo/v4"

	"github.com/airline-ops/airline-inventory-system/internal/adapter/http/response"
	"github.com/airline-ops/airline-inventory-system/internal/domain"
	"github.com/airline-ops/airline-inventory-system/internal/usecase"
)

// FlightHandler handles HTTP requests for concrete flights and their seat
// inventory.
type FlightHandler struct {
	useCase usecase.FlightUseCase
}

// NewFlightHandler creates a FlightHandler with the given use case.
func NewFlightHandler(uc usecase.FlightUseCase) *FlightHandler {
	return &FlightHandler{useCase: uc}
}

// flightResponse is a flight together with its current per-class sale
// prices, derived from the first open seat window of each class.
type flightResponse struct {
	*domain.Flight
	SalePrices map[string]float64 `json:"salePrices"`
}

func (h *FlightHandler) toResponse(flight *domain.Flight) *flightResponse {
	return &flightResponse{
		Flight:     flight,
		SalePrices: h.useCase.SalePrices(flight),
	}
}

// CreateFlight handles POST /api/v1/flights
//
// @Summary Create a flight
// @Description Create a concrete scheduled flight. The seat window totals must sum to the airplane's seat capacity.
// @Tags flights
// @Accept json
// @Produce json
// @Param request body CreateFlightRequest true "Flight attributes"
// @Success 201 {object} domain.Flight
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Security BearerAuth
// @Router /api/v1/flights [post]
func (h *FlightHandler) CreateFlight(c echo.Context) error {
	var req CreateFlightRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	input, err := req.ToInput()
	if err != nil {
		return response.ValidationErrorWithMessage(c, err.Error())
	}

	flight, err := h.useCase.Create(c.Request().Context(), input)
	if err != nil {
		return handleDomainError(c, err)
	}
	return response.Created(c, flight)
}

// GetFlight handles GET /api/v1/flights/:id
//
// @Summary Get a flight by ID
// @Description Returns the flight with its current per-class sale prices.
// @Tags flights
// @Produce json
// @Param id path int true "Flight ID"
// @Success 200 {object} domain.Flight
// @Failure 404 {object} response.ErrorDetail "Not found"
// @Router /api/v1/flights/{id} [get]
func (h *FlightHandler) GetFlight(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, err.Error())
	}
	flight, err := h.useCase.GetByID(c.Request().Context(), id)
	if err != nil {
		return handleDomainError(c, err)
	}
	return response.OK(c, h.toResponse(flight))
}

// GetFlightByNumber handles GET /api/v1/flights/number/:number
//
// @Summary Get a flight by flight number
// @Tags flights
// @Produce json
// @Param number path string true "Flight number"
// @Success 200 {object} domain.Flight
// @Failure 404 {object} response.ErrorDetail "Not found"
// @Router /api/v1/flights/number/{number} [get]
func (h *FlightHandler) GetFlightByNumber(c echo.Context) error {
	number := c.Param("number")
	if number == "" {
		return response.BadRequest(c, "flight number is required")
	}
	flight, err := h.useCase.GetByFlightNumber(c.Request().Context(), number)
	if err != nil {
		return handleDomainError(c, err)
	}
	return response.OK(c, h.toResponse(flight))
}

// UpdateFlightStatus handles PATCH /api/v1/flights/:id/status
//
// @Summary Update a flight's status
// @Tags flights
// @Accept json
// @Produce json
// @Param id path int true "Flight ID"
// @Param request body UpdateFlightStatusRequest true "New status"
// @Success 200 {object} domain.Flight
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 404 {object} response.ErrorDetail "Not found"
// @Security BearerAuth
// @Router /api/v1/flights/{id}/status [patch]
func (h *FlightHandler) UpdateFlightStatus(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, err.Error())
	}
	var req UpdateFlightStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	flight, err := h.useCase.UpdateStatus(c.Request().Context(), id, domain.FlightStatus(req.Status))
	if err != nil {
		return handleDomainError(c, err)
	}
	return response.OK(c, flight)
}

// DeleteFlight handles DELETE /api/v1/flights/:id
//
// @Summary Delete a flight
// @Tags flights
// @Param id path int true "Flight ID"
// @Success 204
// @Failure 404 {object} response.ErrorDetail "Not found"
// @Security BearerAuth
// @Router /api/v1/flights/{id} [delete]
func (h *FlightHandler) DeleteFlight(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, err.Error())
	}
	if err := h.useCase.Delete(c.Request().Context(), id); err != nil {
		return handleDomainError(c, err)
	}
	return response.NoContent(c)
}

// DecrementSeats handles POST /api/v1/flights/:id/seats/decrement
//
// @Summary Sell seats from a fare class
// @Description Decrements seats from the first window of the class that can satisfy the full request. Fails with 422 when no single window has enough seats.
// @Tags flights
// @Accept json
// @Produce json
// @Param id path int true "Flight ID"
// @Param request body DecrementSeatsRequest true "Class and seat count"
// @Success 200 {object} domain.Flight
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 404 {object} response.ErrorDetail "Not found"
// @Failure 422 {object} response.ErrorDetail "Insufficient inventory"
// @Router /api/v1/flights/{id}/seats/decrement [post]
func (h *FlightHandler) DecrementSeats(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, err.Error())
	}
	var req DecrementSeatsRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	if err := req.Validate(); err != nil {
		return response.ValidationErrorWithMessage(c, err.Error())
	}

	flight, err := h.useCase.DecrementSeats(c.Request().Context(), id, domain.CabinClass(req.Class), req.Seats)
	if err != nil {
		return handleDomainError(c, err)
	}
	return response.OK(c, h.toResponse(flight))
}
