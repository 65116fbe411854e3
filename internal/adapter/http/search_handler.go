package http

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/airline-ops/airline-inventory-system/internal/adapter/http/response"
	"github.com/airline-ops/airline-inventory-system/internal/usecase"
)

// SearchHandler handles HTTP requests for itinerary search.
type SearchHandler struct {
	useCase usecase.ItinerarySearchUseCase
}

// NewSearchHandler creates a SearchHandler with the given use case.
func NewSearchHandler(uc usecase.ItinerarySearchUseCase) *SearchHandler {
	return &SearchHandler{useCase: uc}
}

// SearchItineraries handles GET /api/v1/itineraries/search
//
// @Summary Search itineraries between two cities
// @Description Returns all valid single- and multi-hop itineraries from the departure city to the arrival city on the travel date, subject to the domestic/international connection policy.
// @Tags itineraries
// @Produce json
// @Param from query int true "Departure city ID"
// @Param to query int true "Arrival city ID"
// @Param date query string true "Travel date (YYYY-MM-DD)"
// @Success 200 {array} domain.Itinerary
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 404 {object} response.ErrorDetail "Unknown city"
// @Router /api/v1/itineraries/search [get]
func (h *SearchHandler) SearchItineraries(c echo.Context) error {
	from, err := queryID(c, "from")
	if err != nil {
		return response.BadRequest(c, err.Error())
	}
	to, err := queryID(c, "to")
	if err != nil {
		return response.BadRequest(c, err.Error())
	}
	date, err := parseDate("date", c.QueryParam("date"))
	if err != nil {
		return response.BadRequest(c, err.Error())
	}

	itineraries, err := h.useCase.Search(c.Request().Context(), from, to, date)
	if err != nil {
		return handleDomainError(c, err)
	}
	return response.OK(c, itineraries)
}

// queryID parses the named query parameter as an entity identifier.
func queryID(c echo.Context, name string) (uint64, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return 0, &missingParamError{name}
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, &missingParamError{name}
	}
	return id, nil
}

type missingParamError struct{ name string }

func (e *missingParamError) Error() string {
	return e.name + " must be a positive integer city ID"
}

// HealthCheck handles GET /health
//
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} response.HealthResponse
// @Router /health [get]
func HealthCheck(version string) echo.HandlerFunc {
	return func(c echo.Context) error {
		return response.Health(c, version)
	}
}
