package http

import (
	"github.com/labstack/echo/v4"

	"github.com/airline-ops/airline-inventory-system/internal/adapter/http/response"
	"github.com/airline-ops/airline-inventory-system/internal/domain"
)

// ReferenceHandler handles HTTP requests for the reference-data endpoints:
// countries, cities, airports and airplanes.
type ReferenceHandler struct {
	countries domain.CountryStore
	cities    domain.CityStore
	airports  domain.AirportStore
	airplanes domain.AirplaneStore
}

// NewReferenceHandler creates a ReferenceHandler backed by the given stores.
func NewReferenceHandler(
	countries domain.CountryStore,
	cities domain.CityStore,
	airports domain.AirportStore,
	airplanes domain.AirplaneStore,
) *ReferenceHandler {
	return &ReferenceHandler{
		countries: countries,
		cities:    cities,
		airports:  airports,
		airplanes: airplanes,
	}
}

// CreateCountry handles POST /api/v1/countries
//
// @Summary Create a country
// @Tags reference
// @Accept json
// @Produce json
// @Param request body CountryRequest true "Country attributes"
// @Success 201 {object} domain.Country
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Security BearerAuth
// @Router /api/v1/countries [post]
func (h *ReferenceHandler) CreateCountry(c echo.Context) error {
	var req CountryRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	if err := req.Validate(); err != nil {
		return response.ValidationErrorWithMessage(c, err.Error())
	}

	country := &domain.Country{Name: req.Name, Code: req.Code}
	id, err := h.countries.Insert(c.Request().Context(), country)
	if err != nil {
		return handleDomainError(c, err)
	}
	country.ID = id
	return response.Created(c, country)
}

// GetCountry handles GET /api/v1/countries/:id
//
// @Summary Get a country by ID
// @Tags reference
// @Produce json
// @Param id path int true "Country ID"
// @Success 200 {object} domain.Country
// @Failure 404 {object} response.ErrorDetail "Not found"
// @Router /api/v1/countries/{id} [get]
func (h *ReferenceHandler) GetCountry(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, err.Error())
	}
	country, err := h.countries.GetByID(c.Request().Context(), id)
	if err != nil {
		return handleDomainError(c, err)
	}
	return response.OK(c, country)
}

// ListCountries handles GET /api/v1/countries
//
// @Summary List all countries
// @Tags reference
// @Produce json
// @Success 200 {array} domain.Country
// @Router /api/v1/countries [get]
func (h *ReferenceHandler) ListCountries(c echo.Context) error {
	countries, err := h.countries.List(c.Request().Context())
	if err != nil {
		return handleDomainError(c, err)
	}
	return response.OK(c, countries)
}

// UpdateCountry handles PUT /api/v1/countries/:id
//
// @Summary Update a country
// @Tags reference
// @Accept json
// @Produce json
// @Param id path int true "Country ID"
// @Param request body CountryRequest true "Country attributes"
// @Success 200 {object} domain.Country
// @Failure 404 {object} response.ErrorDetail "Not found"
// @Security BearerAuth
// @Router /api/v1/countries/{id} [put]
func (h *ReferenceHandler) UpdateCountry(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, err.Error())
	}
	var req CountryRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	if err := req.Validate(); err != nil {
		return response.ValidationErrorWithMessage(c, err.Error())
	}

	country := &domain.Country{ID: id, Name: req.Name, Code: req.Code}
	if err := h.countries.Update(c.Request().Context(), country); err != nil {
		return handleDomainError(c, err)
	}
	return response.OK(c, country)
}

// DeleteCountry handles DELETE /api/v1/countries/:id
//
// @Summary Delete a country
// @Tags reference
// @Param id path int true "Country ID"
// @Success 204
// @Failure 404 {object} response.ErrorDetail "Not found"
// @Security BearerAuth
// @Router /api/v1/countries/{id} [delete]
func (h *ReferenceHandler) DeleteCountry(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, err.Error())
	}
	if err := h.countries.Delete(c.Request().Context(), id); err != nil {
		return handleDomainError(c, err)
	}
	return response.NoContent(c)
}

// CreateCity handles POST /api/v1/cities
//
// @Summary Create a city
// @Tags reference
// @Accept json
// @Produce json
// @Param request body CityRequest true "City attributes"
// @Success 201 {object} domain.City
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Security BearerAuth
// @Router /api/v1/cities [post]
func (h *ReferenceHandler) CreateCity(c echo.Context) error {
	var req CityRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	if err := req.Validate(); err != nil {
		return response.ValidationErrorWithMessage(c, err.Error())
	}

	// A city must belong to an existing country.
	if _, err := h.countries.GetByID(c.Request().Context(), req.CountryID); err != nil {
		return handleDomainError(c, err)
	}

	city := &domain.City{CountryID: req.CountryID, Name: req.Name}
	id, err := h.cities.Insert(c.Request().Context(), city)
	if err != nil {
		return handleDomainError(c, err)
	}
	city.ID = id
	return response.Created(c, city)
}

// GetCity handles GET /api/v1/cities/:id
//
// @Summary Get a city by ID
// @Tags reference
// @Produce json
// @Param id path int true "City ID"
// @Success 200 {object} domain.City
// @Failure 404 {object} response.ErrorDetail "Not found"
// @Router /api/v1/cities/{id} [get]
func (h *ReferenceHandler) GetCity(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, err.Error())
	}
	city, err := h.cities.GetByID(c.Request().Context(), id)
	if err != nil {
		return handleDomainError(c, err)
	}
	return response.OK(c, city)
}

// ListCities handles GET /api/v1/cities
//
// @Summary List all cities
// @Tags reference
// @Produce json
// @Success 200 {array} domain.City
// @Router /api/v1/cities [get]
func (h *ReferenceHandler) ListCities(c echo.Context) error {
	cities, err := h.cities.List(c.Request().Context())
	if err != nil {
		return handleDomainError(c, err)
	}
	return response.OK(c, cities)
}

// UpdateCity handles PUT /api/v1/cities/:id
//
// @Summary Update a city
// @Tags reference
// @Accept json
// @Produce json
// @Param id path int true "City ID"
// @Param request body CityRequest true "City attributes"
// @Success 200 {object} domain.City
// @Failure 404 {object} response.ErrorDetail "Not found"
// @Security BearerAuth
// @Router /api/v1/cities/{id} [put]
func (h *ReferenceHandler) UpdateCity(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, err.Error())
	}
	var req CityRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	if err := req.Validate(); err != nil {
		return response.ValidationErrorWithMessage(c, err.Error())
	}
	if _, err := h.countries.GetByID(c.Request().Context(), req.CountryID); err != nil {
		return handleDomainError(c, err)
	}

	city := &domain.City{ID: id, CountryID: req.CountryID, Name: req.Name}
	if err := h.cities.Update(c.Request().Context(), city); err != nil {
		return handleDomainError(c, err)
	}
	return response.OK(c, city)
}

// DeleteCity handles DELETE /api/v1/cities/:id
//
// @Summary Delete a city
// @Tags reference
// @Param id path int true "City ID"
// @Success 204
// @Failure 404 {object} response.ErrorDetail "Not found"
// @Security BearerAuth
// @Router /api/v1/cities/{id} [delete]
func (h *ReferenceHandler) DeleteCity(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, err.Error())
	}
	if err := h.cities.Delete(c.Request().Context(), id); err != nil {
		return handleDomainError(c, err)
	}
	return response.NoContent(c)
}

// CreateAirport handles POST /api/v1/airports
//
// @Summary Create an airport
// @Tags reference
// @Accept json
// @Produce json
// @Param request body AirportRequest true "Airport attributes"
// @Success 201 {object} domain.Airport
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Security BearerAuth
// @Router /api/v1/airports [post]
func (h *ReferenceHandler) CreateAirport(c echo.Context) error {
	var req AirportRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	if err := req.Validate(); err != nil {
		return response.ValidationErrorWithMessage(c, err.Error())
	}
	if _, err := h.cities.GetByID(c.Request().Context(), req.CityID); err != nil {
		return handleDomainError(c, err)
	}

	airport := &domain.Airport{CityID: req.CityID, Name: req.Name, Code: req.Code}
	id, err := h.airports.Insert(c.Request().Context(), airport)
	if err != nil {
		return handleDomainError(c, err)
	}
	airport.ID = id
	return response.Created(c, airport)
}

// GetAirport handles GET /api/v1/airports/:id
//
// @Summary Get an airport by ID
// @Tags reference
// @Produce json
// @Param id path int true "Airport ID"
// @Success 200 {object} domain.Airport
// @Failure 404 {object} response.ErrorDetail "Not found"
// @Router /api/v1/airports/{id} [get]
func (h *ReferenceHandler) GetAirport(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, err.Error())
	}
	airport, err := h.airports.GetByID(c.Request().Context(), id)
	if err != nil {
		return handleDomainError(c, err)
	}
	return response.OK(c, airport)
}

// ListAirports handles GET /api/v1/airports
//
// @Summary List all airports
// @Tags reference
// @Produce json
// @Success 200 {array} domain.Airport
// @Router /api/v1/airports [get]
func (h *ReferenceHandler) ListAirports(c echo.Context) error {
	airports, err := h.airports.List(c.Request().Context())
	if err != nil {
		return handleDomainError(c, err)
	}
	return response.OK(c, airports)
}

// UpdateAirport handles PUT /api/v1/airports/:id
//
// @Summary Update an airport
// @Tags reference
// @Accept json
// @Produce json
// @Param id path int true "Airport ID"
// @Param request body AirportRequest true "Airport attributes"
// @Success 200 {object} domain.Airport
// @Failure 404 {object} response.ErrorDetail "Not found"
// @Security BearerAuth
// @Router /api/v1/airports/{id} [put]
func (h *ReferenceHandler) UpdateAirport(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, err.Error())
	}
	var req AirportRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	if err := req.Validate(); err != nil {
		return response.ValidationErrorWithMessage(c, err.Error())
	}
	if _, err := h.cities.GetByID(c.Request().Context(), req.CityID); err != nil {
		return handleDomainError(c, err)
	}

	airport := &domain.Airport{ID: id, CityID: req.CityID, Name: req.Name, Code: req.Code}
	if err := h.airports.Update(c.Request().Context(), airport); err != nil {
		return handleDomainError(c, err)
	}
	return response.OK(c, airport)
}

// DeleteAirport handles DELETE /api/v1/airports/:id
//
// @Summary Delete an airport
// @Tags reference
// @Param id path int true "Airport ID"
// @Success 204
// @Failure 404 {object} response.ErrorDetail "Not found"
// @Security BearerAuth
// @Router /api/v1/airports/{id} [delete]
func (h *ReferenceHandler) DeleteAirport(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, err.Error())
	}
	if err := h.airports.Delete(c.Request().Context(), id); err != nil {
		return handleDomainError(c, err)
	}
	return response.NoContent(c)
}

// CreateAirplane handles POST /api/v1/airplanes
//
// @Summary Create an airplane
// @Tags reference
// @Accept json
// @Produce json
// @Param request body AirplaneRequest true "Airplane attributes"
// @Success 201 {object} domain.Airplane
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Security BearerAuth
// @Router /api/v1/airplanes [post]
func (h *ReferenceHandler) CreateAirplane(c echo.Context) error {
	var req AirplaneRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	if err := req.Validate(); err != nil {
		return response.ValidationErrorWithMessage(c, err.Error())
	}

	plane := &domain.Airplane{
		Model:         req.Model,
		Registration:  req.Registration,
		EconomySeats:  req.EconomySeats,
		PremiumSeats:  req.PremiumSeats,
		BusinessSeats: req.BusinessSeats,
	}
	id, err := h.airplanes.Insert(c.Request().Context(), plane)
	if err != nil {
		return handleDomainError(c, err)
	}
	plane.ID = id
	return response.Created(c, plane)
}

// GetAirplane handles GET /api/v1/airplanes/:id
//
// @Summary Get an airplane by ID
// @Tags reference
// @Produce json
// @Param id path int true "Airplane ID"
// @Success 200 {object} domain.Airplane
// @Failure 404 {object} response.ErrorDetail "Not found"
// @Router /api/v1/airplanes/{id} [get]
func (h *ReferenceHandler) GetAirplane(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, err.Error())
	}
	plane, err := h.airplanes.GetByID(c.Request().Context(), id)
	if err != nil {
		return handleDomainError(c, err)
	}
	return response.OK(c, plane)
}

// ListAirplanes handles GET /api/v1/airplanes
//
// @Summary List all airplanes
// @Tags reference
// @Produce json
// @Success 200 {array} domain.Airplane
// @Router /api/v1/airplanes [get]
func (h *ReferenceHandler) ListAirplanes(c echo.Context) error {
	planes, err := h.airplanes.List(c.Request().Context())
	if err != nil {
		return handleDomainError(c, err)
	}
	return response.OK(c, planes)
}

// UpdateAirplane handles PUT /api/v1/airplanes/:id
//
// @Summary Update an airplane
// @Tags reference
// @Accept json
// @Produce json
// @Param id path int true "Airplane ID"
// @Param request body AirplaneRequest true "Airplane attributes"
// @Success 200 {object} domain.Airplane
// @Failure 404 {object} response.ErrorDetail "Not found"
// @Security BearerAuth
// @Router /api/v1/airplanes/{id} [put]
func (h *ReferenceHandler) UpdateAirplane(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, err.Error())
	}
	var req AirplaneRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	if err := req.Validate(); err != nil {
		return response.ValidationErrorWithMessage(c, err.Error())
	}

	plane := &domain.Airplane{
		ID:            id,
		Model:         req.Model,
		Registration:  req.Registration,
		EconomySeats:  req.EconomySeats,
		PremiumSeats:  req.PremiumSeats,
		BusinessSeats: req.BusinessSeats,
	}
	if err := h.airplanes.Update(c.Request().Context(), plane); err != nil {
		return handleDomainError(c, err)
	}
	return response.OK(c, plane)
}

// DeleteAirplane handles DELETE /api/v1/airplanes/:id
//
// @Summary Delete an airplane
// @Tags reference
// @Param id path int true "Airplane ID"
// @Success 204
// @Failure 404 {object} response.ErrorDetail "Not found"
// @Security BearerAuth
// @Router /api/v1/airplanes/{id} [delete]
func (h *ReferenceHandler) DeleteAirplane(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, err.Error())
	}
	if err := h.airplanes.Delete(c.Request().Context(), id); err != nil {
		return handleDomainError(c, err)
	}
	return response.NoContent(c)
}
