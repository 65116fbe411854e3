package http

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/airline-ops/airline-inventory-system/internal/adapter/http/middleware"
)

// Handlers bundles the handler set the router needs.
type Handlers struct {
	Reference *ReferenceHandler
	Flight    *FlightHandler
	Rotation  *RotationHandler
	Search    *SearchHandler
}

// RegisterRoutes registers all API routes. Write operations on reference
// data, flights and rotations require a bearer token carrying the admin
// role; reads and itinerary search are public. Seat decrements are the sales
// path and stay open to any authenticated caller.
func RegisterRoutes(e *echo.Echo, h Handlers, jwtSecret, version string) {
	e.GET("/health", HealthCheck(version))
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api/v1")

	auth := middleware.JWTAuth(jwtSecret)
	admin := []echo.MiddlewareFunc{auth, middleware.RequireRole(middleware.RoleAdmin)}

	countries := api.Group("/countries")
	countries.GET("", h.Reference.ListCountries)
	countries.GET("/:id", h.Reference.GetCountry)
	countries.POST("", h.Reference.CreateCountry, admin...)
	countries.PUT("/:id", h.Reference.UpdateCountry, admin...)
	countries.DELETE("/:id", h.Reference.DeleteCountry, admin...)

	cities := api.Group("/cities")
	cities.GET("", h.Reference.ListCities)
	cities.GET("/:id", h.Reference.GetCity)
	cities.POST("", h.Reference.CreateCity, admin...)
	cities.PUT("/:id", h.Reference.UpdateCity, admin...)
	cities.DELETE("/:id", h.Reference.DeleteCity, admin...)

	airports := api.Group("/airports")
	airports.GET("", h.Reference.ListAirports)
	airports.GET("/:id", h.Reference.GetAirport)
	airports.POST("", h.Reference.CreateAirport, admin...)
	airports.PUT("/:id", h.Reference.UpdateAirport, admin...)
	airports.DELETE("/:id", h.Reference.DeleteAirport, admin...)

	airplanes := api.Group("/airplanes")
	airplanes.GET("", h.Reference.ListAirplanes)
	airplanes.GET("/:id", h.Reference.GetAirplane)
	airplanes.POST("", h.Reference.CreateAirplane, admin...)
	airplanes.PUT("/:id", h.Reference.UpdateAirplane, admin...)
	airplanes.DELETE("/:id", h.Reference.DeleteAirplane, admin...)

	flights := api.Group("/flights")
	flights.GET("/:id", h.Flight.GetFlight)
	flights.GET("/number/:number", h.Flight.GetFlightByNumber)
	flights.POST("", h.Flight.CreateFlight, admin...)
	flights.PATCH("/:id/status", h.Flight.UpdateFlightStatus, admin...)
	flights.DELETE("/:id", h.Flight.DeleteFlight, admin...)
	flights.POST("/:id/seats/decrement", h.Flight.DecrementSeats, auth)

	rotations := api.Group("/rotations", admin...)
	rotations.POST("", h.Rotation.CreateRotation)
	rotations.DELETE("/:id", h.Rotation.CancelRotation)
	rotations.POST("/materialize", h.Rotation.Materialize)

	api.GET("/itineraries/search", h.Search.SearchItineraries)
}
