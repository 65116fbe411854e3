// Package http provides the HTTP handler layer for the airline inventory
// API. It handles request parsing, validation, response formatting, and
// error mapping.
package http

import (
	"fmt"
	"regexp"
	"time"

	"github.com/airline-ops/airline-inventory-system/internal/domain"
	"github.com/airline-ops/airline-inventory-system/internal/usecase"
)

// dateRegex matches dates in YYYY-MM-DD format.
var dateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// parseDate parses a YYYY-MM-DD string into a UTC midnight instant.
func parseDate(field, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, fmt.Errorf("%s is required", field)
	}
	if !dateRegex.MatchString(value) {
		return time.Time{}, fmt.Errorf("%s must be in YYYY-MM-DD format, got %q", field, value)
	}
	t, err := time.ParseInLocation("2006-01-02", value, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s is not a valid date: %s", field, value)
	}
	return t, nil
}

// SeatWindowRequest is one seat window of a fare class.
type SeatWindowRequest struct {
	// Seats is the seat count of this window
	Seats int `json:"seats"`

	// PricePercentage is the price multiplier in percent of the base price
	PricePercentage int `json:"pricePercentage"`
}

// SeatConfigRequest is the full per-class window configuration of a flight
// or rotation leg. Economy takes 3 windows, premium and business 2 each.
type SeatConfigRequest struct {
	Economy  []SeatWindowRequest `json:"economy"`
	Premium  []SeatWindowRequest `json:"premium"`
	Business []SeatWindowRequest `json:"business"`
}

// ToDomain converts the request windows into a validated ClassWindowPrice.
func (r *SeatConfigRequest) ToDomain() (domain.ClassWindowPrice, error) {
	return domain.NewClassWindowPrice(
		seatWindows(r.Economy),
		seatWindows(r.Premium),
		seatWindows(r.Business),
	)
}

func seatWindows(reqs []SeatWindowRequest) []domain.SeatWindow {
	out := make([]domain.SeatWindow, 0, len(reqs))
	for _, w := range reqs {
		out = append(out, domain.SeatWindow{Seats: w.Seats, PricePercentage: w.PricePercentage})
	}
	return out
}

// FlightLegRequest is one leg of a rotation template.
type FlightLegRequest struct {
	DepartureAirportID uint64 `json:"departureAirportId"`
	ArrivalAirportID   uint64 `json:"arrivalAirportId"`

	// DepartureTime is the local departure clock time in HH:MM format
	DepartureTime string `json:"departureTime"`

	// ArrivalTime is the local arrival clock time in HH:MM format; a value
	// clock-earlier-than-or-equal the departure means next-day arrival
	ArrivalTime string `json:"arrivalTime"`

	Price float64           `json:"price"`
	Seats SeatConfigRequest `json:"seats"`
}

// toDomain converts the leg request into a domain FlightLeg.
func (r *FlightLegRequest) toDomain(index int) (domain.FlightLeg, error) {
	dep, err := domain.ParseClockTime(r.DepartureTime)
	if err != nil {
		return domain.FlightLeg{}, fmt.Errorf("leg %d departureTime: %w", index+1, err)
	}
	arr, err := domain.ParseClockTime(r.ArrivalTime)
	if err != nil {
		return domain.FlightLeg{}, fmt.Errorf("leg %d arrivalTime: %w", index+1, err)
	}
	seats, err := r.Seats.ToDomain()
	if err != nil {
		return domain.FlightLeg{}, fmt.Errorf("leg %d: %w", index+1, err)
	}
	if r.Price < 0 {
		return domain.FlightLeg{}, fmt.Errorf("leg %d: price must not be negative", index+1)
	}
	return domain.FlightLeg{
		DepartureAirportID: r.DepartureAirportID,
		ArrivalAirportID:   r.ArrivalAirportID,
		DepartureTime:      dep,
		ArrivalTime:        arr,
		Price:              r.Price,
		Seats:              seats,
	}, nil
}

// CreateRotationRequest is the request body for rotation creation.
type CreateRotationRequest struct {
	AirplaneID uint64 `json:"airplaneId"`

	// StartDate is the rotation's anchor date in YYYY-MM-DD format (UTC)
	StartDate string `json:"startDate"`

	Legs []FlightLegRequest `json:"legs"`
}

// ToInput validates and converts the request into a use-case input.
func (r *CreateRotationRequest) ToInput() (usecase.CreateRotationInput, error) {
	if r.AirplaneID == 0 {
		return usecase.CreateRotationInput{}, fmt.Errorf("airplaneId is required")
	}
	start, err := parseDate("startDate", r.StartDate)
	if err != nil {
		return usecase.CreateRotationInput{}, err
	}
	legs := make([]domain.FlightLeg, 0, len(r.Legs))
	for i := range r.Legs {
		leg, err := r.Legs[i].toDomain(i)
		if err != nil {
			return usecase.CreateRotationInput{}, err
		}
		legs = append(legs, leg)
	}
	return usecase.CreateRotationInput{
		AirplaneID: r.AirplaneID,
		StartDate:  start,
		Legs:       legs,
	}, nil
}

// CreateFlightRequest is the request body for direct flight creation.
type CreateFlightRequest struct {
	// FlightNumber is optional; one is generated when empty
	FlightNumber       string            `json:"flightNumber,omitempty"`
	AirplaneID         uint64            `json:"airplaneId"`
	DepartureAirportID uint64            `json:"departureAirportId"`
	ArrivalAirportID   uint64            `json:"arrivalAirportId"`
	DepartureTime      time.Time         `json:"departureTime"`
	ArrivalTime        time.Time         `json:"arrivalTime"`
	Price              float64           `json:"price"`
	Seats              SeatConfigRequest `json:"seats"`
}

// ToInput validates and converts the request into a use-case input.
func (r *CreateFlightRequest) ToInput() (usecase.CreateFlightInput, error) {
	if r.AirplaneID == 0 {
		return usecase.CreateFlightInput{}, fmt.Errorf("airplaneId is required")
	}
	if r.DepartureAirportID == 0 || r.ArrivalAirportID == 0 {
		return usecase.CreateFlightInput{}, fmt.Errorf("departureAirportId and arrivalAirportId are required")
	}
	if r.DepartureTime.IsZero() || r.ArrivalTime.IsZero() {
		return usecase.CreateFlightInput{}, fmt.Errorf("departureTime and arrivalTime are required")
	}
	seats, err := r.Seats.ToDomain()
	if err != nil {
		return usecase.CreateFlightInput{}, err
	}
	return usecase.CreateFlightInput{
		FlightNumber:       r.FlightNumber,
		AirplaneID:         r.AirplaneID,
		DepartureAirportID: r.DepartureAirportID,
		ArrivalAirportID:   r.ArrivalAirportID,
		DepartureTime:      r.DepartureTime,
		ArrivalTime:        r.ArrivalTime,
		Status:             domain.StatusScheduled,
		Price:              r.Price,
		Seats:              seats,
	}, nil
}

// UpdateFlightStatusRequest is the request body for a flight status change.
type UpdateFlightStatusRequest struct {
	Status string `json:"status"`
}

// DecrementSeatsRequest is the request body for a seat-window decrement.
type DecrementSeatsRequest struct {
	// Class is the fare class: economy, premium or business
	Class string `json:"class"`

	// Seats is the number of seats to sell from a single window
	Seats int `json:"seats"`
}

// Validate checks the decrement request fields.
func (r *DecrementSeatsRequest) Validate() error {
	if !domain.CabinClass(r.Class).IsValid() {
		return fmt.Errorf("class must be one of: economy, premium, business; got %q", r.Class)
	}
	if r.Seats < 1 {
		return fmt.Errorf("seats must be at least 1, got %d", r.Seats)
	}
	return nil
}

// CountryRequest is the request body for country create/update.
type CountryRequest struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

// Validate checks the country request fields.
func (r *CountryRequest) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("name is required")
	}
	if r.Code == "" {
		return fmt.Errorf("code is required")
	}
	return nil
}

// CityRequest is the request body for city create/update.
type CityRequest struct {
	CountryID uint64 `json:"countryId"`
	Name      string `json:"name"`
}

// Validate checks the city request fields.
func (r *CityRequest) Validate() error {
	if r.CountryID == 0 {
		return fmt.Errorf("countryId is required")
	}
	if r.Name == "" {
		return fmt.Errorf("name is required")
	}
	return nil
}

// AirportRequest is the request body for airport create/update.
type AirportRequest struct {
	CityID uint64 `json:"cityId"`
	Name   string `json:"name"`
	Code   string `json:"code"`
}

// Validate checks the airport request fields.
func (r *AirportRequest) Validate() error {
	if r.CityID == 0 {
		return fmt.Errorf("cityId is required")
	}
	if r.Name == "" {
		return fmt.Errorf("name is required")
	}
	if r.Code == "" {
		return fmt.Errorf("code is required")
	}
	return nil
}

// AirplaneRequest is the request body for airplane create/update.
type AirplaneRequest struct {
	Model         string `json:"model"`
	Registration  string `json:"registration"`
	EconomySeats  int    `json:"economySeats"`
	PremiumSeats  int    `json:"premiumSeats"`
	BusinessSeats int    `json:"businessSeats"`
}

// Validate checks the airplane request fields.
func (r *AirplaneRequest) Validate() error {
	if r.Model == "" {
		return fmt.Errorf("model is required")
	}
	if r.Registration == "" {
		return fmt.Errorf("registration is required")
	}
	if r.EconomySeats < 0 || r.PremiumSeats < 0 || r.BusinessSeats < 0 {
		return fmt.Errorf("seat counts must not be negative")
	}
	if r.EconomySeats+r.PremiumSeats+r.BusinessSeats == 0 {
		return fmt.Errorf("airplane must have at least one seat")
	}
	return nil
}
