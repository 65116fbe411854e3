package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/airline-ops/airline-inventory-system/internal/domain"
	"github.com/airline-ops/airline-inventory-system/internal/infrastructure/metrics"
)

// EventFlightCreated is the routing key for flight creation events.
const EventFlightCreated = "flight.created"

// CreateFlightInput is the validated payload for a new concrete flight,
// either from an operator or from the materializer.
type CreateFlightInput struct {
	FlightNumber       string
	AirplaneID         uint64
	DepartureAirportID uint64
	ArrivalAirportID   uint64
	DepartureTime      time.Time
	ArrivalTime        time.Time
	Status             domain.FlightStatus
	Price              float64
	Seats              domain.ClassWindowPrice
}

// FlightUseCase manages concrete flights: creation with the capacity
// invariant, lookups, updates, deletion and the seat/window inventory
// operations of the sales path.
type FlightUseCase interface {
	Create(ctx context.Context, input CreateFlightInput) (*domain.Flight, error)
	GetByID(ctx context.Context, id uint64) (*domain.Flight, error)
	GetByFlightNumber(ctx context.Context, number string) (*domain.Flight, error)
	UpdateStatus(ctx context.Context, id uint64, status domain.FlightStatus) (*domain.Flight, error)
	Delete(ctx context.Context, id uint64) error

	// DecrementSeats sells seats from the first window of the class that can
	// satisfy the full request, persisting the snapshot with a
	// compare-and-swap so concurrent sales cannot lose updates. Fails with
	// ErrInsufficientInventory when no single window suffices.
	DecrementSeats(ctx context.Context, flightID uint64, class domain.CabinClass, seats int) (*domain.Flight, error)

	// SalePrices derives the current per-class unit prices of a flight.
	// An exhausted class prices at zero.
	SalePrices(flight *domain.Flight) map[string]float64
}

// seatUpdateAttempts bounds the compare-and-swap retry loop of
// DecrementSeats. Each attempt re-reads the flight, so a retry only repeats
// under active contention on the same row.
const seatUpdateAttempts = 3

type flightUseCase struct {
	flights   domain.FlightStore
	airplanes domain.AirplaneStore
	airports  domain.AirportStore
	events    domain.EventPublisher
	log       zerolog.Logger
}

// NewFlightUseCase wires a FlightUseCase from its store dependencies.
// The event publisher may be nil when no broker is configured.
func NewFlightUseCase(
	flights domain.FlightStore,
	airplanes domain.AirplaneStore,
	airports domain.AirportStore,
	events domain.EventPublisher,
	log zerolog.Logger,
) FlightUseCase {
	return &flightUseCase{
		flights:   flights,
		airplanes: airplanes,
		airports:  airports,
		events:    events,
		log:       log,
	}
}

// Create implements FlightUseCase.Create.
func (uc *flightUseCase) Create(ctx context.Context, input CreateFlightInput) (*domain.Flight, error) {
	plane, err := uc.airplanes.GetByID(ctx, input.AirplaneID)
	if err != nil {
		return nil, err
	}
	if _, err := uc.airports.GetByID(ctx, input.DepartureAirportID); err != nil {
		return nil, err
	}
	if _, err := uc.airports.GetByID(ctx, input.ArrivalAirportID); err != nil {
		return nil, err
	}

	if err := input.Seats.MatchesCapacity(plane); err != nil {
		return nil, err
	}
	if !input.ArrivalTime.After(input.DepartureTime) {
		return nil, domain.NewValidationError("arrival %s is not after departure %s",
			input.ArrivalTime.Format(time.RFC3339), input.DepartureTime.Format(time.RFC3339))
	}
	if input.Price < 0 {
		return nil, domain.NewValidationError("price must not be negative, got %f", input.Price)
	}

	status := input.Status
	if status == "" {
		status = domain.StatusScheduled
	}
	if !status.IsValid() {
		return nil, domain.NewValidationError("unknown flight status %q", status)
	}

	number := input.FlightNumber
	if number == "" {
		number = generateFlightNumber()
	}

	flight := &domain.Flight{
		FlightNumber:       number,
		AirplaneID:         input.AirplaneID,
		DepartureAirportID: input.DepartureAirportID,
		ArrivalAirportID:   input.ArrivalAirportID,
		DepartureTime:      input.DepartureTime.UTC(),
		ArrivalTime:        input.ArrivalTime.UTC(),
		Status:             status,
		Price:              input.Price,
		Seats:              input.Seats,
	}

	id, err := uc.flights.Insert(ctx, flight)
	if err != nil {
		return nil, err
	}
	flight.ID = id

	uc.log.Debug().
		Uint64("flight_id", id).
		Str("flight_number", flight.FlightNumber).
		Time("departure", flight.DepartureTime).
		Msg("flight created")
	if uc.events != nil {
		if err := uc.events.Publish(ctx, EventFlightCreated, flight); err != nil {
			uc.log.Warn().Err(err).Str("event", EventFlightCreated).Msg("event publish failed")
		}
	}

	return flight, nil
}

// GetByID implements FlightUseCase.GetByID.
func (uc *flightUseCase) GetByID(ctx context.Context, id uint64) (*domain.Flight, error) {
	return uc.flights.GetByID(ctx, id)
}

// GetByFlightNumber implements FlightUseCase.GetByFlightNumber.
func (uc *flightUseCase) GetByFlightNumber(ctx context.Context, number string) (*domain.Flight, error) {
	return uc.flights.GetByFlightNumber(ctx, number)
}

// UpdateStatus implements FlightUseCase.UpdateStatus.
func (uc *flightUseCase) UpdateStatus(ctx context.Context, id uint64, status domain.FlightStatus) (*domain.Flight, error) {
	if !status.IsValid() {
		return nil, domain.NewValidationError("unknown flight status %q", status)
	}
	flight, err := uc.flights.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	flight.Status = status
	if err := uc.flights.Update(ctx, flight); err != nil {
		return nil, err
	}
	return flight, nil
}

// Delete implements FlightUseCase.Delete.
func (uc *flightUseCase) Delete(ctx context.Context, id uint64) error {
	if _, err := uc.flights.GetByID(ctx, id); err != nil {
		return err
	}
	return uc.flights.Delete(ctx, id)
}

// DecrementSeats implements FlightUseCase.DecrementSeats.
func (uc *flightUseCase) DecrementSeats(ctx context.Context, flightID uint64, class domain.CabinClass, seats int) (*domain.Flight, error) {
	if !class.IsValid() {
		return nil, domain.NewValidationError("unknown cabin class %q", class)
	}

	var lastErr error
	for attempt := 0; attempt < seatUpdateAttempts; attempt++ {
		flight, err := uc.flights.GetByID(ctx, flightID)
		if err != nil {
			return nil, err
		}

		expected := flight.Seats
		if err := flight.Seats.Decrement(class, seats); err != nil {
			return nil, err
		}

		err = uc.flights.UpdateSeats(ctx, flightID, expected, flight.Seats)
		if err == nil {
			metrics.SeatDecrements.Inc()
			return flight, nil
		}
		if !isConflict(err) {
			return nil, err
		}
		// Another sale changed the snapshot between read and write; re-read
		// and try again.
		lastErr = err
		uc.log.Debug().Uint64("flight_id", flightID).Int("attempt", attempt+1).Msg("seat snapshot conflict, retrying")
	}
	return nil, lastErr
}

// SalePrices implements FlightUseCase.SalePrices.
func (uc *flightUseCase) SalePrices(flight *domain.Flight) map[string]float64 {
	return map[string]float64{
		string(domain.ClassEconomy):  flight.Seats.SalePrice(domain.ClassEconomy, flight.Price),
		string(domain.ClassPremium):  flight.Seats.SalePrice(domain.ClassPremium, flight.Price),
		string(domain.ClassBusiness): flight.Seats.SalePrice(domain.ClassBusiness, flight.Price),
	}
}

func isConflict(err error) bool {
	return errors.Is(err, domain.ErrConflict)
}

// generateFlightNumber produces an operator-style flight number for flights
// created without one (materialized flights in particular).
func generateFlightNumber() string {
	id := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", ""))
	return fmt.Sprintf("FL-%s", id[:8])
}
