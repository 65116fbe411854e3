package domain

import (
	"context"
	"time"
)

//go:generate mockgen -source=stores.go -destination=mock_stores.go -package=domain

// CountryStore provides persistence for countries.
type CountryStore interface {
	Insert(ctx context.Context, country *Country) (uint64, error)
	GetByID(ctx context.Context, id uint64) (*Country, error)
	List(ctx context.Context) ([]Country, error)
	Update(ctx context.Context, country *Country) error
	Delete(ctx context.Context, id uint64) error
}

// CityStore provides persistence for cities.
type CityStore interface {
	Insert(ctx context.Context, city *City) (uint64, error)
	GetByID(ctx context.Context, id uint64) (*City, error)
	// GetByAirportID resolves the city an airport belongs to.
	GetByAirportID(ctx context.Context, airportID uint64) (*City, error)
	List(ctx context.Context) ([]City, error)
	Update(ctx context.Context, city *City) error
	Delete(ctx context.Context, id uint64) error
}

// AirportStore provides persistence for airports.
type AirportStore interface {
	Insert(ctx context.Context, airport *Airport) (uint64, error)
	GetByID(ctx context.Context, id uint64) (*Airport, error)
	List(ctx context.Context) ([]Airport, error)
	Update(ctx context.Context, airport *Airport) error
	Delete(ctx context.Context, id uint64) error
}

// AirplaneStore provides persistence for airplanes.
type AirplaneStore interface {
	Insert(ctx context.Context, airplane *Airplane) (uint64, error)
	GetByID(ctx context.Context, id uint64) (*Airplane, error)
	List(ctx context.Context) ([]Airplane, error)
	Update(ctx context.Context, airplane *Airplane) error
	Delete(ctx context.Context, id uint64) error
}

// FlightStore provides persistence and the query shapes the core needs:
// point lookups, departure-window range lookups for connection expansion,
// and city/date lookups for search seeding.
type FlightStore interface {
	Insert(ctx context.Context, flight *Flight) (uint64, error)
	GetByID(ctx context.Context, id uint64) (*Flight, error)
	GetByFlightNumber(ctx context.Context, number string) (*Flight, error)
	// ListByDepartureWindow returns flights departing from the airport
	// within [from, to], ordered by departure time.
	ListByDepartureWindow(ctx context.Context, airportID uint64, from, to time.Time) ([]Flight, error)
	// ListByDepartureCityAndDate returns flights departing from any airport
	// of the city on the given UTC calendar date, ordered by departure time.
	ListByDepartureCityAndDate(ctx context.Context, cityID uint64, date time.Time) ([]Flight, error)
	Update(ctx context.Context, flight *Flight) error
	// UpdateSeats replaces the flight's seat snapshot only if the stored
	// snapshot still equals expected; returns ErrConflict otherwise. This is
	// the compare-and-swap that keeps concurrent sales from losing updates.
	UpdateSeats(ctx context.Context, id uint64, expected, updated ClassWindowPrice) error
	Delete(ctx context.Context, id uint64) error
}

// RotationStore provides persistence for rotation templates.
type RotationStore interface {
	Insert(ctx context.Context, rotation *Rotation) (uint64, error)
	GetByID(ctx context.Context, id uint64) (*Rotation, error)
	ListActiveByAirplane(ctx context.Context, airplaneID uint64) ([]Rotation, error)
	ListActive(ctx context.Context) ([]Rotation, error)
	// AdvanceOffset moves the rotation's day-offset cursor.
	AdvanceOffset(ctx context.Context, id uint64, newOffset int) error
	Cancel(ctx context.Context, id uint64) error
}

// TxManager runs fn within a single storage transaction. Store calls made
// with the context passed to fn join that transaction; fn returning an error
// rolls everything back.
type TxManager interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// EventPublisher emits domain events to the message broker. Publishing is
// best effort; callers log and continue on failure.
type EventPublisher interface {
	Publish(ctx context.Context, routingKey string, payload any) error
}

// ItineraryCache caches completed search results for a short TTL, keyed by
// the departure city, arrival city and travel date.
type ItineraryCache interface {
	Get(ctx context.Context, key string) ([]Itinerary, bool, error)
	Set(ctx context.Context, key string, itineraries []Itinerary, ttl time.Duration) error
}
