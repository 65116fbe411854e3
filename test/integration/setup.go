// Package integration contains end-to-end tests that exercise the use cases
// and HTTP handlers against in-memory stores.
package integration

import (
	"context"
	"reflect"
	"sort"
	"sync"
	"time"

	"github.com/labstack/echo/v4"

	airlinehttp "github.com/airline-ops/airline-inventory-system/internal/adapter/http"
	"github.com/airline-ops/airline-inventory-system/internal/domain"
	"github.com/airline-ops/airline-inventory-system/internal/infrastructure/logger"
	"github.com/airline-ops/airline-inventory-system/internal/usecase"
)

// memoryStore is an in-memory implementation of every store interface the
// use cases need. All methods are safe for concurrent use; UpdateSeats
// implements the same compare-and-swap contract as the MySQL store.
type memoryStore struct {
	mu        sync.Mutex
	nextID    uint64
	countries map[uint64]domain.Country
	cities    map[uint64]domain.City
	airports  map[uint64]domain.Airport
	airplanes map[uint64]domain.Airplane
	flights   map[uint64]domain.Flight
	rotations map[uint64]domain.Rotation
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		countries: make(map[uint64]domain.Country),
		cities:    make(map[uint64]domain.City),
		airports:  make(map[uint64]domain.Airport),
		airplanes: make(map[uint64]domain.Airplane),
		flights:   make(map[uint64]domain.Flight),
		rotations: make(map[uint64]domain.Rotation),
	}
}

func (s *memoryStore) id() uint64 {
	s.nextID++
	return s.nextID
}

// WithinTx implements domain.TxManager. The in-memory store has no real
// transactions; fn runs directly and its error propagates.
func (s *memoryStore) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (s *memoryStore) Insert(ctx context.Context, country *domain.Country) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	country.ID = s.id()
	s.countries[country.ID] = *country
	return country.ID, nil
}

func (s *memoryStore) GetByID(ctx context.Context, id uint64) (*domain.Country, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.countries[id]
	if !ok {
		return nil, domain.NewNotFoundError("country", id)
	}
	return &c, nil
}

func (s *memoryStore) List(ctx context.Context) ([]domain.Country, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Country, 0, len(s.countries))
	for _, c := range s.countries {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *memoryStore) Update(ctx context.Context, country *domain.Country) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.countries[country.ID]; !ok {
		return domain.NewNotFoundError("country", country.ID)
	}
	s.countries[country.ID] = *country
	return nil
}

func (s *memoryStore) Delete(ctx context.Context, id uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.countries[id]; !ok {
		return domain.NewNotFoundError("country", id)
	}
	delete(s.countries, id)
	return nil
}

// cityStore adapts memoryStore to domain.CityStore.
type cityStore struct{ *memoryStore }

func (s cityStore) Insert(ctx context.Context, city *domain.City) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	city.ID = s.id()
	s.cities[city.ID] = *city
	return city.ID, nil
}

func (s cityStore) GetByID(ctx context.Context, id uint64) (*domain.City, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.cities[id]
	if !ok {
		return nil, domain.NewNotFoundError("city", id)
	}
	return &c, nil
}

func (s cityStore) GetByAirportID(ctx context.Context, airportID uint64) (*domain.City, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.airports[airportID]
	if !ok {
		return nil, domain.NewNotFoundError("airport", airportID)
	}
	c, ok := s.cities[a.CityID]
	if !ok {
		return nil, domain.NewNotFoundError("city", a.CityID)
	}
	return &c, nil
}

func (s cityStore) List(ctx context.Context) ([]domain.City, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.City, 0, len(s.cities))
	for _, c := range s.cities {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s cityStore) Update(ctx context.Context, city *domain.City) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.cities[city.ID]; !ok {
		return domain.NewNotFoundError("city", city.ID)
	}
	s.cities[city.ID] = *city
	return nil
}

func (s cityStore) Delete(ctx context.Context, id uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.cities[id]; !ok {
		return domain.NewNotFoundError("city", id)
	}
	delete(s.cities, id)
	return nil
}

// airportStore adapts memoryStore to domain.AirportStore.
type airportStore struct{ *memoryStore }

func (s airportStore) Insert(ctx context.Context, airport *domain.Airport) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	airport.ID = s.id()
	s.airports[airport.ID] = *airport
	return airport.ID, nil
}

func (s airportStore) GetByID(ctx context.Context, id uint64) (*domain.Airport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.airports[id]
	if !ok {
		return nil, domain.NewNotFoundError("airport", id)
	}
	return &a, nil
}

func (s airportStore) List(ctx context.Context) ([]domain.Airport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Airport, 0, len(s.airports))
	for _, a := range s.airports {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s airportStore) Update(ctx context.Context, airport *domain.Airport) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.airports[airport.ID]; !ok {
		return domain.NewNotFoundError("airport", airport.ID)
	}
	s.airports[airport.ID] = *airport
	return nil
}

func (s airportStore) Delete(ctx context.Context, id uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.airports[id]; !ok {
		return domain.NewNotFoundError("airport", id)
	}
	delete(s.airports, id)
	return nil
}

// airplaneStore adapts memoryStore to domain.AirplaneStore.
type airplaneStore struct{ *memoryStore }

func (s airplaneStore) Insert(ctx context.Context, airplane *domain.Airplane) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	airplane.ID = s.id()
	s.airplanes[airplane.ID] = *airplane
	return airplane.ID, nil
}

func (s airplaneStore) GetByID(ctx context.Context, id uint64) (*domain.Airplane, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.airplanes[id]
	if !ok {
		return nil, domain.NewNotFoundError("airplane", id)
	}
	return &a, nil
}

func (s airplaneStore) List(ctx context.Context) ([]domain.Airplane, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Airplane, 0, len(s.airplanes))
	for _, a := range s.airplanes {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s airplaneStore) Update(ctx context.Context, airplane *domain.Airplane) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.airplanes[airplane.ID]; !ok {
		return domain.NewNotFoundError("airplane", airplane.ID)
	}
	s.airplanes[airplane.ID] = *airplane
	return nil
}

func (s airplaneStore) Delete(ctx context.Context, id uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.airplanes[id]; !ok {
		return domain.NewNotFoundError("airplane", id)
	}
	delete(s.airplanes, id)
	return nil
}

// flightStore adapts memoryStore to domain.FlightStore.
type flightStore struct{ *memoryStore }

func (s flightStore) Insert(ctx context.Context, flight *domain.Flight) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	flight.ID = s.id()
	s.flights[flight.ID] = *flight
	return flight.ID, nil
}

func (s flightStore) GetByID(ctx context.Context, id uint64) (*domain.Flight, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f, ok := s.flights[id]
	if !ok {
		return nil, domain.NewNotFoundError("flight", id)
	}
	return &f, nil
}

func (s flightStore) GetByFlightNumber(ctx context.Context, number string) (*domain.Flight, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, f := range s.flights {
		if f.FlightNumber == number {
			return &f, nil
		}
	}
	return nil, domain.NewNotFoundError("flight", 0)
}

func (s flightStore) ListByDepartureWindow(ctx context.Context, airportID uint64, from, to time.Time) ([]domain.Flight, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.Flight
	for _, f := range s.flights {
		if f.DepartureAirportID != airportID {
			continue
		}
		if f.DepartureTime.Before(from) || f.DepartureTime.After(to) {
			continue
		}
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DepartureTime.Before(out[j].DepartureTime) })
	return out, nil
}

func (s flightStore) ListByDepartureCityAndDate(ctx context.Context, cityID uint64, date time.Time) ([]domain.Flight, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.AddDate(0, 0, 1)
	var out []domain.Flight
	for _, f := range s.flights {
		airport, ok := s.airports[f.DepartureAirportID]
		if !ok || airport.CityID != cityID {
			continue
		}
		if f.DepartureTime.Before(dayStart) || !f.DepartureTime.Before(dayEnd) {
			continue
		}
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DepartureTime.Before(out[j].DepartureTime) })
	return out, nil
}

func (s flightStore) Update(ctx context.Context, flight *domain.Flight) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.flights[flight.ID]; !ok {
		return domain.NewNotFoundError("flight", flight.ID)
	}
	s.flights[flight.ID] = *flight
	return nil
}

func (s flightStore) UpdateSeats(ctx context.Context, id uint64, expected, updated domain.ClassWindowPrice) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	f, ok := s.flights[id]
	if !ok {
		return domain.NewNotFoundError("flight", id)
	}
	if !reflect.DeepEqual(f.Seats, expected) {
		return domain.ErrConflict
	}
	f.Seats = updated
	s.flights[id] = f
	return nil
}

func (s flightStore) Delete(ctx context.Context, id uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.flights[id]; !ok {
		return domain.NewNotFoundError("flight", id)
	}
	delete(s.flights, id)
	return nil
}

// rotationStore adapts memoryStore to domain.RotationStore.
type rotationStore struct{ *memoryStore }

func (s rotationStore) Insert(ctx context.Context, rotation *domain.Rotation) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rotation.ID = s.id()
	s.rotations[rotation.ID] = *rotation
	return rotation.ID, nil
}

func (s rotationStore) GetByID(ctx context.Context, id uint64) (*domain.Rotation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.rotations[id]
	if !ok {
		return nil, domain.NewNotFoundError("rotation", id)
	}
	return &r, nil
}

func (s rotationStore) ListActiveByAirplane(ctx context.Context, airplaneID uint64) ([]domain.Rotation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.Rotation
	for _, r := range s.rotations {
		if r.AirplaneID == airplaneID && !r.Cancelled {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s rotationStore) ListActive(ctx context.Context) ([]domain.Rotation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.Rotation
	for _, r := range s.rotations {
		if !r.Cancelled {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s rotationStore) AdvanceOffset(ctx context.Context, id uint64, newOffset int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.rotations[id]
	if !ok {
		return domain.NewNotFoundError("rotation", id)
	}
	r.DayOffset = newOffset
	s.rotations[id] = r
	return nil
}

func (s rotationStore) Cancel(ctx context.Context, id uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.rotations[id]
	if !ok {
		return domain.NewNotFoundError("rotation", id)
	}
	r.Cancelled = true
	s.rotations[id] = r
	return nil
}

// env bundles everything a test needs: the store, the wired use cases and a
// ready echo server with all routes registered.
type env struct {
	store        *memoryStore
	flights      usecase.FlightUseCase
	rotations    usecase.RotationUseCase
	materializer usecase.MaterializerUseCase
	search       usecase.ItinerarySearchUseCase
	server       *echo.Echo
}

const testJWTSecret = "integration-test-secret"

// newEnv builds a fully wired environment on in-memory stores. No cache and
// no event broker; both are optional in production too.
func newEnv(horizonDays int) *env {
	store := newMemoryStore()
	log := logger.Nop()

	flightUC := usecase.NewFlightUseCase(flightStore{store}, airplaneStore{store}, airportStore{store}, nil, log.Logger)
	rotationUC := usecase.NewRotationUseCase(rotationStore{store}, airplaneStore{store}, airportStore{store}, store, nil, log.Logger)
	materializerUC := usecase.NewMaterializer(rotationStore{store}, flightUC, store, nil, horizonDays, log.Logger)
	searchUC := usecase.NewItinerarySearch(flightStore{store}, cityStore{store}, store, airportStore{store}, airplaneStore{store}, nil, 0, log.Logger)

	e := echo.New()
	airlinehttp.RegisterRoutes(e, airlinehttp.Handlers{
		Reference: airlinehttp.NewReferenceHandler(store, cityStore{store}, airportStore{store}, airplaneStore{store}),
		Flight:    airlinehttp.NewFlightHandler(flightUC),
		Rotation:  airlinehttp.NewRotationHandler(rotationUC, materializerUC),
		Search:    airlinehttp.NewSearchHandler(searchUC),
	}, testJWTSecret, "test")

	return &env{
		store:        store,
		flights:      flightUC,
		rotations:    rotationUC,
		materializer: materializerUC,
		search:       searchUC,
		server:       e,
	}
}
