package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/airline-ops/airline-inventory-system/internal/domain"
	"github.com/airline-ops/airline-inventory-system/internal/infrastructure/metrics"
)

// DefaultCacheTTL bounds how long a completed search result is served from
// cache. Materialization and direct flight creation can add flights at any
// time, so the TTL stays short.
const DefaultCacheTTL = 60 * time.Second

// ItinerarySearchUseCase answers point-to-point itinerary queries: all valid
// flight sequences connecting a departure city to an arrival city on a
// travel date, subject to the hop budget and layover window of the
// domestic/international connection policy.
type ItinerarySearchUseCase interface {
	// Search returns every completed itinerary in BFS discovery order. Zero
	// seed flights for the date yields an empty result, not an error.
	Search(ctx context.Context, departureCityID, arrivalCityID uint64, date time.Time) ([]domain.Itinerary, error)
}

type itinerarySearch struct {
	flights   domain.FlightStore
	cities    domain.CityStore
	countries domain.CountryStore
	airports  domain.AirportStore
	airplanes domain.AirplaneStore
	cache     domain.ItineraryCache
	cacheTTL  time.Duration
	log       zerolog.Logger
}

// NewItinerarySearch wires an ItinerarySearchUseCase. The cache may be nil,
// in which case every query runs the full graph expansion.
func NewItinerarySearch(
	flights domain.FlightStore,
	cities domain.CityStore,
	countries domain.CountryStore,
	airports domain.AirportStore,
	airplanes domain.AirplaneStore,
	cache domain.ItineraryCache,
	cacheTTL time.Duration,
	log zerolog.Logger,
) ItinerarySearchUseCase {
	if cacheTTL <= 0 {
		cacheTTL = DefaultCacheTTL
	}
	return &itinerarySearch{
		flights:   flights,
		cities:    cities,
		countries: countries,
		airports:  airports,
		airplanes: airplanes,
		cache:     cache,
		cacheTTL:  cacheTTL,
		log:       log,
	}
}

// searchPath is one partial itinerary on the BFS frontier, with its own
// visited bookkeeping. Pruning applies only to the path itself; other paths
// sharing a prefix keep expanding independently.
type searchPath struct {
	entries         []domain.FlightQueueEntry
	visitedAirports map[uint64]struct{}
	visitedFlights  map[uint64]struct{}
}

// last returns the final flight of the path.
func (p *searchPath) last() *domain.Flight {
	return &p.entries[len(p.entries)-1].Flight
}

// extend copies the path with next appended and the hop budget decremented.
func (p *searchPath) extend(next domain.Flight) *searchPath {
	lastEntry := p.entries[len(p.entries)-1]

	entries := make([]domain.FlightQueueEntry, len(p.entries), len(p.entries)+1)
	copy(entries, p.entries)
	entries = append(entries, domain.FlightQueueEntry{
		Flight:        next,
		HopsRemaining: lastEntry.HopsRemaining - 1,
		MinLayover:    lastEntry.MinLayover,
		MaxLayover:    lastEntry.MaxLayover,
	})

	airports := make(map[uint64]struct{}, len(p.visitedAirports))
	for k := range p.visitedAirports {
		airports[k] = struct{}{}
	}
	flights := make(map[uint64]struct{}, len(p.visitedFlights)+1)
	for k := range p.visitedFlights {
		flights[k] = struct{}{}
	}
	flights[next.ID] = struct{}{}

	return &searchPath{entries: entries, visitedAirports: airports, visitedFlights: flights}
}

// Search implements ItinerarySearchUseCase.Search.
func (uc *itinerarySearch) Search(ctx context.Context, departureCityID, arrivalCityID uint64, date time.Time) ([]domain.Itinerary, error) {
	if departureCityID == arrivalCityID {
		return nil, domain.NewValidationError("departure and arrival city must differ")
	}

	depCity, err := uc.cities.GetByID(ctx, departureCityID)
	if err != nil {
		return nil, err
	}
	arrCity, err := uc.cities.GetByID(ctx, arrivalCityID)
	if err != nil {
		return nil, err
	}
	policy := domain.PolicyFor(depCity.CountryID == arrCity.CountryID)

	key := searchCacheKey(departureCityID, arrivalCityID, date)
	if uc.cache != nil {
		if cached, ok, err := uc.cache.Get(ctx, key); err != nil {
			uc.log.Warn().Err(err).Msg("itinerary cache read failed")
		} else if ok {
			metrics.ItinerarySearchCacheHits.Inc()
			return cached, nil
		}
	}
	metrics.ItinerarySearches.Inc()

	completed, err := uc.expand(ctx, arrivalCityID, date, policy, departureCityID)
	if err != nil {
		return nil, err
	}

	itineraries := make([]domain.Itinerary, 0, len(completed))
	lookups := newReferenceLookups()
	for _, path := range completed {
		itin, err := uc.rehydrate(ctx, path, lookups)
		if err != nil {
			return nil, err
		}
		itineraries = append(itineraries, itin)
	}

	if uc.cache != nil {
		if err := uc.cache.Set(ctx, key, itineraries, uc.cacheTTL); err != nil {
			uc.log.Warn().Err(err).Msg("itinerary cache write failed")
		}
	}
	return itineraries, nil
}

// expand runs the strict-FIFO breadth-first expansion over the flight graph
// and returns the completed paths in discovery order.
func (uc *itinerarySearch) expand(ctx context.Context, targetCityID uint64, date time.Time, policy domain.ConnectionPolicy, departureCityID uint64) ([]*searchPath, error) {
	seeds, err := uc.flights.ListByDepartureCityAndDate(ctx, departureCityID, date)
	if err != nil {
		return nil, err
	}

	queue := make([]*searchPath, 0, len(seeds))
	for _, f := range seeds {
		queue = append(queue, &searchPath{
			entries: []domain.FlightQueueEntry{{
				Flight:        f,
				HopsRemaining: policy.HopBudget - 1,
				MinLayover:    policy.MinLayover,
				MaxLayover:    policy.MaxLayover,
			}},
			visitedAirports: map[uint64]struct{}{},
			visitedFlights:  map[uint64]struct{}{f.ID: {}},
		})
	}

	cityByAirport := map[uint64]uint64{}
	var completed []*searchPath

	for len(queue) > 0 {
		path := queue[0]
		queue = queue[1:]

		last := path.last()
		path.visitedAirports[last.ArrivalAirportID] = struct{}{}

		arrCityID, err := uc.cityOfAirport(ctx, last.ArrivalAirportID, cityByAirport)
		if err != nil {
			return nil, err
		}
		if arrCityID == targetCityID {
			// Completed route; this path is not expanded further.
			completed = append(completed, path)
			continue
		}

		entry := path.entries[len(path.entries)-1]
		if entry.HopsRemaining <= 0 {
			continue
		}

		from := last.ArrivalTime.Add(entry.MinLayover)
		to := last.ArrivalTime.Add(entry.MaxLayover)
		candidates, err := uc.flights.ListByDepartureWindow(ctx, last.ArrivalAirportID, from, to)
		if err != nil {
			return nil, err
		}
		for _, next := range candidates {
			if _, seen := path.visitedFlights[next.ID]; seen {
				continue
			}
			if _, seen := path.visitedAirports[next.ArrivalAirportID]; seen {
				continue
			}
			queue = append(queue, path.extend(next))
		}
	}
	return completed, nil
}

// cityOfAirport resolves and memoizes the city an airport belongs to.
func (uc *itinerarySearch) cityOfAirport(ctx context.Context, airportID uint64, memo map[uint64]uint64) (uint64, error) {
	if id, ok := memo[airportID]; ok {
		return id, nil
	}
	city, err := uc.cities.GetByAirportID(ctx, airportID)
	if err != nil {
		return 0, err
	}
	memo[airportID] = city.ID
	return city.ID, nil
}

// referenceLookups memoizes reference-data reads across the itineraries of
// one search response.
type referenceLookups struct {
	airplanes map[uint64]*domain.Airplane
	airports  map[uint64]*domain.Airport
	cities    map[uint64]*domain.City
	countries map[uint64]*domain.Country
}

func newReferenceLookups() *referenceLookups {
	return &referenceLookups{
		airplanes: map[uint64]*domain.Airplane{},
		airports:  map[uint64]*domain.Airport{},
		cities:    map[uint64]*domain.City{},
		countries: map[uint64]*domain.Country{},
	}
}

// rehydrate turns a completed path into a full Itinerary: every flight
// enriched with airplane, airport, city and per-class sale pricing.
func (uc *itinerarySearch) rehydrate(ctx context.Context, path *searchPath, lookups *referenceLookups) (domain.Itinerary, error) {
	itin := domain.Itinerary{Flights: make([]domain.ItineraryFlight, 0, len(path.entries))}
	for _, entry := range path.entries {
		f := entry.Flight

		plane, err := uc.airplane(ctx, f.AirplaneID, lookups)
		if err != nil {
			return domain.Itinerary{}, err
		}
		depAirport, depCity, depCountry, err := uc.airportWithCity(ctx, f.DepartureAirportID, lookups)
		if err != nil {
			return domain.Itinerary{}, err
		}
		arrAirport, arrCity, arrCountry, err := uc.airportWithCity(ctx, f.ArrivalAirportID, lookups)
		if err != nil {
			return domain.Itinerary{}, err
		}

		itin.Flights = append(itin.Flights, domain.ItineraryFlight{
			Flight:           f,
			Airplane:         plane,
			DepartureAirport: depAirport,
			ArrivalAirport:   arrAirport,
			DepartureCity:    depCity,
			ArrivalCity:      arrCity,
			DepartureCountry: depCountry,
			ArrivalCountry:   arrCountry,
			ClassPrices: map[string]float64{
				string(domain.ClassEconomy):  f.Seats.SalePrice(domain.ClassEconomy, f.Price),
				string(domain.ClassPremium):  f.Seats.SalePrice(domain.ClassPremium, f.Price),
				string(domain.ClassBusiness): f.Seats.SalePrice(domain.ClassBusiness, f.Price),
			},
		})
	}
	return itin, nil
}

func (uc *itinerarySearch) airplane(ctx context.Context, id uint64, lookups *referenceLookups) (*domain.Airplane, error) {
	if p, ok := lookups.airplanes[id]; ok {
		return p, nil
	}
	p, err := uc.airplanes.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	lookups.airplanes[id] = p
	return p, nil
}

func (uc *itinerarySearch) airportWithCity(ctx context.Context, airportID uint64, lookups *referenceLookups) (*domain.Airport, *domain.City, *domain.Country, error) {
	airport, ok := lookups.airports[airportID]
	if !ok {
		var err error
		airport, err = uc.airports.GetByID(ctx, airportID)
		if err != nil {
			return nil, nil, nil, err
		}
		lookups.airports[airportID] = airport
	}
	city, ok := lookups.cities[airport.CityID]
	if !ok {
		var err error
		city, err = uc.cities.GetByID(ctx, airport.CityID)
		if err != nil {
			return nil, nil, nil, err
		}
		lookups.cities[airport.CityID] = city
	}
	country, ok := lookups.countries[city.CountryID]
	if !ok {
		var err error
		country, err = uc.countries.GetByID(ctx, city.CountryID)
		if err != nil {
			return nil, nil, nil, err
		}
		lookups.countries[city.CountryID] = country
	}
	return airport, city, country, nil
}

// searchCacheKey builds the cache key for a city pair and travel date.
func searchCacheKey(depCityID, arrCityID uint64, date time.Time) string {
	return fmt.Sprintf("itineraries:%d:%d:%s", depCityID, arrCityID, date.UTC().Format("2006-01-02"))
}
