package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/airline-ops/airline-inventory-system/internal/domain"
	"github.com/airline-ops/airline-inventory-system/test/testutil"
)

// The search fixtures use a small three-city map: Jakarta (city 100,
// airport 1) and Denpasar (city 200, airport 2) in country 1, Singapore
// (city 300, airport 3) in country 2.
type searchMocks struct {
	flights   *domain.MockFlightStore
	cities    *domain.MockCityStore
	countries *domain.MockCountryStore
	airports  *domain.MockAirportStore
	airplanes *domain.MockAirplaneStore
	cache     *domain.MockItineraryCache
}

func newSearchForTest(t *testing.T, withCache bool) (ItinerarySearchUseCase, searchMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := searchMocks{
		flights:   domain.NewMockFlightStore(ctrl),
		cities:    domain.NewMockCityStore(ctrl),
		countries: domain.NewMockCountryStore(ctrl),
		airports:  domain.NewMockAirportStore(ctrl),
		airplanes: domain.NewMockAirplaneStore(ctrl),
	}
	var cache domain.ItineraryCache
	if withCache {
		m.cache = domain.NewMockItineraryCache(ctrl)
		cache = m.cache
	}
	uc := NewItinerarySearch(m.flights, m.cities, m.countries, m.airports, m.airplanes, cache, time.Minute, zerolog.Nop())
	return uc, m
}

var (
	indonesia = &domain.Country{ID: 1, Name: "Indonesia", Code: "ID"}
	sgCountry = &domain.Country{ID: 2, Name: "Singapore", Code: "SG"}

	jakarta   = &domain.City{ID: 100, CountryID: 1, Name: "Jakarta"}
	denpasar  = &domain.City{ID: 200, CountryID: 1, Name: "Denpasar"}
	singapore = &domain.City{ID: 300, CountryID: 2, Name: "Singapore"}

	cityByAirportFixture = map[uint64]*domain.City{1: jakarta, 2: denpasar, 3: singapore}
	countryFixture       = map[uint64]*domain.Country{1: indonesia, 2: sgCountry}
)

func searchFlight(t *testing.T, id, depAirport, arrAirport uint64, dep, arr string) domain.Flight {
	t.Helper()
	return domain.Flight{
		ID:                 id,
		FlightNumber:       "FL-TEST",
		AirplaneID:         7,
		DepartureAirportID: depAirport,
		ArrivalAirportID:   arrAirport,
		DepartureTime:      testutil.MustParseTime(t, dep),
		ArrivalTime:        testutil.MustParseTime(t, arr),
		Status:             domain.StatusScheduled,
		Price:              100,
		Seats:              testutil.StandardSeats(t),
	}
}

// expectRehydration wires the reference lookups the result enrichment makes.
// Lookups are memoized per search, so AnyTimes keeps the fixtures order
// independent.
func expectRehydration(m searchMocks) {
	m.airplanes.EXPECT().GetByID(gomock.Any(), uint64(7)).Return(testAirplane(), nil).AnyTimes()
	for airportID, city := range cityByAirportFixture {
		m.airports.EXPECT().GetByID(gomock.Any(), airportID).
			Return(&domain.Airport{ID: airportID, CityID: city.ID}, nil).AnyTimes()
		m.cities.EXPECT().GetByID(gomock.Any(), city.ID).Return(city, nil).AnyTimes()
		m.cities.EXPECT().GetByAirportID(gomock.Any(), airportID).Return(city, nil).AnyTimes()
	}
	for countryID, country := range countryFixture {
		m.countries.EXPECT().GetByID(gomock.Any(), countryID).Return(country, nil).AnyTimes()
	}
}

func TestSearch_RejectsSameCityPair(t *testing.T) {
	uc, _ := newSearchForTest(t, false)
	_, err := uc.Search(context.Background(), 100, 100, time.Now())
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestSearch_DirectDomesticFlight(t *testing.T) {
	uc, m := newSearchForTest(t, false)
	ctx := context.Background()
	date := testutil.MustParseDate(t, "2026-03-02")

	m.cities.EXPECT().GetByID(ctx, uint64(100)).Return(jakarta, nil)
	m.cities.EXPECT().GetByID(ctx, uint64(200)).Return(denpasar, nil)
	expectRehydration(m)

	direct := searchFlight(t, 11, 1, 2, "2026-03-02T08:00:00Z", "2026-03-02T10:00:00Z")
	m.flights.EXPECT().ListByDepartureCityAndDate(ctx, uint64(100), date).
		Return([]domain.Flight{direct}, nil)

	got, err := uc.Search(ctx, 100, 200, date)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Len(t, got[0].Flights, 1)
	assert.Equal(t, uint64(11), got[0].Flights[0].Flight.ID)
	assert.Equal(t, "Jakarta", got[0].Flights[0].DepartureCity.Name)
	assert.Equal(t, "Indonesia", got[0].Flights[0].DepartureCountry.Name)
	assert.Equal(t, "Indonesia", got[0].Flights[0].ArrivalCountry.Name)
	assert.Equal(t, 50.0, got[0].Flights[0].ClassPrices["economy"])
}

func TestSearch_DomesticHasNoConnections(t *testing.T) {
	uc, m := newSearchForTest(t, false)
	ctx := context.Background()
	date := testutil.MustParseDate(t, "2026-03-02")

	m.cities.EXPECT().GetByID(ctx, uint64(100)).Return(jakarta, nil)
	m.cities.EXPECT().GetByID(ctx, uint64(200)).Return(denpasar, nil)
	expectRehydration(m)

	// Only a Jakarta to Singapore leg departs on the date. The domestic hop
	// budget is exhausted after the first flight, so Denpasar is never
	// reached and no departure-window query is made.
	offRoute := searchFlight(t, 11, 1, 3, "2026-03-02T08:00:00Z", "2026-03-02T10:00:00Z")
	m.flights.EXPECT().ListByDepartureCityAndDate(ctx, uint64(100), date).
		Return([]domain.Flight{offRoute}, nil)

	got, err := uc.Search(ctx, 100, 200, date)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSearch_InternationalConnectionWithinLayoverWindow(t *testing.T) {
	uc, m := newSearchForTest(t, false)
	ctx := context.Background()
	date := testutil.MustParseDate(t, "2026-03-02")

	m.cities.EXPECT().GetByID(ctx, uint64(100)).Return(jakarta, nil)
	m.cities.EXPECT().GetByID(ctx, uint64(300)).Return(singapore, nil)
	expectRehydration(m)

	first := searchFlight(t, 11, 1, 2, "2026-03-02T08:00:00Z", "2026-03-02T10:00:00Z")
	connection := searchFlight(t, 12, 2, 3, "2026-03-02T12:00:00Z", "2026-03-02T14:00:00Z")

	m.flights.EXPECT().ListByDepartureCityAndDate(ctx, uint64(100), date).
		Return([]domain.Flight{first}, nil)
	// The window opens one hour after arrival and closes six hours after.
	m.flights.EXPECT().ListByDepartureWindow(ctx, uint64(2),
		testutil.MustParseTime(t, "2026-03-02T11:00:00Z"),
		testutil.MustParseTime(t, "2026-03-02T16:00:00Z")).
		Return([]domain.Flight{connection}, nil)

	got, err := uc.Search(ctx, 100, 300, date)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Len(t, got[0].Flights, 2)
	assert.Equal(t, uint64(11), got[0].Flights[0].Flight.ID)
	assert.Equal(t, uint64(12), got[0].Flights[1].Flight.ID)
}

func TestSearch_FIFODiscoveryOrder(t *testing.T) {
	uc, m := newSearchForTest(t, false)
	ctx := context.Background()
	date := testutil.MustParseDate(t, "2026-03-02")

	m.cities.EXPECT().GetByID(ctx, uint64(100)).Return(jakarta, nil)
	m.cities.EXPECT().GetByID(ctx, uint64(300)).Return(singapore, nil)
	expectRehydration(m)

	// A later direct flight is seeded after an earlier connecting one, but
	// single-flight completions still surface before two-flight ones because
	// all seeds are examined before any extension.
	viaDenpasar := searchFlight(t, 11, 1, 2, "2026-03-02T06:00:00Z", "2026-03-02T08:00:00Z")
	direct := searchFlight(t, 12, 1, 3, "2026-03-02T09:00:00Z", "2026-03-02T11:00:00Z")
	connection := searchFlight(t, 13, 2, 3, "2026-03-02T10:00:00Z", "2026-03-02T12:00:00Z")

	m.flights.EXPECT().ListByDepartureCityAndDate(ctx, uint64(100), date).
		Return([]domain.Flight{viaDenpasar, direct}, nil)
	m.flights.EXPECT().ListByDepartureWindow(ctx, uint64(2), gomock.Any(), gomock.Any()).
		Return([]domain.Flight{connection}, nil)

	got, err := uc.Search(ctx, 100, 300, date)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, uint64(12), got[0].Flights[0].Flight.ID)
	assert.Len(t, got[1].Flights, 2)
}

func TestSearch_RevisitedAirportIsPruned(t *testing.T) {
	uc, m := newSearchForTest(t, false)
	ctx := context.Background()
	date := testutil.MustParseDate(t, "2026-03-02")

	m.cities.EXPECT().GetByID(ctx, uint64(100)).Return(jakarta, nil)
	m.cities.EXPECT().GetByID(ctx, uint64(300)).Return(singapore, nil)
	expectRehydration(m)

	outbound := searchFlight(t, 11, 1, 2, "2026-03-02T08:00:00Z", "2026-03-02T10:00:00Z")
	backtrack := searchFlight(t, 12, 2, 1, "2026-03-02T12:00:00Z", "2026-03-02T14:00:00Z")
	repeat := searchFlight(t, 13, 1, 2, "2026-03-02T16:00:00Z", "2026-03-02T18:00:00Z")

	m.flights.EXPECT().ListByDepartureCityAndDate(ctx, uint64(100), date).
		Return([]domain.Flight{outbound}, nil)
	// Returning to the origin is allowed, but the hop after that can only
	// revisit Denpasar, which the path has already consumed as an arrival.
	// The pruned extension leaves the frontier empty.
	m.flights.EXPECT().ListByDepartureWindow(ctx, uint64(2), gomock.Any(), gomock.Any()).
		Return([]domain.Flight{backtrack}, nil)
	m.flights.EXPECT().ListByDepartureWindow(ctx, uint64(1), gomock.Any(), gomock.Any()).
		Return([]domain.Flight{repeat}, nil)

	got, err := uc.Search(ctx, 100, 300, date)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSearch_CacheHitSkipsExpansion(t *testing.T) {
	uc, m := newSearchForTest(t, true)
	ctx := context.Background()
	date := testutil.MustParseDate(t, "2026-03-02")

	m.cities.EXPECT().GetByID(ctx, uint64(100)).Return(jakarta, nil)
	m.cities.EXPECT().GetByID(ctx, uint64(200)).Return(denpasar, nil)

	cached := []domain.Itinerary{{Flights: []domain.ItineraryFlight{{}}}}
	m.cache.EXPECT().Get(ctx, "itineraries:100:200:2026-03-02").Return(cached, true, nil)

	got, err := uc.Search(ctx, 100, 200, date)
	require.NoError(t, err)
	assert.Equal(t, cached, got)
}

func TestSearch_CacheMissStoresResult(t *testing.T) {
	uc, m := newSearchForTest(t, true)
	ctx := context.Background()
	date := testutil.MustParseDate(t, "2026-03-02")

	m.cities.EXPECT().GetByID(ctx, uint64(100)).Return(jakarta, nil)
	m.cities.EXPECT().GetByID(ctx, uint64(200)).Return(denpasar, nil)
	expectRehydration(m)

	m.cache.EXPECT().Get(ctx, "itineraries:100:200:2026-03-02").Return(nil, false, nil)
	direct := searchFlight(t, 11, 1, 2, "2026-03-02T08:00:00Z", "2026-03-02T10:00:00Z")
	m.flights.EXPECT().ListByDepartureCityAndDate(ctx, uint64(100), date).
		Return([]domain.Flight{direct}, nil)
	m.cache.EXPECT().Set(ctx, "itineraries:100:200:2026-03-02", gomock.Any(), time.Minute).Return(nil)

	got, err := uc.Search(ctx, 100, 200, date)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestSearch_CacheErrorsAreNonFatal(t *testing.T) {
	uc, m := newSearchForTest(t, true)
	ctx := context.Background()
	date := testutil.MustParseDate(t, "2026-03-02")

	m.cities.EXPECT().GetByID(ctx, uint64(100)).Return(jakarta, nil)
	m.cities.EXPECT().GetByID(ctx, uint64(200)).Return(denpasar, nil)
	expectRehydration(m)

	m.cache.EXPECT().Get(ctx, gomock.Any()).Return(nil, false, errors.New("redis down"))
	m.flights.EXPECT().ListByDepartureCityAndDate(ctx, uint64(100), date).
		Return(nil, nil)
	m.cache.EXPECT().Set(ctx, gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("redis down"))

	got, err := uc.Search(ctx, 100, 200, date)
	require.NoError(t, err)
	assert.Empty(t, got)
}
