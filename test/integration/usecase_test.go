package integration

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/airline-ops/airline-inventory-system/internal/domain"
	"github.com/airline-ops/airline-inventory-system/internal/usecase"
	"github.com/airline-ops/airline-inventory-system/test/testutil"
)

// seedReferenceData creates two countries, two cities each with one airport,
// and one airplane sized for testutil.StandardSeats (100/30/20).
type refIDs struct {
	countryA, countryB uint64
	cityA, cityB       uint64
	airportA, airportB uint64
	airplane           uint64
}

func seedReferenceData(t *testing.T, e *env, sameCountry bool) refIDs {
	t.Helper()
	ctx := context.Background()

	var ids refIDs
	var err error

	ids.countryA, err = e.store.Insert(ctx, &domain.Country{Name: "Indonesia", Code: "ID"})
	require.NoError(t, err)
	if sameCountry {
		ids.countryB = ids.countryA
	} else {
		ids.countryB, err = e.store.Insert(ctx, &domain.Country{Name: "Singapore", Code: "SG"})
		require.NoError(t, err)
	}

	ids.cityA, err = cityStore{e.store}.Insert(ctx, &domain.City{CountryID: ids.countryA, Name: "Jakarta"})
	require.NoError(t, err)
	ids.cityB, err = cityStore{e.store}.Insert(ctx, &domain.City{CountryID: ids.countryB, Name: "Denpasar"})
	require.NoError(t, err)

	ids.airportA, err = airportStore{e.store}.Insert(ctx, &domain.Airport{CityID: ids.cityA, Name: "Soekarno-Hatta", Code: "CGK"})
	require.NoError(t, err)
	ids.airportB, err = airportStore{e.store}.Insert(ctx, &domain.Airport{CityID: ids.cityB, Name: "Ngurah Rai", Code: "DPS"})
	require.NoError(t, err)

	ids.airplane, err = airplaneStore{e.store}.Insert(ctx, &domain.Airplane{
		Model:         "A320",
		Registration:  "PK-AXC",
		EconomySeats:  100,
		PremiumSeats:  30,
		BusinessSeats: 20,
	})
	require.NoError(t, err)

	return ids
}

func rotationInput(t *testing.T, ids refIDs, startDate string) usecase.CreateRotationInput {
	t.Helper()
	return usecase.CreateRotationInput{
		AirplaneID: ids.airplane,
		StartDate:  testutil.MustParseDate(t, startDate),
		Legs: []domain.FlightLeg{
			{
				DepartureAirportID: ids.airportA,
				ArrivalAirportID:   ids.airportB,
				DepartureTime:      testutil.MustClockTime(t, "08:00"),
				ArrivalTime:        testutil.MustClockTime(t, "10:00"),
				Price:              100,
				Seats:              testutil.StandardSeats(t),
			},
			{
				DepartureAirportID: ids.airportB,
				ArrivalAirportID:   ids.airportA,
				DepartureTime:      testutil.MustClockTime(t, "12:00"),
				ArrivalTime:        testutil.MustClockTime(t, "14:00"),
				Price:              100,
				Seats:              testutil.StandardSeats(t),
			},
		},
	}
}

func TestRotationLifecycle(t *testing.T) {
	e := newEnv(3)
	ids := seedReferenceData(t, e, true)
	ctx := context.Background()

	rot, err := e.rotations.Create(ctx, rotationInput(t, ids, "2026-03-01"))
	require.NoError(t, err)
	assert.NotZero(t, rot.ID)
	assert.Equal(t, 0, rot.DayOffset)

	// A second rotation on the same airplane over the same dates must be
	// rejected as overlapping.
	_, err = e.rotations.Create(ctx, rotationInput(t, ids, "2026-03-01"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrOverlap)

	// A different airplane is free to fly the same plan.
	other, err := airplaneStore{e.store}.Insert(ctx, &domain.Airplane{
		Model: "A320", Registration: "PK-AXD",
		EconomySeats: 100, PremiumSeats: 30, BusinessSeats: 20,
	})
	require.NoError(t, err)
	otherInput := rotationInput(t, ids, "2026-03-01")
	otherInput.AirplaneID = other
	_, err = e.rotations.Create(ctx, otherInput)
	require.NoError(t, err)

	// Cancelling frees the airplane for a new rotation; a repeat cancel is
	// a no-op rather than an error.
	require.NoError(t, e.rotations.Cancel(ctx, rot.ID))
	require.NoError(t, e.rotations.Cancel(ctx, rot.ID))
	_, err = e.rotations.Create(ctx, rotationInput(t, ids, "2026-03-01"))
	require.NoError(t, err)
}

func TestMaterializeAdvancesCursor(t *testing.T) {
	e := newEnv(3)
	ids := seedReferenceData(t, e, true)
	ctx := context.Background()

	rot, err := e.rotations.Create(ctx, rotationInput(t, ids, "2026-03-01"))
	require.NoError(t, err)

	require.NoError(t, e.materializer.MaterializeUpcoming(ctx))

	// 2 legs over a 3-day horizon, starting the day after the anchor.
	e.store.mu.Lock()
	flightCount := len(e.store.flights)
	e.store.mu.Unlock()
	assert.Equal(t, 6, flightCount)

	stored, err := rotationStore{e.store}.GetByID(ctx, rot.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, stored.DayOffset)

	// First generated flight departs on day offset+1 at the leg's clock time.
	outbound, err := flightStore{e.store}.ListByDepartureWindow(ctx, ids.airportA,
		testutil.MustParseDate(t, "2026-03-02"), testutil.MustParseDate(t, "2026-03-03"))
	require.NoError(t, err)
	require.Len(t, outbound, 1)
	assert.Equal(t, testutil.MustParseTime(t, "2026-03-02T08:00:00Z"), outbound[0].DepartureTime)
	assert.Equal(t, domain.StatusScheduled, outbound[0].Status)

	// A second pass continues from the advanced cursor instead of
	// regenerating the same days.
	require.NoError(t, e.materializer.MaterializeUpcoming(ctx))

	e.store.mu.Lock()
	flightCount = len(e.store.flights)
	e.store.mu.Unlock()
	assert.Equal(t, 12, flightCount)

	stored, err = rotationStore{e.store}.GetByID(ctx, rot.ID)
	require.NoError(t, err)
	assert.Equal(t, 6, stored.DayOffset)

	duplicates, err := flightStore{e.store}.ListByDepartureWindow(ctx, ids.airportA,
		testutil.MustParseDate(t, "2026-03-02"), testutil.MustParseDate(t, "2026-03-03"))
	require.NoError(t, err)
	assert.Len(t, duplicates, 1)
}

func TestSearchFindsDirectFlightAfterMaterialization(t *testing.T) {
	e := newEnv(3)
	ids := seedReferenceData(t, e, true)
	ctx := context.Background()

	_, err := e.rotations.Create(ctx, rotationInput(t, ids, "2026-03-01"))
	require.NoError(t, err)
	require.NoError(t, e.materializer.MaterializeUpcoming(ctx))

	itineraries, err := e.search.Search(ctx, ids.cityA, ids.cityB, testutil.MustParseDate(t, "2026-03-02"))
	require.NoError(t, err)
	require.Len(t, itineraries, 1)
	require.Len(t, itineraries[0].Flights, 1)

	leg := itineraries[0].Flights[0]
	assert.Equal(t, ids.airportA, leg.Flight.DepartureAirportID)
	assert.Equal(t, ids.airportB, leg.Flight.ArrivalAirportID)
	require.NotNil(t, leg.DepartureCity)
	assert.Equal(t, "Jakarta", leg.DepartureCity.Name)
	require.NotNil(t, leg.DepartureCountry)
	assert.Equal(t, "Indonesia", leg.DepartureCountry.Name)
	// First economy window prices at 50 percent of the 100 base.
	assert.Equal(t, 50.0, leg.ClassPrices[string(domain.ClassEconomy)])

	// No flights on a date outside the horizon.
	empty, err := e.search.Search(ctx, ids.cityA, ids.cityB, testutil.MustParseDate(t, "2026-06-01"))
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestSearchInternationalConnection(t *testing.T) {
	e := newEnv(3)
	ids := seedReferenceData(t, e, false)
	ctx := context.Background()

	// A third city in a third country hosts the connection airport.
	countryC, err := e.store.Insert(ctx, &domain.Country{Name: "Malaysia", Code: "MY"})
	require.NoError(t, err)
	cityC, err := cityStore{e.store}.Insert(ctx, &domain.City{CountryID: countryC, Name: "Kuala Lumpur"})
	require.NoError(t, err)
	airportC, err := airportStore{e.store}.Insert(ctx, &domain.Airport{CityID: cityC, Name: "KLIA", Code: "KUL"})
	require.NoError(t, err)

	createFlight := func(dep, arr uint64, depAt, arrAt string) {
		t.Helper()
		_, err := e.flights.Create(ctx, usecase.CreateFlightInput{
			AirplaneID:         ids.airplane,
			DepartureAirportID: dep,
			ArrivalAirportID:   arr,
			DepartureTime:      testutil.MustParseTime(t, depAt),
			ArrivalTime:        testutil.MustParseTime(t, arrAt),
			Price:              200,
			Seats:              testutil.StandardSeats(t),
		})
		require.NoError(t, err)
	}

	// A -> C arriving 10:00; two onward C -> B options: one inside the
	// 60-360 minute layover window, one beyond it.
	createFlight(ids.airportA, airportC, "2026-04-01T08:00:00Z", "2026-04-01T10:00:00Z")
	createFlight(airportC, ids.airportB, "2026-04-01T12:00:00Z", "2026-04-01T14:00:00Z")
	createFlight(airportC, ids.airportB, "2026-04-01T17:00:00Z", "2026-04-01T19:00:00Z")

	itineraries, err := e.search.Search(ctx, ids.cityA, ids.cityB, testutil.MustParseDate(t, "2026-04-01"))
	require.NoError(t, err)
	require.Len(t, itineraries, 1)
	require.Len(t, itineraries[0].Flights, 2)
	assert.Equal(t, testutil.MustParseTime(t, "2026-04-01T12:00:00Z"), itineraries[0].Flights[1].Flight.DepartureTime)
}

func TestSearchDomesticDisallowsConnections(t *testing.T) {
	e := newEnv(3)
	ids := seedReferenceData(t, e, true)
	ctx := context.Background()

	// A second Jakarta-country city with an airport to connect through.
	cityC, err := cityStore{e.store}.Insert(ctx, &domain.City{CountryID: ids.countryA, Name: "Surabaya"})
	require.NoError(t, err)
	airportC, err := airportStore{e.store}.Insert(ctx, &domain.Airport{CityID: cityC, Name: "Juanda", Code: "SUB"})
	require.NoError(t, err)

	createFlight := func(dep, arr uint64, depAt, arrAt string) {
		t.Helper()
		_, err := e.flights.Create(ctx, usecase.CreateFlightInput{
			AirplaneID:         ids.airplane,
			DepartureAirportID: dep,
			ArrivalAirportID:   arr,
			DepartureTime:      testutil.MustParseTime(t, depAt),
			ArrivalTime:        testutil.MustParseTime(t, arrAt),
			Price:              150,
			Seats:              testutil.StandardSeats(t),
		})
		require.NoError(t, err)
	}

	// Only a connecting option exists, but the domestic policy allows a
	// single flight, so the search comes back empty.
	createFlight(ids.airportA, airportC, "2026-04-01T08:00:00Z", "2026-04-01T09:00:00Z")
	createFlight(airportC, ids.airportB, "2026-04-01T11:00:00Z", "2026-04-01T12:00:00Z")

	itineraries, err := e.search.Search(ctx, ids.cityA, ids.cityB, testutil.MustParseDate(t, "2026-04-01"))
	require.NoError(t, err)
	assert.Empty(t, itineraries)
}

func TestDecrementSeatsMovesPriceWindow(t *testing.T) {
	e := newEnv(3)
	ids := seedReferenceData(t, e, true)
	ctx := context.Background()

	flight, err := e.flights.Create(ctx, usecase.CreateFlightInput{
		AirplaneID:         ids.airplane,
		DepartureAirportID: ids.airportA,
		ArrivalAirportID:   ids.airportB,
		DepartureTime:      testutil.MustParseTime(t, "2026-04-01T08:00:00Z"),
		ArrivalTime:        testutil.MustParseTime(t, "2026-04-01T10:00:00Z"),
		Price:              100,
		Seats:              testutil.StandardSeats(t),
	})
	require.NoError(t, err)

	assert.Equal(t, 50.0, e.flights.SalePrices(flight)[string(domain.ClassEconomy)])

	// Selling the whole first window moves pricing to the second window.
	updated, err := e.flights.DecrementSeats(ctx, flight.ID, domain.ClassEconomy, 40)
	require.NoError(t, err)
	assert.Equal(t, 0, updated.Seats.Economy.Windows[0].Seats)
	assert.Equal(t, 75.0, e.flights.SalePrices(updated)[string(domain.ClassEconomy)])

	// A request no single window can satisfy fails even though the class
	// still has enough seats in total.
	_, err = e.flights.DecrementSeats(ctx, flight.ID, domain.ClassEconomy, 45)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientInventory)
}
