package usecase

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/airline-ops/airline-inventory-system/internal/domain"
	"github.com/airline-ops/airline-inventory-system/test/testutil"
)

type flightMocks struct {
	flights   *domain.MockFlightStore
	airplanes *domain.MockAirplaneStore
	airports  *domain.MockAirportStore
}

func newFlightUseCaseForTest(t *testing.T) (FlightUseCase, flightMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := flightMocks{
		flights:   domain.NewMockFlightStore(ctrl),
		airplanes: domain.NewMockAirplaneStore(ctrl),
		airports:  domain.NewMockAirportStore(ctrl),
	}
	uc := NewFlightUseCase(m.flights, m.airplanes, m.airports, nil, zerolog.Nop())
	return uc, m
}

func testFlightInput(t *testing.T) CreateFlightInput {
	t.Helper()
	return CreateFlightInput{
		AirplaneID:         7,
		DepartureAirportID: 1,
		ArrivalAirportID:   2,
		DepartureTime:      time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC),
		ArrivalTime:        time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC),
		Price:              100,
		Seats:              testutil.StandardSeats(t),
	}
}

func expectReferencesExist(m flightMocks) {
	m.airplanes.EXPECT().GetByID(gomock.Any(), uint64(7)).Return(testAirplane(), nil)
	m.airports.EXPECT().GetByID(gomock.Any(), uint64(1)).Return(&domain.Airport{ID: 1}, nil)
	m.airports.EXPECT().GetByID(gomock.Any(), uint64(2)).Return(&domain.Airport{ID: 2}, nil)
}

func TestFlightCreate_Success(t *testing.T) {
	uc, m := newFlightUseCaseForTest(t)
	input := testFlightInput(t)

	expectReferencesExist(m)
	m.flights.EXPECT().Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, f *domain.Flight) (uint64, error) {
			assert.Equal(t, domain.StatusScheduled, f.Status)
			assert.True(t, strings.HasPrefix(f.FlightNumber, "FL-"))
			return 11, nil
		})

	flight, err := uc.Create(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, uint64(11), flight.ID)
}

func TestFlightCreate_KeepsProvidedFlightNumber(t *testing.T) {
	uc, m := newFlightUseCaseForTest(t)
	input := testFlightInput(t)
	input.FlightNumber = "GA-412"

	expectReferencesExist(m)
	m.flights.EXPECT().Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, f *domain.Flight) (uint64, error) {
			assert.Equal(t, "GA-412", f.FlightNumber)
			return 12, nil
		})

	_, err := uc.Create(context.Background(), input)
	assert.NoError(t, err)
}

func TestFlightCreate_AcceptsDifferentCabinSplit(t *testing.T) {
	uc, m := newFlightUseCaseForTest(t)
	input := testFlightInput(t)

	// Same 150-seat capacity as the standard configuration, laid out with a
	// different per-class split. Only the grand total is validated.
	plane := testAirplane()
	plane.EconomySeats = 99
	plane.PremiumSeats = 31
	plane.BusinessSeats = 20

	m.airplanes.EXPECT().GetByID(gomock.Any(), uint64(7)).Return(plane, nil)
	m.airports.EXPECT().GetByID(gomock.Any(), uint64(1)).Return(&domain.Airport{ID: 1}, nil)
	m.airports.EXPECT().GetByID(gomock.Any(), uint64(2)).Return(&domain.Airport{ID: 2}, nil)
	m.flights.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(uint64(13), nil)

	_, err := uc.Create(context.Background(), input)
	assert.NoError(t, err)
}

func TestFlightCreate_Validation(t *testing.T) {
	t.Run("arrival not after departure", func(t *testing.T) {
		uc, m := newFlightUseCaseForTest(t)
		input := testFlightInput(t)
		input.ArrivalTime = input.DepartureTime

		expectReferencesExist(m)
		_, err := uc.Create(context.Background(), input)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("negative price", func(t *testing.T) {
		uc, m := newFlightUseCaseForTest(t)
		input := testFlightInput(t)
		input.Price = -1

		expectReferencesExist(m)
		_, err := uc.Create(context.Background(), input)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("unknown status", func(t *testing.T) {
		uc, m := newFlightUseCaseForTest(t)
		input := testFlightInput(t)
		input.Status = domain.FlightStatus("boarding")

		expectReferencesExist(m)
		_, err := uc.Create(context.Background(), input)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("seat windows under airplane capacity", func(t *testing.T) {
		uc, m := newFlightUseCaseForTest(t)
		input := testFlightInput(t)
		bigger := testAirplane()
		bigger.BusinessSeats = 30

		m.airplanes.EXPECT().GetByID(gomock.Any(), uint64(7)).Return(bigger, nil)
		m.airports.EXPECT().GetByID(gomock.Any(), gomock.Any()).Return(&domain.Airport{}, nil).Times(2)

		_, err := uc.Create(context.Background(), input)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("unknown departure airport", func(t *testing.T) {
		uc, m := newFlightUseCaseForTest(t)
		input := testFlightInput(t)

		m.airplanes.EXPECT().GetByID(gomock.Any(), uint64(7)).Return(testAirplane(), nil)
		m.airports.EXPECT().GetByID(gomock.Any(), uint64(1)).
			Return(nil, domain.NewNotFoundError("airport", 1))

		_, err := uc.Create(context.Background(), input)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestFlightUpdateStatus(t *testing.T) {
	t.Run("persists the new status", func(t *testing.T) {
		uc, m := newFlightUseCaseForTest(t)
		stored := &domain.Flight{ID: 11, Status: domain.StatusScheduled}

		m.flights.EXPECT().GetByID(gomock.Any(), uint64(11)).Return(stored, nil)
		m.flights.EXPECT().Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, f *domain.Flight) error {
				assert.Equal(t, domain.StatusCancelled, f.Status)
				return nil
			})

		flight, err := uc.UpdateStatus(context.Background(), 11, domain.StatusCancelled)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusCancelled, flight.Status)
	})

	t.Run("re-asserting the current status succeeds", func(t *testing.T) {
		uc, m := newFlightUseCaseForTest(t)
		stored := &domain.Flight{ID: 11, Status: domain.StatusScheduled}

		m.flights.EXPECT().GetByID(gomock.Any(), uint64(11)).Return(stored, nil)
		m.flights.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

		flight, err := uc.UpdateStatus(context.Background(), 11, domain.StatusScheduled)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusScheduled, flight.Status)
	})

	t.Run("rejects unknown status without a lookup", func(t *testing.T) {
		uc, _ := newFlightUseCaseForTest(t)
		_, err := uc.UpdateStatus(context.Background(), 11, domain.FlightStatus("parked"))
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestDecrementSeats_RetriesOnConflict(t *testing.T) {
	uc, m := newFlightUseCaseForTest(t)
	ctx := context.Background()

	fresh := func() *domain.Flight {
		return &domain.Flight{ID: 11, Price: 100, Seats: testutil.StandardSeats(t)}
	}

	gomock.InOrder(
		m.flights.EXPECT().GetByID(ctx, uint64(11)).Return(fresh(), nil),
		m.flights.EXPECT().UpdateSeats(ctx, uint64(11), gomock.Any(), gomock.Any()).
			Return(domain.ErrConflict),
		m.flights.EXPECT().GetByID(ctx, uint64(11)).Return(fresh(), nil),
		m.flights.EXPECT().UpdateSeats(ctx, uint64(11), gomock.Any(), gomock.Any()).Return(nil),
	)

	flight, err := uc.DecrementSeats(ctx, 11, domain.ClassEconomy, 5)
	require.NoError(t, err)
	assert.Equal(t, 35, flight.Seats.Economy.Windows[0].Seats)
}

func TestDecrementSeats_GivesUpAfterBoundedAttempts(t *testing.T) {
	uc, m := newFlightUseCaseForTest(t)
	ctx := context.Background()

	m.flights.EXPECT().GetByID(ctx, uint64(11)).
		DoAndReturn(func(context.Context, uint64) (*domain.Flight, error) {
			return &domain.Flight{ID: 11, Price: 100, Seats: testutil.StandardSeats(t)}, nil
		}).
		Times(seatUpdateAttempts)
	m.flights.EXPECT().UpdateSeats(ctx, uint64(11), gomock.Any(), gomock.Any()).
		Return(domain.ErrConflict).
		Times(seatUpdateAttempts)

	_, err := uc.DecrementSeats(ctx, 11, domain.ClassEconomy, 5)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestDecrementSeats_DomainErrorsDoNotRetry(t *testing.T) {
	t.Run("insufficient inventory", func(t *testing.T) {
		uc, m := newFlightUseCaseForTest(t)
		m.flights.EXPECT().GetByID(gomock.Any(), uint64(11)).
			Return(&domain.Flight{ID: 11, Price: 100, Seats: testutil.StandardSeats(t)}, nil)

		_, err := uc.DecrementSeats(context.Background(), 11, domain.ClassEconomy, 41)
		assert.ErrorIs(t, err, domain.ErrInsufficientInventory)
	})

	t.Run("unknown class", func(t *testing.T) {
		uc, _ := newFlightUseCaseForTest(t)
		_, err := uc.DecrementSeats(context.Background(), 11, domain.CabinClass("first"), 1)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestSalePrices(t *testing.T) {
	uc, _ := newFlightUseCaseForTest(t)
	flight := &domain.Flight{Price: 100, Seats: testutil.StandardSeats(t)}

	prices := uc.SalePrices(flight)
	assert.Equal(t, 50.0, prices["economy"])
	assert.Equal(t, 80.0, prices["premium"])
	assert.Equal(t, 90.0, prices["business"])
}

func TestGenerateFlightNumber(t *testing.T) {
	n := generateFlightNumber()
	assert.Len(t, n, 11)
	assert.True(t, strings.HasPrefix(n, "FL-"))
	assert.Equal(t, strings.ToUpper(n), n)
	assert.NotEqual(t, n, generateFlightNumber())
}
