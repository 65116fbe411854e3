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

// rotationMocks bundles the mocked dependencies of the rotation use case.
type rotationMocks struct {
	rotations *domain.MockRotationStore
	airplanes *domain.MockAirplaneStore
	airports  *domain.MockAirportStore
	tx        *domain.MockTxManager
	events    *domain.MockEventPublisher
}

func newRotationUseCaseForTest(t *testing.T) (RotationUseCase, rotationMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := rotationMocks{
		rotations: domain.NewMockRotationStore(ctrl),
		airplanes: domain.NewMockAirplaneStore(ctrl),
		airports:  domain.NewMockAirportStore(ctrl),
		tx:        domain.NewMockTxManager(ctrl),
		events:    domain.NewMockEventPublisher(ctrl),
	}
	uc := NewRotationUseCase(m.rotations, m.airplanes, m.airports, m.tx, m.events, zerolog.Nop())
	return uc, m
}

// passthroughTx makes the mocked transaction manager run the callback
// directly, as the real manager does around its begin/commit.
func passthroughTx(m *domain.MockTxManager) {
	m.EXPECT().
		WithinTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		}).
		AnyTimes()
}

func testAirplane() *domain.Airplane {
	return &domain.Airplane{ID: 7, Model: "A320", Registration: "PK-AXC",
		EconomySeats: 100, PremiumSeats: 30, BusinessSeats: 20}
}

func testRotationInput(t *testing.T) CreateRotationInput {
	t.Helper()
	return CreateRotationInput{
		AirplaneID: 7,
		StartDate:  time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		Legs: []domain.FlightLeg{
			{
				DepartureAirportID: 1,
				ArrivalAirportID:   2,
				DepartureTime:      testutil.MustClockTime(t, "08:00"),
				ArrivalTime:        testutil.MustClockTime(t, "10:00"),
				Price:              100,
				Seats:              testutil.StandardSeats(t),
			},
			{
				DepartureAirportID: 2,
				ArrivalAirportID:   1,
				DepartureTime:      testutil.MustClockTime(t, "12:00"),
				ArrivalTime:        testutil.MustClockTime(t, "14:00"),
				Price:              100,
				Seats:              testutil.StandardSeats(t),
			},
		},
	}
}

func TestRotationCreate_Success(t *testing.T) {
	uc, m := newRotationUseCaseForTest(t)
	ctx := context.Background()
	input := testRotationInput(t)

	m.airplanes.EXPECT().GetByID(ctx, uint64(7)).Return(testAirplane(), nil)
	m.airports.EXPECT().GetByID(ctx, uint64(1)).Return(&domain.Airport{ID: 1}, nil).Times(2)
	m.airports.EXPECT().GetByID(ctx, uint64(2)).Return(&domain.Airport{ID: 2}, nil).Times(2)
	passthroughTx(m.tx)
	m.rotations.EXPECT().ListActiveByAirplane(gomock.Any(), uint64(7)).Return(nil, nil)
	m.rotations.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(uint64(42), nil)
	m.events.EXPECT().Publish(gomock.Any(), EventRotationCreated, gomock.Any()).Return(nil)

	rot, err := uc.Create(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), rot.ID)
	assert.Equal(t, 0, rot.DayOffset)
	assert.False(t, rot.Cancelled)
}

func TestRotationCreate_RejectsOverlap(t *testing.T) {
	uc, m := newRotationUseCaseForTest(t)
	ctx := context.Background()
	input := testRotationInput(t)

	// An active rotation over the same dates occupies through March 1
	// 14:00; the candidate departs 08:00 on the same day.
	existing := domain.Rotation{
		ID:         9,
		AirplaneID: 7,
		StartDate:  time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		Legs:       input.Legs,
	}

	m.airplanes.EXPECT().GetByID(ctx, uint64(7)).Return(testAirplane(), nil)
	m.airports.EXPECT().GetByID(ctx, gomock.Any()).Return(&domain.Airport{}, nil).Times(4)
	passthroughTx(m.tx)
	m.rotations.EXPECT().ListActiveByAirplane(gomock.Any(), uint64(7)).Return([]domain.Rotation{existing}, nil)

	_, err := uc.Create(ctx, input)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrOverlap)
}

func TestRotationCreate_AcceptsStartAfterOccupiedSpan(t *testing.T) {
	uc, m := newRotationUseCaseForTest(t)
	ctx := context.Background()

	// The existing plan occupies March 1 08:00 through 14:00; a candidate
	// anchored the following day departs strictly after that.
	input := testRotationInput(t)
	existing := domain.Rotation{
		ID:         9,
		AirplaneID: 7,
		StartDate:  time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		Legs:       input.Legs,
	}
	input.StartDate = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	m.airplanes.EXPECT().GetByID(ctx, uint64(7)).Return(testAirplane(), nil)
	m.airports.EXPECT().GetByID(ctx, gomock.Any()).Return(&domain.Airport{}, nil).Times(4)
	passthroughTx(m.tx)
	m.rotations.EXPECT().ListActiveByAirplane(gomock.Any(), uint64(7)).Return([]domain.Rotation{existing}, nil)
	m.rotations.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(uint64(43), nil)
	m.events.EXPECT().Publish(gomock.Any(), EventRotationCreated, gomock.Any()).Return(nil)

	rot, err := uc.Create(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, uint64(43), rot.ID)
}

func TestRotationCreate_ValidationFailures(t *testing.T) {
	t.Run("broken leg chain", func(t *testing.T) {
		uc, _ := newRotationUseCaseForTest(t)
		input := testRotationInput(t)
		input.Legs = input.Legs[:1]

		_, err := uc.Create(context.Background(), input)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("unknown airplane", func(t *testing.T) {
		uc, m := newRotationUseCaseForTest(t)
		input := testRotationInput(t)
		m.airplanes.EXPECT().GetByID(gomock.Any(), uint64(7)).
			Return(nil, domain.NewNotFoundError("airplane", 7))

		_, err := uc.Create(context.Background(), input)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("seat configuration under capacity", func(t *testing.T) {
		uc, m := newRotationUseCaseForTest(t)
		input := testRotationInput(t)
		// The airplane has more economy seats than the windows cover.
		bigger := testAirplane()
		bigger.EconomySeats = 120

		m.airplanes.EXPECT().GetByID(gomock.Any(), uint64(7)).Return(bigger, nil)
		m.airports.EXPECT().GetByID(gomock.Any(), gomock.Any()).Return(&domain.Airport{}, nil).Times(2)

		_, err := uc.Create(context.Background(), input)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestRotationCreate_PublishFailureDoesNotFail(t *testing.T) {
	uc, m := newRotationUseCaseForTest(t)
	ctx := context.Background()
	input := testRotationInput(t)

	m.airplanes.EXPECT().GetByID(ctx, uint64(7)).Return(testAirplane(), nil)
	m.airports.EXPECT().GetByID(ctx, gomock.Any()).Return(&domain.Airport{}, nil).Times(4)
	passthroughTx(m.tx)
	m.rotations.EXPECT().ListActiveByAirplane(gomock.Any(), uint64(7)).Return(nil, nil)
	m.rotations.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(uint64(42), nil)
	m.events.EXPECT().Publish(gomock.Any(), EventRotationCreated, gomock.Any()).
		Return(errors.New("broker down"))

	_, err := uc.Create(ctx, input)
	assert.NoError(t, err)
}

func TestRotationCancel(t *testing.T) {
	t.Run("marks cancelled and publishes", func(t *testing.T) {
		uc, m := newRotationUseCaseForTest(t)
		ctx := context.Background()

		m.rotations.EXPECT().GetByID(ctx, uint64(9)).Return(&domain.Rotation{ID: 9}, nil)
		m.rotations.EXPECT().Cancel(ctx, uint64(9)).Return(nil)
		m.events.EXPECT().Publish(gomock.Any(), EventRotationCancelled, gomock.Any()).Return(nil)

		assert.NoError(t, uc.Cancel(ctx, 9))
	})

	t.Run("already cancelled is a no-op", func(t *testing.T) {
		uc, m := newRotationUseCaseForTest(t)
		ctx := context.Background()

		// No store write and no second event for a rotation that is already
		// cancelled.
		m.rotations.EXPECT().GetByID(ctx, uint64(9)).
			Return(&domain.Rotation{ID: 9, Cancelled: true}, nil)

		assert.NoError(t, uc.Cancel(ctx, 9))
	})

	t.Run("unknown rotation", func(t *testing.T) {
		uc, m := newRotationUseCaseForTest(t)
		m.rotations.EXPECT().GetByID(gomock.Any(), uint64(404)).
			Return(nil, domain.NewNotFoundError("rotation", 404))

		assert.ErrorIs(t, uc.Cancel(context.Background(), 404), domain.ErrNotFound)
	})
}
