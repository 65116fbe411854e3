package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func windows(pairs ...[2]int) []SeatWindow {
	out := make([]SeatWindow, 0, len(pairs))
	for _, p := range pairs {
		out = append(out, SeatWindow{Seats: p[0], PricePercentage: p[1]})
	}
	return out
}

// standardSeats is the 100/30/20 configuration used across these tests.
func standardSeats(t *testing.T) ClassWindowPrice {
	t.Helper()
	cwp, err := NewClassWindowPrice(
		windows([2]int{40, 50}, [2]int{40, 75}, [2]int{20, 100}),
		windows([2]int{20, 80}, [2]int{10, 100}),
		windows([2]int{10, 90}, [2]int{10, 100}),
	)
	require.NoError(t, err)
	return cwp
}

func TestNewClassWindowPrice(t *testing.T) {
	tests := []struct {
		name     string
		economy  []SeatWindow
		premium  []SeatWindow
		business []SeatWindow
		wantErr  string
	}{
		{
			name:     "valid configuration",
			economy:  windows([2]int{40, 50}, [2]int{40, 75}, [2]int{20, 100}),
			premium:  windows([2]int{20, 80}, [2]int{10, 100}),
			business: windows([2]int{10, 90}, [2]int{10, 100}),
		},
		{
			name:     "zero-seat windows are allowed",
			economy:  windows([2]int{100, 50}, [2]int{0, 75}, [2]int{0, 100}),
			premium:  windows([2]int{30, 80}, [2]int{0, 100}),
			business: windows([2]int{20, 90}, [2]int{0, 100}),
		},
		{
			name:     "economy needs exactly three windows",
			economy:  windows([2]int{50, 50}, [2]int{50, 75}),
			premium:  windows([2]int{20, 80}, [2]int{10, 100}),
			business: windows([2]int{10, 90}, [2]int{10, 100}),
			wantErr:  "economy class must have 3 windows",
		},
		{
			name:     "premium needs exactly two windows",
			economy:  windows([2]int{40, 50}, [2]int{40, 75}, [2]int{20, 100}),
			premium:  windows([2]int{30, 80}),
			business: windows([2]int{10, 90}, [2]int{10, 100}),
			wantErr:  "premium class must have 2 windows",
		},
		{
			name:     "negative seats rejected",
			economy:  windows([2]int{-1, 50}, [2]int{81, 75}, [2]int{20, 100}),
			premium:  windows([2]int{20, 80}, [2]int{10, 100}),
			business: windows([2]int{10, 90}, [2]int{10, 100}),
			wantErr:  "negative seat count",
		},
		{
			name:     "zero price percentage rejected",
			economy:  windows([2]int{40, 0}, [2]int{40, 75}, [2]int{20, 100}),
			premium:  windows([2]int{20, 80}, [2]int{10, 100}),
			business: windows([2]int{10, 90}, [2]int{10, 100}),
			wantErr:  "price percentage must be at least 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cwp, err := NewClassWindowPrice(tt.economy, tt.premium, tt.business)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrValidation)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, cwp.Economy.TotalSeats+cwp.Premium.TotalSeats+cwp.Business.TotalSeats, cwp.TotalSeats())
		})
	}
}

func TestClassWindowPrice_MatchesCapacity(t *testing.T) {
	seats := standardSeats(t)

	assert.NoError(t, seats.MatchesCapacity(&Airplane{EconomySeats: 100, PremiumSeats: 30, BusinessSeats: 20}))

	// Only the grand total matters. A plane whose cabin is laid out
	// differently but seats the same 150 passengers accepts this
	// configuration.
	assert.NoError(t, seats.MatchesCapacity(&Airplane{EconomySeats: 99, PremiumSeats: 31, BusinessSeats: 20}))
	assert.NoError(t, seats.MatchesCapacity(&Airplane{EconomySeats: 120, PremiumSeats: 20, BusinessSeats: 10}))

	err := seats.MatchesCapacity(&Airplane{EconomySeats: 99, PremiumSeats: 30, BusinessSeats: 20})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "does not match airplane capacity 149")
}

func TestClassWindowPrice_Decrement(t *testing.T) {
	t.Run("consumes the first window that fits", func(t *testing.T) {
		seats := standardSeats(t)
		require.NoError(t, seats.Decrement(ClassEconomy, 15))
		assert.Equal(t, 25, seats.Economy.Windows[0].Seats)
		assert.Equal(t, 40, seats.Economy.Windows[1].Seats)
	})

	t.Run("skips a too-small window even when later ones fit", func(t *testing.T) {
		seats := standardSeats(t)
		require.NoError(t, seats.Decrement(ClassEconomy, 10))
		require.NoError(t, seats.Decrement(ClassEconomy, 25))
		// First window now holds 5; a request for 7 must come from the
		// second window, leaving the first untouched.
		require.NoError(t, seats.Decrement(ClassEconomy, 7))
		assert.Equal(t, 5, seats.Economy.Windows[0].Seats)
		assert.Equal(t, 33, seats.Economy.Windows[1].Seats)
	})

	t.Run("never splits across windows", func(t *testing.T) {
		seats := standardSeats(t)
		// 41 exceeds every single economy window even though 100 remain.
		err := seats.Decrement(ClassEconomy, 41)
		assert.ErrorIs(t, err, ErrInsufficientInventory)
		assert.Equal(t, 40, seats.Economy.Windows[0].Seats)
	})

	t.Run("rejects non-positive counts", func(t *testing.T) {
		seats := standardSeats(t)
		assert.ErrorIs(t, seats.Decrement(ClassEconomy, 0), ErrValidation)
		assert.ErrorIs(t, seats.Decrement(ClassEconomy, -3), ErrValidation)
	})

	t.Run("rejects unknown class", func(t *testing.T) {
		seats := standardSeats(t)
		assert.ErrorIs(t, seats.Decrement(CabinClass("first"), 1), ErrValidation)
	})
}

func TestClassWindowPrice_SalePrice(t *testing.T) {
	seats := standardSeats(t)

	assert.Equal(t, 50.0, seats.SalePrice(ClassEconomy, 100))
	assert.Equal(t, 80.0, seats.SalePrice(ClassPremium, 100))
	assert.Equal(t, 90.0, seats.SalePrice(ClassBusiness, 100))

	// Emptying the first economy window moves pricing to the second.
	require.NoError(t, seats.Decrement(ClassEconomy, 40))
	assert.Equal(t, 75.0, seats.SalePrice(ClassEconomy, 100))

	// An exhausted class prices at zero rather than erroring.
	require.NoError(t, seats.Decrement(ClassBusiness, 10))
	require.NoError(t, seats.Decrement(ClassBusiness, 10))
	assert.Equal(t, 0.0, seats.SalePrice(ClassBusiness, 100))
}

func TestFlightStatus_IsValid(t *testing.T) {
	for _, s := range []FlightStatus{
		StatusScheduled, StatusBoarding, StatusInFlight, StatusLanded,
		StatusCompleted, StatusDelayed, StatusCancelled,
	} {
		assert.True(t, s.IsValid(), string(s))
	}
	assert.False(t, FlightStatus("TAXIING").IsValid())
	assert.False(t, FlightStatus("").IsValid())
}

func TestCabinClass_IsValid(t *testing.T) {
	assert.True(t, ClassEconomy.IsValid())
	assert.True(t, ClassPremium.IsValid())
	assert.True(t, ClassBusiness.IsValid())
	assert.False(t, CabinClass("first").IsValid())
}
