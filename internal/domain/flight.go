// Package domain contains the core business entities and rules for the
// airline inventory system: reference data, flights, rotation templates and
// the seat/window arithmetic shared by flight creation and sales.
package domain

import "time"

// FlightStatus enumerates the lifecycle states of a concrete flight.
type FlightStatus string

// Flight lifecycle states.
const (
	StatusScheduled FlightStatus = "SCHEDULED"
	StatusBoarding  FlightStatus = "BOARDING"
	StatusInFlight  FlightStatus = "IN_FLIGHT"
	StatusLanded    FlightStatus = "LANDED"
	StatusCompleted FlightStatus = "COMPLETED"
	StatusDelayed   FlightStatus = "DELAYED"
	StatusCancelled FlightStatus = "CANCELLED"
)

// IsValid checks if the status is one of the enumerated values.
func (s FlightStatus) IsValid() bool {
	switch s {
	case StatusScheduled, StatusBoarding, StatusInFlight, StatusLanded,
		StatusCompleted, StatusDelayed, StatusCancelled:
		return true
	default:
		return false
	}
}

// CabinClass identifies a fare class on a flight.
type CabinClass string

// Fare classes.
const (
	ClassEconomy  CabinClass = "economy"
	ClassPremium  CabinClass = "premium"
	ClassBusiness CabinClass = "business"
)

// IsValid checks if the cabin class is one of the enumerated values.
func (c CabinClass) IsValid() bool {
	switch c {
	case ClassEconomy, ClassPremium, ClassBusiness:
		return true
	default:
		return false
	}
}

// Window counts per fare class. Economy sells through three price windows,
// premium and business through two.
const (
	EconomyWindows  = 3
	PremiumWindows  = 2
	BusinessWindows = 2
)

// SeatWindow is one seat-inventory bucket within a fare class. Windows are
// sold in slice order; PricePercentage multiplies the flight's base price.
type SeatWindow struct {
	// Seats is the number of seats remaining in this window
	Seats int `json:"seats"`

	// PricePercentage is the price multiplier for this window, in percent
	// of the flight's base price (must be >= 1)
	PricePercentage int `json:"pricePercentage"`
}

// CabinAllocation holds the windows of one fare class plus the derived
// per-class total. TotalSeats is fixed when the allocation is built and is
// never recomputed, so it keeps recording the original capacity share even
// as window counts decrement.
type CabinAllocation struct {
	Windows    []SeatWindow `json:"windows"`
	TotalSeats int          `json:"totalSeats"`
}

// ClassWindowPrice is the full seat/price configuration of a flight or a
// rotation leg: one allocation per fare class.
type ClassWindowPrice struct {
	Economy  CabinAllocation `json:"economy"`
	Premium  CabinAllocation `json:"premium"`
	Business CabinAllocation `json:"business"`
}

// NewClassWindowPrice builds a ClassWindowPrice from raw window slices,
// computing each class's total at creation time. It fails with a wrapped
// ErrValidation error if a class has the wrong number of windows, a window
// has negative seats, or a price percentage is below 1.
func NewClassWindowPrice(economy, premium, business []SeatWindow) (ClassWindowPrice, error) {
	classes := []struct {
		name    CabinClass
		windows []SeatWindow
		want    int
	}{
		{ClassEconomy, economy, EconomyWindows},
		{ClassPremium, premium, PremiumWindows},
		{ClassBusiness, business, BusinessWindows},
	}

	var out ClassWindowPrice
	for _, cl := range classes {
		if len(cl.windows) != cl.want {
			return ClassWindowPrice{}, NewValidationError("%s class must have %d windows, got %d", cl.name, cl.want, len(cl.windows))
		}
		total := 0
		for i, w := range cl.windows {
			if w.Seats < 0 {
				return ClassWindowPrice{}, NewValidationError("%s window %d has negative seat count %d", cl.name, i+1, w.Seats)
			}
			if w.PricePercentage < 1 {
				return ClassWindowPrice{}, NewValidationError("%s window %d price percentage must be at least 1, got %d", cl.name, i+1, w.PricePercentage)
			}
			total += w.Seats
		}
		alloc := CabinAllocation{Windows: append([]SeatWindow(nil), cl.windows...), TotalSeats: total}
		switch cl.name {
		case ClassEconomy:
			out.Economy = alloc
		case ClassPremium:
			out.Premium = alloc
		case ClassBusiness:
			out.Business = alloc
		}
	}
	return out, nil
}

// allocation returns a pointer to the allocation for the given class.
func (c *ClassWindowPrice) allocation(class CabinClass) *CabinAllocation {
	switch class {
	case ClassEconomy:
		return &c.Economy
	case ClassPremium:
		return &c.Premium
	case ClassBusiness:
		return &c.Business
	default:
		return nil
	}
}

// TotalSeats returns the sum of the per-class totals. For a valid
// configuration this equals the assigned airplane's capacity.
func (c *ClassWindowPrice) TotalSeats() int {
	return c.Economy.TotalSeats + c.Premium.TotalSeats + c.Business.TotalSeats
}

// MatchesCapacity verifies the configuration against an airplane's total
// seat capacity: the sum over all class totals must equal the sum of the
// airplane's per-class seat counts. How the total is split across classes is
// the operator's choice and may differ from the airplane's cabin layout.
func (c *ClassWindowPrice) MatchesCapacity(plane *Airplane) error {
	if c.TotalSeats() != plane.Capacity() {
		return NewValidationError(
			"seat configuration total %d does not match airplane capacity %d",
			c.TotalSeats(), plane.Capacity())
	}
	return nil
}

// Decrement subtracts seats from the first window of the given class whose
// remaining count can satisfy the full request. Requests are never split
// across windows; if no single window suffices the call fails with
// ErrInsufficientInventory and the configuration is left unchanged.
func (c *ClassWindowPrice) Decrement(class CabinClass, seats int) error {
	if seats <= 0 {
		return NewValidationError("seat count must be positive, got %d", seats)
	}
	alloc := c.allocation(class)
	if alloc == nil {
		return NewValidationError("unknown cabin class %q", class)
	}
	for i := range alloc.Windows {
		if alloc.Windows[i].Seats >= seats {
			alloc.Windows[i].Seats -= seats
			return nil
		}
	}
	return ErrInsufficientInventory
}

// SalePrice derives the current user-facing unit price for a class: the
// price percentage of the first window with seats remaining, applied to the
// flight's base price. A fully exhausted class prices at zero, which signals
// sold out rather than failing.
func (c *ClassWindowPrice) SalePrice(class CabinClass, basePrice float64) float64 {
	alloc := c.allocation(class)
	if alloc == nil {
		return 0
	}
	for _, w := range alloc.Windows {
		if w.Seats > 0 {
			return basePrice * float64(w.PricePercentage) / 100
		}
	}
	return 0
}

// Flight is a concrete scheduled flight, created directly by an operator or
// generated from a rotation template. Its seat snapshot is independently
// mutable per flight as seats sell.
type Flight struct {
	ID                 uint64           `json:"id"`
	FlightNumber       string           `json:"flightNumber"`
	AirplaneID         uint64           `json:"airplaneId"`
	DepartureAirportID uint64           `json:"departureAirportId"`
	ArrivalAirportID   uint64           `json:"arrivalAirportId"`
	DepartureTime      time.Time        `json:"departureTime"`
	ArrivalTime        time.Time        `json:"arrivalTime"`
	Status             FlightStatus     `json:"status"`
	Price              float64          `json:"price"`
	Seats              ClassWindowPrice `json:"seats"`
	CreatedAt          time.Time        `json:"createdAt"`
	UpdatedAt          time.Time        `json:"updatedAt"`
}
