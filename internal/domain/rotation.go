package domain

import "time"

// FlightLeg is one directed segment of a rotation template. Departure and
// arrival times are local clock times; an arrival that is clock-earlier-
// than-or-equal to its departure lands on the next day. Legs are immutable
// once the rotation is saved and round-trip exactly through the persisted
// JSON payload.
type FlightLeg struct {
	DepartureAirportID uint64           `json:"departureAirportId"`
	ArrivalAirportID   uint64           `json:"arrivalAirportId"`
	DepartureTime      ClockTime        `json:"departureTime"`
	ArrivalTime        ClockTime        `json:"arrivalTime"`
	Price              float64          `json:"price"`
	Seats              ClassWindowPrice `json:"seats"`
}

// Times anchors the leg onto the calendar date of anchor (UTC) and returns
// the absolute departure and arrival instants. An arrival clock time that is
// not after the departure clock time is pushed to the following day.
func (l *FlightLeg) Times(anchor time.Time) (dep, arr time.Time) {
	dep = l.DepartureTime.At(anchor)
	arr = l.ArrivalTime.At(anchor)
	if l.ArrivalTime.NotAfter(l.DepartureTime) {
		arr = arr.Add(24 * time.Hour)
	}
	return dep, arr
}

// Rotation is a closed-loop flight-leg template owned by one airplane. It is
// expanded repeatedly into concrete flights; DayOffset is the resume cursor
// the materializer advances after each pass. A rotation is never mutated
// except for cursor advancement and cancellation.
type Rotation struct {
	ID         uint64      `json:"id"`
	AirplaneID uint64      `json:"airplaneId"`
	StartDate  time.Time   `json:"startDate"`
	DayOffset  int         `json:"dayOffset"`
	Legs       []FlightLeg `json:"legs"`
	Cancelled  bool        `json:"cancelled"`
	CreatedAt  time.Time   `json:"createdAt"`
	UpdatedAt  time.Time   `json:"updatedAt"`
}

// ValidateLegs checks the structural invariants of the leg list: at least
// two legs, arrival airport of each leg equals the departure airport of the
// next, and the loop closes (last arrival equals first departure). Window
// level invariants are checked when the leg's seat configuration is built.
func ValidateLegs(legs []FlightLeg) error {
	if len(legs) < 2 {
		return NewValidationError("rotation needs at least 2 legs, got %d", len(legs))
	}
	for i := 0; i < len(legs)-1; i++ {
		if legs[i].ArrivalAirportID != legs[i+1].DepartureAirportID {
			return NewValidationError(
				"leg %d arrives at airport %d but leg %d departs from airport %d",
				i+1, legs[i].ArrivalAirportID, i+2, legs[i+1].DepartureAirportID)
		}
	}
	first, last := legs[0], legs[len(legs)-1]
	if last.ArrivalAirportID != first.DepartureAirportID {
		return NewValidationError(
			"rotation is not closed: last leg arrives at airport %d, first leg departs from airport %d",
			last.ArrivalAirportID, first.DepartureAirportID)
	}
	return nil
}

// TimeSpan is the occupied interval of a rotation, from its first computed
// departure through its last computed arrival.
type TimeSpan struct {
	FirstDeparture time.Time
	LastArrival    time.Time
}

// CurrentAnchor returns the rotation's current expansion anchor:
// start date plus the day-offset cursor, at midnight UTC.
func (r *Rotation) CurrentAnchor() time.Time {
	y, mo, d := r.StartDate.UTC().Date()
	return time.Date(y, mo, d, 0, 0, 0, 0, time.UTC).AddDate(0, 0, r.DayOffset)
}

// OccupiedSpan walks the rotation's legs in order from its current anchor
// and returns the span of absolute time the rotation occupies. The anchor
// advances to each leg's computed arrival instant before the next leg, so a
// leg's day is the accumulated instant from prior legs rather than a fixed
// calendar day; a long layover can push a mid-rotation leg multiple real
// days forward. Note this differs from the materializer, which re-anchors
// every leg on the same day.
func (r *Rotation) OccupiedSpan() TimeSpan {
	anchor := r.CurrentAnchor()
	var span TimeSpan
	for i := range r.Legs {
		dep, arr := r.Legs[i].Times(anchor)
		if i == 0 {
			span.FirstDeparture = dep
		}
		span.LastArrival = arr
		anchor = arr
	}
	return span
}
