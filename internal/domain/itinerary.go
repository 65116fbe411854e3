package domain

import "time"

// Connection policy defaults. Domestic pairs allow direct flights only;
// international pairs allow up to three intermediate connections and a
// longer layover ceiling.
const (
	DomesticHopBudget      = 1
	InternationalHopBudget = 4

	MinLayover              = 60 * time.Minute
	MaxDomesticLayover      = 180 * time.Minute
	MaxInternationalLayover = 360 * time.Minute
)

// ConnectionPolicy is the hop budget and layover window applied to one
// itinerary search, chosen from whether the city pair shares a country.
type ConnectionPolicy struct {
	HopBudget  int
	MinLayover time.Duration
	MaxLayover time.Duration
}

// PolicyFor returns the connection policy for a city pair.
func PolicyFor(domestic bool) ConnectionPolicy {
	if domestic {
		return ConnectionPolicy{
			HopBudget:  DomesticHopBudget,
			MinLayover: MinLayover,
			MaxLayover: MaxDomesticLayover,
		}
	}
	return ConnectionPolicy{
		HopBudget:  InternationalHopBudget,
		MinLayover: MinLayover,
		MaxLayover: MaxInternationalLayover,
	}
}

// FlightQueueEntry wraps a flight on the BFS frontier with the remaining hop
// budget and the layover window applicable to the itinerary being built.
// Entries are search-transient and never persisted.
type FlightQueueEntry struct {
	Flight        Flight
	HopsRemaining int
	MinLayover    time.Duration
	MaxLayover    time.Duration
}

// ItineraryFlight is one flight of a completed itinerary, rehydrated with
// full reference detail and per-class sale pricing.
type ItineraryFlight struct {
	Flight           Flight             `json:"flight"`
	Airplane         *Airplane          `json:"airplane,omitempty"`
	DepartureAirport *Airport           `json:"departureAirport,omitempty"`
	ArrivalAirport   *Airport           `json:"arrivalAirport,omitempty"`
	DepartureCity    *City              `json:"departureCity,omitempty"`
	ArrivalCity      *City              `json:"arrivalCity,omitempty"`
	DepartureCountry *Country           `json:"departureCountry,omitempty"`
	ArrivalCountry   *Country           `json:"arrivalCountry,omitempty"`
	ClassPrices      map[string]float64 `json:"classPrices"`
}

// Itinerary is one completed route: flights in travel order.
type Itinerary struct {
	Flights []ItineraryFlight `json:"flights"`
}
