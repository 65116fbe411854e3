package domain

import "time"

// Country is a reference-data row. Countries partition cities; the itinerary
// engine compares country ids to decide domestic versus international policy.
type Country struct {
	ID        uint64    `json:"id"`
	Name      string    `json:"name"`
	Code      string    `json:"code"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// City is a reference-data row belonging to one country.
type City struct {
	ID        uint64    `json:"id"`
	CountryID uint64    `json:"countryId"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Airport is a reference-data row belonging to one city.
type Airport struct {
	ID        uint64    `json:"id"`
	CityID    uint64    `json:"cityId"`
	Name      string    `json:"name"`
	Code      string    `json:"code"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Airplane is a reference-data row describing one aircraft and its cabin
// layout. The summed seat counts are the capacity every flight and rotation
// leg assigned to this airplane must cover.
type Airplane struct {
	ID            uint64    `json:"id"`
	Model         string    `json:"model"`
	Registration  string    `json:"registration"`
	EconomySeats  int       `json:"economySeats"`
	PremiumSeats  int       `json:"premiumSeats"`
	BusinessSeats int       `json:"businessSeats"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// Capacity returns the airplane's total seat count across all cabins.
func (a *Airplane) Capacity() int {
	return a.EconomySeats + a.PremiumSeats + a.BusinessSeats
}
