package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/airline-ops/airline-inventory-system/internal/domain"
)

// FlightStore implements domain.FlightStore on MySQL. The per-flight seat
// snapshot is stored as a JSON column and swapped atomically with a
// compare-and-swap UPDATE so concurrent sales cannot lose decrements.
type FlightStore struct {
	db *sql.DB
}

// NewFlightStore constructs a FlightStore given a DB handle.
func NewFlightStore(db *sql.DB) *FlightStore {
	return &FlightStore{db: db}
}

const flightColumns = `id, flight_number, airplane_id, departure_airport_id, arrival_airport_id,
	departure_time, arrival_time, status, price, seats, created_at, updated_at`

// Insert persists a new flight and returns its id.
func (s *FlightStore) Insert(ctx context.Context, flight *domain.Flight) (uint64, error) {
	seats, err := json.Marshal(flight.Seats)
	if err != nil {
		return 0, fmt.Errorf("marshal seats: %w", err)
	}
	res, err := queryerFor(ctx, s.db).ExecContext(ctx,
		`INSERT INTO flights
		   (flight_number, airplane_id, departure_airport_id, arrival_airport_id,
		    departure_time, arrival_time, status, price, seats)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		flight.FlightNumber, flight.AirplaneID,
		flight.DepartureAirportID, flight.ArrivalAirportID,
		flight.DepartureTime.UTC(), flight.ArrivalTime.UTC(),
		string(flight.Status), flight.Price, seats)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// GetByID returns the flight with the given id.
func (s *FlightStore) GetByID(ctx context.Context, id uint64) (*domain.Flight, error) {
	row := queryerFor(ctx, s.db).QueryRowContext(ctx,
		`SELECT `+flightColumns+` FROM flights WHERE id = ?`, id)
	f, err := scanFlight(row.Scan)
	if err != nil {
		return nil, notFound(err, "flight", id)
	}
	return f, nil
}

// GetByFlightNumber returns the flight with the given flight number.
func (s *FlightStore) GetByFlightNumber(ctx context.Context, number string) (*domain.Flight, error) {
	row := queryerFor(ctx, s.db).QueryRowContext(ctx,
		`SELECT `+flightColumns+` FROM flights WHERE flight_number = ?`, number)
	f, err := scanFlight(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: flight %s", domain.ErrNotFound, number)
		}
		return nil, err
	}
	return f, nil
}

// ListByDepartureWindow returns flights departing from the airport within
// [from, to], ordered by departure time.
func (s *FlightStore) ListByDepartureWindow(ctx context.Context, airportID uint64, from, to time.Time) ([]domain.Flight, error) {
	rows, err := queryerFor(ctx, s.db).QueryContext(ctx,
		`SELECT `+flightColumns+`
		   FROM flights
		  WHERE departure_airport_id = ? AND departure_time BETWEEN ? AND ?
		  ORDER BY departure_time`,
		airportID, from.UTC(), to.UTC())
	if err != nil {
		return nil, err
	}
	return collectFlights(rows)
}

// ListByDepartureCityAndDate returns flights departing from any airport of
// the city on the given UTC calendar date, ordered by departure time.
func (s *FlightStore) ListByDepartureCityAndDate(ctx context.Context, cityID uint64, date time.Time) ([]domain.Flight, error) {
	y, mo, d := date.UTC().Date()
	dayStart := time.Date(y, mo, d, 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.AddDate(0, 0, 1)

	rows, err := queryerFor(ctx, s.db).QueryContext(ctx,
		`SELECT f.id, f.flight_number, f.airplane_id, f.departure_airport_id, f.arrival_airport_id,
		        f.departure_time, f.arrival_time, f.status, f.price, f.seats, f.created_at, f.updated_at
		   FROM flights f
		   JOIN airports a ON a.id = f.departure_airport_id
		  WHERE a.city_id = ? AND f.departure_time >= ? AND f.departure_time < ?
		  ORDER BY f.departure_time`,
		cityID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}
	return collectFlights(rows)
}

// Update rewrites the mutable fields of a flight, seat snapshot included.
func (s *FlightStore) Update(ctx context.Context, flight *domain.Flight) error {
	seats, err := json.Marshal(flight.Seats)
	if err != nil {
		return fmt.Errorf("marshal seats: %w", err)
	}
	res, err := queryerFor(ctx, s.db).ExecContext(ctx,
		`UPDATE flights
		    SET flight_number = ?, airplane_id = ?, departure_airport_id = ?, arrival_airport_id = ?,
		        departure_time = ?, arrival_time = ?, status = ?, price = ?, seats = ?
		  WHERE id = ?`,
		flight.FlightNumber, flight.AirplaneID,
		flight.DepartureAirportID, flight.ArrivalAirportID,
		flight.DepartureTime.UTC(), flight.ArrivalTime.UTC(),
		string(flight.Status), flight.Price, seats, flight.ID)
	if err != nil {
		return err
	}
	return requireRow(res, "flight", flight.ID)
}

// UpdateSeats replaces the seat snapshot only if the stored snapshot still
// equals expected. Returns domain.ErrConflict when another writer got there
// first and domain.ErrNotFound when the flight is gone.
func (s *FlightStore) UpdateSeats(ctx context.Context, id uint64, expected, updated domain.ClassWindowPrice) error {
	expectedJSON, err := json.Marshal(expected)
	if err != nil {
		return fmt.Errorf("marshal seats: %w", err)
	}
	updatedJSON, err := json.Marshal(updated)
	if err != nil {
		return fmt.Errorf("marshal seats: %w", err)
	}

	res, err := queryerFor(ctx, s.db).ExecContext(ctx,
		`UPDATE flights SET seats = ? WHERE id = ? AND seats = CAST(? AS JSON)`,
		updatedJSON, id, expectedJSON)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	// Distinguish a lost race from a missing row.
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	return fmt.Errorf("%w: flight %d seat snapshot changed concurrently", domain.ErrConflict, id)
}

// Delete removes a flight by id.
func (s *FlightStore) Delete(ctx context.Context, id uint64) error {
	res, err := queryerFor(ctx, s.db).ExecContext(ctx,
		`DELETE FROM flights WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireRow(res, "flight", id)
}

// scanFlight reads one flight row via the given scan function.
func scanFlight(scan func(dest ...any) error) (*domain.Flight, error) {
	var (
		f      domain.Flight
		status string
		seats  []byte
	)
	err := scan(&f.ID, &f.FlightNumber, &f.AirplaneID,
		&f.DepartureAirportID, &f.ArrivalAirportID,
		&f.DepartureTime, &f.ArrivalTime, &status, &f.Price, &seats,
		&f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		return nil, err
	}
	f.Status = domain.FlightStatus(status)
	if err := json.Unmarshal(seats, &f.Seats); err != nil {
		return nil, fmt.Errorf("unmarshal seats for flight %d: %w", f.ID, err)
	}
	return &f, nil
}

// collectFlights drains rows into a slice.
func collectFlights(rows *sql.Rows) ([]domain.Flight, error) {
	defer rows.Close()
	var out []domain.Flight
	for rows.Next() {
		f, err := scanFlight(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, *f)
	}
	return out, rows.Err()
}
