package mysql

import (
	"context"
	"database/sql"

	"github.com/airline-ops/airline-inventory-system/internal/domain"
)

// AirportStore implements domain.AirportStore on MySQL.
type AirportStore struct {
	db *sql.DB
}

// NewAirportStore constructs an AirportStore given a DB handle.
func NewAirportStore(db *sql.DB) *AirportStore {
	return &AirportStore{db: db}
}

// Insert persists a new airport and returns its id.
func (s *AirportStore) Insert(ctx context.Context, airport *domain.Airport) (uint64, error) {
	res, err := queryerFor(ctx, s.db).ExecContext(ctx,
		`INSERT INTO airports (city_id, name, code) VALUES (?, ?, ?)`,
		airport.CityID, airport.Name, airport.Code)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// GetByID returns the airport with the given id.
func (s *AirportStore) GetByID(ctx context.Context, id uint64) (*domain.Airport, error) {
	var a domain.Airport
	err := queryerFor(ctx, s.db).QueryRowContext(ctx,
		`SELECT id, city_id, name, code, created_at, updated_at FROM airports WHERE id = ?`, id).
		Scan(&a.ID, &a.CityID, &a.Name, &a.Code, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, notFound(err, "airport", id)
	}
	return &a, nil
}

// List returns all airports ordered by code.
func (s *AirportStore) List(ctx context.Context) ([]domain.Airport, error) {
	rows, err := queryerFor(ctx, s.db).QueryContext(ctx,
		`SELECT id, city_id, name, code, created_at, updated_at FROM airports ORDER BY code`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Airport
	for rows.Next() {
		var a domain.Airport
		if err := rows.Scan(&a.ID, &a.CityID, &a.Name, &a.Code, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// Update rewrites the mutable fields of an airport.
func (s *AirportStore) Update(ctx context.Context, airport *domain.Airport) error {
	res, err := queryerFor(ctx, s.db).ExecContext(ctx,
		`UPDATE airports SET city_id = ?, name = ?, code = ? WHERE id = ?`,
		airport.CityID, airport.Name, airport.Code, airport.ID)
	if err != nil {
		return err
	}
	return requireRow(res, "airport", airport.ID)
}

// Delete removes an airport by id.
func (s *AirportStore) Delete(ctx context.Context, id uint64) error {
	res, err := queryerFor(ctx, s.db).ExecContext(ctx,
		`DELETE FROM airports WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireRow(res, "airport", id)
}
