package mysql

import (
	"context"
	"database/sql"
	"errors"

	"github.com/airline-ops/airline-inventory-system/internal/domain"
)

// CityStore implements domain.CityStore on MySQL.
type CityStore struct {
	db *sql.DB
}

// NewCityStore constructs a CityStore given a DB handle.
func NewCityStore(db *sql.DB) *CityStore {
	return &CityStore{db: db}
}

// Insert persists a new city and returns its id.
func (s *CityStore) Insert(ctx context.Context, city *domain.City) (uint64, error) {
	res, err := queryerFor(ctx, s.db).ExecContext(ctx,
		`INSERT INTO cities (country_id, name) VALUES (?, ?)`,
		city.CountryID, city.Name)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// GetByID returns the city with the given id.
func (s *CityStore) GetByID(ctx context.Context, id uint64) (*domain.City, error) {
	var c domain.City
	err := queryerFor(ctx, s.db).QueryRowContext(ctx,
		`SELECT id, country_id, name, created_at, updated_at FROM cities WHERE id = ?`, id).
		Scan(&c.ID, &c.CountryID, &c.Name, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, notFound(err, "city", id)
	}
	return &c, nil
}

// GetByAirportID resolves the city an airport belongs to.
func (s *CityStore) GetByAirportID(ctx context.Context, airportID uint64) (*domain.City, error) {
	var c domain.City
	err := queryerFor(ctx, s.db).QueryRowContext(ctx,
		`SELECT c.id, c.country_id, c.name, c.created_at, c.updated_at
		   FROM cities c JOIN airports a ON a.city_id = c.id
		  WHERE a.id = ?`, airportID).
		Scan(&c.ID, &c.CountryID, &c.Name, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewNotFoundError("airport", airportID)
		}
		return nil, err
	}
	return &c, nil
}

// List returns all cities ordered by name.
func (s *CityStore) List(ctx context.Context) ([]domain.City, error) {
	rows, err := queryerFor(ctx, s.db).QueryContext(ctx,
		`SELECT id, country_id, name, created_at, updated_at FROM cities ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.City
	for rows.Next() {
		var c domain.City
		if err := rows.Scan(&c.ID, &c.CountryID, &c.Name, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// Update rewrites the mutable fields of a city.
func (s *CityStore) Update(ctx context.Context, city *domain.City) error {
	res, err := queryerFor(ctx, s.db).ExecContext(ctx,
		`UPDATE cities SET country_id = ?, name = ? WHERE id = ?`,
		city.CountryID, city.Name, city.ID)
	if err != nil {
		return err
	}
	return requireRow(res, "city", city.ID)
}

// Delete removes a city by id.
func (s *CityStore) Delete(ctx context.Context, id uint64) error {
	res, err := queryerFor(ctx, s.db).ExecContext(ctx,
		`DELETE FROM cities WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireRow(res, "city", id)
}
