package mysql

import (
	"context"
	"database/sql"

	"github.com/airline-ops/airline-inventory-system/internal/domain"
)

// CountryStore implements domain.CountryStore on MySQL.
type CountryStore struct {
	db *sql.DB
}

// NewCountryStore constructs a CountryStore given a DB handle.
func NewCountryStore(db *sql.DB) *CountryStore {
	return &CountryStore{db: db}
}

// Insert persists a new country and returns its id.
func (s *CountryStore) Insert(ctx context.Context, country *domain.Country) (uint64, error) {
	res, err := queryerFor(ctx, s.db).ExecContext(ctx,
		`INSERT INTO countries (name, code) VALUES (?, ?)`,
		country.Name, country.Code)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// GetByID returns the country with the given id.
func (s *CountryStore) GetByID(ctx context.Context, id uint64) (*domain.Country, error) {
	var c domain.Country
	err := queryerFor(ctx, s.db).QueryRowContext(ctx,
		`SELECT id, name, code, created_at, updated_at FROM countries WHERE id = ?`, id).
		Scan(&c.ID, &c.Name, &c.Code, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, notFound(err, "country", id)
	}
	return &c, nil
}

// List returns all countries ordered by name.
func (s *CountryStore) List(ctx context.Context) ([]domain.Country, error) {
	rows, err := queryerFor(ctx, s.db).QueryContext(ctx,
		`SELECT id, name, code, created_at, updated_at FROM countries ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Country
	for rows.Next() {
		var c domain.Country
		if err := rows.Scan(&c.ID, &c.Name, &c.Code, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// Update rewrites the mutable fields of a country.
func (s *CountryStore) Update(ctx context.Context, country *domain.Country) error {
	res, err := queryerFor(ctx, s.db).ExecContext(ctx,
		`UPDATE countries SET name = ?, code = ? WHERE id = ?`,
		country.Name, country.Code, country.ID)
	if err != nil {
		return err
	}
	return requireRow(res, "country", country.ID)
}

// Delete removes a country by id.
func (s *CountryStore) Delete(ctx context.Context, id uint64) error {
	res, err := queryerFor(ctx, s.db).ExecContext(ctx,
		`DELETE FROM countries WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireRow(res, "country", id)
}

// requireRow converts a zero-row write into a NotFound error.
func requireRow(res sql.Result, entity string, id uint64) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.NewNotFoundError(entity, id)
	}
	return nil
}
