package mysql

import (
	"context"
	"database/sql"

	"github.com/airline-ops/airline-inventory-system/internal/domain"
)

// AirplaneStore implements domain.AirplaneStore on MySQL.
type AirplaneStore struct {
	db *sql.DB
}

// NewAirplaneStore constructs an AirplaneStore given a DB handle.
func NewAirplaneStore(db *sql.DB) *AirplaneStore {
	return &AirplaneStore{db: db}
}

// Insert persists a new airplane and returns its id.
func (s *AirplaneStore) Insert(ctx context.Context, airplane *domain.Airplane) (uint64, error) {
	res, err := queryerFor(ctx, s.db).ExecContext(ctx,
		`INSERT INTO airplanes (model, registration, economy_seats, premium_seats, business_seats)
		 VALUES (?, ?, ?, ?, ?)`,
		airplane.Model, airplane.Registration,
		airplane.EconomySeats, airplane.PremiumSeats, airplane.BusinessSeats)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// GetByID returns the airplane with the given id.
func (s *AirplaneStore) GetByID(ctx context.Context, id uint64) (*domain.Airplane, error) {
	var a domain.Airplane
	err := queryerFor(ctx, s.db).QueryRowContext(ctx,
		`SELECT id, model, registration, economy_seats, premium_seats, business_seats, created_at, updated_at
		   FROM airplanes WHERE id = ?`, id).
		Scan(&a.ID, &a.Model, &a.Registration,
			&a.EconomySeats, &a.PremiumSeats, &a.BusinessSeats, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, notFound(err, "airplane", id)
	}
	return &a, nil
}

// List returns all airplanes ordered by registration.
func (s *AirplaneStore) List(ctx context.Context) ([]domain.Airplane, error) {
	rows, err := queryerFor(ctx, s.db).QueryContext(ctx,
		`SELECT id, model, registration, economy_seats, premium_seats, business_seats, created_at, updated_at
		   FROM airplanes ORDER BY registration`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Airplane
	for rows.Next() {
		var a domain.Airplane
		if err := rows.Scan(&a.ID, &a.Model, &a.Registration,
			&a.EconomySeats, &a.PremiumSeats, &a.BusinessSeats, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// Update rewrites the mutable fields of an airplane.
func (s *AirplaneStore) Update(ctx context.Context, airplane *domain.Airplane) error {
	res, err := queryerFor(ctx, s.db).ExecContext(ctx,
		`UPDATE airplanes
		    SET model = ?, registration = ?, economy_seats = ?, premium_seats = ?, business_seats = ?
		  WHERE id = ?`,
		airplane.Model, airplane.Registration,
		airplane.EconomySeats, airplane.PremiumSeats, airplane.BusinessSeats, airplane.ID)
	if err != nil {
		return err
	}
	return requireRow(res, "airplane", airplane.ID)
}

// Delete removes an airplane by id.
func (s *AirplaneStore) Delete(ctx context.Context, id uint64) error {
	res, err := queryerFor(ctx, s.db).ExecContext(ctx,
		`DELETE FROM airplanes WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireRow(res, "airplane", id)
}
