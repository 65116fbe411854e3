package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/airline-ops/airline-inventory-system/internal/domain"
)

// RotationStore implements domain.RotationStore on MySQL. The ordered leg
// list is persisted as an opaque JSON payload and round-trips exactly:
// airport ids, HH:MM strings, price and class/window configuration.
type RotationStore struct {
	db *sql.DB
}

// NewRotationStore constructs a RotationStore given a DB handle.
func NewRotationStore(db *sql.DB) *RotationStore {
	return &RotationStore{db: db}
}

const rotationColumns = `id, airplane_id, start_date, day_offset, legs, cancelled, created_at, updated_at`

// Insert persists a new rotation template and returns its id. The start
// date is stored as an ISO date anchored at UTC.
func (s *RotationStore) Insert(ctx context.Context, rotation *domain.Rotation) (uint64, error) {
	legs, err := json.Marshal(rotation.Legs)
	if err != nil {
		return 0, fmt.Errorf("marshal legs: %w", err)
	}
	res, err := queryerFor(ctx, s.db).ExecContext(ctx,
		`INSERT INTO rotations (airplane_id, start_date, day_offset, legs, cancelled)
		 VALUES (?, ?, ?, ?, ?)`,
		rotation.AirplaneID, rotation.StartDate.UTC().Format("2006-01-02"),
		rotation.DayOffset, legs, rotation.Cancelled)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// GetByID returns the rotation with the given id.
func (s *RotationStore) GetByID(ctx context.Context, id uint64) (*domain.Rotation, error) {
	row := queryerFor(ctx, s.db).QueryRowContext(ctx,
		`SELECT `+rotationColumns+` FROM rotations WHERE id = ?`, id)
	r, err := scanRotation(row.Scan)
	if err != nil {
		return nil, notFound(err, "rotation", id)
	}
	return r, nil
}

// ListActiveByAirplane returns the airplane's non-cancelled rotations.
func (s *RotationStore) ListActiveByAirplane(ctx context.Context, airplaneID uint64) ([]domain.Rotation, error) {
	rows, err := queryerFor(ctx, s.db).QueryContext(ctx,
		`SELECT `+rotationColumns+` FROM rotations WHERE airplane_id = ? AND cancelled = FALSE ORDER BY id`,
		airplaneID)
	if err != nil {
		return nil, err
	}
	return collectRotations(rows)
}

// ListActive returns all non-cancelled rotations.
func (s *RotationStore) ListActive(ctx context.Context) ([]domain.Rotation, error) {
	rows, err := queryerFor(ctx, s.db).QueryContext(ctx,
		`SELECT `+rotationColumns+` FROM rotations WHERE cancelled = FALSE ORDER BY id`)
	if err != nil {
		return nil, err
	}
	return collectRotations(rows)
}

// AdvanceOffset moves the rotation's day-offset cursor.
func (s *RotationStore) AdvanceOffset(ctx context.Context, id uint64, newOffset int) error {
	res, err := queryerFor(ctx, s.db).ExecContext(ctx,
		`UPDATE rotations SET day_offset = ? WHERE id = ?`, newOffset, id)
	if err != nil {
		return err
	}
	return requireRow(res, "rotation", id)
}

// Cancel marks a rotation cancelled. Setting the flag on a rotation that
// already carries it is harmless, so no guard on the current value; the
// update only fails for a missing row.
func (s *RotationStore) Cancel(ctx context.Context, id uint64) error {
	res, err := queryerFor(ctx, s.db).ExecContext(ctx,
		`UPDATE rotations SET cancelled = TRUE WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireRow(res, "rotation", id)
}

// scanRotation reads one rotation row via the given scan function.
func scanRotation(scan func(dest ...any) error) (*domain.Rotation, error) {
	var (
		r         domain.Rotation
		startDate time.Time
		legs      []byte
	)
	err := scan(&r.ID, &r.AirplaneID, &startDate, &r.DayOffset, &legs,
		&r.Cancelled, &r.CreatedAt, &r.UpdatedAt)
	if err != nil {
		return nil, err
	}
	r.StartDate = startDate.UTC()
	if err := json.Unmarshal(legs, &r.Legs); err != nil {
		return nil, fmt.Errorf("unmarshal legs for rotation %d: %w", r.ID, err)
	}
	return &r, nil
}

// collectRotations drains rows into a slice.
func collectRotations(rows *sql.Rows) ([]domain.Rotation, error) {
	defer rows.Close()
	var out []domain.Rotation
	for rows.Next() {
		r, err := scanRotation(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, *r)
	}
	return out, rows.Err()
}
