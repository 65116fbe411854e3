package usecase

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/airline-ops/airline-inventory-system/internal/domain"
	"github.com/airline-ops/airline-inventory-system/internal/infrastructure/metrics"
)

// DefaultHorizonDays is the forward window one materialization pass covers.
const DefaultHorizonDays = 60

// EventRotationMaterialized is the routing key for the batch event emitted
// after a rotation's flights are committed.
const EventRotationMaterialized = "rotation.materialized"

// MaterializerUseCase expands active rotation templates into concrete
// scheduled flights for a fixed forward horizon. It is triggered externally
// (a cron-like caller hitting the automation endpoint); one pass per
// un-advanced cursor, or duplicate flights result.
type MaterializerUseCase interface {
	// MaterializeUpcoming generates flights for every active rotation for
	// the next horizon of days and advances each rotation's day-offset
	// cursor past the generated window. A failure aborts the remaining work
	// of the current rotation and propagates; that rotation's flight batch
	// and cursor advance roll back together.
	MaterializeUpcoming(ctx context.Context) error
}

type materializer struct {
	rotations domain.RotationStore
	flights   FlightUseCase
	tx        domain.TxManager
	events    domain.EventPublisher
	horizon   int
	log       zerolog.Logger
}

// NewMaterializer wires a MaterializerUseCase. horizonDays falls back to
// DefaultHorizonDays when not positive. The event publisher may be nil; the
// flights use case must not publish per-flight events itself, or they would
// be emitted inside the batch transaction and survive a rollback.
func NewMaterializer(
	rotations domain.RotationStore,
	flights FlightUseCase,
	tx domain.TxManager,
	events domain.EventPublisher,
	horizonDays int,
	log zerolog.Logger,
) MaterializerUseCase {
	if horizonDays <= 0 {
		horizonDays = DefaultHorizonDays
	}
	return &materializer{
		rotations: rotations,
		flights:   flights,
		tx:        tx,
		events:    events,
		horizon:   horizonDays,
		log:       log,
	}
}

// MaterializeUpcoming implements MaterializerUseCase.MaterializeUpcoming.
func (m *materializer) MaterializeUpcoming(ctx context.Context) error {
	rotations, err := m.rotations.ListActive(ctx)
	if err != nil {
		return err
	}

	for i := range rotations {
		rot := &rotations[i]
		if err := m.materializeRotation(ctx, rot); err != nil {
			return fmt.Errorf("materialize rotation %d: %w", rot.ID, err)
		}
	}
	return nil
}

// materializeRotation generates the rotation's flights for days 1..horizon
// past its current cursor and advances the cursor, all in one transaction.
//
// Unlike the overlap check, each leg here is anchored on the same generation
// day: a leg's arrival is computed independently from that day's anchor, not
// from the prior leg's arrival instant. Only the overnight rule (arrival
// clock not after departure clock) pushes an arrival to the next day.
func (m *materializer) materializeRotation(ctx context.Context, rot *domain.Rotation) error {
	start := rot.CurrentAnchor()
	newOffset := rot.DayOffset + m.horizon

	created := 0
	err := m.tx.WithinTx(ctx, func(ctx context.Context) error {
		for day := 1; day <= m.horizon; day++ {
			anchor := start.AddDate(0, 0, day)
			for li := range rot.Legs {
				leg := &rot.Legs[li]
				dep, arr := leg.Times(anchor)
				_, err := m.flights.Create(ctx, CreateFlightInput{
					AirplaneID:         rot.AirplaneID,
					DepartureAirportID: leg.DepartureAirportID,
					ArrivalAirportID:   leg.ArrivalAirportID,
					DepartureTime:      dep,
					ArrivalTime:        arr,
					Status:             domain.StatusScheduled,
					Price:              leg.Price,
					Seats:              leg.Seats,
				})
				if err != nil {
					return fmt.Errorf("day %d leg %d: %w", day, li+1, err)
				}
				created++
			}
		}

		// Advance the cursor past the generated window so the next pass
		// resumes where this one left off instead of regenerating days.
		return m.rotations.AdvanceOffset(ctx, rot.ID, newOffset)
	})
	if err != nil {
		return err
	}

	metrics.FlightsMaterialized.Add(float64(created))
	m.log.Info().
		Uint64("rotation_id", rot.ID).
		Int("flights", created).
		Int("new_offset", newOffset).
		Msg("rotation materialized")

	// Announce the batch only after it is committed, so a rollback never
	// leaves an event for flights that were never persisted. Publishing is
	// best effort.
	if m.events != nil {
		payload := map[string]any{
			"rotationId": rot.ID,
			"flights":    created,
			"newOffset":  newOffset,
		}
		if err := m.events.Publish(ctx, EventRotationMaterialized, payload); err != nil {
			m.log.Warn().Err(err).Str("event", EventRotationMaterialized).Msg("event publish failed")
		}
	}
	return nil
}
