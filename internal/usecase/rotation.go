// Package usecase contains the application core of the airline inventory
// system: rotation scheduling and overlap validation, materialization of
// rotation templates into concrete flights, seat/window inventory, and the
// multi-hop itinerary search.
package usecase

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/airline-ops/airline-inventory-system/internal/domain"
	"github.com/airline-ops/airline-inventory-system/internal/infrastructure/metrics"
)

// Event routing keys published by the rotation use case.
const (
	EventRotationCreated   = "rotation.created"
	EventRotationCancelled = "rotation.cancelled"
)

// CreateRotationInput is the validated payload for a new rotation template.
type CreateRotationInput struct {
	AirplaneID uint64
	StartDate  time.Time
	Legs       []domain.FlightLeg
}

// RotationUseCase manages rotation templates: creation with overlap
// validation against the airplane's other active rotations, and
// cancellation.
type RotationUseCase interface {
	// Create validates and persists a rotation template. It fails with a
	// wrapped ErrValidation on structural problems and with a wrapped
	// ErrOverlap when the candidate time-conflicts with an active rotation
	// on the same airplane.
	Create(ctx context.Context, input CreateRotationInput) (*domain.Rotation, error)

	// Cancel marks a rotation cancelled so the materializer skips it.
	Cancel(ctx context.Context, id uint64) error
}

type rotationUseCase struct {
	rotations domain.RotationStore
	airplanes domain.AirplaneStore
	airports  domain.AirportStore
	tx        domain.TxManager
	events    domain.EventPublisher
	log       zerolog.Logger
}

// NewRotationUseCase wires a RotationUseCase from its store dependencies.
// The event publisher may be nil when no broker is configured.
func NewRotationUseCase(
	rotations domain.RotationStore,
	airplanes domain.AirplaneStore,
	airports domain.AirportStore,
	tx domain.TxManager,
	events domain.EventPublisher,
	log zerolog.Logger,
) RotationUseCase {
	return &rotationUseCase{
		rotations: rotations,
		airplanes: airplanes,
		airports:  airports,
		tx:        tx,
		events:    events,
		log:       log,
	}
}

// Create implements RotationUseCase.Create.
func (uc *rotationUseCase) Create(ctx context.Context, input CreateRotationInput) (*domain.Rotation, error) {
	if err := domain.ValidateLegs(input.Legs); err != nil {
		return nil, err
	}

	plane, err := uc.airplanes.GetByID(ctx, input.AirplaneID)
	if err != nil {
		return nil, err
	}

	// Every leg's airports must exist and every leg's seat configuration
	// must cover the airplane's full capacity.
	for i := range input.Legs {
		leg := &input.Legs[i]
		if _, err := uc.airports.GetByID(ctx, leg.DepartureAirportID); err != nil {
			return nil, err
		}
		if _, err := uc.airports.GetByID(ctx, leg.ArrivalAirportID); err != nil {
			return nil, err
		}
		if err := leg.Seats.MatchesCapacity(plane); err != nil {
			return nil, err
		}
	}

	candidate := &domain.Rotation{
		AirplaneID: input.AirplaneID,
		StartDate:  input.StartDate.UTC(),
		DayOffset:  0,
		Legs:       input.Legs,
	}

	var id uint64
	err = uc.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := uc.checkOverlap(ctx, candidate); err != nil {
			return err
		}
		insertedID, err := uc.rotations.Insert(ctx, candidate)
		if err != nil {
			return err
		}
		id = insertedID
		return nil
	})
	if err != nil {
		return nil, err
	}
	candidate.ID = id

	metrics.RotationsCreated.Inc()
	uc.log.Info().
		Uint64("rotation_id", id).
		Uint64("airplane_id", input.AirplaneID).
		Int("legs", len(input.Legs)).
		Msg("rotation created")
	uc.publish(ctx, EventRotationCreated, candidate)

	return candidate, nil
}

// checkOverlap performs the occupied-span comparison against all of the
// airplane's active rotations. The test is deliberately coarse: it compares
// only the aggregate latest-computed arrival across rotations against the
// candidate's span, not per-rotation interval intersection. A new rotation
// must start strictly after all currently tracked occupied time.
func (uc *rotationUseCase) checkOverlap(ctx context.Context, candidate *domain.Rotation) error {
	existing, err := uc.rotations.ListActiveByAirplane(ctx, candidate.AirplaneID)
	if err != nil {
		return err
	}
	if len(existing) == 0 {
		return nil
	}

	var earliestDeparture, latestArrival time.Time
	for i := range existing {
		span := existing[i].OccupiedSpan()
		if earliestDeparture.IsZero() || span.FirstDeparture.Before(earliestDeparture) {
			earliestDeparture = span.FirstDeparture
		}
		if span.LastArrival.After(latestArrival) {
			latestArrival = span.LastArrival
		}
	}

	span := candidate.OccupiedSpan()
	if !span.FirstDeparture.After(latestArrival) || !span.LastArrival.After(latestArrival) {
		return domain.NewOverlapError(candidate.AirplaneID, latestArrival.Format(time.RFC3339))
	}
	return nil
}

// Cancel implements RotationUseCase.Cancel. Cancelling a rotation that is
// already cancelled is a no-op; no event is published again.
func (uc *rotationUseCase) Cancel(ctx context.Context, id uint64) error {
	rot, err := uc.rotations.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if rot.Cancelled {
		return nil
	}
	if err := uc.rotations.Cancel(ctx, id); err != nil {
		return err
	}
	uc.log.Info().Uint64("rotation_id", id).Msg("rotation cancelled")
	uc.publish(ctx, EventRotationCancelled, map[string]uint64{"rotationId": id})
	return nil
}

// publish emits an event when a broker is configured. Publishing is best
// effort: failures are logged and do not fail the operation.
func (uc *rotationUseCase) publish(ctx context.Context, key string, payload any) {
	if uc.events == nil {
		return
	}
	if err := uc.events.Publish(ctx, key, payload); err != nil {
		uc.log.Warn().Err(err).Str("event", key).Msg("event publish failed")
	}
}
