package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/wayfarer-labs/tripweaver/backend/internal/domain"
)

// ItineraryRepo defines the persistence operations for generated itinerary days.
// Each insert and delete is atomic on its own row(s); there is no transaction
// spanning a whole regeneration — the generator's contract accounts for that.
type ItineraryRepo interface {
	// Create inserts one itinerary day and returns the persisted record.
	Create(ctx context.Context, day domain.ItineraryDay) (domain.ItineraryDay, error)

	// DeleteByTrip removes every itinerary day belonging to the trip and
	// returns how many rows were deleted. Deleting zero rows is not an error.
	DeleteByTrip(ctx context.Context, tripID uuid.UUID) (int64, error)

	// ListByTrip returns the trip's days ordered by day index ascending.
	ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.ItineraryDay, error)
}

// pgItineraryRepo is the Postgres implementation of ItineraryRepo.
// Activities are stored as a JSONB column on the day row, mirroring the fact
// that activities are embedded, not independently addressable.
type pgItineraryRepo struct {
	db db
}

// NewItineraryRepo constructs an ItineraryRepo backed by the provided db connection.
func NewItineraryRepo(db db) ItineraryRepo {
	return &pgItineraryRepo{db: db}
}

// Create inserts one itinerary day row with its activities marshaled to JSONB.
func (r *pgItineraryRepo) Create(ctx context.Context, day domain.ItineraryDay) (domain.ItineraryDay, error) {
	activities := day.Activities
	if activities == nil {
		activities = []domain.Activity{}
	}
	blob, err := json.Marshal(activities)
	if err != nil {
		return domain.ItineraryDay{}, fmt.Errorf("repo.ItineraryRepo.Create: marshal activities: %w", err)
	}

	const q = `
		INSERT INTO itinerary_days (trip_id, day, theme, activities, notes)
		VALUES (@trip_id, @day, @theme, @activities, @notes)
		RETURNING id, trip_id, day, theme, activities, notes, created_at`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{
		"trip_id":    day.TripID,
		"day":        day.Day,
		"theme":      day.Theme,
		"activities": blob,
		"notes":      day.Notes,
	})

	result, err := scanItineraryDay(row)
	if err != nil {
		return domain.ItineraryDay{}, fmt.Errorf("repo.ItineraryRepo.Create: %w", err)
	}
	return result, nil
}

// DeleteByTrip removes all days for a trip in a single statement.
func (r *pgItineraryRepo) DeleteByTrip(ctx context.Context, tripID uuid.UUID) (int64, error) {
	const q = `DELETE FROM itinerary_days WHERE trip_id = @trip_id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"trip_id": tripID})
	if err != nil {
		return 0, fmt.Errorf("repo.ItineraryRepo.DeleteByTrip: %w", err)
	}
	return tag.RowsAffected(), nil
}

// ListByTrip returns all days for a trip ordered by day index.
func (r *pgItineraryRepo) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.ItineraryDay, error) {
	const q = `
		SELECT id, trip_id, day, theme, activities, notes, created_at
		FROM itinerary_days
		WHERE trip_id = @trip_id
		ORDER BY day ASC`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"trip_id": tripID})
	if err != nil {
		return nil, fmt.Errorf("repo.ItineraryRepo.ListByTrip: %w", err)
	}
	defer rows.Close()

	var days []domain.ItineraryDay
	for rows.Next() {
		d, err := scanItineraryDay(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.ItineraryRepo.ListByTrip: scan: %w", err)
		}
		days = append(days, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.ItineraryRepo.ListByTrip: rows: %w", err)
	}

	return days, nil
}

// scanItineraryDay maps a single database row into a domain.ItineraryDay,
// unmarshaling the activities JSONB column.
func scanItineraryDay(s scanner) (domain.ItineraryDay, error) {
	var (
		d      domain.ItineraryDay
		id     pgtype.UUID
		tripID pgtype.UUID
		blob   []byte
	)

	err := s.Scan(&id, &tripID, &d.Day, &d.Theme, &blob, &d.Notes, &d.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ItineraryDay{}, domain.ErrNotFound
		}
		return domain.ItineraryDay{}, err
	}

	if err := json.Unmarshal(blob, &d.Activities); err != nil {
		return domain.ItineraryDay{}, fmt.Errorf("unmarshal activities: %w", err)
	}

	d.ID = uuid.UUID(id.Bytes)
	d.TripID = uuid.UUID(tripID.Bytes)

	return d, nil
}
