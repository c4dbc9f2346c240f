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

// DestinationRepo defines the persistence operations for the curated
// destination catalog.
type DestinationRepo interface {
	// SearchByName returns up to limit destinations whose name starts with
	// the query, case-insensitively, ordered by name.
	SearchByName(ctx context.Context, query string, limit int) ([]domain.Destination, error)

	// Insert adds one destination. Conflicting names are ignored so seeding
	// stays idempotent.
	Insert(ctx context.Context, dest domain.Destination) error

	// Count returns the number of destinations in the catalog.
	Count(ctx context.Context) (int64, error)
}

// pgDestinationRepo is the Postgres implementation of DestinationRepo.
type pgDestinationRepo struct {
	db db
}

// NewDestinationRepo constructs a DestinationRepo backed by the provided db connection.
func NewDestinationRepo(db db) DestinationRepo {
	return &pgDestinationRepo{db: db}
}

// SearchByName performs a case-insensitive prefix search on destination names.
func (r *pgDestinationRepo) SearchByName(ctx context.Context, query string, limit int) ([]domain.Destination, error) {
	const q = `
		SELECT id, name, country, description, popular_attractions,
		       best_time_to_visit, average_budget, tags, created_at
		FROM destinations
		WHERE lower(name) LIKE lower(@prefix)
		ORDER BY name ASC
		LIMIT @limit`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{
		"prefix": query + "%",
		"limit":  limit,
	})
	if err != nil {
		return nil, fmt.Errorf("repo.DestinationRepo.SearchByName: %w", err)
	}
	defer rows.Close()

	var dests []domain.Destination
	for rows.Next() {
		d, err := scanDestination(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.DestinationRepo.SearchByName: scan: %w", err)
		}
		dests = append(dests, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.DestinationRepo.SearchByName: rows: %w", err)
	}

	return dests, nil
}

// Insert adds one destination, ignoring name conflicts.
func (r *pgDestinationRepo) Insert(ctx context.Context, dest domain.Destination) error {
	budget, err := json.Marshal(dest.AverageBudget)
	if err != nil {
		return fmt.Errorf("repo.DestinationRepo.Insert: marshal budget: %w", err)
	}

	attractions := dest.PopularAttractions
	if attractions == nil {
		attractions = []string{}
	}
	tags := dest.Tags
	if tags == nil {
		tags = []string{}
	}

	const q = `
		INSERT INTO destinations (name, country, description, popular_attractions,
		                          best_time_to_visit, average_budget, tags)
		VALUES (@name, @country, @description, @popular_attractions,
		        @best_time_to_visit, @average_budget, @tags)
		ON CONFLICT (name) DO NOTHING`

	_, err = r.db.Exec(ctx, q, pgx.NamedArgs{
		"name":                dest.Name,
		"country":             dest.Country,
		"description":         dest.Description,
		"popular_attractions": attractions,
		"best_time_to_visit":  dest.BestTimeToVisit,
		"average_budget":      budget,
		"tags":                tags,
	})
	if err != nil {
		return fmt.Errorf("repo.DestinationRepo.Insert: %w", err)
	}
	return nil
}

// Count returns the catalog size.
func (r *pgDestinationRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.QueryRow(ctx, `SELECT count(*) FROM destinations`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("repo.DestinationRepo.Count: %w", err)
	}
	return n, nil
}

// scanDestination maps a single database row into a domain.Destination,
// unmarshaling the average_budget JSONB column.
func scanDestination(s scanner) (domain.Destination, error) {
	var (
		d      domain.Destination
		id     pgtype.UUID
		budget []byte
	)

	err := s.Scan(&id, &d.Name, &d.Country, &d.Description, &d.PopularAttractions,
		&d.BestTimeToVisit, &budget, &d.Tags, &d.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Destination{}, domain.ErrNotFound
		}
		return domain.Destination{}, err
	}

	if err := json.Unmarshal(budget, &d.AverageBudget); err != nil {
		return domain.Destination{}, fmt.Errorf("unmarshal average_budget: %w", err)
	}

	d.ID = uuid.UUID(id.Bytes)

	return d, nil
}
