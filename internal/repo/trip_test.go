package repo_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wayfarer-labs/tripweaver/backend/internal/domain"
	"github.com/wayfarer-labs/tripweaver/backend/internal/repo"
)

// tripFixture returns a domain.Trip with sensible defaults.
// Callers override individual fields after calling this function.
func tripFixture() domain.Trip {
	budget := 900
	return domain.Trip{
		Title:       "Paris in June",
		Description: "Honeymoon",
		Destination: "Paris",
		StartDate:   time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC),
		Budget:      &budget,
		Travelers:   2,
		Preferences: []string{"Art", "Food"},
		UserID:      uuid.New(),
		Status:      domain.StatusPlanning,
	}
}

func TestTripRepo_Create(t *testing.T) {
	r := repo.NewTripRepo(newTestTx(t))
	ctx := context.Background()

	input := tripFixture()
	got, err := r.Create(ctx, input)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, got.ID, "ID should be DB-generated")
	assert.Equal(t, input.Title, got.Title)
	assert.Equal(t, input.Destination, got.Destination)
	assert.True(t, got.StartDate.Equal(input.StartDate), "StartDate mismatch")
	assert.True(t, got.EndDate.Equal(input.EndDate), "EndDate mismatch")
	require.NotNil(t, got.Budget)
	assert.Equal(t, 900, *got.Budget)
	assert.Equal(t, []string{"Art", "Food"}, got.Preferences)
	assert.Equal(t, input.UserID, got.UserID)
	assert.Equal(t, domain.StatusPlanning, got.Status)
	assert.False(t, got.CreatedAt.IsZero(), "CreatedAt should be set by DB")
	assert.False(t, got.UpdatedAt.IsZero(), "UpdatedAt should be set by DB")
}

func TestTripRepo_Create_NoBudget(t *testing.T) {
	r := repo.NewTripRepo(newTestTx(t))
	ctx := context.Background()

	input := tripFixture()
	input.Budget = nil

	got, err := r.Create(ctx, input)

	require.NoError(t, err)
	assert.Nil(t, got.Budget, "budget should round-trip as NULL")
}

func TestTripRepo_GetByID(t *testing.T) {
	r := repo.NewTripRepo(newTestTx(t))
	ctx := context.Background()

	created, err := r.Create(ctx, tripFixture())
	require.NoError(t, err)

	got, err := r.GetByID(ctx, created.ID)

	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, created.Title, got.Title)
}

func TestTripRepo_GetByID_NotFound(t *testing.T) {
	r := repo.NewTripRepo(newTestTx(t))

	_, err := r.GetByID(context.Background(), uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTripRepo_ListByUser_NewestFirstAndScoped(t *testing.T) {
	tx := newTestTx(t)
	r := repo.NewTripRepo(tx)
	ctx := context.Background()

	owner := uuid.New()
	other := uuid.New()

	for _, title := range []string{"First", "Second", "Third"} {
		trip := tripFixture()
		trip.Title = title
		trip.UserID = owner
		_, err := r.Create(ctx, trip)
		require.NoError(t, err)
	}
	strangerTrip := tripFixture()
	strangerTrip.UserID = other
	_, err := r.Create(ctx, strangerTrip)
	require.NoError(t, err)

	trips, total, err := r.ListByUser(ctx, owner, domain.PaginationParams{Page: 1, Limit: 10})

	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	require.Len(t, trips, 3)
	for _, trip := range trips {
		assert.Equal(t, owner, trip.UserID, "other users' trips must never appear")
	}
}

func TestTripRepo_ListByUser_Pagination(t *testing.T) {
	r := repo.NewTripRepo(newTestTx(t))
	ctx := context.Background()

	owner := uuid.New()
	for i := 0; i < 5; i++ {
		trip := tripFixture()
		trip.UserID = owner
		_, err := r.Create(ctx, trip)
		require.NoError(t, err)
	}

	page2, total, err := r.ListByUser(ctx, owner, domain.PaginationParams{Page: 2, Limit: 2})

	require.NoError(t, err)
	assert.EqualValues(t, 5, total)
	assert.Len(t, page2, 2)

	page3, _, err := r.ListByUser(ctx, owner, domain.PaginationParams{Page: 3, Limit: 2})
	require.NoError(t, err)
	assert.Len(t, page3, 1)
}

func TestTripRepo_UpdateStatus(t *testing.T) {
	r := repo.NewTripRepo(newTestTx(t))
	ctx := context.Background()

	created, err := r.Create(ctx, tripFixture())
	require.NoError(t, err)

	updated, err := r.UpdateStatus(ctx, created.ID, domain.StatusConfirmed)

	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, updated.Status)
	assert.False(t, updated.UpdatedAt.Before(created.UpdatedAt), "updated_at should move forward")
}

func TestTripRepo_UpdateStatus_NotFound(t *testing.T) {
	r := repo.NewTripRepo(newTestTx(t))

	_, err := r.UpdateStatus(context.Background(), uuid.New(), domain.StatusCompleted)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTripRepo_Delete(t *testing.T) {
	r := repo.NewTripRepo(newTestTx(t))
	ctx := context.Background()

	created, err := r.Create(ctx, tripFixture())
	require.NoError(t, err)

	require.NoError(t, r.Delete(ctx, created.ID))

	_, err = r.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTripRepo_Delete_NotFound(t *testing.T) {
	r := repo.NewTripRepo(newTestTx(t))

	err := r.Delete(context.Background(), uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
