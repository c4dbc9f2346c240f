package repo_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wayfarer-labs/tripweaver/backend/internal/domain"
	"github.com/wayfarer-labs/tripweaver/backend/internal/repo"
)

// destFixture returns a catalog entry with a unique name so tests never
// collide with seeded data in a shared test database.
func destFixture() domain.Destination {
	return domain.Destination{
		Name:               "Testville-" + uuid.NewString(),
		Country:            "Testland",
		Description:        "A place that exists only in tests",
		PopularAttractions: []string{"The Fixture Museum", "Mock Harbor"},
		BestTimeToVisit:    "April to June",
		AverageBudget:      domain.BudgetTiers{Budget: 50, MidRange: 120, Luxury: 400},
		Tags:               []string{"quiet", "test"},
	}
}

func TestDestinationRepo_InsertAndSearch(t *testing.T) {
	r := repo.NewDestinationRepo(newTestTx(t))
	ctx := context.Background()

	dest := destFixture()
	require.NoError(t, r.Insert(ctx, dest))

	got, err := r.SearchByName(ctx, dest.Name[:9], 10)

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, dest.Name, got[0].Name)
	assert.Equal(t, "Testland", got[0].Country)
	assert.Equal(t, []string{"The Fixture Museum", "Mock Harbor"}, got[0].PopularAttractions)
	assert.Equal(t, domain.BudgetTiers{Budget: 50, MidRange: 120, Luxury: 400}, got[0].AverageBudget)
	assert.Equal(t, []string{"quiet", "test"}, got[0].Tags)
	assert.NotEqual(t, uuid.Nil, got[0].ID)
}

func TestDestinationRepo_Search_CaseInsensitivePrefix(t *testing.T) {
	r := repo.NewDestinationRepo(newTestTx(t))
	ctx := context.Background()

	dest := destFixture()
	require.NoError(t, r.Insert(ctx, dest))

	got, err := r.SearchByName(ctx, "tESTVILLE", 10)

	require.NoError(t, err)
	require.NotEmpty(t, got)
	assert.Equal(t, dest.Name, got[0].Name)
}

func TestDestinationRepo_Search_RespectsLimit(t *testing.T) {
	r := repo.NewDestinationRepo(newTestTx(t))
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		require.NoError(t, r.Insert(ctx, destFixture()))
	}

	got, err := r.SearchByName(ctx, "Testville", 2)

	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestDestinationRepo_Search_NoMatch(t *testing.T) {
	r := repo.NewDestinationRepo(newTestTx(t))

	got, err := r.SearchByName(context.Background(), "Zzz-no-such-place", 10)

	require.NoError(t, err)
	assert.Empty(t, got)
}

// Inserting the same name twice is a no-op, which keeps startup seeding idempotent.
func TestDestinationRepo_Insert_ConflictIgnored(t *testing.T) {
	r := repo.NewDestinationRepo(newTestTx(t))
	ctx := context.Background()

	dest := destFixture()
	require.NoError(t, r.Insert(ctx, dest))

	dest.Description = "a different description"
	require.NoError(t, r.Insert(ctx, dest))

	got, err := r.SearchByName(ctx, dest.Name, 10)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "A place that exists only in tests", got[0].Description, "first insert wins")
}

func TestDestinationRepo_Count(t *testing.T) {
	r := repo.NewDestinationRepo(newTestTx(t))
	ctx := context.Background()

	before, err := r.Count(ctx)
	require.NoError(t, err)

	require.NoError(t, r.Insert(ctx, destFixture()))

	after, err := r.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, before+1, after)
}
