package thresholds

import (
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentic-research/boardroom/internal/database"
)

func floatPtr(v float64) *float64 { return &v }

func strPtr(s string) *string { return &s }

func testRepo(t *testing.T) *Repository {
	t.Helper()

	db, err := database.New(database.Config{
		Path:    filepath.Join(t.TempDir(), "config.db"),
		Profile: database.ProfileStandard,
		Name:    "config",
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, db.Migrate())

	return NewRepository(db.Conn(), zerolog.Nop())
}

func TestRepository_CreateAndGet(t *testing.T) {
	repo := testRepo(t)

	created, err := repo.Create("CFO", "accumulated_profit", floatPtr(1200000), nil, nil, "profit floor")
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.IsDeleted)
	assert.NotZero(t, created.CreatedAt)

	got, err := repo.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
	require.NotNil(t, got.MinValue)
	assert.InDelta(t, 1200000, *got.MinValue, 1e-9)
	assert.Nil(t, got.MaxValue)
}

func TestRepository_GetByID_Unknown(t *testing.T) {
	repo := testRepo(t)

	_, err := repo.GetByID("no-such-id")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRepository_ListActive_ExcludesDeleted(t *testing.T) {
	repo := testRepo(t)

	first, err := repo.Create("CFO", "accumulated_profit", floatPtr(1200000), nil, nil, "")
	require.NoError(t, err)
	second, err := repo.Create("CRO", "compromised_systems", nil, floatPtr(10), nil, "")
	require.NoError(t, err)

	require.NoError(t, repo.SoftDelete(first.ID))

	active, err := repo.ListActive()
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, second.ID, active[0].ID)

	// the deleted row is still reachable by id, flagged
	got, err := repo.GetByID(first.ID)
	require.NoError(t, err)
	assert.True(t, got.IsDeleted)
}

func TestRepository_ListByAgent(t *testing.T) {
	repo := testRepo(t)

	_, err := repo.Create("CFO", "accumulated_profit", floatPtr(1200000), nil, nil, "")
	require.NoError(t, err)
	_, err = repo.Create("CRO", "compromised_systems", nil, floatPtr(10), nil, "")
	require.NoError(t, err)

	records, err := repo.ListByAgent("CRO")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "CRO", records[0].AgentName)
}

func TestRepository_Update_Partial(t *testing.T) {
	repo := testRepo(t)

	created, err := repo.Create("CFO", "accumulated_profit", floatPtr(1200000), nil, nil, "old")
	require.NoError(t, err)

	updated, err := repo.Update(created.ID, Update{
		MinValue:    floatPtr(1000000),
		Description: strPtr("new floor"),
	})
	require.NoError(t, err)

	assert.InDelta(t, 1000000, *updated.MinValue, 1e-9)
	assert.Equal(t, "new floor", updated.Description)
	// untouched fields survive
	assert.Nil(t, updated.MaxValue)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.GreaterOrEqual(t, updated.UpdatedAt, created.UpdatedAt)
}

func TestRepository_Update_DeletedIsNotFound(t *testing.T) {
	repo := testRepo(t)

	created, err := repo.Create("CFO", "accumulated_profit", floatPtr(1200000), nil, nil, "")
	require.NoError(t, err)
	require.NoError(t, repo.SoftDelete(created.ID))

	_, err = repo.Update(created.ID, Update{MinValue: floatPtr(1)})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRepository_SoftDelete_Idempotence(t *testing.T) {
	repo := testRepo(t)

	created, err := repo.Create("CFO", "accumulated_profit", floatPtr(1200000), nil, nil, "")
	require.NoError(t, err)

	require.NoError(t, repo.SoftDelete(created.ID))
	// second delete finds no active row
	assert.ErrorIs(t, repo.SoftDelete(created.ID), ErrNotFound)
	assert.ErrorIs(t, repo.SoftDelete("no-such-id"), ErrNotFound)
}
