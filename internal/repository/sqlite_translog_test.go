package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/cbridge/nestegg/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionLogRepo_RecordAndListRecent(t *testing.T) {
	db := testutil.NewTestDB(t)
	households := NewSQLiteHouseholdRepo(db)
	repo := NewSQLiteTransactionLogRepo(db)
	ctx := context.Background()

	h := seedHousehold(t, households)

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 8; i++ {
		tx := testutil.NewTestTransaction(h.ID, fmt.Sprintf("goal-%d", i), base.Add(time.Duration(i)*time.Hour))
		tx.Description = fmt.Sprintf("entry %d", i)
		require.NoError(t, repo.Record(ctx, tx))
	}

	// Newest first, capped at five.
	entries, err := repo.ListRecent(ctx, h.ID, 5)
	require.NoError(t, err)
	require.Len(t, entries, 5)
	assert.Equal(t, "entry 7", entries[0].Description)
	assert.Equal(t, "entry 3", entries[4].Description)
	for i := 1; i < len(entries); i++ {
		assert.False(t, entries[i].OccurredAt.After(entries[i-1].OccurredAt))
	}
}

func TestTransactionLogRepo_ListRecent_DefaultLimit(t *testing.T) {
	db := testutil.NewTestDB(t)
	households := NewSQLiteHouseholdRepo(db)
	repo := NewSQLiteTransactionLogRepo(db)
	ctx := context.Background()

	h := seedHousehold(t, households)
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 7; i++ {
		tx := testutil.NewTestTransaction(h.ID, "goal", base.Add(time.Duration(i)*time.Minute))
		require.NoError(t, repo.Record(ctx, tx))
	}

	entries, err := repo.ListRecent(ctx, h.ID, 0)
	require.NoError(t, err)
	assert.Len(t, entries, 5)
}

func TestTransactionLogRepo_ListRecent_ScopedToHousehold(t *testing.T) {
	db := testutil.NewTestDB(t)
	households := NewSQLiteHouseholdRepo(db)
	repo := NewSQLiteTransactionLogRepo(db)
	ctx := context.Background()

	h1 := testutil.NewTestHousehold("Sharma Family")
	h2 := testutil.NewTestHousehold("Iyer Family")
	require.NoError(t, households.Upsert(ctx, h1))
	require.NoError(t, households.Upsert(ctx, h2))

	now := time.Now().UTC()
	require.NoError(t, repo.Record(ctx, testutil.NewTestTransaction(h1.ID, "g1", now)))
	require.NoError(t, repo.Record(ctx, testutil.NewTestTransaction(h2.ID, "g2", now)))

	entries, err := repo.ListRecent(ctx, h1.ID, 5)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, h1.ID, entries[0].HouseholdID)
}

func TestTransactionLogRepo_ListRecent_Empty(t *testing.T) {
	db := testutil.NewTestDB(t)
	households := NewSQLiteHouseholdRepo(db)
	repo := NewSQLiteTransactionLogRepo(db)
	ctx := context.Background()

	h := seedHousehold(t, households)
	entries, err := repo.ListRecent(ctx, h.ID, 5)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
