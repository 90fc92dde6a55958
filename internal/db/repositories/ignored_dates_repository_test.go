package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"team-analysis/standup/internal/calendar"
)

func TestAddValidatesInput(t *testing.T) {
	repo := NewIgnoredDatesRepository(setupDB(t))
	ctx := context.Background()
	now := time.Now().UTC()

	id, err := repo.Add(ctx, "2023-12-24", "2024-01-03", "admin", now)
	require.NoError(t, err)
	assert.Positive(t, id)

	// Accepted in any of the three formats, normalized to ISO.
	_, err = repo.Add(ctx, "25/12/2023", "2023/12/26", "admin", now)
	require.NoError(t, err)

	_, err = repo.Add(ctx, "garbage", "2024-01-03", "admin", now)
	assert.ErrorIs(t, err, calendar.ErrInvalidDate)

	_, err = repo.Add(ctx, "2024-01-03", "2023-12-24", "admin", now)
	assert.ErrorIs(t, err, ErrInvertedRange)

	ranges, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, ranges, 2)
	assert.Equal(t, "2023-12-24", ranges[0].StartDate)
	assert.Equal(t, "2023-12-25", ranges[1].StartDate)
	assert.Equal(t, "2023-12-26", ranges[1].EndDate)
}

func TestRemove(t *testing.T) {
	repo := NewIgnoredDatesRepository(setupDB(t))
	ctx := context.Background()

	id, err := repo.Add(ctx, "2024-02-14", "2024-02-14", "admin", time.Now().UTC())
	require.NoError(t, err)

	removed, err := repo.Remove(ctx, id)
	require.NoError(t, err)
	assert.True(t, removed)

	// Absent id is not an error.
	removed, err = repo.Remove(ctx, id)
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestReplaceAll(t *testing.T) {
	repo := NewIgnoredDatesRepository(setupDB(t))
	ctx := context.Background()
	now := time.Now().UTC()

	_, err := repo.Add(ctx, "2023-01-01", "2023-01-01", "old-admin", now)
	require.NoError(t, err)

	inserted, err := repo.ReplaceAll(ctx, []calendar.DatePair{
		{Start: "2024-12-24", End: "2025-01-02"},
		{Start: "2024-04-21", End: "2024-04-21"},
		{Start: "2024-09-09", End: "2024-09-01"}, // inverted, skipped
	}, "admin", now)
	require.NoError(t, err)
	assert.Equal(t, 2, inserted)

	ranges, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, ranges, 2)
	assert.Equal(t, "2024-04-21", ranges[0].StartDate)
	assert.Equal(t, "2024-12-24", ranges[1].StartDate)
	assert.Equal(t, "admin", ranges[0].CreatedBy)
}

func TestReplaceAllWithEmptySetClears(t *testing.T) {
	repo := NewIgnoredDatesRepository(setupDB(t))
	ctx := context.Background()
	now := time.Now().UTC()

	_, err := repo.Add(ctx, "2023-01-01", "2023-01-01", "admin", now)
	require.NoError(t, err)

	inserted, err := repo.ReplaceAll(ctx, nil, "admin", now)
	require.NoError(t, err)
	assert.Zero(t, inserted)

	ranges, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, ranges)
}
