package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"team-analysis/standup/internal/common"
	"team-analysis/standup/internal/constants"
)

func TestIsEnabledSeededDefaults(t *testing.T) {
	conn := setupServiceDB(t)
	svc := NewFeatureService(conn, common.NewCacheService(300, 600))

	require.True(t, svc.IsEnabled(context.Background(), constants.FeatureDaily))
	require.True(t, svc.IsEnabled(context.Background(), constants.FeatureDailyCollection))
}

func TestIsEnabledUnknownFeatureIsOff(t *testing.T) {
	conn := setupServiceDB(t)
	svc := NewFeatureService(conn, common.NewCacheService(300, 600))

	require.False(t, svc.IsEnabled(context.Background(), "workbook_export"))
}

func TestToggleFlipsAndInvalidatesCache(t *testing.T) {
	conn := setupServiceDB(t)
	svc := NewFeatureService(conn, common.NewCacheService(300, 600))
	ctx := context.Background()

	// Prime the cache, then flip.
	require.True(t, svc.IsEnabled(ctx, constants.FeatureDaily))

	enabled, err := svc.Toggle(ctx, constants.FeatureDaily)
	require.NoError(t, err)
	require.False(t, enabled)
	require.False(t, svc.IsEnabled(ctx, constants.FeatureDaily))

	enabled, err = svc.Toggle(ctx, constants.FeatureDaily)
	require.NoError(t, err)
	require.True(t, enabled)
	require.True(t, svc.IsEnabled(ctx, constants.FeatureDaily))
}

func TestToggleCreatesUnknownFeature(t *testing.T) {
	conn := setupServiceDB(t)
	svc := NewFeatureService(conn, common.NewCacheService(300, 600))
	ctx := context.Background()

	enabled, err := svc.Toggle(ctx, "new_feature")
	require.NoError(t, err)
	require.True(t, enabled)
	require.True(t, svc.IsEnabled(ctx, "new_feature"))
}
