package services

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"team-analysis/standup/internal/common"
	"team-analysis/standup/internal/constants"
)

const featureCacheTTL = 30 * time.Second

// FeatureService reads and flips the feature toggles. Reads go through the
// cache; toggling invalidates the cached entry so the next read sees the new
// state.
type FeatureService struct {
	db    *sqlx.DB
	cache common.CacheInterface
}

func NewFeatureService(db *sqlx.DB, cache common.CacheInterface) *FeatureService {
	return &FeatureService{db: db, cache: cache}
}

func cacheKey(name string) string { return "FEATURE_" + name }

// IsEnabled reports whether the named feature is on. Unknown features are
// off.
func (s *FeatureService) IsEnabled(ctx context.Context, name string) bool {
	val, err := s.cache.GetOrSet(cacheKey(name), featureCacheTTL, func() (any, error) {
		var enabled bool
		err := s.db.GetContext(ctx, &enabled, constants.GetFeatureToggle, name)
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		if err != nil {
			return nil, err
		}
		return enabled, nil
	})
	if err != nil {
		return false
	}

	enabled, ok := val.(bool)
	return ok && enabled
}

// Toggle flips the named feature and returns its new state.
func (s *FeatureService) Toggle(ctx context.Context, name string) (bool, error) {
	current := s.IsEnabled(ctx, name)
	next := !current

	if _, err := s.db.ExecContext(ctx, constants.UpsertFeatureToggle, name, next); err != nil {
		return current, err
	}

	s.cache.Delete(cacheKey(name))
	return next, nil
}
