// internal/service/favorites/favorites.go

// Package favorites keeps each visitor's saved-vehicles list in redis. There
// are no visitor accounts; the list is keyed by an opaque client-generated
// token and expires after a period of inactivity.
package favorites

import (
	"context"
	"fmt"
	"time"

	"autosalon-service/internal/domain/vehicle"
	xerrors "autosalon-service/internal/pkg/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// favoritesTTL is the inactivity window after which a visitor's list is
// dropped. Every touch renews it.
const favoritesTTL = 30 * 24 * time.Hour

type FavoritesService struct {
	cache  *redis.Client
	repo   vehicle.Reader
	logger *zap.Logger
}

func NewFavoritesService(cache *redis.Client, repo vehicle.Reader, logger *zap.Logger) *FavoritesService {
	return &FavoritesService{
		cache:  cache,
		repo:   repo,
		logger: logger,
	}
}

func favoritesKey(visitorToken string) string {
	return fmt.Sprintf("favorites:%s", visitorToken)
}

// Add saves a vehicle to the visitor's list. The vehicle must exist.
func (s *FavoritesService) Add(ctx context.Context, visitorToken, vehicleID string) error {
	if visitorToken == "" {
		return xerrors.ErrInvalidInput
	}
	if _, err := s.repo.FindByID(ctx, vehicleID); err != nil {
		return err
	}

	key := favoritesKey(visitorToken)
	if err := s.cache.SAdd(ctx, key, vehicleID).Err(); err != nil {
		return fmt.Errorf("failed to save favorite: %w", err)
	}
	if err := s.cache.Expire(ctx, key, favoritesTTL).Err(); err != nil {
		s.logger.Error("failed to renew favorites ttl", zap.Error(err))
	}
	return nil
}

// Remove drops a vehicle from the visitor's list. Removing an id that is not
// on the list is a no-op.
func (s *FavoritesService) Remove(ctx context.Context, visitorToken, vehicleID string) error {
	if visitorToken == "" {
		return xerrors.ErrInvalidInput
	}
	if err := s.cache.SRem(ctx, favoritesKey(visitorToken), vehicleID).Err(); err != nil {
		return fmt.Errorf("failed to remove favorite: %w", err)
	}
	return nil
}

// List resolves the visitor's saved ids against the live catalog. Ids whose
// vehicles have since been unpublished are pruned from the set instead of
// surfacing as errors.
func (s *FavoritesService) List(ctx context.Context, visitorToken string) ([]vehicle.Vehicle, error) {
	if visitorToken == "" {
		return nil, xerrors.ErrInvalidInput
	}

	key := favoritesKey(visitorToken)
	ids, err := s.cache.SMembers(ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to load favorites: %w", err)
	}

	vehicles := make([]vehicle.Vehicle, 0, len(ids))
	for _, id := range ids {
		v, err := s.repo.FindByID(ctx, id)
		if err != nil {
			if err := s.cache.SRem(ctx, key, id).Err(); err != nil {
				s.logger.Error("failed to prune stale favorite", zap.Error(err))
			}
			continue
		}
		vehicles = append(vehicles, *v)
	}
	return vehicles, nil
}
