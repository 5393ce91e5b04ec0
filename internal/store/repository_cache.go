package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/staffly/offline-sync/internal/logger"
)

type cacheRepository struct {
	*DB
	logger *logger.Logger
}

func NewCacheRepository(db *DB, logger *logger.Logger) CacheRepository {
	return &cacheRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *cacheRepository) SetItem(ctx context.Context, key, value string) error {
	log := logger.FromContext(ctx)

	_, err := r.DB.ExecContext(ctx, upsertCacheItem, key, value, time.Now().UTC())
	if err != nil {
		log.Err(err).
			Str("func", "cacheRepository.SetItem").
			Str("key", key).
			Msg("failed to upsert cache item")
		return fmt.Errorf("failed to set cache item (key=%s): %w", key, errors.Join(ErrExecutingStatement, err))
	}

	return nil
}

func (r *cacheRepository) GetItem(ctx context.Context, key string) (string, error) {
	log := logger.FromContext(ctx)

	var value string
	err := r.DB.QueryRowContext(ctx, getCacheItem, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("cache key %s: %w", key, ErrItemNotFound)
	}
	if err != nil {
		log.Err(err).
			Str("func", "cacheRepository.GetItem").
			Str("key", key).
			Msg("failed to query cache item")
		return "", fmt.Errorf("failed to get cache item (key=%s): %w", key, errors.Join(ErrExecutingQuery, err))
	}

	return value, nil
}

func (r *cacheRepository) RemoveItem(ctx context.Context, key string) error {
	log := logger.FromContext(ctx)

	if _, err := r.DB.ExecContext(ctx, deleteCacheItem, key); err != nil {
		log.Err(err).
			Str("func", "cacheRepository.RemoveItem").
			Str("key", key).
			Msg("failed to delete cache item")
		return fmt.Errorf("failed to remove cache item (key=%s): %w", key, errors.Join(ErrExecutingStatement, err))
	}

	return nil
}

func (r *cacheRepository) ClearAll(ctx context.Context) error {
	log := logger.FromContext(ctx)

	if _, err := r.DB.ExecContext(ctx, clearCacheItems); err != nil {
		log.Err(err).
			Str("func", "cacheRepository.ClearAll").
			Msg("failed to clear cache")
		return fmt.Errorf("failed to clear cache: %w", errors.Join(ErrExecutingStatement, err))
	}

	return nil
}

func (r *cacheRepository) StorageUsage(ctx context.Context) (int64, error) {
	log := logger.FromContext(ctx)

	var bytes int64
	if err := r.DB.QueryRowContext(ctx, storageUsage).Scan(&bytes); err != nil {
		log.Err(err).
			Str("func", "cacheRepository.StorageUsage").
			Msg("failed to read storage usage")
		return 0, fmt.Errorf("failed to read storage usage: %w", errors.Join(ErrExecutingQuery, err))
	}

	return bytes, nil
}
