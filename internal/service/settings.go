package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"paybox/internal/entity"
	"paybox/pkg/cache"
	"paybox/pkg/logger"
)

var _ ConfigProvider = (*SettingsService)(nil)

// SettingsService serves module settings from a short lived cache in front of the store.
type SettingsService struct {
	repo     SettingRepository
	logger   logger.Logger
	cache    cache.Cache[string, string]
	cacheTTL time.Duration
}

func NewSettingsService(
	repo SettingRepository,
	logger logger.Logger,
	cache cache.Cache[string, string],
	cacheTTL time.Duration,
) *SettingsService {
	cache.SetOnEvicted(func(key string, _ string) {
		logger.Debugw("setting evicted from cache", "key", key)
	})

	return &SettingsService{
		repo:     repo,
		logger:   logger,
		cache:    cache,
		cacheTTL: cacheTTL,
	}
}

// GetString returns the stored value of key, or def when it was never stored
// or the store cannot be reached.
func (ss *SettingsService) GetString(ctx context.Context, key, def string) string {
	const op = "service.SettingsService.GetString"

	if value, found := ss.cache.Get(key); found {
		return value
	}

	ctx, cancel := context.WithTimeout(ctx, _defaultContextTimeout)
	defer cancel()

	value, err := ss.repo.Get(ctx, key)
	switch {
	case err == nil:
		ss.cache.Put(key, value, ss.cacheTTL)
		return value
	case errors.Is(err, entity.ErrDataNotFound):
		ss.cache.Put(key, def, ss.cacheTTL)
		return def
	default:
		ss.logger.Ctx(ctx).LogAttrs(ctx, logger.ErrorLevel, "failed to read setting, using default",
			logger.String("op", op),
			logger.String("key", key),
			logger.Err(err),
		)
		return def
	}
}

// Settings returns a typed snapshot of every module setting.
func (ss *SettingsService) Settings(ctx context.Context) *entity.Settings {
	return loadSettings(ctx, ss)
}

// Warmup loads every stored setting into the cache in one query.
func (ss *SettingsService) Warmup(ctx context.Context) error {
	const op = "service.SettingsService.Warmup"
	log := ss.logger.Ctx(ctx)

	stored, err := ss.repo.List(ctx)
	if err != nil {
		return fmt.Errorf("%s: list settings: %w", op, err)
	}

	for key, def := range entity.SettingDefaults {
		value, ok := stored[key]
		if !ok {
			value = def
		}
		ss.cache.Put(key, value, ss.cacheTTL)
	}

	log.LogAttrs(ctx, logger.InfoLevel, "settings cache warmed up",
		logger.Int("stored", len(stored)),
		logger.Int("cached", ss.cache.Len()),
	)

	return nil
}

// Invalidate drops key from the cache so the next read hits the store.
func (ss *SettingsService) Invalidate(key string) {
	ss.cache.Delete(key)
}

// Reload drops every cached setting and refills the cache from the store.
// Used after module settings are edited, otherwise edits show up once the TTL expires.
func (ss *SettingsService) Reload(ctx context.Context) error {
	for key := range entity.SettingDefaults {
		ss.Invalidate(key)
	}
	return ss.Warmup(ctx)
}

func loadSettings(ctx context.Context, provider ConfigProvider) *entity.Settings {
	raw := make(map[string]string, len(entity.SettingDefaults))
	for key, def := range entity.SettingDefaults {
		raw[key] = provider.GetString(ctx, key, def)
	}
	return entity.NewSettings(raw)
}
