package service

import (
	"context"
	"encoding/json"

	"github.com/datalab-ge/datalab-api/internal/cache"
	"go.uber.org/zap"
)

// cachedList serves a list from the collection cache, loading and storing it on a miss.
// Cache failures are logged and otherwise ignored.
func cachedList[T any](ctx context.Context, c cache.Cache, logger *zap.Logger, collection, field string, load func(context.Context) ([]T, error)) ([]T, error) {
	if raw, ok, err := c.Get(ctx, collection, field); err != nil {
		logger.Warn("cache read failed", zap.String("collection", collection), zap.Error(err))
	} else if ok {
		var items []T
		if err := json.Unmarshal(raw, &items); err == nil {
			return items, nil
		}
		logger.Warn("discarding undecodable cache entry", zap.String("collection", collection), zap.String("field", field))
	}

	items, err := load(ctx)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(items); err == nil {
		if err := c.Set(ctx, collection, field, raw); err != nil {
			logger.Warn("cache write failed", zap.String("collection", collection), zap.Error(err))
		}
	}
	return items, nil
}

func invalidate(ctx context.Context, c cache.Cache, logger *zap.Logger, collections ...string) {
	if err := c.Invalidate(ctx, collections...); err != nil {
		logger.Warn("cache invalidation failed", zap.Strings("collections", collections), zap.Error(err))
	}
}
