package redirect

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"editorial-platform/internal/model"
	"editorial-platform/internal/store"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// StoreLinks 直接从文档存储读取链接
type StoreLinks struct {
	store *store.Store
}

func NewStoreLinks(s *store.Store) *StoreLinks {
	return &StoreLinks{store: s}
}

func (s *StoreLinks) LinkBySlug(ctx context.Context, slug string) (*model.Link, error) {
	var link model.Link
	if err := s.store.First(ctx, model.LinkCollection, store.Filter{}.Where(store.Eq("slug", slug)), &link); err != nil {
		return nil, err
	}
	return &link, nil
}

// CachedLinks 旁路缓存：先查 Redis，未命中再回源并写回
//
// 链接创建后不可修改，因此无需失效处理。Redis 出错时直接回源。
type CachedLinks struct {
	client    *redis.Client
	next      LinkSource
	ttl       time.Duration
	keyPrefix string
	logger    *zap.SugaredLogger
}

func NewCachedLinks(client *redis.Client, next LinkSource, ttl time.Duration, logger *zap.SugaredLogger) *CachedLinks {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &CachedLinks{
		client:    client,
		next:      next,
		ttl:       ttl,
		keyPrefix: "link:",
		logger:    logger.Named("link_cache"),
	}
}

func (c *CachedLinks) LinkBySlug(ctx context.Context, slug string) (*model.Link, error) {
	key := c.keyPrefix + slug

	cacheCtx, cancel := context.WithTimeout(ctx, time.Second)
	data, err := c.client.Get(cacheCtx, key).Bytes()
	cancel()
	switch {
	case err == nil:
		var link model.Link
		if jsonErr := json.Unmarshal(data, &link); jsonErr == nil {
			return &link, nil
		}
		c.logger.Warnw("缓存数据损坏，回源读取", "slug", slug)
	case !errors.Is(err, redis.Nil):
		c.logger.Warnw("读取缓存失败，回源读取", "slug", slug, "error", err)
	}

	link, err := c.next.LinkBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(link); err == nil {
		setCtx, cancel := context.WithTimeout(ctx, time.Second)
		if err := c.client.Set(setCtx, key, payload, c.ttl).Err(); err != nil {
			c.logger.Debugw("写入缓存失败", "slug", slug, "error", err)
		}
		cancel()
	}
	return link, nil
}
