package redirect

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	apperrors "editorial-platform/internal/errors"
	"editorial-platform/internal/model"
	"editorial-platform/internal/store"

	"github.com/glebarez/sqlite"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupLinkStore(t *testing.T) *store.Store {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	s := store.New(db, time.Second, zap.NewNop().Sugar())
	require.NoError(t, s.Migrate(context.Background()))
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestStoreLinks_LinkBySlug(t *testing.T) {
	s := setupLinkStore(t)
	ctx := context.Background()

	_, err := s.Create(ctx, model.LinkCollection, &model.Link{Slug: "lamp", Target: "https://example.com/lamp", UTMSource: "blog"})
	require.NoError(t, err)

	links := NewStoreLinks(s)
	got, err := links.LinkBySlug(ctx, "lamp")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/lamp", got.Target)
	assert.Equal(t, "blog", got.UTMSource)

	_, err = links.LinkBySlug(ctx, "missing")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestCachedLinks_DegradesWhenRedisDown(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = client.Close() })

	backing := &mapLinks{links: map[string]*model.Link{
		"rug": {Slug: "rug", Target: "https://example.com/rug"},
	}}
	cached := NewCachedLinks(client, backing, time.Minute, zap.NewNop().Sugar())

	got, err := cached.LinkBySlug(context.Background(), "rug")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/rug", got.Target)
	assert.Equal(t, 1, backing.calls)

	_, err = cached.LinkBySlug(context.Background(), "missing")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
