package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"editorial-platform/internal/config"
	"editorial-platform/internal/model"
	"editorial-platform/internal/redirect"
	"editorial-platform/internal/shortcode"
	"editorial-platform/internal/store"
	"editorial-platform/internal/tracker"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// testEnv 一套独立的内存数据库与路由
type testEnv struct {
	router *gin.Engine
	store  *store.Store
	db     *gorm.DB
	clicks *tracker.Recorder
}

// setupTest 为集成测试初始化一个干净的环境
func setupTest(t *testing.T, mode string) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "无法连接到内存数据库")
	sqlDB, err := db.DB()
	require.NoError(t, err)
	// 点击写入与请求共用同一个连接，避免共享缓存下的表锁
	sqlDB.SetMaxOpenConns(1)

	logger := zap.NewNop().Sugar()
	s := store.New(db, time.Second, logger)
	require.NoError(t, s.Migrate(context.Background()), "数据库迁移失败")

	recorder := tracker.NewRecorder(s, 16, 1, time.Second, logger)
	recorder.Start()

	env := &testEnv{store: s, db: db, clicks: recorder}
	env.router = newRouter(s, recorder, mode)

	t.Cleanup(func() {
		recorder.Stop()
		_ = s.Close()
	})
	return env
}

func newRouter(s *store.Store, clicks redirect.ClickRecorder, mode string) *gin.Engine {
	logger := zap.NewNop().Sugar()
	links := redirect.NewStoreLinks(s)
	engine := redirect.NewEngine(links, clicks, logger)
	codes := shortcode.NewGenerator(func(ctx context.Context, code string) (bool, error) {
		return s.Exists(ctx, model.LinkCollection, store.Filter{}.Where(store.Eq("slug", code)))
	}, logger)

	router := gin.New()
	RegisterRoutes(router,
		NewSystemHandler(s, false, logger),
		NewContentHandler(s, logger),
		NewLinkHandler(s, links, engine, codes, mode, logger),
	)
	return router
}

func (e *testEnv) do(method, path string, body any) *httptest.ResponseRecorder {
	return perform(e.router, method, path, body)
}

func perform(router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, _ := json.Marshal(body)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), "解析响应时不应出错: %s", w.Body.String())
	return v
}

func (e *testEnv) createProduct(t *testing.T, product gin.H) string {
	t.Helper()
	w := e.do(http.MethodPost, "/api/products", product)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	return decode[IDResponse](t, w).ID
}

func TestLinks_DuplicateSlugDoesNotMutateStorage(t *testing.T) {
	env := setupTest(t, config.RedirectModeHTTP)

	w := env.do(http.MethodPost, "/api/links", gin.H{"slug": "sofa", "target": "https://shop.example.com/sofa"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.NotEmpty(t, decode[IDResponse](t, w).ID)

	w = env.do(http.MethodPost, "/api/links", gin.H{"slug": "sofa", "target": "https://evil.example.com/"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "slug already exists")

	n, err := env.store.Count(context.Background(), model.LinkCollection)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	w = env.do(http.MethodGet, "/api/links/sofa", nil)
	require.Equal(t, http.StatusOK, w.Code)
	link := decode[model.Link](t, w)
	assert.Equal(t, "https://shop.example.com/sofa", link.Target)
	assert.NotEmpty(t, link.ID)
}

func TestLinks_GeneratedSlug(t *testing.T) {
	env := setupTest(t, config.RedirectModeHTTP)

	w := env.do(http.MethodPost, "/api/links", gin.H{"target": "https://shop.example.com/lamp"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	id := decode[IDResponse](t, w).ID

	var link model.Link
	require.NoError(t, env.store.First(context.Background(), model.LinkCollection, store.Filter{}.Where(store.Eq("id", id)), &link))
	assert.Len(t, link.Slug, shortcode.CodeLength)
}

func TestLinks_Validation(t *testing.T) {
	env := setupTest(t, config.RedirectModeHTTP)

	assert.Equal(t, http.StatusBadRequest, env.do(http.MethodPost, "/api/links", gin.H{"slug": "x"}).Code, "target is required")
	assert.Equal(t, http.StatusBadRequest, env.do(http.MethodPost, "/api/links", gin.H{"slug": "x", "target": "not a url"}).Code)
	assert.Equal(t, http.StatusNotFound, env.do(http.MethodGet, "/api/links/missing", nil).Code)
}

func TestRedirect_HTTPMode(t *testing.T) {
	env := setupTest(t, config.RedirectModeHTTP)

	w := env.do(http.MethodPost, "/api/links", gin.H{
		"slug":       "sofa123",
		"target":     "https://x.com/p?utm_source=existing#top",
		"utm_source": "link_value",
		"utm_medium": "email",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/r/sofa123", nil)
	req.Header.Set("Referer", "https://blog.example.com/post")
	req.Header.Set("User-Agent", "test-agent")
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusTemporaryRedirect, rec.Code)
	location, err := url.Parse(rec.Header().Get("Location"))
	require.NoError(t, err)
	assert.Equal(t, "x.com", location.Host)
	assert.Equal(t, "/p", location.Path)
	assert.Equal(t, "top", location.Fragment)
	assert.Equal(t, "existing", location.Query().Get("utm_source"), "destination value wins")
	assert.Equal(t, "email", location.Query().Get("utm_medium"))

	// Stop 会等待队列中的点击写完
	env.clicks.Stop()
	var clicks []model.Click
	require.NoError(t, env.store.Find(context.Background(), model.ClickCollection, store.Filter{}, 0, &clicks))
	require.Len(t, clicks, 1)
	assert.Equal(t, "sofa123", clicks[0].LinkSlug)
	assert.Equal(t, "https://blog.example.com/post", clicks[0].Referrer)
	assert.Equal(t, "test-agent", clicks[0].UserAgent)
	assert.Equal(t, "192.0.2.1", clicks[0].IP)
}

func TestRedirect_JSONMode(t *testing.T) {
	env := setupTest(t, config.RedirectModeJSON)

	w := env.do(http.MethodPost, "/api/links", gin.H{
		"slug":       "rug",
		"target":     "https://x.com/p",
		"utm_source": "blog",
		"utm_medium": "email",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = env.do(http.MethodGet, "/r/rug", nil)
	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[RedirectResponse](t, w)

	location, err := url.Parse(resp.Redirect)
	require.NoError(t, err)
	assert.Equal(t, url.Values{"utm_source": {"blog"}, "utm_medium": {"email"}}, location.Query())
}

func TestRedirect_Failures(t *testing.T) {
	env := setupTest(t, config.RedirectModeHTTP)

	w := env.do(http.MethodGet, "/r/unknown", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// 绕过请求校验直接写入一条缺少目标的链接
	_, err := env.store.Create(context.Background(), model.LinkCollection, &model.Link{Slug: "broken"})
	require.NoError(t, err)

	w = env.do(http.MethodGet, "/r/broken", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRedirect_ClickStoreOutageStillRedirects(t *testing.T) {
	env := setupTest(t, config.RedirectModeHTTP)

	w := env.do(http.MethodPost, "/api/links", gin.H{"slug": "lamp", "target": "https://x.com/lamp"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	require.NoError(t, env.db.Migrator().DropTable(model.ClickCollection))

	w = env.do(http.MethodGet, "/r/lamp", nil)
	assert.Equal(t, http.StatusTemporaryRedirect, w.Code)
	assert.Equal(t, "https://x.com/lamp", w.Header().Get("Location"))
}

func TestProducts_TagFilterAndLimit(t *testing.T) {
	env := setupTest(t, config.RedirectModeHTTP)
	env.createProduct(t, gin.H{"title": "Velvet Sofa", "tags": []string{"Modern", "Velvet"}})
	env.createProduct(t, gin.H{"title": "Glass Table", "tags": []string{"Modern"}})
	env.createProduct(t, gin.H{"title": "Arc Lamp", "tags": []string{"Lighting", "Modern"}})
	env.createProduct(t, gin.H{"title": "Rattan Chair", "tags": []string{"Boho", "modern"}})

	w := env.do(http.MethodGet, "/api/products?tag=Modern&limit=2", nil)
	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[ItemsResponse[model.Product]](t, w)
	assert.LessOrEqual(t, len(resp.Items), 2)
	assert.NotEmpty(t, resp.Items)
	for _, p := range resp.Items {
		assert.Contains(t, p.Tags, "Modern")
	}

	w = env.do(http.MethodGet, "/api/products?tag=Boho", nil)
	resp = decode[ItemsResponse[model.Product]](t, w)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "Rattan Chair", resp.Items[0].Title)
}

func TestProducts_RoundTrip(t *testing.T) {
	env := setupTest(t, config.RedirectModeHTTP)

	id := env.createProduct(t, gin.H{
		"title":       "Bouclé Armchair",
		"summary":     "Curvy accent chair",
		"description": "Solid oak frame with bouclé upholstery.",
		"brand":       "Nordhaus",
		"room":        "Living Room",
		"style":       "Scandinavian",
		"materials":   []string{"oak", "bouclé"},
		"tags":        []string{"Modern", "Cozy"},
		"rating":      4.5,
		"image":       "https://cdn.example.com/armchair.jpg",
		"links": []gin.H{
			{"retailer": "Shop A", "url": "https://a.example.com/armchair", "price": 499.0, "availability": "in_stock"},
		},
	})

	w := env.do(http.MethodGet, "/api/products/"+id, nil)
	require.Equal(t, http.StatusOK, w.Code)
	got := decode[model.Product](t, w)

	assert.Equal(t, id, got.ID)
	assert.Equal(t, "Bouclé Armchair", got.Title)
	assert.Equal(t, "Curvy accent chair", got.Summary)
	assert.Equal(t, "Solid oak frame with bouclé upholstery.", got.Description)
	assert.Equal(t, "Nordhaus", got.Brand)
	assert.Equal(t, "Living Room", got.Room)
	assert.Equal(t, "Scandinavian", got.Style)
	assert.Equal(t, []string{"oak", "bouclé"}, got.Materials)
	assert.Equal(t, []string{"Modern", "Cozy"}, got.Tags)
	require.NotNil(t, got.Rating)
	assert.InDelta(t, 4.5, *got.Rating, 1e-9)
	assert.Equal(t, "https://cdn.example.com/armchair.jpg", got.Image)
	require.Len(t, got.Links, 1)
	assert.Equal(t, "Shop A", got.Links[0].Retailer)
	assert.Equal(t, "https://a.example.com/armchair", got.Links[0].URL)
	require.NotNil(t, got.Links[0].Price)
	assert.InDelta(t, 499.0, *got.Links[0].Price, 1e-9)
	assert.Equal(t, "in_stock", got.Links[0].Availability)
}

func TestProducts_Validation(t *testing.T) {
	env := setupTest(t, config.RedirectModeHTTP)

	cases := []struct {
		name string
		body gin.H
	}{
		{"missing title", gin.H{"brand": "x"}},
		{"rating above range", gin.H{"title": "x", "rating": 5.5}},
		{"negative rating", gin.H{"title": "x", "rating": -1}},
		{"malformed image url", gin.H{"title": "x", "image": "not a url"}},
		{"affiliate link without url", gin.H{"title": "x", "links": []gin.H{{"retailer": "A"}}}},
		{"negative price", gin.H{"title": "x", "links": []gin.H{{"retailer": "A", "url": "https://a.example.com", "price": -3}}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, http.StatusBadRequest, env.do(http.MethodPost, "/api/products", tc.body).Code)
		})
	}

	n, err := env.store.Count(context.Background(), model.ProductCollection)
	require.NoError(t, err)
	assert.Zero(t, n, "invalid input must not reach storage")
}

func TestProducts_GetByID(t *testing.T) {
	env := setupTest(t, config.RedirectModeHTTP)

	assert.Equal(t, http.StatusBadRequest, env.do(http.MethodGet, "/api/products/not-an-id", nil).Code)
	assert.Equal(t, http.StatusNotFound, env.do(http.MethodGet, "/api/products/6f1c1a57-5a7e-4bd7-9f5c-0d8c0f4f9d10", nil).Code)
}

func TestList_LimitValidation(t *testing.T) {
	env := setupTest(t, config.RedirectModeHTTP)

	for _, limit := range []string{"0", "-1", "abc", "501"} {
		w := env.do(http.MethodGet, "/api/products?limit="+limit, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code, "limit=%s", limit)
	}
	w := env.do(http.MethodGet, "/api/products?limit=500", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"items":[]}`, w.Body.String())
}

func TestArticlesAndCollections(t *testing.T) {
	env := setupTest(t, config.RedirectModeHTTP)

	w := env.do(http.MethodPost, "/api/articles", gin.H{
		"title":   "Small Space Living",
		"slug":    "small-space-living",
		"excerpt": "Ideas for compact rooms",
		"room":    "Bedroom",
		"tags":    []string{"Guides"},
		"inline_products": []gin.H{
			{"product_id": "abc", "title": "Wall Shelf", "url": "https://a.example.com/shelf"},
		},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, http.StatusBadRequest, env.do(http.MethodPost, "/api/articles", gin.H{"title": "No slug"}).Code)

	w = env.do(http.MethodGet, "/api/articles/small-space-living", nil)
	require.Equal(t, http.StatusOK, w.Code)
	article := decode[model.Article](t, w)
	assert.Equal(t, "Small Space Living", article.Title)
	require.Len(t, article.InlineProducts, 1)
	assert.Equal(t, "Wall Shelf", article.InlineProducts[0].Title)
	assert.Equal(t, http.StatusNotFound, env.do(http.MethodGet, "/api/articles/missing", nil).Code)

	w = env.do(http.MethodGet, "/api/articles?room=Bedroom&q=COMPACT", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[ItemsResponse[model.Article]](t, w).Items, 1)

	w = env.do(http.MethodPost, "/api/collections", gin.H{
		"title":       "Autumn Edit",
		"slug":        "autumn-edit",
		"product_ids": []string{"p1", "p2"},
		"tags":        []string{"Seasonal"},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = env.do(http.MethodGet, "/api/collections?tag=Seasonal", nil)
	require.Equal(t, http.StatusOK, w.Code)
	collections := decode[ItemsResponse[model.Collection]](t, w).Items
	require.Len(t, collections, 1)
	assert.Equal(t, []string{"p1", "p2"}, collections[0].ProductIDs)

	w = env.do(http.MethodGet, "/api/collections/autumn-edit", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSearch(t *testing.T) {
	env := setupTest(t, config.RedirectModeHTTP)
	env.createProduct(t, gin.H{"title": "Velvet SOFA"})
	env.createProduct(t, gin.H{"title": "Oak Table"})
	w := env.do(http.MethodPost, "/api/articles", gin.H{"title": "Choosing a sofa", "slug": "choosing-a-sofa"})
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(http.MethodGet, "/api/search?q=sofa", nil)
	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[SearchResponse](t, w)
	require.Len(t, resp.Products, 1)
	assert.Equal(t, "Velvet SOFA", resp.Products[0].Title)
	require.Len(t, resp.Articles, 1)
	assert.Equal(t, "choosing-a-sofa", resp.Articles[0].Slug)

	w = env.do(http.MethodGet, "/api/search?q=nothing-matches", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"products":[],"articles":[]}`, w.Body.String())

	assert.Equal(t, http.StatusBadRequest, env.do(http.MethodGet, "/api/search", nil).Code)
}

func TestSearch_NonASCIIAndTagElements(t *testing.T) {
	env := setupTest(t, config.RedirectModeHTTP)
	env.createProduct(t, gin.H{"title": "Élan Sofa", "brand": "Möbelhaus"})
	env.createProduct(t, gin.H{"title": "Oak Table", "tags": []string{"Wood", "Rustic"}})
	env.createProduct(t, gin.H{"title": "R&D Lamp", "tags": []string{"Lighting"}})

	titles := func(path string) []string {
		t.Helper()
		w := env.do(http.MethodGet, path, nil)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var out []string
		for _, p := range decode[SearchResponse](t, w).Products {
			out = append(out, p.Title)
		}
		return out
	}
	listTitles := func(path string) []string {
		t.Helper()
		w := env.do(http.MethodGet, path, nil)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var out []string
		for _, p := range decode[ItemsResponse[model.Product]](t, w).Items {
			out = append(out, p.Title)
		}
		return out
	}

	for _, q := range []string{"Élan", "élan", "ÉLAN", "möbel"} {
		assert.Equal(t, []string{"Élan Sofa"}, titles("/api/search?q="+url.QueryEscape(q)), "q=%s", q)
	}
	assert.Equal(t, []string{"Élan Sofa"}, listTitles("/api/products?q="+url.QueryEscape("élan")))

	assert.Equal(t, []string{"Oak Table"}, titles("/api/search?q=rustic"))
	assert.Empty(t, titles("/api/search?q="+url.QueryEscape(",")), "list separators must not match")
	assert.Empty(t, titles("/api/search?q="+url.QueryEscape(`["`)))
	assert.Empty(t, listTitles("/api/products?q="+url.QueryEscape(`"`)))
}

func TestCreate_DefaultsEmptyLists(t *testing.T) {
	env := setupTest(t, config.RedirectModeHTTP)

	id := env.createProduct(t, gin.H{"title": "Plain Stool"})
	w := env.do(http.MethodGet, "/api/products/"+id, nil)
	require.Equal(t, http.StatusOK, w.Code)
	product := decode[map[string]any](t, w)
	assert.Equal(t, []any{}, product["links"])
	assert.NotContains(t, product, "search_text")

	w = env.do(http.MethodPost, "/api/collections", gin.H{"title": "Empty Edit", "slug": "empty-edit"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	w = env.do(http.MethodGet, "/api/collections/empty-edit", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []any{}, decode[map[string]any](t, w)["product_ids"])
}

func TestSubscribe(t *testing.T) {
	env := setupTest(t, config.RedirectModeHTTP)

	w := env.do(http.MethodPost, "/api/subscribe", gin.H{"email": "reader@example.com", "interests": []string{"Kitchen"}})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	resp := decode[StatusResponse](t, w)
	assert.Equal(t, "ok", resp.Status)
	assert.NotEmpty(t, resp.ID)

	assert.Equal(t, http.StatusBadRequest, env.do(http.MethodPost, "/api/subscribe", gin.H{"email": "nope"}).Code)
}

func TestWishlist_Lifecycle(t *testing.T) {
	env := setupTest(t, config.RedirectModeHTTP)

	w := env.do(http.MethodPost, "/api/wishlist", gin.H{"user_id": "u1", "product_id": "p1", "notes": "for the hallway"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	id := decode[IDResponse](t, w).ID
	require.Equal(t, http.StatusOK, env.do(http.MethodPost, "/api/wishlist", gin.H{"user_id": "u2", "product_id": "p1"}).Code)
	assert.Equal(t, http.StatusBadRequest, env.do(http.MethodPost, "/api/wishlist", gin.H{"user_id": "u1"}).Code)

	w = env.do(http.MethodGet, "/api/wishlist?user_id=u1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	items := decode[ItemsResponse[model.WishlistItem]](t, w).Items
	require.Len(t, items, 1)
	assert.Equal(t, id, items[0].ID)
	assert.Equal(t, "for the hallway", items[0].Notes)

	assert.Equal(t, http.StatusBadRequest, env.do(http.MethodGet, "/api/wishlist", nil).Code)
	assert.Equal(t, http.StatusOK, env.do(http.MethodGet, "/api/wishlist/"+id, nil).Code)

	w = env.do(http.MethodDelete, "/api/wishlist/"+id, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"deleted"}`, w.Body.String())

	assert.Equal(t, http.StatusNotFound, env.do(http.MethodDelete, "/api/wishlist/"+id, nil).Code)
	assert.Equal(t, http.StatusNotFound, env.do(http.MethodGet, "/api/wishlist/"+id, nil).Code)
	assert.Equal(t, http.StatusBadRequest, env.do(http.MethodDelete, "/api/wishlist/12345", nil).Code)
}

func TestAnalyticsSummary(t *testing.T) {
	env := setupTest(t, config.RedirectModeHTTP)
	env.createProduct(t, gin.H{"title": "A"})
	env.createProduct(t, gin.H{"title": "B"})
	require.Equal(t, http.StatusOK, env.do(http.MethodPost, "/api/links", gin.H{"slug": "a", "target": "https://x.com"}).Code)

	w := env.do(http.MethodGet, "/api/analytics/summary", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, Summary{Products: 2, Links: 1}, decode[Summary](t, w))
}

func TestUnavailableStore(t *testing.T) {
	gin.SetMode(gin.TestMode)
	s := store.New(nil, time.Second, zap.NewNop().Sugar())
	router := newRouter(s, nil, config.RedirectModeHTTP)

	w := perform(router, http.MethodGet, "/api/analytics/summary", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, Summary{}, decode[Summary](t, w))

	w = perform(router, http.MethodGet, "/test", nil)
	require.Equal(t, http.StatusOK, w.Code)
	diag := decode[DiagnosticsResponse](t, w)
	assert.Equal(t, "Not Connected", diag.ConnectionStatus)
	assert.Empty(t, diag.Collections)

	w = perform(router, http.MethodPost, "/api/products", gin.H{"title": "A"})
	require.Equal(t, http.StatusInternalServerError, w.Code)
	errResp := decode[map[string]string](t, w)
	assert.NotEmpty(t, errResp["error"])
	assert.LessOrEqual(t, len([]rune(errResp["error"])), 80)

	assert.Equal(t, http.StatusInternalServerError, perform(router, http.MethodGet, "/r/any", nil).Code)
	assert.Equal(t, http.StatusOK, perform(router, http.MethodGet, "/", nil).Code)
}

func TestDiagnostics(t *testing.T) {
	env := setupTest(t, config.RedirectModeHTTP)

	w := env.do(http.MethodGet, "/test", nil)
	require.Equal(t, http.StatusOK, w.Code)
	diag := decode[DiagnosticsResponse](t, w)
	assert.Equal(t, "✅ Connected & Working", diag.Database)
	assert.Equal(t, "Connected", diag.ConnectionStatus)
	assert.Contains(t, diag.Collections, model.ProductCollection)
	assert.LessOrEqual(t, len(diag.Collections), 10)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 80))
	assert.Equal(t, strings.Repeat("错", 80), truncate(strings.Repeat("错", 100), 80))
}
