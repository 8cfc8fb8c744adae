package handler

import (
	"net/http"

	"editorial-platform/internal/model"
	"editorial-platform/internal/store"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// 各列表接口的默认条数
const (
	defaultProductLimit    = 24
	defaultArticleLimit    = 12
	defaultCollectionLimit = 20
	defaultWishlistLimit   = 200
	defaultSearchLimit     = 10
)

// ContentHandler 商品、文章、专题、订阅与心愿单
type ContentHandler struct {
	store  *store.Store
	logger *zap.SugaredLogger
}

// NewContentHandler 创建处理器实例
func NewContentHandler(s *store.Store, logger *zap.SugaredLogger) *ContentHandler {
	return &ContentHandler{store: s, logger: logger.Named("content")}
}

// ItemsResponse 列表响应
type ItemsResponse[T any] struct {
	Items []T `json:"items"`
}

// create 写入文档并返回 {id}
func (h *ContentHandler) create(c *gin.Context, collection string, doc store.Document) {
	id, err := h.store.Create(c.Request.Context(), collection, doc)
	if err != nil {
		respondError(c, h.logger, err, "")
		return
	}
	c.JSON(http.StatusOK, IDResponse{ID: id})
}

// catalogFilter room / style / tag / q 四个通用过滤条件
func catalogFilter(c *gin.Context) store.Filter {
	filter := store.Filter{}
	if room := c.Query("room"); room != "" {
		filter = filter.Where(store.Eq("room", room))
	}
	if style := c.Query("style"); style != "" {
		filter = filter.Where(store.Eq("style", style))
	}
	if tag := c.Query("tag"); tag != "" {
		filter = filter.Where(store.Has("tags", tag))
	}
	if q := c.Query("q"); q != "" {
		filter = filter.Where(store.Like(model.SearchTextColumn, q))
	}
	return filter
}

// CreateProduct godoc
// @Summary 创建商品
// @Tags Product
// @Accept  json
// @Produce  json
// @Param   product  body  model.Product  true  "商品"
// @Success 200 {object} IDResponse
// @Failure 400 {object} ErrorResponse "请求无效"
// @Failure 500 {object} ErrorResponse "服务器内部错误"
// @Router /api/products [post]
func (h *ContentHandler) CreateProduct(c *gin.Context) {
	var product model.Product
	if !bindJSON(c, &product) {
		return
	}
	h.create(c, model.ProductCollection, &product)
}

// ListProducts godoc
// @Summary 商品列表
// @Description room / style / tag 精确匹配，q 在标题、摘要、品牌和标签中做不区分大小写的子串匹配
// @Tags Product
// @Produce  json
// @Param room  query string false "房间"
// @Param style query string false "风格"
// @Param tag   query string false "标签"
// @Param q     query string false "关键词"
// @Param limit query int    false "条数" default(24)
// @Success 200 {object} ItemsResponse[model.Product]
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/products [get]
func (h *ContentHandler) ListProducts(c *gin.Context) {
	limit, err := parseLimit(c, defaultProductLimit)
	if err != nil {
		respondError(c, h.logger, err, "")
		return
	}
	items := make([]model.Product, 0)
	if err := h.store.Find(c.Request.Context(), model.ProductCollection, catalogFilter(c), limit, &items); err != nil {
		respondError(c, h.logger, err, "")
		return
	}
	c.JSON(http.StatusOK, ItemsResponse[model.Product]{Items: items})
}

// GetProduct godoc
// @Summary 获取商品
// @Tags Product
// @Produce  json
// @Param id path string true "商品 id"
// @Success 200 {object} model.Product
// @Failure 400 {object} ErrorResponse "id 格式错误"
// @Failure 404 {object} ErrorResponse "商品不存在"
// @Router /api/products/{id} [get]
func (h *ContentHandler) GetProduct(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		respondError(c, h.logger, err, "")
		return
	}
	var product model.Product
	if err := h.store.First(c.Request.Context(), model.ProductCollection, store.Filter{}.Where(store.Eq("id", id)), &product); err != nil {
		respondError(c, h.logger, err, "商品不存在")
		return
	}
	c.JSON(http.StatusOK, product)
}

// CreateArticle godoc
// @Summary 创建文章
// @Tags Article
// @Accept  json
// @Produce  json
// @Param   article  body  model.Article  true  "文章"
// @Success 200 {object} IDResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/articles [post]
func (h *ContentHandler) CreateArticle(c *gin.Context) {
	var article model.Article
	if !bindJSON(c, &article) {
		return
	}
	h.create(c, model.ArticleCollection, &article)
}

// ListArticles godoc
// @Summary 文章列表
// @Tags Article
// @Produce  json
// @Param room  query string false "房间"
// @Param style query string false "风格"
// @Param tag   query string false "标签"
// @Param q     query string false "关键词"
// @Param limit query int    false "条数" default(12)
// @Success 200 {object} ItemsResponse[model.Article]
// @Router /api/articles [get]
func (h *ContentHandler) ListArticles(c *gin.Context) {
	limit, err := parseLimit(c, defaultArticleLimit)
	if err != nil {
		respondError(c, h.logger, err, "")
		return
	}
	items := make([]model.Article, 0)
	if err := h.store.Find(c.Request.Context(), model.ArticleCollection, catalogFilter(c), limit, &items); err != nil {
		respondError(c, h.logger, err, "")
		return
	}
	c.JSON(http.StatusOK, ItemsResponse[model.Article]{Items: items})
}

// GetArticle godoc
// @Summary 按 slug 获取文章
// @Tags Article
// @Produce  json
// @Param slug path string true "文章 slug"
// @Success 200 {object} model.Article
// @Failure 404 {object} ErrorResponse "文章不存在"
// @Router /api/articles/{slug} [get]
func (h *ContentHandler) GetArticle(c *gin.Context) {
	var article model.Article
	if err := h.store.First(c.Request.Context(), model.ArticleCollection, store.Filter{}.Where(store.Eq("slug", c.Param("slug"))), &article); err != nil {
		respondError(c, h.logger, err, "文章不存在")
		return
	}
	c.JSON(http.StatusOK, article)
}

// CreateCollection godoc
// @Summary 创建专题
// @Tags Collection
// @Accept  json
// @Produce  json
// @Param   collection  body  model.Collection  true  "专题"
// @Success 200 {object} IDResponse
// @Router /api/collections [post]
func (h *ContentHandler) CreateCollection(c *gin.Context) {
	var collection model.Collection
	if !bindJSON(c, &collection) {
		return
	}
	h.create(c, model.CollectionCollection, &collection)
}

// ListCollections godoc
// @Summary 专题列表
// @Tags Collection
// @Produce  json
// @Param tag   query string false "标签"
// @Param limit query int    false "条数" default(20)
// @Success 200 {object} ItemsResponse[model.Collection]
// @Router /api/collections [get]
func (h *ContentHandler) ListCollections(c *gin.Context) {
	limit, err := parseLimit(c, defaultCollectionLimit)
	if err != nil {
		respondError(c, h.logger, err, "")
		return
	}
	filter := store.Filter{}
	if tag := c.Query("tag"); tag != "" {
		filter = filter.Where(store.Has("tags", tag))
	}
	items := make([]model.Collection, 0)
	if err := h.store.Find(c.Request.Context(), model.CollectionCollection, filter, limit, &items); err != nil {
		respondError(c, h.logger, err, "")
		return
	}
	c.JSON(http.StatusOK, ItemsResponse[model.Collection]{Items: items})
}

// GetCollection 按 slug 获取专题
func (h *ContentHandler) GetCollection(c *gin.Context) {
	var collection model.Collection
	if err := h.store.First(c.Request.Context(), model.CollectionCollection, store.Filter{}.Where(store.Eq("slug", c.Param("slug"))), &collection); err != nil {
		respondError(c, h.logger, err, "专题不存在")
		return
	}
	c.JSON(http.StatusOK, collection)
}

// Subscribe godoc
// @Summary 邮件订阅
// @Tags Subscriber
// @Accept  json
// @Produce  json
// @Param   subscriber  body  model.Subscriber  true  "订阅者"
// @Success 200 {object} StatusResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/subscribe [post]
func (h *ContentHandler) Subscribe(c *gin.Context) {
	var subscriber model.Subscriber
	if !bindJSON(c, &subscriber) {
		return
	}
	id, err := h.store.Create(c.Request.Context(), model.SubscriberCollection, &subscriber)
	if err != nil {
		respondError(c, h.logger, err, "")
		return
	}
	c.JSON(http.StatusOK, StatusResponse{Status: "ok", ID: id})
}

// Search godoc
// @Summary 跨实体搜索
// @Description 同一个关键词分别在商品和文章中做不区分大小写的子串匹配，不排序
// @Tags Search
// @Produce  json
// @Param q     query string true  "关键词"
// @Param limit query int    false "每类条数" default(10)
// @Success 200 {object} SearchResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/search [get]
func (h *ContentHandler) Search(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "缺少查询参数 q"})
		return
	}
	limit, err := parseLimit(c, defaultSearchLimit)
	if err != nil {
		respondError(c, h.logger, err, "")
		return
	}

	ctx := c.Request.Context()
	resp := SearchResponse{Products: make([]model.Product, 0), Articles: make([]model.Article, 0)}
	if err := h.store.Find(ctx, model.ProductCollection, store.Filter{}.Where(store.Like(model.SearchTextColumn, q)), limit, &resp.Products); err != nil {
		respondError(c, h.logger, err, "")
		return
	}
	if err := h.store.Find(ctx, model.ArticleCollection, store.Filter{}.Where(store.Like(model.SearchTextColumn, q)), limit, &resp.Articles); err != nil {
		respondError(c, h.logger, err, "")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// SearchResponse 搜索结果
type SearchResponse struct {
	Products []model.Product `json:"products"`
	Articles []model.Article `json:"articles"`
}
