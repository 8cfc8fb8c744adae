package handler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"editorial-platform/internal/model"
	"editorial-platform/internal/store"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// maxListedCollections /test 中最多列出的集合数
const maxListedCollections = 10

// SystemHandler 存活检查、连接诊断与统计
type SystemHandler struct {
	store         *store.Store
	dsnConfigured bool
	logger        *zap.SugaredLogger
}

// NewSystemHandler dsnConfigured 表示是否显式配置了数据库连接串
func NewSystemHandler(s *store.Store, dsnConfigured bool, logger *zap.SugaredLogger) *SystemHandler {
	return &SystemHandler{store: s, dsnConfigured: dsnConfigured, logger: logger.Named("system")}
}

// Root 存活检查
func (h *SystemHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Editorial + Shopping API running"})
}

// HealthCheck 健康检查
func (h *SystemHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy", "timestamp": time.Now()})
}

// DiagnosticsResponse /test 返回的连接诊断
type DiagnosticsResponse struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      *string  `json:"database_url"`
	DatabaseName     *string  `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

// Diagnostics godoc
// @Summary 存储连接诊断
// @Description 始终返回 200，存储异常时在 database 字段中说明
// @Tags System
// @Produce  json
// @Success 200 {object} DiagnosticsResponse
// @Router /test [get]
func (h *SystemHandler) Diagnostics(c *gin.Context) {
	resp := DiagnosticsResponse{
		Backend:          "✅ Running",
		Database:         "❌ Not Available",
		ConnectionStatus: "Not Connected",
		Collections:      []string{},
	}

	if !h.store.Available() {
		resp.Database = "⚠️ Available but not initialized"
		c.JSON(http.StatusOK, resp)
		return
	}

	urlStatus := "❌ Not Set"
	if h.dsnConfigured {
		urlStatus = "✅ Set"
	}
	name := h.store.Name()
	if name == "" {
		name = "unknown"
	}
	resp.Database = "✅ Available"
	resp.DatabaseURL = &urlStatus
	resp.DatabaseName = &name
	resp.ConnectionStatus = "Connected"

	collections, err := h.store.Collections(c.Request.Context())
	if err != nil {
		resp.Database = fmt.Sprintf("⚠️ Connected but Error: %s", truncate(err.Error(), maxErrorLength))
		c.JSON(http.StatusOK, resp)
		return
	}
	if len(collections) > maxListedCollections {
		collections = collections[:maxListedCollections]
	}
	resp.Collections = collections
	resp.Database = "✅ Connected & Working"
	c.JSON(http.StatusOK, resp)
}

// Summary 各集合文档数
type Summary struct {
	Products    int64 `json:"products"`
	Articles    int64 `json:"articles"`
	Collections int64 `json:"collections"`
	Links       int64 `json:"links"`
	Clicks      int64 `json:"clicks"`
	Subscribers int64 `json:"subscribers"`
}

// Summarize 分别统计各集合，单个集合失败记为 0
func Summarize(ctx context.Context, s *store.Store, logger *zap.SugaredLogger) Summary {
	count := func(collection string) int64 {
		n, err := s.Count(ctx, collection)
		if err != nil {
			logger.Debugw("统计失败，记为 0", "collection", collection, "error", err)
			return 0
		}
		return n
	}
	return Summary{
		Products:    count(model.ProductCollection),
		Articles:    count(model.ArticleCollection),
		Collections: count(model.CollectionCollection),
		Links:       count(model.LinkCollection),
		Clicks:      count(model.ClickCollection),
		Subscribers: count(model.SubscriberCollection),
	}
}

// AnalyticsSummary godoc
// @Summary 统计概览
// @Description 存储不可用时各项计数为 0
// @Tags Analytics
// @Produce  json
// @Success 200 {object} Summary
// @Router /api/analytics/summary [get]
func (h *SystemHandler) AnalyticsSummary(c *gin.Context) {
	c.JSON(http.StatusOK, Summarize(c.Request.Context(), h.store, h.logger))
}
