package handler

import (
	"net/http"

	"editorial-platform/internal/config"
	apperrors "editorial-platform/internal/errors"
	"editorial-platform/internal/model"
	"editorial-platform/internal/redirect"
	"editorial-platform/internal/shortcode"
	"editorial-platform/internal/store"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// LinkHandler 短链创建、查询与跳转
type LinkHandler struct {
	store  *store.Store
	links  redirect.LinkSource
	engine *redirect.Engine
	codes  *shortcode.Generator
	mode   string
	logger *zap.SugaredLogger
}

// NewLinkHandler mode 为 config.RedirectModeHTTP 或 config.RedirectModeJSON
func NewLinkHandler(
	s *store.Store,
	links redirect.LinkSource,
	engine *redirect.Engine,
	codes *shortcode.Generator,
	mode string,
	logger *zap.SugaredLogger,
) *LinkHandler {
	return &LinkHandler{
		store:  s,
		links:  links,
		engine: engine,
		codes:  codes,
		mode:   mode,
		logger: logger.Named("link"),
	}
}

// RedirectResponse json 模式下的跳转响应
type RedirectResponse struct {
	Redirect string `json:"redirect" example:"https://shop.example.com/sofa?utm_source=blog"`
}

// CreateLink godoc
// @Summary 创建短链
// @Description slug 全局唯一，已存在时返回 400 且不写入；不传 slug 时自动生成
// @Tags Link
// @Accept  json
// @Produce  json
// @Param   link  body  model.Link  true  "短链"
// @Success 200 {object} IDResponse
// @Failure 400 {object} ErrorResponse "请求无效或 slug 已存在"
// @Failure 500 {object} ErrorResponse "服务器内部错误"
// @Router /api/links [post]
func (h *LinkHandler) CreateLink(c *gin.Context) {
	var link model.Link
	if !bindJSON(c, &link) {
		return
	}
	ctx := c.Request.Context()

	if link.Slug == "" {
		slug, err := h.codes.Generate(ctx)
		if err != nil {
			respondError(c, h.logger, err, "")
			return
		}
		link.Slug = slug
	} else {
		taken, err := h.store.Exists(ctx, model.LinkCollection, store.Filter{}.Where(store.Eq("slug", link.Slug)))
		if err != nil {
			respondError(c, h.logger, err, "")
			return
		}
		if taken {
			respondError(c, h.logger, apperrors.ErrDuplicateSlug, "")
			return
		}
	}

	id, err := h.store.Create(ctx, model.LinkCollection, &link)
	if err != nil {
		// 预检查与写入之间被并发请求抢占
		if store.IsDuplicate(err) {
			err = apperrors.ErrDuplicateSlug
		}
		respondError(c, h.logger, err, "")
		return
	}
	h.logger.Infow("短链创建成功", "slug", link.Slug, "target", link.Target)
	c.JSON(http.StatusOK, IDResponse{ID: id})
}

// GetLink godoc
// @Summary 按 slug 获取短链
// @Tags Link
// @Produce  json
// @Param slug path string true "短链 slug"
// @Success 200 {object} model.Link
// @Failure 404 {object} ErrorResponse "链接不存在"
// @Router /api/links/{slug} [get]
func (h *LinkHandler) GetLink(c *gin.Context) {
	link, err := h.links.LinkBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondError(c, h.logger, err, "链接不存在")
		return
	}
	c.JSON(http.StatusOK, link)
}

// Redirect godoc
// @Summary 短链跳转
// @Description 补全 UTM 参数并记录点击。http 模式返回 307，json 模式返回 {"redirect": url}
// @Tags Link
// @Produce  json
// @Param slug path string true "短链 slug"
// @Success 200 {object} RedirectResponse "json 模式"
// @Success 307 "http 模式"
// @Failure 400 {object} ErrorResponse "链接缺少跳转目标"
// @Failure 404 {object} ErrorResponse "链接不存在"
// @Router /r/{slug} [get]
func (h *LinkHandler) Redirect(c *gin.Context) {
	target, err := h.engine.Resolve(c.Request.Context(), c.Param("slug"), redirect.Visit{
		Referrer:  c.Request.Referer(),
		UserAgent: c.Request.UserAgent(),
		IP:        c.ClientIP(),
	})
	if err != nil {
		respondError(c, h.logger, err, "链接不存在")
		return
	}

	if h.mode == config.RedirectModeJSON {
		c.JSON(http.StatusOK, RedirectResponse{Redirect: target})
		return
	}
	c.Redirect(http.StatusTemporaryRedirect, target)
}
