package handler

import (
	"net/http"

	apperrors "editorial-platform/internal/errors"
	"editorial-platform/internal/model"
	"editorial-platform/internal/store"

	"github.com/gin-gonic/gin"
)

// AddWishlistItem godoc
// @Summary 加入心愿单
// @Tags Wishlist
// @Accept  json
// @Produce  json
// @Param   item  body  model.WishlistItem  true  "心愿单条目"
// @Success 200 {object} IDResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/wishlist [post]
func (h *ContentHandler) AddWishlistItem(c *gin.Context) {
	var item model.WishlistItem
	if !bindJSON(c, &item) {
		return
	}
	h.create(c, model.WishlistCollection, &item)
}

// ListWishlist godoc
// @Summary 用户心愿单
// @Tags Wishlist
// @Produce  json
// @Param user_id query string true  "用户标识"
// @Param limit   query int    false "条数" default(200)
// @Success 200 {object} ItemsResponse[model.WishlistItem]
// @Failure 400 {object} ErrorResponse
// @Router /api/wishlist [get]
func (h *ContentHandler) ListWishlist(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		respondError(c, h.logger, apperrors.Validation("缺少查询参数 user_id"), "")
		return
	}
	limit, err := parseLimit(c, defaultWishlistLimit)
	if err != nil {
		respondError(c, h.logger, err, "")
		return
	}
	items := make([]model.WishlistItem, 0)
	if err := h.store.Find(c.Request.Context(), model.WishlistCollection, store.Filter{}.Where(store.Eq("user_id", userID)), limit, &items); err != nil {
		respondError(c, h.logger, err, "")
		return
	}
	c.JSON(http.StatusOK, ItemsResponse[model.WishlistItem]{Items: items})
}

// GetWishlistItem 按 id 获取心愿单条目
func (h *ContentHandler) GetWishlistItem(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		respondError(c, h.logger, err, "")
		return
	}
	var item model.WishlistItem
	if err := h.store.First(c.Request.Context(), model.WishlistCollection, store.Filter{}.Where(store.Eq("id", id)), &item); err != nil {
		respondError(c, h.logger, err, "条目不存在")
		return
	}
	c.JSON(http.StatusOK, item)
}

// DeleteWishlistItem godoc
// @Summary 删除心愿单条目
// @Tags Wishlist
// @Produce  json
// @Param id path string true "条目 id"
// @Success 200 {object} StatusResponse
// @Failure 400 {object} ErrorResponse "id 格式错误"
// @Failure 404 {object} ErrorResponse "条目不存在"
// @Router /api/wishlist/{id} [delete]
func (h *ContentHandler) DeleteWishlistItem(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		respondError(c, h.logger, err, "")
		return
	}
	deleted, err := h.store.Delete(c.Request.Context(), model.WishlistCollection, store.Filter{}.Where(store.Eq("id", id)), &model.WishlistItem{})
	if err != nil {
		respondError(c, h.logger, err, "")
		return
	}
	if deleted == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "条目不存在"})
		return
	}
	c.JSON(http.StatusOK, StatusResponse{Status: "deleted"})
}
