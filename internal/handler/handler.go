package handler

import (
	"errors"
	"net/http"
	"strconv"

	apperrors "editorial-platform/internal/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// MaxLimit 列表接口允许的最大条数
const MaxLimit = 500

// maxErrorLength 持久层错误信息返回给调用方时的截断长度
const maxErrorLength = 80

// ErrorResponse 所有失败响应的格式
type ErrorResponse struct {
	Error string `json:"error" example:"not found"`
}

// IDResponse 创建成功后返回的文档 id
type IDResponse struct {
	ID string `json:"id" example:"5f0c7c2e-1b7d-4d0e-9a55-3f0f0b6c2a11"`
}

// StatusResponse 简单状态响应
type StatusResponse struct {
	Status string `json:"status" example:"ok"`
	ID     string `json:"id,omitempty"`
}

// respondError 按错误类别映射 HTTP 状态码
func respondError(c *gin.Context, logger *zap.SugaredLogger, err error, notFound string) {
	switch {
	case errors.Is(err, apperrors.ErrValidation),
		errors.Is(err, apperrors.ErrDuplicateSlug),
		errors.Is(err, apperrors.ErrInvalidState):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": notFound})
	default:
		logger.Errorw("请求处理失败", "path", c.FullPath(), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": truncate(err.Error(), maxErrorLength)})
	}
}

// bindJSON 解析并校验请求体，失败时直接写出 400
func bindJSON(c *gin.Context, dest any) bool {
	if err := c.ShouldBindJSON(dest); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的请求数据: " + err.Error()})
		return false
	}
	return true
}

// parseLimit 读取 limit 查询参数，缺省时使用 def
func parseLimit(c *gin.Context, def int) (int, error) {
	raw, ok := c.GetQuery("limit")
	if !ok || raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 || n > MaxLimit {
		return 0, apperrors.Validation("limit 必须是 1 到 %d 之间的整数", MaxLimit)
	}
	return n, nil
}

// parseID 校验路径中的文档 id
func parseID(c *gin.Context) (string, error) {
	raw := c.Param("id")
	id, err := uuid.Parse(raw)
	if err != nil {
		return "", apperrors.Validation("无效的 id: %q", raw)
	}
	return id.String(), nil
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
