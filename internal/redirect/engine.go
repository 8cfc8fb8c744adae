package redirect

import (
	"context"
	"fmt"

	apperrors "editorial-platform/internal/errors"
	"editorial-platform/internal/model"

	"go.uber.org/zap"
)

// LinkSource 按 slug 查找链接，找不到时返回 ErrNotFound
type LinkSource interface {
	LinkBySlug(ctx context.Context, slug string) (*model.Link, error)
}

// ClickRecorder 接收点击记录，不得阻塞
type ClickRecorder interface {
	Record(click *model.Click) bool
}

// Visit 一次访问的来源信息
type Visit struct {
	Referrer  string
	UserAgent string
	IP        string
}

// Engine 解析 slug、补全归因参数并记录点击
type Engine struct {
	links  LinkSource
	clicks ClickRecorder
	logger *zap.SugaredLogger
}

// NewEngine clicks 可以为 nil，此时不记录点击
func NewEngine(links LinkSource, clicks ClickRecorder, logger *zap.SugaredLogger) *Engine {
	return &Engine{links: links, clicks: clicks, logger: logger.Named("redirect")}
}

// Resolve 返回最终跳转地址
//
// 找到链接后即提交点击记录；记录结果不影响返回值。
func (e *Engine) Resolve(ctx context.Context, slug string, visit Visit) (string, error) {
	link, err := e.links.LinkBySlug(ctx, slug)
	if err != nil {
		return "", err
	}

	e.record(slug, visit)

	if link.Target == "" {
		e.logger.Errorw("链接缺少跳转目标", "slug", slug, "id", link.ID)
		return "", apperrors.ErrInvalidState
	}

	resolved, err := MergeAttribution(link.Target, link.Attribution())
	if err != nil {
		e.logger.Errorw("链接目标无法解析", "slug", slug, "target", link.Target, "error", err)
		return "", fmt.Errorf("%w: %v", apperrors.ErrInvalidState, err)
	}
	return resolved, nil
}

func (e *Engine) record(slug string, visit Visit) {
	if e.clicks == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			e.logger.Errorw("点击记录异常", "slug", slug, "panic", r)
		}
	}()
	e.clicks.Record(&model.Click{
		LinkSlug:  slug,
		Referrer:  visit.Referrer,
		UserAgent: visit.UserAgent,
		IP:        visit.IP,
	})
}
