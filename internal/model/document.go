package model

import (
	"strings"
	"time"
)

// 集合名称，与文档存储中的表名一一对应
const (
	ProductCollection    = "product"
	ArticleCollection    = "article"
	CollectionCollection = "collection"
	LinkCollection       = "link"
	ClickCollection      = "click"
	WishlistCollection   = "wishlistitem"
	SubscriberCollection = "subscriber"
)

// Base 所有文档共有的身份字段，由持久层在写入时分配
type Base struct {
	ID        string    `gorm:"primaryKey;size:36" json:"_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Assign 覆盖身份与时间戳，调用方提交的值一律忽略
func (b *Base) Assign(id string, now time.Time) {
	b.ID = id
	b.CreatedAt = now
	b.UpdatedAt = now
}

// SearchTextColumn 自由文本检索列
//
// 由 Go 侧统一转为小写后写入，每个字段或列表元素占一行，
// 检索时不会跨越字段边界，也不会匹配到列表的序列化符号。
const SearchTextColumn = "search_text"

func searchText(values ...string) string {
	lines := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			lines = append(lines, strings.ToLower(v))
		}
	}
	return strings.Join(lines, "\n")
}

// All 返回需要迁移的全部文档类型
func All() []any {
	return []any{
		&Product{}, &Article{}, &Collection{}, &Link{}, &Click{}, &WishlistItem{}, &Subscriber{},
	}
}
