package model

import "gorm.io/gorm"

// ArticleInlineProduct 文章正文中引用的商品，product_id 为软引用
type ArticleInlineProduct struct {
	ProductID string `json:"product_id,omitempty"`
	Title     string `json:"title,omitempty"`
	Retailer  string `json:"retailer,omitempty"`
	URL       string `json:"url,omitempty" binding:"omitempty,url"`
}

// Article 编辑文章，按 slug 访问
type Article struct {
	Base
	Title          string                 `gorm:"size:255;not null" json:"title" binding:"required"`
	Slug           string                 `gorm:"size:191;index;not null" json:"slug" binding:"required,max=191"`
	HeroImage      string                 `gorm:"type:text" json:"hero_image,omitempty" binding:"omitempty,url"`
	Excerpt        string                 `gorm:"type:text" json:"excerpt,omitempty"`
	Content        string                 `gorm:"type:text" json:"content,omitempty"`
	Room           string                 `gorm:"size:100;index" json:"room,omitempty"`
	Style          string                 `gorm:"size:100;index" json:"style,omitempty"`
	Budget         string                 `gorm:"size:100" json:"budget,omitempty"`
	Tags           []string               `gorm:"type:text;serializer:json" json:"tags,omitempty"`
	InlineProducts []ArticleInlineProduct `gorm:"type:text;serializer:json" json:"inline_products,omitempty" binding:"omitempty,dive"`
	SearchText     string                 `gorm:"type:text" json:"-"`
}

// BeforeSave 刷新检索列（标题、导语、标签）
func (a *Article) BeforeSave(tx *gorm.DB) error {
	a.SearchText = searchText(append([]string{a.Title, a.Excerpt}, a.Tags...)...)
	return nil
}

func (Article) TableName() string {
	return ArticleCollection
}
