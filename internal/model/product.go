package model

import "gorm.io/gorm"

// ProductAffiliateLink 商品在零售商处的推广链接
type ProductAffiliateLink struct {
	Retailer     string   `json:"retailer" binding:"required"`
	URL          string   `json:"url" binding:"required,url"`
	Price        *float64 `json:"price,omitempty" binding:"omitempty,gte=0"`
	Availability string   `json:"availability,omitempty"`
}

// Product 商品
type Product struct {
	Base
	Title       string                 `gorm:"size:255;not null" json:"title" binding:"required"`
	Summary     string                 `gorm:"type:text" json:"summary,omitempty"`
	Description string                 `gorm:"type:text" json:"description,omitempty"`
	Brand       string                 `gorm:"size:255" json:"brand,omitempty"`
	Room        string                 `gorm:"size:100;index" json:"room,omitempty"`
	Style       string                 `gorm:"size:100;index" json:"style,omitempty"`
	Materials   []string               `gorm:"type:text;serializer:json" json:"materials,omitempty"`
	Tags        []string               `gorm:"type:text;serializer:json" json:"tags,omitempty"`
	Rating      *float64               `json:"rating,omitempty" binding:"omitempty,gte=0,lte=5"`
	Image       string                 `gorm:"type:text" json:"image,omitempty" binding:"omitempty,url"`
	Links       []ProductAffiliateLink `gorm:"type:text;serializer:json" json:"links" binding:"omitempty,dive"`
	SearchText  string                 `gorm:"type:text" json:"-"`
}

// BeforeSave 补齐列表默认值并刷新检索列（标题、摘要、品牌、标签）
func (p *Product) BeforeSave(tx *gorm.DB) error {
	if p.Links == nil {
		p.Links = []ProductAffiliateLink{}
	}
	p.SearchText = searchText(append([]string{p.Title, p.Summary, p.Brand}, p.Tags...)...)
	return nil
}

func (Product) TableName() string {
	return ProductCollection
}
