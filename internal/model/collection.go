package model

import "gorm.io/gorm"

// Collection 商品合集
type Collection struct {
	Base
	Title       string   `gorm:"size:255;not null" json:"title" binding:"required"`
	Slug        string   `gorm:"size:191;index;not null" json:"slug" binding:"required,max=191"`
	Description string   `gorm:"type:text" json:"description,omitempty"`
	CoverImage  string   `gorm:"type:text" json:"cover_image,omitempty" binding:"omitempty,url"`
	ProductIDs  []string `gorm:"type:text;serializer:json" json:"product_ids"`
	Tags        []string `gorm:"type:text;serializer:json" json:"tags,omitempty"`
}

func (c *Collection) BeforeSave(tx *gorm.DB) error {
	if c.ProductIDs == nil {
		c.ProductIDs = []string{}
	}
	return nil
}

func (Collection) TableName() string {
	return CollectionCollection
}
