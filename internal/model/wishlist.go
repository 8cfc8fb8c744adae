package model

// WishlistItem 心愿单条目，user_id 可以是匿名标识
type WishlistItem struct {
	Base
	UserID    string `gorm:"size:191;index;not null" json:"user_id" binding:"required"`
	ProductID string `gorm:"size:64;not null" json:"product_id" binding:"required"`
	Notes     string `gorm:"type:text" json:"notes,omitempty"`
}

func (WishlistItem) TableName() string {
	return WishlistCollection
}
