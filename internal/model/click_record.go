package model

// Click 一次跳转的点击记录，只追加、不回读
type Click struct {
	Base
	LinkSlug  string `gorm:"size:191;index;not null" json:"link_slug"`
	Referrer  string `gorm:"type:text" json:"referrer,omitempty"`
	UserAgent string `gorm:"type:text" json:"user_agent,omitempty"`
	IP        string `gorm:"size:45" json:"ip,omitempty"`
}

func (Click) TableName() string {
	return ClickCollection
}
