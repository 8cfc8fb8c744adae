package model

// Link 跳转短链，创建后不可修改
type Link struct {
	Base
	Slug        string `gorm:"size:191;uniqueIndex;not null" json:"slug" binding:"omitempty,max=64,excludesall=/?#"`
	Target      string `gorm:"type:text;not null" json:"target" binding:"required,url"`
	Source      string `gorm:"size:255" json:"source,omitempty"`
	UTMCampaign string `gorm:"size:255" json:"utm_campaign,omitempty"`
	UTMSource   string `gorm:"size:255" json:"utm_source,omitempty"`
	UTMMedium   string `gorm:"size:255" json:"utm_medium,omitempty"`
}

func (Link) TableName() string {
	return LinkCollection
}

// Attribution 按参数名返回链接上配置的 UTM 值
func (l *Link) Attribution() map[string]string {
	return map[string]string{
		"utm_source":   l.UTMSource,
		"utm_medium":   l.UTMMedium,
		"utm_campaign": l.UTMCampaign,
	}
}
