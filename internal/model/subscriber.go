package model

// Subscriber 邮件订阅者
type Subscriber struct {
	Base
	Email     string   `gorm:"size:255;not null" json:"email" binding:"required,email"`
	Interests []string `gorm:"type:text;serializer:json" json:"interests,omitempty"`
	Source    string   `gorm:"size:255" json:"source,omitempty"`
}

func (Subscriber) TableName() string {
	return SubscriberCollection
}
