package entity

import (
	"time"
)

// CartSession is what survives between requests. Lines only keep the product,
// the quantity and whatever extension values hooks chose to persist.
type CartSession struct {
	ID        uint          `gorm:"primaryKey" json:"-"`
	Token     string        `gorm:"uniqueIndex;size:36;not null" json:"token"`
	UserID    uint          `gorm:"index" json:"userId"`
	Lines     []SessionLine `gorm:"serializer:json;type:text" json:"lines"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

type SessionLine struct {
	Key       string            `json:"key"`
	ProductID uint              `json:"productId"`
	Qty       int               `json:"qty"`
	Values    map[string]string `json:"values,omitempty"`
}
