package entity

// OrderItemMeta rows are written once at checkout and never updated.
type OrderItemMeta struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	OrderItemID uint   `gorm:"index;not null" json:"orderItemId"`
	MetaKey     string `gorm:"size:191;not null" json:"key"`
	MetaValue   string `json:"value"`
}
