package entity

// ProductMeta is the product-scoped key/value store extensions write their
// settings into.
type ProductMeta struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	ProductID uint   `gorm:"uniqueIndex:idx_product_meta_key;not null" json:"productId"`
	MetaKey   string `gorm:"uniqueIndex:idx_product_meta_key;size:191;not null" json:"metaKey"`
	MetaValue string `json:"metaValue"`
}
