package repository

import (
	"context"
	"errors"

	"storefront/entity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProductMetaRepository struct {
	DB *gorm.DB
}

func NewProductMetaRepository(db *gorm.DB) *ProductMetaRepository {
	return &ProductMetaRepository{DB: db}
}

// GetMeta returns ok=false when the product has no value under key.
func (r *ProductMetaRepository) GetMeta(ctx context.Context, productID uint, key string) (string, bool, error) {
	var m entity.ProductMeta
	err := conn(ctx, r.DB).
		Where("product_id = ? AND meta_key = ?", productID, key).
		First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return m.MetaValue, true, nil
}

func (r *ProductMetaRepository) SetMeta(ctx context.Context, productID uint, key, value string) error {
	row := entity.ProductMeta{ProductID: productID, MetaKey: key, MetaValue: value}
	return conn(ctx, r.DB).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "product_id"}, {Name: "meta_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"meta_value"}),
	}).Create(&row).Error
}
