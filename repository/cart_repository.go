package repository

import (
	"context"
	"errors"

	"storefront/entity"

	"gorm.io/gorm"
)

type CartRepository struct{ DB *gorm.DB }

func NewCartRepository(db *gorm.DB) *CartRepository { return &CartRepository{DB: db} }

// FindSession returns an empty, unsaved session when the token is unknown.
func (r *CartRepository) FindSession(ctx context.Context, token string) (*entity.CartSession, error) {
	return r.FindSessionTx(r.DB.WithContext(ctx), token)
}

func (r *CartRepository) FindSessionTx(tx *gorm.DB, token string) (*entity.CartSession, error) {
	var s entity.CartSession
	err := tx.Where("token = ?", token).First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &entity.CartSession{Token: token}, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *CartRepository) SaveSession(tx *gorm.DB, s *entity.CartSession) error {
	if s.ID == 0 {
		return tx.Create(s).Error
	}
	return tx.Save(s).Error
}

func (r *CartRepository) ClearSession(tx *gorm.DB, token string) error {
	return tx.Where("token = ?", token).Delete(&entity.CartSession{}).Error
}
