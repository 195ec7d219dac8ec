package repository

import (
	"context"

	"storefront/entity"

	"gorm.io/gorm"
)

type ProductRepository struct {
	DB *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{DB: db}
}

func (r *ProductRepository) FindAll(ctx context.Context) ([]entity.Product, error) {
	var out []entity.Product
	err := conn(ctx, r.DB).Order("id ASC").Find(&out).Error
	return out, err
}

func (r *ProductRepository) FindByID(ctx context.Context, id uint) (*entity.Product, error) {
	var p entity.Product
	if err := conn(ctx, r.DB).First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// FindByIDs loads products keyed by id; unknown ids are simply absent.
func (r *ProductRepository) FindByIDs(ctx context.Context, ids []uint) (map[uint]*entity.Product, error) {
	out := make(map[uint]*entity.Product, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	var rows []entity.Product
	if err := conn(ctx, r.DB).Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, err
	}
	for i := range rows {
		out[rows[i].ID] = &rows[i]
	}
	return out, nil
}

func (r *ProductRepository) Create(ctx context.Context, p *entity.Product) error {
	return conn(ctx, r.DB).Create(p).Error
}

func (r *ProductRepository) Update(ctx context.Context, p *entity.Product) error {
	return conn(ctx, r.DB).Save(p).Error
}
