package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	ProductTypeSimple   = "simple"
	ProductTypeVariable = "variable"
)

type Product struct {
	gorm.Model
	Name  string          `json:"name"`
	Type  string          `gorm:"not null;default:simple" json:"type"`
	Price decimal.Decimal `gorm:"type:decimal(16,2)" json:"price"`

	Meta []ProductMeta `json:"-"`
}

func (p *Product) IsSimple() bool {
	return p.Type == "" || p.Type == ProductTypeSimple
}
