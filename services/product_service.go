package services

import (
	"context"
	"errors"
	"strings"

	"storefront/entity"
	"storefront/hooks"
	"storefront/repository"

	pkgerrors "github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type ProductService struct {
	DB    *gorm.DB
	Repo  *repository.ProductRepository
	Hooks *hooks.Registry
	Log   *zap.Logger
}

func NewProductService(db *gorm.DB, repo *repository.ProductRepository, h *hooks.Registry, log *zap.Logger) *ProductService {
	return &ProductService{DB: db, Repo: repo, Hooks: h, Log: log}
}

// ProductIn is the admin product edit form. Fields carries every submitted
// field so extensions can pick up their own keys.
type ProductIn struct {
	Name   string
	Type   string
	Price  string
	Fields map[string]string
}

type ProductView struct {
	entity.Product
	Fields []hooks.Field `json:"fields"`
}

type ProductEditView struct {
	Product entity.Product     `json:"product"`
	Tabs    []hooks.ProductTab `json:"tabs"`
	Panels  []hooks.Panel      `json:"panels"`
}

var baseTabs = []hooks.ProductTab{
	{Key: "general", Label: "General", Target: "general_product_data"},
	{Key: "inventory", Label: "Inventory", Target: "inventory_product_data"},
}

func (s *ProductService) List(ctx context.Context) ([]ProductView, error) {
	rows, err := s.Repo.FindAll(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "list products")
	}
	out := make([]ProductView, 0, len(rows))
	for i := range rows {
		out = append(out, ProductView{Product: rows[i], Fields: s.Hooks.BeforeAddToCartQuantity(ctx, &rows[i])})
	}
	return out, nil
}

// Detail returns the product together with the extra add-to-cart fields
// extensions offer for it.
func (s *ProductService) Detail(ctx context.Context, id uint) (*ProductView, error) {
	p, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return &ProductView{Product: *p, Fields: s.Hooks.BeforeAddToCartQuantity(ctx, p)}, nil
}

func (s *ProductService) EditView(ctx context.Context, id uint) (*ProductEditView, error) {
	p, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	tabs := append([]hooks.ProductTab(nil), baseTabs...)
	return &ProductEditView{
		Product: *p,
		Tabs:    s.Hooks.ProductDataTabs(tabs),
		Panels:  s.Hooks.ProductDataPanels(ctx, p),
	}, nil
}

func (s *ProductService) Create(ctx context.Context, in *ProductIn) (*entity.Product, error) {
	p := &entity.Product{}
	if err := applyProductIn(p, in); err != nil {
		return nil, err
	}
	err := s.save(ctx, p, in, func(ctx context.Context) error {
		return pkgerrors.Wrap(s.Repo.Create(ctx, p), "create product")
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (s *ProductService) Update(ctx context.Context, id uint, in *ProductIn) (*entity.Product, error) {
	p, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := applyProductIn(p, in); err != nil {
		return nil, err
	}
	err = s.save(ctx, p, in, func(ctx context.Context) error {
		return pkgerrors.Wrapf(s.Repo.Update(ctx, p), "update product %d", id)
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

// save runs the product write and the extension meta in one transaction so a
// failed meta write leaves the product untouched.
func (s *ProductService) save(ctx context.Context, p *entity.Product, in *ProductIn, write func(context.Context) error) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txCtx := repository.WithTx(ctx, tx)
		if err := write(txCtx); err != nil {
			return err
		}
		return s.processMeta(txCtx, p, in)
	})
}

// processMeta hands the edit form to extensions; only simple products carry
// extension meta.
func (s *ProductService) processMeta(ctx context.Context, p *entity.Product, in *ProductIn) error {
	if !p.IsSimple() {
		return nil
	}
	if err := s.Hooks.ProcessProductMeta(ctx, p, in.Fields); err != nil {
		s.Log.Error("process product meta", zap.Uint("product_id", p.ID), zap.Error(err))
		return err
	}
	return nil
}

func (s *ProductService) find(ctx context.Context, id uint) (*entity.Product, error) {
	p, err := s.Repo.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "find product %d", id)
	}
	return p, nil
}

func applyProductIn(p *entity.Product, in *ProductIn) error {
	if name := strings.TrimSpace(in.Name); name != "" {
		p.Name = name
	}
	if p.Name == "" {
		return invalid("name is required")
	}
	if in.Type != "" {
		switch in.Type {
		case entity.ProductTypeSimple, entity.ProductTypeVariable:
			p.Type = in.Type
		default:
			return invalid("invalid product type")
		}
	}
	if p.Type == "" {
		p.Type = entity.ProductTypeSimple
	}
	if in.Price != "" {
		price, err := decimal.NewFromString(strings.TrimSpace(in.Price))
		if err != nil || price.IsNegative() {
			return invalid("invalid price")
		}
		p.Price = price
	}
	return nil
}
