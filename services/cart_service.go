package services

import (
	"context"
	"errors"
	"maps"

	"storefront/entity"
	"storefront/hooks"
	"storefront/repository"

	"github.com/google/uuid"
	pkgerrors "github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CartService struct {
	DB          *gorm.DB
	CartRepo    *repository.CartRepository
	ProductRepo *repository.ProductRepository
	Hooks       *hooks.Registry
	Log         *zap.Logger
}

func NewCartService(db *gorm.DB, cr *repository.CartRepository, pr *repository.ProductRepository, h *hooks.Registry, log *zap.Logger) *CartService {
	return &CartService{DB: db, CartRepo: cr, ProductRepo: pr, Hooks: h, Log: log}
}

type CartLineView struct {
	*entity.CartItem
	Name      string           `json:"name"`
	LineTotal decimal.Decimal  `json:"lineTotal"`
	Data      []hooks.ItemData `json:"data"`
}

type CartView struct {
	Token    string          `json:"token"`
	Items    []CartLineView  `json:"items"`
	Subtotal decimal.Decimal `json:"subtotal"`
}

// Load rebuilds the cart from its session and calculates totals.
func (s *CartService) Load(ctx context.Context, token string) (*entity.Cart, error) {
	sess, err := s.CartRepo.FindSession(ctx, token)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "find cart session")
	}
	cart, err := s.rehydrate(ctx, sess)
	if err != nil {
		return nil, err
	}
	s.CalculateTotals(ctx, cart)
	return cart, nil
}

// rehydrate builds fresh cart items from product data. Extension values only
// come back through the CartItemFromSession hook.
func (s *CartService) rehydrate(ctx context.Context, sess *entity.CartSession) (*entity.Cart, error) {
	ids := make([]uint, 0, len(sess.Lines))
	for _, l := range sess.Lines {
		ids = append(ids, l.ProductID)
	}
	products, err := s.ProductRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "load cart products")
	}

	cart := &entity.Cart{Token: sess.Token, UserID: sess.UserID, Items: make([]*entity.CartItem, 0, len(sess.Lines))}
	for _, l := range sess.Lines {
		p, ok := products[l.ProductID]
		if !ok {
			s.Log.Info("dropping cart line of missing product", zap.Uint("product_id", l.ProductID))
			continue
		}
		item := newCartItem(l.Key, p, l.Qty)
		s.Hooks.CartItemFromSession(ctx, item, l.Values)
		cart.Items = append(cart.Items, item)
	}
	return cart, nil
}

func (s *CartService) CalculateTotals(ctx context.Context, cart *entity.Cart) {
	s.Hooks.BeforeCalculateTotals(ctx, cart)

	subtotal := decimal.Zero
	for _, it := range cart.Items {
		subtotal = subtotal.Add(it.LineTotal())
	}
	cart.Subtotal = subtotal
}

func (s *CartService) View(ctx context.Context, cart *entity.Cart) *CartView {
	out := &CartView{Token: cart.Token, Subtotal: cart.Subtotal, Items: make([]CartLineView, 0, len(cart.Items))}
	for _, it := range cart.Items {
		name := ""
		if it.Product != nil {
			name = it.Product.Name
		}
		out.Items = append(out.Items, CartLineView{
			CartItem:  it,
			Name:      name,
			LineTotal: it.LineTotal(),
			Data:      s.Hooks.CartItemData(ctx, it),
		})
	}
	return out
}

// Add puts a product into the cart. fields are the raw submitted request
// fields; extensions read their own keys from them. Lines with the same
// product and the same extension values are merged.
func (s *CartService) Add(ctx context.Context, token string, productID uint, qty int, fields map[string]string) (*entity.Cart, error) {
	if qty <= 0 {
		qty = 1
	}
	p, err := s.ProductRepo.FindByID(ctx, productID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "find product %d", productID)
	}

	cart, err := s.Load(ctx, token)
	if err != nil {
		return nil, err
	}

	item := newCartItem(uuid.NewString(), p, qty)
	s.Hooks.AddCartItemData(ctx, item, fields)

	values := s.Hooks.CartItemSessionData(ctx, item)
	merged := false
	for _, it := range cart.Items {
		if it.ProductID == item.ProductID && maps.Equal(s.Hooks.CartItemSessionData(ctx, it), values) {
			it.Qty += qty
			merged = true
			break
		}
	}
	if !merged {
		cart.Items = append(cart.Items, item)
	}

	if err := s.save(ctx, cart); err != nil {
		return nil, err
	}
	s.CalculateTotals(ctx, cart)
	return cart, nil
}

// UpdateQty removes the line when qty drops to zero.
func (s *CartService) UpdateQty(ctx context.Context, token, key string, qty int) (*entity.Cart, error) {
	if qty <= 0 {
		return s.RemoveItem(ctx, token, key)
	}
	cart, err := s.Load(ctx, token)
	if err != nil {
		return nil, err
	}
	it := cart.Find(key)
	if it == nil {
		return nil, ErrLineNotFound
	}
	it.Qty = qty

	if err := s.save(ctx, cart); err != nil {
		return nil, err
	}
	s.CalculateTotals(ctx, cart)
	return cart, nil
}

func (s *CartService) RemoveItem(ctx context.Context, token, key string) (*entity.Cart, error) {
	cart, err := s.Load(ctx, token)
	if err != nil {
		return nil, err
	}
	kept := cart.Items[:0]
	found := false
	for _, it := range cart.Items {
		if it.Key == key {
			found = true
			continue
		}
		kept = append(kept, it)
	}
	if !found {
		return nil, ErrLineNotFound
	}
	cart.Items = kept

	if err := s.save(ctx, cart); err != nil {
		return nil, err
	}
	s.CalculateTotals(ctx, cart)
	return cart, nil
}

func (s *CartService) Clear(ctx context.Context, token string) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.ClearSession(tx, token)
	})
}

// save writes the cart back to its session. Only product, quantity and the
// values extensions return from CartItemSessionData survive.
func (s *CartService) save(ctx context.Context, cart *entity.Cart) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		sess, err := s.CartRepo.FindSessionTx(tx, cart.Token)
		if err != nil {
			return pkgerrors.Wrap(err, "find cart session")
		}
		lines := make([]entity.SessionLine, 0, len(cart.Items))
		for _, it := range cart.Items {
			lines = append(lines, entity.SessionLine{
				Key:       it.Key,
				ProductID: it.ProductID,
				Qty:       it.Qty,
				Values:    s.Hooks.CartItemSessionData(ctx, it),
			})
		}
		sess.Lines = lines
		if cart.UserID != 0 {
			sess.UserID = cart.UserID
		}
		return pkgerrors.Wrap(s.CartRepo.SaveSession(tx, sess), "save cart session")
	})
}

func newCartItem(key string, p *entity.Product, qty int) *entity.CartItem {
	return &entity.CartItem{
		Key:       key,
		ProductID: p.ID,
		Product:   p,
		Qty:       qty,
		BasePrice: p.Price,
		Price:     p.Price,
	}
}
