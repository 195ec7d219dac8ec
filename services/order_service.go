package services

import (
	"context"
	"errors"

	"storefront/entity"
	"storefront/hooks"
	"storefront/repository"

	pkgerrors "github.com/pkg/errors"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// OrderFeed receives orders once their checkout transaction has committed.
type OrderFeed interface {
	Publish(order *OrderView)
}

type OrderService struct {
	DB    *gorm.DB
	Repo  *repository.OrderRepository
	Carts *CartService
	Hooks *hooks.Registry
	Feed  OrderFeed
	Log   *zap.Logger
}

func NewOrderService(db *gorm.DB, repo *repository.OrderRepository, carts *CartService, h *hooks.Registry, feed OrderFeed, log *zap.Logger) *OrderService {
	return &OrderService{DB: db, Repo: repo, Carts: carts, Hooks: h, Feed: feed, Log: log}
}

type MetaView struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type OrderItemView struct {
	entity.OrderItem
	Meta []MetaView `json:"meta"`
}

type OrderView struct {
	entity.Order
	Items []OrderItemView `json:"items"`
}

// Checkout turns the cart behind token into an order. Items, their meta and
// the cleared session are written in one transaction.
func (s *OrderService) Checkout(ctx context.Context, userID uint, token string) (*OrderView, error) {
	cart, err := s.Carts.Load(ctx, token)
	if err != nil {
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, ErrCartEmpty
	}

	var orderID uint
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		order := entity.Order{
			Subtotal: cart.Subtotal,
			Total:    cart.Subtotal,
			Status:   entity.OrderStatusPending,
			UserID:   userID,
		}
		if err := s.Repo.CreateOrder(tx, &order); err != nil {
			return pkgerrors.Wrap(err, "create order")
		}

		metaStore := s.Repo.MetaStore(tx)
		for _, it := range cart.Items {
			oi := entity.OrderItem{
				Name:      it.Product.Name,
				Qty:       it.Qty,
				UnitPrice: it.Price,
				Total:     it.LineTotal(),
				OrderID:   order.ID,
				ProductID: it.ProductID,
			}
			if err := s.Repo.CreateOrderItem(tx, &oi); err != nil {
				return pkgerrors.Wrap(err, "create order item")
			}
			if err := s.Hooks.OrderItemCreated(ctx, metaStore, oi.ID, it); err != nil {
				return pkgerrors.Wrapf(err, "annotate order item %d", oi.ID)
			}
		}

		if err := s.Carts.CartRepo.ClearSession(tx, token); err != nil {
			return pkgerrors.Wrap(err, "clear cart session")
		}
		orderID = order.ID
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.Log.Info("order placed",
		zap.Uint("order_id", orderID),
		zap.Uint("user_id", userID),
		zap.String("total", cart.Subtotal.StringFixed(2)),
	)

	view, err := s.DetailForAdmin(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if s.Feed != nil {
		s.Feed.Publish(view)
	}
	return view, nil
}

func (s *OrderService) DetailForUser(ctx context.Context, userID, orderID uint) (*OrderView, error) {
	o, err := s.Repo.GetOrderForUser(ctx, userID, orderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "get order %d", orderID)
	}
	return s.view(ctx, o)
}

func (s *OrderService) DetailForAdmin(ctx context.Context, orderID uint) (*OrderView, error) {
	o, err := s.Repo.GetOrder(ctx, orderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "get order %d", orderID)
	}
	return s.view(ctx, o)
}

func (s *OrderService) ListForUser(ctx context.Context, userID uint) ([]entity.Order, error) {
	rows, err := s.Repo.ListForUser(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "list orders")
	}
	return rows, nil
}

// view maps stored item meta through the display hooks.
func (s *OrderService) view(ctx context.Context, o *entity.Order) (*OrderView, error) {
	items, err := s.Repo.GetOrderItems(ctx, o.ID)
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "get items of order %d", o.ID)
	}

	out := &OrderView{Order: *o, Items: make([]OrderItemView, 0, len(items))}
	for _, it := range items {
		metas := make([]MetaView, 0, len(it.Meta))
		for _, m := range it.Meta {
			metas = append(metas, MetaView{
				Key:   s.Hooks.DisplayMetaKey(m.MetaKey),
				Value: s.Hooks.DisplayMetaValue(m),
			})
		}
		it.Meta = nil
		out.Items = append(out.Items, OrderItemView{OrderItem: it, Meta: metas})
	}
	return out, nil
}
