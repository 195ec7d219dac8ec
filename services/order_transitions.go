package services

import (
	"context"

	pkgerrors "github.com/pkg/errors"
	"gorm.io/gorm"

	"storefront/entity"
)

// ----- Admin actions -----

func (s *OrderService) AdminComplete(ctx context.Context, orderID uint) error {
	return s.transition(ctx, orderID, entity.OrderStatusPending, entity.OrderStatusCompleted)
}

func (s *OrderService) AdminCancel(ctx context.Context, orderID uint) error {
	return s.transition(ctx, orderID, entity.OrderStatusPending, entity.OrderStatusCancelled)
}

func (s *OrderService) transition(ctx context.Context, orderID uint, from, to string) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		affected, err := s.Repo.UpdateStatusGuard(tx, orderID, from, to)
		if err != nil {
			return pkgerrors.Wrapf(err, "move order %d to %s", orderID, to)
		}
		if affected == 0 {
			return ErrInvalidTransition
		}
		return nil
	})
}
