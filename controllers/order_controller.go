package controllers

import (
	"storefront/pkg/resp"
	"storefront/services"
	"storefront/utils"

	"github.com/gin-gonic/gin"
)

type OrderController struct{ Svc *services.OrderService }

func NewOrderController(s *services.OrderService) *OrderController { return &OrderController{Svc: s} }

// POST /checkout
func (h *OrderController) Checkout(c *gin.Context) {
	o, err := h.Svc.Checkout(c.Request.Context(), utils.CurrentUserID(c), utils.CartToken(c))
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, o)
}

// GET /orders
func (h *OrderController) ListForMe(c *gin.Context) {
	rows, err := h.Svc.ListForUser(c.Request.Context(), utils.CurrentUserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, rows)
}

// GET /orders/:id
func (h *OrderController) Detail(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	o, err := h.Svc.DetailForUser(c.Request.Context(), utils.CurrentUserID(c), id)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, o)
}
